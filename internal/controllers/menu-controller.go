package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/services"
)

// MenuController handles the public catalog endpoints
type MenuController interface {
	// GetMenu retrieves the categories with their available pizzas
	GetMenu(c *gin.Context)
	// GetPizzaByID retrieves one pizza plus the add-ons the customizer offers
	GetPizzaByID(c *gin.Context)
}

type menuController struct {
	service services.MenuService
}

// NewMenuController creates a new instance of MenuController
func NewMenuController(service services.MenuService) MenuController {
	return &menuController{service: service}
}

// GetMenu godoc
// @Summary Get the menu
// @Description Get all categories in display order, each with its available pizzas
// @Tags menu
// @Accept json
// @Produce json
// @Success 200 {array} models.Category
// @Failure 500 {object} models.APIError
// @Router /api/v1/public/menu [get]
func (m *menuController) GetMenu(ctx *gin.Context) {
	categories, err := m.service.GetMenu()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve menu"))
		return
	}
	ctx.JSON(http.StatusOK, categories)
}

// GetPizzaByID godoc
// @Summary Get pizza by ID
// @Description Get a single pizza with the available add-on ingredients
// @Tags menu
// @Accept json
// @Produce json
// @Param id path string true "Pizza ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} models.APIError
// @Router /api/v1/public/pizzas/{id} [get]
func (m *menuController) GetPizzaByID(ctx *gin.Context) {
	id := ctx.Param("id")

	pizza, err := m.service.GetPizzaByID(id)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "Pizza not found"))
		return
	}

	ingredients, err := m.service.GetAvailableIngredients()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve ingredients"))
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"pizza":       pizza,
		"ingredients": ingredients,
	})
}
