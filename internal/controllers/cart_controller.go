package controllers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/services"
)

// CartController handles the authenticated cart endpoints. Prices are
// always computed server-side from the catalog; anything price-shaped in
// the request body is ignored.
type CartController struct {
	carts services.CartService
	menu  services.MenuService
}

func NewCartController(carts services.CartService, menu services.MenuService) *CartController {
	return &CartController{carts: carts, menu: menu}
}

type addItemRequest struct {
	PizzaID            string   `json:"pizza_id" binding:"required"`
	Size               string   `json:"size" binding:"required"`
	Quantity           int      `json:"quantity"`
	AddedIngredients   []string `json:"added_ingredients"`
	RemovedIngredients []string `json:"removed_ingredients"`
	Notes              string   `json:"notes"`
}

// GetCart godoc
// @Summary Get the current cart
// @Tags cart
// @Produce json
// @Success 200 {object} map[string]interface{}
// @Failure 500 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/cart [get]
func (cc *CartController) GetCart(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	cart, err := cc.carts.Get(userID)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to load cart"))
		return
	}
	respondCart(ctx, cart)
}

// AddItem godoc
// @Summary Add a customized pizza to the cart
// @Description Builds a line item from the catalog prices and appends it to the cart
// @Tags cart
// @Accept json
// @Produce json
// @Param item body addItemRequest true "Customization"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Failure 404 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/cart/items [post]
func (cc *CartController) AddItem(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	var req addItemRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid request body"))
		return
	}

	pizza, err := cc.menu.GetPizzaByID(req.PizzaID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "Pizza not found"))
		return
	}
	if !pizza.Available {
		ctx.JSON(http.StatusNotFound, models.NewAPIError(models.ErrPizzaNotFound, "Pizza is not available"))
		return
	}

	size := models.PizzaSize(req.Size)
	if _, offered := pizza.PriceForSize(size); !offered {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrSizeNotOffered, "This pizza is not offered in the requested size"))
		return
	}

	ingredients, err := cc.menu.GetAvailableIngredients()
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to retrieve ingredients"))
		return
	}

	item := services.BuildLineItem(*pizza, size, req.Quantity, req.AddedIngredients, req.RemovedIngredients, req.Notes, ingredients)

	cart, err := cc.carts.AddItem(userID, item)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to save cart"))
		return
	}

	ctx.JSON(http.StatusCreated, cartBody(cart))
}

// RemoveItem godoc
// @Summary Remove a line item by position
// @Description Removing an out-of-range position leaves the cart untouched
// @Tags cart
// @Produce json
// @Param index path int true "Zero-based item position"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} models.APIError
// @Security BearerAuth
// @Router /api/v1/cart/items/{index} [delete]
func (cc *CartController) RemoveItem(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	index, err := strconv.Atoi(ctx.Param("index"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, models.NewAPIError(models.ErrBadRequest, "Invalid item index"))
		return
	}

	cart, err := cc.carts.RemoveItem(userID, index)
	if err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to save cart"))
		return
	}
	respondCart(ctx, cart)
}

// ClearCart godoc
// @Summary Empty the cart
// @Tags cart
// @Produce json
// @Success 204
// @Security BearerAuth
// @Router /api/v1/cart [delete]
func (cc *CartController) ClearCart(ctx *gin.Context) {
	userID := ctx.GetString("userID")

	if err := cc.carts.Clear(userID); err != nil {
		ctx.JSON(http.StatusInternalServerError, models.NewAPIError(models.ErrInternalServer, "Failed to clear cart"))
		return
	}
	ctx.JSON(http.StatusNoContent, nil)
}

func respondCart(ctx *gin.Context, cart models.Cart) {
	ctx.JSON(http.StatusOK, cartBody(cart))
}

func cartBody(cart models.Cart) gin.H {
	items := cart.Items
	if items == nil {
		items = []models.CartLineItem{}
	}
	return gin.H{
		"items": items,
		"total": cart.Total(),
	}
}
