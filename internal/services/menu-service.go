package services

import (
	"gorm.io/gorm"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
)

// MenuService exposes the read-only catalog the storefront renders.
type MenuService interface {
	// GetMenu retrieves the categories in display order, each with its
	// currently available pizzas.
	GetMenu() ([]models.Category, error)
	// GetPizzaByID retrieves a single pizza by its ID
	GetPizzaByID(id string) (*models.Pizza, error)
	// GetAvailableIngredients retrieves the add-ons the customizer may offer
	GetAvailableIngredients() ([]models.Ingredient, error)
}

// menuService is the implementation of the MenuService interface
type menuService struct {
	db *gorm.DB
}

// NewMenuService creates a new instance of MenuService
func NewMenuService(db *gorm.DB) MenuService {
	return &menuService{db: db}
}

func (s *menuService) GetMenu() ([]models.Category, error) {
	var categories []models.Category
	if err := s.db.Order("ordem asc").Find(&categories).Error; err != nil {
		return nil, err
	}

	for i := range categories {
		var pizzas []models.Pizza
		err := s.db.
			Where("categoria_id = ? AND disponivel = ?", categories[i].ID, true).
			Find(&pizzas).Error
		if err != nil {
			return nil, err
		}
		categories[i].Pizzas = pizzas
	}
	return categories, nil
}

func (s *menuService) GetPizzaByID(id string) (*models.Pizza, error) {
	var pizza models.Pizza
	if err := s.db.First(&pizza, "id = ?", id).Error; err != nil {
		return nil, err
	}
	return &pizza, nil
}

func (s *menuService) GetAvailableIngredients() ([]models.Ingredient, error) {
	var ingredients []models.Ingredient
	if err := s.db.Where("disponivel = ?", true).Order("nome asc").Find(&ingredients).Error; err != nil {
		return nil, err
	}
	return ingredients, nil
}
