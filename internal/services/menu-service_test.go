package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
)

func seedMenu(t *testing.T, db *gorm.DB) {
	categories := []models.Category{
		{ID: "cat-sweet", Name: "Doces", SortOrder: 2},
		{ID: "cat-savory", Name: "Tradicionais", SortOrder: 1},
	}
	for i := range categories {
		require.NoError(t, db.Create(&categories[i]).Error)
	}

	pizzas := []models.Pizza{
		{ID: "pz-calabresa", Name: "Calabresa", CategoryID: "cat-savory", Available: true, PriceMedium: ptr(40.0)},
		{ID: "pz-offmenu", Name: "Sazonal", CategoryID: "cat-savory", Available: false, PriceMedium: ptr(45.0)},
		{ID: "pz-brigadeiro", Name: "Brigadeiro", CategoryID: "cat-sweet", Available: true, PriceSmall: ptr(30.0)},
	}
	for i := range pizzas {
		require.NoError(t, db.Create(&pizzas[i]).Error)
	}

	ingredients := []models.Ingredient{
		{ID: "ing-bacon", Name: "Bacon", AdditionalPrice: 8.0, Available: true},
		{ID: "ing-gone", Name: "Alcachofra", AdditionalPrice: 5.0, Available: false},
	}
	for i := range ingredients {
		require.NoError(t, db.Create(&ingredients[i]).Error)
	}
}

func TestGetMenuOrdersCategoriesAndHidesUnavailable(t *testing.T) {
	db := setupTestDB(t)
	seedMenu(t, db)
	menu := NewMenuService(db)

	categories, err := menu.GetMenu()
	require.NoError(t, err)
	require.Len(t, categories, 2)

	assert.Equal(t, "Tradicionais", categories[0].Name)
	assert.Equal(t, "Doces", categories[1].Name)

	require.Len(t, categories[0].Pizzas, 1)
	assert.Equal(t, "pz-calabresa", categories[0].Pizzas[0].ID)
	require.Len(t, categories[1].Pizzas, 1)
}

func TestGetPizzaByID(t *testing.T) {
	db := setupTestDB(t)
	seedMenu(t, db)
	menu := NewMenuService(db)

	pizza, err := menu.GetPizzaByID("pz-calabresa")
	require.NoError(t, err)
	assert.Equal(t, "Calabresa", pizza.Name)

	price, ok := pizza.PriceForSize(models.SizeMedium)
	assert.True(t, ok)
	assert.Equal(t, 40.0, price)

	_, ok = pizza.PriceForSize(models.SizeExtraLarge)
	assert.False(t, ok)

	_, err = menu.GetPizzaByID("no-such-pizza")
	assert.Error(t, err)
}

func TestGetAvailableIngredients(t *testing.T) {
	db := setupTestDB(t)
	seedMenu(t, db)
	menu := NewMenuService(db)

	ingredients, err := menu.GetAvailableIngredients()
	require.NoError(t, err)
	require.Len(t, ingredients, 1)
	assert.Equal(t, "ing-bacon", ingredients[0].ID)
}
