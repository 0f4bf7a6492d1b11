package services

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
)

func ptr(v float64) *float64 {
	return &v
}

func testReferenceIngredients() []models.Ingredient {
	return []models.Ingredient{
		{ID: "ing-cheddar", Name: "Cheddar extra", AdditionalPrice: 6.0, Available: true},
		{ID: "ing-bacon", Name: "Bacon", AdditionalPrice: 8.0, Available: true},
		{ID: "ing-oregano", Name: "Oregano", AdditionalPrice: 0.0, Available: true},
	}
}

func TestUnitPriceSumsBaseAndIngredients(t *testing.T) {
	pizza := models.Pizza{
		ID:          "pz-1",
		Name:        "Calabresa",
		PriceSmall:  ptr(30.0),
		PriceMedium: ptr(40.0),
		PriceLarge:  ptr(50.0),
	}
	ref := testReferenceIngredients()

	assert.Equal(t, 40.0, UnitPrice(pizza, models.SizeMedium, nil, ref))
	assert.Equal(t, 46.0, UnitPrice(pizza, models.SizeMedium, []string{"ing-cheddar"}, ref))
	assert.Equal(t, 64.0, UnitPrice(pizza, models.SizeLarge, []string{"ing-cheddar", "ing-bacon"}, ref))
}

func TestUnitPriceUnknownIngredientAddsNothing(t *testing.T) {
	pizza := models.Pizza{ID: "pz-1", PriceMedium: ptr(40.0)}
	ref := testReferenceIngredients()

	price := UnitPrice(pizza, models.SizeMedium, []string{"ing-ghost", "ing-cheddar"}, ref)
	assert.Equal(t, 46.0, price)
}

func TestUnitPriceMissingSizeContributesZeroBase(t *testing.T) {
	pizza := models.Pizza{ID: "pz-1", PriceMedium: ptr(40.0)}
	ref := testReferenceIngredients()

	// No small price configured, so only the extras count.
	price := UnitPrice(pizza, models.SizeSmall, []string{"ing-bacon"}, ref)
	assert.Equal(t, 8.0, price)
}

func TestUnitPriceZeroPriceIngredient(t *testing.T) {
	pizza := models.Pizza{ID: "pz-1", PriceMedium: ptr(40.0)}
	ref := testReferenceIngredients()

	assert.Equal(t, 40.0, UnitPrice(pizza, models.SizeMedium, []string{"ing-oregano"}, ref))
}

func TestBuildLineItemMultipliesByQuantity(t *testing.T) {
	pizza := models.Pizza{ID: "pz-1", Name: "Calabresa", PriceLarge: ptr(50.0)}
	ref := testReferenceIngredients()

	item := BuildLineItem(pizza, models.SizeLarge, 3, []string{"ing-bacon"}, nil, "", ref)

	assert.Equal(t, 58.0, item.UnitPrice)
	assert.Equal(t, 174.0, item.TotalPrice)
	assert.Equal(t, 3, item.Quantity)
	assert.Equal(t, "pz-1", item.PizzaID)
	assert.Equal(t, "Calabresa", item.Name)
}

func TestBuildLineItemClampsQuantityToOne(t *testing.T) {
	pizza := models.Pizza{ID: "pz-1", PriceMedium: ptr(40.0)}

	for _, quantity := range []int{0, -1, -42} {
		item := BuildLineItem(pizza, models.SizeMedium, quantity, nil, nil, "", nil)
		assert.Equal(t, 1, item.Quantity)
		assert.Equal(t, item.UnitPrice, item.TotalPrice)
	}
}

func TestBuildLineItemRemovedIngredientsAreNotPriced(t *testing.T) {
	pizza := models.Pizza{ID: "pz-1", PriceMedium: ptr(40.0)}
	ref := testReferenceIngredients()

	with := BuildLineItem(pizza, models.SizeMedium, 1, nil, []string{"ing-cheddar", "ing-bacon"}, "", ref)
	without := BuildLineItem(pizza, models.SizeMedium, 1, nil, nil, "", ref)

	assert.Equal(t, without.UnitPrice, with.UnitPrice)
	assert.Equal(t, []string{"ing-cheddar", "ing-bacon"}, with.RemovedIngredients)
}
