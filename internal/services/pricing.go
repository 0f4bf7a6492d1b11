package services

import (
	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
)

// UnitPrice computes the price of one customized pizza: the size price plus
// the additional price of every selected ingredient found in the reference
// list. Selected ids missing from the list contribute zero, as does a size
// the pizza has no configured price for. Pure function, no side effects.
func UnitPrice(pizza models.Pizza, size models.PizzaSize, addedIngredients []string, reference []models.Ingredient) float64 {
	base, _ := pizza.PriceForSize(size)

	byID := make(map[string]float64, len(reference))
	for _, ing := range reference {
		byID[ing.ID] = ing.AdditionalPrice
	}

	extras := 0.0
	for _, id := range addedIngredients {
		extras += byID[id] // unknown ids add 0, silent skip
	}

	return base + extras
}

// BuildLineItem assembles a cart line item for the given customization,
// clamping the quantity to a minimum of one before pricing.
func BuildLineItem(pizza models.Pizza, size models.PizzaSize, quantity int, added, removed []string, notes string, reference []models.Ingredient) models.CartLineItem {
	if quantity < 1 {
		quantity = 1
	}

	unit := UnitPrice(pizza, size, added, reference)

	return models.CartLineItem{
		PizzaID:            pizza.ID,
		Name:               pizza.Name,
		Size:               size,
		Quantity:           quantity,
		AddedIngredients:   added,
		RemovedIngredients: removed,
		Notes:              notes,
		UnitPrice:          unit,
		TotalPrice:         unit * float64(quantity),
	}
}
