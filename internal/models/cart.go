package models

// CartLineItem is one customized pizza selection pending purchase.
// Unit and total price are computed when the item is built and carried
// with the item so the cart never needs the catalog to show a total.
// Removed ingredients are recorded for the kitchen but never priced.
type CartLineItem struct {
	PizzaID            string    `json:"pizza_id"`
	Name               string    `json:"name"`
	Size               PizzaSize `json:"size"`
	Quantity           int       `json:"quantity"`
	AddedIngredients   []string  `json:"added_ingredients"`
	RemovedIngredients []string  `json:"removed_ingredients"`
	Notes              string    `json:"notes"`
	UnitPrice          float64   `json:"unit_price"`
	TotalPrice         float64   `json:"total_price"`
}

// Cart is the ordered sequence of line items a user has picked so far.
// Insertion order is significant for display only.
type Cart struct {
	Items []CartLineItem `json:"items"`
}

// Total sums the line totals. An empty cart totals zero.
func (c Cart) Total() float64 {
	var total float64
	for _, item := range c.Items {
		total += item.TotalPrice
	}
	return total
}
