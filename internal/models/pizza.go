package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// PizzaSize identifies one of the four size tiers a pizza can be sold in.
type PizzaSize string

const (
	SizeSmall      PizzaSize = "small"
	SizeMedium     PizzaSize = "medium"
	SizeLarge      PizzaSize = "large"
	SizeExtraLarge PizzaSize = "extra_large"
)

// Pizza represents a sellable menu item with size-tiered pricing.
// A nil price means that size is not offered for this pizza.
// Table and column names keep the original pizzeria schema so the
// staff tooling that queries the database directly keeps working.
type Pizza struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"column:nome;not null" json:"name"`
	Description     string    `gorm:"column:descricao" json:"description"`
	ImageURL        string    `gorm:"column:imagem_url" json:"image_url"`
	CategoryID      string    `gorm:"column:categoria_id;index" json:"category_id"`
	Available       bool      `gorm:"column:disponivel;default:true" json:"available"`
	PriceSmall      *float64  `gorm:"column:preco_pequena" json:"price_small,omitempty"`
	PriceMedium     *float64  `gorm:"column:preco_media" json:"price_medium,omitempty"`
	PriceLarge      *float64  `gorm:"column:preco_grande" json:"price_large,omitempty"`
	PriceExtraLarge *float64  `gorm:"column:preco_gigante" json:"price_extra_large,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"-"`
}

func (Pizza) TableName() string {
	return "pizzas"
}

func (p *Pizza) BeforeCreate(tx *gorm.DB) error {
	if p.ID == "" {
		p.ID = uuid.New().String()
	}
	return nil
}

// PriceForSize returns the configured price for the given size and whether
// that size is offered at all.
func (p *Pizza) PriceForSize(size PizzaSize) (float64, bool) {
	var price *float64
	switch size {
	case SizeSmall:
		price = p.PriceSmall
	case SizeMedium:
		price = p.PriceMedium
	case SizeLarge:
		price = p.PriceLarge
	case SizeExtraLarge:
		price = p.PriceExtraLarge
	}
	if price == nil {
		return 0, false
	}
	return *price, true
}

// Category groups pizzas on the menu. The menu lists categories ascending by SortOrder.
type Category struct {
	ID          string    `gorm:"primaryKey" json:"id"`
	Name        string    `gorm:"column:nome;not null" json:"name"`
	Description string    `gorm:"column:descricao" json:"description"`
	SortOrder   int       `gorm:"column:ordem" json:"sort_order"`
	Pizzas      []Pizza   `gorm:"foreignKey:CategoryID" json:"pizzas,omitempty"`
	CreatedAt   time.Time `json:"-"`
	UpdatedAt   time.Time `json:"-"`
}

func (Category) TableName() string {
	return "categorias"
}

func (c *Category) BeforeCreate(tx *gorm.DB) error {
	if c.ID == "" {
		c.ID = uuid.New().String()
	}
	return nil
}
