package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Ingredient is an optional add-on offered by the customizer.
// Only available ingredients are shown; unavailable ones stay in the
// table for old order lines that reference them.
type Ingredient struct {
	ID              string    `gorm:"primaryKey" json:"id"`
	Name            string    `gorm:"column:nome;not null" json:"name"`
	AdditionalPrice float64   `gorm:"column:preco_adicional" json:"additional_price"`
	Available       bool      `gorm:"column:disponivel;default:true" json:"available"`
	CreatedAt       time.Time `json:"-"`
	UpdatedAt       time.Time `json:"-"`
}

func (Ingredient) TableName() string {
	return "ingredientes"
}

func (i *Ingredient) BeforeCreate(tx *gorm.DB) error {
	if i.ID == "" {
		i.ID = uuid.New().String()
	}
	return nil
}
