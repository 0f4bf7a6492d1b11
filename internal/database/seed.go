package database

import (
	"gorm.io/gorm"

	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
)

func f(v float64) *float64 { return &v }

// Seed populates the catalog tables with the initial menu when they are
// empty. Orders, reservations and users are never seeded.
func Seed(db *gorm.DB) error {
	var count int64
	if err := db.Model(&models.Pizza{}).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		log.Info("Database already seeded with initial data")
		return nil
	}

	log.Info("Database is empty, seeding initial data")

	categories := []models.Category{
		{Name: "Tradicionais", Description: "As clássicas que todo mundo ama", SortOrder: 1},
		{Name: "Especiais", Description: "Criações da casa", SortOrder: 2},
		{Name: "Doces", Description: "Para fechar a noite", SortOrder: 3},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			return err
		}
	}

	pizzas := []models.Pizza{
		{
			Name:        "Margherita",
			Description: "Molho de tomate, mussarela e manjericão fresco",
			CategoryID:  categories[0].ID,
			Available:   true,
			PriceSmall:  f(32.90), PriceMedium: f(42.90), PriceLarge: f(52.90), PriceExtraLarge: f(62.90),
		},
		{
			Name:        "Calabresa",
			Description: "Calabresa fatiada, cebola e azeitonas",
			CategoryID:  categories[0].ID,
			Available:   true,
			PriceSmall:  f(34.90), PriceMedium: f(44.90), PriceLarge: f(54.90), PriceExtraLarge: f(64.90),
		},
		{
			Name:        "Quatro Queijos",
			Description: "Mussarela, provolone, gorgonzola e parmesão",
			CategoryID:  categories[1].ID,
			Available:   true,
			PriceMedium: f(49.90), PriceLarge: f(59.90), PriceExtraLarge: f(69.90),
		},
		{
			Name:        "Iedita Especial",
			Description: "Mussarela de búfala, tomate seco, rúcula e parma",
			CategoryID:  categories[1].ID,
			Available:   true,
			PriceLarge:  f(69.90), PriceExtraLarge: f(79.90),
		},
		{
			Name:        "Chocolate com Morango",
			Description: "Chocolate ao leite e morangos frescos",
			CategoryID:  categories[2].ID,
			Available:   true,
			PriceSmall:  f(29.90), PriceMedium: f(39.90),
		},
	}
	for i := range pizzas {
		if err := db.Create(&pizzas[i]).Error; err != nil {
			return err
		}
	}

	ingredients := []models.Ingredient{
		{Name: "Queijo extra", AdditionalPrice: 6.00, Available: true},
		{Name: "Bacon", AdditionalPrice: 7.00, Available: true},
		{Name: "Catupiry", AdditionalPrice: 8.00, Available: true},
		{Name: "Cebola caramelizada", AdditionalPrice: 5.00, Available: true},
		{Name: "Azeitona", AdditionalPrice: 4.00, Available: true},
		{Name: "Borda recheada", AdditionalPrice: 12.00, Available: false},
	}
	for i := range ingredients {
		if err := db.Create(&ingredients[i]).Error; err != nil {
			return err
		}
	}

	log.Info("Database seeded successfully")
	return nil
}
