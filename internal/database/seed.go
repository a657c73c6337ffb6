package database

import (
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"gorm.io/gorm"
)

// SeedRestaurants is the initial restaurant data
var SeedRestaurants = []models.Restaurant{
	{Name: "Karen's Pizza Shack", Address: "address1"},
	{Name: "Sanjay's Pizza", Address: "address2"},
	{Name: "Kiki's Pizza", Address: "address3"},
}

// SeedPizzas is the initial pizza data
var SeedPizzas = []models.Pizza{
	{Name: "Emma", Ingredients: "Dough, Tomato Sauce, Cheese"},
	{Name: "Geri", Ingredients: "Dough, Tomato Sauce, Cheese, Pepperoni"},
	{Name: "Melanie", Ingredients: "Dough, Sauce, Ricotta, Red peppers, Mustard"},
}

// Seed inserts the initial restaurants and pizzas when both tables are empty.
// It reports whether anything was inserted.
func Seed(db *gorm.DB) (bool, error) {
	var restaurants, pizzas int64
	if err := db.Model(&models.Restaurant{}).Count(&restaurants).Error; err != nil {
		return false, err
	}
	if err := db.Model(&models.Pizza{}).Count(&pizzas).Error; err != nil {
		return false, err
	}
	if restaurants > 0 || pizzas > 0 {
		log.Info("Database already seeded with initial data")
		return false, nil
	}
	if err := insertSeedData(db); err != nil {
		return false, err
	}
	return true, nil
}

// Reseed wipes every table and inserts the initial data again
func Reseed(db *gorm.DB) error {
	return db.Transaction(func(tx *gorm.DB) error {
		for _, model := range []any{&models.RestaurantPizza{}, &models.Restaurant{}, &models.Pizza{}} {
			if err := tx.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(model).Error; err != nil {
				return err
			}
		}
		return insertSeedData(tx)
	})
}

func insertSeedData(db *gorm.DB) error {
	log.Info("Seeding database with initial data")
	return db.Transaction(func(tx *gorm.DB) error {
		// copies keep the package level slices free of generated ids
		restaurants := append([]models.Restaurant(nil), SeedRestaurants...)
		if err := tx.Create(&restaurants).Error; err != nil {
			return fmt.Errorf("seed restaurants: %w", err)
		}
		pizzas := append([]models.Pizza(nil), SeedPizzas...)
		if err := tx.Create(&pizzas).Error; err != nil {
			return fmt.Errorf("seed pizzas: %w", err)
		}
		log.WithField("restaurants", len(restaurants)).WithField("pizzas", len(pizzas)).Info("Database seeded successfully")
		return nil
	})
}
