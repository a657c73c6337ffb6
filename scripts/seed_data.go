package main

import (
	"flag"
	"fmt"
	"log"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/joho/godotenv"
)

func main() {
	// Parse command line flags
	dbURL := flag.String("database-url", "", "Database URL (defaults to DATABASE_URL, DB_URI, then "+config.DefaultDatabaseURL+")")
	force := flag.Bool("force", false, "Delete every restaurant, pizza and restaurant pizza before seeding")
	flag.Parse()

	_ = godotenv.Load()

	url := *dbURL
	if url == "" {
		url = config.GetEnvWithDefault("DATABASE_URL", config.GetEnvWithDefault("DB_URI", config.DefaultDatabaseURL))
	}

	dbConfig, err := database.ParseDatabaseURL(url)
	if err != nil {
		log.Fatal("Invalid database url:", err)
	}
	dbConfig.MaxRetries = 1

	db, err := database.InitDatabase(dbConfig)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	if *force {
		if err := database.Reseed(db); err != nil {
			log.Fatal("Failed to reseed database:", err)
		}
		fmt.Println("Database reseeded")
	} else {
		seeded, err := database.Seed(db)
		if err != nil {
			log.Fatal("Failed to seed database:", err)
		}
		if !seeded {
			fmt.Println("Database already contains data, use -force to reseed")
		}
	}

	var restaurants []models.Restaurant
	if err := db.Order("id").Find(&restaurants).Error; err != nil {
		log.Fatal("Failed to list restaurants:", err)
	}
	var pizzas []models.Pizza
	if err := db.Order("id").Find(&pizzas).Error; err != nil {
		log.Fatal("Failed to list pizzas:", err)
	}

	fmt.Printf("Restaurants (%d):\n", len(restaurants))
	for _, r := range restaurants {
		fmt.Printf("  %d: %s, %s\n", r.ID, r.Name, r.Address)
	}
	fmt.Printf("Pizzas (%d):\n", len(pizzas))
	for _, p := range pizzas {
		fmt.Printf("  %d: %s (%s)\n", p.ID, p.Name, p.Ingredients)
	}
}
