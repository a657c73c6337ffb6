package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"gorm.io/gorm"
)

// PizzaService provides methods to interact with the pizza table
type PizzaService interface {
	// GetAllPizzas retrieves all pizzas from the database
	GetAllPizzas(ctx context.Context) ([]models.PizzaSummary, error)
	// GetPizzaByID retrieves a pizza by its ID
	GetPizzaByID(ctx context.Context, id int) (models.Pizza, error)
}

// pizzaService is the implementation of the PizzaService interface
type pizzaService struct {
	db *gorm.DB
}

// NewPizzaService creates a new instance of PizzaService
func NewPizzaService(db *gorm.DB) PizzaService {
	return &pizzaService{db: db}
}

func (s *pizzaService) GetAllPizzas(ctx context.Context) ([]models.PizzaSummary, error) {
	var pizzas []models.Pizza
	if err := s.db.WithContext(ctx).Order("id").Find(&pizzas).Error; err != nil {
		return nil, err
	}
	summaries := make([]models.PizzaSummary, 0, len(pizzas))
	for _, pizza := range pizzas {
		summaries = append(summaries, pizza.Summary())
	}
	return summaries, nil
}

func (s *pizzaService) GetPizzaByID(ctx context.Context, id int) (models.Pizza, error) {
	return findPizza(s.db.WithContext(ctx), id)
}

func findPizza(db *gorm.DB, id int) (models.Pizza, error) {
	var pizza models.Pizza
	if err := db.Take(&pizza, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Pizza{}, ErrPizzaNotFound
		}
		return models.Pizza{}, err
	}
	return pizza, nil
}
