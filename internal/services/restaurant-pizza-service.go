package services

import (
	"context"
	"fmt"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantPizzaService creates associations between restaurants and pizzas
type RestaurantPizzaService interface {
	// CreateRestaurantPizza validates the request and inserts a new restaurant_pizza.
	// Checks run in order: required fields, pizza, restaurant, price.
	CreateRestaurantPizza(ctx context.Context, req models.CreateRestaurantPizzaRequest) (models.RestaurantPizzaCreated, error)
}

type restaurantPizzaService struct {
	db       *gorm.DB
	validate *validator.Validate
}

// NewRestaurantPizzaService creates a new instance of RestaurantPizzaService
func NewRestaurantPizzaService(db *gorm.DB) RestaurantPizzaService {
	return &restaurantPizzaService{db: db, validate: validator.New()}
}

var priceRule = fmt.Sprintf("min=%d,max=%d", models.MinPrice, models.MaxPrice)

func (s *restaurantPizzaService) CreateRestaurantPizza(ctx context.Context, req models.CreateRestaurantPizzaRequest) (models.RestaurantPizzaCreated, error) {
	if isBlank(req.Price) || isBlank(req.PizzaID) || isBlank(req.RestaurantID) {
		return models.RestaurantPizzaCreated{}, ErrValidation
	}

	db := s.db.WithContext(ctx)

	pizzaID, ok := coerceID(req.PizzaID)
	if !ok {
		return models.RestaurantPizzaCreated{}, ErrPizzaNotFound
	}
	pizza, err := findPizza(db, pizzaID)
	if err != nil {
		return models.RestaurantPizzaCreated{}, err
	}

	restaurantID, ok := coerceID(req.RestaurantID)
	if !ok {
		return models.RestaurantPizzaCreated{}, ErrRestaurantNotFound
	}
	restaurant, err := findRestaurant(db, restaurantID)
	if err != nil {
		return models.RestaurantPizzaCreated{}, err
	}

	price, err := s.validatePrice(req.Price)
	if err != nil {
		log.WithError(err).WithField("price", req.Price).Debug("Rejected restaurant pizza price")
		return models.RestaurantPizzaCreated{}, ErrValidation
	}

	row := models.RestaurantPizza{
		Price:        price,
		PizzaID:      pizza.ID,
		RestaurantID: restaurant.ID,
	}
	err = db.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&row).Error
	})
	if err != nil {
		log.WithError(err).WithFields(logrus.Fields{
			"pizza_id":      pizza.ID,
			"restaurant_id": restaurant.ID,
		}).Error("Failed to create restaurant pizza")
		return models.RestaurantPizzaCreated{}, newStorageError("create restaurant pizza", err)
	}

	return models.RestaurantPizzaCreated{
		ID:           row.ID,
		Pizza:        pizza.Summary(),
		PizzaID:      row.PizzaID,
		Price:        row.Price,
		Restaurant:   restaurant.Summary(),
		RestaurantID: row.RestaurantID,
	}, nil
}

func (s *restaurantPizzaService) validatePrice(raw any) (int, error) {
	price, err := coerceInt(raw)
	if err != nil {
		return 0, err
	}
	if err := s.validate.Var(price, priceRule); err != nil {
		return 0, err
	}
	return price, nil
}
