package services

import (
	"context"
	"errors"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// RestaurantService provides methods to interact with restaurants and their pizzas
type RestaurantService interface {
	// GetAllRestaurants retrieves every restaurant without its pizzas
	GetAllRestaurants(ctx context.Context) ([]models.RestaurantSummary, error)
	// GetRestaurantByID retrieves a restaurant with its restaurant_pizzas
	GetRestaurantByID(ctx context.Context, id int) (models.RestaurantDetail, error)
	// DeleteRestaurant deletes a restaurant and every restaurant_pizza referencing it
	DeleteRestaurant(ctx context.Context, id int) error
}

type restaurantService struct {
	db *gorm.DB
}

// NewRestaurantService creates a new instance of RestaurantService
func NewRestaurantService(db *gorm.DB) RestaurantService {
	return &restaurantService{db: db}
}

// restaurantPizzaRow is one row of the restaurant_pizzas/pizzas join
type restaurantPizzaRow struct {
	ID               int
	Price            int
	PizzaID          int
	RestaurantID     int
	PizzaName        string
	PizzaIngredients string
}

func (s *restaurantService) GetAllRestaurants(ctx context.Context) ([]models.RestaurantSummary, error) {
	var restaurants []models.Restaurant
	if err := s.db.WithContext(ctx).Order("id").Find(&restaurants).Error; err != nil {
		return nil, err
	}
	summaries := make([]models.RestaurantSummary, 0, len(restaurants))
	for _, restaurant := range restaurants {
		summaries = append(summaries, restaurant.Summary())
	}
	return summaries, nil
}

func (s *restaurantService) GetRestaurantByID(ctx context.Context, id int) (models.RestaurantDetail, error) {
	db := s.db.WithContext(ctx)

	restaurant, err := findRestaurant(db, id)
	if err != nil {
		return models.RestaurantDetail{}, err
	}

	var rows []restaurantPizzaRow
	err = db.Table("restaurant_pizzas").
		Select("restaurant_pizzas.id, restaurant_pizzas.price, restaurant_pizzas.pizza_id, restaurant_pizzas.restaurant_id, " +
			"pizzas.name AS pizza_name, pizzas.ingredients AS pizza_ingredients").
		Joins("JOIN pizzas ON pizzas.id = restaurant_pizzas.pizza_id").
		Where("restaurant_pizzas.restaurant_id = ?", id).
		Order("restaurant_pizzas.id").
		Scan(&rows).Error
	if err != nil {
		return models.RestaurantDetail{}, err
	}

	detail := models.RestaurantDetail{
		ID:               restaurant.ID,
		Name:             restaurant.Name,
		Address:          restaurant.Address,
		RestaurantPizzas: make([]models.RestaurantPizzaItem, 0, len(rows)),
	}
	for _, row := range rows {
		detail.RestaurantPizzas = append(detail.RestaurantPizzas, models.RestaurantPizzaItem{
			ID: row.ID,
			Pizza: models.PizzaSummary{
				ID:          row.PizzaID,
				Name:        row.PizzaName,
				Ingredients: row.PizzaIngredients,
			},
			PizzaID:      row.PizzaID,
			Price:        row.Price,
			RestaurantID: row.RestaurantID,
		})
	}
	return detail, nil
}

func (s *restaurantService) DeleteRestaurant(ctx context.Context, id int) error {
	db := s.db.WithContext(ctx)

	if _, err := findRestaurant(db, id); err != nil {
		return err
	}

	// restaurant_pizzas first so no association outlives its restaurant
	err := db.Transaction(func(tx *gorm.DB) error {
		removed := tx.Where("restaurant_id = ?", id).Delete(&models.RestaurantPizza{})
		if removed.Error != nil {
			return removed.Error
		}
		deleted := tx.Delete(&models.Restaurant{}, id)
		if deleted.Error != nil {
			return deleted.Error
		}
		if deleted.RowsAffected == 0 {
			return ErrRestaurantNotFound
		}
		log.WithFields(logrus.Fields{
			"restaurant_id":             id,
			"restaurant_pizzas_removed": removed.RowsAffected,
		}).Info("Restaurant deleted")
		return nil
	})
	if errors.Is(err, ErrRestaurantNotFound) {
		return err
	}
	return newStorageError("delete restaurant", err)
}

func findRestaurant(db *gorm.DB, id int) (models.Restaurant, error) {
	var restaurant models.Restaurant
	if err := db.Take(&restaurant, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Restaurant{}, ErrRestaurantNotFound
		}
		return models.Restaurant{}, err
	}
	return restaurant, nil
}
