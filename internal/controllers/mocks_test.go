package controllers

import (
	"context"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/stretchr/testify/mock"
)

type mockPizzaService struct {
	mock.Mock
}

func (m *mockPizzaService) GetAllPizzas(ctx context.Context) ([]models.PizzaSummary, error) {
	args := m.Called(ctx)
	pizzas, _ := args.Get(0).([]models.PizzaSummary)
	return pizzas, args.Error(1)
}

func (m *mockPizzaService) GetPizzaByID(ctx context.Context, id int) (models.Pizza, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.Pizza), args.Error(1)
}

type mockRestaurantService struct {
	mock.Mock
}

func (m *mockRestaurantService) GetAllRestaurants(ctx context.Context) ([]models.RestaurantSummary, error) {
	args := m.Called(ctx)
	restaurants, _ := args.Get(0).([]models.RestaurantSummary)
	return restaurants, args.Error(1)
}

func (m *mockRestaurantService) GetRestaurantByID(ctx context.Context, id int) (models.RestaurantDetail, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(models.RestaurantDetail), args.Error(1)
}

func (m *mockRestaurantService) DeleteRestaurant(ctx context.Context, id int) error {
	return m.Called(ctx, id).Error(0)
}

type mockRestaurantPizzaService struct {
	mock.Mock
}

func (m *mockRestaurantPizzaService) CreateRestaurantPizza(ctx context.Context, req models.CreateRestaurantPizzaRequest) (models.RestaurantPizzaCreated, error) {
	args := m.Called(ctx, req)
	return args.Get(0).(models.RestaurantPizzaCreated), args.Error(1)
}
