package server

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/franciscosanchezn/gin-restaurant-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/database"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/models"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testConfig() *config.Config {
	return &config.Config{
		Environment:        "test",
		Host:               "localhost",
		Port:               5555,
		MetricsEnabled:     true,
		CORSAllowedOrigins: []string{"*"},
	}
}

func setupTestServer(t *testing.T) (*gin.Engine, *gorm.DB) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	db, err := database.OpenInMemory()
	require.NoError(t, err)
	_, err = database.Seed(db)
	require.NoError(t, err)
	t.Cleanup(func() {
		if sqlDB, err := db.DB(); err == nil {
			sqlDB.Close()
		}
	})

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	return NewRouter(testConfig(), db, logger), db
}

func perform(router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		payload, _ := json.Marshal(body)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var v T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &v), w.Body.String())
	return v
}

func countAssociations(t *testing.T, db *gorm.DB, restaurantID int) int64 {
	t.Helper()
	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Where("restaurant_id = ?", restaurantID).Count(&count).Error)
	return count
}

func TestListRestaurantsHasExactFields(t *testing.T) {
	router, _ := setupTestServer(t)

	w := perform(router, http.MethodGet, "/restaurants", nil)
	require.Equal(t, http.StatusOK, w.Code)

	restaurants := decode[[]map[string]any](t, w)
	require.Len(t, restaurants, len(database.SeedRestaurants))
	for i, restaurant := range restaurants {
		assert.Len(t, restaurant, 3)
		assert.Equal(t, float64(i+1), restaurant["id"])
		assert.Equal(t, database.SeedRestaurants[i].Name, restaurant["name"])
		assert.Equal(t, database.SeedRestaurants[i].Address, restaurant["address"])
	}
}

func TestListPizzas(t *testing.T) {
	router, _ := setupTestServer(t)

	w := perform(router, http.MethodGet, "/pizzas", nil)
	require.Equal(t, http.StatusOK, w.Code)

	pizzas := decode[[]map[string]any](t, w)
	require.Len(t, pizzas, len(database.SeedPizzas))
	for i, pizza := range pizzas {
		assert.Len(t, pizza, 3)
		assert.Equal(t, database.SeedPizzas[i].Name, pizza["name"])
		assert.Equal(t, database.SeedPizzas[i].Ingredients, pizza["ingredients"])
	}
}

func TestGetMissingRestaurant(t *testing.T) {
	router, _ := setupTestServer(t)

	for _, id := range []string{"999", "0", "-1", "pizza"} {
		w := perform(router, http.MethodGet, "/restaurants/"+id, nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.JSONEq(t, `{"error":"Restaurant not found"}`, w.Body.String())
	}
}

func TestCreateRestaurantPizza(t *testing.T) {
	router, _ := setupTestServer(t)

	w := perform(router, http.MethodPost, "/restaurant_pizzas", map[string]any{"price": 15, "pizza_id": 1, "restaurant_id": 1})
	require.Equal(t, http.StatusCreated, w.Code)

	created := decode[map[string]any](t, w)
	assert.NotZero(t, created["id"])
	assert.Equal(t, float64(15), created["price"])
	assert.Equal(t, float64(1), created["pizza_id"])
	assert.Equal(t, float64(1), created["restaurant_id"])
	assert.Equal(t, map[string]any{
		"id": float64(1), "name": database.SeedPizzas[0].Name, "ingredients": database.SeedPizzas[0].Ingredients,
	}, created["pizza"])
	assert.Equal(t, map[string]any{
		"id": float64(1), "name": database.SeedRestaurants[0].Name, "address": database.SeedRestaurants[0].Address,
	}, created["restaurant"])
}

func TestCreateRestaurantPizzaValidation(t *testing.T) {
	testCases := []struct {
		name         string
		body         any
		expectedCode int
		expectedBody string
	}{
		{"zero price", map[string]any{"price": 0, "pizza_id": 1, "restaurant_id": 1}, http.StatusBadRequest, `{"errors":["validation errors"]}`},
		{"price above range", map[string]any{"price": 31, "pizza_id": 1, "restaurant_id": 1}, http.StatusBadRequest, `{"errors":["validation errors"]}`},
		{"non numeric price", map[string]any{"price": "abc", "pizza_id": 1, "restaurant_id": 1}, http.StatusBadRequest, `{"errors":["validation errors"]}`},
		{"missing price", map[string]any{"pizza_id": 1, "restaurant_id": 1}, http.StatusBadRequest, `{"errors":["validation errors"]}`},
		{"zero pizza id", map[string]any{"price": 5, "pizza_id": 0, "restaurant_id": 1}, http.StatusBadRequest, `{"errors":["validation errors"]}`},
		{"zero restaurant id", map[string]any{"price": 5, "pizza_id": 1, "restaurant_id": 0}, http.StatusBadRequest, `{"errors":["validation errors"]}`},
		{"empty body", map[string]any{}, http.StatusBadRequest, `{"errors":["validation errors"]}`},
		{"unknown pizza", map[string]any{"price": 5, "pizza_id": 999, "restaurant_id": 1}, http.StatusNotFound, `{"errors":["Pizza not found"]}`},
		{"unknown restaurant", map[string]any{"price": 5, "pizza_id": 1, "restaurant_id": 999}, http.StatusNotFound, `{"errors":["Restaurant not found"]}`},
	}

	router, db := setupTestServer(t)
	for _, tt := range testCases {
		t.Run(tt.name, func(t *testing.T) {
			w := perform(router, http.MethodPost, "/restaurant_pizzas", tt.body)
			assert.Equal(t, tt.expectedCode, w.Code)
			assert.JSONEq(t, tt.expectedBody, w.Body.String())
		})
	}

	var count int64
	require.NoError(t, db.Model(&models.RestaurantPizza{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCreateRestaurantPizzaStorageFailure(t *testing.T) {
	router, db := setupTestServer(t)
	err := db.Callback().Create().Before("gorm:create").Register("test:fail_create", func(tx *gorm.DB) {
		tx.AddError(errors.New("disk I/O error"))
	})
	require.NoError(t, err)

	w := perform(router, http.MethodPost, "/restaurant_pizzas", map[string]any{"price": 15, "pizza_id": 1, "restaurant_id": 1})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.JSONEq(t, `{"errors":["disk I/O error"]}`, w.Body.String())
	assert.Zero(t, countAssociations(t, db, 1))
}

func TestSequentialCreatesAreRetrievable(t *testing.T) {
	router, _ := setupTestServer(t)

	var ids []float64
	for _, price := range []int{10, 20} {
		w := perform(router, http.MethodPost, "/restaurant_pizzas", map[string]any{"price": price, "pizza_id": 2, "restaurant_id": 3})
		require.Equal(t, http.StatusCreated, w.Code)
		ids = append(ids, decode[map[string]any](t, w)["id"].(float64))
	}
	assert.NotEqual(t, ids[0], ids[1])

	w := perform(router, http.MethodGet, "/restaurants/3", nil)
	require.Equal(t, http.StatusOK, w.Code)
	detail := decode[models.RestaurantDetail](t, w)

	require.Len(t, detail.RestaurantPizzas, 2)
	for i, item := range detail.RestaurantPizzas {
		assert.Equal(t, int(ids[i]), item.ID)
		assert.Equal(t, 2, item.PizzaID)
		assert.Equal(t, 3, item.RestaurantID)
		assert.Equal(t, database.SeedPizzas[1].Name, item.Pizza.Name)
	}
	assert.Equal(t, 10, detail.RestaurantPizzas[0].Price)
	assert.Equal(t, 20, detail.RestaurantPizzas[1].Price)
}

func TestDeleteRestaurantCascades(t *testing.T) {
	router, db := setupTestServer(t)

	for _, body := range []map[string]any{
		{"price": 5, "pizza_id": 1, "restaurant_id": 1},
		{"price": 6, "pizza_id": 2, "restaurant_id": 1},
		{"price": 7, "pizza_id": 1, "restaurant_id": 2},
	} {
		require.Equal(t, http.StatusCreated, perform(router, http.MethodPost, "/restaurant_pizzas", body).Code)
	}

	before := decode[models.RestaurantDetail](t, perform(router, http.MethodGet, "/restaurants/1", nil))
	assert.Len(t, before.RestaurantPizzas, 2)

	w := perform(router, http.MethodDelete, "/restaurants/1", nil)
	assert.Equal(t, http.StatusNoContent, w.Code)
	assert.Empty(t, w.Body.String())

	w = perform(router, http.MethodGet, "/restaurants/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Restaurant not found"}`, w.Body.String())

	assert.Zero(t, countAssociations(t, db, 1))
	assert.Equal(t, int64(1), countAssociations(t, db, 2))

	w = perform(router, http.MethodDelete, "/restaurants/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.JSONEq(t, `{"error":"Restaurant not found"}`, w.Body.String())

	restaurants := decode[[]models.RestaurantSummary](t, perform(router, http.MethodGet, "/restaurants", nil))
	assert.Len(t, restaurants, len(database.SeedRestaurants)-1)
}

func TestOperationalEndpoints(t *testing.T) {
	router, _ := setupTestServer(t)

	w := perform(router, http.MethodGet, "/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Header().Get("Content-Type"), "text/html")

	w = perform(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	health := decode[map[string]any](t, w)
	assert.Equal(t, "healthy", health["status"])
	assert.Equal(t, ServiceName, health["service"])
	assert.NotEmpty(t, w.Header().Get("X-Request-ID"))

	perform(router, http.MethodGet, "/pizzas", nil)
	w = perform(router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), `restaurant_pizza_api_http_requests_total{method="GET",route="/pizzas",status="200"} 1`)

	w = perform(router, http.MethodGet, "/swagger/doc.json", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "/restaurant_pizzas")
}

func TestHealthReportsUnavailableDatabase(t *testing.T) {
	router, db := setupTestServer(t)
	sqlDB, err := db.DB()
	require.NoError(t, err)
	require.NoError(t, sqlDB.Close())

	w := perform(router, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusServiceUnavailable, w.Code)
	assert.Equal(t, "unhealthy", decode[map[string]any](t, w)["status"])
}

func TestMetricsDisabled(t *testing.T) {
	gin.SetMode(gin.TestMode)
	db, err := database.OpenInMemory()
	require.NoError(t, err)

	cfg := testConfig()
	cfg.MetricsEnabled = false
	logger := logrus.New()
	logger.SetOutput(io.Discard)
	router := NewRouter(cfg, db, logger)

	w := perform(router, http.MethodGet, "/metrics", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
