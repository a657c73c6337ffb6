package server

import (
	"context"
	"net/http"
	"time"

	_ "github.com/franciscosanchezn/gin-restaurant-api/docs" // Import generated docs
	"github.com/franciscosanchezn/gin-restaurant-api/internal/config"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/controllers"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/middleware"
	"github.com/franciscosanchezn/gin-restaurant-api/internal/services"
	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// ServiceName identifies this API in health checks and metrics
const ServiceName = "restaurant-pizza-api"

const indexPage = "<h1>Restaurant Pizza API</h1>"

// Server bundles the controllers built for one database handle
type Server struct {
	db                        *gorm.DB
	logger                    *logrus.Logger
	metrics                   *middleware.Metrics
	restaurantController      controllers.RestaurantController
	pizzaController           controllers.PizzaController
	restaurantPizzaController controllers.RestaurantPizzaController
}

// New wires services and controllers around db
func New(db *gorm.DB, logger *logrus.Logger) *Server {
	return &Server{
		db:                        db,
		logger:                    logger,
		restaurantController:      controllers.NewRestaurantController(services.NewRestaurantService(db)),
		pizzaController:           controllers.NewPizzaController(services.NewPizzaService(db)),
		restaurantPizzaController: controllers.NewRestaurantPizzaController(services.NewRestaurantPizzaService(db)),
	}
}

// NewRouter builds the gin engine serving every route of the API
func NewRouter(cfg *config.Config, db *gorm.DB, logger *logrus.Logger) *gin.Engine {
	return New(db, logger).Router(cfg)
}

// Router initializes the Gin router and sets up the middleware and routes
func (s *Server) Router(cfg *config.Config) *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(s.logger))
	router.Use(middleware.CORS(cfg.CORSAllowedOrigins))

	if cfg.MetricsEnabled {
		s.metrics = middleware.NewMetrics("restaurant_pizza_api")
		router.Use(s.metrics.Middleware())
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	s.setupRoutes(router)
	return router
}

// setupRoutes defines the routes for the Gin router
func (s *Server) setupRoutes(router *gin.Engine) {
	router.GET("/", indexHandler)
	router.GET("/health", s.healthCheckHandler)

	router.GET("/restaurants", s.restaurantController.GetAllRestaurants)
	router.GET("/restaurants/:id", s.restaurantController.GetRestaurantByID)
	router.DELETE("/restaurants/:id", s.restaurantController.DeleteRestaurant)

	router.GET("/pizzas", s.pizzaController.GetAllPizzas)

	router.POST("/restaurant_pizzas", s.restaurantPizzaController.CreateRestaurantPizza)

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

func indexHandler(c *gin.Context) {
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(indexPage))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service and its database are reachable
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /health [get]
func (s *Server) healthCheckHandler(c *gin.Context) {
	status, code := "healthy", http.StatusOK
	if err := s.pingDatabase(c.Request.Context()); err != nil {
		_ = c.Error(err)
		status, code = "unhealthy", http.StatusServiceUnavailable
	}
	c.JSON(code, gin.H{
		"status":    status,
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   ServiceName,
	})
}

func (s *Server) pingDatabase(ctx context.Context) error {
	sqlDB, err := s.db.DB()
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	return sqlDB.PingContext(ctx)
}
