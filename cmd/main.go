package main

import (
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	log "github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	_ "github.com/Lizandro-reis/pizzaria-iedita-app/docs" // Import generated docs
	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/auth"
	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/config"
	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/controllers"
	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/database"
	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/middleware"
	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/models"
	"github.com/Lizandro-reis/pizzaria-iedita-app/internal/services"
)

var (
	db            *gorm.DB
	configuration *config.Config

	menuController        controllers.MenuController
	cartController        *controllers.CartController
	orderController       *controllers.OrderController
	reservationController *controllers.ReservationController
	authController        *controllers.AuthController
	clientController      *controllers.ClientController
	oauthService          *auth.OAuthService
)

// @title Pizzaria Iedita API
// @version 1.0
// @description Ordering, cart and table reservation API for Pizzaria Iedita
// @host localhost:8080
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and JWT token.
func main() {
	// Load environment variables
	loadDotenvFile()

	// Initialize logger
	setUpLogger()

	// Load configuration
	configuration = loadConfig()

	// Initialize database connection
	setupDatabase(configuration)

	// Initialize services and controllers
	setupServices(configuration)

	// Initialize Gin router
	var router *gin.Engine = setupRouter()

	// Start the server
	log.Infof("Starting server on %s:%d", configuration.Host, configuration.Port)
	router.Run(fmt.Sprintf("%v:%d", configuration.Host, configuration.Port))
}

// checkPanicErr checks if an error occurred and panics if it did
func checkPanicErr(err error) {
	if err != nil {
		panic(err)
	}
}

// loadDotenvFile loads environment variables from a .env file
// If the file is not found, it will log a warning and use system environment variables
func loadDotenvFile() {
	if err := godotenv.Load(); err != nil {
		log.Warn("No .env file found, using system environment variables")
	}
}

// setUpLogger initializes the logger with a JSON formatter and sets the log level based on the environment
func setUpLogger() {
	log.SetFormatter(&log.JSONFormatter{})
	environment := config.GetEnvWithDefault("APP_ENV", "development")
	switch environment {
	case "development":
		log.SetLevel(log.DebugLevel)
	case "production":
		log.SetLevel(log.ErrorLevel)
	default:
		log.SetLevel(log.InfoLevel)
	}
}

// loadConfig loads the application configuration from environment variables
// It returns a Config struct or panics if there is an error
func loadConfig() *config.Config {
	conf, err := config.LoadConfig()
	checkPanicErr(err)
	return conf
}

// setupDatabase initializes the database connection, migrates the schema and
// seeds the menu when it is empty
func setupDatabase(conf *config.Config) {
	var err error
	db, err = database.InitDatabase(database.Config{
		Driver:   conf.DBDriver,
		Host:     conf.DBHost,
		Port:     conf.DBPort,
		User:     conf.DBUser,
		Password: conf.DBPassword,
		Name:     conf.DBName,
		SSLMode:  conf.DBSSLMode,
		Path:     conf.SQLitePath,
	})
	checkPanicErr(err)

	err = db.AutoMigrate(
		&models.Category{},
		&models.Pizza{},
		&models.Ingredient{},
		&models.User{},
		&models.Profile{},
		&models.Order{},
		&models.OrderLine{},
		&models.Reservation{},
		&models.OAuthClient{},
		&models.OAuthToken{},
		&services.CartRecord{},
	)
	checkPanicErr(err)

	checkPanicErr(database.Seed(db))
}

// setupServices wires the service layer and the controllers
func setupServices(conf *config.Config) {
	menuService := services.NewMenuService(db)
	cartService := services.NewCartService(services.NewGormCartStore(db))
	orderService := services.NewOrderService(db, cartService)
	reservationService := services.NewReservationService(db)
	userService := services.NewUserService(db)
	clientService := services.NewClientService(db)

	menuController = controllers.NewMenuController(menuService)
	cartController = controllers.NewCartController(cartService, menuService)
	orderController = controllers.NewOrderController(orderService)
	reservationController = controllers.NewReservationController(reservationService)
	authController = controllers.NewAuthController(userService, conf.JWTSecret)
	clientController = controllers.NewClientController(clientService)
	oauthService = auth.NewOAuthService(db, conf.JWTSecret)
}

// setupRouter initializes the Gin router and sets up the routes
// It returns the configured router
func setupRouter() *gin.Engine {
	router := gin.Default()

	setupRoutes(router)

	return router
}

// setupRoutes defines the routes for the Gin router
func setupRoutes(router *gin.Engine) {
	// Health check endpoint
	router.GET("/health", healthCheckHandler)

	// Token endpoint for integration clients (fulfillment systems)
	router.POST("/oauth/token", oauthService.HandleToken)

	v1 := router.Group("/api/v1")
	{
		// Authentication routes
		authApi := v1.Group("/auth")
		{
			authApi.POST("/register", authController.Register)
			authApi.POST("/login", authController.Login)
		}

		// Public menu routes
		publicApi := v1.Group("/public")
		{
			publicApi.GET("/menu", menuController.GetMenu)
			publicApi.GET("/pizzas/:id", menuController.GetPizzaByID)
		}

		// Protected routes (requires JWT authentication)
		protectedApi := v1.Group("")
		protectedApi.Use(middleware.JWTAuth([]byte(configuration.JWTSecret)))
		{
			protectedApi.GET("/me", authController.Me)
			protectedApi.GET("/me/profile", authController.GetProfile)
			protectedApi.PUT("/me/profile", authController.UpdateProfile)

			protectedApi.GET("/cart", cartController.GetCart)
			protectedApi.POST("/cart/items", cartController.AddItem)
			protectedApi.DELETE("/cart/items/:index", cartController.RemoveItem)
			protectedApi.DELETE("/cart", cartController.ClearCart)

			protectedApi.POST("/checkout", orderController.Checkout)
			protectedApi.GET("/orders", orderController.ListOrders)
			protectedApi.GET("/orders/:id", orderController.GetOrder)

			protectedApi.POST("/reservations", reservationController.CreateReservation)
			protectedApi.GET("/reservations", reservationController.ListReservations)

			// Staff-only fulfillment surface
			staffApi := protectedApi.Group("/staff")
			staffApi.Use(middleware.RequireRole("staff", "admin"))
			{
				staffApi.PATCH("/orders/:id/status", orderController.UpdateOrderStatus)
				staffApi.PATCH("/reservations/:id/status", reservationController.UpdateReservationStatus)

				staffApi.POST("/clients", clientController.CreateClient)
				staffApi.GET("/clients", clientController.ListClients)
				staffApi.DELETE("/clients/:id", clientController.DeleteClient)
			}
		}
	}

	// Swagger documentation
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// healthCheckHandler handles the health check endpoint
// @Summary Health check
// @Description Check if the service is running
// @Tags health
// @Accept json
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheckHandler(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":    "healthy",
		"timestamp": time.Now().UTC().Format(time.RFC3339),
		"service":   "pizzaria-iedita-app",
	})
}
