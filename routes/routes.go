package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/trip-planner/api-go/clients"
	"github.com/trip-planner/api-go/config"
	"github.com/trip-planner/api-go/controllers"
	"github.com/trip-planner/api-go/middleware"
	"gorm.io/gorm"
)

func SetupRoutes(r *gin.Engine, db *gorm.DB) {
	cfg := config.LoadConfig()

	r.Use(middleware.CORS(cfg.AllowedOrigin))

	// Initialize controllers
	authController := controllers.NewAuthController(db)
	tripController := controllers.NewTripController(db,
		clients.NewGeocodingClient(),
		clients.NewWeatherClient(),
		clients.NewPlacesClient(cfg.GeoapifyAPIKey))

	// Public routes
	public := r.Group("/api")
	{
		public.GET("/health", HealthCheck)
		public.POST("/register", authController.Register)
		public.POST("/login", authController.Login)

		SetupTripRoutes(public, tripController)
	}

	// Protected routes
	protected := r.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.GET("/profile", authController.GetProfile)
	}
}

func HealthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{"ok": true, "service": "trip-planner-api"})
}
