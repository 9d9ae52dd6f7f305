// File: /routes/routes.go
package routes

import (
	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
	"wanderspot-api/config"
	"wanderspot-api/controllers"
	"wanderspot-api/middleware"
	"wanderspot-api/realtime"
	"wanderspot-api/repositories"
	"wanderspot-api/services"
)

func SetupCORS() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}

func SetupRoutes(r *gin.Engine, db *gorm.DB, cfg *config.Config, deps *Dependencies) {
	r.Use(middleware.SecurityHeaders())

	// Repositories
	savedItemRepo := repositories.NewSavedItemRepository(db)
	chatRepo := repositories.NewChatRepository(db)

	// Controllers
	authController := controllers.NewAuthController(db, cfg.JWTSecret, deps.EmailService)
	userController := controllers.NewUserController(db)
	postController := controllers.NewPostController(db, deps.StorageService, deps.Hub)
	placeController := controllers.NewPlaceController(db)
	savedItemController := controllers.NewSavedItemController(savedItemRepo)
	chatController := controllers.NewChatController(chatRepo, deps.GenerationService)
	itineraryController := controllers.NewItineraryController(deps.GenerationService)
	mapController := controllers.NewMapController(db)
	geocodeController := controllers.NewGeocodeController(deps.GeocodingService)
	preferenceController := controllers.NewPreferenceController(db)

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"message": "pong",
			"status":  "healthy",
		})
	})

	// Realtime posts channel
	r.GET("/ws/posts", func(c *gin.Context) {
		realtime.ServeWS(deps.Hub, c.Writer, c.Request)
	})

	// API version 1
	v1 := r.Group("/api/v1")

	// Auth routes (public)
	auth := v1.Group("/auth")
	{
		auth.POST("/login", authController.Login)
		auth.POST("/register", authController.Register)
		auth.POST("/logout", authController.Logout)
		auth.POST("/send-verification", authController.SendVerification)
		auth.POST("/verify-code", authController.VerifyCode)
	}

	// Protected routes. The limiter runs before auth so unauthenticated
	// floods are throttled too.
	protected := v1.Group("/")
	protected.Use(middleware.RateLimit(60, 10))
	protected.Use(middleware.AuthMiddleware(cfg.JWTSecret))
	{
		// User routes
		users := protected.Group("/users")
		{
			users.GET("/profile", userController.GetProfile)
			users.PUT("/profile", userController.UpdateProfile)
		}

		// Post routes
		posts := protected.Group("/posts")
		{
			posts.GET("/", postController.GetPosts)
			posts.POST("/", postController.CreatePost)
			posts.POST("/upload", postController.UploadMedia)
			posts.GET("/:id", postController.GetPost)
			posts.DELETE("/:id", postController.DeletePost)
		}

		// Place routes
		places := protected.Group("/places")
		{
			places.GET("/", placeController.GetPlaces)
			places.GET("/:id", placeController.GetPlace)
		}

		// Saved item routes
		saved := protected.Group("/saved")
		{
			saved.GET("/", savedItemController.GetSavedItems)
			saved.POST("/", savedItemController.SaveItem)
			saved.DELETE("/", savedItemController.RemoveItem)
			saved.POST("/toggle", savedItemController.ToggleItem)
		}

		// Chat routes
		chat := protected.Group("/chat")
		{
			chat.GET("/messages", chatController.GetMessages)
			chat.POST("/messages", chatController.SendMessage)
			chat.DELETE("/messages", chatController.ClearChat)
		}

		// Itinerary routes
		itinerary := protected.Group("/itinerary")
		{
			itinerary.POST("/generate", itineraryController.GenerateItinerary)
		}

		// Map routes
		mapGroup := protected.Group("/map")
		{
			mapGroup.GET("/markers", mapController.GetMarkers)
			mapGroup.GET("/directions", mapController.GetDirections)
		}

		// Geocoding routes
		geocode := protected.Group("/geocode")
		{
			geocode.GET("/reverse", geocodeController.ReverseGeocode)
		}

		// Preference routes
		preferences := protected.Group("/preferences")
		{
			preferences.GET("/", preferenceController.GetPreferences)
			preferences.PUT("/", preferenceController.UpdatePreferences)
			preferences.POST("/interests", preferenceController.AddInterest)
			preferences.DELETE("/interests", preferenceController.RemoveInterest)
			preferences.POST("/cities", preferenceController.AddPreferredCity)
			preferences.DELETE("/cities", preferenceController.RemovePreferredCity)
		}
	}
}

// Dependencies carries the service handles built in main. Keeping them
// explicit keeps the core logic testable with substitutable fakes.
type Dependencies struct {
	EmailService      *services.EmailService
	StorageService    *services.StorageService
	GenerationService *services.GenerationService
	GeocodingService  *services.GeocodingService
	Hub               *realtime.Hub
}
