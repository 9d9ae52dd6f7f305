// File: /main.go
package main

import (
	"context"
	"log"
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"wanderspot-api/config"
	"wanderspot-api/database"
	"wanderspot-api/jobs"
	"wanderspot-api/realtime"
	"wanderspot-api/routes"
	"wanderspot-api/services"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize database
	db, err := database.Initialize(cfg.DatabaseURL)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}

	// Run migrations
	if err := database.Migrate(db); err != nil {
		log.Fatal("Failed to migrate database:", err)
	}

	// Seed database with curated places (optional - for development)
	if err := database.SeedData(db); err != nil {
		log.Printf("Warning: Failed to seed database: %v", err)
	}

	logger, err := zap.NewProduction()
	if err != nil {
		log.Fatal("Failed to create logger:", err)
	}
	defer logger.Sync()

	// Services
	emailService := services.NewEmailService(cfg)
	generationService := services.NewGenerationService(cfg.OpenAIKey, cfg.OpenAIModel, cfg.OpenAIMaxTokens, cfg.OpenAITemperature, logger)
	geocodingService := services.NewGeocodingService(cfg.GeocoderURL, logger)

	storageService, err := services.NewStorageService(cfg)
	if err != nil {
		log.Fatal("Failed to create storage service:", err)
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	if err := storageService.EnsureBucket(ctx); err != nil {
		log.Printf("Warning: Could not ensure media bucket: %v", err)
	}
	cancel()

	// Realtime posts channel
	hub := realtime.NewHub()
	go hub.Run()

	// Background cleanup of orphaned saved items
	cleanupJob := jobs.NewSavedItemCleanupJob(db, 6*time.Hour)
	cleanupJob.Start()
	defer cleanupJob.Stop()

	// Set Gin mode based on environment
	if cfg.Port == "8080" { // Development
		gin.SetMode(gin.DebugMode)
	} else {
		gin.SetMode(gin.ReleaseMode)
	}

	// Create router
	router := gin.Default()

	// Setup CORS middleware
	router.Use(routes.SetupCORS())

	// Setup routes
	routes.SetupRoutes(router, db, cfg, &routes.Dependencies{
		EmailService:      emailService,
		StorageService:    storageService,
		GenerationService: generationService,
		GeocodingService:  geocodingService,
		Hub:               hub,
	})

	// Start server
	log.Printf("Starting WanderSpot API server on port %s", cfg.Port)
	log.Printf("Health check available at: http://localhost:%s/ping", cfg.Port)

	if err := router.Run(":" + cfg.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
