package main

import (
	"context"
	"fmt"
	"log"
	"net/http"

	"bhandara/internal/config"
	"bhandara/internal/handlers"
	"bhandara/internal/middleware"
	"bhandara/internal/repositories/mongodb"
	"bhandara/internal/services"
	"bhandara/pkg/cache"
	"bhandara/pkg/database"
	"bhandara/pkg/geocode"
	"bhandara/pkg/logger"
	"bhandara/routes"

	"github.com/gin-gonic/gin"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	appLogger, err := logger.NewLogger(&logger.Config{
		Level:  logger.LogLevel(cfg.App.LogLevel),
		Format: cfg.App.LogFormat,
		Output: "stdout",
	})
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}

	// Connect to MongoDB
	db, err := database.NewMongoDB(&database.DatabaseConfig{
		URI:            cfg.Database.URI,
		Database:       cfg.Database.Database,
		MaxPoolSize:    cfg.Database.MaxPoolSize,
		MinPoolSize:    cfg.Database.MinPoolSize,
		ConnectTimeout: cfg.Database.ConnectTimeout,
		SocketTimeout:  cfg.Database.SocketTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to MongoDB")
	}
	defer db.Close()

	if err := mongodb.EnsureEventIndexes(context.Background(), db.Database); err != nil {
		appLogger.WithError(err).Fatal("Failed to create event indexes")
	}

	// Connect to Redis
	redisCache, err := cache.NewRedisCache(&cache.RedisConfig{
		Host:         cfg.Redis.Host,
		Port:         cfg.Redis.Port,
		Password:     cfg.Redis.Password,
		DB:           cfg.Redis.DB,
		PoolSize:     cfg.Redis.PoolSize,
		MinIdleConns: cfg.Redis.MinIdleConns,
		DialTimeout:  cfg.Redis.DialTimeout,
		ReadTimeout:  cfg.Redis.ReadTimeout,
		WriteTimeout: cfg.Redis.WriteTimeout,
	})
	if err != nil {
		appLogger.WithError(err).Fatal("Failed to connect to Redis")
	}
	defer redisCache.Close()

	// Optional address geocoding
	var geocoder geocode.Geocoder
	if cfg.Maps.Enabled && cfg.Maps.GoogleAPIKey != "" {
		geocoder, err = geocode.NewGoogleGeocoder(cfg.Maps.GoogleAPIKey)
		if err != nil {
			appLogger.WithError(err).Warn("Failed to initialize geocoder, continuing without it")
			geocoder = nil
		}
	}

	// Wire repositories, services and handlers
	eventRepo := mongodb.NewEventRepository(db.Database)
	cacheService := services.NewCacheService(redisCache)
	eventService := services.NewEventService(eventRepo, cacheService, geocoder, appLogger)
	feedbackService := services.NewFeedbackService(eventRepo, cacheService, appLogger)
	eventHandler := handlers.NewEventHandler(eventService, feedbackService)

	// Initialize Gin router
	if cfg.App.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Global middleware
	router.Use(gin.Logger())
	router.Use(gin.Recovery())
	router.Use(middleware.CORSMiddleware(cfg.Security.CORSAllowedOrigins))
	router.Use(middleware.RequestIDMiddleware())

	// API routes
	v1 := router.Group("/api/v1")
	{
		routes.SetupEventRoutes(v1, eventHandler, cfg.Security)
	}

	// Health check
	router.GET("/health", func(c *gin.Context) {
		if err := db.Ping(); err != nil {
			c.JSON(http.StatusServiceUnavailable, gin.H{"status": "unhealthy"})
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"status":  "healthy",
			"version": cfg.App.Version,
		})
	})

	addr := fmt.Sprintf(":%d", cfg.App.Port)
	appLogger.Infof("Starting server on %s", addr)
	appLogger.Fatal(http.ListenAndServe(addr, router))
}
