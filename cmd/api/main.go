package main

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/jigardalal/siteninja-backend-sub001/internal/ai"
	"github.com/jigardalal/siteninja-backend-sub001/internal/api"
	"github.com/jigardalal/siteninja-backend-sub001/internal/config"
	"github.com/jigardalal/siteninja-backend-sub001/internal/middleware"
	"github.com/jigardalal/siteninja-backend-sub001/internal/repository/postgres"
	"github.com/jigardalal/siteninja-backend-sub001/internal/service"
	"github.com/jigardalal/siteninja-backend-sub001/internal/worker"
	"github.com/jigardalal/siteninja-backend-sub001/pkg/logger"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: .env file not found")
	}

	// Initialize logger
	appLogger := logger.NewLogger(os.Getenv("APP_ENV"))

	cfg, err := config.Load()
	if err != nil {
		appLogger.Fatal("Failed to load config", err)
	}

	dbConnections, err := config.NewDatabaseConnections()
	if err != nil {
		appLogger.Fatal("Failed to connect to database", err)
	}
	defer dbConnections.Close()

	appLogger.Info("Database connections established - writer and reader connected")

	// Initialize Redis
	redisConfig := config.DefaultRedisConfig()
	redisClient, err := redisConfig.GetClient()
	if err != nil {
		appLogger.Fatal("Failed to connect to Redis", err)
	}
	defer redisClient.Close()

	// Initialize the AI suggestion provider client
	aiClient := ai.NewClient(config.DefaultAIConfig())

	repo := postgres.NewPostgresRepository(dbConnections)

	// Initialize services
	auditService := service.NewAuditService(repo, appLogger)
	seoService := service.NewSEOService(repo, auditService)
	apiKeyService := service.NewAPIKeyService(repo, auditService)
	aiSEOService := service.NewAISEOService(repo, aiClient, auditService)

	// Background sweep that deactivates expired API keys
	expiryWorker := worker.NewExpiryWorker(repo, appLogger, time.Hour)
	expiryWorker.Start()
	defer expiryWorker.Stop()

	// Initialize middleware
	authMiddleware := middleware.NewAuthMiddleware(cfg)
	rateLimitMiddleware := middleware.NewRateLimitMiddleware(redisClient, cfg, appLogger)
	validationMiddleware := middleware.NewValidationMiddleware()

	// Initialize server
	server := api.NewServer(
		seoService,
		apiKeyService,
		aiSEOService,
		auditService,
		authMiddleware,
		rateLimitMiddleware,
		validationMiddleware,
		cfg,
	)

	// Initialize router
	router := gin.Default()

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok"})
	})

	// Setup API routes
	apiGroup := router.Group("/api")
	server.SetupRoutes(apiGroup)

	// Start server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", cfg.ServerPort),
		Handler: router,
	}

	// Graceful shutdown
	go func() {
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			appLogger.Fatal("Failed to start server", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	appLogger.Info("Shutting down server...")

	// Shutdown the HTTP server
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(ctx); err != nil {
		appLogger.Fatal("Server forced to shutdown", err)
	}

	appLogger.Info("Server exiting")
	appLogger.Sync()
}
