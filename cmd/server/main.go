package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/srqtax/tdt/internal/config"
	"github.com/srqtax/tdt/internal/database"
	"github.com/srqtax/tdt/internal/handlers"
	"github.com/srqtax/tdt/internal/logger"
	"github.com/srqtax/tdt/internal/middleware"
	"github.com/srqtax/tdt/internal/repository"
	"github.com/srqtax/tdt/internal/services"
)

const (
	shutdownTimeout = 30 * time.Second
)

func main() {
	// Load configuration from environment variables
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load configuration: %v\n", err)
		os.Exit(1)
	}

	// Initialize structured logger
	log := logger.New(cfg.Server.Env)
	log.Info("Starting TDT API", map[string]interface{}{
		"version":     "0.1.0",
		"environment": cfg.Server.Env,
		"port":        cfg.Server.Port,
	})

	// Create database connection pool
	ctx := context.Background()
	db, err := database.NewPostgresPool(ctx, cfg.Database)
	if err != nil {
		log.Fatal("Failed to connect to database", err, map[string]interface{}{
			"host": cfg.Database.Host,
			"port": cfg.Database.Port,
			"name": cfg.Database.Name,
		})
	}
	defer db.Close()

	log.Info("Database connection established", map[string]interface{}{
		"host":     cfg.Database.Host,
		"port":     cfg.Database.Port,
		"database": cfg.Database.Name,
		"pool_min": cfg.Database.PoolMin,
		"pool_max": cfg.Database.PoolMax,
	})

	// Apply pending schema migrations before serving traffic
	if err := database.Migrate(ctx, db.Pool, log); err != nil {
		log.Fatal("Failed to run migrations", err, nil)
	}

	// Setup Gin router
	if cfg.Server.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}
	router := gin.New()

	// Add middleware in order: RequestID -> Logger -> Recovery -> CORS
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(log))
	router.Use(middleware.Recovery(log))
	router.Use(middleware.CORS(cfg.CORS.Origins))

	// Register health check routes
	healthHandler := handlers.NewHealthHandler(db, cfg.Server.Env)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/api/v1/info", healthHandler.Info)

	// Initialize repository and service layers
	propertyRepo := repository.NewPropertyRepository(db.Pool)
	paymentRepo := repository.NewPaymentRepository(db.Pool)
	dealerRepo := repository.NewDealerRepository(db.Pool)
	statsRepo := repository.NewStatsRepository(db.Pool)
	countyRepo := repository.NewCountyRepository(db.Pool)

	propertyService := services.NewPropertyService(propertyRepo, paymentRepo, log)
	paymentService := services.NewPaymentService(paymentRepo, propertyRepo, log)
	dealerService := services.NewDealerService(dealerRepo, log)
	statsService := services.NewStatsService(statsRepo, log)
	countyService := services.NewCountyService(countyRepo, propertyRepo, log)

	// Initialize handlers
	propertyHandler := handlers.NewPropertyHandler(propertyService)
	paymentHandler := handlers.NewPaymentHandler(paymentService)
	dealerHandler := handlers.NewDealerHandler(dealerService)
	statsHandler := handlers.NewStatsHandler(statsService)
	countyHandler := handlers.NewCountyHandler(countyService)

	// Register API v1 routes
	v1 := router.Group("/api/v1")
	{
		properties := v1.Group("/properties")
		{
			properties.GET("", propertyHandler.List)
			properties.GET("/map", propertyHandler.Map)
			properties.GET("/lookup", propertyHandler.Lookup)
			properties.GET("/:id", propertyHandler.Get)
			properties.POST("", propertyHandler.Create)
			properties.POST("/:id/register", propertyHandler.Register)
			properties.GET("/:id/assessor", countyHandler.Assessor)
		}

		payments := v1.Group("/payments")
		{
			payments.GET("", paymentHandler.List)
			payments.GET("/:id", paymentHandler.Get)
			payments.POST("", paymentHandler.Create)
		}

		v1.GET("/dealers", dealerHandler.List)
		v1.GET("/stats", statsHandler.Get)
		v1.GET("/lookups/:kind", countyHandler.LookupCodes)
	}

	// Create HTTP server
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", cfg.Server.Port),
		Handler: router,
	}

	// Start server in goroutine
	go func() {
		log.Info("Server listening", map[string]interface{}{
			"port": cfg.Server.Port,
			"addr": srv.Addr,
		})
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			log.Fatal("Server failed to start", err, nil)
		}
	}()

	// Wait for interrupt signal (SIGINT or SIGTERM)
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	// Graceful shutdown
	log.Info("Shutting down server...", nil)

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	if err := srv.Shutdown(shutdownCtx); err != nil {
		log.Error("Server forced to shutdown", err, map[string]interface{}{
			"timeout": shutdownTimeout.String(),
		})
	}

	log.Info("Server exited", nil)
}
