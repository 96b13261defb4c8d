package main

import (
	"context"
	"fmt"
	"log"
	"os"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"

	"stockwatch/internal/caching"
	"stockwatch/internal/config"
	"stockwatch/internal/database"
	"stockwatch/internal/handlers"
	"stockwatch/internal/repositories"
	"stockwatch/internal/services"
)

const version = "1.0.0"

func main() {
	cfg, err := config.Load(os.Getenv("CONFIG_PATH"))
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}
	if cfg.Database.URL == "" {
		log.Fatal("DATABASE_URL environment variable is required")
	}

	ctx := context.Background()

	// Create database connection pool
	pool, err := database.NewPool(ctx, cfg.Database.URL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer pool.Close()

	if err := database.EnsureSchema(ctx, pool); err != nil {
		log.Fatalf("Failed to create schema: %v", err)
	}

	// Create repositories
	companyRepo := repositories.NewCompanyRepository(pool)
	warehouseRepo := repositories.NewWarehouseRepository(pool)
	productRepo := repositories.NewProductRepository(pool)
	inventoryRepo := repositories.NewInventoryRepository(pool)
	historyRepo := repositories.NewInventoryHistoryRepository(pool)
	supplierRepo := repositories.NewSupplierRepository(pool)

	// Create cache service
	var cacheService caching.CacheService
	if cfg.Cache.Enabled {
		cacheService = caching.NewRedisCacheService(cfg.Cache.RedisAddr, cfg.Cache.RedisPassword, cfg.Cache.RedisDB)
	}

	// Create services
	productService := services.NewProductService(productRepo, warehouseRepo)
	alertService := services.NewAlertService(companyRepo, warehouseRepo, inventoryRepo, historyRepo, supplierRepo, cacheService, cfg.Cache.AlertTTL())

	// Create handlers
	productHandlers := handlers.NewProductHandlers(productService)
	alertHandlers := handlers.NewAlertHandlers(alertService)
	healthHandlers := handlers.NewHealthHandlers(pool, cacheService)

	// Create Echo instance
	e := echo.New()

	// Global middleware
	e.Use(echoMiddleware.Logger())
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORS())
	e.Use(echoMiddleware.RemoveTrailingSlash())
	e.Use(echoMiddleware.RequestIDWithConfig(echoMiddleware.RequestIDConfig{
		Generator: func() string { return uuid.NewString() },
	}))

	// Health endpoints
	e.GET("/health", healthHandlers.HealthCheck)
	e.GET("/health/ready", healthHandlers.ReadinessCheck)

	// API routes
	api := e.Group("/api")
	api.POST("/products", productHandlers.CreateProduct)
	api.GET("/companies/:company_id/alerts/low-stock", alertHandlers.LowStockAlerts)

	log.Printf("Stockwatch server v%s starting on port %d", version, cfg.Server.Port)
	e.Logger.Fatal(e.Start(fmt.Sprintf(":%d", cfg.Server.Port)))
}
