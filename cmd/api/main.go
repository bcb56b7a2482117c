package main

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/workmate/commerce-api/internal/application/analytics"
	"github.com/workmate/commerce-api/internal/application/service"
	"github.com/workmate/commerce-api/internal/config"
	"github.com/workmate/commerce-api/internal/infrastructure/database"
	"github.com/workmate/commerce-api/internal/infrastructure/repository"
	"github.com/workmate/commerce-api/internal/presentation/http/handler"
	"github.com/workmate/commerce-api/internal/presentation/http/routes"
	"github.com/workmate/commerce-api/pkg/logger"
	"github.com/workmate/commerce-api/pkg/shopify"
)

func main() {
	// Load configuration
	cfg := config.Load()

	// Initialize logger
	zlog := logger.New(&logger.Config{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	defer zlog.Sync()

	// Set Gin mode based on environment
	if cfg.App.Env == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	// Connect to database
	db, err := database.NewPostgresDB(&cfg.Database, zlog)
	if err != nil {
		zlog.Fatal("Failed to connect to database", zap.Error(err))
	}

	// Run auto-migrations
	if err := database.AutoMigrate(db); err != nil {
		zlog.Fatal("Failed to run migrations", zap.Error(err))
	}

	// Initialize repositories
	orderRepo := repository.NewOrderRepository(db)
	productRepo := repository.NewProductRepository(db)

	// Initialize the Shopify client; imports fail with a clear error when
	// credentials are missing, everything else works without them
	var gateway service.ShopifyGateway
	if cfg.Shopify.StoreName != "" && cfg.Shopify.AccessToken != "" {
		gateway = shopify.NewClient(shopify.Config{
			StoreName:   cfg.Shopify.StoreName,
			AccessToken: cfg.Shopify.AccessToken,
			APIVersion:  cfg.Shopify.APIVersion,
			Timeout:     cfg.Shopify.Timeout,
		}, nil)
	} else {
		zlog.Warn("Shopify credentials not configured, import endpoints disabled")
	}

	// Initialize services
	orderService := service.NewOrderService(orderRepo)
	productService := service.NewProductService(productRepo)
	syncService := service.NewSyncService(gateway, orderRepo, productRepo, zlog)

	// Initialize the analytics engine over the order store
	engine := analytics.NewEngine(orderRepo)

	// Initialize handlers
	handlers := &routes.Handlers{
		Order:     handler.NewOrderHandler(orderService, syncService),
		Product:   handler.NewProductHandler(productService, syncService),
		Analytics: handler.NewAnalyticsHandler(engine),
	}

	// Setup routes
	router := routes.Setup(handlers, &routes.Deps{
		Cfg:    cfg,
		DB:     db,
		Logger: zlog,
	})

	port := cfg.App.Port
	if port == "" {
		port = "8080"
	}

	zlog.Info("Starting server",
		zap.String("service", cfg.App.Name),
		zap.String("port", port),
		zap.String("env", cfg.App.Env))

	if err := router.Run(":" + port); err != nil {
		zlog.Fatal("Failed to start server", zap.Error(err))
	}
}
