package routes

import (
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"github.com/workmate/commerce-api/internal/config"
	"github.com/workmate/commerce-api/internal/infrastructure/database"
	"github.com/workmate/commerce-api/internal/presentation/http/handler"
	"github.com/workmate/commerce-api/internal/presentation/http/middleware"
)

// Handlers holds all the HTTP handlers used for route registration.
type Handlers struct {
	Order     *handler.OrderHandler
	Product   *handler.ProductHandler
	Analytics *handler.AnalyticsHandler
}

// Deps holds shared dependencies needed by the routes.
type Deps struct {
	Cfg    *config.Config
	DB     *gorm.DB
	Logger *zap.Logger
}

// Setup creates the Gin router and registers all routes.
func Setup(h *Handlers, deps *Deps) *gin.Engine {
	router := gin.New()

	// Global middleware
	router.Use(gin.Recovery())
	router.Use(middleware.LoggerMiddleware(deps.Logger))
	router.Use(middleware.CORSMiddleware(&deps.Cfg.CORS))

	// Health check endpoint
	router.GET("/health", func(c *gin.Context) {
		dbStatus := "ok"
		if err := database.Ping(deps.DB); err != nil {
			dbStatus = "unavailable"
		}
		c.JSON(200, gin.H{
			"status":   "ok",
			"service":  deps.Cfg.App.Name,
			"database": dbStatus,
		})
	})

	// API v1 routes
	v1 := router.Group("/api/v1")
	{
		rlCfg := middleware.DefaultRateLimiterConfig()
		if deps.Cfg.RateLimit.Requests > 0 && deps.Cfg.RateLimit.Duration > 0 {
			rlCfg.RequestsPerSecond = float64(deps.Cfg.RateLimit.Requests) / float64(deps.Cfg.RateLimit.Duration)
			rlCfg.BurstSize = deps.Cfg.RateLimit.Requests
		}
		rateLimiter := middleware.NewClientRateLimiter(rlCfg)
		v1.Use(rateLimiter.Middleware())

		registerOrderRoutes(v1, h)
		registerProductRoutes(v1, h)
	}

	return router
}

func registerOrderRoutes(v1 *gin.RouterGroup, h *Handlers) {
	orders := v1.Group("/orders")
	{
		orders.POST("", h.Order.Create)
		orders.POST("/from-shopify", h.Order.ImportFromShopify)
		orders.GET("", h.Order.List)

		// Analytics routes must be registered before the :id routes so
		// gin does not treat "analytics" as an order id
		analytics := orders.Group("/analytics")
		{
			analytics.GET("/sales/weekly", h.Analytics.SalesByWeek)
			analytics.GET("/sales/monthly", h.Analytics.SalesByMonth)
			analytics.GET("/sales/by-day", h.Analytics.SalesByDay)
			analytics.GET("/sales/by-hour", h.Analytics.SalesByHour)
			analytics.GET("/products/units-sold", h.Analytics.UnitsSold)
			analytics.GET("/products/revenue", h.Analytics.Revenue)
			analytics.GET("/products/combos", h.Analytics.Combos)
		}

		orders.GET("/shopify/:order_id", h.Order.GetByPlatformID)
		orders.GET("/customer/:customer_id", h.Order.ListByCustomer)
		orders.GET("/status/:status", h.Order.ListByStatus)
		orders.GET("/:id", h.Order.Get)
		orders.PUT("/:id/status", h.Order.UpdateStatus)
		orders.PUT("/:id", h.Order.Update)
		orders.DELETE("/:id", h.Order.Delete)
	}
}

func registerProductRoutes(v1 *gin.RouterGroup, h *Handlers) {
	products := v1.Group("/products")
	{
		products.POST("", h.Product.Create)
		products.POST("/from-shopify", h.Product.ImportFromShopify)
		products.GET("", h.Product.List)
		products.GET("/:product_id", h.Product.Get)
		products.PUT("/:product_id", h.Product.Update)
		products.DELETE("/:product_id", h.Product.Delete)
	}
}
