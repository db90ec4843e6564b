package api

import (
	"time"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/abusaud/storefront/internal/api/handlers"
	"github.com/abusaud/storefront/internal/config"
	"github.com/abusaud/storefront/internal/service"
)

// NewRouter creates and configures the Gin router
func NewRouter(cfg *config.Config, svc *service.StorefrontService, logger *zap.Logger) *gin.Engine {
	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()

	// Middleware
	router.Use(gin.Recovery())
	router.Use(loggingMiddleware(logger))

	// Health check
	router.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})

	// API v1 routes
	v1 := router.Group("/v1")
	{
		v1.GET("/catalog", handlers.HandleListCatalog(svc))

		carts := v1.Group("/carts")
		{
			carts.POST("", handlers.HandleCreateCart(svc, logger))
			carts.GET("/:id", handlers.HandleGetCart(svc, logger))
			carts.POST("/:id/items", handlers.HandleAddItem(svc, logger))
			carts.PUT("/:id/items/:productId", handlers.HandleSetQuantity(svc, logger))
			carts.POST("/:id/items/:productId/adjust", handlers.HandleAdjustQuantity(svc, logger))
			carts.DELETE("/:id/items/:productId", handlers.HandleRemoveItem(svc, logger))
			carts.POST("/:id/checkout", handlers.HandleCheckout(svc, logger))
		}
	}

	return router
}

// loggingMiddleware logs HTTP requests
func loggingMiddleware(logger *zap.Logger) gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		path := c.Request.URL.Path
		method := c.Request.Method

		c.Next()

		status := c.Writer.Status()
		logger.Info("HTTP request",
			zap.String("method", method),
			zap.String("path", path),
			zap.Int("status", status),
			zap.Duration("latency", time.Since(start)),
		)
	}
}
