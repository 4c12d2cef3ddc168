package api

import (
	"net/http"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/velmora/storefront-gateway/internal/config"
	"github.com/velmora/storefront-gateway/internal/handlers"
	"github.com/velmora/storefront-gateway/internal/middleware"
	"github.com/velmora/storefront-gateway/internal/telemetry"
)

func NewRouter(cfg *config.Config, orderHandler *handlers.OrderHandler, emailHandler *handlers.EmailHandler, cache middleware.ResponseCache) *gin.Engine {
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(telemetry.TracingMiddleware())

	// Fixed origin allow-list; cookies and auth headers pass across it.
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization", "Idempotency-Key"},
		AllowCredentials: true,
	}))

	// Prometheus metrics
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Health check
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "storefront-gateway"})
	})

	// Payment routes
	r.POST("/create-order", middleware.Idempotency(cache), orderHandler.CreateOrder)
	r.POST("/verify-payment", orderHandler.VerifyPayment)

	// Transactional email routes
	r.POST("/send-email", emailHandler.SendEmail)
	r.POST("/send-order-confirmation", emailHandler.SendOrderConfirmation)
	r.POST("/send-abandoned-order-email", emailHandler.SendAbandonedOrderEmail)
	r.POST("/send-advance-payment-confirmation", emailHandler.SendAdvancePaymentConfirmation)

	return r
}
