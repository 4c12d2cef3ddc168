package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/joho/godotenv"
	"github.com/redis/go-redis/v9"
	"go.uber.org/zap"

	"github.com/velmora/storefront-gateway/internal/api"
	"github.com/velmora/storefront-gateway/internal/config"
	"github.com/velmora/storefront-gateway/internal/events"
	"github.com/velmora/storefront-gateway/internal/gateway"
	"github.com/velmora/storefront-gateway/internal/handlers"
	"github.com/velmora/storefront-gateway/internal/mailer"
	"github.com/velmora/storefront-gateway/internal/middleware"
	"github.com/velmora/storefront-gateway/internal/shipping"
	"github.com/velmora/storefront-gateway/internal/telemetry"
)

func main() {
	_ = godotenv.Load()

	// Initialize telemetry
	if err := telemetry.InitTelemetry("storefront-gateway"); err != nil {
		panic(fmt.Sprintf("Failed to initialize telemetry: %v", err))
	}
	defer telemetry.Shutdown(context.Background())

	telemetry.Logger.Info("Starting Storefront Gateway")

	cfg := config.Load()
	if err := cfg.Validate(); err != nil {
		telemetry.Logger.Fatal("Invalid configuration", zap.Error(err))
	}

	// Optional Redis for idempotent create-order replays. The interface
	// stays nil when unconfigured so the middleware passes through.
	var cache middleware.ResponseCache
	if cfg.RedisURL != "" {
		redisClient := redis.NewClient(&redis.Options{
			Addr: cfg.RedisURL,
		})
		defer redisClient.Close()
		cache = redisClient
	}

	// Best-effort order event feed (no-op without brokers)
	publisher := events.New(cfg.KafkaBrokers)
	defer publisher.Close()

	paymentGateway := gateway.NewRazorpay(cfg.RazorpayKeyID, cfg.RazorpayKeySecret)
	dispatcher := mailer.New(cfg.SMTPHost, cfg.SMTPPort, cfg.MailUser, cfg.MailPass, cfg.MailFrom)

	// Warm the shipping auth token so the first label request later in the
	// pipeline doesn't pay the login round trip.
	if cfg.ShippingEmail != "" && cfg.ShippingPassword != "" {
		shippingClient := shipping.New(cfg.ShippingEmail, cfg.ShippingPassword)
		go func() {
			ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
			defer cancel()
			if _, err := shippingClient.Token(ctx); err != nil {
				telemetry.Logger.Warn("Shipping token warm-up failed", zap.Error(err))
			} else {
				telemetry.Logger.Info("Shipping token cached")
			}
		}()
	}

	orderHandler := handlers.NewOrderHandler(paymentGateway, cfg.RazorpayKeySecret, publisher, cache)
	emailHandler := handlers.NewEmailHandler(dispatcher, cfg.ContactTo)

	r := api.NewRouter(cfg, orderHandler, emailHandler, cache)

	// Setup HTTP server
	srv := &http.Server{
		Addr:    ":" + cfg.Port,
		Handler: r,
	}

	// Start server in goroutine
	go func() {
		telemetry.Logger.Info("Storefront Gateway starting", zap.String("port", cfg.Port))
		if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			telemetry.Logger.Fatal("Failed to start server", zap.Error(err))
		}
	}()

	// Wait for interrupt signal for graceful shutdown
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	telemetry.Logger.Info("Shutting down server...")
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := srv.Shutdown(ctx); err != nil {
		telemetry.Logger.Error("Server forced to shutdown", zap.Error(err))
	}

	telemetry.Logger.Info("Server exited")
}
