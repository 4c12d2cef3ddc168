package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velmora/storefront-gateway/internal/apperr"
	"github.com/velmora/storefront-gateway/internal/events"
	"github.com/velmora/storefront-gateway/internal/gateway"
	"github.com/velmora/storefront-gateway/internal/middleware"
	"github.com/velmora/storefront-gateway/internal/models"
	"github.com/velmora/storefront-gateway/internal/signature"
	"github.com/velmora/storefront-gateway/internal/telemetry"
)

type OrderHandler struct {
	gateway   *gateway.Gateway
	secret    string
	publisher *events.Publisher
	cache     middleware.ResponseCache
}

func NewOrderHandler(g *gateway.Gateway, secret string, publisher *events.Publisher, cache middleware.ResponseCache) *OrderHandler {
	return &OrderHandler{
		gateway:   g,
		secret:    secret,
		publisher: publisher,
		cache:     cache,
	}
}

func (h *OrderHandler) CreateOrder(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.CreateOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		telemetry.Logger.Warn("Invalid create-order request", zap.Error(err))
		respondError(c, apperr.Wrap(apperr.Validation, "invalid request body", err))
		return
	}

	intent, err := h.gateway.CreateOrder(ctx, gateway.CreateOrderParams{
		Amount:   req.Amount,
		Currency: req.Currency,
		Receipt:  req.Receipt,
		Notes:    req.Notes,
	})
	if err != nil {
		telemetry.Logger.Error("Order creation failed", zap.Error(err))
		respondError(c, err)
		return
	}

	telemetry.OrdersCreated.Inc()
	telemetry.Logger.Info("Order created",
		zap.Any("order_id", intent.Order["id"]),
		zap.Float64("amount", req.Amount),
	)

	h.publisher.Publish(ctx, events.TypeOrderCreated, map[string]any{"order": intent.Order})

	resp := models.CreateOrderResponse{Success: true, Order: intent.Order, KeyID: intent.KeyID}
	middleware.CacheResponse(ctx, h.cache, c.GetString("idempotency_key"), resp)

	c.JSON(http.StatusOK, resp)
}

func (h *OrderHandler) VerifyPayment(c *gin.Context) {
	ctx := c.Request.Context()

	var req models.VerifyPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Wrap(apperr.Validation, "invalid request body", err))
		return
	}

	// Known limitation: any well-formed triple is trusted. Nothing checks
	// that the order id belongs to an order this service created, so a
	// replayed valid triple verifies again. Left as-is until the upstream
	// trust model is settled.
	if !signature.Verify(req.OrderID, req.PaymentID, req.Signature, h.secret) {
		telemetry.Verifications.WithLabelValues("mismatch").Inc()
		telemetry.Logger.Warn("Payment signature mismatch",
			zap.String("order_id", req.OrderID),
			zap.String("payment_id", req.PaymentID),
		)
		respondError(c, apperr.New(apperr.AuthenticityMismatch, "invalid payment signature"))
		return
	}

	telemetry.Verifications.WithLabelValues("verified").Inc()
	telemetry.Logger.Info("Payment verified",
		zap.String("order_id", req.OrderID),
		zap.String("payment_id", req.PaymentID),
	)

	h.publisher.Publish(ctx, events.TypePaymentVerified, map[string]any{
		"order_id":   req.OrderID,
		"payment_id": req.PaymentID,
	})

	c.JSON(http.StatusOK, models.VerifyPaymentResponse{
		Success:   true,
		Message:   "Payment verified successfully",
		OrderID:   req.OrderID,
		PaymentID: req.PaymentID,
	})
}
