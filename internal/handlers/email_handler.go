package handlers

import (
	"context"
	"net/http"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"github.com/velmora/storefront-gateway/internal/apperr"
	"github.com/velmora/storefront-gateway/internal/mailer"
	"github.com/velmora/storefront-gateway/internal/models"
	"github.com/velmora/storefront-gateway/internal/telemetry"
)

// Mailer is the dispatch boundary the handlers depend on.
type Mailer interface {
	Send(ctx context.Context, kind mailer.Kind, to string, mctx mailer.Context) error
}

type EmailHandler struct {
	mailer    Mailer
	contactTo string
}

func NewEmailHandler(m Mailer, contactTo string) *EmailHandler {
	return &EmailHandler{mailer: m, contactTo: contactTo}
}

// SendEmail handles the contact form. All fields are lenient: missing values
// render as placeholders rather than failing the request.
func (h *EmailHandler) SendEmail(c *gin.Context) {
	var req models.ContactEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Wrap(apperr.Validation, "invalid request body", err))
		return
	}

	to := req.To
	if to == "" {
		to = h.contactTo
	}

	h.dispatch(c, mailer.KindContact, to, mailer.Context{
		Name:        req.Name,
		Email:       req.Email,
		Phone:       req.Phone,
		Subject:     req.Subject,
		Message:     req.Message,
		Domain:      req.Domain,
		ProductName: req.ProductName,
	}, "Email sent successfully")
}

func (h *EmailHandler) SendOrderConfirmation(c *gin.Context) {
	h.sendOrderEmail(c, mailer.KindOrderConfirmation, "Order confirmation sent")
}

func (h *EmailHandler) SendAbandonedOrderEmail(c *gin.Context) {
	h.sendOrderEmail(c, mailer.KindAbandonedOrder, "Abandoned order email sent")
}

func (h *EmailHandler) SendAdvancePaymentConfirmation(c *gin.Context) {
	h.sendOrderEmail(c, mailer.KindAdvancePayment, "Advance payment confirmation sent")
}

func (h *EmailHandler) sendOrderEmail(c *gin.Context, kind mailer.Kind, confirmation string) {
	var req models.OrderEmailRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, apperr.Wrap(apperr.Validation, "invalid request body", err))
		return
	}

	// The transport must not be contacted when the recipient is missing.
	if req.CustomerEmail == "" {
		respondError(c, apperr.New(apperr.Validation, "customerEmail is required"))
		return
	}

	h.dispatch(c, kind, req.CustomerEmail, mailer.Context{
		ProductName:     req.ProductName,
		OrderDetails:    req.OrderDetails,
		CustomerDetails: req.CustomerDetails,
	}, confirmation)
}

func (h *EmailHandler) dispatch(c *gin.Context, kind mailer.Kind, to string, mctx mailer.Context, confirmation string) {
	if err := h.mailer.Send(c.Request.Context(), kind, to, mctx); err != nil {
		telemetry.EmailsSent.WithLabelValues(string(kind), "failed").Inc()
		telemetry.Logger.Error("Email dispatch failed",
			zap.String("template", string(kind)),
			zap.Error(err),
		)
		respondError(c, err)
		return
	}

	telemetry.EmailsSent.WithLabelValues(string(kind), "sent").Inc()
	c.JSON(http.StatusOK, models.MessageResponse{Success: true, Message: confirmation})
}
