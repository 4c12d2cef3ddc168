// Package gateway wraps payment order creation with the upstream processor.
package gateway

import (
	"context"
	"strconv"
	"time"

	razorpay "github.com/razorpay/razorpay-go"
	"github.com/shopspring/decimal"

	"github.com/velmora/storefront-gateway/internal/apperr"
)

// OrderCreator is the slice of the processor client the gateway needs;
// razorpay-go's order resource satisfies it directly.
type OrderCreator interface {
	Create(data map[string]interface{}, extraHeaders map[string]string) (map[string]interface{}, error)
}

type CreateOrderParams struct {
	// Amount is in the major currency unit (rupees, not paise).
	Amount   float64
	Currency string
	Receipt  string
	Notes    map[string]any
}

// OrderIntent is the processor's created order plus the public key id the
// storefront needs to initialize the checkout widget.
type OrderIntent struct {
	Order map[string]any
	KeyID string
}

type Gateway struct {
	orders OrderCreator
	keyID  string
}

func New(orders OrderCreator, keyID string) *Gateway {
	return &Gateway{orders: orders, keyID: keyID}
}

// NewRazorpay builds a gateway backed by the official processor client.
func NewRazorpay(keyID, keySecret string) *Gateway {
	client := razorpay.NewClient(keyID, keySecret)
	return New(client.Order, keyID)
}

// CreateOrder converts the requested amount to minor units and creates the
// order with the processor. Processor rejections are surfaced as upstream
// failures; no retry is attempted.
func (g *Gateway) CreateOrder(ctx context.Context, params CreateOrderParams) (*OrderIntent, error) {
	currency := params.Currency
	if currency == "" {
		currency = "INR"
	}
	receipt := params.Receipt
	if receipt == "" {
		receipt = defaultReceipt()
	}
	notes := params.Notes
	if notes == nil {
		notes = map[string]any{}
	}

	payload := map[string]interface{}{
		"amount":   MinorUnits(params.Amount),
		"currency": currency,
		"receipt":  receipt,
		"notes":    notes,
	}

	order, err := g.orders.Create(payload, nil)
	if err != nil {
		return nil, apperr.Wrap(apperr.UpstreamFailure, "payment processor rejected order", err)
	}

	return &OrderIntent{Order: order, KeyID: g.keyID}, nil
}

// MinorUnits converts a major-unit amount to the processor's minor units
// (x100, truncated). Decimal arithmetic avoids float drift on inputs like
// 19.99.
func MinorUnits(amount float64) int64 {
	return decimal.NewFromFloat(amount).Mul(decimal.NewFromInt(100)).IntPart()
}

// defaultReceipt is unique only down to the millisecond; callers that may
// create orders faster than that must pass an explicit receipt.
func defaultReceipt() string {
	return "receipt_" + strconv.FormatInt(time.Now().UnixMilli(), 10)
}
