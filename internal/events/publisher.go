// Package events emits a best-effort audit feed of order activity. Publish
// failures are logged and never fail the originating request.
package events

import (
	"context"
	"encoding/json"
	"io"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/segmentio/kafka-go"
	"go.uber.org/zap"

	"github.com/velmora/storefront-gateway/internal/telemetry"
)

const (
	TypeOrderCreated    = "order.created"
	TypePaymentVerified = "payment.verified"
)

// Writer is the slice of kafka.Writer the publisher needs.
type Writer interface {
	WriteMessages(ctx context.Context, msgs ...kafka.Message) error
}

type Publisher struct {
	writer Writer
}

// New builds a Kafka-backed publisher, or a no-op one when brokers is empty.
func New(brokers string) *Publisher {
	if brokers == "" {
		return &Publisher{}
	}
	return &Publisher{writer: &kafka.Writer{
		Addr:     kafka.TCP(strings.Split(brokers, ",")...),
		Topic:    "storefront.orders",
		Balancer: &kafka.LeastBytes{},
	}}
}

func NewWithWriter(w Writer) *Publisher {
	return &Publisher{writer: w}
}

// Publish writes one event. Errors are swallowed after logging: the audit
// feed must never affect the request outcome.
func (p *Publisher) Publish(ctx context.Context, eventType string, payload map[string]any) {
	if p.writer == nil {
		return
	}

	event := map[string]any{
		"event_id":    uuid.New().String(),
		"type":        eventType,
		"occurred_at": time.Now().UTC().Format(time.RFC3339Nano),
		"data":        payload,
	}
	value, err := json.Marshal(event)
	if err != nil {
		if telemetry.Logger != nil {
			telemetry.Logger.Error("Failed to encode order event",
				zap.String("type", eventType),
				zap.Error(err),
			)
		}
		return
	}

	if err := p.writer.WriteMessages(ctx, kafka.Message{
		Key:   []byte(eventType),
		Value: value,
	}); err != nil && telemetry.Logger != nil {
		telemetry.Logger.Error("Failed to publish order event",
			zap.String("type", eventType),
			zap.Error(err),
		)
	}
}

func (p *Publisher) Close() error {
	if c, ok := p.writer.(io.Closer); ok {
		return c.Close()
	}
	return nil
}
