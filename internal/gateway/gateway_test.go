package gateway

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/velmora/storefront-gateway/internal/apperr"
)

type fakeOrderCreator struct {
	lastPayload map[string]interface{}
	result      map[string]interface{}
	err         error
}

func (f *fakeOrderCreator) Create(data map[string]interface{}, _ map[string]string) (map[string]interface{}, error) {
	f.lastPayload = data
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

func TestMinorUnits(t *testing.T) {
	assert.Equal(t, int64(19900), MinorUnits(199))
	assert.Equal(t, int64(50), MinorUnits(0.5))
	assert.Equal(t, int64(1999), MinorUnits(19.99))
	assert.Equal(t, int64(0), MinorUnits(0))
}

func TestCreateOrder_Defaults(t *testing.T) {
	fake := &fakeOrderCreator{result: map[string]interface{}{"id": "order_test_1"}}
	g := New(fake, "rzp_test_key")

	intent, err := g.CreateOrder(context.Background(), CreateOrderParams{Amount: 199})
	require.NoError(t, err)

	assert.Equal(t, int64(19900), fake.lastPayload["amount"])
	assert.Equal(t, "INR", fake.lastPayload["currency"])
	assert.Equal(t, map[string]any{}, fake.lastPayload["notes"])

	receipt, ok := fake.lastPayload["receipt"].(string)
	require.True(t, ok)
	assert.Regexp(t, `^receipt_\d+$`, receipt)

	assert.Equal(t, "rzp_test_key", intent.KeyID)
	assert.Equal(t, "order_test_1", intent.Order["id"])
}

func TestCreateOrder_ExplicitFields(t *testing.T) {
	fake := &fakeOrderCreator{result: map[string]interface{}{"id": "order_test_2"}}
	g := New(fake, "rzp_test_key")

	_, err := g.CreateOrder(context.Background(), CreateOrderParams{
		Amount:   0.5,
		Currency: "USD",
		Receipt:  "invoice-42",
		Notes:    map[string]any{"channel": "web"},
	})
	require.NoError(t, err)

	assert.Equal(t, int64(50), fake.lastPayload["amount"])
	assert.Equal(t, "USD", fake.lastPayload["currency"])
	assert.Equal(t, "invoice-42", fake.lastPayload["receipt"])
	assert.Equal(t, map[string]any{"channel": "web"}, fake.lastPayload["notes"])
}

func TestCreateOrder_DefaultReceiptsDiffer(t *testing.T) {
	fake := &fakeOrderCreator{result: map[string]interface{}{}}
	g := New(fake, "rzp_test_key")

	_, err := g.CreateOrder(context.Background(), CreateOrderParams{Amount: 1})
	require.NoError(t, err)
	first := fake.lastPayload["receipt"]

	time.Sleep(2 * time.Millisecond)

	_, err = g.CreateOrder(context.Background(), CreateOrderParams{Amount: 1})
	require.NoError(t, err)

	assert.NotEqual(t, first, fake.lastPayload["receipt"])
}

func TestCreateOrder_ProcessorRejection(t *testing.T) {
	fake := &fakeOrderCreator{err: errors.New("BAD_REQUEST_ERROR: amount too small")}
	g := New(fake, "rzp_test_key")

	_, err := g.CreateOrder(context.Background(), CreateOrderParams{Amount: 0.001})
	require.Error(t, err)
	assert.Equal(t, apperr.UpstreamFailure, apperr.KindOf(err))
	assert.Contains(t, err.Error(), "amount too small")
}
