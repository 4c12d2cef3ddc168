package mailer

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/gomail.v2"

	"github.com/velmora/storefront-gateway/internal/apperr"
)

type fakeSender struct {
	sent []*gomail.Message
	err  error
}

func (f *fakeSender) DialAndSend(m ...*gomail.Message) error {
	if f.err != nil {
		return f.err
	}
	f.sent = append(f.sent, m...)
	return nil
}

func TestRender_ContactFallbacks(t *testing.T) {
	email := Render(KindContact, Context{})

	assert.Equal(t, "New contact form submission", email.Subject)
	assert.Contains(t, email.Text, "Name: N/A")
	assert.Contains(t, email.Text, "Email: N/A")
	assert.Contains(t, email.Text, "Phone: N/A")
	assert.Contains(t, email.Text, "Not provided")
	assert.Contains(t, email.HTML, "N/A")
}

func TestRender_ContactFields(t *testing.T) {
	email := Render(KindContact, Context{
		Name:    "Asha",
		Email:   "asha@example.com",
		Phone:   "9999999999",
		Message: "Is the walnut shelf in stock?",
		Domain:  "velmora.in",
	})

	assert.Contains(t, email.Text, "Name: Asha")
	assert.Contains(t, email.Text, "Is the walnut shelf in stock?")
	assert.Contains(t, email.HTML, "velmora.in")
}

func TestRender_OrderConfirmationDetails(t *testing.T) {
	email := Render(KindOrderConfirmation, Context{
		OrderDetails:    map[string]any{"orderId": "order_123", "amount": 499},
		CustomerDetails: map[string]any{"name": "Asha", "city": "Pune"},
	})

	assert.Equal(t, "Your order is confirmed", email.Subject)
	assert.Contains(t, email.Text, "Hi Asha,")
	assert.Contains(t, email.Text, "orderId: order_123")
	assert.Contains(t, email.Text, "amount: 499")
	assert.Contains(t, email.HTML, "<td>order_123</td>")
}

func TestRender_OrderConfirmationEmptyDetails(t *testing.T) {
	email := Render(KindOrderConfirmation, Context{})

	assert.Contains(t, email.Text, "Hi Customer,")
	assert.Contains(t, email.Text, "Not provided")
	assert.Contains(t, email.HTML, "<p>Not provided</p>")
}

func TestRender_AdvancePaymentSubject(t *testing.T) {
	withProduct := Render(KindAdvancePayment, Context{ProductName: "Teak Bench"})
	assert.Equal(t, "Advance payment received for Teak Bench", withProduct.Subject)
	assert.Contains(t, withProduct.Text, "payable on delivery")

	without := Render(KindAdvancePayment, Context{})
	assert.Equal(t, "Advance payment received for your order", without.Subject)
}

func TestRender_HTMLEscapesValues(t *testing.T) {
	email := Render(KindContact, Context{Name: "<script>alert(1)</script>"})
	assert.NotContains(t, email.HTML, "<script>")
	assert.Contains(t, email.HTML, "&lt;script&gt;")
}

func TestSend_SubmitsMessage(t *testing.T) {
	fake := &fakeSender{}
	d := NewWithSender(fake, "orders@velmora.in")

	err := d.Send(context.Background(), KindOrderConfirmation, "asha@example.com", Context{
		OrderDetails: map[string]any{"orderId": "order_123"},
	})
	require.NoError(t, err)
	require.Len(t, fake.sent, 1)

	m := fake.sent[0]
	assert.Equal(t, []string{"asha@example.com"}, m.GetHeader("To"))
	assert.Equal(t, []string{"orders@velmora.in"}, m.GetHeader("From"))
}

func TestSend_TransportFailure(t *testing.T) {
	d := NewWithSender(&fakeSender{err: errors.New("smtp: 535 auth failed")}, "orders@velmora.in")

	err := d.Send(context.Background(), KindContact, "asha@example.com", Context{})
	require.Error(t, err)
	assert.Equal(t, apperr.UpstreamFailure, apperr.KindOf(err))
}

func TestSend_MissingCredentials(t *testing.T) {
	d := New("smtp.gmail.com", 587, "", "", "orders@velmora.in")

	err := d.Send(context.Background(), KindContact, "asha@example.com", Context{})
	require.Error(t, err)
	assert.Equal(t, apperr.UpstreamFailure, apperr.KindOf(err))
}
