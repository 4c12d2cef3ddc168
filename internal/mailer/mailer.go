// Package mailer formats and sends the storefront's transactional emails.
// It is presentation glue: the rest of the gateway only cares about the
// boolean outcome of Send.
package mailer

import (
	"context"

	"gopkg.in/gomail.v2"

	"github.com/velmora/storefront-gateway/internal/apperr"
)

type Kind string

const (
	KindContact           Kind = "contact"
	KindOrderConfirmation Kind = "order_confirmation"
	KindAbandonedOrder    Kind = "abandoned_order"
	KindAdvancePayment    Kind = "advance_payment"
)

// Context carries the substitution fields for a template. Missing fields are
// tolerated: rendering falls back to placeholder text instead of failing.
type Context struct {
	Name        string
	Email       string
	Phone       string
	Subject     string
	Message     string
	Domain      string
	ProductName string

	OrderDetails    map[string]any
	CustomerDetails map[string]any
}

// Sender is the transport slice the dispatcher needs; gomail's Dialer
// satisfies it.
type Sender interface {
	DialAndSend(m ...*gomail.Message) error
}

type Dispatcher struct {
	sender Sender
	from   string
}

func New(host string, port int, user, pass, from string) *Dispatcher {
	if user == "" || pass == "" {
		// Credentials are validated per exercised path, not at startup.
		return &Dispatcher{from: from}
	}
	return &Dispatcher{sender: gomail.NewDialer(host, port, user, pass), from: from}
}

func NewWithSender(sender Sender, from string) *Dispatcher {
	return &Dispatcher{sender: sender, from: from}
}

// Send renders the template for kind and submits it to the mail transport.
func (d *Dispatcher) Send(ctx context.Context, kind Kind, to string, mctx Context) error {
	if d.sender == nil {
		return apperr.New(apperr.UpstreamFailure, "mail transport credentials are not configured")
	}

	email := Render(kind, mctx)

	m := gomail.NewMessage()
	m.SetHeader("From", d.from)
	m.SetHeader("To", to)
	m.SetHeader("Subject", email.Subject)
	m.SetBody("text/plain", email.Text)
	m.AddAlternative("text/html", email.HTML)

	if err := d.sender.DialAndSend(m); err != nil {
		return apperr.Wrap(apperr.UpstreamFailure, "mail transport rejected message", err)
	}
	return nil
}
