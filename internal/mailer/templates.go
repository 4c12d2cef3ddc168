package mailer

import (
	"fmt"
	"html"
	"sort"
	"strings"
)

type Email struct {
	Subject string
	Text    string
	HTML    string
}

// Render builds the plain-text and HTML bodies for a template kind. It never
// fails: absent context fields render as placeholder text.
func Render(kind Kind, ctx Context) Email {
	switch kind {
	case KindContact:
		return renderContact(ctx)
	case KindOrderConfirmation:
		return renderOrder(ctx, "Your order is confirmed",
			"Thank you for shopping with us! Your order has been placed successfully.")
	case KindAbandonedOrder:
		return renderOrder(ctx, "You left something behind",
			"We noticed you didn't finish checking out. Your items are still waiting for you.")
	case KindAdvancePayment:
		title := fmt.Sprintf("Advance payment received for %s", fallback(ctx.ProductName, "your order"))
		return renderOrder(ctx, title,
			"We have received your advance payment. The remaining balance is payable on delivery.")
	default:
		return renderContact(ctx)
	}
}

func renderContact(ctx Context) Email {
	subject := fallback(ctx.Subject, "New contact form submission")

	var text strings.Builder
	fmt.Fprintf(&text, "New enquiry from %s\n\n", fallback(ctx.Domain, "the storefront"))
	fmt.Fprintf(&text, "Name: %s\n", fallback(ctx.Name, "N/A"))
	fmt.Fprintf(&text, "Email: %s\n", fallback(ctx.Email, "N/A"))
	fmt.Fprintf(&text, "Phone: %s\n", fallback(ctx.Phone, "N/A"))
	if ctx.ProductName != "" {
		fmt.Fprintf(&text, "Product: %s\n", ctx.ProductName)
	}
	fmt.Fprintf(&text, "\nMessage:\n%s\n", fallback(ctx.Message, "Not provided"))

	var htm strings.Builder
	fmt.Fprintf(&htm, "<h2>New enquiry from %s</h2>", esc(fallback(ctx.Domain, "the storefront")))
	fmt.Fprintf(&htm, "<p><b>Name:</b> %s<br>", esc(fallback(ctx.Name, "N/A")))
	fmt.Fprintf(&htm, "<b>Email:</b> %s<br>", esc(fallback(ctx.Email, "N/A")))
	fmt.Fprintf(&htm, "<b>Phone:</b> %s</p>", esc(fallback(ctx.Phone, "N/A")))
	if ctx.ProductName != "" {
		fmt.Fprintf(&htm, "<p><b>Product:</b> %s</p>", esc(ctx.ProductName))
	}
	fmt.Fprintf(&htm, "<p>%s</p>", esc(fallback(ctx.Message, "Not provided")))

	return Email{Subject: subject, Text: text.String(), HTML: htm.String()}
}

func renderOrder(ctx Context, title, lead string) Email {
	name := fallback(detailValue(ctx.CustomerDetails, "name"), "Customer")

	var text strings.Builder
	fmt.Fprintf(&text, "Hi %s,\n\n%s\n\n", name, lead)
	fmt.Fprintf(&text, "Order details:\n%s\n", detailLines(ctx.OrderDetails))
	fmt.Fprintf(&text, "Delivery details:\n%s\n", detailLines(ctx.CustomerDetails))

	var htm strings.Builder
	fmt.Fprintf(&htm, "<h2>%s</h2>", esc(title))
	fmt.Fprintf(&htm, "<p>Hi %s,</p><p>%s</p>", esc(name), esc(lead))
	fmt.Fprintf(&htm, "<h3>Order details</h3>%s", detailTable(ctx.OrderDetails))
	fmt.Fprintf(&htm, "<h3>Delivery details</h3>%s", detailTable(ctx.CustomerDetails))

	return Email{Subject: title, Text: text.String(), HTML: htm.String()}
}

func fallback(v, placeholder string) string {
	if strings.TrimSpace(v) == "" {
		return placeholder
	}
	return v
}

func detailValue(m map[string]any, key string) string {
	if m == nil {
		return ""
	}
	if v, ok := m[key]; ok && v != nil {
		return fmt.Sprint(v)
	}
	return ""
}

func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

func detailLines(m map[string]any) string {
	if len(m) == 0 {
		return "Not provided\n"
	}
	var b strings.Builder
	for _, k := range sortedKeys(m) {
		fmt.Fprintf(&b, "%s: %s\n", k, fallback(fmt.Sprint(m[k]), "N/A"))
	}
	return b.String()
}

func detailTable(m map[string]any) string {
	if len(m) == 0 {
		return "<p>Not provided</p>"
	}
	var b strings.Builder
	b.WriteString("<table>")
	for _, k := range sortedKeys(m) {
		fmt.Fprintf(&b, "<tr><td><b>%s</b></td><td>%s</td></tr>",
			esc(k), esc(fallback(fmt.Sprint(m[k]), "N/A")))
	}
	b.WriteString("</table>")
	return b.String()
}

func esc(s string) string { return html.EscapeString(s) }
