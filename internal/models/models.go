package models

// Every response carries Success so the storefront can branch uniformly.

type CreateOrderRequest struct {
	Amount   float64        `json:"amount" binding:"required"`
	Currency string         `json:"currency"`
	Receipt  string         `json:"receipt"`
	Notes    map[string]any `json:"notes"`
}

type CreateOrderResponse struct {
	Success bool           `json:"success"`
	Order   map[string]any `json:"order"`
	KeyID   string         `json:"key_id"`
}

// Field names follow the processor's checkout callback payload.
type VerifyPaymentRequest struct {
	OrderID   string `json:"razorpay_order_id"`
	PaymentID string `json:"razorpay_payment_id"`
	Signature string `json:"razorpay_signature"`
}

type VerifyPaymentResponse struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	OrderID   string `json:"orderId"`
	PaymentID string `json:"paymentId"`
}

type ContactEmailRequest struct {
	To          string `json:"to"`
	Subject     string `json:"subject"`
	Message     string `json:"message"`
	Name        string `json:"name"`
	Email       string `json:"email"`
	Phone       string `json:"phone"`
	Domain      string `json:"domain"`
	ProductName string `json:"productName"`
}

type OrderEmailRequest struct {
	CustomerEmail   string         `json:"customerEmail"`
	OrderDetails    map[string]any `json:"orderDetails"`
	CustomerDetails map[string]any `json:"customerDetails"`
	ProductName     string         `json:"productName"`
}

type MessageResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Kind    string `json:"kind"`
	Error   string `json:"error"`
}
