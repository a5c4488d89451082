package dto

// PaymentWebhookEvent represents one payment-provider webhook delivery.
// ID is the provider's event id and the idempotency key.
type PaymentWebhookEvent struct {
	ID       string `json:"id" binding:"required"`
	UserID   string `json:"userId" binding:"required"`
	Amount   int64  `json:"amount"`
	Currency string `json:"currency"`
	Plan     string `json:"plan"`
	Status   string `json:"status" binding:"required"`
}
