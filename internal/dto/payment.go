package dto

import "time"

// PaymentWebhookRequest is the already-authenticated payment event.
// Signature verification happens upstream. Amount is in currency
// minor units (VND).
type PaymentWebhookRequest struct {
	OrderID       uint   `json:"orderId" validate:"required,gt=0"`
	Amount        int64  `json:"amount" validate:"required,gt=0"`
	PaymentMethod string `json:"paymentMethod" validate:"required,max=50"`
	TransactionID string `json:"transactionId" validate:"required,max=100"`
	Description   string `json:"description" validate:"max=500"`
}

type PaymentWebhookResponse struct {
	TraceID   string    `json:"traceId"`
	OrderID   uint      `json:"orderId"`
	Verified  bool      `json:"verified"`
	Timestamp time.Time `json:"timestamp"`
}
