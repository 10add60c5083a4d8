package dto

// CreateOrderRequest is the checkout payload. userId is optional: a nil
// userId is a guest checkout. Items may come from the client's local
// cart; when present they take precedence over the persisted cart.
type CreateOrderRequest struct {
	UserID          *uint             `json:"userId" validate:"omitempty,gt=0"`
	CustomerName    string            `json:"customerName" validate:"max=150"`
	CustomerPhone   string            `json:"customerPhone" validate:"max=30"`
	CustomerEmail   string            `json:"customerEmail" validate:"omitempty,email,max=150"`
	ShippingAddress string            `json:"shippingAddress" validate:"max=500"`
	PaymentMethod   string            `json:"paymentMethod" validate:"required,max=50"`
	Notes           string            `json:"notes" validate:"max=1000"`
	Subtotal        *float64          `json:"subtotal" validate:"omitempty,gte=0"`
	ShippingFee     *float64          `json:"shippingFee" validate:"omitempty,gte=0"`
	Items           []CartItemRequest `json:"items" validate:"omitempty,max=100,dive"`
}

type CartItemRequest struct {
	ProductID       uint    `json:"productId" validate:"required,gt=0"`
	Quantity        int     `json:"quantity" validate:"required,gte=1,lte=10000"`
	UnitPrice       float64 `json:"unitPrice" validate:"gte=0"`
	ProductName     string  `json:"productName" validate:"max=150"`
	ProductImageURL string  `json:"productImageUrl" validate:"max=500"`
}

type CancelOrderRequest struct {
	UserID uint `json:"userId" validate:"required,gt=0"`
}

type ConfirmDeliveryRequest struct {
	UserID uint `json:"userId" validate:"required,gt=0"`
}

type UpdateOrderStatusRequest struct {
	Status         string  `json:"status" validate:"required"`
	TrackingNumber *string `json:"trackingNumber" validate:"omitempty,max=100"`
	Notes          *string `json:"notes" validate:"omitempty,max=1000"`
}
