package domain

import "time"

type OrderStatus string

const (
	OrderStatusPending    OrderStatus = "PENDING"
	OrderStatusProcessing OrderStatus = "PROCESSING"
	OrderStatusConfirmed  OrderStatus = "CONFIRMED"
	OrderStatusShipped    OrderStatus = "SHIPPED"
	OrderStatusDelivered  OrderStatus = "DELIVERED"
	OrderStatusCancelled  OrderStatus = "CANCELLED"
)

type PaymentStatus string

const (
	PaymentStatusPending   PaymentStatus = "PENDING"
	PaymentStatusCompleted PaymentStatus = "COMPLETED"
)

const PaymentMethodCOD = "COD"

// allowedTransitions is the full transition table. DELIVERED and
// CANCELLED are terminal.
var allowedTransitions = map[OrderStatus][]OrderStatus{
	OrderStatusPending:    {OrderStatusConfirmed, OrderStatusCancelled},
	OrderStatusProcessing: {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusConfirmed:  {OrderStatusShipped, OrderStatusCancelled},
	OrderStatusShipped:    {OrderStatusDelivered},
	OrderStatusDelivered:  {},
	OrderStatusCancelled:  {},
}

func (s OrderStatus) Valid() bool {
	_, ok := allowedTransitions[s]
	return ok
}

func (s OrderStatus) IsTerminal() bool {
	return s == OrderStatusDelivered || s == OrderStatusCancelled
}

func (s OrderStatus) CanTransitionTo(to OrderStatus) bool {
	for _, allowed := range allowedTransitions[s] {
		if allowed == to {
			return true
		}
	}
	return false
}

// InitialStatus returns the status a fresh order starts in. COD orders
// skip PENDING because there is no payment to wait for.
func InitialStatus(paymentMethod string) OrderStatus {
	if paymentMethod == PaymentMethodCOD {
		return OrderStatusProcessing
	}
	return OrderStatusPending
}

// StatusChangeMessage is the customer-facing text attached to a status
// change notification.
func StatusChangeMessage(status OrderStatus) string {
	switch status {
	case OrderStatusConfirmed:
		return "Your order has been confirmed and is being prepared for shipment."
	case OrderStatusShipped:
		return "Your order has been shipped and is on its way to you."
	case OrderStatusDelivered:
		return "Your order has been delivered successfully. Thank you for your purchase!"
	case OrderStatusCancelled:
		return "Your order has been cancelled."
	default:
		return "Your order status has been updated."
	}
}

type Order struct {
	ID                  uint
	OrderNumber         string
	UserID              *uint
	CustomerName        string
	CustomerPhone       string
	CustomerEmail       string
	ShippingAddress     string
	TotalAmount         float64
	ShippingFee         float64
	TaxAmount           float64
	Status              OrderStatus
	PaymentMethod       string
	PaymentStatus       PaymentStatus
	TrackingNumber      *string
	Notes               string
	OrderDate           time.Time
	ShippedDate         *time.Time
	DeliveredDate       *time.Time
	DeliveryConfirmedAt *time.Time
	CreatedAt           time.Time
	UpdatedAt           time.Time
}

// IsGuest reports whether the order was placed without an account.
// Guest orders carry customer identity in the free-text fields instead.
func (o Order) IsGuest() bool {
	return o.UserID == nil
}

func (o Order) BelongsTo(userID uint) bool {
	return o.UserID != nil && *o.UserID == userID
}

func (o Order) CanBeCancelled() bool {
	return o.Status.CanTransitionTo(OrderStatusCancelled)
}
