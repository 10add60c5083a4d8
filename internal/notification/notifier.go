package notification

import "dacsanviet/internal/domain"

// Notifier is the delegated notification contract. Every method is
// fire-and-forget: implementations log failures and never return them,
// so a slow or broken notifier cannot fail an order operation. Callers
// must invoke these outside the database transaction.
type Notifier interface {
	NotifyOrderStatus(order *domain.Order, message string)
	NotifyOrderConfirmation(order *domain.Order)
	NotifyPaymentConfirmed(order *domain.Order)
	NotifyLowStock(product *domain.Product)
	NotifyOutOfStock(product *domain.Product)
}

// NopNotifier discards all notifications. Used in tests and when no
// broker is configured.
type NopNotifier struct{}

func NewNopNotifier() *NopNotifier {
	return &NopNotifier{}
}

func (NopNotifier) NotifyOrderStatus(*domain.Order, string)  {}
func (NopNotifier) NotifyOrderConfirmation(*domain.Order)    {}
func (NopNotifier) NotifyPaymentConfirmed(*domain.Order)     {}
func (NopNotifier) NotifyLowStock(*domain.Product)           {}
func (NopNotifier) NotifyOutOfStock(*domain.Product)         {}
