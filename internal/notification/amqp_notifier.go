package notification

import (
	"encoding/json"
	"time"

	"go.uber.org/zap"

	"dacsanviet/internal/domain"
	"dacsanviet/internal/infrastructure/rabbitmq"
)

// Routing keys on the notifications exchange.
const (
	routingOrderStatus       = "order.status"
	routingOrderConfirmation = "order.confirmation"
	routingPaymentConfirmed  = "payment.confirmed"
	routingStockLow          = "stock.low"
	routingStockOut          = "stock.out"
)

// AMQPNotifier publishes notification events to RabbitMQ. Downstream
// consumers (email, WebSocket push) live in other services.
type AMQPNotifier struct {
	client *rabbitmq.Client
	logger *zap.Logger
}

func NewAMQPNotifier(client *rabbitmq.Client, logger *zap.Logger) *AMQPNotifier {
	return &AMQPNotifier{
		client: client,
		logger: logger,
	}
}

type orderEvent struct {
	OrderID       uint      `json:"orderId"`
	OrderNumber   string    `json:"orderNumber"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"paymentStatus"`
	CustomerEmail string    `json:"customerEmail,omitempty"`
	TotalAmount   float64   `json:"totalAmount"`
	Message       string    `json:"message,omitempty"`
	Timestamp     time.Time `json:"timestamp"`
}

type stockEvent struct {
	ProductID     uint      `json:"productId"`
	ProductName   string    `json:"productName"`
	StockQuantity int       `json:"stockQuantity"`
	Timestamp     time.Time `json:"timestamp"`
}

func (n *AMQPNotifier) NotifyOrderStatus(order *domain.Order, message string) {
	n.publishOrder(routingOrderStatus, order, message)
}

func (n *AMQPNotifier) NotifyOrderConfirmation(order *domain.Order) {
	n.publishOrder(routingOrderConfirmation, order, "")
}

func (n *AMQPNotifier) NotifyPaymentConfirmed(order *domain.Order) {
	n.publishOrder(routingPaymentConfirmed, order, "")
}

func (n *AMQPNotifier) NotifyLowStock(product *domain.Product) {
	n.publishStock(routingStockLow, product)
}

func (n *AMQPNotifier) NotifyOutOfStock(product *domain.Product) {
	n.publishStock(routingStockOut, product)
}

func (n *AMQPNotifier) publishOrder(routingKey string, order *domain.Order, message string) {
	event := orderEvent{
		OrderID:       order.ID,
		OrderNumber:   order.OrderNumber,
		Status:        string(order.Status),
		PaymentStatus: string(order.PaymentStatus),
		CustomerEmail: order.CustomerEmail,
		TotalAmount:   order.TotalAmount,
		Message:       message,
		Timestamp:     time.Now().UTC(),
	}
	n.publish(routingKey, event, zap.Uint("orderId", order.ID))
}

func (n *AMQPNotifier) publishStock(routingKey string, product *domain.Product) {
	event := stockEvent{
		ProductID:     product.ID,
		ProductName:   product.Name,
		StockQuantity: product.StockQuantity,
		Timestamp:     time.Now().UTC(),
	}
	n.publish(routingKey, event, zap.Uint("productId", product.ID))
}

func (n *AMQPNotifier) publish(routingKey string, event interface{}, field zap.Field) {
	body, err := json.Marshal(event)
	if err != nil {
		n.logger.Error("failed to marshal notification event", zap.String("routingKey", routingKey), field, zap.Error(err))
		return
	}

	if err := n.client.Publish(routingKey, body); err != nil {
		n.logger.Error("failed to publish notification", zap.String("routingKey", routingKey), field, zap.Error(err))
		return
	}

	n.logger.Debug("notification published", zap.String("routingKey", routingKey), field)
}
