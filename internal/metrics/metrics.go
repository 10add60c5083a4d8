package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

type OrderMetrics struct {
	OrdersCreated          prometheus.Counter
	OrdersCancelled        prometheus.Counter
	OrderCreateFailures    *prometheus.CounterVec
	ReservationFailures    *prometheus.CounterVec
	PaymentReconciliations *prometheus.CounterVec
}

func NewOrderMetrics() *OrderMetrics {
	created := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dacsanviet",
		Subsystem: "orders",
		Name:      "created_total",
		Help:      "Total number of orders created.",
	})
	cancelled := prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dacsanviet",
		Subsystem: "orders",
		Name:      "cancelled_total",
		Help:      "Total number of orders cancelled.",
	})
	createFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dacsanviet",
		Subsystem: "orders",
		Name:      "create_failures_total",
		Help:      "Order creation failures by reason.",
	}, []string{"reason"})
	reservationFailures := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dacsanviet",
		Subsystem: "inventory",
		Name:      "reservation_failures_total",
		Help:      "Stock reservation failures by reason.",
	}, []string{"reason"})
	reconciliations := prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dacsanviet",
		Subsystem: "payments",
		Name:      "reconciliations_total",
		Help:      "Payment reconciliation outcomes.",
	}, []string{"result"})

	prometheus.MustRegister(created, cancelled, createFailures, reservationFailures, reconciliations)

	return &OrderMetrics{
		OrdersCreated:          created,
		OrdersCancelled:        cancelled,
		OrderCreateFailures:    createFailures,
		ReservationFailures:    reservationFailures,
		PaymentReconciliations: reconciliations,
	}
}

// NewNopOrderMetrics returns metrics that are not registered with the
// default registry. Used by tests so repeated construction does not
// panic on duplicate registration.
func NewNopOrderMetrics() *OrderMetrics {
	return &OrderMetrics{
		OrdersCreated:   prometheus.NewCounter(prometheus.CounterOpts{Name: "nop_orders_created_total"}),
		OrdersCancelled: prometheus.NewCounter(prometheus.CounterOpts{Name: "nop_orders_cancelled_total"}),
		OrderCreateFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "nop_order_create_failures_total"}, []string{"reason"}),
		ReservationFailures: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "nop_reservation_failures_total"}, []string{"reason"}),
		PaymentReconciliations: prometheus.NewCounterVec(
			prometheus.CounterOpts{Name: "nop_payment_reconciliations_total"}, []string{"result"}),
	}
}

func Handler() http.Handler {
	return promhttp.Handler()
}
