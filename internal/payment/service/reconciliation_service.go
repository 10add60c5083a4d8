package service

import (
	"context"
	"database/sql"
	"time"

	"go.uber.org/zap"

	"dacsanviet/internal/domain"
	apperrors "dacsanviet/internal/errors"
	"dacsanviet/internal/metrics"
	"dacsanviet/internal/notification"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Order, error)
	CompletePayment(ctx context.Context, tx *sql.Tx, id uint, paymentMethod string) error
	AppendNote(ctx context.Context, tx *sql.Tx, id uint, note string) error
}

// ReconciliationService matches inbound payment-confirmation events
// against pending orders. Business-rule rejections (unknown order,
// amount mismatch) return false without an error; only infrastructure
// faults surface, as ReconciliationError, so the webhook can retry.
type ReconciliationService struct {
	db              TransactionManager
	orderRepo       OrderRepository
	notifier        notification.Notifier
	orderMetrics    *metrics.OrderMetrics
	logger          *zap.Logger
	amountTolerance int64
	txTimeout       time.Duration
}

func NewReconciliationService(
	db TransactionManager,
	orderRepo OrderRepository,
	notifier notification.Notifier,
	orderMetrics *metrics.OrderMetrics,
	logger *zap.Logger,
	amountTolerance int64,
	txTimeout time.Duration,
) *ReconciliationService {
	return &ReconciliationService{
		db:              db,
		orderRepo:       orderRepo,
		notifier:        notifier,
		orderMetrics:    orderMetrics,
		logger:          logger,
		amountTolerance: amountTolerance,
		txTimeout:       txTimeout,
	}
}

// VerifyAndUpdatePayment applies one payment event to an order. Safe
// under at-least-once webhook delivery: an already COMPLETED payment
// short-circuits to success without touching the order again.
func (s *ReconciliationService) VerifyAndUpdatePayment(
	ctx context.Context,
	orderID uint,
	amount int64,
	paymentMethod string,
	transactionID string,
	description string,
) (bool, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return false, apperrors.NewReconciliationError("beginning payment transaction", err)
	}
	defer tx.Rollback()

	order, err := s.orderRepo.FindByIDForUpdate(txCtx, tx, orderID)
	if err != nil {
		if _, ok := apperrors.IsNotFoundError(err); ok {
			s.logger.Warn("payment event for unknown order",
				zap.Uint("orderId", orderID),
				zap.String("transactionId", transactionID))
			s.orderMetrics.PaymentReconciliations.WithLabelValues("order_not_found").Inc()
			return false, nil
		}
		return false, apperrors.NewReconciliationError("loading order for reconciliation", err)
	}

	if order.PaymentStatus == domain.PaymentStatusCompleted {
		s.logger.Info("payment already completed, ignoring duplicate event",
			zap.Uint("orderId", orderID),
			zap.String("transactionId", transactionID))
		s.orderMetrics.PaymentReconciliations.WithLabelValues("duplicate").Inc()
		return true, nil
	}

	if !WithinTolerance(order.TotalAmount, amount, s.amountTolerance) {
		// Surfaced for manual review; the order stays untouched.
		s.logger.Error("payment amount mismatch",
			zap.Uint("orderId", orderID),
			zap.Int64("expected", int64(order.TotalAmount)),
			zap.Int64("received", amount),
			zap.String("transactionId", transactionID),
			zap.String("description", description))
		s.orderMetrics.PaymentReconciliations.WithLabelValues("amount_mismatch").Inc()
		return false, nil
	}

	if err := s.orderRepo.CompletePayment(txCtx, tx, orderID, paymentMethod); err != nil {
		return false, apperrors.NewReconciliationError("completing payment", err)
	}

	note := "Thanh toán tự động xác nhận qua Casso. Mã GD: " + transactionID
	if err := s.orderRepo.AppendNote(txCtx, tx, orderID, note); err != nil {
		return false, apperrors.NewReconciliationError("recording payment note", err)
	}

	if err := tx.Commit(); err != nil {
		return false, apperrors.NewReconciliationError("committing payment transaction", err)
	}

	order.PaymentStatus = domain.PaymentStatusCompleted
	order.PaymentMethod = paymentMethod

	s.notifier.NotifyPaymentConfirmed(order)
	s.orderMetrics.PaymentReconciliations.WithLabelValues("confirmed").Inc()
	s.logger.Info("payment verified",
		zap.Uint("orderId", orderID),
		zap.Int64("amount", amount),
		zap.String("transactionId", transactionID))

	return true, nil
}

// WithinTolerance compares the received amount against the order total
// using a fixed absolute tolerance in minor units, absorbing bank-side
// rounding.
func WithinTolerance(orderTotal float64, amount, tolerance int64) bool {
	expected := int64(orderTotal)
	diff := expected - amount
	if diff < 0 {
		diff = -diff
	}
	return diff <= tolerance
}
