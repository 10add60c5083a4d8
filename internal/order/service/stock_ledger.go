package service

import (
	"context"
	"database/sql"

	"go.uber.org/zap"

	"dacsanviet/internal/domain"
	apperrors "dacsanviet/internal/errors"
	"dacsanviet/internal/metrics"
	"dacsanviet/internal/notification"
)

type ProductRepository interface {
	FindByID(ctx context.Context, id uint) (*domain.Product, error)
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error)
	UpdateStockQuantity(ctx context.Context, tx *sql.Tx, id uint, quantity int) error
}

// StockLedger is the sole writer of stock counts during order placement
// and cancellation. Reserve and Restore run inside the caller's
// transaction; stock alerts are dispatched separately, after commit.
type StockLedger struct {
	productRepo       ProductRepository
	notifier          notification.Notifier
	orderMetrics      *metrics.OrderMetrics
	logger            *zap.Logger
	lowStockThreshold int
}

func NewStockLedger(
	productRepo ProductRepository,
	notifier notification.Notifier,
	orderMetrics *metrics.OrderMetrics,
	logger *zap.Logger,
	lowStockThreshold int,
) *StockLedger {
	return &StockLedger{
		productRepo:       productRepo,
		notifier:          notifier,
		orderMetrics:      orderMetrics,
		logger:            logger,
		lowStockThreshold: lowStockThreshold,
	}
}

// Reserve atomically checks and decrements stock for one product under
// a row lock. The returned product snapshot carries the post-reservation
// stock quantity.
func (l *StockLedger) Reserve(ctx context.Context, tx *sql.Tx, productID uint, quantity int) (*domain.Product, error) {
	product, err := l.productRepo.FindByIDForUpdate(ctx, tx, productID)
	if err != nil {
		return nil, err
	}

	if !product.IsActive {
		l.orderMetrics.ReservationFailures.WithLabelValues("product_unavailable").Inc()
		return nil, apperrors.NewProductUnavailableError(product.ID, product.Name)
	}

	if !product.HasStockFor(quantity) {
		l.orderMetrics.ReservationFailures.WithLabelValues("insufficient_stock").Inc()
		return nil, apperrors.NewInsufficientStockError(product.ID, product.Name, product.StockQuantity, quantity)
	}

	newQuantity := product.StockQuantity - quantity
	if err := l.productRepo.UpdateStockQuantity(ctx, tx, product.ID, newQuantity); err != nil {
		return nil, err
	}

	product.StockQuantity = newQuantity
	l.logger.Debug("stock reserved",
		zap.Uint("productId", product.ID),
		zap.Int("quantity", quantity),
		zap.Int("remaining", newQuantity))

	return product, nil
}

// Restore puts quantity back on cancellation. No upper-bound check:
// restoring never re-validates against catalog maxima.
func (l *StockLedger) Restore(ctx context.Context, tx *sql.Tx, productID uint, quantity int) error {
	product, err := l.productRepo.FindByIDForUpdate(ctx, tx, productID)
	if err != nil {
		return err
	}

	newQuantity := product.StockQuantity + quantity
	if err := l.productRepo.UpdateStockQuantity(ctx, tx, product.ID, newQuantity); err != nil {
		return err
	}

	l.logger.Debug("stock restored",
		zap.Uint("productId", product.ID),
		zap.Int("quantity", quantity),
		zap.Int("total", newQuantity))

	return nil
}

// PublishStockAlerts inspects post-reservation snapshots and fires
// low-stock / out-of-stock notifications. Must be called after the
// reservation transaction committed; failures never surface.
func (l *StockLedger) PublishStockAlerts(products []*domain.Product) {
	for _, p := range products {
		if p.StockQuantity == 0 {
			l.notifier.NotifyOutOfStock(p)
			continue
		}
		if p.StockQuantity <= l.lowStockThreshold && p.IsActive {
			l.notifier.NotifyLowStock(p)
		}
	}
}
