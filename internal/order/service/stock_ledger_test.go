package service

import (
	"context"
	"database/sql"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"dacsanviet/internal/domain"
	apperrors "dacsanviet/internal/errors"
	"dacsanviet/internal/metrics"
)

type mockProductRepository struct {
	findByIDFunc            func(ctx context.Context, id uint) (*domain.Product, error)
	findByIDForUpdateFunc   func(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error)
	updateStockQuantityFunc func(ctx context.Context, tx *sql.Tx, id uint, quantity int) error
}

func (m *mockProductRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	return m.findByIDFunc(ctx, id)
}

func (m *mockProductRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error) {
	return m.findByIDForUpdateFunc(ctx, tx, id)
}

func (m *mockProductRepository) UpdateStockQuantity(ctx context.Context, tx *sql.Tx, id uint, quantity int) error {
	return m.updateStockQuantityFunc(ctx, tx, id, quantity)
}

type recordingNotifier struct {
	lowStock []uint
	outStock []uint
}

func (n *recordingNotifier) NotifyOrderStatus(*domain.Order, string) {}
func (n *recordingNotifier) NotifyOrderConfirmation(*domain.Order)   {}
func (n *recordingNotifier) NotifyPaymentConfirmed(*domain.Order)    {}

func (n *recordingNotifier) NotifyLowStock(p *domain.Product) {
	n.lowStock = append(n.lowStock, p.ID)
}

func (n *recordingNotifier) NotifyOutOfStock(p *domain.Product) {
	n.outStock = append(n.outStock, p.ID)
}

func TestReserveDecrementsStock(t *testing.T) {
	var updatedTo int
	repo := &mockProductRepository{
		findByIDForUpdateFunc: func(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Nem chua Thanh Hóa", IsActive: true, StockQuantity: 5}, nil
		},
		updateStockQuantityFunc: func(ctx context.Context, tx *sql.Tx, id uint, quantity int) error {
			updatedTo = quantity
			return nil
		},
	}
	ledger := NewStockLedger(repo, &recordingNotifier{}, metrics.NewNopOrderMetrics(), zap.NewNop(), 10)

	product, err := ledger.Reserve(context.Background(), nil, 3, 2)

	require.NoError(t, err)
	assert.Equal(t, 3, updatedTo)
	assert.Equal(t, 3, product.StockQuantity)
}

func TestReserveInsufficientStock(t *testing.T) {
	repo := &mockProductRepository{
		findByIDForUpdateFunc: func(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Chả mực Hạ Long", IsActive: true, StockQuantity: 2}, nil
		},
		updateStockQuantityFunc: func(ctx context.Context, tx *sql.Tx, id uint, quantity int) error {
			t.Fatal("stock must not change when the check fails")
			return nil
		},
	}
	ledger := NewStockLedger(repo, &recordingNotifier{}, metrics.NewNopOrderMetrics(), zap.NewNop(), 10)

	_, err := ledger.Reserve(context.Background(), nil, 3, 3)

	ise, ok := apperrors.IsInsufficientStockError(err)
	require.True(t, ok)
	assert.Equal(t, 2, ise.Available)
	assert.Equal(t, 3, ise.Requested)
}

func TestReserveExactRemainingStock(t *testing.T) {
	repo := &mockProductRepository{
		findByIDForUpdateFunc: func(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Bánh đậu xanh", IsActive: true, StockQuantity: 2}, nil
		},
		updateStockQuantityFunc: func(ctx context.Context, tx *sql.Tx, id uint, quantity int) error {
			return nil
		},
	}
	ledger := NewStockLedger(repo, &recordingNotifier{}, metrics.NewNopOrderMetrics(), zap.NewNop(), 10)

	product, err := ledger.Reserve(context.Background(), nil, 3, 2)

	require.NoError(t, err)
	assert.Equal(t, 0, product.StockQuantity)
}

func TestReserveInactiveProduct(t *testing.T) {
	repo := &mockProductRepository{
		findByIDForUpdateFunc: func(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Mắm tôm Thanh Hóa", IsActive: false, StockQuantity: 10}, nil
		},
	}
	ledger := NewStockLedger(repo, &recordingNotifier{}, metrics.NewNopOrderMetrics(), zap.NewNop(), 10)

	_, err := ledger.Reserve(context.Background(), nil, 3, 1)

	_, ok := apperrors.IsProductUnavailableError(err)
	assert.True(t, ok)
}

func TestRestoreIncrementsStock(t *testing.T) {
	var updatedTo int
	repo := &mockProductRepository{
		findByIDForUpdateFunc: func(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error) {
			return &domain.Product{ID: id, Name: "Nem chua Thanh Hóa", IsActive: true, StockQuantity: 1}, nil
		},
		updateStockQuantityFunc: func(ctx context.Context, tx *sql.Tx, id uint, quantity int) error {
			updatedTo = quantity
			return nil
		},
	}
	ledger := NewStockLedger(repo, &recordingNotifier{}, metrics.NewNopOrderMetrics(), zap.NewNop(), 10)

	err := ledger.Restore(context.Background(), nil, 3, 4)

	require.NoError(t, err)
	assert.Equal(t, 5, updatedTo)
}

func TestPublishStockAlerts(t *testing.T) {
	notifier := &recordingNotifier{}
	ledger := NewStockLedger(&mockProductRepository{}, notifier, metrics.NewNopOrderMetrics(), zap.NewNop(), 10)

	ledger.PublishStockAlerts([]*domain.Product{
		{ID: 1, IsActive: true, StockQuantity: 0},
		{ID: 2, IsActive: true, StockQuantity: 10},
		{ID: 3, IsActive: true, StockQuantity: 11},
		{ID: 4, IsActive: false, StockQuantity: 5},
	})

	assert.Equal(t, []uint{1}, notifier.outStock)
	assert.Equal(t, []uint{2}, notifier.lowStock)
}
