package service

import (
	"context"
	"database/sql"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	cartrepository "dacsanviet/internal/cart/repository"
	"dacsanviet/internal/config"
	"dacsanviet/internal/domain"
	"dacsanviet/internal/dto"
	apperrors "dacsanviet/internal/errors"
	"dacsanviet/internal/metrics"
	"dacsanviet/internal/notification"
	"dacsanviet/internal/order/repository"
	productrepository "dacsanviet/internal/product/repository"
	"dacsanviet/internal/testutil"
)

func setupOrderService(t *testing.T) (*OrderService, *sql.DB) {
	t.Helper()

	db := testutil.SetupTestDB(t)
	testutil.SetupTestTables(t, db)
	testutil.CleanupTestDB(t, db)
	t.Cleanup(func() {
		testutil.CleanupTestDB(t, db)
		db.Close()
	})

	logger := zap.NewNop()
	productRepo := productrepository.NewMySQLRepository(db)
	cartRepo := cartrepository.NewMySQLCartItemRepository(db)

	svc := NewOrderService(
		db,
		repository.NewMySQLOrderRepository(db),
		repository.NewMySQLOrderItemRepository(db),
		NewCartResolver(cartRepo, logger),
		NewStockLedger(productRepo, notification.NewNopNotifier(), metrics.NewNopOrderMetrics(), logger, 10),
		notification.NewNopNotifier(),
		metrics.NewNopOrderMetrics(),
		NewOrderNumberGenerator(time.Now().UnixNano()),
		logger,
		config.ShippingConfig{FreeShippingThreshold: 500000, StandardFee: 30000},
		5*time.Second,
		3,
	)
	return svc, db
}

func insertTestProduct(t *testing.T, db *sql.DB, name string, price float64, stock int, active bool) uint {
	t.Helper()

	result, err := db.Exec(`
		INSERT INTO Product (name, description, price, imageUrl, categoryName, isActive, stockQuantity)
		VALUES (?, ?, ?, '', 'Đặc sản miền Bắc', ?, ?)`,
		name, name, price, active, stock)
	require.NoError(t, err)

	id, err := result.LastInsertId()
	require.NoError(t, err)
	return uint(id)
}

func stockQuantity(t *testing.T, db *sql.DB, productID uint) int {
	t.Helper()

	var quantity int
	err := db.QueryRow(`SELECT stockQuantity FROM Product WHERE id = ?`, productID).Scan(&quantity)
	require.NoError(t, err)
	return quantity
}

func clientCheckoutRequest(productID uint, quantity int, unitPrice float64) dto.CreateOrderRequest {
	subtotal := unitPrice * float64(quantity)
	shippingFee := 30000.0
	return dto.CreateOrderRequest{
		CustomerName:    "Nguyễn Văn An",
		CustomerPhone:   "0912345678",
		CustomerEmail:   "an@example.com",
		ShippingAddress: "12 Lý Thường Kiệt, Hà Nội",
		PaymentMethod:   "COD",
		Subtotal:        &subtotal,
		ShippingFee:     &shippingFee,
		Items: []dto.CartItemRequest{
			{ProductID: productID, Quantity: quantity, UnitPrice: unitPrice, ProductName: "client name"},
		},
	}
}

func TestCreateOrderClientItems(t *testing.T) {
	svc, db := setupOrderService(t)
	productID := insertTestProduct(t, db, "Chả mực Hạ Long", 150000, 10, true)

	order, err := svc.CreateOrder(context.Background(), clientCheckoutRequest(productID, 2, 150000))
	require.NoError(t, err)

	assert.Regexp(t, `^DSV\d{6}[A-Z0-9]{6}$`, order.OrderNumber)
	assert.Equal(t, string(domain.OrderStatusProcessing), order.Status)
	assert.Equal(t, string(domain.PaymentStatusPending), order.PaymentStatus)
	assert.Equal(t, 330000.0, order.TotalAmount)
	assert.Equal(t, 30000.0, order.ShippingFee)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "client name", order.Items[0].ProductName)
	assert.Equal(t, 150000.0, order.Items[0].UnitPrice)

	assert.Equal(t, 8, stockQuantity(t, db, productID))
}

func TestCreateOrderNonCODStartsPending(t *testing.T) {
	svc, db := setupOrderService(t)
	productID := insertTestProduct(t, db, "Nem chua Thanh Hóa", 80000, 10, true)

	req := clientCheckoutRequest(productID, 1, 80000)
	req.PaymentMethod = "BANK_TRANSFER"

	order, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	assert.Equal(t, string(domain.OrderStatusPending), order.Status)
}

func TestCreateOrderInsufficientStockLeavesNothingBehind(t *testing.T) {
	svc, db := setupOrderService(t)
	productID := insertTestProduct(t, db, "Bánh đậu xanh", 50000, 2, true)

	_, err := svc.CreateOrder(context.Background(), clientCheckoutRequest(productID, 3, 50000))

	ise, ok := apperrors.IsInsufficientStockError(err)
	require.True(t, ok)
	assert.Equal(t, 2, ise.Available)
	assert.Equal(t, 3, ise.Requested)

	assert.Equal(t, 2, stockQuantity(t, db, productID))

	var orderCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM Orders`).Scan(&orderCount))
	assert.Equal(t, 0, orderCount)

	var itemCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM OrderItems`).Scan(&itemCount))
	assert.Equal(t, 0, itemCount)
}

func TestCreateOrderFromPersistedCartRepricesServerSide(t *testing.T) {
	svc, db := setupOrderService(t)
	productID := insertTestProduct(t, db, "Chả mực Hạ Long", 150000, 10, true)

	userID := uint(7)
	_, err := db.Exec(`INSERT INTO CartItems (userId, productId, quantity) VALUES (?, ?, 2)`, userID, productID)
	require.NoError(t, err)

	order, err := svc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		UserID:          &userID,
		CustomerName:    "Trần Thị Bình",
		CustomerPhone:   "0987654321",
		ShippingAddress: "45 Trần Phú, Đà Nẵng",
		PaymentMethod:   "COD",
	})
	require.NoError(t, err)

	// Persisted carts are priced from the product rows, never the client.
	assert.Equal(t, 330000.0, order.TotalAmount)
	assert.Equal(t, 30000.0, order.ShippingFee)
	require.Len(t, order.Items, 1)
	assert.Equal(t, "Chả mực Hạ Long", order.Items[0].ProductName)
	assert.Equal(t, 150000.0, order.Items[0].UnitPrice)

	var cartCount int
	require.NoError(t, db.QueryRow(`SELECT COUNT(*) FROM CartItems WHERE userId = ?`, userID).Scan(&cartCount))
	assert.Equal(t, 0, cartCount, "persisted cart must be cleared after checkout")
}

func TestCreateOrderFreeShippingOverThreshold(t *testing.T) {
	svc, db := setupOrderService(t)
	productID := insertTestProduct(t, db, "Yến sào Khánh Hòa", 600000, 5, true)

	userID := uint(8)
	_, err := db.Exec(`INSERT INTO CartItems (userId, productId, quantity) VALUES (?, ?, 1)`, userID, productID)
	require.NoError(t, err)

	order, err := svc.CreateOrder(context.Background(), dto.CreateOrderRequest{
		UserID:          &userID,
		CustomerName:    "Trần Thị Bình",
		CustomerPhone:   "0987654321",
		ShippingAddress: "45 Trần Phú, Đà Nẵng",
		PaymentMethod:   "COD",
	})
	require.NoError(t, err)

	assert.Equal(t, 0.0, order.ShippingFee)
	assert.Equal(t, 600000.0, order.TotalAmount)
}

func TestCancelOrderRestoresStock(t *testing.T) {
	svc, db := setupOrderService(t)
	productID := insertTestProduct(t, db, "Nem chua Thanh Hóa", 80000, 10, true)

	userID := uint(7)
	req := clientCheckoutRequest(productID, 3, 80000)
	req.UserID = &userID

	order, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, 7, stockQuantity(t, db, productID))

	cancelled, err := svc.CancelOrder(context.Background(), order.ID, userID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.OrderStatusCancelled), cancelled.Status)
	assert.Equal(t, 10, stockQuantity(t, db, productID))
}

func TestCancelOrderRejectsOtherUsers(t *testing.T) {
	svc, db := setupOrderService(t)
	productID := insertTestProduct(t, db, "Nem chua Thanh Hóa", 80000, 10, true)

	userID := uint(7)
	req := clientCheckoutRequest(productID, 1, 80000)
	req.UserID = &userID

	order, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.CancelOrder(context.Background(), order.ID, 99)

	_, ok := apperrors.IsNotOwnerError(err)
	assert.True(t, ok)
	assert.Equal(t, 9, stockQuantity(t, db, productID))
}

func TestConfirmDeliveryCODFlow(t *testing.T) {
	svc, db := setupOrderService(t)
	productID := insertTestProduct(t, db, "Chả mực Hạ Long", 150000, 10, true)

	userID := uint(7)
	req := clientCheckoutRequest(productID, 1, 150000)
	req.UserID = &userID

	order, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)
	require.Equal(t, string(domain.OrderStatusProcessing), order.Status)

	// Cannot confirm before the order ships.
	_, err = svc.ConfirmDelivery(context.Background(), order.ID, userID)
	ite, ok := apperrors.IsInvalidTransitionError(err)
	require.True(t, ok)
	assert.Equal(t, "PROCESSING", ite.From)
	assert.Equal(t, "DELIVERED", ite.To)

	tracking := "GHN123456"
	_, err = svc.UpdateOrderStatus(context.Background(), order.ID, dto.UpdateOrderStatusRequest{
		Status:         "SHIPPED",
		TrackingNumber: &tracking,
	})
	require.NoError(t, err)

	confirmed, err := svc.ConfirmDelivery(context.Background(), order.ID, userID)
	require.NoError(t, err)

	assert.Equal(t, string(domain.OrderStatusDelivered), confirmed.Status)
	assert.Equal(t, string(domain.PaymentStatusCompleted), confirmed.PaymentStatus)
	require.NotNil(t, confirmed.DeliveredDate)
	require.NotNil(t, confirmed.DeliveryConfirmedAt)

	// Terminal: nothing moves a delivered order.
	_, err = svc.UpdateOrderStatus(context.Background(), order.ID, dto.UpdateOrderStatusRequest{Status: "SHIPPED"})
	_, ok = apperrors.IsInvalidTransitionError(err)
	assert.True(t, ok)
}

func TestConfirmDeliveryRejectsNonCOD(t *testing.T) {
	svc, db := setupOrderService(t)
	productID := insertTestProduct(t, db, "Nem chua Thanh Hóa", 80000, 10, true)

	userID := uint(7)
	req := clientCheckoutRequest(productID, 1, 80000)
	req.UserID = &userID
	req.PaymentMethod = "BANK_TRANSFER"

	order, err := svc.CreateOrder(context.Background(), req)
	require.NoError(t, err)

	_, err = svc.UpdateOrderStatus(context.Background(), order.ID, dto.UpdateOrderStatusRequest{Status: "CONFIRMED"})
	require.NoError(t, err)
	_, err = svc.UpdateOrderStatus(context.Background(), order.ID, dto.UpdateOrderStatusRequest{Status: "SHIPPED"})
	require.NoError(t, err)

	_, err = svc.ConfirmDelivery(context.Background(), order.ID, userID)

	_, ok := apperrors.IsValidationError(err)
	assert.True(t, ok)
}

func TestUpdateOrderStatusToCancelledRestoresStock(t *testing.T) {
	svc, db := setupOrderService(t)
	productID := insertTestProduct(t, db, "Bánh đậu xanh", 50000, 10, true)

	order, err := svc.CreateOrder(context.Background(), clientCheckoutRequest(productID, 4, 50000))
	require.NoError(t, err)
	require.Equal(t, 6, stockQuantity(t, db, productID))

	_, err = svc.UpdateOrderStatus(context.Background(), order.ID, dto.UpdateOrderStatusRequest{Status: "CANCELLED"})
	require.NoError(t, err)

	assert.Equal(t, 10, stockQuantity(t, db, productID))
}

func TestGetOrderByNumber(t *testing.T) {
	svc, db := setupOrderService(t)
	productID := insertTestProduct(t, db, "Chả mực Hạ Long", 150000, 10, true)

	created, err := svc.CreateOrder(context.Background(), clientCheckoutRequest(productID, 1, 150000))
	require.NoError(t, err)

	found, err := svc.GetOrderByNumber(context.Background(), created.OrderNumber)
	require.NoError(t, err)
	assert.Equal(t, created.ID, found.ID)
	require.Len(t, found.Items, 1)

	_, err = svc.GetOrderByNumber(context.Background(), "DSV000000XXXXXX")
	_, ok := apperrors.IsNotFoundError(err)
	assert.True(t, ok)
}

func TestConcurrentCheckoutLastUnit(t *testing.T) {
	svc, db := setupOrderService(t)
	productID := insertTestProduct(t, db, "Yến sào Khánh Hòa", 600000, 1, true)

	var wg sync.WaitGroup
	errs := make([]error, 2)
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.CreateOrder(context.Background(), clientCheckoutRequest(productID, 1, 600000))
		}(i)
	}
	wg.Wait()

	var succeeded, insufficient int
	for _, err := range errs {
		if err == nil {
			succeeded++
			continue
		}
		if _, ok := apperrors.IsInsufficientStockError(err); ok {
			insufficient++
		}
	}

	assert.Equal(t, 1, succeeded, "exactly one checkout must win the last unit")
	assert.Equal(t, 1, insufficient, "the loser must see insufficient stock")
	assert.Equal(t, 0, stockQuantity(t, db, productID))
}
