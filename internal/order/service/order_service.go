package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"math/rand"
	"sort"
	"strings"
	"time"

	"github.com/go-sql-driver/mysql"
	"go.uber.org/zap"

	"dacsanviet/internal/config"
	"dacsanviet/internal/domain"
	"dacsanviet/internal/dto"
	apperrors "dacsanviet/internal/errors"
	"dacsanviet/internal/metrics"
	"dacsanviet/internal/notification"
)

type TransactionManager interface {
	BeginTx(ctx context.Context, opts *sql.TxOptions) (*sql.Tx, error)
}

type OrderRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error)
	FindByID(ctx context.Context, id uint) (*domain.Order, error)
	FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Order, error)
	FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error)
	UpdateStatus(ctx context.Context, tx *sql.Tx, id uint, status domain.OrderStatus) error
	UpdateTotals(ctx context.Context, tx *sql.Tx, id uint, totalAmount, shippingFee float64) error
	SetTrackingNumber(ctx context.Context, tx *sql.Tx, id uint, trackingNumber string) error
	AppendNote(ctx context.Context, tx *sql.Tx, id uint, note string) error
	SetShippedDate(ctx context.Context, tx *sql.Tx, id uint, shippedAt time.Time) error
	SetDeliveredDate(ctx context.Context, tx *sql.Tx, id uint, deliveredAt time.Time) error
	SetDeliveryConfirmedAt(ctx context.Context, tx *sql.Tx, id uint, confirmedAt time.Time) error
	CompletePayment(ctx context.Context, tx *sql.Tx, id uint, paymentMethod string) error
}

type OrderItemRepository interface {
	Insert(ctx context.Context, tx *sql.Tx, item domain.OrderItem) (uint, error)
	FindByOrderID(ctx context.Context, orderID uint) ([]domain.OrderItem, error)
}

type CartSnapshotResolver interface {
	Resolve(ctx context.Context, req dto.CreateOrderRequest) (*dto.ResolvedCart, error)
	ClearPersistedCart(ctx context.Context, userID uint)
}

type Ledger interface {
	Reserve(ctx context.Context, tx *sql.Tx, productID uint, quantity int) (*domain.Product, error)
	Restore(ctx context.Context, tx *sql.Tx, productID uint, quantity int) error
	PublishStockAlerts(products []*domain.Product)
}

// OrderService orchestrates cart resolution, stock reservation and the
// order/item writes into single transactions, and owns the order status
// workflow.
type OrderService struct {
	db               TransactionManager
	orderRepo        OrderRepository
	itemRepo         OrderItemRepository
	resolver         CartSnapshotResolver
	ledger           Ledger
	notifier         notification.Notifier
	orderMetrics     *metrics.OrderMetrics
	orderNumbers     *OrderNumberGenerator
	logger           *zap.Logger
	shipping         config.ShippingConfig
	txTimeout        time.Duration
	maxRetryAttempts int
}

func NewOrderService(
	db TransactionManager,
	orderRepo OrderRepository,
	itemRepo OrderItemRepository,
	resolver CartSnapshotResolver,
	ledger Ledger,
	notifier notification.Notifier,
	orderMetrics *metrics.OrderMetrics,
	orderNumbers *OrderNumberGenerator,
	logger *zap.Logger,
	shipping config.ShippingConfig,
	txTimeout time.Duration,
	maxRetryAttempts int,
) *OrderService {
	return &OrderService{
		db:               db,
		orderRepo:        orderRepo,
		itemRepo:         itemRepo,
		resolver:         resolver,
		ledger:           ledger,
		notifier:         notifier,
		orderMetrics:     orderMetrics,
		orderNumbers:     orderNumbers,
		logger:           logger,
		shipping:         shipping,
		txTimeout:        txTimeout,
		maxRetryAttempts: maxRetryAttempts,
	}
}

type createResult struct {
	order    *domain.Order
	items    []domain.OrderItem
	products []*domain.Product
}

func (s *OrderService) CreateOrder(ctx context.Context, req dto.CreateOrderRequest) (*dto.OrderResponse, error) {
	if err := validateCreateOrderRequest(req); err != nil {
		s.orderMetrics.OrderCreateFailures.WithLabelValues("validation").Inc()
		return nil, err
	}

	resolved, err := s.resolver.Resolve(ctx, req)
	if err != nil {
		s.orderMetrics.OrderCreateFailures.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	var result *createResult
	err = s.withDeadlockRetry(ctx, "create-order", func() error {
		var txErr error
		result, txErr = s.createOrderTx(ctx, req, resolved)
		return txErr
	})
	if err != nil {
		s.orderMetrics.OrderCreateFailures.WithLabelValues(failureReason(err)).Inc()
		return nil, err
	}

	// Post-commit side effects. None of these can fail the order.
	if resolved.UserID != nil {
		s.resolver.ClearPersistedCart(ctx, *resolved.UserID)
	}
	s.ledger.PublishStockAlerts(result.products)
	s.notifier.NotifyOrderConfirmation(result.order)
	s.orderMetrics.OrdersCreated.Inc()

	s.logger.Info("order created",
		zap.Uint("orderId", result.order.ID),
		zap.String("orderNumber", result.order.OrderNumber),
		zap.String("status", string(result.order.Status)),
		zap.String("source", string(resolved.Source)),
		zap.Float64("totalAmount", result.order.TotalAmount))

	return toOrderResponse(result.order, result.items), nil
}

func (s *OrderService) createOrderTx(ctx context.Context, req dto.CreateOrderRequest, resolved *dto.ResolvedCart) (*createResult, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("beginning order transaction: %w", err)
	}
	// MySQL ignores rollback if already committed.
	defer tx.Rollback()

	now := time.Now()
	order := &domain.Order{
		OrderNumber:     s.orderNumbers.Next(),
		UserID:          req.UserID,
		CustomerName:    req.CustomerName,
		CustomerPhone:   req.CustomerPhone,
		CustomerEmail:   req.CustomerEmail,
		ShippingAddress: req.ShippingAddress,
		Status:          domain.InitialStatus(req.PaymentMethod),
		PaymentMethod:   req.PaymentMethod,
		PaymentStatus:   domain.PaymentStatusPending,
		Notes:           req.Notes,
		OrderDate:       now,
		CreatedAt:       now,
		UpdatedAt:       now,
	}

	// Client-item checkouts keep the client-supplied totals as-is; the
	// storefront priced the cart. Persisted-cart checkouts are repriced
	// below from the locked product rows.
	if resolved.Source == dto.CartSourceClientItems {
		if req.Subtotal != nil {
			order.TotalAmount = *req.Subtotal
		}
		if req.ShippingFee != nil {
			order.ShippingFee = *req.ShippingFee
		}
		order.TotalAmount += order.ShippingFee + order.TaxAmount
	}

	orderID, err := s.orderRepo.Insert(txCtx, tx, order)
	if err != nil {
		return nil, err
	}
	order.ID = orderID

	// Lock product rows in ascending id order so concurrent checkouts
	// cannot deadlock on each other.
	lines := make([]dto.PurchaseLine, len(resolved.Lines))
	copy(lines, resolved.Lines)
	sort.Slice(lines, func(i, j int) bool { return lines[i].ProductID < lines[j].ProductID })

	var (
		items    []domain.OrderItem
		products []*domain.Product
		subtotal float64
	)
	for _, line := range lines {
		product, err := s.ledger.Reserve(txCtx, tx, line.ProductID, line.Quantity)
		if err != nil {
			if resolved.Source == dto.CartSourcePersisted {
				if pue, ok := apperrors.IsProductUnavailableError(err); ok {
					return nil, apperrors.NewCartInvalidError(pue.ProductID, pue.ProductName, "product is no longer available")
				}
			}
			return nil, err
		}

		item := domain.OrderItem{
			OrderID:            orderID,
			ProductID:          product.ID,
			ProductDescription: product.Description,
			CategoryName:       product.CategoryName,
			Quantity:           line.Quantity,
			CreatedAt:          now,
		}
		if resolved.Source == dto.CartSourceClientItems {
			item.UnitPrice = line.UnitPrice
			item.ProductName = line.ProductName
			item.ProductImageURL = line.ProductImageURL
		}
		if item.ProductName == "" {
			item.ProductName = product.Name
		}
		if item.ProductImageURL == "" {
			item.ProductImageURL = product.ImageURL
		}
		if resolved.Source == dto.CartSourcePersisted {
			item.UnitPrice = product.Price
		}

		itemID, err := s.itemRepo.Insert(txCtx, tx, item)
		if err != nil {
			return nil, err
		}
		item.ID = itemID

		subtotal += item.LineTotal()
		items = append(items, item)
		products = append(products, product)
	}

	if resolved.Source == dto.CartSourcePersisted {
		order.ShippingFee = s.shippingFee(subtotal)
		order.TotalAmount = subtotal + order.ShippingFee + order.TaxAmount
		if err := s.orderRepo.UpdateTotals(txCtx, tx, orderID, order.TotalAmount, order.ShippingFee); err != nil {
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing order transaction: %w", err)
	}

	return &createResult{order: order, items: items, products: products}, nil
}

func (s *OrderService) CancelOrder(ctx context.Context, orderID, userID uint) (*dto.OrderResponse, error) {
	var (
		order *domain.Order
		items []domain.OrderItem
	)
	err := s.withDeadlockRetry(ctx, "cancel-order", func() error {
		var txErr error
		order, items, txErr = s.cancelOrderTx(ctx, orderID, userID)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyOrderStatus(order, "Your order has been cancelled and inventory has been restored.")
	s.orderMetrics.OrdersCancelled.Inc()
	s.logger.Info("order cancelled",
		zap.Uint("orderId", order.ID),
		zap.String("orderNumber", order.OrderNumber))

	return toOrderResponse(order, items), nil
}

func (s *OrderService) cancelOrderTx(ctx context.Context, orderID, userID uint) (*domain.Order, []domain.OrderItem, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, nil, fmt.Errorf("beginning cancel transaction: %w", err)
	}
	defer tx.Rollback()

	order, err := s.orderRepo.FindByIDForUpdate(txCtx, tx, orderID)
	if err != nil {
		return nil, nil, err
	}

	if !order.IsGuest() && !order.BelongsTo(userID) {
		return nil, nil, apperrors.NewNotOwnerError(fmt.Sprintf("order %d does not belong to user %d", orderID, userID))
	}

	if !order.CanBeCancelled() {
		return nil, nil, apperrors.NewInvalidTransitionError(string(order.Status), string(domain.OrderStatusCancelled))
	}

	// Items are immutable after creation, so a plain read is consistent
	// even though it runs outside the row lock.
	items, err := s.itemRepo.FindByOrderID(txCtx, orderID)
	if err != nil {
		return nil, nil, err
	}

	// Restoration is part of the same atomic unit as the status write:
	// if any restore fails the whole cancellation fails.
	for _, item := range items {
		if err := s.ledger.Restore(txCtx, tx, item.ProductID, item.Quantity); err != nil {
			return nil, nil, err
		}
	}

	if err := s.orderRepo.UpdateStatus(txCtx, tx, orderID, domain.OrderStatusCancelled); err != nil {
		return nil, nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, nil, fmt.Errorf("committing cancel transaction: %w", err)
	}

	order.Status = domain.OrderStatusCancelled
	return order, items, nil
}

// UpdateOrderStatus is the administrative transition entry point. A
// transition to CANCELLED restores stock exactly like a customer
// cancellation.
func (s *OrderService) UpdateOrderStatus(ctx context.Context, orderID uint, req dto.UpdateOrderStatusRequest) (*dto.OrderResponse, error) {
	newStatus := domain.OrderStatus(req.Status)
	if !newStatus.Valid() {
		return nil, apperrors.NewValidationError(fmt.Sprintf("unknown order status: %s", req.Status))
	}

	var order *domain.Order
	err := s.withDeadlockRetry(ctx, "update-order-status", func() error {
		var txErr error
		order, txErr = s.updateStatusTx(ctx, orderID, newStatus, req)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyOrderStatus(order, domain.StatusChangeMessage(newStatus))
	if newStatus == domain.OrderStatusCancelled {
		s.orderMetrics.OrdersCancelled.Inc()
	}
	s.logger.Info("order status updated",
		zap.Uint("orderId", order.ID),
		zap.String("status", string(newStatus)))

	items, err := s.itemRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

func (s *OrderService) updateStatusTx(ctx context.Context, orderID uint, newStatus domain.OrderStatus, req dto.UpdateOrderStatusRequest) (*domain.Order, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("beginning status transaction: %w", err)
	}
	defer tx.Rollback()

	order, err := s.orderRepo.FindByIDForUpdate(txCtx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.Status.CanTransitionTo(newStatus) {
		return nil, apperrors.NewInvalidTransitionError(string(order.Status), string(newStatus))
	}

	if newStatus == domain.OrderStatusCancelled {
		items, err := s.itemRepo.FindByOrderID(txCtx, orderID)
		if err != nil {
			return nil, err
		}
		for _, item := range items {
			if err := s.ledger.Restore(txCtx, tx, item.ProductID, item.Quantity); err != nil {
				return nil, err
			}
		}
	}

	if err := s.orderRepo.UpdateStatus(txCtx, tx, orderID, newStatus); err != nil {
		return nil, err
	}

	now := time.Now()
	switch newStatus {
	case domain.OrderStatusShipped:
		if err := s.orderRepo.SetShippedDate(txCtx, tx, orderID, now); err != nil {
			return nil, err
		}
		order.ShippedDate = &now
	case domain.OrderStatusDelivered:
		if err := s.orderRepo.SetDeliveredDate(txCtx, tx, orderID, now); err != nil {
			return nil, err
		}
		order.DeliveredDate = &now
	}

	if req.TrackingNumber != nil {
		if err := s.orderRepo.SetTrackingNumber(txCtx, tx, orderID, *req.TrackingNumber); err != nil {
			return nil, err
		}
		order.TrackingNumber = req.TrackingNumber
	}

	if req.Notes != nil && *req.Notes != "" {
		if err := s.orderRepo.AppendNote(txCtx, tx, orderID, *req.Notes); err != nil {
			return nil, err
		}
		order.Notes = appendNoteText(order.Notes, *req.Notes)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing status transaction: %w", err)
	}

	order.Status = newStatus
	return order, nil
}

// ConfirmDelivery is the guarded COD hand-off: only the order's owner
// (guest orders skip the check) can confirm a SHIPPED COD order, and the
// DELIVERED status and COMPLETED payment status land atomically.
func (s *OrderService) ConfirmDelivery(ctx context.Context, orderID, userID uint) (*dto.OrderResponse, error) {
	var order *domain.Order
	err := s.withDeadlockRetry(ctx, "confirm-delivery", func() error {
		var txErr error
		order, txErr = s.confirmDeliveryTx(ctx, orderID, userID)
		return txErr
	})
	if err != nil {
		return nil, err
	}

	s.notifier.NotifyOrderStatus(order, "Cảm ơn bạn đã xác nhận nhận hàng. Đơn hàng đã được hoàn tất.")
	s.logger.Info("delivery confirmed",
		zap.Uint("orderId", order.ID),
		zap.String("orderNumber", order.OrderNumber))

	items, err := s.itemRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	return toOrderResponse(order, items), nil
}

func (s *OrderService) confirmDeliveryTx(ctx context.Context, orderID, userID uint) (*domain.Order, error) {
	txCtx, cancel := context.WithTimeout(ctx, s.txTimeout)
	defer cancel()

	tx, err := s.db.BeginTx(txCtx, &sql.TxOptions{Isolation: sql.LevelRepeatableRead})
	if err != nil {
		return nil, fmt.Errorf("beginning delivery transaction: %w", err)
	}
	defer tx.Rollback()

	order, err := s.orderRepo.FindByIDForUpdate(txCtx, tx, orderID)
	if err != nil {
		return nil, err
	}

	if !order.IsGuest() && !order.BelongsTo(userID) {
		return nil, apperrors.NewNotOwnerError(fmt.Sprintf("order %d does not belong to user %d", orderID, userID))
	}

	if order.PaymentMethod != domain.PaymentMethodCOD {
		return nil, apperrors.NewValidationError("delivery confirmation is only available for COD orders")
	}

	if order.Status != domain.OrderStatusShipped {
		return nil, apperrors.NewInvalidTransitionError(string(order.Status), string(domain.OrderStatusDelivered))
	}

	now := time.Now()
	if err := s.orderRepo.UpdateStatus(txCtx, tx, orderID, domain.OrderStatusDelivered); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SetDeliveredDate(txCtx, tx, orderID, now); err != nil {
		return nil, err
	}
	if err := s.orderRepo.SetDeliveryConfirmedAt(txCtx, tx, orderID, now); err != nil {
		return nil, err
	}
	if err := s.orderRepo.CompletePayment(txCtx, tx, orderID, order.PaymentMethod); err != nil {
		return nil, err
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("committing delivery transaction: %w", err)
	}

	order.Status = domain.OrderStatusDelivered
	order.PaymentStatus = domain.PaymentStatusCompleted
	order.DeliveredDate = &now
	order.DeliveryConfirmedAt = &now
	return order, nil
}

func (s *OrderService) GetOrder(ctx context.Context, orderID uint) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByOrderID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	return toOrderResponse(order, items), nil
}

func (s *OrderService) GetOrderByNumber(ctx context.Context, orderNumber string) (*dto.OrderResponse, error) {
	order, err := s.orderRepo.FindByOrderNumber(ctx, orderNumber)
	if err != nil {
		return nil, err
	}

	items, err := s.itemRepo.FindByOrderID(ctx, order.ID)
	if err != nil {
		return nil, err
	}

	return toOrderResponse(order, items), nil
}

func (s *OrderService) shippingFee(subtotal float64) float64 {
	if subtotal >= s.shipping.FreeShippingThreshold {
		return 0
	}
	return s.shipping.StandardFee
}

func (s *OrderService) withDeadlockRetry(ctx context.Context, operation string, fn func() error) error {
	backoffs := []time.Duration{0, 100 * time.Millisecond, 200 * time.Millisecond}

	for attempt := 1; attempt <= s.maxRetryAttempts; attempt++ {
		err := fn()
		if err == nil {
			return nil
		}
		if !isDeadlockError(err) {
			return err
		}
		if attempt == s.maxRetryAttempts {
			break
		}

		idx := attempt - 1
		if idx >= len(backoffs) {
			idx = len(backoffs) - 1
		}
		jitter := time.Duration(float64(backoffs[idx]) * (0.8 + rand.Float64()*0.4))
		s.logger.Warn("deadlock detected, retrying",
			zap.String("operation", operation),
			zap.Int("attempt", attempt),
			zap.Int("maxAttempts", s.maxRetryAttempts))
		time.Sleep(backoffs[idx] + jitter)
	}

	return apperrors.NewDeadlockError("max retries exceeded")
}

func isDeadlockError(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) {
		return mysqlErr.Number == 1213 || mysqlErr.Number == 1205
	}
	return false
}

// validateCreateOrderRequest enforces the guest and COD preconditions:
// COD orders need name, phone and a shipping address; guest orders
// additionally need an email so the customer can be reached at all.
func validateCreateOrderRequest(req dto.CreateOrderRequest) error {
	var details []apperrors.ValidationDetail

	requireField := func(value, field, message string) {
		if strings.TrimSpace(value) == "" {
			details = append(details, apperrors.ValidationDetail{Field: field, Message: message})
		}
	}

	if req.PaymentMethod == domain.PaymentMethodCOD {
		requireField(req.CustomerName, "customerName", "customer name is required for COD orders")
		requireField(req.CustomerPhone, "customerPhone", "customer phone is required for COD orders")
		requireField(req.ShippingAddress, "shippingAddress", "shipping address is required for COD orders")
	}

	if req.UserID == nil {
		requireField(req.CustomerName, "customerName", "customer name is required for guest orders")
		requireField(req.CustomerPhone, "customerPhone", "customer phone is required for guest orders")
		requireField(req.CustomerEmail, "customerEmail", "customer email is required for guest orders")
		requireField(req.ShippingAddress, "shippingAddress", "shipping address is required for guest orders")
	}

	if len(details) > 0 {
		return apperrors.NewValidationError("order validation failed", dedupeDetails(details)...)
	}

	return nil
}

func dedupeDetails(details []apperrors.ValidationDetail) []apperrors.ValidationDetail {
	seen := make(map[string]bool, len(details))
	out := details[:0]
	for _, d := range details {
		if seen[d.Field] {
			continue
		}
		seen[d.Field] = true
		out = append(out, d)
	}
	return out
}

func appendNoteText(existing, note string) string {
	if existing == "" {
		return note
	}
	return existing + "\n" + note
}

func failureReason(err error) string {
	switch err.(type) {
	case *apperrors.ValidationError:
		return "validation"
	case *apperrors.EmptyCartError:
		return "empty_cart"
	case *apperrors.CartInvalidError:
		return "cart_invalid"
	case *apperrors.InsufficientStockError:
		return "insufficient_stock"
	case *apperrors.ProductUnavailableError:
		return "product_unavailable"
	case *apperrors.NotFoundError:
		return "not_found"
	case *apperrors.DeadlockError:
		return "deadlock"
	default:
		return "internal"
	}
}

func toOrderResponse(order *domain.Order, items []domain.OrderItem) *dto.OrderResponse {
	itemResponses := make([]dto.OrderItemResponse, len(items))
	for i, item := range items {
		itemResponses[i] = dto.OrderItemResponse{
			ID:                 item.ID,
			ProductID:          item.ProductID,
			ProductName:        item.ProductName,
			ProductDescription: item.ProductDescription,
			CategoryName:       item.CategoryName,
			ProductImageURL:    item.ProductImageURL,
			Quantity:           item.Quantity,
			UnitPrice:          item.UnitPrice,
		}
	}

	return &dto.OrderResponse{
		ID:                  order.ID,
		OrderNumber:         order.OrderNumber,
		UserID:              order.UserID,
		CustomerName:        order.CustomerName,
		CustomerPhone:       order.CustomerPhone,
		CustomerEmail:       order.CustomerEmail,
		ShippingAddress:     order.ShippingAddress,
		TotalAmount:         order.TotalAmount,
		ShippingFee:         order.ShippingFee,
		TaxAmount:           order.TaxAmount,
		Status:              string(order.Status),
		PaymentMethod:       order.PaymentMethod,
		PaymentStatus:       string(order.PaymentStatus),
		TrackingNumber:      order.TrackingNumber,
		Notes:               order.Notes,
		OrderDate:           order.OrderDate,
		ShippedDate:         order.ShippedDate,
		DeliveredDate:       order.DeliveredDate,
		DeliveryConfirmedAt: order.DeliveryConfirmedAt,
		Items:               itemResponses,
		CreatedAt:           order.CreatedAt,
		UpdatedAt:           order.UpdatedAt,
	}
}
