package repository

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"dacsanviet/internal/domain"
	"dacsanviet/internal/errors"
)

type MySQLOrderRepository struct {
	db *sql.DB
}

func NewMySQLOrderRepository(db *sql.DB) *MySQLOrderRepository {
	return &MySQLOrderRepository{db: db}
}

const orderColumns = `id, orderNumber, userId, customerName, customerPhone, customerEmail,
	       shippingAddress, totalAmount, shippingFee, taxAmount, status,
	       paymentMethod, paymentStatus, trackingNumber, notes, orderDate,
	       shippedDate, deliveredDate, deliveryConfirmedAt, createdAt, updatedAt`

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanOrder(row rowScanner) (*domain.Order, error) {
	var order domain.Order
	var notes sql.NullString
	err := row.Scan(
		&order.ID, &order.OrderNumber, &order.UserID, &order.CustomerName,
		&order.CustomerPhone, &order.CustomerEmail, &order.ShippingAddress,
		&order.TotalAmount, &order.ShippingFee, &order.TaxAmount, &order.Status,
		&order.PaymentMethod, &order.PaymentStatus, &order.TrackingNumber,
		&notes, &order.OrderDate, &order.ShippedDate, &order.DeliveredDate,
		&order.DeliveryConfirmedAt, &order.CreatedAt, &order.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	order.Notes = notes.String
	return &order, nil
}

func (r *MySQLOrderRepository) Insert(ctx context.Context, tx *sql.Tx, order *domain.Order) (uint, error) {
	query := `
		INSERT INTO Orders (orderNumber, userId, customerName, customerPhone, customerEmail,
		                    shippingAddress, totalAmount, shippingFee, taxAmount, status,
		                    paymentMethod, paymentStatus, trackingNumber, notes, orderDate)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`

	result, err := tx.ExecContext(ctx, query,
		order.OrderNumber, order.UserID, order.CustomerName, order.CustomerPhone,
		order.CustomerEmail, order.ShippingAddress, order.TotalAmount, order.ShippingFee,
		order.TaxAmount, order.Status, order.PaymentMethod, order.PaymentStatus,
		order.TrackingNumber, order.Notes, order.OrderDate,
	)
	if err != nil {
		return 0, fmt.Errorf("inserting order: %w", err)
	}

	lastInsertID, err := result.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("getting last insert id: %w", err)
	}

	return uint(lastInsertID), nil
}

func (r *MySQLOrderRepository) FindByID(ctx context.Context, id uint) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM Orders WHERE id = ?`, orderColumns)

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by id: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM Orders WHERE id = ? FOR UPDATE`, orderColumns)

	order, err := scanOrder(tx.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order for update: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) FindByOrderNumber(ctx context.Context, orderNumber string) (*domain.Order, error) {
	query := fmt.Sprintf(`SELECT %s FROM Orders WHERE orderNumber = ?`, orderColumns)

	order, err := scanOrder(r.db.QueryRowContext(ctx, query, orderNumber))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("order with number %s not found", orderNumber))
	}
	if err != nil {
		return nil, fmt.Errorf("querying order by order number: %w", err)
	}

	return order, nil
}

func (r *MySQLOrderRepository) UpdateStatus(ctx context.Context, tx *sql.Tx, id uint, status domain.OrderStatus) error {
	query := `UPDATE Orders SET status = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("updating order status: %w", err)
	}

	return requireRow(result, id)
}

func (r *MySQLOrderRepository) UpdateTotals(ctx context.Context, tx *sql.Tx, id uint, totalAmount, shippingFee float64) error {
	query := `UPDATE Orders SET totalAmount = ?, shippingFee = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, totalAmount, shippingFee, id)
	if err != nil {
		return fmt.Errorf("updating order totals: %w", err)
	}

	return requireRow(result, id)
}

func (r *MySQLOrderRepository) SetTrackingNumber(ctx context.Context, tx *sql.Tx, id uint, trackingNumber string) error {
	query := `UPDATE Orders SET trackingNumber = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, trackingNumber, id)
	if err != nil {
		return fmt.Errorf("updating tracking number: %w", err)
	}

	return requireRow(result, id)
}

// AppendNote adds a line to the order's notes. Notes are an append-only
// audit trail; nothing ever overwrites prior entries.
func (r *MySQLOrderRepository) AppendNote(ctx context.Context, tx *sql.Tx, id uint, note string) error {
	query := `
		UPDATE Orders
		SET notes = TRIM(LEADING '\n' FROM CONCAT(COALESCE(notes, ''), '\n', ?))
		WHERE id = ?
	`

	result, err := tx.ExecContext(ctx, query, note, id)
	if err != nil {
		return fmt.Errorf("appending order note: %w", err)
	}

	return requireRow(result, id)
}

func (r *MySQLOrderRepository) SetShippedDate(ctx context.Context, tx *sql.Tx, id uint, shippedAt time.Time) error {
	query := `UPDATE Orders SET shippedDate = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, shippedAt, id)
	if err != nil {
		return fmt.Errorf("updating shipped date: %w", err)
	}

	return requireRow(result, id)
}

func (r *MySQLOrderRepository) SetDeliveredDate(ctx context.Context, tx *sql.Tx, id uint, deliveredAt time.Time) error {
	query := `UPDATE Orders SET deliveredDate = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, deliveredAt, id)
	if err != nil {
		return fmt.Errorf("updating delivered date: %w", err)
	}

	return requireRow(result, id)
}

func (r *MySQLOrderRepository) SetDeliveryConfirmedAt(ctx context.Context, tx *sql.Tx, id uint, confirmedAt time.Time) error {
	query := `UPDATE Orders SET deliveryConfirmedAt = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, confirmedAt, id)
	if err != nil {
		return fmt.Errorf("updating delivery confirmation time: %w", err)
	}

	return requireRow(result, id)
}

// CompletePayment flips the payment status to COMPLETED and records the
// method the payment actually arrived through.
func (r *MySQLOrderRepository) CompletePayment(ctx context.Context, tx *sql.Tx, id uint, paymentMethod string) error {
	query := `UPDATE Orders SET paymentStatus = ?, paymentMethod = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, domain.PaymentStatusCompleted, paymentMethod, id)
	if err != nil {
		return fmt.Errorf("completing payment: %w", err)
	}

	return requireRow(result, id)
}

func requireRow(result sql.Result, id uint) error {
	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("order with id %d not found", id))
	}

	return nil
}
