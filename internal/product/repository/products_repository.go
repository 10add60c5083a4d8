package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dacsanviet/internal/domain"
	"dacsanviet/internal/errors"
)

type MySQLRepository struct {
	db *sql.DB
}

func NewMySQLRepository(db *sql.DB) *MySQLRepository {
	return &MySQLRepository{db: db}
}

const productColumns = `id, name, description, price, imageUrl, categoryName,
	       isActive, stockQuantity, createdAt, updatedAt`

func (r *MySQLRepository) FindByID(ctx context.Context, id uint) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM Product WHERE id = ?`, productColumns)

	product, err := r.scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product by id: %w", err)
	}

	return product, nil
}

// FindByIDForUpdate locks the product row for the remainder of the
// transaction. Every stock check-and-mutate goes through this lock so
// concurrent orders cannot both pass the stock check.
func (r *MySQLRepository) FindByIDForUpdate(ctx context.Context, tx *sql.Tx, id uint) (*domain.Product, error) {
	query := fmt.Sprintf(`SELECT %s FROM Product WHERE id = ? FOR UPDATE`, productColumns)

	product, err := r.scanProduct(tx.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}
	if err != nil {
		return nil, fmt.Errorf("querying product for update: %w", err)
	}

	return product, nil
}

func (r *MySQLRepository) UpdateStockQuantity(ctx context.Context, tx *sql.Tx, id uint, quantity int) error {
	query := `UPDATE Product SET stockQuantity = ? WHERE id = ?`

	result, err := tx.ExecContext(ctx, query, quantity, id)
	if err != nil {
		return fmt.Errorf("updating stock quantity: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("getting rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return errors.NewNotFoundError(fmt.Sprintf("product with id %d not found", id))
	}

	return nil
}

type productScanner interface {
	Scan(dest ...interface{}) error
}

func (r *MySQLRepository) scanProduct(row productScanner) (*domain.Product, error) {
	var p domain.Product
	err := row.Scan(
		&p.ID, &p.Name, &p.Description, &p.Price, &p.ImageURL, &p.CategoryName,
		&p.IsActive, &p.StockQuantity, &p.CreatedAt, &p.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &p, nil
}
