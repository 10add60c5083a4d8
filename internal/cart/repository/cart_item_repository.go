package repository

import (
	"context"
	"database/sql"
	"fmt"

	"dacsanviet/internal/domain"
)

type MySQLCartItemRepository struct {
	db *sql.DB
}

func NewMySQLCartItemRepository(db *sql.DB) *MySQLCartItemRepository {
	return &MySQLCartItemRepository{db: db}
}

func (r *MySQLCartItemRepository) FindByUserID(ctx context.Context, userID uint) ([]domain.CartItem, error) {
	query := `
		SELECT id, userId, productId, quantity, addedDate
		FROM CartItems
		WHERE userId = ?
		ORDER BY addedDate DESC
	`

	rows, err := r.db.QueryContext(ctx, query, userID)
	if err != nil {
		return nil, fmt.Errorf("querying cart items: %w", err)
	}
	defer rows.Close()

	var items []domain.CartItem
	for rows.Next() {
		var item domain.CartItem
		err := rows.Scan(&item.ID, &item.UserID, &item.ProductID, &item.Quantity, &item.AddedDate)
		if err != nil {
			return nil, fmt.Errorf("scanning cart item row: %w", err)
		}
		items = append(items, item)
	}

	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("iterating cart item rows: %w", err)
	}

	return items, nil
}

func (r *MySQLCartItemRepository) DeleteByUserID(ctx context.Context, userID uint) error {
	query := `DELETE FROM CartItems WHERE userId = ?`

	if _, err := r.db.ExecContext(ctx, query, userID); err != nil {
		return fmt.Errorf("deleting cart items: %w", err)
	}

	return nil
}
