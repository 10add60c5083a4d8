package domain

import "time"

// Product is the inventory-relevant slice of the catalog. The catalog
// CRUD itself lives elsewhere; this service only reads product rows and
// mutates stockQuantity.
type Product struct {
	ID            uint
	Name          string
	Description   string
	Price         float64
	ImageURL      string
	CategoryName  string
	IsActive      bool
	StockQuantity int
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (p Product) HasStockFor(quantity int) bool {
	return p.StockQuantity >= quantity
}
