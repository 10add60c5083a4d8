package domain

import "time"

// CartItem is a line of the persisted per-user cart. Pricing is not
// stored here; the checkout path reprices from the catalog.
type CartItem struct {
	ID        uint
	UserID    uint
	ProductID uint
	Quantity  int
	AddedDate time.Time
}
