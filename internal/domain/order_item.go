package domain

import "time"

// OrderItem freezes the product attributes as they were at purchase
// time, so later catalog edits do not rewrite order history.
type OrderItem struct {
	ID                 uint
	OrderID            uint
	ProductID          uint
	ProductName        string
	ProductDescription string
	CategoryName       string
	ProductImageURL    string
	Quantity           int
	UnitPrice          float64
	CreatedAt          time.Time
}

func (i OrderItem) LineTotal() float64 {
	return i.UnitPrice * float64(i.Quantity)
}
