package dto

import "time"

type OrderResponse struct {
	ID                  uint                `json:"id"`
	OrderNumber         string              `json:"orderNumber"`
	UserID              *uint               `json:"userId,omitempty"`
	CustomerName        string              `json:"customerName"`
	CustomerPhone       string              `json:"customerPhone"`
	CustomerEmail       string              `json:"customerEmail"`
	ShippingAddress     string              `json:"shippingAddress"`
	TotalAmount         float64             `json:"totalAmount"`
	ShippingFee         float64             `json:"shippingFee"`
	TaxAmount           float64             `json:"taxAmount"`
	Status              string              `json:"status"`
	PaymentMethod       string              `json:"paymentMethod"`
	PaymentStatus       string              `json:"paymentStatus"`
	TrackingNumber      *string             `json:"trackingNumber,omitempty"`
	Notes               string              `json:"notes,omitempty"`
	OrderDate           time.Time           `json:"orderDate"`
	ShippedDate         *time.Time          `json:"shippedDate,omitempty"`
	DeliveredDate       *time.Time          `json:"deliveredDate,omitempty"`
	DeliveryConfirmedAt *time.Time          `json:"deliveryConfirmedAt,omitempty"`
	Items               []OrderItemResponse `json:"items"`
	CreatedAt           time.Time           `json:"createdAt"`
	UpdatedAt           time.Time           `json:"updatedAt"`
}

type OrderItemResponse struct {
	ID                 uint    `json:"id"`
	ProductID          uint    `json:"productId"`
	ProductName        string  `json:"productName"`
	ProductDescription string  `json:"productDescription,omitempty"`
	CategoryName       string  `json:"categoryName,omitempty"`
	ProductImageURL    string  `json:"productImageUrl,omitempty"`
	Quantity           int     `json:"quantity"`
	UnitPrice          float64 `json:"unitPrice"`
}
