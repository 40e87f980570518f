package entity

import (
	"time"
)

const (
	OrderPending   = "pending"
	OrderConfirmed = "confirmed"
	OrderDelivered = "delivered"
	OrderCancelled = "cancelled"
)

type Order struct {
	ID           string    `json:"id"`
	DealerID     string    `json:"dealer_id"`
	DealerName   string    `json:"dealer_name"`
	CropID       string    `json:"crop_id"`
	CropName     string    `json:"crop_name"`
	FarmerID     string    `json:"farmer_id"`
	FarmerName   string    `json:"farmer_name"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	PricePerUnit float64   `json:"price_per_unit"`
	TotalPrice   float64   `json:"total_price"`
	Message      string    `json:"message,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Invoice is a derived view of an order, never stored.
type Invoice struct {
	InvoiceNumber string    `json:"invoice_number"`
	Date          time.Time `json:"date"`
	Buyer         *User     `json:"buyer"`
	Seller        *User     `json:"seller"`
	Order         *Order    `json:"order"`
	TotalAmount   float64   `json:"total_amount"`
	Status        string    `json:"status"`
}
