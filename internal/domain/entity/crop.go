package entity

import (
	"time"
)

const (
	ListingAvailable = "available"
	ListingSold      = "sold"
)

// Crop is a farmer listing. FarmerName is denormalized so catalog views do
// not need a join against the users collection.
type Crop struct {
	ID          string    `json:"id"`
	FarmerID    string    `json:"farmer_id"`
	FarmerName  string    `json:"farmer_name"`
	Name        string    `json:"name"`
	Type        string    `json:"type"`
	Quantity    float64   `json:"quantity"`
	Unit        string    `json:"unit"`
	Price       float64   `json:"price"`
	Location    string    `json:"location"`
	Quality     string    `json:"quality"`
	Description string    `json:"description,omitempty"`
	Image       string    `json:"image,omitempty"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"created_at"`
	UpdatedAt   time.Time `json:"updated_at"`
}
