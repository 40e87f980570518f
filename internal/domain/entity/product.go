package entity

import (
	"time"
)

// Product is a processed or value-added item listed by a service provider.
type Product struct {
	ID            string    `json:"id"`
	ProviderID    string    `json:"provider_id"`
	ProviderName  string    `json:"provider_name"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Price         float64   `json:"price"`
	Unit          string    `json:"unit"`
	Description   string    `json:"description,omitempty"`
	Image         string    `json:"image,omitempty"`
	Certification string    `json:"certification,omitempty"`
	Status        string    `json:"status"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}
