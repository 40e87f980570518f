package entity

import (
	"time"
)

type Partnership struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	Title        string    `json:"title"`
	Type         string    `json:"type"`
	Description  string    `json:"description"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}

const (
	RawMaterialPending   = "pending"
	RawMaterialContacted = "contacted"
)

type RawMaterialRequest struct {
	ID           string    `json:"id"`
	ProviderID   string    `json:"provider_id"`
	ProviderName string    `json:"provider_name"`
	MilletType   string    `json:"millet_type"`
	Quantity     float64   `json:"quantity"`
	Unit         string    `json:"unit"`
	Quality      string    `json:"quality"`
	Notes        string    `json:"notes,omitempty"`
	Status       string    `json:"status"`
	CreatedAt    time.Time `json:"created_at"`
}
