package entity

import (
	"time"
)

const (
	TransportPending  = "pending"
	TransportAssigned = "assigned"

	DeliveryAssigned  = "assigned"
	DeliveryPickedUp  = "picked-up"
	DeliveryInTransit = "in-transit"
	DeliveryDelivered = "delivered"
)

type TransportRequest struct {
	ID            string     `json:"id"`
	RequesterID   string     `json:"requester_id,omitempty"`
	From          string     `json:"from"`
	To            string     `json:"to"`
	CropID        string     `json:"crop_id"`
	CropName      string     `json:"crop_name"`
	Quantity      float64    `json:"quantity"`
	Unit          string     `json:"unit"`
	Notes         string     `json:"notes,omitempty"`
	Status        string     `json:"status"`
	TransporterID string     `json:"transporter_id,omitempty"`
	AssignedAt    *time.Time `json:"assigned_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
}

// Delivery is the transporter-side record created when a request is accepted.
// Status moves through assigned -> picked-up -> in-transit -> delivered.
type Delivery struct {
	ID              string     `json:"id"`
	TransporterID   string     `json:"transporter_id"`
	TransporterName string     `json:"transporter_name"`
	RequestID       string     `json:"request_id"`
	CropName        string     `json:"crop_name"`
	From            string     `json:"from"`
	To              string     `json:"to"`
	Quantity        float64    `json:"quantity"`
	Unit            string     `json:"unit"`
	Notes           string     `json:"notes,omitempty"`
	Status          string     `json:"status"`
	AssignedAt      time.Time  `json:"assigned_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
	DeliveredAt     *time.Time `json:"delivered_at,omitempty"`
}
