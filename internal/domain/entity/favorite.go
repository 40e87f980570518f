package entity

import (
	"time"
)

type FavoriteFarmer struct {
	ID         string    `json:"id"`
	DealerID   string    `json:"dealer_id"`
	FarmerID   string    `json:"farmer_id"`
	FarmerName string    `json:"farmer_name"`
	AddedAt    time.Time `json:"added_at"`
}
