package entity

import (
	"time"
)

const (
	RoleFarmer      = "farmer"
	RoleDealer      = "dealer"
	RoleTransporter = "transporter"
	RoleService     = "service"
	RoleAdmin       = "admin"
)

type User struct {
	ID           string    `json:"id"`
	Name         string    `json:"name"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	Role         string    `json:"role"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`
}

// Profile holds the optional dashboard profile fields a user can maintain
// on top of the core account record.
type Profile struct {
	UserID         string    `json:"user_id"`
	Phone          string    `json:"phone,omitempty"`
	Address        string    `json:"address,omitempty"`
	Experience     string    `json:"experience,omitempty"`
	Specialization string    `json:"specialization,omitempty"`
	UpdatedAt      time.Time `json:"updated_at"`
}
