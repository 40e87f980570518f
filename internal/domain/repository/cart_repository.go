package repository

import (
	"context"

	"shreeanna/internal/domain/entity"
)

type CartRepository interface {
	// Get returns the user's cart, or an empty cart if none exists yet.
	Get(ctx context.Context, userID string) (*entity.Cart, error)
	Save(ctx context.Context, cart *entity.Cart) error
}
