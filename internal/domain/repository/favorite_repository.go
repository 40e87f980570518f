package repository

import (
	"context"

	"shreeanna/internal/domain/entity"
)

type FavoriteRepository interface {
	Create(ctx context.Context, favorite *entity.FavoriteFarmer) error
	Delete(ctx context.Context, id string) error
	ListByDealer(ctx context.Context, dealerID string) ([]*entity.FavoriteFarmer, error)
	// Find returns the dealer's favorite entry for a farmer, or nil when the
	// farmer has not been favorited.
	Find(ctx context.Context, dealerID, farmerID string) (*entity.FavoriteFarmer, error)
}
