package repository

import (
	"context"
	"time"

	"shreeanna/internal/domain/entity"
)

type CropRepository interface {
	Create(ctx context.Context, crop *entity.Crop) error
	GetByID(ctx context.Context, id string) (*entity.Crop, error)
	Update(ctx context.Context, crop *entity.Crop) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Crop, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]*entity.Crop, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Crop, error)
	// AdjustQuantity atomically decrements a crop's quantity by qty and flips
	// its status to sold when the remainder reaches zero. It fails without
	// mutating anything when qty exceeds the stored quantity.
	AdjustQuantity(ctx context.Context, id string, qty float64) (*entity.Crop, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
