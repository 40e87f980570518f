package repository

import (
	"context"
	"time"

	"shreeanna/internal/domain/entity"
)

type OrderRepository interface {
	Create(ctx context.Context, order *entity.Order) error
	GetByID(ctx context.Context, id string) (*entity.Order, error)
	Update(ctx context.Context, order *entity.Order) error
	List(ctx context.Context) ([]*entity.Order, error)
	ListByDealer(ctx context.Context, dealerID string) ([]*entity.Order, error)
	ListByFarmer(ctx context.Context, farmerID string) ([]*entity.Order, error)
	DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error)
}
