package repository

import (
	"context"

	"shreeanna/internal/domain/entity"
)

type ProductRepository interface {
	Create(ctx context.Context, product *entity.Product) error
	GetByID(ctx context.Context, id string) (*entity.Product, error)
	Update(ctx context.Context, product *entity.Product) error
	Delete(ctx context.Context, id string) error
	List(ctx context.Context) ([]*entity.Product, error)
	ListByProvider(ctx context.Context, providerID string) ([]*entity.Product, error)
	ListByStatus(ctx context.Context, status string) ([]*entity.Product, error)
}
