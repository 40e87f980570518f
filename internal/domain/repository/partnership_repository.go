package repository

import (
	"context"

	"shreeanna/internal/domain/entity"
)

type PartnershipRepository interface {
	Create(ctx context.Context, partnership *entity.Partnership) error
	ListByProvider(ctx context.Context, providerID string) ([]*entity.Partnership, error)
}

type RawMaterialRepository interface {
	Create(ctx context.Context, request *entity.RawMaterialRequest) error
	GetByID(ctx context.Context, id string) (*entity.RawMaterialRequest, error)
	Update(ctx context.Context, request *entity.RawMaterialRequest) error
	ListByProvider(ctx context.Context, providerID string) ([]*entity.RawMaterialRequest, error)
}
