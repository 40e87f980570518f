package repository

import (
	"context"

	"shreeanna/internal/domain/entity"
)

type TransportRequestRepository interface {
	Create(ctx context.Context, request *entity.TransportRequest) error
	GetByID(ctx context.Context, id string) (*entity.TransportRequest, error)
	Update(ctx context.Context, request *entity.TransportRequest) error
	// List returns requests filtered by status; an empty status returns all.
	List(ctx context.Context, status string) ([]*entity.TransportRequest, error)
}

type DeliveryRepository interface {
	Create(ctx context.Context, delivery *entity.Delivery) error
	GetByID(ctx context.Context, id string) (*entity.Delivery, error)
	Update(ctx context.Context, delivery *entity.Delivery) error
	ListByTransporter(ctx context.Context, transporterID string) ([]*entity.Delivery, error)
}
