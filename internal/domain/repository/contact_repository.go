package repository

import (
	"context"

	"shreeanna/internal/domain/entity"
)

type ContactRepository interface {
	Create(ctx context.Context, message *entity.ContactMessage) error
	List(ctx context.Context) ([]*entity.ContactMessage, error)
}
