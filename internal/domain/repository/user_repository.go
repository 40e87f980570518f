package repository

import (
	"context"

	"shreeanna/internal/domain/entity"
)

type UserRepository interface {
	Create(ctx context.Context, user *entity.User) error
	GetByID(ctx context.Context, id string) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, user *entity.User) error
	Delete(ctx context.Context, id string) error
	// List returns users filtered by role; an empty role returns everyone.
	List(ctx context.Context, role string) ([]*entity.User, error)
}

type ProfileRepository interface {
	Get(ctx context.Context, userID string) (*entity.Profile, error)
	Save(ctx context.Context, profile *entity.Profile) error
}
