package repository

import (
	"context"

	bolt "go.etcd.io/bbolt"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type boltProfileRepository struct {
	store *Store
}

func NewBoltProfileRepository(store *Store) repository.ProfileRepository {
	return &boltProfileRepository{store: store}
}

func (r *boltProfileRepository) Get(ctx context.Context, userID string) (*entity.Profile, error) {
	profile := &entity.Profile{UserID: userID}

	err := r.store.db.View(func(tx *bolt.Tx) error {
		_, err := getInto(tx, bucketProfiles, userID, profile)
		return err
	})
	if err != nil {
		return nil, errors.Internal("Failed to load profile", err)
	}
	return profile, nil
}

func (r *boltProfileRepository) Save(ctx context.Context, profile *entity.Profile) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketProfiles, profile.UserID, profile)
	})
	if err != nil {
		return errors.Internal("Failed to save profile", err)
	}
	return nil
}
