package repository

import (
	"context"
	"sort"

	bolt "go.etcd.io/bbolt"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type boltFavoriteRepository struct {
	store *Store
}

func NewBoltFavoriteRepository(store *Store) repository.FavoriteRepository {
	return &boltFavoriteRepository{store: store}
}

func (r *boltFavoriteRepository) Create(ctx context.Context, favorite *entity.FavoriteFarmer) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketFavorites, favorite.ID, favorite)
	})
	if err != nil {
		return errors.Internal("Failed to add favorite farmer", err)
	}
	return nil
}

func (r *boltFavoriteRepository) Delete(ctx context.Context, id string) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketFavorites).Delete([]byte(id))
	})
	if err != nil {
		return errors.Internal("Failed to remove favorite farmer", err)
	}
	return nil
}

func (r *boltFavoriteRepository) ListByDealer(ctx context.Context, dealerID string) ([]*entity.FavoriteFarmer, error) {
	var favorites []*entity.FavoriteFarmer

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketFavorites, func(v []byte) error {
			var favorite entity.FavoriteFarmer
			if err := unmarshal(v, &favorite); err != nil {
				return err
			}
			if favorite.DealerID == dealerID {
				favorites = append(favorites, &favorite)
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list favorite farmers", err)
	}

	sort.Slice(favorites, func(i, j int) bool {
		return favorites[i].AddedAt.After(favorites[j].AddedAt)
	})
	return favorites, nil
}

func (r *boltFavoriteRepository) Find(ctx context.Context, dealerID, farmerID string) (*entity.FavoriteFarmer, error) {
	var match *entity.FavoriteFarmer

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketFavorites, func(v []byte) error {
			var favorite entity.FavoriteFarmer
			if err := unmarshal(v, &favorite); err != nil {
				return err
			}
			if favorite.DealerID == dealerID && favorite.FarmerID == farmerID {
				match = &favorite
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to look up favorite farmer", err)
	}
	return match, nil
}
