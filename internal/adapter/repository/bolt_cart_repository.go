package repository

import (
	"context"

	bolt "go.etcd.io/bbolt"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type boltCartRepository struct {
	store *Store
}

func NewBoltCartRepository(store *Store) repository.CartRepository {
	return &boltCartRepository{store: store}
}

func (r *boltCartRepository) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	cart := &entity.Cart{UserID: userID}

	err := r.store.db.View(func(tx *bolt.Tx) error {
		_, err := getInto(tx, bucketCarts, userID, cart)
		return err
	})
	if err != nil {
		return nil, errors.Internal("Failed to load cart", err)
	}
	if cart.Items == nil {
		cart.Items = []entity.CartItem{}
	}
	return cart, nil
}

func (r *boltCartRepository) Save(ctx context.Context, cart *entity.Cart) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketCarts, cart.UserID, cart)
	})
	if err != nil {
		return errors.Internal("Failed to save cart", err)
	}
	return nil
}
