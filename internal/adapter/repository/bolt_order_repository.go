package repository

import (
	"context"
	"sort"
	"time"

	bolt "go.etcd.io/bbolt"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type boltOrderRepository struct {
	store *Store
}

func NewBoltOrderRepository(store *Store) repository.OrderRepository {
	return &boltOrderRepository{store: store}
}

func (r *boltOrderRepository) Create(ctx context.Context, order *entity.Order) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketOrders, order.ID, order)
	})
	if err != nil {
		return errors.Internal("Failed to create order", err)
	}
	return nil
}

func (r *boltOrderRepository) GetByID(ctx context.Context, id string) (*entity.Order, error) {
	var order entity.Order
	var found bool

	err := r.store.db.View(func(tx *bolt.Tx) error {
		var err error
		found, err = getInto(tx, bucketOrders, id, &order)
		return err
	})
	if err != nil {
		return nil, errors.Internal("Failed to get order", err)
	}
	if !found {
		return nil, errors.NotFound("Order", nil)
	}
	return &order, nil
}

func (r *boltOrderRepository) Update(ctx context.Context, order *entity.Order) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		var existing entity.Order
		found, err := getInto(tx, bucketOrders, order.ID, &existing)
		if err != nil {
			return err
		}
		if !found {
			return errors.NotFound("Order", nil)
		}
		order.UpdatedAt = time.Now()
		return put(tx, bucketOrders, order.ID, order)
	})
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	if err != nil {
		return errors.Internal("Failed to update order", err)
	}
	return nil
}

func (r *boltOrderRepository) List(ctx context.Context) ([]*entity.Order, error) {
	return r.list(func(*entity.Order) bool { return true })
}

func (r *boltOrderRepository) ListByDealer(ctx context.Context, dealerID string) ([]*entity.Order, error) {
	return r.list(func(o *entity.Order) bool { return o.DealerID == dealerID })
}

func (r *boltOrderRepository) ListByFarmer(ctx context.Context, farmerID string) ([]*entity.Order, error) {
	return r.list(func(o *entity.Order) bool { return o.FarmerID == farmerID })
}

func (r *boltOrderRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	removed := 0

	err := r.store.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketOrders)
		var stale [][]byte

		err := bucket.ForEach(func(k, v []byte) error {
			var order entity.Order
			if err := unmarshal(v, &order); err != nil {
				return err
			}
			if order.CreatedAt.Before(cutoff) {
				key := make([]byte, len(k))
				copy(key, k)
				stale = append(stale, key)
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, key := range stale {
			if err := bucket.Delete(key); err != nil {
				return err
			}
		}
		removed = len(stale)
		return nil
	})
	if err != nil {
		return 0, errors.Internal("Failed to clear old orders", err)
	}
	return removed, nil
}

func (r *boltOrderRepository) list(match func(*entity.Order) bool) ([]*entity.Order, error) {
	var orders []*entity.Order

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketOrders, func(v []byte) error {
			var order entity.Order
			if err := unmarshal(v, &order); err != nil {
				return err
			}
			if match(&order) {
				orders = append(orders, &order)
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list orders", err)
	}

	sort.Slice(orders, func(i, j int) bool {
		return orders[i].CreatedAt.After(orders[j].CreatedAt)
	})
	return orders, nil
}
