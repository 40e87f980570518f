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

type boltCropRepository struct {
	store *Store
}

func NewBoltCropRepository(store *Store) repository.CropRepository {
	return &boltCropRepository{store: store}
}

func (r *boltCropRepository) Create(ctx context.Context, crop *entity.Crop) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketCrops, crop.ID, crop)
	})
	if err != nil {
		return errors.Internal("Failed to create crop", err)
	}
	return nil
}

func (r *boltCropRepository) GetByID(ctx context.Context, id string) (*entity.Crop, error) {
	var crop entity.Crop
	var found bool

	err := r.store.db.View(func(tx *bolt.Tx) error {
		var err error
		found, err = getInto(tx, bucketCrops, id, &crop)
		return err
	})
	if err != nil {
		return nil, errors.Internal("Failed to get crop", err)
	}
	if !found {
		return nil, errors.NotFound("Crop", nil)
	}
	return &crop, nil
}

func (r *boltCropRepository) Update(ctx context.Context, crop *entity.Crop) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		var existing entity.Crop
		found, err := getInto(tx, bucketCrops, crop.ID, &existing)
		if err != nil {
			return err
		}
		if !found {
			return errors.NotFound("Crop", nil)
		}
		crop.UpdatedAt = time.Now()
		return put(tx, bucketCrops, crop.ID, crop)
	})
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	if err != nil {
		return errors.Internal("Failed to update crop", err)
	}
	return nil
}

func (r *boltCropRepository) Delete(ctx context.Context, id string) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(bucketCrops).Delete([]byte(id))
	})
	if err != nil {
		return errors.Internal("Failed to delete crop", err)
	}
	return nil
}

func (r *boltCropRepository) List(ctx context.Context) ([]*entity.Crop, error) {
	return r.list(func(*entity.Crop) bool { return true })
}

func (r *boltCropRepository) ListByFarmer(ctx context.Context, farmerID string) ([]*entity.Crop, error) {
	return r.list(func(c *entity.Crop) bool { return c.FarmerID == farmerID })
}

func (r *boltCropRepository) ListByStatus(ctx context.Context, status string) ([]*entity.Crop, error) {
	return r.list(func(c *entity.Crop) bool { return c.Status == status })
}

func (r *boltCropRepository) AdjustQuantity(ctx context.Context, id string, qty float64) (*entity.Crop, error) {
	var crop entity.Crop

	err := r.store.db.Update(func(tx *bolt.Tx) error {
		found, err := getInto(tx, bucketCrops, id, &crop)
		if err != nil {
			return err
		}
		if !found {
			return errors.NotFound("Crop", nil)
		}
		if qty <= 0 {
			return errors.BadRequest("Quantity must be positive", nil)
		}
		if qty > crop.Quantity {
			return errors.BadRequest("Requested quantity exceeds available stock", nil)
		}

		crop.Quantity -= qty
		if crop.Quantity <= 0 {
			crop.Quantity = 0
			crop.Status = entity.ListingSold
		}
		crop.UpdatedAt = time.Now()
		return put(tx, bucketCrops, crop.ID, &crop)
	})
	if appErr, ok := err.(*errors.AppError); ok {
		return nil, appErr
	}
	if err != nil {
		return nil, errors.Internal("Failed to adjust crop quantity", err)
	}
	return &crop, nil
}

func (r *boltCropRepository) DeleteOlderThan(ctx context.Context, cutoff time.Time) (int, error) {
	removed := 0

	err := r.store.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket(bucketCrops)
		var stale [][]byte

		err := bucket.ForEach(func(k, v []byte) error {
			var crop entity.Crop
			if err := unmarshal(v, &crop); err != nil {
				return err
			}
			if crop.CreatedAt.Before(cutoff) {
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
		return 0, errors.Internal("Failed to clear old crops", err)
	}
	return removed, nil
}

func (r *boltCropRepository) list(match func(*entity.Crop) bool) ([]*entity.Crop, error) {
	var crops []*entity.Crop

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketCrops, func(v []byte) error {
			var crop entity.Crop
			if err := unmarshal(v, &crop); err != nil {
				return err
			}
			if match(&crop) {
				crops = append(crops, &crop)
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list crops", err)
	}

	sort.Slice(crops, func(i, j int) bool {
		return crops[i].CreatedAt.After(crops[j].CreatedAt)
	})
	return crops, nil
}
