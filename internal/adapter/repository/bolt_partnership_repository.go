package repository

import (
	"context"
	"sort"

	bolt "go.etcd.io/bbolt"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type boltPartnershipRepository struct {
	store *Store
}

func NewBoltPartnershipRepository(store *Store) repository.PartnershipRepository {
	return &boltPartnershipRepository{store: store}
}

func (r *boltPartnershipRepository) Create(ctx context.Context, partnership *entity.Partnership) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketPartnerships, partnership.ID, partnership)
	})
	if err != nil {
		return errors.Internal("Failed to create partnership", err)
	}
	return nil
}

func (r *boltPartnershipRepository) ListByProvider(ctx context.Context, providerID string) ([]*entity.Partnership, error) {
	var partnerships []*entity.Partnership

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketPartnerships, func(v []byte) error {
			var partnership entity.Partnership
			if err := unmarshal(v, &partnership); err != nil {
				return err
			}
			if partnership.ProviderID == providerID {
				partnerships = append(partnerships, &partnership)
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list partnerships", err)
	}

	sort.Slice(partnerships, func(i, j int) bool {
		return partnerships[i].CreatedAt.After(partnerships[j].CreatedAt)
	})
	return partnerships, nil
}

type boltRawMaterialRepository struct {
	store *Store
}

func NewBoltRawMaterialRepository(store *Store) repository.RawMaterialRepository {
	return &boltRawMaterialRepository{store: store}
}

func (r *boltRawMaterialRepository) Create(ctx context.Context, request *entity.RawMaterialRequest) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketRawMaterials, request.ID, request)
	})
	if err != nil {
		return errors.Internal("Failed to create raw material request", err)
	}
	return nil
}

func (r *boltRawMaterialRepository) GetByID(ctx context.Context, id string) (*entity.RawMaterialRequest, error) {
	var request entity.RawMaterialRequest
	var found bool

	err := r.store.db.View(func(tx *bolt.Tx) error {
		var err error
		found, err = getInto(tx, bucketRawMaterials, id, &request)
		return err
	})
	if err != nil {
		return nil, errors.Internal("Failed to get raw material request", err)
	}
	if !found {
		return nil, errors.NotFound("Raw material request", nil)
	}
	return &request, nil
}

func (r *boltRawMaterialRepository) Update(ctx context.Context, request *entity.RawMaterialRequest) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		var existing entity.RawMaterialRequest
		found, err := getInto(tx, bucketRawMaterials, request.ID, &existing)
		if err != nil {
			return err
		}
		if !found {
			return errors.NotFound("Raw material request", nil)
		}
		return put(tx, bucketRawMaterials, request.ID, request)
	})
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	if err != nil {
		return errors.Internal("Failed to update raw material request", err)
	}
	return nil
}

func (r *boltRawMaterialRepository) ListByProvider(ctx context.Context, providerID string) ([]*entity.RawMaterialRequest, error) {
	var requests []*entity.RawMaterialRequest

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketRawMaterials, func(v []byte) error {
			var request entity.RawMaterialRequest
			if err := unmarshal(v, &request); err != nil {
				return err
			}
			if request.ProviderID == providerID {
				requests = append(requests, &request)
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list raw material requests", err)
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}
