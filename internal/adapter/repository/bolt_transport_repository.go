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

type boltTransportRequestRepository struct {
	store *Store
}

func NewBoltTransportRequestRepository(store *Store) repository.TransportRequestRepository {
	return &boltTransportRequestRepository{store: store}
}

func (r *boltTransportRequestRepository) Create(ctx context.Context, request *entity.TransportRequest) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketTransport, request.ID, request)
	})
	if err != nil {
		return errors.Internal("Failed to create transport request", err)
	}
	return nil
}

func (r *boltTransportRequestRepository) GetByID(ctx context.Context, id string) (*entity.TransportRequest, error) {
	var request entity.TransportRequest
	var found bool

	err := r.store.db.View(func(tx *bolt.Tx) error {
		var err error
		found, err = getInto(tx, bucketTransport, id, &request)
		return err
	})
	if err != nil {
		return nil, errors.Internal("Failed to get transport request", err)
	}
	if !found {
		return nil, errors.NotFound("Transport request", nil)
	}
	return &request, nil
}

func (r *boltTransportRequestRepository) Update(ctx context.Context, request *entity.TransportRequest) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		var existing entity.TransportRequest
		found, err := getInto(tx, bucketTransport, request.ID, &existing)
		if err != nil {
			return err
		}
		if !found {
			return errors.NotFound("Transport request", nil)
		}
		return put(tx, bucketTransport, request.ID, request)
	})
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	if err != nil {
		return errors.Internal("Failed to update transport request", err)
	}
	return nil
}

func (r *boltTransportRequestRepository) List(ctx context.Context, status string) ([]*entity.TransportRequest, error) {
	var requests []*entity.TransportRequest

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketTransport, func(v []byte) error {
			var request entity.TransportRequest
			if err := unmarshal(v, &request); err != nil {
				return err
			}
			if status == "" || request.Status == status {
				requests = append(requests, &request)
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list transport requests", err)
	}

	sort.Slice(requests, func(i, j int) bool {
		return requests[i].CreatedAt.After(requests[j].CreatedAt)
	})
	return requests, nil
}

type boltDeliveryRepository struct {
	store *Store
}

func NewBoltDeliveryRepository(store *Store) repository.DeliveryRepository {
	return &boltDeliveryRepository{store: store}
}

func (r *boltDeliveryRepository) Create(ctx context.Context, delivery *entity.Delivery) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketDeliveries, delivery.ID, delivery)
	})
	if err != nil {
		return errors.Internal("Failed to create delivery", err)
	}
	return nil
}

func (r *boltDeliveryRepository) GetByID(ctx context.Context, id string) (*entity.Delivery, error) {
	var delivery entity.Delivery
	var found bool

	err := r.store.db.View(func(tx *bolt.Tx) error {
		var err error
		found, err = getInto(tx, bucketDeliveries, id, &delivery)
		return err
	})
	if err != nil {
		return nil, errors.Internal("Failed to get delivery", err)
	}
	if !found {
		return nil, errors.NotFound("Delivery", nil)
	}
	return &delivery, nil
}

func (r *boltDeliveryRepository) Update(ctx context.Context, delivery *entity.Delivery) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		var existing entity.Delivery
		found, err := getInto(tx, bucketDeliveries, delivery.ID, &existing)
		if err != nil {
			return err
		}
		if !found {
			return errors.NotFound("Delivery", nil)
		}
		delivery.UpdatedAt = time.Now()
		return put(tx, bucketDeliveries, delivery.ID, delivery)
	})
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	if err != nil {
		return errors.Internal("Failed to update delivery", err)
	}
	return nil
}

func (r *boltDeliveryRepository) ListByTransporter(ctx context.Context, transporterID string) ([]*entity.Delivery, error) {
	var deliveries []*entity.Delivery

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketDeliveries, func(v []byte) error {
			var delivery entity.Delivery
			if err := unmarshal(v, &delivery); err != nil {
				return err
			}
			if delivery.TransporterID == transporterID {
				deliveries = append(deliveries, &delivery)
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list deliveries", err)
	}

	sort.Slice(deliveries, func(i, j int) bool {
		return deliveries[i].AssignedAt.After(deliveries[j].AssignedAt)
	})
	return deliveries, nil
}
