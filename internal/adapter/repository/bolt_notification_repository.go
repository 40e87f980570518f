package repository

import (
	"context"
	"sort"

	bolt "go.etcd.io/bbolt"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type boltNotificationRepository struct {
	store *Store
}

func NewBoltNotificationRepository(store *Store) repository.NotificationRepository {
	return &boltNotificationRepository{store: store}
}

func (r *boltNotificationRepository) Create(ctx context.Context, notification *entity.Notification) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketNotification, notification.ID, notification)
	})
	if err != nil {
		return errors.Internal("Failed to create notification", err)
	}
	return nil
}

func (r *boltNotificationRepository) GetByID(ctx context.Context, id string) (*entity.Notification, error) {
	var notification entity.Notification
	var found bool

	err := r.store.db.View(func(tx *bolt.Tx) error {
		var err error
		found, err = getInto(tx, bucketNotification, id, &notification)
		return err
	})
	if err != nil {
		return nil, errors.Internal("Failed to get notification", err)
	}
	if !found {
		return nil, errors.NotFound("Notification", nil)
	}
	return &notification, nil
}

func (r *boltNotificationRepository) Update(ctx context.Context, notification *entity.Notification) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		var existing entity.Notification
		found, err := getInto(tx, bucketNotification, notification.ID, &existing)
		if err != nil {
			return err
		}
		if !found {
			return errors.NotFound("Notification", nil)
		}
		return put(tx, bucketNotification, notification.ID, notification)
	})
	if appErr, ok := err.(*errors.AppError); ok {
		return appErr
	}
	if err != nil {
		return errors.Internal("Failed to update notification", err)
	}
	return nil
}

func (r *boltNotificationRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Notification, error) {
	var notifications []*entity.Notification

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketNotification, func(v []byte) error {
			var notification entity.Notification
			if err := unmarshal(v, &notification); err != nil {
				return err
			}
			if notification.UserID == userID {
				notifications = append(notifications, &notification)
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list notifications", err)
	}

	sort.Slice(notifications, func(i, j int) bool {
		return notifications[i].CreatedAt.After(notifications[j].CreatedAt)
	})
	return notifications, nil
}
