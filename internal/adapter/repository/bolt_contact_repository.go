package repository

import (
	"context"
	"sort"

	bolt "go.etcd.io/bbolt"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type boltContactRepository struct {
	store *Store
}

func NewBoltContactRepository(store *Store) repository.ContactRepository {
	return &boltContactRepository{store: store}
}

func (r *boltContactRepository) Create(ctx context.Context, message *entity.ContactMessage) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketContacts, message.ID, message)
	})
	if err != nil {
		return errors.Internal("Failed to store contact message", err)
	}
	return nil
}

func (r *boltContactRepository) List(ctx context.Context) ([]*entity.ContactMessage, error) {
	var messages []*entity.ContactMessage

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketContacts, func(v []byte) error {
			var message entity.ContactMessage
			if err := unmarshal(v, &message); err != nil {
				return err
			}
			messages = append(messages, &message)
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list contact messages", err)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].CreatedAt.After(messages[j].CreatedAt)
	})
	return messages, nil
}
