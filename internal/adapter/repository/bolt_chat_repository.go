package repository

import (
	"context"
	"sort"

	bolt "go.etcd.io/bbolt"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type boltChatRepository struct {
	store *Store
}

func NewBoltChatRepository(store *Store) repository.ChatRepository {
	return &boltChatRepository{store: store}
}

func (r *boltChatRepository) Create(ctx context.Context, message *entity.Message) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		return put(tx, bucketChats, message.ID, message)
	})
	if err != nil {
		return errors.Internal("Failed to store chat message", err)
	}
	return nil
}

func (r *boltChatRepository) History(ctx context.Context, userA, userB string) ([]*entity.Message, error) {
	var messages []*entity.Message

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketChats, func(v []byte) error {
			var message entity.Message
			if err := unmarshal(v, &message); err != nil {
				return err
			}
			between := (message.SenderID == userA && message.ReceiverID == userB) ||
				(message.SenderID == userB && message.ReceiverID == userA)
			if between {
				messages = append(messages, &message)
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to load chat history", err)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

func (r *boltChatRepository) ListByUser(ctx context.Context, userID string) ([]*entity.Message, error) {
	var messages []*entity.Message

	err := r.store.db.View(func(tx *bolt.Tx) error {
		return forEach(tx, bucketChats, func(v []byte) error {
			var message entity.Message
			if err := unmarshal(v, &message); err != nil {
				return err
			}
			if message.SenderID == userID || message.ReceiverID == userID {
				messages = append(messages, &message)
			}
			return nil
		})
	})
	if err != nil {
		return nil, errors.Internal("Failed to list chat messages", err)
	}

	sort.Slice(messages, func(i, j int) bool {
		return messages[i].Timestamp.Before(messages[j].Timestamp)
	})
	return messages, nil
}

func (r *boltChatRepository) MarkConversationRead(ctx context.Context, receiverID, senderID string) error {
	err := r.store.db.Update(func(tx *bolt.Tx) error {
		var unread []*entity.Message

		err := forEach(tx, bucketChats, func(v []byte) error {
			var message entity.Message
			if err := unmarshal(v, &message); err != nil {
				return err
			}
			if message.SenderID == senderID && message.ReceiverID == receiverID && !message.Read {
				unread = append(unread, &message)
			}
			return nil
		})
		if err != nil {
			return err
		}

		for _, message := range unread {
			message.Read = true
			if err := put(tx, bucketChats, message.ID, message); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return errors.Internal("Failed to mark conversation read", err)
	}
	return nil
}
