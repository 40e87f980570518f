package repository

import (
	"context"

	"shreeanna/internal/domain/entity"
)

type ChatRepository interface {
	Create(ctx context.Context, message *entity.Message) error
	// History returns every message exchanged between the two users, oldest
	// first.
	History(ctx context.Context, userA, userB string) ([]*entity.Message, error)
	// ListByUser returns every message the user sent or received, oldest
	// first.
	ListByUser(ctx context.Context, userID string) ([]*entity.Message, error)
	// MarkConversationRead flags all messages sent by senderID to receiverID
	// as read.
	MarkConversationRead(ctx context.Context, receiverID, senderID string) error
}
