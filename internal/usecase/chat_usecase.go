package usecase

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/google/uuid"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type ChatUseCase struct {
	chatRepo      repository.ChatRepository
	userRepo      repository.UserRepository
	notifications *NotificationUseCase
	pusher        Pusher
	rateLimiter   RateLimiter
}

func NewChatUseCase(
	chatRepo repository.ChatRepository,
	userRepo repository.UserRepository,
	notifications *NotificationUseCase,
	pusher Pusher,
	rateLimiter RateLimiter,
) *ChatUseCase {
	return &ChatUseCase{
		chatRepo:      chatRepo,
		userRepo:      userRepo,
		notifications: notifications,
		pusher:        pusher,
		rateLimiter:   rateLimiter,
	}
}

type SendMessageInput struct {
	ReceiverID string `json:"receiver_id" validate:"required"`
	Content    string `json:"content" validate:"required,min=1,max=2000"`
}

func (uc *ChatUseCase) SendMessage(ctx context.Context, senderID string, input SendMessageInput) (*entity.Message, error) {
	if allowed, wait := uc.rateLimiter.Allow(senderID, "send_message"); !allowed {
		return nil, errors.TooManyRequests(
			fmt.Sprintf("Sending too fast, retry in %.0f seconds", wait.Seconds()))
	}

	if senderID == input.ReceiverID {
		return nil, errors.BadRequest("You cannot message yourself", nil)
	}

	sender, err := uc.userRepo.GetByID(ctx, senderID)
	if err != nil {
		return nil, err
	}
	if _, err := uc.userRepo.GetByID(ctx, input.ReceiverID); err != nil {
		return nil, err
	}

	message := &entity.Message{
		ID:         uuid.NewString(),
		SenderID:   senderID,
		ReceiverID: input.ReceiverID,
		Content:    strings.TrimSpace(input.Content),
		Read:       false,
		Timestamp:  time.Now(),
	}
	if err := uc.chatRepo.Create(ctx, message); err != nil {
		return nil, err
	}

	if uc.pusher != nil {
		uc.pusher.Push(input.ReceiverID, "chat_message", message)
	}
	uc.notifications.Notify(ctx, input.ReceiverID, "chat",
		fmt.Sprintf("New message from %s", sender.Name),
		map[string]string{"sender_id": senderID})

	return message, nil
}

// History returns the conversation with another user, oldest first, and
// marks their messages to the caller as read.
func (uc *ChatUseCase) History(ctx context.Context, userID, partnerID string) ([]*entity.Message, error) {
	messages, err := uc.chatRepo.History(ctx, userID, partnerID)
	if err != nil {
		return nil, err
	}
	if err := uc.chatRepo.MarkConversationRead(ctx, userID, partnerID); err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*entity.Message{}
	}
	return messages, nil
}

type Conversation struct {
	PartnerID   string    `json:"partner_id"`
	PartnerName string    `json:"partner_name"`
	PartnerRole string    `json:"partner_role"`
	LastMessage string    `json:"last_message"`
	LastAt      time.Time `json:"last_at"`
	Unread      int       `json:"unread"`
}

// Conversations lists everyone the user has exchanged messages with, most
// recent conversation first.
func (uc *ChatUseCase) Conversations(ctx context.Context, userID string) ([]Conversation, error) {
	messages, err := uc.chatRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	byPartner := make(map[string]*Conversation)
	var order []string
	for _, message := range messages {
		partnerID := message.SenderID
		if partnerID == userID {
			partnerID = message.ReceiverID
		}

		conv, ok := byPartner[partnerID]
		if !ok {
			conv = &Conversation{PartnerID: partnerID}
			byPartner[partnerID] = conv
			order = append(order, partnerID)
		}
		conv.LastMessage = message.Content
		conv.LastAt = message.Timestamp
		if message.ReceiverID == userID && !message.Read {
			conv.Unread++
		}
	}

	conversations := make([]Conversation, 0, len(order))
	for _, partnerID := range order {
		conv := byPartner[partnerID]
		if partner, err := uc.userRepo.GetByID(ctx, partnerID); err == nil {
			conv.PartnerName = partner.Name
			conv.PartnerRole = partner.Role
		}
		conversations = append(conversations, *conv)
	}

	sort.Slice(conversations, func(i, j int) bool {
		return conversations[i].LastAt.After(conversations[j].LastAt)
	})
	return conversations, nil
}
