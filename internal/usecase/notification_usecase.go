package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
	"shreeanna/pkg/logger"
)

// Pusher delivers real-time events to connected clients. Offline users are
// skipped; they catch up through the notification list.
type Pusher interface {
	Push(userID, eventType string, payload interface{})
}

type NotificationUseCase struct {
	notificationRepo repository.NotificationRepository
	pusher           Pusher
}

func NewNotificationUseCase(notificationRepo repository.NotificationRepository, pusher Pusher) *NotificationUseCase {
	return &NotificationUseCase{
		notificationRepo: notificationRepo,
		pusher:           pusher,
	}
}

// Notify stores a notification and pushes it to the user if connected. A
// push failure never fails the calling operation.
func (uc *NotificationUseCase) Notify(ctx context.Context, userID, notifType, message string, data map[string]string) {
	notification := &entity.Notification{
		ID:        uuid.NewString(),
		UserID:    userID,
		Type:      notifType,
		Message:   message,
		Data:      data,
		Read:      false,
		CreatedAt: time.Now(),
	}

	if err := uc.notificationRepo.Create(ctx, notification); err != nil {
		logger.Error("Failed to store notification for %s: %v", userID, err)
		return
	}

	if uc.pusher != nil {
		uc.pusher.Push(userID, "notification", notification)
	}
}

func (uc *NotificationUseCase) List(ctx context.Context, userID string) ([]*entity.Notification, error) {
	notifications, err := uc.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return nil, err
	}
	if notifications == nil {
		notifications = []*entity.Notification{}
	}
	return notifications, nil
}

func (uc *NotificationUseCase) UnreadCount(ctx context.Context, userID string) (int, error) {
	notifications, err := uc.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	count := 0
	for _, n := range notifications {
		if !n.Read {
			count++
		}
	}
	return count, nil
}

func (uc *NotificationUseCase) MarkRead(ctx context.Context, id, userID string) (*entity.Notification, error) {
	notification, err := uc.notificationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if notification.UserID != userID {
		return nil, errors.Forbidden("You can only update your own notifications", nil)
	}

	notification.Read = true
	if err := uc.notificationRepo.Update(ctx, notification); err != nil {
		return nil, err
	}
	return notification, nil
}

func (uc *NotificationUseCase) MarkAllRead(ctx context.Context, userID string) (int, error) {
	notifications, err := uc.notificationRepo.ListByUser(ctx, userID)
	if err != nil {
		return 0, err
	}

	updated := 0
	for _, n := range notifications {
		if n.Read {
			continue
		}
		n.Read = true
		if err := uc.notificationRepo.Update(ctx, n); err != nil {
			return updated, err
		}
		updated++
	}
	return updated, nil
}
