package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type TransportUseCase struct {
	transportRepo repository.TransportRequestRepository
	deliveryRepo  repository.DeliveryRepository
	userRepo      repository.UserRepository
	notifications *NotificationUseCase
	deliveryRate  float64
}

func NewTransportUseCase(
	transportRepo repository.TransportRequestRepository,
	deliveryRepo repository.DeliveryRepository,
	userRepo repository.UserRepository,
	notifications *NotificationUseCase,
	deliveryRate float64,
) *TransportUseCase {
	return &TransportUseCase{
		transportRepo: transportRepo,
		deliveryRepo:  deliveryRepo,
		userRepo:      userRepo,
		notifications: notifications,
		deliveryRate:  deliveryRate,
	}
}

type TransportRequestInput struct {
	From     string  `json:"from" validate:"required"`
	To       string  `json:"to" validate:"required"`
	CropID   string  `json:"crop_id"`
	CropName string  `json:"crop_name" validate:"required"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
	Unit     string  `json:"unit" validate:"required"`
	Notes    string  `json:"notes"`
}

func (uc *TransportUseCase) CreateRequest(ctx context.Context, requesterID string, input TransportRequestInput) (*entity.TransportRequest, error) {
	request := &entity.TransportRequest{
		ID:          uuid.NewString(),
		RequesterID: requesterID,
		From:        input.From,
		To:          input.To,
		CropID:      input.CropID,
		CropName:    input.CropName,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		Notes:       input.Notes,
		Status:      entity.TransportPending,
		CreatedAt:   time.Now(),
	}
	if err := uc.transportRepo.Create(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

// ListOpenRequests shows the jobs transporters can still pick up.
func (uc *TransportUseCase) ListOpenRequests(ctx context.Context) ([]*entity.TransportRequest, error) {
	requests, err := uc.transportRepo.List(ctx, entity.TransportPending)
	if err != nil {
		return nil, err
	}
	if requests == nil {
		requests = []*entity.TransportRequest{}
	}
	return requests, nil
}

// AcceptRequest assigns a pending request to a transporter and opens the
// delivery record that tracks it to completion.
func (uc *TransportUseCase) AcceptRequest(ctx context.Context, requestID, transporterID string) (*entity.Delivery, error) {
	transporter, err := uc.userRepo.GetByID(ctx, transporterID)
	if err != nil {
		return nil, err
	}

	request, err := uc.transportRepo.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if request.Status != entity.TransportPending {
		return nil, errors.Conflict("This transport request has already been taken")
	}

	now := time.Now()
	request.Status = entity.TransportAssigned
	request.TransporterID = transporter.ID
	request.AssignedAt = &now
	if err := uc.transportRepo.Update(ctx, request); err != nil {
		return nil, err
	}

	delivery := &entity.Delivery{
		ID:              uuid.NewString(),
		TransporterID:   transporter.ID,
		TransporterName: transporter.Name,
		RequestID:       request.ID,
		CropName:        request.CropName,
		From:            request.From,
		To:              request.To,
		Quantity:        request.Quantity,
		Unit:            request.Unit,
		Notes:           request.Notes,
		Status:          entity.DeliveryAssigned,
		AssignedAt:      now,
		UpdatedAt:       now,
	}
	if err := uc.deliveryRepo.Create(ctx, delivery); err != nil {
		return nil, err
	}

	if request.RequesterID != "" {
		uc.notifications.Notify(ctx, request.RequesterID, "transport",
			fmt.Sprintf("%s accepted your transport request for %s", transporter.Name, request.CropName),
			map[string]string{"delivery_id": delivery.ID})
	}
	return delivery, nil
}

// deliveryTransitions is the only allowed forward step per status.
var deliveryTransitions = map[string]string{
	entity.DeliveryAssigned:  entity.DeliveryPickedUp,
	entity.DeliveryPickedUp:  entity.DeliveryInTransit,
	entity.DeliveryInTransit: entity.DeliveryDelivered,
}

// AdvanceDelivery moves a delivery one step along
// assigned -> picked-up -> in-transit -> delivered. Any other jump is rejected.
func (uc *TransportUseCase) AdvanceDelivery(ctx context.Context, deliveryID, transporterID string) (*entity.Delivery, error) {
	delivery, err := uc.deliveryRepo.GetByID(ctx, deliveryID)
	if err != nil {
		return nil, err
	}
	if delivery.TransporterID != transporterID {
		return nil, errors.Forbidden("You can only update your own deliveries", nil)
	}

	next, ok := deliveryTransitions[delivery.Status]
	if !ok {
		return nil, errors.BadRequest(fmt.Sprintf("Delivery in status %q cannot advance", delivery.Status), nil)
	}

	now := time.Now()
	delivery.Status = next
	delivery.UpdatedAt = now
	if next == entity.DeliveryDelivered {
		delivery.DeliveredAt = &now
	}
	if err := uc.deliveryRepo.Update(ctx, delivery); err != nil {
		return nil, err
	}

	request, err := uc.transportRepo.GetByID(ctx, delivery.RequestID)
	if err == nil && request.RequesterID != "" {
		uc.notifications.Notify(ctx, request.RequesterID, "transport",
			fmt.Sprintf("Delivery of %s is now %s", delivery.CropName, next),
			map[string]string{"delivery_id": delivery.ID})
	}
	return delivery, nil
}

func (uc *TransportUseCase) MyDeliveries(ctx context.Context, transporterID string) ([]*entity.Delivery, error) {
	deliveries, err := uc.deliveryRepo.ListByTransporter(ctx, transporterID)
	if err != nil {
		return nil, err
	}
	if deliveries == nil {
		deliveries = []*entity.Delivery{}
	}
	return deliveries, nil
}

type TransporterStats struct {
	TotalDeliveries     int     `json:"total_deliveries"`
	ActiveDeliveries    int     `json:"active_deliveries"`
	CompletedDeliveries int     `json:"completed_deliveries"`
	Earnings            float64 `json:"earnings"`
}

// Stats summarizes a transporter's workload. Earnings are a flat rate per
// completed delivery.
func (uc *TransportUseCase) Stats(ctx context.Context, transporterID string) (*TransporterStats, error) {
	deliveries, err := uc.deliveryRepo.ListByTransporter(ctx, transporterID)
	if err != nil {
		return nil, err
	}

	stats := &TransporterStats{TotalDeliveries: len(deliveries)}
	for _, delivery := range deliveries {
		if delivery.Status == entity.DeliveryDelivered {
			stats.CompletedDeliveries++
		} else {
			stats.ActiveDeliveries++
		}
	}
	stats.Earnings = float64(stats.CompletedDeliveries) * uc.deliveryRate
	return stats, nil
}
