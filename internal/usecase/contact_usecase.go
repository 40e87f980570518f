package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
)

type ContactUseCase struct {
	contactRepo repository.ContactRepository
}

func NewContactUseCase(contactRepo repository.ContactRepository) *ContactUseCase {
	return &ContactUseCase{contactRepo: contactRepo}
}

type ContactInput struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,email"`
	Phone   string `json:"phone"`
	Subject string `json:"subject" validate:"required"`
	Message string `json:"message" validate:"required,min=10"`
}

func (uc *ContactUseCase) Submit(ctx context.Context, input ContactInput) (*entity.ContactMessage, error) {
	message := &entity.ContactMessage{
		ID:        uuid.NewString(),
		Name:      strings.TrimSpace(input.Name),
		Email:     strings.TrimSpace(input.Email),
		Phone:     input.Phone,
		Subject:   input.Subject,
		Message:   input.Message,
		Status:    "new",
		CreatedAt: time.Now(),
	}
	if err := uc.contactRepo.Create(ctx, message); err != nil {
		return nil, err
	}
	return message, nil
}
