package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
	"shreeanna/pkg/logger"
)

type AuthUseCase struct {
	userRepo     repository.UserRepository
	profileRepo  repository.ProfileRepository
	tokenManager TokenManager
	rateLimiter  RateLimiter
}

func NewAuthUseCase(
	userRepo repository.UserRepository,
	profileRepo repository.ProfileRepository,
	tokenManager TokenManager,
	rateLimiter RateLimiter,
) *AuthUseCase {
	return &AuthUseCase{
		userRepo:     userRepo,
		profileRepo:  profileRepo,
		tokenManager: tokenManager,
		rateLimiter:  rateLimiter,
	}
}

type RegisterInput struct {
	Name     string `json:"name" validate:"required,min=2"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
	Role     string `json:"role" validate:"required,oneof=farmer dealer transporter service"`
}

type LoginInput struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type AuthResult struct {
	User  *entity.User `json:"user"`
	Token string       `json:"token"`
}

func sanitize(user *entity.User) *entity.User {
	clean := *user
	clean.PasswordHash = ""
	return &clean
}

// Register creates an account. Email addresses are unique across the
// platform; a duplicate registration is rejected without touching anything.
func (uc *AuthUseCase) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	email := strings.TrimSpace(input.Email)

	if _, err := uc.userRepo.GetByEmail(ctx, email); err == nil {
		return nil, errors.Conflict("An account with this email already exists")
	} else if !errors.Is(err, "NOT_FOUND") {
		return nil, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, errors.Internal("Failed to hash password", err)
	}

	now := time.Now()
	user := &entity.User{
		ID:           uuid.NewString(),
		Name:         strings.TrimSpace(input.Name),
		Email:        email,
		PasswordHash: string(hash),
		Role:         input.Role,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.userRepo.Create(ctx, user); err != nil {
		return nil, err
	}

	token, err := uc.tokenManager.Generate(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	logger.Info("User registered: %s (%s)", user.Email, user.Role)
	return &AuthResult{User: sanitize(user), Token: token}, nil
}

// Login authenticates by email and password. Attempts are rate limited per
// email so credential stuffing cannot hammer the account.
func (uc *AuthUseCase) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	email := strings.TrimSpace(input.Email)

	if allowed, wait := uc.rateLimiter.Allow(strings.ToLower(email), "login"); !allowed {
		return nil, errors.TooManyRequests(
			fmt.Sprintf("Too many login attempts, retry in %.0f seconds", wait.Seconds()))
	}

	user, err := uc.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, "NOT_FOUND") {
			return nil, errors.Unauthorized("Invalid email or password", nil)
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		return nil, errors.Unauthorized("Invalid email or password", nil)
	}

	token, err := uc.tokenManager.Generate(user.ID, user.Role)
	if err != nil {
		return nil, err
	}

	logger.Info("User logged in: %s", user.Email)
	return &AuthResult{User: sanitize(user), Token: token}, nil
}

// CurrentUser returns the account and dashboard profile for an id.
func (uc *AuthUseCase) CurrentUser(ctx context.Context, userID string) (*entity.User, *entity.Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	profile, err := uc.profileRepo.Get(ctx, userID)
	if err != nil {
		return nil, nil, err
	}
	return sanitize(user), profile, nil
}

type UpdateProfileInput struct {
	Name           string `json:"name" validate:"omitempty,min=2"`
	Phone          string `json:"phone"`
	Address        string `json:"address"`
	Experience     string `json:"experience"`
	Specialization string `json:"specialization"`
}

// UpdateProfile changes the account name and dashboard profile fields.
func (uc *AuthUseCase) UpdateProfile(ctx context.Context, userID string, input UpdateProfileInput) (*entity.User, *entity.Profile, error) {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return nil, nil, err
	}

	if input.Name != "" {
		user.Name = strings.TrimSpace(input.Name)
		user.UpdatedAt = time.Now()
		if err := uc.userRepo.Update(ctx, user); err != nil {
			return nil, nil, err
		}
	}

	profile := &entity.Profile{
		UserID:         userID,
		Phone:          input.Phone,
		Address:        input.Address,
		Experience:     input.Experience,
		Specialization: input.Specialization,
		UpdatedAt:      time.Now(),
	}
	if err := uc.profileRepo.Save(ctx, profile); err != nil {
		return nil, nil, err
	}
	return sanitize(user), profile, nil
}

type ChangePasswordInput struct {
	CurrentPassword string `json:"current_password" validate:"required"`
	NewPassword     string `json:"new_password" validate:"required,min=6"`
}

func (uc *AuthUseCase) ChangePassword(ctx context.Context, userID string, input ChangePasswordInput) error {
	user, err := uc.userRepo.GetByID(ctx, userID)
	if err != nil {
		return err
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.CurrentPassword)) != nil {
		return errors.Unauthorized("Current password is incorrect", nil)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.NewPassword), bcrypt.DefaultCost)
	if err != nil {
		return errors.Internal("Failed to hash password", err)
	}

	user.PasswordHash = string(hash)
	user.UpdatedAt = time.Now()
	return uc.userRepo.Update(ctx, user)
}
