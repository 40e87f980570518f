package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/logger"
)

// SeedUseCase bootstraps demo accounts and listings so a fresh install has
// something to show. Every sample account uses the password "password".
type SeedUseCase struct {
	userRepo      repository.UserRepository
	cropRepo      repository.CropRepository
	productRepo   repository.ProductRepository
	transportRepo repository.TransportRequestRepository
}

func NewSeedUseCase(
	userRepo repository.UserRepository,
	cropRepo repository.CropRepository,
	productRepo repository.ProductRepository,
	transportRepo repository.TransportRequestRepository,
) *SeedUseCase {
	return &SeedUseCase{
		userRepo:      userRepo,
		cropRepo:      cropRepo,
		productRepo:   productRepo,
		transportRepo: transportRepo,
	}
}

// Seed populates each empty collection with sample data. Collections that
// already hold data are left alone, so it is safe to run on every startup.
func (uc *SeedUseCase) Seed(ctx context.Context) error {
	farmerID, providerID, err := uc.seedUsers(ctx)
	if err != nil {
		return err
	}

	cropID, err := uc.seedCrops(ctx, farmerID)
	if err != nil {
		return err
	}
	if err := uc.seedProducts(ctx, providerID); err != nil {
		return err
	}
	return uc.seedTransportRequests(ctx, cropID)
}

func (uc *SeedUseCase) seedUsers(ctx context.Context) (farmerID, providerID string, err error) {
	existing, err := uc.userRepo.List(ctx, "")
	if err != nil {
		return "", "", err
	}
	if len(existing) > 0 {
		for _, user := range existing {
			switch user.Role {
			case entity.RoleFarmer:
				if farmerID == "" {
					farmerID = user.ID
				}
			case entity.RoleService:
				if providerID == "" {
					providerID = user.ID
				}
			}
		}
		return farmerID, providerID, nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte("password"), bcrypt.DefaultCost)
	if err != nil {
		return "", "", err
	}

	samples := []struct {
		name  string
		email string
		role  string
	}{
		{"Rajesh Kumar", "farmer@example.com", entity.RoleFarmer},
		{"Priya Sharma", "dealer@example.com", entity.RoleDealer},
		{"Amit Singh", "transporter@example.com", entity.RoleTransporter},
		{"Sunita Patel", "service@example.com", entity.RoleService},
		{"Admin User", "admin@example.com", entity.RoleAdmin},
	}

	now := time.Now()
	for _, s := range samples {
		user := &entity.User{
			ID:           uuid.NewString(),
			Name:         s.name,
			Email:        s.email,
			PasswordHash: string(hash),
			Role:         s.role,
			CreatedAt:    now,
			UpdatedAt:    now,
		}
		if err := uc.userRepo.Create(ctx, user); err != nil {
			return "", "", err
		}
		switch s.role {
		case entity.RoleFarmer:
			farmerID = user.ID
		case entity.RoleService:
			providerID = user.ID
		}
	}

	logger.Info("Seeded %d sample users", len(samples))
	return farmerID, providerID, nil
}

func (uc *SeedUseCase) seedCrops(ctx context.Context, farmerID string) (string, error) {
	existing, err := uc.cropRepo.List(ctx)
	if err != nil {
		return "", err
	}
	if len(existing) > 0 {
		return existing[0].ID, nil
	}
	if farmerID == "" {
		return "", nil
	}

	samples := []entity.Crop{
		{
			Name: "Finger Millet (Ragi)", Type: "Finger Millet", Quantity: 100, Unit: "kg",
			Price: 45, Location: "Karnataka", Quality: "Organic",
			Description: "Premium quality organic ragi",
		},
		{
			Name: "Pearl Millet (Bajra)", Type: "Pearl Millet", Quantity: 150, Unit: "kg",
			Price: 35, Location: "Karnataka", Quality: "Good",
			Description: "Fresh bajra from this season",
		},
		{
			Name: "Foxtail Millet", Type: "Foxtail Millet", Quantity: 80, Unit: "kg",
			Price: 55, Location: "Karnataka", Quality: "Premium",
			Description: "High quality foxtail millet",
		},
	}

	now := time.Now()
	var firstID string
	for i := range samples {
		crop := samples[i]
		crop.ID = uuid.NewString()
		crop.FarmerID = farmerID
		crop.FarmerName = "Rajesh Kumar"
		crop.Status = entity.ListingAvailable
		crop.CreatedAt = now
		crop.UpdatedAt = now
		if err := uc.cropRepo.Create(ctx, &crop); err != nil {
			return "", err
		}
		if firstID == "" {
			firstID = crop.ID
		}
	}

	logger.Info("Seeded %d sample crops", len(samples))
	return firstID, nil
}

func (uc *SeedUseCase) seedProducts(ctx context.Context, providerID string) error {
	existing, err := uc.productRepo.List(ctx)
	if err != nil {
		return err
	}
	if len(existing) > 0 || providerID == "" {
		return nil
	}

	samples := []entity.Product{
		{
			Name: "Ragi Flour", Type: "Processed", Price: 80, Unit: "kg",
			Description: "Finely ground ragi flour", Certification: "Organic Certified",
		},
		{
			Name: "Bajra Cookies", Type: "Value Added", Price: 120, Unit: "pack",
			Description: "Healthy bajra cookies", Certification: "FSSAI Approved",
		},
	}

	now := time.Now()
	for i := range samples {
		product := samples[i]
		product.ID = uuid.NewString()
		product.ProviderID = providerID
		product.ProviderName = "Sunita Patel"
		product.Status = entity.ListingAvailable
		product.CreatedAt = now
		product.UpdatedAt = now
		if err := uc.productRepo.Create(ctx, &product); err != nil {
			return err
		}
	}

	logger.Info("Seeded %d sample products", len(samples))
	return nil
}

func (uc *SeedUseCase) seedTransportRequests(ctx context.Context, cropID string) error {
	existing, err := uc.transportRepo.List(ctx, "")
	if err != nil {
		return err
	}
	if len(existing) > 0 {
		return nil
	}

	request := &entity.TransportRequest{
		ID:        uuid.NewString(),
		From:      "Karnataka",
		To:        "Maharashtra",
		CropID:    cropID,
		CropName:  "Finger Millet (Ragi)",
		Quantity:  100,
		Unit:      "kg",
		Status:    entity.TransportPending,
		CreatedAt: time.Now(),
	}
	if err := uc.transportRepo.Create(ctx, request); err != nil {
		return err
	}

	logger.Info("Seeded sample transport request")
	return nil
}
