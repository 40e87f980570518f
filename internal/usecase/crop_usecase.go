package usecase

import (
	"context"
	"time"

	"github.com/google/uuid"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type CropUseCase struct {
	cropRepo  repository.CropRepository
	orderRepo repository.OrderRepository
	userRepo  repository.UserRepository
}

func NewCropUseCase(
	cropRepo repository.CropRepository,
	orderRepo repository.OrderRepository,
	userRepo repository.UserRepository,
) *CropUseCase {
	return &CropUseCase{
		cropRepo:  cropRepo,
		orderRepo: orderRepo,
		userRepo:  userRepo,
	}
}

type CropInput struct {
	Name        string  `json:"name" validate:"required"`
	Type        string  `json:"type" validate:"required"`
	Quantity    float64 `json:"quantity" validate:"required,gt=0"`
	Unit        string  `json:"unit" validate:"required"`
	Price       float64 `json:"price" validate:"required,gt=0"`
	Location    string  `json:"location" validate:"required"`
	Quality     string  `json:"quality" validate:"required"`
	Description string  `json:"description"`
	Image       string  `json:"image"`
}

func (uc *CropUseCase) CreateCrop(ctx context.Context, farmerID string, input CropInput) (*entity.Crop, error) {
	farmer, err := uc.userRepo.GetByID(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	crop := &entity.Crop{
		ID:          uuid.NewString(),
		FarmerID:    farmer.ID,
		FarmerName:  farmer.Name,
		Name:        input.Name,
		Type:        input.Type,
		Quantity:    input.Quantity,
		Unit:        input.Unit,
		Price:       input.Price,
		Location:    input.Location,
		Quality:     input.Quality,
		Description: input.Description,
		Image:       input.Image,
		Status:      entity.ListingAvailable,
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	if err := uc.cropRepo.Create(ctx, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

func (uc *CropUseCase) GetCrop(ctx context.Context, id string) (*entity.Crop, error) {
	return uc.cropRepo.GetByID(ctx, id)
}

// ListMyCrops returns a farmer's listings, optionally narrowed to one status.
func (uc *CropUseCase) ListMyCrops(ctx context.Context, farmerID, status string) ([]*entity.Crop, error) {
	crops, err := uc.cropRepo.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	if status == "" {
		return crops, nil
	}

	filtered := crops[:0]
	for _, crop := range crops {
		if crop.Status == status {
			filtered = append(filtered, crop)
		}
	}
	return filtered, nil
}

func (uc *CropUseCase) UpdateCrop(ctx context.Context, id, farmerID string, input CropInput) (*entity.Crop, error) {
	crop, err := uc.cropRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if crop.FarmerID != farmerID {
		return nil, errors.Forbidden("You can only update your own listings", nil)
	}

	crop.Name = input.Name
	crop.Type = input.Type
	crop.Quantity = input.Quantity
	crop.Unit = input.Unit
	crop.Price = input.Price
	crop.Location = input.Location
	crop.Quality = input.Quality
	crop.Description = input.Description
	if input.Image != "" {
		crop.Image = input.Image
	}
	if crop.Quantity > 0 {
		crop.Status = entity.ListingAvailable
	}
	crop.UpdatedAt = time.Now()

	if err := uc.cropRepo.Update(ctx, crop); err != nil {
		return nil, err
	}
	return crop, nil
}

// DeleteCrop removes exactly the listing with the given id, owner only.
func (uc *CropUseCase) DeleteCrop(ctx context.Context, id, farmerID string) error {
	crop, err := uc.cropRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if crop.FarmerID != farmerID {
		return errors.Forbidden("You can only delete your own listings", nil)
	}
	return uc.cropRepo.Delete(ctx, id)
}

type FarmerStats struct {
	TotalListings     int     `json:"total_listings"`
	ActiveListings    int     `json:"active_listings"`
	SoldListings      int     `json:"sold_listings"`
	TotalOrders       int     `json:"total_orders"`
	PendingOrders     int     `json:"pending_orders"`
	TotalRevenue      float64 `json:"total_revenue"`
	QuantityAvailable float64 `json:"quantity_available"`
}

// Stats summarizes a farmer's dashboard numbers. Revenue counts every order
// placed against their crops regardless of delivery progress.
func (uc *CropUseCase) Stats(ctx context.Context, farmerID string) (*FarmerStats, error) {
	crops, err := uc.cropRepo.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}

	stats := &FarmerStats{TotalListings: len(crops), TotalOrders: len(orders)}
	for _, crop := range crops {
		switch crop.Status {
		case entity.ListingAvailable:
			stats.ActiveListings++
			stats.QuantityAvailable += crop.Quantity
		case entity.ListingSold:
			stats.SoldListings++
		}
	}
	for _, order := range orders {
		if order.Status == entity.OrderPending {
			stats.PendingOrders++
		}
		if order.Status != entity.OrderCancelled {
			stats.TotalRevenue += order.TotalPrice
		}
	}
	return stats, nil
}

type MonthlySales struct {
	Month   string  `json:"month"`
	Orders  int     `json:"orders"`
	Revenue float64 `json:"revenue"`
}

// SalesAnalytics buckets a farmer's order revenue by calendar month over the
// last six months, oldest first.
func (uc *CropUseCase) SalesAnalytics(ctx context.Context, farmerID string) ([]MonthlySales, error) {
	orders, err := uc.orderRepo.ListByFarmer(ctx, farmerID)
	if err != nil {
		return nil, err
	}
	return bucketMonthlySales(orders, time.Now()), nil
}

func bucketMonthlySales(orders []*entity.Order, now time.Time) []MonthlySales {
	// Anchor to the first of the month; stepping whole months from day 31
	// would normalize into the next month and collapse two buckets into one.
	start := time.Date(now.Year(), now.Month()-5, 1, 0, 0, 0, 0, now.Location())

	months := make([]MonthlySales, 6)
	index := make(map[string]int, 6)
	for i := 0; i < 6; i++ {
		key := start.AddDate(0, i, 0).Format("2006-01")
		months[i] = MonthlySales{Month: key}
		index[key] = i
	}

	for _, order := range orders {
		if order.Status == entity.OrderCancelled {
			continue
		}
		if i, ok := index[order.CreatedAt.Format("2006-01")]; ok {
			months[i].Orders++
			months[i].Revenue += order.TotalPrice
		}
	}
	return months
}
