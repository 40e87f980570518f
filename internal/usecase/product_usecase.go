package usecase

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type ProductUseCase struct {
	productRepo     repository.ProductRepository
	cropRepo        repository.CropRepository
	userRepo        repository.UserRepository
	rawMaterialRepo repository.RawMaterialRepository
	partnershipRepo repository.PartnershipRepository
}

func NewProductUseCase(
	productRepo repository.ProductRepository,
	cropRepo repository.CropRepository,
	userRepo repository.UserRepository,
	rawMaterialRepo repository.RawMaterialRepository,
	partnershipRepo repository.PartnershipRepository,
) *ProductUseCase {
	return &ProductUseCase{
		productRepo:     productRepo,
		cropRepo:        cropRepo,
		userRepo:        userRepo,
		rawMaterialRepo: rawMaterialRepo,
		partnershipRepo: partnershipRepo,
	}
}

type ProductInput struct {
	Name          string  `json:"name" validate:"required"`
	Type          string  `json:"type" validate:"required"`
	Price         float64 `json:"price" validate:"required,gt=0"`
	Unit          string  `json:"unit" validate:"required"`
	Description   string  `json:"description"`
	Image         string  `json:"image"`
	Certification string  `json:"certification"`
}

func (uc *ProductUseCase) CreateProduct(ctx context.Context, providerID string, input ProductInput) (*entity.Product, error) {
	provider, err := uc.userRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	product := &entity.Product{
		ID:            uuid.NewString(),
		ProviderID:    provider.ID,
		ProviderName:  provider.Name,
		Name:          input.Name,
		Type:          input.Type,
		Price:         input.Price,
		Unit:          input.Unit,
		Description:   input.Description,
		Image:         input.Image,
		Certification: input.Certification,
		Status:        entity.ListingAvailable,
		CreatedAt:     now,
		UpdatedAt:     now,
	}

	if err := uc.productRepo.Create(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) GetProduct(ctx context.Context, id string) (*entity.Product, error) {
	return uc.productRepo.GetByID(ctx, id)
}

func (uc *ProductUseCase) ListMyProducts(ctx context.Context, providerID string) ([]*entity.Product, error) {
	return uc.productRepo.ListByProvider(ctx, providerID)
}

func (uc *ProductUseCase) UpdateProduct(ctx context.Context, id, providerID string, input ProductInput) (*entity.Product, error) {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if product.ProviderID != providerID {
		return nil, errors.Forbidden("You can only update your own products", nil)
	}

	product.Name = input.Name
	product.Type = input.Type
	product.Price = input.Price
	product.Unit = input.Unit
	product.Description = input.Description
	product.Certification = input.Certification
	if input.Image != "" {
		product.Image = input.Image
	}
	product.UpdatedAt = time.Now()

	if err := uc.productRepo.Update(ctx, product); err != nil {
		return nil, err
	}
	return product, nil
}

func (uc *ProductUseCase) DeleteProduct(ctx context.Context, id, providerID string) error {
	product, err := uc.productRepo.GetByID(ctx, id)
	if err != nil {
		return err
	}
	if product.ProviderID != providerID {
		return errors.Forbidden("You can only delete your own products", nil)
	}
	return uc.productRepo.Delete(ctx, id)
}

type RawMaterialInput struct {
	MilletType string  `json:"millet_type" validate:"required"`
	Quantity   float64 `json:"quantity" validate:"required,gt=0"`
	Unit       string  `json:"unit" validate:"required"`
	Quality    string  `json:"quality" validate:"required"`
	Notes      string  `json:"notes"`
}

// RequestRawMaterial records a provider's sourcing need and returns the
// available farmer listings that match it.
func (uc *ProductUseCase) RequestRawMaterial(ctx context.Context, providerID string, input RawMaterialInput) (*entity.RawMaterialRequest, []*entity.Crop, error) {
	provider, err := uc.userRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, nil, err
	}

	request := &entity.RawMaterialRequest{
		ID:           uuid.NewString(),
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		MilletType:   input.MilletType,
		Quantity:     input.Quantity,
		Unit:         input.Unit,
		Quality:      input.Quality,
		Notes:        input.Notes,
		Status:       entity.RawMaterialPending,
		CreatedAt:    time.Now(),
	}
	if err := uc.rawMaterialRepo.Create(ctx, request); err != nil {
		return nil, nil, err
	}

	matches, err := uc.MatchingSuppliers(ctx, input.MilletType)
	if err != nil {
		return nil, nil, err
	}
	return request, matches, nil
}

// MatchingSuppliers lists available crops whose type or name matches the
// requested millet type.
func (uc *ProductUseCase) MatchingSuppliers(ctx context.Context, milletType string) ([]*entity.Crop, error) {
	crops, err := uc.cropRepo.ListByStatus(ctx, entity.ListingAvailable)
	if err != nil {
		return nil, err
	}

	want := strings.ToLower(milletType)
	var matches []*entity.Crop
	for _, crop := range crops {
		if strings.ToLower(crop.Type) == want || strings.Contains(strings.ToLower(crop.Name), want) {
			matches = append(matches, crop)
		}
	}
	return matches, nil
}

func (uc *ProductUseCase) ListRawMaterialRequests(ctx context.Context, providerID string) ([]*entity.RawMaterialRequest, error) {
	return uc.rawMaterialRepo.ListByProvider(ctx, providerID)
}

// MarkRawMaterialContacted flags a sourcing request once the provider has
// reached out to a farmer.
func (uc *ProductUseCase) MarkRawMaterialContacted(ctx context.Context, id, providerID string) (*entity.RawMaterialRequest, error) {
	request, err := uc.rawMaterialRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if request.ProviderID != providerID {
		return nil, errors.Forbidden("You can only update your own requests", nil)
	}

	request.Status = entity.RawMaterialContacted
	if err := uc.rawMaterialRepo.Update(ctx, request); err != nil {
		return nil, err
	}
	return request, nil
}

type PartnershipInput struct {
	Title       string `json:"title" validate:"required"`
	Type        string `json:"type" validate:"required"`
	Description string `json:"description" validate:"required"`
}

func (uc *ProductUseCase) CreatePartnership(ctx context.Context, providerID string, input PartnershipInput) (*entity.Partnership, error) {
	provider, err := uc.userRepo.GetByID(ctx, providerID)
	if err != nil {
		return nil, err
	}

	partnership := &entity.Partnership{
		ID:           uuid.NewString(),
		ProviderID:   provider.ID,
		ProviderName: provider.Name,
		Title:        input.Title,
		Type:         input.Type,
		Description:  input.Description,
		Status:       "open",
		CreatedAt:    time.Now(),
	}
	if err := uc.partnershipRepo.Create(ctx, partnership); err != nil {
		return nil, err
	}
	return partnership, nil
}

func (uc *ProductUseCase) ListPartnerships(ctx context.Context, providerID string) ([]*entity.Partnership, error) {
	return uc.partnershipRepo.ListByProvider(ctx, providerID)
}

type ProviderStats struct {
	TotalProducts       int `json:"total_products"`
	ActiveProducts      int `json:"active_products"`
	RawMaterialRequests int `json:"raw_material_requests"`
	PendingRequests     int `json:"pending_requests"`
	Partnerships        int `json:"partnerships"`
}

func (uc *ProductUseCase) Stats(ctx context.Context, providerID string) (*ProviderStats, error) {
	products, err := uc.productRepo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	requests, err := uc.rawMaterialRepo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}
	partnerships, err := uc.partnershipRepo.ListByProvider(ctx, providerID)
	if err != nil {
		return nil, err
	}

	stats := &ProviderStats{
		TotalProducts:       len(products),
		RawMaterialRequests: len(requests),
		Partnerships:        len(partnerships),
	}
	for _, product := range products {
		if product.Status == entity.ListingAvailable {
			stats.ActiveProducts++
		}
	}
	for _, request := range requests {
		if request.Status == entity.RawMaterialPending {
			stats.PendingRequests++
		}
	}
	return stats, nil
}
