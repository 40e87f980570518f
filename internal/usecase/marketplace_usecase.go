package usecase

import (
	"context"
	"sort"
	"strings"
	"time"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
)

type MarketplaceUseCase struct {
	cropRepo    repository.CropRepository
	productRepo repository.ProductRepository
}

func NewMarketplaceUseCase(cropRepo repository.CropRepository, productRepo repository.ProductRepository) *MarketplaceUseCase {
	return &MarketplaceUseCase{
		cropRepo:    cropRepo,
		productRepo: productRepo,
	}
}

const (
	SourceCrop    = "crop"
	SourceProduct = "product"
)

// Listing is the unified catalog row the marketplace serves, merging farmer
// crops and provider products.
type Listing struct {
	ID            string    `json:"id"`
	Source        string    `json:"source"`
	Name          string    `json:"name"`
	Type          string    `json:"type"`
	Price         float64   `json:"price"`
	Unit          string    `json:"unit"`
	Quantity      float64   `json:"quantity,omitempty"`
	SellerID      string    `json:"seller_id"`
	SellerName    string    `json:"seller_name"`
	Location      string    `json:"location,omitempty"`
	Quality       string    `json:"quality,omitempty"`
	Description   string    `json:"description,omitempty"`
	Image         string    `json:"image,omitempty"`
	Certification string    `json:"certification,omitempty"`
	CreatedAt     time.Time `json:"created_at"`
}

type BrowseFilter struct {
	Query    string
	Type     string
	Quality  string
	Location string
	Source   string
	MinPrice float64
	MaxPrice float64
	SortBy   string
}

// Browse returns available listings matching every provided filter. The
// price range is inclusive at both ends and intersects with the other
// filters rather than replacing them.
func (uc *MarketplaceUseCase) Browse(ctx context.Context, filter BrowseFilter) ([]Listing, error) {
	var listings []Listing

	if filter.Source == "" || filter.Source == SourceCrop {
		crops, err := uc.cropRepo.ListByStatus(ctx, entity.ListingAvailable)
		if err != nil {
			return nil, err
		}
		for _, crop := range crops {
			listings = append(listings, Listing{
				ID:          crop.ID,
				Source:      SourceCrop,
				Name:        crop.Name,
				Type:        crop.Type,
				Price:       crop.Price,
				Unit:        crop.Unit,
				Quantity:    crop.Quantity,
				SellerID:    crop.FarmerID,
				SellerName:  crop.FarmerName,
				Location:    crop.Location,
				Quality:     crop.Quality,
				Description: crop.Description,
				Image:       crop.Image,
				CreatedAt:   crop.CreatedAt,
			})
		}
	}

	if filter.Source == "" || filter.Source == SourceProduct {
		products, err := uc.productRepo.ListByStatus(ctx, entity.ListingAvailable)
		if err != nil {
			return nil, err
		}
		for _, product := range products {
			listings = append(listings, Listing{
				ID:            product.ID,
				Source:        SourceProduct,
				Name:          product.Name,
				Type:          product.Type,
				Price:         product.Price,
				Unit:          product.Unit,
				SellerID:      product.ProviderID,
				SellerName:    product.ProviderName,
				Description:   product.Description,
				Image:         product.Image,
				Certification: product.Certification,
				CreatedAt:     product.CreatedAt,
			})
		}
	}

	filtered := listings[:0]
	for _, l := range listings {
		if !matches(l, filter) {
			continue
		}
		filtered = append(filtered, l)
	}

	sortListings(filtered, filter.SortBy)

	if filtered == nil {
		filtered = []Listing{}
	}
	return filtered, nil
}

func matches(l Listing, f BrowseFilter) bool {
	if f.Query != "" {
		q := strings.ToLower(f.Query)
		if !strings.Contains(strings.ToLower(l.Name), q) &&
			!strings.Contains(strings.ToLower(l.SellerName), q) &&
			!strings.Contains(strings.ToLower(l.Description), q) {
			return false
		}
	}
	if f.Type != "" && !strings.EqualFold(l.Type, f.Type) {
		return false
	}
	if f.Quality != "" && !strings.EqualFold(l.Quality, f.Quality) {
		return false
	}
	if f.Location != "" && !strings.Contains(strings.ToLower(l.Location), strings.ToLower(f.Location)) {
		return false
	}
	if f.MinPrice > 0 && l.Price < f.MinPrice {
		return false
	}
	if f.MaxPrice > 0 && l.Price > f.MaxPrice {
		return false
	}
	return true
}

func sortListings(listings []Listing, sortBy string) {
	switch sortBy {
	case "price-low":
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Price < listings[j].Price })
	case "price-high":
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Price > listings[j].Price })
	case "quantity":
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].Quantity > listings[j].Quantity })
	case "name":
		sort.SliceStable(listings, func(i, j int) bool {
			return strings.ToLower(listings[i].Name) < strings.ToLower(listings[j].Name)
		})
	default: // newest
		sort.SliceStable(listings, func(i, j int) bool { return listings[i].CreatedAt.After(listings[j].CreatedAt) })
	}
}
