package usecase

import (
	"context"
	"time"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
	"shreeanna/pkg/logger"
)

// PlatformResetter wipes every collection in the store.
type PlatformResetter interface {
	Reset() error
}

type AdminUseCase struct {
	userRepo      repository.UserRepository
	cropRepo      repository.CropRepository
	productRepo   repository.ProductRepository
	orderRepo     repository.OrderRepository
	transportRepo repository.TransportRequestRepository
	contactRepo   repository.ContactRepository
	resetter      PlatformResetter
	seeder        *SeedUseCase
}

func NewAdminUseCase(
	userRepo repository.UserRepository,
	cropRepo repository.CropRepository,
	productRepo repository.ProductRepository,
	orderRepo repository.OrderRepository,
	transportRepo repository.TransportRequestRepository,
	contactRepo repository.ContactRepository,
	resetter PlatformResetter,
	seeder *SeedUseCase,
) *AdminUseCase {
	return &AdminUseCase{
		userRepo:      userRepo,
		cropRepo:      cropRepo,
		productRepo:   productRepo,
		orderRepo:     orderRepo,
		transportRepo: transportRepo,
		contactRepo:   contactRepo,
		resetter:      resetter,
		seeder:        seeder,
	}
}

func (uc *AdminUseCase) ListUsers(ctx context.Context, role string) ([]*entity.User, error) {
	users, err := uc.userRepo.List(ctx, role)
	if err != nil {
		return nil, err
	}
	for _, user := range users {
		user.PasswordHash = ""
	}
	return users, nil
}

func (uc *AdminUseCase) DeleteUser(ctx context.Context, id, adminID string) error {
	if id == adminID {
		return errors.BadRequest("You cannot delete your own account", nil)
	}
	if _, err := uc.userRepo.GetByID(ctx, id); err != nil {
		return err
	}
	return uc.userRepo.Delete(ctx, id)
}

type PlatformStats struct {
	TotalUsers     int            `json:"total_users"`
	UsersByRole    map[string]int `json:"users_by_role"`
	TotalCrops     int            `json:"total_crops"`
	AvailableCrops int            `json:"available_crops"`
	TotalProducts  int            `json:"total_products"`
	TotalOrders    int            `json:"total_orders"`
	PendingOrders  int            `json:"pending_orders"`
	TotalRevenue   float64        `json:"total_revenue"`
}

func (uc *AdminUseCase) Stats(ctx context.Context) (*PlatformStats, error) {
	users, err := uc.userRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	crops, err := uc.cropRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	stats := &PlatformStats{
		TotalUsers:    len(users),
		UsersByRole:   make(map[string]int),
		TotalCrops:    len(crops),
		TotalProducts: len(products),
		TotalOrders:   len(orders),
	}
	for _, user := range users {
		stats.UsersByRole[user.Role]++
	}
	for _, crop := range crops {
		if crop.Status == entity.ListingAvailable {
			stats.AvailableCrops++
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

type TraceReport struct {
	Order     *entity.Order              `json:"order"`
	Crop      *entity.Crop               `json:"crop,omitempty"`
	Farmer    *entity.User               `json:"farmer,omitempty"`
	Dealer    *entity.User               `json:"dealer,omitempty"`
	Transport []*entity.TransportRequest `json:"transport,omitempty"`
}

// Trace follows an order back through the listing it was placed against and
// the parties involved, plus any transport raised for that crop.
func (uc *AdminUseCase) Trace(ctx context.Context, orderID string) (*TraceReport, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}

	report := &TraceReport{Order: order}

	if crop, err := uc.cropRepo.GetByID(ctx, order.CropID); err == nil {
		report.Crop = crop
	}
	if farmer, err := uc.userRepo.GetByID(ctx, order.FarmerID); err == nil {
		farmer.PasswordHash = ""
		report.Farmer = farmer
	}
	if dealer, err := uc.userRepo.GetByID(ctx, order.DealerID); err == nil {
		dealer.PasswordHash = ""
		report.Dealer = dealer
	}

	requests, err := uc.transportRepo.List(ctx, "")
	if err == nil {
		for _, request := range requests {
			if request.CropID == order.CropID {
				report.Transport = append(report.Transport, request)
			}
		}
	}
	return report, nil
}

// Export returns a full dump of the platform's collections for backup.
func (uc *AdminUseCase) Export(ctx context.Context) (map[string]interface{}, error) {
	users, err := uc.ListUsers(ctx, "")
	if err != nil {
		return nil, err
	}
	crops, err := uc.cropRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	products, err := uc.productRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	requests, err := uc.transportRepo.List(ctx, "")
	if err != nil {
		return nil, err
	}
	contacts, err := uc.contactRepo.List(ctx)
	if err != nil {
		return nil, err
	}

	return map[string]interface{}{
		"exported_at":        time.Now(),
		"users":              users,
		"crops":              crops,
		"products":           products,
		"orders":             orders,
		"transport_requests": requests,
		"contact_messages":   contacts,
	}, nil
}

type CleanupResult struct {
	CropsRemoved  int `json:"crops_removed"`
	OrdersRemoved int `json:"orders_removed"`
}

// ClearOldData deletes crops and orders older than 30 days.
func (uc *AdminUseCase) ClearOldData(ctx context.Context) (*CleanupResult, error) {
	cutoff := time.Now().AddDate(0, 0, -30)

	crops, err := uc.cropRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}
	orders, err := uc.orderRepo.DeleteOlderThan(ctx, cutoff)
	if err != nil {
		return nil, err
	}

	logger.Info("Cleared old data: %d crops, %d orders", crops, orders)
	return &CleanupResult{CropsRemoved: crops, OrdersRemoved: orders}, nil
}

// ResetPlatform wipes every collection and reseeds the samples.
func (uc *AdminUseCase) ResetPlatform(ctx context.Context) error {
	if err := uc.resetter.Reset(); err != nil {
		return err
	}
	logger.Warn("Platform data reset by admin")
	return uc.seeder.Seed(ctx)
}

func (uc *AdminUseCase) ListContactMessages(ctx context.Context) ([]*entity.ContactMessage, error) {
	messages, err := uc.contactRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	if messages == nil {
		messages = []*entity.ContactMessage{}
	}
	return messages, nil
}
