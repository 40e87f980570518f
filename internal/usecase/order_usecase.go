package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
	"shreeanna/pkg/logger"
)

type OrderUseCase struct {
	orderRepo     repository.OrderRepository
	cropRepo      repository.CropRepository
	userRepo      repository.UserRepository
	favoriteRepo  repository.FavoriteRepository
	notifications *NotificationUseCase
	rateLimiter   RateLimiter
}

func NewOrderUseCase(
	orderRepo repository.OrderRepository,
	cropRepo repository.CropRepository,
	userRepo repository.UserRepository,
	favoriteRepo repository.FavoriteRepository,
	notifications *NotificationUseCase,
	rateLimiter RateLimiter,
) *OrderUseCase {
	return &OrderUseCase{
		orderRepo:     orderRepo,
		cropRepo:      cropRepo,
		userRepo:      userRepo,
		favoriteRepo:  favoriteRepo,
		notifications: notifications,
		rateLimiter:   rateLimiter,
	}
}

type PlaceOrderInput struct {
	CropID   string  `json:"crop_id" validate:"required"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
	Message  string  `json:"message"`
}

// PlaceOrder buys quantity q from a crop listing. The decrement and the
// sold flip happen in one storage transaction, so two dealers racing for the
// last stock cannot both succeed. Ordering q from a listing with quantity Q
// leaves Q-q available and marks the listing sold only when that reaches zero.
func (uc *OrderUseCase) PlaceOrder(ctx context.Context, dealerID string, input PlaceOrderInput) (*entity.Order, error) {
	if allowed, wait := uc.rateLimiter.Allow(dealerID, "place_order"); !allowed {
		return nil, errors.TooManyRequests(
			fmt.Sprintf("Too many orders, retry in %.0f seconds", wait.Seconds()))
	}

	dealer, err := uc.userRepo.GetByID(ctx, dealerID)
	if err != nil {
		return nil, err
	}

	crop, err := uc.cropRepo.GetByID(ctx, input.CropID)
	if err != nil {
		return nil, err
	}
	if crop.Status != entity.ListingAvailable {
		return nil, errors.BadRequest("This listing is no longer available", nil)
	}
	if crop.FarmerID == dealerID {
		return nil, errors.BadRequest("You cannot order your own listing", nil)
	}

	crop, err = uc.cropRepo.AdjustQuantity(ctx, input.CropID, input.Quantity)
	if err != nil {
		return nil, err
	}

	now := time.Now()
	order := &entity.Order{
		ID:           uuid.NewString(),
		DealerID:     dealer.ID,
		DealerName:   dealer.Name,
		CropID:       crop.ID,
		CropName:     crop.Name,
		FarmerID:     crop.FarmerID,
		FarmerName:   crop.FarmerName,
		Quantity:     input.Quantity,
		Unit:         crop.Unit,
		PricePerUnit: crop.Price,
		TotalPrice:   crop.Price * input.Quantity,
		Message:      input.Message,
		Status:       entity.OrderPending,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	if err := uc.orderRepo.Create(ctx, order); err != nil {
		// Put the stock back so a failed order does not strand inventory.
		if restoreErr := uc.restoreQuantity(ctx, crop.ID, input.Quantity); restoreErr != nil {
			logger.Error("Failed to restore crop quantity after order failure: %v", restoreErr)
		}
		return nil, err
	}

	uc.notifications.Notify(ctx, crop.FarmerID, "order",
		fmt.Sprintf("%s ordered %.0f %s of %s", dealer.Name, input.Quantity, crop.Unit, crop.Name),
		map[string]string{"order_id": order.ID, "crop_id": crop.ID})

	return order, nil
}

func (uc *OrderUseCase) restoreQuantity(ctx context.Context, cropID string, qty float64) error {
	crop, err := uc.cropRepo.GetByID(ctx, cropID)
	if err != nil {
		return err
	}
	crop.Quantity += qty
	crop.Status = entity.ListingAvailable
	crop.UpdatedAt = time.Now()
	return uc.cropRepo.Update(ctx, crop)
}

func (uc *OrderUseCase) GetOrder(ctx context.Context, id string) (*entity.Order, error) {
	return uc.orderRepo.GetByID(ctx, id)
}

func (uc *OrderUseCase) ListDealerOrders(ctx context.Context, dealerID string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByDealer(ctx, dealerID)
}

func (uc *OrderUseCase) ListFarmerOrders(ctx context.Context, farmerID string) ([]*entity.Order, error) {
	return uc.orderRepo.ListByFarmer(ctx, farmerID)
}

// orderTransitions is the only allowed forward step per status.
var orderTransitions = map[string]string{
	entity.OrderPending:   entity.OrderConfirmed,
	entity.OrderConfirmed: entity.OrderDelivered,
}

// AdvanceOrder moves an order one step forward. Only the selling farmer can
// confirm or mark delivery.
func (uc *OrderUseCase) AdvanceOrder(ctx context.Context, id, farmerID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.FarmerID != farmerID {
		return nil, errors.Forbidden("You can only update orders for your own crops", nil)
	}

	next, ok := orderTransitions[order.Status]
	if !ok {
		return nil, errors.BadRequest(fmt.Sprintf("Order in status %q cannot advance", order.Status), nil)
	}

	order.Status = next
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	uc.notifications.Notify(ctx, order.DealerID, "order",
		fmt.Sprintf("Your order for %s is now %s", order.CropName, next),
		map[string]string{"order_id": order.ID})
	return order, nil
}

// CancelOrder cancels a pending order and returns its quantity to the
// listing. Either side of the order may cancel while it is pending.
func (uc *OrderUseCase) CancelOrder(ctx context.Context, id, userID string) (*entity.Order, error) {
	order, err := uc.orderRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if order.DealerID != userID && order.FarmerID != userID {
		return nil, errors.Forbidden("You are not a party to this order", nil)
	}
	if order.Status != entity.OrderPending {
		return nil, errors.BadRequest("Only pending orders can be cancelled", nil)
	}

	order.Status = entity.OrderCancelled
	order.UpdatedAt = time.Now()
	if err := uc.orderRepo.Update(ctx, order); err != nil {
		return nil, err
	}

	if err := uc.restoreQuantity(ctx, order.CropID, order.Quantity); err != nil {
		logger.Error("Failed to restore crop quantity after cancellation: %v", err)
	}

	other := order.FarmerID
	if userID == order.FarmerID {
		other = order.DealerID
	}
	uc.notifications.Notify(ctx, other, "order",
		fmt.Sprintf("Order for %s was cancelled", order.CropName),
		map[string]string{"order_id": order.ID})
	return order, nil
}

// Invoice builds the printable invoice view for an order. Only the parties
// to the order may fetch it.
func (uc *OrderUseCase) Invoice(ctx context.Context, orderID, userID string) (*entity.Invoice, error) {
	order, err := uc.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.DealerID != userID && order.FarmerID != userID {
		return nil, errors.Forbidden("You are not a party to this order", nil)
	}

	buyer, err := uc.userRepo.GetByID(ctx, order.DealerID)
	if err != nil {
		return nil, err
	}
	seller, err := uc.userRepo.GetByID(ctx, order.FarmerID)
	if err != nil {
		return nil, err
	}

	buyer.PasswordHash = ""
	seller.PasswordHash = ""

	return &entity.Invoice{
		InvoiceNumber: "INV-" + order.ID,
		Date:          order.CreatedAt,
		Buyer:         buyer,
		Seller:        seller,
		Order:         order,
		TotalAmount:   order.TotalPrice,
		Status:        order.Status,
	}, nil
}

type DealerStats struct {
	TotalOrders     int     `json:"total_orders"`
	PendingOrders   int     `json:"pending_orders"`
	DeliveredOrders int     `json:"delivered_orders"`
	TotalSpent      float64 `json:"total_spent"`
	FavoriteFarmers int     `json:"favorite_farmers"`
}

// Stats summarizes a dealer's purchasing. Total spent sums price per unit
// times quantity over every non-cancelled order.
func (uc *OrderUseCase) Stats(ctx context.Context, dealerID string) (*DealerStats, error) {
	orders, err := uc.orderRepo.ListByDealer(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	favorites, err := uc.favoriteRepo.ListByDealer(ctx, dealerID)
	if err != nil {
		return nil, err
	}

	stats := &DealerStats{TotalOrders: len(orders), FavoriteFarmers: len(favorites)}
	for _, order := range orders {
		switch order.Status {
		case entity.OrderPending:
			stats.PendingOrders++
		case entity.OrderDelivered:
			stats.DeliveredOrders++
		}
		if order.Status != entity.OrderCancelled {
			stats.TotalSpent += order.PricePerUnit * order.Quantity
		}
	}
	return stats, nil
}

// ToggleFavorite adds a farmer to the dealer's favorites, or removes them if
// already present. It reports whether the farmer is a favorite afterwards.
func (uc *OrderUseCase) ToggleFavorite(ctx context.Context, dealerID, farmerID string) (bool, error) {
	existing, err := uc.favoriteRepo.Find(ctx, dealerID, farmerID)
	if err != nil {
		return false, err
	}
	if existing != nil {
		return false, uc.favoriteRepo.Delete(ctx, existing.ID)
	}

	farmer, err := uc.userRepo.GetByID(ctx, farmerID)
	if err != nil {
		return false, err
	}
	if farmer.Role != entity.RoleFarmer {
		return false, errors.BadRequest("Only farmers can be favorited", nil)
	}

	favorite := &entity.FavoriteFarmer{
		ID:         uuid.NewString(),
		DealerID:   dealerID,
		FarmerID:   farmer.ID,
		FarmerName: farmer.Name,
		AddedAt:    time.Now(),
	}
	if err := uc.favoriteRepo.Create(ctx, favorite); err != nil {
		return false, err
	}
	return true, nil
}

func (uc *OrderUseCase) ListFavorites(ctx context.Context, dealerID string) ([]*entity.FavoriteFarmer, error) {
	favorites, err := uc.favoriteRepo.ListByDealer(ctx, dealerID)
	if err != nil {
		return nil, err
	}
	if favorites == nil {
		favorites = []*entity.FavoriteFarmer{}
	}
	return favorites, nil
}
