package usecase

import (
	"context"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
	"shreeanna/pkg/errors"
)

type CartUseCase struct {
	cartRepo    repository.CartRepository
	cropRepo    repository.CropRepository
	productRepo repository.ProductRepository
	orders      *OrderUseCase
}

func NewCartUseCase(
	cartRepo repository.CartRepository,
	cropRepo repository.CropRepository,
	productRepo repository.ProductRepository,
	orders *OrderUseCase,
) *CartUseCase {
	return &CartUseCase{
		cartRepo:    cartRepo,
		cropRepo:    cropRepo,
		productRepo: productRepo,
		orders:      orders,
	}
}

func (uc *CartUseCase) Get(ctx context.Context, userID string) (*entity.Cart, error) {
	return uc.cartRepo.Get(ctx, userID)
}

type AddCartItemInput struct {
	ItemID   string  `json:"item_id" validate:"required"`
	ItemType string  `json:"item_type" validate:"required,oneof=crop product"`
	Quantity float64 `json:"quantity" validate:"required,gt=0"`
}

// AddItem puts a listing into the cart. Adding an item already present
// increments its quantity instead of creating a second line.
func (uc *CartUseCase) AddItem(ctx context.Context, userID string, input AddCartItemInput) (*entity.Cart, error) {
	cart, err := uc.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	line := entity.CartItem{
		ItemID:   input.ItemID,
		ItemType: input.ItemType,
		Quantity: input.Quantity,
	}

	switch input.ItemType {
	case entity.CartItemCrop:
		crop, err := uc.cropRepo.GetByID(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		if crop.Status != entity.ListingAvailable {
			return nil, errors.BadRequest("This listing is no longer available", nil)
		}
		line.Name = crop.Name
		line.Price = crop.Price
		line.Unit = crop.Unit
		line.SellerName = crop.FarmerName
		line.Image = crop.Image
	case entity.CartItemProduct:
		product, err := uc.productRepo.GetByID(ctx, input.ItemID)
		if err != nil {
			return nil, err
		}
		line.Name = product.Name
		line.Price = product.Price
		line.Unit = product.Unit
		line.SellerName = product.ProviderName
		line.Image = product.Image
	default:
		return nil, errors.BadRequest("Unknown cart item type", nil)
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].ItemID == input.ItemID && cart.Items[i].ItemType == input.ItemType {
			cart.Items[i].Quantity += input.Quantity
			merged = true
			break
		}
	}
	if !merged {
		cart.Items = append(cart.Items, line)
	}

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

// UpdateQuantity sets a line's quantity; zero or below removes the line.
func (uc *CartUseCase) UpdateQuantity(ctx context.Context, userID, itemID, itemType string, quantity float64) (*entity.Cart, error) {
	cart, err := uc.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	items := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ItemID == itemID && item.ItemType == itemType {
			found = true
			if quantity <= 0 {
				continue
			}
			item.Quantity = quantity
		}
		items = append(items, item)
	}
	if !found {
		return nil, errors.NotFound("Cart item", nil)
	}
	cart.Items = items

	if err := uc.cartRepo.Save(ctx, cart); err != nil {
		return nil, err
	}
	return cart, nil
}

func (uc *CartUseCase) RemoveItem(ctx context.Context, userID, itemID, itemType string) (*entity.Cart, error) {
	return uc.UpdateQuantity(ctx, userID, itemID, itemType, 0)
}

func (uc *CartUseCase) Clear(ctx context.Context, userID string) error {
	return uc.cartRepo.Save(ctx, &entity.Cart{UserID: userID, Items: []entity.CartItem{}})
}

type CheckoutResult struct {
	Orders  []*entity.Order `json:"orders"`
	Skipped []string        `json:"skipped,omitempty"`
}

// Checkout places an order for every crop line in the cart and then empties
// it. Lines that can no longer be fulfilled are reported back rather than
// failing the whole checkout.
func (uc *CartUseCase) Checkout(ctx context.Context, userID string) (*CheckoutResult, error) {
	cart, err := uc.cartRepo.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(cart.Items) == 0 {
		return nil, errors.BadRequest("Your cart is empty", nil)
	}

	result := &CheckoutResult{}
	for _, item := range cart.Items {
		if item.ItemType != entity.CartItemCrop {
			continue
		}
		order, err := uc.orders.PlaceOrder(ctx, userID, PlaceOrderInput{
			CropID:   item.ItemID,
			Quantity: item.Quantity,
		})
		if err != nil {
			result.Skipped = append(result.Skipped, item.Name)
			continue
		}
		result.Orders = append(result.Orders, order)
	}

	if err := uc.Clear(ctx, userID); err != nil {
		return nil, err
	}
	return result, nil
}
