package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shreeanna/internal/domain/entity"
)

func TestAddItemMergesDuplicateLines(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")
	crop := env.createCrop(t, farmer.ID, sampleCropInput(100, 45))

	cart, err := env.cart.AddItem(ctx, dealer.ID, AddCartItemInput{ItemID: crop.ID, ItemType: entity.CartItemCrop, Quantity: 5})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, "Finger Millet (Ragi)", cart.Items[0].Name)
	assert.Equal(t, 45.0, cart.Items[0].Price)

	cart, err = env.cart.AddItem(ctx, dealer.ID, AddCartItemInput{ItemID: crop.ID, ItemType: entity.CartItemCrop, Quantity: 3})
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 8.0, cart.Items[0].Quantity)
}

func TestAddItemUnavailableListing(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")
	crop := env.createCrop(t, farmer.ID, sampleCropInput(10, 45))

	_, err := env.orders.PlaceOrder(ctx, dealer.ID, PlaceOrderInput{CropID: crop.ID, Quantity: 10})
	require.NoError(t, err)

	_, err = env.cart.AddItem(ctx, dealer.ID, AddCartItemInput{ItemID: crop.ID, ItemType: entity.CartItemCrop, Quantity: 1})
	assert.Error(t, err)
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")
	crop := env.createCrop(t, farmer.ID, sampleCropInput(100, 45))

	_, err := env.cart.AddItem(ctx, dealer.ID, AddCartItemInput{ItemID: crop.ID, ItemType: entity.CartItemCrop, Quantity: 5})
	require.NoError(t, err)

	cart, err := env.cart.UpdateQuantity(ctx, dealer.ID, crop.ID, entity.CartItemCrop, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2.0, cart.Items[0].Quantity)

	cart, err = env.cart.UpdateQuantity(ctx, dealer.ID, crop.ID, entity.CartItemCrop, 0)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestUpdateQuantityMissingLine(t *testing.T) {
	env := newTestEnv(t)

	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")

	_, err := env.cart.UpdateQuantity(context.Background(), dealer.ID, "missing", entity.CartItemCrop, 2)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "NOT_FOUND")
}

func TestCheckoutPlacesOrdersAndClearsCart(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")
	crop := env.createCrop(t, farmer.ID, sampleCropInput(100, 45))

	_, err := env.cart.AddItem(ctx, dealer.ID, AddCartItemInput{ItemID: crop.ID, ItemType: entity.CartItemCrop, Quantity: 30})
	require.NoError(t, err)

	result, err := env.cart.Checkout(ctx, dealer.ID)
	require.NoError(t, err)
	require.Len(t, result.Orders, 1)
	assert.Empty(t, result.Skipped)
	assert.Equal(t, 45*30.0, result.Orders[0].TotalPrice)

	updated, err := env.cropRepo.GetByID(ctx, crop.ID)
	require.NoError(t, err)
	assert.Equal(t, 70.0, updated.Quantity)

	cart, err := env.cart.Get(ctx, dealer.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckoutReportsUnfulfillableLines(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")
	crop := env.createCrop(t, farmer.ID, sampleCropInput(20, 45))

	_, err := env.cart.AddItem(ctx, dealer.ID, AddCartItemInput{ItemID: crop.ID, ItemType: entity.CartItemCrop, Quantity: 10})
	require.NoError(t, err)

	// Another buyer empties the listing before checkout.
	other := env.registerUser(t, "Meena Joshi", "dealer2@example.com", "dealer")
	_, err = env.orders.PlaceOrder(ctx, other.ID, PlaceOrderInput{CropID: crop.ID, Quantity: 20})
	require.NoError(t, err)

	result, err := env.cart.Checkout(ctx, dealer.ID)
	require.NoError(t, err)
	assert.Empty(t, result.Orders)
	assert.Equal(t, []string{"Finger Millet (Ragi)"}, result.Skipped)

	cart, err := env.cart.Get(ctx, dealer.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCheckoutEmptyCart(t *testing.T) {
	env := newTestEnv(t)

	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")

	_, err := env.cart.Checkout(context.Background(), dealer.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BAD_REQUEST")
}
