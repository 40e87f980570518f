package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shreeanna/internal/domain/entity"
)

func TestCreateCropDenormalizesFarmerName(t *testing.T) {
	env := newTestEnv(t)

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	crop := env.createCrop(t, farmer.ID, sampleCropInput(100, 45))

	assert.Equal(t, farmer.ID, crop.FarmerID)
	assert.Equal(t, "Rajesh Kumar", crop.FarmerName)
	assert.Equal(t, "available", crop.Status)
}

func TestDeleteCropRemovesExactlyOne(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	first := env.createCrop(t, farmer.ID, sampleCropInput(100, 45))
	second := env.createCrop(t, farmer.ID, sampleCropInput(50, 40))
	third := env.createCrop(t, farmer.ID, sampleCropInput(75, 35))

	err := env.crops.DeleteCrop(ctx, second.ID, farmer.ID)
	require.NoError(t, err)

	remaining, err := env.crops.ListMyCrops(ctx, farmer.ID, "")
	require.NoError(t, err)
	require.Len(t, remaining, 2)

	ids := map[string]bool{}
	for _, crop := range remaining {
		ids[crop.ID] = true
	}
	assert.True(t, ids[first.ID])
	assert.True(t, ids[third.ID])
	assert.False(t, ids[second.ID])
}

func TestListMyCropsStatusFilter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")
	sold := env.createCrop(t, farmer.ID, sampleCropInput(10, 45))
	env.createCrop(t, farmer.ID, sampleCropInput(50, 40))

	_, err := env.orders.PlaceOrder(ctx, dealer.ID, PlaceOrderInput{CropID: sold.ID, Quantity: 10})
	require.NoError(t, err)

	all, err := env.crops.ListMyCrops(ctx, farmer.ID, "")
	require.NoError(t, err)
	assert.Len(t, all, 2)

	available, err := env.crops.ListMyCrops(ctx, farmer.ID, "available")
	require.NoError(t, err)
	require.Len(t, available, 1)
	assert.Equal(t, 50.0, available[0].Quantity)

	soldOnly, err := env.crops.ListMyCrops(ctx, farmer.ID, "sold")
	require.NoError(t, err)
	require.Len(t, soldOnly, 1)
	assert.Equal(t, sold.ID, soldOnly[0].ID)
}

func TestDeleteCropOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	other := env.registerUser(t, "Meena Joshi", "farmer2@example.com", "farmer")
	crop := env.createCrop(t, farmer.ID, sampleCropInput(100, 45))

	err := env.crops.DeleteCrop(ctx, crop.ID, other.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORBIDDEN")

	_, err = env.crops.GetCrop(ctx, crop.ID)
	assert.NoError(t, err)
}

func TestUpdateCropOwnerOnly(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	other := env.registerUser(t, "Meena Joshi", "farmer2@example.com", "farmer")
	crop := env.createCrop(t, farmer.ID, sampleCropInput(100, 45))

	input := sampleCropInput(100, 50)
	_, err := env.crops.UpdateCrop(ctx, crop.ID, other.ID, input)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORBIDDEN")

	updated, err := env.crops.UpdateCrop(ctx, crop.ID, farmer.ID, input)
	require.NoError(t, err)
	assert.Equal(t, 50.0, updated.Price)
}

func TestFarmerStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")
	ragi := env.createCrop(t, farmer.ID, sampleCropInput(100, 45))
	env.createCrop(t, farmer.ID, sampleCropInput(50, 40))

	// Selling out one listing moves it from active to sold.
	_, err := env.orders.PlaceOrder(ctx, dealer.ID, PlaceOrderInput{CropID: ragi.ID, Quantity: 100})
	require.NoError(t, err)

	stats, err := env.crops.Stats(ctx, farmer.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalListings)
	assert.Equal(t, 1, stats.ActiveListings)
	assert.Equal(t, 1, stats.SoldListings)
	assert.Equal(t, 1, stats.TotalOrders)
	assert.Equal(t, 1, stats.PendingOrders)
	assert.Equal(t, 45*100.0, stats.TotalRevenue)
	assert.Equal(t, 50.0, stats.QuantityAvailable)
}

func TestBucketMonthlySalesMonthEnd(t *testing.T) {
	// From the 31st, naive month arithmetic would normalize Aug-4 months to
	// "Apr 31" = May 1, duplicating May and dropping April.
	now := time.Date(2026, time.August, 31, 12, 0, 0, 0, time.UTC)
	orders := []*entity.Order{
		{Status: entity.OrderDelivered, TotalPrice: 900, CreatedAt: time.Date(2026, time.April, 15, 0, 0, 0, 0, time.UTC)},
		{Status: entity.OrderPending, TotalPrice: 450, CreatedAt: time.Date(2026, time.August, 31, 10, 0, 0, 0, time.UTC)},
		{Status: entity.OrderCancelled, TotalPrice: 999, CreatedAt: time.Date(2026, time.August, 1, 0, 0, 0, 0, time.UTC)},
	}

	months := bucketMonthlySales(orders, now)
	require.Len(t, months, 6)

	labels := make([]string, len(months))
	for i, m := range months {
		labels[i] = m.Month
	}
	assert.Equal(t, []string{"2026-03", "2026-04", "2026-05", "2026-06", "2026-07", "2026-08"}, labels)

	assert.Equal(t, 1, months[1].Orders)
	assert.Equal(t, 900.0, months[1].Revenue)
	assert.Equal(t, 1, months[5].Orders)
	assert.Equal(t, 450.0, months[5].Revenue)
}

func TestBucketMonthlySalesYearBoundary(t *testing.T) {
	now := time.Date(2026, time.January, 31, 0, 0, 0, 0, time.UTC)

	months := bucketMonthlySales(nil, now)
	require.Len(t, months, 6)
	assert.Equal(t, "2025-08", months[0].Month)
	assert.Equal(t, "2026-01", months[5].Month)
}

func TestSalesAnalyticsBucketsSixMonths(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")
	crop := env.createCrop(t, farmer.ID, sampleCropInput(100, 45))

	_, err := env.orders.PlaceOrder(ctx, dealer.ID, PlaceOrderInput{CropID: crop.ID, Quantity: 20})
	require.NoError(t, err)

	months, err := env.crops.SalesAnalytics(ctx, farmer.ID)
	require.NoError(t, err)
	require.Len(t, months, 6)

	current := months[5]
	assert.Equal(t, 1, current.Orders)
	assert.Equal(t, 45*20.0, current.Revenue)
	for _, m := range months[:5] {
		assert.Zero(t, m.Orders)
	}
}
