package usecase

import (
	"context"
	"sort"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shreeanna/internal/domain/entity"
)

func seedCatalog(t *testing.T, env *testEnv) {
	t.Helper()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")

	env.createCrop(t, farmer.ID, CropInput{
		Name: "Finger Millet (Ragi)", Type: "Finger Millet", Quantity: 100, Unit: "kg",
		Price: 45, Location: "Karnataka", Quality: "Organic",
	})
	env.createCrop(t, farmer.ID, CropInput{
		Name: "Pearl Millet (Bajra)", Type: "Pearl Millet", Quantity: 150, Unit: "kg",
		Price: 30, Location: "Rajasthan", Quality: "Good",
	})
	env.createCrop(t, farmer.ID, CropInput{
		Name: "Foxtail Millet", Type: "Foxtail Millet", Quantity: 80, Unit: "kg",
		Price: 55, Location: "Karnataka", Quality: "Premium",
	})

	product := &entity.Product{
		ID:           uuid.NewString(),
		ProviderID:   "provider-1",
		ProviderName: "Sunita Patel",
		Name:         "Ragi Flour",
		Type:         "Flour",
		Price:        80,
		Unit:         "kg",
		Status:       entity.ListingAvailable,
		CreatedAt:    time.Now(),
	}
	require.NoError(t, env.productRepo.Create(context.Background(), product))
}

func TestBrowseMergesCropsAndProducts(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	listings, err := env.marketplace.Browse(context.Background(), BrowseFilter{})
	require.NoError(t, err)
	assert.Len(t, listings, 4)

	sources := map[string]int{}
	for _, l := range listings {
		sources[l.Source]++
	}
	assert.Equal(t, 3, sources[SourceCrop])
	assert.Equal(t, 1, sources[SourceProduct])
}

func TestBrowsePriceRangeInclusive(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	listings, err := env.marketplace.Browse(context.Background(), BrowseFilter{MinPrice: 30, MaxPrice: 55})
	require.NoError(t, err)
	require.Len(t, listings, 3)
	for _, l := range listings {
		assert.GreaterOrEqual(t, l.Price, 30.0)
		assert.LessOrEqual(t, l.Price, 55.0)
	}
}

func TestBrowsePriceRangeIntersectsOtherFilters(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	listings, err := env.marketplace.Browse(context.Background(), BrowseFilter{
		Location: "Karnataka",
		MinPrice: 30,
		MaxPrice: 55,
	})
	require.NoError(t, err)
	require.Len(t, listings, 2)
	for _, l := range listings {
		assert.Equal(t, "Karnataka", l.Location)
	}
}

func TestBrowseTypeFilter(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	listings, err := env.marketplace.Browse(context.Background(), BrowseFilter{Type: "Pearl Millet"})
	require.NoError(t, err)
	require.Len(t, listings, 1)
	assert.Equal(t, "Pearl Millet (Bajra)", listings[0].Name)
}

func TestBrowseSortPriceLow(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	listings, err := env.marketplace.Browse(context.Background(), BrowseFilter{SortBy: "price-low"})
	require.NoError(t, err)
	require.NotEmpty(t, listings)
	assert.True(t, sort.SliceIsSorted(listings, func(i, j int) bool {
		return listings[i].Price < listings[j].Price
	}))
}

func TestBrowseSortNewestByDefault(t *testing.T) {
	env := newTestEnv(t)
	seedCatalog(t, env)

	listings, err := env.marketplace.Browse(context.Background(), BrowseFilter{})
	require.NoError(t, err)
	require.NotEmpty(t, listings)
	for i := 1; i < len(listings); i++ {
		assert.False(t, listings[i].CreatedAt.After(listings[i-1].CreatedAt))
	}
}

func TestBrowseExcludesSoldListings(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")
	crop := env.createCrop(t, farmer.ID, sampleCropInput(10, 45))

	_, err := env.orders.PlaceOrder(ctx, dealer.ID, PlaceOrderInput{CropID: crop.ID, Quantity: 10})
	require.NoError(t, err)

	listings, err := env.marketplace.Browse(ctx, BrowseFilter{})
	require.NoError(t, err)
	assert.Empty(t, listings)
}
