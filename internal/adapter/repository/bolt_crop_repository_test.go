package repository

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shreeanna/internal/domain/entity"
	"shreeanna/pkg/errors"
)

func newTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })
	return store
}

func newCrop(quantity float64) *entity.Crop {
	now := time.Now()
	return &entity.Crop{
		ID:        uuid.NewString(),
		FarmerID:  "farmer-1",
		Name:      "Finger Millet (Ragi)",
		Type:      "Finger Millet",
		Quantity:  quantity,
		Unit:      "kg",
		Price:     45,
		Location:  "Karnataka",
		Quality:   "Organic",
		Status:    entity.ListingAvailable,
		CreatedAt: now,
		UpdatedAt: now,
	}
}

func TestCropDeleteRemovesExactlyOne(t *testing.T) {
	store := newTestStore(t)
	repo := NewBoltCropRepository(store)
	ctx := context.Background()

	crops := make([]*entity.Crop, 3)
	for i := range crops {
		crops[i] = newCrop(100)
		require.NoError(t, repo.Create(ctx, crops[i]))
	}

	require.NoError(t, repo.Delete(ctx, crops[1].ID))

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 2)
	for _, crop := range remaining {
		assert.NotEqual(t, crops[1].ID, crop.ID)
	}
}

func TestAdjustQuantityDecrements(t *testing.T) {
	store := newTestStore(t)
	repo := NewBoltCropRepository(store)
	ctx := context.Background()

	crop := newCrop(100)
	require.NoError(t, repo.Create(ctx, crop))

	updated, err := repo.AdjustQuantity(ctx, crop.ID, 30)
	require.NoError(t, err)
	assert.Equal(t, 70.0, updated.Quantity)
	assert.Equal(t, entity.ListingAvailable, updated.Status)
}

func TestAdjustQuantityMarksSoldAtZero(t *testing.T) {
	store := newTestStore(t)
	repo := NewBoltCropRepository(store)
	ctx := context.Background()

	crop := newCrop(70)
	require.NoError(t, repo.Create(ctx, crop))

	updated, err := repo.AdjustQuantity(ctx, crop.ID, 70)
	require.NoError(t, err)
	assert.Equal(t, 0.0, updated.Quantity)
	assert.Equal(t, entity.ListingSold, updated.Status)
}

func TestAdjustQuantityRejectsOverdraw(t *testing.T) {
	store := newTestStore(t)
	repo := NewBoltCropRepository(store)
	ctx := context.Background()

	crop := newCrop(50)
	require.NoError(t, repo.Create(ctx, crop))

	_, err := repo.AdjustQuantity(ctx, crop.ID, 51)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "BAD_REQUEST"))

	// The rejected adjustment must not have written anything.
	stored, err := repo.GetByID(ctx, crop.ID)
	require.NoError(t, err)
	assert.Equal(t, 50.0, stored.Quantity)
	assert.Equal(t, entity.ListingAvailable, stored.Status)
}

func TestAdjustQuantityMissingCrop(t *testing.T) {
	store := newTestStore(t)
	repo := NewBoltCropRepository(store)

	_, err := repo.AdjustQuantity(context.Background(), "missing", 10)
	require.Error(t, err)
	assert.True(t, errors.Is(err, "NOT_FOUND"))
}

func TestDeleteOlderThan(t *testing.T) {
	store := newTestStore(t)
	repo := NewBoltCropRepository(store)
	ctx := context.Background()

	old := newCrop(10)
	old.CreatedAt = time.Now().AddDate(0, 0, -45)
	require.NoError(t, repo.Create(ctx, old))

	recent := newCrop(10)
	require.NoError(t, repo.Create(ctx, recent))

	removed, err := repo.DeleteOlderThan(ctx, time.Now().AddDate(0, 0, -30))
	require.NoError(t, err)
	assert.Equal(t, 1, removed)

	remaining, err := repo.List(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, recent.ID, remaining[0].ID)
}
