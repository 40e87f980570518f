package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shreeanna/internal/domain/entity"
)

func seedSoldCrops(t *testing.T, env *testEnv, cropType, quality string, prices []float64) {
	t.Helper()

	for _, price := range prices {
		crop := &entity.Crop{
			ID:        uuid.NewString(),
			FarmerID:  "farmer-1",
			Name:      cropType,
			Type:      cropType,
			Unit:      "kg",
			Price:     price,
			Quality:   quality,
			Status:    entity.ListingSold,
			CreatedAt: time.Now().AddDate(0, 0, -5),
		}
		require.NoError(t, env.cropRepo.Create(context.Background(), crop))
	}
}

func TestPredictPriceFromDefaults(t *testing.T) {
	env := newTestEnv(t)

	prediction, err := env.pricing.PredictPrice(context.Background(), "Finger Millet", "Organic")
	require.NoError(t, err)
	assert.Equal(t, "default", prediction.Basis)
	assert.Equal(t, 60.0, prediction.PredictedPrice)
	assert.Equal(t, 0, prediction.SampleSize)
}

func TestPredictPriceUnknownTypeFallsBack(t *testing.T) {
	env := newTestEnv(t)

	prediction, err := env.pricing.PredictPrice(context.Background(), "Sorghum", "Premium")
	require.NoError(t, err)
	assert.Equal(t, "default", prediction.Basis)
	assert.Equal(t, 40.0, prediction.PredictedPrice)
}

func TestPredictPriceLowDemand(t *testing.T) {
	env := newTestEnv(t)

	// Five or fewer recent sales reads as weak demand, so the average is
	// marked down 10 percent.
	seedSoldCrops(t, env, "Pearl Millet", "Good", []float64{30, 32, 34})

	prediction, err := env.pricing.PredictPrice(context.Background(), "Pearl Millet", "Good")
	require.NoError(t, err)
	assert.Equal(t, "history", prediction.Basis)
	assert.Equal(t, 3, prediction.SampleSize)
	assert.Equal(t, 29.0, prediction.PredictedPrice) // round(32 * 0.9)
}

func TestPredictPriceHighDemand(t *testing.T) {
	env := newTestEnv(t)

	seedSoldCrops(t, env, "Foxtail Millet", "Premium", []float64{50, 50, 50, 50, 50, 50})

	prediction, err := env.pricing.PredictPrice(context.Background(), "Foxtail Millet", "Premium")
	require.NoError(t, err)
	assert.Equal(t, "history", prediction.Basis)
	assert.Equal(t, 6, prediction.SampleSize)
	assert.Equal(t, 55.0, prediction.PredictedPrice) // round(50 * 1.1)
}

func TestPredictPriceIgnoresOldSales(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	crop := &entity.Crop{
		ID:        uuid.NewString(),
		Name:      "Kodo Millet",
		Type:      "Kodo Millet",
		Price:     100,
		Quality:   "Good",
		Status:    entity.ListingSold,
		CreatedAt: time.Now().AddDate(0, 0, -60),
	}
	require.NoError(t, env.cropRepo.Create(ctx, crop))

	prediction, err := env.pricing.PredictPrice(ctx, "Kodo Millet", "Good")
	require.NoError(t, err)
	assert.Equal(t, "default", prediction.Basis)
	assert.Equal(t, 34.0, prediction.PredictedPrice)
}

func TestWeatherAdvisoryDeterministic(t *testing.T) {
	env := newTestEnv(t)

	first := env.pricing.WeatherAdvisory("Karnataka")
	second := env.pricing.WeatherAdvisory("Karnataka")
	assert.Equal(t, first, second)

	assert.GreaterOrEqual(t, first.Temperature, 20)
	assert.LessOrEqual(t, first.Temperature, 34)
	assert.GreaterOrEqual(t, first.Humidity, 40)
	assert.LessOrEqual(t, first.Humidity, 79)
	assert.NotEmpty(t, first.Condition)
	assert.NotEmpty(t, first.Recommendations)
}
