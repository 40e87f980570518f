package usecase

import (
	"context"
	"hash/fnv"
	"math"
	"time"

	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
)

type PricingUseCase struct {
	cropRepo repository.CropRepository
}

func NewPricingUseCase(cropRepo repository.CropRepository) *PricingUseCase {
	return &PricingUseCase{cropRepo: cropRepo}
}

// defaultPrices is the fallback table per crop type and quality, in rupees
// per kg, used when there is no recent sales history.
var defaultPrices = map[string]map[string]float64{
	"Finger Millet":   {"Premium": 50, "Good": 40, "Organic": 60, "Fair": 35},
	"Pearl Millet":    {"Premium": 40, "Good": 32, "Organic": 48, "Fair": 28},
	"Foxtail Millet":  {"Premium": 55, "Good": 45, "Organic": 65, "Fair": 40},
	"Little Millet":   {"Premium": 45, "Good": 35, "Organic": 55, "Fair": 30},
	"Kodo Millet":     {"Premium": 42, "Good": 34, "Organic": 50, "Fair": 30},
	"Proso Millet":    {"Premium": 38, "Good": 30, "Organic": 45, "Fair": 25},
	"Barnyard Millet": {"Premium": 35, "Good": 28, "Organic": 42, "Fair": 25},
}

type PricePrediction struct {
	CropType       string  `json:"crop_type"`
	Quality        string  `json:"quality"`
	PredictedPrice float64 `json:"predicted_price"`
	SampleSize     int     `json:"sample_size"`
	Basis          string  `json:"basis"`
}

// PredictPrice estimates a fair price from crops of the same type and
// quality sold in the last 30 days. More than five comparable sales reads as
// demand and nudges the average up 10 percent; fewer nudges it down 10
// percent. Without history the static table answers, defaulting to 40.
func (uc *PricingUseCase) PredictPrice(ctx context.Context, cropType, quality string) (*PricePrediction, error) {
	sold, err := uc.cropRepo.ListByStatus(ctx, entity.ListingSold)
	if err != nil {
		return nil, err
	}

	cutoff := time.Now().AddDate(0, 0, -30)
	var comparable []*entity.Crop
	for _, crop := range sold {
		if crop.Type == cropType && crop.Quality == quality && crop.CreatedAt.After(cutoff) {
			comparable = append(comparable, crop)
		}
	}

	prediction := &PricePrediction{CropType: cropType, Quality: quality}

	if len(comparable) == 0 {
		prediction.Basis = "default"
		prediction.PredictedPrice = 40
		if byQuality, ok := defaultPrices[cropType]; ok {
			if price, ok := byQuality[quality]; ok {
				prediction.PredictedPrice = price
			}
		}
		return prediction, nil
	}

	var total float64
	for _, crop := range comparable {
		total += crop.Price
	}
	average := total / float64(len(comparable))

	demandFactor := 0.9
	if len(comparable) > 5 {
		demandFactor = 1.1
	}

	prediction.Basis = "history"
	prediction.SampleSize = len(comparable)
	prediction.PredictedPrice = math.Round(average * demandFactor)
	return prediction, nil
}

type WeatherReport struct {
	Location        string   `json:"location"`
	Temperature     int      `json:"temperature"`
	Humidity        int      `json:"humidity"`
	Rainfall        int      `json:"rainfall"`
	WindSpeed       int      `json:"wind_speed"`
	Condition       string   `json:"condition"`
	Recommendations []string `json:"recommendations"`
}

var weatherConditions = []string{"Sunny", "Cloudy", "Partly Cloudy", "Rainy"}

// WeatherAdvisory produces a demo forecast derived from the location and the
// current date, so the same place reads the same all day. Crop
// recommendations follow the forecast.
func (uc *PricingUseCase) WeatherAdvisory(location string) *WeatherReport {
	h := fnv.New32a()
	h.Write([]byte(location))
	h.Write([]byte(time.Now().Format("2006-01-02")))
	seed := h.Sum32()

	report := &WeatherReport{
		Location:    location,
		Temperature: 20 + int(seed%15),
		Humidity:    40 + int((seed/15)%40),
		Rainfall:    int((seed / 600) % 20),
		WindSpeed:   5 + int((seed/12000)%10),
		Condition:   weatherConditions[seed%uint32(len(weatherConditions))],
	}

	if report.Rainfall > 15 {
		report.Recommendations = append(report.Recommendations, "Pearl Millet - Good for high rainfall")
	}
	if report.Temperature > 30 {
		report.Recommendations = append(report.Recommendations, "Finger Millet - Heat tolerant")
	}
	if report.Humidity < 50 {
		report.Recommendations = append(report.Recommendations, "Foxtail Millet - Drought resistant")
	}
	if len(report.Recommendations) == 0 {
		report.Recommendations = []string{"All millet types suitable"}
	}
	return report
}
