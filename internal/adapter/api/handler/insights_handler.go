package handler

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/usecase"
	"shreeanna/pkg/errors"
	"shreeanna/pkg/response"
)

// InsightsHandler serves the advisory endpoints: price prediction and the
// weather-based crop recommendations.
type InsightsHandler struct {
	pricingUseCase *usecase.PricingUseCase
}

func NewInsightsHandler(pricingUseCase *usecase.PricingUseCase) *InsightsHandler {
	return &InsightsHandler{
		pricingUseCase: pricingUseCase,
	}
}

func (h *InsightsHandler) PredictPrice(c echo.Context) error {
	cropType := c.QueryParam("type")
	quality := c.QueryParam("quality")
	if cropType == "" || quality == "" {
		return response.Error(c, errors.BadRequest("type and quality are required", nil))
	}

	prediction, err := h.pricingUseCase.PredictPrice(c.Request().Context(), cropType, quality)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, prediction)
}

func (h *InsightsHandler) Weather(c echo.Context) error {
	location := c.QueryParam("location")
	if location == "" {
		return response.Error(c, errors.BadRequest("location is required", nil))
	}
	return response.Success(c, h.pricingUseCase.WeatherAdvisory(location))
}
