package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"shreeanna/internal/usecase"
	"shreeanna/pkg/response"
	"shreeanna/pkg/utils"
)

type MarketplaceHandler struct {
	marketplaceUseCase *usecase.MarketplaceUseCase
}

func NewMarketplaceHandler(marketplaceUseCase *usecase.MarketplaceUseCase) *MarketplaceHandler {
	return &MarketplaceHandler{
		marketplaceUseCase: marketplaceUseCase,
	}
}

// Browse serves the public catalog with filters, sorting, and pagination.
func (h *MarketplaceHandler) Browse(c echo.Context) error {
	filter := usecase.BrowseFilter{
		Query:    c.QueryParam("q"),
		Type:     c.QueryParam("type"),
		Quality:  c.QueryParam("quality"),
		Location: c.QueryParam("location"),
		Source:   c.QueryParam("source"),
		SortBy:   c.QueryParam("sort"),
	}
	if v := c.QueryParam("min_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MinPrice = price
		}
	}
	if v := c.QueryParam("max_price"); v != "" {
		if price, err := strconv.ParseFloat(v, 64); err == nil {
			filter.MaxPrice = price
		}
	}

	listings, err := h.marketplaceUseCase.Browse(c.Request().Context(), filter)
	if err != nil {
		return response.Error(c, err)
	}

	params := utils.GetPaginationParams(c)
	total := len(listings)
	start := params.Offset
	if start > total {
		start = total
	}
	end := start + params.PageSize
	if end > total {
		end = total
	}

	return response.Paginated(c, listings[start:end], int64(total), params.Page, params.PageSize)
}
