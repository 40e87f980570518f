package handler

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/usecase"
	"shreeanna/pkg/response"
)

type OrderHandler struct {
	orderUseCase *usecase.OrderUseCase
}

func NewOrderHandler(orderUseCase *usecase.OrderUseCase) *OrderHandler {
	return &OrderHandler{
		orderUseCase: orderUseCase,
	}
}

func (h *OrderHandler) Place(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.PlaceOrderInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	order, err := h.orderUseCase.PlaceOrder(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, order)
}

func (h *OrderHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)

	orders, err := h.orderUseCase.ListDealerOrders(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *OrderHandler) ListIncoming(c echo.Context) error {
	uid := c.Get("uid").(string)

	orders, err := h.orderUseCase.ListFarmerOrders(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, orders)
}

func (h *OrderHandler) Advance(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.AdvanceOrder(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

func (h *OrderHandler) Cancel(c echo.Context) error {
	uid := c.Get("uid").(string)

	order, err := h.orderUseCase.CancelOrder(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, order)
}

func (h *OrderHandler) Invoice(c echo.Context) error {
	uid := c.Get("uid").(string)

	invoice, err := h.orderUseCase.Invoice(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, invoice)
}

func (h *OrderHandler) Stats(c echo.Context) error {
	uid := c.Get("uid").(string)

	stats, err := h.orderUseCase.Stats(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stats)
}

func (h *OrderHandler) ToggleFavorite(c echo.Context) error {
	uid := c.Get("uid").(string)

	favorited, err := h.orderUseCase.ToggleFavorite(c.Request().Context(), uid, c.Param("farmerId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]bool{"favorited": favorited})
}

func (h *OrderHandler) ListFavorites(c echo.Context) error {
	uid := c.Get("uid").(string)

	favorites, err := h.orderUseCase.ListFavorites(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, favorites)
}
