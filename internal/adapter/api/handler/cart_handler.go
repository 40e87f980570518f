package handler

import (
	"strconv"

	"github.com/labstack/echo/v4"

	"shreeanna/internal/usecase"
	"shreeanna/pkg/errors"
	"shreeanna/pkg/response"
)

type CartHandler struct {
	cartUseCase *usecase.CartUseCase
}

func NewCartHandler(cartUseCase *usecase.CartUseCase) *CartHandler {
	return &CartHandler{
		cartUseCase: cartUseCase,
	}
}

func (h *CartHandler) Get(c echo.Context) error {
	uid := c.Get("uid").(string)

	cart, err := h.cartUseCase.Get(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cart)
}

func (h *CartHandler) AddItem(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.AddCartItemInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	cart, err := h.cartUseCase.AddItem(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cart)
}

func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	uid := c.Get("uid").(string)

	quantity, err := strconv.ParseFloat(c.QueryParam("quantity"), 64)
	if err != nil {
		return response.Error(c, errors.BadRequest("quantity must be a number", err))
	}

	cart, err := h.cartUseCase.UpdateQuantity(c.Request().Context(), uid,
		c.Param("itemId"), c.QueryParam("type"), quantity)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cart)
}

func (h *CartHandler) RemoveItem(c echo.Context) error {
	uid := c.Get("uid").(string)

	cart, err := h.cartUseCase.RemoveItem(c.Request().Context(), uid,
		c.Param("itemId"), c.QueryParam("type"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, cart)
}

func (h *CartHandler) Clear(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.cartUseCase.Clear(c.Request().Context(), uid); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Cart cleared"})
}

func (h *CartHandler) Checkout(c echo.Context) error {
	uid := c.Get("uid").(string)

	result, err := h.cartUseCase.Checkout(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, result)
}
