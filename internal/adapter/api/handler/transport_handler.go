package handler

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/usecase"
	"shreeanna/pkg/response"
)

type TransportHandler struct {
	transportUseCase *usecase.TransportUseCase
}

func NewTransportHandler(transportUseCase *usecase.TransportUseCase) *TransportHandler {
	return &TransportHandler{
		transportUseCase: transportUseCase,
	}
}

func (h *TransportHandler) CreateRequest(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.TransportRequestInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	request, err := h.transportUseCase.CreateRequest(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, request)
}

func (h *TransportHandler) ListOpenRequests(c echo.Context) error {
	requests, err := h.transportUseCase.ListOpenRequests(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, requests)
}

func (h *TransportHandler) AcceptRequest(c echo.Context) error {
	uid := c.Get("uid").(string)

	delivery, err := h.transportUseCase.AcceptRequest(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, delivery)
}

func (h *TransportHandler) AdvanceDelivery(c echo.Context) error {
	uid := c.Get("uid").(string)

	delivery, err := h.transportUseCase.AdvanceDelivery(c.Request().Context(), c.Param("id"), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, delivery)
}

func (h *TransportHandler) MyDeliveries(c echo.Context) error {
	uid := c.Get("uid").(string)

	deliveries, err := h.transportUseCase.MyDeliveries(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, deliveries)
}

func (h *TransportHandler) Stats(c echo.Context) error {
	uid := c.Get("uid").(string)

	stats, err := h.transportUseCase.Stats(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stats)
}
