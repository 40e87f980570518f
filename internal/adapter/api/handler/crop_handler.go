package handler

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/usecase"
	"shreeanna/pkg/response"
)

type CropHandler struct {
	cropUseCase *usecase.CropUseCase
}

func NewCropHandler(cropUseCase *usecase.CropUseCase) *CropHandler {
	return &CropHandler{
		cropUseCase: cropUseCase,
	}
}

func (h *CropHandler) Create(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.CropInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	crop, err := h.cropUseCase.CreateCrop(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, crop)
}

func (h *CropHandler) ListMine(c echo.Context) error {
	uid := c.Get("uid").(string)

	crops, err := h.cropUseCase.ListMyCrops(c.Request().Context(), uid, c.QueryParam("status"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, crops)
}

func (h *CropHandler) Get(c echo.Context) error {
	crop, err := h.cropUseCase.GetCrop(c.Request().Context(), c.Param("id"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, crop)
}

func (h *CropHandler) Update(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.CropInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	crop, err := h.cropUseCase.UpdateCrop(c.Request().Context(), c.Param("id"), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, crop)
}

func (h *CropHandler) Delete(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.cropUseCase.DeleteCrop(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Listing deleted"})
}

func (h *CropHandler) Stats(c echo.Context) error {
	uid := c.Get("uid").(string)

	stats, err := h.cropUseCase.Stats(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stats)
}

func (h *CropHandler) Analytics(c echo.Context) error {
	uid := c.Get("uid").(string)

	analytics, err := h.cropUseCase.SalesAnalytics(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, analytics)
}
