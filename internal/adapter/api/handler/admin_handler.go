package handler

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/usecase"
	"shreeanna/pkg/response"
)

type AdminHandler struct {
	adminUseCase *usecase.AdminUseCase
}

func NewAdminHandler(adminUseCase *usecase.AdminUseCase) *AdminHandler {
	return &AdminHandler{
		adminUseCase: adminUseCase,
	}
}

func (h *AdminHandler) ListUsers(c echo.Context) error {
	users, err := h.adminUseCase.ListUsers(c.Request().Context(), c.QueryParam("role"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, users)
}

func (h *AdminHandler) DeleteUser(c echo.Context) error {
	uid := c.Get("uid").(string)

	if err := h.adminUseCase.DeleteUser(c.Request().Context(), c.Param("id"), uid); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "User deleted"})
}

func (h *AdminHandler) Stats(c echo.Context) error {
	stats, err := h.adminUseCase.Stats(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, stats)
}

func (h *AdminHandler) Trace(c echo.Context) error {
	report, err := h.adminUseCase.Trace(c.Request().Context(), c.Param("orderId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, report)
}

func (h *AdminHandler) Export(c echo.Context) error {
	dump, err := h.adminUseCase.Export(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, dump)
}

func (h *AdminHandler) ClearOldData(c echo.Context) error {
	result, err := h.adminUseCase.ClearOldData(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, result)
}

func (h *AdminHandler) ResetPlatform(c echo.Context) error {
	if err := h.adminUseCase.ResetPlatform(c.Request().Context()); err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, map[string]string{"message": "Platform reset and reseeded"})
}

func (h *AdminHandler) ListContactMessages(c echo.Context) error {
	messages, err := h.adminUseCase.ListContactMessages(c.Request().Context())
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}
