package handler

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/usecase"
	"shreeanna/pkg/response"
)

type ChatHandler struct {
	chatUseCase *usecase.ChatUseCase
}

func NewChatHandler(chatUseCase *usecase.ChatUseCase) *ChatHandler {
	return &ChatHandler{
		chatUseCase: chatUseCase,
	}
}

func (h *ChatHandler) Send(c echo.Context) error {
	uid := c.Get("uid").(string)

	var req usecase.SendMessageInput
	if err := c.Bind(&req); err != nil {
		return response.Error(c, err)
	}
	if err := c.Validate(&req); err != nil {
		return response.Error(c, err)
	}

	message, err := h.chatUseCase.SendMessage(c.Request().Context(), uid, req)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Created(c, message)
}

func (h *ChatHandler) History(c echo.Context) error {
	uid := c.Get("uid").(string)

	messages, err := h.chatUseCase.History(c.Request().Context(), uid, c.Param("partnerId"))
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, messages)
}

func (h *ChatHandler) Conversations(c echo.Context) error {
	uid := c.Get("uid").(string)

	conversations, err := h.chatUseCase.Conversations(c.Request().Context(), uid)
	if err != nil {
		return response.Error(c, err)
	}
	return response.Success(c, conversations)
}
