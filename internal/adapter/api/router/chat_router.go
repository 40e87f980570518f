package router

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/adapter/api/handler"
	"shreeanna/internal/adapter/api/middleware"
)

func SetupChatRouter(e *echo.Echo, wsHandler *handler.WebSocketHandler, authMiddleware *middleware.AuthMiddleware) {
	chatHandler := handler.GetChatHandler()

	chat := e.Group("/v1/chat")
	chat.Use(authMiddleware.Authenticate)

	chat.POST("/messages", chatHandler.Send)
	chat.GET("/conversations", chatHandler.Conversations)
	chat.GET("/history/:partnerId", chatHandler.History)

	// WebSocket clients authenticate with ?token= since upgrade requests
	// cannot carry headers from the browser.
	e.GET("/v1/ws", wsHandler.HandleWebSocket, authMiddleware.Authenticate)
}
