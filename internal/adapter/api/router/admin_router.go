package router

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/adapter/api/handler"
	"shreeanna/internal/adapter/api/middleware"
)

func SetupAdminRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	adminHandler := handler.GetAdminHandler()

	admin := e.Group("/v1/admin")
	admin.Use(authMiddleware.Authenticate, adminMiddleware.AdminOnly)

	admin.GET("/users", adminHandler.ListUsers)
	admin.DELETE("/users/:id", adminHandler.DeleteUser)
	admin.GET("/stats", adminHandler.Stats)
	admin.GET("/trace/:orderId", adminHandler.Trace)
	admin.GET("/export", adminHandler.Export)
	admin.POST("/clear-old-data", adminHandler.ClearOldData)
	admin.POST("/reset", adminHandler.ResetPlatform)
	admin.GET("/contact-messages", adminHandler.ListContactMessages)
}
