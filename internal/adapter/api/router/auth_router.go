package router

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/adapter/api/handler"
	"shreeanna/internal/adapter/api/middleware"
)

func SetupAuthRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	authHandler := handler.GetAuthHandler()

	// Public routes
	e.POST("/v1/auth/register", authHandler.Register)
	e.POST("/v1/auth/login", authHandler.Login)

	// Protected routes
	protected := e.Group("/v1/auth")
	protected.Use(authMiddleware.Authenticate)

	protected.POST("/logout", authHandler.Logout)
	protected.GET("/me", authHandler.Me)
	protected.PUT("/profile", authHandler.UpdateProfile)
	protected.PUT("/password", authHandler.ChangePassword)
}
