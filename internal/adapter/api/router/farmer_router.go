package router

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/adapter/api/handler"
	"shreeanna/internal/adapter/api/middleware"
)

func SetupFarmerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	cropHandler := handler.GetCropHandler()
	orderHandler := handler.GetOrderHandler()

	farmer := e.Group("/v1/farmer")
	farmer.Use(authMiddleware.Authenticate, authMiddleware.RequireRole("farmer"))

	farmer.POST("/crops", cropHandler.Create)
	farmer.GET("/crops", cropHandler.ListMine)
	farmer.PUT("/crops/:id", cropHandler.Update)
	farmer.DELETE("/crops/:id", cropHandler.Delete)
	farmer.GET("/stats", cropHandler.Stats)
	farmer.GET("/analytics", cropHandler.Analytics)

	farmer.GET("/orders", orderHandler.ListIncoming)
	farmer.PUT("/orders/:id/advance", orderHandler.Advance)
}
