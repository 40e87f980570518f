package router

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/adapter/api/handler"
	"shreeanna/internal/adapter/api/middleware"
)

func SetupProviderRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	productHandler := handler.GetProductHandler()

	provider := e.Group("/v1/provider")
	provider.Use(authMiddleware.Authenticate, authMiddleware.RequireRole("service"))

	provider.POST("/products", productHandler.Create)
	provider.GET("/products", productHandler.ListMine)
	provider.PUT("/products/:id", productHandler.Update)
	provider.DELETE("/products/:id", productHandler.Delete)

	provider.POST("/raw-materials", productHandler.RequestRawMaterial)
	provider.GET("/raw-materials", productHandler.ListRawMaterialRequests)
	provider.PUT("/raw-materials/:id/contacted", productHandler.MarkRawMaterialContacted)
	provider.GET("/suppliers", productHandler.MatchingSuppliers)

	provider.POST("/partnerships", productHandler.CreatePartnership)
	provider.GET("/partnerships", productHandler.ListPartnerships)

	provider.GET("/stats", productHandler.Stats)
}
