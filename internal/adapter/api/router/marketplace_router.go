package router

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/adapter/api/handler"
)

func SetupMarketplaceRouter(e *echo.Echo) {
	marketplaceHandler := handler.GetMarketplaceHandler()
	cropHandler := handler.GetCropHandler()
	productHandler := handler.GetProductHandler()

	// The catalog is browsable without an account.
	e.GET("/v1/marketplace", marketplaceHandler.Browse)
	e.GET("/v1/crops/:id", cropHandler.Get)
	e.GET("/v1/products/:id", productHandler.Get)
}
