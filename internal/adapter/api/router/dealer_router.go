package router

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/adapter/api/handler"
	"shreeanna/internal/adapter/api/middleware"
)

func SetupDealerRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	orderHandler := handler.GetOrderHandler()
	cartHandler := handler.GetCartHandler()

	dealer := e.Group("/v1/dealer")
	dealer.Use(authMiddleware.Authenticate, authMiddleware.RequireRole("dealer"))

	dealer.POST("/orders", orderHandler.Place)
	dealer.GET("/orders", orderHandler.ListMine)
	dealer.GET("/stats", orderHandler.Stats)

	dealer.POST("/favorites/:farmerId", orderHandler.ToggleFavorite)
	dealer.GET("/favorites", orderHandler.ListFavorites)

	dealer.GET("/cart", cartHandler.Get)
	dealer.POST("/cart/items", cartHandler.AddItem)
	dealer.PUT("/cart/items/:itemId", cartHandler.UpdateQuantity)
	dealer.DELETE("/cart/items/:itemId", cartHandler.RemoveItem)
	dealer.DELETE("/cart", cartHandler.Clear)
	dealer.POST("/cart/checkout", cartHandler.Checkout)

	// Both parties can cancel a pending order or fetch its invoice.
	orders := e.Group("/v1/orders")
	orders.Use(authMiddleware.Authenticate)
	orders.PUT("/:id/cancel", orderHandler.Cancel)
	orders.GET("/:id/invoice", orderHandler.Invoice)
}
