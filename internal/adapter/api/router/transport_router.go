package router

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/adapter/api/handler"
	"shreeanna/internal/adapter/api/middleware"
)

func SetupTransportRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	transportHandler := handler.GetTransportHandler()

	// Farmers and dealers raise transport requests for their shipments.
	requests := e.Group("/v1/transport/requests")
	requests.Use(authMiddleware.Authenticate)
	requests.POST("", transportHandler.CreateRequest)

	// Transporter-side operations.
	transporter := e.Group("/v1/transporter")
	transporter.Use(authMiddleware.Authenticate, authMiddleware.RequireRole("transporter"))

	transporter.GET("/requests", transportHandler.ListOpenRequests)
	transporter.POST("/requests/:id/accept", transportHandler.AcceptRequest)
	transporter.GET("/deliveries", transportHandler.MyDeliveries)
	transporter.PUT("/deliveries/:id/advance", transportHandler.AdvanceDelivery)
	transporter.GET("/stats", transportHandler.Stats)
}
