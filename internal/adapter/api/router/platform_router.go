package router

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/adapter/api/handler"
	"shreeanna/internal/adapter/api/middleware"
)

func SetupPlatformRouter(e *echo.Echo, authMiddleware *middleware.AuthMiddleware) {
	insightsHandler := handler.GetInsightsHandler()
	contactHandler := handler.GetContactHandler()
	fileHandler := handler.GetFileHandler()

	// Advisory endpoints feed the public landing page as well as dashboards.
	e.GET("/v1/insights/price", insightsHandler.PredictPrice)
	e.GET("/v1/insights/weather", insightsHandler.Weather)

	e.POST("/v1/contact", contactHandler.Submit)

	files := e.Group("/v1/files")
	files.Use(authMiddleware.Authenticate)
	files.POST("/upload", fileHandler.Upload)
	files.DELETE("", fileHandler.Delete)
}
