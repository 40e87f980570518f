package router

import (
	"github.com/labstack/echo/v4"

	"shreeanna/internal/adapter/api/middleware"
)

func Setup(e *echo.Echo, authMiddleware *middleware.AuthMiddleware, adminMiddleware *middleware.AdminMiddleware) {
	SetupAuthRouter(e, authMiddleware)
	SetupMarketplaceRouter(e)
	SetupFarmerRouter(e, authMiddleware)
	SetupDealerRouter(e, authMiddleware)
	SetupProviderRouter(e, authMiddleware)
	SetupTransportRouter(e, authMiddleware)
	SetupNotificationRouter(e, authMiddleware)
	SetupPlatformRouter(e, authMiddleware)
	SetupAdminRouter(e, authMiddleware, adminMiddleware)
	SetupHealthRouter(e)
}
