package handler

import (
	"shreeanna/internal/usecase"
)

var (
	authHandler         *AuthHandler
	cropHandler         *CropHandler
	productHandler      *ProductHandler
	orderHandler        *OrderHandler
	transportHandler    *TransportHandler
	marketplaceHandler  *MarketplaceHandler
	cartHandler         *CartHandler
	chatHandler         *ChatHandler
	notificationHandler *NotificationHandler
	insightsHandler     *InsightsHandler
	adminHandler        *AdminHandler
	contactHandler      *ContactHandler
)

func Setup(
	authUseCase *usecase.AuthUseCase,
	cropUseCase *usecase.CropUseCase,
	productUseCase *usecase.ProductUseCase,
	orderUseCase *usecase.OrderUseCase,
	transportUseCase *usecase.TransportUseCase,
	marketplaceUseCase *usecase.MarketplaceUseCase,
	cartUseCase *usecase.CartUseCase,
	chatUseCase *usecase.ChatUseCase,
	notificationUseCase *usecase.NotificationUseCase,
	pricingUseCase *usecase.PricingUseCase,
	adminUseCase *usecase.AdminUseCase,
	contactUseCase *usecase.ContactUseCase,
) {
	authHandler = NewAuthHandler(authUseCase)
	cropHandler = NewCropHandler(cropUseCase)
	productHandler = NewProductHandler(productUseCase)
	orderHandler = NewOrderHandler(orderUseCase)
	transportHandler = NewTransportHandler(transportUseCase)
	marketplaceHandler = NewMarketplaceHandler(marketplaceUseCase)
	cartHandler = NewCartHandler(cartUseCase)
	chatHandler = NewChatHandler(chatUseCase)
	notificationHandler = NewNotificationHandler(notificationUseCase)
	insightsHandler = NewInsightsHandler(pricingUseCase)
	adminHandler = NewAdminHandler(adminUseCase)
	contactHandler = NewContactHandler(contactUseCase)
}

func GetAuthHandler() *AuthHandler { return authHandler }

func GetCropHandler() *CropHandler { return cropHandler }

func GetProductHandler() *ProductHandler { return productHandler }

func GetOrderHandler() *OrderHandler { return orderHandler }

func GetTransportHandler() *TransportHandler { return transportHandler }

func GetMarketplaceHandler() *MarketplaceHandler { return marketplaceHandler }

func GetCartHandler() *CartHandler { return cartHandler }

func GetChatHandler() *ChatHandler { return chatHandler }

func GetNotificationHandler() *NotificationHandler { return notificationHandler }

func GetInsightsHandler() *InsightsHandler { return insightsHandler }

func GetAdminHandler() *AdminHandler { return adminHandler }

func GetContactHandler() *ContactHandler { return contactHandler }
