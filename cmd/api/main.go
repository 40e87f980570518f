package main

import (
	"context"
	"log"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"shreeanna/internal/adapter/api"
	"shreeanna/internal/adapter/api/handler"
	apimiddleware "shreeanna/internal/adapter/api/middleware"
	"shreeanna/internal/adapter/api/router"
	"shreeanna/internal/adapter/repository"
	"shreeanna/internal/infrastructure/auth"
	"shreeanna/internal/infrastructure/ratelimit"
	"shreeanna/internal/infrastructure/storage"
	"shreeanna/internal/infrastructure/websocket"
	"shreeanna/internal/usecase"
	"shreeanna/pkg/config"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	ctx := context.Background()

	store, err := repository.Open(cfg.DatabasePath)
	if err != nil {
		log.Fatalf("Failed to open database: %v", err)
	}
	defer store.Close()

	localStore, err := storage.NewLocalStore(cfg.UploadDir)
	if err != nil {
		log.Fatalf("Failed to initialize upload storage: %v", err)
	}

	userRepo := repository.NewBoltUserRepository(store)
	profileRepo := repository.NewBoltProfileRepository(store)
	cropRepo := repository.NewBoltCropRepository(store)
	productRepo := repository.NewBoltProductRepository(store)
	orderRepo := repository.NewBoltOrderRepository(store)
	transportRepo := repository.NewBoltTransportRequestRepository(store)
	deliveryRepo := repository.NewBoltDeliveryRepository(store)
	notificationRepo := repository.NewBoltNotificationRepository(store)
	chatRepo := repository.NewBoltChatRepository(store)
	cartRepo := repository.NewBoltCartRepository(store)
	favoriteRepo := repository.NewBoltFavoriteRepository(store)
	partnershipRepo := repository.NewBoltPartnershipRepository(store)
	rawMaterialRepo := repository.NewBoltRawMaterialRepository(store)
	contactRepo := repository.NewBoltContactRepository(store)

	jwtManager := auth.NewJWTManager(cfg.JWTSecret, time.Duration(cfg.JWTExpiry)*time.Second)

	rateLimiter := ratelimit.NewRateLimiter()
	rateLimiter.StartCleanupRoutine()

	wsManager := websocket.NewManager()
	wsManager.Start(ctx)

	seedUseCase := usecase.NewSeedUseCase(userRepo, cropRepo, productRepo, transportRepo)
	if cfg.SeedData {
		if err := seedUseCase.Seed(ctx); err != nil {
			log.Fatalf("Failed to seed sample data: %v", err)
		}
	}

	notificationUseCase := usecase.NewNotificationUseCase(notificationRepo, wsManager)
	authUseCase := usecase.NewAuthUseCase(userRepo, profileRepo, jwtManager, rateLimiter)
	cropUseCase := usecase.NewCropUseCase(cropRepo, orderRepo, userRepo)
	productUseCase := usecase.NewProductUseCase(productRepo, cropRepo, userRepo, rawMaterialRepo, partnershipRepo)
	orderUseCase := usecase.NewOrderUseCase(orderRepo, cropRepo, userRepo, favoriteRepo, notificationUseCase, rateLimiter)
	transportUseCase := usecase.NewTransportUseCase(transportRepo, deliveryRepo, userRepo, notificationUseCase, cfg.DeliveryRate)
	marketplaceUseCase := usecase.NewMarketplaceUseCase(cropRepo, productRepo)
	cartUseCase := usecase.NewCartUseCase(cartRepo, cropRepo, productRepo, orderUseCase)
	chatUseCase := usecase.NewChatUseCase(chatRepo, userRepo, notificationUseCase, wsManager, rateLimiter)
	pricingUseCase := usecase.NewPricingUseCase(cropRepo)
	contactUseCase := usecase.NewContactUseCase(contactRepo)
	adminUseCase := usecase.NewAdminUseCase(userRepo, cropRepo, productRepo, orderRepo, transportRepo, contactRepo, store, seedUseCase)

	handler.Setup(
		authUseCase,
		cropUseCase,
		productUseCase,
		orderUseCase,
		transportUseCase,
		marketplaceUseCase,
		cartUseCase,
		chatUseCase,
		notificationUseCase,
		pricingUseCase,
		adminUseCase,
		contactUseCase,
	)
	handler.SetupFileHandler(localStore)

	e := echo.New()

	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORS())

	e.Validator = api.NewValidator()

	authMiddleware := apimiddleware.NewAuthMiddleware(jwtManager)
	adminMiddleware := apimiddleware.NewAdminMiddleware(userRepo)

	wsHandler := handler.NewWebSocketHandler(wsManager)

	router.Setup(e, authMiddleware, adminMiddleware)
	router.SetupChatRouter(e, wsHandler, authMiddleware)

	e.Static("/uploads", localStore.BaseDir())

	log.Printf("Starting server on port %s...", cfg.ServerPort)
	e.Logger.Fatal(e.Start(":" + cfg.ServerPort))
}
