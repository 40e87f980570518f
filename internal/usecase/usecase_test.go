package usecase

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	boltrepo "shreeanna/internal/adapter/repository"
	"shreeanna/internal/domain/entity"
	"shreeanna/internal/domain/repository"
)

type allowAllLimiter struct{}

func (allowAllLimiter) Allow(string, string) (bool, time.Duration) { return true, 0 }

type denyAllLimiter struct{}

func (denyAllLimiter) Allow(string, string) (bool, time.Duration) { return false, 30 * time.Second }

type stubTokens struct{}

func (stubTokens) Generate(userID, role string) (string, error) { return "token-" + userID, nil }

type testEnv struct {
	store         *boltrepo.Store
	userRepo      repository.UserRepository
	profileRepo   repository.ProfileRepository
	cropRepo      repository.CropRepository
	productRepo   repository.ProductRepository
	orderRepo     repository.OrderRepository
	favoriteRepo  repository.FavoriteRepository
	transportRepo repository.TransportRequestRepository
	deliveryRepo  repository.DeliveryRepository
	cartRepo      repository.CartRepository
	notifRepo     repository.NotificationRepository
	chatRepo      repository.ChatRepository

	notifications *NotificationUseCase
	auth          *AuthUseCase
	crops         *CropUseCase
	orders        *OrderUseCase
	transport     *TransportUseCase
	marketplace   *MarketplaceUseCase
	cart          *CartUseCase
	pricing       *PricingUseCase
	chat          *ChatUseCase
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	store, err := boltrepo.Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { store.Close() })

	env := &testEnv{store: store}
	env.userRepo = boltrepo.NewBoltUserRepository(store)
	env.profileRepo = boltrepo.NewBoltProfileRepository(store)
	env.cropRepo = boltrepo.NewBoltCropRepository(store)
	env.productRepo = boltrepo.NewBoltProductRepository(store)
	env.orderRepo = boltrepo.NewBoltOrderRepository(store)
	env.favoriteRepo = boltrepo.NewBoltFavoriteRepository(store)
	env.transportRepo = boltrepo.NewBoltTransportRequestRepository(store)
	env.deliveryRepo = boltrepo.NewBoltDeliveryRepository(store)
	env.cartRepo = boltrepo.NewBoltCartRepository(store)
	env.notifRepo = boltrepo.NewBoltNotificationRepository(store)
	env.chatRepo = boltrepo.NewBoltChatRepository(store)

	env.notifications = NewNotificationUseCase(env.notifRepo, nil)
	env.auth = NewAuthUseCase(env.userRepo, env.profileRepo, stubTokens{}, allowAllLimiter{})
	env.crops = NewCropUseCase(env.cropRepo, env.orderRepo, env.userRepo)
	env.orders = NewOrderUseCase(env.orderRepo, env.cropRepo, env.userRepo, env.favoriteRepo, env.notifications, allowAllLimiter{})
	env.transport = NewTransportUseCase(env.transportRepo, env.deliveryRepo, env.userRepo, env.notifications, 100)
	env.marketplace = NewMarketplaceUseCase(env.cropRepo, env.productRepo)
	env.cart = NewCartUseCase(env.cartRepo, env.cropRepo, env.productRepo, env.orders)
	env.pricing = NewPricingUseCase(env.cropRepo)
	env.chat = NewChatUseCase(env.chatRepo, env.userRepo, env.notifications, nil, allowAllLimiter{})
	return env
}

func (env *testEnv) registerUser(t *testing.T, name, email, role string) *entity.User {
	t.Helper()

	result, err := env.auth.Register(context.Background(), RegisterInput{
		Name:     name,
		Email:    email,
		Password: "secret123",
		Role:     role,
	})
	require.NoError(t, err)
	return result.User
}

func (env *testEnv) createCrop(t *testing.T, farmerID string, input CropInput) *entity.Crop {
	t.Helper()

	crop, err := env.crops.CreateCrop(context.Background(), farmerID, input)
	require.NoError(t, err)
	return crop
}

func sampleCropInput(quantity, price float64) CropInput {
	return CropInput{
		Name:     "Finger Millet (Ragi)",
		Type:     "Finger Millet",
		Quantity: quantity,
		Unit:     "kg",
		Price:    price,
		Location: "Karnataka",
		Quality:  "Organic",
	}
}
