package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"shreeanna/internal/domain/entity"
)

func sampleRequestInput() TransportRequestInput {
	return TransportRequestInput{
		From:     "Karnataka",
		To:       "Maharashtra",
		CropName: "Finger Millet (Ragi)",
		Quantity: 100,
		Unit:     "kg",
	}
}

func TestAcceptRequestCreatesDelivery(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	transporter := env.registerUser(t, "Amit Singh", "transporter@example.com", "transporter")

	request, err := env.transport.CreateRequest(ctx, farmer.ID, sampleRequestInput())
	require.NoError(t, err)

	delivery, err := env.transport.AcceptRequest(ctx, request.ID, transporter.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.DeliveryAssigned, delivery.Status)
	assert.Equal(t, transporter.ID, delivery.TransporterID)
	assert.Equal(t, "Amit Singh", delivery.TransporterName)
	assert.Equal(t, request.ID, delivery.RequestID)

	updated, err := env.transportRepo.GetByID(ctx, request.ID)
	require.NoError(t, err)
	assert.Equal(t, entity.TransportAssigned, updated.Status)
	assert.Equal(t, transporter.ID, updated.TransporterID)

	// The accepted job no longer shows on the open board.
	open, err := env.transport.ListOpenRequests(ctx)
	require.NoError(t, err)
	assert.Empty(t, open)

	// The requester hears about it.
	count, err := env.notifications.UnreadCount(ctx, farmer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestAcceptRequestAlreadyTaken(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	first := env.registerUser(t, "Amit Singh", "transporter@example.com", "transporter")
	second := env.registerUser(t, "Vikram Rao", "transporter2@example.com", "transporter")

	request, err := env.transport.CreateRequest(ctx, farmer.ID, sampleRequestInput())
	require.NoError(t, err)

	_, err = env.transport.AcceptRequest(ctx, request.ID, first.ID)
	require.NoError(t, err)

	_, err = env.transport.AcceptRequest(ctx, request.ID, second.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFLICT")
}

func TestDeliveryStatusChain(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	transporter := env.registerUser(t, "Amit Singh", "transporter@example.com", "transporter")

	request, err := env.transport.CreateRequest(ctx, farmer.ID, sampleRequestInput())
	require.NoError(t, err)
	delivery, err := env.transport.AcceptRequest(ctx, request.ID, transporter.ID)
	require.NoError(t, err)

	for _, want := range []string{entity.DeliveryPickedUp, entity.DeliveryInTransit, entity.DeliveryDelivered} {
		delivery, err = env.transport.AdvanceDelivery(ctx, delivery.ID, transporter.ID)
		require.NoError(t, err)
		assert.Equal(t, want, delivery.Status)
	}
	require.NotNil(t, delivery.DeliveredAt)

	// A finished delivery cannot advance further.
	_, err = env.transport.AdvanceDelivery(ctx, delivery.ID, transporter.ID)
	assert.Error(t, err)
}

func TestAdvanceDeliveryWrongTransporter(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	owner := env.registerUser(t, "Amit Singh", "transporter@example.com", "transporter")
	other := env.registerUser(t, "Vikram Rao", "transporter2@example.com", "transporter")

	request, err := env.transport.CreateRequest(ctx, farmer.ID, sampleRequestInput())
	require.NoError(t, err)
	delivery, err := env.transport.AcceptRequest(ctx, request.ID, owner.ID)
	require.NoError(t, err)

	_, err = env.transport.AdvanceDelivery(ctx, delivery.ID, other.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "FORBIDDEN")
}

func TestTransporterStats(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	transporter := env.registerUser(t, "Amit Singh", "transporter@example.com", "transporter")

	first, err := env.transport.CreateRequest(ctx, farmer.ID, sampleRequestInput())
	require.NoError(t, err)
	second, err := env.transport.CreateRequest(ctx, farmer.ID, sampleRequestInput())
	require.NoError(t, err)

	delivery, err := env.transport.AcceptRequest(ctx, first.ID, transporter.ID)
	require.NoError(t, err)
	_, err = env.transport.AcceptRequest(ctx, second.ID, transporter.ID)
	require.NoError(t, err)

	for i := 0; i < 3; i++ {
		delivery, err = env.transport.AdvanceDelivery(ctx, delivery.ID, transporter.ID)
		require.NoError(t, err)
	}

	stats, err := env.transport.Stats(ctx, transporter.ID)
	require.NoError(t, err)
	assert.Equal(t, 2, stats.TotalDeliveries)
	assert.Equal(t, 1, stats.CompletedDeliveries)
	assert.Equal(t, 1, stats.ActiveDeliveries)
	assert.Equal(t, 100.0, stats.Earnings)
}
