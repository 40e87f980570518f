package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSendMessage(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")

	message, err := env.chat.SendMessage(ctx, dealer.ID, SendMessageInput{
		ReceiverID: farmer.ID,
		Content:    "Is the ragi still available?",
	})
	require.NoError(t, err)
	assert.Equal(t, dealer.ID, message.SenderID)
	assert.Equal(t, farmer.ID, message.ReceiverID)
	assert.False(t, message.Read)

	// The receiver gets a notification alongside the message.
	count, err := env.notifications.UnreadCount(ctx, farmer.ID)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func TestSendMessageToSelf(t *testing.T) {
	env := newTestEnv(t)

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")

	_, err := env.chat.SendMessage(context.Background(), farmer.ID, SendMessageInput{
		ReceiverID: farmer.ID,
		Content:    "hello",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "BAD_REQUEST")
}

func TestHistoryMarksConversationRead(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")

	_, err := env.chat.SendMessage(ctx, dealer.ID, SendMessageInput{ReceiverID: farmer.ID, Content: "Is the ragi still available?"})
	require.NoError(t, err)
	_, err = env.chat.SendMessage(ctx, dealer.ID, SendMessageInput{ReceiverID: farmer.ID, Content: "I need 50 kg"})
	require.NoError(t, err)

	conversations, err := env.chat.Conversations(ctx, farmer.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Equal(t, 2, conversations[0].Unread)

	history, err := env.chat.History(ctx, farmer.ID, dealer.ID)
	require.NoError(t, err)
	require.Len(t, history, 2)
	assert.Equal(t, "Is the ragi still available?", history[0].Content)

	conversations, err = env.chat.Conversations(ctx, farmer.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 1)
	assert.Zero(t, conversations[0].Unread)
}

func TestConversationsMostRecentFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	farmer := env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")
	dealer := env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")
	provider := env.registerUser(t, "Sunita Patel", "service@example.com", "service")

	_, err := env.chat.SendMessage(ctx, dealer.ID, SendMessageInput{ReceiverID: farmer.ID, Content: "first"})
	require.NoError(t, err)
	_, err = env.chat.SendMessage(ctx, provider.ID, SendMessageInput{ReceiverID: farmer.ID, Content: "second"})
	require.NoError(t, err)

	conversations, err := env.chat.Conversations(ctx, farmer.ID)
	require.NoError(t, err)
	require.Len(t, conversations, 2)
	assert.Equal(t, "Sunita Patel", conversations[0].PartnerName)
	assert.Equal(t, "Priya Sharma", conversations[1].PartnerName)
}

func TestSendMessageRateLimited(t *testing.T) {
	env := newTestEnv(t)
	limited := NewChatUseCase(env.chatRepo, env.userRepo, env.notifications, nil, denyAllLimiter{})

	_, err := limited.SendMessage(context.Background(), "sender", SendMessageInput{ReceiverID: "receiver", Content: "hi"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOO_MANY_REQUESTS")
}
