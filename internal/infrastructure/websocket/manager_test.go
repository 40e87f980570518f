package websocket

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(userID string) *Client {
	return &Client{UserID: userID, Send: make(chan []byte, 4)}
}

func startManager(t *testing.T) *Manager {
	t.Helper()

	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	m := NewManager()
	m.Start(ctx)
	return m
}

func TestRegisterAndPush(t *testing.T) {
	m := startManager(t)
	client := newTestClient("user-1")

	m.Register <- client
	require.Eventually(t, func() bool { return m.IsOnline("user-1") }, time.Second, 10*time.Millisecond)

	m.Push("user-1", "notification", map[string]string{"message": "hello"})

	select {
	case data := <-client.Send:
		assert.Contains(t, string(data), "notification")
		assert.Contains(t, string(data), "hello")
	case <-time.After(time.Second):
		t.Fatal("no event delivered")
	}
}

func TestPushToOfflineUser(t *testing.T) {
	m := startManager(t)

	// Must not panic or block.
	m.Push("nobody", "notification", "hello")
	assert.False(t, m.IsOnline("nobody"))
}

func TestStaleUnregisterKeepsReconnectedClient(t *testing.T) {
	m := startManager(t)

	first := newTestClient("user-1")
	m.Register <- first
	require.Eventually(t, func() bool { return m.IsOnline("user-1") }, time.Second, 10*time.Millisecond)

	// Same user opens a second connection before the first is torn down.
	second := newTestClient("user-1")
	m.Register <- second

	// The replaced connection's send channel is closed so its write pump exits.
	require.Eventually(t, func() bool {
		select {
		case _, open := <-first.Send:
			return !open
		default:
			return false
		}
	}, time.Second, 10*time.Millisecond)

	// The old connection's teardown must not evict the live one.
	m.Unregister <- first
	m.Push("user-1", "notification", "still here")

	select {
	case data := <-second.Send:
		assert.Contains(t, string(data), "still here")
	case <-time.After(time.Second):
		t.Fatal("event not delivered to the reconnected client")
	}
	assert.True(t, m.IsOnline("user-1"))

	m.Unregister <- second
	require.Eventually(t, func() bool { return !m.IsOnline("user-1") }, time.Second, 10*time.Millisecond)
}
