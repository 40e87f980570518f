package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegisterDuplicateEmail(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerUser(t, "Rajesh Kumar", "farmer@example.com", "farmer")

	_, err := env.auth.Register(ctx, RegisterInput{
		Name:     "Someone Else",
		Email:    "farmer@example.com",
		Password: "another123",
		Role:     "dealer",
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "CONFLICT")

	// The failed attempt must not have touched the user collection.
	users, err := env.userRepo.List(ctx, "")
	require.NoError(t, err)
	assert.Len(t, users, 1)
	assert.Equal(t, "Rajesh Kumar", users[0].Name)
}

func TestLogin(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")

	result, err := env.auth.Login(ctx, LoginInput{Email: "dealer@example.com", Password: "secret123"})
	require.NoError(t, err)
	assert.Equal(t, "Priya Sharma", result.User.Name)
	assert.NotEmpty(t, result.Token)
	assert.Empty(t, result.User.PasswordHash)
}

func TestLoginWrongPassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	env.registerUser(t, "Priya Sharma", "dealer@example.com", "dealer")

	_, err := env.auth.Login(ctx, LoginInput{Email: "dealer@example.com", Password: "wrong"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNAUTHORIZED")
}

func TestLoginUnknownEmail(t *testing.T) {
	env := newTestEnv(t)

	_, err := env.auth.Login(context.Background(), LoginInput{Email: "nobody@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "UNAUTHORIZED")
}

func TestLoginRateLimited(t *testing.T) {
	env := newTestEnv(t)
	limited := NewAuthUseCase(env.userRepo, env.profileRepo, stubTokens{}, denyAllLimiter{})

	_, err := limited.Login(context.Background(), LoginInput{Email: "dealer@example.com", Password: "secret123"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "TOO_MANY_REQUESTS")
}

func TestChangePassword(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()

	user := env.registerUser(t, "Amit Singh", "transporter@example.com", "transporter")

	err := env.auth.ChangePassword(ctx, user.ID, ChangePasswordInput{
		CurrentPassword: "secret123",
		NewPassword:     "changed456",
	})
	require.NoError(t, err)

	_, err = env.auth.Login(ctx, LoginInput{Email: "transporter@example.com", Password: "secret123"})
	assert.Error(t, err)

	_, err = env.auth.Login(ctx, LoginInput{Email: "transporter@example.com", Password: "changed456"})
	assert.NoError(t, err)
}
