package usecase

import "time"

// TokenManager issues signed session tokens for authenticated users.
type TokenManager interface {
	Generate(userID, role string) (string, error)
}

// RateLimiter gates how often a user may perform an action. When denied it
// reports how long to wait before retrying.
type RateLimiter interface {
	Allow(userID, action string) (bool, time.Duration)
}
