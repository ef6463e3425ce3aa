package repository

import (
	"context"
	"time"
)

// SessionRepository tracks issued tokens so they can be revoked before expiry.
type SessionRepository interface {
	Store(ctx context.Context, userID, tokenID string, ttl time.Duration) error
	Exists(ctx context.Context, userID, tokenID string) (bool, error)
	Delete(ctx context.Context, userID, tokenID string) error
}
