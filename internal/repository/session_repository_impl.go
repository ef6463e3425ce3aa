package repository

import (
	"context"
	"fmt"
	"time"

	domainRepo "hms-backend/internal/domain/repository"

	"github.com/redis/go-redis/v9"
)

type redisSessionRepository struct {
	client *redis.Client
}

// NewRedisSessionRepository keeps one key per issued token; a token is live
// for as long as its key exists.
func NewRedisSessionRepository(client *redis.Client) domainRepo.SessionRepository {
	return &redisSessionRepository{client: client}
}

func sessionKey(userID, tokenID string) string {
	return fmt.Sprintf("session:%s:%s", userID, tokenID)
}

func (r *redisSessionRepository) Store(ctx context.Context, userID, tokenID string, ttl time.Duration) error {
	return r.client.Set(ctx, sessionKey(userID, tokenID), "valid", ttl).Err()
}

func (r *redisSessionRepository) Exists(ctx context.Context, userID, tokenID string) (bool, error) {
	n, err := r.client.Exists(ctx, sessionKey(userID, tokenID)).Result()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *redisSessionRepository) Delete(ctx context.Context, userID, tokenID string) error {
	return r.client.Del(ctx, sessionKey(userID, tokenID)).Err()
}

type statelessSessionRepository struct{}

// NewStatelessSessionRepository treats every signature-valid token as live.
// Used when no Redis is configured; logout is then a no-op.
func NewStatelessSessionRepository() domainRepo.SessionRepository {
	return statelessSessionRepository{}
}

func (statelessSessionRepository) Store(context.Context, string, string, time.Duration) error {
	return nil
}

func (statelessSessionRepository) Exists(context.Context, string, string) (bool, error) {
	return true, nil
}

func (statelessSessionRepository) Delete(context.Context, string, string) error {
	return nil
}
