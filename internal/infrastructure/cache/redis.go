package cache

import (
	"context"
	"fmt"
	"net"
	"time"

	"hms-backend/config"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

const (
	dialTimeout = 5 * time.Second
	pingTimeout = 5 * time.Second
)

// NewRedisClient connects the session store. The client is closed again when
// the first ping fails, so callers only release it on success.
func NewRedisClient(ctx context.Context, cfg config.RedisConfig, log *logrus.Logger) (*redis.Client, error) {
	addr := net.JoinHostPort(cfg.Host, cfg.Port)
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		Password:     cfg.Password,
		DB:           cfg.DB,
		DialTimeout:  dialTimeout,
		ReadTimeout:  pingTimeout,
		WriteTimeout: pingTimeout,
	})

	pingCtx, cancel := context.WithTimeout(ctx, pingTimeout)
	defer cancel()
	if err := client.Ping(pingCtx).Err(); err != nil {
		client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", addr, err)
	}

	log.WithFields(logrus.Fields{"addr": addr, "db": cfg.DB}).Info("Connected to Redis session store")

	return client, nil
}
