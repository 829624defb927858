package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/openmerch/commerce-api/internal/pkg/config"

	"github.com/go-redis/redis/v8"
)

const pingTimeout = 2 * time.Second

// NewRedisClient creates a Redis client and verifies the connection with a
// ping. Callers decide whether a failure is fatal; the rest-api binary runs
// without Redis when it is down.
func NewRedisClient(settings config.RedisSettings) (*redis.Client, error) {
	if err := settings.Validate(); err != nil {
		return nil, err
	}

	client := redis.NewClient(&redis.Options{
		Addr:     settings.Address,
		Password: settings.Password,
		DB:       settings.DB,
	})

	ctx, cancel := context.WithTimeout(context.Background(), pingTimeout)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to Redis at %s: %w", settings.Address, err)
	}

	return client, nil
}
