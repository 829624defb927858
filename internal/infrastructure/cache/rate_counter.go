package cache

import (
	"context"
	"fmt"
	"time"

	"github.com/go-redis/redis/v8"
)

const rateKeyPrefix = "ratelimit:"

// RedisCounter implements the fixed window counter behind the rate limit
// middleware. Each window is one Redis key that expires on its own.
type RedisCounter struct {
	client *redis.Client
}

// NewRedisCounter creates a Redis-backed rate limit counter.
func NewRedisCounter(client *redis.Client) (*RedisCounter, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client must not be nil")
	}
	return &RedisCounter{client: client}, nil
}

// Increment bumps the counter for key and returns the count within the
// current window plus the time left until the window resets. The expiry is
// set only when the key is created, so the window is fixed, not sliding.
func (c *RedisCounter) Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error) {
	redisKey := rateKeyPrefix + key

	count, err := c.client.Incr(ctx, redisKey).Result()
	if err != nil {
		return 0, 0, fmt.Errorf("failed to increment rate counter for %s: %w", key, err)
	}

	if count == 1 {
		if err := c.client.Expire(ctx, redisKey, window).Err(); err != nil {
			return count, window, fmt.Errorf("failed to set rate window for %s: %w", key, err)
		}
		return count, window, nil
	}

	remaining, err := c.client.TTL(ctx, redisKey).Result()
	if err != nil || remaining < 0 {
		remaining = window
	}
	return count, remaining, nil
}
