package cache

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// DefaultCatalogTTL is how long cached catalog payloads live. Writes
// invalidate eagerly, so the TTL only bounds staleness after missed
// invalidations.
const DefaultCatalogTTL = 5 * time.Minute

type redisCatalogCache struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisCatalogCache creates a Redis-based catalog.Cache implementation.
// A non-positive ttl falls back to DefaultCatalogTTL.
func NewRedisCatalogCache(client *redis.Client, ttl time.Duration, logger logger.Logger) (catalog.Cache, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client must not be nil")
	}
	if ttl <= 0 {
		ttl = DefaultCatalogTTL
	}
	return &redisCatalogCache{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func (c *redisCatalogCache) Get(ctx context.Context, key string) ([]byte, bool, error) {
	value, err := c.client.Get(ctx, key).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read cache key %s: %w", key, err)
	}
	return value, true, nil
}

func (c *redisCatalogCache) Set(ctx context.Context, key string, value []byte) error {
	if err := c.client.Set(ctx, key, value, c.ttl).Err(); err != nil {
		return fmt.Errorf("failed to write cache key %s: %w", key, err)
	}
	return nil
}

func (c *redisCatalogCache) Delete(ctx context.Context, keys ...string) error {
	if len(keys) == 0 {
		return nil
	}
	if err := c.client.Del(ctx, keys...).Err(); err != nil {
		return fmt.Errorf("failed to delete cache keys: %w", err)
	}
	return nil
}

func (c *redisCatalogCache) DeletePattern(ctx context.Context, pattern string) (int64, error) {
	var deleted int64
	var cursor uint64

	// SCAN instead of KEYS so invalidation never blocks the server.
	for {
		keys, next, err := c.client.Scan(ctx, cursor, pattern, 100).Result()
		if err != nil {
			return deleted, fmt.Errorf("failed to scan cache pattern %s: %w", pattern, err)
		}

		if len(keys) > 0 {
			removed, err := c.client.Del(ctx, keys...).Result()
			if err != nil {
				return deleted, fmt.Errorf("failed to delete cache keys: %w", err)
			}
			deleted += removed
		}

		cursor = next
		if cursor == 0 {
			break
		}
	}

	if deleted > 0 {
		c.logger.Info("Invalidated ", deleted, " cache entries for pattern ", pattern)
	}
	return deleted, nil
}
