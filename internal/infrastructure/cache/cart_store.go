package cache

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/openmerch/commerce-api/internal/domain/cart"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"github.com/go-redis/redis/v8"
)

// DefaultCartTTL is how long an untouched cart survives. Every read refreshes
// the expiry, so only abandoned carts age out.
const DefaultCartTTL = 24 * time.Hour

const cartKeyPrefix = "cart:"

type redisCartStore struct {
	client *redis.Client
	ttl    time.Duration
	logger logger.Logger
}

// NewRedisCartStore creates a Redis-based cart.Store implementation.
// A non-positive ttl falls back to DefaultCartTTL.
func NewRedisCartStore(client *redis.Client, ttl time.Duration, logger logger.Logger) (cart.Store, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client must not be nil")
	}
	if ttl <= 0 {
		ttl = DefaultCartTTL
	}
	return &redisCartStore{
		client: client,
		ttl:    ttl,
		logger: logger,
	}, nil
}

func cartKey(sessionID string) string {
	return cartKeyPrefix + sessionID
}

func (s *redisCartStore) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	payload, err := s.client.Get(ctx, cartKey(sessionID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return cart.New(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load cart for session %s: %w", sessionID, cart.ErrStoreUnavailable)
	}

	var c cart.Cart
	if err := json.Unmarshal(payload, &c); err != nil {
		// A corrupt payload is unrecoverable; start the session over.
		s.logger.Warn("Dropping corrupt cart for session ", sessionID)
		_ = s.client.Del(ctx, cartKey(sessionID)).Err()
		return cart.New(), nil
	}

	// Keep active carts alive.
	_ = s.client.Expire(ctx, cartKey(sessionID), s.ttl).Err()

	return &c, nil
}

func (s *redisCartStore) Save(ctx context.Context, sessionID string, c *cart.Cart) error {
	payload, err := json.Marshal(c)
	if err != nil {
		return fmt.Errorf("failed to encode cart: %w", err)
	}

	if err := s.client.Set(ctx, cartKey(sessionID), payload, s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save cart for session %s: %w", sessionID, cart.ErrStoreUnavailable)
	}
	return nil
}

func (s *redisCartStore) Delete(ctx context.Context, sessionID string) error {
	if err := s.client.Del(ctx, cartKey(sessionID)).Err(); err != nil {
		return fmt.Errorf("failed to delete cart for session %s: %w", sessionID, cart.ErrStoreUnavailable)
	}
	return nil
}
