package cart

import (
	"context"
	"errors"
)

// ErrStoreUnavailable is returned when the backing store cannot be reached.
// Handlers surface it as 503 so browsers can retry.
var ErrStoreUnavailable = errors.New("cart store unavailable")

// Store persists carts by session id with an expiry that is refreshed on
// every read, so active carts stay alive and abandoned ones age out.
type Store interface {
	// Get loads the cart for a session. A missing cart is not an error: an
	// empty cart is returned instead.
	Get(ctx context.Context, sessionID string) (*Cart, error)

	// Save stores the cart for a session with the store's TTL.
	Save(ctx context.Context, sessionID string, c *Cart) error

	// Delete removes the cart for a session.
	Delete(ctx context.Context, sessionID string) error
}

// Service defines the cart operations exposed over the API.
type Service interface {
	Get(ctx context.Context, sessionID string) (*Cart, error)
	AddItem(ctx context.Context, sessionID string, item Item) (*Cart, error)
	UpdateItemQuantity(ctx context.Context, sessionID string, productID uint, quantity int) (*Cart, error)
	RemoveItem(ctx context.Context, sessionID string, productID uint) (*Cart, error)
	Clear(ctx context.Context, sessionID string) (*Cart, error)
	Merge(ctx context.Context, sessionID string, guest *Cart) (*Cart, error)
}
