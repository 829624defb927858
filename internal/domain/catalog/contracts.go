package catalog

import (
	"context"
)

// CategoryService defines the CRUD operations exposed for categories.
type CategoryService interface {
	// List retrieves categories considering the query filter.
	List(ctx context.Context, query *CategoryQuery) ([]*Category, error)

	// GetByID retrieves a single category by its id.
	GetByID(ctx context.Context, categoryID uint) (*Category, error)

	// Create persists a new category and returns it with its id assigned.
	Create(ctx context.Context, category *Category) (*Category, error)

	// UpdateByID applies the given changes to an existing category.
	UpdateByID(ctx context.Context, categoryID uint, category *Category) (*Category, error)

	// DeleteByID removes a category by id.
	DeleteByID(ctx context.Context, categoryID uint) error
}

// ProductService defines the CRUD operations exposed for products.
// Reads go through the catalog cache when one is configured.
type ProductService interface {
	List(ctx context.Context, query *ProductQuery) ([]*Product, error)
	GetByID(ctx context.Context, productID uint) (*Product, error)
	Create(ctx context.Context, product *Product) (*Product, error)
	UpdateByID(ctx context.Context, productID uint, product *Product) (*Product, error)

	// DeleteByID removes a product. Products referenced by order details are
	// kept and ErrProductHasSales is returned instead.
	DeleteByID(ctx context.Context, productID uint) error
}

// CategoryRepository defines the interface for category persistence.
type CategoryRepository interface {
	Create(ctx context.Context, category *Category) error
	List(ctx context.Context, query *CategoryQuery) ([]*Category, error)
	GetByID(ctx context.Context, categoryID uint) (*Category, error)
	UpdateByID(ctx context.Context, category *Category) error
	DeleteByID(ctx context.Context, categoryID uint) error
}

// ProductRepository defines the interface for product persistence.
type ProductRepository interface {
	Create(ctx context.Context, product *Product) error
	List(ctx context.Context, query *ProductQuery) ([]*Product, error)
	GetByID(ctx context.Context, productID uint) (*Product, error)
	UpdateByID(ctx context.Context, product *Product) error
	DeleteByID(ctx context.Context, productID uint) error
}

// Cache is a read-through byte cache for catalog payloads. The current
// implementation uses Redis, but anything with key/pattern semantics works.
type Cache interface {
	// Get returns the cached payload for key; found reports whether the key
	// was present.
	Get(ctx context.Context, key string) (value []byte, found bool, err error)

	// Set stores the payload under key with the cache's default TTL.
	Set(ctx context.Context, key string, value []byte) error

	// Delete removes the given keys. Missing keys are not an error.
	Delete(ctx context.Context, keys ...string) error

	// DeletePattern removes all keys matching a glob pattern and returns the
	// number of keys removed.
	DeletePattern(ctx context.Context, pattern string) (int64, error)
}
