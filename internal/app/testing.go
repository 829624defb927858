//go:build unit
// +build unit

package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/openmerch/commerce-api/internal/domain/cart"
	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/domain/orders"
)

// fakeCartStore is an in-memory cart.Store for unit tests.
type fakeCartStore struct {
	mu    sync.Mutex
	carts map[string]*cart.Cart
	fail  bool
}

func newFakeCartStore() *fakeCartStore {
	return &fakeCartStore{carts: map[string]*cart.Cart{}}
}

func (s *fakeCartStore) Get(_ context.Context, sessionID string) (*cart.Cart, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return nil, cart.ErrStoreUnavailable
	}
	stored, ok := s.carts[sessionID]
	if !ok {
		return cart.New(), nil
	}
	copied := *stored
	copied.Items = append([]cart.Item{}, stored.Items...)
	return &copied, nil
}

func (s *fakeCartStore) Save(_ context.Context, sessionID string, c *cart.Cart) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return cart.ErrStoreUnavailable
	}
	copied := *c
	copied.Items = append([]cart.Item{}, c.Items...)
	s.carts[sessionID] = &copied
	return nil
}

func (s *fakeCartStore) Delete(_ context.Context, sessionID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.fail {
		return cart.ErrStoreUnavailable
	}
	delete(s.carts, sessionID)
	return nil
}

// fakeProductRepo is an in-memory catalog.ProductRepository for unit tests.
type fakeProductRepo struct {
	mu       sync.Mutex
	products map[uint]*catalog.Product
	nextID   uint
	reads    int
}

func newFakeProductRepo() *fakeProductRepo {
	return &fakeProductRepo{products: map[uint]*catalog.Product{}, nextID: 1}
}

func (r *fakeProductRepo) Create(_ context.Context, product *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	product.ID = r.nextID
	r.nextID++
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) List(_ context.Context, _ *catalog.ProductQuery) ([]*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	var listed []*catalog.Product
	for _, product := range r.products {
		copied := *product
		listed = append(listed, &copied)
	}
	return listed, nil
}

func (r *fakeProductRepo) GetByID(_ context.Context, productID uint) (*catalog.Product, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.reads++
	product, ok := r.products[productID]
	if !ok {
		return nil, fmt.Errorf("product %d not found", productID)
	}
	copied := *product
	return &copied, nil
}

func (r *fakeProductRepo) UpdateByID(_ context.Context, product *catalog.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[product.ID]; !ok {
		return fmt.Errorf("product %d not found", product.ID)
	}
	copied := *product
	r.products[product.ID] = &copied
	return nil
}

func (r *fakeProductRepo) DeleteByID(_ context.Context, productID uint) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.products[productID]; !ok {
		return fmt.Errorf("product %d not found", productID)
	}
	delete(r.products, productID)
	return nil
}

// fakeCache is an in-memory catalog.Cache for unit tests.
type fakeCache struct {
	mu      sync.Mutex
	entries map[string][]byte
}

func newFakeCache() *fakeCache {
	return &fakeCache{entries: map[string][]byte{}}
}

func (c *fakeCache) Get(_ context.Context, key string) ([]byte, bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	value, ok := c.entries[key]
	return value, ok, nil
}

func (c *fakeCache) Set(_ context.Context, key string, value []byte) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.entries[key] = value
	return nil
}

func (c *fakeCache) Delete(_ context.Context, keys ...string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	for _, key := range keys {
		delete(c.entries, key)
	}
	return nil
}

func (c *fakeCache) DeletePattern(_ context.Context, _ string) (int64, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	deleted := int64(len(c.entries))
	c.entries = map[string][]byte{}
	return deleted, nil
}

// fakeOrderDetailRepo is an orders.OrderDetailRepository stub whose only
// interesting behavior is the product reference check.
type fakeOrderDetailRepo struct {
	productsWithSales map[uint]bool
}

func newFakeOrderDetailRepo() *fakeOrderDetailRepo {
	return &fakeOrderDetailRepo{productsWithSales: map[uint]bool{}}
}

func (r *fakeOrderDetailRepo) List(_ context.Context, _ *orders.OrderDetailQuery) ([]*orders.OrderDetail, error) {
	return nil, nil
}

func (r *fakeOrderDetailRepo) GetByID(_ context.Context, detailID uint) (*orders.OrderDetail, error) {
	return nil, fmt.Errorf("order detail %d not found", detailID)
}

func (r *fakeOrderDetailRepo) CreateWithStockReservation(_ context.Context, _ *orders.OrderDetail) error {
	return nil
}

func (r *fakeOrderDetailRepo) UpdateWithStockAdjustment(_ context.Context, _ *orders.OrderDetail) error {
	return nil
}

func (r *fakeOrderDetailRepo) DeleteWithStockRestore(_ context.Context, _ uint) error {
	return nil
}

func (r *fakeOrderDetailRepo) ExistsByProductID(_ context.Context, productID uint) (bool, error) {
	return r.productsWithSales[productID], nil
}

func (c *fakeCache) len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.entries)
}
