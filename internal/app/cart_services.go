package app

import (
	"context"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/cart"
	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/domain/orders"
	"github.com/openmerch/commerce-api/internal/pkg/logger"
)

// cartService implements the cart Service interface. Item snapshots are
// refreshed from the catalog on every add so the cart never carries a stale
// price into checkout.
type cartService struct {
	store       cart.Store
	productRepo catalog.ProductRepository
	logger      logger.Logger
}

// NewCartService creates a new cartService instance
func NewCartService(store cart.Store, productRepo catalog.ProductRepository, logger logger.Logger) (cart.Service, error) {
	return &cartService{
		store:       store,
		productRepo: productRepo,
		logger:      logger,
	}, nil
}

func (s *cartService) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return c, nil
}

func (s *cartService) AddItem(ctx context.Context, sessionID string, item cart.Item) (*cart.Cart, error) {
	product, err := s.productRepo.GetByID(ctx, item.ProductID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	requested := item.Quantity
	for _, existing := range c.Items {
		if existing.ProductID == item.ProductID {
			requested += existing.Quantity
		}
	}
	if requested > product.Stock {
		return nil, fmt.Errorf("product %d has %d units: %w", product.ID, product.Stock, orders.ErrInsufficientStock)
	}

	c.AddItem(cart.Item{
		ProductID: product.ID,
		Quantity:  item.Quantity,
		Name:      product.Name,
		Price:     product.Price,
		Stock:     product.Stock,
	})

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return c, nil
}

func (s *cartService) UpdateItemQuantity(ctx context.Context, sessionID string, productID uint, quantity int) (*cart.Cart, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if quantity > 0 {
		product, err := s.productRepo.GetByID(ctx, productID)
		if err != nil {
			return nil, fmt.Errorf("%w", err)
		}
		if quantity > product.Stock {
			return nil, fmt.Errorf("product %d has %d units: %w", product.ID, product.Stock, orders.ErrInsufficientStock)
		}
	}

	c.SetQuantity(productID, quantity)

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return c, nil
}

func (s *cartService) RemoveItem(ctx context.Context, sessionID string, productID uint) (*cart.Cart, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	c.RemoveItem(productID)

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return c, nil
}

func (s *cartService) Clear(ctx context.Context, sessionID string) (*cart.Cart, error) {
	if err := s.store.Delete(ctx, sessionID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return cart.New(), nil
}

func (s *cartService) Merge(ctx context.Context, sessionID string, guest *cart.Cart) (*cart.Cart, error) {
	c, err := s.store.Get(ctx, sessionID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	c.Merge(guest)

	if err := s.store.Save(ctx, sessionID, c); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return c, nil
}
