package app

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/domain/orders"
	"github.com/openmerch/commerce-api/internal/pkg/logger"
)

// categoryService implements the CategoryService interface
type categoryService struct {
	categoryRepo catalog.CategoryRepository
	logger       logger.Logger
}

// NewCategoryService creates a new categoryService instance
func NewCategoryService(categoryRepo catalog.CategoryRepository, logger logger.Logger) (catalog.CategoryService, error) {
	return &categoryService{
		categoryRepo: categoryRepo,
		logger:       logger,
	}, nil
}

func (s *categoryService) List(ctx context.Context, query *catalog.CategoryQuery) ([]*catalog.Category, error) {
	categories, err := s.categoryRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return categories, nil
}

func (s *categoryService) GetByID(ctx context.Context, categoryID uint) (*catalog.Category, error) {
	category, err := s.categoryRepo.GetByID(ctx, categoryID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return category, nil
}

func (s *categoryService) Create(ctx context.Context, category *catalog.Category) (*catalog.Category, error) {
	if err := s.categoryRepo.Create(ctx, category); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return category, nil
}

func (s *categoryService) UpdateByID(ctx context.Context, categoryID uint, category *catalog.Category) (*catalog.Category, error) {
	category.ID = categoryID
	if err := s.categoryRepo.UpdateByID(ctx, category); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return category, nil
}

func (s *categoryService) DeleteByID(ctx context.Context, categoryID uint) error {
	if err := s.categoryRepo.DeleteByID(ctx, categoryID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

const productCachePrefix = "products"

// productService implements the ProductService interface. Reads go through
// the catalog cache when one is configured; every write invalidates all
// product entries.
type productService struct {
	productRepo     catalog.ProductRepository
	orderDetailRepo orders.OrderDetailRepository
	cache           catalog.Cache
	logger          logger.Logger
}

// NewProductService creates a new productService instance. cache may be nil,
// in which case every read hits the database.
func NewProductService(
	productRepo catalog.ProductRepository,
	orderDetailRepo orders.OrderDetailRepository,
	cache catalog.Cache,
	logger logger.Logger,
) (catalog.ProductService, error) {
	return &productService{
		productRepo:     productRepo,
		orderDetailRepo: orderDetailRepo,
		cache:           cache,
		logger:          logger,
	}, nil
}

func listCacheKey(query *catalog.ProductQuery) string {
	return fmt.Sprintf("%s:list:%d:%d:%d:%s:%s",
		productCachePrefix, query.CategoryID, query.Limit, query.Offset, query.SortBy, query.SortOrder)
}

func productCacheKey(productID uint) string {
	return fmt.Sprintf("%s:id:%d", productCachePrefix, productID)
}

func (s *productService) List(ctx context.Context, query *catalog.ProductQuery) ([]*catalog.Product, error) {
	key := listCacheKey(query)

	if s.cache != nil {
		if payload, found, err := s.cache.Get(ctx, key); err == nil && found {
			var products []*catalog.Product
			if err := json.Unmarshal(payload, &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.productRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(products); err == nil {
			if err := s.cache.Set(ctx, key, payload); err != nil {
				s.logger.Warn("Failed to cache product listing: ", err)
			}
		}
	}

	return products, nil
}

func (s *productService) GetByID(ctx context.Context, productID uint) (*catalog.Product, error) {
	key := productCacheKey(productID)

	if s.cache != nil {
		if payload, found, err := s.cache.Get(ctx, key); err == nil && found {
			var product catalog.Product
			if err := json.Unmarshal(payload, &product); err == nil {
				return &product, nil
			}
		}
	}

	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if s.cache != nil {
		if payload, err := json.Marshal(product); err == nil {
			if err := s.cache.Set(ctx, key, payload); err != nil {
				s.logger.Warn("Failed to cache product: ", err)
			}
		}
	}

	return product, nil
}

func (s *productService) Create(ctx context.Context, product *catalog.Product) (*catalog.Product, error) {
	if err := s.productRepo.Create(ctx, product); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.invalidate(ctx)
	return product, nil
}

func (s *productService) UpdateByID(ctx context.Context, productID uint, product *catalog.Product) (*catalog.Product, error) {
	product.ID = productID
	if err := s.productRepo.UpdateByID(ctx, product); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	s.invalidate(ctx)

	updated, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return updated, nil
}

func (s *productService) DeleteByID(ctx context.Context, productID uint) error {
	// Products that appear on order details stay for record keeping.
	hasSales, err := s.orderDetailRepo.ExistsByProductID(ctx, productID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}
	if hasSales {
		return fmt.Errorf("product %d is referenced by order details: %w", productID, catalog.ErrProductHasSales)
	}

	if err := s.productRepo.DeleteByID(ctx, productID); err != nil {
		return fmt.Errorf("%w", err)
	}

	s.invalidate(ctx)
	return nil
}

func (s *productService) invalidate(ctx context.Context) {
	if s.cache == nil {
		return
	}
	if _, err := s.cache.DeletePattern(ctx, productCachePrefix+":*"); err != nil {
		s.logger.Warn("Failed to invalidate product cache: ", err)
	}
}
