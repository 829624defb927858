package persistence

import (
	"context"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence/models"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormProductRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormProductRepository creates a new GORM-based ProductRepository implementation
func NewGormProductRepository(db *gorm.DB, logger logger.Logger) (catalog.ProductRepository, error) {
	return &gormProductRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormProductRepository) Create(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ProductModel{}
	model.FromDomain(product)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create product: %w", translateError(err))
	}

	// Reload with the category so callers can return the nested object.
	if err := r.db.WithContext(ctx).Preload("Category").First(model, model.ID).Error; err != nil {
		return fmt.Errorf("failed to reload product %d: %w", model.ID, translateError(err))
	}

	*product = *model.ToDomain()
	r.logger.Info("Created product with id ", product.ID)
	return nil
}

func (r *gormProductRepository) List(ctx context.Context, query *catalog.ProductQuery) ([]*catalog.Product, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ProductModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ProductModel{}).Preload("Category")

	if query.CategoryID != 0 {
		dbQuery = dbQuery.Where("category_id = ?", query.CategoryID)
	}

	if query.SortBy != "" {
		order := query.SortOrder
		if order == "" {
			order = "asc"
		}
		dbQuery = dbQuery.Order(fmt.Sprintf("%s %s", query.SortBy, order))
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch products: %w", translateError(err))
	}

	domainList := make([]*catalog.Product, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormProductRepository) GetByID(ctx context.Context, productID uint) (*catalog.Product, error) {
	var model models.ProductModel
	if err := r.db.WithContext(ctx).Preload("Category").First(&model, productID).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch product %d: %w", productID, translateError(err))
	}
	return model.ToDomain(), nil
}

func (r *gormProductRepository) UpdateByID(ctx context.Context, product *catalog.Product) error {
	if err := product.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var existing models.ProductModel
	if err := r.db.WithContext(ctx).First(&existing, product.ID).Error; err != nil {
		return fmt.Errorf("failed to fetch product %d: %w", product.ID, translateError(err))
	}

	existing.FromDomain(product)

	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update product: %w", translateError(err))
	}

	r.logger.Info("Updated product with id ", product.ID)
	return nil
}

func (r *gormProductRepository) DeleteByID(ctx context.Context, productID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ProductModel{}, productID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete product: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete product %d: %w", productID, ErrNotFound)
	}

	r.logger.Info("Deleted product with id ", productID)
	return nil
}
