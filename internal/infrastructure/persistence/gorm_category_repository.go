package persistence

import (
	"context"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence/models"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormCategoryRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormCategoryRepository creates a new GORM-based CategoryRepository implementation
func NewGormCategoryRepository(db *gorm.DB, logger logger.Logger) (catalog.CategoryRepository, error) {
	return &gormCategoryRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormCategoryRepository) Create(ctx context.Context, category *catalog.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.CategoryModel{}
	model.FromDomain(category)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create category: %w", translateError(err))
	}

	category.ID = model.ID
	r.logger.Info("Created category with id ", category.ID)
	return nil
}

func (r *gormCategoryRepository) List(ctx context.Context, query *catalog.CategoryQuery) ([]*catalog.Category, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.CategoryModel
	dbQuery := r.db.WithContext(ctx).Model(&models.CategoryModel{})

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
		return nil, fmt.Errorf("failed to fetch categories: %w", translateError(err))
	}

	domainList := make([]*catalog.Category, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormCategoryRepository) GetByID(ctx context.Context, categoryID uint) (*catalog.Category, error) {
	var model models.CategoryModel
	if err := r.db.WithContext(ctx).First(&model, categoryID).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch category %d: %w", categoryID, translateError(err))
	}
	return model.ToDomain(), nil
}

func (r *gormCategoryRepository) UpdateByID(ctx context.Context, category *catalog.Category) error {
	if err := category.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var existing models.CategoryModel
	if err := r.db.WithContext(ctx).First(&existing, category.ID).Error; err != nil {
		return fmt.Errorf("failed to fetch category %d: %w", category.ID, translateError(err))
	}

	existing.FromDomain(category)

	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update category: %w", translateError(err))
	}

	r.logger.Info("Updated category with id ", category.ID)
	return nil
}

func (r *gormCategoryRepository) DeleteByID(ctx context.Context, categoryID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.CategoryModel{}, categoryID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete category: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete category %d: %w", categoryID, ErrNotFound)
	}

	r.logger.Info("Deleted category with id ", categoryID)
	return nil
}
