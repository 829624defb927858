package persistence

import (
	"context"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/reviews"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence/models"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormReviewRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormReviewRepository creates a new GORM-based ReviewRepository implementation
func NewGormReviewRepository(db *gorm.DB, logger logger.Logger) (reviews.ReviewRepository, error) {
	return &gormReviewRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormReviewRepository) Create(ctx context.Context, review *reviews.Review) error {
	if err := review.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ReviewModel{}
	model.FromDomain(review)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create review: %w", translateError(err))
	}

	review.ID = model.ID
	r.logger.Info("Created review with id ", review.ID)
	return nil
}

func (r *gormReviewRepository) List(ctx context.Context, query *reviews.ReviewQuery) ([]*reviews.Review, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ReviewModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ReviewModel{})

	if query.ProductID != 0 {
		dbQuery = dbQuery.Where("product_id = ?", query.ProductID)
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch reviews: %w", translateError(err))
	}

	domainList := make([]*reviews.Review, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormReviewRepository) GetByID(ctx context.Context, reviewID uint) (*reviews.Review, error) {
	var model models.ReviewModel
	if err := r.db.WithContext(ctx).First(&model, reviewID).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch review %d: %w", reviewID, translateError(err))
	}
	return model.ToDomain(), nil
}

func (r *gormReviewRepository) UpdateByID(ctx context.Context, review *reviews.Review) error {
	if err := review.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var existing models.ReviewModel
	if err := r.db.WithContext(ctx).First(&existing, review.ID).Error; err != nil {
		return fmt.Errorf("failed to fetch review %d: %w", review.ID, translateError(err))
	}

	existing.FromDomain(review)

	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update review: %w", translateError(err))
	}

	r.logger.Info("Updated review with id ", review.ID)
	return nil
}

func (r *gormReviewRepository) DeleteByID(ctx context.Context, reviewID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ReviewModel{}, reviewID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete review: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete review %d: %w", reviewID, ErrNotFound)
	}

	r.logger.Info("Deleted review with id ", reviewID)
	return nil
}
