package app

import (
	"context"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/domain/reviews"
	"github.com/openmerch/commerce-api/internal/pkg/logger"
)

// reviewService implements the ReviewService interface
type reviewService struct {
	reviewRepo  reviews.ReviewRepository
	productRepo catalog.ProductRepository
	logger      logger.Logger
}

// NewReviewService creates a new reviewService instance
func NewReviewService(reviewRepo reviews.ReviewRepository, productRepo catalog.ProductRepository, logger logger.Logger) (reviews.ReviewService, error) {
	return &reviewService{
		reviewRepo:  reviewRepo,
		productRepo: productRepo,
		logger:      logger,
	}, nil
}

func (s *reviewService) List(ctx context.Context, query *reviews.ReviewQuery) ([]*reviews.Review, error) {
	reviewList, err := s.reviewRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return reviewList, nil
}

func (s *reviewService) GetByID(ctx context.Context, reviewID uint) (*reviews.Review, error) {
	review, err := s.reviewRepo.GetByID(ctx, reviewID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return review, nil
}

func (s *reviewService) Create(ctx context.Context, review *reviews.Review) (*reviews.Review, error) {
	if _, err := s.productRepo.GetByID(ctx, review.ProductID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return review, nil
}

func (s *reviewService) UpdateByID(ctx context.Context, reviewID uint, review *reviews.Review) (*reviews.Review, error) {
	review.ID = reviewID
	if err := s.reviewRepo.UpdateByID(ctx, review); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return review, nil
}

func (s *reviewService) DeleteByID(ctx context.Context, reviewID uint) error {
	if err := s.reviewRepo.DeleteByID(ctx, reviewID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
