package reviews

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ReviewQuery holds filter and pagination options for review listings.
// ProductID zero means no product filter.
type ReviewQuery struct {
	ProductID uint
	Limit     int `validate:"min=1,max=1000"`
	Offset    int `validate:"min=0"`
}

// NewReviewQuery creates a ReviewQuery with default pagination.
func NewReviewQuery() *ReviewQuery {
	return &ReviewQuery{Limit: 100}
}

// Validate checks filter and pagination fields.
func (q *ReviewQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for ReviewQuery: %w", err)
	}
	return nil
}

// ReviewService defines the CRUD operations exposed for reviews.
type ReviewService interface {
	List(ctx context.Context, query *ReviewQuery) ([]*Review, error)
	GetByID(ctx context.Context, reviewID uint) (*Review, error)
	Create(ctx context.Context, review *Review) (*Review, error)
	UpdateByID(ctx context.Context, reviewID uint, review *Review) (*Review, error)
	DeleteByID(ctx context.Context, reviewID uint) error
}

// ReviewRepository defines the interface for review persistence.
type ReviewRepository interface {
	Create(ctx context.Context, review *Review) error
	List(ctx context.Context, query *ReviewQuery) ([]*Review, error)
	GetByID(ctx context.Context, reviewID uint) (*Review, error)
	UpdateByID(ctx context.Context, review *Review) error
	DeleteByID(ctx context.Context, reviewID uint) error
}
