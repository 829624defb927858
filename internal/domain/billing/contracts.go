package billing

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// BillQuery holds filter and pagination options for bill listings.
// ClientID zero means no client filter.
type BillQuery struct {
	ClientID uint
	Limit    int `validate:"min=1,max=1000"`
	Offset   int `validate:"min=0"`
}

// NewBillQuery creates a BillQuery with default pagination.
func NewBillQuery() *BillQuery {
	return &BillQuery{Limit: 100}
}

// Validate checks filter and pagination fields.
func (q *BillQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for BillQuery: %w", err)
	}
	return nil
}

// BillService defines the CRUD operations exposed for bills.
type BillService interface {
	List(ctx context.Context, query *BillQuery) ([]*Bill, error)
	GetByID(ctx context.Context, billID uint) (*Bill, error)
	Create(ctx context.Context, bill *Bill) (*Bill, error)
	UpdateByID(ctx context.Context, billID uint, bill *Bill) (*Bill, error)
	DeleteByID(ctx context.Context, billID uint) error
}

// BillRepository defines the interface for bill persistence.
type BillRepository interface {
	Create(ctx context.Context, bill *Bill) error
	List(ctx context.Context, query *BillQuery) ([]*Bill, error)
	GetByID(ctx context.Context, billID uint) (*Bill, error)
	UpdateByID(ctx context.Context, bill *Bill) error
	DeleteByID(ctx context.Context, billID uint) error
}
