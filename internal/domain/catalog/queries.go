package catalog

import (
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Pagination bounds shared by all list queries.
const (
	DefaultListLimit = 100
	MaxListLimit     = 1000
)

// CategoryQuery holds pagination and sorting options for category listings.
type CategoryQuery struct {
	Limit     int    `validate:"min=1,max=1000"`
	Offset    int    `validate:"min=0"`
	SortBy    string `validate:"omitempty,oneof=id name"`
	SortOrder string `validate:"omitempty,oneof=asc desc"`
}

// NewCategoryQuery creates a CategoryQuery with default pagination.
func NewCategoryQuery() *CategoryQuery {
	return &CategoryQuery{Limit: DefaultListLimit}
}

// Validate checks pagination and sorting fields.
func (q *CategoryQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for CategoryQuery: %w", err)
	}
	return nil
}

// ProductQuery holds filter, pagination and sorting options for product
// listings. CategoryID zero means no category filter.
type ProductQuery struct {
	CategoryID uint
	Limit      int    `validate:"min=1,max=1000"`
	Offset     int    `validate:"min=0"`
	SortBy     string `validate:"omitempty,oneof=id name price stock"`
	SortOrder  string `validate:"omitempty,oneof=asc desc"`
}

// NewProductQuery creates a ProductQuery with default pagination.
func NewProductQuery() *ProductQuery {
	return &ProductQuery{Limit: DefaultListLimit}
}

// Validate checks filter, pagination and sorting fields.
func (q *ProductQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for ProductQuery: %w", err)
	}
	return nil
}
