package orders

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ErrInsufficientStock is returned when an order detail asks for more units
// than the product currently has in stock.
var ErrInsufficientStock = errors.New("insufficient stock")

// ErrPriceMismatch is returned when a request carries a price that differs
// from the product's current price by more than a cent. The backend price is
// authoritative.
var ErrPriceMismatch = errors.New("price mismatch")

// OrderQuery holds filter and pagination options for order listings.
// ClientID zero means no client filter.
type OrderQuery struct {
	ClientID uint
	Status   string `validate:"omitempty,oneof=pending paid shipped delivered cancelled"`
	Limit    int    `validate:"min=1,max=1000"`
	Offset   int    `validate:"min=0"`
}

// NewOrderQuery creates an OrderQuery with default pagination.
func NewOrderQuery() *OrderQuery {
	return &OrderQuery{Limit: 100}
}

// Validate checks filter and pagination fields.
func (q *OrderQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for OrderQuery: %w", err)
	}
	return nil
}

// OrderDetailQuery holds filter and pagination options for order detail
// listings. OrderID zero means no order filter.
type OrderDetailQuery struct {
	OrderID uint
	Limit   int `validate:"min=1,max=1000"`
	Offset  int `validate:"min=0"`
}

// NewOrderDetailQuery creates an OrderDetailQuery with default pagination.
func NewOrderDetailQuery() *OrderDetailQuery {
	return &OrderDetailQuery{Limit: 100}
}

// Validate checks filter and pagination fields.
func (q *OrderDetailQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for OrderDetailQuery: %w", err)
	}
	return nil
}

// OrderService defines the CRUD operations exposed for orders.
type OrderService interface {
	List(ctx context.Context, query *OrderQuery) ([]*Order, error)
	GetByID(ctx context.Context, orderID uint) (*Order, error)
	Create(ctx context.Context, order *Order) (*Order, error)
	UpdateByID(ctx context.Context, orderID uint, order *Order) (*Order, error)
	DeleteByID(ctx context.Context, orderID uint) error
}

// OrderDetailService defines the operations exposed for order details.
// Mutations keep product stock consistent: Create reserves stock, Update
// adjusts it by the quantity delta and Delete restores it, each atomically
// with the detail row change.
type OrderDetailService interface {
	List(ctx context.Context, query *OrderDetailQuery) ([]*OrderDetail, error)
	GetByID(ctx context.Context, detailID uint) (*OrderDetail, error)
	Create(ctx context.Context, detail *OrderDetail) (*OrderDetail, error)
	UpdateByID(ctx context.Context, detailID uint, detail *OrderDetail) (*OrderDetail, error)
	DeleteByID(ctx context.Context, detailID uint) error
}

// OrderRepository defines the interface for order persistence.
type OrderRepository interface {
	Create(ctx context.Context, order *Order) error
	List(ctx context.Context, query *OrderQuery) ([]*Order, error)
	GetByID(ctx context.Context, orderID uint) (*Order, error)
	UpdateByID(ctx context.Context, order *Order) error
	DeleteByID(ctx context.Context, orderID uint) error
}

// OrderDetailRepository defines the interface for order detail persistence.
// The stock-coupled mutations run their row changes and the product stock
// adjustment inside one transaction with the product row locked.
type OrderDetailRepository interface {
	List(ctx context.Context, query *OrderDetailQuery) ([]*OrderDetail, error)
	GetByID(ctx context.Context, detailID uint) (*OrderDetail, error)

	// CreateWithStockReservation checks stock for detail.ProductID under a
	// row lock, decrements it by detail.Quantity and inserts the detail.
	CreateWithStockReservation(ctx context.Context, detail *OrderDetail) error

	// UpdateWithStockAdjustment applies the detail changes and shifts the
	// product stock by the quantity delta under a row lock.
	UpdateWithStockAdjustment(ctx context.Context, detail *OrderDetail) error

	// DeleteWithStockRestore removes the detail and returns its quantity to
	// the product stock under a row lock.
	DeleteWithStockRestore(ctx context.Context, detailID uint) error

	// ExistsByProductID reports whether any detail references the product.
	ExistsByProductID(ctx context.Context, productID uint) (bool, error)
}
