package app

import (
	"context"
	"fmt"
	"math"

	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/domain/customers"
	"github.com/openmerch/commerce-api/internal/domain/orders"
	"github.com/openmerch/commerce-api/internal/pkg/logger"
)

// priceTolerance is the largest request/catalog price difference accepted on
// order details, to absorb float rounding from clients.
const priceTolerance = 0.01

// orderService implements the OrderService interface
type orderService struct {
	orderRepo  orders.OrderRepository
	clientRepo customers.ClientRepository
	logger     logger.Logger
}

// NewOrderService creates a new orderService instance
func NewOrderService(orderRepo orders.OrderRepository, clientRepo customers.ClientRepository, logger logger.Logger) (orders.OrderService, error) {
	return &orderService{
		orderRepo:  orderRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}, nil
}

func (s *orderService) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	orderList, err := s.orderRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return orderList, nil
}

func (s *orderService) GetByID(ctx context.Context, orderID uint) (*orders.Order, error) {
	order, err := s.orderRepo.GetByID(ctx, orderID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return order, nil
}

func (s *orderService) Create(ctx context.Context, order *orders.Order) (*orders.Order, error) {
	if _, err := s.clientRepo.GetByID(ctx, order.ClientID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.orderRepo.Create(ctx, order); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return order, nil
}

func (s *orderService) UpdateByID(ctx context.Context, orderID uint, order *orders.Order) (*orders.Order, error) {
	order.ID = orderID
	if err := s.orderRepo.UpdateByID(ctx, order); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return order, nil
}

func (s *orderService) DeleteByID(ctx context.Context, orderID uint) error {
	if err := s.orderRepo.DeleteByID(ctx, orderID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// orderDetailService implements the OrderDetailService interface. The catalog
// price is authoritative: a zero request price is filled in from the product
// and a non-zero one must match it within priceTolerance.
type orderDetailService struct {
	orderDetailRepo orders.OrderDetailRepository
	orderRepo       orders.OrderRepository
	productRepo     catalog.ProductRepository
	logger          logger.Logger
}

// NewOrderDetailService creates a new orderDetailService instance
func NewOrderDetailService(
	orderDetailRepo orders.OrderDetailRepository,
	orderRepo orders.OrderRepository,
	productRepo catalog.ProductRepository,
	logger logger.Logger,
) (orders.OrderDetailService, error) {
	return &orderDetailService{
		orderDetailRepo: orderDetailRepo,
		orderRepo:       orderRepo,
		productRepo:     productRepo,
		logger:          logger,
	}, nil
}

func (s *orderDetailService) List(ctx context.Context, query *orders.OrderDetailQuery) ([]*orders.OrderDetail, error) {
	details, err := s.orderDetailRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return details, nil
}

func (s *orderDetailService) GetByID(ctx context.Context, detailID uint) (*orders.OrderDetail, error) {
	detail, err := s.orderDetailRepo.GetByID(ctx, detailID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return detail, nil
}

func (s *orderDetailService) Create(ctx context.Context, detail *orders.OrderDetail) (*orders.OrderDetail, error) {
	if _, err := s.orderRepo.GetByID(ctx, detail.OrderID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.resolvePrice(ctx, detail); err != nil {
		return nil, err
	}

	if err := s.orderDetailRepo.CreateWithStockReservation(ctx, detail); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return detail, nil
}

func (s *orderDetailService) UpdateByID(ctx context.Context, detailID uint, detail *orders.OrderDetail) (*orders.OrderDetail, error) {
	detail.ID = detailID

	if err := s.resolvePrice(ctx, detail); err != nil {
		return nil, err
	}

	if err := s.orderDetailRepo.UpdateWithStockAdjustment(ctx, detail); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return detail, nil
}

func (s *orderDetailService) DeleteByID(ctx context.Context, detailID uint) error {
	if err := s.orderDetailRepo.DeleteWithStockRestore(ctx, detailID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

func (s *orderDetailService) resolvePrice(ctx context.Context, detail *orders.OrderDetail) error {
	product, err := s.productRepo.GetByID(ctx, detail.ProductID)
	if err != nil {
		return fmt.Errorf("%w", err)
	}

	if detail.Price == 0 {
		detail.Price = product.Price
		return nil
	}

	if math.Abs(detail.Price-product.Price) > priceTolerance {
		return fmt.Errorf("requested price %.2f differs from catalog price %.2f: %w",
			detail.Price, product.Price, orders.ErrPriceMismatch)
	}
	return nil
}
