//go:build unit
// +build unit

package v1

import (
	"context"

	"github.com/openmerch/commerce-api/internal/domain/billing"
	"github.com/openmerch/commerce-api/internal/domain/cart"
	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/domain/customers"
	"github.com/openmerch/commerce-api/internal/domain/orders"
	"github.com/openmerch/commerce-api/internal/domain/reviews"

	"github.com/stretchr/testify/mock"
)

// MockCategoryService is a mock implementation of CategoryService
type MockCategoryService struct {
	mock.Mock
}

func (m *MockCategoryService) List(ctx context.Context, query *catalog.CategoryQuery) ([]*catalog.Category, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Category), args.Error(1)
}

func (m *MockCategoryService) GetByID(ctx context.Context, categoryID uint) (*catalog.Category, error) {
	args := m.Called(ctx, categoryID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryService) Create(ctx context.Context, category *catalog.Category) (*catalog.Category, error) {
	args := m.Called(ctx, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryService) UpdateByID(ctx context.Context, categoryID uint, category *catalog.Category) (*catalog.Category, error) {
	args := m.Called(ctx, categoryID, category)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Category), args.Error(1)
}

func (m *MockCategoryService) DeleteByID(ctx context.Context, categoryID uint) error {
	args := m.Called(ctx, categoryID)
	return args.Error(0)
}

// MockProductService is a mock implementation of ProductService
type MockProductService struct {
	mock.Mock
}

func (m *MockProductService) List(ctx context.Context, query *catalog.ProductQuery) ([]*catalog.Product, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*catalog.Product), args.Error(1)
}

func (m *MockProductService) GetByID(ctx context.Context, productID uint) (*catalog.Product, error) {
	args := m.Called(ctx, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductService) Create(ctx context.Context, product *catalog.Product) (*catalog.Product, error) {
	args := m.Called(ctx, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductService) UpdateByID(ctx context.Context, productID uint, product *catalog.Product) (*catalog.Product, error) {
	args := m.Called(ctx, productID, product)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*catalog.Product), args.Error(1)
}

func (m *MockProductService) DeleteByID(ctx context.Context, productID uint) error {
	args := m.Called(ctx, productID)
	return args.Error(0)
}

// MockClientService is a mock implementation of ClientService
type MockClientService struct {
	mock.Mock
}

func (m *MockClientService) List(ctx context.Context, query *customers.ClientQuery) ([]*customers.Client, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customers.Client), args.Error(1)
}

func (m *MockClientService) GetByID(ctx context.Context, clientID uint) (*customers.Client, error) {
	args := m.Called(ctx, clientID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customers.Client), args.Error(1)
}

func (m *MockClientService) Create(ctx context.Context, client *customers.Client) (*customers.Client, error) {
	args := m.Called(ctx, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customers.Client), args.Error(1)
}

func (m *MockClientService) UpdateByID(ctx context.Context, clientID uint, client *customers.Client) (*customers.Client, error) {
	args := m.Called(ctx, clientID, client)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customers.Client), args.Error(1)
}

func (m *MockClientService) DeleteByID(ctx context.Context, clientID uint) error {
	args := m.Called(ctx, clientID)
	return args.Error(0)
}

// MockAddressService is a mock implementation of AddressService
type MockAddressService struct {
	mock.Mock
}

func (m *MockAddressService) List(ctx context.Context, query *customers.AddressQuery) ([]*customers.Address, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*customers.Address), args.Error(1)
}

func (m *MockAddressService) GetByID(ctx context.Context, addressID uint) (*customers.Address, error) {
	args := m.Called(ctx, addressID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customers.Address), args.Error(1)
}

func (m *MockAddressService) Create(ctx context.Context, address *customers.Address) (*customers.Address, error) {
	args := m.Called(ctx, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customers.Address), args.Error(1)
}

func (m *MockAddressService) UpdateByID(ctx context.Context, addressID uint, address *customers.Address) (*customers.Address, error) {
	args := m.Called(ctx, addressID, address)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*customers.Address), args.Error(1)
}

func (m *MockAddressService) DeleteByID(ctx context.Context, addressID uint) error {
	args := m.Called(ctx, addressID)
	return args.Error(0)
}

// MockOrderService is a mock implementation of OrderService
type MockOrderService struct {
	mock.Mock
}

func (m *MockOrderService) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.Order), args.Error(1)
}

func (m *MockOrderService) GetByID(ctx context.Context, orderID uint) (*orders.Order, error) {
	args := m.Called(ctx, orderID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) Create(ctx context.Context, order *orders.Order) (*orders.Order, error) {
	args := m.Called(ctx, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) UpdateByID(ctx context.Context, orderID uint, order *orders.Order) (*orders.Order, error) {
	args := m.Called(ctx, orderID, order)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.Order), args.Error(1)
}

func (m *MockOrderService) DeleteByID(ctx context.Context, orderID uint) error {
	args := m.Called(ctx, orderID)
	return args.Error(0)
}

// MockOrderDetailService is a mock implementation of OrderDetailService
type MockOrderDetailService struct {
	mock.Mock
}

func (m *MockOrderDetailService) List(ctx context.Context, query *orders.OrderDetailQuery) ([]*orders.OrderDetail, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*orders.OrderDetail), args.Error(1)
}

func (m *MockOrderDetailService) GetByID(ctx context.Context, detailID uint) (*orders.OrderDetail, error) {
	args := m.Called(ctx, detailID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.OrderDetail), args.Error(1)
}

func (m *MockOrderDetailService) Create(ctx context.Context, detail *orders.OrderDetail) (*orders.OrderDetail, error) {
	args := m.Called(ctx, detail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.OrderDetail), args.Error(1)
}

func (m *MockOrderDetailService) UpdateByID(ctx context.Context, detailID uint, detail *orders.OrderDetail) (*orders.OrderDetail, error) {
	args := m.Called(ctx, detailID, detail)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*orders.OrderDetail), args.Error(1)
}

func (m *MockOrderDetailService) DeleteByID(ctx context.Context, detailID uint) error {
	args := m.Called(ctx, detailID)
	return args.Error(0)
}

// MockBillService is a mock implementation of BillService
type MockBillService struct {
	mock.Mock
}

func (m *MockBillService) List(ctx context.Context, query *billing.BillQuery) ([]*billing.Bill, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*billing.Bill), args.Error(1)
}

func (m *MockBillService) GetByID(ctx context.Context, billID uint) (*billing.Bill, error) {
	args := m.Called(ctx, billID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *MockBillService) Create(ctx context.Context, bill *billing.Bill) (*billing.Bill, error) {
	args := m.Called(ctx, bill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *MockBillService) UpdateByID(ctx context.Context, billID uint, bill *billing.Bill) (*billing.Bill, error) {
	args := m.Called(ctx, billID, bill)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*billing.Bill), args.Error(1)
}

func (m *MockBillService) DeleteByID(ctx context.Context, billID uint) error {
	args := m.Called(ctx, billID)
	return args.Error(0)
}

// MockReviewService is a mock implementation of ReviewService
type MockReviewService struct {
	mock.Mock
}

func (m *MockReviewService) List(ctx context.Context, query *reviews.ReviewQuery) ([]*reviews.Review, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]*reviews.Review), args.Error(1)
}

func (m *MockReviewService) GetByID(ctx context.Context, reviewID uint) (*reviews.Review, error) {
	args := m.Called(ctx, reviewID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviews.Review), args.Error(1)
}

func (m *MockReviewService) Create(ctx context.Context, review *reviews.Review) (*reviews.Review, error) {
	args := m.Called(ctx, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviews.Review), args.Error(1)
}

func (m *MockReviewService) UpdateByID(ctx context.Context, reviewID uint, review *reviews.Review) (*reviews.Review, error) {
	args := m.Called(ctx, reviewID, review)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*reviews.Review), args.Error(1)
}

func (m *MockReviewService) DeleteByID(ctx context.Context, reviewID uint) error {
	args := m.Called(ctx, reviewID)
	return args.Error(0)
}

// MockCartService is a mock implementation of the cart Service
type MockCartService struct {
	mock.Mock
}

func (m *MockCartService) Get(ctx context.Context, sessionID string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) AddItem(ctx context.Context, sessionID string, item cart.Item) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID, item)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) UpdateItemQuantity(ctx context.Context, sessionID string, productID uint, quantity int) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID, productID, quantity)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) RemoveItem(ctx context.Context, sessionID string, productID uint) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID, productID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) Clear(ctx context.Context, sessionID string) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}

func (m *MockCartService) Merge(ctx context.Context, sessionID string, guest *cart.Cart) (*cart.Cart, error) {
	args := m.Called(ctx, sessionID, guest)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*cart.Cart), args.Error(1)
}
