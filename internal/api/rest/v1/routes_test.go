//go:build unit
// +build unit

package v1

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// TestSetupRoutes_RoutesRegistered verifies that routes are properly registered
func TestSetupRoutes_RoutesRegistered(t *testing.T) {
	mockCategoryService := new(MockCategoryService)
	mockProductService := new(MockProductService)
	mockClientService := new(MockClientService)
	mockAddressService := new(MockAddressService)
	mockOrderService := new(MockOrderService)
	mockOrderDetailService := new(MockOrderDetailService)
	mockBillService := new(MockBillService)
	mockReviewService := new(MockReviewService)
	mockCartService := new(MockCartService)

	r := gin.Default()

	// Setup mocks to return nil
	mockCategoryService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockProductService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockClientService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockAddressService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockOrderService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockOrderDetailService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockBillService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockReviewService.On("List", mock.Anything, mock.Anything).Return(nil, nil)
	mockCartService.On("Get", mock.Anything, mock.Anything).Return(nil, nil)

	services := Services{
		CategoryService:    mockCategoryService,
		ProductService:     mockProductService,
		ClientService:      mockClientService,
		AddressService:     mockAddressService,
		OrderService:       mockOrderService,
		OrderDetailService: mockOrderDetailService,
		BillService:        mockBillService,
		ReviewService:      mockReviewService,
		CartService:        mockCartService,
	}

	SetupRoutes(r, services, nil, nil)

	// Verify routes are registered by testing they respond (even with errors)
	tests := []struct {
		method string
		url    string
	}{
		{"GET", "/api/v1/categories"},
		{"POST", "/api/v1/categories"},
		{"GET", "/api/v1/products"},
		{"POST", "/api/v1/products"},
		{"GET", "/api/v1/clients"},
		{"POST", "/api/v1/clients"},
		{"GET", "/api/v1/addresses"},
		{"POST", "/api/v1/addresses"},
		{"GET", "/api/v1/orders"},
		{"POST", "/api/v1/orders"},
		{"GET", "/api/v1/order-details"},
		{"POST", "/api/v1/order-details"},
		{"GET", "/api/v1/bills"},
		{"POST", "/api/v1/bills"},
		{"GET", "/api/v1/reviews"},
		{"POST", "/api/v1/reviews"},
		{"GET", "/api/v1/cart"},
		{"POST", "/api/v1/cart/items"},
		{"POST", "/api/v1/cart/merge"},
	}

	for _, tt := range tests {
		t.Run(tt.method+" "+tt.url, func(t *testing.T) {
			req, _ := http.NewRequest(tt.method, tt.url, nil)
			w := httptest.NewRecorder()
			r.ServeHTTP(w, req)

			// Just verify route exists (status != 404)
			assert.NotEqual(t, http.StatusNotFound, w.Code, "Route should be registered")
		})
	}
}
