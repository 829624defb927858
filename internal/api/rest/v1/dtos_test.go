//go:build unit
// +build unit

package v1

import (
	"testing"
	"time"

	"github.com/openmerch/commerce-api/internal/domain/orders"

	"github.com/stretchr/testify/require"
)

func TestProductRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ProductRequest
		shouldErr bool
	}{
		{"Valid product", ProductRequest{Name: "Keyboard", Price: 49.99, Stock: 10, CategoryID: 1}, false},
		{"Valid zero stock", ProductRequest{Name: "Keyboard", Price: 49.99, Stock: 0, CategoryID: 1}, false},
		{"Missing name", ProductRequest{Price: 49.99, CategoryID: 1}, true},
		{"Zero price", ProductRequest{Name: "Keyboard", Price: 0, CategoryID: 1}, true},
		{"Negative price", ProductRequest{Name: "Keyboard", Price: -1, CategoryID: 1}, true},
		{"Negative stock", ProductRequest{Name: "Keyboard", Price: 49.99, Stock: -1, CategoryID: 1}, true},
		{"Missing category", ProductRequest{Name: "Keyboard", Price: 49.99}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestCategoryRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   CategoryRequest
		shouldErr bool
	}{
		{"Valid category", CategoryRequest{Name: "Peripherals"}, false},
		{"Missing name", CategoryRequest{}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestClientRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   ClientRequest
		shouldErr bool
	}{
		{"Valid client", ClientRequest{Name: "Ada", Lastname: "Lovelace", Email: "ada@example.com", Telephone: "5550001234"}, false},
		{"Empty fields (valid)", ClientRequest{}, false},
		{"Invalid email", ClientRequest{Email: "not-an-email"}, true},
		{"Telephone too short", ClientRequest{Telephone: "123"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestOrderRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   OrderRequest
		shouldErr bool
	}{
		{"Valid order", OrderRequest{DeliveryMethod: "standard", ClientID: 1}, false},
		{"Valid with status", OrderRequest{DeliveryMethod: "express", Status: "paid", ClientID: 1}, false},
		{"Missing delivery method", OrderRequest{ClientID: 1}, true},
		{"Unknown delivery method", OrderRequest{DeliveryMethod: "drone", ClientID: 1}, true},
		{"Unknown status", OrderRequest{DeliveryMethod: "standard", Status: "lost", ClientID: 1}, true},
		{"Missing client", OrderRequest{DeliveryMethod: "standard"}, true},
		{"Negative total", OrderRequest{DeliveryMethod: "standard", Total: -5, ClientID: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestOrderRequest_ToDomain_Defaults(t *testing.T) {
	request := OrderRequest{DeliveryMethod: "standard", ClientID: 7}

	order := request.ToDomain()

	require.Equal(t, uint(7), order.ClientID)
	require.Equal(t, orders.StatusPending, order.Status)
	require.False(t, order.Date.IsZero())
}

func TestOrderRequest_ToDomain_Overrides(t *testing.T) {
	date := time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC)
	request := OrderRequest{Date: &date, DeliveryMethod: "express", Status: "shipped", ClientID: 7}

	order := request.ToDomain()

	require.Equal(t, date, order.Date)
	require.Equal(t, "shipped", order.Status)
}

func TestOrderDetailRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   OrderDetailRequest
		shouldErr bool
	}{
		{"Valid detail", OrderDetailRequest{OrderID: 1, ProductID: 2, Quantity: 3, Price: 9.99}, false},
		{"Valid without price", OrderDetailRequest{OrderID: 1, ProductID: 2, Quantity: 3}, false},
		{"Missing order", OrderDetailRequest{ProductID: 2, Quantity: 3}, true},
		{"Missing product", OrderDetailRequest{OrderID: 1, Quantity: 3}, true},
		{"Zero quantity", OrderDetailRequest{OrderID: 1, ProductID: 2}, true},
		{"Negative price", OrderDetailRequest{OrderID: 1, ProductID: 2, Quantity: 3, Price: -1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestBillRequest_Validate(t *testing.T) {
	discount := 5.0
	negative := -1.0

	tests := []struct {
		name      string
		request   BillRequest
		shouldErr bool
	}{
		{"Valid bill", BillRequest{BillNumber: "B-001", Total: 100, PaymentType: "cash", ClientID: 1}, false},
		{"Valid with discount", BillRequest{BillNumber: "B-001", Discount: &discount, Total: 95, PaymentType: "transfer", ClientID: 1}, false},
		{"Missing bill number", BillRequest{Total: 100, PaymentType: "cash", ClientID: 1}, true},
		{"Unknown payment type", BillRequest{BillNumber: "B-001", Total: 100, PaymentType: "barter", ClientID: 1}, true},
		{"Negative discount", BillRequest{BillNumber: "B-001", Discount: &negative, Total: 100, PaymentType: "cash", ClientID: 1}, true},
		{"Missing client", BillRequest{BillNumber: "B-001", Total: 100, PaymentType: "cash"}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestBillRequest_ToDomain_DefaultsDate(t *testing.T) {
	request := BillRequest{BillNumber: "B-001", Total: 100, PaymentType: "cash", ClientID: 1}

	bill := request.ToDomain()

	require.False(t, bill.Date.IsZero())
	require.WithinDuration(t, time.Now().UTC(), bill.Date, time.Minute)
}

func TestReviewRequest_Validate(t *testing.T) {
	comment := "Solid build quality, keys feel great."
	short := "Too short"

	tests := []struct {
		name      string
		request   ReviewRequest
		shouldErr bool
	}{
		{"Valid review", ReviewRequest{Rating: 4.5, Comment: &comment, ProductID: 1}, false},
		{"Valid without comment", ReviewRequest{Rating: 3, ProductID: 1}, false},
		{"Rating too low", ReviewRequest{Rating: 0.5, ProductID: 1}, true},
		{"Rating too high", ReviewRequest{Rating: 5.5, ProductID: 1}, true},
		{"Comment too short", ReviewRequest{Rating: 4, Comment: &short, ProductID: 1}, true},
		{"Missing product", ReviewRequest{Rating: 4}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestAddCartItemRequest_Validate(t *testing.T) {
	tests := []struct {
		name      string
		request   AddCartItemRequest
		shouldErr bool
	}{
		{"Valid item", AddCartItemRequest{ProductID: 1, Quantity: 2}, false},
		{"Missing product", AddCartItemRequest{Quantity: 2}, true},
		{"Zero quantity", AddCartItemRequest{ProductID: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.request.Validate()
			if tt.shouldErr {
				require.Error(t, err, "expected validation error")
			} else {
				require.NoError(t, err, "expected no validation error")
			}
		})
	}
}

func TestUpdateCartItemRequest_Validate(t *testing.T) {
	require.NoError(t, (&UpdateCartItemRequest{Quantity: 0}).Validate())
	require.NoError(t, (&UpdateCartItemRequest{Quantity: 3}).Validate())
	require.Error(t, (&UpdateCartItemRequest{Quantity: -1}).Validate())
}

func TestNewProductResponse_NestedCategory(t *testing.T) {
	response := newProductResponse(productFixture())

	require.Equal(t, uint(3), response.ID)
	require.NotNil(t, response.Category)
	require.Equal(t, "Peripherals", response.Category.Name)
}
