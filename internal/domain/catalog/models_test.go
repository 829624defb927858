//go:build unit
// +build unit

package catalog

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCategory_Validate(t *testing.T) {
	tests := []struct {
		name      string
		category  Category
		shouldErr bool
	}{
		{"valid category", Category{Name: "Peripherals"}, false},
		{"missing name", Category{}, true},
		{"name too long", Category{Name: strings.Repeat("x", 101)}, true},
		{"max length name", Category{Name: strings.Repeat("x", 100)}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.category.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestProduct_Validate(t *testing.T) {
	tests := []struct {
		name      string
		product   Product
		shouldErr bool
	}{
		{"valid product", Product{Name: "Keyboard", Price: 49.90, Stock: 5, CategoryID: 1}, false},
		{"zero stock is valid", Product{Name: "Keyboard", Price: 49.90, Stock: 0, CategoryID: 1}, false},
		{"missing name", Product{Price: 49.90, CategoryID: 1}, true},
		{"zero price", Product{Name: "Keyboard", Price: 0, CategoryID: 1}, true},
		{"negative stock", Product{Name: "Keyboard", Price: 49.90, Stock: -1, CategoryID: 1}, true},
		{"missing category", Product{Name: "Keyboard", Price: 49.90}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.product.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestProductQuery_Validate(t *testing.T) {
	q := NewProductQuery()
	require.NoError(t, q.Validate())

	q.Limit = 0
	require.Error(t, q.Validate())

	q = NewProductQuery()
	q.SortBy = "price"
	q.SortOrder = "desc"
	require.NoError(t, q.Validate())

	q.SortBy = "hidden_column"
	require.Error(t, q.Validate())
}
