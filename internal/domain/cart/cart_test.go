//go:build unit
// +build unit

package cart

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_AddItem_NewProduct(t *testing.T) {
	c := New()

	c.AddItem(Item{ProductID: 1, Quantity: 2, Name: "Keyboard", Price: 49.90, Stock: 10})

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.ItemCount)
	assert.InDelta(t, 99.80, c.Total, 0.001)
}

func TestCart_AddItem_ExistingProductSumsQuantity(t *testing.T) {
	c := New()
	c.AddItem(Item{ProductID: 1, Quantity: 2, Name: "Keyboard", Price: 49.90})

	c.AddItem(Item{ProductID: 1, Quantity: 3, Name: "Keyboard", Price: 49.90})

	require.Len(t, c.Items, 1)
	assert.Equal(t, 5, c.Items[0].Quantity)
	assert.Equal(t, 5, c.ItemCount)
	assert.InDelta(t, 249.50, c.Total, 0.001)
}

func TestCart_SetQuantity_UpdatesTotals(t *testing.T) {
	c := New()
	c.AddItem(Item{ProductID: 1, Quantity: 2, Name: "Keyboard", Price: 50})
	c.AddItem(Item{ProductID: 2, Quantity: 1, Name: "Mouse", Price: 20})

	c.SetQuantity(1, 4)

	assert.Equal(t, 5, c.ItemCount)
	assert.InDelta(t, 220, c.Total, 0.001)
}

func TestCart_SetQuantity_ZeroRemovesLine(t *testing.T) {
	c := New()
	c.AddItem(Item{ProductID: 1, Quantity: 2, Name: "Keyboard", Price: 50})
	c.AddItem(Item{ProductID: 2, Quantity: 1, Name: "Mouse", Price: 20})

	c.SetQuantity(1, 0)

	require.Len(t, c.Items, 1)
	assert.Equal(t, uint(2), c.Items[0].ProductID)
	assert.Equal(t, 1, c.ItemCount)
	assert.InDelta(t, 20, c.Total, 0.001)
}

func TestCart_SetQuantity_UnknownProductIsNoop(t *testing.T) {
	c := New()
	c.AddItem(Item{ProductID: 1, Quantity: 2, Name: "Keyboard", Price: 50})

	c.SetQuantity(99, 3)

	require.Len(t, c.Items, 1)
	assert.Equal(t, 2, c.ItemCount)
}

func TestCart_RemoveItem(t *testing.T) {
	c := New()
	c.AddItem(Item{ProductID: 1, Quantity: 2, Name: "Keyboard", Price: 50})

	c.RemoveItem(1)

	assert.Empty(t, c.Items)
	assert.Equal(t, 0, c.ItemCount)
	assert.InDelta(t, 0, c.Total, 0.001)
}

func TestCart_Merge_SumsPerProduct(t *testing.T) {
	user := New()
	user.AddItem(Item{ProductID: 1, Quantity: 1, Name: "Keyboard", Price: 50})

	guest := New()
	guest.AddItem(Item{ProductID: 1, Quantity: 2, Name: "Keyboard", Price: 50})
	guest.AddItem(Item{ProductID: 3, Quantity: 1, Name: "Monitor", Price: 200})

	user.Merge(guest)

	require.Len(t, user.Items, 2)
	assert.Equal(t, 3, user.Items[0].Quantity)
	assert.Equal(t, 4, user.ItemCount)
	assert.InDelta(t, 350, user.Total, 0.001)
}

func TestCart_Merge_NilIsNoop(t *testing.T) {
	c := New()
	c.AddItem(Item{ProductID: 1, Quantity: 1, Name: "Keyboard", Price: 50})

	c.Merge(nil)

	assert.Equal(t, 1, c.ItemCount)
}

func TestItem_Validate(t *testing.T) {
	tests := []struct {
		name      string
		item      Item
		shouldErr bool
	}{
		{"valid item", Item{ProductID: 1, Quantity: 1, Name: "Keyboard", Price: 49.90}, false},
		{"missing product id", Item{Quantity: 1, Name: "Keyboard", Price: 49.90}, true},
		{"zero quantity", Item{ProductID: 1, Quantity: 0, Name: "Keyboard", Price: 49.90}, true},
		{"missing name", Item{ProductID: 1, Quantity: 1, Price: 49.90}, true},
		{"free item is valid", Item{ProductID: 1, Quantity: 1, Name: "Sticker", Price: 0}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.item.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
