//go:build unit
// +build unit

package orders

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder_Defaults(t *testing.T) {
	order := NewOrder(7, 120.50, DeliveryStandard)

	assert.Equal(t, StatusPending, order.Status)
	assert.Equal(t, uint(7), order.ClientID)
	assert.False(t, order.Date.IsZero())
	assert.Nil(t, order.BillID)
	require.NoError(t, order.Validate())
}

func TestOrder_Validate(t *testing.T) {
	billID := uint(3)

	tests := []struct {
		name      string
		order     Order
		shouldErr bool
	}{
		{
			"valid order with bill",
			Order{Date: time.Now(), Total: 10, DeliveryMethod: DeliveryExpress, Status: StatusPaid, ClientID: 1, BillID: &billID},
			false,
		},
		{
			"missing delivery method",
			Order{Date: time.Now(), Total: 10, Status: StatusPending, ClientID: 1},
			true,
		},
		{
			"unknown status",
			Order{Date: time.Now(), Total: 10, DeliveryMethod: DeliveryPickup, Status: "archived", ClientID: 1},
			true,
		},
		{
			"negative total",
			Order{Date: time.Now(), Total: -1, DeliveryMethod: DeliveryPickup, Status: StatusPending, ClientID: 1},
			true,
		},
		{
			"missing client",
			Order{Date: time.Now(), Total: 10, DeliveryMethod: DeliveryPickup, Status: StatusPending},
			true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.order.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}

func TestOrderDetail_Validate(t *testing.T) {
	tests := []struct {
		name      string
		detail    OrderDetail
		shouldErr bool
	}{
		{"valid detail", OrderDetail{OrderID: 1, ProductID: 2, Quantity: 3, Price: 9.99}, false},
		{"price unset is valid", OrderDetail{OrderID: 1, ProductID: 2, Quantity: 3}, false},
		{"zero quantity", OrderDetail{OrderID: 1, ProductID: 2, Quantity: 0}, true},
		{"missing order", OrderDetail{ProductID: 2, Quantity: 1}, true},
		{"missing product", OrderDetail{OrderID: 1, Quantity: 1}, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.detail.Validate()
			if tt.shouldErr {
				require.Error(t, err)
			} else {
				require.NoError(t, err)
			}
		})
	}
}
