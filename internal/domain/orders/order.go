package orders

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Order status values. New orders default to StatusPending.
const (
	StatusPending   = "pending"
	StatusPaid      = "paid"
	StatusShipped   = "shipped"
	StatusDelivered = "delivered"
	StatusCancelled = "cancelled"
)

// Delivery method values.
const (
	DeliveryStandard = "standard"
	DeliveryExpress  = "express"
	DeliveryPickup   = "pickup"
)

// Order entity. BillID stays nil until the order is invoiced.
type Order struct {
	ID             uint      `validate:"omitempty"`
	Date           time.Time `validate:"required"`
	Total          float64   `validate:"min=0"`
	DeliveryMethod string    `validate:"required,oneof=standard express pickup"`
	Status         string    `validate:"required,oneof=pending paid shipped delivered cancelled"`
	ClientID       uint      `validate:"required"`
	BillID         *uint     `validate:"omitempty"`
}

// NewOrder returns an order with the defaults applied: current time and
// pending status.
func NewOrder(clientID uint, total float64, deliveryMethod string) *Order {
	return &Order{
		Date:           time.Now().UTC(),
		Total:          total,
		DeliveryMethod: deliveryMethod,
		Status:         StatusPending,
		ClientID:       clientID,
	}
}

// Validate for validating Order struct
func (o *Order) Validate() error {
	validate := validator.New()

	err := validate.Struct(o)
	if err != nil {
		var validationErrors validator.ValidationErrors
		if errors.As(err, &validationErrors) {
			var messages []string
			for _, fieldErr := range validationErrors {
				messages = append(messages, fmt.Sprintf("Field: %s, Tag: %s", fieldErr.Field(), fieldErr.Tag()))
			}
			return fmt.Errorf("validation failed: %v", messages)
		}
		return fmt.Errorf("validation error: %w", err)
	}

	return nil
}
