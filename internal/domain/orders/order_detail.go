package orders

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// OrderDetail entity: one product line within an order. Price is the unit
// price charged at purchase time; the service fills it from the product when
// the request leaves it unset.
type OrderDetail struct {
	ID        uint    `validate:"omitempty"`
	OrderID   uint    `validate:"required"`
	ProductID uint    `validate:"required"`
	Quantity  int     `validate:"required,gt=0"`
	Price     float64 `validate:"omitempty,gt=0"`
}

// Validate for validating OrderDetail struct
func (d *OrderDetail) Validate() error {
	validate := validator.New()

	err := validate.Struct(d)
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
