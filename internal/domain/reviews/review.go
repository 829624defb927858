package reviews

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Review entity: a star rating for a product with an optional comment.
type Review struct {
	ID        uint    `validate:"omitempty"`
	Rating    float64 `validate:"required,min=1,max=5"`
	Comment   *string `validate:"omitempty,min=10,max=1000"`
	ProductID uint    `validate:"required"`
}

// Validate for validating Review struct
func (r *Review) Validate() error {
	validate := validator.New()

	err := validate.Struct(r)
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
