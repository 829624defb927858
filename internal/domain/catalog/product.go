package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Product entity. The nested Category is populated on reads so API responses
// can embed the category object instead of only its id.
type Product struct {
	ID         uint    `validate:"omitempty"`
	Name       string  `validate:"required,min=1,max=200"`
	Price      float64 `validate:"required,gt=0"`
	Stock      int     `validate:"min=0"`
	CategoryID uint    `validate:"required"`
	Category   *Category
}

// Validate for validating Product struct
func (p *Product) Validate() error {
	validate := validator.New()

	err := validate.Struct(p)
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
