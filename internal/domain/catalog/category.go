package catalog

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Category entity. Names are unique across the catalog.
type Category struct {
	ID   uint   `validate:"omitempty"`
	Name string `validate:"required,min=1,max=100"`
}

// Validate for validating Category struct
func (c *Category) Validate() error {
	validate := validator.New()

	err := validate.Struct(c)
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
