package customers

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Client entity. All profile fields are optional so storefronts can create a
// client record early and fill it in over time.
type Client struct {
	ID        uint    `validate:"omitempty"`
	Name      string  `validate:"omitempty,min=1,max=100"`
	Lastname  string  `validate:"omitempty,min=1,max=100"`
	Email     string  `validate:"omitempty,email"`
	Telephone string  `validate:"omitempty,min=7,max=20"`
	Addresses []Address
}

// Validate for validating Client struct
func (c *Client) Validate() error {
	return runValidation(c)
}

// Address entity. Always belongs to a client.
type Address struct {
	ID       uint   `validate:"omitempty"`
	Street   string `validate:"omitempty,min=1,max=200"`
	Number   string `validate:"omitempty,max=20"`
	City     string `validate:"omitempty,min=1,max=100"`
	ClientID uint   `validate:"required"`
}

// Validate for validating Address struct
func (a *Address) Validate() error {
	return runValidation(a)
}

func runValidation(s interface{}) error {
	validate := validator.New()

	err := validate.Struct(s)
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
