package billing

import (
	"errors"
	"fmt"
	"time"

	"github.com/go-playground/validator/v10"
)

// Payment type values.
const (
	PaymentCash       = "cash"
	PaymentCreditCard = "credit_card"
	PaymentDebitCard  = "debit_card"
	PaymentTransfer   = "transfer"
)

// Bill entity. BillNumber is unique across all bills.
type Bill struct {
	ID          uint      `validate:"omitempty"`
	BillNumber  string    `validate:"required,min=1,max=50"`
	Discount    *float64  `validate:"omitempty,min=0"`
	Date        time.Time `validate:"required"`
	Total       float64   `validate:"min=0"`
	PaymentType string    `validate:"required,oneof=cash credit_card debit_card transfer"`
	ClientID    uint      `validate:"required"`
}

// Validate for validating Bill struct
func (b *Bill) Validate() error {
	validate := validator.New()

	err := validate.Struct(b)
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
