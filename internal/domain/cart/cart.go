package cart

import (
	"errors"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// Item is one product line in a shopping cart. Name, Price and Stock are
// denormalized copies of the product at the time it was added, so the
// storefront can render the cart without extra catalog lookups.
type Item struct {
	ProductID uint    `json:"product_id" validate:"required"`
	Quantity  int     `json:"quantity" validate:"required,min=1"`
	Name      string  `json:"name" validate:"required"`
	Price     float64 `json:"price" validate:"min=0"`
	Stock     int     `json:"stock"`
}

// Validate for validating Item struct
func (i *Item) Validate() error {
	validate := validator.New()

	err := validate.Struct(i)
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

// Cart is the session shopping cart. Total and ItemCount are derived and
// recomputed after every mutation; they are stored alongside the items so the
// serialized form matches what clients receive.
type Cart struct {
	Items     []Item  `json:"items"`
	Total     float64 `json:"total"`
	ItemCount int     `json:"item_count"`
}

// New returns an empty cart.
func New() *Cart {
	return &Cart{Items: []Item{}}
}

// AddItem adds the item to the cart, summing quantities when the product is
// already present.
func (c *Cart) AddItem(item Item) {
	for i := range c.Items {
		if c.Items[i].ProductID == item.ProductID {
			c.Items[i].Quantity += item.Quantity
			c.recalculate()
			return
		}
	}

	c.Items = append(c.Items, item)
	c.recalculate()
}

// SetQuantity updates the quantity for a product; zero or negative removes
// the line. Unknown products are a no-op.
func (c *Cart) SetQuantity(productID uint, quantity int) {
	if quantity <= 0 {
		kept := c.Items[:0]
		for _, item := range c.Items {
			if item.ProductID != productID {
				kept = append(kept, item)
			}
		}
		c.Items = kept
		c.recalculate()
		return
	}

	for i := range c.Items {
		if c.Items[i].ProductID == productID {
			c.Items[i].Quantity = quantity
			break
		}
	}
	c.recalculate()
}

// RemoveItem removes a product line from the cart.
func (c *Cart) RemoveItem(productID uint) {
	c.SetQuantity(productID, 0)
}

// Merge folds another cart into this one, summing quantities per product.
// Used when a guest cart is merged into a user cart at login.
func (c *Cart) Merge(other *Cart) {
	if other == nil {
		return
	}
	for _, item := range other.Items {
		c.AddItem(item)
	}
}

func (c *Cart) recalculate() {
	if c.Items == nil {
		c.Items = []Item{}
	}

	total := 0.0
	count := 0
	for _, item := range c.Items {
		total += item.Price * float64(item.Quantity)
		count += item.Quantity
	}
	c.Total = total
	c.ItemCount = count
}
