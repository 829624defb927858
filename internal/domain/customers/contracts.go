package customers

import (
	"context"
	"fmt"

	"github.com/go-playground/validator/v10"
)

// ClientQuery holds pagination options for client listings.
type ClientQuery struct {
	Limit  int `validate:"min=1,max=1000"`
	Offset int `validate:"min=0"`
}

// NewClientQuery creates a ClientQuery with default pagination.
func NewClientQuery() *ClientQuery {
	return &ClientQuery{Limit: 100}
}

// Validate checks pagination fields.
func (q *ClientQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for ClientQuery: %w", err)
	}
	return nil
}

// AddressQuery holds filter and pagination options for address listings.
// ClientID zero means no client filter.
type AddressQuery struct {
	ClientID uint
	Limit    int `validate:"min=1,max=1000"`
	Offset   int `validate:"min=0"`
}

// NewAddressQuery creates an AddressQuery with default pagination.
func NewAddressQuery() *AddressQuery {
	return &AddressQuery{Limit: 100}
}

// Validate checks filter and pagination fields.
func (q *AddressQuery) Validate() error {
	validate := validator.New()
	if err := validate.Struct(q); err != nil {
		return fmt.Errorf("validation failed for AddressQuery: %w", err)
	}
	return nil
}

// ClientService defines the CRUD operations exposed for clients.
type ClientService interface {
	List(ctx context.Context, query *ClientQuery) ([]*Client, error)
	GetByID(ctx context.Context, clientID uint) (*Client, error)
	Create(ctx context.Context, client *Client) (*Client, error)
	UpdateByID(ctx context.Context, clientID uint, client *Client) (*Client, error)
	DeleteByID(ctx context.Context, clientID uint) error
}

// AddressService defines the CRUD operations exposed for addresses.
type AddressService interface {
	List(ctx context.Context, query *AddressQuery) ([]*Address, error)
	GetByID(ctx context.Context, addressID uint) (*Address, error)
	Create(ctx context.Context, address *Address) (*Address, error)
	UpdateByID(ctx context.Context, addressID uint, address *Address) (*Address, error)
	DeleteByID(ctx context.Context, addressID uint) error
}

// ClientRepository defines the interface for client persistence.
type ClientRepository interface {
	Create(ctx context.Context, client *Client) error
	List(ctx context.Context, query *ClientQuery) ([]*Client, error)
	GetByID(ctx context.Context, clientID uint) (*Client, error)
	UpdateByID(ctx context.Context, client *Client) error
	DeleteByID(ctx context.Context, clientID uint) error
}

// AddressRepository defines the interface for address persistence.
type AddressRepository interface {
	Create(ctx context.Context, address *Address) error
	List(ctx context.Context, query *AddressQuery) ([]*Address, error)
	GetByID(ctx context.Context, addressID uint) (*Address, error)
	UpdateByID(ctx context.Context, address *Address) error
	DeleteByID(ctx context.Context, addressID uint) error
}
