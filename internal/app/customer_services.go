package app

import (
	"context"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/customers"
	"github.com/openmerch/commerce-api/internal/pkg/logger"
)

// clientService implements the ClientService interface
type clientService struct {
	clientRepo customers.ClientRepository
	logger     logger.Logger
}

// NewClientService creates a new clientService instance
func NewClientService(clientRepo customers.ClientRepository, logger logger.Logger) (customers.ClientService, error) {
	return &clientService{
		clientRepo: clientRepo,
		logger:     logger,
	}, nil
}

func (s *clientService) List(ctx context.Context, query *customers.ClientQuery) ([]*customers.Client, error) {
	clients, err := s.clientRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return clients, nil
}

func (s *clientService) GetByID(ctx context.Context, clientID uint) (*customers.Client, error) {
	client, err := s.clientRepo.GetByID(ctx, clientID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return client, nil
}

func (s *clientService) Create(ctx context.Context, client *customers.Client) (*customers.Client, error) {
	if err := s.clientRepo.Create(ctx, client); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return client, nil
}

func (s *clientService) UpdateByID(ctx context.Context, clientID uint, client *customers.Client) (*customers.Client, error) {
	client.ID = clientID
	if err := s.clientRepo.UpdateByID(ctx, client); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return client, nil
}

func (s *clientService) DeleteByID(ctx context.Context, clientID uint) error {
	if err := s.clientRepo.DeleteByID(ctx, clientID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}

// addressService implements the AddressService interface
type addressService struct {
	addressRepo customers.AddressRepository
	clientRepo  customers.ClientRepository
	logger      logger.Logger
}

// NewAddressService creates a new addressService instance
func NewAddressService(addressRepo customers.AddressRepository, clientRepo customers.ClientRepository, logger logger.Logger) (customers.AddressService, error) {
	return &addressService{
		addressRepo: addressRepo,
		clientRepo:  clientRepo,
		logger:      logger,
	}, nil
}

func (s *addressService) List(ctx context.Context, query *customers.AddressQuery) ([]*customers.Address, error) {
	addresses, err := s.addressRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return addresses, nil
}

func (s *addressService) GetByID(ctx context.Context, addressID uint) (*customers.Address, error) {
	address, err := s.addressRepo.GetByID(ctx, addressID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return address, nil
}

func (s *addressService) Create(ctx context.Context, address *customers.Address) (*customers.Address, error) {
	// Reject addresses for unknown clients with a clean not-found instead of
	// surfacing the FK violation.
	if _, err := s.clientRepo.GetByID(ctx, address.ClientID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.addressRepo.Create(ctx, address); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return address, nil
}

func (s *addressService) UpdateByID(ctx context.Context, addressID uint, address *customers.Address) (*customers.Address, error) {
	address.ID = addressID
	if err := s.addressRepo.UpdateByID(ctx, address); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return address, nil
}

func (s *addressService) DeleteByID(ctx context.Context, addressID uint) error {
	if err := s.addressRepo.DeleteByID(ctx, addressID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
