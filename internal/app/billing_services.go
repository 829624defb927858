package app

import (
	"context"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/billing"
	"github.com/openmerch/commerce-api/internal/domain/customers"
	"github.com/openmerch/commerce-api/internal/pkg/logger"
)

// billService implements the BillService interface
type billService struct {
	billRepo   billing.BillRepository
	clientRepo customers.ClientRepository
	logger     logger.Logger
}

// NewBillService creates a new billService instance
func NewBillService(billRepo billing.BillRepository, clientRepo customers.ClientRepository, logger logger.Logger) (billing.BillService, error) {
	return &billService{
		billRepo:   billRepo,
		clientRepo: clientRepo,
		logger:     logger,
	}, nil
}

func (s *billService) List(ctx context.Context, query *billing.BillQuery) ([]*billing.Bill, error) {
	bills, err := s.billRepo.List(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return bills, nil
}

func (s *billService) GetByID(ctx context.Context, billID uint) (*billing.Bill, error) {
	bill, err := s.billRepo.GetByID(ctx, billID)
	if err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return bill, nil
}

func (s *billService) Create(ctx context.Context, bill *billing.Bill) (*billing.Bill, error) {
	if _, err := s.clientRepo.GetByID(ctx, bill.ClientID); err != nil {
		return nil, fmt.Errorf("%w", err)
	}

	if err := s.billRepo.Create(ctx, bill); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return bill, nil
}

func (s *billService) UpdateByID(ctx context.Context, billID uint, bill *billing.Bill) (*billing.Bill, error) {
	bill.ID = billID
	if err := s.billRepo.UpdateByID(ctx, bill); err != nil {
		return nil, fmt.Errorf("%w", err)
	}
	return bill, nil
}

func (s *billService) DeleteByID(ctx context.Context, billID uint) error {
	if err := s.billRepo.DeleteByID(ctx, billID); err != nil {
		return fmt.Errorf("%w", err)
	}
	return nil
}
