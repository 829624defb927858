package persistence

import (
	"context"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/billing"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence/models"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormBillRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormBillRepository creates a new GORM-based BillRepository implementation
func NewGormBillRepository(db *gorm.DB, logger logger.Logger) (billing.BillRepository, error) {
	return &gormBillRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormBillRepository) Create(ctx context.Context, bill *billing.Bill) error {
	if err := bill.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.BillModel{}
	model.FromDomain(bill)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create bill: %w", translateError(err))
	}

	bill.ID = model.ID
	r.logger.Info("Created bill with id ", bill.ID)
	return nil
}

func (r *gormBillRepository) List(ctx context.Context, query *billing.BillQuery) ([]*billing.Bill, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.BillModel
	dbQuery := r.db.WithContext(ctx).Model(&models.BillModel{})

	if query.ClientID != 0 {
		dbQuery = dbQuery.Where("client_id = ?", query.ClientID)
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch bills: %w", translateError(err))
	}

	domainList := make([]*billing.Bill, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormBillRepository) GetByID(ctx context.Context, billID uint) (*billing.Bill, error) {
	var model models.BillModel
	if err := r.db.WithContext(ctx).First(&model, billID).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch bill %d: %w", billID, translateError(err))
	}
	return model.ToDomain(), nil
}

func (r *gormBillRepository) UpdateByID(ctx context.Context, bill *billing.Bill) error {
	if err := bill.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var existing models.BillModel
	if err := r.db.WithContext(ctx).First(&existing, bill.ID).Error; err != nil {
		return fmt.Errorf("failed to fetch bill %d: %w", bill.ID, translateError(err))
	}

	existing.FromDomain(bill)

	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update bill: %w", translateError(err))
	}

	r.logger.Info("Updated bill with id ", bill.ID)
	return nil
}

func (r *gormBillRepository) DeleteByID(ctx context.Context, billID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.BillModel{}, billID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete bill: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete bill %d: %w", billID, ErrNotFound)
	}

	r.logger.Info("Deleted bill with id ", billID)
	return nil
}
