package persistence

import (
	"context"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/customers"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence/models"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormAddressRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormAddressRepository creates a new GORM-based AddressRepository implementation
func NewGormAddressRepository(db *gorm.DB, logger logger.Logger) (customers.AddressRepository, error) {
	return &gormAddressRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormAddressRepository) Create(ctx context.Context, address *customers.Address) error {
	if err := address.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.AddressModel{}
	model.FromDomain(address)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create address: %w", translateError(err))
	}

	address.ID = model.ID
	r.logger.Info("Created address with id ", address.ID)
	return nil
}

func (r *gormAddressRepository) List(ctx context.Context, query *customers.AddressQuery) ([]*customers.Address, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.AddressModel
	dbQuery := r.db.WithContext(ctx).Model(&models.AddressModel{})

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
		return nil, fmt.Errorf("failed to fetch addresses: %w", translateError(err))
	}

	domainList := make([]*customers.Address, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormAddressRepository) GetByID(ctx context.Context, addressID uint) (*customers.Address, error) {
	var model models.AddressModel
	if err := r.db.WithContext(ctx).First(&model, addressID).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch address %d: %w", addressID, translateError(err))
	}
	return model.ToDomain(), nil
}

func (r *gormAddressRepository) UpdateByID(ctx context.Context, address *customers.Address) error {
	if err := address.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var existing models.AddressModel
	if err := r.db.WithContext(ctx).First(&existing, address.ID).Error; err != nil {
		return fmt.Errorf("failed to fetch address %d: %w", address.ID, translateError(err))
	}

	existing.FromDomain(address)

	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update address: %w", translateError(err))
	}

	r.logger.Info("Updated address with id ", address.ID)
	return nil
}

func (r *gormAddressRepository) DeleteByID(ctx context.Context, addressID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.AddressModel{}, addressID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete address: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete address %d: %w", addressID, ErrNotFound)
	}

	r.logger.Info("Deleted address with id ", addressID)
	return nil
}
