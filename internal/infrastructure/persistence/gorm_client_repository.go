package persistence

import (
	"context"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/customers"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence/models"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormClientRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormClientRepository creates a new GORM-based ClientRepository implementation
func NewGormClientRepository(db *gorm.DB, logger logger.Logger) (customers.ClientRepository, error) {
	return &gormClientRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormClientRepository) Create(ctx context.Context, client *customers.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.ClientModel{}
	model.FromDomain(client)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create client: %w", translateError(err))
	}

	client.ID = model.ID
	r.logger.Info("Created client with id ", client.ID)
	return nil
}

func (r *gormClientRepository) List(ctx context.Context, query *customers.ClientQuery) ([]*customers.Client, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.ClientModel
	dbQuery := r.db.WithContext(ctx).Model(&models.ClientModel{}).Preload("Addresses")

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch clients: %w", translateError(err))
	}

	domainList := make([]*customers.Client, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormClientRepository) GetByID(ctx context.Context, clientID uint) (*customers.Client, error) {
	var model models.ClientModel
	if err := r.db.WithContext(ctx).Preload("Addresses").First(&model, clientID).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch client %d: %w", clientID, translateError(err))
	}
	return model.ToDomain(), nil
}

func (r *gormClientRepository) UpdateByID(ctx context.Context, client *customers.Client) error {
	if err := client.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var existing models.ClientModel
	if err := r.db.WithContext(ctx).First(&existing, client.ID).Error; err != nil {
		return fmt.Errorf("failed to fetch client %d: %w", client.ID, translateError(err))
	}

	existing.FromDomain(client)

	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update client: %w", translateError(err))
	}

	r.logger.Info("Updated client with id ", client.ID)
	return nil
}

func (r *gormClientRepository) DeleteByID(ctx context.Context, clientID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.ClientModel{}, clientID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete client: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete client %d: %w", clientID, ErrNotFound)
	}

	r.logger.Info("Deleted client with id ", clientID)
	return nil
}
