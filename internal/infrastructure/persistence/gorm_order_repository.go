package persistence

import (
	"context"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/orders"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence/models"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"gorm.io/gorm"
)

type gormOrderRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrderRepository creates a new GORM-based OrderRepository implementation
func NewGormOrderRepository(db *gorm.DB, logger logger.Logger) (orders.OrderRepository, error) {
	return &gormOrderRepository{
		db:     db,
		logger: logger,
	}, nil
}

func (r *gormOrderRepository) Create(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	model := &models.OrderModel{}
	model.FromDomain(order)

	if err := r.db.WithContext(ctx).Create(model).Error; err != nil {
		return fmt.Errorf("failed to create order: %w", translateError(err))
	}

	order.ID = model.ID
	r.logger.Info("Created order with id ", order.ID)
	return nil
}

func (r *gormOrderRepository) List(ctx context.Context, query *orders.OrderQuery) ([]*orders.Order, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.OrderModel
	dbQuery := r.db.WithContext(ctx).Model(&models.OrderModel{})

	if query.ClientID != 0 {
		dbQuery = dbQuery.Where("client_id = ?", query.ClientID)
	}
	if query.Status != "" {
		dbQuery = dbQuery.Where("status = ?", query.Status)
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch orders: %w", translateError(err))
	}

	domainList := make([]*orders.Order, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormOrderRepository) GetByID(ctx context.Context, orderID uint) (*orders.Order, error) {
	var model models.OrderModel
	if err := r.db.WithContext(ctx).First(&model, orderID).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch order %d: %w", orderID, translateError(err))
	}
	return model.ToDomain(), nil
}

func (r *gormOrderRepository) UpdateByID(ctx context.Context, order *orders.Order) error {
	if err := order.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	var existing models.OrderModel
	if err := r.db.WithContext(ctx).First(&existing, order.ID).Error; err != nil {
		return fmt.Errorf("failed to fetch order %d: %w", order.ID, translateError(err))
	}

	existing.FromDomain(order)

	if err := r.db.WithContext(ctx).Save(&existing).Error; err != nil {
		return fmt.Errorf("failed to update order: %w", translateError(err))
	}

	r.logger.Info("Updated order with id ", order.ID)
	return nil
}

func (r *gormOrderRepository) DeleteByID(ctx context.Context, orderID uint) error {
	result := r.db.WithContext(ctx).Delete(&models.OrderModel{}, orderID)
	if result.Error != nil {
		return fmt.Errorf("failed to delete order: %w", translateError(result.Error))
	}
	if result.RowsAffected == 0 {
		return fmt.Errorf("failed to delete order %d: %w", orderID, ErrNotFound)
	}

	r.logger.Info("Deleted order with id ", orderID)
	return nil
}
