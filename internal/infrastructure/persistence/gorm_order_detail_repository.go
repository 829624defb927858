package persistence

import (
	"context"
	"fmt"

	"github.com/openmerch/commerce-api/internal/domain/orders"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence/models"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type gormOrderDetailRepository struct {
	db     *gorm.DB
	logger logger.Logger
}

// NewGormOrderDetailRepository creates a new GORM-based OrderDetailRepository
// implementation. Stock-coupled mutations lock the product row for the whole
// transaction so concurrent order lines cannot oversell.
func NewGormOrderDetailRepository(db *gorm.DB, logger logger.Logger) (orders.OrderDetailRepository, error) {
	return &gormOrderDetailRepository{
		db:     db,
		logger: logger,
	}, nil
}

// lockForUpdate adds a row lock on databases that support it. SQLite has no
// FOR UPDATE; its single-writer transaction lock already serializes the
// read-modify-write.
func lockForUpdate(tx *gorm.DB) *gorm.DB {
	if tx.Dialector.Name() == "sqlite" {
		return tx
	}
	return tx.Clauses(clause.Locking{Strength: "UPDATE"})
}

func (r *gormOrderDetailRepository) List(ctx context.Context, query *orders.OrderDetailQuery) ([]*orders.OrderDetail, error) {
	if err := query.Validate(); err != nil {
		return nil, fmt.Errorf("invalid query parameters: %w", err)
	}

	var modelList []*models.OrderDetailModel
	dbQuery := r.db.WithContext(ctx).Model(&models.OrderDetailModel{})

	if query.OrderID != 0 {
		dbQuery = dbQuery.Where("order_id = ?", query.OrderID)
	}

	if query.Limit > 0 {
		dbQuery = dbQuery.Limit(query.Limit)
	}
	if query.Offset > 0 {
		dbQuery = dbQuery.Offset(query.Offset)
	}

	if err := dbQuery.Find(&modelList).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch order details: %w", translateError(err))
	}

	domainList := make([]*orders.OrderDetail, len(modelList))
	for i, model := range modelList {
		domainList[i] = model.ToDomain()
	}

	return domainList, nil
}

func (r *gormOrderDetailRepository) GetByID(ctx context.Context, detailID uint) (*orders.OrderDetail, error) {
	var model models.OrderDetailModel
	if err := r.db.WithContext(ctx).First(&model, detailID).Error; err != nil {
		return nil, fmt.Errorf("failed to fetch order detail %d: %w", detailID, translateError(err))
	}
	return model.ToDomain(), nil
}

func (r *gormOrderDetailRepository) CreateWithStockReservation(ctx context.Context, detail *orders.OrderDetail) error {
	if err := detail.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var product models.ProductModel
		if err := lockForUpdate(tx).First(&product, detail.ProductID).Error; err != nil {
			return fmt.Errorf("failed to fetch product %d: %w", detail.ProductID, translateError(err))
		}

		if product.Stock < detail.Quantity {
			return fmt.Errorf("product %d has %d units: %w", detail.ProductID, product.Stock, orders.ErrInsufficientStock)
		}

		product.Stock -= detail.Quantity
		if err := tx.Save(&product).Error; err != nil {
			return fmt.Errorf("failed to reserve stock: %w", translateError(err))
		}

		model := &models.OrderDetailModel{}
		model.FromDomain(detail)
		if err := tx.Create(model).Error; err != nil {
			return fmt.Errorf("failed to create order detail: %w", translateError(err))
		}

		detail.ID = model.ID
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Created order detail with id ", detail.ID)
	return nil
}

func (r *gormOrderDetailRepository) UpdateWithStockAdjustment(ctx context.Context, detail *orders.OrderDetail) error {
	if err := detail.Validate(); err != nil {
		return fmt.Errorf("validation error: %w", err)
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.OrderDetailModel
		if err := tx.First(&existing, detail.ID).Error; err != nil {
			return fmt.Errorf("failed to fetch order detail %d: %w", detail.ID, translateError(err))
		}

		if detail.ProductID != existing.ProductID {
			return fmt.Errorf("order detail %d references product %d: %w", detail.ID, existing.ProductID, ErrConflict)
		}

		var product models.ProductModel
		if err := lockForUpdate(tx).First(&product, existing.ProductID).Error; err != nil {
			return fmt.Errorf("failed to fetch product %d: %w", existing.ProductID, translateError(err))
		}

		// Positive delta needs extra units, negative delta frees them.
		delta := detail.Quantity - existing.Quantity
		if delta > 0 && product.Stock < delta {
			return fmt.Errorf("product %d has %d units: %w", product.ID, product.Stock, orders.ErrInsufficientStock)
		}

		product.Stock -= delta
		if err := tx.Save(&product).Error; err != nil {
			return fmt.Errorf("failed to adjust stock: %w", translateError(err))
		}

		existing.FromDomain(detail)
		if err := tx.Save(&existing).Error; err != nil {
			return fmt.Errorf("failed to update order detail: %w", translateError(err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Updated order detail with id ", detail.ID)
	return nil
}

func (r *gormOrderDetailRepository) DeleteWithStockRestore(ctx context.Context, detailID uint) error {
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var existing models.OrderDetailModel
		if err := tx.First(&existing, detailID).Error; err != nil {
			return fmt.Errorf("failed to fetch order detail %d: %w", detailID, translateError(err))
		}

		var product models.ProductModel
		if err := lockForUpdate(tx).First(&product, existing.ProductID).Error; err != nil {
			return fmt.Errorf("failed to fetch product %d: %w", existing.ProductID, translateError(err))
		}

		product.Stock += existing.Quantity
		if err := tx.Save(&product).Error; err != nil {
			return fmt.Errorf("failed to restore stock: %w", translateError(err))
		}

		if err := tx.Delete(&models.OrderDetailModel{}, detailID).Error; err != nil {
			return fmt.Errorf("failed to delete order detail: %w", translateError(err))
		}
		return nil
	})
	if err != nil {
		return err
	}

	r.logger.Info("Deleted order detail with id ", detailID)
	return nil
}

func (r *gormOrderDetailRepository) ExistsByProductID(ctx context.Context, productID uint) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&models.OrderDetailModel{}).
		Where("product_id = ?", productID).
		Count(&count).Error
	if err != nil {
		return false, fmt.Errorf("failed to count order details for product %d: %w", productID, translateError(err))
	}
	return count > 0, nil
}
