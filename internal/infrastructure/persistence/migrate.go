package persistence

import (
	"fmt"

	"github.com/openmerch/commerce-api/internal/infrastructure/persistence/models"

	"gorm.io/gorm"
)

// AutoMigrateAll creates or updates the schema for every commerce table.
// Called by the rest-api binary and the dbinit command before anything else
// touches the database; both abort when it fails.
func AutoMigrateAll(db *gorm.DB) error {
	err := db.AutoMigrate(
		&models.CategoryModel{},
		&models.ProductModel{},
		&models.ClientModel{},
		&models.AddressModel{},
		&models.OrderModel{},
		&models.OrderDetailModel{},
		&models.BillModel{},
		&models.ReviewModel{},
	)
	if err != nil {
		return fmt.Errorf("failed to migrate schema: %w", err)
	}
	return nil
}
