//go:build integration
// +build integration

package persistence

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/openmerch/commerce-api/internal/domain/billing"
	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/domain/customers"
	"github.com/openmerch/commerce-api/internal/domain/orders"
	"github.com/openmerch/commerce-api/internal/domain/reviews"
	"github.com/openmerch/commerce-api/internal/pkg/config"
	"github.com/openmerch/commerce-api/internal/pkg/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// TestContext holds the test database and every repository
type TestContext struct {
	DB              *gorm.DB
	CategoryRepo    catalog.CategoryRepository
	ProductRepo     catalog.ProductRepository
	ClientRepo      customers.ClientRepository
	AddressRepo     customers.AddressRepository
	OrderRepo       orders.OrderRepository
	OrderDetailRepo orders.OrderDetailRepository
	BillRepo        billing.BillRepository
	ReviewRepo      reviews.ReviewRepository
}

// SetupTestDB initializes a migrated test database with automatic cleanup
func SetupTestDB(t *testing.T, dbType string) *TestContext {
	t.Helper()

	var settings config.DatabaseSettings
	var cleanupFunc func()

	switch dbType {
	case config.SqliteDbType:
		settings = config.DatabaseSettings{
			Type: config.SqliteDbType,
			DSN:  ":memory:",
		}
		cleanupFunc = func() {
			// SQLite in-memory cleanup is automatic
		}

	case config.PostgresDbType:
		uniqueDBName := "test_" + strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
		settings = config.DatabaseSettings{
			Type: config.PostgresDbType,
			DSN:  "user=postgres password=postgres host=localhost port=5432 sslmode=disable",
			Name: uniqueDBName,
		}
		cleanupFunc = func() {
			adminDSN := "user=postgres password=postgres host=localhost port=5432 dbname=postgres sslmode=disable"
			_ = DropDatabase(adminDSN, uniqueDBName)
		}

	default:
		t.Fatalf("Unsupported database type: %s", dbType)
	}

	db, err := NewDBConnection(settings)
	require.NoError(t, err, "Failed to create database connection")

	t.Cleanup(func() {
		_ = CloseDB(db)
		cleanupFunc()
	})

	err = AutoMigrateAll(db)
	require.NoError(t, err, "Failed to migrate schema")

	log := testutil.SetupTestLogger(t)

	categoryRepo, err := NewGormCategoryRepository(db, log)
	require.NoError(t, err)
	productRepo, err := NewGormProductRepository(db, log)
	require.NoError(t, err)
	clientRepo, err := NewGormClientRepository(db, log)
	require.NoError(t, err)
	addressRepo, err := NewGormAddressRepository(db, log)
	require.NoError(t, err)
	orderRepo, err := NewGormOrderRepository(db, log)
	require.NoError(t, err)
	orderDetailRepo, err := NewGormOrderDetailRepository(db, log)
	require.NoError(t, err)
	billRepo, err := NewGormBillRepository(db, log)
	require.NoError(t, err)
	reviewRepo, err := NewGormReviewRepository(db, log)
	require.NoError(t, err)

	return &TestContext{
		DB:              db,
		CategoryRepo:    categoryRepo,
		ProductRepo:     productRepo,
		ClientRepo:      clientRepo,
		AddressRepo:     addressRepo,
		OrderRepo:       orderRepo,
		OrderDetailRepo: orderDetailRepo,
		BillRepo:        billRepo,
		ReviewRepo:      reviewRepo,
	}
}

// CreateTestCategory inserts a category and returns it with the assigned ID
func CreateTestCategory(t *testing.T, tc *TestContext, name string) *catalog.Category {
	t.Helper()

	category := &catalog.Category{Name: name}
	require.NoError(t, tc.CategoryRepo.Create(context.Background(), category))
	return category
}

// CreateTestProduct inserts a product under the given category
func CreateTestProduct(t *testing.T, tc *TestContext, categoryID uint, name string, price float64, stock int) *catalog.Product {
	t.Helper()

	product := &catalog.Product{
		Name:       name,
		Price:      price,
		Stock:      stock,
		CategoryID: categoryID,
	}
	require.NoError(t, tc.ProductRepo.Create(context.Background(), product))
	return product
}

// CreateTestClient inserts a client with default contact details
func CreateTestClient(t *testing.T, tc *TestContext) *customers.Client {
	t.Helper()

	client := &customers.Client{
		Name:      "Ada",
		Lastname:  "Lovelace",
		Email:     "ada@example.com",
		Telephone: "5551234567",
	}
	require.NoError(t, tc.ClientRepo.Create(context.Background(), client))
	return client
}

// CreateTestOrder inserts a pending order for the given client
func CreateTestOrder(t *testing.T, tc *TestContext, clientID uint) *orders.Order {
	t.Helper()

	order := orders.NewOrder(clientID, 0, orders.DeliveryStandard)
	order.Date = time.Now().UTC()
	require.NoError(t, tc.OrderRepo.Create(context.Background(), order))
	return order
}
