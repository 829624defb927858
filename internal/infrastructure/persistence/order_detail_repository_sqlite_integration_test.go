//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/openmerch/commerce-api/internal/domain/orders"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence/models"
	"github.com/openmerch/commerce-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestOrderDetailSqliteRepository_CreateWithStockReservation(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category := CreateTestCategory(t, tc, "Electronics")
	product := CreateTestProduct(t, tc, category.ID, "Keyboard", 129.99, 10)
	client := CreateTestClient(t, tc)
	order := CreateTestOrder(t, tc, client.ID)

	detail := &orders.OrderDetail{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  3,
		Price:     129.99,
	}
	require.NoError(t, tc.OrderDetailRepo.CreateWithStockReservation(context.Background(), detail))
	assert.NotZero(t, detail.ID)

	var productModel models.ProductModel
	require.NoError(t, tc.DB.First(&productModel, product.ID).Error)
	assert.Equal(t, 7, productModel.Stock)
}

func TestOrderDetailSqliteRepository_CreateWithStockReservation_Insufficient(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category := CreateTestCategory(t, tc, "Electronics")
	product := CreateTestProduct(t, tc, category.ID, "Keyboard", 129.99, 2)
	client := CreateTestClient(t, tc)
	order := CreateTestOrder(t, tc, client.ID)

	detail := &orders.OrderDetail{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  5,
		Price:     129.99,
	}
	err := tc.OrderDetailRepo.CreateWithStockReservation(context.Background(), detail)
	assert.True(t, errors.Is(err, orders.ErrInsufficientStock))

	// Nothing was inserted and stock is untouched.
	var count int64
	require.NoError(t, tc.DB.Model(&models.OrderDetailModel{}).Count(&count).Error)
	assert.Zero(t, count)

	var productModel models.ProductModel
	require.NoError(t, tc.DB.First(&productModel, product.ID).Error)
	assert.Equal(t, 2, productModel.Stock)
}

func TestOrderDetailSqliteRepository_UpdateWithStockAdjustment(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category := CreateTestCategory(t, tc, "Electronics")
	product := CreateTestProduct(t, tc, category.ID, "Keyboard", 129.99, 10)
	client := CreateTestClient(t, tc)
	order := CreateTestOrder(t, tc, client.ID)

	detail := &orders.OrderDetail{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  3,
		Price:     129.99,
	}
	require.NoError(t, tc.OrderDetailRepo.CreateWithStockReservation(context.Background(), detail))

	// Raising the quantity consumes the delta.
	detail.Quantity = 5
	require.NoError(t, tc.OrderDetailRepo.UpdateWithStockAdjustment(context.Background(), detail))

	var productModel models.ProductModel
	require.NoError(t, tc.DB.First(&productModel, product.ID).Error)
	assert.Equal(t, 5, productModel.Stock)

	// Lowering it gives units back.
	detail.Quantity = 1
	require.NoError(t, tc.OrderDetailRepo.UpdateWithStockAdjustment(context.Background(), detail))

	require.NoError(t, tc.DB.First(&productModel, product.ID).Error)
	assert.Equal(t, 9, productModel.Stock)
}

func TestOrderDetailSqliteRepository_UpdateWithStockAdjustment_Insufficient(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category := CreateTestCategory(t, tc, "Electronics")
	product := CreateTestProduct(t, tc, category.ID, "Keyboard", 129.99, 4)
	client := CreateTestClient(t, tc)
	order := CreateTestOrder(t, tc, client.ID)

	detail := &orders.OrderDetail{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  3,
		Price:     129.99,
	}
	require.NoError(t, tc.OrderDetailRepo.CreateWithStockReservation(context.Background(), detail))

	detail.Quantity = 10
	err := tc.OrderDetailRepo.UpdateWithStockAdjustment(context.Background(), detail)
	assert.True(t, errors.Is(err, orders.ErrInsufficientStock))

	// The failed update rolled back both rows.
	fetched, err := tc.OrderDetailRepo.GetByID(context.Background(), detail.ID)
	require.NoError(t, err)
	assert.Equal(t, 3, fetched.Quantity)

	var productModel models.ProductModel
	require.NoError(t, tc.DB.First(&productModel, product.ID).Error)
	assert.Equal(t, 1, productModel.Stock)
}

func TestOrderDetailSqliteRepository_DeleteWithStockRestore(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category := CreateTestCategory(t, tc, "Electronics")
	product := CreateTestProduct(t, tc, category.ID, "Keyboard", 129.99, 10)
	client := CreateTestClient(t, tc)
	order := CreateTestOrder(t, tc, client.ID)

	detail := &orders.OrderDetail{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  4,
		Price:     129.99,
	}
	require.NoError(t, tc.OrderDetailRepo.CreateWithStockReservation(context.Background(), detail))
	require.NoError(t, tc.OrderDetailRepo.DeleteWithStockRestore(context.Background(), detail.ID))

	var deleted models.OrderDetailModel
	err := tc.DB.First(&deleted, detail.ID).Error
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	var productModel models.ProductModel
	require.NoError(t, tc.DB.First(&productModel, product.ID).Error)
	assert.Equal(t, 10, productModel.Stock)
}

func TestOrderDetailSqliteRepository_DeleteWithStockRestore_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	err := tc.OrderDetailRepo.DeleteWithStockRestore(context.Background(), 9999)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestOrderDetailSqliteRepository_List_FilterByOrder(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category := CreateTestCategory(t, tc, "Electronics")
	product := CreateTestProduct(t, tc, category.ID, "Keyboard", 129.99, 100)
	client := CreateTestClient(t, tc)
	order1 := CreateTestOrder(t, tc, client.ID)
	order2 := CreateTestOrder(t, tc, client.ID)

	for _, orderID := range []uint{order1.ID, order1.ID, order2.ID} {
		detail := &orders.OrderDetail{
			OrderID:   orderID,
			ProductID: product.ID,
			Quantity:  1,
			Price:     129.99,
		}
		require.NoError(t, tc.OrderDetailRepo.CreateWithStockReservation(context.Background(), detail))
	}

	query := orders.NewOrderDetailQuery()
	query.OrderID = order1.ID
	listed, err := tc.OrderDetailRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, listed, 2)
}

func TestOrderDetailSqliteRepository_ExistsByProductID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category := CreateTestCategory(t, tc, "Electronics")
	product := CreateTestProduct(t, tc, category.ID, "Keyboard", 129.99, 10)
	client := CreateTestClient(t, tc)
	order := CreateTestOrder(t, tc, client.ID)

	exists, err := tc.OrderDetailRepo.ExistsByProductID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.False(t, exists)

	detail := &orders.OrderDetail{
		OrderID:   order.ID,
		ProductID: product.ID,
		Quantity:  1,
		Price:     129.99,
	}
	require.NoError(t, tc.OrderDetailRepo.CreateWithStockReservation(context.Background(), detail))

	exists, err = tc.OrderDetailRepo.ExistsByProductID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.True(t, exists)
}
