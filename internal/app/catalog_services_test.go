//go:build unit
// +build unit

package app

import (
	"context"
	"errors"
	"testing"

	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/pkg/testutil"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupProductService(t *testing.T) (catalog.ProductService, *fakeProductRepo, *fakeOrderDetailRepo, *fakeCache) {
	t.Helper()

	productRepo := newFakeProductRepo()
	orderDetailRepo := newFakeOrderDetailRepo()
	cache := newFakeCache()
	log := testutil.SetupTestLogger(t)

	service, err := NewProductService(productRepo, orderDetailRepo, cache, log)
	require.NoError(t, err)
	return service, productRepo, orderDetailRepo, cache
}

func TestProductService_GetByID_CachesSecondRead(t *testing.T) {
	service, productRepo, _, _ := setupProductService(t)
	product := seedProduct(t, productRepo, "Keyboard", 129.99, 10)

	readsBefore := productRepo.reads

	first, err := service.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", first.Name)

	second, err := service.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)

	// Only the first read should have reached the repository.
	assert.Equal(t, readsBefore+1, productRepo.reads)
}

func TestProductService_List_CachesSecondRead(t *testing.T) {
	service, productRepo, _, _ := setupProductService(t)
	seedProduct(t, productRepo, "Keyboard", 129.99, 10)
	seedProduct(t, productRepo, "Mouse", 49.99, 20)

	query := catalog.NewProductQuery()

	first, err := service.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, first, 2)

	readsAfterFirst := productRepo.reads

	second, err := service.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, second, 2)
	assert.Equal(t, readsAfterFirst, productRepo.reads)
}

func TestProductService_Update_InvalidatesCache(t *testing.T) {
	service, productRepo, _, cache := setupProductService(t)
	product := seedProduct(t, productRepo, "Keyboard", 129.99, 10)

	_, err := service.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	require.NotZero(t, cache.len())

	product.Price = 99.99
	_, err = service.UpdateByID(context.Background(), product.ID, product)
	require.NoError(t, err)

	// A fresh read must see the new price, not the cached one.
	updated, err := service.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 99.99, updated.Price)
}

func TestProductService_DeleteByID_RefusedWhenSold(t *testing.T) {
	service, productRepo, orderDetailRepo, _ := setupProductService(t)
	product := seedProduct(t, productRepo, "Keyboard", 129.99, 10)

	orderDetailRepo.productsWithSales[product.ID] = true

	err := service.DeleteByID(context.Background(), product.ID)
	assert.True(t, errors.Is(err, catalog.ErrProductHasSales))

	// The product is still there.
	_, err = service.GetByID(context.Background(), product.ID)
	assert.NoError(t, err)
}

func TestProductService_DeleteByID_Unsold(t *testing.T) {
	service, productRepo, _, _ := setupProductService(t)
	product := seedProduct(t, productRepo, "Keyboard", 129.99, 10)

	require.NoError(t, service.DeleteByID(context.Background(), product.ID))

	_, err := productRepo.GetByID(context.Background(), product.ID)
	assert.Error(t, err)
}

func TestProductService_NilCache(t *testing.T) {
	productRepo := newFakeProductRepo()
	orderDetailRepo := newFakeOrderDetailRepo()
	log := testutil.SetupTestLogger(t)

	service, err := NewProductService(productRepo, orderDetailRepo, nil, log)
	require.NoError(t, err)

	product := seedProduct(t, productRepo, "Keyboard", 129.99, 10)

	fetched, err := service.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, "Keyboard", fetched.Name)
}
