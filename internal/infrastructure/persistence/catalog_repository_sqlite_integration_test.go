//go:build integration
// +build integration

package persistence

import (
	"context"
	"errors"
	"testing"

	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence/models"
	"github.com/openmerch/commerce-api/internal/pkg/config"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func TestCategorySqliteRepository_Create(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category := &catalog.Category{Name: "Electronics"}
	err := tc.CategoryRepo.Create(context.Background(), category)
	require.NoError(t, err)
	assert.NotZero(t, category.ID)

	var created models.CategoryModel
	require.NoError(t, tc.DB.First(&created, category.ID).Error)
	assert.Equal(t, "Electronics", created.Name)
}

func TestCategorySqliteRepository_Create_DuplicateName(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	CreateTestCategory(t, tc, "Books")

	err := tc.CategoryRepo.Create(context.Background(), &catalog.Category{Name: "Books"})
	assert.Error(t, err)
	assert.True(t, errors.Is(err, ErrConflict))
}

func TestCategorySqliteRepository_Create_ValidationError(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	err := tc.CategoryRepo.Create(context.Background(), &catalog.Category{})
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "validation")
}

func TestCategorySqliteRepository_List_WithSortingAndPagination(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	CreateTestCategory(t, tc, "Books")
	CreateTestCategory(t, tc, "Apparel")
	CreateTestCategory(t, tc, "Electronics")

	query := catalog.NewCategoryQuery()
	query.SortBy = "name"
	query.SortOrder = "asc"
	listed, err := tc.CategoryRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, listed, 3)
	assert.Equal(t, "Apparel", listed[0].Name)

	query = catalog.NewCategoryQuery()
	query.SortBy = "name"
	query.Limit = 1
	query.Offset = 1
	paged, err := tc.CategoryRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, paged, 1)
	assert.Equal(t, "Books", paged[0].Name)
}

func TestCategorySqliteRepository_GetByID_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category, err := tc.CategoryRepo.GetByID(context.Background(), 9999)
	assert.Nil(t, category)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestCategorySqliteRepository_UpdateByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category := CreateTestCategory(t, tc, "Books")
	category.Name = "Used Books"
	require.NoError(t, tc.CategoryRepo.UpdateByID(context.Background(), category))

	updated, err := tc.CategoryRepo.GetByID(context.Background(), category.ID)
	require.NoError(t, err)
	assert.Equal(t, "Used Books", updated.Name)
}

func TestCategorySqliteRepository_DeleteByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category := CreateTestCategory(t, tc, "Books")
	require.NoError(t, tc.CategoryRepo.DeleteByID(context.Background(), category.ID))

	var deleted models.CategoryModel
	err := tc.DB.First(&deleted, category.ID).Error
	assert.Equal(t, gorm.ErrRecordNotFound, err)

	err = tc.CategoryRepo.DeleteByID(context.Background(), category.ID)
	assert.True(t, errors.Is(err, ErrNotFound))
}

func TestProductSqliteRepository_Create_LoadsCategory(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category := CreateTestCategory(t, tc, "Electronics")
	product := &catalog.Product{
		Name:       "Mechanical Keyboard",
		Price:      129.99,
		Stock:      10,
		CategoryID: category.ID,
	}
	require.NoError(t, tc.ProductRepo.Create(context.Background(), product))
	assert.NotZero(t, product.ID)
	require.NotNil(t, product.Category)
	assert.Equal(t, "Electronics", product.Category.Name)
}

func TestProductSqliteRepository_Create_MissingCategory(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	product := &catalog.Product{
		Name:       "Orphan",
		Price:      1.00,
		Stock:      1,
		CategoryID: 9999,
	}
	err := tc.ProductRepo.Create(context.Background(), product)
	assert.Error(t, err)
}

func TestProductSqliteRepository_List_FilterByCategory(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	electronics := CreateTestCategory(t, tc, "Electronics")
	books := CreateTestCategory(t, tc, "Books")
	CreateTestProduct(t, tc, electronics.ID, "Keyboard", 129.99, 10)
	CreateTestProduct(t, tc, electronics.ID, "Mouse", 49.99, 20)
	CreateTestProduct(t, tc, books.ID, "Go Cookbook", 39.99, 5)

	query := catalog.NewProductQuery()
	query.CategoryID = electronics.ID
	listed, err := tc.ProductRepo.List(context.Background(), query)
	require.NoError(t, err)
	assert.Len(t, listed, 2)

	query = catalog.NewProductQuery()
	query.SortBy = "price"
	query.SortOrder = "desc"
	sorted, err := tc.ProductRepo.List(context.Background(), query)
	require.NoError(t, err)
	require.Len(t, sorted, 3)
	assert.Equal(t, "Keyboard", sorted[0].Name)
}

func TestProductSqliteRepository_UpdateByID(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	category := CreateTestCategory(t, tc, "Electronics")
	product := CreateTestProduct(t, tc, category.ID, "Keyboard", 129.99, 10)

	product.Price = 99.99
	product.Stock = 8
	require.NoError(t, tc.ProductRepo.UpdateByID(context.Background(), product))

	updated, err := tc.ProductRepo.GetByID(context.Background(), product.ID)
	require.NoError(t, err)
	assert.Equal(t, 99.99, updated.Price)
	assert.Equal(t, 8, updated.Stock)
}

func TestProductSqliteRepository_DeleteByID_NotFound(t *testing.T) {
	tc := SetupTestDB(t, config.SqliteDbType)

	err := tc.ProductRepo.DeleteByID(context.Background(), 9999)
	assert.True(t, errors.Is(err, ErrNotFound))
}
