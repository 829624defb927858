package v1

import (
	"fmt"
	"net/http"

	"github.com/openmerch/commerce-api/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// ProductHandler defines the interface for handling product operations
type ProductHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type productHandler struct {
	productService catalog.ProductService
}

// NewProductHandler creates a new ProductHandler
func NewProductHandler(productService catalog.ProductService) ProductHandler {
	return &productHandler{productService: productService}
}

// List handles the GET request to list products
// @Summary List products
// @Description Fetch products with optional category filter, pagination and sorting.
// @Tags Product
// @Accept json
// @Produce json
// @Param categoryId query int false "Filter by category"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Router /products [get]
func (handler *productHandler) List(ctx *gin.Context) {
	query := catalog.NewProductQuery()
	query.CategoryID = uintQuery(ctx, "categoryId")
	query.Limit = intQuery(ctx, "limit", query.Limit)
	query.Offset = intQuery(ctx, "offset", 0)
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	products, err := handler.productService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []ProductResponse{}
	for _, product := range products {
		listResponse = append(listResponse, newProductResponse(product))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a product by ID
// @Summary Retrieve a product by ID
// @Tags Product
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 200 {object} ProductResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [get]
func (handler *productHandler) GetByID(ctx *gin.Context) {
	productID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	product, err := handler.productService.GetByID(ctx, productID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// Create handles the POST request to create a product
// @Summary Create a product
// @Tags Product
// @Accept json
// @Produce json
// @Param requestBody body ProductRequest true "Product Data"
// @Success 201 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products [post]
func (handler *productHandler) Create(ctx *gin.Context) {
	var request ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid product data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	product, err := handler.productService.Create(ctx, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newProductResponse(product))
}

// UpdateByID handles the PUT request to update a product
// @Summary Update a product by ID
// @Tags Product
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Param requestBody body ProductRequest true "Product Data"
// @Success 200 {object} ProductResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /products/{id} [put]
func (handler *productHandler) UpdateByID(ctx *gin.Context) {
	productID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request ProductRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid product data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	product, err := handler.productService.UpdateByID(ctx, productID, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newProductResponse(product))
}

// DeleteByID handles the DELETE request to delete a product
// @Summary Delete a product by ID
// @Description Delete a product. Products referenced by order details are kept and a conflict is returned.
// @Tags Product
// @Accept json
// @Produce json
// @Param id path int true "Product ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /products/{id} [delete]
func (handler *productHandler) DeleteByID(ctx *gin.Context) {
	productID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := handler.productService.DeleteByID(ctx, productID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
