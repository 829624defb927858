package v1

import (
	"fmt"
	"net/http"

	"github.com/openmerch/commerce-api/internal/domain/catalog"

	"github.com/gin-gonic/gin"
)

// CategoryHandler defines the interface for handling category operations
type CategoryHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type categoryHandler struct {
	categoryService catalog.CategoryService
}

// NewCategoryHandler creates a new CategoryHandler
func NewCategoryHandler(categoryService catalog.CategoryService) CategoryHandler {
	return &categoryHandler{categoryService: categoryService}
}

// List handles the GET request to list categories
// @Summary List categories
// @Description Fetch categories with pagination and sorting options.
// @Tags Category
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Param sortBy query string false "Sort by a specific field"
// @Param sortOrder query string false "Sort order (asc/desc)"
// @Success 200 {array} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Router /categories [get]
func (handler *categoryHandler) List(ctx *gin.Context) {
	query := catalog.NewCategoryQuery()
	query.Limit = intQuery(ctx, "limit", query.Limit)
	query.Offset = intQuery(ctx, "offset", 0)
	query.SortBy = ctx.Query("sortBy")
	query.SortOrder = ctx.Query("sortOrder")

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	categories, err := handler.categoryService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []CategoryResponse{}
	for _, category := range categories {
		listResponse = append(listResponse, newCategoryResponse(category))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a category by ID
// @Summary Retrieve a category by ID
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Success 200 {object} CategoryResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [get]
func (handler *categoryHandler) GetByID(ctx *gin.Context) {
	categoryID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	category, err := handler.categoryService.GetByID(ctx, categoryID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newCategoryResponse(category))
}

// Create handles the POST request to create a category
// @Summary Create a category
// @Tags Category
// @Accept json
// @Produce json
// @Param requestBody body CategoryRequest true "Category Data"
// @Success 201 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /categories [post]
func (handler *categoryHandler) Create(ctx *gin.Context) {
	var request CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid category data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	category, err := handler.categoryService.Create(ctx, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newCategoryResponse(category))
}

// UpdateByID handles the PUT request to update a category
// @Summary Update a category by ID
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Param requestBody body CategoryRequest true "Category Data"
// @Success 200 {object} CategoryResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [put]
func (handler *categoryHandler) UpdateByID(ctx *gin.Context) {
	categoryID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request CategoryRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid category data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	category, err := handler.categoryService.UpdateByID(ctx, categoryID, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newCategoryResponse(category))
}

// DeleteByID handles the DELETE request to delete a category
// @Summary Delete a category by ID
// @Tags Category
// @Accept json
// @Produce json
// @Param id path int true "Category ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /categories/{id} [delete]
func (handler *categoryHandler) DeleteByID(ctx *gin.Context) {
	categoryID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := handler.categoryService.DeleteByID(ctx, categoryID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
