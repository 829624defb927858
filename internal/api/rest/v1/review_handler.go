package v1

import (
	"fmt"
	"net/http"

	"github.com/openmerch/commerce-api/internal/domain/reviews"

	"github.com/gin-gonic/gin"
)

// ReviewHandler defines the interface for handling review operations
type ReviewHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type reviewHandler struct {
	reviewService reviews.ReviewService
}

// NewReviewHandler creates a new ReviewHandler
func NewReviewHandler(reviewService reviews.ReviewService) ReviewHandler {
	return &reviewHandler{reviewService: reviewService}
}

// List handles the GET request to list reviews
// @Summary List reviews
// @Tags Review
// @Accept json
// @Produce json
// @Param productId query int false "Filter by product"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} ReviewResponse
// @Failure 400 {object} ErrorResponse
// @Router /reviews [get]
func (handler *reviewHandler) List(ctx *gin.Context) {
	query := reviews.NewReviewQuery()
	query.ProductID = uintQuery(ctx, "productId")
	query.Limit = intQuery(ctx, "limit", query.Limit)
	query.Offset = intQuery(ctx, "offset", 0)

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	reviewList, err := handler.reviewService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []ReviewResponse{}
	for _, review := range reviewList {
		listResponse = append(listResponse, newReviewResponse(review))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a review by ID
// @Summary Retrieve a review by ID
// @Tags Review
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Success 200 {object} ReviewResponse
// @Failure 404 {object} ErrorResponse
// @Router /reviews/{id} [get]
func (handler *reviewHandler) GetByID(ctx *gin.Context) {
	reviewID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	review, err := handler.reviewService.GetByID(ctx, reviewID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newReviewResponse(review))
}

// Create handles the POST request to create a review
// @Summary Create a review
// @Tags Review
// @Accept json
// @Produce json
// @Param requestBody body ReviewRequest true "Review Data"
// @Success 201 {object} ReviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reviews [post]
func (handler *reviewHandler) Create(ctx *gin.Context) {
	var request ReviewRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid review data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	review, err := handler.reviewService.Create(ctx, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newReviewResponse(review))
}

// UpdateByID handles the PUT request to update a review
// @Summary Update a review by ID
// @Tags Review
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Param requestBody body ReviewRequest true "Review Data"
// @Success 200 {object} ReviewResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /reviews/{id} [put]
func (handler *reviewHandler) UpdateByID(ctx *gin.Context) {
	reviewID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request ReviewRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid review data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	review, err := handler.reviewService.UpdateByID(ctx, reviewID, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newReviewResponse(review))
}

// DeleteByID handles the DELETE request to delete a review
// @Summary Delete a review by ID
// @Tags Review
// @Accept json
// @Produce json
// @Param id path int true "Review ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /reviews/{id} [delete]
func (handler *reviewHandler) DeleteByID(ctx *gin.Context) {
	reviewID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := handler.reviewService.DeleteByID(ctx, reviewID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
