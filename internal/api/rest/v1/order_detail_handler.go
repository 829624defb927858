package v1

import (
	"fmt"
	"net/http"

	"github.com/openmerch/commerce-api/internal/domain/orders"

	"github.com/gin-gonic/gin"
)

// OrderDetailHandler defines the interface for handling order detail operations
type OrderDetailHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type orderDetailHandler struct {
	orderDetailService orders.OrderDetailService
}

// NewOrderDetailHandler creates a new OrderDetailHandler
func NewOrderDetailHandler(orderDetailService orders.OrderDetailService) OrderDetailHandler {
	return &orderDetailHandler{orderDetailService: orderDetailService}
}

// List handles the GET request to list order details
// @Summary List order details
// @Tags OrderDetail
// @Accept json
// @Produce json
// @Param orderId query int false "Filter by order"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} OrderDetailResponse
// @Failure 400 {object} ErrorResponse
// @Router /order-details [get]
func (handler *orderDetailHandler) List(ctx *gin.Context) {
	query := orders.NewOrderDetailQuery()
	query.OrderID = uintQuery(ctx, "orderId")
	query.Limit = intQuery(ctx, "limit", query.Limit)
	query.Offset = intQuery(ctx, "offset", 0)

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	details, err := handler.orderDetailService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []OrderDetailResponse{}
	for _, detail := range details {
		listResponse = append(listResponse, newOrderDetailResponse(detail))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve an order detail by ID
// @Summary Retrieve an order detail by ID
// @Tags OrderDetail
// @Accept json
// @Produce json
// @Param id path int true "Order Detail ID"
// @Success 200 {object} OrderDetailResponse
// @Failure 404 {object} ErrorResponse
// @Router /order-details/{id} [get]
func (handler *orderDetailHandler) GetByID(ctx *gin.Context) {
	detailID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	detail, err := handler.orderDetailService.GetByID(ctx, detailID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newOrderDetailResponse(detail))
}

// Create handles the POST request to create an order detail
// @Summary Create an order detail
// @Description Add a product line to an order, reserving its stock. A zero price is filled in from the catalog; a non-zero price must match it.
// @Tags OrderDetail
// @Accept json
// @Produce json
// @Param requestBody body OrderDetailRequest true "Order Detail Data"
// @Success 201 {object} OrderDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /order-details [post]
func (handler *orderDetailHandler) Create(ctx *gin.Context) {
	var request OrderDetailRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid order detail data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	detail, err := handler.orderDetailService.Create(ctx, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newOrderDetailResponse(detail))
}

// UpdateByID handles the PUT request to update an order detail
// @Summary Update an order detail by ID
// @Description Change an order line, shifting product stock by the quantity delta.
// @Tags OrderDetail
// @Accept json
// @Produce json
// @Param id path int true "Order Detail ID"
// @Param requestBody body OrderDetailRequest true "Order Detail Data"
// @Success 200 {object} OrderDetailResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /order-details/{id} [put]
func (handler *orderDetailHandler) UpdateByID(ctx *gin.Context) {
	detailID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request OrderDetailRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid order detail data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	detail, err := handler.orderDetailService.UpdateByID(ctx, detailID, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newOrderDetailResponse(detail))
}

// DeleteByID handles the DELETE request to delete an order detail
// @Summary Delete an order detail by ID
// @Description Remove an order line, returning its quantity to product stock.
// @Tags OrderDetail
// @Accept json
// @Produce json
// @Param id path int true "Order Detail ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /order-details/{id} [delete]
func (handler *orderDetailHandler) DeleteByID(ctx *gin.Context) {
	detailID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := handler.orderDetailService.DeleteByID(ctx, detailID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
