package v1

import (
	"fmt"
	"net/http"

	"github.com/openmerch/commerce-api/internal/domain/orders"

	"github.com/gin-gonic/gin"
)

// OrderHandler defines the interface for handling order operations
type OrderHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type orderHandler struct {
	orderService orders.OrderService
}

// NewOrderHandler creates a new OrderHandler
func NewOrderHandler(orderService orders.OrderService) OrderHandler {
	return &orderHandler{orderService: orderService}
}

// List handles the GET request to list orders
// @Summary List orders
// @Tags Order
// @Accept json
// @Produce json
// @Param clientId query int false "Filter by client"
// @Param status query string false "Filter by status"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Router /orders [get]
func (handler *orderHandler) List(ctx *gin.Context) {
	query := orders.NewOrderQuery()
	query.ClientID = uintQuery(ctx, "clientId")
	query.Status = ctx.Query("status")
	query.Limit = intQuery(ctx, "limit", query.Limit)
	query.Offset = intQuery(ctx, "offset", 0)

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	orderList, err := handler.orderService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []OrderResponse{}
	for _, order := range orderList {
		listResponse = append(listResponse, newOrderResponse(order))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve an order by ID
// @Summary Retrieve an order by ID
// @Tags Order
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 200 {object} OrderResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [get]
func (handler *orderHandler) GetByID(ctx *gin.Context) {
	orderID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	order, err := handler.orderService.GetByID(ctx, orderID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// Create handles the POST request to create an order
// @Summary Create an order
// @Description Create an order for a client. Date defaults to now and status to pending.
// @Tags Order
// @Accept json
// @Produce json
// @Param requestBody body OrderRequest true "Order Data"
// @Success 201 {object} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders [post]
func (handler *orderHandler) Create(ctx *gin.Context) {
	var request OrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid order data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	order, err := handler.orderService.Create(ctx, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newOrderResponse(order))
}

// UpdateByID handles the PUT request to update an order
// @Summary Update an order by ID
// @Tags Order
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Param requestBody body OrderRequest true "Order Data"
// @Success 200 {object} OrderResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [put]
func (handler *orderHandler) UpdateByID(ctx *gin.Context) {
	orderID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request OrderRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid order data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	order, err := handler.orderService.UpdateByID(ctx, orderID, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newOrderResponse(order))
}

// DeleteByID handles the DELETE request to delete an order
// @Summary Delete an order by ID
// @Tags Order
// @Accept json
// @Produce json
// @Param id path int true "Order ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /orders/{id} [delete]
func (handler *orderHandler) DeleteByID(ctx *gin.Context) {
	orderID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := handler.orderService.DeleteByID(ctx, orderID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
