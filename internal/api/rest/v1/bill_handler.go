package v1

import (
	"fmt"
	"net/http"

	"github.com/openmerch/commerce-api/internal/domain/billing"

	"github.com/gin-gonic/gin"
)

// BillHandler defines the interface for handling bill operations
type BillHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type billHandler struct {
	billService billing.BillService
}

// NewBillHandler creates a new BillHandler
func NewBillHandler(billService billing.BillService) BillHandler {
	return &billHandler{billService: billService}
}

// List handles the GET request to list bills
// @Summary List bills
// @Tags Bill
// @Accept json
// @Produce json
// @Param clientId query int false "Filter by client"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} BillResponse
// @Failure 400 {object} ErrorResponse
// @Router /bills [get]
func (handler *billHandler) List(ctx *gin.Context) {
	query := billing.NewBillQuery()
	query.ClientID = uintQuery(ctx, "clientId")
	query.Limit = intQuery(ctx, "limit", query.Limit)
	query.Offset = intQuery(ctx, "offset", 0)

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	bills, err := handler.billService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []BillResponse{}
	for _, bill := range bills {
		listResponse = append(listResponse, newBillResponse(bill))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a bill by ID
// @Summary Retrieve a bill by ID
// @Tags Bill
// @Accept json
// @Produce json
// @Param id path int true "Bill ID"
// @Success 200 {object} BillResponse
// @Failure 404 {object} ErrorResponse
// @Router /bills/{id} [get]
func (handler *billHandler) GetByID(ctx *gin.Context) {
	billID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	bill, err := handler.billService.GetByID(ctx, billID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newBillResponse(bill))
}

// Create handles the POST request to create a bill
// @Summary Create a bill
// @Tags Bill
// @Accept json
// @Produce json
// @Param requestBody body BillRequest true "Bill Data"
// @Success 201 {object} BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /bills [post]
func (handler *billHandler) Create(ctx *gin.Context) {
	var request BillRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid bill data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	bill, err := handler.billService.Create(ctx, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newBillResponse(bill))
}

// UpdateByID handles the PUT request to update a bill
// @Summary Update a bill by ID
// @Tags Bill
// @Accept json
// @Produce json
// @Param id path int true "Bill ID"
// @Param requestBody body BillRequest true "Bill Data"
// @Success 200 {object} BillResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /bills/{id} [put]
func (handler *billHandler) UpdateByID(ctx *gin.Context) {
	billID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request BillRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid bill data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	bill, err := handler.billService.UpdateByID(ctx, billID, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newBillResponse(bill))
}

// DeleteByID handles the DELETE request to delete a bill
// @Summary Delete a bill by ID
// @Tags Bill
// @Accept json
// @Produce json
// @Param id path int true "Bill ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /bills/{id} [delete]
func (handler *billHandler) DeleteByID(ctx *gin.Context) {
	billID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := handler.billService.DeleteByID(ctx, billID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
