package v1

import (
	"fmt"
	"net/http"

	"github.com/openmerch/commerce-api/internal/domain/customers"

	"github.com/gin-gonic/gin"
)

// AddressHandler defines the interface for handling address operations
type AddressHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type addressHandler struct {
	addressService customers.AddressService
}

// NewAddressHandler creates a new AddressHandler
func NewAddressHandler(addressService customers.AddressService) AddressHandler {
	return &addressHandler{addressService: addressService}
}

// List handles the GET request to list addresses
// @Summary List addresses
// @Tags Address
// @Accept json
// @Produce json
// @Param clientId query int false "Filter by client"
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Router /addresses [get]
func (handler *addressHandler) List(ctx *gin.Context) {
	query := customers.NewAddressQuery()
	query.ClientID = uintQuery(ctx, "clientId")
	query.Limit = intQuery(ctx, "limit", query.Limit)
	query.Offset = intQuery(ctx, "offset", 0)

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	addresses, err := handler.addressService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []AddressResponse{}
	for _, address := range addresses {
		listResponse = append(listResponse, newAddressResponse(address))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve an address by ID
// @Summary Retrieve an address by ID
// @Tags Address
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Success 200 {object} AddressResponse
// @Failure 404 {object} ErrorResponse
// @Router /addresses/{id} [get]
func (handler *addressHandler) GetByID(ctx *gin.Context) {
	addressID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	address, err := handler.addressService.GetByID(ctx, addressID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAddressResponse(address))
}

// Create handles the POST request to create an address
// @Summary Create an address
// @Tags Address
// @Accept json
// @Produce json
// @Param requestBody body AddressRequest true "Address Data"
// @Success 201 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /addresses [post]
func (handler *addressHandler) Create(ctx *gin.Context) {
	var request AddressRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid address data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	address, err := handler.addressService.Create(ctx, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newAddressResponse(address))
}

// UpdateByID handles the PUT request to update an address
// @Summary Update an address by ID
// @Tags Address
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Param requestBody body AddressRequest true "Address Data"
// @Success 200 {object} AddressResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /addresses/{id} [put]
func (handler *addressHandler) UpdateByID(ctx *gin.Context) {
	addressID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request AddressRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid address data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	address, err := handler.addressService.UpdateByID(ctx, addressID, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newAddressResponse(address))
}

// DeleteByID handles the DELETE request to delete an address
// @Summary Delete an address by ID
// @Tags Address
// @Accept json
// @Produce json
// @Param id path int true "Address ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Router /addresses/{id} [delete]
func (handler *addressHandler) DeleteByID(ctx *gin.Context) {
	addressID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := handler.addressService.DeleteByID(ctx, addressID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
