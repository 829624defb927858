package v1

import (
	"fmt"
	"net/http"

	"github.com/openmerch/commerce-api/internal/domain/customers"

	"github.com/gin-gonic/gin"
)

// ClientHandler defines the interface for handling client operations
type ClientHandler interface {
	List(ctx *gin.Context)
	GetByID(ctx *gin.Context)
	Create(ctx *gin.Context)
	UpdateByID(ctx *gin.Context)
	DeleteByID(ctx *gin.Context)
}

type clientHandler struct {
	clientService customers.ClientService
}

// NewClientHandler creates a new ClientHandler
func NewClientHandler(clientService customers.ClientService) ClientHandler {
	return &clientHandler{clientService: clientService}
}

// List handles the GET request to list clients
// @Summary List clients
// @Tags Client
// @Accept json
// @Produce json
// @Param limit query int false "Limit the number of results"
// @Param offset query int false "Offset the results"
// @Success 200 {array} ClientResponse
// @Failure 400 {object} ErrorResponse
// @Router /clients [get]
func (handler *clientHandler) List(ctx *gin.Context) {
	query := customers.NewClientQuery()
	query.Limit = intQuery(ctx, "limit", query.Limit)
	query.Offset = intQuery(ctx, "offset", 0)

	if err := query.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	clients, err := handler.clientService.List(ctx, query)
	if err != nil {
		writeError(ctx, err)
		return
	}

	listResponse := []ClientResponse{}
	for _, client := range clients {
		listResponse = append(listResponse, newClientResponse(client))
	}

	ctx.JSON(http.StatusOK, listResponse)
}

// GetByID handles the GET request to retrieve a client by ID
// @Summary Retrieve a client by ID
// @Tags Client
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Success 200 {object} ClientResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id} [get]
func (handler *clientHandler) GetByID(ctx *gin.Context) {
	clientID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	client, err := handler.clientService.GetByID(ctx, clientID)
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newClientResponse(client))
}

// Create handles the POST request to create a client
// @Summary Create a client
// @Tags Client
// @Accept json
// @Produce json
// @Param requestBody body ClientRequest true "Client Data"
// @Success 201 {object} ClientResponse
// @Failure 400 {object} ErrorResponse
// @Router /clients [post]
func (handler *clientHandler) Create(ctx *gin.Context) {
	var request ClientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid client data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	client, err := handler.clientService.Create(ctx, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, newClientResponse(client))
}

// UpdateByID handles the PUT request to update a client
// @Summary Update a client by ID
// @Tags Client
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Param requestBody body ClientRequest true "Client Data"
// @Success 200 {object} ClientResponse
// @Failure 400 {object} ErrorResponse
// @Failure 404 {object} ErrorResponse
// @Router /clients/{id} [put]
func (handler *clientHandler) UpdateByID(ctx *gin.Context) {
	clientID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	var request ClientRequest
	if err := ctx.ShouldBindJSON(&request); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{
			Message: fmt.Sprintf("invalid client data: %v", err.Error()),
		})
		return
	}

	if err := request.Validate(); err != nil {
		ctx.JSON(http.StatusBadRequest, ErrorResponse{Message: err.Error()})
		return
	}

	client, err := handler.clientService.UpdateByID(ctx, clientID, request.ToDomain())
	if err != nil {
		writeError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, newClientResponse(client))
}

// DeleteByID handles the DELETE request to delete a client
// @Summary Delete a client by ID
// @Tags Client
// @Accept json
// @Produce json
// @Param id path int true "Client ID"
// @Success 204 "No Content"
// @Failure 404 {object} ErrorResponse
// @Failure 409 {object} ErrorResponse
// @Router /clients/{id} [delete]
func (handler *clientHandler) DeleteByID(ctx *gin.Context) {
	clientID, ok := pathID(ctx, "id")
	if !ok {
		return
	}

	if err := handler.clientService.DeleteByID(ctx, clientID); err != nil {
		writeError(ctx, err)
		return
	}

	ctx.Status(http.StatusNoContent)
}
