package v1

import (
	"errors"
	"net/http"
	"strings"

	"github.com/openmerch/commerce-api/internal/domain/cart"
	"github.com/openmerch/commerce-api/internal/domain/catalog"
	"github.com/openmerch/commerce-api/internal/domain/orders"
	"github.com/openmerch/commerce-api/internal/infrastructure/persistence"

	"github.com/gin-gonic/gin"
)

// errStatus maps service errors onto HTTP status codes. Unrecognized errors
// are treated as internal.
func errStatus(err error) int {
	switch {
	case errors.Is(err, persistence.ErrNotFound):
		return http.StatusNotFound
	case errors.Is(err, persistence.ErrConflict),
		errors.Is(err, catalog.ErrProductHasSales),
		errors.Is(err, orders.ErrInsufficientStock):
		return http.StatusConflict
	case errors.Is(err, orders.ErrPriceMismatch):
		return http.StatusBadRequest
	case errors.Is(err, cart.ErrStoreUnavailable):
		return http.StatusServiceUnavailable
	case strings.Contains(err.Error(), "validation"):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

func writeError(ctx *gin.Context, err error) {
	ctx.JSON(errStatus(err), ErrorResponse{Message: err.Error()})
}
