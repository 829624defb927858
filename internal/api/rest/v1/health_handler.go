package v1

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/go-redis/redis/v8"
	"gorm.io/gorm"
)

// HealthHandler defines the interface for the health endpoint
type HealthHandler interface {
	Check(ctx *gin.Context)
}

type healthHandler struct {
	db    *gorm.DB
	redis *redis.Client
}

// NewHealthHandler creates a new HealthHandler. redis may be nil when no
// cache is configured.
func NewHealthHandler(db *gorm.DB, redis *redis.Client) HealthHandler {
	return &healthHandler{db: db, redis: redis}
}

// Check handles the GET request for service health
// @Summary Report API health
// @Description Report the state of the database and the cache. Returns 503 when the database is unreachable.
// @Tags Health
// @Accept json
// @Produce json
// @Success 200 {object} HealthResponse
// @Failure 503 {object} HealthResponse
// @Router /health [get]
func (handler *healthHandler) Check(ctx *gin.Context) {
	response := HealthResponse{Status: "ok", Database: "up", Cache: "disabled"}
	status := http.StatusOK

	sqlDB, err := handler.db.DB()
	if err != nil || sqlDB.PingContext(ctx) != nil {
		response.Status = "degraded"
		response.Database = "down"
		status = http.StatusServiceUnavailable
	}

	if handler.redis != nil {
		response.Cache = "up"
		if err := handler.redis.Ping(ctx).Err(); err != nil {
			response.Status = "degraded"
			response.Cache = "down"
		}
	}

	ctx.JSON(status, response)
}
