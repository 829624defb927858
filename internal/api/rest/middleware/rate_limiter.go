package middleware

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/openmerch/commerce-api/internal/pkg/config"
	"github.com/openmerch/commerce-api/internal/pkg/logger"

	"github.com/gin-gonic/gin"
)

// Counter counts requests per key within a fixed window. Increment returns
// the count after this request and the time left in the current window.
type Counter interface {
	Increment(ctx context.Context, key string, window time.Duration) (int64, time.Duration, error)
}

// RateLimit enforces a per-client-IP fixed window limit. With the limiter
// disabled or no counter available the middleware passes every request
// through. Counter failures fail open: a broken Redis must not take the API
// down with it.
func RateLimit(counter Counter, settings config.RateLimitSettings, log logger.Logger) gin.HandlerFunc {
	if !settings.Enabled || counter == nil {
		return func(ctx *gin.Context) {
			ctx.Next()
		}
	}

	window := time.Duration(settings.WindowSeconds) * time.Second
	limit := int64(settings.Requests)

	return func(ctx *gin.Context) {
		count, remaining, err := counter.Increment(ctx, ctx.ClientIP(), window)
		if err != nil {
			log.Warn(fmt.Sprintf("rate limiter unavailable, allowing request: %v", err))
			ctx.Next()
			return
		}

		if count > limit {
			retryAfter := int(remaining.Seconds())
			if retryAfter < 1 {
				retryAfter = 1
			}
			ctx.Header("Retry-After", fmt.Sprintf("%d", retryAfter))
			ctx.AbortWithStatusJSON(http.StatusTooManyRequests, gin.H{
				"message": "rate limit exceeded, retry later",
			})
			return
		}

		ctx.Next()
	}
}
