package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader is the header carrying the request correlation id.
const RequestIDHeader = "X-Request-ID"

// RequestIDKey is the gin context key under which the id is stored.
const RequestIDKey = "request_id"

// RequestID propagates the caller's X-Request-ID, minting a new one when the
// header is absent. The id is echoed back on the response and stored on the
// context for handlers and log lines.
func RequestID() gin.HandlerFunc {
	return func(ctx *gin.Context) {
		requestID := ctx.GetHeader(RequestIDHeader)
		if requestID == "" {
			requestID = uuid.NewString()
		}

		ctx.Set(RequestIDKey, requestID)
		ctx.Writer.Header().Set(RequestIDHeader, requestID)

		ctx.Next()
	}
}
