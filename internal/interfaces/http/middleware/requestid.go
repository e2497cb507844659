package middleware

import (
	"github.com/gin-gonic/gin"

	"accountsforge/internal/shared/id"
)

const requestIDHeader = "X-Request-ID"

// RequestID tags every request with a short random ID unless the client
// already supplied one. The ID is echoed in the response header so support
// requests can be matched against server logs.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := c.GetHeader(requestIDHeader)
		if requestID == "" {
			requestID = id.MustGenerate(id.DefaultLength)
		}

		c.Request.Header.Set(requestIDHeader, requestID)
		c.Writer.Header().Set(requestIDHeader, requestID)

		c.Next()
	}
}
