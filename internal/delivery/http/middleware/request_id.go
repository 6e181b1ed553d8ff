package middleware

import (
	"form-data-backend/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

const RequestIDHeader = "X-Request-ID"

// maxRequestIDLen caps client-supplied ids echoed back in headers and logs
const maxRequestIDLen = 128

// RequestID honours an incoming X-Request-ID or generates one, and exposes it
// to handlers under domain.KeyRequestID.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if id == "" || len(id) > maxRequestIDLen {
			id = uuid.NewString()
		}

		c.Set(string(domain.KeyRequestID), id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

// GetRequestID returns the id set by RequestID, or "" outside that middleware
func GetRequestID(c *gin.Context) string {
	return c.GetString(string(domain.KeyRequestID))
}
