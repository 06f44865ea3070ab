// Package middleware provides the gin middleware of the cargo pack service.
package middleware

import (
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// RequestIDHeader carries the request id in both directions.
const RequestIDHeader = "X-Request-ID"

// maxRequestIDLength bounds client supplied ids.
const maxRequestIDLength = 128

// ContextKey names values stored on the gin context by this package.
type ContextKey string

// RequestIDKey holds the request id on the gin context.
const RequestIDKey ContextKey = "request_id"

// RequestID tags every request with an id that is echoed in the response,
// attached to log lines and stored with the optimization run. A client id is
// kept when it is short printable ASCII without spaces; anything else is
// replaced by a UUID v4.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		id := c.GetHeader(RequestIDHeader)
		if !validRequestID(id) {
			id = uuid.NewString()
		}
		c.Set(string(RequestIDKey), id)
		c.Header(RequestIDHeader, id)
		c.Next()
	}
}

func validRequestID(id string) bool {
	if id == "" || len(id) > maxRequestIDLength {
		return false
	}
	for i := 0; i < len(id); i++ {
		if id[i] <= ' ' || id[i] > '~' {
			return false
		}
	}
	return true
}

// GetRequestID returns the id set by RequestID, or "" outside that middleware.
func GetRequestID(c *gin.Context) string {
	id, _ := c.Value(string(RequestIDKey)).(string)
	return id
}
