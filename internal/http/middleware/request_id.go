package middleware

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"promptrelay.app/relay/common/id"
	"promptrelay.app/relay/common/logger"
)

const RequestIDHeader = "X-Request-Id"

// RequestID tags every request with a snowflake ID, echoed in the response header
// and attached to the request context's log fields.
func RequestID() gin.HandlerFunc {
	return func(c *gin.Context) {
		requestID := id.New()
		c.Header(RequestIDHeader, strconv.FormatInt(requestID, 10))

		ctx := logger.WithLogFields(c.Request.Context(), logger.LogFields{
			RequestID: logger.Ptr(requestID),
			Component: "relay.http",
		})
		c.Request = c.Request.WithContext(ctx)
		c.Next()
	}
}
