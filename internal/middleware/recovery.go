package middleware

import (
	"github.com/gin-gonic/gin"

	"daily-priority-agent/pkg/response"
)

// Recovery turns a panic in a handler into a logged 500 with the standard envelope.
func (mw Middleware) Recovery() gin.HandlerFunc {
	return gin.CustomRecoveryWithWriter(nil, func(c *gin.Context, recovered any) {
		mw.l.Errorf(c.Request.Context(), "middleware.Recovery: panic on %s %s: %v",
			c.Request.Method, c.Request.URL.Path, recovered)
		response.InternalError(c)
		c.Abort()
	})
}
