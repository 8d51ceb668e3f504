package middleware

import (
	"time"

	"github.com/gin-gonic/gin"
)

// AccessLog logs one line per request after it completes.
func (mw Middleware) AccessLog() gin.HandlerFunc {
	return func(c *gin.Context) {
		start := time.Now()
		c.Next()

		ctx := c.Request.Context()
		status := c.Writer.Status()
		if status >= 500 {
			mw.l.Errorf(ctx, "%s %s %d %s ip=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.ClientIP())
			return
		}
		mw.l.Infof(ctx, "%s %s %d %s ip=%s", c.Request.Method, c.Request.URL.Path, status, time.Since(start), c.ClientIP())
	}
}
