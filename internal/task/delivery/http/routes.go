package http

import (
	"github.com/gin-gonic/gin"

	"daily-priority-agent/internal/middleware"
)

// RegisterRoutes maps the task endpoints. rg is the /api group.
func RegisterRoutes(rg *gin.RouterGroup, h Handler, mw middleware.Middleware) {
	rg.POST("/prioritize", mw.RateLimit(), h.Prioritize)

	v1 := rg.Group("/v1")
	{
		v1.POST("/plans", mw.RateLimit(), h.CreatePlan)
	}
}
