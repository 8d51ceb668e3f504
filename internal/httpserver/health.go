package httpserver

import (
	"github.com/gin-gonic/gin"

	"daily-priority-agent/pkg/response"
)

// Service identity reported by the health endpoints.
const (
	HealthMessage = "Daily priorities, scored and bucketed"
	HealthVersion = "1.0.0"
	ServiceName   = "daily-priority-agent"
)

// healthCheck handles health check requests
// @Summary Health Check
// @Description Check if the API is healthy
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is healthy"
// @Router /health [get]
func (srv HTTPServer) healthCheck(c *gin.Context) {
	response.OK(c, healthBody("healthy"))
}

// readyCheck reports readiness and which optional components are wired
// @Summary Readiness Check
// @Description Check if the API is ready to serve traffic; lists optional components (llm, calendar, telegram)
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is ready"
// @Router /ready [get]
func (srv HTTPServer) readyCheck(c *gin.Context) {
	body := healthBody("ready")
	components := gin.H{"telegram": srv.telegramHandler != nil}
	for name, on := range srv.components {
		components[name] = on
	}
	body["components"] = components
	response.OK(c, body)
}

// liveCheck handles liveness check requests
// @Summary Liveness Check
// @Description Check if the API process is alive
// @Tags Health
// @Produce json
// @Success 200 {object} response.Resp "API is alive"
// @Router /live [get]
func (srv HTTPServer) liveCheck(c *gin.Context) {
	response.OK(c, healthBody("alive"))
}

func healthBody(status string) gin.H {
	return gin.H{
		"status":  status,
		"message": HealthMessage,
		"version": HealthVersion,
		"service": ServiceName,
	}
}
