package http

import (
	"github.com/gin-gonic/gin"

	"daily-priority-agent/internal/planner"
	"daily-priority-agent/internal/task"
	"daily-priority-agent/pkg/log"
)

// Handler is the public interface for the task HTTP delivery layer.
type Handler interface {
	Prioritize(c *gin.Context)
	CreatePlan(c *gin.Context)
}

type handler struct {
	l   log.Logger
	uc  task.UseCase
	cfg planner.Config
}

// New creates a new HTTP handler for the task domain. cfg labels effort and impact in responses.
func New(l log.Logger, uc task.UseCase, cfg planner.Config) Handler {
	return &handler{
		l:   l,
		uc:  uc,
		cfg: cfg,
	}
}
