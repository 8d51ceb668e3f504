package csvfile

import (
	"daily-priority-agent/internal/planner"
	"daily-priority-agent/internal/task/repository"
	pkgLog "daily-priority-agent/pkg/log"
)

// Column names of a task file. Header matching is case-insensitive.
const (
	ColTitle       = "title"
	ColDescription = "description"
	ColDeadline    = "deadline"
	ColEffort      = "effort"
	ColImpact      = "impact"
	ColBlocked     = "blocked"
	ColTags        = "tags"
)

type implRepository struct {
	cfg planner.Config
	l   pkgLog.Logger
}

// New creates a CSV task repository. cfg supplies effort sizes and the impact map.
func New(cfg planner.Config, l pkgLog.Logger) repository.CSVRepository {
	return &implRepository{
		cfg: cfg,
		l:   l,
	}
}
