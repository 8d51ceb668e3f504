package repository

import (
	"context"

	"daily-priority-agent/internal/model"
)

// CSVRepository reads tasks from tabular files.
type CSVRepository interface {
	ReadTasks(ctx context.Context, opt ReadTasksOptions) ([]model.Task, error)
}

// ExtractorRepository turns unstructured text into tasks. Implementations never
// fail: upstream errors are logged and surface as an empty list.
type ExtractorRepository interface {
	ExtractTasks(ctx context.Context, opt ExtractTasksOptions) []model.Task
}
