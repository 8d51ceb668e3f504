package usecase

import (
	"context"
	"strings"

	"daily-priority-agent/internal/task"
	"daily-priority-agent/internal/task/repository"
)

// ExtractTasks turns free text into tasks. Upstream failures yield an empty list, not an error.
func (uc *implUseCase) ExtractTasks(ctx context.Context, input task.ExtractInput) (task.ExtractOutput, error) {
	if strings.TrimSpace(input.RawText) == "" {
		return task.ExtractOutput{}, task.ErrEmptyInput
	}

	tasks := uc.extractor.ExtractTasks(ctx, repository.ExtractTasksOptions{
		RawText: input.RawText,
		Today:   uc.today(input.Today),
	})
	uc.l.Infof(ctx, "task.usecase.ExtractTasks: input_length=%d tasks=%d", len(input.RawText), len(tasks))

	return task.ExtractOutput{Tasks: tasks}, nil
}
