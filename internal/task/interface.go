package task

import (
	"context"
)

// UseCase defines the business logic interface for the task domain.
type UseCase interface {
	// PlanFromCSV reads a task file and builds the day plan.
	PlanFromCSV(ctx context.Context, input PlanFromCSVInput) (PlanOutput, error)

	// PlanFromText extracts tasks from free text and builds the day plan.
	PlanFromText(ctx context.Context, input PlanFromTextInput) (PlanOutput, error)

	// PlanFromTasks builds the day plan from already structured tasks.
	PlanFromTasks(ctx context.Context, input PlanFromTasksInput) (PlanOutput, error)

	// ExtractTasks turns free text into tasks without planning them.
	ExtractTasks(ctx context.Context, input ExtractInput) (ExtractOutput, error)

	// ScheduleTop time-blocks the Top bucket on the calendar. No-op when no calendar is configured.
	ScheduleTop(ctx context.Context, input ScheduleInput) (ScheduleOutput, error)
}
