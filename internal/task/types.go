package task

import (
	"io"
	"time"

	"daily-priority-agent/internal/model"
	"daily-priority-agent/internal/planner"
)

// PlanFromCSVInput is the input for planning from a task file.
// Reader takes precedence over Path. A zero Today means the current date.
type PlanFromCSVInput struct {
	Path   string
	Reader io.Reader
	Today  time.Time
}

// PlanFromTextInput is the input for planning from free text.
type PlanFromTextInput struct {
	RawText string
	Today   time.Time
}

// PlanFromTasksInput is the input for planning structured tasks.
type PlanFromTasksInput struct {
	Tasks []model.Task
	Today time.Time
}

// PlanOutput is the result of every planning operation.
type PlanOutput struct {
	Plan      planner.Plan
	TaskCount int // tasks that went into the plan
}

// ExtractInput is the input for free-text extraction.
type ExtractInput struct {
	RawText string
	Today   time.Time
}

// ExtractOutput holds the extracted tasks. Tasks is never nil.
type ExtractOutput struct {
	Tasks []model.Task
}

// ScheduleInput is the plan whose Top bucket gets time-blocked.
type ScheduleInput struct {
	Plan planner.Plan
}

// ScheduledBlock is one calendar event created for a Top task.
type ScheduledBlock struct {
	Title string    `json:"title"`
	Start time.Time `json:"start"`
	End   time.Time `json:"end"`
	Link  string    `json:"link,omitempty"`
}

// ScheduleOutput lists the created blocks and the Top tasks that did not fit.
type ScheduleOutput struct {
	Blocks  []ScheduledBlock `json:"blocks"`
	Skipped []string         `json:"skipped"`
}
