package model

import "time"

// Impact levels of a task.
const (
	ImpactLow    = 1
	ImpactMedium = 2
	ImpactHigh   = 3
)

// Task is a single unit of work to prioritize. Values are built once per
// invocation by a task source and are never mutated afterwards.
type Task struct {
	Title       string
	Description string
	Deadline    *time.Time // calendar date, nil when the task has no deadline
	EffortMin   int
	Impact      int
	Blocked     bool
	Tags        []string
}

// Date truncates t to a calendar date in UTC.
func Date(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}

// DatePtr is Date for optional deadlines.
func DatePtr(t time.Time) *time.Time {
	d := Date(t)
	return &d
}
