package task

import "errors"

// Domain-specific errors for the task package.
var (
	ErrEmptyInput  = errors.New("input text is empty")
	ErrNoTasks     = errors.New("no tasks found in input")
	ErrReadSource  = errors.New("failed to read task source")
	ErrInvalidDate = errors.New("invalid date, expected YYYY-MM-DD")
)
