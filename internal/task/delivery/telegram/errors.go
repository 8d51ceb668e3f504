package telegram

import (
	"errors"

	"daily-priority-agent/internal/task"
)

// errorMessage returns a user-facing reply for a use-case error.
func errorMessage(err error) string {
	switch {
	case errors.Is(err, task.ErrEmptyInput), errors.Is(err, task.ErrNoTasks):
		return "No tasks found in your message. Send tasks separated by commas or new lines."
	default:
		return "Could not build a plan right now. Please try again."
	}
}
