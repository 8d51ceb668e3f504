package http

import (
	"errors"
	"net/http"

	"daily-priority-agent/internal/task"
)

// mapError translates use-case errors into an HTTP status. Unknown errors are 500.
func (h *handler) mapError(err error) int {
	switch {
	case errors.Is(err, task.ErrEmptyInput), errors.Is(err, task.ErrInvalidDate):
		return http.StatusBadRequest
	case errors.Is(err, task.ErrNoTasks):
		return http.StatusUnprocessableEntity
	default:
		return http.StatusInternalServerError
	}
}
