package repository

import (
	"io"
	"time"
)

// ReadTasksOptions holds the parameters for reading a task file.
// Reader takes precedence over Path when both are set.
type ReadTasksOptions struct {
	Path   string
	Reader io.Reader
}

// ExtractTasksOptions holds the parameters for free-text task extraction.
type ExtractTasksOptions struct {
	RawText string
	Today   time.Time // reference date for relative deadlines
}
