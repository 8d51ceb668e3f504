package gemini

import "time"

const (
	DefaultModel   = "gemini-1.5-flash"
	DefaultAPIURL  = "https://generativelanguage.googleapis.com/v1beta"
	DefaultTimeout = 30 * time.Second

	// JSONMIMEType asks the model for a bare JSON body instead of fenced markdown.
	JSONMIMEType = "application/json"
)
