package llmprovider

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrAllProvidersFailed    = errors.New("all providers failed")
	ErrNoProvidersConfigured = errors.New("no providers configured")
	// ErrInvalidRequest is returned for a nil request or one without messages.
	ErrInvalidRequest = errors.New("invalid request")
)

// ProviderError records one provider's failure in the fallback chain.
type ProviderError struct {
	Provider string
	Err      error
}

func (e *ProviderError) Error() string {
	return fmt.Sprintf("provider %s: %v", e.Provider, e.Err)
}

func (e *ProviderError) Unwrap() error {
	return e.Err
}

// ChainError is returned when no provider produced a response. It wraps
// ErrAllProvidersFailed and every ProviderError in the order tried.
type ChainError struct {
	Failures []*ProviderError
}

func (e *ChainError) Error() string {
	parts := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		parts = append(parts, f.Error())
	}
	return fmt.Sprintf("%s: %s", ErrAllProvidersFailed, strings.Join(parts, "; "))
}

func (e *ChainError) Unwrap() []error {
	errs := make([]error, 0, len(e.Failures)+1)
	errs = append(errs, ErrAllProvidersFailed)
	for _, f := range e.Failures {
		errs = append(errs, f)
	}
	return errs
}

// Tried lists the provider names in the order they failed.
func (e *ChainError) Tried() []string {
	names := make([]string, 0, len(e.Failures))
	for _, f := range e.Failures {
		names = append(names, f.Provider)
	}
	return names
}
