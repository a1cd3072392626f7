package errors

import "strings"

// ValidationError collects field-level failures in the order they were found.
type ValidationError struct {
	Messages []string
}

func (e *ValidationError) Error() string {
	return strings.Join(e.Messages, ", ")
}

func (e *ValidationError) Add(msg string) {
	e.Messages = append(e.Messages, msg)
}

// Err returns nil when nothing was added, so callers can write
// `return v.Err()`.
func (e *ValidationError) Err() error {
	if e == nil || len(e.Messages) == 0 {
		return nil
	}
	return e
}

func NewValidationError(messages ...string) *ValidationError {
	return &ValidationError{Messages: messages}
}
