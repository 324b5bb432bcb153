package scheduling

import "fmt"

// ValidationError reports malformed input: bad date or time strings, duplicate
// slots within a day, start >= end, missing required fields. Never retried.
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("validation error: %s", e.Message)
}

func NewValidationError(format string, args ...any) error {
	return &ValidationError{Message: fmt.Sprintf(format, args...)}
}

// NotFoundError reports an unknown type, day, id or slot index.
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("not found: %s", e.Message)
}

func NewNotFoundError(format string, args ...any) error {
	return &NotFoundError{Message: fmt.Sprintf(format, args...)}
}

// ConflictError reports a slot already reserved or a duplicate open reschedule
// request. It carries enough detail for the caller to retry against a fresh
// availability read.
type ConflictError struct {
	Message string
	Type    string
	Date    string
	SlotKey string
}

func (e *ConflictError) Error() string {
	if e.SlotKey != "" {
		return fmt.Sprintf("conflict: %s (type=%s date=%s slot=%s)", e.Message, e.Type, e.Date, e.SlotKey)
	}
	return fmt.Sprintf("conflict: %s", e.Message)
}

// InvalidTransitionError reports a status change not permitted from the
// current state. It is never silently coerced.
type InvalidTransitionError struct {
	From string
	To   string
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("invalid transition from %q to %q", e.From, e.To)
}
