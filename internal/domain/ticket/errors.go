package ticket

import "errors"

var (
	ErrTicketNotFound       = errors.New("ticket not found")
	ErrTransitionNotAllowed = errors.New("state transition not allowed")
	ErrTicketClosed         = errors.New("ticket is closed")
	ErrVersionConflict      = errors.New("ticket was modified concurrently")
)

// FieldError reports an invalid entity attribute.
type FieldError struct {
	Field  string
	Reason string
}

func (e *FieldError) Error() string {
	return e.Field + " " + e.Reason
}

func fieldError(field, reason string) error {
	return &FieldError{Field: field, Reason: reason}
}
