package brokerbook

import "fmt"

// ValidationError reports malformed or missing input: a non-positive
// quantity, an empty required field, an inverted date range, or a value that
// could not be parsed. It is always detected before any mutation occurs.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string { return e.Reason }

// validationf builds a ValidationError from a format string.
func validationf(format string, args ...any) ValidationError {
	return ValidationError{Reason: fmt.Sprintf(format, args...)}
}

// UnknownClientError reports a reference to an unregistered client where a
// registered one is required. A missing client is not always an error: the
// synthetic market counterparty is never registered, and Lookup reports
// absence through its boolean instead.
type UnknownClientError struct {
	ID string
}

func (e UnknownClientError) Error() string {
	return fmt.Sprintf("unknown client %q", e.ID)
}
