package booking

import "fmt"

// AccessDeniedError indicates the principal is not authorized for the booking.
type AccessDeniedError struct {
	Reason string
}

func (e AccessDeniedError) Error() string {
	return fmt.Sprintf("access denied: %s", e.Reason)
}

// NotFoundError indicates the referenced entity does not exist.
type NotFoundError struct {
	Entity string
	ID     string
}

func (e NotFoundError) Error() string {
	return fmt.Sprintf("%s %s not found", e.Entity, e.ID)
}

// InvalidSignatureError indicates the payment gateway signature failed verification.
type InvalidSignatureError struct{}

func (e InvalidSignatureError) Error() string {
	return "payment signature verification failed"
}

// ValidationError indicates missing or malformed input.
type ValidationError struct {
	Reason string
}

func (e ValidationError) Error() string {
	return fmt.Sprintf("validation failed: %s", e.Reason)
}

// ConflictError indicates the booking is not in a state that allows the
// requested operation, e.g. completing a booking twice.
type ConflictError struct {
	Reason string
}

func (e ConflictError) Error() string {
	return fmt.Sprintf("conflict: %s", e.Reason)
}
