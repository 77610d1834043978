package sv

import (
	"errors"
	"fmt"
)

var (
	// ErrNoValue is matched by every *AccessError.
	ErrNoValue = errors.New("status value: no value present")

	// ErrSentinelStatus is returned when a failure is built from the
	// success sentinel.
	ErrSentinelStatus = errors.New("status value: failure constructed with success sentinel")
)

// AccessError is raised when the value of a StatusValue without one is
// requested. Status holds the status of the offending instance.
type AccessError struct {
	Status any
}

func newAccessError(status any) *AccessError {
	return &AccessError{Status: status}
}

func (e *AccessError) Error() string {
	return fmt.Sprintf("%s (status: %v)", ErrNoValue, e.Status)
}

// Unwrap exposes ErrNoValue and, when the status is an error, the status.
func (e *AccessError) Unwrap() []error {
	if err, ok := e.Status.(error); ok && !IsNil(err) {
		return []error{ErrNoValue, err}
	}
	return []error{ErrNoValue}
}

// StatusOf extracts the status carried by an *AccessError anywhere in err's
// chain.
func StatusOf[S any](err error) (S, bool) {
	var ae *AccessError
	if errors.As(err, &ae) {
		s, ok := ae.Status.(S)
		return s, ok
	}
	var zero S
	return zero, false
}
