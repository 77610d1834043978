package sv

import "time"

type StatusProvider[S comparable] interface {
	// Status returns the status given at construction
	Status() S
	// CreatedAt time creation (UTC)
	CreatedAt() time.Time
}

// ValueProvider defines an interface for types that may hold a value
type ValueProvider[V any] interface {
	// HasValue returns true if a value is present
	HasValue() bool
	// Value returns the value or panics when none is present
	Value() V
	// Get returns the value and whether it is present
	Get() (V, bool)
}

// WithStatus combines both views of a StatusValue
type WithStatus[S comparable, V any] interface {
	StatusProvider[S]
	ValueProvider[V]
}

var _ WithStatus[Code, int] = StatusValue[Code, int]{}
