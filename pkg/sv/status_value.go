package sv

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

// StatusValue holds a status and, optionally, a value.
// The zero StatusValue is a failure carrying the zero status.
type StatusValue[S comparable, V any] struct {
	id        uuid.UUID
	createdAt time.Time
	status    S
	value     V
	hasValue  bool
}

// Failure returns a StatusValue without a value. Any status is accepted,
// including one the caller treats as success; see Sentinel for the checked
// variant.
func Failure[S comparable, V any](s S) StatusValue[S, V] {
	return StatusValue[S, V]{
		status:    s,
		hasValue:  false,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Success returns a StatusValue carrying s and v.
func Success[S comparable, V any](s S, v V) StatusValue[S, V] {
	return StatusValue[S, V]{
		status:    s,
		value:     v,
		hasValue:  true,
		createdAt: time.Now().UTC(),
		id:        uuid.New(),
	}
}

// Pack rebuilds a StatusValue from the parts returned by Unpack.
func Pack[S comparable, V any](s S, v V, ok bool) StatusValue[S, V] {
	if ok {
		return Success(s, v)
	}
	return Failure[S, V](s)
}

// FailFrom converts a failure into a failure of another value type,
// keeping the status and trace metadata.
func FailFrom[S comparable, In, Out any](from StatusValue[S, In]) StatusValue[S, Out] {
	return StatusValue[S, Out]{
		status:    from.status,
		hasValue:  false,
		createdAt: from.createdAt,
		id:        from.id,
	}
}

func (r StatusValue[S, V]) Status() S {
	return r.status
}

func (r StatusValue[S, V]) HasValue() bool {
	return r.hasValue
}

// Ok reports whether r holds a value.
func (r StatusValue[S, V]) Ok() bool {
	return r.hasValue
}

// Value returns the held value. It panics with an *AccessError carrying
// the status when r holds no value.
func (r StatusValue[S, V]) Value() V {
	if !r.hasValue {
		panic(newAccessError(r.status))
	}
	return r.value
}

func (r StatusValue[S, V]) Get() (V, bool) {
	return r.value, r.hasValue
}

func (r StatusValue[S, V]) ValueOr(def V) V {
	if r.hasValue {
		return r.value
	}
	return def
}

// ValueErr is the non-panicking form of Value.
func (r StatusValue[S, V]) ValueErr() (V, error) {
	if !r.hasValue {
		var zero V
		return zero, newAccessError(r.status)
	}
	return r.value, nil
}

// Unpack returns every part needed to rebuild r with Pack.
func (r StatusValue[S, V]) Unpack() (S, V, bool) {
	return r.status, r.value, r.hasValue
}

func (r StatusValue[S, V]) Id() uuid.UUID {
	return r.id
}

// CreatedAt time creation (UTC)
func (r StatusValue[S, V]) CreatedAt() time.Time {
	return r.createdAt
}

func (r StatusValue[S, V]) String() string {
	if r.hasValue {
		return fmt.Sprintf("ok(%v: %v)", r.status, r.value)
	}
	return fmt.Sprintf("fail(%v)", r.status)
}

// Take moves the content out of src. The returned value is what src held;
// src is left as a failure with the same status and no value.
func Take[S comparable, V any](src *StatusValue[S, V]) StatusValue[S, V] {
	out := *src
	*src = StatusValue[S, V]{
		status:    out.status,
		createdAt: out.createdAt,
		id:        out.id,
	}
	return out
}
