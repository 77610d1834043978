package sv

// Maybe is a StatusValue whose status is a Code.
type Maybe[V any] = StatusValue[Code, V]

func Some[V any](v V) Maybe[V] {
	return Success(OK, v)
}

func None[V any]() Maybe[V] {
	return Failure[Code, V](NotFound)
}

// FromError returns Some(v) when err is nil or maps to OK, and otherwise a
// failure carrying CodeOf(err).
func FromError[V any](v V, err error) Maybe[V] {
	code := CodeOf(err)
	if code == OK {
		return Some(v)
	}
	return Failure[Code, V](code)
}
