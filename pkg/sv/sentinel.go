package sv

// Sentinel builds StatusValues where one reserved status means success.
// A value is present exactly when the status equals the sentinel.
type Sentinel[S comparable, V any] struct {
	success S
}

func WithSentinel[S comparable, V any](success S) Sentinel[S, V] {
	return Sentinel[S, V]{success: success}
}

func (s Sentinel[S, V]) SuccessStatus() S {
	return s.success
}

func (s Sentinel[S, V]) Succeed(v V) StatusValue[S, V] {
	return Success(s.success, v)
}

// Fail refuses the sentinel itself with ErrSentinelStatus.
func (s Sentinel[S, V]) Fail(status S) (StatusValue[S, V], error) {
	if statusEqual(status, s.success) {
		return StatusValue[S, V]{}, ErrSentinelStatus
	}
	return Failure[S, V](status), nil
}

func (s Sentinel[S, V]) MustFail(status S) StatusValue[S, V] {
	r, err := s.Fail(status)
	if err != nil {
		panic(err)
	}
	return r
}

// Of keeps v only when status is the sentinel.
func (s Sentinel[S, V]) Of(status S, v V) StatusValue[S, V] {
	if statusEqual(status, s.success) {
		return Success(status, v)
	}
	return Failure[S, V](status)
}

func (s Sentinel[S, V]) IsSuccess(r StatusValue[S, V]) bool {
	return statusEqual(r.status, s.success)
}
