package sv

import "reflect"

// Equal reports whether a and b hold the same status and, when both hold a
// value, the same value. An instance with a value never equals one without.
// Id and CreatedAt are ignored.
func Equal[S, V comparable](a, b StatusValue[S, V]) bool {
	return EqualFunc(a, b, func(x, y V) bool { return x == y })
}

// EqualFunc is Equal for values that are not comparable with ==.
func EqualFunc[S comparable, V any](a, b StatusValue[S, V], eq func(x, y V) bool) bool {
	if a.hasValue != b.hasValue || !statusEqual(a.status, b.status) {
		return false
	}
	if !a.hasValue {
		return true
	}
	return eq(a.value, b.value)
}

// SameValue is the looser comparison: two instances with values are equal
// when their values are, whatever their statuses. Two instances without a
// value compare by status.
func SameValue[S, V comparable](a, b StatusValue[S, V]) bool {
	if a.hasValue != b.hasValue {
		return false
	}
	if a.hasValue {
		return a.value == b.value
	}
	return statusEqual(a.status, b.status)
}

// statusEqual is a == b, except that an interface status holding an
// uncomparable dynamic value (a slice-backed error, say) falls back to
// reflect.DeepEqual instead of panicking.
func statusEqual[S comparable](a, b S) (eq bool) {
	defer func() {
		if recover() != nil {
			eq = reflect.DeepEqual(a, b)
		}
	}()
	return a == b
}
