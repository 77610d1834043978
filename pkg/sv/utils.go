package sv

import (
	"context"
	"errors"
	"reflect"
)

// IsNil reports whether i is nil or a nil pointer stored in an interface.
func IsNil(i any) bool {
	if i == nil {
		return true
	}
	v := reflect.ValueOf(i)
	return v.Kind() == reflect.Ptr && v.IsNil()
}

// IsCancellationError reports whether a context error sits anywhere in
// err's chain. A Canceled Code on its own does not count.
func IsCancellationError(err error) bool {
	_, ok := cancellationCode(err)
	return ok
}

func cancellationCode(err error) (Code, bool) {
	switch {
	case errors.Is(err, context.DeadlineExceeded):
		return DeadlineExceeded, true
	case errors.Is(err, context.Canceled):
		return Canceled, true
	}
	return Unknown, false
}
