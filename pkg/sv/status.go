package sv

import (
	"errors"
	"fmt"
)

// Code is a general purpose status. It satisfies error so a failing Code can
// be returned or wrapped directly.
type Code int

const (
	OK Code = iota
	Canceled
	Unknown
	InvalidArgument
	NotFound
	AlreadyExists
	DeadlineExceeded
	Internal
	Unavailable
)

var codeNames = map[Code]string{
	OK:               "ok",
	Canceled:         "canceled",
	Unknown:          "unknown",
	InvalidArgument:  "invalid argument",
	NotFound:         "not found",
	AlreadyExists:    "already exists",
	DeadlineExceeded: "deadline exceeded",
	Internal:         "internal",
	Unavailable:      "unavailable",
}

func (c Code) String() string {
	if name, ok := codeNames[c]; ok {
		return name
	}
	return fmt.Sprintf("code(%d)", int(c))
}

func (c Code) Error() string {
	return c.String()
}

// CodeOf maps an error to a Code. nil is OK, context errors map to
// Canceled and DeadlineExceeded, a Code anywhere in the chain is returned
// as is, and everything else is Unknown.
func CodeOf(err error) Code {
	if IsNil(err) {
		return OK
	}

	var c Code
	if errors.As(err, &c) {
		return c
	}

	if cc, ok := cancellationCode(err); ok {
		return cc
	}
	return Unknown
}
