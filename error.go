package huggingface

import (
	"fmt"
)

////////////////////////////////////////////////////////////////////////////////
// GLOBALS

const (
	ErrSuccess Err = iota
	ErrBadParameter
	ErrNotFound
)

////////////////////////////////////////////////////////////////////////////////
// TYPES

// Err is an error code for usage errors. Errors from the inference API
// are returned as they are received and never carry a code.
type Err int

////////////////////////////////////////////////////////////////////////////////
// PUBLIC METHODS

func (e Err) Error() string {
	switch e {
	case ErrSuccess:
		return "success"
	case ErrBadParameter:
		return "bad parameter"
	case ErrNotFound:
		return "not found"
	}
	return fmt.Sprintf("error code %d", int(e))
}

// With returns the error annotated with the arguments
func (e Err) With(args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprint(args...))
}

// Withf returns the error annotated with a formatted message
func (e Err) Withf(format string, args ...any) error {
	return fmt.Errorf("%w: %s", e, fmt.Sprintf(format, args...))
}
