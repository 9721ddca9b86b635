package xlogs

import (
	"errors"
	"strings"
)

var (
	// ErrInvalidArgument reports a bad logger name or name pattern.
	ErrInvalidArgument = errors.New("xlogs: invalid argument")
	// ErrInvalidLevel reports an unrecognized level name.
	ErrInvalidLevel = errors.New("xlogs: invalid level")
)

const (
	msgNameRequired   = "A name must be specified."
	msgInvalidPattern = "Parameter `name` must be a string or regular expression."
)

// argumentError carries the user-facing message while matching
// ErrInvalidArgument under errors.Is.
type argumentError struct {
	msg   string
	cause error
}

func (e *argumentError) Error() string { return e.msg }

func (e *argumentError) Unwrap() []error {
	if e.cause == nil {
		return []error{ErrInvalidArgument}
	}
	return []error{ErrInvalidArgument, e.cause}
}

func invalidArgument(msg string, cause error) error {
	return &argumentError{msg: msg, cause: cause}
}

// InvalidLevelError is returned by ParseLevel and the strict stream operators.
type InvalidLevelError struct {
	Input string
}

func (e *InvalidLevelError) Error() string {
	names := make([]string, len(order))
	for i, l := range order {
		names[i] = string(l)
	}
	return "The specified level is invalid. Valid levels include " + strings.Join(names, ", ")
}

func (e *InvalidLevelError) Unwrap() error { return ErrInvalidLevel }
