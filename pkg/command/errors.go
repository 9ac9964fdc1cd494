package command

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownAlgorithm is returned when -a/--algorithm_name names no known algorithm.
	ErrUnknownAlgorithm = errors.New("unknown algorithm")

	// ErrMalformedArgument is returned when an option value is missing or unparsable.
	ErrMalformedArgument = errors.New("malformed argument")
)

// ArgumentError names the option token and value that failed to parse.
type ArgumentError struct {
	Option string // option token as written, e.g. "-e" or "--edit"
	Value  string // offending value, empty when the value was missing
	Err    error  // ErrUnknownAlgorithm or ErrMalformedArgument
}

func (e *ArgumentError) Error() string {
	if e.Value == "" && errors.Is(e.Err, ErrMalformedArgument) {
		return fmt.Sprintf("%s: option %s requires a value", e.Err, e.Option)
	}
	return fmt.Sprintf("%s: %q for option %s", e.Err, e.Value, e.Option)
}

func (e *ArgumentError) Unwrap() error {
	return e.Err
}
