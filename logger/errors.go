package logger

import "errors"

var (
	// ErrInvalidLogLevel is returned when a negative
	// verbosity level is supplied.
	ErrInvalidLogLevel = errors.New("invalid log level")
)
