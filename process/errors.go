package process

import "errors"

var (
	// ErrNotStarted is returned when the supplied command has no
	// underlying OS process yet.
	ErrNotStarted = errors.New("process not started")
)
