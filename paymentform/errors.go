package paymentform

import "errors"

var (
	// ErrFieldNotFound is returned when a form has no field with
	// the requested identifier.
	ErrFieldNotFound = errors.New("form does not have field")
)
