package xmr

import (
	"errors"
)

var (
	// ErrInvalidAmountFormat is returned when an amount given to a
	// conversion function is not a recognized numeric representation.
	ErrInvalidAmountFormat = errors.New("invalid amount format")

	// ErrDivisionByZero is returned by Divide when the divisor is zero.
	ErrDivisionByZero = errors.New("division by zero")
)
