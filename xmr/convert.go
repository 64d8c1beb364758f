package xmr

import (
	"fmt"
	"math"
	"math/big"
	"strconv"
	"strings"
)

const (
	// AtomicUnitsPerXMR is the number of atomic units in one XMR.
	AtomicUnitsPerXMR int64 = 1_000_000_000_000

	// AtomicUnitsPerCentinero is the number of atomic units in one
	// centinero, the legacy denomination of older trade messages.
	AtomicUnitsPerCentinero int64 = 10_000
)

// auPerXMR is AtomicUnitsPerXMR in big.Int form. Treated as a constant,
// never mutated.
var auPerXMR = big.NewInt(AtomicUnitsPerXMR)

// ToAtomicUnits converts a decimal XMR amount, given as a string,
// to atomic units.
//
// The amount may carry a sign and any number of integer and fractional
// digits; surrounding whitespace is ignored. The digit runs on both sides
// of the decimal point are joined and parsed as a single
// arbitrary-precision integer, then scaled, so the conversion is exact
// for amounts with up to 12 fractional digits. Fractional digits beyond
// the atomic-unit resolution are truncated.
//
// Amounts that are not plain decimal numbers, including the empty
// string and exponent notation, fail with ErrInvalidAmountFormat.
func ToAtomicUnits(amountXMR string) (*AtomicUnits, error) {
	var (
		digits  = strings.TrimSpace(amountXMR)
		fracLen int
	)

	if i := strings.IndexByte(digits, '.'); i >= 0 {
		fracLen = len(digits) - i - 1
		digits = digits[:i] + digits[i+1:]
	}

	if digits == "" {
		return nil, fmt.Errorf("%w: empty amount", ErrInvalidAmountFormat)
	}

	const base = 10

	intVal, ok := new(big.Int).SetString(digits, base)
	if !ok {
		return nil, fmt.Errorf(
			"%w: %q is not a decimal number",
			ErrInvalidAmountFormat,
			amountXMR,
		)
	}

	divisor := new(big.Int).Exp(
		big.NewInt(base),
		big.NewInt(int64(fracLen)),
		nil,
	)

	// Multiplying before dividing keeps the division exact for up to 12
	// fractional digits; beyond that the quotient truncates toward zero.
	au := intVal.Mul(intVal, auPerXMR)
	au.Quo(au, divisor)

	return &AtomicUnits{bigInt: au}, nil
}

// Float64ToAtomicUnits converts a decimal XMR amount, given as a float64,
// to atomic units.
//
// The amount is rendered with the shortest decimal representation that
// round-trips through float64 and converted with ToAtomicUnits. Callers
// must not pass values carrying more significant digits than float64
// preserves. NaN and infinities fail with ErrInvalidAmountFormat.
func Float64ToAtomicUnits(amountXMR float64) (*AtomicUnits, error) {
	if math.IsNaN(amountXMR) || math.IsInf(amountXMR, 0) {
		return nil, fmt.Errorf(
			"%w: %v is not a finite number",
			ErrInvalidAmountFormat,
			amountXMR,
		)
	}

	return ToAtomicUnits(strconv.FormatFloat(amountXMR, 'f', -1, 64))
}

// CentinerosToAtomicUnits converts an amount denominated in centineros
// to atomic units.
func CentinerosToAtomicUnits(centineros int64) *AtomicUnits {
	return &AtomicUnits{
		bigInt: new(big.Int).Mul(
			big.NewInt(centineros),
			big.NewInt(AtomicUnitsPerCentinero),
		),
	}
}

// XMR converts the amount to the decimal XMR denomination.
//
// The whole-XMR part is computed with integer arithmetic and only the
// sub-XMR remainder passes through floating point, so the result is exact
// up to 2^53-1 whole XMR, far beyond the emission. The remainder carries
// the sign of the amount.
func (v AtomicUnits) XMR() float64 {
	quo, rem := new(big.Int).QuoRem(v.bigInt, auPerXMR, new(big.Int))

	whole, _ := new(big.Float).SetInt(quo).Float64()

	return whole + float64(rem.Int64())/float64(AtomicUnitsPerXMR)
}

// Divide divides a by b and returns the quotient rounded toward zero to
// two decimal places.
//
// A zero divisor fails with ErrDivisionByZero; nil or uninitialized
// operands fail with ErrInvalidAmountFormat.
func Divide(a, b *AtomicUnits) (float64, error) {
	if a == nil || !a.IsValid() || b == nil || !b.IsValid() {
		return 0, fmt.Errorf("%w: nil operand", ErrInvalidAmountFormat)
	}

	if b.bigInt.Sign() == 0 {
		return 0, ErrDivisionByZero
	}

	const centi = 100

	// Scaling by 100 before the integer division preserves exactly two
	// fractional digits of the quotient.
	q := new(big.Int).Mul(a.bigInt, big.NewInt(centi))
	q.Quo(q, b.bigInt)

	f, _ := new(big.Float).SetInt(q).Float64()

	return f / centi, nil
}
