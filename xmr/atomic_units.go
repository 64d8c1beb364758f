package xmr

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/json"
	"fmt"
	"math/big"
)

var (
	// ensure AtomicUnits implements valuer and scanner interface.
	_ sql.Scanner   = (*AtomicUnits)(nil)
	_ driver.Valuer = (*AtomicUnits)(nil)

	// ensure AtomicUnits implements text marshaller and unmarshaler interface.
	_ encoding.TextMarshaler   = (*AtomicUnits)(nil)
	_ encoding.TextUnmarshaler = (*AtomicUnits)(nil)

	// ensure AtomicUnits implements json marshaller and unmarshaler interface.
	_ json.Unmarshaler = (*AtomicUnits)(nil)
	_ json.Marshaler   = (*AtomicUnits)(nil)
)

// AtomicUnits represents a monero amount stored in its smallest
// denomination form, a signed arbitrary-precision integer.
//
// ! This is intended to be used for storage and representation
// rather than for the big.Int behavior.
type AtomicUnits struct {
	bigInt *big.Int
}

// NewAtomicUnits returns a new AtomicUnits with the
// internal big.Int set to v.
func NewAtomicUnits(v int64) *AtomicUnits {
	return &AtomicUnits{bigInt: big.NewInt(v)}
}

// NewAtomicUnitsFromBigInt returns a new AtomicUnits with the
// internal big.Int set to i. A nil i yields an invalid amount.
func NewAtomicUnitsFromBigInt(i *big.Int) *AtomicUnits {
	if i == nil {
		return &AtomicUnits{}
	}

	return &AtomicUnits{bigInt: new(big.Int).Set(i)}
}

// NewAtomicUnitsFromString parses s as a base 10 signed integer.
// The string must contain digits only, apart from an optional
// leading sign.
func NewAtomicUnitsFromString(s string) (*AtomicUnits, error) {
	if s == "" {
		return nil, fmt.Errorf("%w: empty string value", ErrInvalidAmountFormat)
	}

	const base = 10

	bigInt, ok := new(big.Int).SetString(s, base)
	if !ok {
		return nil, fmt.Errorf(
			"%w: string %q is not a base 10 integer",
			ErrInvalidAmountFormat,
			s,
		)
	}

	return &AtomicUnits{bigInt: bigInt}, nil
}

// IsValid returns true if the internal big.Int
// value is not nil.
func (v AtomicUnits) IsValid() bool {
	return v.bigInt != nil
}

// IsGreaterThan returns true if v > x.
func (v AtomicUnits) IsGreaterThan(x *AtomicUnits) bool {
	if v.bigInt == nil || x == nil || x.bigInt == nil {
		return false
	}

	return v.bigInt.Cmp(x.bigInt) == 1
}

// IsEqual returns true if v = x.
func (v AtomicUnits) IsEqual(x *AtomicUnits) bool {
	if v.bigInt == nil || x == nil || x.bigInt == nil {
		return false
	}

	return v.bigInt.Cmp(x.bigInt) == 0
}

// IsLesserThan returns true if v < x.
func (v AtomicUnits) IsLesserThan(x *AtomicUnits) bool {
	if v.bigInt == nil || x == nil || x.bigInt == nil {
		return false
	}

	return v.bigInt.Cmp(x.bigInt) == -1
}

// Sign returns -1 for negative amounts, 0 for zero and +1
// for positive amounts.
func (v AtomicUnits) Sign() int {
	return v.bigInt.Sign()
}

// BigInt returns a copy of the internal big.Int.
func (v AtomicUnits) BigInt() *big.Int {
	if v.bigInt == nil {
		return nil
	}

	return new(big.Int).Set(v.bigInt)
}

// String returns the decimal representation of
// the internal big.Int.
func (v AtomicUnits) String() string {
	return v.bigInt.String()
}

// MarshalText implements the encoding.TextMarshaler interface.
func (v AtomicUnits) MarshalText() ([]byte, error) {
	return v.bigInt.MarshalText()
}

// UnmarshalText implements the encoding.TextUnmarshaler interface.
func (v *AtomicUnits) UnmarshalText(text []byte) error {
	i := new(big.Int)

	err := i.UnmarshalText(text)
	if err != nil {
		return err
	}

	v.bigInt = i

	return nil
}

// MarshalJSON implements the json.Marshaler interface.
func (v AtomicUnits) MarshalJSON() ([]byte, error) {
	return v.bigInt.MarshalJSON()
}

// UnmarshalJSON implements the json.Unmarshaler interface.
func (v *AtomicUnits) UnmarshalJSON(data []byte) error {
	i := new(big.Int)

	err := i.UnmarshalJSON(data)
	if err != nil {
		return err
	}

	v.bigInt = i

	return nil
}

// Value defines how the amount is stored in the database.
func (v AtomicUnits) Value() (driver.Value, error) {
	if v.IsValid() {
		return v.bigInt.String(), nil
	}

	return nil, nil
}

// Scan defines how the amount is read from the database.
func (v *AtomicUnits) Scan(value interface{}) error {
	switch t := value.(type) {
	case int64:
		v.bigInt = new(big.Int).SetInt64(t)

	case []uint8:
		const base = 10

		var ok bool

		v.bigInt, ok = new(big.Int).SetString(string(t), base)
		if !ok {
			return fmt.Errorf(
				"%w: failed to scan %q as a base 10 integer",
				ErrInvalidAmountFormat,
				string(t),
			)
		}

	case nil:
		v.bigInt = nil

	default:
		return fmt.Errorf(
			"%w: could not scan type %T into AtomicUnits",
			ErrInvalidAmountFormat,
			t,
		)
	}

	return nil
}
