// Package money provides fixed-point amounts in whole cents.
//
// All settlement arithmetic happens on Cents. Decimal values only appear at
// the edges (requests, JSON, storage of user input) and are converted with
// FromDecimal and Cents.Decimal.
package money

import (
	"bytes"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// Cents is a signed amount in hundredths of the currency unit.
type Cents int64

// Epsilon is the tolerance used when comparing two amounts.
const Epsilon Cents = 1

// Zero is the zero amount.
const Zero Cents = 0

// MaxAmount is the largest magnitude accepted from outside. Sums of up to
// ninety thousand such amounts still fit in an int64.
const MaxAmount Cents = 99_999_999_999_999

// ErrOutOfRange is returned for amounts whose magnitude exceeds MaxAmount.
var ErrOutOfRange = errors.New("amount out of range")

var maxDecimal = MaxAmount.Decimal()

// InRange reports whether d, rounded to the cent, is within ±MaxAmount.
func InRange(d decimal.Decimal) bool {
	return d.Round(2).Abs().LessThanOrEqual(maxDecimal)
}

// FromDecimal rounds d to the nearest cent, halves away from zero.
// d must be InRange; use Convert for unchecked input.
func FromDecimal(d decimal.Decimal) Cents {
	return Cents(d.Shift(2).Round(0).IntPart())
}

// Convert is FromDecimal with a bounds check.
func Convert(d decimal.Decimal) (Cents, error) {
	if !InRange(d) {
		return 0, fmt.Errorf("%w: %s", ErrOutOfRange, d.String())
	}
	return FromDecimal(d), nil
}

// FromUnits converts whole currency units to cents.
func FromUnits(units int64) Cents {
	return Cents(units * 100)
}

// ParseDecimal parses a decimal string such as "12.34" or "12,34" and rounds
// it to the nearest cent. Negative values are accepted.
func ParseDecimal(s string) (Cents, error) {
	s = strings.ReplaceAll(strings.TrimSpace(s), ",", ".")
	d, err := decimal.NewFromString(s)
	if err != nil {
		return 0, fmt.Errorf("parse amount %q: %w", s, err)
	}
	return Convert(d)
}

// MustParse is like ParseDecimal but panics on malformed input.
// Intended for constants and tests.
func MustParse(s string) Cents {
	c, err := ParseDecimal(s)
	if err != nil {
		panic(err)
	}
	return c
}

// Decimal returns the exact decimal value of c.
func (c Cents) Decimal() decimal.Decimal {
	return decimal.New(int64(c), -2)
}

// String formats c with exactly two fractional digits.
func (c Cents) String() string {
	return c.Decimal().StringFixed(2)
}

// Abs returns the absolute value of c.
func (c Cents) Abs() Cents {
	if c < 0 {
		return -c
	}
	return c
}

// Near reports whether c and other differ by at most Epsilon.
func (c Cents) Near(other Cents) bool {
	return (c - other).Abs() <= Epsilon
}

// Min returns the smaller of a and b.
func Min(a, b Cents) Cents {
	if a < b {
		return a
	}
	return b
}

// Sum adds up amounts.
func Sum(amounts ...Cents) Cents {
	var total Cents
	for _, a := range amounts {
		total += a
	}
	return total
}

// MarshalJSON encodes c as a JSON number with two fractional digits.
func (c Cents) MarshalJSON() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalJSON accepts a JSON number or a quoted decimal string.
func (c *Cents) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		*c = 0
		return nil
	}
	text := string(data)
	if len(data) > 0 && data[0] == '"' {
		unquoted, err := strconv.Unquote(text)
		if err != nil {
			return fmt.Errorf("decode amount: %w", err)
		}
		text = unquoted
	}
	d, err := decimal.NewFromString(text)
	if err != nil {
		return fmt.Errorf("decode amount: %w", err)
	}
	v, err := Convert(d)
	if err != nil {
		return fmt.Errorf("decode amount: %w", err)
	}
	*c = v
	return nil
}
