package digits

import (
	"fmt"

	"github.com/govalues/decimal"
)

// NewFromDecimal converts a decimal to a digit sequence without leading zeros.
// Trailing zeros after the decimal point are ignored, so both 12 and 12.00
// are converted to Digits{1, 2}.
// See also method [Digits.Decimal].
//
// NewFromDecimal returns an error if the decimal is negative or has
// a non-zero fractional part.
func NewFromDecimal(d decimal.Decimal) (Digits, error) {
	switch {
	case d.IsNeg():
		return nil, fmt.Errorf("converting %v: %w: negative value", d, ErrInvalidArgument)
	case !d.IsInt():
		return nil, fmt.Errorf("converting %v: %w: fractional value", d, ErrInvalidArgument)
	}
	x, err := Parse(d.Trunc(0).String())
	if err != nil {
		return nil, fmt.Errorf("converting %v: %w", d, err)
	}
	return x, nil
}

// Decimal returns the decimal representation of the digit sequence, with
// a scale of 0.
// See also constructor [NewFromDecimal].
//
// Decimal returns an error if:
//   - the sequence is not valid, see method [Digits.Validate];
//   - the value has more than [decimal.MaxPrec] significant digits.
func (x Digits) Decimal() (decimal.Decimal, error) {
	if err := x.Validate(); err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", x, err)
	}
	if p := x.Prec(); p > decimal.MaxPrec {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w: %T can have at most %v digits, but it has %v digits", x, ErrOverflow, decimal.Decimal{}, decimal.MaxPrec, p)
	}
	d, err := decimal.Parse(string(x.Trim().bytes()))
	if err != nil {
		return decimal.Decimal{}, fmt.Errorf("converting %v: %w", x, err)
	}
	return d, nil
}
