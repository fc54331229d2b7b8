package digits

import "fmt"

// Sub returns the difference between digit sequences a and b as a decimal
// string.
// The result is prefixed with '-' if b is greater than a.
// See also function [Cmp].
//
// Sub returns an error if:
//   - any of the operands is nil or empty;
//   - any of the operands contains a negative element or an element greater than 9.
func Sub(a, b Digits) (string, error) {
	s, err := sub(a, b)
	if err != nil {
		return "", fmt.Errorf("computing [%v - %v]: %w", a, b, err)
	}
	return s, nil
}

func sub(a, b Digits) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	if err := b.Validate(); err != nil {
		return "", err
	}
	a, b = pad(a, b)

	// Sign
	c := cmpAligned(a, b)
	if c == 0 {
		return "0", nil
	}
	neg := c < 0
	if neg {
		a, b = b, a
	}

	// The first slot is reserved for the sign.
	res := make([]byte, len(a)+1)
	borrow := 0
	for i := len(a) - 1; i >= 0; i-- {
		d := a[i] - b[i] - borrow
		if d < 0 {
			d += 10
			borrow = 1
		} else {
			borrow = 0
		}
		res[i+1] = byte(d) + '0'
	}

	// Magnitude
	mag := trimZeros(res[1:])
	if !neg {
		return string(mag), nil
	}
	res = res[len(res)-len(mag)-1:]
	res[0] = '-'
	return string(res), nil
}

// Cmp compares the values of digit sequences a and b and returns:
//
//	-1 if a < b
//	 0 if a = b
//	+1 if a > b
//
// Leading zeros do not affect the result, so Cmp(Digits{0, 7}, Digits{7}) is 0.
//
// Cmp returns an error if any of the operands is not valid,
// see method [Digits.Validate].
func Cmp(a, b Digits) (int, error) {
	if err := a.Validate(); err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, err)
	}
	if err := b.Validate(); err != nil {
		return 0, fmt.Errorf("comparing [%v] and [%v]: %w", a, b, err)
	}
	a, b = pad(a, b)
	return cmpAligned(a, b), nil
}

// pad returns copies of a and b, the shorter one prefixed with zeros, so that
// both have the same length.
func pad(a, b Digits) (Digits, Digits) {
	n := max(len(a), len(b))
	return padTo(a, n), padTo(b, n)
}

func padTo(x Digits, n int) Digits {
	z := make(Digits, n)
	copy(z[n-len(x):], x)
	return z
}

// cmpAligned compares sequences of equal length starting from the most
// significant digit.
func cmpAligned(a, b Digits) int {
	for i := range len(a) {
		switch {
		case a[i] > b[i]:
			return 1
		case a[i] < b[i]:
			return -1
		}
	}
	return 0
}
