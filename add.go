package digits

import "fmt"

// Add returns the sum of digit sequences a and b as a decimal string.
// The operands may have different lengths and may contain leading zeros.
// See also function [AddFixed].
//
// Add returns an error if:
//   - both operands consist only of zeros;
//   - any of the operands is empty;
//   - any of the operands contains an element outside the range [0, 9].
func Add(a, b Digits) (string, error) {
	s, err := add(a, b, false)
	if err != nil {
		return "", fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return s, nil
}

// AddFixed is like [Add], but the sum must fit into the length of the longer
// operand.
// A carry out of the most significant digit is reported as an overflow
// instead of being turned into an extra digit.
//
// AddFixed returns an error if:
//   - both operands consist only of zeros;
//   - any of the operands is empty;
//   - any of the operands contains an element outside the range [0, 9];
//   - the sum has more than max(len(a), len(b)) digits.
func AddFixed(a, b Digits) (string, error) {
	s, err := add(a, b, true)
	if err != nil {
		return "", fmt.Errorf("computing [%v + %v]: %w", a, b, err)
	}
	return s, nil
}

func add(a, b Digits, fixed bool) (string, error) {
	if a.IsZero() && b.IsZero() {
		return "", fmt.Errorf("%w: both operands are zero", ErrInvalidArgument)
	}
	if err := a.Validate(); err != nil {
		return "", err
	}
	if err := b.Validate(); err != nil {
		return "", err
	}

	// The first slot is reserved for the final carry.
	res := make([]byte, max(len(a), len(b))+1)
	pos := len(res) - 1
	carry := 0
	for i, j := len(a)-1, len(b)-1; i >= 0 || j >= 0; i, j = i-1, j-1 {
		sum := carry
		if i >= 0 {
			sum += a[i]
		}
		if j >= 0 {
			sum += b[j]
		}
		res[pos] = byte(sum%10) + '0'
		carry = sum / 10
		pos--
	}

	// Final carry
	if carry != 0 && fixed {
		return "", fmt.Errorf("%w: the sum has more than %v digits", ErrOverflow, len(res)-1)
	}
	res[0] = byte(carry) + '0'

	return string(trimZeros(res)), nil
}
