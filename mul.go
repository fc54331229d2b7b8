package digits

import "fmt"

// Mul returns the product of digit sequences a and b as a decimal string.
// The product of any sequence and a sequence of zeros is "0".
//
// Mul returns an error if:
//   - any of the operands is empty;
//   - any of the operands contains an element outside the range [0, 9].
func Mul(a, b Digits) (string, error) {
	s, err := mul(a, b)
	if err != nil {
		return "", fmt.Errorf("computing [%v * %v]: %w", a, b, err)
	}
	return s, nil
}

func mul(a, b Digits) (string, error) {
	if err := a.Validate(); err != nil {
		return "", err
	}
	if err := b.Validate(); err != nil {
		return "", err
	}

	// Index 0 holds the least significant digit from here on.
	x, y := reverse(a), reverse(b)

	// Partial products
	acc := make([]int, len(x)+len(y))
	for i, dx := range x {
		if dx == 0 {
			continue
		}
		for j, dy := range y {
			acc[i+j] += dx * dy
		}
	}

	// Carry propagation
	for i := 0; i < len(acc)-1; i++ {
		acc[i+1] += acc[i] / 10
		acc[i] %= 10
	}

	res := make([]byte, len(acc))
	for i, d := range acc {
		res[len(res)-1-i] = byte(d) + '0'
	}
	return string(trimZeros(res)), nil
}

// reverse returns a copy of x with the order of digits reversed.
func reverse(x Digits) Digits {
	z := make(Digits, len(x))
	for i, d := range x {
		z[len(x)-1-i] = d
	}
	return z
}
