package digits

import (
	"errors"
	"fmt"
)

// Digits type represents a non-negative integer as a sequence of decimal
// digits, starting with the most significant one.
// For example, Digits{4, 0, 2} represents 402.
//
// Leading zeros are permitted.
// A valid sequence is non-empty and every element is in the range [0, 9],
// see method [Digits.Validate].
// Operations never modify their operands, so the same Digits value can be
// shared by multiple goroutines as long as nobody writes to it.
type Digits []int

var (
	ErrInvalidArgument = errors.New("invalid argument") // ErrInvalidArgument indicates an operand that is not a valid digit sequence.
	ErrOverflow        = errors.New("digits overflow")  // ErrOverflow indicates a result that needs more digits than available.
)

// Parse converts a string to a digit sequence.
// The input string must consist only of ASCII digits, for example:
//
//	123
//	000123
//
// Parse returns an error if the string is empty or contains any other
// characters, including signs and whitespaces.
func Parse(s string) (Digits, error) {
	if len(s) == 0 {
		return nil, fmt.Errorf("parsing digits: %w: empty string", ErrInvalidArgument)
	}
	x := make(Digits, len(s))
	for i := range len(s) {
		c := s[i]
		if c < '0' || c > '9' {
			return nil, fmt.Errorf("parsing digits: %w: unexpected character %q at position %v", ErrInvalidArgument, c, i)
		}
		x[i] = int(c - '0')
	}
	return x, nil
}

// MustParse is like [Parse] but panics if the string cannot be parsed.
// It simplifies safe initialization of global variables holding digits.
func MustParse(s string) Digits {
	x, err := Parse(s)
	if err != nil {
		panic(fmt.Sprintf("Parse(%q) failed: %v", s, err))
	}
	return x
}

// Validate returns an error if:
//   - the sequence is nil;
//   - the sequence is empty;
//   - any of the elements is negative or greater than 9.
func (x Digits) Validate() error {
	switch {
	case x == nil:
		return fmt.Errorf("%w: missing digits", ErrInvalidArgument)
	case len(x) == 0:
		return fmt.Errorf("%w: empty digits", ErrInvalidArgument)
	}
	for i, d := range x {
		switch {
		case d < 0:
			return fmt.Errorf("%w: negative digit %v at position %v", ErrInvalidArgument, d, i)
		case d > 9:
			return fmt.Errorf("%w: digit %v at position %v is out of range", ErrInvalidArgument, d, i)
		}
	}
	return nil
}

// valid is like [Digits.Validate] but without the details.
func (x Digits) valid() bool {
	if len(x) == 0 {
		return false
	}
	for _, d := range x {
		if d < 0 || d > 9 {
			return false
		}
	}
	return true
}

// IsZero returns:
//
//	true  if the sequence is not empty and all its elements are 0
//	false otherwise
func (x Digits) IsZero() bool {
	if len(x) == 0 {
		return false
	}
	for _, d := range x {
		if d != 0 {
			return false
		}
	}
	return true
}

// Prec returns the number of significant digits, that is the length of the
// sequence without leading zeros.
// Prec returns 0 if all digits are zeros.
func (x Digits) Prec() int {
	return len(x) - x.lz()
}

// lz returns the number of leading zeros.
func (x Digits) lz() int {
	n := 0
	for n < len(x) && x[n] == 0 {
		n++
	}
	return n
}

// Trim returns a copy of the sequence with leading zeros removed.
// If all digits are zeros, Trim returns Digits{0}.
// Trim of an empty sequence is an empty sequence.
func (x Digits) Trim() Digits {
	if len(x) == 0 {
		return x
	}
	n := x.lz()
	if n == len(x) {
		return Digits{0}
	}
	z := make(Digits, len(x)-n)
	copy(z, x[n:])
	return z
}

// String implements the [fmt.Stringer] interface and returns the digits as
// written, leading zeros included.
// If the sequence is empty or any of the elements is not a digit, the result
// uses the notation of an int slice, for example "[1 -2 3]".
//
// [fmt.Stringer]: https://pkg.go.dev/fmt#Stringer
func (x Digits) String() string {
	if !x.valid() {
		return fmt.Sprint([]int(x))
	}
	return string(x.bytes())
}

// bytes returns the ASCII representation of a valid sequence.
func (x Digits) bytes() []byte {
	buf := make([]byte, len(x))
	for i, d := range x {
		buf[i] = byte(d) + '0'
	}
	return buf
}

// UnmarshalText implements the [encoding.TextUnmarshaler] interface.
// See also constructor [Parse].
//
// [encoding.TextUnmarshaler]: https://pkg.go.dev/encoding#TextUnmarshaler
func (x *Digits) UnmarshalText(text []byte) error {
	var err error
	*x, err = Parse(string(text))
	if err != nil {
		return fmt.Errorf("unmarshaling %T: %w", Digits{}, err)
	}
	return nil
}

// AppendText implements the [encoding.TextAppender] interface.
// See also method [Digits.String].
//
// [encoding.TextAppender]: https://pkg.go.dev/encoding#TextAppender
func (x Digits) AppendText(text []byte) ([]byte, error) {
	if err := x.Validate(); err != nil {
		return nil, fmt.Errorf("marshaling %T: %w", Digits{}, err)
	}
	for _, d := range x {
		text = append(text, byte(d)+'0')
	}
	return text, nil
}

// MarshalText implements the [encoding.TextMarshaler] interface.
// MarshalText returns an error if the sequence is not valid.
// See also method [Digits.Validate].
//
// [encoding.TextMarshaler]: https://pkg.go.dev/encoding#TextMarshaler
func (x Digits) MarshalText() ([]byte, error) {
	return x.AppendText(make([]byte, 0, len(x)))
}

// UnmarshalJSON implements the [json.Unmarshaler] interface.
// The digits must be encoded as a JSON string, "null" leaves x unchanged.
//
// [json.Unmarshaler]: https://pkg.go.dev/encoding/json#Unmarshaler
func (x *Digits) UnmarshalJSON(text []byte) error {
	if string(text) == "null" {
		return nil
	}
	if len(text) < 2 || text[0] != '"' || text[len(text)-1] != '"' {
		return fmt.Errorf("unmarshaling %T: %w: not a JSON string", Digits{}, ErrInvalidArgument)
	}
	return x.UnmarshalText(text[1 : len(text)-1])
}

// MarshalJSON implements the [json.Marshaler] interface.
// MarshalJSON always returns a JSON string.
//
// [json.Marshaler]: https://pkg.go.dev/encoding/json#Marshaler
func (x Digits) MarshalJSON() ([]byte, error) {
	text := make([]byte, 0, len(x)+2)
	text = append(text, '"')
	text, err := x.AppendText(text)
	if err != nil {
		return nil, err
	}
	text = append(text, '"')
	return text, nil
}

// Format implements the [fmt.Formatter] interface.
// The following [format verbs] are available:
//
//	| Verb   | Example | Description   |
//	| ------ | ------- | ------------- |
//	| %s, %v | 0123    | Digits        |
//	| %q     | "0123"  | Quoted digits |
//
// The '-' format flag can be used with all verbs.
//
// [format verbs]: https://pkg.go.dev/fmt#hdr-Printing
// [fmt.Formatter]: https://pkg.go.dev/fmt#Formatter
func (x Digits) Format(state fmt.State, verb rune) {
	// Digits
	digs := x.String()
	diglen := len(digs)

	// Opening and closing quotes
	lquote, tquote := 0, 0
	if verb == 'q' || verb == 'Q' {
		lquote, tquote = 1, 1
	}

	// Calculating padding
	width := lquote + diglen + tquote
	lspaces, tspaces := 0, 0
	if w, ok := state.Width(); ok && w > width {
		switch {
		case state.Flag('-'):
			tspaces = w - width
		default:
			lspaces = w - width
		}
		width = w
	}

	buf := make([]byte, width)
	pos := width - 1

	// Trailing spaces
	for range tspaces {
		buf[pos] = ' '
		pos--
	}

	// Closing quote
	for range tquote {
		buf[pos] = '"'
		pos--
	}

	// Digits
	for i := range diglen {
		buf[pos] = digs[diglen-i-1]
		pos--
	}

	// Opening quote
	for range lquote {
		buf[pos] = '"'
		pos--
	}

	// Leading spaces
	for range lspaces {
		buf[pos] = ' '
		pos--
	}

	// Writing result
	//nolint:errcheck
	switch verb {
	case 'q', 'Q', 's', 'S', 'v', 'V':
		state.Write(buf)
	default:
		state.Write([]byte("%!"))
		state.Write([]byte{byte(verb)})
		state.Write([]byte("(digits.Digits="))
		state.Write(buf)
		state.Write([]byte(")"))
	}
}

// trimZeros removes leading '0' bytes from an ASCII digit buffer, keeping at
// least one digit.
func trimZeros(buf []byte) []byte {
	for len(buf) > 1 && buf[0] == '0' {
		buf = buf[1:]
	}
	return buf
}
