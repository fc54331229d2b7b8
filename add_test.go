package digits

import (
	"errors"
	"math/big"
	"testing"
)

func TestAdd(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b Digits
			want string
		}{
			{Digits{9, 9}, Digits{0, 1, 1}, "110"},
			{Digits{1}, Digits{1}, "2"},
			{Digits{5}, Digits{0}, "5"},
			{Digits{0}, Digits{5}, "5"},
			{Digits{0, 0, 0}, Digits{0, 0, 1}, "1"},
			{Digits{9, 9, 9}, Digits{1}, "1000"},
			{Digits{1}, Digits{9, 9, 9}, "1000"},
			{Digits{1, 2, 3, 4, 5, 6, 7, 8, 9}, Digits{9, 8, 7, 6, 5, 4, 3, 2, 1}, "1111111110"},
			{repeat(9, 20), Digits{1}, "100000000000000000000"},
			{repeat(9, 25), repeat(1, 25), "11111111111111111111111110"},
		}
		for _, tt := range tests {
			got, err := Add(tt.a, tt.b)
			if err != nil {
				t.Errorf("Add(%v, %v) failed: %v", tt.a, tt.b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("Add(%v, %v) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b Digits
		}{
			"zeros 1":    {Digits{0, 0, 0}, Digits{0, 0, 0}},
			"zeros 2":    {Digits{0}, Digits{0, 0}},
			"empty 1":    {Digits{}, Digits{1}},
			"empty 2":    {Digits{1}, Digits{}},
			"empty 3":    {Digits{}, Digits{}},
			"empty 4":    {Digits{}, Digits{0}},
			"nil 1":      {nil, Digits{1}},
			"nil 2":      {Digits{1}, nil},
			"range 1":    {Digits{1, 10}, Digits{1}},
			"range 2":    {Digits{1}, Digits{1, 10}},
			"negative 1": {Digits{-1}, Digits{1}},
			"negative 2": {Digits{1}, Digits{0, -1}},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				got, err := Add(tt.a, tt.b)
				if err == nil {
					t.Errorf("Add(%v, %v) did not fail", tt.a, tt.b)
					return
				}
				if !errors.Is(err, ErrInvalidArgument) {
					t.Errorf("Add(%v, %v) failed with %v, want %v", tt.a, tt.b, err, ErrInvalidArgument)
				}
				if got != "" {
					t.Errorf("Add(%v, %v) = %q along with an error", tt.a, tt.b, got)
				}
			})
		}
	})

	t.Run("operands", func(t *testing.T) {
		a, b := Digits{9, 9}, Digits{0, 1, 1}
		_, err := Add(a, b)
		if err != nil {
			t.Fatalf("Add(%v, %v) failed: %v", a, b, err)
		}
		if a.String() != "99" || b.String() != "011" {
			t.Errorf("Add modified its operands to %v and %v", a, b)
		}
	})
}

func TestAddFixed(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		tests := []struct {
			a, b Digits
			want string
		}{
			{Digits{9, 9}, Digits{0, 1, 1}, "110"},
			{Digits{0, 9, 9}, Digits{1}, "100"},
			{Digits{4}, Digits{5}, "9"},
			{Digits{0}, Digits{7}, "7"},
			{repeat(9, 19), Digits{0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0, 0}, "9999999999999999999"},
		}
		for _, tt := range tests {
			got, err := AddFixed(tt.a, tt.b)
			if err != nil {
				t.Errorf("AddFixed(%v, %v) failed: %v", tt.a, tt.b, err)
				continue
			}
			if got != tt.want {
				t.Errorf("AddFixed(%v, %v) = %q, want %q", tt.a, tt.b, got, tt.want)
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			a, b Digits
			want error
		}{
			"overflow 1": {repeat(9, 20), Digits{1}, ErrOverflow},
			"overflow 2": {Digits{9}, Digits{1}, ErrOverflow},
			"overflow 3": {Digits{5}, Digits{5}, ErrOverflow},
			"overflow 4": {Digits{1}, Digits{9, 9, 9}, ErrOverflow},
			"zeros 1":    {Digits{0, 0, 0}, Digits{0, 0, 0}, ErrInvalidArgument},
			"empty 1":    {Digits{}, Digits{1}, ErrInvalidArgument},
			"range 1":    {Digits{1, 10}, Digits{1}, ErrInvalidArgument},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				_, err := AddFixed(tt.a, tt.b)
				if err == nil {
					t.Errorf("AddFixed(%v, %v) did not fail", tt.a, tt.b)
					return
				}
				if !errors.Is(err, tt.want) {
					t.Errorf("AddFixed(%v, %v) failed with %v, want %v", tt.a, tt.b, err, tt.want)
				}
			})
		}
	})
}

func TestAdd_Reference(t *testing.T) {
	for range 1000 {
		a, b := rndDigits(1+rnd.Intn(60)), rndDigits(1+rnd.Intn(60))
		if a.IsZero() && b.IsZero() {
			continue
		}
		got, err := Add(a, b)
		if err != nil {
			t.Errorf("Add(%v, %v) failed: %v", a, b, err)
			continue
		}
		want := new(big.Int).Add(bigInt(a), bigInt(b)).String()
		if got != want {
			t.Errorf("Add(%v, %v) = %q, want %q", a, b, got, want)
		}
		if hasLeadingZero(got) {
			t.Errorf("Add(%v, %v) = %q, which has a leading zero", a, b, got)
		}
		rev, err := Add(b, a)
		if err != nil {
			t.Errorf("Add(%v, %v) failed: %v", b, a, err)
			continue
		}
		if rev != got {
			t.Errorf("Add(%v, %v) = %q, whereas Add(%v, %v) = %q", b, a, rev, a, b, got)
		}
	}
}

func FuzzAdd(f *testing.F) {
	f.Add([]byte{9, 9}, []byte{0, 1, 1})
	f.Add([]byte{9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9, 9}, []byte{1})
	f.Add([]byte{0}, []byte{7})

	f.Fuzz(
		func(t *testing.T, p, q []byte) {
			a, b := fromBytes(p), fromBytes(q)
			if len(a) == 0 || len(b) == 0 || (a.IsZero() && b.IsZero()) {
				t.Skip()
				return
			}

			got, err := Add(a, b)
			if err != nil {
				t.Errorf("Add(%v, %v) failed: %v", a, b, err)
				return
			}
			want := new(big.Int).Add(bigInt(a), bigInt(b)).String()
			if got != want {
				t.Errorf("Add(%v, %v) = %q, want %q", a, b, got, want)
				return
			}

			fixed, err := AddFixed(a, b)
			switch {
			case len(got) > max(len(a), len(b)):
				if !errors.Is(err, ErrOverflow) {
					t.Errorf("AddFixed(%v, %v) = %q, %v, want %v", a, b, fixed, err, ErrOverflow)
				}
			case err != nil:
				t.Errorf("AddFixed(%v, %v) failed: %v", a, b, err)
			case fixed != got:
				t.Errorf("AddFixed(%v, %v) = %q, whereas Add(%v, %v) = %q", a, b, fixed, a, b, got)
			}
		},
	)
}

// fromBytes maps arbitrary fuzzer input to a valid digit sequence.
func fromBytes(p []byte) Digits {
	x := make(Digits, len(p))
	for i, c := range p {
		x[i] = int(c % 10)
	}
	return x
}
