/*
Package digits implements arbitrary-precision arithmetic on non-negative
integers stored as sequences of decimal digits.
It complements the [decimal] package, whose coefficients are limited to
[decimal.MaxPrec] digits, with schoolbook algorithms that work on operands
of any length.

# Features

  - Addition, subtraction, and multiplication of digit sequences of any length
  - Results rendered as decimal strings without superfluous leading zeros
  - Immutable inputs, ensuring safe usage across multiple goroutines
  - Conversion between digit sequences and [decimal.Decimal] values
  - Parsing and formatting of digit sequences, including text and JSON marshaling

# Representation

A [Digits] value is a slice of ints, one per decimal digit, ordered from the
most significant digit to the least significant one:

	Digits{1, 2, 3} // 123

Leading zeros are allowed in operands and are never present in results,
except for the single-digit result "0".
Every element must be in the range [0, 9]; operations validate their
operands before doing any arithmetic.

# Operations

[Add], [Sub], and [Mul] align operands at their least significant digit and
propagate carries or borrows from right to left, exactly as it is done on
paper.
[Sub] is the only operation that can produce a negative result, which is
prefixed with '-'.
[AddFixed] is a variant of [Add] that limits the sum to the length of the
longer operand, reporting a carry out of the most significant digit as an
overflow.

# Errors

All operations return an error instead of a result when an operand is not a
valid digit sequence.
Such errors wrap [ErrInvalidArgument].
[Add] also rejects a pair of operands that both consist only of zeros.
[AddFixed] and [Digits.Decimal] return errors wrapping [ErrOverflow] when the
result does not fit.
*/
package digits
