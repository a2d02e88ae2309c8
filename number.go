package bytereader

import (
	"fmt"
	"golang.org/x/exp/constraints"
	"unsafe"
)

// ReadUint reads an unsigned decimal integer literal like "42".
//
// ReadUint panics with an error wrapping ErrOverflow if the literal is larger
// than the maximum uint value.
func (r *Reader) ReadUint() (uint, error) {
	return ReadUnsigned[uint](r)
}

// ReadInt reads a decimal integer literal with an optional leading minus
// sign, like "42" or "-1111". A "-" not followed by a digit is not consumed.
//
// ReadInt panics with an error wrapping ErrOverflow if the literal does not
// fit into an int.
func (r *Reader) ReadInt() (int, error) {
	return ReadSigned[int](r)
}

// ReadUnsigned reads an unsigned decimal integer literal into a T.
// It panics with an error wrapping ErrOverflow if the literal does not fit into T.
func ReadUnsigned[T constraints.Unsigned](r *Reader) (T, error) {
	digits := r.Remaining()[:r.countWhile(IsDigit)]
	if len(digits) == 0 {
		return 0, ErrNoMatch
	}

	maxValue := ^T(0)

	var value T
	for _, ch := range digits {
		d := T(ch - '0')
		if value > (maxValue-d)/10 {
			panic(overflowError[T](digits, false))
		}

		value = value*10 + d
	}

	r.advance(len(digits))
	return value, nil
}

// ReadSigned reads a decimal integer literal with an optional leading minus
// sign into a T. It panics with an error wrapping ErrOverflow if the literal
// does not fit into T.
func ReadSigned[T constraints.Signed](r *Reader) (T, error) {
	rest := r.Remaining()

	negative := len(rest) > 0 && rest[0] == '-'

	offset := 0
	if negative {
		offset = 1
	}

	digits := rest[offset:]
	for idx, ch := range digits {
		if !IsDigit(ch) {
			digits = digits[:idx]
			break
		}
	}

	if len(digits) == 0 {
		return 0, ErrNoMatch
	}

	bits := unsafe.Sizeof(T(0)) * 8
	minValue := T(-1) << (bits - 1)

	// accumulate as a negative number, the range of T is larger on that side
	var value T
	for _, ch := range digits {
		d := T(ch - '0')
		if value < (minValue+d)/10 {
			panic(overflowError[T](digits, negative))
		}

		value = value*10 - d
	}

	if !negative {
		if value == minValue {
			panic(overflowError[T](digits, negative))
		}

		value = -value
	}

	r.advance(offset + len(digits))
	return value, nil
}

func overflowError[T constraints.Integer](digits []byte, negative bool) error {
	var zero T

	sign := ""
	if negative {
		sign = "-"
	}

	return fmt.Errorf("read %T literal %q: %w", zero, sign+string(digits), ErrOverflow)
}
