package bytereader

import (
	"errors"
	"fmt"
)

// ErrNoMatch is returned when the expected pattern is not found at the cursor.
// The cursor is never moved when an operation fails with this error.
var ErrNoMatch = errors.New("no match")

// ErrUnterminated is returned by the quoted literal readers if the closing
// delimiter is missing. It also matches ErrNoMatch.
var ErrUnterminated = fmt.Errorf("unterminated literal: %w", ErrNoMatch)

// ErrInvalidUTF8 is returned by ReadString if the quoted bytes are not valid UTF-8.
var ErrInvalidUTF8 = fmt.Errorf("invalid utf-8: %w", ErrNoMatch)

// ErrOverflow is the error wrapped by the panic reading an integer literal
// that does not fit into the target type.
var ErrOverflow = errors.New("integer overflow")

// SyntaxError describes a parse failure at a position in the input.
type SyntaxError struct {
	Pos Position
	Msg string

	// the wrapped error, may be nil
	Err error
}

func (s *SyntaxError) Error() string {
	return fmt.Sprintf("%s: %s", s.Pos, s.Msg)
}

func (s *SyntaxError) Unwrap() error {
	return s.Err
}

// Errorf creates a SyntaxError at the current position. An error wrapped
// with %w becomes the cause returned by Unwrap.
func (r *Reader) Errorf(format string, args ...any) error {
	err := fmt.Errorf(format, args...)
	return &SyntaxError{
		Pos: r.Position(),
		Msg: err.Error(),
		Err: errors.Unwrap(err),
	}
}
