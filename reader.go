package bytereader

import (
	"bytes"
	"fmt"
)

// Reader is a backtrackable cursor over an immutable byte sequence.
// It tracks the byte offset of the cursor as well as the line and column
// of that offset in the input.
//
// A Reader must not be mutated from multiple goroutines at the same time.
type Reader struct {
	buf []byte

	// offset of the cursor, 0 <= index <= len(buf)
	index int

	// 1-based location of index
	line   int
	column int
}

// Position describes a location in the input of a Reader.
type Position struct {
	// Index is the byte offset from the start of the input.
	Index int

	// Line and Column are 1-based. Column counts bytes, not runes.
	Line   int
	Column int
}

func (p Position) String() string {
	return fmt.Sprintf("%d:%d", p.Line, p.Column)
}

// New creates a Reader positioned at the start of src. A byte slice is borrowed
// and must not be modified while the Reader is in use, a string is copied.
func New[S ~[]byte | ~string](src S) *Reader {
	return newReader([]byte(src))
}

// NewOwned creates a Reader over a copy of src.
func NewOwned(src []byte) *Reader {
	return newReader(bytes.Clone(src))
}

func newReader(buf []byte) *Reader {
	return &Reader{
		buf:    buf,
		line:   1,
		column: 1,
	}
}

// Index returns the byte offset of the cursor.
func (r *Reader) Index() int {
	return r.index
}

// Line returns the 1-based line of the cursor.
func (r *Reader) Line() int {
	return r.line
}

// Column returns the 1-based column of the cursor, counted in bytes.
func (r *Reader) Column() int {
	return r.column
}

// Position returns the current location. Pass it to Reset to backtrack.
func (r *Reader) Position() Position {
	return Position{Index: r.index, Line: r.line, Column: r.column}
}

// Reset moves the cursor back (or forward) to a Position previously
// returned by this Reader.
func (r *Reader) Reset(p Position) {
	if p.Index < 0 || p.Index > len(r.buf) || p.Line < 1 || p.Column < 1 {
		panic(fmt.Sprintf("bytereader: position %+v out of range", p))
	}

	r.index = p.Index
	r.line = p.Line
	r.column = p.Column
}

// Remaining returns the unread bytes. The returned slice aliases the input.
func (r *Reader) Remaining() []byte {
	return r.buf[r.index:len(r.buf):len(r.buf)]
}

// Len returns the number of unread bytes.
func (r *Reader) Len() int {
	return len(r.buf) - r.index
}

// Done reports whether all input has been consumed.
func (r *Reader) Done() bool {
	return r.index == len(r.buf)
}
