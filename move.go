package bytereader

import "bytes"

// AdvanceBy moves the cursor forward by n bytes, or to the end of the input
// if fewer than n bytes remain.
func (r *Reader) AdvanceBy(n int) {
	r.advance(min(max(n, 0), r.Len()))
}

// UnwindBy moves the cursor backward by n bytes, or to the start of the input
// if fewer than n bytes were read.
//
// Recomputing the column after crossing a newline scans back to the previous
// newline, so unwinding is slower than advancing on inputs with long lines.
func (r *Reader) UnwindBy(n int) {
	r.unwind(min(max(n, 0), r.index))
}

// SkipWhile advances over the leading bytes that satisfy pred.
func (r *Reader) SkipWhile(pred func(byte) bool) {
	r.advance(r.countWhile(pred))
}

// SkipWhitespace advances over leading ASCII whitespace.
func (r *Reader) SkipWhitespace() {
	r.SkipWhile(IsWhitespace)
}

func (r *Reader) countWhile(pred func(byte) bool) int {
	rest := r.Remaining()
	for idx, b := range rest {
		if !pred(b) {
			return idx
		}
	}

	return len(rest)
}

// advance requires 0 <= n <= r.Len()
func (r *Reader) advance(n int) {
	skipped := r.buf[r.index : r.index+n]

	if newlines := bytes.Count(skipped, newline); newlines == 0 {
		r.column += n
	} else {
		r.line += newlines
		r.column = n - bytes.LastIndexByte(skipped, '\n')
	}

	r.index += n
}

// unwind requires 0 <= n <= r.index
func (r *Reader) unwind(n int) {
	target := r.index - n
	unwound := r.buf[target:r.index]

	if newlines := bytes.Count(unwound, newline); newlines == 0 {
		r.column -= n
	} else {
		r.line -= newlines

		// distance to the newline preceding target, or to the start of the input
		r.column = target - bytes.LastIndexByte(r.buf[:target], '\n')
	}

	r.index = target
}

var newline = []byte{'\n'}
