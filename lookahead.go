package bytereader

import "bytes"

// Peek returns the byte at the cursor without consuming it.
func (r *Reader) Peek() (byte, bool) {
	return r.PeekAt(0)
}

// Peek2 returns the byte after the next one without consuming anything.
func (r *Reader) Peek2() (byte, bool) {
	return r.PeekAt(1)
}

// Peek3 returns the third byte from the cursor without consuming anything.
func (r *Reader) Peek3() (byte, bool) {
	return r.PeekAt(2)
}

// PeekAt returns the byte k bytes after the cursor. It returns false if k is
// negative or out of range.
func (r *Reader) PeekAt(k int) (byte, bool) {
	if k < 0 || k >= r.Len() {
		return 0, false
	}

	return r.buf[r.index+k], true
}

// Next consumes and returns the byte at the cursor.
func (r *Reader) Next() (byte, bool) {
	b, ok := r.Peek()
	if ok {
		r.advance(1)
	}

	return b, ok
}

// NextIf consumes and returns the byte at the cursor if it satisfies pred.
func (r *Reader) NextIf(pred func(byte) bool) (byte, bool) {
	b, ok := r.Peek()
	if !ok || !pred(b) {
		return 0, false
	}

	r.advance(1)
	return b, true
}

// ReadWhile consumes the leading bytes that satisfy pred and returns them.
// The returned slice aliases the input and is empty if nothing matched.
func (r *Reader) ReadWhile(pred func(byte) bool) []byte {
	start := r.index
	r.SkipWhile(pred)
	return r.buf[start:r.index:r.index]
}

// ReadUntil consumes all bytes up to, but not including, the first occurrence
// of token. If token does not occur, the rest of the input is consumed.
// An empty token matches immediately.
func (r *Reader) ReadUntil(token []byte) []byte {
	n := bytes.Index(r.Remaining(), token)
	if n < 0 {
		n = r.Len()
	}

	start := r.index
	r.advance(n)
	return r.buf[start:r.index:r.index]
}

// HasPrefix reports whether the remaining bytes start with token.
func (r *Reader) HasPrefix(token []byte) bool {
	return len(token) <= r.Len() && bytes.Equal(r.buf[r.index:r.index+len(token)], token)
}

// Consume advances past token if the remaining bytes start with it.
func (r *Reader) Consume(token []byte) bool {
	if !r.HasPrefix(token) {
		return false
	}

	r.advance(len(token))
	return true
}

// ConsumeString is like Consume but takes a string.
func (r *Reader) ConsumeString(token string) bool {
	if len(token) > r.Len() || string(r.buf[r.index:r.index+len(token)]) != token {
		return false
	}

	r.advance(len(token))
	return true
}

// ConsumeOneOf consumes the first of tokens the remaining bytes start with and
// returns its index. Tokens sharing a prefix must be ordered longest first.
func (r *Reader) ConsumeOneOf(tokens ...string) (int, bool) {
	for idx, token := range tokens {
		if r.ConsumeString(token) {
			return idx, true
		}
	}

	return -1, false
}
