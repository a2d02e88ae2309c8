package bytereader

// IsWhitespace reports whether b is ASCII whitespace: space, tab,
// line feed, form feed or carriage return.
func IsWhitespace(b byte) bool {
	switch b {
	case ' ', '\t', '\n', '\f', '\r':
		return true
	default:
		return false
	}
}

// IsDigit reports whether b is an ASCII digit.
func IsDigit(b byte) bool {
	return '0' <= b && b <= '9'
}

// IsLetter reports whether b is an ASCII letter.
func IsLetter(b byte) bool {
	return 'a' <= b && b <= 'z' || 'A' <= b && b <= 'Z'
}

func isSnake(b byte) bool {
	return IsLetter(b) || b == '_'
}

func isKebab(b byte) bool {
	return IsLetter(b) || b == '-'
}

// Not returns a predicate that negates pred.
func Not(pred func(byte) bool) func(byte) bool {
	return func(b byte) bool {
		return !pred(b)
	}
}

// Byte returns a predicate matching exactly c.
func Byte(c byte) func(byte) bool {
	return func(b byte) bool {
		return b == c
	}
}
