package bytereader

import (
	"bytes"
	"unicode/utf8"
)

// ReadCamel reads a camelCase word like "helloWorld" or "userID".
func (r *Reader) ReadCamel() (string, error) {
	return r.readWord(IsLetter)
}

// ReadSnake reads a snake_case word like "hello_world" or "user_id".
func (r *Reader) ReadSnake() (string, error) {
	return r.readWord(isSnake)
}

// ReadKebab reads a kebab-case word like "hello-world" or "Content-Type".
func (r *Reader) ReadKebab() (string, error) {
	return r.readWord(isKebab)
}

// readWord requires pred to only match ASCII bytes, so the word is always valid UTF-8.
func (r *Reader) readWord(pred func(byte) bool) (string, error) {
	word := r.ReadWhile(pred)
	if len(word) == 0 {
		return "", ErrNoMatch
	}

	return string(word), nil
}

// ReadQuotedBy reads the bytes enclosed by left and right and consumes both
// delimiters. Escape sequences are not supported, the literal ends at the
// first occurrence of right. The returned slice aliases the input.
func (r *Reader) ReadQuotedBy(left, right byte) ([]byte, error) {
	content, err := r.quotedBy(left, right)
	if err != nil {
		return nil, err
	}

	r.advance(len(content) + 2)
	return content, nil
}

// ReadString reads a double quoted UTF-8 string literal like "Hello, world!"
// and returns its content. Escape sequences are not supported.
func (r *Reader) ReadString() (string, error) {
	content, err := r.quotedBy('"', '"')
	if err != nil {
		return "", err
	}

	if !utf8.Valid(content) {
		return "", ErrInvalidUTF8
	}

	r.advance(len(content) + 2)
	return string(content), nil
}

// ReadStringUnchecked is like ReadString but does not validate the content.
// Use it only if the input is known to be valid UTF-8.
func (r *Reader) ReadStringUnchecked() (string, error) {
	content, err := r.ReadQuotedBy('"', '"')
	if err != nil {
		return "", err
	}

	return string(content), nil
}

// quotedBy returns the content of the literal at the cursor without consuming it.
func (r *Reader) quotedBy(left, right byte) ([]byte, error) {
	if b, ok := r.Peek(); !ok || b != left {
		return nil, ErrNoMatch
	}

	rest := r.buf[r.index+1:]

	end := bytes.IndexByte(rest, right)
	if end < 0 {
		return nil, ErrUnterminated
	}

	return rest[:end:end], nil
}
