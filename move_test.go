package bytereader

import (
	"bytes"
	"github.com/stretchr/testify/require"
	"testing"
)

func TestAdvanceBy(t *testing.T) {
	r := New("Hello, world!")

	r.AdvanceBy(1)
	require.Equal(t, r.Remaining(), []byte("ello, world!"))

	r.AdvanceBy(3)
	require.Equal(t, r.Remaining(), []byte("o, world!"))
	require.Equal(t, r.Column(), 5)

	r.AdvanceBy(-1)
	require.Equal(t, r.Index(), 4)

	r.AdvanceBy(1000)
	require.True(t, r.Done())
	require.Equal(t, r.Position(), Position{Index: 13, Line: 1, Column: 14})
}

func TestUnwindBy(t *testing.T) {
	r := New("Hello, world!\nMy name is byte_reader!")

	r.ReadWhile(Not(Byte('\n')))
	require.Equal(t, r.Remaining(), []byte("\nMy name is byte_reader!"))
	require.Equal(t, r.Line(), 1)
	require.Equal(t, r.Column(), 14)

	r.AdvanceBy(3)
	require.Equal(t, r.Remaining(), []byte(" name is byte_reader!"))
	require.Equal(t, r.Line(), 2)
	require.Equal(t, r.Column(), 3)

	r.UnwindBy(2)
	require.Equal(t, r.Remaining(), []byte("My name is byte_reader!"))
	require.Equal(t, r.Line(), 2)
	require.Equal(t, r.Column(), 1)

	r.UnwindBy(2)
	require.Equal(t, r.Remaining(), []byte("!\nMy name is byte_reader!"))
	require.Equal(t, r.Line(), 1)
	require.Equal(t, r.Column(), 13)

	r.UnwindBy(1000)
	require.Equal(t, r.Position(), Position{Index: 0, Line: 1, Column: 1})
}

func TestUnwindBy_AcrossLines(t *testing.T) {
	r := New("Hello!\nMy name is!\nkanarus!")

	r.ReadWhile(Not(Byte('\n')))
	r.AdvanceBy(1)
	r.ReadWhile(Not(Byte('\n')))
	r.AdvanceBy(1)
	require.Equal(t, r.Remaining(), []byte("kanarus!"))
	require.Equal(t, r.Line(), 3)
	require.Equal(t, r.Column(), 1)

	r.UnwindBy(1)
	require.Equal(t, r.Remaining(), []byte("\nkanarus!"))
	require.Equal(t, r.Line(), 2)
	require.Equal(t, r.Column(), 12)

	r.UnwindBy(1)
	require.Equal(t, r.Remaining(), []byte("!\nkanarus!"))
	require.Equal(t, r.Line(), 2)
	require.Equal(t, r.Column(), 11)

	// crosses both newlines at once
	r.AdvanceBy(5)
	r.UnwindBy(18)
	require.Equal(t, r.Remaining(), []byte("o!\nMy name is!\nkanarus!"))
	require.Equal(t, r.Line(), 1)
	require.Equal(t, r.Column(), 5)
}

func TestSkipWhitespace(t *testing.T) {
	r := New(" ")
	r.SkipWhitespace()
	require.True(t, r.Done())

	r = New("  a")
	r.SkipWhitespace()
	require.Equal(t, r.Remaining(), []byte("a"))

	r = New(" \t\r\n\f\vx")
	r.SkipWhitespace()
	require.Equal(t, r.Remaining(), []byte("\vx"))
	require.Equal(t, r.Position(), Position{Index: 5, Line: 2, Column: 2})
}

func TestSkipWhile(t *testing.T) {
	r := New("123abc")

	r.SkipWhile(IsLetter)
	require.Equal(t, r.Index(), 0)

	r.SkipWhile(IsDigit)
	require.Equal(t, r.Remaining(), []byte("abc"))

	r.SkipWhile(func(byte) bool { return true })
	require.True(t, r.Done())
}

var locationInputs = []string{
	"",
	"a",
	"\n",
	"\n\n\n",
	"abc\ndef\n\nghi",
	"model Post {\n  title String\n}\n",
	"\r\n\r\nwindows\r\n",
	"trailing\n",
}

func TestAdvanceUnwind_RoundTrip(t *testing.T) {
	for _, input := range locationInputs {
		for start := 0; start <= len(input); start++ {
			for n := 0; n <= len(input)+1; n++ {
				r := New(input)
				r.AdvanceBy(start)
				before := r.Position()

				r.AdvanceBy(n)
				advanced := r.Index() - before.Index

				r.UnwindBy(advanced)
				require.Equal(t, r.Position(), before, "input %q, start %d, n %d", input, start, n)
			}
		}
	}
}

func TestAdvance_LineCount(t *testing.T) {
	for _, input := range locationInputs {
		for step := 1; step <= 3; step++ {
			r := New(input)
			for !r.Done() {
				r.AdvanceBy(step)

				consumed := []byte(input)[:r.Index()]
				require.Equal(t, r.Line()-1, bytes.Count(consumed, []byte("\n")))
				require.Equal(t, r.Position(), replay(consumed))
			}
		}
	}
}

func TestUnwind_MatchesReplay(t *testing.T) {
	for _, input := range locationInputs {
		r := New(input)
		r.AdvanceBy(len(input))

		for r.Index() > 0 {
			r.UnwindBy(1)
			require.Equal(t, r.Position(), replay([]byte(input)[:r.Index()]), "input %q", input)
		}
	}
}

func FuzzAdvanceUnwind(f *testing.F) {
	for _, input := range locationInputs {
		f.Add([]byte(input), 1, 2)
	}

	f.Fuzz(func(t *testing.T, input []byte, start, n int) {
		r := New(input)
		r.AdvanceBy(start)
		before := r.Position()

		r.AdvanceBy(n)
		require.Equal(t, r.Position(), replay(input[:r.Index()]))

		r.UnwindBy(r.Index() - before.Index)
		require.Equal(t, r.Position(), before)
	})
}

// replay computes the position after consumed by walking it byte by byte.
func replay(consumed []byte) Position {
	pos := Position{Index: len(consumed), Line: 1, Column: 1}
	for _, b := range consumed {
		if b == '\n' {
			pos.Line++
			pos.Column = 1
		} else {
			pos.Column++
		}
	}

	return pos
}
