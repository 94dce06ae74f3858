package source

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLineAt(t *testing.T) {
	buf := NewBuffer("<test>", "abc\ndef\nghi")
	assert.Equal(t, 1, buf.LineAt(0))
	assert.Equal(t, 1, buf.LineAt(3)) // the '\n'
	assert.Equal(t, 2, buf.LineAt(4)) // 'd'
	assert.Equal(t, 3, buf.LineAt(9)) // 'h'
}

func TestLine(t *testing.T) {
	buf := NewBuffer("<test>", "abc\ndef\nghi")
	assert.Equal(t, "abc", buf.Line(1))
	assert.Equal(t, "def", buf.Line(2))
	assert.Equal(t, "ghi", buf.Line(3))
	assert.Equal(t, "", buf.Line(4))
}

func TestByteAt_NulSentinel(t *testing.T) {
	buf := NewBuffer("<test>", "ab")
	assert.Equal(t, byte('a'), buf.ByteAt(0))
	assert.Equal(t, byte('b'), buf.ByteAt(1))
	assert.Equal(t, byte(0), buf.ByteAt(2))
	assert.Equal(t, byte(0), buf.ByteAt(100))
}

// TestSpan_RoundTrip checks spec.md §8's lexer round-trip invariant applied
// to span construction directly: the byte range recovers exactly the
// substring it was built from.
func TestSpan_RoundTrip(t *testing.T) {
	buf := NewBuffer("<test>", "let x = 42;")
	span := NewSpan(buf, 8, 10)
	assert.Equal(t, "42", span.Expression)
	assert.Equal(t, 1, span.LineBegin)
	assert.Equal(t, 1, span.LineEnd)
}

func TestSpan_MultiLine(t *testing.T) {
	buf := NewBuffer("<test>", "fn f() -> i64 {\n  return 1;\n}")
	span := NewSpan(buf, 0, buf.Len())
	assert.Equal(t, 1, span.LineBegin)
	assert.Equal(t, 3, span.LineEnd)
	assert.Len(t, span.Lines, 3)
}

func TestSpan_NoLocationIsZeroValue(t *testing.T) {
	assert.False(t, NoSpan.HasLocation())
	var s Span
	assert.False(t, s.HasLocation())
}
