// Package source owns the input text of a Colt compilation and answers the
// byte-offset-to-line/column questions both the lexer and the diagnostic
// reporter need. The line-index technique (precomputed line-start offsets,
// binary search on lookup) is grounded on clarete-langlang's go/pos.go
// LineIndex, adapted here into a Buffer that also keeps the NUL-terminated
// backing text spec.md §3.1/§4.2 describes.
package source

import "sort"

// Buffer owns one compilation unit's source text. The stored text is
// NUL-terminated internally (spec.md §2, component A) so the lexer can
// always read one byte past the last real character without a bounds
// check; Text returns the text without that terminator.
type Buffer struct {
	name      string
	text      []byte // NUL-terminated
	lineStart []int  // byte offset of the start of each line, 0-based
}

// NewBuffer copies text into an owned, NUL-terminated backing array and
// precomputes its line table.
func NewBuffer(name, text string) *Buffer {
	owned := make([]byte, len(text)+1)
	copy(owned, text)
	owned[len(text)] = 0

	lineStart := make([]int, 1, 64)
	lineStart[0] = 0
	for i := 0; i < len(text); i++ {
		if text[i] == '\n' {
			lineStart = append(lineStart, i+1)
		}
	}
	return &Buffer{name: name, text: owned, lineStart: lineStart}
}

// Name returns the buffer's source name (a file path or "<repl>").
func (b *Buffer) Name() string { return b.name }

// Text returns the source text without the trailing NUL sentinel.
func (b *Buffer) Text() string { return string(b.text[:len(b.text)-1]) }

// ByteAt returns the byte at offset pos, including the single NUL sentinel
// at len(Text()); any offset beyond that also returns 0, so a lexer can
// peek arbitrarily far past the end without special-casing EOF.
func (b *Buffer) ByteAt(pos int) byte {
	if pos < 0 || pos >= len(b.text) {
		return 0
	}
	return b.text[pos]
}

// Len returns the length of the source text, excluding the NUL sentinel.
func (b *Buffer) Len() int { return len(b.text) - 1 }

// LineCount returns the number of lines the text spans (at least 1).
func (b *Buffer) LineCount() int { return len(b.lineStart) }

// LineAt returns the (1-based) line number containing byte offset pos.
func (b *Buffer) LineAt(pos int) int {
	if pos < 0 {
		pos = 0
	}
	if pos > b.Len() {
		pos = b.Len()
	}
	idx := sort.Search(len(b.lineStart), func(i int) bool {
		return b.lineStart[i] > pos
	}) - 1
	if idx < 0 {
		idx = 0
	}
	return idx + 1
}

// ColumnAt returns the (1-based) byte column of offset pos within its line.
func (b *Buffer) ColumnAt(pos int) int {
	line := b.LineAt(pos)
	start := b.lineStart[line-1]
	if pos < start {
		pos = start
	}
	return pos - start + 1
}

// Line returns the text of the given 1-based line number, without its
// trailing newline. An out-of-range line returns "".
func (b *Buffer) Line(lineNum int) string {
	if lineNum < 1 || lineNum > len(b.lineStart) {
		return ""
	}
	start := b.lineStart[lineNum-1]
	end := len(b.Text())
	if lineNum < len(b.lineStart) {
		end = b.lineStart[lineNum] - 1 // exclude the '\n'
	}
	if end < start {
		end = start
	}
	text := b.Text()
	if end > len(text) {
		end = len(text)
	}
	return text[start:end]
}

// LineStart returns the byte offset at which the given 1-based line begins.
func (b *Buffer) LineStart(lineNum int) int {
	if lineNum < 1 {
		return 0
	}
	if lineNum > len(b.lineStart) {
		lineNum = len(b.lineStart)
	}
	return b.lineStart[lineNum-1]
}
