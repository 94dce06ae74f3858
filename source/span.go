package source

// Span is spec.md §3.1's SourceSpan: the line range a construct crosses,
// a view of every source line in that range, and the exact bytes of the
// construct itself. A zero-value Span (LineBegin == LineEnd == 0) means
// "no location", per the invariant spec.md states.
type Span struct {
	LineBegin  int
	LineEnd    int
	Lines      []string
	Expression string
}

// NoSpan is the canonical "no location" value.
var NoSpan = Span{}

// HasLocation reports whether s carries real location information.
func (s Span) HasLocation() bool { return s.LineBegin != 0 || s.LineEnd != 0 }

// NewSpan builds the Span covering byte range [begin, end) of buf. The
// invariants spec.md §3.1 states hold by construction: Expression is a
// substring of the concatenation of Lines, and LineBegin <= LineEnd.
func NewSpan(buf *Buffer, begin, end int) Span {
	if end < begin {
		end = begin
	}
	lineBegin := buf.LineAt(begin)
	lineEnd := buf.LineAt(end)
	if end > begin {
		// end is exclusive; if it lands exactly on a line start, the
		// construct does not actually reach into that line.
		if buf.LineStart(lineEnd) == end && lineEnd > lineBegin {
			lineEnd--
		}
	}

	lines := make([]string, 0, lineEnd-lineBegin+1)
	for l := lineBegin; l <= lineEnd; l++ {
		lines = append(lines, buf.Line(l))
	}

	text := buf.Text()
	if begin < 0 {
		begin = 0
	}
	if end > len(text) {
		end = len(text)
	}
	expr := ""
	if begin <= end {
		expr = text[begin:end]
	}

	return Span{LineBegin: lineBegin, LineEnd: lineEnd, Lines: lines, Expression: expr}
}

// Join returns the smallest Span covering both a and b; either side being
// NoSpan yields the other side unchanged.
func Join(a, b Span) Span {
	if !a.HasLocation() {
		return b
	}
	if !b.HasLocation() {
		return a
	}
	lineBegin, lineEnd := a.LineBegin, a.LineEnd
	lines := a.Lines
	if b.LineBegin < lineBegin {
		lineBegin = b.LineBegin
	}
	if b.LineEnd > lineEnd {
		lineEnd = b.LineEnd
		lines = b.Lines
	}
	return Span{LineBegin: lineBegin, LineEnd: lineEnd, Lines: lines, Expression: a.Expression + b.Expression}
}
