package diag

import (
	"bytes"
	"testing"

	"github.com/coltlang/coltfront/source"
	"github.com/stretchr/testify/assert"
)

func TestReporter_CountsErrorsAndWarnings(t *testing.T) {
	r := NewReporter(Config{NoColor: true})
	r.Out = &bytes.Buffer{}

	r.Errorf(source.NoSpan, "boom")
	r.Errorf(source.NoSpan, "boom again")
	r.Warnf(source.NoSpan, "heads up")
	r.Msgf(source.NoSpan, "fyi")

	assert.Equal(t, 2, r.ErrorCount)
	assert.Equal(t, 1, r.WarningCount)
}

func TestReporter_SuppressionSilencesOutputNotCounters(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewReporter(Config{NoColor: true, NoWarning: true})
	r.Out = buf

	r.Warnf(source.NoSpan, "quiet warning")
	assert.Equal(t, 1, r.WarningCount)
	assert.Empty(t, buf.String())
}

func TestReporter_SingleLineCaretWidth(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewReporter(Config{NoColor: true})
	r.Out = buf

	src := source.NewBuffer("<test>", "var x = bogus;")
	span := source.NewSpan(src, 8, 13) // "bogus"
	r.Errorf(span, "unknown identifier")

	out := buf.String()
	assert.Contains(t, out, "var x = bogus;")
	assert.Contains(t, out, "^^^^^")
}

func TestReporter_MultiLineGutter(t *testing.T) {
	buf := &bytes.Buffer{}
	r := NewReporter(Config{NoColor: true})
	r.Out = buf

	src := source.NewBuffer("<test>", "fn f() -> i64 {\n  return 1;\n}")
	span := source.NewSpan(src, 0, src.Len())
	r.Errorf(span, "example")

	out := buf.String()
	assert.Contains(t, out, "1 | fn f() -> i64 {")
	assert.Contains(t, out, "3 | }")
}
