package diag

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/coltlang/coltfront/source"
	"github.com/fatih/color"
)

// Diagnostic is one reported message, span, and severity; Reporter keeps no
// history of these beyond the running counters spec.md §4.1 asks for, but
// returns the value from each report call so a driver (e.g. the REPL) can
// collect them if it wants to.
type Diagnostic struct {
	Severity Severity
	Span     source.Span
	Message  string
}

// Reporter is the Parser-owned diagnostic sink of spec.md §3.5/§4.1: every
// call increments the matching counter and prints the severity-prefixed
// message followed by the framed source excerpt, unless the severity is
// suppressed by Config.
type Reporter struct {
	Config Config
	Out    io.Writer

	ErrorCount   int
	WarningCount int
}

// NewReporter creates a Reporter writing to os.Stderr with cfg applied.
func NewReporter(cfg Config) *Reporter {
	return &Reporter{Config: cfg, Out: os.Stderr}
}

func (r *Reporter) colorFor(sev Severity) *color.Color {
	if r.Config.NoColor {
		return color.New()
	}
	switch sev {
	case Error:
		return color.New(color.FgRed)
	case Warning:
		return color.New(color.FgYellow)
	default:
		return color.New(color.FgCyan)
	}
}

func (r *Reporter) suppressed(sev Severity) bool {
	switch sev {
	case Error:
		return r.Config.NoError
	case Warning:
		return r.Config.NoWarning
	case Message:
		return r.Config.NoMessage
	default:
		return false
	}
}

// Report is the single entry point every severity helper below funnels
// through. It always updates the counters (suppression only silences
// output, per spec.md §4.1 "Errors increment an error counter... Messages
// do neither" — counting is independent of display).
func (r *Reporter) Report(sev Severity, span source.Span, format string, args ...any) Diagnostic {
	switch sev {
	case Error:
		r.ErrorCount++
	case Warning:
		r.WarningCount++
	}

	msg := fmt.Sprintf(format, args...)
	d := Diagnostic{Severity: sev, Span: span, Message: msg}
	if !r.suppressed(sev) {
		r.print(d)
	}
	return d
}

func (r *Reporter) Errorf(span source.Span, format string, args ...any) Diagnostic {
	return r.Report(Error, span, format, args...)
}

func (r *Reporter) Warnf(span source.Span, format string, args ...any) Diagnostic {
	return r.Report(Warning, span, format, args...)
}

func (r *Reporter) Msgf(span source.Span, format string, args ...any) Diagnostic {
	return r.Report(Message, span, format, args...)
}

func (r *Reporter) print(d Diagnostic) {
	c := r.colorFor(d.Severity)
	c.Fprintf(r.Out, "%s: %s\n", d.Severity.prefix(), d.Message)
	if d.Span.HasLocation() {
		r.printExcerpt(d.Span, c)
	}
}

// printExcerpt renders the offending source per spec.md §4.1: a single-line
// span gets one line and a caret underline the width of the span (at least
// one caret); a multi-line span gets every line in range with a
// right-aligned line-number gutter, each whole line printed in the severity
// colour. The span's own bytes are not set apart from the rest of a line in
// the multi-line form.
func (r *Reporter) printExcerpt(span source.Span, c *color.Color) {
	if span.LineBegin == span.LineEnd {
		line := ""
		if len(span.Lines) > 0 {
			line = span.Lines[0]
		}
		fmt.Fprintf(r.Out, "  %s\n", line)
		width := len(span.Expression)
		if width < 1 {
			width = 1
		}
		col := strings.Index(line, span.Expression)
		if col < 0 {
			col = 0
		}
		underline := strings.Repeat(" ", col) + strings.Repeat("^", width)
		c.Fprintf(r.Out, "  %s\n", underline)
		return
	}

	gutterWidth := len(fmt.Sprintf("%d", span.LineEnd))
	for i, line := range span.Lines {
		lineNum := span.LineBegin + i
		c.Fprintf(r.Out, "%*d | %s\n", gutterWidth, lineNum, line)
	}
}
