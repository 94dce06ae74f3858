/*
Package repl implements the interactive front-end loop: read a line, parse
it, print what the parser produced. There is no evaluator here (code
generation and execution live outside this front-end), so where the
teacher's repl package hands each line to an eval.Evaluator and prints its
runtime result, this REPL hands each line to parser.CreateAST and prints a
summary of the resulting AST plus any diagnostics. The banner, readline
wiring, color scheme, and panic-recovery shape are carried over directly
from the teacher's Repl.
*/
package repl

import (
	"fmt"
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/coltlang/coltfront/ast"
	"github.com/coltlang/coltfront/coltcontext"
	"github.com/coltlang/coltfront/diag"
	"github.com/coltlang/coltfront/parser"
	"github.com/coltlang/coltfront/source"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents one interactive session: banner text, prompt, and the
// diag.Config controlling which diagnostic severities get printed.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	Config diag.Config
}

// NewRepl creates and initializes a new REPL instance.
func NewRepl(banner, version, author, line, license, prompt string, cfg diag.Config) *Repl {
	return &Repl{Banner: banner, Version: version, Author: author, Line: line, License: license, Prompt: prompt, Config: cfg}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to Colt!")
	cyanColor.Fprintf(writer, "%s\n", "Type a declaration or statement and press enter")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate command history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the REPL main loop. Every accepted line gets its own
// Context and source.Buffer: the REPL has no running program to declare
// into beyond the AST each line produces, so nothing needs to persist
// across lines.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}
		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		rl.SaveHistory(line)

		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery parses one line with panic recovery. Unlike file
// mode, the REPL never exits on a bad line: it prints diagnostics and
// returns to the prompt.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	buf := source.NewBuffer("<repl>", line)
	ctx := coltcontext.New()
	reporter := diag.NewReporter(r.Config)
	reporter.Out = writer

	root, errCount := parser.CreateAST(buf, ctx, reporter)
	if errCount > 0 {
		redColor.Fprintf(writer, "%d error(s)\n", errCount)
		return
	}

	yellowColor.Fprintf(writer, "%s\n", summarize(root))
}

// summarize renders a one-line description of each top-level statement
// just parsed, standing in for the "print the result" step a language
// with a runtime evaluator would have.
func summarize(root *ast.Expr) string {
	if root == nil || len(root.Statements) == 0 {
		return "(no statements)"
	}
	parts := make([]string, 0, len(root.Statements))
	for _, stmt := range root.Statements {
		parts = append(parts, fmt.Sprintf("%s: %s", stmt.Kind, stmt.Type.Name()))
	}
	return strings.Join(parts, "; ")
}
