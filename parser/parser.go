/*
Package parser implements Colt's parser: Pratt-style expression climbing
plus recursive-descent statements and declarations, producing a typed
ast.Expr tree owned by a coltcontext.Context. The two-token lookahead
(CurrToken/NextToken), the expect/expectAdvance helpers, and the
accumulate-errors-instead-of-panicking design are carried over from the
teacher's parser/parser.go; the grammar itself, the type system threaded
through every node, and the scope-stack symbol table are new, built to
spec.md §3.2/§4.3/§4.4.
*/
package parser

import (
	"fmt"

	"github.com/coltlang/coltfront/ast"
	"github.com/coltlang/coltfront/coltcontext"
	"github.com/coltlang/coltfront/diag"
	"github.com/coltlang/coltfront/lexer"
	"github.com/coltlang/coltfront/source"
	"github.com/coltlang/coltfront/types"
)

// localVar is one entry in a lexical scope frame: the interned type the
// variable was declared with, and whether it is mutable.
type localVar struct {
	Type    *types.Type
	Mutable bool
}

// Parser holds all state needed to turn one token stream into an AST.
// Local scopes are a stack of frames searched innermost-first; function
// parameters are pushed as the outermost frame of a function body, so a
// single stack walk resolves locals first, then parameters. Global
// variables are not searched (see resolve).
type Parser struct {
	lex  *lexer.Lexer
	buf  *source.Buffer
	ctx  *coltcontext.Context
	diag *diag.Reporter

	curr, next lexer.Token

	locals    []map[string]localVar
	globals   map[string]localVar
	currentFn *ast.Expr

	owedGreater int // see expectTypeClose

	errorCount int
}

// New creates a Parser reading from lex over buf, interning into ctx, and
// reporting diagnostics through reporter.
func New(lex *lexer.Lexer, buf *source.Buffer, ctx *coltcontext.Context, reporter *diag.Reporter) *Parser {
	p := &Parser{lex: lex, buf: buf, ctx: ctx, diag: reporter, globals: make(map[string]localVar)}
	p.advance()
	p.advance()
	return p
}

// CreateAST parses buf to completion and returns the program's root Scope
// Expr alongside the number of errors the parser reported. A lexical error
// is counted only through the Error token the parser meets for it; one the
// lexer reports without producing an Error token (an unterminated block
// comment, a bad escape inside a string literal) is printed through
// reporter but not included in the count. This is spec.md §4.1's
// `Expected<AST, u32>`-shaped entry point, expressed in Go as a plain
// (value, count) pair instead of a tagged result type (see DESIGN.md).
func CreateAST(buf *source.Buffer, ctx *coltcontext.Context, reporter *diag.Reporter) (*ast.Expr, int) {
	p := New(lexer.New(buf, reporter), buf, ctx, reporter)
	root := p.parseProgram()
	if len(root.Statements) == 0 {
		p.errorf("Empty program!")
	}
	return root, p.errorCount
}

func (p *Parser) advance() {
	p.curr = p.next
	p.next = p.lex.NextToken()
}

func (p *Parser) at(tag lexer.Tag) bool  { return p.curr.Tag == tag }
func (p *Parser) peekAt(tag lexer.Tag) bool { return p.next.Tag == tag }

// match advances and returns true if curr has the given tag, else leaves
// the cursor untouched and returns false.
func (p *Parser) match(tag lexer.Tag) bool {
	if p.at(tag) {
		p.advance()
		return true
	}
	return false
}

// expect reports an error if curr does not have tag, but always advances,
// so parsing can keep moving forward instead of looping forever.
func (p *Parser) expect(tag lexer.Tag, context string) bool {
	if p.at(tag) {
		p.advance()
		return true
	}
	p.errorf("Expected '%s' %s, got '%s'!", tag, context, p.curr.Tag)
	p.advance()
	return false
}

// span builds the Span covering tok within this parser's buffer.
func (p *Parser) span(tok lexer.Token) source.Span {
	return source.NewSpan(p.buf, tok.Begin, tok.End)
}

func (p *Parser) errorf(format string, args ...any) {
	p.errorCount++
	if p.diag != nil {
		p.diag.Errorf(p.span(p.curr), format, args...)
	}
}

func (p *Parser) errorNode(format string, args ...any) *ast.Expr {
	msg := fmt.Sprintf(format, args...)
	p.errorf(format, args...)
	return p.ctx.OwnExpr(ast.NewError(p.span(p.curr), msg))
}

// errorNodeAt is errorNode but anchored to a token captured before any
// advances consumed it, for call sites that need an accurate span.
func (p *Parser) errorNodeAt(tok lexer.Token, format string, args ...any) *ast.Expr {
	msg := fmt.Sprintf(format, args...)
	p.errorfAt(tok, format, args...)
	return p.ctx.OwnExpr(ast.NewError(p.span(tok), msg))
}

// synchronize implements spec.md §4.3's panic-mode recovery: discard
// tokens until a statement boundary (';' or '}') or EOF, so one malformed
// statement doesn't cascade into spurious errors for the rest of the file.
func (p *Parser) synchronize() {
	for !p.at(lexer.EOF) {
		if p.at(lexer.Semicolon) {
			p.advance()
			return
		}
		if p.at(lexer.RightCurly) {
			return
		}
		p.advance()
	}
}

// synchronizeParen is the paren-level variant used when an expression
// inside `(...)` fails to parse: it discards tokens until the matching
// close paren (tracking nested depth) or EOF.
func (p *Parser) synchronizeParen() {
	depth := 1
	for !p.at(lexer.EOF) && depth > 0 {
		if p.at(lexer.LeftParen) {
			depth++
		}
		if p.at(lexer.RightParen) {
			depth--
			if depth == 0 {
				p.advance()
				return
			}
		}
		p.advance()
	}
}

func (p *Parser) pushScope() {
	p.locals = append(p.locals, make(map[string]localVar))
}

func (p *Parser) popScope() {
	p.locals = p.locals[:len(p.locals)-1]
}

func (p *Parser) declareLocal(name string, v localVar) {
	p.locals[len(p.locals)-1][name] = v
}

// resolve implements spec.md §4.3.2's identifier lookup: innermost local
// scope outward, then (implicitly, as the function body's outermost
// frame) parameters. Global-variable reads are not yet implemented, so a
// name that escapes the local search is unresolved, not a global lookup.
func (p *Parser) resolve(name string) (localVar, bool) {
	for i := len(p.locals) - 1; i >= 0; i-- {
		if v, ok := p.locals[i][name]; ok {
			return v, true
		}
	}
	return localVar{}, false
}
