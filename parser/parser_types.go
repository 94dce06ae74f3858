package parser

import (
	"github.com/coltlang/coltfront/lexer"
	"github.com/coltlang/coltfront/qword"
	"github.com/coltlang/coltfront/types"
)

// builtinKeyword maps a type-keyword tag to the BuiltInID it denotes.
var builtinKeyword = map[lexer.Tag]qword.BuiltInID{
	lexer.KeywordBool:    qword.Bool,
	lexer.KeywordChar:    qword.Char,
	lexer.KeywordI8:      qword.I8,
	lexer.KeywordU8:      qword.U8,
	lexer.KeywordI16:     qword.I16,
	lexer.KeywordU16:     qword.U16,
	lexer.KeywordI32:     qword.I32,
	lexer.KeywordU32:     qword.U32,
	lexer.KeywordI64:     qword.I64,
	lexer.KeywordU64:     qword.U64,
	lexer.KeywordFloat:   qword.F32,
	lexer.KeywordDouble:  qword.F64,
	lexer.KeywordLString: qword.LString,
}

// parseType implements spec.md §4.4's type grammar: an optional `mut`
// qualifier, a built-in keyword, `void`, `PTR<TYPE>`, or `typeof(EXPR)`.
func (p *Parser) parseType() *types.Type {
	mutable := p.match(lexer.KeywordMut)

	if p.at(lexer.KeywordVoid) {
		if mutable {
			p.errorf("'void' typename cannot be marked as mutable!")
		}
		p.advance()
		return p.ctx.Void()
	}

	if id, ok := builtinKeyword[p.curr.Tag]; ok {
		p.advance()
		return p.ctx.BuiltIn(id, mutable)
	}

	if p.at(lexer.KeywordPtr) {
		p.advance()
		p.expect(lexer.Less, "after PTR")
		pointee := p.parseType()
		p.expectTypeClose()
		return p.ctx.PointerTo(pointee, mutable)
	}

	if p.at(lexer.KeywordTypeof) {
		p.advance()
		p.expect(lexer.LeftParen, "after typeof")
		expr := p.parseExpression()
		p.expect(lexer.RightParen, "to close typeof(...)")
		if expr.IsError() {
			return p.ctx.ErrorType()
		}
		return expr.Type
	}

	p.errorf("Expected a type, got '%s'!", p.curr.Tag)
	return p.ctx.ErrorType()
}

// expectTypeClose consumes one '>' closing a PTR<...> level. Because the
// lexer maximal-munches ">>" into a single GreatGreat token, two nested
// PTR<PTR<T>> levels share one lexeme; the first (innermost) call to
// consume it splits the token into two virtual closes and banks the
// second one in owedGreater for the very next caller, rather than
// re-lexing. A stray GreatGreatEqual (">>=") is never valid here and
// falls through to the plain error case.
func (p *Parser) expectTypeClose() {
	if p.owedGreater > 0 {
		p.owedGreater--
		return
	}
	if p.at(lexer.Great) {
		p.advance()
		return
	}
	if p.at(lexer.GreatGreat) {
		p.owedGreater++
		p.advance()
		return
	}
	p.errorf("Expected '>' to close PTR<...>, got '%s'!", p.curr.Tag)
}
