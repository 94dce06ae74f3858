package parser

import (
	"github.com/coltlang/coltfront/ast"
	"github.com/coltlang/coltfront/lexer"
	"github.com/coltlang/coltfront/qword"
	"github.com/coltlang/coltfront/source"
)

// literalKind maps a literal token tag to the BuiltInID its Token.Literal
// was decoded as, per spec.md §6's suffix table.
var literalKind = map[lexer.Tag]qword.BuiltInID{
	lexer.BoolL: qword.Bool, lexer.CharL: qword.Char,
	lexer.I8L: qword.I8, lexer.U8L: qword.U8,
	lexer.I16L: qword.I16, lexer.U16L: qword.U16,
	lexer.I32L: qword.I32, lexer.U32L: qword.U32,
	lexer.I64L: qword.I64, lexer.U64L: qword.U64,
	lexer.FloatL: qword.F32, lexer.DoubleL: qword.F64,
	lexer.StringL: qword.LString,
}

var prefixUnary = map[lexer.Tag]ast.UnaryOp{
	lexer.Minus: ast.Negate, lexer.Bang: ast.Not, lexer.Tilde: ast.BitNot,
	lexer.PlusPlus: ast.PreInc, lexer.MinusMinus: ast.PreDec,
}

// parseExpression is the expression grammar's single entry point:
// assignment sits at the lowest precedence and is right-associative, so
// it wraps the left-associative binary climb (spec.md §4.3.3).
func (p *Parser) parseExpression() *ast.Expr {
	return p.parseAssignment()
}

func (p *Parser) parseAssignment() *ast.Expr {
	left := p.parseBinary(lexer.PrecOr)
	if left.IsError() || !lexer.IsAssignment(p.curr.Tag) {
		return left
	}

	opTok := p.curr
	if left.Kind != ast.VarRead {
		p.errorf("Left-hand side of '%s' must be a variable!", opTok.Tag)
		p.advance()
		_ = p.parseAssignment()
		return p.ctx.OwnExpr(ast.NewError(left.Span, "invalid assignment target"))
	}
	p.advance()

	rhs := p.parseAssignment()
	if rhs.IsError() {
		return rhs
	}

	v, ok := p.resolve(left.Name)
	if !ok {
		return p.errorNode("Unknown identifier '%s'!", left.Name)
	}
	if !v.Mutable {
		p.errorf("Cannot assign to immutable variable '%s'!", left.Name)
	}

	value := rhs
	if op, compound := lexer.CompoundOp(opTok.Tag); compound {
		value = p.ctx.OwnExpr(ast.NewBinary(source.Join(left.Span, rhs.Span), v.Type, op, left, rhs))
	}
	return p.ctx.OwnExpr(ast.NewVarWrite(source.Join(left.Span, rhs.Span), v.Type, left.Name, value))
}

// parseBinary climbs operator precedence starting at minPrec, the
// textbook precedence-climbing form of Pratt parsing spec.md §3.2 asks
// for: each iteration consumes one operator at or above minPrec and
// recurses with that operator's precedence + 1 so same-precedence chains
// associate left.
func (p *Parser) parseBinary(minPrec int) *ast.Expr {
	left := p.parseUnary()
	if left.IsError() {
		return left
	}

	for {
		prec := lexer.Precedence(p.curr.Tag)
		if prec == lexer.PrecNone || prec < minPrec || prec == lexer.PrecAssign {
			return left
		}
		op, ok := lexer.ToBinaryOp(p.curr.Tag)
		if !ok {
			return left
		}
		opTok := p.curr
		p.advance()

		right := p.parseBinary(prec + 1)
		if right.IsError() {
			return right
		}

		resultType := left.Type
		if !left.Type.SupportsOp(op) {
			p.errorfAt(opTok, "Type '%s' does not support operator '%s'!", left.Type.Name(), opTok.Tag)
			resultType = p.ctx.ErrorType()
		}
		left = p.ctx.OwnExpr(ast.NewBinary(source.Join(left.Span, right.Span), resultType, op, left, right))
	}
}

func (p *Parser) errorfAt(tok lexer.Token, format string, args ...any) {
	p.errorCount++
	if p.diag != nil {
		p.diag.Errorf(p.span(tok), format, args...)
	}
}

// parseUnary handles prefix operators (`-x`, `!x`, `~x`, `++x`, `--x`);
// everything else falls through to postfix parsing.
func (p *Parser) parseUnary() *ast.Expr {
	if op, ok := prefixUnary[p.curr.Tag]; ok {
		tok := p.curr
		p.advance()
		operand := p.parseUnary()
		if operand.IsError() {
			return operand
		}
		resultType := operand.Type
		if op == ast.Not {
			resultType = p.ctx.BuiltIn(qword.Bool, false)
		}
		return p.ctx.OwnExpr(ast.NewUnary(source.Join(p.span(tok), operand.Span), resultType, op, operand))
	}
	return p.parsePostfix()
}

// parsePostfix handles the postfix `++`/`--` operators, which bind
// tighter than any prefix or binary operator.
func (p *Parser) parsePostfix() *ast.Expr {
	expr := p.parsePrimary()
	for (p.at(lexer.PlusPlus) || p.at(lexer.MinusMinus)) && !expr.IsError() {
		op := ast.PostInc
		if p.at(lexer.MinusMinus) {
			op = ast.PostDec
		}
		tok := p.curr
		p.advance()
		expr = p.ctx.OwnExpr(ast.NewUnary(source.Join(expr.Span, p.span(tok)), expr.Type, op, expr))
	}
	return expr
}

func (p *Parser) parsePrimary() *ast.Expr {
	tok := p.curr

	if id, ok := literalKind[tok.Tag]; ok {
		p.advance()
		t := p.ctx.BuiltIn(id, false)
		return p.ctx.OwnExpr(ast.NewLiteral(p.span(tok), t, tok.Literal))
	}

	switch tok.Tag {
	case lexer.Identifier:
		return p.parseIdentifierOrCall()
	case lexer.LeftParen:
		p.advance()
		inner := p.parseExpression()
		if inner.IsError() {
			p.synchronizeParen()
			return inner
		}
		p.expect(lexer.RightParen, "to close '('")
		return inner
	case lexer.Error:
		p.advance()
		return p.errorNodeAt(tok, "Malformed token in expression!")
	case lexer.EOF:
		return p.errorNodeAt(tok, "Unexpected end of input, expected an expression!")
	default:
		p.advance()
		return p.errorNodeAt(tok, "Unexpected token '%s', expected an expression!", tok.Tag)
	}
}

// parseIdentifierOrCall distinguishes a function call from a variable
// read by one token of lookahead, per spec.md §4.4.
func (p *Parser) parseIdentifierOrCall() *ast.Expr {
	tok := p.curr
	name := tok.Ident
	p.advance()

	if p.at(lexer.LeftParen) {
		return p.parseCall(tok, name)
	}

	v, ok := p.resolve(name)
	if !ok {
		return p.errorNodeAt(tok, "Unknown identifier '%s'!", name)
	}
	return p.ctx.OwnExpr(ast.NewVarRead(p.span(tok), v.Type, name))
}

// parseCall parses the argument list of a call and validates its arity
// and argument types against the callee's declared signature, per
// spec.md §4.4's "functions must be declared before use, with matching
// arity and types" invariant.
func (p *Parser) parseCall(nameTok lexer.Token, name string) *ast.Expr {
	callSpan := p.span(nameTok)
	p.expect(lexer.LeftParen, "to start call arguments")

	var args []*ast.Expr
	for !p.at(lexer.RightParen) && !p.at(lexer.EOF) {
		arg := p.parseExpression()
		args = append(args, arg)
		callSpan = source.Join(callSpan, arg.Span)
		if !p.match(lexer.Comma) {
			break
		}
	}
	p.expect(lexer.RightParen, "to close call arguments")

	fn, ok := p.globals[name]
	if !ok || !fn.Type.IsFunction() {
		return p.errorNode("Call to undeclared function '%s'!", name)
	}
	if !fn.Type.Variadic && len(args) != len(fn.Type.Params) {
		return p.errorNode("Function '%s' expects %d argument(s), got %d!", name, len(fn.Type.Params), len(args))
	}
	for i, param := range fn.Type.Params {
		if i >= len(args) {
			break
		}
		if args[i].IsError() {
			continue
		}
		if args[i].Type != param {
			p.errorf("Argument %d to '%s' has type '%s', expected '%s'!", i+1, name, args[i].Type.Name(), param.Name())
		}
	}
	return p.ctx.OwnExpr(ast.NewFnCall(callSpan, fn.Type.Return, name, args))
}
