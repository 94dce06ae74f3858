package parser

import (
	"github.com/coltlang/coltfront/ast"
	"github.com/coltlang/coltfront/lexer"
	"github.com/coltlang/coltfront/source"
)

// parseStatement dispatches on the current token to the matching
// statement production, falling back to an expression statement.
func (p *Parser) parseStatement() *ast.Expr {
	switch p.curr.Tag {
	case lexer.KeywordVar:
		return p.parseLocalVarDecl()
	case lexer.KeywordIf:
		return p.parseIfStatement()
	case lexer.KeywordReturn:
		return p.parseReturnStatement()
	case lexer.LeftCurly:
		return p.parseScope()
	default:
		return p.parseExpressionStatement()
	}
}

func (p *Parser) parseExpressionStatement() *ast.Expr {
	expr := p.parseExpression()
	if expr.IsError() {
		p.synchronize()
		return expr
	}
	p.expect(lexer.Semicolon, "after expression")
	return expr
}

// parseScope parses a `{ ... }` block, pushing and popping a lexical
// scope frame around its statements. Per spec.md's design note resolving
// the `parse_scope` open question, a successfully parsed scope is a plain
// non-Error Scope node; failures surface as Error statements inside it,
// not as the scope node itself turning into Error.
func (p *Parser) parseScope() *ast.Expr {
	openTok := p.curr
	p.expect(lexer.LeftCurly, "to start a scope")
	p.pushScope()

	var stmts []*ast.Expr
	for !p.at(lexer.RightCurly) && !p.at(lexer.EOF) {
		stmts = append(stmts, p.parseDeclarationOrStatement())
	}
	closeTok := p.curr
	p.expect(lexer.RightCurly, "to close a scope")
	p.popScope()

	return p.ctx.OwnExpr(ast.NewScope(source.Join(p.span(openTok), p.span(closeTok)), stmts))
}

// parseIfStatement implements spec.md §4's resolved if/elif/else design:
// `elif` desugars to a nested `else { if ... }` Condition node, so the
// evaluator only ever needs to handle plain two-branch Condition nodes.
func (p *Parser) parseIfStatement() *ast.Expr {
	ifTok := p.curr
	p.expect(lexer.KeywordIf, "")
	p.expect(lexer.LeftParen, "after 'if'")
	cond := p.parseExpression()
	p.expect(lexer.RightParen, "after if-condition")
	then := p.parseScope()

	var elseBranch *ast.Expr
	if p.at(lexer.KeywordElif) {
		elseBranch = p.parseElifAsNestedIf()
	} else if p.match(lexer.KeywordElse) {
		elseBranch = p.parseScope()
	}

	return p.ctx.OwnExpr(ast.NewCondition(source.Join(p.span(ifTok), then.Span), cond, then, elseBranch))
}

// parseElifAsNestedIf consumes one `elif (cond) { ... }` and whatever
// follows it (another elif, a final else, or nothing), producing the same
// Condition shape parseIfStatement would for an equivalent `else { if
// (cond) { ... } ... }`.
func (p *Parser) parseElifAsNestedIf() *ast.Expr {
	elifTok := p.curr
	p.expect(lexer.KeywordElif, "")
	p.expect(lexer.LeftParen, "after 'elif'")
	cond := p.parseExpression()
	p.expect(lexer.RightParen, "after elif-condition")
	then := p.parseScope()

	var next *ast.Expr
	if p.at(lexer.KeywordElif) {
		next = p.parseElifAsNestedIf()
	} else if p.match(lexer.KeywordElse) {
		next = p.parseScope()
	}

	return p.ctx.OwnExpr(ast.NewCondition(source.Join(p.span(elifTok), then.Span), cond, then, next))
}

func (p *Parser) parseReturnStatement() *ast.Expr {
	retTok := p.curr
	p.expect(lexer.KeywordReturn, "")

	if p.at(lexer.Semicolon) {
		p.advance()
		return p.ctx.OwnExpr(ast.NewFnReturn(p.span(retTok), p.ctx.Void(), nil))
	}

	value := p.parseExpression()
	p.expect(lexer.Semicolon, "after return value")
	if value.IsError() {
		return value
	}
	if p.currentFn != nil {
		declared := p.currentFn.Type.Return
		if value.Type != declared {
			p.errorf("Function '%s' returns '%s' here, declared '%s'!", p.currentFn.Name, value.Type.Name(), declared.Name())
		}
	}
	return p.ctx.OwnExpr(ast.NewFnReturn(source.Join(p.span(retTok), value.Span), value.Type, value))
}

// parseLocalVarDecl parses `var [mut] name : TYPE = EXPR;` inside a scope,
// declaring name in the innermost lexical frame.
func (p *Parser) parseLocalVarDecl() *ast.Expr {
	varTok := p.curr
	p.expect(lexer.KeywordVar, "")
	mutable := p.match(lexer.KeywordMut)

	nameTok := p.curr
	if !p.at(lexer.Identifier) {
		p.errorf("Expected a variable name after 'var', got '%s'!", p.curr.Tag)
		p.synchronize()
		return p.ctx.OwnExpr(ast.NewError(p.span(varTok), "malformed variable declaration"))
	}
	name := nameTok.Ident
	p.advance()

	hasAnnotation := p.match(lexer.Colon)
	varType := p.ctx.ErrorType()
	if hasAnnotation {
		varType = p.parseType()
	}

	var init *ast.Expr
	hasInit := p.match(lexer.Equal)
	if hasInit {
		value := p.parseExpression()
		switch {
		case value.IsError():
			init = value
		case !hasAnnotation:
			varType = value.Type
			init = value
		default:
			init = p.ctx.OwnExpr(ast.NewConvert(value.Span, varType, value))
		}
	}
	p.expect(lexer.Semicolon, "after variable declaration")

	if !hasAnnotation && !hasInit {
		p.errorf("An uninitialized variable should specify its type!")
	}

	p.declareLocal(name, localVar{Type: varType, Mutable: mutable})
	return p.ctx.OwnExpr(ast.NewVarDecl(source.Join(p.span(varTok), p.span(nameTok)), varType, name, mutable, false, init))
}

// parseDeclarationOrStatement allows `var` declarations and (at top
// level, via parseProgram) function declarations to appear anywhere a
// statement can, matching spec.md §4.4's "declarations are statements"
// treatment.
func (p *Parser) parseDeclarationOrStatement() *ast.Expr {
	return p.parseStatement()
}
