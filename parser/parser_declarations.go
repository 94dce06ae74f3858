package parser

import (
	"github.com/coltlang/coltfront/ast"
	"github.com/coltlang/coltfront/lexer"
	"github.com/coltlang/coltfront/source"
	"github.com/coltlang/coltfront/types"
)

// parseProgram is the top-level production: a sequence of global
// declarations and statements until EOF, wrapped in a Scope node that
// acts as the program's root (spec.md §4.1's CreateAST contract).
func (p *Parser) parseProgram() *ast.Expr {
	p.pushScope()
	defer p.popScope()

	var decls []*ast.Expr
	for !p.at(lexer.EOF) {
		decls = append(decls, p.parseTopLevel())
	}
	return p.ctx.OwnExpr(ast.NewScope(source.NoSpan, decls))
}

func (p *Parser) parseTopLevel() *ast.Expr {
	switch p.curr.Tag {
	case lexer.KeywordExtern:
		return p.parseExternFnDecl()
	case lexer.KeywordFn:
		return p.parseFnDef()
	case lexer.KeywordVar:
		return p.parseGlobalVarDecl()
	default:
		stmt := p.parseStatement()
		return stmt
	}
}

// parseParams parses a `(name: Type, name: Type)` parameter list. Colt has
// no varargs syntax to lex (spec.md's Non-goals limit FFI to plain
// `extern` prototypes), so every function's arity is fixed and known at
// parse time, letting parseCall validate it exactly.
func (p *Parser) parseParams() []ast.Param {
	var params []ast.Param
	p.expect(lexer.LeftParen, "to start parameters")
	for !p.at(lexer.RightParen) && !p.at(lexer.EOF) {
		if p.at(lexer.Identifier) && p.peekAt(lexer.Colon) {
			name := p.curr.Ident
			p.advance()
			p.advance() // ':'
			t := p.parseType()
			if paramNameTaken(params, name) {
				p.errorf("Duplicate parameter name '%s'!", name)
			} else {
				params = append(params, ast.Param{Name: name, Type: t})
			}
		} else {
			p.errorf("Expected a parameter name, got '%s'!", p.curr.Tag)
			p.advance()
		}
		if !p.match(lexer.Comma) {
			break
		}
	}
	p.expect(lexer.RightParen, "to close parameters")
	return params
}

func paramNameTaken(params []ast.Param, name string) bool {
	for _, p := range params {
		if p.Name == name {
			return true
		}
	}
	return false
}

func paramTypes(params []ast.Param) []*types.Type {
	ts := make([]*types.Type, len(params))
	for i, p := range params {
		ts[i] = p.Type
	}
	return ts
}

// parseExternFnDecl parses `extern fn name(params) -> Type;`: a prototype
// with no body, registered globally so later calls can validate arity and
// types against it (spec.md §4.4).
func (p *Parser) parseExternFnDecl() *ast.Expr {
	externTok := p.curr
	p.expect(lexer.KeywordExtern, "")
	p.expect(lexer.KeywordFn, "after 'extern'")

	nameTok := p.curr
	name := nameTok.Ident
	p.expect(lexer.Identifier, "for function name")

	params := p.parseParams()
	ret := p.ctx.Void()
	if p.match(lexer.MinusGreat) {
		ret = p.parseType()
	}
	p.expect(lexer.Semicolon, "after extern function declaration")

	fnType := p.ctx.FunctionType(ret, paramTypes(params), false)
	p.globals[name] = localVar{Type: fnType, Mutable: false}
	return p.ctx.OwnExpr(ast.NewFnDecl(source.Join(p.span(externTok), p.span(nameTok)), fnType, name, params, true))
}

// parseFnDef parses `fn name(params) -> Type { body }`, declaring the
// function globally before parsing its body so recursive calls resolve,
// then parsing the body with params in scope as the outermost local
// frame.
func (p *Parser) parseFnDef() *ast.Expr {
	fnTok := p.curr
	p.expect(lexer.KeywordFn, "")

	nameTok := p.curr
	name := nameTok.Ident
	p.expect(lexer.Identifier, "for function name")

	params := p.parseParams()
	ret := p.ctx.Void()
	if p.match(lexer.MinusGreat) {
		ret = p.parseType()
	}

	fnType := p.ctx.FunctionType(ret, paramTypes(params), false)
	p.globals[name] = localVar{Type: fnType, Mutable: false}

	placeholder := ast.NewFnDef(source.NoSpan, fnType, name, params, nil)
	prevFn := p.currentFn
	p.currentFn = placeholder

	p.pushScope()
	for _, param := range params {
		p.declareLocal(param.Name, localVar{Type: param.Type, Mutable: false})
	}
	body := p.parseScope()
	p.popScope()

	p.currentFn = prevFn

	def := p.ctx.OwnExpr(ast.NewFnDef(source.Join(p.span(fnTok), body.Span), fnType, name, params, body))
	return def
}

// parseGlobalVarDecl mirrors parseLocalVarDecl but declares into the
// global table instead of a lexical scope frame, for `var` statements
// appearing outside any function body.
func (p *Parser) parseGlobalVarDecl() *ast.Expr {
	varTok := p.curr
	p.expect(lexer.KeywordVar, "")
	mutable := p.match(lexer.KeywordMut)

	nameTok := p.curr
	if !p.at(lexer.Identifier) {
		p.errorf("Expected a variable name after 'var', got '%s'!", p.curr.Tag)
		p.synchronize()
		return p.ctx.OwnExpr(ast.NewError(p.span(varTok), "malformed global variable declaration"))
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

	p.globals[name] = localVar{Type: varType, Mutable: mutable}
	return p.ctx.OwnExpr(ast.NewVarDecl(source.Join(p.span(varTok), p.span(nameTok)), varType, name, mutable, true, init))
}
