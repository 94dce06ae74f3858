/*
Package coltcontext owns the single arena a compilation's types, strings,
and AST nodes live in, per spec.md §3.1/§9: every *types.Type the parser
hands back is owned and interned here, so structural equality of types
becomes pointer equality everywhere downstream (the type checker, the
diagnostic printer, and any future codegen can compare *types.Type with
==). The exception is the Scope, Condition and Error nodes, which package
ast builds without a Context: they carry their own un-interned void and
error types. This generalizes the teacher's approach of building nodes directly
with `new`/literal composite values (parser/node.go's `New*` helpers) into
a single owning arena, since spec.md calls for type interning the teacher
had no equivalent of.
*/
package coltcontext

import (
	"github.com/coltlang/coltfront/ast"
	"github.com/coltlang/coltfront/qword"
	"github.com/coltlang/coltfront/types"
)

// Context is the arena for one compilation unit (or one REPL session).
// Nothing it hands out is ever freed early: every pointer returned by
// InternType, OwnExpr, or OwnString stays valid for the Context's entire
// lifetime, per spec.md §3.1's ownership invariant.
type Context struct {
	internedTypes map[string]*types.Type
	exprs         []*ast.Expr
	strings       map[string]string

	voidT  *types.Type
	errorT *types.Type
}

// New creates an empty Context with the Void and Error singletons
// pre-interned, since every parse needs at least one of each.
func New() *Context {
	c := &Context{
		internedTypes: make(map[string]*types.Type),
		strings:       make(map[string]string),
	}
	c.voidT = c.InternType(types.Void())
	c.errorT = c.InternType(types.ErrorT())
	return c
}

// InternType returns the canonical *types.Type structurally equal to t.
// The first call with a given structural key owns t itself; every
// subsequent structurally-equal call gets back that same pointer, per
// spec.md §3.3's "intern, don't duplicate" invariant.
func (c *Context) InternType(t *types.Type) *types.Type {
	key := t.InternKey()
	if existing, ok := c.internedTypes[key]; ok {
		return existing
	}
	c.internedTypes[key] = t
	return t
}

// Void returns the interned void type.
func (c *Context) Void() *types.Type { return c.voidT }

// ErrorType returns the interned error type.
func (c *Context) ErrorType() *types.Type { return c.errorT }

// BuiltIn returns the interned built-in scalar type for id.
func (c *Context) BuiltIn(id qword.BuiltInID, mutable bool) *types.Type {
	return c.InternType(types.BuiltInType(id, mutable))
}

// PointerTo returns the interned pointer-to-pointee type. pointee must
// already be an interned *types.Type (from this Context), so the pointer
// type's key can use its identity.
func (c *Context) PointerTo(pointee *types.Type, mutable bool) *types.Type {
	return c.InternType(types.PointerTo(pointee, mutable))
}

// FunctionType returns the interned function type. ret and params must
// already be interned *types.Type values from this Context.
func (c *Context) FunctionType(ret *types.Type, params []*types.Type, variadic bool) *types.Type {
	return c.InternType(types.FunctionType(ret, params, variadic))
}

// OwnExpr registers e with the Context so it survives as long as the
// Context does, and returns e unchanged for convenient chaining at the
// call site (`return ctx.OwnExpr(ast.NewBinary(...))`).
func (c *Context) OwnExpr(e *ast.Expr) *ast.Expr {
	c.exprs = append(c.exprs, e)
	return e
}

// OwnString interns s so repeated identifiers/literals across the source
// share one backing string, and returns the canonical copy.
func (c *Context) OwnString(s string) string {
	if existing, ok := c.strings[s]; ok {
		return existing
	}
	c.strings[s] = s
	return s
}

// ExprCount reports how many Exprs this Context currently owns, useful for
// tests asserting the arena actually grew.
func (c *Context) ExprCount() int { return len(c.exprs) }

// TypeCount reports how many distinct types have been interned so far.
func (c *Context) TypeCount() int { return len(c.internedTypes) }
