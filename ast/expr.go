/*
Package ast defines Colt's abstract syntax tree. spec.md §9 points out that
Colt's AST has no business imitating a class hierarchy with `classof`/
`dyn_cast`-style dispatch: Go has no use for double dispatch here, so Expr
is one flat struct discriminated by ExprKind, in the spirit of the
teacher's visitor-based Node hierarchy (parser/node.go) but collapsed to a
tagged union the way a Go port of that design naturally would be. Every
Expr carries its resolved Type and source Span, set by the parser as it
builds the tree (spec.md §3.2's "typed AST" requirement) and a handful of
Kind-specific fields, documented next to each kind below.
*/
package ast

import (
	"github.com/coltlang/coltfront/qword"
	"github.com/coltlang/coltfront/source"
	"github.com/coltlang/coltfront/types"
)

// ExprKind discriminates the variant of a tagged-union Expr.
type ExprKind uint8

const (
	Literal ExprKind = iota
	Unary
	Binary
	Convert
	VarDecl
	VarRead
	VarWrite
	FnDecl
	FnDef
	FnCall
	FnReturn
	Scope
	Condition
	Error
)

func (k ExprKind) String() string {
	switch k {
	case Literal:
		return "Literal"
	case Unary:
		return "Unary"
	case Binary:
		return "Binary"
	case Convert:
		return "Convert"
	case VarDecl:
		return "VarDecl"
	case VarRead:
		return "VarRead"
	case VarWrite:
		return "VarWrite"
	case FnDecl:
		return "FnDecl"
	case FnDef:
		return "FnDef"
	case FnCall:
		return "FnCall"
	case FnReturn:
		return "FnReturn"
	case Scope:
		return "Scope"
	case Condition:
		return "Condition"
	case Error:
		return "Error"
	default:
		return "Unknown"
	}
}

// UnaryOp enumerates Colt's prefix and postfix unary operators.
type UnaryOp uint8

const (
	Negate UnaryOp = iota
	Not
	BitNot
	PreInc
	PreDec
	PostInc
	PostDec
)

func (op UnaryOp) String() string {
	switch op {
	case Negate:
		return "-"
	case Not:
		return "!"
	case BitNot:
		return "~"
	case PreInc, PostInc:
		return "++"
	case PreDec, PostDec:
		return "--"
	default:
		return "?"
	}
}

func (op UnaryOp) IsPostfix() bool { return op == PostInc || op == PostDec }

// Param is one declared function parameter (spec.md §4.4's function-decl
// grammar: a name paired with a type).
type Param struct {
	Name string
	Type *types.Type
}

// Expr is one AST node. Only the fields relevant to Kind are meaningful;
// the rest are zero. This mirrors spec.md §9's tagged-union guidance more
// directly than a per-kind Go type would, and keeps construction,
// traversal, and the parser's error-node fallback uniform.
type Expr struct {
	Kind ExprKind
	Type *types.Type
	Span source.Span

	// Literal
	Value qword.QWORD

	// Unary: Op + Operand. Binary/Convert: Op + Left/Right (Convert's To
	// lives in Type itself, Left holds the converted expression).
	UnaryOp UnaryOp
	BinOp   qword.BinaryOp
	Operand *Expr
	Left    *Expr
	Right   *Expr

	// VarDecl: Name, Mutable, Global, Operand (initializer, may be nil).
	// VarRead: Name. VarWrite: Name, Operand (assigned value).
	Name    string
	Mutable bool
	Global  bool

	// FnDecl/FnDef: Name, Params, Type.Return (via Type), Extern, Body
	// (nil for FnDecl, a Scope Expr for FnDef).
	Params []Param
	Extern bool
	Body   *Expr

	// FnCall: Name, Args.
	Args []*Expr

	// FnReturn: Operand (the returned expression, nil for bare `return`).

	// Scope: Statements.
	Statements []*Expr

	// Condition: Operand (the test), Then, Else (Else nil if absent;
	// `elif` chains desugar into nested Condition Exprs held in Else).
	Then *Expr
	Else *Expr

	// Error: Message holds the diagnostic text produced at the point of
	// failure, matching the "AST node may itself carry Error" convention
	// spec.md's parse_scope question resolves to (see DESIGN.md).
	Message string
}

func NewLiteral(span source.Span, t *types.Type, v qword.QWORD) *Expr {
	return &Expr{Kind: Literal, Span: span, Type: t, Value: v}
}

func NewUnary(span source.Span, t *types.Type, op UnaryOp, operand *Expr) *Expr {
	return &Expr{Kind: Unary, Span: span, Type: t, UnaryOp: op, Operand: operand}
}

func NewBinary(span source.Span, t *types.Type, op qword.BinaryOp, left, right *Expr) *Expr {
	return &Expr{Kind: Binary, Span: span, Type: t, BinOp: op, Left: left, Right: right}
}

func NewConvert(span source.Span, t *types.Type, operand *Expr) *Expr {
	return &Expr{Kind: Convert, Span: span, Type: t, Left: operand}
}

func NewVarDecl(span source.Span, t *types.Type, name string, mutable, global bool, init *Expr) *Expr {
	return &Expr{Kind: VarDecl, Span: span, Type: t, Name: name, Mutable: mutable, Global: global, Operand: init}
}

func NewVarRead(span source.Span, t *types.Type, name string) *Expr {
	return &Expr{Kind: VarRead, Span: span, Type: t, Name: name}
}

func NewVarWrite(span source.Span, t *types.Type, name string, value *Expr) *Expr {
	return &Expr{Kind: VarWrite, Span: span, Type: t, Name: name, Operand: value}
}

func NewFnDecl(span source.Span, t *types.Type, name string, params []Param, extern bool) *Expr {
	return &Expr{Kind: FnDecl, Span: span, Type: t, Name: name, Params: params, Extern: extern}
}

func NewFnDef(span source.Span, t *types.Type, name string, params []Param, body *Expr) *Expr {
	return &Expr{Kind: FnDef, Span: span, Type: t, Name: name, Params: params, Body: body}
}

func NewFnCall(span source.Span, t *types.Type, name string, args []*Expr) *Expr {
	return &Expr{Kind: FnCall, Span: span, Type: t, Name: name, Args: args}
}

func NewFnReturn(span source.Span, t *types.Type, value *Expr) *Expr {
	return &Expr{Kind: FnReturn, Span: span, Type: t, Operand: value}
}

func NewScope(span source.Span, statements []*Expr) *Expr {
	return &Expr{Kind: Scope, Span: span, Type: types.Void(), Statements: statements}
}

func NewCondition(span source.Span, test, then, els *Expr) *Expr {
	return &Expr{Kind: Condition, Span: span, Type: types.Void(), Operand: test, Then: then, Else: els}
}

func NewError(span source.Span, message string) *Expr {
	return &Expr{Kind: Error, Span: span, Type: types.ErrorT(), Message: message}
}

// IsError reports whether e is nil or an Error node, the check every
// parser production uses before trusting a sub-result, per spec.md §4.3's
// panic-mode recovery contract.
func (e *Expr) IsError() bool {
	return e == nil || e.Kind == Error
}
