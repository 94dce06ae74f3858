// Package types implements Colt's type model: the variant set described in
// spec.md §3.3 (void/error/built-in/pointer/function) plus the per-class
// operator-support tables of §4.5, expressed as the discriminated "sum type"
// spec.md §9 calls for rather than a class hierarchy with virtual dispatch.
package types

import (
	"fmt"
	"strings"

	"github.com/coltlang/coltfront/qword"
)

// Kind discriminates the Type variant, mirroring original_source's
// Type::TypeID (colt_type.h) minus the Array/Class ids, which spec.md §1's
// Non-goals exclude from this core.
type Kind uint8

const (
	KindVoid Kind = iota
	KindError
	KindBuiltIn
	KindPointer
	KindFunction
)

// Type is Colt's single type-node representation. Every Type the parser
// deals with is owned by a coltcontext.Context and reached only through a
// stable *Type pointer; two structurally-equal Types intern to the same
// pointer, so type equality is reference identity (spec.md §3.3's
// invariant, tested in coltcontext).
type Type struct {
	Kind    Kind
	Mutable bool // meaningful only for BuiltIn and Pointer, per spec.md §3.3

	BuiltIn qword.BuiltInID // valid when Kind == KindBuiltIn

	Pointee *Type // valid when Kind == KindPointer

	Return   *Type   // valid when Kind == KindFunction
	Params   []*Type // valid when Kind == KindFunction
	Variadic bool    // valid when Kind == KindFunction
}

// Void, Error are the two singleton non-mutable variants; coltcontext hands
// out interned pointers to equivalents of these, but the zero-argument
// constructors here are what it interns from.
func Void() *Type   { return &Type{Kind: KindVoid} }
func ErrorT() *Type { return &Type{Kind: KindError} }

// BuiltInType builds a built-in scalar type.
func BuiltInType(id qword.BuiltInID, mutable bool) *Type {
	return &Type{Kind: KindBuiltIn, BuiltIn: id, Mutable: mutable}
}

// PointerTo builds a pointer type to pointee.
func PointerTo(pointee *Type, mutable bool) *Type {
	return &Type{Kind: KindPointer, Pointee: pointee, Mutable: mutable}
}

// FunctionType builds a function type.
func FunctionType(ret *Type, params []*Type, variadic bool) *Type {
	return &Type{Kind: KindFunction, Return: ret, Params: params, Variadic: variadic}
}

func (t *Type) IsVoid() bool     { return t.Kind == KindVoid }
func (t *Type) IsError() bool    { return t.Kind == KindError }
func (t *Type) IsBuiltIn() bool  { return t.Kind == KindBuiltIn }
func (t *Type) IsPointer() bool  { return t.Kind == KindPointer }
func (t *Type) IsFunction() bool { return t.Kind == KindFunction }

// IsIntegral reports whether t is one of the built-in integer types.
func (t *Type) IsIntegral() bool {
	return t.Kind == KindBuiltIn && t.BuiltIn.IsIntegral()
}

// IsFloating reports whether t is f32 or f64.
func (t *Type) IsFloating() bool {
	return t.Kind == KindBuiltIn && t.BuiltIn.IsFloating()
}

// Name renders t the way Colt source would spell it, used by diagnostics.
func (t *Type) Name() string {
	switch t.Kind {
	case KindVoid:
		return "void"
	case KindError:
		return "<error-type>"
	case KindBuiltIn:
		if t.Mutable {
			return "mut " + t.BuiltIn.String()
		}
		return t.BuiltIn.String()
	case KindPointer:
		prefix := ""
		if t.Mutable {
			prefix = "mut "
		}
		return fmt.Sprintf("%sPTR<%s>", prefix, t.Pointee.Name())
	case KindFunction:
		parts := make([]string, 0, len(t.Params))
		for _, p := range t.Params {
			parts = append(parts, p.Name())
		}
		variadic := ""
		if t.Variadic {
			if len(parts) > 0 {
				variadic = ", ..."
			} else {
				variadic = "..."
			}
		}
		return fmt.Sprintf("fn(%s%s) -> %s", strings.Join(parts, ", "), variadic, t.Return.Name())
	default:
		return "<unknown-type>"
	}
}

// internKey produces the structural key coltcontext.Context uses to intern
// Types; two Types with an equal key are the same type, per spec.md §3.3
// and §9 ("a hashable key built from the variant and child references").
func (t *Type) internKey() string {
	switch t.Kind {
	case KindVoid:
		return "void"
	case KindError:
		return "error"
	case KindBuiltIn:
		return fmt.Sprintf("builtin:%d:mut=%v", t.BuiltIn, t.Mutable)
	case KindPointer:
		return fmt.Sprintf("ptr:mut=%v:%p", t.Mutable, t.Pointee)
	case KindFunction:
		parts := make([]string, 0, len(t.Params)+1)
		parts = append(parts, fmt.Sprintf("ret=%p", t.Return))
		for _, p := range t.Params {
			parts = append(parts, fmt.Sprintf("%p", p))
		}
		return fmt.Sprintf("fn:variadic=%v:%s", t.Variadic, strings.Join(parts, ","))
	default:
		return "invalid"
	}
}

// InternKey exposes internKey to the coltcontext package, which owns the
// actual intern table; Type itself only knows how to describe its own
// structure.
func (t *Type) InternKey() string { return t.internKey() }
