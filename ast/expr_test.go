package ast

import (
	"testing"

	"github.com/coltlang/coltfront/qword"
	"github.com/coltlang/coltfront/source"
	"github.com/coltlang/coltfront/types"
	"github.com/stretchr/testify/assert"
)

func TestExpr_LiteralConstruction(t *testing.T) {
	i32 := types.BuiltInType(qword.I32, false)
	lit := NewLiteral(source.NoSpan, i32, qword.FromI32(42))
	assert.Equal(t, Literal, lit.Kind)
	assert.Equal(t, int32(42), lit.Value.AsI32())
	assert.False(t, lit.IsError())
}

func TestExpr_ErrorNodeIsError(t *testing.T) {
	e := NewError(source.NoSpan, "unexpected token")
	assert.True(t, e.IsError())
	assert.True(t, (*Expr)(nil).IsError())
	assert.Equal(t, "unexpected token", e.Message)
	assert.True(t, e.Type.IsError())
}

func TestExpr_ConditionWithElifDesugarsToNestedElse(t *testing.T) {
	i32 := types.BuiltInType(qword.I32, false)
	cond1 := NewLiteral(source.NoSpan, i32, qword.FromBool(true))
	then1 := NewScope(source.NoSpan, nil)
	cond2 := NewLiteral(source.NoSpan, i32, qword.FromBool(false))
	then2 := NewScope(source.NoSpan, nil)
	inner := NewCondition(source.NoSpan, cond2, then2, nil)
	outer := NewCondition(source.NoSpan, cond1, then1, inner)

	assert.Equal(t, Condition, outer.Else.Kind)
	assert.Same(t, inner, outer.Else)
}

func TestExpr_BinaryCarriesOperandsAndOp(t *testing.T) {
	i32 := types.BuiltInType(qword.I32, false)
	left := NewLiteral(source.NoSpan, i32, qword.FromI32(1))
	right := NewLiteral(source.NoSpan, i32, qword.FromI32(2))
	bin := NewBinary(source.NoSpan, i32, qword.Add, left, right)
	assert.Equal(t, qword.Add, bin.BinOp)
	assert.Same(t, left, bin.Left)
	assert.Same(t, right, bin.Right)
}

func TestExprKind_String(t *testing.T) {
	assert.Equal(t, "FnCall", FnCall.String())
	assert.Equal(t, "Error", Error.String())
}
