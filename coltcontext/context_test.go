package coltcontext

import (
	"testing"

	"github.com/coltlang/coltfront/ast"
	"github.com/coltlang/coltfront/qword"
	"github.com/coltlang/coltfront/source"
	"github.com/stretchr/testify/assert"
)

func TestContext_InternTypeReturnsSamePointerForEqualStructure(t *testing.T) {
	c := New()
	a := c.BuiltIn(qword.I32, false)
	b := c.BuiltIn(qword.I32, false)
	assert.Same(t, a, b)
}

func TestContext_InternTypeDistinguishesMutability(t *testing.T) {
	c := New()
	a := c.BuiltIn(qword.I32, false)
	b := c.BuiltIn(qword.I32, true)
	assert.NotSame(t, a, b)
}

func TestContext_PointerTypesInternByPointeeIdentity(t *testing.T) {
	c := New()
	i32 := c.BuiltIn(qword.I32, false)
	p1 := c.PointerTo(i32, false)
	p2 := c.PointerTo(i32, false)
	assert.Same(t, p1, p2)
}

func TestContext_VoidAndErrorAreSingletons(t *testing.T) {
	c := New()
	assert.True(t, c.Void().IsVoid())
	assert.True(t, c.ErrorType().IsError())
	assert.Same(t, c.Void(), c.InternType(c.Void()))
}

func TestContext_OwnExprGrowsArena(t *testing.T) {
	c := New()
	assert.Equal(t, 0, c.ExprCount())
	c.OwnExpr(ast.NewLiteral(source.NoSpan, c.BuiltIn(qword.I32, false), qword.FromI32(1)))
	assert.Equal(t, 1, c.ExprCount())
}

func TestContext_OwnStringInternsEqualStrings(t *testing.T) {
	c := New()
	a := c.OwnString("hello")
	b := c.OwnString("hello")
	assert.Equal(t, a, b)
}
