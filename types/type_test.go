package types

import (
	"testing"

	"github.com/coltlang/coltfront/qword"
	"github.com/stretchr/testify/assert"
)

func TestSupportsOp_Integral(t *testing.T) {
	i32 := BuiltInType(qword.I32, false)
	assert.True(t, i32.SupportsOp(qword.Add))
	assert.True(t, i32.SupportsOp(qword.Shl))
	assert.False(t, i32.SupportsOp(qword.BoolAnd))
}

func TestSupportsOp_Floating(t *testing.T) {
	f64 := BuiltInType(qword.F64, false)
	assert.True(t, f64.SupportsOp(qword.Div))
	assert.False(t, f64.SupportsOp(qword.BitAnd))
	assert.False(t, f64.SupportsOp(qword.Mod))
}

func TestSupportsOp_Bool(t *testing.T) {
	b := BuiltInType(qword.Bool, false)
	assert.True(t, b.SupportsOp(qword.BoolAnd))
	assert.True(t, b.SupportsOp(qword.Eq))
	assert.False(t, b.SupportsOp(qword.Add))
}

func TestSupportsOp_CharAndLString(t *testing.T) {
	c := BuiltInType(qword.Char, false)
	assert.True(t, c.SupportsOp(qword.Eq))
	assert.False(t, c.SupportsOp(qword.Lt))

	s := BuiltInType(qword.LString, false)
	assert.True(t, s.SupportsOp(qword.Neq))
	assert.False(t, s.SupportsOp(qword.Add))
}

func TestSupportsOp_PointerRejectsEverything(t *testing.T) {
	p := PointerTo(BuiltInType(qword.I32, false), false)
	assert.False(t, p.SupportsOp(qword.Eq))
}

func TestName(t *testing.T) {
	fn := FunctionType(Void(), []*Type{BuiltInType(qword.I32, false)}, false)
	assert.Equal(t, "fn(i32) -> void", fn.Name())

	ptr := PointerTo(BuiltInType(qword.Char, true), false)
	assert.Equal(t, "PTR<mut char>", ptr.Name())
}
