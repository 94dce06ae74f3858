package qword

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

// TestAdd_SignedOverflow mirrors spec.md §8's scenario: add(i8, 120, 10).
func TestAdd_SignedOverflow(t *testing.T) {
	r, err := Add(FromI8(120), FromI8(10), I8)
	assert.Equal(t, SignedOverflow, err)
	assert.Equal(t, int8(-126), r.AsI8()) // 130 wraps to -126 in two's complement i8
}

// TestDiv_ByZero mirrors spec.md §8's scenario: div(u32, 7, 0).
func TestDiv_ByZero(t *testing.T) {
	_, err := Div(FromU32(7), FromU32(0), U32)
	assert.Equal(t, DivByZero, err)
}

// TestShl_GreaterEqualWidth mirrors spec.md §8's scenario: shl(u16, 1, 16).
func TestShl_GreaterEqualWidth(t *testing.T) {
	r, err := Shl(FromU16(1), FromU16(16), U16)
	assert.Equal(t, ShiftGeWidth, err)
	assert.Equal(t, uint16(1), r.AsU16())
}

// TestAdd_FloatNaNInput mirrors spec.md §8's scenario: add(f64, NaN, 1.0).
func TestAdd_FloatNaNInput(t *testing.T) {
	r, err := Add(FromF64(math.NaN()), FromF64(1.0), F64)
	assert.Equal(t, WasNaN, err)
	assert.True(t, math.IsNaN(r.AsF64()))
}

// TestBitNot mirrors spec.md §8's scenario: bit_not(u8, 0x00).
func TestBitNot(t *testing.T) {
	r, err := BitNot(FromU8(0x00), U8)
	assert.Equal(t, Ok, err)
	assert.Equal(t, uint8(0xFF), r.AsU8())
}

func TestAdd_UnsignedOverflowWraps(t *testing.T) {
	r, err := Add(FromU8(250), FromU8(10), U8)
	assert.Equal(t, UnsignedOverflow, err)
	assert.Equal(t, uint8(4), r.AsU8())
}

func TestSub_UnsignedUnderflow(t *testing.T) {
	r, err := Sub(FromU8(1), FromU8(2), U8)
	assert.Equal(t, UnsignedUnderflow, err)
	assert.Equal(t, uint8(255), r.AsU8())
}

func TestMul_SignedOverflow(t *testing.T) {
	_, err := Mul(FromI32(math.MaxInt32), FromI32(2), I32)
	assert.Equal(t, SignedOverflow, err)
}

func TestDiv_SignedMinByNegOneOverflows(t *testing.T) {
	r, err := Div(FromI32(math.MinInt32), FromI32(-1), I32)
	assert.Equal(t, SignedOverflow, err)
	assert.Equal(t, int32(math.MinInt32), r.AsI32())
}

func TestMod_ByZero(t *testing.T) {
	_, err := Mod(FromI64(5), FromI64(0), I64)
	assert.Equal(t, DivByZero, err)
}

func TestShr_ArithmeticKeepsSign(t *testing.T) {
	r, err := Shr(FromI8(-8), FromI8(1), I8)
	assert.Equal(t, Ok, err)
	assert.Equal(t, int8(-4), r.AsI8())
}

func TestShr_LogicalOnUnsigned(t *testing.T) {
	r, err := Shr(FromU8(0x80), FromU8(1), U8)
	assert.Equal(t, Ok, err)
	assert.Equal(t, uint8(0x40), r.AsU8())
}

func TestEq_StringsAndFloats(t *testing.T) {
	r, err := Eq(FromLString("abc"), FromLString("abc"), LString)
	assert.Equal(t, Ok, err)
	assert.True(t, r.AsBool())

	r2, _ := Eq(FromF64(1.0), FromF64(1.0), F64)
	assert.True(t, r2.AsBool())
}

func TestLt_NaNOperand(t *testing.T) {
	_, err := Lt(FromF32(float32(math.NaN())), FromF32(1.0), F32)
	assert.Equal(t, WasNaN, err)
}

func TestNeg_MinIntOverflows(t *testing.T) {
	r, err := Neg(FromI8(math.MinInt8), I8)
	assert.Equal(t, SignedOverflow, err)
	assert.Equal(t, int8(math.MinInt8), r.AsI8())
}

func TestNeg_Float(t *testing.T) {
	r, err := Neg(FromF64(3.5), F64)
	assert.Equal(t, Ok, err)
	assert.Equal(t, -3.5, r.AsF64())
}

func TestBoolOps(t *testing.T) {
	r, _ := BoolAnd(FromBool(true), FromBool(false), Bool)
	assert.False(t, r.AsBool())
	r2, _ := BoolOr(FromBool(true), FromBool(false), Bool)
	assert.True(t, r2.AsBool())
}

func TestApply_UsesOpTable(t *testing.T) {
	r, err := Apply(Add, FromI64(2), FromI64(3), I64)
	assert.Equal(t, Ok, err)
	assert.Equal(t, int64(5), r.AsI64())
}

func TestConvert_WideningAndNarrowing(t *testing.T) {
	wide := Convert(FromI8(-1), I64)
	assert.Equal(t, int64(-1), wide.AsI64())

	narrow := Convert(FromI64(300), U8)
	assert.Equal(t, uint8(44), narrow.AsU8())
}

// TestOverflowFlagCorrectness is a lightweight property check (spec.md §8
// "Overflow flag correctness") over a spread of i8 add pairs: the flag is Ok
// iff the mathematical sum fits in [-128, 127].
func TestOverflowFlagCorrectness(t *testing.T) {
	for a := -128; a <= 127; a += 7 {
		for b := -128; b <= 127; b += 11 {
			r, err := Add(FromI8(int8(a)), FromI8(int8(b)), I8)
			mathematical := a + b
			fits := mathematical >= -128 && mathematical <= 127
			if fits {
				assert.Equal(t, Ok, err, "a=%d b=%d", a, b)
				assert.Equal(t, int8(mathematical), r.AsI8())
			} else {
				assert.True(t, err.Failed(), "a=%d b=%d should have overflowed", a, b)
			}
		}
	}
}
