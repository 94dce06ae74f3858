package qword

import "math"

// signedInt and unsignedInt constrain the generic checked-arithmetic helpers
// below to Go's fixed-width integer kinds, so one implementation of each
// check serves every Colt integer width instead of eight hand-duplicated
// copies (the original engine this is ported from switches per BuiltInID
// and re-implements the same check per width in C++; Go generics let the
// check itself live once).
type signedInt interface {
	~int8 | ~int16 | ~int32 | ~int64
}

type unsignedInt interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64
}

func checkedAddSigned[T signedInt](a, b T) (T, OpError) {
	sum := a + b
	if b > 0 && sum < a {
		return sum, SignedOverflow
	}
	if b < 0 && sum > a {
		return sum, SignedUnderflow
	}
	return sum, Ok
}

func checkedAddUnsigned[T unsignedInt](a, b T) (T, OpError) {
	sum := a + b
	if sum < a {
		return sum, UnsignedOverflow
	}
	return sum, Ok
}

func checkedSubSigned[T signedInt](a, b T) (T, OpError) {
	diff := a - b
	if b < 0 && diff < a {
		return diff, SignedOverflow
	}
	if b > 0 && diff > a {
		return diff, SignedUnderflow
	}
	return diff, Ok
}

func checkedSubUnsigned[T unsignedInt](a, b T) (T, OpError) {
	diff := a - b
	if b > a {
		return diff, UnsignedUnderflow
	}
	return diff, Ok
}

func checkedMulSigned[T signedInt](a, b T) (T, OpError) {
	prod := a * b
	if a == -1 && b < 0 && prod < 0 {
		// -1 * MinInt wraps back to MinInt, which the division check misses.
		return prod, SignedOverflow
	}
	if a != 0 && prod/a != b {
		if (a > 0) == (b > 0) {
			return prod, SignedOverflow
		}
		return prod, SignedUnderflow
	}
	return prod, Ok
}

func checkedMulUnsigned[T unsignedInt](a, b T) (T, OpError) {
	prod := a * b
	if a != 0 && prod/a != b {
		return prod, UnsignedOverflow
	}
	return prod, Ok
}

// Add implements spec.md §4.6's `add` operation.
func Add(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	switch id {
	case U8:
		r, e := checkedAddUnsigned(a.AsU8(), b.AsU8())
		return FromU8(r), e
	case U16:
		r, e := checkedAddUnsigned(a.AsU16(), b.AsU16())
		return FromU16(r), e
	case U32:
		r, e := checkedAddUnsigned(a.AsU32(), b.AsU32())
		return FromU32(r), e
	case U64:
		r, e := checkedAddUnsigned(a.AsU64(), b.AsU64())
		return FromU64(r), e
	case I8:
		r, e := checkedAddSigned(a.AsI8(), b.AsI8())
		return FromI8(r), e
	case I16:
		r, e := checkedAddSigned(a.AsI16(), b.AsI16())
		return FromI16(r), e
	case I32:
		r, e := checkedAddSigned(a.AsI32(), b.AsI32())
		return FromI32(r), e
	case I64:
		r, e := checkedAddSigned(a.AsI64(), b.AsI64())
		return FromI64(r), e
	case F32:
		return floatOp32(a, b, func(x, y float32) float32 { return x + y })
	case F64:
		return floatOp64(a, b, func(x, y float64) float64 { return x + y })
	default:
		return FromBuiltIn(id), Ok
	}
}

// Sub implements spec.md §4.6's `sub` operation.
func Sub(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	switch id {
	case U8:
		r, e := checkedSubUnsigned(a.AsU8(), b.AsU8())
		return FromU8(r), e
	case U16:
		r, e := checkedSubUnsigned(a.AsU16(), b.AsU16())
		return FromU16(r), e
	case U32:
		r, e := checkedSubUnsigned(a.AsU32(), b.AsU32())
		return FromU32(r), e
	case U64:
		r, e := checkedSubUnsigned(a.AsU64(), b.AsU64())
		return FromU64(r), e
	case I8:
		r, e := checkedSubSigned(a.AsI8(), b.AsI8())
		return FromI8(r), e
	case I16:
		r, e := checkedSubSigned(a.AsI16(), b.AsI16())
		return FromI16(r), e
	case I32:
		r, e := checkedSubSigned(a.AsI32(), b.AsI32())
		return FromI32(r), e
	case I64:
		r, e := checkedSubSigned(a.AsI64(), b.AsI64())
		return FromI64(r), e
	case F32:
		return floatOp32(a, b, func(x, y float32) float32 { return x - y })
	case F64:
		return floatOp64(a, b, func(x, y float64) float64 { return x - y })
	default:
		return FromBuiltIn(id), Ok
	}
}

// Mul implements spec.md §4.6's `mul` operation.
func Mul(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	switch id {
	case U8:
		r, e := checkedMulUnsigned(a.AsU8(), b.AsU8())
		return FromU8(r), e
	case U16:
		r, e := checkedMulUnsigned(a.AsU16(), b.AsU16())
		return FromU16(r), e
	case U32:
		r, e := checkedMulUnsigned(a.AsU32(), b.AsU32())
		return FromU32(r), e
	case U64:
		r, e := checkedMulUnsigned(a.AsU64(), b.AsU64())
		return FromU64(r), e
	case I8:
		r, e := checkedMulSigned(a.AsI8(), b.AsI8())
		return FromI8(r), e
	case I16:
		r, e := checkedMulSigned(a.AsI16(), b.AsI16())
		return FromI16(r), e
	case I32:
		r, e := checkedMulSigned(a.AsI32(), b.AsI32())
		return FromI32(r), e
	case I64:
		r, e := checkedMulSigned(a.AsI64(), b.AsI64())
		return FromI64(r), e
	case F32:
		return floatOp32(a, b, func(x, y float32) float32 { return x * y })
	case F64:
		return floatOp64(a, b, func(x, y float64) float64 { return x * y })
	default:
		return FromBuiltIn(id), Ok
	}
}

// Div implements spec.md §4.6's `div` operation. Integer division by zero is
// reported as DivByZero; signed division additionally detects the
// MinInt/-1 overflow case.
func Div(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	switch id {
	case U8:
		if b.AsU8() == 0 {
			return FromU8(0), DivByZero
		}
		return FromU8(a.AsU8() / b.AsU8()), Ok
	case U16:
		if b.AsU16() == 0 {
			return FromU16(0), DivByZero
		}
		return FromU16(a.AsU16() / b.AsU16()), Ok
	case U32:
		if b.AsU32() == 0 {
			return FromU32(0), DivByZero
		}
		return FromU32(a.AsU32() / b.AsU32()), Ok
	case U64:
		if b.AsU64() == 0 {
			return FromU64(0), DivByZero
		}
		return FromU64(a.AsU64() / b.AsU64()), Ok
	case I8:
		av, bv := a.AsI8(), b.AsI8()
		if bv == 0 {
			return FromI8(0), DivByZero
		}
		if av == math.MinInt8 && bv == -1 {
			return FromI8(av), SignedOverflow
		}
		return FromI8(av / bv), Ok
	case I16:
		av, bv := a.AsI16(), b.AsI16()
		if bv == 0 {
			return FromI16(0), DivByZero
		}
		if av == math.MinInt16 && bv == -1 {
			return FromI16(av), SignedOverflow
		}
		return FromI16(av / bv), Ok
	case I32:
		av, bv := a.AsI32(), b.AsI32()
		if bv == 0 {
			return FromI32(0), DivByZero
		}
		if av == math.MinInt32 && bv == -1 {
			return FromI32(av), SignedOverflow
		}
		return FromI32(av / bv), Ok
	case I64:
		av, bv := a.AsI64(), b.AsI64()
		if bv == 0 {
			return FromI64(0), DivByZero
		}
		if av == math.MinInt64 && bv == -1 {
			return FromI64(av), SignedOverflow
		}
		return FromI64(av / bv), Ok
	case F32:
		return floatOp32(a, b, func(x, y float32) float32 { return x / y })
	case F64:
		return floatOp64(a, b, func(x, y float64) float64 { return x / y })
	default:
		return FromBuiltIn(id), Ok
	}
}

// Mod implements spec.md §4.6's `mod` operation, defined only for integers.
func Mod(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	switch id {
	case U8:
		if b.AsU8() == 0 {
			return FromU8(0), DivByZero
		}
		return FromU8(a.AsU8() % b.AsU8()), Ok
	case U16:
		if b.AsU16() == 0 {
			return FromU16(0), DivByZero
		}
		return FromU16(a.AsU16() % b.AsU16()), Ok
	case U32:
		if b.AsU32() == 0 {
			return FromU32(0), DivByZero
		}
		return FromU32(a.AsU32() % b.AsU32()), Ok
	case U64:
		if b.AsU64() == 0 {
			return FromU64(0), DivByZero
		}
		return FromU64(a.AsU64() % b.AsU64()), Ok
	case I8:
		if b.AsI8() == 0 {
			return FromI8(0), DivByZero
		}
		return FromI8(a.AsI8() % b.AsI8()), Ok
	case I16:
		if b.AsI16() == 0 {
			return FromI16(0), DivByZero
		}
		return FromI16(a.AsI16() % b.AsI16()), Ok
	case I32:
		if b.AsI32() == 0 {
			return FromI32(0), DivByZero
		}
		return FromI32(a.AsI32() % b.AsI32()), Ok
	case I64:
		if b.AsI64() == 0 {
			return FromI64(0), DivByZero
		}
		return FromI64(a.AsI64() % b.AsI64()), Ok
	default:
		return FromBuiltIn(id), Ok
	}
}

func floatOp32(a, b QWORD, f func(float32, float32) float32) (QWORD, OpError) {
	av, bv := a.AsF32(), b.AsF32()
	if math.IsNaN(float64(av)) {
		return a, WasNaN
	}
	if math.IsNaN(float64(bv)) {
		return b, WasNaN
	}
	r := f(av, bv)
	if math.IsNaN(float64(r)) {
		return FromF32(r), RetNaN
	}
	return FromF32(r), Ok
}

func floatOp64(a, b QWORD, f func(float64, float64) float64) (QWORD, OpError) {
	av, bv := a.AsF64(), b.AsF64()
	if math.IsNaN(av) {
		return a, WasNaN
	}
	if math.IsNaN(bv) {
		return b, WasNaN
	}
	r := f(av, bv)
	if math.IsNaN(r) {
		return FromF64(r), RetNaN
	}
	return FromF64(r), Ok
}

// BitAnd, BitOr, BitXor implement spec.md §4.6's bitwise operations, defined
// for integers (all widths map cleanly onto uint64 storage).
func BitAnd(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	return QWORD{id: id, bits: maskWidth(a.bits&b.bits, id)}, Ok
}

func BitOr(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	return QWORD{id: id, bits: maskWidth(a.bits|b.bits, id)}, Ok
}

func BitXor(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	return QWORD{id: id, bits: maskWidth(a.bits^b.bits, id)}, Ok
}

// BitNot implements spec.md §4.6's `bit_not` unary operation.
func BitNot(a QWORD, id BuiltInID) (QWORD, OpError) {
	return QWORD{id: id, bits: maskWidth(^a.bits, id)}, Ok
}

func maskWidth(bits uint64, id BuiltInID) uint64 {
	switch id.BitWidth() {
	case 8:
		return bits & 0xFF
	case 16:
		return bits & 0xFFFF
	case 32:
		return bits & 0xFFFFFFFF
	default:
		return bits
	}
}

// Shl, Shr implement spec.md §4.6's shift operations. The shift amount is
// itself a QWORD (conventionally of the same integral type) carried in b;
// a shift amount greater than or equal to the value's bit width is an error.
func Shl(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	width := id.BitWidth()
	shiftBy := b.AsU64()
	if shiftBy >= uint64(width) {
		return a, ShiftGeWidth
	}
	return QWORD{id: id, bits: maskWidth(a.bits<<shiftBy, id)}, Ok
}

func Shr(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	width := id.BitWidth()
	shiftBy := b.AsU64()
	if shiftBy >= uint64(width) {
		return a, ShiftGeWidth
	}
	if id.IsSigned() {
		// Arithmetic shift: sign-extend through Go's signed right shift.
		switch id {
		case I8:
			return FromI8(a.AsI8() >> shiftBy), Ok
		case I16:
			return FromI16(a.AsI16() >> shiftBy), Ok
		case I32:
			return FromI32(a.AsI32() >> shiftBy), Ok
		case I64:
			return FromI64(a.AsI64() >> shiftBy), Ok
		}
	}
	return QWORD{id: id, bits: maskWidth(a.bits>>shiftBy, id)}, Ok
}

// BoolAnd, BoolOr implement spec.md §4.6's logical operations, defined for
// bool only.
func BoolAnd(a, b QWORD, _ BuiltInID) (QWORD, OpError) {
	return FromBool(a.AsBool() && b.AsBool()), Ok
}

func BoolOr(a, b QWORD, _ BuiltInID) (QWORD, OpError) {
	return FromBool(a.AsBool() || b.AsBool()), Ok
}

// Eq, Neq implement spec.md §4.6's equality operators, defined for every
// built-in. NaN comparisons follow IEEE 754 (NaN != anything, including
// itself) and are not treated as engine errors here, since eq/neq's error
// conditions per spec.md are only "NaN in; NaN out" for the ordering ops.
func Eq(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	return FromBool(rawEqual(a, b, id)), Ok
}

func Neq(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	return FromBool(!rawEqual(a, b, id)), Ok
}

func rawEqual(a, b QWORD, id BuiltInID) bool {
	switch {
	case id == LString:
		return a.AsLString() == b.AsLString()
	case id.IsFloating():
		return a.AsF64Generic() == b.AsF64Generic()
	default:
		return a.bits == b.bits
	}
}

// Lt, Leq, Gt, Geq implement spec.md §4.6's ordering operators, defined for
// numeric built-ins. A NaN operand yields WasNaN; numeric comparisons never
// produce a NaN result, so RetNaN cannot arise here.
func Lt(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	return orderCompare(a, b, id, func(x, y float64) bool { return x < y })
}

func Leq(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	return orderCompare(a, b, id, func(x, y float64) bool { return x <= y })
}

func Gt(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	return orderCompare(a, b, id, func(x, y float64) bool { return x > y })
}

func Geq(a, b QWORD, id BuiltInID) (QWORD, OpError) {
	return orderCompare(a, b, id, func(x, y float64) bool { return x >= y })
}

func orderCompare(a, b QWORD, id BuiltInID, cmp func(float64, float64) bool) (QWORD, OpError) {
	if id.IsFloating() {
		av, bv := a.AsF64Generic(), b.AsF64Generic()
		if math.IsNaN(av) {
			return a, WasNaN
		}
		if math.IsNaN(bv) {
			return b, WasNaN
		}
	}
	return FromBool(cmp(a.AsF64Generic(), b.AsF64Generic())), Ok
}

// Neg implements spec.md §4.6's unary `neg`, defined for signed integers and
// floats. Negating a signed type's minimum value overflows; negating NaN
// short-circuits with WasNaN.
func Neg(a QWORD, id BuiltInID) (QWORD, OpError) {
	switch id {
	case I8:
		if a.AsI8() == math.MinInt8 {
			return a, SignedOverflow
		}
		return FromI8(-a.AsI8()), Ok
	case I16:
		if a.AsI16() == math.MinInt16 {
			return a, SignedOverflow
		}
		return FromI16(-a.AsI16()), Ok
	case I32:
		if a.AsI32() == math.MinInt32 {
			return a, SignedOverflow
		}
		return FromI32(-a.AsI32()), Ok
	case I64:
		if a.AsI64() == math.MinInt64 {
			return a, SignedOverflow
		}
		return FromI64(-a.AsI64()), Ok
	case F32:
		if math.IsNaN(float64(a.AsF32())) {
			return a, WasNaN
		}
		return FromF32(-a.AsF32()), Ok
	case F64:
		if math.IsNaN(a.AsF64()) {
			return a, WasNaN
		}
		return FromF64(-a.AsF64()), Ok
	default:
		return a, Ok
	}
}

// BinaryOpFunc is the shape every entry in OpTable implements.
type BinaryOpFunc func(a, b QWORD, id BuiltInID) (QWORD, OpError)

// OpTable maps each BinaryOp to its operation function, indexed by the
// operator's enum value per spec.md §4.6 ("A lookup table maps each
// BinaryOperator to its operation function... assignment operators are
// excluded").
var OpTable = map[BinaryOp]BinaryOpFunc{
	Add:     Add,
	Sub:     Sub,
	Mul:     Mul,
	Div:     Div,
	Mod:     Mod,
	BitAnd:  BitAnd,
	BitOr:   BitOr,
	BitXor:  BitXor,
	Shl:     Shl,
	Shr:     Shr,
	Eq:      Eq,
	Neq:     Neq,
	Lt:      Lt,
	Leq:     Leq,
	Gt:      Gt,
	Geq:     Geq,
	BoolAnd: BoolAnd,
	BoolOr:  BoolOr,
}

// Apply looks up op in OpTable and runs it; it exists so callers holding
// only a BinaryOp (e.g. a back-end) never need to import the fixed set of per-operator function names.
func Apply(op BinaryOp, a, b QWORD, id BuiltInID) (QWORD, OpError) {
	fn, ok := OpTable[op]
	if !ok {
		return FromBuiltIn(id), Ok
	}
	return fn(a, b, id)
}

// Convert reinterprets a into the numeric domain named by to. Spec.md §4.6
// marks `cnv` as "reserved, not specified here"; this module resolves that
// open question with the natural Go conversion semantics (truncate on
// narrowing, sign/zero-extend on widening, standard float<->int rules),
// documented in DESIGN.md rather than left unimplemented.
func Convert(a QWORD, to BuiltInID) QWORD {
	switch to {
	case Bool:
		return FromBool(a.AsF64Generic() != 0)
	case Char:
		return FromChar(byte(a.AsU64()))
	case U8:
		return FromU8(uint8(a.asIntDomain()))
	case U16:
		return FromU16(uint16(a.asIntDomain()))
	case U32:
		return FromU32(uint32(a.asIntDomain()))
	case U64:
		return FromU64(uint64(a.asIntDomain()))
	case I8:
		return FromI8(int8(a.asIntDomain()))
	case I16:
		return FromI16(int16(a.asIntDomain()))
	case I32:
		return FromI32(int32(a.asIntDomain()))
	case I64:
		return FromI64(a.asIntDomain())
	case F32:
		return FromF32(float32(a.AsF64Generic()))
	case F64:
		return FromF64(a.AsF64Generic())
	default:
		return a
	}
}

func (q QWORD) asIntDomain() int64 {
	if q.id.IsFloating() {
		return int64(q.AsF64Generic())
	}
	switch q.id {
	case I8:
		return int64(q.AsI8())
	case I16:
		return int64(q.AsI16())
	case I32:
		return int64(q.AsI32())
	case I64, I128:
		return q.AsI64()
	}
	return int64(q.bits)
}
