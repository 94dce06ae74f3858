package types

import "github.com/coltlang/coltfront/qword"

// SupportsOp answers spec.md §4.5: does t's class allow binary operator op?
// The tables below are exactly the constants spec.md §3.3 lists:
//   - integral built-ins:  + - * / % == != < <= > >= & | ^ << >>
//   - floating built-ins:  + - * / == != < <= > >=
//   - bool:                == != && ||
//   - char / lstring:      == !=
//
// Pointer, void, error and function types support no binary operator in
// this core (the parser rejects any use of one as a binary operand).
func (t *Type) SupportsOp(op qword.BinaryOp) bool {
	if t.Kind != KindBuiltIn {
		return false
	}
	switch {
	case t.BuiltIn == qword.Bool:
		return boolOps[op]
	case t.BuiltIn == qword.Char || t.BuiltIn == qword.LString:
		return equalityOps[op]
	case t.BuiltIn.IsIntegral():
		return integralOps[op]
	case t.BuiltIn.IsFloating():
		return floatingOps[op]
	default:
		return false
	}
}

var equalityOps = map[qword.BinaryOp]bool{
	qword.Eq:  true,
	qword.Neq: true,
}

var boolOps = map[qword.BinaryOp]bool{
	qword.Eq:      true,
	qword.Neq:     true,
	qword.BoolAnd: true,
	qword.BoolOr:  true,
}

var floatingOps = map[qword.BinaryOp]bool{
	qword.Add: true,
	qword.Sub: true,
	qword.Mul: true,
	qword.Div: true,
	qword.Eq:  true,
	qword.Neq: true,
	qword.Lt:  true,
	qword.Leq: true,
	qword.Gt:  true,
	qword.Geq: true,
}

var integralOps = map[qword.BinaryOp]bool{
	qword.Add:    true,
	qword.Sub:    true,
	qword.Mul:    true,
	qword.Div:    true,
	qword.Mod:    true,
	qword.Eq:     true,
	qword.Neq:    true,
	qword.Lt:     true,
	qword.Leq:    true,
	qword.Gt:     true,
	qword.Geq:    true,
	qword.BitAnd: true,
	qword.BitOr:  true,
	qword.BitXor: true,
	qword.Shl:    true,
	qword.Shr:    true,
}
