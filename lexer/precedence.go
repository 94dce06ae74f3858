package lexer

import "github.com/coltlang/coltfront/qword"

// Precedence levels per spec.md §3.2: assignment operators share the
// lowest, 0, and are parsed right-associative by the parser; every other
// binary operator gets a small integer in [2, 11] so climbing can compare
// them numerically, matching the original's operator_precedence_table
// (BitAnd < Shift < Relational < {Equality, Additive} tied < Multiplicative);
// any non-operator token is the sentinel 255, which terminates the Pratt
// climb in parser.parseBinary.
const (
	PrecAssign      = 0
	PrecOr          = 2
	PrecAnd         = 3
	PrecBitOr       = 4
	PrecBitXor      = 5
	PrecBitAnd      = 6
	PrecShift       = 8
	PrecRelational  = 9
	PrecEquality    = 10
	PrecAdditive    = 10
	PrecMultiplicat = 11
	PrecNone        = 255
)

// Precedence returns tag's binary-operator precedence, or PrecNone if tag
// is not a binary operator at all (the Pratt climb's terminator case).
func Precedence(tag Tag) int {
	switch tag {
	case Equal, PlusEqual, MinusEqual, StarEqual, SlashEqual, PercentEqual,
		AmpEqual, PipeEqual, CaretEqual, LessLessEqual, GreatGreatEqual:
		return PrecAssign
	case PipePipe, KeywordOr:
		return PrecOr
	case AmpAmp, KeywordAnd:
		return PrecAnd
	case Pipe:
		return PrecBitOr
	case Caret:
		return PrecBitXor
	case Amp:
		return PrecBitAnd
	case EqualEqual, BangEqual:
		return PrecEquality
	case Less, LessEqual, Great, GreatEqual:
		return PrecRelational
	case LessLess, GreatGreat:
		return PrecShift
	case Plus, Minus:
		return PrecAdditive
	case Star, Slash, Percent:
		return PrecMultiplicat
	default:
		return PrecNone
	}
}

// IsAssignment reports whether tag is one of the (possibly compound)
// assignment operators, which the parser routes to right-associative
// assignment parsing instead of the left-associative binary climb.
func IsAssignment(tag Tag) bool {
	return Precedence(tag) == PrecAssign && tag != PrecNone
}

// compoundOp maps a compound-assignment tag to the BinaryOp its desugaring
// wraps the right-hand side in: `x ⊕= e` becomes `VarWrite(x, Binary(⊕,
// VarRead(x), e))`, per spec.md §4.3.3. Plain `=` has no entry: it desugars
// to a bare VarWrite with no wrapping Binary.
var compoundOp = map[Tag]qword.BinaryOp{
	PlusEqual:       qword.Add,
	MinusEqual:      qword.Sub,
	StarEqual:       qword.Mul,
	SlashEqual:      qword.Div,
	PercentEqual:    qword.Mod,
	AmpEqual:        qword.BitAnd,
	PipeEqual:       qword.BitOr,
	CaretEqual:      qword.BitXor,
	LessLessEqual:   qword.Shl,
	GreatGreatEqual: qword.Shr,
}

// CompoundOp reports the BinaryOp a compound-assignment tag desugars
// through, if any.
func CompoundOp(tag Tag) (qword.BinaryOp, bool) {
	op, ok := compoundOp[tag]
	return op, ok
}

// binaryOp maps every non-assignment binary-operator tag to its BinaryOp.
var binaryOp = map[Tag]qword.BinaryOp{
	Plus: qword.Add, Minus: qword.Sub, Star: qword.Mul, Slash: qword.Div, Percent: qword.Mod,
	Amp: qword.BitAnd, Pipe: qword.BitOr, Caret: qword.BitXor,
	LessLess: qword.Shl, GreatGreat: qword.Shr,
	EqualEqual: qword.Eq, BangEqual: qword.Neq,
	Less: qword.Lt, LessEqual: qword.Leq, Great: qword.Gt, GreatEqual: qword.Geq,
	AmpAmp: qword.BoolAnd, PipePipe: qword.BoolOr,
	KeywordAnd: qword.BoolAnd, KeywordOr: qword.BoolOr,
}

// ToBinaryOp reports the BinaryOp a non-assignment operator tag denotes.
func ToBinaryOp(tag Tag) (qword.BinaryOp, bool) {
	op, ok := binaryOp[tag]
	return op, ok
}
