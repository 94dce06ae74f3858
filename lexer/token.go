/*
Package lexer tokenises Colt source into the fixed alphabet of lexemes
spec.md §3.2 describes: punctuation, operators (single, compound, and
assignment), delimiters, literals with explicit bit-width suffixes,
keywords, identifiers, EOF and ERROR. The token-tag grouping, the maximal-
munch multi-character operator scan, and the overall field layout of Token
and Lexer are grounded on the teacher's lexer/token.go and lexer/lexer.go,
generalized from GoMix's token set to Colt's (and from byte/rune columns to
spec.md's line-and-span model).
*/
package lexer

import "fmt"

// Tag is the token's tag, grouped into contiguous ranges the way
// spec.md §3.2 asks ("so that integer comparisons can classify tokens").
type Tag uint8

const (
	// Arithmetic / bitwise single-character operators.
	Plus Tag = iota
	Minus
	Star
	Slash
	Percent
	Amp
	Pipe
	Caret
	LessLess
	GreatGreat

	// Logical operators.
	AmpAmp
	PipePipe

	// Comparison operators.
	Less
	LessEqual
	Great
	GreatEqual
	BangEqual
	EqualEqual

	// Assignment operators (compound + plain =).
	Equal
	PlusEqual
	MinusEqual
	StarEqual
	SlashEqual
	PercentEqual
	AmpEqual
	PipeEqual
	CaretEqual
	LessLessEqual
	GreatGreatEqual

	// Delimiters.
	Comma
	Semicolon
	Colon
	LeftParen
	RightParen
	LeftCurly
	RightCurly
	LeftSquare
	RightSquare

	// Arrows.
	MinusGreat
	EqualGreat

	// Pre/post increment/decrement and remaining unary operators.
	PlusPlus
	MinusMinus
	Tilde
	Bang

	// Literal tags.
	BoolL
	CharL
	I8L
	U8L
	I16L
	U16L
	I32L
	U32L
	I64L
	U64L
	FloatL
	DoubleL
	StringL

	// Keywords.
	KeywordExtern
	KeywordIf
	KeywordElif
	KeywordElse
	KeywordFn
	KeywordReturn
	KeywordVar
	KeywordVoid
	KeywordBool
	KeywordChar
	KeywordI8
	KeywordU8
	KeywordI16
	KeywordU16
	KeywordI32
	KeywordU32
	KeywordI64
	KeywordU64
	KeywordFloat
	KeywordDouble
	KeywordLString
	KeywordMut
	KeywordPtr
	KeywordTypeof
	KeywordSizeof
	KeywordAlignof
	KeywordAlignas
	KeywordCast
	KeywordReinterpretAs
	KeywordCompileT
	KeywordFor
	KeywordWhile
	KeywordBreak
	KeywordContinue
	KeywordSwitch
	KeywordCase
	KeywordDefault
	KeywordGoto
	KeywordAnd
	KeywordOr
	KeywordTrue
	KeywordFalse

	Identifier
	EOF
	Error
)

var names = map[Tag]string{
	Plus: "+", Minus: "-", Star: "*", Slash: "/", Percent: "%",
	Amp: "&", Pipe: "|", Caret: "^", LessLess: "<<", GreatGreat: ">>",
	AmpAmp: "&&", PipePipe: "||",
	Less: "<", LessEqual: "<=", Great: ">", GreatEqual: ">=",
	BangEqual: "!=", EqualEqual: "==",
	Equal: "=", PlusEqual: "+=", MinusEqual: "-=", StarEqual: "*=",
	SlashEqual: "/=", PercentEqual: "%=", AmpEqual: "&=", PipeEqual: "|=",
	CaretEqual: "^=", LessLessEqual: "<<=", GreatGreatEqual: ">>=",
	Comma: ",", Semicolon: ";", Colon: ":",
	LeftParen: "(", RightParen: ")", LeftCurly: "{", RightCurly: "}",
	LeftSquare: "[", RightSquare: "]",
	MinusGreat: "->", EqualGreat: "=>",
	PlusPlus: "++", MinusMinus: "--", Tilde: "~", Bang: "!",
	BoolL: "BOOL_L", CharL: "CHAR_L",
	I8L: "I8_L", U8L: "U8_L", I16L: "I16_L", U16L: "U16_L",
	I32L: "I32_L", U32L: "U32_L", I64L: "I64_L", U64L: "U64_L",
	FloatL: "FLOAT_L", DoubleL: "DOUBLE_L", StringL: "STRING_L",
	KeywordExtern: "extern", KeywordIf: "if", KeywordElif: "elif", KeywordElse: "else",
	KeywordFn: "fn", KeywordReturn: "return", KeywordVar: "var",
	KeywordVoid: "void", KeywordBool: "bool", KeywordChar: "char",
	KeywordI8: "i8", KeywordU8: "u8", KeywordI16: "i16", KeywordU16: "u16",
	KeywordI32: "i32", KeywordU32: "u32", KeywordI64: "i64", KeywordU64: "u64",
	KeywordFloat: "float", KeywordDouble: "double", KeywordLString: "lstring",
	KeywordMut: "mut", KeywordPtr: "PTR", KeywordTypeof: "typeof",
	KeywordSizeof: "sizeof", KeywordAlignof: "alignof", KeywordAlignas: "alignas",
	KeywordCast: "cast", KeywordReinterpretAs: "reinterpret_as",
	KeywordCompileT: "compile_t",
	KeywordFor: "for", KeywordWhile: "while", KeywordBreak: "break",
	KeywordContinue: "continue", KeywordSwitch: "switch", KeywordCase: "case",
	KeywordDefault: "default", KeywordGoto: "goto",
	KeywordAnd: "and", KeywordOr: "or",
	KeywordTrue: "true", KeywordFalse: "false",
	Identifier: "IDENTIFIER", EOF: "EOF", Error: "ERROR",
}

func (t Tag) String() string {
	if n, ok := names[t]; ok {
		return n
	}
	return fmt.Sprintf("Tag(%d)", uint8(t))
}

// keywords is the reverse lookup the scanner uses once it has accumulated
// a maximal identifier: spec.md §6's keyword set plus true/false, which
// spec.md §4.2 calls out as reserved literals producing BOOL_L.
var keywords = map[string]Tag{
	"extern": KeywordExtern, "if": KeywordIf, "elif": KeywordElif, "else": KeywordElse,
	"fn": KeywordFn, "return": KeywordReturn, "var": KeywordVar,
	"void": KeywordVoid, "bool": KeywordBool, "char": KeywordChar,
	"i8": KeywordI8, "u8": KeywordU8, "i16": KeywordI16, "u16": KeywordU16,
	"i32": KeywordI32, "u32": KeywordU32, "i64": KeywordI64, "u64": KeywordU64,
	"f32": KeywordFloat, "float": KeywordFloat,
	"f64": KeywordDouble, "double": KeywordDouble,
	"lstring": KeywordLString, "mut": KeywordMut, "PTR": KeywordPtr,
	"typeof": KeywordTypeof, "sizeof": KeywordSizeof, "alignof": KeywordAlignof,
	"alignas": KeywordAlignas, "cast": KeywordCast, "reinterpret_as": KeywordReinterpretAs,
	"compile_t": KeywordCompileT,
	"for": KeywordFor, "while": KeywordWhile, "break": KeywordBreak,
	"continue": KeywordContinue, "switch": KeywordSwitch, "case": KeywordCase,
	"default": KeywordDefault, "goto": KeywordGoto,
	"and": KeywordAnd, "or": KeywordOr,
	"true": KeywordTrue, "false": KeywordFalse,
}

func lookupIdent(ident string) Tag {
	if tag, ok := keywords[ident]; ok {
		return tag
	}
	return Identifier
}
