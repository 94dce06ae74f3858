package parser

import (
	"testing"

	"github.com/coltlang/coltfront/ast"
	"github.com/coltlang/coltfront/coltcontext"
	"github.com/coltlang/coltfront/diag"
	"github.com/coltlang/coltfront/source"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func parse(t *testing.T, src string) (*ast.Expr, int) {
	t.Helper()
	buf := source.NewBuffer("<test>", src)
	ctx := coltcontext.New()
	reporter := diag.NewReporter(diag.Config{NoColor: true, NoError: true, NoWarning: true})
	return CreateAST(buf, ctx, reporter)
}

func TestParser_SimpleArithmeticPrecedence(t *testing.T) {
	root, errs := parse(t, "2 + 3 * 4;")
	require.Equal(t, 0, errs)
	require.Len(t, root.Statements, 1)
	bin := root.Statements[0]
	assert.Equal(t, ast.Binary, bin.Kind)
	// 2 + (3 * 4): top operator is Add, right side is a Mul.
	assert.Equal(t, ast.Binary, bin.Right.Kind)
}

func TestParser_RightAssociativeAssignment(t *testing.T) {
	// Locals, not globals: spec.md §4.3.2 leaves global-variable reads
	// unresolved, so exercising assignment resolution needs a function body.
	root, errs := parse(t, "fn f() -> void { var mut x: i32 = 1; var mut y: i32 = 2; x = y = 3; }")
	require.Equal(t, 0, errs)
	body := root.Statements[0].Body
	last := body.Statements[2]
	assert.Equal(t, ast.VarWrite, last.Kind)
	assert.Equal(t, "x", last.Name)
	assert.Equal(t, ast.VarWrite, last.Operand.Kind)
	assert.Equal(t, "y", last.Operand.Name)
}

func TestParser_FunctionDeclAndCallArity(t *testing.T) {
	root, errs := parse(t, "fn add(a: i32, b: i32) -> i32 { return a + b; } add(1i32, 2i32);")
	require.Equal(t, 0, errs)
	require.Len(t, root.Statements, 2)
	assert.Equal(t, ast.FnDef, root.Statements[0].Kind)
	call := root.Statements[1]
	assert.Equal(t, ast.FnCall, call.Kind)
	assert.Len(t, call.Args, 2)
}

func TestParser_CallArityMismatchReportsError(t *testing.T) {
	_, errs := parse(t, "fn add(a: i32, b: i32) -> i32 { return a + b; } add(1);")
	assert.Greater(t, errs, 0)
}

func TestParser_ExternFunctionDeclaration(t *testing.T) {
	root, errs := parse(t, "extern fn puts(s: lstring) -> i32;")
	require.Equal(t, 0, errs)
	decl := root.Statements[0]
	assert.Equal(t, ast.FnDecl, decl.Kind)
	assert.True(t, decl.Extern)
}

func TestParser_IfElifElseDesugarsToNestedCondition(t *testing.T) {
	root, errs := parse(t, `
	fn classify(x: i32) -> i64 {
		if (x < 0) { return 0; }
		elif (x == 0) { return 1; }
		else { return 2; }
	}
	`)
	require.Equal(t, 0, errs)
	fn := root.Statements[0]
	ifNode := fn.Body.Statements[0]
	assert.Equal(t, ast.Condition, ifNode.Kind)
	assert.Equal(t, ast.Condition, ifNode.Else.Kind)
	assert.NotNil(t, ifNode.Else.Else)
}

func TestParser_UnknownIdentifierIsError(t *testing.T) {
	_, errs := parse(t, "y + 1;")
	assert.Greater(t, errs, 0)
}

func TestParser_NestedPointerTypeSplitsGreatGreat(t *testing.T) {
	root, errs := parse(t, "var mut p: PTR<PTR<i32>>;")
	require.Equal(t, 0, errs)
	decl := root.Statements[0]
	assert.True(t, decl.Type.IsPointer())
	assert.True(t, decl.Type.Pointee.IsPointer())
}

func TestParser_CompoundAssignmentDesugarsToBinary(t *testing.T) {
	root, errs := parse(t, "fn f() -> void { var mut x: i32 = 1; x += 2; }")
	require.Equal(t, 0, errs)
	body := root.Statements[0].Body
	write := body.Statements[1]
	assert.Equal(t, ast.VarWrite, write.Kind)
	assert.Equal(t, ast.Binary, write.Operand.Kind)
}

func TestParser_PostIncrement(t *testing.T) {
	root, errs := parse(t, "fn f() -> void { var mut x: i32 = 1; x++; }")
	require.Equal(t, 0, errs)
	body := root.Statements[0].Body
	stmt := body.Statements[1]
	assert.Equal(t, ast.Unary, stmt.Kind)
	assert.Equal(t, ast.PostInc, stmt.UnaryOp)
}

func TestParser_UnterminatedExpressionRecovers(t *testing.T) {
	root, errs := parse(t, "var mut x: i32 = ; var mut y: i32 = 2;")
	assert.Greater(t, errs, 0)
	assert.NotNil(t, root)
}
