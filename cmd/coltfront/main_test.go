package main

import (
	"testing"

	"github.com/coltlang/coltfront/ast"
	"github.com/coltlang/coltfront/source"
	"github.com/coltlang/coltfront/types"
)

func TestDeclCount_NilRootIsZero(t *testing.T) {
	if got := declCount(nil); got != 0 {
		t.Fatalf("expected 0, got %d", got)
	}
}

func TestDeclCount_CountsTopLevelStatements(t *testing.T) {
	stmt := ast.NewVarRead(source.NoSpan, types.Void(), "x")
	root := ast.NewScope(source.NoSpan, []*ast.Expr{stmt, stmt})
	if got := declCount(root); got != 2 {
		t.Fatalf("expected 2, got %d", got)
	}
}
