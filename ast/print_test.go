package ast

import (
	"bytes"
	"strings"
	"testing"

	"github.com/coltlang/coltfront/qword"
	"github.com/coltlang/coltfront/source"
	"github.com/coltlang/coltfront/types"
)

func TestDump_RendersBinaryExpressionTree(t *testing.T) {
	i32 := types.BuiltInType(qword.I32, false)
	left := NewLiteral(source.NoSpan, i32, qword.FromI32(2))
	right := NewLiteral(source.NoSpan, i32, qword.FromI32(3))
	bin := NewBinary(source.NoSpan, i32, qword.Add, left, right)

	var out bytes.Buffer
	Dump(&out, bin)

	rendered := out.String()
	if !strings.Contains(rendered, "Binary") {
		t.Fatalf("expected dump to mention Binary, got %q", rendered)
	}
	if strings.Count(rendered, "Literal") != 2 {
		t.Fatalf("expected two Literal lines, got %q", rendered)
	}
}

func TestDump_RendersErrorNode(t *testing.T) {
	e := NewError(source.NoSpan, "boom")
	var out bytes.Buffer
	Dump(&out, e)
	if !strings.Contains(out.String(), "boom") {
		t.Fatalf("expected dump to include the error message, got %q", out.String())
	}
}

func TestDump_NilIsSafe(t *testing.T) {
	var out bytes.Buffer
	Dump(&out, nil)
	if !strings.Contains(out.String(), "<nil>") {
		t.Fatalf("expected <nil> marker, got %q", out.String())
	}
}
