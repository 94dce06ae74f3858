package ast

import (
	"fmt"
	"io"
	"strings"
)

const indentSize = 2

// Dump writes an indented tree rendering of e to w, one line per node.
// This replaces the teacher's PrintingVisitor (print_visitor.go): that
// visitor needed one Visit* method per node type to walk a
// double-dispatch tree, but Expr is a single tagged struct, so a plain
// recursive function driven by a type switch on Kind does the same job
// without the extra interface layer.
func Dump(w io.Writer, e *Expr) {
	dump(w, e, 0)
}

func dump(w io.Writer, e *Expr, depth int) {
	pad := strings.Repeat(" ", depth*indentSize)
	if e == nil {
		fmt.Fprintf(w, "%s<nil>\n", pad)
		return
	}

	typeName := "?"
	if e.Type != nil {
		typeName = e.Type.Name()
	}

	switch e.Kind {
	case Literal:
		fmt.Fprintf(w, "%sLiteral (%s)\n", pad, typeName)
	case Unary:
		fmt.Fprintf(w, "%sUnary %s (%s)\n", pad, e.UnaryOp, typeName)
		dump(w, e.Operand, depth+1)
	case Binary:
		fmt.Fprintf(w, "%sBinary %s (%s)\n", pad, e.BinOp, typeName)
		dump(w, e.Left, depth+1)
		dump(w, e.Right, depth+1)
	case Convert:
		fmt.Fprintf(w, "%sConvert -> %s\n", pad, typeName)
		dump(w, e.Left, depth+1)
	case VarDecl:
		fmt.Fprintf(w, "%sVarDecl %s (%s, mutable=%v, global=%v)\n", pad, e.Name, typeName, e.Mutable, e.Global)
		if e.Operand != nil {
			dump(w, e.Operand, depth+1)
		}
	case VarRead:
		fmt.Fprintf(w, "%sVarRead %s (%s)\n", pad, e.Name, typeName)
	case VarWrite:
		fmt.Fprintf(w, "%sVarWrite %s (%s)\n", pad, e.Name, typeName)
		dump(w, e.Operand, depth+1)
	case FnDecl:
		fmt.Fprintf(w, "%sFnDecl %s %s (extern=%v)\n", pad, e.Name, signature(e), e.Extern)
	case FnDef:
		fmt.Fprintf(w, "%sFnDef %s %s\n", pad, e.Name, signature(e))
		dump(w, e.Body, depth+1)
	case FnCall:
		fmt.Fprintf(w, "%sFnCall %s (%s)\n", pad, e.Name, typeName)
		for _, arg := range e.Args {
			dump(w, arg, depth+1)
		}
	case FnReturn:
		fmt.Fprintf(w, "%sFnReturn (%s)\n", pad, typeName)
		if e.Operand != nil {
			dump(w, e.Operand, depth+1)
		}
	case Scope:
		fmt.Fprintf(w, "%sScope\n", pad)
		for _, stmt := range e.Statements {
			dump(w, stmt, depth+1)
		}
	case Condition:
		fmt.Fprintf(w, "%sCondition\n", pad)
		dump(w, e.Operand, depth+1)
		dump(w, e.Then, depth+1)
		if e.Else != nil {
			dump(w, e.Else, depth+1)
		}
	case Error:
		fmt.Fprintf(w, "%sError: %s\n", pad, e.Message)
	default:
		fmt.Fprintf(w, "%s%s\n", pad, e.Kind)
	}
}

func signature(e *Expr) string {
	names := make([]string, len(e.Params))
	for i, p := range e.Params {
		names[i] = p.Name + ": " + p.Type.Name()
	}
	return "(" + strings.Join(names, ", ") + ")"
}
