package semantic

import (
	"testing"

	"github.com/cwbudde/cmm/internal/ast"
	"github.com/cwbudde/cmm/internal/types"
)

// TestTypeOfAgreesWithTypeCheckWalk is the round-trip property spec.md §8
// calls out: the type TypeOf derives for an Id after a successful Analyze
// matches the type that Id's own Symbol carries (the type the walk itself
// checked the Id against), and calling it again never adds diagnostics.
func TestTypeOfAgreesWithTypeCheckWalk(t *testing.T) {
	a := idAt("a", 1, 10)
	ret := &ast.BinaryExpr{Op: ast.OpPlus, Left: idAt("a", 2, 10), Right: &ast.IntLit{Position: pos(2, 14), Value: 1}}
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FnDecl{
			Name:    idAt("inc", 1, 1),
			Ret:     intT(),
			Formals: []*ast.FormalDecl{formal(intT(), a)},
			Body:    block(nil, &ast.ReturnStmt{Expr: ret}),
		},
	}}

	az := NewAnalyzer("", "")
	if !az.Analyze(prog) {
		t.Fatalf("expected clean analysis, got: %v", az.Reporter().Messages())
	}

	before := len(az.Reporter().Messages())
	if got := az.TypeOf(ret.Left); !got.Equals(types.Int) {
		t.Errorf("TypeOf(a) = %v, want Int", got)
	}
	if got := az.TypeOf(ret); !got.Equals(types.Int) {
		t.Errorf("TypeOf(a + 1) = %v, want Int", got)
	}
	if after := len(az.Reporter().Messages()); after != before {
		t.Errorf("TypeOf must not report diagnostics, message count went from %d to %d", before, after)
	}
}

func TestDumpTypesCoversEveryStatementExpression(t *testing.T) {
	assign := &ast.AssignExpr{Position: pos(3, 1), Lhs: idAt("x", 3, 1), Rhs: intLit(1)}
	prog := &ast.Program{Decls: []ast.Decl{
		varDecl(intT(), idAt("x", 1, 5)),
		&ast.FnDecl{
			Name: idAt("main", 2, 1),
			Ret:  voidT(),
			Body: block(nil,
				&ast.AssignStmt{Assign: assign},
				&ast.WriteStmt{Operand: idAt("x", 4, 7)},
			),
		},
	}}

	a := NewAnalyzer("", "")
	if !a.Analyze(prog) {
		t.Fatalf("expected clean analysis, got: %v", a.Reporter().Messages())
	}

	lines := a.DumpTypes(prog)
	if len(lines) != 2 {
		t.Fatalf("expected 2 dumped lines, got %d: %v", len(lines), lines)
	}
	if lines[0] != "3:1: int" || lines[1] != "4:7: int" {
		t.Errorf("got %v", lines)
	}
}
