package semantic

import (
	"testing"

	"github.com/cwbudde/cmm/internal/ast"
)

func TestParseHintsLevel(t *testing.T) {
	cases := map[string]HintsLevel{
		"":         HintsOff,
		"off":      HintsOff,
		"normal":   HintsNormal,
		"pedantic": HintsPedantic,
	}
	for in, want := range cases {
		got, err := ParseHintsLevel(in)
		if err != nil {
			t.Errorf("ParseHintsLevel(%q) returned error: %v", in, err)
		}
		if got != want {
			t.Errorf("ParseHintsLevel(%q) = %v, want %v", in, got, want)
		}
	}
	if _, err := ParseHintsLevel("loud"); err == nil {
		t.Error("ParseHintsLevel(\"loud\") should return an error")
	}
}

func TestUnusedLocalVariableHintAtNormal(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FnDecl{
			Name: idAt("main", 1, 1),
			Ret:  voidT(),
			Body: block([]*ast.VarDecl{varDecl(intT(), idAt("y", 2, 5))}),
		},
	}}

	ok, msgs := analyzeWithHints(prog, HintsNormal)
	if !ok {
		t.Errorf("an unused variable must not fail analysis, got: %v", msgs)
	}
	if len(msgs) != 1 || msgs[0] != "2:5 ***WARNING*** Unused variable" {
		t.Errorf("got %v", msgs)
	}
}

func TestUnusedFormalHintAtNormal(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FnDecl{
			Name:    idAt("f", 1, 1),
			Ret:     voidT(),
			Formals: []*ast.FormalDecl{formal(intT(), idAt("a", 1, 10))},
			Body:    block(nil),
		},
	}}

	ok, msgs := analyzeWithHints(prog, HintsNormal)
	if !ok {
		t.Errorf("an unused formal must not fail analysis, got: %v", msgs)
	}
	if len(msgs) != 1 || msgs[0] != "1:10 ***WARNING*** Unused variable" {
		t.Errorf("got %v", msgs)
	}
}

func TestUnusedGlobalHintRequiresPedantic(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		varDecl(intT(), idAt("g", 1, 1)),
	}}

	if _, msgs := analyzeWithHints(prog, HintsNormal); len(msgs) != 0 {
		t.Errorf("an unused global must not warn at HintsNormal, got: %v", msgs)
	}

	ok, msgs := analyzeWithHints(prog, HintsPedantic)
	if !ok {
		t.Errorf("an unused global must not fail analysis, got: %v", msgs)
	}
	if len(msgs) != 1 || msgs[0] != "1:1 ***WARNING*** Unused variable" {
		t.Errorf("got %v", msgs)
	}
}

func TestHintsOffByDefaultProducesNoWarnings(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		varDecl(intT(), idAt("g", 1, 1)),
		&ast.FnDecl{
			Name:    idAt("f", 2, 1),
			Ret:     voidT(),
			Formals: []*ast.FormalDecl{formal(intT(), idAt("a", 2, 10))},
			Body:    block([]*ast.VarDecl{varDecl(intT(), idAt("y", 3, 5))}),
		},
	}}

	ok, msgs := analyze(prog)
	if !ok || len(msgs) != 0 {
		t.Errorf("default HintsOff must stay silent, got ok=%v msgs=%v", ok, msgs)
	}
}

func TestUsedVariablesProduceNoHintAtPedantic(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		varDecl(intT(), idAt("g", 1, 1)),
		&ast.FnDecl{
			Name:    idAt("add", 2, 1),
			Ret:     intT(),
			Formals: []*ast.FormalDecl{formal(intT(), idAt("a", 2, 10)), formal(intT(), idAt("b", 2, 18))},
			Body: block(nil, &ast.ReturnStmt{Expr: &ast.BinaryExpr{
				Op: ast.OpPlus, Left: idAt("a", 3, 10), Right: idAt("b", 3, 14),
			}}),
		},
		&ast.FnDecl{
			Name: idAt("main", 4, 1),
			Ret:  voidT(),
			Body: block(nil, &ast.WriteStmt{Operand: idAt("g", 5, 7)}),
		},
	}}

	ok, msgs := analyzeWithHints(prog, HintsPedantic)
	if !ok || len(msgs) != 0 {
		t.Errorf("every variable here is used, expected silence, got ok=%v msgs=%v", ok, msgs)
	}
}
