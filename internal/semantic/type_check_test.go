package semantic

import (
	"testing"

	"github.com/cwbudde/cmm/internal/ast"
)

// Scenario 1 (spec §8): int x; x = true; -> diagnostic at the '='s LHS
// position: "Type mismatch"; type of the assignment expression is Error.
func TestAssignmentTypeMismatch(t *testing.T) {
	x := idAt("x", 1, 5)
	prog := &ast.Program{Decls: []ast.Decl{
		varDecl(intT(), x),
		&ast.FnDecl{
			Name: idAt("main", 2, 1),
			Ret:  voidT(),
			Body: block(nil, assignStmt(idAt("x", 3, 1), trueLit())),
		},
	}}

	ok, msgs := analyze(prog)
	if ok {
		t.Error("expected analysis to fail")
	}
	if len(msgs) != 1 || msgs[0] != "3:1 ***ERROR*** Type mismatch" {
		t.Errorf("got %v", msgs)
	}
}

// Scenario 2 (spec §8): void f() { return 5; } -> "Return with a value in a
// void function" at the return expression's id location.
func TestReturnValueInVoidFunction(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FnDecl{
			Name: idAt("f", 1, 1),
			Ret:  voidT(),
			Body: block(nil, &ast.ReturnStmt{Expr: &ast.IntLit{Position: pos(1, 20), Value: 5}}),
		},
	}}

	ok, msgs := analyze(prog)
	if ok {
		t.Error("expected analysis to fail")
	}
	if len(msgs) != 1 || msgs[0] != "1:20 ***ERROR*** Return with a value in a void function" {
		t.Errorf("got %v", msgs)
	}
}

// Scenario 3 (spec §8): int g() { return; } -> "Missing return value" at
// position (0,0).
func TestMissingReturnValue(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FnDecl{
			Name: idAt("g", 1, 1),
			Ret:  intT(),
			Body: block(nil, &ast.ReturnStmt{}),
		},
	}}

	ok, msgs := analyze(prog)
	if ok {
		t.Error("expected analysis to fail")
	}
	if len(msgs) != 1 || msgs[0] != "0:0 ***ERROR*** Missing return value" {
		t.Errorf("got %v", msgs)
	}
}

// Scenario 5 (spec §8): int h(int a, bool b) { return 0; } ... h(1); ->
// "Function call with wrong number of args" at h's call-site location.
func TestWrongArgCount(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FnDecl{
			Name: idAt("h", 1, 1),
			Ret:  intT(),
			Formals: []*ast.FormalDecl{
				formal(intT(), idAt("a", 1, 10)),
				formal(boolT(), idAt("b", 1, 18)),
			},
			Body: block(nil, &ast.ReturnStmt{Expr: intLit(0)}),
		},
		&ast.FnDecl{
			Name: idAt("main", 2, 1),
			Ret:  voidT(),
			Body: block(nil, &ast.CallStmt{
				Call: &ast.CallExpr{Callee: idAt("h", 3, 5), Args: []ast.Expr{intLit(1)}},
			}),
		},
	}}

	ok, msgs := analyze(prog)
	if ok {
		t.Error("expected analysis to fail")
	}
	if len(msgs) != 1 || msgs[0] != "3:5 ***ERROR*** Function call with wrong number of args" {
		t.Errorf("got %v", msgs)
	}
}

// Scenario 6 (spec §8): int x; x++; while (x) { x = x+1; } -> exactly one
// "Non-bool expression used as a while condition" at x's location inside
// while(...).
func TestNonBoolWhileCondition(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		varDecl(intT(), idAt("x", 1, 5)),
		&ast.FnDecl{
			Name: idAt("main", 2, 1),
			Ret:  voidT(),
			Body: block(nil,
				&ast.PostIncStmt{Operand: idAt("x", 3, 1)},
				&ast.WhileStmt{
					Cond: idAt("x", 4, 8),
					Body: block(nil, assignStmt(idAt("x", 5, 3), &ast.BinaryExpr{
						Op:    ast.OpPlus,
						Left:  idAt("x", 5, 7),
						Right: intLit(1),
					})),
				},
			),
		},
	}}

	ok, msgs := analyze(prog)
	if ok {
		t.Error("expected analysis to fail")
	}
	if len(msgs) != 1 || msgs[0] != "4:8 ***ERROR*** Non-bool expression used as a while condition" {
		t.Errorf("got %v", msgs)
	}
}

// f() == g() compares two void-returning calls: the void-functions
// diagnostic must fire instead of a plain type mismatch.
func TestEqualityPriorityPrefersVoidOverMismatch(t *testing.T) {
	eq := &ast.BinaryExpr{
		Op:    ast.OpEq,
		Left:  &ast.CallExpr{Position: pos(4, 1), Callee: idAt("f", 4, 1)},
		Right: &ast.CallExpr{Position: pos(4, 10), Callee: idAt("g", 4, 10)},
	}
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FnDecl{Name: idAt("f", 1, 1), Ret: voidT(), Body: block(nil)},
		&ast.FnDecl{Name: idAt("g", 1, 20), Ret: voidT(), Body: block(nil)},
		&ast.FnDecl{
			Name: idAt("main", 2, 1),
			Ret:  voidT(),
			Body: block(nil, &ast.WriteStmt{Operand: eq}),
		},
	}}

	ok, msgs := analyze(prog)
	if ok {
		t.Error("expected analysis to fail")
	}
	found := false
	for _, m := range msgs {
		if m == "4:1 ***ERROR*** Equality operator applied to void functions" {
			found = true
		}
		if m == "4:1 ***ERROR*** Type mismatch" {
			t.Errorf("void-function priority should suppress Type mismatch, got: %v", msgs)
		}
	}
	if !found {
		t.Errorf("expected the void-functions equality diagnostic, got: %v", msgs)
	}
}

func TestCleanProgramProducesNoDiagnostics(t *testing.T) {
	prog := &ast.Program{Decls: []ast.Decl{
		&ast.FnDecl{
			Name:    idAt("add", 1, 1),
			Ret:     intT(),
			Formals: []*ast.FormalDecl{formal(intT(), idAt("a", 1, 10)), formal(intT(), idAt("b", 1, 18))},
			Body: block(nil, &ast.ReturnStmt{Expr: &ast.BinaryExpr{
				Op: ast.OpPlus, Left: idAt("a", 2, 10), Right: idAt("b", 2, 14),
			}}),
		},
	}}

	ok, msgs := analyze(prog)
	if !ok {
		t.Errorf("expected clean analysis, got diagnostics: %v", msgs)
	}
	requireNoMessages(t, msgs)
}
