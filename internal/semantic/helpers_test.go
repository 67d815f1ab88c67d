package semantic

import (
	"github.com/cwbudde/cmm/internal/ast"
	"github.com/cwbudde/cmm/internal/token"
)

func pos(line, col int) token.Position { return token.Position{Line: line, Column: col} }

func idAt(name string, line, col int) *ast.Id { return &ast.Id{Position: pos(line, col), Name: name} }

func intT() *ast.IntT   { return &ast.IntT{} }
func boolT() *ast.BoolT { return &ast.BoolT{} }
func voidT() *ast.VoidT { return &ast.VoidT{} }
func structT(name string, line, col int) *ast.StructT {
	return &ast.StructT{Position: pos(line, col), Name: name}
}

func varDecl(typeRef ast.TypeRef, name *ast.Id) *ast.VarDecl {
	return &ast.VarDecl{Position: name.Position, Type: typeRef, Name: name}
}

func formal(typeRef ast.TypeRef, name *ast.Id) *ast.FormalDecl {
	return &ast.FormalDecl{Position: name.Position, Type: typeRef, Name: name}
}

func block(decls []*ast.VarDecl, stmts ...ast.Stmt) *ast.StmtList {
	return &ast.StmtList{Decls: decls, Stmts: stmts}
}

func intLit(v int64) *ast.IntLit { return &ast.IntLit{Value: v} }
func trueLit() *ast.TrueLit      { return &ast.TrueLit{} }

func assignStmt(lhs, rhs ast.Expr) *ast.AssignStmt {
	return &ast.AssignStmt{Assign: &ast.AssignExpr{Lhs: lhs, Rhs: rhs}}
}

// analyze runs a full Analyze over prog and returns the ok flag plus the
// rendered diagnostic messages, in emission order.
func analyze(prog *ast.Program) (bool, []string) {
	a := NewAnalyzer("", "")
	ok := a.Analyze(prog)
	return ok, a.Reporter().Messages()
}

// analyzeWithHints is analyze, but at the given style-hint level.
func analyzeWithHints(prog *ast.Program, level HintsLevel) (bool, []string) {
	a := NewAnalyzer("", "")
	a.SetHints(level)
	ok := a.Analyze(prog)
	return ok, a.Reporter().Messages()
}

func requireNoMessages(t interface{ Errorf(string, ...any) }, msgs []string) {
	if len(msgs) != 0 {
		t.Errorf("expected no diagnostics, got: %v", msgs)
	}
}
