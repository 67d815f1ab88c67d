package semantic

import (
	"fmt"

	"github.com/cwbudde/cmm/internal/ast"
	"github.com/cwbudde/cmm/internal/types"
)

// TypeOf returns the Type of e as derived by the type-check walk. Unlike
// typeOfExpr, it is pure: it never calls Reporter.Fatal and never panics on
// an unresolved Id, because it is meant to be called again after Analyze
// has already run (e.g. by the CLI's --verbose dump) — re-running the
// side-effecting walk would duplicate every diagnostic it already
// recorded. It reads the same Symbol/DotAccess annotations typeOfExpr
// reads, so for a program that analyzed cleanly it agrees with typeOfExpr
// exactly, which is the round-trip property spec.md §8 calls out: the type
// TypeOf reports for an Id matches the type the walk itself used to check
// that Id.
func (a *Analyzer) TypeOf(e ast.Expr) types.Type {
	switch ex := e.(type) {
	case nil:
		return types.Error
	case *ast.IntLit:
		return types.Int
	case *ast.StringLit:
		return types.String
	case *ast.TrueLit, *ast.FalseLit:
		return types.Bool
	case *ast.Id:
		sym, ok := ex.Symbol.(*Symbol)
		if !ok || sym == nil {
			return types.Error
		}
		return a.symbolType(sym)
	case *ast.DotAccess:
		if ex.Bad {
			return types.Error
		}
		sym, ok := ex.Field.Symbol.(*Symbol)
		if !ok || sym == nil {
			return types.Error
		}
		return a.symbolType(sym)
	case *ast.AssignExpr:
		lhs, rhs := a.TypeOf(ex.Lhs), a.TypeOf(ex.Rhs)
		if types.IsError(lhs) || types.IsError(rhs) || !lhs.Equals(rhs) {
			return types.Error
		}
		return lhs
	case *ast.CallExpr:
		sym, ok := ex.Callee.Symbol.(*Symbol)
		if !ok || sym == nil {
			return types.Error
		}
		fnType, isFn := sym.Type.(*types.Fn)
		if sym.Kind != FuncSymbol || !isFn {
			return types.Error
		}
		return fnType.Ret
	case *ast.UnaryExpr:
		t := a.TypeOf(ex.Operand)
		if types.IsError(t) {
			return types.Error
		}
		if ex.Op == ast.UnaryMinus {
			return types.Int
		}
		return types.Bool
	case *ast.BinaryExpr:
		l, r := a.TypeOf(ex.Left), a.TypeOf(ex.Right)
		if types.IsError(l) || types.IsError(r) {
			return types.Error
		}
		switch {
		case ex.Op.IsArithmetic():
			return types.Int
		case ex.Op.IsRelational(), ex.Op.IsLogical(), ex.Op.IsEquality():
			return types.Bool
		}
	}
	return types.Error
}

// DumpTypes walks every function body in prog in the same pre-order the
// type-check pass itself uses and returns one "<pos>: <type>" line per
// statement-level expression, using TypeOf. It is the type-annotated dump
// cmd/cmmcheck prints under --verbose; callers should only use it after a
// successful Analyze, since a failed analysis leaves some Ids unresolved
// and TypeOf reports those as Error rather than guessing.
func (a *Analyzer) DumpTypes(prog *ast.Program) []string {
	var lines []string
	emit := func(e ast.Expr) {
		if e == nil {
			return
		}
		lines = append(lines, fmt.Sprintf("%s: %s", e.Pos(), a.TypeOf(e)))
	}

	var walkStmtList func(*ast.StmtList)
	walkStmt := func(s ast.Stmt) {
		switch st := s.(type) {
		case *ast.AssignStmt:
			emit(st.Assign)
		case *ast.PostIncStmt:
			emit(st.Operand)
		case *ast.PostDecStmt:
			emit(st.Operand)
		case *ast.ReadStmt:
			emit(st.Operand)
		case *ast.WriteStmt:
			emit(st.Operand)
		case *ast.IfStmt:
			emit(st.Cond)
			walkStmtList(st.Then)
		case *ast.IfElseStmt:
			emit(st.Cond)
			walkStmtList(st.Then)
			walkStmtList(st.Else)
		case *ast.WhileStmt:
			emit(st.Cond)
			walkStmtList(st.Body)
		case *ast.RepeatStmt:
			emit(st.Cond)
			walkStmtList(st.Body)
		case *ast.CallStmt:
			emit(st.Call)
		case *ast.ReturnStmt:
			if st.Expr != nil {
				emit(st.Expr)
			}
		}
	}
	walkStmtList = func(block *ast.StmtList) {
		if block == nil {
			return
		}
		for _, s := range block.Stmts {
			walkStmt(s)
		}
	}

	for _, d := range prog.Decls {
		if fn, ok := d.(*ast.FnDecl); ok {
			walkStmtList(fn.Body)
		}
	}
	return lines
}
