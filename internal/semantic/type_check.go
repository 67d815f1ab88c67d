package semantic

import (
	"fmt"

	"github.com/cwbudde/cmm/internal/ast"
	"github.com/cwbudde/cmm/internal/token"
	"github.com/cwbudde/cmm/internal/types"
)

// typeCheckProgram is the type-check pass (spec.md §4.3): it derives and
// verifies a Type for every expression, walking only function bodies —
// variable and struct declarations carry no further obligation once named.
func (a *Analyzer) typeCheckProgram(prog *ast.Program) bool {
	ok := true
	for _, d := range prog.Decls {
		if fn, isFn := d.(*ast.FnDecl); isFn {
			if !a.typeCheckFnDecl(fn) {
				ok = false
			}
		}
	}
	return ok
}

func (a *Analyzer) typeCheckFnDecl(d *ast.FnDecl) bool {
	sym, _ := d.Name.Symbol.(*Symbol)
	retType := types.Type(types.Error)
	if sym != nil {
		if fnType, ok := sym.Type.(*types.Fn); ok {
			retType = fnType.Ret
		}
	}

	prevFn, prevRet := a.currentFn, a.currentFnRet
	a.currentFn, a.currentFnRet = sym, retType
	ok := a.typeCheckStmtList(d.Body)
	a.currentFn, a.currentFnRet = prevFn, prevRet
	return ok
}

// typeCheckStmtList resolves the Open Question recorded in
// SPEC_FULL.md/DESIGN.md: a block's overall success is the conjunction of
// every statement's, not merely its last statement's.
func (a *Analyzer) typeCheckStmtList(block *ast.StmtList) bool {
	if block == nil {
		return true
	}
	ok := true
	for _, s := range block.Stmts {
		if !a.typeCheckStmt(s) {
			ok = false
		}
	}
	return ok
}

func (a *Analyzer) typeCheckStmt(s ast.Stmt) bool {
	switch st := s.(type) {
	case *ast.AssignStmt:
		return !types.IsError(a.typeOfExpr(st.Assign))
	case *ast.PostIncStmt:
		return a.checkNumericOperand(st.Operand)
	case *ast.PostDecStmt:
		return a.checkNumericOperand(st.Operand)
	case *ast.ReadStmt:
		return a.checkReadable(a.typeOfExpr(st.Operand), st.Operand.Pos())
	case *ast.WriteStmt:
		return a.checkWritable(a.typeOfExpr(st.Operand), st.Operand.Pos())
	case *ast.IfStmt:
		cond := a.checkBoolCond(st.Cond, msgNonBoolIf)
		body := a.typeCheckStmtList(st.Then)
		return cond && body
	case *ast.IfElseStmt:
		cond := a.checkBoolCond(st.Cond, msgNonBoolIf)
		then := a.typeCheckStmtList(st.Then)
		els := a.typeCheckStmtList(st.Else)
		return cond && then && els
	case *ast.WhileStmt:
		cond := a.checkBoolCond(st.Cond, msgNonBoolWhile)
		body := a.typeCheckStmtList(st.Body)
		return cond && body
	case *ast.RepeatStmt:
		t := a.typeOfExpr(st.Cond)
		condOK := types.IsNumeric(t)
		if !condOK && !types.IsError(t) {
			a.reporter.Fatal(st.Cond.Pos(), msgNonIntRepeat)
		}
		body := a.typeCheckStmtList(st.Body)
		return condOK && body
	case *ast.CallStmt:
		return !types.IsError(a.typeOfExpr(st.Call))
	case *ast.ReturnStmt:
		return a.typeCheckReturn(st)
	}
	return true
}

func (a *Analyzer) checkBoolCond(cond ast.Expr, msg string) bool {
	t := a.typeOfExpr(cond)
	if types.IsError(t) {
		return false
	}
	if !types.IsBool(t) {
		a.reporter.Fatal(cond.Pos(), msg)
		return false
	}
	return true
}

func (a *Analyzer) checkNumericOperand(operand ast.Expr) bool {
	t := a.typeOfExpr(operand)
	if types.IsError(t) {
		return false
	}
	if !types.IsNumeric(t) {
		a.reporter.Fatal(operand.Pos(), msgArithNonNumeric)
		return false
	}
	return true
}

// forbiddenOperandMsg reports the diagnostic shared by Read and Write for
// operand types neither statement may touch: functions, struct names,
// struct variables (spec.md §4.3).
func forbiddenOperandMsg(t types.Type) (string, bool) {
	switch t.(type) {
	case *types.Fn:
		return msgReadFunction, true
	case *types.StructDef:
		return msgReadStructName, true
	case *types.Struct:
		return msgReadStructVariable, true
	}
	return "", false
}

func (a *Analyzer) checkReadable(t types.Type, pos token.Position) bool {
	if types.IsError(t) {
		return false
	}
	if msg, bad := forbiddenOperandMsg(t); bad {
		a.reporter.Fatal(pos, msg)
		return false
	}
	return true
}

func (a *Analyzer) checkWritable(t types.Type, pos token.Position) bool {
	if types.IsError(t) {
		return false
	}
	if types.Void.Equals(t) {
		a.reporter.Fatal(pos, msgWriteVoid)
		return false
	}
	if msg, bad := forbiddenOperandMsg(t); bad {
		a.reporter.Fatal(pos, msg)
		return false
	}
	return true
}

func (a *Analyzer) typeCheckReturn(st *ast.ReturnStmt) bool {
	retType := a.currentFnRet
	if st.Expr == nil {
		if retType != nil && !types.Void.Equals(retType) {
			a.reporter.Fatal(token.Position{}, msgMissingReturnValue)
			return false
		}
		return true
	}

	exprType := a.typeOfExpr(st.Expr)
	if retType != nil && types.Void.Equals(retType) {
		a.reporter.Fatal(st.Expr.Pos(), msgReturnValueInVoidFn)
		return false
	}
	if types.IsError(exprType) || (retType != nil && types.IsError(retType)) {
		return false
	}
	if retType == nil || !exprType.Equals(retType) {
		a.reporter.Fatal(st.Expr.Pos(), msgBadReturnValue)
		return false
	}
	return true
}

// typeOfExpr derives the Type of e (spec.md §4.3), reporting any
// diagnostics along the way and returning types.Error wherever a check
// fails so the failure absorbs silently into any enclosing expression.
func (a *Analyzer) typeOfExpr(e ast.Expr) types.Type {
	switch ex := e.(type) {
	case nil:
		return types.Error
	case *ast.IntLit:
		return types.Int
	case *ast.StringLit:
		return types.String
	case *ast.TrueLit:
		return types.Bool
	case *ast.FalseLit:
		return types.Bool
	case *ast.Id:
		sym, ok := ex.Symbol.(*Symbol)
		if !ok || sym == nil {
			panic(fmt.Sprintf("semantic: unresolved identifier %q reached type-check at %s", ex.Name, ex.Position))
		}
		return a.symbolType(sym)
	case *ast.DotAccess:
		return a.typeOfDotAccess(ex)
	case *ast.AssignExpr:
		return a.typeOfAssign(ex)
	case *ast.CallExpr:
		return a.typeOfCall(ex)
	case *ast.UnaryExpr:
		return a.typeOfUnary(ex)
	case *ast.BinaryExpr:
		return a.typeOfBinary(ex)
	}
	return types.Error
}

func (a *Analyzer) symbolType(sym *Symbol) types.Type {
	switch sym.Kind {
	case StructDefSymbol:
		return &types.StructDef{Name: sym.Name}
	default:
		return sym.Type
	}
}

func (a *Analyzer) typeOfDotAccess(ex *ast.DotAccess) types.Type {
	if ex.Bad {
		return types.Error
	}
	sym, ok := ex.Field.Symbol.(*Symbol)
	if !ok || sym == nil {
		return types.Error
	}
	return a.symbolType(sym)
}

func (a *Analyzer) typeOfAssign(ex *ast.AssignExpr) types.Type {
	lhs := a.typeOfExpr(ex.Lhs)
	rhs := a.typeOfExpr(ex.Rhs)
	pos := ex.Lhs.Pos()

	if types.IsError(lhs) || types.IsError(rhs) {
		return types.Error
	}

	switch lhs.(type) {
	case *types.Fn:
		if _, ok := rhs.(*types.Fn); ok {
			a.reporter.Fatal(pos, msgFunctionAssignment)
			return types.Error
		}
	case *types.StructDef:
		if _, ok := rhs.(*types.StructDef); ok {
			a.reporter.Fatal(pos, msgStructNameAssignment)
			return types.Error
		}
	case *types.Struct:
		if _, ok := rhs.(*types.Struct); ok {
			a.reporter.Fatal(pos, msgStructVariableAssign)
			return types.Error
		}
	}

	if !lhs.Equals(rhs) {
		a.reporter.Fatal(pos, msgTypeMismatch)
		return types.Error
	}
	return lhs
}

func (a *Analyzer) typeOfCall(ex *ast.CallExpr) types.Type {
	sym, ok := ex.Callee.Symbol.(*Symbol)
	if !ok || sym == nil {
		panic(fmt.Sprintf("semantic: unresolved callee %q reached type-check at %s", ex.Callee.Name, ex.Callee.Position))
	}

	fnType, isFn := sym.Type.(*types.Fn)
	if sym.Kind != FuncSymbol || !isFn {
		a.reporter.Fatal(ex.Callee.Position, msgCallNonFunction)
		return types.Error
	}

	if len(ex.Args) != len(fnType.Formals) {
		a.reporter.Fatal(ex.Callee.Position, msgWrongArgCount)
		return types.Error
	}

	bad := false
	for i, arg := range ex.Args {
		at := a.typeOfExpr(arg)
		if types.IsError(at) {
			bad = true
			continue
		}
		if !at.Equals(fnType.Formals[i]) {
			a.reporter.Fatal(arg.Pos(), msgActualFormalMismatch)
			bad = true
		}
	}
	if bad {
		return types.Error
	}
	return fnType.Ret
}

func (a *Analyzer) typeOfUnary(ex *ast.UnaryExpr) types.Type {
	t := a.typeOfExpr(ex.Operand)
	if types.IsError(t) {
		return types.Error
	}
	switch ex.Op {
	case ast.UnaryMinus:
		if !types.IsNumeric(t) {
			a.reporter.Fatal(ex.Operand.Pos(), msgArithNonNumeric)
			return types.Error
		}
		return types.Int
	default: // UnaryNot
		if !types.IsBool(t) {
			a.reporter.Fatal(ex.Operand.Pos(), msgLogicalNonBool)
			return types.Error
		}
		return types.Bool
	}
}

func (a *Analyzer) typeOfBinary(ex *ast.BinaryExpr) types.Type {
	switch {
	case ex.Op.IsArithmetic():
		return a.checkHomogeneousBinary(ex, types.IsNumeric, msgArithNonNumeric, types.Int)
	case ex.Op.IsRelational():
		return a.checkHomogeneousBinary(ex, types.IsNumeric, msgRelNonNumeric, types.Bool)
	case ex.Op.IsLogical():
		return a.checkHomogeneousBinary(ex, types.IsBool, msgLogicalNonBool, types.Bool)
	case ex.Op.IsEquality():
		return a.typeOfEquality(ex)
	}
	return types.Error
}

// checkHomogeneousBinary implements the shared shape behind arithmetic,
// relational, and logical operators: each operand is checked independently
// against want, so a binary expression with two bad operands can emit two
// diagnostics, one per offending operand (spec.md §4.3).
func (a *Analyzer) checkHomogeneousBinary(ex *ast.BinaryExpr, want func(types.Type) bool, msg string, result types.Type) types.Type {
	l := a.typeOfExpr(ex.Left)
	r := a.typeOfExpr(ex.Right)
	bad := false
	if !types.IsError(l) && !want(l) {
		a.reporter.Fatal(ex.Left.Pos(), msg)
		bad = true
	}
	if !types.IsError(r) && !want(r) {
		a.reporter.Fatal(ex.Right.Pos(), msg)
		bad = true
	}
	if bad || types.IsError(l) || types.IsError(r) {
		return types.Error
	}
	return result
}

// typeOfEquality implements the fixed diagnostic priority of spec.md §4.3:
// both-void, then both-function, then both-struct-name, then
// both-struct-variable, then plain type mismatch.
func (a *Analyzer) typeOfEquality(ex *ast.BinaryExpr) types.Type {
	l := a.typeOfExpr(ex.Left)
	r := a.typeOfExpr(ex.Right)
	pos := ex.Left.Pos()

	if types.Void.Equals(l) && types.Void.Equals(r) {
		a.reporter.Fatal(pos, msgEqVoidFunctions)
		return types.Error
	}
	if _, lFn := l.(*types.Fn); lFn {
		if _, rFn := r.(*types.Fn); rFn {
			a.reporter.Fatal(pos, msgEqFunctions)
			return types.Error
		}
	}
	if _, lSD := l.(*types.StructDef); lSD {
		if _, rSD := r.(*types.StructDef); rSD {
			a.reporter.Fatal(pos, msgEqStructNames)
			return types.Error
		}
	}
	if _, lS := l.(*types.Struct); lS {
		if _, rS := r.(*types.Struct); rS {
			a.reporter.Fatal(pos, msgEqStructVariables)
			return types.Error
		}
	}

	if types.IsError(l) || types.IsError(r) {
		return types.Error
	}
	if !l.Equals(r) {
		a.reporter.Fatal(pos, msgTypeMismatch)
		return types.Error
	}
	return types.Bool
}
