package semantic

import (
	"github.com/cwbudde/cmm/internal/ast"
	"github.com/cwbudde/cmm/internal/types"
)

// analyzeProgramNames is the name-analysis pass (spec.md §4.2): a single
// global scope holds every top-level declaration, resolving each Id to the
// Symbol that declares it and flagging duplicates and undeclared uses as it
// goes.
func (a *Analyzer) analyzeProgramNames(prog *ast.Program) {
	a.table.AddScope()
	var globals []*Symbol
	for _, d := range prog.Decls {
		switch decl := d.(type) {
		case *ast.VarDecl:
			if sym := a.declareInto(a.table, decl.Type, decl.Name); sym != nil {
				globals = append(globals, sym)
			}
		case *ast.FnDecl:
			a.analyzeFnDeclNames(decl)
		case *ast.StructDefDecl:
			a.analyzeStructDefNames(decl)
		}
	}
	// Global unused-variable hints are pedantic: a top-level variable may
	// read as "exported" even though nothing in this single-file program
	// actually reads it.
	if a.hints >= HintsPedantic {
		a.checkUnused(globals)
	}
}

// declareInto resolves typeRef and, if it and the duplicate check both
// succeed, inserts a Symbol for nameId into target. It is shared by
// top-level variables, formals, block-local variables, and struct fields —
// spec.md §4.2 treats formal declarations as "identical to a variable
// declaration". Struct-type references always resolve against the
// analyzer's global table, regardless of which table the declaration is
// inserted into, since struct definitions are always top-level.
func (a *Analyzer) declareInto(target *Table, typeRef ast.TypeRef, nameId *ast.Id) *Symbol {
	var declType types.Type
	var structDef *Symbol
	ok := true

	switch t := typeRef.(type) {
	case *ast.VoidT:
		a.reporter.Fatal(nameId.Position, msgNonFunctionVoid)
		ok = false
	case *ast.StructT:
		sym, found, err := a.table.LookupGlobal(t.Name)
		a.mustNoErr(err)
		if !found || sym.Kind != StructDefSymbol {
			a.reporter.Fatal(t.Position, msgInvalidStructName)
			ok = false
		} else {
			structDef = sym
			declType = &types.Struct{Name: t.Name}
		}
	case *ast.IntT:
		declType = types.Int
	case *ast.BoolT:
		declType = types.Bool
	default:
		declType = types.Error
	}

	if _, exists := target.LookupLocal(nameId.Name); exists {
		a.reporter.Fatal(nameId.Position, msgMultiplyDeclared)
		ok = false
	}

	if !ok {
		return nil
	}

	var sym *Symbol
	if structDef != nil {
		sym = &Symbol{Name: nameId.Name, Kind: StructVarSymbol, Type: declType, StructDef: structDef, Pos: nameId.Position}
	} else {
		sym = &Symbol{Name: nameId.Name, Kind: ValueSymbol, Type: declType, Pos: nameId.Position}
	}
	a.mustNoErr(target.AddDecl(nameId.Name, sym))
	nameId.Symbol = sym
	return sym
}

// analyzeFnDeclNames declares the function in the enclosing (global) scope,
// then pushes a single scope shared by its formals and its body — spec.md
// §4.2: formals and the body live in the same scope, unlike if/while/repeat
// arms which each get their own nested scope.
func (a *Analyzer) analyzeFnDeclNames(d *ast.FnDecl) {
	var fnSym *Symbol
	if _, exists := a.table.LookupLocal(d.Name.Name); exists {
		a.reporter.Fatal(d.Name.Position, msgMultiplyDeclared)
	} else {
		fnSym = &Symbol{Name: d.Name.Name, Kind: FuncSymbol}
		a.mustNoErr(a.table.AddDecl(d.Name.Name, fnSym))
		d.Name.Symbol = fnSym
	}

	a.table.AddScope()

	formalTypes := make([]types.Type, len(d.Formals))
	formalSyms := make([]*Symbol, 0, len(d.Formals))
	for i, f := range d.Formals {
		if sym := a.declareInto(a.table, f.Type, f.Name); sym != nil {
			formalTypes[i] = sym.Type
			formalSyms = append(formalSyms, sym)
		} else {
			formalTypes[i] = types.Error
		}
	}

	retType := a.resolveTypeRefLoose(d.Ret)
	if fnSym != nil {
		fnSym.Type = &types.Fn{Formals: formalTypes, Ret: retType}
	}

	a.analyzeBlockUnscoped(d.Body)
	if a.hints >= HintsNormal {
		a.checkUnused(formalSyms)
	}
	a.mustNoErr(a.table.RemoveScope())
}

// resolveTypeRefLoose resolves a function's return-type reference. Unlike
// declareInto it never reports a diagnostic of its own: an invalid struct
// name here collapses to Error silently, mirroring the Open Question
// decision recorded in SPEC_FULL.md/DESIGN.md for unresolved struct
// references outside a declared variable's own diagnostic.
func (a *Analyzer) resolveTypeRefLoose(typeRef ast.TypeRef) types.Type {
	switch t := typeRef.(type) {
	case *ast.VoidT:
		return types.Void
	case *ast.IntT:
		return types.Int
	case *ast.BoolT:
		return types.Bool
	case *ast.StructT:
		sym, found, err := a.table.LookupGlobal(t.Name)
		a.mustNoErr(err)
		if !found || sym.Kind != StructDefSymbol {
			return types.Error
		}
		return &types.Struct{Name: t.Name}
	default:
		return types.Error
	}
}

// analyzeStructDefNames declares the struct name and name-analyzes its
// field list into a private field scope owned only by the StructDefSymbol
// (spec.md §4.1): fields are never reachable through the lexical outer-scope
// chain, only via a resolved struct-variable's DotAccess.
func (a *Analyzer) analyzeStructDefNames(d *ast.StructDefDecl) {
	if _, exists := a.table.LookupLocal(d.Name.Name); exists {
		a.reporter.Fatal(d.Name.Position, msgMultiplyDeclared)
		return
	}

	fields := NewTable()
	fields.AddScope()
	for _, f := range d.Fields {
		a.declareInto(fields, f.Type, f.Name)
	}

	sym := &Symbol{Name: d.Name.Name, Kind: StructDefSymbol, Fields: fields}
	a.mustNoErr(a.table.AddDecl(d.Name.Name, sym))
	d.Name.Symbol = sym
}

// analyzeBlockScoped name-analyzes a nested block construct (if/else arm,
// while/repeat body): push a scope, analyze, pop.
func (a *Analyzer) analyzeBlockScoped(block *ast.StmtList) {
	if block == nil {
		return
	}
	a.table.AddScope()
	a.analyzeBlockUnscoped(block)
	a.mustNoErr(a.table.RemoveScope())
}

// analyzeBlockUnscoped name-analyzes a block's declarations then its
// statements in the CURRENT scope, without pushing one — used directly for
// function bodies, which share their formals' scope.
func (a *Analyzer) analyzeBlockUnscoped(block *ast.StmtList) {
	if block == nil {
		return
	}
	var locals []*Symbol
	for _, d := range block.Decls {
		if sym := a.declareInto(a.table, d.Type, d.Name); sym != nil {
			locals = append(locals, sym)
		}
	}
	for _, s := range block.Stmts {
		a.analyzeStmtNames(s)
	}
	if a.hints >= HintsNormal {
		a.checkUnused(locals)
	}
}

func (a *Analyzer) analyzeStmtNames(s ast.Stmt) {
	switch st := s.(type) {
	case *ast.AssignStmt:
		a.analyzeExprNames(st.Assign)
	case *ast.PostIncStmt:
		a.analyzeExprNames(st.Operand)
	case *ast.PostDecStmt:
		a.analyzeExprNames(st.Operand)
	case *ast.ReadStmt:
		a.analyzeExprNames(st.Operand)
	case *ast.WriteStmt:
		a.analyzeExprNames(st.Operand)
	case *ast.IfStmt:
		a.analyzeExprNames(st.Cond)
		a.analyzeBlockScoped(st.Then)
	case *ast.IfElseStmt:
		a.analyzeExprNames(st.Cond)
		a.analyzeBlockScoped(st.Then)
		a.analyzeBlockScoped(st.Else)
	case *ast.WhileStmt:
		a.analyzeExprNames(st.Cond)
		a.analyzeBlockScoped(st.Body)
	case *ast.RepeatStmt:
		a.analyzeExprNames(st.Cond)
		a.analyzeBlockScoped(st.Body)
	case *ast.CallStmt:
		a.analyzeExprNames(st.Call)
	case *ast.ReturnStmt:
		if st.Expr != nil {
			a.analyzeExprNames(st.Expr)
		}
	}
}

// analyzeExprNames links every Id reachable from e to its declaring Symbol,
// reporting "Undeclared identifier" for any that fail to resolve. It never
// derives a Type; that is the type-check pass's job.
func (a *Analyzer) analyzeExprNames(e ast.Expr) {
	switch ex := e.(type) {
	case nil:
	case *ast.IntLit, *ast.StringLit, *ast.TrueLit, *ast.FalseLit:
	case *ast.Id:
		sym, found, err := a.table.LookupGlobal(ex.Name)
		a.mustNoErr(err)
		if !found {
			a.reporter.Fatal(ex.Position, msgUndeclaredIdentifier)
			return
		}
		sym.Used = true
		ex.Symbol = sym
	case *ast.DotAccess:
		a.analyzeDotAccess(ex)
	case *ast.AssignExpr:
		a.analyzeExprNames(ex.Lhs)
		a.analyzeExprNames(ex.Rhs)
	case *ast.CallExpr:
		a.analyzeExprNames(ex.Callee)
		for _, arg := range ex.Args {
			a.analyzeExprNames(arg)
		}
	case *ast.UnaryExpr:
		a.analyzeExprNames(ex.Operand)
	case *ast.BinaryExpr:
		a.analyzeExprNames(ex.Left)
		a.analyzeExprNames(ex.Right)
	}
}

// analyzeDotAccess resolves a struct field access, per spec.md §4.2: an Id
// LHS must resolve to a struct-typed variable, a nested DotAccess LHS must
// itself have resolved cleanly, and any other LHS shape is rejected. A
// field miss or an already-bad LHS marks the node Bad so a further chained
// DotAccess does not cascade a second diagnostic.
func (a *Analyzer) analyzeDotAccess(ex *ast.DotAccess) {
	switch loc := ex.Loc.(type) {
	case *ast.Id:
		a.analyzeExprNames(loc)
		if loc.Symbol == nil {
			ex.Bad = true
			return
		}
		sym := loc.Symbol.(*Symbol)
		if sym.Kind != StructVarSymbol {
			a.reporter.Fatal(ex.Position, msgDotNonStruct)
			ex.Bad = true
			return
		}
		ex.FieldScope = sym.StructDef.Fields
	case *ast.DotAccess:
		a.analyzeDotAccess(loc)
		if loc.Bad {
			ex.Bad = true
			return
		}
		if loc.FieldScope == nil {
			a.reporter.Fatal(ex.Position, msgDotNonStruct)
			ex.Bad = true
			return
		}
		ex.FieldScope = loc.FieldScope
	default:
		a.analyzeExprNames(ex.Loc)
		a.reporter.Fatal(ex.Position, msgDotNonStruct)
		ex.Bad = true
		return
	}

	fields := ex.FieldScope.(*Table)
	fieldSym, found := fields.LookupLocal(ex.Field.Name)
	if !found {
		a.reporter.Fatal(ex.Field.Position, msgInvalidFieldName)
		ex.Bad = true
		return
	}
	ex.Field.Symbol = fieldSym
	if fieldSym.Kind == StructVarSymbol {
		ex.FieldScope = fieldSym.StructDef.Fields
	} else {
		ex.FieldScope = nil
	}
}
