// Package semantic implements the two-pass semantic analysis core for C--
// (spec.md §1-4): name analysis, which resolves every identifier to a
// declaration and builds the symbol table, followed by type checking,
// which derives and verifies a Type for every expression and statement.
package semantic

import (
	"fmt"

	"github.com/cwbudde/cmm/internal/ast"
	"github.com/cwbudde/cmm/internal/errors"
	"github.com/cwbudde/cmm/internal/types"
)

// Analyzer owns the symbol table and diagnostic reporter for one analysis
// run. A fresh Analyzer should be created per program; it is not safe to
// reuse across unrelated ASTs.
type Analyzer struct {
	table    *Table
	reporter *errors.Reporter
	hints    HintsLevel

	currentFn    *Symbol
	currentFnRet types.Type
}

// NewAnalyzer creates an Analyzer. source and file are forwarded to the
// error sink for source-line context in diagnostic output; pass "" for
// either when unavailable (e.g. when analyzing a hand-built AST in tests).
func NewAnalyzer(source, file string) *Analyzer {
	return &Analyzer{
		table:    NewTable(),
		reporter: errors.NewReporter(source, file),
	}
}

// Analyze runs name analysis followed by type checking over prog. It
// returns true iff no diagnostic (of either pass) was fatal. Per spec.md
// §2: the type-check walk only runs if name analysis reported no fatal
// structural faults, since the type-check walk assumes every reachable Id
// is either linked or was itself the site of an "Undeclared identifier"
// diagnostic — running it over an AST with gaps would read nil symbols.
func (a *Analyzer) Analyze(prog *ast.Program) bool {
	a.analyzeProgramNames(prog)
	if a.reporter.HadError() {
		return false
	}
	return a.typeCheckProgram(prog)
}

// Reporter returns the diagnostic sink this analyzer reported to.
func (a *Analyzer) Reporter() *errors.Reporter {
	return a.reporter
}

// Table returns the (fully populated, post name-analysis) symbol table,
// reachable for later phases per spec.md §6.
func (a *Analyzer) Table() *Table {
	return a.table
}

// mustNoErr panics on a Table error that spec.md §7 classifies as
// unreachable on a correct analysis path (EmptyTable, InvalidArgument). A
// panic here means the analyzer itself has a bug, not that the program
// under analysis is invalid.
func (a *Analyzer) mustNoErr(err error) {
	if err != nil {
		panic(fmt.Sprintf("semantic: internal error: %v", err))
	}
}
