package semantic

import (
	"errors"

	"github.com/cwbudde/cmm/internal/token"
	"github.com/cwbudde/cmm/internal/types"
)

// Kind distinguishes what a Symbol binds, per spec.md §3/§4.1.
type Kind int

const (
	// ValueSymbol is an ordinary variable binding carrying a Type.
	ValueSymbol Kind = iota
	// FuncSymbol carries a function's formal types and return type (in Type,
	// a *types.Fn).
	FuncSymbol
	// StructVarSymbol is a struct-typed variable; StructDef references the
	// struct's own StructDefSymbol.
	StructVarSymbol
	// StructDefSymbol owns a per-struct field scope (Fields).
	StructDefSymbol
)

// Symbol is a symbol-table binding. Which fields are meaningful depends on
// Kind: ValueSymbol/FuncSymbol use Type; StructVarSymbol uses Type (a
// *types.Struct) and StructDef; StructDefSymbol uses Fields. Pos and Used back the --hints style check:
// Pos is the declaration site a hint is reported against, and Used records
// whether name analysis ever saw the symbol referenced by an Id.
type Symbol struct {
	Name      string
	Kind      Kind
	Type      types.Type
	StructDef *Symbol
	Fields    *Table
	Pos       token.Position
	Used      bool
}

// Sentinel errors for Table operations (spec.md §7). EmptyTable and
// InvalidArgument are never expected on a correct analysis path — they
// indicate a bug in the analyzer itself, not in the program under
// analysis — while Duplicate is routine and the caller always translates
// it into a "Multiply declared identifier" diagnostic.
var (
	ErrEmptyTable      = errors.New("symbol table: no scope is open")
	ErrInvalidArgument = errors.New("symbol table: name or symbol is nil")
	ErrDuplicate       = errors.New("symbol table: name already bound in this scope")
)

// scope is a single level of the Table's stack; its lifetime matches one
// lexical block.
type scope struct {
	symbols map[string]*Symbol
}

// Table is a stack of scopes (spec.md §4.1). Names within one scope are
// unique (case-sensitive); shadowing across scopes is permitted.
type Table struct {
	scopes []*scope
}

// NewTable returns an empty Table with no open scope.
func NewTable() *Table {
	return &Table{}
}

// AddScope pushes a new, empty scope.
func (t *Table) AddScope() {
	t.scopes = append(t.scopes, &scope{symbols: make(map[string]*Symbol)})
}

// RemoveScope pops the innermost scope. Returns ErrEmptyTable if no scope
// is open.
func (t *Table) RemoveScope() error {
	if len(t.scopes) == 0 {
		return ErrEmptyTable
	}
	t.scopes = t.scopes[:len(t.scopes)-1]
	return nil
}

// AddDecl inserts sym under name in the innermost scope. Returns
// ErrInvalidArgument if name is empty or sym is nil, ErrEmptyTable if no
// scope is open, or ErrDuplicate if name is already bound in that scope.
func (t *Table) AddDecl(name string, sym *Symbol) error {
	if name == "" || sym == nil {
		return ErrInvalidArgument
	}
	if len(t.scopes) == 0 {
		return ErrEmptyTable
	}
	cur := t.scopes[len(t.scopes)-1]
	if _, exists := cur.symbols[name]; exists {
		return ErrDuplicate
	}
	cur.symbols[name] = sym
	return nil
}

// LookupLocal returns the binding for name in the innermost scope only.
func (t *Table) LookupLocal(name string) (*Symbol, bool) {
	if len(t.scopes) == 0 {
		return nil, false
	}
	sym, ok := t.scopes[len(t.scopes)-1].symbols[name]
	return sym, ok
}

// LookupGlobal searches innermost-to-outermost and returns the first match.
// Returns ErrEmptyTable if no scope is open.
func (t *Table) LookupGlobal(name string) (*Symbol, bool, error) {
	if len(t.scopes) == 0 {
		return nil, false, ErrEmptyTable
	}
	for i := len(t.scopes) - 1; i >= 0; i-- {
		if sym, ok := t.scopes[i].symbols[name]; ok {
			return sym, true, nil
		}
	}
	return nil, false, nil
}

// Empty reports whether the table has no open scope.
func (t *Table) Empty() bool {
	return len(t.scopes) == 0
}
