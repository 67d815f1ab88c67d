// Package ast defines the Abstract Syntax Tree node types for C-- (spec.md
// §3). Nodes are produced by an external parser stage; this package only
// carries the shape of the tree and the hooks (symbol links, field-scope
// links) that the semantic passes attach during analysis.
package ast

import "github.com/cwbudde/cmm/internal/token"

// Node is the base interface every AST node implements.
type Node interface {
	Pos() token.Position
}

// Decl is a top-level or nested declaration: Var, Fn, Formal, or StructDef.
type Decl interface {
	Node
	declNode()
}

// Stmt is a statement.
type Stmt interface {
	Node
	stmtNode()
}

// Expr is an expression that produces a value.
type Expr interface {
	Node
	exprNode()
}

// TypeRef is a syntactic type reference: IntT, BoolT, VoidT, or StructT.
type TypeRef interface {
	Node
	typeRefNode()
	// TypeName returns the referenced struct name for StructT, or "" otherwise.
	TypeName() string
}

// Program is the root node: an ordered list of top-level declarations.
type Program struct {
	Decls []Decl `json:"decls"`
}

func (p *Program) Pos() token.Position {
	if len(p.Decls) == 0 {
		return token.Position{}
	}
	return p.Decls[0].Pos()
}

// Id is an identifier occurrence. After a successful name-analysis pass
// every reachable Id is linked to the Symbol it resolves to, unless it was
// reported as undeclared — in which case Symbol stays nil and no further
// diagnostic should be raised for derived uses of this node.
//
// Symbol is declared as `any` here (rather than *semantic.Symbol) to avoid
// an import cycle: ast is a leaf package that internal/semantic depends on.
type Id struct {
	Position token.Position `json:"pos"`
	Name     string         `json:"name"`
	Symbol   any            `json:"-"`
}

func (i *Id) Pos() token.Position { return i.Position }
func (i *Id) exprNode()           {}
