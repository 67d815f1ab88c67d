package ast

import "github.com/cwbudde/cmm/internal/token"

// VarDecl declares an ordinary or struct-typed variable (spec.md §3's
// Var(type, id, struct-size-or-none)). StructSize is non-nil only when Type
// is a StructT and carries the field count of the resolved struct; it is
// informational metadata for a later code-generation phase and is not
// consulted by either analysis pass.
type VarDecl struct {
	Position   token.Position `json:"pos"`
	Type       TypeRef        `json:"type"`
	Name       *Id            `json:"name"`
	StructSize *int           `json:"structSize,omitempty"`
}

func (d *VarDecl) Pos() token.Position { return d.Position }
func (d *VarDecl) declNode()           {}

// FormalDecl declares a single function parameter.
type FormalDecl struct {
	Position token.Position `json:"pos"`
	Type     TypeRef        `json:"type"`
	Name     *Id            `json:"name"`
}

func (d *FormalDecl) Pos() token.Position { return d.Position }
func (d *FormalDecl) declNode()           {}

// FnDecl declares a function: return type, name, ordered formals, and body.
type FnDecl struct {
	Position token.Position `json:"pos"`
	Ret      TypeRef        `json:"ret"`
	Name     *Id            `json:"name"`
	Formals  []*FormalDecl  `json:"formals"`
	Body     *StmtList      `json:"body"`
}

func (d *FnDecl) Pos() token.Position { return d.Position }
func (d *FnDecl) declNode()           {}

// StructDefDecl declares a struct type and its field list. The fields are
// analyzed into a dedicated field scope owned by the resulting StructDef
// symbol; they are never visible via unqualified lookup (spec.md §3).
type StructDefDecl struct {
	Position token.Position `json:"pos"`
	Name     *Id            `json:"name"`
	Fields   []*VarDecl     `json:"fields"`
}

func (d *StructDefDecl) Pos() token.Position { return d.Position }
func (d *StructDefDecl) declNode()           {}
