package ast

import "github.com/cwbudde/cmm/internal/token"

// IntT, BoolT, VoidT, and StructT are the syntactic type references that
// can appear in a declaration (spec.md §3).

type IntT struct {
	Position token.Position `json:"pos"`
}

func (t *IntT) Pos() token.Position { return t.Position }
func (t *IntT) typeRefNode()        {}
func (t *IntT) TypeName() string    { return "" }

type BoolT struct {
	Position token.Position `json:"pos"`
}

func (t *BoolT) Pos() token.Position { return t.Position }
func (t *BoolT) typeRefNode()        {}
func (t *BoolT) TypeName() string    { return "" }

type VoidT struct {
	Position token.Position `json:"pos"`
}

func (t *VoidT) Pos() token.Position { return t.Position }
func (t *VoidT) typeRefNode()        {}
func (t *VoidT) TypeName() string    { return "" }

// StructT references a struct type by name; it is well-formed only if Name
// resolves to a StructDef symbol in the enclosing global scope (spec.md
// §3's StructT invariant).
type StructT struct {
	Position token.Position `json:"pos"`
	Name     string         `json:"name"`
}

func (t *StructT) Pos() token.Position { return t.Position }
func (t *StructT) typeRefNode()        {}
func (t *StructT) TypeName() string    { return t.Name }
