// Package types implements the closed set of static types for C-- (spec.md
// §3): Int, Bool, Void, String, Fn, Struct, StructDef, and the absorbing
// Error type. Two types are equal iff they are the same variant with equal
// payloads.
package types

import "strings"

// Type is the interface every static type variant implements.
type Type interface {
	// String returns a human-readable name, used in diagnostics.
	String() string

	// Equals reports whether other is the same variant with equal payloads.
	Equals(other Type) bool

	typeNode()
}

// Basic is a type with no payload: Int, Bool, Void, String, or Error.
type Basic struct {
	name string
}

func (b *Basic) typeNode() {}

func (b *Basic) String() string { return b.name }

func (b *Basic) Equals(other Type) bool {
	o, ok := other.(*Basic)
	return ok && o.name == b.name
}

// The closed set of basic types. String participates only in string
// literals and write statements; it is never a declarable variable type
// (spec.md §3). Error is the absorbing element.
var (
	Int    = &Basic{name: "int"}
	Bool   = &Basic{name: "bool"}
	Void   = &Basic{name: "void"}
	String = &Basic{name: "string"}
	Error  = &Basic{name: "<error>"}
)

// Fn is a function's signature: an ordered sequence of formal types and a
// return type.
type Fn struct {
	Formals []Type
	Ret     Type
}

func (f *Fn) typeNode() {}

func (f *Fn) String() string {
	var sb strings.Builder
	sb.WriteString("fn(")
	for i, t := range f.Formals {
		if i > 0 {
			sb.WriteString(", ")
		}
		sb.WriteString(t.String())
	}
	sb.WriteString(") -> ")
	sb.WriteString(f.Ret.String())
	return sb.String()
}

func (f *Fn) Equals(other Type) bool {
	o, ok := other.(*Fn)
	if !ok {
		return false
	}
	if len(f.Formals) != len(o.Formals) {
		return false
	}
	for i, t := range f.Formals {
		if !t.Equals(o.Formals[i]) {
			return false
		}
	}
	return f.Ret.Equals(o.Ret)
}

// Struct is the type of a struct-variable binding: a reference to the
// struct's declared name. Two Struct types are equal iff they name the same
// struct.
type Struct struct {
	Name string
}

func (s *Struct) typeNode() {}

func (s *Struct) String() string { return "struct " + s.Name }

func (s *Struct) Equals(other Type) bool {
	o, ok := other.(*Struct)
	return ok && o.Name == s.Name
}

// StructDef is the type of a struct-definition binding itself (as opposed
// to a variable of that struct type) — it shows up as the operand type when
// a struct *name* is used where a value is expected, e.g. in an equality
// comparison of two struct names (spec.md §4.3).
type StructDef struct {
	Name string
}

func (s *StructDef) typeNode() {}

func (s *StructDef) String() string { return "struct-def " + s.Name }

func (s *StructDef) Equals(other Type) bool {
	o, ok := other.(*StructDef)
	return ok && o.Name == s.Name
}

// IsError reports whether t is the absorbing Error type. A nil type is
// never considered Error; callers that may see nil must check explicitly
// (nil indicates an analyzer bug, see spec.md §4.3).
func IsError(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b == Error
}

// IsNumeric reports whether t is Int.
func IsNumeric(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b == Int
}

// IsBool reports whether t is Bool.
func IsBool(t Type) bool {
	b, ok := t.(*Basic)
	return ok && b == Bool
}
