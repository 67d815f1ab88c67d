package types

import "testing"

func TestBasicEquals(t *testing.T) {
	if !Int.Equals(Int) {
		t.Error("Int should equal Int")
	}
	if Int.Equals(Bool) {
		t.Error("Int should not equal Bool")
	}
	if Error.Equals(Int) {
		t.Error("Error should not equal Int")
	}
}

func TestFnEquals(t *testing.T) {
	a := &Fn{Formals: []Type{Int, Bool}, Ret: Void}
	b := &Fn{Formals: []Type{Int, Bool}, Ret: Void}
	c := &Fn{Formals: []Type{Int}, Ret: Void}
	d := &Fn{Formals: []Type{Int, Bool}, Ret: Int}

	if !a.Equals(b) {
		t.Error("identical signatures should be equal")
	}
	if a.Equals(c) {
		t.Error("different arity should not be equal")
	}
	if a.Equals(d) {
		t.Error("different return type should not be equal")
	}
}

func TestStructEquals(t *testing.T) {
	s1 := &Struct{Name: "Point"}
	s2 := &Struct{Name: "Point"}
	s3 := &Struct{Name: "Line"}

	if !s1.Equals(s2) {
		t.Error("same-named struct types should be equal")
	}
	if s1.Equals(s3) {
		t.Error("differently-named struct types should not be equal")
	}
	if s1.Equals(&StructDef{Name: "Point"}) {
		t.Error("Struct should never equal StructDef, even with the same name")
	}
}

func TestPredicates(t *testing.T) {
	if !IsNumeric(Int) || IsNumeric(Bool) || IsNumeric(Error) {
		t.Error("IsNumeric should hold only for Int")
	}
	if !IsBool(Bool) || IsBool(Int) {
		t.Error("IsBool should hold only for Bool")
	}
	if !IsError(Error) || IsError(Int) {
		t.Error("IsError should hold only for Error")
	}
	if IsError(nil) {
		t.Error("a nil type is never considered Error")
	}
}
