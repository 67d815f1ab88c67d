package ast

import (
	"encoding/json"
	"fmt"

	"github.com/cwbudde/cmm/internal/token"
)

// kindEnvelope peeks at the "kind" discriminator every polymorphic wire
// node carries, so the decoder knows which concrete Go type to unmarshal
// into. This is the JSON analogue of the tagged-sum AST taxonomy in
// spec.md §3: the parser collaborator emits one "kind" string per node.
type kindEnvelope struct {
	Kind string `json:"kind"`
}

func peekKind(raw json.RawMessage) (string, error) {
	var env kindEnvelope
	if err := json.Unmarshal(raw, &env); err != nil {
		return "", err
	}
	if env.Kind == "" {
		return "", fmt.Errorf("ast: missing \"kind\" field in %s", string(raw))
	}
	return env.Kind, nil
}

func decodeTypeRef(raw json.RawMessage) (TypeRef, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	kind, err := peekKind(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "int":
		var t IntT
		return &t, json.Unmarshal(raw, &t)
	case "bool":
		var t BoolT
		return &t, json.Unmarshal(raw, &t)
	case "void":
		var t VoidT
		return &t, json.Unmarshal(raw, &t)
	case "struct":
		var t StructT
		return &t, json.Unmarshal(raw, &t)
	default:
		return nil, fmt.Errorf("ast: unknown type-ref kind %q", kind)
	}
}

func decodeDecl(raw json.RawMessage) (Decl, error) {
	kind, err := peekKind(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "var":
		var d VarDecl
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return &d, nil
	case "fn":
		var d FnDecl
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return &d, nil
	case "struct":
		var d StructDefDecl
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}
		return &d, nil
	default:
		return nil, fmt.Errorf("ast: unknown decl kind %q", kind)
	}
}

func decodeStmt(raw json.RawMessage) (Stmt, error) {
	kind, err := peekKind(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "assign":
		var s AssignStmt
		return &s, json.Unmarshal(raw, &s)
	case "postinc":
		var s PostIncStmt
		return &s, json.Unmarshal(raw, &s)
	case "postdec":
		var s PostDecStmt
		return &s, json.Unmarshal(raw, &s)
	case "read":
		var s ReadStmt
		return &s, json.Unmarshal(raw, &s)
	case "write":
		var s WriteStmt
		return &s, json.Unmarshal(raw, &s)
	case "if":
		var s IfStmt
		return &s, json.Unmarshal(raw, &s)
	case "ifelse":
		var s IfElseStmt
		return &s, json.Unmarshal(raw, &s)
	case "while":
		var s WhileStmt
		return &s, json.Unmarshal(raw, &s)
	case "repeat":
		var s RepeatStmt
		return &s, json.Unmarshal(raw, &s)
	case "call":
		var s CallStmt
		return &s, json.Unmarshal(raw, &s)
	case "return":
		var s ReturnStmt
		return &s, json.Unmarshal(raw, &s)
	default:
		return nil, fmt.Errorf("ast: unknown stmt kind %q", kind)
	}
}

func decodeExpr(raw json.RawMessage) (Expr, error) {
	if len(raw) == 0 || string(raw) == "null" {
		return nil, nil
	}
	kind, err := peekKind(raw)
	if err != nil {
		return nil, err
	}
	switch kind {
	case "int":
		var e IntLit
		return &e, json.Unmarshal(raw, &e)
	case "string":
		var e StringLit
		return &e, json.Unmarshal(raw, &e)
	case "true":
		var e TrueLit
		return &e, json.Unmarshal(raw, &e)
	case "false":
		var e FalseLit
		return &e, json.Unmarshal(raw, &e)
	case "id":
		var e Id
		return &e, json.Unmarshal(raw, &e)
	case "dot":
		var e DotAccess
		return &e, json.Unmarshal(raw, &e)
	case "assign":
		var e AssignExpr
		return &e, json.Unmarshal(raw, &e)
	case "call":
		var e CallExpr
		return &e, json.Unmarshal(raw, &e)
	case "unary":
		var e UnaryExpr
		return &e, json.Unmarshal(raw, &e)
	case "binary":
		var e BinaryExpr
		return &e, json.Unmarshal(raw, &e)
	default:
		return nil, fmt.Errorf("ast: unknown expr kind %q", kind)
	}
}

// ---- UnmarshalJSON implementations for nodes with polymorphic fields ----

func (p *Program) UnmarshalJSON(data []byte) error {
	var wire struct {
		Decls []json.RawMessage `json:"decls"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	p.Decls = make([]Decl, 0, len(wire.Decls))
	for _, raw := range wire.Decls {
		d, err := decodeDecl(raw)
		if err != nil {
			return err
		}
		p.Decls = append(p.Decls, d)
	}
	return nil
}

func (d *VarDecl) UnmarshalJSON(data []byte) error {
	var wire struct {
		kindEnvelope
		Position   json.RawMessage `json:"pos"`
		Type       json.RawMessage `json:"type"`
		Name       *Id             `json:"name"`
		StructSize *int            `json:"structSize,omitempty"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &d.Position); err != nil {
		return err
	}
	t, err := decodeTypeRef(wire.Type)
	if err != nil {
		return err
	}
	d.Type = t
	d.Name = wire.Name
	d.StructSize = wire.StructSize
	return nil
}

func (d *FnDecl) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Ret      json.RawMessage `json:"ret"`
		Name     *Id             `json:"name"`
		Formals  []*FormalDecl   `json:"formals"`
		Body     *StmtList       `json:"body"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &d.Position); err != nil {
		return err
	}
	ret, err := decodeTypeRef(wire.Ret)
	if err != nil {
		return err
	}
	d.Ret = ret
	d.Name = wire.Name
	d.Formals = wire.Formals
	d.Body = wire.Body
	return nil
}

func (f *FormalDecl) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Type     json.RawMessage `json:"type"`
		Name     *Id             `json:"name"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &f.Position); err != nil {
		return err
	}
	t, err := decodeTypeRef(wire.Type)
	if err != nil {
		return err
	}
	f.Type = t
	f.Name = wire.Name
	return nil
}

func (s *StmtList) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage   `json:"pos"`
		Decls    []*VarDecl        `json:"decls"`
		Stmts    []json.RawMessage `json:"stmts"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &s.Position); err != nil {
		return err
	}
	s.Decls = wire.Decls
	s.Stmts = make([]Stmt, 0, len(wire.Stmts))
	for _, raw := range wire.Stmts {
		st, err := decodeStmt(raw)
		if err != nil {
			return err
		}
		s.Stmts = append(s.Stmts, st)
	}
	return nil
}

func (s *AssignStmt) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Assign   *AssignExpr     `json:"assign"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &s.Position); err != nil {
		return err
	}
	s.Assign = wire.Assign
	return nil
}

func (s *PostIncStmt) UnmarshalJSON(data []byte) error {
	pos, operand, err := decodeOperandStmt(data)
	if err != nil {
		return err
	}
	s.Position, s.Operand = pos, operand
	return nil
}

func (s *PostDecStmt) UnmarshalJSON(data []byte) error {
	pos, operand, err := decodeOperandStmt(data)
	if err != nil {
		return err
	}
	s.Position, s.Operand = pos, operand
	return nil
}

func (s *ReadStmt) UnmarshalJSON(data []byte) error {
	pos, operand, err := decodeOperandStmt(data)
	if err != nil {
		return err
	}
	s.Position, s.Operand = pos, operand
	return nil
}

func (s *WriteStmt) UnmarshalJSON(data []byte) error {
	pos, operand, err := decodeOperandStmt(data)
	if err != nil {
		return err
	}
	s.Position, s.Operand = pos, operand
	return nil
}

// decodeOperandStmt decodes the {pos, operand} shape shared by PostInc,
// PostDec, Read, and Write statements.
func decodeOperandStmt(data []byte) (token.Position, Expr, error) {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Operand  json.RawMessage `json:"operand"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return token.Position{}, nil, err
	}
	var pos token.Position
	if err := json.Unmarshal(wire.Position, &pos); err != nil {
		return token.Position{}, nil, err
	}
	operand, err := decodeExpr(wire.Operand)
	if err != nil {
		return token.Position{}, nil, err
	}
	return pos, operand, nil
}

func (s *IfStmt) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Cond     json.RawMessage `json:"cond"`
		Then     *StmtList       `json:"then"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &s.Position); err != nil {
		return err
	}
	cond, err := decodeExpr(wire.Cond)
	if err != nil {
		return err
	}
	s.Cond = cond
	s.Then = wire.Then
	return nil
}

func (s *IfElseStmt) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Cond     json.RawMessage `json:"cond"`
		Then     *StmtList       `json:"then"`
		Else     *StmtList       `json:"else"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &s.Position); err != nil {
		return err
	}
	cond, err := decodeExpr(wire.Cond)
	if err != nil {
		return err
	}
	s.Cond = cond
	s.Then = wire.Then
	s.Else = wire.Else
	return nil
}

func (s *WhileStmt) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Cond     json.RawMessage `json:"cond"`
		Body     *StmtList       `json:"body"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &s.Position); err != nil {
		return err
	}
	cond, err := decodeExpr(wire.Cond)
	if err != nil {
		return err
	}
	s.Cond = cond
	s.Body = wire.Body
	return nil
}

func (s *RepeatStmt) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Cond     json.RawMessage `json:"cond"`
		Body     *StmtList       `json:"body"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &s.Position); err != nil {
		return err
	}
	cond, err := decodeExpr(wire.Cond)
	if err != nil {
		return err
	}
	s.Cond = cond
	s.Body = wire.Body
	return nil
}

func (s *CallStmt) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Call     *CallExpr       `json:"call"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &s.Position); err != nil {
		return err
	}
	s.Call = wire.Call
	return nil
}

func (s *ReturnStmt) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Expr     json.RawMessage `json:"expr,omitempty"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &s.Position); err != nil {
		return err
	}
	e, err := decodeExpr(wire.Expr)
	if err != nil {
		return err
	}
	s.Expr = e
	return nil
}

func (e *DotAccess) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Loc      json.RawMessage `json:"loc"`
		Field    *Id             `json:"field"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &e.Position); err != nil {
		return err
	}
	loc, err := decodeExpr(wire.Loc)
	if err != nil {
		return err
	}
	e.Loc = loc
	e.Field = wire.Field
	return nil
}

func (e *AssignExpr) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Lhs      json.RawMessage `json:"lhs"`
		Rhs      json.RawMessage `json:"rhs"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &e.Position); err != nil {
		return err
	}
	lhs, err := decodeExpr(wire.Lhs)
	if err != nil {
		return err
	}
	rhs, err := decodeExpr(wire.Rhs)
	if err != nil {
		return err
	}
	e.Lhs, e.Rhs = lhs, rhs
	return nil
}

func (e *CallExpr) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage   `json:"pos"`
		Callee   *Id               `json:"callee"`
		Args     []json.RawMessage `json:"args"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &e.Position); err != nil {
		return err
	}
	e.Callee = wire.Callee
	e.Args = make([]Expr, 0, len(wire.Args))
	for _, raw := range wire.Args {
		arg, err := decodeExpr(raw)
		if err != nil {
			return err
		}
		e.Args = append(e.Args, arg)
	}
	return nil
}

func (e *UnaryExpr) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Op       UnaryOp         `json:"op"`
		Operand  json.RawMessage `json:"operand"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &e.Position); err != nil {
		return err
	}
	operand, err := decodeExpr(wire.Operand)
	if err != nil {
		return err
	}
	e.Op = wire.Op
	e.Operand = operand
	return nil
}

func (e *BinaryExpr) UnmarshalJSON(data []byte) error {
	var wire struct {
		Position json.RawMessage `json:"pos"`
		Op       BinaryOp        `json:"op"`
		Left     json.RawMessage `json:"left"`
		Right    json.RawMessage `json:"right"`
	}
	if err := json.Unmarshal(data, &wire); err != nil {
		return err
	}
	if err := json.Unmarshal(wire.Position, &e.Position); err != nil {
		return err
	}
	left, err := decodeExpr(wire.Left)
	if err != nil {
		return err
	}
	right, err := decodeExpr(wire.Right)
	if err != nil {
		return err
	}
	e.Op = wire.Op
	e.Left, e.Right = left, right
	return nil
}
