package ast

import "github.com/cwbudde/cmm/internal/token"

// StmtList is a declaration list followed by a statement list that
// introduces a block scope (spec.md §3): a function body, a then/else arm,
// or a while/repeat body. The name-analysis walk pushes a scope on entry to
// a then/else arm or a while/repeat body and pops it on exit; a function
// body shares the scope already pushed for its formals. The type-check walk
// does not touch scopes.
type StmtList struct {
	Position token.Position `json:"pos"`
	Decls    []*VarDecl     `json:"decls"`
	Stmts    []Stmt         `json:"stmts"`
}

func (s *StmtList) Pos() token.Position { return s.Position }

// AssignStmt is an assignment used as a statement; it is well-formed iff
// the wrapped assignment expression is not Error (spec.md §4.3).
type AssignStmt struct {
	Position token.Position `json:"pos"`
	Assign   *AssignExpr    `json:"assign"`
}

func (s *AssignStmt) Pos() token.Position { return s.Position }
func (s *AssignStmt) stmtNode()           {}

// PostIncStmt and PostDecStmt are `operand++` / `operand--`.
type PostIncStmt struct {
	Position token.Position `json:"pos"`
	Operand  Expr           `json:"operand"`
}

func (s *PostIncStmt) Pos() token.Position { return s.Position }
func (s *PostIncStmt) stmtNode()           {}

type PostDecStmt struct {
	Position token.Position `json:"pos"`
	Operand  Expr           `json:"operand"`
}

func (s *PostDecStmt) Pos() token.Position { return s.Position }
func (s *PostDecStmt) stmtNode()           {}

// ReadStmt reads a value into Operand; Operand must not be a function,
// struct name, or struct variable (spec.md §4.3).
type ReadStmt struct {
	Position token.Position `json:"pos"`
	Operand  Expr           `json:"operand"`
}

func (s *ReadStmt) Pos() token.Position { return s.Position }
func (s *ReadStmt) stmtNode()           {}

// WriteStmt writes the value of Operand; additionally forbids Void.
type WriteStmt struct {
	Position token.Position `json:"pos"`
	Operand  Expr           `json:"operand"`
}

func (s *WriteStmt) Pos() token.Position { return s.Position }
func (s *WriteStmt) stmtNode()           {}

// IfStmt and IfElseStmt are conditional statements; Cond must be Bool.
type IfStmt struct {
	Position token.Position `json:"pos"`
	Cond     Expr           `json:"cond"`
	Then     *StmtList      `json:"then"`
}

func (s *IfStmt) Pos() token.Position { return s.Position }
func (s *IfStmt) stmtNode()           {}

type IfElseStmt struct {
	Position token.Position `json:"pos"`
	Cond     Expr           `json:"cond"`
	Then     *StmtList      `json:"then"`
	Else     *StmtList      `json:"else"`
}

func (s *IfElseStmt) Pos() token.Position { return s.Position }
func (s *IfElseStmt) stmtNode()           {}

// WhileStmt loops while Cond (Bool) holds.
type WhileStmt struct {
	Position token.Position `json:"pos"`
	Cond     Expr           `json:"cond"`
	Body     *StmtList      `json:"body"`
}

func (s *WhileStmt) Pos() token.Position { return s.Position }
func (s *WhileStmt) stmtNode()           {}

// RepeatStmt loops Cond (Int) times.
type RepeatStmt struct {
	Position token.Position `json:"pos"`
	Cond     Expr           `json:"cond"`
	Body     *StmtList      `json:"body"`
}

func (s *RepeatStmt) Pos() token.Position { return s.Position }
func (s *RepeatStmt) stmtNode()           {}

// CallStmt is a call expression used as a statement.
type CallStmt struct {
	Position token.Position `json:"pos"`
	Call     *CallExpr      `json:"call"`
}

func (s *CallStmt) Pos() token.Position { return s.Position }
func (s *CallStmt) stmtNode()           {}

// ReturnStmt returns from the enclosing function. Expr is nil for a bare
// `return;`.
type ReturnStmt struct {
	Position token.Position `json:"pos"`
	Expr     Expr           `json:"expr,omitempty"`
}

func (s *ReturnStmt) Pos() token.Position { return s.Position }
func (s *ReturnStmt) stmtNode()           {}
