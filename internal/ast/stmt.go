package ast

import "tcad/internal/source"

type Stmt interface {
	Span() source.Span
	stmtNode()
}

// BadStmt stands in for source the parser could not make sense of.
type BadStmt struct {
	Sp source.Span
}

// Let is `let Name[: Type] [= Init];`. Type and Init may each be nil; a
// bare let is an unknown-typed binding, not an error.
type Let struct {
	Name string
	Type *TypeRef
	Init Expr
	Sp   source.Span
}

// Assign is `Target = Value;`, an equality constraint on an existing entity.
type Assign struct {
	Target Expr
	Value  Expr
	Sp     source.Span
}

// For is `for Var in Range { Body }`.
type For struct {
	Var   string
	VarSp source.Span
	Range Expr
	Body  []Stmt
	Sp    source.Span
}

// With is `with View { Body }`.
type With struct {
	View Expr
	Body []Stmt
	Sp   source.Span
}

// Return is `return [Value];`. Value may be nil.
type Return struct {
	Value Expr
	Sp    source.Span
}

type ExprStmt struct {
	X  Expr
	Sp source.Span
}

func (s *BadStmt) Span() source.Span  { return s.Sp }
func (s *Let) Span() source.Span      { return s.Sp }
func (s *Assign) Span() source.Span   { return s.Sp }
func (s *For) Span() source.Span      { return s.Sp }
func (s *With) Span() source.Span     { return s.Sp }
func (s *Return) Span() source.Span   { return s.Sp }
func (s *ExprStmt) Span() source.Span { return s.Sp }

func (*BadStmt) stmtNode()  {}
func (*Let) stmtNode()      {}
func (*Assign) stmtNode()   {}
func (*For) stmtNode()      {}
func (*With) stmtNode()     {}
func (*Return) stmtNode()   {}
func (*ExprStmt) stmtNode() {}
