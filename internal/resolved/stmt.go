package resolved

import (
	"tcad/internal/source"
	"tcad/internal/symbols"
)

type Stmt interface {
	Span() source.Span
	stmtNode()
}

// Let binds the declared symbol. Type is the resolved annotation or nil;
// Init may be nil.
type Let struct {
	Symbol symbols.SymbolID
	Type   *symbols.TypeRef
	Init   Expr
	Sp     source.Span
}

// Assign is an equality constraint between two resolved expressions.
type Assign struct {
	Target Expr
	Value  Expr
	Sp     source.Span
}

// For holds the block scope the loop variable lives in.
type For struct {
	Var   symbols.SymbolID
	Range Expr
	Scope symbols.ScopeID
	Body  []Stmt
	Sp    source.Span
}

// With holds the block scope the body was resolved in. The view expression
// was resolved in the enclosing scope.
type With struct {
	View  Expr
	Scope symbols.ScopeID
	Body  []Stmt
	Sp    source.Span
}

// Return's Value may be nil.
type Return struct {
	Value Expr
	Sp    source.Span
}

type ExprStmt struct {
	X  Expr
	Sp source.Span
}

func (s *Let) Span() source.Span      { return s.Sp }
func (s *Assign) Span() source.Span   { return s.Sp }
func (s *For) Span() source.Span      { return s.Sp }
func (s *With) Span() source.Span     { return s.Sp }
func (s *Return) Span() source.Span   { return s.Sp }
func (s *ExprStmt) Span() source.Span { return s.Sp }

func (*Let) stmtNode()      {}
func (*Assign) stmtNode()   {}
func (*For) stmtNode()      {}
func (*With) stmtNode()     {}
func (*Return) stmtNode()   {}
func (*ExprStmt) stmtNode() {}
