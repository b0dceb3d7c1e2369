package typed

import (
	"tcad/internal/source"
	"tcad/internal/symbols"
	"tcad/internal/types"
)

type Stmt interface {
	Span() source.Span
	stmtNode()
}

// Let records the binding's checked type, declared or inferred.
type Let struct {
	Symbol symbols.SymbolID
	Ty     types.TypeID
	Init   Expr // may be nil
	Sp     source.Span
}

// ConstraintKind classifies a constraint statement. Assignment in a sketch
// is a declarative equality, not a mutation.
type ConstraintKind uint8

const (
	ConstraintEquality ConstraintKind = iota
)

type Constraint struct {
	Kind   ConstraintKind
	Target Expr
	Value  Expr
	Sp     source.Span
}

// For's loop variable is always I32.
type For struct {
	Var   symbols.SymbolID
	Range Expr
	Scope symbols.ScopeID
	Body  []Stmt
	Sp    source.Span
}

type With struct {
	View  Expr
	Scope symbols.ScopeID
	Body  []Stmt
	Sp    source.Span
}

type Return struct {
	Value Expr // may be nil
	Sp    source.Span
}

type ExprStmt struct {
	X  Expr
	Sp source.Span
}

func (s *Let) Span() source.Span        { return s.Sp }
func (s *Constraint) Span() source.Span { return s.Sp }
func (s *For) Span() source.Span        { return s.Sp }
func (s *With) Span() source.Span       { return s.Sp }
func (s *Return) Span() source.Span     { return s.Sp }
func (s *ExprStmt) Span() source.Span   { return s.Sp }

func (*Let) stmtNode()        {}
func (*Constraint) stmtNode() {}
func (*For) stmtNode()        {}
func (*With) stmtNode()       {}
func (*Return) stmtNode()     {}
func (*ExprStmt) stmtNode()   {}
