package ast

import "tcad/internal/source"

// Expr is the unresolved expression family. Every node carries the span of
// the source text it covers.
type Expr interface {
	Span() source.Span
	exprNode()
}

// BadExpr stands in for source the parser could not make sense of.
type BadExpr struct {
	Sp source.Span
}

type Lit struct {
	Value Literal
	Sp    source.Span
}

type Ident struct {
	Name string
	Sp   source.Span
}

type Binary struct {
	Op          BinaryOp
	Left, Right Expr
	Sp          source.Span
}

type Unary struct {
	Op      UnaryOp
	Operand Expr
	Sp      source.Span
}

// Field is `Base.Name`.
type Field struct {
	Base Expr
	Name string
	Sp   source.Span
}

// Call is `Callee(Args...)`. Callee is an Ident or a Field (method call).
type Call struct {
	Callee Expr
	Args   []Expr
	Sp     source.Span
}

// Index is `Base[Index]`.
type Index struct {
	Base  Expr
	Index Expr
	Sp    source.Span
}

type ArrayLit struct {
	Elems []Expr
	Sp    source.Span
}

// StructLit is `Name { Field: expr, ... }`.
type StructLit struct {
	Name   string
	Fields []StructLitField
	Sp     source.Span
}

type StructLitField struct {
	Name  string
	Value Expr
	Sp    source.Span
}

// Range is `Lo..Hi`, half-open.
type Range struct {
	Lo, Hi Expr
	Sp     source.Span
}

type Paren struct {
	Inner Expr
	Sp    source.Span
}

func (e *BadExpr) Span() source.Span   { return e.Sp }
func (e *Lit) Span() source.Span       { return e.Sp }
func (e *Ident) Span() source.Span     { return e.Sp }
func (e *Binary) Span() source.Span    { return e.Sp }
func (e *Unary) Span() source.Span     { return e.Sp }
func (e *Field) Span() source.Span     { return e.Sp }
func (e *Call) Span() source.Span      { return e.Sp }
func (e *Index) Span() source.Span     { return e.Sp }
func (e *ArrayLit) Span() source.Span  { return e.Sp }
func (e *StructLit) Span() source.Span { return e.Sp }
func (e *Range) Span() source.Span     { return e.Sp }
func (e *Paren) Span() source.Span     { return e.Sp }

func (*BadExpr) exprNode()   {}
func (*Lit) exprNode()       {}
func (*Ident) exprNode()     {}
func (*Binary) exprNode()    {}
func (*Unary) exprNode()     {}
func (*Field) exprNode()     {}
func (*Call) exprNode()      {}
func (*Index) exprNode()     {}
func (*ArrayLit) exprNode()  {}
func (*StructLit) exprNode() {}
func (*Range) exprNode()     {}
func (*Paren) exprNode()     {}
