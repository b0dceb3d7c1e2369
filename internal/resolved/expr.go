// Package resolved is the tree stage between parsing and type checking:
// every identifier occurrence is bound to a symbol handle, no types yet.
// Field names stay textual; they wait for the Type Table.
package resolved

import (
	"tcad/internal/ast"
	"tcad/internal/source"
	"tcad/internal/symbols"
)

type Expr interface {
	Span() source.Span
	exprNode()
}

type Lit struct {
	Value ast.Literal
	Sp    source.Span
}

// SymbolRef is a resolved identifier occurrence.
type SymbolRef struct {
	Symbol symbols.SymbolID
	Sp     source.Span
}

type Binary struct {
	Op          ast.BinaryOp
	Left, Right Expr
	Sp          source.Span
}

type Unary struct {
	Op      ast.UnaryOp
	Operand Expr
	Sp      source.Span
}

// Field keeps its name textual; only the base is bound here.
type Field struct {
	Base Expr
	Name string
	Sp   source.Span
}

type Call struct {
	Callee Expr
	Args   []Expr
	Sp     source.Span
}

type Index struct {
	Base  Expr
	Index Expr
	Sp    source.Span
}

type ArrayLit struct {
	Elems []Expr
	Sp    source.Span
}

// StructLit is bound to the struct symbol; field expressions keep their
// textual names for the checker's layout validation.
type StructLit struct {
	Struct symbols.SymbolID
	Fields []StructLitField
	Sp     source.Span
}

type StructLitField struct {
	Name  string
	Value Expr
	Sp    source.Span
}

type Range struct {
	Lo, Hi Expr
	Sp     source.Span
}

func (e *Lit) Span() source.Span       { return e.Sp }
func (e *SymbolRef) Span() source.Span { return e.Sp }
func (e *Binary) Span() source.Span    { return e.Sp }
func (e *Unary) Span() source.Span     { return e.Sp }
func (e *Field) Span() source.Span     { return e.Sp }
func (e *Call) Span() source.Span      { return e.Sp }
func (e *Index) Span() source.Span     { return e.Sp }
func (e *ArrayLit) Span() source.Span  { return e.Sp }
func (e *StructLit) Span() source.Span { return e.Sp }
func (e *Range) Span() source.Span     { return e.Sp }

func (*Lit) exprNode()       {}
func (*SymbolRef) exprNode() {}
func (*Binary) exprNode()    {}
func (*Unary) exprNode()     {}
func (*Field) exprNode()     {}
func (*Call) exprNode()      {}
func (*Index) exprNode()     {}
func (*ArrayLit) exprNode()  {}
func (*StructLit) exprNode() {}
func (*Range) exprNode()     {}
