// Package typed is the final tree stage: every expression carries a bound
// TypeID. A Bad node is the Error-typed placeholder statement-level
// recovery substitutes for a failed subtree.
package typed

import (
	"tcad/internal/ast"
	"tcad/internal/source"
	"tcad/internal/symbols"
	"tcad/internal/types"
)

type Expr interface {
	Span() source.Span
	Type() types.TypeID
	exprNode()
}

// Bad is the placeholder for a subtree a diagnostic was already reported
// for. Its type is always the Error type.
type Bad struct {
	Ty types.TypeID
	Sp source.Span
}

type Lit struct {
	Value ast.Literal
	Ty    types.TypeID
	Sp    source.Span
}

type SymbolRef struct {
	Symbol symbols.SymbolID
	Ty     types.TypeID
	Sp     source.Span
}

type Binary struct {
	Op          ast.BinaryOp
	Left, Right Expr
	Ty          types.TypeID
	Sp          source.Span
}

type Unary struct {
	Op      ast.UnaryOp
	Operand Expr
	Ty      types.TypeID
	Sp      source.Span
}

type Field struct {
	Base Expr
	Name string
	Ty   types.TypeID
	Sp   source.Span
}

type Call struct {
	Callee Expr
	Args   []Expr
	Ty     types.TypeID
	Sp     source.Span
}

type Index struct {
	Base  Expr
	Index Expr
	Ty    types.TypeID
	Sp    source.Span
}

type ArrayLit struct {
	Elems []Expr
	Ty    types.TypeID
	Sp    source.Span
}

type StructLit struct {
	Struct types.StructID
	Fields []StructLitField
	Ty     types.TypeID
	Sp     source.Span
}

type StructLitField struct {
	Name  string
	Value Expr
}

type Range struct {
	Lo, Hi Expr
	Ty     types.TypeID
	Sp     source.Span
}

func (e *Bad) Span() source.Span       { return e.Sp }
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

func (e *Bad) Type() types.TypeID       { return e.Ty }
func (e *Lit) Type() types.TypeID       { return e.Ty }
func (e *SymbolRef) Type() types.TypeID { return e.Ty }
func (e *Binary) Type() types.TypeID    { return e.Ty }
func (e *Unary) Type() types.TypeID     { return e.Ty }
func (e *Field) Type() types.TypeID     { return e.Ty }
func (e *Call) Type() types.TypeID      { return e.Ty }
func (e *Index) Type() types.TypeID     { return e.Ty }
func (e *ArrayLit) Type() types.TypeID  { return e.Ty }
func (e *StructLit) Type() types.TypeID { return e.Ty }
func (e *Range) Type() types.TypeID     { return e.Ty }

func (*Bad) exprNode()       {}
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
