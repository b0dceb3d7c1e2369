package sema

import (
	"tcad/internal/ast"
	"tcad/internal/diag"
	"tcad/internal/resolved"
	"tcad/internal/symbols"
	"tcad/internal/typed"
	"tcad/internal/types"
)

// checkExpr always yields a typed expression; a local failure reports once
// and collapses to an Error-typed placeholder.
func (c *Checker) checkExpr(expr resolved.Expr) typed.Expr {
	switch e := expr.(type) {
	case *resolved.Lit:
		return &typed.Lit{Value: e.Value, Ty: c.litType(e.Value), Sp: e.Sp}
	case *resolved.SymbolRef:
		return c.checkSymbolRef(e)
	case *resolved.Binary:
		return c.checkBinary(e)
	case *resolved.Unary:
		return c.checkUnary(e)
	case *resolved.Field:
		return c.checkField(e)
	case *resolved.Call:
		return c.checkCall(e)
	case *resolved.Index:
		return c.checkIndex(e)
	case *resolved.ArrayLit:
		return c.checkArrayLit(e)
	case *resolved.StructLit:
		return c.checkStructLit(e)
	case *resolved.Range:
		return c.checkRange(e)
	default:
		return c.bad(expr.Span())
	}
}

func (c *Checker) litType(lit ast.Literal) types.TypeID {
	switch lit.Kind {
	case ast.LitInt:
		return c.b.I32
	case ast.LitFloat:
		return c.b.F64
	case ast.LitBool:
		return c.b.Bool
	case ast.LitLength:
		// Unit tags never reach the type level; mm, cm, and m are all
		// one Length.
		return c.b.Length
	case ast.LitAngle:
		return c.b.Angle
	default:
		return c.b.Error
	}
}

func (c *Checker) checkSymbolRef(e *resolved.SymbolRef) typed.Expr {
	sym := c.table.Symbol(e.Symbol)
	var ty types.TypeID
	switch sym.Kind {
	case symbols.SymVariable, symbols.SymParameter, symbols.SymField:
		if inferred, ok := c.varTypes[e.Symbol]; ok {
			ty = inferred
		} else {
			ty = c.typeFromRef(sym.Type)
		}
	case symbols.SymFunction:
		if fnTy, ok := c.fnTypes[e.Symbol]; ok {
			ty = fnTy
		} else {
			ty = c.b.Unknown
		}
	default:
		// A struct name is not a value.
		diag.Errorf(c.reporter, diag.TypeUndefinedSymbol, e.Sp,
			"%q is a type, not a value", c.table.Name(e.Symbol))
		return c.bad(e.Sp)
	}
	return &typed.SymbolRef{Symbol: e.Symbol, Ty: ty, Sp: e.Sp}
}

func (c *Checker) checkBinary(e *resolved.Binary) typed.Expr {
	left := c.checkExpr(e.Left)
	right := c.checkExpr(e.Right)

	switch {
	case e.Op.IsLogical():
		if !c.in.Compatible(c.b.Bool, left.Type()) {
			diag.Errorf(c.reporter, diag.TypeMismatch, left.Span(),
				"type mismatch: expected Bool, found %s", c.in.Format(left.Type()))
			return c.bad(e.Sp)
		}
		if !c.in.Compatible(c.b.Bool, right.Type()) {
			diag.Errorf(c.reporter, diag.TypeMismatch, right.Span(),
				"type mismatch: expected Bool, found %s", c.in.Format(right.Type()))
			return c.bad(e.Sp)
		}
		return &typed.Binary{Op: e.Op, Left: left, Right: right, Ty: c.b.Bool, Sp: e.Sp}

	case e.Op == ast.BinEq || e.Op == ast.BinNe:
		if !c.in.Compatible(left.Type(), right.Type()) {
			diag.Errorf(c.reporter, diag.TypeMismatch, e.Sp,
				"type mismatch: expected %s, found %s",
				c.in.Format(left.Type()), c.in.Format(right.Type()))
			return c.bad(e.Sp)
		}
		return &typed.Binary{Op: e.Op, Left: left, Right: right, Ty: c.b.Bool, Sp: e.Sp}

	case e.Op.IsComparison():
		// Relational ordering needs numeric operands on both sides.
		lk, rk := c.in.Kind(left.Type()), c.in.Kind(right.Type())
		if c.in.Suppressed(left.Type()) || c.in.Suppressed(right.Type()) {
			return &typed.Binary{Op: e.Op, Left: left, Right: right, Ty: c.b.Bool, Sp: e.Sp}
		}
		if !lk.IsNumeric() || !rk.IsNumeric() {
			diag.Errorf(c.reporter, diag.TypeInvalidOperation, e.Sp,
				"invalid operation: %s %s %s",
				c.in.Format(left.Type()), e.Op, c.in.Format(right.Type()))
			return c.bad(e.Sp)
		}
		return &typed.Binary{Op: e.Op, Left: left, Right: right, Ty: c.b.Bool, Sp: e.Sp}

	default:
		result, ok := c.in.ArithResult(e.Op, left.Type(), right.Type())
		if !ok {
			diag.Errorf(c.reporter, diag.TypeInvalidOperation, e.Sp,
				"invalid operation: %s %s %s",
				c.in.Format(left.Type()), e.Op, c.in.Format(right.Type()))
			return c.bad(e.Sp)
		}
		return &typed.Binary{Op: e.Op, Left: left, Right: right, Ty: result, Sp: e.Sp}
	}
}

func (c *Checker) checkUnary(e *resolved.Unary) typed.Expr {
	operand := c.checkExpr(e.Operand)

	switch e.Op {
	case ast.UnNeg:
		result, ok := c.in.NegResult(operand.Type())
		if !ok {
			diag.Errorf(c.reporter, diag.TypeInvalidOperation, e.Sp,
				"invalid operation: -%s", c.in.Format(operand.Type()))
			return c.bad(e.Sp)
		}
		return &typed.Unary{Op: e.Op, Operand: operand, Ty: result, Sp: e.Sp}
	case ast.UnNot:
		if !c.in.Compatible(c.b.Bool, operand.Type()) {
			diag.Errorf(c.reporter, diag.TypeMismatch, e.Sp,
				"type mismatch: expected Bool, found %s", c.in.Format(operand.Type()))
			return c.bad(e.Sp)
		}
		return &typed.Unary{Op: e.Op, Operand: operand, Ty: c.b.Bool, Sp: e.Sp}
	case ast.UnRef:
		result, ok := c.in.RefResult(operand.Type())
		if !ok {
			diag.Errorf(c.reporter, diag.TypeInvalidReference, e.Sp,
				"cannot take a reference to %s", c.in.Format(operand.Type()))
			return c.bad(e.Sp)
		}
		return &typed.Unary{Op: e.Op, Operand: operand, Ty: result, Sp: e.Sp}
	case ast.UnDeref:
		result, ok := c.in.DerefResult(operand.Type())
		if !ok {
			diag.Errorf(c.reporter, diag.TypeInvalidDereference, e.Sp,
				"cannot dereference %s", c.in.Format(operand.Type()))
			return c.bad(e.Sp)
		}
		return &typed.Unary{Op: e.Op, Operand: operand, Ty: result, Sp: e.Sp}
	default:
		return c.bad(e.Sp)
	}
}

// checkField resolves the field name against the Type Table; name
// resolution deliberately left it textual.
func (c *Checker) checkField(e *resolved.Field) typed.Expr {
	base := c.checkExpr(e.Base)
	if c.in.Suppressed(base.Type()) {
		return &typed.Field{Base: base, Name: e.Name, Ty: base.Type(), Sp: e.Sp}
	}
	t := c.in.MustLookup(base.Type())
	if t.Kind != types.KindStruct {
		diag.Errorf(c.reporter, diag.TypeFieldNotFound, e.Sp,
			"%s has no field %q", c.in.Format(base.Type()), e.Name)
		return c.bad(e.Sp)
	}
	info := c.in.StructInfo(t.Struct)
	field, ok := info.Field(e.Name)
	if !ok {
		diag.Errorf(c.reporter, diag.TypeFieldNotFound, e.Sp,
			"%s has no field %q", info.Name, e.Name)
		return c.bad(e.Sp)
	}
	return &typed.Field{Base: base, Name: e.Name, Ty: field.Type, Sp: e.Sp}
}

// checkCall validates arity and each positional argument; a bad argument
// does not stop the later ones.
func (c *Checker) checkCall(e *resolved.Call) typed.Expr {
	callee := c.checkExpr(e.Callee)
	args := make([]typed.Expr, 0, len(e.Args))
	for _, arg := range e.Args {
		args = append(args, c.checkExpr(arg))
	}

	if c.in.Suppressed(callee.Type()) {
		return &typed.Call{Callee: callee, Args: args, Ty: callee.Type(), Sp: e.Sp}
	}
	t := c.in.MustLookup(callee.Type())
	if t.Kind != types.KindFunction {
		diag.Errorf(c.reporter, diag.TypeNotCallable, e.Sp,
			"%s is not callable", c.in.Format(callee.Type()))
		return c.bad(e.Sp)
	}
	sig := c.in.FnInfo(t.Fn)

	if len(args) != len(sig.Params) {
		diag.Errorf(c.reporter, diag.TypeArgumentCountMismatch, e.Sp,
			"wrong argument count: expected %d, found %d", len(sig.Params), len(args))
	}
	for i, arg := range args {
		if i >= len(sig.Params) {
			break
		}
		if !c.in.Compatible(sig.Params[i], arg.Type()) {
			diag.Errorf(c.reporter, diag.TypeArgumentTypeMismatch, arg.Span(),
				"argument %d: expected %s, found %s",
				i+1, c.in.Format(sig.Params[i]), c.in.Format(arg.Type()))
		}
	}

	result := sig.Result
	if !result.IsValid() {
		result = c.b.Unknown
	}
	return &typed.Call{Callee: callee, Args: args, Ty: result, Sp: e.Sp}
}

func (c *Checker) checkIndex(e *resolved.Index) typed.Expr {
	base := c.checkExpr(e.Base)
	idx := c.checkExpr(e.Index)

	if !c.in.Compatible(c.b.I32, idx.Type()) {
		diag.Errorf(c.reporter, diag.TypeInvalidIndexType, idx.Span(),
			"array index must be I32, found %s", c.in.Format(idx.Type()))
	}
	if c.in.Suppressed(base.Type()) {
		return &typed.Index{Base: base, Index: idx, Ty: base.Type(), Sp: e.Sp}
	}
	t := c.in.MustLookup(base.Type())
	if t.Kind != types.KindArray {
		diag.Errorf(c.reporter, diag.TypeInvalidArrayIndex, e.Sp,
			"cannot index %s", c.in.Format(base.Type()))
		return c.bad(e.Sp)
	}
	return &typed.Index{Base: base, Index: idx, Ty: t.Elem, Sp: e.Sp}
}

// checkArrayLit requires mutually compatible elements; the first
// non-suppressed element type anchors the comparison.
func (c *Checker) checkArrayLit(e *resolved.ArrayLit) typed.Expr {
	elems := make([]typed.Expr, 0, len(e.Elems))
	elemTy := c.b.Unknown
	for _, el := range e.Elems {
		te := c.checkExpr(el)
		if !c.in.Compatible(elemTy, te.Type()) {
			diag.Errorf(c.reporter, diag.TypeMismatch, te.Span(),
				"type mismatch: expected %s, found %s",
				c.in.Format(elemTy), c.in.Format(te.Type()))
		} else if c.in.Kind(elemTy) == types.KindUnknown && !c.in.Suppressed(te.Type()) {
			elemTy = te.Type()
		}
		elems = append(elems, te)
	}
	n := uint32(len(elems))
	return &typed.ArrayLit{
		Elems: elems,
		Ty:    c.in.Intern(types.MakeArray(elemTy, n)),
		Sp:    e.Sp,
	}
}

// checkStructLit validates field names and types against the declared
// layout. Missing fields are fine; a sketch may leave parts of an entity
// unconstrained.
func (c *Checker) checkStructLit(e *resolved.StructLit) typed.Expr {
	structID, ok := c.structIDs[e.Struct]
	if !ok {
		return c.bad(e.Sp)
	}
	info := c.in.StructInfo(structID)

	out := &typed.StructLit{
		Struct: structID,
		Ty:     c.in.Intern(types.MakeStruct(structID)),
		Sp:     e.Sp,
	}
	for _, f := range e.Fields {
		value := c.checkExpr(f.Value)
		decl, found := info.Field(f.Name)
		if !found {
			diag.Errorf(c.reporter, diag.TypeFieldNotFound, f.Sp,
				"%s has no field %q", info.Name, f.Name)
		} else if !c.in.Compatible(decl.Type, value.Type()) {
			diag.Errorf(c.reporter, diag.TypeMismatch, f.Sp,
				"type mismatch: expected %s, found %s",
				c.in.Format(decl.Type), c.in.Format(value.Type()))
		}
		out.Fields = append(out.Fields, typed.StructLitField{Name: f.Name, Value: value})
	}
	return out
}

// checkRange requires I32-compatible endpoints; the range itself types as
// its element.
func (c *Checker) checkRange(e *resolved.Range) typed.Expr {
	lo := c.checkExpr(e.Lo)
	hi := c.checkExpr(e.Hi)
	for _, end := range []typed.Expr{lo, hi} {
		if !c.in.Compatible(c.b.I32, end.Type()) {
			diag.Errorf(c.reporter, diag.TypeMismatch, end.Span(),
				"type mismatch: expected I32, found %s", c.in.Format(end.Type()))
		}
	}
	return &typed.Range{Lo: lo, Hi: hi, Ty: c.b.I32, Sp: e.Sp}
}
