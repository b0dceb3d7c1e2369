package resolver

import (
	"tcad/internal/ast"
	"tcad/internal/diag"
	"tcad/internal/resolved"
	"tcad/internal/symbols"
)

func (r *Resolver) resolveExpr(expr ast.Expr) (resolved.Expr, bool) {
	switch e := expr.(type) {
	case *ast.BadExpr:
		return nil, false
	case *ast.Lit:
		return &resolved.Lit{Value: e.Value, Sp: e.Sp}, true
	case *ast.Paren:
		// Grouping has no semantic weight past parsing.
		return r.resolveExpr(e.Inner)
	case *ast.Ident:
		id := r.table.Lookup(r.table.Interner.Intern(e.Name), r.scope)
		if !id.IsValid() {
			diag.Errorf(r.reporter, diag.NameUndefinedSymbol, e.Sp,
				"undefined symbol %q", e.Name)
			return nil, false
		}
		return &resolved.SymbolRef{Symbol: id, Sp: e.Sp}, true
	case *ast.Binary:
		left, lok := r.resolveExpr(e.Left)
		right, rok := r.resolveExpr(e.Right)
		if !lok || !rok {
			return nil, false
		}
		return &resolved.Binary{Op: e.Op, Left: left, Right: right, Sp: e.Sp}, true
	case *ast.Unary:
		return r.resolveUnary(e)
	case *ast.Field:
		// Only the base resolves here; the field name waits for the
		// Type Table.
		base, ok := r.resolveExpr(e.Base)
		if !ok {
			return nil, false
		}
		return &resolved.Field{Base: base, Name: e.Name, Sp: e.Sp}, true
	case *ast.Call:
		return r.resolveCall(e)
	case *ast.Index:
		base, bok := r.resolveExpr(e.Base)
		idx, iok := r.resolveExpr(e.Index)
		if !bok || !iok {
			return nil, false
		}
		return &resolved.Index{Base: base, Index: idx, Sp: e.Sp}, true
	case *ast.ArrayLit:
		out := &resolved.ArrayLit{Sp: e.Sp}
		ok := true
		for _, elem := range e.Elems {
			re, eok := r.resolveExpr(elem)
			if !eok {
				ok = false
				continue
			}
			out.Elems = append(out.Elems, re)
		}
		return out, ok
	case *ast.StructLit:
		return r.resolveStructLit(e)
	case *ast.Range:
		lo, lok := r.resolveExpr(e.Lo)
		hi, hok := r.resolveExpr(e.Hi)
		if !lok || !hok {
			return nil, false
		}
		return &resolved.Range{Lo: lo, Hi: hi, Sp: e.Sp}, true
	default:
		return nil, false
	}
}

// resolveUnary rejects `&` over non-addressable operands; a reference must
// name a place, not a temporary.
func (r *Resolver) resolveUnary(e *ast.Unary) (resolved.Expr, bool) {
	if e.Op == ast.UnRef && !addressable(e.Operand) {
		diag.Errorf(r.reporter, diag.NameInvalidReference, e.Sp,
			"cannot take a reference to this expression")
		r.resolveExpr(e.Operand)
		return nil, false
	}
	operand, ok := r.resolveExpr(e.Operand)
	if !ok {
		return nil, false
	}
	return &resolved.Unary{Op: e.Op, Operand: operand, Sp: e.Sp}, true
}

func addressable(e ast.Expr) bool {
	switch x := e.(type) {
	case *ast.Ident, *ast.Field, *ast.Index:
		return true
	case *ast.Paren:
		return addressable(x.Inner)
	default:
		return false
	}
}

// resolveCall reports an unknown plain-identifier callee as an undefined
// function rather than a generic undefined symbol. Arguments resolve
// regardless so their own errors surface.
func (r *Resolver) resolveCall(e *ast.Call) (resolved.Expr, bool) {
	var callee resolved.Expr
	ok := true
	if ident, isIdent := e.Callee.(*ast.Ident); isIdent {
		id := r.table.Lookup(r.table.Interner.Intern(ident.Name), r.scope)
		if !id.IsValid() {
			diag.Errorf(r.reporter, diag.NameUndefinedFunction, ident.Sp,
				"undefined function %q", ident.Name)
			ok = false
		} else {
			callee = &resolved.SymbolRef{Symbol: id, Sp: ident.Sp}
		}
	} else {
		callee, ok = r.resolveExpr(e.Callee)
	}

	out := &resolved.Call{Callee: callee, Sp: e.Sp}
	for _, arg := range e.Args {
		ra, aok := r.resolveExpr(arg)
		if !aok {
			ok = false
			continue
		}
		out.Args = append(out.Args, ra)
	}
	if !ok {
		return nil, false
	}
	return out, true
}

func (r *Resolver) resolveStructLit(e *ast.StructLit) (resolved.Expr, bool) {
	id := r.table.Lookup(r.table.Interner.Intern(e.Name), r.scope)
	ok := true
	if !id.IsValid() || r.table.Symbol(id).Kind != symbols.SymStruct {
		diag.Errorf(r.reporter, diag.NameUnresolvedType, e.Sp,
			"unresolved type %q in struct literal", e.Name)
		ok = false
	}
	out := &resolved.StructLit{Struct: id, Sp: e.Sp}
	for _, f := range e.Fields {
		value, fok := r.resolveExpr(f.Value)
		if !fok {
			ok = false
			continue
		}
		out.Fields = append(out.Fields, resolved.StructLitField{
			Name:  f.Name,
			Value: value,
			Sp:    f.Sp,
		})
	}
	if !ok {
		return nil, false
	}
	return out, true
}
