package sema

import (
	"tcad/internal/diag"
	"tcad/internal/resolved"
	"tcad/internal/typed"
	"tcad/internal/types"
)

// checkStmt returns nil when the statement is rejected outright; everything
// else survives, possibly with Error-typed placeholders inside.
func (c *Checker) checkStmt(stmt resolved.Stmt) typed.Stmt {
	switch s := stmt.(type) {
	case *resolved.Let:
		return c.checkLet(s)
	case *resolved.Assign:
		target := c.checkExpr(s.Target)
		value := c.checkExpr(s.Value)
		if !c.in.Compatible(target.Type(), value.Type()) {
			diag.Errorf(c.reporter, diag.TypeMismatch, s.Sp,
				"type mismatch: expected %s, found %s",
				c.in.Format(target.Type()), c.in.Format(value.Type()))
		}
		return &typed.Constraint{
			Kind:   typed.ConstraintEquality,
			Target: target,
			Value:  value,
			Sp:     s.Sp,
		}
	case *resolved.For:
		return c.checkFor(s)
	case *resolved.With:
		return c.checkWith(s)
	case *resolved.Return:
		return c.checkReturn(s)
	case *resolved.ExprStmt:
		return &typed.ExprStmt{X: c.checkExpr(s.X), Sp: s.Sp}
	default:
		return nil
	}
}

// checkLet implements the three let forms: declared and initialized,
// inferred, and bare (Unknown). The binding's final type feeds varTypes so
// later uses see it.
func (c *Checker) checkLet(s *resolved.Let) typed.Stmt {
	var declared, final types.TypeID
	hasDecl := s.Type != nil
	if hasDecl {
		declared = c.typeFromRef(s.Type)
	}

	var init typed.Expr
	if s.Init != nil {
		init = c.checkExpr(s.Init)
	}

	switch {
	case hasDecl && init != nil:
		if !c.in.Compatible(declared, init.Type()) {
			diag.Errorf(c.reporter, diag.TypeMismatch, s.Sp,
				"type mismatch: expected %s, found %s",
				c.in.Format(declared), c.in.Format(init.Type()))
		}
		final = declared
	case hasDecl:
		final = declared
	case init != nil:
		final = init.Type()
	default:
		final = c.b.Unknown
	}

	c.varTypes[s.Symbol] = final
	return &typed.Let{Symbol: s.Symbol, Ty: final, Init: init, Sp: s.Sp}
}

// checkFor fixes the loop variable to I32 and requires an integer range.
func (c *Checker) checkFor(s *resolved.For) typed.Stmt {
	rng := c.checkExpr(s.Range)
	if !c.in.Compatible(c.b.I32, rng.Type()) {
		diag.Errorf(c.reporter, diag.TypeMismatch, rng.Span(),
			"type mismatch: expected integer range, found %s", c.in.Format(rng.Type()))
	}
	c.varTypes[s.Var] = c.b.I32

	out := &typed.For{Var: s.Var, Range: rng, Scope: s.Scope, Sp: s.Sp}
	for _, stmt := range s.Body {
		if st := c.checkStmt(stmt); st != nil {
			out.Body = append(out.Body, st)
		}
	}
	return out
}

// checkWith rejects the whole statement when the view expression is not a
// View: the body's meaning depends on the view context, so there is no
// partial recovery here. Suppressed view types keep the statement.
func (c *Checker) checkWith(s *resolved.With) typed.Stmt {
	view := c.checkExpr(s.View)
	if !c.in.Compatible(c.b.View, view.Type()) {
		diag.Errorf(c.reporter, diag.TypeMismatch, view.Span(),
			"type mismatch: expected View, found %s", c.in.Format(view.Type()))
		return nil
	}

	out := &typed.With{View: view, Scope: s.Scope, Sp: s.Sp}
	for _, stmt := range s.Body {
		if st := c.checkStmt(stmt); st != nil {
			out.Body = append(out.Body, st)
		}
	}
	return out
}

func (c *Checker) checkReturn(s *resolved.Return) typed.Stmt {
	if s.Value == nil {
		if !c.in.Suppressed(c.fnReturn) {
			diag.Errorf(c.reporter, diag.TypeMismatch, s.Sp,
				"type mismatch: expected %s, found no return value",
				c.in.Format(c.fnReturn))
		}
		return &typed.Return{Sp: s.Sp}
	}
	value := c.checkExpr(s.Value)
	if !c.in.Compatible(c.fnReturn, value.Type()) {
		diag.Errorf(c.reporter, diag.TypeMismatch, value.Span(),
			"type mismatch: expected %s, found %s",
			c.in.Format(c.fnReturn), c.in.Format(value.Type()))
	}
	return &typed.Return{Value: value, Sp: s.Sp}
}
