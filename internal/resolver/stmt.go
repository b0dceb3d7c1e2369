package resolver

import (
	"tcad/internal/ast"
	"tcad/internal/diag"
	"tcad/internal/resolved"
	"tcad/internal/symbols"
)

func (r *Resolver) resolveStmt(stmt ast.Stmt) (resolved.Stmt, bool) {
	switch s := stmt.(type) {
	case *ast.BadStmt:
		// Already reported by the parser.
		return nil, false
	case *ast.Let:
		return r.resolveLet(s)
	case *ast.Assign:
		target, ok := r.resolveExpr(s.Target)
		if !ok {
			// Still walk the value so its errors surface.
			r.resolveExpr(s.Value)
			return nil, false
		}
		value, ok := r.resolveExpr(s.Value)
		if !ok {
			return nil, false
		}
		return &resolved.Assign{Target: target, Value: value, Sp: s.Sp}, true
	case *ast.For:
		return r.resolveFor(s)
	case *ast.With:
		return r.resolveWith(s)
	case *ast.Return:
		out := &resolved.Return{Sp: s.Sp}
		if s.Value != nil {
			value, ok := r.resolveExpr(s.Value)
			if !ok {
				return nil, false
			}
			out.Value = value
		}
		return out, true
	case *ast.ExprStmt:
		x, ok := r.resolveExpr(s.X)
		if !ok {
			return nil, false
		}
		return &resolved.ExprStmt{X: x, Sp: s.Sp}, true
	default:
		return nil, false
	}
}

// resolveLet resolves the annotation and initializer in the current scope
// first, then binds the name, so `let x = x` refers to an outer x.
func (r *Resolver) resolveLet(s *ast.Let) (resolved.Stmt, bool) {
	var typ *symbols.TypeRef
	if s.Type != nil {
		ref, ok := r.resolveTypeRef(s.Type)
		if !ok {
			return nil, false
		}
		typ = &ref
	}
	var init resolved.Expr
	if s.Init != nil {
		e, ok := r.resolveExpr(s.Init)
		if !ok {
			return nil, false
		}
		init = e
	}

	name := r.table.Interner.Intern(s.Name)
	id, ok := r.table.NewSymbol(name, symbols.SymVariable, s.Sp, r.scope)
	if !ok {
		diag.Errorf(r.reporter, diag.NameDuplicateDefinition, s.Sp,
			"duplicate definition of %q", s.Name)
		return nil, false
	}
	sym := r.table.Symbol(id)
	sym.Type = typ
	sym.Mutable = true
	return &resolved.Let{Symbol: id, Type: typ, Init: init, Sp: s.Sp}, true
}

// resolveFor checks the range in the enclosing scope, then opens the block
// scope that holds the immutable loop variable.
func (r *Resolver) resolveFor(s *ast.For) (resolved.Stmt, bool) {
	rng, ok := r.resolveExpr(s.Range)
	if !ok {
		return nil, false
	}

	scope := r.table.NewScope(r.scope, symbols.ScopeBlock, s.Sp)
	prev := r.enter(scope)
	defer r.leave(prev)

	name := r.table.Interner.Intern(s.Var)
	id, ok := r.table.NewSymbol(name, symbols.SymVariable, s.VarSp, scope)
	if !ok {
		diag.Errorf(r.reporter, diag.NameDuplicateDefinition, s.VarSp,
			"duplicate definition of %q", s.Var)
		return nil, false
	}

	out := &resolved.For{Var: id, Range: rng, Scope: scope, Sp: s.Sp}
	for _, stmt := range s.Body {
		if st, ok := r.resolveStmt(stmt); ok {
			out.Body = append(out.Body, st)
		}
	}
	return out, true
}

// resolveWith checks the view expression in the enclosing scope, then opens
// an empty block scope for the body.
func (r *Resolver) resolveWith(s *ast.With) (resolved.Stmt, bool) {
	view, ok := r.resolveExpr(s.View)
	if !ok {
		return nil, false
	}

	scope := r.table.NewScope(r.scope, symbols.ScopeBlock, s.Sp)
	prev := r.enter(scope)
	defer r.leave(prev)

	out := &resolved.With{View: view, Scope: scope, Sp: s.Sp}
	for _, stmt := range s.Body {
		if st, ok := r.resolveStmt(stmt); ok {
			out.Body = append(out.Body, st)
		}
	}
	return out, true
}
