// Package resolver binds every identifier occurrence in a parsed file to a
// symbol handle, producing the resolved tree the type checker consumes.
// Resolution is accumulate-and-continue: a failed statement or subtree is
// dropped, its siblings still resolve, and the pass always completes.
package resolver

import (
	"tcad/internal/ast"
	"tcad/internal/diag"
	"tcad/internal/resolved"
	"tcad/internal/symbols"
)

// builtinTypes are the type names that resolve without a symbol.
var builtinTypes = map[string]bool{
	"Point": true, "Length": true, "Angle": true, "Area": true,
	"Bool": true, "I32": true, "F64": true, "Real": true,
	"Algebraic": true, "View": true,
}

type Resolver struct {
	table    *symbols.Table
	reporter diag.Reporter
	scope    symbols.ScopeID
}

// Resolve runs both passes over one file: declaration registration, then
// reference binding. The table is mutably owned for the duration and should
// be treated as frozen afterwards.
func Resolve(file *ast.File, table *symbols.Table, reporter diag.Reporter) *resolved.Tree {
	r := &Resolver{table: table, reporter: reporter, scope: table.Global()}
	tree := &resolved.Tree{FileID: file.FileID}

	// Phase one: every struct name exists before any body is walked, so
	// fields and annotations can refer to structs declared later.
	structIDs := make([]symbols.SymbolID, len(file.Structs))
	for i := range file.Structs {
		st := &file.Structs[i]
		name := table.Interner.Intern(st.Name)
		id, ok := table.NewSymbol(name, symbols.SymStruct, st.NameSp, table.Global())
		if !ok {
			diag.Errorf(reporter, diag.NameDuplicateDefinition, st.NameSp,
				"duplicate definition of %q", st.Name)
			continue
		}
		structIDs[i] = id
	}

	// Phase two: struct bodies, then sketches in source order.
	for i := range file.Structs {
		if !structIDs[i].IsValid() {
			continue
		}
		if st, ok := r.resolveStruct(&file.Structs[i], structIDs[i]); ok {
			tree.Structs = append(tree.Structs, st)
		}
	}
	for i := range file.Sketches {
		tree.Sketches = append(tree.Sketches, r.resolveSketch(&file.Sketches[i]))
	}
	return tree
}

func (r *Resolver) resolveStruct(st *ast.StructDecl, id symbols.SymbolID) (resolved.Struct, bool) {
	scope := r.table.NewScope(r.table.Global(), symbols.ScopeStruct, st.Sp)
	prev := r.enter(scope)
	defer r.leave(prev)

	out := resolved.Struct{Symbol: id, Scope: scope, Sp: st.Sp}

	var fieldIDs []symbols.SymbolID
	for i := range st.Fields {
		f := &st.Fields[i]
		ref, ok := r.resolveTypeRef(&f.Type)
		if !ok {
			continue
		}
		name := r.table.Interner.Intern(f.Name)
		fid, ok := r.table.NewSymbol(name, symbols.SymField, f.Sp, scope)
		if !ok {
			diag.Errorf(r.reporter, diag.NameDuplicateDefinition, f.Sp,
				"duplicate field %q", f.Name)
			continue
		}
		r.table.Symbol(fid).Type = &ref
		fieldIDs = append(fieldIDs, fid)
	}

	var methodIDs []symbols.SymbolID
	for i := range st.Methods {
		fn, fnID, ok := r.resolveFn(&st.Methods[i])
		if !ok {
			continue
		}
		methodIDs = append(methodIDs, fnID)
		out.Methods = append(out.Methods, fn)
	}

	// Backfill the placeholder registered in phase one.
	sym := r.table.Symbol(id)
	sym.Fields = fieldIDs
	sym.Methods = methodIDs
	return out, true
}

func (r *Resolver) resolveSketch(sk *ast.SketchDecl) resolved.Sketch {
	scope := r.table.NewScope(r.table.Global(), symbols.ScopeSketch, sk.Sp)
	prev := r.enter(scope)
	defer r.leave(prev)

	out := resolved.Sketch{
		Name:  r.table.Interner.Intern(sk.Name),
		Scope: scope,
		Sp:    sk.Sp,
	}

	// Function names and signatures are registered before the statements so
	// statements may call forward; bodies wait until after the statements so
	// they can read sketch-level bindings.
	var pending []pendingFn
	for i := range sk.Fns {
		if p, ok := r.declareFn(&sk.Fns[i]); ok {
			pending = append(pending, p)
		}
	}
	for _, stmt := range sk.Body {
		if s, ok := r.resolveStmt(stmt); ok {
			out.Body = append(out.Body, s)
		}
	}
	for _, p := range pending {
		out.Fns = append(out.Fns, r.resolveFnBody(p))
	}
	return out
}

// pendingFn is a declared function whose body has not been walked yet.
type pendingFn struct {
	decl  *ast.FnDecl
	id    symbols.SymbolID
	scope symbols.ScopeID
}

// declareFn registers the function name in the enclosing scope, opens the
// body scope, declares the parameters, and backfills the signature so
// recursive and forward calls see it before any body is walked.
func (r *Resolver) declareFn(fn *ast.FnDecl) (pendingFn, bool) {
	var ret *symbols.TypeRef
	if fn.Return != nil {
		ref, ok := r.resolveTypeRef(fn.Return)
		if !ok {
			return pendingFn{}, false
		}
		ret = &ref
	}

	name := r.table.Interner.Intern(fn.Name)
	id, ok := r.table.NewSymbol(name, symbols.SymFunction, fn.NameSp, r.scope)
	if !ok {
		diag.Errorf(r.reporter, diag.NameDuplicateDefinition, fn.NameSp,
			"duplicate definition of %q", fn.Name)
		return pendingFn{}, false
	}

	scope := r.table.NewScope(r.scope, symbols.ScopeFunction, fn.Sp)
	prev := r.enter(scope)
	defer r.leave(prev)

	var params []symbols.SymbolID
	for i := range fn.Params {
		p := &fn.Params[i]
		ref, ok := r.resolveTypeRef(&p.Type)
		if !ok {
			continue
		}
		pname := r.table.Interner.Intern(p.Name)
		pid, ok := r.table.NewSymbol(pname, symbols.SymParameter, p.Sp, scope)
		if !ok {
			diag.Errorf(r.reporter, diag.NameDuplicateDefinition, p.Sp,
				"duplicate parameter %q", p.Name)
			continue
		}
		r.table.Symbol(pid).Type = &ref
		params = append(params, pid)
	}

	sym := r.table.Symbol(id)
	sym.Params = params
	sym.Return = ret
	return pendingFn{decl: fn, id: id, scope: scope}, true
}

func (r *Resolver) resolveFnBody(p pendingFn) resolved.Fn {
	prev := r.enter(p.scope)
	defer r.leave(prev)

	out := resolved.Fn{Symbol: p.id, Scope: p.scope, Sp: p.decl.Sp}
	for _, stmt := range p.decl.Body {
		if s, ok := r.resolveStmt(stmt); ok {
			out.Body = append(out.Body, s)
		}
	}
	return out
}

func (r *Resolver) resolveFn(fn *ast.FnDecl) (resolved.Fn, symbols.SymbolID, bool) {
	p, ok := r.declareFn(fn)
	if !ok {
		return resolved.Fn{}, symbols.NoSymbolID, false
	}
	return r.resolveFnBody(p), p.id, true
}

// resolveTypeRef binds a syntactic annotation. Builtins carry no symbol;
// anything else must name a struct.
func (r *Resolver) resolveTypeRef(t *ast.TypeRef) (symbols.TypeRef, bool) {
	name := r.table.Interner.Intern(t.Name)
	ref := symbols.TypeRef{
		Name:      name,
		Reference: t.Reference,
		Array:     t.Array,
		ArrayLen:  t.ArrayLen,
		Span:      t.Sp,
	}
	// A struct declaration shadows a builtin of the same name, so the
	// annotation and the literal always agree on which type is meant.
	id := r.table.Lookup(name, r.scope)
	if id.IsValid() && r.table.Symbol(id).Kind == symbols.SymStruct {
		ref.Symbol = id
		return ref, true
	}
	if builtinTypes[t.Name] {
		return ref, true
	}
	diag.Errorf(r.reporter, diag.NameUnresolvedType, t.Sp,
		"unresolved type %q", t.Name)
	return symbols.TypeRef{}, false
}

func (r *Resolver) enter(scope symbols.ScopeID) symbols.ScopeID {
	prev := r.scope
	r.scope = scope
	return prev
}

func (r *Resolver) leave(prev symbols.ScopeID) {
	r.scope = prev
}
