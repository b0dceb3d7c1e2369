package symbols

import "tcad/internal/source"

// Hints sizes the table arenas up front for a known workload.
type Hints struct {
	Scopes  uint32
	Symbols uint32
}

// Table owns one unit's scope tree, symbol arena, and identifier interner.
// Tables are not shared across units; each file gets its own.
type Table struct {
	Interner *source.Interner
	scopes   *Scopes
	symbols  *Symbols
	global   ScopeID
}

func NewTable(hints Hints) *Table {
	t := &Table{
		Interner: source.NewInterner(),
		scopes:   NewScopes(hints.Scopes),
		symbols:  NewSymbols(hints.Symbols),
	}
	t.global = t.scopes.New(ScopeGlobal, NoScopeID, source.Span{})
	return t
}

// Global returns the root scope. It always exists.
func (t *Table) Global() ScopeID { return t.global }

// NewScope opens a child scope. Allocation always succeeds.
func (t *Table) NewScope(parent ScopeID, kind ScopeKind, span source.Span) ScopeID {
	return t.scopes.New(kind, parent, span)
}

// NewSymbol binds name in scope. It returns false and leaves the table
// unchanged when the name is already bound directly in that scope;
// shadowing an outer binding is fine.
func (t *Table) NewSymbol(name source.StringID, kind SymbolKind, span source.Span, scope ScopeID) (SymbolID, bool) {
	sc := t.scopes.Get(scope)
	if sc == nil {
		return NoSymbolID, false
	}
	if existing := sc.Lookup(name); existing.IsValid() {
		return existing, false
	}
	id := t.symbols.New(Symbol{
		Name:  name,
		Kind:  kind,
		Scope: scope,
		Span:  span,
	})
	sc.names[name] = id
	return id, true
}

// Lookup walks from scope to the root and returns the innermost binding,
// or NoSymbolID.
func (t *Table) Lookup(name source.StringID, scope ScopeID) SymbolID {
	for cur := scope; cur.IsValid(); {
		sc := t.scopes.Get(cur)
		if sc == nil {
			break
		}
		if id := sc.Lookup(name); id.IsValid() {
			return id
		}
		cur = sc.Parent
	}
	return NoSymbolID
}

// LookupLocal checks only the given scope, no parent walk.
func (t *Table) LookupLocal(name source.StringID, scope ScopeID) SymbolID {
	sc := t.scopes.Get(scope)
	if sc == nil {
		return NoSymbolID
	}
	return sc.Lookup(name)
}

// Symbol returns mutable access to a symbol for the declare-then-backfill
// protocol. The pointer is invalidated by the next NewSymbol call.
func (t *Table) Symbol(id SymbolID) *Symbol {
	return t.symbols.Get(id)
}

// Scope returns the scope or nil.
func (t *Table) Scope(id ScopeID) *Scope {
	return t.scopes.Get(id)
}

// Name returns the interned text of a symbol's name.
func (t *Table) Name(id SymbolID) string {
	sym := t.symbols.Get(id)
	if sym == nil {
		return ""
	}
	return t.Interner.MustLookup(sym.Name)
}

// Scopes reports the number of allocated scopes.
func (t *Table) Scopes() int { return t.scopes.Len() }

// Symbols reports the number of allocated symbols.
func (t *Table) Symbols() int { return t.symbols.Len() }
