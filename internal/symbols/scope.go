package symbols

import "tcad/internal/source"

// ScopeKind distinguishes what construct opened a scope.
type ScopeKind uint8

const (
	ScopeGlobal ScopeKind = iota
	ScopeSketch
	ScopeStruct
	ScopeFunction
	ScopeBlock
)

var scopeKindNames = [...]string{
	ScopeGlobal:   "global",
	ScopeSketch:   "sketch",
	ScopeStruct:   "struct",
	ScopeFunction: "function",
	ScopeBlock:    "block",
}

func (k ScopeKind) String() string {
	if int(k) < len(scopeKindNames) {
		return scopeKindNames[k]
	}
	return "unknown"
}

// Scope is a node in the scope tree. Scopes are never removed; exiting a
// scope during resolution just moves the cursor back to Parent.
type Scope struct {
	Kind     ScopeKind
	Parent   ScopeID
	Span     source.Span
	Children []ScopeID

	// names maps each identifier to the symbol bound directly here.
	// Shadowing lives in the tree structure, not in this map.
	names map[source.StringID]SymbolID
}

// Lookup finds a binding in this scope only.
func (s *Scope) Lookup(name source.StringID) SymbolID {
	if id, ok := s.names[name]; ok {
		return id
	}
	return NoSymbolID
}

// Bindings returns the number of names bound directly in this scope.
func (s *Scope) Bindings() int { return len(s.names) }
