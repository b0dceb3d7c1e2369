package resolved

import (
	"tcad/internal/source"
	"tcad/internal/symbols"
)

// Tree is one unit's fully resolved output, handed to the type checker
// together with the frozen symbol table.
type Tree struct {
	FileID   source.FileID
	Structs  []Struct
	Sketches []Sketch
}

// Struct carries the struct symbol (fields already backfilled on it) plus
// the resolved method bodies.
type Struct struct {
	Symbol  symbols.SymbolID
	Scope   symbols.ScopeID
	Methods []Fn
	Sp      source.Span
}

// Fn is a resolved function or method body. Signature lives on the symbol.
type Fn struct {
	Symbol symbols.SymbolID
	Scope  symbols.ScopeID
	Body   []Stmt
	Sp     source.Span
}

// Sketch is one resolved sketch: its scope handle, local functions, and
// statement list in source order.
type Sketch struct {
	Name  source.StringID
	Scope symbols.ScopeID
	Fns   []Fn
	Body  []Stmt
	Sp    source.Span
}
