package typed

import (
	"tcad/internal/source"
	"tcad/internal/symbols"
)

// IR is one unit's fully typed output: the sketches plus the checked
// function and method bodies. Struct layouts live in the unit's type
// interner (the Type Table), not here.
type IR struct {
	FileID   source.FileID
	Structs  []Struct
	Sketches []Sketch
}

type Struct struct {
	Symbol  symbols.SymbolID
	Methods []Fn
	Sp      source.Span
}

type Fn struct {
	Symbol symbols.SymbolID
	Scope  symbols.ScopeID
	Body   []Stmt
	Sp     source.Span
}

type Sketch struct {
	Name  source.StringID
	Scope symbols.ScopeID
	Fns   []Fn
	Body  []Stmt
	Sp    source.Span
}
