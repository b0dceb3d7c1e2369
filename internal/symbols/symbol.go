package symbols

import "tcad/internal/source"

// SymbolKind distinguishes what a name denotes.
type SymbolKind uint8

const (
	SymVariable SymbolKind = iota
	SymParameter
	SymField
	SymFunction
	SymStruct
)

var symbolKindNames = [...]string{
	SymVariable:  "variable",
	SymParameter: "parameter",
	SymField:     "field",
	SymFunction:  "function",
	SymStruct:    "struct",
}

func (k SymbolKind) String() string {
	if int(k) < len(symbolKindNames) {
		return symbolKindNames[k]
	}
	return "unknown"
}

// TypeRef is a resolved type annotation. Symbol points at the struct symbol
// for user types and stays NoSymbolID for builtins.
type TypeRef struct {
	Name      source.StringID
	Symbol    SymbolID
	Reference bool
	Array     bool
	ArrayLen  uint32
	Span      source.Span
}

// Symbol is one declared name. Kind decides which optional fields are
// meaningful: Type for variables/parameters/fields, Params and Return for
// functions, Fields and Methods for structs. Struct and function symbols
// are registered as placeholders first and patched after their bodies are
// walked.
type Symbol struct {
	Name    source.StringID
	Kind    SymbolKind
	Scope   ScopeID
	Span    source.Span
	Mutable bool

	Type    *TypeRef
	Params  []SymbolID
	Return  *TypeRef
	Fields  []SymbolID
	Methods []SymbolID
}
