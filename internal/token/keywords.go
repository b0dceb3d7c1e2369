package token

var keywords = map[string]Kind{
	"import": KwImport,
	"struct": KwStruct,
	"sketch": KwSketch,
	"fn":     KwFn,
	"let":    KwLet,
	"for":    KwFor,
	"in":     KwIn,
	"with":   KwWith,
	"return": KwReturn,
	"true":   KwTrue,
	"false":  KwFalse,
}

// LookupKeyword maps identifier text onto a keyword kind, or Ident.
func LookupKeyword(text string) Kind {
	if kind, ok := keywords[text]; ok {
		return kind
	}
	return Ident
}

// IsKeyword reports whether text is reserved.
func IsKeyword(text string) bool {
	_, ok := keywords[text]
	return ok
}
