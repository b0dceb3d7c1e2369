package token

import (
	"tcad/internal/source"
)

// Token is a single source token with its location and raw text.
type Token struct {
	Kind Kind
	Span source.Span
	Text string
}

// IsLiteral reports whether the token is a literal of any flavor.
func (t Token) IsLiteral() bool {
	switch t.Kind {
	case IntLit, FloatLit, LengthLit, AngleLit, StringLit, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsKeyword reports whether the token is a language keyword.
func (t Token) IsKeyword() bool {
	switch t.Kind {
	case KwImport, KwStruct, KwSketch, KwFn, KwLet, KwFor, KwIn, KwWith,
		KwReturn, KwTrue, KwFalse:
		return true
	default:
		return false
	}
}

// IsIdent reports whether the token is an identifier.
func (t Token) IsIdent() bool { return t.Kind == Ident }
