package lexer

import (
	"tcad/internal/diag"
	"tcad/internal/token"
)

// Unit suffixes attach directly to a number: 10mm, 2.5cm, 1m, 45deg, 1.5rad.
var lengthUnits = map[string]bool{"mm": true, "cm": true, "m": true}
var angleUnits = map[string]bool{"deg": true, "rad": true}

func (lx *Lexer) scanNumber() token.Token {
	start := lx.cursor.Off
	for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}

	isFloat := false
	// A dot forms a float only when followed by a digit; `0..n` is a range.
	if lx.cursor.Peek() == '.' && isDigit(lx.cursor.PeekAt(1)) {
		isFloat = true
		lx.cursor.Bump()
		for !lx.cursor.EOF() && isDigit(lx.cursor.Peek()) {
			lx.cursor.Bump()
		}
	}

	suffixStart := lx.cursor.Off
	for !lx.cursor.EOF() && isIdentStart(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	suffix := lx.cursor.Slice(suffixStart, lx.cursor.Off)
	span := lx.spanFrom(start)
	text := lx.cursor.Slice(start, lx.cursor.Off)

	switch {
	case suffix == "":
		kind := token.IntLit
		if isFloat {
			kind = token.FloatLit
		}
		return token.Token{Kind: kind, Span: span, Text: text}
	case lengthUnits[suffix]:
		return token.Token{Kind: token.LengthLit, Span: span, Text: text}
	case angleUnits[suffix]:
		return token.Token{Kind: token.AngleLit, Span: span, Text: text}
	default:
		diag.Errorf(lx.reporter, diag.LexUnknownUnit, span,
			"unknown unit suffix %q on numeric literal", suffix)
		return token.Token{Kind: token.Invalid, Span: span, Text: text}
	}
}

// SplitUnit separates the numeric part of a unit literal from its suffix.
// The lexer guarantees the suffix is one of the known units.
func SplitUnit(text string) (number, unit string) {
	i := len(text)
	for i > 0 {
		ch := text[i-1]
		if ch >= '0' && ch <= '9' || ch == '.' {
			break
		}
		i--
	}
	return text[:i], text[i:]
}
