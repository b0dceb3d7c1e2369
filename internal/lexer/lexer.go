package lexer

import (
	"tcad/internal/diag"
	"tcad/internal/source"
	"tcad/internal/token"
)

// Lexer scans one file into tokens, reporting lexical errors as diagnostics
// and continuing with the next byte.
type Lexer struct {
	file     *source.File
	cursor   Cursor
	reporter diag.Reporter
	look     *token.Token
}

func New(file *source.File, reporter diag.Reporter) *Lexer {
	return &Lexer{
		file:     file,
		cursor:   NewCursor(file),
		reporter: reporter,
	}
}

// Tokenize scans the whole file into a token slice ending with EOF.
func Tokenize(file *source.File, reporter diag.Reporter) []token.Token {
	lx := New(file, reporter)
	toks := make([]token.Token, 0, len(file.Content)/4+1)
	for {
		tok := lx.Next()
		toks = append(toks, tok)
		if tok.Kind == token.EOF {
			return toks
		}
	}
}

// Next returns the next significant token. After EOF it keeps returning EOF.
func (lx *Lexer) Next() token.Token {
	if lx.look != nil {
		tok := *lx.look
		lx.look = nil
		return tok
	}

	lx.skipTrivia()
	if lx.cursor.EOF() {
		return token.Token{Kind: token.EOF, Span: lx.hereSpan()}
	}

	ch := lx.cursor.Peek()
	switch {
	case isIdentStart(ch):
		return lx.scanIdentOrKeyword()
	case isDigit(ch):
		return lx.scanNumber()
	case ch == '"':
		return lx.scanString()
	default:
		return lx.scanOperator()
	}
}

// Peek returns the next token without consuming it.
func (lx *Lexer) Peek() token.Token {
	t := lx.Next()
	lx.look = &t
	return t
}

// skipTrivia consumes whitespace, line comments, and block comments.
func (lx *Lexer) skipTrivia() {
	for !lx.cursor.EOF() {
		switch ch := lx.cursor.Peek(); {
		case ch == ' ' || ch == '\t' || ch == '\n' || ch == '\r':
			lx.cursor.Bump()
		case ch == '/' && lx.cursor.PeekAt(1) == '/':
			for !lx.cursor.EOF() && lx.cursor.Peek() != '\n' {
				lx.cursor.Bump()
			}
		case ch == '/' && lx.cursor.PeekAt(1) == '*':
			start := lx.cursor.Off
			lx.cursor.Bump()
			lx.cursor.Bump()
			closed := false
			for !lx.cursor.EOF() {
				if lx.cursor.Peek() == '*' && lx.cursor.PeekAt(1) == '/' {
					lx.cursor.Bump()
					lx.cursor.Bump()
					closed = true
					break
				}
				lx.cursor.Bump()
			}
			if !closed {
				diag.Errorf(lx.reporter, diag.LexUnterminatedComment,
					lx.spanFrom(start), "unterminated block comment")
			}
		default:
			return
		}
	}
}

func (lx *Lexer) scanIdentOrKeyword() token.Token {
	start := lx.cursor.Off
	for !lx.cursor.EOF() && isIdentContinue(lx.cursor.Peek()) {
		lx.cursor.Bump()
	}
	text := lx.cursor.Slice(start, lx.cursor.Off)
	return token.Token{
		Kind: token.LookupKeyword(text),
		Span: lx.spanFrom(start),
		Text: text,
	}
}

func (lx *Lexer) scanString() token.Token {
	start := lx.cursor.Off
	lx.cursor.Bump() // opening quote
	for !lx.cursor.EOF() && lx.cursor.Peek() != '"' && lx.cursor.Peek() != '\n' {
		lx.cursor.Bump()
	}
	if lx.cursor.Peek() != '"' {
		span := lx.spanFrom(start)
		diag.Errorf(lx.reporter, diag.LexUnterminatedString, span, "unterminated string literal")
		return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.Slice(start, lx.cursor.Off)}
	}
	lx.cursor.Bump() // closing quote
	span := lx.spanFrom(start)
	return token.Token{
		Kind: token.StringLit,
		Span: span,
		// Text drops the quotes.
		Text: lx.cursor.Slice(start+1, lx.cursor.Off-1),
	}
}

func (lx *Lexer) scanOperator() token.Token {
	start := lx.cursor.Off
	ch := lx.cursor.Bump()

	two := func(next byte, kind, fallback token.Kind) token.Token {
		if lx.cursor.Peek() == next {
			lx.cursor.Bump()
			return lx.opToken(kind, start)
		}
		return lx.opToken(fallback, start)
	}

	switch ch {
	case '+':
		return lx.opToken(token.Plus, start)
	case '-':
		return two('>', token.Arrow, token.Minus)
	case '*':
		return lx.opToken(token.Star, start)
	case '/':
		return lx.opToken(token.Slash, start)
	case '%':
		return lx.opToken(token.Percent, start)
	case '^':
		return lx.opToken(token.Caret, start)
	case '!':
		return two('=', token.BangEq, token.Bang)
	case '&':
		return two('&', token.AndAnd, token.Amp)
	case '|':
		if lx.cursor.Peek() == '|' {
			lx.cursor.Bump()
			return lx.opToken(token.OrOr, start)
		}
	case '=':
		return two('=', token.EqEq, token.Assign)
	case '<':
		return two('=', token.LtEq, token.Lt)
	case '>':
		return two('=', token.GtEq, token.Gt)
	case '.':
		return two('.', token.DotDot, token.Dot)
	case ',':
		return lx.opToken(token.Comma, start)
	case ':':
		return lx.opToken(token.Colon, start)
	case ';':
		return lx.opToken(token.Semicolon, start)
	case '(':
		return lx.opToken(token.LParen, start)
	case ')':
		return lx.opToken(token.RParen, start)
	case '{':
		return lx.opToken(token.LBrace, start)
	case '}':
		return lx.opToken(token.RBrace, start)
	case '[':
		return lx.opToken(token.LBracket, start)
	case ']':
		return lx.opToken(token.RBracket, start)
	}

	span := lx.spanFrom(start)
	diag.Errorf(lx.reporter, diag.LexUnknownChar, span, "unknown character %q", string(rune(ch)))
	return token.Token{Kind: token.Invalid, Span: span, Text: lx.cursor.Slice(start, lx.cursor.Off)}
}

func (lx *Lexer) opToken(kind token.Kind, start uint32) token.Token {
	return token.Token{
		Kind: kind,
		Span: lx.spanFrom(start),
		Text: lx.cursor.Slice(start, lx.cursor.Off),
	}
}

func (lx *Lexer) hereSpan() source.Span {
	return source.Span{File: lx.file.ID, Start: lx.cursor.Off, End: lx.cursor.Off}
}

func (lx *Lexer) spanFrom(start uint32) source.Span {
	return source.Span{File: lx.file.ID, Start: start, End: lx.cursor.Off}
}

func isIdentStart(ch byte) bool {
	return ch == '_' || (ch >= 'a' && ch <= 'z') || (ch >= 'A' && ch <= 'Z')
}

func isIdentContinue(ch byte) bool {
	return isIdentStart(ch) || isDigit(ch)
}

func isDigit(ch byte) bool {
	return ch >= '0' && ch <= '9'
}
