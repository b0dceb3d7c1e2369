package parser

import (
	"tcad/internal/ast"
	"tcad/internal/diag"
	"tcad/internal/lexer"
	"tcad/internal/source"
	"tcad/internal/token"
)

// Parser consumes one file's token stream and produces an unresolved tree.
// Parse errors are reported and recovery resynchronizes at statement
// boundaries, so a single pass always yields a File.
type Parser struct {
	file     *source.File
	toks     []token.Token
	pos      int
	reporter diag.Reporter

	// noStructLit is set while parsing a with/for header expression, where
	// `Name { ... }` must read as the statement's block, not a literal.
	noStructLit bool
}

func New(file *source.File, toks []token.Token, reporter diag.Reporter) *Parser {
	return &Parser{file: file, toks: toks, reporter: reporter}
}

// ParseFile lexes and parses one file.
func ParseFile(file *source.File, reporter diag.Reporter) *ast.File {
	toks := lexer.Tokenize(file, reporter)
	return New(file, toks, reporter).File()
}

func (p *Parser) cur() token.Token {
	return p.toks[p.pos]
}

func (p *Parser) peekAt(n int) token.Token {
	if p.pos+n >= len(p.toks) {
		return p.toks[len(p.toks)-1] // EOF
	}
	return p.toks[p.pos+n]
}

func (p *Parser) at(kind token.Kind) bool {
	return p.cur().Kind == kind
}

func (p *Parser) advance() token.Token {
	tok := p.cur()
	if tok.Kind != token.EOF {
		p.pos++
	}
	return tok
}

func (p *Parser) eat(kind token.Kind) bool {
	if p.at(kind) {
		p.advance()
		return true
	}
	return false
}

// expect consumes a token of the given kind or reports and stays put.
func (p *Parser) expect(kind token.Kind, code diag.Code) (token.Token, bool) {
	if p.at(kind) {
		return p.advance(), true
	}
	diag.Errorf(p.reporter, code, p.cur().Span,
		"expected %s, found %s", kind, p.cur().Kind)
	return p.cur(), false
}

func (p *Parser) expectSemicolon() {
	if !p.eat(token.Semicolon) {
		diag.Errorf(p.reporter, diag.SynExpectSemicolon, p.cur().Span,
			"expected ';', found %s", p.cur().Kind)
		p.syncStmt()
	}
}

// syncStmt skips forward to just past the next ';' or to a '}' / EOF, the
// standard statement-level recovery point.
func (p *Parser) syncStmt() {
	for {
		switch p.cur().Kind {
		case token.Semicolon:
			p.advance()
			return
		case token.RBrace, token.EOF:
			return
		}
		p.advance()
	}
}

// syncDecl skips to the next top-level declaration keyword or EOF.
func (p *Parser) syncDecl() {
	for {
		switch p.cur().Kind {
		case token.KwImport, token.KwStruct, token.KwSketch, token.EOF:
			return
		}
		p.advance()
	}
}

func (p *Parser) spanFrom(start source.Span) source.Span {
	end := start
	if p.pos > 0 {
		end = p.toks[p.pos-1].Span
	}
	return start.Cover(end)
}
