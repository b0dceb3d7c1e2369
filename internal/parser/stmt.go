package parser

import (
	"tcad/internal/ast"
	"tcad/internal/diag"
	"tcad/internal/token"
)

func (p *Parser) parseStmt() ast.Stmt {
	switch p.cur().Kind {
	case token.KwLet:
		return p.parseLet()
	case token.KwFor:
		return p.parseFor()
	case token.KwWith:
		return p.parseWith()
	case token.KwReturn:
		return p.parseReturn()
	default:
		return p.parseExprOrAssign()
	}
}

// parseLet parses `let name[: Type] [= expr];`. Annotation and initializer
// are both optional; a bare let is a legal unknown-typed binding.
func (p *Parser) parseLet() ast.Stmt {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncStmt()
		return &ast.BadStmt{Sp: p.spanFrom(kw.Span)}
	}
	var typ *ast.TypeRef
	if p.eat(token.Colon) {
		t, ok := p.parseTypeRef()
		if !ok {
			p.syncStmt()
			return &ast.BadStmt{Sp: p.spanFrom(kw.Span)}
		}
		typ = &t
	}
	var init ast.Expr
	if p.eat(token.Assign) {
		init = p.parseExpr()
	}
	p.expectSemicolon()
	return &ast.Let{Name: name.Text, Type: typ, Init: init, Sp: p.spanFrom(kw.Span)}
}

func (p *Parser) parseFor() ast.Stmt {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncStmt()
		return &ast.BadStmt{Sp: p.spanFrom(kw.Span)}
	}
	if _, ok := p.expect(token.KwIn, diag.SynUnexpectedToken); !ok {
		p.syncStmt()
		return &ast.BadStmt{Sp: p.spanFrom(kw.Span)}
	}
	rng := p.parseHeaderExpr()
	body, ok := p.parseBlock()
	if !ok {
		return &ast.BadStmt{Sp: p.spanFrom(kw.Span)}
	}
	return &ast.For{
		Var:   name.Text,
		VarSp: name.Span,
		Range: rng,
		Body:  body,
		Sp:    p.spanFrom(kw.Span),
	}
}

func (p *Parser) parseWith() ast.Stmt {
	kw := p.advance()
	view := p.parseHeaderExpr()
	body, ok := p.parseBlock()
	if !ok {
		return &ast.BadStmt{Sp: p.spanFrom(kw.Span)}
	}
	return &ast.With{View: view, Body: body, Sp: p.spanFrom(kw.Span)}
}

func (p *Parser) parseReturn() ast.Stmt {
	kw := p.advance()
	var value ast.Expr
	if !p.at(token.Semicolon) && !p.at(token.RBrace) {
		value = p.parseExpr()
	}
	p.expectSemicolon()
	return &ast.Return{Value: value, Sp: p.spanFrom(kw.Span)}
}

// parseHeaderExpr parses the expression between a with/for keyword and its
// block. Struct literals are off here so `Name {` opens the block; they come
// back inside any parenthesized or bracketed subexpression.
func (p *Parser) parseHeaderExpr() ast.Expr {
	p.noStructLit = true
	expr := p.parseExpr()
	p.noStructLit = false
	return expr
}

// parseExprOrAssign parses `target = expr;` or a bare expression statement.
func (p *Parser) parseExprOrAssign() ast.Stmt {
	start := p.cur().Span
	expr := p.parseExpr()
	if p.eat(token.Assign) {
		value := p.parseExpr()
		p.expectSemicolon()
		return &ast.Assign{Target: expr, Value: value, Sp: p.spanFrom(start)}
	}
	p.expectSemicolon()
	if _, bad := expr.(*ast.BadExpr); bad {
		return &ast.BadStmt{Sp: p.spanFrom(start)}
	}
	return &ast.ExprStmt{X: expr, Sp: p.spanFrom(start)}
}

// parseBlock parses `{ stmt* }`.
func (p *Parser) parseBlock() ([]ast.Stmt, bool) {
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken); !ok {
		p.syncStmt()
		return nil, false
	}
	var stmts []ast.Stmt
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		stmts = append(stmts, p.parseStmt())
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelim); !ok {
		return stmts, false
	}
	return stmts, true
}
