package parser

import (
	"strconv"

	"tcad/internal/ast"
	"tcad/internal/diag"
	"tcad/internal/lexer"
	"tcad/internal/token"
)

// parseExpr is the expression entry point. A `..` after the first operand
// turns the whole expression into a half-open range.
func (p *Parser) parseExpr() ast.Expr {
	lo := p.parseBinary(0)
	if !p.at(token.DotDot) {
		return lo
	}
	p.advance()
	hi := p.parseBinary(0)
	return &ast.Range{Lo: lo, Hi: hi, Sp: lo.Span().Cover(hi.Span())}
}

// parseBinary climbs precedence levels. minPrec is the loosest level the
// caller still accepts.
func (p *Parser) parseBinary(minPrec int) ast.Expr {
	left := p.parseUnary()
	for {
		prec, rightAssoc := binaryPrec(p.cur().Kind)
		if prec < minPrec || prec == -1 {
			return left
		}
		opTok := p.advance()
		next := prec + 1
		if rightAssoc {
			next = prec
		}
		right := p.parseBinary(next)
		left = &ast.Binary{
			Op:    binaryOp(opTok.Kind),
			Left:  left,
			Right: right,
			Sp:    left.Span().Cover(right.Span()),
		}
	}
}

func (p *Parser) parseUnary() ast.Expr {
	if op := unaryOp(p.cur().Kind); op != ast.UnInvalid {
		opTok := p.advance()
		operand := p.parseUnary()
		return &ast.Unary{Op: op, Operand: operand, Sp: opTok.Span.Cover(operand.Span())}
	}
	return p.parsePostfix()
}

// parsePostfix parses a primary followed by any chain of `.field`,
// `(args)`, and `[index]` suffixes.
func (p *Parser) parsePostfix() ast.Expr {
	expr := p.parsePrimary()
	for {
		switch p.cur().Kind {
		case token.Dot:
			p.advance()
			name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
			if !ok {
				p.syncStmt()
				return &ast.BadExpr{Sp: expr.Span()}
			}
			expr = &ast.Field{Base: expr, Name: name.Text, Sp: expr.Span().Cover(name.Span)}
		case token.LParen:
			p.advance()
			outer := p.noStructLit
			p.noStructLit = false
			var args []ast.Expr
			for !p.at(token.RParen) && !p.at(token.EOF) {
				args = append(args, p.parseExpr())
				if !p.eat(token.Comma) {
					break
				}
			}
			p.noStructLit = outer
			close, ok := p.expect(token.RParen, diag.SynUnclosedDelim)
			if !ok {
				p.syncStmt()
				return &ast.BadExpr{Sp: expr.Span()}
			}
			expr = &ast.Call{Callee: expr, Args: args, Sp: expr.Span().Cover(close.Span)}
		case token.LBracket:
			p.advance()
			outer := p.noStructLit
			p.noStructLit = false
			idx := p.parseExpr()
			p.noStructLit = outer
			close, ok := p.expect(token.RBracket, diag.SynUnclosedDelim)
			if !ok {
				p.syncStmt()
				return &ast.BadExpr{Sp: expr.Span()}
			}
			expr = &ast.Index{Base: expr, Index: idx, Sp: expr.Span().Cover(close.Span)}
		default:
			return expr
		}
	}
}

func (p *Parser) parsePrimary() ast.Expr {
	tok := p.cur()
	switch tok.Kind {
	case token.IntLit:
		p.advance()
		v, err := strconv.ParseInt(tok.Text, 10, 64)
		if err != nil {
			diag.Errorf(p.reporter, diag.LexBadNumber, tok.Span,
				"integer literal %q out of range", tok.Text)
			return &ast.BadExpr{Sp: tok.Span}
		}
		return &ast.Lit{Value: ast.Literal{Kind: ast.LitInt, Int: v}, Sp: tok.Span}

	case token.FloatLit:
		p.advance()
		v, err := strconv.ParseFloat(tok.Text, 64)
		if err != nil {
			diag.Errorf(p.reporter, diag.LexBadNumber, tok.Span,
				"float literal %q out of range", tok.Text)
			return &ast.BadExpr{Sp: tok.Span}
		}
		return &ast.Lit{Value: ast.Literal{Kind: ast.LitFloat, Float: v}, Sp: tok.Span}

	case token.LengthLit, token.AngleLit:
		p.advance()
		num, unit := lexer.SplitUnit(tok.Text)
		v, err := strconv.ParseFloat(num, 64)
		if err != nil {
			diag.Errorf(p.reporter, diag.LexBadNumber, tok.Span,
				"numeric literal %q out of range", tok.Text)
			return &ast.BadExpr{Sp: tok.Span}
		}
		kind := ast.LitLength
		if tok.Kind == token.AngleLit {
			kind = ast.LitAngle
		}
		return &ast.Lit{Value: ast.Literal{Kind: kind, Float: v, Unit: unit}, Sp: tok.Span}

	case token.KwTrue, token.KwFalse:
		p.advance()
		return &ast.Lit{
			Value: ast.Literal{Kind: ast.LitBool, Bool: tok.Kind == token.KwTrue},
			Sp:    tok.Span,
		}

	case token.Ident:
		if p.atStructLit() {
			return p.parseStructLit()
		}
		p.advance()
		return &ast.Ident{Name: tok.Text, Sp: tok.Span}

	case token.LBracket:
		return p.parseArrayLit()

	case token.LParen:
		p.advance()
		// Parentheses re-enable struct literals inside a header expression.
		outer := p.noStructLit
		p.noStructLit = false
		inner := p.parseExpr()
		p.noStructLit = outer
		close, ok := p.expect(token.RParen, diag.SynUnclosedDelim)
		if !ok {
			p.syncStmt()
			return &ast.BadExpr{Sp: tok.Span.Cover(inner.Span())}
		}
		return &ast.Paren{Inner: inner, Sp: tok.Span.Cover(close.Span)}

	default:
		diag.Errorf(p.reporter, diag.SynExpectExpr, tok.Span,
			"expected expression, found %s", tok.Kind)
		// Leave statement terminators for the caller's recovery.
		switch tok.Kind {
		case token.Semicolon, token.RBrace, token.RParen, token.RBracket,
			token.Comma, token.EOF:
		default:
			p.advance()
		}
		return &ast.BadExpr{Sp: tok.Span}
	}
}

// atStructLit disambiguates `Name { ... }` from an identifier followed by a
// block: the '{' must be followed by `field:` or an immediate '}'.
func (p *Parser) atStructLit() bool {
	if p.noStructLit {
		return false
	}
	if !p.at(token.Ident) || p.peekAt(1).Kind != token.LBrace {
		return false
	}
	after := p.peekAt(2)
	if after.Kind == token.RBrace {
		return true
	}
	return after.Kind == token.Ident && p.peekAt(3).Kind == token.Colon
}

func (p *Parser) parseStructLit() ast.Expr {
	name := p.advance()
	p.advance() // '{'
	var fields []ast.StructLitField
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		fname, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
		if !ok {
			p.syncStmt()
			return &ast.BadExpr{Sp: p.spanFrom(name.Span)}
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken); !ok {
			p.syncStmt()
			return &ast.BadExpr{Sp: p.spanFrom(name.Span)}
		}
		value := p.parseExpr()
		fields = append(fields, ast.StructLitField{
			Name:  fname.Text,
			Value: value,
			Sp:    fname.Span.Cover(value.Span()),
		})
		if !p.eat(token.Comma) {
			break
		}
	}
	close, ok := p.expect(token.RBrace, diag.SynUnclosedDelim)
	if !ok {
		p.syncStmt()
		return &ast.BadExpr{Sp: p.spanFrom(name.Span)}
	}
	return &ast.StructLit{Name: name.Text, Fields: fields, Sp: name.Span.Cover(close.Span)}
}

func (p *Parser) parseArrayLit() ast.Expr {
	open := p.advance() // '['
	var elems []ast.Expr
	for !p.at(token.RBracket) && !p.at(token.EOF) {
		elems = append(elems, p.parseExpr())
		if !p.eat(token.Comma) {
			break
		}
	}
	close, ok := p.expect(token.RBracket, diag.SynUnclosedDelim)
	if !ok {
		p.syncStmt()
		return &ast.BadExpr{Sp: p.spanFrom(open.Span)}
	}
	return &ast.ArrayLit{Elems: elems, Sp: open.Span.Cover(close.Span)}
}
