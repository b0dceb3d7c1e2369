package parser

import (
	"strconv"

	"tcad/internal/ast"
	"tcad/internal/diag"
	"tcad/internal/token"
)

// File parses the whole token stream into declarations.
func (p *Parser) File() *ast.File {
	file := &ast.File{FileID: p.file.ID}
	for !p.at(token.EOF) {
		switch p.cur().Kind {
		case token.KwImport:
			if imp, ok := p.parseImport(); ok {
				file.Imports = append(file.Imports, imp)
			}
		case token.KwStruct:
			if st, ok := p.parseStruct(); ok {
				file.Structs = append(file.Structs, st)
			}
		case token.KwSketch:
			if sk, ok := p.parseSketch(); ok {
				file.Sketches = append(file.Sketches, sk)
			}
		default:
			diag.Errorf(p.reporter, diag.SynUnexpectedToken, p.cur().Span,
				"expected declaration, found %s", p.cur().Kind)
			p.advance()
			p.syncDecl()
		}
	}
	return file
}

func (p *Parser) parseImport() (ast.ImportDecl, bool) {
	kw := p.advance()
	path, ok := p.expect(token.StringLit, diag.SynUnexpectedToken)
	if !ok {
		p.syncDecl()
		return ast.ImportDecl{}, false
	}
	p.expectSemicolon()
	return ast.ImportDecl{Path: path.Text, Sp: p.spanFrom(kw.Span)}, true
}

// parseTypeRef parses `[&] Name [ '[' int ']' ]`.
func (p *Parser) parseTypeRef() (ast.TypeRef, bool) {
	start := p.cur().Span
	ref := p.eat(token.Amp)
	name, ok := p.expect(token.Ident, diag.SynExpectType)
	if !ok {
		return ast.TypeRef{}, false
	}
	t := ast.TypeRef{Name: name.Text, Reference: ref, Sp: p.spanFrom(start)}
	if p.eat(token.LBracket) {
		lenTok, ok := p.expect(token.IntLit, diag.SynBadArrayLen)
		if !ok {
			return ast.TypeRef{}, false
		}
		n, err := strconv.ParseUint(lenTok.Text, 10, 32)
		if err != nil {
			diag.Errorf(p.reporter, diag.SynBadArrayLen, lenTok.Span,
				"array length %q out of range", lenTok.Text)
			return ast.TypeRef{}, false
		}
		if _, ok := p.expect(token.RBracket, diag.SynUnclosedDelim); !ok {
			return ast.TypeRef{}, false
		}
		t.Array = true
		t.ArrayLen = uint32(n)
		t.Sp = p.spanFrom(start)
	}
	return t, true
}

func (p *Parser) parseStruct() (ast.StructDecl, bool) {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncDecl()
		return ast.StructDecl{}, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken); !ok {
		p.syncDecl()
		return ast.StructDecl{}, false
	}
	st := ast.StructDecl{Name: name.Text, NameSp: name.Span}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.KwFn) {
			if fn, ok := p.parseFn(); ok {
				st.Methods = append(st.Methods, fn)
			}
			continue
		}
		fname, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
		if !ok {
			p.syncStmt()
			continue
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken); !ok {
			p.syncStmt()
			continue
		}
		ftype, ok := p.parseTypeRef()
		if !ok {
			p.syncStmt()
			continue
		}
		st.Fields = append(st.Fields, ast.FieldDecl{
			Name: fname.Text,
			Type: ftype,
			Sp:   fname.Span.Cover(ftype.Sp),
		})
		if !p.eat(token.Comma) {
			p.eat(token.Semicolon)
		}
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelim); !ok {
		return st, false
	}
	st.Sp = p.spanFrom(kw.Span)
	return st, true
}

func (p *Parser) parseFn() (ast.FnDecl, bool) {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncStmt()
		return ast.FnDecl{}, false
	}
	if _, ok := p.expect(token.LParen, diag.SynUnexpectedToken); !ok {
		p.syncStmt()
		return ast.FnDecl{}, false
	}
	fn := ast.FnDecl{Name: name.Text, NameSp: name.Span}
	for !p.at(token.RParen) && !p.at(token.EOF) {
		pname, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
		if !ok {
			p.syncStmt()
			return ast.FnDecl{}, false
		}
		if _, ok := p.expect(token.Colon, diag.SynUnexpectedToken); !ok {
			p.syncStmt()
			return ast.FnDecl{}, false
		}
		ptype, ok := p.parseTypeRef()
		if !ok {
			p.syncStmt()
			return ast.FnDecl{}, false
		}
		fn.Params = append(fn.Params, ast.Param{
			Name: pname.Text,
			Type: ptype,
			Sp:   pname.Span.Cover(ptype.Sp),
		})
		if !p.eat(token.Comma) {
			break
		}
	}
	if _, ok := p.expect(token.RParen, diag.SynUnclosedDelim); !ok {
		p.syncStmt()
		return ast.FnDecl{}, false
	}
	if p.eat(token.Arrow) {
		ret, ok := p.parseTypeRef()
		if !ok {
			p.syncStmt()
			return ast.FnDecl{}, false
		}
		fn.Return = &ret
	}
	body, ok := p.parseBlock()
	if !ok {
		return ast.FnDecl{}, false
	}
	fn.Body = body
	fn.Sp = p.spanFrom(kw.Span)
	return fn, true
}

func (p *Parser) parseSketch() (ast.SketchDecl, bool) {
	kw := p.advance()
	name, ok := p.expect(token.Ident, diag.SynExpectIdentifier)
	if !ok {
		p.syncDecl()
		return ast.SketchDecl{}, false
	}
	if _, ok := p.expect(token.LBrace, diag.SynUnexpectedToken); !ok {
		p.syncDecl()
		return ast.SketchDecl{}, false
	}
	sk := ast.SketchDecl{Name: name.Text, NameSp: name.Span}
	for !p.at(token.RBrace) && !p.at(token.EOF) {
		if p.at(token.KwFn) {
			if fn, ok := p.parseFn(); ok {
				sk.Fns = append(sk.Fns, fn)
			}
			continue
		}
		sk.Body = append(sk.Body, p.parseStmt())
	}
	if _, ok := p.expect(token.RBrace, diag.SynUnclosedDelim); !ok {
		return sk, false
	}
	sk.Sp = p.spanFrom(kw.Span)
	return sk, true
}
