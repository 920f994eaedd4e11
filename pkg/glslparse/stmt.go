package glslparse

import (
	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/glsllex"
)

func (p *Parser) parseCompoundStatement() *ast.CompoundStatement {
	p.expect(glsllex.LBrace)
	cs := ast.NewCompoundStatement()
	for !p.is(glsllex.RBrace) && !p.is(glsllex.EOF) {
		cs.Append(p.parseStatement())
	}
	p.expect(glsllex.RBrace)
	return cs
}

func (p *Parser) parseStatement() ast.Statement {
	switch {
	case p.is(glsllex.LBrace):
		return p.parseCompoundStatement()
	case p.is(glsllex.Semicolon):
		p.next()
		return ast.NewEmptyStatement()
	case p.is(glsllex.KwIf):
		return p.parseSelectionStatement()
	case p.is(glsllex.KwSwitch):
		return p.parseSwitchStatement()
	case p.is(glsllex.KwCase):
		return p.parseCaseLabel(false)
	case p.is(glsllex.KwDefault):
		return p.parseCaseLabel(true)
	case p.is(glsllex.KwFor):
		return p.parseForStatement()
	case p.is(glsllex.KwWhile):
		return p.parseWhileStatement()
	case p.is(glsllex.KwDo):
		return p.parseDoWhileStatement()
	case p.is(glsllex.KwBreak):
		p.next()
		p.expect(glsllex.Semicolon)
		return ast.NewJumpStatement(ast.JumpBreak, nil)
	case p.is(glsllex.KwContinue):
		p.next()
		p.expect(glsllex.Semicolon)
		return ast.NewJumpStatement(ast.JumpContinue, nil)
	case p.is(glsllex.KwDiscard):
		p.next()
		p.expect(glsllex.Semicolon)
		return ast.NewJumpStatement(ast.JumpDiscard, nil)
	case p.is(glsllex.KwReturn):
		p.next()
		if p.accept(glsllex.Semicolon) {
			return ast.NewJumpStatement(ast.JumpReturn, nil)
		}
		val := p.parseExpression()
		p.expect(glsllex.Semicolon)
		return ast.NewJumpStatement(ast.JumpReturn, val)
	case p.isQualifierStart() || p.startsDeclaration():
		decl := ast.NewDeclarationStatement(p.parseLocalTypeAndInitDeclaration())
		p.expect(glsllex.Semicolon)
		return decl
	default:
		expr := p.parseExpression()
		p.expect(glsllex.Semicolon)
		return ast.NewExpressionStatement(expr)
	}
}

// startsDeclaration disambiguates `Type name ...;` from an expression
// statement: a leading builtin/struct/user-type identifier followed by
// another identifier is a local declaration (GLSL requires a type before
// any local variable declaration; no C-style "is this a typedef name"
// ambiguity exists because user type names only ever appear after `struct`
// or as a previously-declared struct tag, so any identifier immediately
// followed by another identifier or `[` is a declaration here).
func (p *Parser) startsDeclaration() bool {
	if p.is(glsllex.KwVoid) || p.is(glsllex.KwStruct) {
		return true
	}
	if p.is(glsllex.Ident) && (builtinNumeric[p.cur.Literal] || builtinFixed[p.cur.Literal]) {
		return true
	}
	return p.is(glsllex.Ident) && p.peekIs(glsllex.Ident)
}

func (p *Parser) parseLocalTypeAndInitDeclaration() *ast.TypeAndInitDeclaration {
	qualifier := p.parseTypeQualifier()
	typ := ast.NewFullySpecifiedType(qualifier, p.parseTypeSpecifier())
	members := p.parseDeclarationMembers()
	return ast.NewTypeAndInitDeclaration(typ, members...)
}

func (p *Parser) parseSelectionStatement() *ast.SelectionStatement {
	p.expect(glsllex.KwIf)
	p.expect(glsllex.LParen)
	cond := p.parseExpression()
	p.expect(glsllex.RParen)
	then := p.parseStatement()
	var els ast.Statement
	if p.accept(glsllex.KwElse) {
		els = p.parseStatement()
	}
	return ast.NewSelectionStatement(cond, then, els)
}

func (p *Parser) parseSwitchStatement() *ast.SwitchStatement {
	p.expect(glsllex.KwSwitch)
	p.expect(glsllex.LParen)
	cond := p.parseExpression()
	p.expect(glsllex.RParen)
	body := p.parseCompoundStatement()
	return ast.NewSwitchStatement(cond, body)
}

func (p *Parser) parseCaseLabel(isDefault bool) *ast.CaseLabelStatement {
	p.next()
	var expr ast.Expression
	if !isDefault {
		expr = p.parseExpression()
	}
	p.expect(glsllex.Colon)
	return ast.NewCaseLabelStatement(expr)
}

func (p *Parser) parseForStatement() *ast.IterationStatement {
	p.expect(glsllex.KwFor)
	p.expect(glsllex.LParen)
	var init ast.Statement
	if !p.is(glsllex.Semicolon) {
		if p.isQualifierStart() || p.startsDeclaration() {
			init = ast.NewDeclarationStatement(p.parseLocalTypeAndInitDeclaration())
		} else {
			init = ast.NewExpressionStatement(p.parseExpression())
		}
	}
	p.expect(glsllex.Semicolon)
	var cond ast.Expression
	if !p.is(glsllex.Semicolon) {
		cond = p.parseExpression()
	}
	p.expect(glsllex.Semicolon)
	var post ast.Expression
	if !p.is(glsllex.RParen) {
		post = p.parseExpression()
	}
	p.expect(glsllex.RParen)
	body := p.parseStatement()
	return ast.NewForStatement(init, cond, post, body)
}

func (p *Parser) parseWhileStatement() *ast.IterationStatement {
	p.expect(glsllex.KwWhile)
	p.expect(glsllex.LParen)
	cond := p.parseExpression()
	p.expect(glsllex.RParen)
	body := p.parseStatement()
	return ast.NewWhileStatement(cond, body)
}

func (p *Parser) parseDoWhileStatement() *ast.IterationStatement {
	p.expect(glsllex.KwDo)
	body := p.parseStatement()
	p.expect(glsllex.KwWhile)
	p.expect(glsllex.LParen)
	cond := p.parseExpression()
	p.expect(glsllex.RParen)
	p.expect(glsllex.Semicolon)
	return ast.NewDoWhileStatement(body, cond)
}
