package glslparse

import (
	"strings"

	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/glsllex"
)

// parseExternalDeclaration parses one top-level construct. On malformed
// input it records an error and still returns a best-effort node.
func (p *Parser) parseExternalDeclaration() ast.ExternalDeclaration {
	switch {
	case p.is(glsllex.HashVersion):
		return p.parseVersionStatement()
	case p.is(glsllex.HashExtension):
		return p.parseExtensionDirective()
	case p.is(glsllex.HashPragma):
		return p.parsePragma()
	case p.is(glsllex.Semicolon):
		p.next()
		return ast.NewEmptyDeclarationExternal()
	case p.is(glsllex.KwPrecision):
		return ast.NewDeclarationExternal(p.parsePrecisionDeclaration())
	default:
		return p.parseDeclarationOrFunction()
	}
}

func (p *Parser) parseExtensionDirective() *ast.ExtensionDirective {
	text := p.cur.Literal // "#extension NAME : behavior"
	p.next()
	rest := strings.TrimSpace(strings.TrimPrefix(text, "#extension"))
	name, behavior := rest, ""
	if i := strings.Index(rest, ":"); i >= 0 {
		name = strings.TrimSpace(rest[:i])
		behavior = strings.TrimSpace(rest[i+1:])
	}
	return ast.NewExtensionDirective(name, behavior)
}

func (p *Parser) parsePragma() *ast.Pragma {
	text := p.cur.Literal
	p.next()
	return ast.NewPragma(strings.TrimSpace(strings.TrimPrefix(text, "#pragma")))
}

func (p *Parser) parsePrecisionDeclaration() *ast.PrecisionDeclaration {
	p.expect(glsllex.KwPrecision)
	precision := p.cur.Literal
	if !precisionKeywords[p.cur.Type] {
		p.errorf("expected precision qualifier, got %s", p.cur.Type)
	}
	p.next()
	typ := p.parseTypeSpecifier()
	p.expect(glsllex.Semicolon)
	return ast.NewPrecisionDeclaration(precision, typ)
}

// parseDeclarationOrFunction disambiguates between a function
// declaration/definition, an interface block, a layout-defaults statement,
// and a plain type-and-init declaration: all start with an optional
// qualifier followed by a type, so the decision is made after the first
// identifier is seen.
func (p *Parser) parseDeclarationOrFunction() ast.ExternalDeclaration {
	qualifier := p.parseTypeQualifier()

	// `layout(...) uniform;` sets block-wide defaults; recognizable because
	// nothing but a storage keyword follows the layout qualifier before ';'.
	if qualifier != nil && qualifier.LayoutPart() != nil {
		if kw, ok := storageKeywords[p.cur.Type]; ok && p.peekIs(glsllex.Semicolon) {
			p.next()
			p.expect(glsllex.Semicolon)
			return ast.NewLayoutDefaults(qualifier.LayoutPart(), kw)
		}
	}

	// Interface block: qualifier Name { ... }
	if p.is(glsllex.Ident) && p.peekIs(glsllex.LBrace) {
		name := p.parseIdentifier()
		body := p.parseBracedStructBody()
		block := ast.NewInterfaceBlockDeclaration(orEmptyQualifier(qualifier), name, body)
		if p.is(glsllex.Ident) {
			instance := p.parseIdentifier()
			var arr *ast.ArraySpecifier
			if p.is(glsllex.LBracket) {
				arr = p.parseArraySpecifier()
			}
			block = block.WithInstance(instance, arr)
		}
		p.expect(glsllex.Semicolon)
		return ast.NewDeclarationExternal(block)
	}

	typ := ast.NewFullySpecifiedType(qualifier, p.parseTypeSpecifier())

	// Function: Type name ( params )
	if p.is(glsllex.Ident) && p.peekIs(glsllex.LParen) {
		name := p.parseIdentifier()
		p.expect(glsllex.LParen)
		params := p.parseParameterList()
		p.expect(glsllex.RParen)
		header := ast.NewFunctionDeclaration(typ, name, params...)
		if p.is(glsllex.LBrace) {
			body := p.parseCompoundStatement()
			return ast.NewFunctionDefinition(header, body)
		}
		p.expect(glsllex.Semicolon)
		return ast.NewDeclarationExternal(header)
	}

	if p.is(glsllex.Semicolon) {
		p.next()
		return ast.NewDeclarationExternal(ast.NewEmptyDeclaration())
	}

	members := p.parseDeclarationMembers()
	p.expect(glsllex.Semicolon)
	return ast.NewDeclarationExternal(ast.NewTypeAndInitDeclaration(typ, members...))
}

// orEmptyQualifier returns q, or an empty TypeQualifier if q is nil:
// InterfaceBlockDeclaration.Qualifier is required (e.g. `uniform Block {}`
// always carries at least a storage keyword in practice, but the AST shape
// tolerates a qualifier-less block for robustness against malformed input).
func orEmptyQualifier(q *ast.TypeQualifier) *ast.TypeQualifier {
	if q != nil {
		return q
	}
	return ast.NewTypeQualifier()
}

func (p *Parser) parseBracedStructBody() *ast.StructSpecifier {
	spec := ast.NewStructSpecifier(nil)
	p.expect(glsllex.LBrace)
	for !p.is(glsllex.RBrace) && !p.is(glsllex.EOF) {
		fieldQualifier := p.parseTypeQualifier()
		fieldType := ast.NewFullySpecifiedType(fieldQualifier, p.parseTypeSpecifier())
		members := p.parseDeclarationMembers()
		spec.AddField(fieldType, members...)
		p.expect(glsllex.Semicolon)
	}
	p.expect(glsllex.RBrace)
	return spec
}

func (p *Parser) parseParameterList() []*ast.Parameter {
	var params []*ast.Parameter
	if p.is(glsllex.RParen) {
		return params
	}
	if p.is(glsllex.KwVoid) && p.peekIs(glsllex.RParen) {
		p.next()
		return params
	}
	for {
		qualifier := p.parseTypeQualifier()
		typ := ast.NewFullySpecifiedType(qualifier, p.parseTypeSpecifier())
		var name *ast.Identifier
		if p.is(glsllex.Ident) {
			name = p.parseIdentifier()
			if p.is(glsllex.LBracket) {
				typ.Specifier = typ.Specifier.WithArray(p.parseArraySpecifier())
			}
		}
		params = append(params, ast.NewParameter(typ, name))
		if !p.accept(glsllex.Comma) {
			break
		}
	}
	return params
}
