package glslparse

import (
	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/glsllex"
)

// builtinNumeric holds every scalar/vector/matrix builtin type name: these
// may carry a precision qualifier.
var builtinNumeric = map[string]bool{}

// builtinFixed holds sampler/image/atomic-counter type names (no
// meaningful precision arithmetic).
var builtinFixed = map[string]bool{}

func init() {
	scalars := []string{"void", "bool", "int", "uint", "float", "double"}
	for _, base := range scalars {
		builtinNumeric[base] = true
	}
	for _, prefix := range []string{"", "b", "i", "u", "d"} {
		for n := 2; n <= 4; n++ {
			builtinNumeric[prefix+"vec"+string(rune('0'+n))] = true
		}
	}
	for _, prefix := range []string{"", "d"} {
		for r := 2; r <= 4; r++ {
			builtinNumeric[prefix+"mat"+string(rune('0'+r))] = true
			for c := 2; c <= 4; c++ {
				builtinNumeric[prefix+"mat"+string(rune('0'+r))+"x"+string(rune('0'+c))] = true
			}
		}
	}
	samplerDims := []string{"1D", "2D", "3D", "Cube", "2DRect", "1DArray", "2DArray", "CubeArray", "Buffer", "2DMS", "2DMSArray"}
	for _, prefix := range []string{"sampler", "isampler", "usampler"} {
		for _, dim := range samplerDims {
			builtinFixed[prefix+dim] = true
		}
	}
	for _, dim := range []string{"1D", "2D", "3D", "Cube", "2DArray", "CubeArray"} {
		builtinFixed["sampler"+dim+"Shadow"] = true
	}
	for _, prefix := range []string{"image", "iimage", "uimage"} {
		for _, dim := range []string{"1D", "2D", "3D", "Cube", "2DArray", "CubeArray", "Buffer", "2DMS", "2DMSArray"} {
			builtinFixed[prefix+dim] = true
		}
	}
	builtinFixed["atomic_uint"] = true
}

var precisionKeywords = map[glsllex.TokenType]bool{
	glsllex.KwLowp: true, glsllex.KwMediump: true, glsllex.KwHighp: true,
}

var storageKeywords = map[glsllex.TokenType]string{
	glsllex.KwIn: "in", glsllex.KwOut: "out", glsllex.KwInOut: "inout",
	glsllex.KwUniform: "uniform", glsllex.KwBuffer: "buffer", glsllex.KwShared: "shared",
	glsllex.KwConst: "const",
}

var interpolationKeywords = map[glsllex.TokenType]string{
	glsllex.KwFlat: "flat", glsllex.KwSmooth: "smooth", glsllex.KwNoperspective: "noperspective",
}

var memoryQualifierKeywords = map[glsllex.TokenType]string{
	glsllex.KwRestrict: "restrict", glsllex.KwReadonly: "readonly",
	glsllex.KwWriteonly: "writeonly", glsllex.KwCoherent: "coherent", glsllex.KwVolatile: "volatile",
}

// isQualifierStart reports whether the current token can begin a type
// qualifier (a storage, layout, invariant, precise or precision keyword).
func (p *Parser) isQualifierStart() bool {
	if _, ok := storageKeywords[p.cur.Type]; ok {
		return true
	}
	if _, ok := interpolationKeywords[p.cur.Type]; ok {
		return true
	}
	if _, ok := memoryQualifierKeywords[p.cur.Type]; ok {
		return true
	}
	return p.is(glsllex.KwLayout) || p.is(glsllex.KwInvariant) || p.is(glsllex.KwPrecise) || precisionKeywords[p.cur.Type]
}

// parseTypeQualifier parses zero or more qualifier parts, in the order GLSL
// requires them (layout, storage, precision, interpolation, invariant,
// precise all being freely intermixed in real grammars; we accept any
// order for robustness) and returns nil if none were present.
func (p *Parser) parseTypeQualifier() *ast.TypeQualifier {
	var parts []*ast.QualifierPart
	for p.isQualifierStart() {
		switch {
		case p.is(glsllex.KwLayout):
			parts = append(parts, ast.NewLayoutQualifierPart(p.parseLayoutQualifier()))
		case precisionKeywords[p.cur.Type]:
			parts = append(parts, ast.NewKeywordQualifierPart(ast.QualPrecision, p.cur.Literal))
			p.next()
		case p.is(glsllex.KwInvariant):
			parts = append(parts, ast.NewKeywordQualifierPart(ast.QualInvariant, "invariant"))
			p.next()
		case p.is(glsllex.KwPrecise):
			parts = append(parts, ast.NewKeywordQualifierPart(ast.QualPrecise, "precise"))
			p.next()
		default:
			if kw, ok := interpolationKeywords[p.cur.Type]; ok {
				parts = append(parts, ast.NewKeywordQualifierPart(ast.QualInterpolation, kw))
				p.next()
				continue
			}
			if kw, ok := storageKeywords[p.cur.Type]; ok {
				parts = append(parts, ast.NewKeywordQualifierPart(ast.QualStorage, kw))
				p.next()
				continue
			}
			if kw, ok := memoryQualifierKeywords[p.cur.Type]; ok {
				parts = append(parts, ast.NewKeywordQualifierPart(ast.QualStorage, kw))
				p.next()
				continue
			}
		}
	}
	if len(parts) == 0 {
		return nil
	}
	return ast.NewTypeQualifier(parts...)
}

func (p *Parser) parseLayoutQualifier() *ast.LayoutQualifier {
	p.next() // consume 'layout'
	p.expect(glsllex.LParen)
	var parts []*ast.LayoutQualifierPart
	for !p.is(glsllex.RParen) && !p.is(glsllex.EOF) {
		if p.is(glsllex.KwShared) {
			parts = append(parts, ast.NewSharedLayoutPart())
			p.next()
		} else {
			name := p.parseIdentifier()
			if p.accept(glsllex.Assign) {
				val := p.parseExpression()
				parts = append(parts, ast.NewExpressionValuedLayoutPart(name, val))
			} else {
				parts = append(parts, ast.NewNamedLayoutPart(name))
			}
		}
		if !p.accept(glsllex.Comma) {
			break
		}
	}
	p.expect(glsllex.RParen)
	return ast.NewLayoutQualifier(parts...)
}

func (p *Parser) parseIdentifier() *ast.Identifier {
	name := p.cur.Literal
	if !p.is(glsllex.Ident) {
		p.errorf("expected identifier, got %s %q", p.cur.Type, p.cur.Literal)
	}
	p.next()
	return ast.NewIdentifier(name)
}

// parseTypeSpecifier parses a type name (builtin, struct, or reference)
// plus an optional trailing array specifier.
func (p *Parser) parseTypeSpecifier() *ast.TypeSpecifier {
	var spec *ast.TypeSpecifier
	switch {
	case p.is(glsllex.KwStruct):
		spec = ast.NewStructTypeSpecifier(p.parseStructSpecifier())
	case p.is(glsllex.KwVoid):
		spec = ast.NewBuiltinTypeSpecifier(ast.TypeBuiltinNumeric, "void")
		p.next()
	case p.is(glsllex.Ident):
		name := p.cur.Literal
		switch {
		case builtinNumeric[name]:
			spec = ast.NewBuiltinTypeSpecifier(ast.TypeBuiltinNumeric, name)
		case builtinFixed[name]:
			spec = ast.NewBuiltinTypeSpecifier(ast.TypeBuiltinFixed, name)
		default:
			spec = ast.NewReferenceTypeSpecifier(ast.NewIdentifier(name))
		}
		p.next()
	default:
		p.errorf("expected type specifier, got %s %q", p.cur.Type, p.cur.Literal)
		spec = ast.NewBuiltinTypeSpecifier(ast.TypeBuiltinNumeric, "float")
	}
	if p.is(glsllex.LBracket) {
		spec = spec.WithArray(p.parseArraySpecifier())
	}
	return spec
}

// parseArraySpecifier parses `[size?]`.
func (p *Parser) parseArraySpecifier() *ast.ArraySpecifier {
	p.expect(glsllex.LBracket)
	if p.accept(glsllex.RBracket) {
		return ast.NewArraySpecifier(nil)
	}
	size := p.parseExpression()
	p.expect(glsllex.RBracket)
	return ast.NewArraySpecifier(size)
}

func (p *Parser) parseStructSpecifier() *ast.StructSpecifier {
	p.expect(glsllex.KwStruct)
	var name *ast.Identifier
	if p.is(glsllex.Ident) {
		name = p.parseIdentifier()
	}
	spec := ast.NewStructSpecifier(name)
	p.expect(glsllex.LBrace)
	for !p.is(glsllex.RBrace) && !p.is(glsllex.EOF) {
		typ := ast.NewFullySpecifiedType(p.parseTypeQualifier(), p.parseTypeSpecifier())
		members := p.parseDeclarationMembers()
		spec.AddField(typ, members...)
		p.expect(glsllex.Semicolon)
	}
	p.expect(glsllex.RBrace)
	return spec
}

// parseDeclarationMembers parses `name[...]? (, name[...]?)*` — the
// comma-separated declarator list shared by struct fields and
// TypeAndInitDeclaration.
func (p *Parser) parseDeclarationMembers() []*ast.DeclarationMember {
	var members []*ast.DeclarationMember
	for {
		member := ast.NewDeclarationMember(p.parseIdentifier())
		if p.is(glsllex.LBracket) {
			member = member.WithArray(p.parseArraySpecifier())
		}
		if p.accept(glsllex.Assign) {
			member = member.WithInitializer(p.parseAssignmentExpression())
		}
		members = append(members, member)
		if !p.accept(glsllex.Comma) {
			break
		}
	}
	return members
}
