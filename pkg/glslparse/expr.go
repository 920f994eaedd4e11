package glslparse

import (
	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/glsllex"
)

// parseExpression parses the comma operator (lowest precedence), collapsing
// to its single operand when there is no comma.
func (p *Parser) parseExpression() ast.Expression {
	first := p.parseAssignmentExpression()
	if !p.is(glsllex.Comma) {
		return first
	}
	items := []ast.Expression{first}
	for p.accept(glsllex.Comma) {
		items = append(items, p.parseAssignmentExpression())
	}
	return ast.NewSequenceExpression(items...)
}

var assignOps = map[glsllex.TokenType]ast.BinaryOp{
	glsllex.Assign:        ast.BinAssign,
	glsllex.PlusAssign:    ast.BinAddAssign,
	glsllex.MinusAssign:   ast.BinSubAssign,
	glsllex.StarAssign:    ast.BinMulAssign,
	glsllex.SlashAssign:   ast.BinDivAssign,
	glsllex.PercentAssign: ast.BinModAssign,
	glsllex.AndAssign:     ast.BinBitAndAssign,
	glsllex.OrAssign:      ast.BinBitOrAssign,
	glsllex.XorAssign:     ast.BinBitXorAssign,
	glsllex.ShlAssign:     ast.BinShlAssign,
	glsllex.ShrAssign:     ast.BinShrAssign,
}

// parseAssignmentExpression is right-associative: `a = b = c`.
func (p *Parser) parseAssignmentExpression() ast.Expression {
	left := p.parseTernaryExpression()
	if op, ok := assignOps[p.cur.Type]; ok {
		p.next()
		right := p.parseAssignmentExpression()
		return ast.NewBinaryExpression(op, left, right)
	}
	return left
}

func (p *Parser) parseTernaryExpression() ast.Expression {
	cond := p.parseLogicalOr()
	if p.accept(glsllex.Question) {
		then := p.parseAssignmentExpression()
		p.expect(glsllex.Colon)
		els := p.parseAssignmentExpression()
		return ast.NewTernaryExpression(cond, then, els)
	}
	return cond
}

// binaryLevel is one precedence tier of left-associative binary operators.
type binaryLevel struct {
	ops map[glsllex.TokenType]ast.BinaryOp
}

var precedenceLevels = []binaryLevel{
	{map[glsllex.TokenType]ast.BinaryOp{glsllex.OrOr: ast.BinOr}},
	{map[glsllex.TokenType]ast.BinaryOp{glsllex.AndAnd: ast.BinAnd}},
	{map[glsllex.TokenType]ast.BinaryOp{glsllex.Pipe: ast.BinBitOr}},
	{map[glsllex.TokenType]ast.BinaryOp{glsllex.Caret: ast.BinBitXor}},
	{map[glsllex.TokenType]ast.BinaryOp{glsllex.Amp: ast.BinBitAnd}},
	{map[glsllex.TokenType]ast.BinaryOp{glsllex.Eq: ast.BinEq, glsllex.Ne: ast.BinNe}},
	{map[glsllex.TokenType]ast.BinaryOp{glsllex.Lt: ast.BinLt, glsllex.Le: ast.BinLe, glsllex.Gt: ast.BinGt, glsllex.Ge: ast.BinGe}},
	{map[glsllex.TokenType]ast.BinaryOp{glsllex.Shl: ast.BinShl, glsllex.Shr: ast.BinShr}},
	{map[glsllex.TokenType]ast.BinaryOp{glsllex.Plus: ast.BinAdd, glsllex.Minus: ast.BinSub}},
	{map[glsllex.TokenType]ast.BinaryOp{glsllex.Star: ast.BinMul, glsllex.Slash: ast.BinDiv, glsllex.Percent: ast.BinMod}},
}

func (p *Parser) parseLogicalOr() ast.Expression { return p.parseBinaryLevel(0) }

func (p *Parser) parseBinaryLevel(level int) ast.Expression {
	if level >= len(precedenceLevels) {
		return p.parseUnaryExpression()
	}
	left := p.parseBinaryLevel(level + 1)
	for {
		op, ok := precedenceLevels[level].ops[p.cur.Type]
		if !ok {
			return left
		}
		p.next()
		right := p.parseBinaryLevel(level + 1)
		left = ast.NewBinaryExpression(op, left, right)
	}
}

var unaryOps = map[glsllex.TokenType]ast.UnaryOp{
	glsllex.Plus: ast.UnaryPlus, glsllex.Minus: ast.UnaryMinus,
	glsllex.Not: ast.UnaryNot, glsllex.Tilde: ast.UnaryBitNot,
}

func (p *Parser) parseUnaryExpression() ast.Expression {
	if op, ok := unaryOps[p.cur.Type]; ok {
		p.next()
		return ast.NewUnaryExpression(op, p.parseUnaryExpression())
	}
	if p.is(glsllex.Increment) {
		p.next()
		return ast.NewIncDecExpression(ast.PreInc, p.parseUnaryExpression())
	}
	if p.is(glsllex.Decrement) {
		p.next()
		return ast.NewIncDecExpression(ast.PreDec, p.parseUnaryExpression())
	}
	return p.parsePostfixExpression()
}

func (p *Parser) parsePostfixExpression() ast.Expression {
	expr := p.parsePrimaryExpression()
	for {
		switch {
		case p.is(glsllex.Dot):
			p.next()
			member := p.parseIdentifier()
			if p.is(glsllex.LParen) {
				p.next()
				args := p.parseArgumentList()
				p.expect(glsllex.RParen)
				expr = ast.NewMethodCallExpression(expr, member, args...)
			} else {
				expr = ast.NewMemberAccessExpression(expr, member)
			}
		case p.is(glsllex.LBracket):
			p.next()
			index := p.parseExpression()
			p.expect(glsllex.RBracket)
			expr = ast.NewArrayAccessExpression(expr, index)
		case p.is(glsllex.Increment):
			p.next()
			expr = ast.NewIncDecExpression(ast.PostInc, expr)
		case p.is(glsllex.Decrement):
			p.next()
			expr = ast.NewIncDecExpression(ast.PostDec, expr)
		default:
			return expr
		}
	}
}

func (p *Parser) parseArgumentList() []ast.Expression {
	var args []ast.Expression
	if p.is(glsllex.RParen) {
		return args
	}
	if p.is(glsllex.KwVoid) && p.peekIs(glsllex.RParen) {
		p.next()
		return args
	}
	for {
		args = append(args, p.parseAssignmentExpression())
		if !p.accept(glsllex.Comma) {
			break
		}
	}
	return args
}

func (p *Parser) parsePrimaryExpression() ast.Expression {
	switch {
	case p.is(glsllex.LParen):
		p.next()
		inner := p.parseExpression()
		p.expect(glsllex.RParen)
		return ast.NewGroupingExpression(inner)
	case p.is(glsllex.IntLiteral):
		lit := p.cur.Literal
		p.next()
		return ast.NewLiteralExpression(ast.LiteralInt, lit)
	case p.is(glsllex.UintLiteral):
		lit := p.cur.Literal
		p.next()
		return ast.NewLiteralExpression(ast.LiteralUint, lit)
	case p.is(glsllex.FloatLiteral):
		lit := p.cur.Literal
		p.next()
		return ast.NewLiteralExpression(ast.LiteralFloat, lit)
	case p.is(glsllex.DoubleLiteral):
		lit := p.cur.Literal
		p.next()
		return ast.NewLiteralExpression(ast.LiteralDouble, lit)
	case p.is(glsllex.StringLiteral):
		lit := p.cur.Literal
		p.next()
		return ast.NewLiteralExpression(ast.LiteralString, lit)
	case p.is(glsllex.TrueLiteral):
		p.next()
		return ast.NewLiteralExpression(ast.LiteralBool, "true")
	case p.is(glsllex.FalseLiteral):
		p.next()
		return ast.NewLiteralExpression(ast.LiteralBool, "false")
	case p.is(glsllex.Ident):
		name := p.cur.Literal
		p.next()
		if p.is(glsllex.LParen) {
			p.next()
			args := p.parseArgumentList()
			p.expect(glsllex.RParen)
			return ast.NewFunctionCallExpression(ast.NewIdentifier(name), args...)
		}
		return ast.NewReferenceExpression(ast.NewIdentifier(name))
	case builtinNumericStart(p):
		// A builtin type name used as a constructor, e.g. `vec4(1.0)`.
		name := p.cur.Literal
		p.next()
		p.expect(glsllex.LParen)
		args := p.parseArgumentList()
		p.expect(glsllex.RParen)
		return ast.NewFunctionCallExpression(ast.NewIdentifier(name), args...)
	default:
		p.errorf("expected expression, got %s %q", p.cur.Type, p.cur.Literal)
		p.next()
		return ast.NewLiteralExpression(ast.LiteralInt, "0")
	}
}

// builtinNumericStart handles constructor calls spelled with a keyword
// token rather than Ident (e.g. `void` is never a constructor, but this
// hook exists for symmetry with parseTypeSpecifier's keyword cases — GLSL's
// lexer classifies all type names other than `void`/`struct` as identifiers,
// so in practice this never fires; kept for forward compatibility with a
// richer keyword set).
func builtinNumericStart(p *Parser) bool { return false }
