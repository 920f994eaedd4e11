package rules

import (
	"regexp"
	"strconv"

	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/astbuild"
	"github.com/glsltx/glsltx/pkg/match"
	"github.com/glsltx/glsltx/pkg/transform"
)

var outColorName = regexp.MustCompile(`^outColor(\d+)$`)

// outLayoutMatcher recognizes a single-member `out` declaration with no
// layout qualifier yet; its TypeSpecifier is a class wildcard so any
// builtin output type matches, not just the dummy "float" written here.
func newOutLayoutMatcher() *match.Matcher {
	m, err := match.NewMatcher("out float __name;", astbuild.ShapeExternalDeclaration,
		match.WithExtract(func(res *match.MatchResult, candidate ast.Node) bool {
			name, err := res.GetStringDataMatch("name")
			if err != nil {
				return false
			}
			return outColorName.MatchString(name)
		}))
	if err != nil {
		panic(err)
	}
	typeSpec, err := m.Root().NodeOfKindUnique(ast.KindTypeSpecifier)
	if err != nil {
		panic(err)
	}
	m.MarkClassWildcard(typeSpec, ast.KindTypeSpecifier)
	return m
}

// outLayoutTemplate instantiates the same declaration with its qualifier
// and type carried over from the match and a `layout(location = N)` part
// spliced into the qualifier.
func newOutLayoutTemplate() *match.Template {
	t, err := match.WithExternalDeclaration("out __type __name;")
	if err != nil {
		panic(err)
	}
	qualifier, err := t.Root().NodeOfKindUnique(ast.KindTypeQualifier)
	if err != nil {
		panic(err)
	}
	t.MarkLocalReplacementNode("qualifier", qualifier, ast.KindTypeQualifier)
	t.MarkLocalReplacement("type", ast.KindTypeSpecifier)
	t.MarkIdentifierReplacement("name")
	return t
}

// NewOutDeclarationLocation builds a rule that assigns an explicit
// `layout(location = N)` to a single-member `out` declaration named
// outColorN, when it doesn't already carry one.
func NewOutDeclarationLocation() *transform.Transformation {
	matcher := newOutLayoutMatcher()
	tmpl := newOutLayoutTemplate()

	t := transform.NewTransformation()
	t.AddPhase(&transform.MatchPhase{
		Kind:    ast.KindDeclarationExternal,
		Pattern: matcher,
		Rewrite: func(ctx *transform.Context, res *match.MatchResult, candidate ast.Node) error {
			decl := candidate.(*ast.DeclarationExternal)
			tid := decl.Decl.(*ast.TypeAndInitDeclaration)

			name, err := res.GetStringDataMatch("name")
			if err != nil {
				return err
			}
			m := outColorName.FindStringSubmatch(name)
			if m == nil {
				return nil
			}
			loc, err := strconv.Atoi(m[1])
			if err != nil {
				return nil
			}

			qualifier := tid.Type.Qualifier.CloneInto(ctx.Root()).(*ast.TypeQualifier)
			lqPart := ast.NewExpressionValuedLayoutPart(
				ast.NewIdentifier("location"),
				ast.NewLiteralExpression(ast.LiteralInt, strconv.Itoa(loc)),
			)
			qualifier.AppendPart(ast.NewLayoutQualifierPart(ast.NewLayoutQualifier(lqPart)))

			typeSpec := tid.Type.Specifier.CloneInto(ctx.Root()).(*ast.TypeSpecifier)

			result, err := tmpl.Instantiate(ctx.Root(), map[string]interface{}{
				"qualifier": qualifier,
				"type":      typeSpec,
				"name":      name,
			})
			if err != nil {
				return err
			}
			return ast.ReplaceBy(candidate, result)
		},
	})
	return t
}
