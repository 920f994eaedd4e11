package match

import (
	"testing"

	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/astbuild"
	"github.com/stretchr/testify/require"
)

func TestMatcherIdentifierWildcard(t *testing.T) {
	m, err := NewMatcher("__name = __name + 1;", astbuild.ShapeStatement)
	require.NoError(t, err)

	candidate, _, err := astbuild.BuildFragment(astbuild.ShapeStatement, "counter = counter + 1;")
	require.NoError(t, err)

	res, ok := m.Match(candidate)
	require.True(t, ok)
	name, err := res.GetStringDataMatch("name")
	require.NoError(t, err)
	require.Equal(t, "counter", name)
}

func TestMatcherRejectsConflictingCaptures(t *testing.T) {
	m, err := NewMatcher("__name = __name + 1;", astbuild.ShapeStatement)
	require.NoError(t, err)

	candidate, _, err := astbuild.BuildFragment(astbuild.ShapeStatement, "a = b + 1;")
	require.NoError(t, err)

	_, ok := m.Match(candidate)
	require.False(t, ok)
}

func TestMatcherShapeMismatch(t *testing.T) {
	m, err := NewMatcher("x + y", astbuild.ShapeExpression)
	require.NoError(t, err)

	candidate, _, err := astbuild.BuildFragment(astbuild.ShapeExpression, "x * y")
	require.NoError(t, err)

	_, ok := m.Match(candidate)
	require.False(t, ok)
}

func TestMatcherClassWildcardCapturesWholeNode(t *testing.T) {
	m, err := NewMatcher("__Type value;", astbuild.ShapeStatement)
	require.NoError(t, err)

	decl := m.Pattern().(*ast.DeclarationStatement).Decl.(*ast.TypeAndInitDeclaration)
	m.MarkClassWildcard(decl.Type.Specifier, ast.KindTypeSpecifier)

	candidate, _, err := astbuild.BuildFragment(astbuild.ShapeStatement, "vec3 value;")
	require.NoError(t, err)

	res, ok := m.Match(candidate)
	require.True(t, ok)
	n, err := res.GetNodeMatch("Type", ast.KindTypeSpecifier)
	require.NoError(t, err)
	require.Equal(t, "vec3", n.(*ast.TypeSpecifier).BuiltinName)
}

func TestMatcherExtractHook(t *testing.T) {
	calls := 0
	m, err := NewMatcher("x;", astbuild.ShapeStatement, WithExtract(func(res *MatchResult, candidate ast.Node) bool {
		calls++
		return false
	}))
	require.NoError(t, err)

	candidate, _, err := astbuild.BuildFragment(astbuild.ShapeStatement, "x;")
	require.NoError(t, err)

	_, ok := m.Match(candidate)
	require.False(t, ok)
	require.Equal(t, 1, calls)
}
