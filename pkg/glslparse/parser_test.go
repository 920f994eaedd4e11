package glslparse

import (
	"testing"

	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/stretchr/testify/require"
)

func TestParseTranslationUnit(t *testing.T) {
	root := ast.NewRoot(ast.PolicyExact)
	tu, err := ParseTranslationUnit(root, `#version 450
uniform vec3 lightPos;
void main() {
  vec3 x = lightPos;
}
`)
	require.NoError(t, err)
	require.NotNil(t, tu.Version)
	require.Equal(t, 450, tu.Version.Number)
	require.Len(t, tu.Decls, 2)
}

func TestParseExpression(t *testing.T) {
	root := ast.NewRoot(ast.PolicyExact)
	expr, err := ParseExpression(root, "bar + gob * 2")
	require.NoError(t, err)
	require.IsType(t, &ast.BinaryExpression{}, expr)
}

func TestParseStatement(t *testing.T) {
	root := ast.NewRoot(ast.PolicyExact)
	stmt, err := ParseStatement(root, "if (true) { discard; } else { return; }")
	require.NoError(t, err)
	require.IsType(t, &ast.SelectionStatement{}, stmt)
}
