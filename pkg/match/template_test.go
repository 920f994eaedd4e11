package match

import (
	"testing"

	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/astbuild"
	"github.com/stretchr/testify/require"
)

func TestTemplateIdentifierReplacement(t *testing.T) {
	tmpl, err := WithStatement("__name = 0;")
	require.NoError(t, err)
	tmpl.MarkIdentifierReplacement("name")

	root := astbuild.DEFAULT.NewRoot()
	result, err := tmpl.Instantiate(root, map[string]interface{}{"name": "counter"})
	require.NoError(t, err)

	stmt := result.(*ast.ExpressionStatement)
	bin := stmt.Expr.(*ast.BinaryExpression)
	ref := bin.Left.(*ast.ReferenceExpression)
	require.Equal(t, "counter", ref.Name.Name())
	require.NoError(t, root.Verify())
}

func TestTemplateLocalReplacement(t *testing.T) {
	tmpl, err := WithStatement("x = __value;")
	require.NoError(t, err)
	tmpl.MarkLocalReplacement("value", ast.KindLiteralExpression)

	root := astbuild.DEFAULT.NewRoot()
	literal := ast.NewLiteralExpression(ast.LiteralFloat, "1.0")
	result, err := tmpl.Instantiate(root, map[string]interface{}{"value": literal})
	require.NoError(t, err)

	stmt := result.(*ast.ExpressionStatement)
	bin := stmt.Expr.(*ast.BinaryExpression)
	lit := bin.Right.(*ast.LiteralExpression)
	require.Equal(t, "1.0", lit.Text)
	require.NoError(t, root.Verify())
}

func TestTemplateMissingHoleErrors(t *testing.T) {
	tmpl, err := WithStatement("__name = 0;")
	require.NoError(t, err)
	tmpl.MarkIdentifierReplacement("name")

	root := astbuild.DEFAULT.NewRoot()
	_, err = tmpl.Instantiate(root, map[string]interface{}{})
	require.Error(t, err)
	var holeErr *TemplateHoleError
	require.ErrorAs(t, err, &holeErr)
}

func TestTemplateWrongKindErrors(t *testing.T) {
	tmpl, err := WithStatement("x = __value;")
	require.NoError(t, err)
	tmpl.MarkLocalReplacement("value", ast.KindLiteralExpression)

	root := astbuild.DEFAULT.NewRoot()
	wrongKind := ast.NewReferenceExpression(ast.NewIdentifier("y"))
	_, err = tmpl.Instantiate(root, map[string]interface{}{"value": wrongKind})
	require.Error(t, err)
}
