package rules

import (
	"strings"
	"testing"

	"github.com/glsltx/glsltx/pkg/transform"
	"github.com/stretchr/testify/require"
)

func TestAddIfNotExists(t *testing.T) {
	src := `in vec2 bar;
void main() {}
`
	requests := []DeclarationRequest{
		{Name: "foo", Source: "in vec2 foo;"},
		{Name: "bar", Source: "in vec2 bar;"},
		{Name: "zub", Source: "uniform mat2 zub;"},
	}

	mgr := transform.NewTransformationManager().
		RegisterTransformation(NewAddIfNotExists(requests))

	out, err := mgr.Transform(src)
	require.NoError(t, err)
	require.Equal(t, 1, strings.Count(out, "in vec2 bar;"))
	require.Contains(t, out, "in vec2 foo;")
	require.Contains(t, out, "uniform mat2 zub;")
}
