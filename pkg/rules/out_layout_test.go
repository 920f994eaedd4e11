package rules

import (
	"testing"

	"github.com/glsltx/glsltx/pkg/transform"
	"github.com/stretchr/testify/require"
)

func TestOutDeclarationLocation(t *testing.T) {
	src := `out vec4 outColor4; out vec3 outColor0; out vec3 outColor10, fooBar;`

	mgr := transform.NewTransformationManager().
		RegisterTransformation(NewOutDeclarationLocation())

	out, err := mgr.Transform(src)
	require.NoError(t, err)
	require.Contains(t, out, "out layout(location = 4) vec4 outColor4;")
	require.Contains(t, out, "out layout(location = 0) vec3 outColor0;")
	require.Contains(t, out, "out vec3 outColor10, fooBar;")
}

func TestOutDeclarationLocationSkipsExistingLayout(t *testing.T) {
	src := `out layout(location = 2) vec4 outColor4;`

	mgr := transform.NewTransformationManager().
		RegisterTransformation(NewOutDeclarationLocation())

	out, err := mgr.Transform(src)
	require.NoError(t, err)
	require.Contains(t, out, "layout(location = 2)")
	require.NotContains(t, out, "location = 4")
}
