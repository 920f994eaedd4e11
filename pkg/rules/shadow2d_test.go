package rules

import (
	"testing"

	"github.com/glsltx/glsltx/pkg/transform"
	"github.com/stretchr/testify/require"
)

func TestShadow2DToTexture(t *testing.T) {
	src := `void main(){ shadow2D(s, c); }`

	mgr := transform.NewTransformationManager().
		RegisterTransformation(NewShadow2DToTexture())

	out, err := mgr.Transform(src)
	require.NoError(t, err)
	require.Contains(t, out, "vec4(texture(s, c))")
	require.NotContains(t, out, "shadow2D")
}

func TestShadow2DToTextureLeavesOtherCallsAlone(t *testing.T) {
	src := `void main(){ texture(s, c); }`

	mgr := transform.NewTransformationManager().
		RegisterTransformation(NewShadow2DToTexture())

	out, err := mgr.Transform(src)
	require.NoError(t, err)
	require.Contains(t, out, "texture(s, c)")
}
