package rules

import (
	"testing"

	"github.com/glsltx/glsltx/pkg/transform"
	"github.com/stretchr/testify/require"
)

func TestUniformBlockMemberRemoval(t *testing.T) {
	src := `#version 450
uniform vec3 lightPos;
uniform float exposure;
layout(std140) uniform Params {
    vec3 lightPos;
    float gamma;
};
void main() {
}
`
	mgr := transform.NewTransformationManager().
		RegisterTransformation(NewUniformBlockMemberRemoval())

	out, err := mgr.Transform(src)
	require.NoError(t, err)
	require.NotContains(t, out, "uniform vec3 lightPos;")
	require.Contains(t, out, "uniform float exposure;")
	require.Contains(t, out, "Params")
}

func TestUniformBlockMemberRemovalNoBlocks(t *testing.T) {
	src := `#version 450
uniform float exposure;
void main() {
}
`
	mgr := transform.NewTransformationManager().
		RegisterTransformation(NewUniformBlockMemberRemoval())

	out, err := mgr.Transform(src)
	require.NoError(t, err)
	require.Contains(t, out, "uniform float exposure;")
}
