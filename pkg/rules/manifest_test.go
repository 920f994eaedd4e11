package rules

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseManifestAndBuild(t *testing.T) {
	m, err := ParseManifest([]byte("rules:\n  - shadow2d-to-texture\n  - out-declaration-location\n"))
	require.NoError(t, err)
	require.Equal(t, []string{"shadow2d-to-texture", "out-declaration-location"}, m.Rules)

	mgr, err := Build(m, nil)
	require.NoError(t, err)

	out, err := mgr.Transform(`void main(){ shadow2D(s, c); }`)
	require.NoError(t, err)
	require.Contains(t, out, "vec4(texture(s, c))")
}

func TestBuildUnknownRule(t *testing.T) {
	m := &Manifest{Rules: []string{"does-not-exist"}}
	_, err := Build(m, nil)
	require.Error(t, err)
}

func TestBuildAddIfNotExists(t *testing.T) {
	m := &Manifest{Rules: []string{"add-if-not-exists"}}
	requests := []DeclarationRequest{{Name: "foo", Source: "in vec2 foo;"}}

	mgr, err := Build(m, requests)
	require.NoError(t, err)

	out, err := mgr.Transform(`void main() {}`)
	require.NoError(t, err)
	require.Contains(t, out, "in vec2 foo;")
}

func TestNamesIncludesAddIfNotExists(t *testing.T) {
	require.Contains(t, Names(), "add-if-not-exists")
	require.Contains(t, Names(), "printf-extraction")
}
