package rules

import (
	"testing"

	"github.com/glsltx/glsltx/pkg/transform"
	"github.com/stretchr/testify/require"
)

func TestUnsizedArraySpecifierMove(t *testing.T) {
	src := `int foo[], bar[];`

	mgr := transform.NewTransformationManager().
		RegisterTransformation(NewUnsizedArraySpecifierMove())

	out, err := mgr.Transform(src)
	require.NoError(t, err)
	require.Contains(t, out, "int[] foo, bar;")
}

func TestUnsizedArraySpecifierMoveLeavesSizedArraysAlone(t *testing.T) {
	src := `int[7] foo[5];`

	mgr := transform.NewTransformationManager().
		RegisterTransformation(NewUnsizedArraySpecifierMove())

	out, err := mgr.Transform(src)
	require.NoError(t, err)
	require.Contains(t, out, "int[7] foo[5];")
}
