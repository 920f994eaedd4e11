package rules

import (
	"testing"

	"github.com/glsltx/glsltx/pkg/transform"
	"github.com/stretchr/testify/require"
)

func TestPrintfExtraction(t *testing.T) {
	src := `void main(){ printf("Hello",5,foo,bar+gob); }`

	pe := NewPrintfExtraction()
	mgr := transform.NewTransformationManager().RegisterTransformation(pe.Transformation)

	out, err := mgr.Transform(src)
	require.NoError(t, err)
	require.Contains(t, out, "PrintfOutputStream")
	require.Contains(t, out, "restrict buffer")
	require.NotContains(t, out, "printf(")

	require.Len(t, pe.Jobs, 1)
	require.Equal(t, "Hello", pe.Jobs[0].Format)
	require.Equal(t, []string{"5", "foo", "bar + gob"}, pe.Jobs[0].Args)
}

func TestPrintfExtractionResetsJobsBetweenRuns(t *testing.T) {
	src := `void main(){ printf("x",1); }`

	pe := NewPrintfExtraction()
	mgr := transform.NewTransformationManager().RegisterTransformation(pe.Transformation)

	_, err := mgr.Transform(src)
	require.NoError(t, err)
	require.Len(t, pe.Jobs, 1)

	_, err = mgr.Transform(`void main(){}`)
	require.NoError(t, err)
	require.Empty(t, pe.Jobs)
}
