package printer_test

import (
	"testing"

	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/astbuild"
	"github.com/glsltx/glsltx/pkg/printer"
	"github.com/sergi/go-diff/diffmatchpatch"
	"github.com/stretchr/testify/require"
)

func reparsePrint(t *testing.T, src string) string {
	t.Helper()
	tu, _, err := astbuild.Build(src)
	require.NoError(t, err)
	return printer.Print(tu)
}

// TestPrintIsIdempotentAcrossParse checks P4: print(parse(print(parse(s))))
// == print(parse(s)).
func TestPrintIsIdempotentAcrossParse(t *testing.T) {
	srcs := []string{
		`#version 450
uniform vec3 lightPos;
void main() {
  vec3 x = lightPos;
}
`,
		`out vec4 outColor4;
struct Light { vec3 pos; float intensity; };
uniform Light lights[4];
`,
		`void main(){ if (true) { discard; } else { return; } }`,
	}

	for _, src := range srcs {
		first := reparsePrint(t, src)
		second := reparsePrint(t, first)
		if first != second {
			dmp := diffmatchpatch.New()
			diffs := dmp.DiffMain(first, second, false)
			t.Fatalf("reprint not idempotent:\n%s", dmp.DiffPrettyText(diffs))
		}
	}
}

func TestPrintExpression(t *testing.T) {
	node, _, err := astbuild.BuildFragment(astbuild.ShapeExpression, "bar+gob")
	require.NoError(t, err)
	require.Equal(t, "bar + gob", printer.PrintExpression(node.(ast.Expression)))
}
