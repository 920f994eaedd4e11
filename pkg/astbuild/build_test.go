package astbuild

import (
	"testing"

	"github.com/glsltx/glsltx/pkg/ast"
)

func TestBuildAttachesToRoot(t *testing.T) {
	src := `#version 330 core
uniform vec4 color;
void main() {
	gl_FragColor = color;
}
`
	tu, root, err := Build(src)
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if tu.Root() != root {
		t.Fatalf("translation unit root = %p, want %p", tu.Root(), root)
	}
	if err := root.Verify(); err != nil {
		t.Fatalf("Verify: %v", err)
	}
	ids := root.Identifiers("color")
	if len(ids) == 0 {
		t.Fatalf("expected at least one identifier named color")
	}
}

func TestRootSupplierChoosesPolicies(t *testing.T) {
	_, root, err := Build("void main() {}\n", WithRootSupplier(EXACT_UNORDERED_ED_EXACT))
	if err != nil {
		t.Fatalf("Build: %v", err)
	}
	if len(root.NodesOfKind(ast.KindFunctionDefinition)) != 1 {
		t.Fatalf("expected exactly one function definition")
	}
}

func TestBuildFragmentStatement(t *testing.T) {
	n, root, err := BuildFragment(ShapeStatement, "x = 1 + 2;")
	if err != nil {
		t.Fatalf("BuildFragment: %v", err)
	}
	if n == nil {
		t.Fatalf("expected a non-nil statement")
	}
	if n.Root() != root {
		t.Fatalf("fragment not attached to returned root")
	}
}

func TestBuildFragmentExpression(t *testing.T) {
	n, _, err := BuildFragment(ShapeExpression, "a.xyz * 2.0")
	if err != nil {
		t.Fatalf("BuildFragment: %v", err)
	}
	if _, ok := n.(ast.Expression); !ok {
		t.Fatalf("expected an Expression, got %T", n)
	}
}
