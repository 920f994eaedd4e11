package transform

import (
	"strings"

	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/astbuild"
	"github.com/glsltx/glsltx/pkg/match"
	"github.com/pkg/errors"
)

// Path is a compiled, reusable xpath-like node selector: a "/"-separated
// sequence of Kind names. Query returns every node of the last kind whose
// ancestor chain contains a node of each preceding kind, nearest first, in
// the order given.
type Path struct {
	kinds []ast.Kind
}

// CompilePath parses expr once, for reuse across runs. A Phase compiles its
// paths during Init.
func CompilePath(expr string) (*Path, error) {
	segs := strings.Split(strings.Trim(expr, "/"), "/")
	kinds := make([]ast.Kind, 0, len(segs))
	for _, s := range segs {
		k, ok := ast.KindByName(s)
		if !ok {
			return nil, errors.Errorf("compile path: unknown node kind %q", s)
		}
		kinds = append(kinds, k)
	}
	return &Path{kinds: kinds}, nil
}

// Query evaluates the path against root, returning every attached node of
// the path's final Kind whose ancestor chain matches the preceding
// segments in order.
func (p *Path) Query(root *ast.Root) []ast.Node {
	if len(p.kinds) == 0 {
		return nil
	}
	candidates := root.NodesOfKind(p.kinds[len(p.kinds)-1])
	if len(p.kinds) == 1 {
		return candidates
	}
	var out []ast.Node
	for _, n := range candidates {
		if matchesAncestorChain(n, p.kinds[:len(p.kinds)-1]) {
			out = append(out, n)
		}
	}
	return out
}

// matchesAncestorChain reports whether n has, walking strictly upward, a
// node of each kind in wanted (searched nearest-ancestor-first, allowing
// unrelated ancestors between matched ones).
func matchesAncestorChain(n ast.Node, wanted []ast.Kind) bool {
	i := len(wanted) - 1
	cur := n
	for i >= 0 {
		anc := ast.GetAncestor(cur, wanted[i])
		if anc == nil {
			return false
		}
		cur = anc
		i--
	}
	return true
}

// Pattern is a compiled Matcher tagged with a rule identifier for
// diagnostics.
type Pattern struct {
	RuleID  string
	Matcher *match.Matcher
}

// CompilePattern parses fragment as shape with placeholders left intact,
// for reuse across runs.
func CompilePattern(shape astbuild.Shape, fragment, ruleID string, opts ...match.Option) (*Pattern, error) {
	m, err := match.NewMatcher(fragment, shape, opts...)
	if err != nil {
		return nil, err
	}
	return &Pattern{RuleID: ruleID, Matcher: m}, nil
}
