package match

import (
	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/astbuild"
)

// holeKind tags what kind of substitution a hole accepts.
type holeKind int

const (
	holeLocal holeKind = iota
	holeIdentifier
)

type hole struct {
	kind holeKind
	node ast.Node // position within the pattern tree (identity key into cloneMap)
	want ast.Kind // only meaningful for holeLocal
}

// Template compiles a placeholder-bearing GLSL fragment once, then
// instantiates fresh, substituted copies of it into a target Root.
type Template struct {
	pattern ast.Node
	root    *ast.Root
	prefix  string
	holes   map[string]hole
}

// NewTemplate parses src as the given shape, leaving placeholders intact
// for later substitution.
func NewTemplate(src string, shape astbuild.Shape, opts ...Option) (*Template, error) {
	o := &options{prefix: DefaultPlaceholderPrefix}
	for _, opt := range opts {
		opt(o)
	}
	pattern, root, err := astbuild.BuildFragment(shape, src)
	if err != nil {
		return nil, err
	}
	return &Template{pattern: pattern, root: root, prefix: o.prefix, holes: map[string]hole{}}, nil
}

// WithExternalDeclaration, WithStatement, and WithExpression are
// convenience factories for the three most common shapes.
func WithExternalDeclaration(src string, opts ...Option) (*Template, error) {
	return NewTemplate(src, astbuild.ShapeExternalDeclaration, opts...)
}

func WithStatement(src string, opts ...Option) (*Template, error) {
	return NewTemplate(src, astbuild.ShapeStatement, opts...)
}

func WithExpression(src string, opts ...Option) (*Template, error) {
	return NewTemplate(src, astbuild.ShapeExpression, opts...)
}

// Pattern returns the compiled pattern tree.
func (t *Template) Pattern() ast.Node { return t.pattern }

// Root returns the Root the pattern was parsed into, so callers can locate
// a hole position via its indices (e.g. a whole-node replacement target
// that carries no placeholder identifier of its own) instead of walking
// Pattern() by hand.
func (t *Template) Root() *ast.Root { return t.root }

func (t *Template) findPlaceholder(name string) *ast.Identifier {
	target := t.prefix + name
	var found *ast.Identifier
	var walk func(n ast.Node)
	walk = func(n ast.Node) {
		if found != nil || n == nil {
			return
		}
		if id, ok := n.(*ast.Identifier); ok && id.Name() == target {
			found = id
			return
		}
		for _, c := range n.Children() {
			walk(c)
		}
	}
	walk(t.pattern)
	return found
}

// MarkLocalReplacementNode registers holeNode (a node identity within the
// compiled pattern tree) as accepting a substitution of the declared kind.
func (t *Template) MarkLocalReplacementNode(name string, holeNode ast.Node, kind ast.Kind) *Template {
	t.holes[name] = hole{kind: holeLocal, node: holeNode, want: kind}
	return t
}

// MarkLocalReplacement locates the placeholder identifier spelled
// prefix+name and registers its immediate containing node — the smallest
// node wrapping the placeholder, e.g. the ReferenceExpression it is the
// Name of — as the hole, accepting a substitution of the declared kind.
func (t *Template) MarkLocalReplacement(name string, kind ast.Kind) *Template {
	id := t.findPlaceholder(name)
	if id == nil {
		return t
	}
	return t.MarkLocalReplacementNode(name, id.Parent(), kind)
}

// MarkIdentifierReplacement registers the placeholder identifier spelled
// prefix+name as a hole whose name is supplied at instantiation time,
// either as a plain string or as a new *ast.Identifier.
func (t *Template) MarkIdentifierReplacement(name string) *Template {
	id := t.findPlaceholder(name)
	if id == nil {
		return t
	}
	t.holes[name] = hole{kind: holeIdentifier, node: id}
	return t
}

// Instantiate clones the pattern into target with every registered hole
// filled from values, attaching the result to target. Instantiation is
// atomic: either every hole is validated and filled and the cloned tree is
// returned attached, or an error is returned before target is touched.
func (t *Template) Instantiate(target *ast.Root, values map[string]interface{}) (ast.Node, error) {
	clone := t.pattern.CloneInto(target)
	cm := cloneMap(t.pattern, clone)

	type plannedReplace struct {
		cloneNode ast.Node
		value     ast.Node
	}
	type plannedRename struct {
		cloneIdent *ast.Identifier
		name       string
	}
	var replaces []plannedReplace
	var renames []plannedRename

	for name, h := range t.holes {
		v, ok := values[name]
		if !ok {
			return nil, newTemplateHoleError("missing substitution value for hole %q", name)
		}
		cloneNode, ok := cm[h.node]
		if !ok {
			return nil, newTemplateHoleError("hole %q is not part of the compiled pattern", name)
		}
		switch h.kind {
		case holeLocal:
			n, ok := v.(ast.Node)
			if !ok {
				return nil, newTemplateHoleError("hole %q expects an ast.Node substitution, got %T", name, v)
			}
			if n.Kind() != h.want {
				return nil, newTemplateHoleError("hole %q expects kind %s, got %s", name, h.want, n.Kind())
			}
			replaces = append(replaces, plannedReplace{cloneNode: cloneNode, value: n})
		case holeIdentifier:
			switch val := v.(type) {
			case string:
				renames = append(renames, plannedRename{cloneIdent: cloneNode.(*ast.Identifier), name: val})
			case *ast.Identifier:
				renames = append(renames, plannedRename{cloneIdent: cloneNode.(*ast.Identifier), name: val.Name()})
			default:
				return nil, newTemplateHoleError("hole %q expects a string or *ast.Identifier, got %T", name, v)
			}
		}
	}

	root := clone
	for _, pr := range replaces {
		value := pr.value
		if value.Root() != nil {
			value = value.CloneInto(target)
		}
		if pr.cloneNode == clone {
			root = value
			continue
		}
		if err := ast.ReplaceBy(pr.cloneNode, value); err != nil {
			return nil, newTemplateHoleError("replacing hole: %v", err)
		}
	}
	for _, pn := range renames {
		pn.cloneIdent.SetName(pn.name)
	}

	return ast.AttachFragment(target, root), nil
}

