// Package match implements the Matcher/Template subsystem:
// placeholder-bearing GLSL fragments compiled once, then used either to
// structurally match candidate subtrees (Matcher) or to instantiate a
// substituted copy (Template).
package match

import (
	"strings"

	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/astbuild"
)

// DefaultPlaceholderPrefix is the placeholder spelling prefix used when no
// Option overrides it, e.g. "__name".
const DefaultPlaceholderPrefix = "__"

// MatchResult holds the placeholder captures produced by a successful
// Matcher.Match: a node captured at a class-wildcard position, or a string
// captured at an identifier-wildcard position.
type MatchResult struct {
	nodes   map[string]ast.Node
	strings map[string]string
}

func newMatchResult() *MatchResult {
	return &MatchResult{nodes: map[string]ast.Node{}, strings: map[string]string{}}
}

func (r *MatchResult) bindNode(name string, n ast.Node) bool {
	if existing, ok := r.nodes[name]; ok {
		return structurallyEqual(existing, n)
	}
	r.nodes[name] = n
	return true
}

func (r *MatchResult) bindString(name, s string) bool {
	if existing, ok := r.strings[name]; ok {
		return existing == s
	}
	r.strings[name] = s
	return true
}

// GetNodeMatch returns the node captured under name, requiring it to be of
// expectedKind.
func (r *MatchResult) GetNodeMatch(name string, expectedKind ast.Kind) (ast.Node, error) {
	n, ok := r.nodes[name]
	if !ok {
		return nil, newShapeMismatch("no node captured for placeholder %q", name)
	}
	if n.Kind() != expectedKind {
		return nil, newShapeMismatch("placeholder %q captured %s, expected %s", name, n.Kind(), expectedKind)
	}
	return n, nil
}

// GetStringDataMatch returns the string captured under name.
func (r *MatchResult) GetStringDataMatch(name string) (string, error) {
	s, ok := r.strings[name]
	if !ok {
		return "", newShapeMismatch("no string captured for placeholder %q", name)
	}
	return s, nil
}

// ExtractFunc is the matchesExtract hook: a post-structural-match predicate
// (e.g. "the captured declaration must carry an `out` storage qualifier").
type ExtractFunc func(result *MatchResult, candidate ast.Node) bool

// Option configures a Matcher or Template.
type Option func(*options)

type options struct {
	prefix  string
	extract ExtractFunc
}

// WithPlaceholderPrefix overrides the default "__" placeholder prefix.
func WithPlaceholderPrefix(prefix string) Option {
	return func(o *options) { o.prefix = prefix }
}

// WithExtract installs the matchesExtract post-condition hook.
func WithExtract(f ExtractFunc) Option {
	return func(o *options) { o.extract = f }
}

// Matcher compiles a placeholder-bearing GLSL fragment once and matches it
// against candidate subtrees of the same parse shape.
type Matcher struct {
	pattern        ast.Node
	root           *ast.Root
	prefix         string
	extract        ExtractFunc
	classWildcards map[ast.Node]ast.Kind
}

// NewMatcher parses src as the given shape with placeholders left intact,
// producing a reusable pattern tree.
func NewMatcher(src string, shape astbuild.Shape, opts ...Option) (*Matcher, error) {
	o := &options{prefix: DefaultPlaceholderPrefix}
	for _, opt := range opts {
		opt(o)
	}
	pattern, root, err := astbuild.BuildFragment(shape, src)
	if err != nil {
		return nil, err
	}
	return &Matcher{
		pattern:        pattern,
		root:           root,
		prefix:         o.prefix,
		extract:        o.extract,
		classWildcards: map[ast.Node]ast.Kind{},
	}, nil
}

// Pattern returns the compiled pattern tree, so callers can locate an
// exemplar node to pass to MarkClassWildcard.
func (m *Matcher) Pattern() ast.Node { return m.pattern }

// Root returns the Root the pattern was parsed into, so callers can locate
// an exemplar node via its indices (e.g. Root().NodeOfKindOne) instead of
// walking Pattern() by hand.
func (m *Matcher) Root() *ast.Root { return m.root }

// MarkClassWildcard registers exemplar's position in the pattern as
// matching any candidate node of kind, regardless of the exemplar's own
// internal contents. If exemplar is (or wraps) a placeholder identifier,
// the candidate subtree found there is captured under that placeholder's
// name; otherwise it matches structurally but captures nothing.
func (m *Matcher) MarkClassWildcard(exemplar ast.Node, kind ast.Kind) *Matcher {
	m.classWildcards[exemplar] = kind
	return m
}

func (m *Matcher) placeholderName(name string) (string, bool) {
	if strings.HasPrefix(name, m.prefix) && len(name) > len(m.prefix) {
		return strings.TrimPrefix(name, m.prefix), true
	}
	return "", false
}

// wildcardCaptureName finds the placeholder name to capture a class
// wildcard under, by looking for a placeholder Identifier anywhere inside
// the exemplar node (e.g. a dummy `float __name;` declaration's member
// name, or the type name of a dummy reference type).
func (m *Matcher) wildcardCaptureName(exemplar ast.Node) (string, bool) {
	if id, ok := exemplar.(*ast.Identifier); ok {
		return m.placeholderName(id.Name())
	}
	for _, c := range exemplar.Children() {
		if name, ok := m.wildcardCaptureName(c); ok {
			return name, ok
		}
	}
	return "", false
}

// Match attempts to match candidate against the compiled pattern, returning
// the capture set on success.
func (m *Matcher) Match(candidate ast.Node) (*MatchResult, bool) {
	res := newMatchResult()
	if !m.matchNode(m.pattern, candidate, res) {
		return nil, false
	}
	if m.extract != nil && !m.extract(res, candidate) {
		return nil, false
	}
	return res, true
}

func (m *Matcher) matchNode(pattern, candidate ast.Node, res *MatchResult) bool {
	if pattern == nil || candidate == nil {
		return pattern == nil && candidate == nil
	}

	if kind, ok := m.classWildcards[pattern]; ok {
		if candidate.Kind() != kind {
			return false
		}
		if name, ok := m.wildcardCaptureName(pattern); ok {
			return res.bindNode(name, candidate)
		}
		return true
	}

	if id, ok := pattern.(*ast.Identifier); ok {
		if name, ok := m.placeholderName(id.Name()); ok {
			cid, ok := candidate.(*ast.Identifier)
			if !ok {
				return false
			}
			return res.bindString(name, cid.Name())
		}
	}

	if pattern.Kind() != candidate.Kind() {
		return false
	}
	if !leafEqual(pattern, candidate) {
		return false
	}

	pc, cc := pattern.Children(), candidate.Children()
	if len(pc) != len(cc) {
		return false
	}
	for i := range pc {
		if !m.matchNode(pc[i], cc[i], res) {
			return false
		}
	}
	return true
}
