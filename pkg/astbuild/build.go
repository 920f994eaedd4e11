// Package astbuild implements the AST-builder adapter: it takes GLSL
// source, drives pkg/glslparse over it, and returns the resulting typed
// AST attached to a freshly created Root whose three index policies are
// chosen by a RootSupplier.
//
// In this implementation pkg/glslparse already constructs pkg/ast nodes
// directly rather than an intermediate parse tree (see pkg/glslparse's
// package doc), so the adapter's visitor step collapses to nothing: its
// remaining job is root construction and index-policy selection.
package astbuild

import (
	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/glsllex"
	"github.com/glsltx/glsltx/pkg/glslparse"
)

// RootSupplier chooses the index policy for each of a Root's three indices
// independently.
type RootSupplier struct {
	Name               string
	IdentifierPolicy   ast.IndexPolicy
	NodePolicy         ast.IndexPolicy
	ExternalDeclPolicy ast.IndexPolicy
}

// NewRoot creates a Root configured by rs.
func (rs RootSupplier) NewRoot() *ast.Root {
	return ast.NewRootWithPolicies(rs.IdentifierPolicy, rs.NodePolicy, rs.ExternalDeclPolicy)
}

var (
	// DEFAULT indexes everything under PolicyExact: stable insertion order
	// everywhere, the safest default for deterministic output.
	DEFAULT = RootSupplier{Name: "DEFAULT", IdentifierPolicy: ast.PolicyExact, NodePolicy: ast.PolicyExact, ExternalDeclPolicy: ast.PolicyExact}

	// EXACT_UNORDERED_ED_EXACT keeps the identifier and external-declaration
	// indices exact but lets the (typically much larger and more
	// heavily-churned) node-kind index go unordered, trading determinism of
	// NodesOfKind iteration order for cheaper mutation under heavy rewriting.
	EXACT_UNORDERED_ED_EXACT = RootSupplier{Name: "EXACT_UNORDERED_ED_EXACT", IdentifierPolicy: ast.PolicyExact, NodePolicy: ast.PolicyUnordered, ExternalDeclPolicy: ast.PolicyExact}

	// UNORDERED indexes everything unordered; cheapest to mutate, least
	// deterministic iteration order. Appropriate for one-shot transforms
	// that never iterate an index for output ordering.
	UNORDERED = RootSupplier{Name: "UNORDERED", IdentifierPolicy: ast.PolicyUnordered, NodePolicy: ast.PolicyUnordered, ExternalDeclPolicy: ast.PolicyUnordered}
)

// Option configures a Build call.
type Option func(*config)

type config struct {
	rootSupplier RootSupplier
	parseOpts    []glslparse.Option
}

// WithRootSupplier selects the index-policy supplier (default DEFAULT).
func WithRootSupplier(rs RootSupplier) Option { return func(c *config) { c.rootSupplier = rs } }

// WithTokenFilter installs a lexer token filter for the underlying parse.
func WithTokenFilter(f glsllex.TokenFilter) Option {
	return func(c *config) { c.parseOpts = append(c.parseOpts, glslparse.WithTokenFilter(f)) }
}

// WithStrategy sets the parser's SLL/LL retry strategy for the underlying
// parse.
func WithStrategy(s glslparse.Strategy) Option {
	return func(c *config) { c.parseOpts = append(c.parseOpts, glslparse.WithStrategy(s)) }
}

// WithThrowParseErrors controls whether Build returns a parse error or a
// best-effort partial tree.
func WithThrowParseErrors(throw bool) Option {
	return func(c *config) { c.parseOpts = append(c.parseOpts, glslparse.WithThrowParseErrors(throw)) }
}

// Build parses src as a full translation unit and attaches the resulting
// AST to a freshly created Root, per the supplied options' RootSupplier.
func Build(src string, opts ...Option) (*ast.TranslationUnit, *ast.Root, error) {
	c := &config{rootSupplier: DEFAULT}
	for _, o := range opts {
		o(c)
	}
	root := c.rootSupplier.NewRoot()
	tu, err := glslparse.ParseTranslationUnit(root, src, c.parseOpts...)
	if err != nil {
		return tu, root, err
	}
	return tu, root, nil
}

// Shape selects which grammar rule BuildFragment parses its source with.
type Shape int

const (
	ShapeExternalDeclaration Shape = iota
	ShapeStatement
	ShapeCompoundStatement
	ShapeExpression
)

// BuildFragment parses src as the given shape and attaches the result to a
// freshly created Root, mirroring a standalone-node parse. The
// returned Node is whichever concrete AST type the shape's grammar rule
// produces (ast.ExternalDeclaration, ast.Statement, ast.Expression, or
// *ast.CompoundStatement).
func BuildFragment(shape Shape, src string, opts ...Option) (ast.Node, *ast.Root, error) {
	c := &config{rootSupplier: DEFAULT}
	for _, o := range opts {
		o(c)
	}
	root := c.rootSupplier.NewRoot()
	var (
		n   ast.Node
		err error
	)
	switch shape {
	case ShapeExternalDeclaration:
		var ed ast.ExternalDeclaration
		ed, err = glslparse.ParseExternalDeclaration(root, src, c.parseOpts...)
		if ed != nil {
			n = ed
		}
	case ShapeStatement:
		var st ast.Statement
		st, err = glslparse.ParseStatement(root, src, c.parseOpts...)
		if st != nil {
			n = st
		}
	case ShapeCompoundStatement:
		var cs *ast.CompoundStatement
		cs, err = glslparse.ParseCompoundStatement(root, src, c.parseOpts...)
		if cs != nil {
			n = cs
		}
	case ShapeExpression:
		var ex ast.Expression
		ex, err = glslparse.ParseExpression(root, src, c.parseOpts...)
		if ex != nil {
			n = ex
		}
	}
	return n, root, err
}
