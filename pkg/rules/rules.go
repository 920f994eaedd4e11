// Package rules implements a set of concrete built-in transformations as
// testable scenarios, each grounded on the matching Transformation/Phase
// machinery in pkg/transform. A YAML manifest (see manifest.go) names
// which of them run, and in what phase-collector order, for a given
// TransformationManager.
package rules

import "github.com/glsltx/glsltx/pkg/ast"

// typeAndInitWithStorage is a small shared guard: every positional rule below only
// touches single top-level TypeAndInitDeclarations carrying a given storage
// keyword (e.g. "uniform", "out").
func typeAndInitWithStorage(d ast.ExternalDeclaration, storage string) (*ast.TypeAndInitDeclaration, bool) {
	de, ok := d.(*ast.DeclarationExternal)
	if !ok {
		return nil, false
	}
	tid, ok := de.Decl.(*ast.TypeAndInitDeclaration)
	if !ok {
		return nil, false
	}
	if tid.Type.Qualifier == nil || !tid.Type.Qualifier.HasStorage(storage) {
		return nil, false
	}
	return tid, true
}
