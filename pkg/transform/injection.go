package transform

import "github.com/glsltx/glsltx/pkg/ast"

type pointKind int

const (
	pointBeforeVersion pointKind = iota
	pointBeforeExtensions
	pointBeforeDirectives
	pointBeforeDeclarations
	pointBeforeEOF
	pointEndOfFunctionBody
	pointBeforeFunctionBody
)

// InjectionPoint names a unique insertion slot in the translation unit's
// top-level child sequence, or inside a named function's body.
type InjectionPoint struct {
	kind     pointKind
	funcName string
}

var (
	BeforeVersion      = InjectionPoint{kind: pointBeforeVersion}
	BeforeExtensions   = InjectionPoint{kind: pointBeforeExtensions}
	BeforeDirectives   = InjectionPoint{kind: pointBeforeDirectives}
	BeforeDeclarations = InjectionPoint{kind: pointBeforeDeclarations}
	BeforeEOF          = InjectionPoint{kind: pointBeforeEOF}
)

// EndOfFunctionBody targets the end of the named function's body.
func EndOfFunctionBody(name string) InjectionPoint {
	return InjectionPoint{kind: pointEndOfFunctionBody, funcName: name}
}

// BeforeFunctionBody targets the start of the named function's body.
func BeforeFunctionBody(name string) InjectionPoint {
	return InjectionPoint{kind: pointBeforeFunctionBody, funcName: name}
}

// declClass buckets a top-level declaration for BEFORE_EXTENSIONS /
// BEFORE_DIRECTIVES / BEFORE_DECLARATIONS ordering. Extensions and
// directives are assumed to cluster contiguously at the front of the
// sequence, as idiomatic GLSL source writes them.
type declClass int

const (
	classExtension declClass = iota
	classDirective
	classDeclaration
)

func classify(d ast.ExternalDeclaration) declClass {
	switch d.(type) {
	case *ast.ExtensionDirective:
		return classExtension
	case *ast.Pragma, *ast.LayoutDefaults:
		return classDirective
	default:
		return classDeclaration
	}
}

// topLevelIndex computes the Decls index a fresh insertion at point should
// use, given the current sequence. Multiple insertions at the same point
// within one run are kept in call order by the caller advancing a cursor
// past what it just inserted (see Context.InjectNodes).
func topLevelIndex(tu *ast.TranslationUnit, point InjectionPoint) int {
	switch point.kind {
	case pointBeforeVersion, pointBeforeExtensions:
		return 0
	case pointBeforeDirectives:
		i := 0
		for i < len(tu.Decls) && classify(tu.Decls[i]) == classExtension {
			i++
		}
		return i
	case pointBeforeDeclarations:
		i := 0
		for i < len(tu.Decls) && classify(tu.Decls[i]) != classDeclaration {
			i++
		}
		return i
	case pointBeforeEOF:
		return len(tu.Decls)
	default:
		return len(tu.Decls)
	}
}

// findFunctionDefinition locates the FunctionDefinition named name among
// tu's top-level declarations.
func findFunctionDefinition(tu *ast.TranslationUnit, name string) *ast.FunctionDefinition {
	for _, d := range tu.Decls {
		if fd, ok := d.(*ast.FunctionDefinition); ok && fd.Name() == name {
			return fd
		}
	}
	return nil
}
