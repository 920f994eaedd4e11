package rules

import (
	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/transform"
)

// NewUnsizedArraySpecifierMove builds a rule that moves a member-level
// unsized array specifier (`float a[];`) up onto the declaration's type
// (`float[] a;`), the form some downstream compilers require, when every
// member of the declaration shares the same unsized array shape.
func NewUnsizedArraySpecifierMove() *transform.Transformation {
	t := transform.NewTransformation()
	t.AddPhase(&unsizedArraySpecifierMovePhase{})
	return t
}

type unsizedArraySpecifierMovePhase struct{ transform.BasePhase }

func (p *unsizedArraySpecifierMovePhase) Run(ctx *transform.Context) error {
	for _, n := range ctx.Root().NodesOfKind(ast.KindTypeAndInitDeclaration) {
		tid, ok := n.(*ast.TypeAndInitDeclaration)
		if !ok {
			continue // a *ast.Parameter shares this Kind
		}
		if tid.Type.Specifier.Array != nil {
			continue
		}
		if len(tid.Members) == 0 {
			continue
		}
		allUnsized := true
		for _, m := range tid.Members {
			if m.Array == nil || m.Array.Size != nil {
				allUnsized = false
				break
			}
		}
		if !allUnsized {
			continue
		}

		tid.Type.Specifier.WithArray(ast.NewArraySpecifier(nil))
		for _, m := range tid.Members {
			replacement := ast.NewDeclarationMember(ast.NewIdentifier(m.Name.Name()))
			if m.Initializer != nil {
				replacement = replacement.WithInitializer(m.Initializer.CloneInto(ctx.Root()).(ast.Expression))
			}
			if err := ast.ReplaceBy(m, replacement); err != nil {
				return err
			}
		}
	}
	return nil
}
