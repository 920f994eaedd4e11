package rules

import (
	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/transform"
)

// NewShadow2DToTexture builds a rule that rewrites the deprecated
// `shadow2D(sampler, coord)` builtin to the modern
// `vec4(texture(sampler, coord))` form, preserving the call's arguments
// exactly (they may themselves be arbitrary expressions).
func NewShadow2DToTexture() *transform.Transformation {
	t := transform.NewTransformation()
	t.AddPhase(&shadow2DPhase{})
	return t
}

type shadow2DPhase struct{ transform.BasePhase }

func (p *shadow2DPhase) Run(ctx *transform.Context) error {
	for _, n := range ctx.Root().NodesOfKind(ast.KindFunctionCallExpression) {
		call := n.(*ast.FunctionCallExpression)
		if call.Callee.Name() != "shadow2D" || len(call.Args) != 2 {
			continue
		}
		args := make([]ast.Expression, len(call.Args))
		for i, a := range call.Args {
			args[i] = a.CloneInto(ctx.Root()).(ast.Expression)
		}
		inner := ast.NewFunctionCallExpression(ast.NewIdentifier("texture"), args...)
		outer := ast.NewFunctionCallExpression(ast.NewIdentifier("vec4"), inner)
		if err := ast.ReplaceBy(call, outer); err != nil {
			return err
		}
	}
	return nil
}
