package rules

import (
	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/transform"
)

// NewUniformBlockMemberRemoval builds a rule that removes a redundant
// uniform declaration: once a uniform interface block declares a member,
// a same-named top-level `uniform` declaration is redundant (and would
// shadow the block member), so it is removed.
func NewUniformBlockMemberRemoval() *transform.Transformation {
	t := transform.NewTransformation()
	t.AddPhase(&uniformBlockMemberRemovalPhase{})
	return t
}

type uniformBlockMemberRemovalPhase struct{ transform.BasePhase }

func (p *uniformBlockMemberRemovalPhase) Run(ctx *transform.Context) error {
	blockMembers := blockMemberNames(ctx.Root())
	if len(blockMembers) == 0 {
		return nil
	}
	// Snapshot Decls before mutating: DetachAndDelete below shrinks the
	// live slice as it goes.
	decls := append([]ast.ExternalDeclaration(nil), ctx.TranslationUnit().Decls...)
	for _, d := range decls {
		tid, ok := typeAndInitWithStorage(d, "uniform")
		if !ok {
			continue
		}
		members := append([]*ast.DeclarationMember(nil), tid.Members...)
		for _, m := range members {
			if !blockMembers[m.Name.Name()] {
				continue
			}
			if err := ast.DetachAndDelete(m); err != nil {
				return err
			}
		}
		if len(tid.Members) == 0 {
			if err := ast.DetachAndDelete(d); err != nil {
				return err
			}
		}
	}
	return nil
}

func blockMemberNames(root *ast.Root) map[string]bool {
	names := map[string]bool{}
	for _, n := range root.NodesOfKind(ast.KindInterfaceBlockDeclaration) {
		ib := n.(*ast.InterfaceBlockDeclaration)
		if !ib.Qualifier.HasStorage("uniform") {
			continue
		}
		for _, g := range ib.Body.Fields {
			for _, m := range g.Members {
				names[m.Name.Name()] = true
			}
		}
	}
	return names
}
