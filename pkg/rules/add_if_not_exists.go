package rules

import (
	"github.com/glsltx/glsltx/pkg/transform"
)

// DeclarationRequest names one external declaration a transformation
// should inject, unless an external declaration already contains that name.
type DeclarationRequest struct {
	Name   string
	Source string
}

// NewAddIfNotExists builds a rule that injects each request's Source
// before the existing top-level declarations, skipping any request whose
// Name already occurs in some external declaration, whether declared or
// only referenced there (see Root.ExternalDeclarationsNamed).
func NewAddIfNotExists(requests []DeclarationRequest) *transform.Transformation {
	t := transform.NewTransformation()
	t.AddPhase(&addIfNotExistsPhase{requests: requests})
	return t
}

type addIfNotExistsPhase struct {
	transform.BasePhase
	requests []DeclarationRequest
}

func (p *addIfNotExistsPhase) Run(ctx *transform.Context) error {
	for _, req := range p.requests {
		if len(ctx.Root().ExternalDeclarationsNamed(req.Name)) > 0 {
			continue
		}
		if err := ctx.InjectExternalDeclaration(req.Source, transform.BeforeDeclarations); err != nil {
			return err
		}
	}
	return nil
}
