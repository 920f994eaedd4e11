package transform

import (
	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/match"
)

// PhaseState is the state machine for a bound
// Phase: CREATED -> INITIALIZED (after its first Init) -> ACTIVE or
// SKIPPED for each run (decided by IsActive) -> back to INITIALIZED once
// the run ends.
type PhaseState int

const (
	PhaseCreated PhaseState = iota
	PhaseInitialized
	PhaseActive
	PhaseSkipped
)

// Phase is a unit of traversal/rewrite bound into a Transformation. Init
// runs at most once per PhaseCollector, lazily, on the first run that
// schedules this phase; IsActive is consulted on every run.
type Phase interface {
	// Init compiles this phase's paths/patterns (CompilePath/CompilePattern)
	// and performs any other one-time setup.
	Init(ctx *Context) error
	// IsActive may return false to skip this phase for the current run.
	IsActive(ctx *Context) bool
}

// BasePhase gives a zero-effort Init/IsActive (always active, nothing to
// compile) for phases that need neither. Embed it and override what you
// need.
type BasePhase struct{}

func (BasePhase) Init(ctx *Context) error   { return nil }
func (BasePhase) IsActive(ctx *Context) bool { return true }

// WalkPhase receives Enter/Exit callbacks during a depth-first traversal
// of the tree. Walk phases scheduled at the same (index, group) are fused:
// they share one traversal, each receiving callbacks in registration
// order.
type WalkPhase interface {
	Phase
	Enter(ctx *Context, n ast.Node) bool
	Exit(ctx *Context, n ast.Node)
}

// RunPhase receives a single callback per run, with no implied traversal.
// It is used for bulk queries over Root's indices.
type RunPhase interface {
	Phase
	Run(ctx *Context) error
}

// MatchPhase is a RunPhase built on the Matcher/Template subsystem: iterate
// candidates of a given Kind, match each against pattern, and hand matches
// to Rewrite.
type MatchPhase struct {
	BasePhase
	Kind    ast.Kind
	Pattern *match.Matcher
	Rewrite func(ctx *Context, res *match.MatchResult, candidate ast.Node) error
}

func (p *MatchPhase) Run(ctx *Context) error {
	for _, n := range ctx.Root().NodesOfKind(p.Kind) {
		res, ok := p.Pattern.Match(n)
		if !ok {
			continue
		}
		if err := p.Rewrite(ctx, res, n); err != nil {
			return err
		}
	}
	return nil
}

var _ RunPhase = (*MatchPhase)(nil)
