package transform

import (
	"sort"

	"github.com/glsltx/glsltx/pkg/ast"
	"github.com/glsltx/glsltx/pkg/astbuild"
	"github.com/glsltx/glsltx/pkg/glsllex"
	"github.com/glsltx/glsltx/pkg/glslparse"
	"github.com/glsltx/glsltx/pkg/printer"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

// PhaseCollector computes the run order across every registered
// Transformation's phase entries and drives one traversal
// per (Index, Group) bucket, fusing WalkPhases scheduled at the same
// bucket into a single depth-first pass.
type PhaseCollector struct {
	initialized map[Phase]bool
}

func newPhaseCollector() *PhaseCollector {
	return &PhaseCollector{initialized: map[Phase]bool{}}
}

// bucket groups every PhaseEntry sharing one (Index, Group) pair, in
// registration order.
type bucket struct {
	index, group int
	entries      []PhaseEntry
}

func schedule(transformations []*Transformation) []bucket {
	var all []PhaseEntry
	for _, t := range transformations {
		all = append(all, t.collectEntries()...)
	}
	buckets := map[[2]int]*bucket{}
	var order [][2]int
	for _, e := range all {
		key := [2]int{e.Index, e.Group}
		b := buckets[key]
		if b == nil {
			b = &bucket{index: e.Index, group: e.Group}
			buckets[key] = b
			order = append(order, key)
		}
		b.entries = append(b.entries, e)
	}
	sort.Slice(order, func(i, j int) bool {
		if order[i][0] != order[j][0] {
			return order[i][0] < order[j][0]
		}
		return order[i][1] < order[j][1]
	})
	out := make([]bucket, len(order))
	for i, key := range order {
		out[i] = *buckets[key]
	}
	return out
}

// run executes every bucket's entries against ctx, in schedule order:
// within a bucket, WalkPhase entries are fused into one traversal and
// RunPhase entries run afterward, each exactly once per call (Init is
// memoized across the collector's lifetime, IsActive is re-checked here).
func (pc *PhaseCollector) run(ctx *Context, transformations []*Transformation) error {
	for _, b := range schedule(transformations) {
		var walkPhases []WalkPhase
		var runPhases []RunPhase
		for _, e := range b.entries {
			if err := pc.ensureInit(ctx, e.Phase); err != nil {
				return err
			}
			if !e.Phase.IsActive(ctx) {
				continue
			}
			switch p := e.Phase.(type) {
			case WalkPhase:
				walkPhases = append(walkPhases, p)
			case RunPhase:
				runPhases = append(runPhases, p)
			}
		}
		if len(walkPhases) > 0 {
			walkFused(ctx, walkPhases)
		}
		for _, p := range runPhases {
			if err := p.Run(ctx); err != nil {
				return err
			}
		}
	}
	return nil
}

func (pc *PhaseCollector) ensureInit(ctx *Context, p Phase) error {
	if pc.initialized[p] {
		return nil
	}
	pc.initialized[p] = true
	return p.Init(ctx)
}

// fusedVisitor dispatches Enter/Exit for one node to every fused phase in
// registration order, matching the phase-fusion contract.
type fusedVisitor struct {
	ctx    *Context
	phases []WalkPhase
}

func (v *fusedVisitor) Enter(n ast.Node) bool {
	descend := true
	for _, p := range v.phases {
		if !p.Enter(v.ctx, n) {
			descend = false
		}
	}
	return descend
}

func (v *fusedVisitor) Exit(n ast.Node) {
	for _, p := range v.phases {
		p.Exit(v.ctx, n)
	}
}

var _ ast.Visitor = (*fusedVisitor)(nil)

func walkFused(ctx *Context, phases []WalkPhase) {
	ast.Walk(ctx.TranslationUnit(), &fusedVisitor{ctx: ctx, phases: phases})
}

// ManagerOption configures a TransformationManager.
type ManagerOption func(*TransformationManager)

// WithLogger installs a zerolog.Logger; the zero value (zerolog.Nop())
// disables logging, zerolog's own "nop logger" convention.
func WithLogger(l zerolog.Logger) ManagerOption {
	return func(m *TransformationManager) { m.logger = l }
}

// WithRootSupplier selects the index-policy supplier used when building
// the tree for each Transform call.
func WithRootSupplier(rs astbuild.RootSupplier) ManagerOption {
	return func(m *TransformationManager) { m.rootSupplier = rs }
}

// TransformationManager is the public facade: it
// owns a set of registered Transformations, drives a parse -> build ->
// reset -> run-phases -> print pipeline for each Transform call, and
// exposes the parser-level knobs (token filter, SLL/LL strategy) the
// original's builder constructor takes.
type TransformationManager struct {
	transformations []*Transformation
	rootSupplier    astbuild.RootSupplier
	tokenFilter     glsllex.TokenFilter
	strategy        glslparse.Strategy
	strategySet     bool
	logger          zerolog.Logger
}

// NewTransformationManager creates an empty manager with the DEFAULT root
// supplier and a disabled (nop) logger.
func NewTransformationManager(opts ...ManagerOption) *TransformationManager {
	m := &TransformationManager{rootSupplier: astbuild.DEFAULT, logger: zerolog.Nop()}
	for _, o := range opts {
		o(m)
	}
	return m
}

// RegisterTransformation adds t to the set run by every subsequent
// Transform call.
func (m *TransformationManager) RegisterTransformation(t *Transformation) *TransformationManager {
	m.transformations = append(m.transformations, t)
	return m
}

// SetParseTokenFilter installs a lexer token filter used by every
// subsequent Transform call's parse.
func (m *TransformationManager) SetParseTokenFilter(f glsllex.TokenFilter) *TransformationManager {
	m.tokenFilter = f
	return m
}

// SetParsingStrategy overrides the parser's SLL/LL retry strategy (default
// SLLAndLLOnError).
func (m *TransformationManager) SetParsingStrategy(s glslparse.Strategy) *TransformationManager {
	m.strategy = s
	m.strategySet = true
	return m
}

// Transform parses src, resets every registered transformation's
// inter-run state, runs every registered phase in scheduled order, and
// reprints the resulting tree.
func (m *TransformationManager) Transform(src string) (string, error) {
	m.logger.Debug().Int("transformations", len(m.transformations)).Msg("transform: starting")

	var buildOpts []astbuild.Option
	buildOpts = append(buildOpts, astbuild.WithRootSupplier(m.rootSupplier))
	if m.tokenFilter != nil {
		buildOpts = append(buildOpts, astbuild.WithTokenFilter(m.tokenFilter))
	}
	if m.strategySet {
		buildOpts = append(buildOpts, astbuild.WithStrategy(m.strategy))
	}

	tu, root, err := astbuild.Build(src, buildOpts...)
	if err != nil {
		m.logger.Err(err).Msg("transform: parse failed")
		return "", errors.Wrap(err, "transform: parse")
	}

	for _, t := range m.transformations {
		t.resetStateInternal()
	}

	ctx := newContext(root, tu)
	pc := newPhaseCollector()
	if err := pc.run(ctx, m.transformations); err != nil {
		m.logger.Err(err).Msg("transform: phase run failed")
		return "", errors.Wrap(err, "transform: run phases")
	}

	out := printer.Print(tu)
	m.logger.Debug().Int("outputBytes", len(out)).Msg("transform: done")
	return out, nil
}
