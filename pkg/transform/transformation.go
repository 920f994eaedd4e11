package transform

// PhaseEntry pairs a Phase with its scheduling position: phases sharing an
// (Index, Group) pair are fused into one traversal if they are WalkPhases.
type PhaseEntry struct {
	Phase Phase
	Index int
	Group int
}

// Transformation owns an ordered registry of phase entries. It is the
// unit TransformationManager.registerTransformation takes.
type Transformation struct {
	nextPhaseIndex int
	entries        []PhaseEntry
	children       []*Transformation
	onReset        func()

	// Enabled gates this transformation and its children together, the
	// Transformation-local grouping described in SUPPLEMENTED FEATURES
	// (the original's childTransformations list).
	Enabled bool
}

// NewTransformation creates an empty, enabled Transformation whose phase
// counter starts at 1.
func NewTransformation() *Transformation {
	return &Transformation{nextPhaseIndex: 1, Enabled: true}
}

// AddPhase schedules phase at the next monotonic counter value, in this
// transformation's default group (0).
func (t *Transformation) AddPhase(phase Phase) *Transformation {
	return t.AddPhaseAtGroup(t.nextPhaseIndex, 0, phase)
}

// AddPhaseAtIndex schedules phase at an explicit index, default group.
func (t *Transformation) AddPhaseAtIndex(index int, phase Phase) *Transformation {
	return t.AddPhaseAtGroup(index, 0, phase)
}

// AddPhaseAtGroup schedules phase at an explicit (index, group).
func (t *Transformation) AddPhaseAtGroup(index, group int, phase Phase) *Transformation {
	t.entries = append(t.entries, PhaseEntry{Phase: phase, Index: index, Group: group})
	if index >= t.nextPhaseIndex {
		t.nextPhaseIndex = index + 1
	}
	return t
}

// AddConcurrentPhase schedules phase at max(1, counter-1): the index most
// recently consumed by AddPhase, so it fuses with that phase's traversal
// instead of starting a new one. It does not advance the counter.
func (t *Transformation) AddConcurrentPhase(phase Phase) *Transformation {
	idx := t.nextPhaseIndex - 1
	if idx < 1 {
		idx = 1
	}
	t.entries = append(t.entries, PhaseEntry{Phase: phase, Index: idx, Group: 0})
	return t
}

// Merge imports other's entries verbatim, indices and groups unchanged, so
// they interleave with self's entries by (index, group) at schedule time.
func (t *Transformation) Merge(other *Transformation) *Transformation {
	t.entries = append(t.entries, other.entries...)
	return t
}

// Append imports other's entries with their indices shifted past self's
// current tail, so other's phases run strictly after self's, and advances
// self's counter past other's tail.
func (t *Transformation) Append(other *Transformation) *Transformation {
	shift := t.nextPhaseIndex - 1
	for _, e := range other.entries {
		t.entries = append(t.entries, PhaseEntry{Phase: e.Phase, Index: e.Index + shift, Group: e.Group})
	}
	t.nextPhaseIndex += other.nextPhaseIndex - 1
	return t
}

// AddChild registers child as owned by t: toggling t.Enabled off disables
// child (and its own descendants) along with t.
func (t *Transformation) AddChild(child *Transformation) *Transformation {
	t.children = append(t.children, child)
	return t
}

// Children returns t's owned child transformations.
func (t *Transformation) Children() []*Transformation { return t.children }

// OnReset installs f to run on every resetStateInternal call, the Go
// equivalent of subclassing resetState() to (re-)initialize inter-phase
// fields.
func (t *Transformation) OnReset(f func()) *Transformation {
	t.onReset = f
	return t
}

func (t *Transformation) resetStateInternal() {
	if t.onReset != nil {
		t.onReset()
	}
	for _, c := range t.children {
		c.resetStateInternal()
	}
}

// collectEntries gathers t's own entries plus its enabled children's,
// recursively. A disabled transformation contributes nothing.
func (t *Transformation) collectEntries() []PhaseEntry {
	if !t.Enabled {
		return nil
	}
	out := append([]PhaseEntry(nil), t.entries...)
	for _, c := range t.children {
		out = append(out, c.collectEntries()...)
	}
	return out
}
