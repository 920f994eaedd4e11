package transform

import (
	"testing"

	"github.com/stretchr/testify/require"
)

type recordingPhase struct {
	BasePhase
	name string
	log  *[]string
}

func (p *recordingPhase) Run(ctx *Context) error {
	*p.log = append(*p.log, p.name)
	return nil
}

func TestTransformationAddPhaseOrdering(t *testing.T) {
	var log []string
	tr := NewTransformation()
	tr.AddPhase(&recordingPhase{name: "a", log: &log})
	tr.AddPhase(&recordingPhase{name: "b", log: &log})

	entries := tr.collectEntries()
	require.Len(t, entries, 2)
	require.Equal(t, 1, entries[0].Index)
	require.Equal(t, 2, entries[1].Index)
}

func TestTransformationAddConcurrentPhaseFuses(t *testing.T) {
	var log []string
	tr := NewTransformation()
	tr.AddPhase(&recordingPhase{name: "a", log: &log})
	tr.AddConcurrentPhase(&recordingPhase{name: "a2", log: &log})
	tr.AddPhase(&recordingPhase{name: "b", log: &log})

	entries := tr.collectEntries()
	require.Equal(t, entries[0].Index, entries[1].Index)
	require.NotEqual(t, entries[0].Index, entries[2].Index)
}

func TestTransformationMergeInterleavesByIndex(t *testing.T) {
	var log []string
	t1 := NewTransformation()
	t1.AddPhase(&recordingPhase{name: "t1-1", log: &log})
	t1.AddPhase(&recordingPhase{name: "t1-2", log: &log})

	t2 := NewTransformation()
	t2.AddPhase(&recordingPhase{name: "t2-1", log: &log})

	t1.Merge(t2)
	entries := t1.collectEntries()
	require.Len(t, entries, 3)
	// t2's single entry was registered verbatim at index 1, same as t1-1.
	require.Equal(t, 1, entries[2].Index)
}

func TestTransformationAppendShiftsIndices(t *testing.T) {
	var log []string
	t1 := NewTransformation()
	t1.AddPhase(&recordingPhase{name: "t1-1", log: &log})
	t1.AddPhase(&recordingPhase{name: "t1-2", log: &log})

	t2 := NewTransformation()
	t2.AddPhase(&recordingPhase{name: "t2-1", log: &log})
	t2.AddPhase(&recordingPhase{name: "t2-2", log: &log})

	t1.Append(t2)
	entries := t1.collectEntries()
	require.Len(t, entries, 4)
	require.Equal(t, 1, entries[0].Index)
	require.Equal(t, 2, entries[1].Index)
	require.Equal(t, 3, entries[2].Index)
	require.Equal(t, 4, entries[3].Index)
	require.Equal(t, 5, t1.nextPhaseIndex)
}

func TestTransformationChildDisabledExcludesEntries(t *testing.T) {
	var log []string
	parent := NewTransformation()
	parent.AddPhase(&recordingPhase{name: "parent", log: &log})

	child := NewTransformation()
	child.AddPhase(&recordingPhase{name: "child", log: &log})
	parent.AddChild(child)

	require.Len(t, parent.collectEntries(), 2)

	child.Enabled = false
	require.Len(t, parent.collectEntries(), 1)
}
