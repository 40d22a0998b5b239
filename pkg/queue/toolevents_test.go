package queue

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToolEventSink_RunRegistry(t *testing.T) {
	s := NewToolEventSink(nil, nil, nil, nil)
	assert.Equal(t, 0, s.ActiveRuns())

	s.StartRun("t1", func() {})
	s.StartRun("t2", func() {})
	assert.Equal(t, 2, s.ActiveRuns())
	assert.False(t, s.WasAborted("t1"))

	s.EndRun("t1")
	assert.Equal(t, 1, s.ActiveRuns())
}

func TestToolEventSink_WasAbortedUnknownTask(t *testing.T) {
	s := NewToolEventSink(nil, nil, nil, nil)
	assert.False(t, s.WasAborted("nope"))
}

func TestToolEventSink_RejectsEventWithoutActiveRun(t *testing.T) {
	s := NewToolEventSink(nil, nil, nil, nil)

	_, err := s.HandleToolEvent(context.Background(), "ghost", ToolEvent{Action: "bash"})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrNoActiveRun)
}

func TestToolEventSink_StartRunResetsDetectorState(t *testing.T) {
	// A second StartRun for the same task replaces the detector, so loop
	// history never leaks between retry iterations.
	s := NewToolEventSink(nil, nil, nil, nil)

	s.StartRun("t1", func() {})
	first := s.runs["t1"].detector
	s.runs["t1"].aborted = true

	s.StartRun("t1", func() {})
	assert.NotSame(t, first, s.runs["t1"].detector)
	assert.False(t, s.WasAborted("t1"))
}
