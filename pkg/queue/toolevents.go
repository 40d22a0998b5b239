package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"

	"github.com/frugalops/foreman/pkg/cost"
	"github.com/frugalops/foreman/pkg/events"
	"github.com/frugalops/foreman/pkg/loop"
	"github.com/frugalops/foreman/pkg/masking"
	"github.com/frugalops/foreman/pkg/services"
)

// ToolEvent is one tool call reported by the agent runtime mid-run.
type ToolEvent struct {
	Action       string `json:"action"`
	Input        string `json:"input"`
	Observation  string `json:"observation"`
	DurationMS   int    `json:"duration_ms"`
	ModelUsed    string `json:"model_used"`
	InputTokens  int    `json:"input_tokens"`
	OutputTokens int    `json:"output_tokens"`
}

// ToolOutcome is what the runtime gets back: the observation the agent
// should see (possibly rewritten by the loop detector) and the verdict.
type ToolOutcome struct {
	Step        int          `json:"step"`
	Observation string       `json:"observation"`
	Verdict     loop.Verdict `json:"verdict"`
}

// runState is the per-run state the sink tracks while a task executes.
type runState struct {
	detector *loop.Detector
	cancel   context.CancelFunc
	aborted  bool
}

// ToolEventSink processes the tool-call stream of running tasks: loop
// detection first, then log persistence, cost accounting, and event
// publication. One loop detector per run; state is never shared across
// tasks.
type ToolEventSink struct {
	tasks  *services.TaskService
	logs   *services.LogService
	events *services.EventService
	budget *cost.Guard
	masker *masking.Service

	mu   sync.Mutex
	runs map[string]*runState
}

// NewToolEventSink creates a sink.
func NewToolEventSink(tasks *services.TaskService, logs *services.LogService, ev *services.EventService, budget *cost.Guard) *ToolEventSink {
	return &ToolEventSink{
		tasks:  tasks,
		logs:   logs,
		events: ev,
		budget: budget,
		runs:   make(map[string]*runState),
	}
}

// SetMasker installs the credential scrubber applied to inputs and
// observations before they are persisted. Nil disables masking.
func (s *ToolEventSink) SetMasker(m *masking.Service) {
	s.masker = m
}

// StartRun registers a fresh loop detector and the cancel handle for a task
// about to execute.
func (s *ToolEventSink) StartRun(taskID string, cancel context.CancelFunc) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.runs[taskID] = &runState{detector: loop.NewDetector(), cancel: cancel}
}

// EndRun drops the per-run state.
func (s *ToolEventSink) EndRun(taskID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.runs, taskID)
}

// WasAborted reports whether the loop detector killed the run.
func (s *ToolEventSink) WasAborted(taskID string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	rs, ok := s.runs[taskID]
	return ok && rs.aborted
}

// ActiveRuns returns the number of tasks currently executing here.
func (s *ToolEventSink) ActiveRuns() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.runs)
}

// HandleToolEvent processes one tool call: loop check before persisting,
// then log append, budget accounting, and a tool_called event. The returned
// observation is what the agent must see next turn.
func (s *ToolEventSink) HandleToolEvent(ctx context.Context, taskID string, ev ToolEvent) (ToolOutcome, error) {
	s.mu.Lock()
	rs, ok := s.runs[taskID]
	if !ok {
		s.mu.Unlock()
		return ToolOutcome{}, fmt.Errorf("%w: %s", ErrNoActiveRun, taskID)
	}
	decision := rs.detector.Check(ev.Action, ev.Input)
	if decision.Verdict == loop.VerdictAbort {
		rs.aborted = true
		rs.cancel()
	}
	s.mu.Unlock()

	observation := ev.Observation
	loopDetected := false
	switch decision.Verdict {
	case loop.VerdictWarn:
		s.publishLoop(ctx, taskID, ev.Action, decision)
	case loop.VerdictBlock:
		loopDetected = true
		observation = fmt.Sprintf(
			"[LOOP BLOCKED] The action %q was refused: %s. The previous attempts did not make progress; "+
				"take a different approach.", ev.Action, decision.Reason)
		s.publishLoop(ctx, taskID, ev.Action, decision)
	case loop.VerdictAbort:
		loopDetected = true
		observation = "[LOOP ABORT] The run was terminated: " + decision.Reason
		s.publishLoop(ctx, taskID, ev.Action, decision)
	}

	step, err := s.logs.NextStep(ctx, taskID)
	if err != nil {
		return ToolOutcome{}, err
	}
	// The agent already holds the raw text; only the persisted copy is
	// scrubbed.
	if _, err := s.logs.Append(ctx, taskID, services.LogEntry{
		Step:           step,
		Action:         ev.Action,
		Input:          s.masker.MaskInput(ev.Input),
		Observation:    s.masker.MaskObservation(observation),
		DurationMS:     ev.DurationMS,
		ModelUsed:      ev.ModelUsed,
		InputTokens:    ev.InputTokens,
		OutputTokens:   ev.OutputTokens,
		IsLoopDetected: loopDetected,
	}); err != nil {
		return ToolOutcome{}, err
	}

	if s.budget != nil && (ev.InputTokens > 0 || ev.OutputTokens > 0) {
		s.budget.RecordUsage(ev.InputTokens, ev.OutputTokens, ev.ModelUsed)
	}

	if err := s.tasks.Heartbeat(ctx, taskID); err != nil {
		slog.Warn("Heartbeat on tool event failed", "task_id", taskID, "error", err)
	}

	s.events.Record(ctx, events.New(events.EventTypeToolCalled, taskID, events.ToolCalledPayload{
		TaskID:       taskID,
		Step:         step,
		Action:       ev.Action,
		DurationMs:   ev.DurationMS,
		ModelUsed:    ev.ModelUsed,
		InputTokens:  ev.InputTokens,
		OutputTokens: ev.OutputTokens,
		LoopDetected: loopDetected,
	}))

	return ToolOutcome{Step: step, Observation: observation, Verdict: decision.Verdict}, nil
}

func (s *ToolEventSink) publishLoop(ctx context.Context, taskID, action string, decision loop.Decision) {
	s.events.Record(ctx, events.New(events.EventTypeLoopDetected, taskID, events.LoopDetectedPayload{
		TaskID:  taskID,
		Action:  action,
		Verdict: string(decision.Verdict),
		Reason:  decision.Reason,
	}))
}
