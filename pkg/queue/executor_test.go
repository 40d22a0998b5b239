package queue

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/task"
	"github.com/frugalops/foreman/pkg/agentruntime"
	"github.com/frugalops/foreman/pkg/cost"
)

func newClassifyExecutor() *Executor {
	return &Executor{sink: NewToolEventSink(nil, nil, nil, nil)}
}

func classifyTask(iteration, maxIterations int, validation string) *ent.Task {
	t := &ent.Task{
		ID:               "task-1",
		CurrentIteration: iteration,
		MaxIterations:    maxIterations,
	}
	if validation != "" {
		t.ValidationCommand = &validation
	}
	return t
}

func successResponse() *agentruntime.ExecuteResponse {
	return &agentruntime.ExecuteResponse{
		Success: true,
		Output: agentruntime.Output{
			Status:       agentruntime.StatusSuccess,
			Confidence:   0.95,
			FilesCreated: []string{"main.go"},
		},
		Metrics: agentruntime.Metrics{ModelUsed: "qwen2.5-coder"},
	}
}

func TestClassify_SuccessWithoutValidation(t *testing.T) {
	e := newClassifyExecutor()

	out := e.classify(context.Background(), classifyTask(0, 3, ""), successResponse(), nil, nil)

	assert.Equal(t, task.StatusCompleted, out.status)
	assert.True(t, out.succeeded)
	assert.Equal(t, agentruntime.StatusSuccess, out.result["status"])
	assert.Equal(t, "qwen2.5-coder", out.result["model_used"])
}

func TestClassify_ValidationFailureRetries(t *testing.T) {
	e := newClassifyExecutor()

	out := e.classify(context.Background(), classifyTask(0, 3, "exit 1"), successResponse(), nil, nil)

	assert.Equal(t, task.StatusPending, out.status)
	assert.Equal(t, "validation", out.category)
	assert.False(t, out.succeeded)
}

func TestClassify_ValidationFailureOnLastIteration(t *testing.T) {
	e := newClassifyExecutor()

	out := e.classify(context.Background(), classifyTask(2, 3, "exit 1"), successResponse(), nil, nil)

	assert.Equal(t, task.StatusFailed, out.status)
	assert.Equal(t, "validation", out.category)
}

func TestClassify_ValidationPasses(t *testing.T) {
	e := newClassifyExecutor()

	out := e.classify(context.Background(), classifyTask(0, 3, "true"), successResponse(), nil, nil)

	assert.Equal(t, task.StatusCompleted, out.status)
	assert.True(t, out.succeeded)
}

func TestClassify_SoftFailureRetries(t *testing.T) {
	e := newClassifyExecutor()
	resp := &agentruntime.ExecuteResponse{
		Success: false,
		Output: agentruntime.Output{
			Status:        agentruntime.StatusSoftFailure,
			FailureReason: "tests did not pass",
		},
	}

	out := e.classify(context.Background(), classifyTask(0, 3, ""), resp, nil, nil)

	assert.Equal(t, task.StatusPending, out.status)
	assert.Equal(t, "soft_failure", out.category)
	assert.Equal(t, "tests did not pass", out.message)
}

func TestClassify_SoftFailureWithPassingValidationStillFails(t *testing.T) {
	// A non-success status is authoritative even when a validation command
	// would have passed: the run is classified before validation is consulted.
	e := newClassifyExecutor()
	resp := &agentruntime.ExecuteResponse{
		Success: false,
		Output:  agentruntime.Output{Status: agentruntime.StatusSoftFailure},
	}

	out := e.classify(context.Background(), classifyTask(2, 3, "true"), resp, nil, nil)

	assert.Equal(t, task.StatusFailed, out.status)
	assert.Equal(t, "soft_failure", out.category)
}

func TestClassify_TransportErrorRetries(t *testing.T) {
	e := newClassifyExecutor()

	out := e.classify(context.Background(), classifyTask(0, 3, ""), nil, errors.New("connection refused"), nil)

	assert.Equal(t, task.StatusPending, out.status)
	assert.Equal(t, "transport", out.category)
}

func TestClassify_DeadlineExceeded(t *testing.T) {
	e := newClassifyExecutor()

	out := e.classify(context.Background(), classifyTask(2, 3, ""), nil,
		context.DeadlineExceeded, context.DeadlineExceeded)

	assert.Equal(t, task.StatusFailed, out.status)
	assert.Equal(t, "timeout", out.category)
}

func TestClassify_CancelledRunIsAborted(t *testing.T) {
	e := newClassifyExecutor()

	out := e.classify(context.Background(), classifyTask(0, 3, ""), nil,
		context.Canceled, context.Canceled)

	assert.Equal(t, task.StatusAborted, out.status)
	assert.Equal(t, "timeout", out.category)
}

func TestClassify_LoopAbortWinsOverCancellation(t *testing.T) {
	e := newClassifyExecutor()
	e.sink.StartRun("task-1", func() {})
	defer e.sink.EndRun("task-1")
	e.sink.runs["task-1"].aborted = true

	out := e.classify(context.Background(), classifyTask(0, 3, ""), nil,
		context.Canceled, context.Canceled)

	assert.Equal(t, task.StatusAborted, out.status)
	assert.Equal(t, "loop", out.category)
}

func TestClassify_UncertainWithEmptyReason(t *testing.T) {
	e := newClassifyExecutor()
	resp := &agentruntime.ExecuteResponse{
		Success: true, // success flag alone is not enough
		Output:  agentruntime.Output{Status: agentruntime.StatusUncertain},
	}

	out := e.classify(context.Background(), classifyTask(0, 3, ""), resp, nil, nil)

	assert.Equal(t, task.StatusPending, out.status)
	assert.Equal(t, "uncertain", out.category)
	assert.Contains(t, out.message, "UNCERTAIN")
}

func TestClassify_PremiumBlockedParksForHuman(t *testing.T) {
	// A refused premium call has no cheaper tier to retry on; the task waits
	// for a human instead of burning iterations.
	e := newClassifyExecutor()

	execErr := fmt.Errorf("review of task task-1 refused: %w", cost.ErrPremiumBlocked)
	out := e.classify(context.Background(), classifyTask(0, 3, ""), nil, execErr, nil)

	assert.Equal(t, task.StatusNeedsHuman, out.status)
	assert.Equal(t, "budget", out.category)
	assert.False(t, out.succeeded)
}

func TestRetryOrFail_IterationLadder(t *testing.T) {
	e := newClassifyExecutor()

	first := e.retryOrFail(classifyTask(0, 3, ""), "transport", "boom")
	assert.Equal(t, task.StatusPending, first.status)

	second := e.retryOrFail(classifyTask(1, 3, ""), "transport", "boom")
	assert.Equal(t, task.StatusPending, second.status)

	last := e.retryOrFail(classifyTask(2, 3, ""), "transport", "boom")
	assert.Equal(t, task.StatusFailed, last.status)
}

func TestRetryOrFail_SingleIterationTask(t *testing.T) {
	e := newClassifyExecutor()

	out := e.retryOrFail(classifyTask(0, 1, ""), "validation", "failed")
	assert.Equal(t, task.StatusFailed, out.status)
}
