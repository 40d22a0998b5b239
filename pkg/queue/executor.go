package queue

import (
	"context"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/task"
	"github.com/frugalops/foreman/pkg/agentruntime"
	"github.com/frugalops/foreman/pkg/cost"
	"github.com/frugalops/foreman/pkg/events"
	"github.com/frugalops/foreman/pkg/resources"
	"github.com/frugalops/foreman/pkg/router"
	"github.com/frugalops/foreman/pkg/services"
)

// heartbeatInterval is how often a running executor refreshes the task's
// heartbeat, independent of tool-event traffic.
const heartbeatInterval = 30 * time.Second

// Executor drives one task from assigned to a terminal (or retry) state.
type Executor struct {
	tasks   *services.TaskService
	agents  *services.AgentService
	events  *services.EventService
	runtime agentruntime.Runtime
	pool    *resources.Pool
	budget  *cost.Guard
	sink    *ToolEventSink
	review  ReviewTrigger // nil disables reviews

	// reviewRunner executes review tasks in-process instead of sending them
	// to the agent runtime. Nil routes them to the runtime like any task.
	reviewRunner agentruntime.Runtime

	runTimeout time.Duration
}

// SetReviewRunner installs the in-process executor for review tasks.
func (e *Executor) SetReviewRunner(r agentruntime.Runtime) {
	e.reviewRunner = r
}

// NewExecutor creates an executor.
func NewExecutor(tasks *services.TaskService, agents *services.AgentService, ev *services.EventService,
	runtime agentruntime.Runtime, pool *resources.Pool, budget *cost.Guard, sink *ToolEventSink,
	review ReviewTrigger, runTimeout time.Duration) *Executor {
	if runTimeout <= 0 {
		runTimeout = agentruntime.DefaultTimeout
	}
	return &Executor{
		tasks:      tasks,
		agents:     agents,
		events:     ev,
		runtime:    runtime,
		pool:       pool,
		budget:     budget,
		sink:       sink,
		review:     review,
		runTimeout: runTimeout,
	}
}

// Run executes one assigned task to its terminal or retry state. register
// receives the run's cancel function so the sweeper can abort it.
func (e *Executor) Run(ctx context.Context, t *ent.Task, decision router.Decision, register func(cancel context.CancelFunc) func()) {
	log := slog.With("task_id", t.ID, "agent_id", decision.AgentID, "tier", string(decision.Tier))

	started, err := e.tasks.Transition(ctx, t.ID, task.StatusAssigned, task.StatusInProgress, func(u *ent.TaskUpdateOne) {
		u.SetLastHeartbeatAt(time.Now())
	})
	if err != nil {
		// Lost the race (sweeper or manual completion got there first);
		// release what the assigner acquired and walk away.
		log.Warn("Task left assigned state before execution", "error", err)
		e.pool.ReleaseAll(t.ID)
		e.releaseAgent(ctx, decision.AgentID, t.ID, false, log)
		return
	}
	t = started

	runCtx, cancelRun := context.WithTimeout(ctx, e.runTimeout)
	defer cancelRun()

	unregister := register(cancelRun)
	defer unregister()

	e.sink.StartRun(t.ID, cancelRun)
	defer e.sink.EndRun(t.ID)

	heartbeatCtx, cancelHeartbeat := context.WithCancel(runCtx)
	defer cancelHeartbeat()
	go e.runHeartbeat(heartbeatCtx, t.ID)

	runtime := e.runtime
	if e.reviewRunner != nil && t.TaskType == task.TaskTypeReview && t.ParentTaskID != nil {
		runtime = e.reviewRunner
	}

	resp, execErr := runtime.Execute(runCtx, &agentruntime.ExecuteRequest{
		TaskID:          t.ID,
		AgentID:         decision.AgentID,
		TaskDescription: t.Description,
		UsePremium:      decision.Tier == cost.TierPremium,
	})

	cancelHeartbeat()

	// Terminal handling uses a fresh context: runCtx may already be dead.
	finishCtx, cancelFinish := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancelFinish()

	outcome := e.classify(finishCtx, t, resp, execErr, runCtx.Err())
	e.finish(finishCtx, t, decision, outcome, log)
}

// runOutcome is the classified end state of one run.
type runOutcome struct {
	status    task.Status // completed, failed, aborted, or pending (retry)
	category  string
	message   string
	result    map[string]interface{}
	succeeded bool
}

// classify maps the runtime response (or error) to a terminal outcome,
// consulting the validation command on success.
func (e *Executor) classify(ctx context.Context, t *ent.Task, resp *agentruntime.ExecuteResponse, execErr, ctxErr error) runOutcome {
	switch {
	case e.sink.WasAborted(t.ID):
		return runOutcome{
			status:   task.StatusAborted,
			category: "loop",
			message:  "run aborted by the loop detector",
		}
	case errors.Is(ctxErr, context.Canceled):
		// Sweeper abort: it owns the terminal transition; report aborted so
		// finish() treats our CAS failure as expected.
		return runOutcome{
			status:   task.StatusAborted,
			category: "timeout",
			message:  "run cancelled",
		}
	case errors.Is(ctxErr, context.DeadlineExceeded):
		return e.retryOrFail(t, "timeout", "run exceeded its wall-clock timeout")
	case errors.Is(execErr, cost.ErrPremiumBlocked):
		// No cheaper tier can serve this run; park it for a human instead of
		// burning fix iterations against an exhausted budget.
		return runOutcome{
			status:   task.StatusNeedsHuman,
			category: "budget",
			message:  execErr.Error(),
		}
	case execErr != nil:
		return e.retryOrFail(t, "transport", execErr.Error())
	case resp.IsTerminalSuccess():
		if t.ValidationCommand != nil && *t.ValidationCommand != "" {
			if v := RunValidation(ctx, *t.ValidationCommand); !v.Passed {
				msg := "validation command failed"
				if v.Err != nil {
					msg = v.Err.Error()
				}
				return e.retryOrFail(t, "validation", msg)
			}
		}
		return runOutcome{
			status:    task.StatusCompleted,
			succeeded: true,
			result: map[string]interface{}{
				"status":            resp.Output.Status,
				"confidence":        resp.Output.Confidence,
				"files_created":     resp.Output.FilesCreated,
				"commands_executed": resp.Output.CommandsExecuted,
				"actual_output":     resp.Output.ActualOutput,
				"model_used":        resp.Metrics.ModelUsed,
			},
		}
	default:
		// The runtime finished but did not claim clean success
		// (SOFT_FAILURE, HARD_FAILURE, UNCERTAIN, or success=false).
		category := strings.ToLower(resp.Output.Status)
		if category == "" {
			category = "internal"
		}
		message := resp.Output.FailureReason
		if message == "" {
			message = "runtime reported " + resp.Output.Status
		}
		return e.retryOrFail(t, category, message)
	}
}

// retryOrFail decides between another fix cycle and terminal failure based
// on the iteration budget.
func (e *Executor) retryOrFail(t *ent.Task, category, message string) runOutcome {
	if t.CurrentIteration+1 < t.MaxIterations {
		return runOutcome{status: task.StatusPending, category: category, message: message}
	}
	return runOutcome{status: task.StatusFailed, category: category, message: message}
}

// finish applies the outcome: task transition, slot release, agent release,
// events, budget task accounting, and the review trigger.
func (e *Executor) finish(ctx context.Context, t *ent.Task, decision router.Decision, outcome runOutcome, log *slog.Logger) {
	var updated *ent.Task
	var err error

	switch outcome.status {
	case task.StatusPending:
		updated, err = e.tasks.Transition(ctx, t.ID, task.StatusInProgress, task.StatusPending, func(u *ent.TaskUpdateOne) {
			u.AddCurrentIteration(1).
				ClearAssignedAgentID().
				ClearAssignedAt().
				SetErrorCategory(outcome.category).
				SetErrorMessage(outcome.message)
		})
	case task.StatusNeedsHuman:
		updated, err = e.tasks.Transition(ctx, t.ID, task.StatusInProgress, task.StatusNeedsHuman, func(u *ent.TaskUpdateOne) {
			u.ClearAssignedAgentID().
				ClearAssignedAt().
				SetErrorCategory(outcome.category).
				SetErrorMessage(outcome.message)
		})
	default:
		updated, err = e.tasks.Transition(ctx, t.ID, task.StatusInProgress, outcome.status, func(u *ent.TaskUpdateOne) {
			u.SetCompletedAt(time.Now())
			if outcome.result != nil {
				u.SetResult(outcome.result)
			}
			if outcome.category != "" {
				u.SetErrorCategory(outcome.category).SetErrorMessage(outcome.message)
			}
		})
	}
	if err != nil {
		// Expected when the sweeper aborted us; anything else is worth a log.
		if !errors.Is(err, services.ErrStateConflict) {
			log.Error("Failed to record run outcome", "error", err)
		}
		// Whoever won the terminal write may not have freed our agent — the
		// manual completion endpoint does not touch agents at all.
		e.pool.ReleaseAll(t.ID)
		e.releaseAgent(ctx, decision.AgentID, t.ID, false, log)
		return
	}

	e.pool.ReleaseAll(t.ID)
	e.releaseAgent(ctx, decision.AgentID, t.ID, outcome.succeeded, log)

	if e.budget != nil {
		e.budget.RecordTaskCost(decision.EstCost * 100)
	}

	eventType := events.EventTypeTaskUpdated
	if outcome.status == task.StatusCompleted {
		eventType = events.EventTypeTaskCompleted
	}
	e.events.Record(ctx, events.New(eventType, updated.ID, events.TaskStatusPayload{
		TaskID:        updated.ID,
		Status:        string(updated.Status),
		AgentID:       decision.AgentID,
		ErrorCategory: outcome.category,
		ErrorMessage:  outcome.message,
	}))

	log.Info("Run finished", "status", string(updated.Status), "category", outcome.category)

	if outcome.status == task.StatusCompleted && e.review != nil {
		e.review.OnTaskCompleted(ctx, updated.ID)
	}
}

// releaseAgent frees the agent while it is still pinned to this run's task.
// A conflict means the sweeper got there first, or the agent already carries
// new work; either way it is not ours to free anymore.
func (e *Executor) releaseAgent(ctx context.Context, agentID, taskID string, succeeded bool, log *slog.Logger) {
	if _, err := e.agents.ReleaseFromTask(ctx, agentID, taskID, succeeded); err != nil &&
		!errors.Is(err, services.ErrStateConflict) {
		log.Warn("Failed to release agent", "agent_id", agentID, "error", err)
	}
}

// runHeartbeat refreshes the task heartbeat while the runtime call is in
// flight, so quiet runs are not swept as stuck.
func (e *Executor) runHeartbeat(ctx context.Context, taskID string) {
	ticker := time.NewTicker(heartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := e.tasks.Heartbeat(ctx, taskID); err != nil {
				slog.Warn("Heartbeat update failed", "task_id", taskID, "error", err)
			}
		}
	}
}
