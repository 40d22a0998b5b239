package queue

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"entgo.io/ent/dialect/sql"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/task"
	"github.com/frugalops/foreman/pkg/events"
	"github.com/frugalops/foreman/pkg/resources"
	"github.com/frugalops/foreman/pkg/router"
	"github.com/frugalops/foreman/pkg/services"
)

// claimBatch bounds how many pending candidates one pass inspects. A task
// that cannot be placed (no capacity, no slot) is skipped in favor of the
// next one.
const claimBatch = 10

// Assigner is the single polling loop that moves pending tasks to agents.
type Assigner struct {
	podID    string
	client   *ent.Client
	tasks    *services.TaskService
	agents   *services.AgentService
	events   *services.EventService
	router   *router.Router
	pool     *resources.Pool
	executor *Executor

	pollInterval time.Duration
	stopCh       chan struct{}
	stopOnce     sync.Once
	wg           sync.WaitGroup

	// baseCtx is the lifetime of spawned executors; set by Start. Manual
	// assignments use it instead of the HTTP request context.
	baseCtx context.Context

	// Run registry: task_id -> cancel function for sweeper-forced aborts.
	mu            sync.RWMutex
	activeRuns    map[string]context.CancelFunc
	tasksAssigned int
}

// NewAssigner creates an assigner.
func NewAssigner(podID string, client *ent.Client, tasks *services.TaskService, agents *services.AgentService,
	ev *services.EventService, rt *router.Router, pool *resources.Pool, executor *Executor, pollInterval time.Duration) *Assigner {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &Assigner{
		podID:        podID,
		client:       client,
		tasks:        tasks,
		agents:       agents,
		events:       ev,
		router:       rt,
		pool:         pool,
		executor:     executor,
		pollInterval: pollInterval,
		stopCh:       make(chan struct{}),
		activeRuns:   make(map[string]context.CancelFunc),
	}
}

// Start begins the polling loop in a goroutine.
func (a *Assigner) Start(ctx context.Context) {
	a.baseCtx = ctx
	a.wg.Add(1)
	go a.run(ctx)
}

// Stop signals the loop to stop and waits for it (running executors finish
// on their own contexts). Safe to call multiple times.
func (a *Assigner) Stop() {
	a.stopOnce.Do(func() { close(a.stopCh) })
	a.wg.Wait()
}

// CancelTask cancels the in-flight run of a task on this instance.
// Implements Canceller for the sweeper.
func (a *Assigner) CancelTask(taskID string) bool {
	a.mu.RLock()
	defer a.mu.RUnlock()
	if cancel, ok := a.activeRuns[taskID]; ok {
		cancel()
		return true
	}
	return false
}

// Health reports queue depth and assignment counters.
func (a *Assigner) Health(ctx context.Context) QueueHealth {
	depth, err := a.client.Task.Query().
		Where(task.StatusEQ(task.StatusPending)).
		Count(ctx)
	if err != nil {
		slog.Error("Failed to query queue depth", "error", err)
	}

	a.mu.RLock()
	defer a.mu.RUnlock()
	return QueueHealth{
		IsHealthy:     err == nil,
		PodID:         a.podID,
		QueueDepth:    depth,
		ActiveRuns:    len(a.activeRuns),
		TasksAssigned: a.tasksAssigned,
	}
}

func (a *Assigner) run(ctx context.Context) {
	defer a.wg.Done()

	log := slog.With("pod_id", a.podID)
	log.Info("Assigner started", "poll_interval", a.pollInterval)

	for {
		select {
		case <-a.stopCh:
			log.Info("Assigner shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, assigner shutting down")
			return
		default:
			assigned, err := a.assignOnce(ctx)
			switch {
			case errors.Is(err, ErrNoTasksAvailable):
				a.sleep(a.jitteredInterval())
			case err != nil:
				log.Error("Assignment pass failed", "error", err)
				a.sleep(time.Second)
			case !assigned:
				// Candidates exist but none could be placed right now.
				a.sleep(a.jitteredInterval())
			}
		}
	}
}

// assignOnce claims and places at most one task. Candidates are inspected
// in strict priority order, FIFO within a priority; unplaceable ones are
// skipped.
func (a *Assigner) assignOnce(ctx context.Context) (bool, error) {
	tx, err := a.client.Tx(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to start claim transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	candidates, err := tx.Task.Query().
		Where(task.StatusEQ(task.StatusPending)).
		Order(ent.Desc(task.FieldPriority), ent.Asc(task.FieldCreatedAt)).
		Limit(claimBatch).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return false, fmt.Errorf("failed to query pending tasks: %w", err)
	}
	if len(candidates) == 0 {
		return false, ErrNoTasksAvailable
	}

	for _, t := range candidates {
		outcome, err := a.place(ctx, tx, t)
		if err != nil {
			return false, err
		}
		switch outcome {
		case placeSkip:
			continue
		case placeProgress:
			// The transaction was committed; this pass is over.
			return true, nil
		case placeRetry:
			return false, nil
		}
	}
	return false, nil
}

// placeOutcome tells assignOnce whether the claim transaction is still
// usable.
type placeOutcome int

const (
	placeSkip     placeOutcome = iota // candidate unplaceable, tx untouched
	placeProgress                     // tx committed, task placed or escalated
	placeRetry                        // tx committed but the claim was undone
)

// place routes one locked candidate and, when possible, claims it.
func (a *Assigner) place(ctx context.Context, tx *ent.Tx, t *ent.Task) (placeOutcome, error) {
	complexity := 0.0
	if t.Complexity != nil {
		complexity = *t.Complexity
	}
	requiredAgent := ""
	if t.RequiredAgent != nil {
		requiredAgent = string(*t.RequiredAgent)
	}

	decision, err := a.router.Route(ctx, router.Input{
		TaskID:           t.ID,
		TaskType:         string(t.TaskType),
		RequiredAgent:    requiredAgent,
		Complexity:       complexity,
		CurrentIteration: t.CurrentIteration,
	})
	if err != nil {
		return placeSkip, fmt.Errorf("routing task %s: %w", t.ID, err)
	}

	if decision.EscalateToHuman {
		if err := tx.Task.UpdateOneID(t.ID).
			SetStatus(task.StatusNeedsHuman).
			SetErrorCategory("budget_exhausted_iterations").
			SetErrorMessage(decision.Reason).
			Exec(ctx); err != nil {
			return placeSkip, fmt.Errorf("escalating task %s: %w", t.ID, err)
		}
		if err := tx.Commit(); err != nil {
			return placeSkip, fmt.Errorf("committing escalation of %s: %w", t.ID, err)
		}
		a.events.Record(ctx, events.New(events.EventTypeTaskUpdated, t.ID, events.TaskStatusPayload{
			TaskID: t.ID, Status: string(task.StatusNeedsHuman), ErrorMessage: decision.Reason,
		}))
		slog.Info("Task escalated to human", "task_id", t.ID, "iterations", t.CurrentIteration)
		return placeProgress, nil
	}

	if decision.NoCapacity {
		return placeSkip, nil
	}

	class := router.PoolClass(decision.Tier)
	if !a.pool.TryAcquire(class, t.ID) {
		return placeSkip, nil
	}

	outcome, err := a.claim(ctx, tx, t, decision)
	if err != nil || outcome != placeProgress {
		a.pool.Release(class, t.ID)
	}
	return outcome, err
}

// claim commits the pending->assigned transition and hands the task to an
// executor goroutine.
func (a *Assigner) claim(ctx context.Context, tx *ent.Tx, t *ent.Task, decision router.Decision) (placeOutcome, error) {
	now := time.Now()
	updated, err := tx.Task.UpdateOneID(t.ID).
		SetStatus(task.StatusAssigned).
		SetAssignedAgentID(decision.AgentID).
		SetAssignedAt(now).
		SetLastHeartbeatAt(now).
		SetPodID(a.podID).
		Save(ctx)
	if err != nil {
		return placeSkip, fmt.Errorf("claiming task %s: %w", t.ID, err)
	}
	if err := tx.Commit(); err != nil {
		return placeSkip, fmt.Errorf("committing claim of %s: %w", t.ID, err)
	}

	if _, err := a.agents.SetBusy(ctx, decision.AgentID, t.ID); err != nil {
		// The agent was taken between routing and claim. Undo the claim and
		// let the next pass retry.
		slog.Warn("Agent busy at claim time, returning task to queue",
			"task_id", t.ID, "agent_id", decision.AgentID, "error", err)
		if _, revertErr := a.tasks.Transition(ctx, t.ID, task.StatusAssigned, task.StatusPending, func(u *ent.TaskUpdateOne) {
			u.ClearAssignedAgentID().ClearAssignedAt()
		}); revertErr != nil {
			slog.Error("Failed to revert claim", "task_id", t.ID, "error", revertErr)
		}
		return placeRetry, nil
	}

	a.events.Record(ctx, events.New(events.EventTypeTaskAssigned, t.ID, events.TaskStatusPayload{
		TaskID:  t.ID,
		Status:  string(task.StatusAssigned),
		AgentID: decision.AgentID,
	}))
	slog.Info("Task assigned",
		"task_id", t.ID, "agent_id", decision.AgentID,
		"tier", string(decision.Tier), "reason", decision.Reason)

	a.mu.Lock()
	a.tasksAssigned++
	a.mu.Unlock()

	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.executor.Run(ctx, updated, decision, func(cancel context.CancelFunc) func() {
			a.mu.Lock()
			a.activeRuns[t.ID] = cancel
			a.mu.Unlock()
			return func() {
				a.mu.Lock()
				delete(a.activeRuns, t.ID)
				a.mu.Unlock()
			}
		})
	}()
	return placeProgress, nil
}

// AssignManual force-places a pending task on a specific agent, bypassing
// routing. Used by the manual assignment endpoint.
func (a *Assigner) AssignManual(ctx context.Context, taskID, agentID string) (*ent.Task, error) {
	agentRec, err := a.agents.GetAgent(ctx, agentID)
	if err != nil {
		return nil, err
	}
	decision := router.ManualDecision(router.Agent{ID: agentRec.ID, Kind: string(agentRec.Kind)})

	class := router.PoolClass(decision.Tier)
	if !a.pool.TryAcquire(class, taskID) {
		return nil, fmt.Errorf("%w: no free %s slot", services.ErrStateConflict, class)
	}

	now := time.Now()
	claimed, err := a.tasks.Transition(ctx, taskID, task.StatusPending, task.StatusAssigned, func(u *ent.TaskUpdateOne) {
		u.SetAssignedAgentID(agentID).
			SetAssignedAt(now).
			SetLastHeartbeatAt(now).
			SetPodID(a.podID)
	})
	if err != nil {
		a.pool.Release(class, taskID)
		return nil, err
	}

	if _, err := a.agents.SetBusy(ctx, agentID, taskID); err != nil {
		a.pool.Release(class, taskID)
		if _, revertErr := a.tasks.Transition(ctx, taskID, task.StatusAssigned, task.StatusPending, func(u *ent.TaskUpdateOne) {
			u.ClearAssignedAgentID().ClearAssignedAt()
		}); revertErr != nil {
			slog.Error("Failed to revert manual claim", "task_id", taskID, "error", revertErr)
		}
		return nil, err
	}

	a.events.Record(ctx, events.New(events.EventTypeTaskAssigned, taskID, events.TaskStatusPayload{
		TaskID:  taskID,
		Status:  string(task.StatusAssigned),
		AgentID: agentID,
	}))
	slog.Info("Task manually assigned", "task_id", taskID, "agent_id", agentID)

	a.mu.Lock()
	a.tasksAssigned++
	a.mu.Unlock()

	runCtx := a.baseCtx
	if runCtx == nil {
		runCtx = context.Background()
	}
	a.wg.Add(1)
	go func() {
		defer a.wg.Done()
		a.executor.Run(runCtx, claimed, decision, func(cancel context.CancelFunc) func() {
			a.mu.Lock()
			a.activeRuns[taskID] = cancel
			a.mu.Unlock()
			return func() {
				a.mu.Lock()
				delete(a.activeRuns, taskID)
				a.mu.Unlock()
			}
		})
	}()
	return claimed, nil
}

// sleep waits for d or until stop is signalled.
func (a *Assigner) sleep(d time.Duration) {
	select {
	case <-a.stopCh:
	case <-time.After(d):
	}
}

// jitteredInterval spreads polls to avoid thundering herds across pods.
func (a *Assigner) jitteredInterval() time.Duration {
	jitter := a.pollInterval / 4
	if jitter <= 0 {
		return a.pollInterval
	}
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return a.pollInterval - jitter + offset
}
