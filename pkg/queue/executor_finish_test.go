package queue

import (
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/agent"
	"github.com/frugalops/foreman/ent/task"
	"github.com/frugalops/foreman/pkg/assess"
	"github.com/frugalops/foreman/pkg/cost"
	"github.com/frugalops/foreman/pkg/events"
	"github.com/frugalops/foreman/pkg/models"
	"github.com/frugalops/foreman/pkg/resources"
	"github.com/frugalops/foreman/pkg/router"
	"github.com/frugalops/foreman/pkg/services"
	"github.com/frugalops/foreman/test/util"
)

type executorFixture struct {
	client *ent.Client
	tasks  *services.TaskService
	agents *services.AgentService
	pool   *resources.Pool
	exec   *Executor
}

func setupExecutor(t *testing.T) *executorFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	bus := events.NewBus()
	t.Cleanup(bus.Close)
	eventService := services.NewEventService(client, bus)
	taskService := services.NewTaskService(client, assess.NewAssessor(nil), eventService, 3)
	agentService := services.NewAgentService(client, eventService)
	require.NoError(t, agentService.EnsureDefaults(context.Background()))

	pool := resources.NewPool(1, 2)
	exec := NewExecutor(taskService, agentService, eventService, nil, pool, nil,
		NewToolEventSink(nil, nil, nil, nil), nil, time.Minute)

	return &executorFixture{
		client: client,
		tasks:  taskService,
		agents: agentService,
		pool:   pool,
		exec:   exec,
	}
}

// startRun inserts an in_progress task pinned to coder-1 with a slot held,
// the state finish() normally sees.
func (f *executorFixture) startRun(t *testing.T) string {
	t.Helper()
	ctx := context.Background()
	id := uuid.NewString()

	_, err := f.client.Task.Create().
		SetID(id).
		SetTitle("executor fixture").
		SetDescription("fixture").
		SetStatus(task.StatusInProgress).
		SetAssignedAgentID("coder-1").
		SetAssignedAt(time.Now()).
		SetLastHeartbeatAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.agents.SetBusy(ctx, "coder-1", id)
	require.NoError(t, err)
	require.True(t, f.pool.TryAcquire(resources.ClassLocal, id))
	return id
}

func coderDecision() router.Decision {
	return router.Decision{AgentID: "coder-1", AgentKind: "coder", Tier: cost.TierLocal}
}

func TestFinish_ManualCompletionStillFreesAgent(t *testing.T) {
	f := setupExecutor(t)
	ctx := context.Background()
	id := f.startRun(t)

	// An operator completes the task while the run is still in flight.
	_, err := f.tasks.CompleteTask(ctx, id, models.CompleteTaskRequest{Success: true})
	require.NoError(t, err)

	running, err := f.client.Task.Get(ctx, id)
	require.NoError(t, err)
	f.exec.finish(ctx, running, coderDecision(),
		runOutcome{status: task.StatusFailed, category: "transport", message: "connection reset"},
		slog.Default())

	// The manual write wins, but the agent and slot still come back.
	got, err := f.client.Task.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusCompleted, got.Status)

	a, err := f.agents.GetAgent(ctx, "coder-1")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusIdle, a.Status)
	assert.Nil(t, a.CurrentTaskID)
	assert.Equal(t, 0, f.pool.Status()[resources.ClassLocal].Active)
}

func TestFinish_LeavesReassignedAgentAlone(t *testing.T) {
	f := setupExecutor(t)
	ctx := context.Background()
	id := f.startRun(t)

	// The sweeper aborts the run and frees everything...
	_, err := f.tasks.Transition(ctx, id, task.StatusInProgress, task.StatusAborted, func(u *ent.TaskUpdateOne) {
		u.SetCompletedAt(time.Now()).SetErrorCategory("timeout")
	})
	require.NoError(t, err)
	f.pool.ReleaseAll(id)
	_, err = f.agents.SetIdle(ctx, "coder-1", false)
	require.NoError(t, err)

	// ...and the assigner pins the agent to new work before the executor's
	// finish runs.
	other := uuid.NewString()
	_, err = f.agents.SetBusy(ctx, "coder-1", other)
	require.NoError(t, err)

	f.exec.finish(ctx, &ent.Task{ID: id}, coderDecision(),
		runOutcome{status: task.StatusCompleted, succeeded: true}, slog.Default())

	a, err := f.agents.GetAgent(ctx, "coder-1")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusBusy, a.Status, "an agent busy with someone else's task must not be freed")
	require.NotNil(t, a.CurrentTaskID)
	assert.Equal(t, other, *a.CurrentTaskID)
}

func TestFinish_NeedsHumanReleasesAgentWithoutCompleting(t *testing.T) {
	f := setupExecutor(t)
	ctx := context.Background()
	id := f.startRun(t)

	f.exec.finish(ctx, &ent.Task{ID: id}, coderDecision(),
		runOutcome{status: task.StatusNeedsHuman, category: "budget", message: "daily budget exceeded"},
		slog.Default())

	got, err := f.client.Task.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusNeedsHuman, got.Status)
	assert.Nil(t, got.CompletedAt)
	assert.Nil(t, got.AssignedAgentID)
	require.NotNil(t, got.ErrorCategory)
	assert.Equal(t, "budget", *got.ErrorCategory)

	a, err := f.agents.GetAgent(ctx, "coder-1")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusIdle, a.Status)
	assert.Equal(t, 0, f.pool.Status()[resources.ClassLocal].Active)
}
