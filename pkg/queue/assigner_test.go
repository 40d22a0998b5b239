package queue

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/agent"
	"github.com/frugalops/foreman/ent/task"
	"github.com/frugalops/foreman/pkg/agentruntime"
	"github.com/frugalops/foreman/pkg/assess"
	"github.com/frugalops/foreman/pkg/events"
	"github.com/frugalops/foreman/pkg/resources"
	"github.com/frugalops/foreman/pkg/router"
	"github.com/frugalops/foreman/pkg/services"
	"github.com/frugalops/foreman/test/util"
)

// blockingRuntime holds every run open until released, so claimed tasks stay
// busy while the test inspects the queue.
type blockingRuntime struct {
	release chan struct{}
}

func (r *blockingRuntime) Execute(ctx context.Context, _ *agentruntime.ExecuteRequest) (*agentruntime.ExecuteResponse, error) {
	select {
	case <-r.release:
	case <-ctx.Done():
	}
	return &agentruntime.ExecuteResponse{
		Success: true,
		Output:  agentruntime.Output{Status: agentruntime.StatusSuccess},
	}, nil
}

type assignerFixture struct {
	client   *ent.Client
	assigner *Assigner
	agents   *services.AgentService
}

func setupAssigner(t *testing.T) *assignerFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	bus := events.NewBus()
	t.Cleanup(bus.Close)
	eventService := services.NewEventService(client, bus)
	taskService := services.NewTaskService(client, assess.NewAssessor(nil), eventService, 3)
	agentService := services.NewAgentService(client, eventService)
	require.NoError(t, agentService.EnsureDefaults(context.Background()))

	pool := resources.NewPool(1, 2)
	runtime := &blockingRuntime{release: make(chan struct{})}
	executor := NewExecutor(taskService, agentService, eventService, runtime, pool, nil,
		NewToolEventSink(taskService, nil, eventService, nil), nil, time.Minute)
	assigner := NewAssigner("pod-test", client, taskService, agentService,
		eventService, router.New(agentService, nil), pool, executor, time.Second)
	t.Cleanup(func() {
		close(runtime.release)
		assigner.Stop()
	})

	return &assignerFixture{client: client, assigner: assigner, agents: agentService}
}

// pauseAllBut leaves only the named agent claimable.
func (f *assignerFixture) pauseAllBut(t *testing.T, keep string) {
	t.Helper()
	ctx := context.Background()
	agents, err := f.agents.ListAgents(ctx)
	require.NoError(t, err)
	for _, a := range agents {
		if a.ID == keep {
			continue
		}
		require.NoError(t, f.client.Agent.UpdateOneID(a.ID).SetStatus(agent.StatusPaused).Exec(ctx))
	}
}

func (f *assignerFixture) createPending(t *testing.T, priority int, createdAt time.Time) string {
	t.Helper()
	id := uuid.NewString()
	_, err := f.client.Task.Create().
		SetID(id).
		SetTitle("assigner fixture").
		SetDescription("fixture").
		SetStatus(task.StatusPending).
		SetPriority(priority).
		SetComplexity(2).
		SetCreatedAt(createdAt).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func TestAssignOnce_HigherPriorityWins(t *testing.T) {
	f := setupAssigner(t)
	ctx := context.Background()
	f.pauseAllBut(t, "coder-1")

	// The low-priority task is older; priority still decides.
	low := f.createPending(t, 3, time.Now().Add(-time.Hour))
	high := f.createPending(t, 8, time.Now())

	assigned, err := f.assigner.assignOnce(ctx)
	require.NoError(t, err)
	require.True(t, assigned)

	got, err := f.client.Task.Get(ctx, high)
	require.NoError(t, err)
	require.NotNil(t, got.AssignedAgentID)
	assert.Equal(t, "coder-1", *got.AssignedAgentID)

	// The only coder is busy now; the second pass places nothing and the
	// low-priority task keeps waiting.
	assigned, err = f.assigner.assignOnce(ctx)
	require.NoError(t, err)
	assert.False(t, assigned)

	remaining, err := f.client.Task.Get(ctx, low)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, remaining.Status)
	assert.Nil(t, remaining.AssignedAgentID)
}

func TestAssignOnce_FIFOWithinPriority(t *testing.T) {
	f := setupAssigner(t)
	ctx := context.Background()
	f.pauseAllBut(t, "coder-1")

	first := f.createPending(t, 5, time.Now().Add(-2*time.Hour))
	second := f.createPending(t, 5, time.Now().Add(-time.Hour))

	assigned, err := f.assigner.assignOnce(ctx)
	require.NoError(t, err)
	require.True(t, assigned)

	got, err := f.client.Task.Get(ctx, first)
	require.NoError(t, err)
	require.NotNil(t, got.AssignedAgentID)
	assert.Equal(t, "coder-1", *got.AssignedAgentID)

	later, err := f.client.Task.Get(ctx, second)
	require.NoError(t, err)
	assert.Equal(t, task.StatusPending, later.Status)
}

func TestAssignOnce_EmptyQueue(t *testing.T) {
	f := setupAssigner(t)

	_, err := f.assigner.assignOnce(context.Background())
	assert.ErrorIs(t, err, ErrNoTasksAvailable)
}
