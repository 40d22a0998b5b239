package queue

import (
	"context"
	"sync"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/agent"
	"github.com/frugalops/foreman/ent/task"
	"github.com/frugalops/foreman/pkg/assess"
	"github.com/frugalops/foreman/pkg/events"
	"github.com/frugalops/foreman/pkg/resources"
	"github.com/frugalops/foreman/pkg/services"
	"github.com/frugalops/foreman/test/util"
)

// recordingCanceller tracks which tasks the sweeper tried to cancel.
type recordingCanceller struct {
	mu        sync.Mutex
	cancelled []string
}

func (c *recordingCanceller) CancelTask(taskID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.cancelled = append(c.cancelled, taskID)
	return true
}

type sweeperFixture struct {
	client    *ent.Client
	sweeper   *Sweeper
	pool      *resources.Pool
	agents    *services.AgentService
	canceller *recordingCanceller
}

func setupSweeper(t *testing.T, timeout time.Duration) *sweeperFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	bus := events.NewBus()
	t.Cleanup(bus.Close)
	eventService := services.NewEventService(client, bus)
	taskService := services.NewTaskService(client, assess.NewAssessor(nil), eventService, 3)
	agentService := services.NewAgentService(client, eventService)
	require.NoError(t, agentService.EnsureDefaults(context.Background()))

	pool := resources.NewPool(1, 2)
	canceller := &recordingCanceller{}
	sweeper := NewSweeper(client, taskService, agentService, eventService,
		pool, canceller, timeout, time.Minute)

	return &sweeperFixture{
		client:    client,
		sweeper:   sweeper,
		pool:      pool,
		agents:    agentService,
		canceller: canceller,
	}
}

// createRunningTask inserts an in_progress task assigned to coder-1 with the
// given heartbeat age, and marks the agent busy.
func (f *sweeperFixture) createRunningTask(t *testing.T, heartbeatAge time.Duration) string {
	t.Helper()
	ctx := context.Background()
	id := uuid.NewString()

	_, err := f.client.Task.Create().
		SetID(id).
		SetTitle("sweeper fixture").
		SetDescription("fixture").
		SetStatus(task.StatusInProgress).
		SetAssignedAgentID("coder-1").
		SetAssignedAt(time.Now().Add(-heartbeatAge)).
		SetLastHeartbeatAt(time.Now().Add(-heartbeatAge)).
		Save(ctx)
	require.NoError(t, err)

	_, err = f.agents.SetBusy(ctx, "coder-1", id)
	require.NoError(t, err)
	require.True(t, f.pool.TryAcquire(resources.ClassLocal, id))
	return id
}

func TestSweep_AbortsStuckTask(t *testing.T) {
	f := setupSweeper(t, 10*time.Minute)
	ctx := context.Background()
	id := f.createRunningTask(t, 30*time.Minute)

	require.NoError(t, f.sweeper.Sweep(ctx))

	got, err := f.client.Task.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusAborted, got.Status)
	require.NotNil(t, got.ErrorCategory)
	assert.Equal(t, "timeout", *got.ErrorCategory)
	assert.NotNil(t, got.CompletedAt)

	// In-flight run cancelled before the terminal write
	assert.Contains(t, f.canceller.cancelled, id)

	// Slot freed and agent idle again
	assert.Equal(t, 0, f.pool.Status()[resources.ClassLocal].Active)
	a, err := f.agents.GetAgent(ctx, "coder-1")
	require.NoError(t, err)
	assert.Equal(t, agent.StatusIdle, a.Status)
}

func TestSweep_LeavesHealthyTasksAlone(t *testing.T) {
	f := setupSweeper(t, 10*time.Minute)
	ctx := context.Background()
	id := f.createRunningTask(t, time.Minute)

	require.NoError(t, f.sweeper.Sweep(ctx))

	got, err := f.client.Task.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, task.StatusInProgress, got.Status)

	_, swept := f.sweeper.Stats()
	assert.Zero(t, swept)
}

func TestSweep_RecordsRecovery(t *testing.T) {
	f := setupSweeper(t, 10*time.Minute)
	id := f.createRunningTask(t, time.Hour)

	require.NoError(t, f.sweeper.Sweep(context.Background()))

	recoveries := f.sweeper.Recoveries()
	require.Len(t, recoveries, 1)
	assert.Equal(t, id, recoveries[0].TaskID)
	assert.Equal(t, "coder-1", recoveries[0].AgentID)
	assert.Equal(t, "timeout", recoveries[0].Reason)

	_, swept := f.sweeper.Stats()
	assert.Equal(t, 1, swept)
}

func TestSweep_IsIdempotent(t *testing.T) {
	f := setupSweeper(t, 10*time.Minute)
	ctx := context.Background()
	f.createRunningTask(t, time.Hour)

	require.NoError(t, f.sweeper.Sweep(ctx))
	require.NoError(t, f.sweeper.Sweep(ctx))

	_, swept := f.sweeper.Stats()
	assert.Equal(t, 1, swept, "second sweep finds nothing to do")
}

func TestCleanupStartupOrphans(t *testing.T) {
	f := setupSweeper(t, 10*time.Minute)
	ctx := context.Background()

	mine := uuid.NewString()
	_, err := f.client.Task.Create().
		SetID(mine).
		SetTitle("orphan").
		SetDescription("fixture").
		SetStatus(task.StatusAssigned).
		SetPodID("pod-a").
		Save(ctx)
	require.NoError(t, err)

	theirs := uuid.NewString()
	_, err = f.client.Task.Create().
		SetID(theirs).
		SetTitle("other pod").
		SetDescription("fixture").
		SetStatus(task.StatusAssigned).
		SetPodID("pod-b").
		Save(ctx)
	require.NoError(t, err)

	require.NoError(t, CleanupStartupOrphans(ctx, f.client, "pod-a"))

	got, err := f.client.Task.Get(ctx, mine)
	require.NoError(t, err)
	assert.Equal(t, task.StatusAborted, got.Status)

	other, err := f.client.Task.Get(ctx, theirs)
	require.NoError(t, err)
	assert.Equal(t, task.StatusAssigned, other.Status, "other pods' tasks are left for their own restart or the sweeper")
}
