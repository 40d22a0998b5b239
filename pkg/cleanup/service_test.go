package cleanup

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/task"
	"github.com/frugalops/foreman/pkg/assess"
	"github.com/frugalops/foreman/pkg/config"
	"github.com/frugalops/foreman/pkg/events"
	"github.com/frugalops/foreman/pkg/services"
	"github.com/frugalops/foreman/test/util"
)

func setupService(t *testing.T) (*Service, *ent.Client) {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	bus := events.NewBus()
	t.Cleanup(bus.Close)
	eventService := services.NewEventService(client, bus)
	taskService := services.NewTaskService(client, assess.NewAssessor(nil), eventService, 3)

	cfg := &config.RetentionConfig{
		Enabled:           true,
		TaskRetentionDays: 30,
		EventTTLMS:        86_400_000,
		CleanupIntervalMS: 3_600_000,
	}
	return NewService(cfg, taskService, eventService), client
}

func createTerminalTask(t *testing.T, client *ent.Client, completedAt time.Time) string {
	t.Helper()
	id := uuid.NewString()
	_, err := client.Task.Create().
		SetID(id).
		SetTitle("retention fixture").
		SetDescription("fixture").
		SetStatus(task.StatusCompleted).
		SetCompletedAt(completedAt).
		Save(context.Background())
	require.NoError(t, err)
	return id
}

func createExecutionLog(t *testing.T, client *ent.Client, taskID string) {
	t.Helper()
	_, err := client.ExecutionLog.Create().
		SetID(uuid.NewString()).
		SetTaskID(taskID).
		SetStep(1).
		SetAction("shell_run").
		SetInput("ls").
		SetObservation("ok").
		Save(context.Background())
	require.NoError(t, err)
}

func TestRunAll_PurgesExpiredTasks(t *testing.T) {
	svc, client := setupService(t)
	ctx := context.Background()

	expired := createTerminalTask(t, client, time.Now().Add(-40*24*time.Hour))
	createExecutionLog(t, client, expired)
	_, err := client.CodeReview.Create().
		SetID(uuid.NewString()).
		SetTaskID(expired).
		Save(ctx)
	require.NoError(t, err)

	recent := createTerminalTask(t, client, time.Now().Add(-time.Hour))

	svc.RunAll(ctx)

	_, err = client.Task.Get(ctx, expired)
	assert.True(t, ent.IsNotFound(err), "expired task should be purged")

	_, err = client.Task.Get(ctx, recent)
	assert.NoError(t, err, "recent task must survive")

	logs, err := client.ExecutionLog.Query().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, logs, "logs of purged tasks go with them")

	reviews, err := client.CodeReview.Query().All(ctx)
	require.NoError(t, err)
	assert.Empty(t, reviews)
}

func TestRunAll_KeepsNonTerminalTasks(t *testing.T) {
	svc, client := setupService(t)
	ctx := context.Background()

	// Old but still pending: retention keys off completed_at, which is unset.
	id := uuid.NewString()
	_, err := client.Task.Create().
		SetID(id).
		SetTitle("long queued").
		SetDescription("fixture").
		SetCreatedAt(time.Now().Add(-90 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc.RunAll(ctx)

	_, err = client.Task.Get(ctx, id)
	assert.NoError(t, err)
}

func TestRunAll_PurgesOldEvents(t *testing.T) {
	svc, client := setupService(t)
	ctx := context.Background()

	_, err := client.Event.Create().
		SetEventType("task_created").
		SetPayload(map[string]interface{}{}).
		SetCreatedAt(time.Now().Add(-48 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)
	_, err = client.Event.Create().
		SetEventType("task_created").
		SetPayload(map[string]interface{}{}).
		SetCreatedAt(time.Now()).
		Save(ctx)
	require.NoError(t, err)

	svc.RunAll(ctx)

	remaining, err := client.Event.Query().All(ctx)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
}

func TestStartStop(t *testing.T) {
	svc, _ := setupService(t)

	svc.Start(context.Background())
	svc.Stop()
}
