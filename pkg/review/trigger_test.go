package review

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/codereview"
	"github.com/frugalops/foreman/ent/task"
	"github.com/frugalops/foreman/pkg/assess"
	"github.com/frugalops/foreman/pkg/events"
	"github.com/frugalops/foreman/pkg/services"
	"github.com/frugalops/foreman/test/util"
)

type triggerFixture struct {
	client  *ent.Client
	trigger *Trigger
	reviews *services.ReviewService
}

func setupTrigger(t *testing.T, enabled bool, minComplexity float64) *triggerFixture {
	t.Helper()
	client, _ := util.SetupTestDatabase(t)

	bus := events.NewBus()
	t.Cleanup(bus.Close)
	eventService := services.NewEventService(client, bus)
	taskService := services.NewTaskService(client, assess.NewAssessor(nil), eventService, 3)
	reviewService := services.NewReviewService(client, eventService)

	return &triggerFixture{
		client:  client,
		trigger: NewTrigger(taskService, reviewService, enabled, minComplexity),
		reviews: reviewService,
	}
}

func (f *triggerFixture) createCompleted(t *testing.T, taskType task.TaskType, complexity *float64, priority int) string {
	t.Helper()
	id := uuid.NewString()
	create := f.client.Task.Create().
		SetID(id).
		SetTitle("trigger fixture").
		SetDescription("fixture").
		SetTaskType(taskType).
		SetPriority(priority).
		SetStatus(task.StatusCompleted).
		SetCompletedAt(time.Now())
	if complexity != nil {
		create.SetComplexity(*complexity)
	}
	_, err := create.Save(context.Background())
	require.NoError(t, err)
	return id
}

func (f *triggerFixture) reviewTasksOf(t *testing.T, parentID string) []*ent.Task {
	t.Helper()
	tasks, err := f.client.Task.Query().
		Where(task.TaskTypeEQ(task.TaskTypeReview), task.ParentTaskIDEQ(parentID)).
		All(context.Background())
	require.NoError(t, err)
	return tasks
}

func ptr(f float64) *float64 { return &f }

func TestTriggerSchedulesReviewAboveThreshold(t *testing.T) {
	f := setupTrigger(t, true, 3)
	ctx := context.Background()
	id := f.createCompleted(t, task.TaskTypeCode, ptr(6), 7)

	f.trigger.OnTaskCompleted(ctx, id)

	reviewTasks := f.reviewTasksOf(t, id)
	require.Len(t, reviewTasks, 1)
	rt := reviewTasks[0]
	require.NotNil(t, rt.RequiredAgent)
	assert.Equal(t, task.RequiredAgentCto, *rt.RequiredAgent)
	assert.Equal(t, 7, rt.Priority, "review inherits the parent's priority")
	assert.Equal(t, task.StatusPending, rt.Status)

	record, err := f.reviews.GetByTaskID(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, codereview.StatusPending, record.Status)
	require.NotNil(t, record.ReviewTaskID)
	assert.Equal(t, rt.ID, *record.ReviewTaskID)
}

func TestTriggerSkipsLowOrMissingComplexity(t *testing.T) {
	f := setupTrigger(t, true, 3)
	ctx := context.Background()

	low := f.createCompleted(t, task.TaskTypeCode, ptr(2), 5)
	unscored := f.createCompleted(t, task.TaskTypeCode, nil, 5)

	f.trigger.OnTaskCompleted(ctx, low)
	f.trigger.OnTaskCompleted(ctx, unscored)

	assert.Empty(t, f.reviewTasksOf(t, low))
	assert.Empty(t, f.reviewTasksOf(t, unscored))
}

func TestTriggerSkipsExemptTaskTypes(t *testing.T) {
	f := setupTrigger(t, true, 3)
	ctx := context.Background()

	for _, tt := range []task.TaskType{task.TaskTypeReview, task.TaskTypeDecomposition, task.TaskTypeDebug} {
		id := f.createCompleted(t, tt, ptr(9), 5)
		f.trigger.OnTaskCompleted(ctx, id)
		assert.Empty(t, f.reviewTasksOf(t, id), "task type %s must not be reviewed", tt)
	}
}

func TestTriggerDeduplicates(t *testing.T) {
	f := setupTrigger(t, true, 3)
	ctx := context.Background()
	id := f.createCompleted(t, task.TaskTypeCode, ptr(6), 5)

	f.trigger.OnTaskCompleted(ctx, id)
	f.trigger.OnTaskCompleted(ctx, id)

	assert.Len(t, f.reviewTasksOf(t, id), 1, "a second completion event schedules nothing new")
}

func TestTriggerDisabled(t *testing.T) {
	f := setupTrigger(t, false, 3)
	ctx := context.Background()
	id := f.createCompleted(t, task.TaskTypeCode, ptr(9), 5)

	f.trigger.OnTaskCompleted(ctx, id)

	assert.Empty(t, f.reviewTasksOf(t, id))
}
