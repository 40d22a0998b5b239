package review

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/frugalops/foreman/ent/task"
	"github.com/frugalops/foreman/pkg/models"
	"github.com/frugalops/foreman/pkg/services"
)

// skipTypes never get a review of their own.
var skipTypes = map[task.TaskType]bool{
	task.TaskTypeReview:        true,
	task.TaskTypeDecomposition: true,
	task.TaskTypeDebug:         true,
}

// Trigger decides, after a task completes, whether to schedule a code
// review. It opens the pending CodeReview record and enqueues the internal
// review task; the reviewer handles the rest when the task is picked up.
type Trigger struct {
	tasks         *services.TaskService
	reviews       *services.ReviewService
	enabled       bool
	minComplexity float64
}

// NewTrigger creates a review trigger.
func NewTrigger(tasks *services.TaskService, reviews *services.ReviewService, enabled bool, minComplexity float64) *Trigger {
	return &Trigger{
		tasks:         tasks,
		reviews:       reviews,
		enabled:       enabled,
		minComplexity: minComplexity,
	}
}

// OnTaskCompleted evaluates a freshly completed task. Errors are logged, not
// returned: a failed review scheduling never affects the completed task.
func (t *Trigger) OnTaskCompleted(ctx context.Context, taskID string) {
	if !t.enabled {
		return
	}
	if err := t.schedule(ctx, taskID); err != nil {
		slog.Error("Failed to schedule code review", "task_id", taskID, "error", err)
	}
}

func (t *Trigger) schedule(ctx context.Context, taskID string) error {
	completed, err := t.tasks.GetTask(ctx, taskID)
	if err != nil {
		return err
	}

	if skipTypes[completed.TaskType] {
		return nil
	}
	if completed.Complexity == nil || *completed.Complexity < t.minComplexity {
		return nil
	}
	exists, err := t.reviews.Exists(ctx, taskID)
	if err != nil {
		return err
	}
	if exists {
		return nil
	}

	priority := completed.Priority
	reviewTask, err := t.tasks.CreateTask(ctx, models.CreateTaskRequest{
		Title:         "Review: " + completed.Title,
		Description:   reviewDescription(completed.ID, completed.Title),
		TaskType:      string(task.TaskTypeReview),
		RequiredAgent: "cto",
		Priority:      &priority,
		ParentTaskID:  completed.ID,
	})
	if err != nil {
		return fmt.Errorf("creating review task: %w", err)
	}

	if _, err := t.reviews.Create(ctx, completed.ID, reviewTask.ID); err != nil {
		// A concurrent trigger won the race; the extra review task will
		// still run and find the verdict already recorded.
		if errors.Is(err, services.ErrAlreadyExists) {
			return nil
		}
		return err
	}

	slog.Info("Code review scheduled",
		"task_id", completed.ID, "review_task_id", reviewTask.ID,
		"complexity", *completed.Complexity)
	return nil
}

func reviewDescription(taskID, title string) string {
	return fmt.Sprintf("Review the code produced for task %s (%q). "+
		"Assess correctness, robustness and maintainability from its execution transcript.", taskID, title)
}
