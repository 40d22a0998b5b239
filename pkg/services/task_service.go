package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/frugalops/foreman/ent"
	"github.com/frugalops/foreman/ent/codereview"
	"github.com/frugalops/foreman/ent/executionlog"
	"github.com/frugalops/foreman/ent/task"
	"github.com/frugalops/foreman/pkg/assess"
	"github.com/frugalops/foreman/pkg/events"
	"github.com/frugalops/foreman/pkg/models"
)

// validTaskTypes mirrors the task_type enum.
var validTaskTypes = map[string]bool{
	"code": true, "test": true, "review": true,
	"refactor": true, "debug": true, "decomposition": true,
}

var validAgentKinds = map[string]bool{"coder": true, "qa": true, "cto": true}

// TerminalStatuses are the states a task never leaves.
var TerminalStatuses = []task.Status{
	task.StatusCompleted, task.StatusFailed, task.StatusAborted,
}

// IsTerminal reports whether a status is terminal.
func IsTerminal(s task.Status) bool {
	for _, t := range TerminalStatuses {
		if s == t {
			return true
		}
	}
	return false
}

// TaskService manages task lifecycle. All status transitions go through
// compare-and-set so racing components (executor vs sweeper) cannot both
// win.
type TaskService struct {
	client               *ent.Client
	assessor             *assess.Assessor
	events               *EventService
	defaultMaxIterations int
}

// NewTaskService creates a TaskService.
func NewTaskService(client *ent.Client, assessor *assess.Assessor, ev *EventService, defaultMaxIterations int) *TaskService {
	if defaultMaxIterations < 1 {
		defaultMaxIterations = 3
	}
	return &TaskService{
		client:               client,
		assessor:             assessor,
		events:               ev,
		defaultMaxIterations: defaultMaxIterations,
	}
}

// CreateTask validates, scores, and persists a new task in pending state.
func (s *TaskService) CreateTask(httpCtx context.Context, req models.CreateTaskRequest) (*ent.Task, error) {
	if req.Title == "" {
		return nil, NewValidationError("title", "required")
	}
	if req.Description == "" {
		return nil, NewValidationError("description", "required")
	}
	if !validTaskTypes[req.TaskType] {
		return nil, NewValidationError("task_type", "unknown task type "+req.TaskType)
	}
	priority := 5
	if req.Priority != nil {
		if *req.Priority < 0 || *req.Priority > 10 {
			return nil, NewValidationError("priority", "must be in [0,10]")
		}
		priority = *req.Priority
	}
	maxIterations := s.defaultMaxIterations
	if req.MaxIterations != nil {
		if *req.MaxIterations < 1 {
			return nil, NewValidationError("max_iterations", "must be >= 1")
		}
		maxIterations = *req.MaxIterations
	}
	if req.RequiredAgent != "" && !validAgentKinds[req.RequiredAgent] {
		return nil, NewValidationError("required_agent", "unknown agent kind "+req.RequiredAgent)
	}

	verdict := s.assessor.Assess(httpCtx, assess.Input{
		Title:       req.Title,
		Description: req.Description,
		TaskType:    req.TaskType,
		Priority:    priority,
	})

	// Critical write keeps going even if the HTTP client hangs up.
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	builder := s.client.Task.Create().
		SetID(uuid.New().String()).
		SetTitle(req.Title).
		SetDescription(req.Description).
		SetTaskType(task.TaskType(req.TaskType)).
		SetPriority(priority).
		SetMaxIterations(maxIterations).
		SetStatus(task.StatusPending).
		SetComplexity(verdict.Complexity).
		SetComplexitySource(task.ComplexitySource(verdict.Source)).
		SetComplexityReasoning(verdict.Reasoning)

	if req.RequiredAgent != "" {
		builder.SetRequiredAgent(task.RequiredAgent(req.RequiredAgent))
	}
	if req.ValidationCommand != "" {
		builder.SetValidationCommand(req.ValidationCommand)
	}
	if req.ParentTaskID != "" {
		builder.SetParentTaskID(req.ParentTaskID)
	}

	created, err := builder.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, ErrAlreadyExists
		}
		return nil, fmt.Errorf("failed to create task: %w", err)
	}

	s.events.Record(ctx, events.New(events.EventTypeTaskCreated, created.ID, events.TaskStatusPayload{
		TaskID:   created.ID,
		Status:   string(created.Status),
		TaskType: string(created.TaskType),
		Priority: created.Priority,
	}))
	return created, nil
}

// GetTask fetches one task.
func (s *TaskService) GetTask(ctx context.Context, id string) (*ent.Task, error) {
	t, err := s.client.Task.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, ErrNotFound
		}
		return nil, fmt.Errorf("failed to get task: %w", err)
	}
	return t, nil
}

// ListTasks lists tasks, optionally filtered, newest first.
func (s *TaskService) ListTasks(ctx context.Context, filter models.ListTasksFilter) ([]*ent.Task, error) {
	q := s.client.Task.Query()
	if filter.Status != "" {
		q = q.Where(task.StatusEQ(task.Status(filter.Status)))
	}
	if filter.AgentID != "" {
		q = q.Where(task.AssignedAgentIDEQ(filter.AgentID))
	}
	limit := filter.Limit
	if limit <= 0 || limit > 500 {
		limit = 100
	}
	tasks, err := q.Order(ent.Desc(task.FieldCreatedAt)).Limit(limit).All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list tasks: %w", err)
	}
	return tasks, nil
}

// UpdateTask applies a partial update. Allowed only while the task is still
// pending; a manual complexity override records source=override.
func (s *TaskService) UpdateTask(ctx context.Context, id string, req models.UpdateTaskRequest) (*ent.Task, error) {
	if req.Priority != nil && (*req.Priority < 0 || *req.Priority > 10) {
		return nil, NewValidationError("priority", "must be in [0,10]")
	}
	if req.MaxIterations != nil && *req.MaxIterations < 1 {
		return nil, NewValidationError("max_iterations", "must be >= 1")
	}
	if req.Complexity != nil && (*req.Complexity < assess.MinComplexity || *req.Complexity > assess.MaxComplexity) {
		return nil, NewValidationError("complexity", "must be in [1,10]")
	}

	upd := s.client.Task.UpdateOneID(id).
		Where(task.StatusEQ(task.StatusPending))
	if req.Title != nil {
		upd.SetTitle(*req.Title)
	}
	if req.Description != nil {
		upd.SetDescription(*req.Description)
	}
	if req.Priority != nil {
		upd.SetPriority(*req.Priority)
	}
	if req.MaxIterations != nil {
		upd.SetMaxIterations(*req.MaxIterations)
	}
	if req.ValidationCommand != nil {
		upd.SetValidationCommand(*req.ValidationCommand)
	}
	if req.Complexity != nil {
		upd.SetComplexity(assess.Round1(*req.Complexity)).
			SetComplexitySource(task.ComplexitySourceOverride)
	}

	updated, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, s.classifyMissing(ctx, id)
		}
		return nil, fmt.Errorf("failed to update task: %w", err)
	}

	s.events.Record(ctx, events.New(events.EventTypeTaskUpdated, updated.ID, events.TaskStatusPayload{
		TaskID: updated.ID, Status: string(updated.Status), Priority: updated.Priority,
	}))
	return updated, nil
}

// Transition performs a compare-and-set status change. mutate may add more
// field updates to the same statement. Returns ErrStateConflict when the
// task was no longer in the expected state.
func (s *TaskService) Transition(ctx context.Context, id string, from, to task.Status, mutate func(*ent.TaskUpdateOne)) (*ent.Task, error) {
	upd := s.client.Task.UpdateOneID(id).
		Where(task.StatusEQ(from)).
		SetStatus(to)
	if mutate != nil {
		mutate(upd)
	}
	updated, err := upd.Save(ctx)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, s.classifyMissing(ctx, id)
		}
		return nil, fmt.Errorf("failed to transition task %s %s->%s: %w", id, from, to, err)
	}
	return updated, nil
}

// classifyMissing tells a genuinely absent task apart from a CAS loss.
func (s *TaskService) classifyMissing(ctx context.Context, id string) error {
	if _, err := s.client.Task.Get(ctx, id); err != nil {
		if ent.IsNotFound(err) {
			return ErrNotFound
		}
		return fmt.Errorf("failed to classify conflict for task %s: %w", id, err)
	}
	return ErrStateConflict
}

// CompleteTask is the manual terminal transition (POST /tasks/:id/complete).
// It works from any non-terminal state.
func (s *TaskService) CompleteTask(ctx context.Context, id string, req models.CompleteTaskRequest) (*ent.Task, error) {
	current, err := s.GetTask(ctx, id)
	if err != nil {
		return nil, err
	}
	if IsTerminal(current.Status) {
		return nil, ErrStateConflict
	}

	to := task.StatusCompleted
	if !req.Success {
		to = task.StatusFailed
	}
	updated, err := s.Transition(ctx, id, current.Status, to, func(u *ent.TaskUpdateOne) {
		u.SetCompletedAt(time.Now())
		if req.Result != nil {
			u.SetResult(req.Result)
		}
		if req.Error != "" {
			u.SetErrorMessage(req.Error).SetErrorCategory("manual")
		}
	})
	if err != nil {
		return nil, err
	}

	eventType := events.EventTypeTaskCompleted
	if !req.Success {
		eventType = events.EventTypeTaskUpdated
	}
	s.events.Record(ctx, events.New(eventType, updated.ID, events.TaskStatusPayload{
		TaskID: updated.ID, Status: string(updated.Status),
	}))
	return updated, nil
}

// DeleteTask removes a task. Only allowed in non-terminal, non-assigned
// states (pending or needs_human); everything else conflicts.
func (s *TaskService) DeleteTask(ctx context.Context, id string) error {
	current, err := s.GetTask(ctx, id)
	if err != nil {
		return err
	}
	switch current.Status {
	case task.StatusPending, task.StatusNeedsHuman:
	default:
		return ErrStateConflict
	}

	// Deleting via predicate keeps this race-free against the assigner.
	n, err := s.client.Task.Delete().
		Where(task.IDEQ(id), task.StatusIn(task.StatusPending, task.StatusNeedsHuman)).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete task: %w", err)
	}
	if n == 0 {
		return ErrStateConflict
	}
	return nil
}

// Heartbeat records executor liveness for a running task.
func (s *TaskService) Heartbeat(ctx context.Context, id string) error {
	err := s.client.Task.UpdateOneID(id).
		Where(task.StatusIn(task.StatusAssigned, task.StatusInProgress)).
		SetLastHeartbeatAt(time.Now()).
		Exec(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return fmt.Errorf("failed to heartbeat task %s: %w", id, err)
	}
	return nil
}

// PurgeTerminalTasks deletes terminal tasks whose completed_at is older than
// the retention cutoff, together with their execution logs and review
// records. Returns the number of tasks removed.
func (s *TaskService) PurgeTerminalTasks(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)

	ids, err := s.client.Task.Query().
		Where(
			task.StatusIn(TerminalStatuses...),
			task.CompletedAtLT(cutoff),
		).
		IDs(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to query expired tasks: %w", err)
	}
	if len(ids) == 0 {
		return 0, nil
	}

	if _, err := s.client.ExecutionLog.Delete().
		Where(executionlog.TaskIDIn(ids...)).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to purge execution logs: %w", err)
	}
	if _, err := s.client.CodeReview.Delete().
		Where(codereview.Or(
			codereview.TaskIDIn(ids...),
			codereview.ReviewTaskIDIn(ids...),
		)).
		Exec(ctx); err != nil {
		return 0, fmt.Errorf("failed to purge code reviews: %w", err)
	}

	n, err := s.client.Task.Delete().
		Where(task.IDIn(ids...)).
		Exec(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to purge tasks: %w", err)
	}
	return n, nil
}
