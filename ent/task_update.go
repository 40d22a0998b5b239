// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/frugalops/foreman/ent/codereview"
	"github.com/frugalops/foreman/ent/event"
	"github.com/frugalops/foreman/ent/executionlog"
	"github.com/frugalops/foreman/ent/predicate"
	"github.com/frugalops/foreman/ent/task"
)

// TaskUpdate is the builder for updating Task entities.
type TaskUpdate struct {
	config
	hooks    []Hook
	mutation *TaskMutation
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdate) Where(ps ...predicate.Task) *TaskUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetTitle sets the "title" field.
func (_u *TaskUpdate) SetTitle(v string) *TaskUpdate {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTitle(v *string) *TaskUpdate {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdate) SetDescription(v string) *TaskUpdate {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableDescription(v *string) *TaskUpdate {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdate) SetTaskType(v task.TaskType) *TaskUpdate {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableTaskType(v *task.TaskType) *TaskUpdate {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdate) SetPriority(v int) *TaskUpdate {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePriority(v *int) *TaskUpdate {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskUpdate) AddPriority(v int) *TaskUpdate {
	_u.mutation.AddPriority(v)
	return _u
}

// SetRequiredAgent sets the "required_agent" field.
func (_u *TaskUpdate) SetRequiredAgent(v task.RequiredAgent) *TaskUpdate {
	_u.mutation.SetRequiredAgent(v)
	return _u
}

// SetNillableRequiredAgent sets the "required_agent" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableRequiredAgent(v *task.RequiredAgent) *TaskUpdate {
	if v != nil {
		_u.SetRequiredAgent(*v)
	}
	return _u
}

// ClearRequiredAgent clears the value of the "required_agent" field.
func (_u *TaskUpdate) ClearRequiredAgent() *TaskUpdate {
	_u.mutation.ClearRequiredAgent()
	return _u
}

// SetMaxIterations sets the "max_iterations" field.
func (_u *TaskUpdate) SetMaxIterations(v int) *TaskUpdate {
	_u.mutation.ResetMaxIterations()
	_u.mutation.SetMaxIterations(v)
	return _u
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableMaxIterations(v *int) *TaskUpdate {
	if v != nil {
		_u.SetMaxIterations(*v)
	}
	return _u
}

// AddMaxIterations adds value to the "max_iterations" field.
func (_u *TaskUpdate) AddMaxIterations(v int) *TaskUpdate {
	_u.mutation.AddMaxIterations(v)
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdate) SetParentTaskID(v string) *TaskUpdate {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableParentTaskID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdate) ClearParentTaskID() *TaskUpdate {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *TaskUpdate) SetComplexity(v float64) *TaskUpdate {
	_u.mutation.ResetComplexity()
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableComplexity(v *float64) *TaskUpdate {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// AddComplexity adds value to the "complexity" field.
func (_u *TaskUpdate) AddComplexity(v float64) *TaskUpdate {
	_u.mutation.AddComplexity(v)
	return _u
}

// ClearComplexity clears the value of the "complexity" field.
func (_u *TaskUpdate) ClearComplexity() *TaskUpdate {
	_u.mutation.ClearComplexity()
	return _u
}

// SetComplexitySource sets the "complexity_source" field.
func (_u *TaskUpdate) SetComplexitySource(v task.ComplexitySource) *TaskUpdate {
	_u.mutation.SetComplexitySource(v)
	return _u
}

// SetNillableComplexitySource sets the "complexity_source" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableComplexitySource(v *task.ComplexitySource) *TaskUpdate {
	if v != nil {
		_u.SetComplexitySource(*v)
	}
	return _u
}

// ClearComplexitySource clears the value of the "complexity_source" field.
func (_u *TaskUpdate) ClearComplexitySource() *TaskUpdate {
	_u.mutation.ClearComplexitySource()
	return _u
}

// SetComplexityReasoning sets the "complexity_reasoning" field.
func (_u *TaskUpdate) SetComplexityReasoning(v string) *TaskUpdate {
	_u.mutation.SetComplexityReasoning(v)
	return _u
}

// SetNillableComplexityReasoning sets the "complexity_reasoning" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableComplexityReasoning(v *string) *TaskUpdate {
	if v != nil {
		_u.SetComplexityReasoning(*v)
	}
	return _u
}

// ClearComplexityReasoning clears the value of the "complexity_reasoning" field.
func (_u *TaskUpdate) ClearComplexityReasoning() *TaskUpdate {
	_u.mutation.ClearComplexityReasoning()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdate) SetStatus(v task.Status) *TaskUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableStatus(v *task.Status) *TaskUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *TaskUpdate) SetAssignedAgentID(v string) *TaskUpdate {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedAgentID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *TaskUpdate) ClearAssignedAgentID() *TaskUpdate {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *TaskUpdate) SetAssignedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableAssignedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *TaskUpdate) ClearAssignedAt() *TaskUpdate {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdate) SetCompletedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCompletedAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdate) ClearCompletedAt() *TaskUpdate {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCurrentIteration sets the "current_iteration" field.
func (_u *TaskUpdate) SetCurrentIteration(v int) *TaskUpdate {
	_u.mutation.ResetCurrentIteration()
	_u.mutation.SetCurrentIteration(v)
	return _u
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableCurrentIteration(v *int) *TaskUpdate {
	if v != nil {
		_u.SetCurrentIteration(*v)
	}
	return _u
}

// AddCurrentIteration adds value to the "current_iteration" field.
func (_u *TaskUpdate) AddCurrentIteration(v int) *TaskUpdate {
	_u.mutation.AddCurrentIteration(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskUpdate) SetResult(v map[string]interface{}) *TaskUpdate {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskUpdate) ClearResult() *TaskUpdate {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdate) SetErrorMessage(v string) *TaskUpdate {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorMessage(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdate) ClearErrorMessage() *TaskUpdate {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorCategory sets the "error_category" field.
func (_u *TaskUpdate) SetErrorCategory(v string) *TaskUpdate {
	_u.mutation.SetErrorCategory(v)
	return _u
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableErrorCategory(v *string) *TaskUpdate {
	if v != nil {
		_u.SetErrorCategory(*v)
	}
	return _u
}

// ClearErrorCategory clears the value of the "error_category" field.
func (_u *TaskUpdate) ClearErrorCategory() *TaskUpdate {
	_u.mutation.ClearErrorCategory()
	return _u
}

// SetValidationCommand sets the "validation_command" field.
func (_u *TaskUpdate) SetValidationCommand(v string) *TaskUpdate {
	_u.mutation.SetValidationCommand(v)
	return _u
}

// SetNillableValidationCommand sets the "validation_command" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableValidationCommand(v *string) *TaskUpdate {
	if v != nil {
		_u.SetValidationCommand(*v)
	}
	return _u
}

// ClearValidationCommand clears the value of the "validation_command" field.
func (_u *TaskUpdate) ClearValidationCommand() *TaskUpdate {
	_u.mutation.ClearValidationCommand()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskUpdate) SetPodID(v string) *TaskUpdate {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskUpdate) SetNillablePodID(v *string) *TaskUpdate {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskUpdate) ClearPodID() *TaskUpdate {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdate) SetLastHeartbeatAt(v time.Time) *TaskUpdate {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdate) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdate {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdate) ClearLastHeartbeatAt() *TaskUpdate {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdate) SetUpdatedAt(v time.Time) *TaskUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExecutionLogIDs adds the "execution_logs" edge to the ExecutionLog entity by IDs.
func (_u *TaskUpdate) AddExecutionLogIDs(ids ...string) *TaskUpdate {
	_u.mutation.AddExecutionLogIDs(ids...)
	return _u
}

// AddExecutionLogs adds the "execution_logs" edges to the ExecutionLog entity.
func (_u *TaskUpdate) AddExecutionLogs(v ...*ExecutionLog) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionLogIDs(ids...)
}

// SetCodeReviewID sets the "code_review" edge to the CodeReview entity by ID.
func (_u *TaskUpdate) SetCodeReviewID(id string) *TaskUpdate {
	_u.mutation.SetCodeReviewID(id)
	return _u
}

// SetNillableCodeReviewID sets the "code_review" edge to the CodeReview entity by ID if the given value is not nil.
func (_u *TaskUpdate) SetNillableCodeReviewID(id *string) *TaskUpdate {
	if id != nil {
		_u = _u.SetCodeReviewID(*id)
	}
	return _u
}

// SetCodeReview sets the "code_review" edge to the CodeReview entity.
func (_u *TaskUpdate) SetCodeReview(v *CodeReview) *TaskUpdate {
	return _u.SetCodeReviewID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *TaskUpdate) AddEventIDs(ids ...int64) *TaskUpdate {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *TaskUpdate) AddEvents(v ...*Event) *TaskUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdate) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearExecutionLogs clears all "execution_logs" edges to the ExecutionLog entity.
func (_u *TaskUpdate) ClearExecutionLogs() *TaskUpdate {
	_u.mutation.ClearExecutionLogs()
	return _u
}

// RemoveExecutionLogIDs removes the "execution_logs" edge to ExecutionLog entities by IDs.
func (_u *TaskUpdate) RemoveExecutionLogIDs(ids ...string) *TaskUpdate {
	_u.mutation.RemoveExecutionLogIDs(ids...)
	return _u
}

// RemoveExecutionLogs removes "execution_logs" edges to ExecutionLog entities.
func (_u *TaskUpdate) RemoveExecutionLogs(v ...*ExecutionLog) *TaskUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionLogIDs(ids...)
}

// ClearCodeReview clears the "code_review" edge to the CodeReview entity.
func (_u *TaskUpdate) ClearCodeReview() *TaskUpdate {
	_u.mutation.ClearCodeReview()
	return _u
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *TaskUpdate) ClearEvents() *TaskUpdate {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *TaskUpdate) RemoveEventIDs(ids ...int64) *TaskUpdate {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *TaskUpdate) RemoveEvents(v ...*Event) *TaskUpdate {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TaskUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TaskUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdate) check() error {
	if v, ok := _u.mutation.TaskType(); ok {
		if err := task.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "Task.task_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredAgent(); ok {
		if err := task.RequiredAgentValidator(v); err != nil {
			return &ValidationError{Name: "required_agent", err: fmt.Errorf(`ent: validator failed for field "Task.required_agent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ComplexitySource(); ok {
		if err := task.ComplexitySourceValidator(v); err != nil {
			return &ValidationError{Name: "complexity_source", err: fmt.Errorf(`ent: validator failed for field "Task.complexity_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequiredAgent(); ok {
		_spec.SetField(task.FieldRequiredAgent, field.TypeEnum, value)
	}
	if _u.mutation.RequiredAgentCleared() {
		_spec.ClearField(task.FieldRequiredAgent, field.TypeEnum)
	}
	if value, ok := _u.mutation.MaxIterations(); ok {
		_spec.SetField(task.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxIterations(); ok {
		_spec.AddField(task.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(task.FieldComplexity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedComplexity(); ok {
		_spec.AddField(task.FieldComplexity, field.TypeFloat64, value)
	}
	if _u.mutation.ComplexityCleared() {
		_spec.ClearField(task.FieldComplexity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ComplexitySource(); ok {
		_spec.SetField(task.FieldComplexitySource, field.TypeEnum, value)
	}
	if _u.mutation.ComplexitySourceCleared() {
		_spec.ClearField(task.FieldComplexitySource, field.TypeEnum)
	}
	if value, ok := _u.mutation.ComplexityReasoning(); ok {
		_spec.SetField(task.FieldComplexityReasoning, field.TypeString, value)
	}
	if _u.mutation.ComplexityReasoningCleared() {
		_spec.ClearField(task.FieldComplexityReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(task.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(task.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(task.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentIteration(); ok {
		_spec.SetField(task.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIteration(); ok {
		_spec.AddField(task.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCategory(); ok {
		_spec.SetField(task.FieldErrorCategory, field.TypeString, value)
	}
	if _u.mutation.ErrorCategoryCleared() {
		_spec.ClearField(task.FieldErrorCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationCommand(); ok {
		_spec.SetField(task.FieldValidationCommand, field.TypeString, value)
	}
	if _u.mutation.ValidationCommandCleared() {
		_spec.ClearField(task.FieldValidationCommand, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(task.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(task.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutionLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ExecutionLogsTable,
			Columns: []string{task.ExecutionLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionLogsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ExecutionLogsTable,
			Columns: []string{task.ExecutionLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ExecutionLogsTable,
			Columns: []string{task.ExecutionLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CodeReviewCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   task.CodeReviewTable,
			Columns: []string{task.CodeReviewColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CodeReviewIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   task.CodeReviewTable,
			Columns: []string{task.CodeReviewColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TaskUpdateOne is the builder for updating a single Task entity.
type TaskUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TaskMutation
}

// SetTitle sets the "title" field.
func (_u *TaskUpdateOne) SetTitle(v string) *TaskUpdateOne {
	_u.mutation.SetTitle(v)
	return _u
}

// SetNillableTitle sets the "title" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTitle(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetTitle(*v)
	}
	return _u
}

// SetDescription sets the "description" field.
func (_u *TaskUpdateOne) SetDescription(v string) *TaskUpdateOne {
	_u.mutation.SetDescription(v)
	return _u
}

// SetNillableDescription sets the "description" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableDescription(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetDescription(*v)
	}
	return _u
}

// SetTaskType sets the "task_type" field.
func (_u *TaskUpdateOne) SetTaskType(v task.TaskType) *TaskUpdateOne {
	_u.mutation.SetTaskType(v)
	return _u
}

// SetNillableTaskType sets the "task_type" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableTaskType(v *task.TaskType) *TaskUpdateOne {
	if v != nil {
		_u.SetTaskType(*v)
	}
	return _u
}

// SetPriority sets the "priority" field.
func (_u *TaskUpdateOne) SetPriority(v int) *TaskUpdateOne {
	_u.mutation.ResetPriority()
	_u.mutation.SetPriority(v)
	return _u
}

// SetNillablePriority sets the "priority" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePriority(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetPriority(*v)
	}
	return _u
}

// AddPriority adds value to the "priority" field.
func (_u *TaskUpdateOne) AddPriority(v int) *TaskUpdateOne {
	_u.mutation.AddPriority(v)
	return _u
}

// SetRequiredAgent sets the "required_agent" field.
func (_u *TaskUpdateOne) SetRequiredAgent(v task.RequiredAgent) *TaskUpdateOne {
	_u.mutation.SetRequiredAgent(v)
	return _u
}

// SetNillableRequiredAgent sets the "required_agent" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableRequiredAgent(v *task.RequiredAgent) *TaskUpdateOne {
	if v != nil {
		_u.SetRequiredAgent(*v)
	}
	return _u
}

// ClearRequiredAgent clears the value of the "required_agent" field.
func (_u *TaskUpdateOne) ClearRequiredAgent() *TaskUpdateOne {
	_u.mutation.ClearRequiredAgent()
	return _u
}

// SetMaxIterations sets the "max_iterations" field.
func (_u *TaskUpdateOne) SetMaxIterations(v int) *TaskUpdateOne {
	_u.mutation.ResetMaxIterations()
	_u.mutation.SetMaxIterations(v)
	return _u
}

// SetNillableMaxIterations sets the "max_iterations" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableMaxIterations(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetMaxIterations(*v)
	}
	return _u
}

// AddMaxIterations adds value to the "max_iterations" field.
func (_u *TaskUpdateOne) AddMaxIterations(v int) *TaskUpdateOne {
	_u.mutation.AddMaxIterations(v)
	return _u
}

// SetParentTaskID sets the "parent_task_id" field.
func (_u *TaskUpdateOne) SetParentTaskID(v string) *TaskUpdateOne {
	_u.mutation.SetParentTaskID(v)
	return _u
}

// SetNillableParentTaskID sets the "parent_task_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableParentTaskID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetParentTaskID(*v)
	}
	return _u
}

// ClearParentTaskID clears the value of the "parent_task_id" field.
func (_u *TaskUpdateOne) ClearParentTaskID() *TaskUpdateOne {
	_u.mutation.ClearParentTaskID()
	return _u
}

// SetComplexity sets the "complexity" field.
func (_u *TaskUpdateOne) SetComplexity(v float64) *TaskUpdateOne {
	_u.mutation.ResetComplexity()
	_u.mutation.SetComplexity(v)
	return _u
}

// SetNillableComplexity sets the "complexity" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableComplexity(v *float64) *TaskUpdateOne {
	if v != nil {
		_u.SetComplexity(*v)
	}
	return _u
}

// AddComplexity adds value to the "complexity" field.
func (_u *TaskUpdateOne) AddComplexity(v float64) *TaskUpdateOne {
	_u.mutation.AddComplexity(v)
	return _u
}

// ClearComplexity clears the value of the "complexity" field.
func (_u *TaskUpdateOne) ClearComplexity() *TaskUpdateOne {
	_u.mutation.ClearComplexity()
	return _u
}

// SetComplexitySource sets the "complexity_source" field.
func (_u *TaskUpdateOne) SetComplexitySource(v task.ComplexitySource) *TaskUpdateOne {
	_u.mutation.SetComplexitySource(v)
	return _u
}

// SetNillableComplexitySource sets the "complexity_source" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableComplexitySource(v *task.ComplexitySource) *TaskUpdateOne {
	if v != nil {
		_u.SetComplexitySource(*v)
	}
	return _u
}

// ClearComplexitySource clears the value of the "complexity_source" field.
func (_u *TaskUpdateOne) ClearComplexitySource() *TaskUpdateOne {
	_u.mutation.ClearComplexitySource()
	return _u
}

// SetComplexityReasoning sets the "complexity_reasoning" field.
func (_u *TaskUpdateOne) SetComplexityReasoning(v string) *TaskUpdateOne {
	_u.mutation.SetComplexityReasoning(v)
	return _u
}

// SetNillableComplexityReasoning sets the "complexity_reasoning" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableComplexityReasoning(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetComplexityReasoning(*v)
	}
	return _u
}

// ClearComplexityReasoning clears the value of the "complexity_reasoning" field.
func (_u *TaskUpdateOne) ClearComplexityReasoning() *TaskUpdateOne {
	_u.mutation.ClearComplexityReasoning()
	return _u
}

// SetStatus sets the "status" field.
func (_u *TaskUpdateOne) SetStatus(v task.Status) *TaskUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableStatus(v *task.Status) *TaskUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAssignedAgentID sets the "assigned_agent_id" field.
func (_u *TaskUpdateOne) SetAssignedAgentID(v string) *TaskUpdateOne {
	_u.mutation.SetAssignedAgentID(v)
	return _u
}

// SetNillableAssignedAgentID sets the "assigned_agent_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedAgentID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedAgentID(*v)
	}
	return _u
}

// ClearAssignedAgentID clears the value of the "assigned_agent_id" field.
func (_u *TaskUpdateOne) ClearAssignedAgentID() *TaskUpdateOne {
	_u.mutation.ClearAssignedAgentID()
	return _u
}

// SetAssignedAt sets the "assigned_at" field.
func (_u *TaskUpdateOne) SetAssignedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetAssignedAt(v)
	return _u
}

// SetNillableAssignedAt sets the "assigned_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableAssignedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetAssignedAt(*v)
	}
	return _u
}

// ClearAssignedAt clears the value of the "assigned_at" field.
func (_u *TaskUpdateOne) ClearAssignedAt() *TaskUpdateOne {
	_u.mutation.ClearAssignedAt()
	return _u
}

// SetCompletedAt sets the "completed_at" field.
func (_u *TaskUpdateOne) SetCompletedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetCompletedAt(v)
	return _u
}

// SetNillableCompletedAt sets the "completed_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCompletedAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetCompletedAt(*v)
	}
	return _u
}

// ClearCompletedAt clears the value of the "completed_at" field.
func (_u *TaskUpdateOne) ClearCompletedAt() *TaskUpdateOne {
	_u.mutation.ClearCompletedAt()
	return _u
}

// SetCurrentIteration sets the "current_iteration" field.
func (_u *TaskUpdateOne) SetCurrentIteration(v int) *TaskUpdateOne {
	_u.mutation.ResetCurrentIteration()
	_u.mutation.SetCurrentIteration(v)
	return _u
}

// SetNillableCurrentIteration sets the "current_iteration" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCurrentIteration(v *int) *TaskUpdateOne {
	if v != nil {
		_u.SetCurrentIteration(*v)
	}
	return _u
}

// AddCurrentIteration adds value to the "current_iteration" field.
func (_u *TaskUpdateOne) AddCurrentIteration(v int) *TaskUpdateOne {
	_u.mutation.AddCurrentIteration(v)
	return _u
}

// SetResult sets the "result" field.
func (_u *TaskUpdateOne) SetResult(v map[string]interface{}) *TaskUpdateOne {
	_u.mutation.SetResult(v)
	return _u
}

// ClearResult clears the value of the "result" field.
func (_u *TaskUpdateOne) ClearResult() *TaskUpdateOne {
	_u.mutation.ClearResult()
	return _u
}

// SetErrorMessage sets the "error_message" field.
func (_u *TaskUpdateOne) SetErrorMessage(v string) *TaskUpdateOne {
	_u.mutation.SetErrorMessage(v)
	return _u
}

// SetNillableErrorMessage sets the "error_message" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorMessage(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorMessage(*v)
	}
	return _u
}

// ClearErrorMessage clears the value of the "error_message" field.
func (_u *TaskUpdateOne) ClearErrorMessage() *TaskUpdateOne {
	_u.mutation.ClearErrorMessage()
	return _u
}

// SetErrorCategory sets the "error_category" field.
func (_u *TaskUpdateOne) SetErrorCategory(v string) *TaskUpdateOne {
	_u.mutation.SetErrorCategory(v)
	return _u
}

// SetNillableErrorCategory sets the "error_category" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableErrorCategory(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetErrorCategory(*v)
	}
	return _u
}

// ClearErrorCategory clears the value of the "error_category" field.
func (_u *TaskUpdateOne) ClearErrorCategory() *TaskUpdateOne {
	_u.mutation.ClearErrorCategory()
	return _u
}

// SetValidationCommand sets the "validation_command" field.
func (_u *TaskUpdateOne) SetValidationCommand(v string) *TaskUpdateOne {
	_u.mutation.SetValidationCommand(v)
	return _u
}

// SetNillableValidationCommand sets the "validation_command" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableValidationCommand(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetValidationCommand(*v)
	}
	return _u
}

// ClearValidationCommand clears the value of the "validation_command" field.
func (_u *TaskUpdateOne) ClearValidationCommand() *TaskUpdateOne {
	_u.mutation.ClearValidationCommand()
	return _u
}

// SetPodID sets the "pod_id" field.
func (_u *TaskUpdateOne) SetPodID(v string) *TaskUpdateOne {
	_u.mutation.SetPodID(v)
	return _u
}

// SetNillablePodID sets the "pod_id" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillablePodID(v *string) *TaskUpdateOne {
	if v != nil {
		_u.SetPodID(*v)
	}
	return _u
}

// ClearPodID clears the value of the "pod_id" field.
func (_u *TaskUpdateOne) ClearPodID() *TaskUpdateOne {
	_u.mutation.ClearPodID()
	return _u
}

// SetLastHeartbeatAt sets the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) SetLastHeartbeatAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetLastHeartbeatAt(v)
	return _u
}

// SetNillableLastHeartbeatAt sets the "last_heartbeat_at" field if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableLastHeartbeatAt(v *time.Time) *TaskUpdateOne {
	if v != nil {
		_u.SetLastHeartbeatAt(*v)
	}
	return _u
}

// ClearLastHeartbeatAt clears the value of the "last_heartbeat_at" field.
func (_u *TaskUpdateOne) ClearLastHeartbeatAt() *TaskUpdateOne {
	_u.mutation.ClearLastHeartbeatAt()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TaskUpdateOne) SetUpdatedAt(v time.Time) *TaskUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddExecutionLogIDs adds the "execution_logs" edge to the ExecutionLog entity by IDs.
func (_u *TaskUpdateOne) AddExecutionLogIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.AddExecutionLogIDs(ids...)
	return _u
}

// AddExecutionLogs adds the "execution_logs" edges to the ExecutionLog entity.
func (_u *TaskUpdateOne) AddExecutionLogs(v ...*ExecutionLog) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddExecutionLogIDs(ids...)
}

// SetCodeReviewID sets the "code_review" edge to the CodeReview entity by ID.
func (_u *TaskUpdateOne) SetCodeReviewID(id string) *TaskUpdateOne {
	_u.mutation.SetCodeReviewID(id)
	return _u
}

// SetNillableCodeReviewID sets the "code_review" edge to the CodeReview entity by ID if the given value is not nil.
func (_u *TaskUpdateOne) SetNillableCodeReviewID(id *string) *TaskUpdateOne {
	if id != nil {
		_u = _u.SetCodeReviewID(*id)
	}
	return _u
}

// SetCodeReview sets the "code_review" edge to the CodeReview entity.
func (_u *TaskUpdateOne) SetCodeReview(v *CodeReview) *TaskUpdateOne {
	return _u.SetCodeReviewID(v.ID)
}

// AddEventIDs adds the "events" edge to the Event entity by IDs.
func (_u *TaskUpdateOne) AddEventIDs(ids ...int64) *TaskUpdateOne {
	_u.mutation.AddEventIDs(ids...)
	return _u
}

// AddEvents adds the "events" edges to the Event entity.
func (_u *TaskUpdateOne) AddEvents(v ...*Event) *TaskUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddEventIDs(ids...)
}

// Mutation returns the TaskMutation object of the builder.
func (_u *TaskUpdateOne) Mutation() *TaskMutation {
	return _u.mutation
}

// ClearExecutionLogs clears all "execution_logs" edges to the ExecutionLog entity.
func (_u *TaskUpdateOne) ClearExecutionLogs() *TaskUpdateOne {
	_u.mutation.ClearExecutionLogs()
	return _u
}

// RemoveExecutionLogIDs removes the "execution_logs" edge to ExecutionLog entities by IDs.
func (_u *TaskUpdateOne) RemoveExecutionLogIDs(ids ...string) *TaskUpdateOne {
	_u.mutation.RemoveExecutionLogIDs(ids...)
	return _u
}

// RemoveExecutionLogs removes "execution_logs" edges to ExecutionLog entities.
func (_u *TaskUpdateOne) RemoveExecutionLogs(v ...*ExecutionLog) *TaskUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveExecutionLogIDs(ids...)
}

// ClearCodeReview clears the "code_review" edge to the CodeReview entity.
func (_u *TaskUpdateOne) ClearCodeReview() *TaskUpdateOne {
	_u.mutation.ClearCodeReview()
	return _u
}

// ClearEvents clears all "events" edges to the Event entity.
func (_u *TaskUpdateOne) ClearEvents() *TaskUpdateOne {
	_u.mutation.ClearEvents()
	return _u
}

// RemoveEventIDs removes the "events" edge to Event entities by IDs.
func (_u *TaskUpdateOne) RemoveEventIDs(ids ...int64) *TaskUpdateOne {
	_u.mutation.RemoveEventIDs(ids...)
	return _u
}

// RemoveEvents removes "events" edges to Event entities.
func (_u *TaskUpdateOne) RemoveEvents(v ...*Event) *TaskUpdateOne {
	ids := make([]int64, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveEventIDs(ids...)
}

// Where appends a list predicates to the TaskUpdate builder.
func (_u *TaskUpdateOne) Where(ps ...predicate.Task) *TaskUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TaskUpdateOne) Select(field string, fields ...string) *TaskUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Task entity.
func (_u *TaskUpdateOne) Save(ctx context.Context) (*Task, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TaskUpdateOne) SaveX(ctx context.Context) *Task {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TaskUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TaskUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TaskUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := task.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *TaskUpdateOne) check() error {
	if v, ok := _u.mutation.TaskType(); ok {
		if err := task.TaskTypeValidator(v); err != nil {
			return &ValidationError{Name: "task_type", err: fmt.Errorf(`ent: validator failed for field "Task.task_type": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Priority(); ok {
		if err := task.PriorityValidator(v); err != nil {
			return &ValidationError{Name: "priority", err: fmt.Errorf(`ent: validator failed for field "Task.priority": %w`, err)}
		}
	}
	if v, ok := _u.mutation.RequiredAgent(); ok {
		if err := task.RequiredAgentValidator(v); err != nil {
			return &ValidationError{Name: "required_agent", err: fmt.Errorf(`ent: validator failed for field "Task.required_agent": %w`, err)}
		}
	}
	if v, ok := _u.mutation.ComplexitySource(); ok {
		if err := task.ComplexitySourceValidator(v); err != nil {
			return &ValidationError{Name: "complexity_source", err: fmt.Errorf(`ent: validator failed for field "Task.complexity_source": %w`, err)}
		}
	}
	if v, ok := _u.mutation.Status(); ok {
		if err := task.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Task.status": %w`, err)}
		}
	}
	return nil
}

func (_u *TaskUpdateOne) sqlSave(ctx context.Context) (_node *Task, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(task.Table, task.Columns, sqlgraph.NewFieldSpec(task.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Task.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, task.FieldID)
		for _, f := range fields {
			if !task.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != task.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Title(); ok {
		_spec.SetField(task.FieldTitle, field.TypeString, value)
	}
	if value, ok := _u.mutation.Description(); ok {
		_spec.SetField(task.FieldDescription, field.TypeString, value)
	}
	if value, ok := _u.mutation.TaskType(); ok {
		_spec.SetField(task.FieldTaskType, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Priority(); ok {
		_spec.SetField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedPriority(); ok {
		_spec.AddField(task.FieldPriority, field.TypeInt, value)
	}
	if value, ok := _u.mutation.RequiredAgent(); ok {
		_spec.SetField(task.FieldRequiredAgent, field.TypeEnum, value)
	}
	if _u.mutation.RequiredAgentCleared() {
		_spec.ClearField(task.FieldRequiredAgent, field.TypeEnum)
	}
	if value, ok := _u.mutation.MaxIterations(); ok {
		_spec.SetField(task.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMaxIterations(); ok {
		_spec.AddField(task.FieldMaxIterations, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ParentTaskID(); ok {
		_spec.SetField(task.FieldParentTaskID, field.TypeString, value)
	}
	if _u.mutation.ParentTaskIDCleared() {
		_spec.ClearField(task.FieldParentTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Complexity(); ok {
		_spec.SetField(task.FieldComplexity, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedComplexity(); ok {
		_spec.AddField(task.FieldComplexity, field.TypeFloat64, value)
	}
	if _u.mutation.ComplexityCleared() {
		_spec.ClearField(task.FieldComplexity, field.TypeFloat64)
	}
	if value, ok := _u.mutation.ComplexitySource(); ok {
		_spec.SetField(task.FieldComplexitySource, field.TypeEnum, value)
	}
	if _u.mutation.ComplexitySourceCleared() {
		_spec.ClearField(task.FieldComplexitySource, field.TypeEnum)
	}
	if value, ok := _u.mutation.ComplexityReasoning(); ok {
		_spec.SetField(task.FieldComplexityReasoning, field.TypeString, value)
	}
	if _u.mutation.ComplexityReasoningCleared() {
		_spec.ClearField(task.FieldComplexityReasoning, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(task.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.AssignedAgentID(); ok {
		_spec.SetField(task.FieldAssignedAgentID, field.TypeString, value)
	}
	if _u.mutation.AssignedAgentIDCleared() {
		_spec.ClearField(task.FieldAssignedAgentID, field.TypeString)
	}
	if value, ok := _u.mutation.AssignedAt(); ok {
		_spec.SetField(task.FieldAssignedAt, field.TypeTime, value)
	}
	if _u.mutation.AssignedAtCleared() {
		_spec.ClearField(task.FieldAssignedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CompletedAt(); ok {
		_spec.SetField(task.FieldCompletedAt, field.TypeTime, value)
	}
	if _u.mutation.CompletedAtCleared() {
		_spec.ClearField(task.FieldCompletedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.CurrentIteration(); ok {
		_spec.SetField(task.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCurrentIteration(); ok {
		_spec.AddField(task.FieldCurrentIteration, field.TypeInt, value)
	}
	if value, ok := _u.mutation.Result(); ok {
		_spec.SetField(task.FieldResult, field.TypeJSON, value)
	}
	if _u.mutation.ResultCleared() {
		_spec.ClearField(task.FieldResult, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorMessage(); ok {
		_spec.SetField(task.FieldErrorMessage, field.TypeString, value)
	}
	if _u.mutation.ErrorMessageCleared() {
		_spec.ClearField(task.FieldErrorMessage, field.TypeString)
	}
	if value, ok := _u.mutation.ErrorCategory(); ok {
		_spec.SetField(task.FieldErrorCategory, field.TypeString, value)
	}
	if _u.mutation.ErrorCategoryCleared() {
		_spec.ClearField(task.FieldErrorCategory, field.TypeString)
	}
	if value, ok := _u.mutation.ValidationCommand(); ok {
		_spec.SetField(task.FieldValidationCommand, field.TypeString, value)
	}
	if _u.mutation.ValidationCommandCleared() {
		_spec.ClearField(task.FieldValidationCommand, field.TypeString)
	}
	if value, ok := _u.mutation.PodID(); ok {
		_spec.SetField(task.FieldPodID, field.TypeString, value)
	}
	if _u.mutation.PodIDCleared() {
		_spec.ClearField(task.FieldPodID, field.TypeString)
	}
	if value, ok := _u.mutation.LastHeartbeatAt(); ok {
		_spec.SetField(task.FieldLastHeartbeatAt, field.TypeTime, value)
	}
	if _u.mutation.LastHeartbeatAtCleared() {
		_spec.ClearField(task.FieldLastHeartbeatAt, field.TypeTime)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(task.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.ExecutionLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ExecutionLogsTable,
			Columns: []string{task.ExecutionLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedExecutionLogsIDs(); len(nodes) > 0 && !_u.mutation.ExecutionLogsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ExecutionLogsTable,
			Columns: []string{task.ExecutionLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.ExecutionLogsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.ExecutionLogsTable,
			Columns: []string{task.ExecutionLogsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.CodeReviewCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   task.CodeReviewTable,
			Columns: []string{task.CodeReviewColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.CodeReviewIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: false,
			Table:   task.CodeReviewTable,
			Columns: []string{task.CodeReviewColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedEventsIDs(); len(nodes) > 0 && !_u.mutation.EventsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.EventsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   task.EventsTable,
			Columns: []string{task.EventsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(event.FieldID, field.TypeInt64),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Task{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{task.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
