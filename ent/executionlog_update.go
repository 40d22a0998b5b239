// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/frugalops/foreman/ent/executionlog"
	"github.com/frugalops/foreman/ent/predicate"
)

// ExecutionLogUpdate is the builder for updating ExecutionLog entities.
type ExecutionLogUpdate struct {
	config
	hooks    []Hook
	mutation *ExecutionLogMutation
}

// Where appends a list predicates to the ExecutionLogUpdate builder.
func (_u *ExecutionLogUpdate) Where(ps ...predicate.ExecutionLog) *ExecutionLogUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetObservation sets the "observation" field.
func (_u *ExecutionLogUpdate) SetObservation(v string) *ExecutionLogUpdate {
	_u.mutation.SetObservation(v)
	return _u
}

// SetNillableObservation sets the "observation" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableObservation(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetObservation(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionLogUpdate) SetDurationMs(v int) *ExecutionLogUpdate {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableDurationMs(v *int) *ExecutionLogUpdate {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionLogUpdate) AddDurationMs(v int) *ExecutionLogUpdate {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *ExecutionLogUpdate) SetModelUsed(v string) *ExecutionLogUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableModelUsed(v *string) *ExecutionLogUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *ExecutionLogUpdate) ClearModelUsed() *ExecutionLogUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ExecutionLogUpdate) SetInputTokens(v int) *ExecutionLogUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableInputTokens(v *int) *ExecutionLogUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ExecutionLogUpdate) AddInputTokens(v int) *ExecutionLogUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ExecutionLogUpdate) SetOutputTokens(v int) *ExecutionLogUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableOutputTokens(v *int) *ExecutionLogUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ExecutionLogUpdate) AddOutputTokens(v int) *ExecutionLogUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetIsLoopDetected sets the "is_loop_detected" field.
func (_u *ExecutionLogUpdate) SetIsLoopDetected(v bool) *ExecutionLogUpdate {
	_u.mutation.SetIsLoopDetected(v)
	return _u
}

// SetNillableIsLoopDetected sets the "is_loop_detected" field if the given value is not nil.
func (_u *ExecutionLogUpdate) SetNillableIsLoopDetected(v *bool) *ExecutionLogUpdate {
	if v != nil {
		_u.SetIsLoopDetected(*v)
	}
	return _u
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_u *ExecutionLogUpdate) Mutation() *ExecutionLogMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExecutionLogUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionLogUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExecutionLogUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionLogUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExecutionLogUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(executionlog.Table, executionlog.Columns, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Observation(); ok {
		_spec.SetField(executionlog.FieldObservation, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executionlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executionlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(executionlog.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(executionlog.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(executionlog.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(executionlog.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(executionlog.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(executionlog.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsLoopDetected(); ok {
		_spec.SetField(executionlog.FieldIsLoopDetected, field.TypeBool, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExecutionLogUpdateOne is the builder for updating a single ExecutionLog entity.
type ExecutionLogUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExecutionLogMutation
}

// SetObservation sets the "observation" field.
func (_u *ExecutionLogUpdateOne) SetObservation(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetObservation(v)
	return _u
}

// SetNillableObservation sets the "observation" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableObservation(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetObservation(*v)
	}
	return _u
}

// SetDurationMs sets the "duration_ms" field.
func (_u *ExecutionLogUpdateOne) SetDurationMs(v int) *ExecutionLogUpdateOne {
	_u.mutation.ResetDurationMs()
	_u.mutation.SetDurationMs(v)
	return _u
}

// SetNillableDurationMs sets the "duration_ms" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableDurationMs(v *int) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetDurationMs(*v)
	}
	return _u
}

// AddDurationMs adds value to the "duration_ms" field.
func (_u *ExecutionLogUpdateOne) AddDurationMs(v int) *ExecutionLogUpdateOne {
	_u.mutation.AddDurationMs(v)
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *ExecutionLogUpdateOne) SetModelUsed(v string) *ExecutionLogUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableModelUsed(v *string) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *ExecutionLogUpdateOne) ClearModelUsed() *ExecutionLogUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *ExecutionLogUpdateOne) SetInputTokens(v int) *ExecutionLogUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableInputTokens(v *int) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *ExecutionLogUpdateOne) AddInputTokens(v int) *ExecutionLogUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *ExecutionLogUpdateOne) SetOutputTokens(v int) *ExecutionLogUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableOutputTokens(v *int) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *ExecutionLogUpdateOne) AddOutputTokens(v int) *ExecutionLogUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetIsLoopDetected sets the "is_loop_detected" field.
func (_u *ExecutionLogUpdateOne) SetIsLoopDetected(v bool) *ExecutionLogUpdateOne {
	_u.mutation.SetIsLoopDetected(v)
	return _u
}

// SetNillableIsLoopDetected sets the "is_loop_detected" field if the given value is not nil.
func (_u *ExecutionLogUpdateOne) SetNillableIsLoopDetected(v *bool) *ExecutionLogUpdateOne {
	if v != nil {
		_u.SetIsLoopDetected(*v)
	}
	return _u
}

// Mutation returns the ExecutionLogMutation object of the builder.
func (_u *ExecutionLogUpdateOne) Mutation() *ExecutionLogMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExecutionLogUpdate builder.
func (_u *ExecutionLogUpdateOne) Where(ps ...predicate.ExecutionLog) *ExecutionLogUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExecutionLogUpdateOne) Select(field string, fields ...string) *ExecutionLogUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExecutionLog entity.
func (_u *ExecutionLogUpdateOne) Save(ctx context.Context) (*ExecutionLog, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExecutionLogUpdateOne) SaveX(ctx context.Context) *ExecutionLog {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExecutionLogUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExecutionLogUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *ExecutionLogUpdateOne) sqlSave(ctx context.Context) (_node *ExecutionLog, err error) {
	_spec := sqlgraph.NewUpdateSpec(executionlog.Table, executionlog.Columns, sqlgraph.NewFieldSpec(executionlog.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExecutionLog.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, executionlog.FieldID)
		for _, f := range fields {
			if !executionlog.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != executionlog.FieldID {
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
	if value, ok := _u.mutation.Observation(); ok {
		_spec.SetField(executionlog.FieldObservation, field.TypeString, value)
	}
	if value, ok := _u.mutation.DurationMs(); ok {
		_spec.SetField(executionlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedDurationMs(); ok {
		_spec.AddField(executionlog.FieldDurationMs, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(executionlog.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(executionlog.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(executionlog.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(executionlog.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(executionlog.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(executionlog.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsLoopDetected(); ok {
		_spec.SetField(executionlog.FieldIsLoopDetected, field.TypeBool, value)
	}
	_node = &ExecutionLog{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{executionlog.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
