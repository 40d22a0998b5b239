// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/frugalops/foreman/ent/codereview"
	"github.com/frugalops/foreman/ent/predicate"
)

// CodeReviewUpdate is the builder for updating CodeReview entities.
type CodeReviewUpdate struct {
	config
	hooks    []Hook
	mutation *CodeReviewMutation
}

// Where appends a list predicates to the CodeReviewUpdate builder.
func (_u *CodeReviewUpdate) Where(ps ...predicate.CodeReview) *CodeReviewUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetReviewTaskID sets the "review_task_id" field.
func (_u *CodeReviewUpdate) SetReviewTaskID(v string) *CodeReviewUpdate {
	_u.mutation.SetReviewTaskID(v)
	return _u
}

// SetNillableReviewTaskID sets the "review_task_id" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableReviewTaskID(v *string) *CodeReviewUpdate {
	if v != nil {
		_u.SetReviewTaskID(*v)
	}
	return _u
}

// ClearReviewTaskID clears the value of the "review_task_id" field.
func (_u *CodeReviewUpdate) ClearReviewTaskID() *CodeReviewUpdate {
	_u.mutation.ClearReviewTaskID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CodeReviewUpdate) SetStatus(v codereview.Status) *CodeReviewUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableStatus(v *codereview.Status) *CodeReviewUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *CodeReviewUpdate) SetQualityScore(v float64) *CodeReviewUpdate {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableQualityScore(v *float64) *CodeReviewUpdate {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *CodeReviewUpdate) AddQualityScore(v float64) *CodeReviewUpdate {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *CodeReviewUpdate) ClearQualityScore() *CodeReviewUpdate {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetFindings sets the "findings" field.
func (_u *CodeReviewUpdate) SetFindings(v []map[string]interface{}) *CodeReviewUpdate {
	_u.mutation.SetFindings(v)
	return _u
}

// AppendFindings appends value to the "findings" field.
func (_u *CodeReviewUpdate) AppendFindings(v []map[string]interface{}) *CodeReviewUpdate {
	_u.mutation.AppendFindings(v)
	return _u
}

// ClearFindings clears the value of the "findings" field.
func (_u *CodeReviewUpdate) ClearFindings() *CodeReviewUpdate {
	_u.mutation.ClearFindings()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CodeReviewUpdate) SetSummary(v string) *CodeReviewUpdate {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableSummary(v *string) *CodeReviewUpdate {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CodeReviewUpdate) ClearSummary() *CodeReviewUpdate {
	_u.mutation.ClearSummary()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *CodeReviewUpdate) SetModelUsed(v string) *CodeReviewUpdate {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableModelUsed(v *string) *CodeReviewUpdate {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *CodeReviewUpdate) ClearModelUsed() *CodeReviewUpdate {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *CodeReviewUpdate) SetInputTokens(v int) *CodeReviewUpdate {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableInputTokens(v *int) *CodeReviewUpdate {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *CodeReviewUpdate) AddInputTokens(v int) *CodeReviewUpdate {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *CodeReviewUpdate) SetOutputTokens(v int) *CodeReviewUpdate {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *CodeReviewUpdate) SetNillableOutputTokens(v *int) *CodeReviewUpdate {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *CodeReviewUpdate) AddOutputTokens(v int) *CodeReviewUpdate {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CodeReviewUpdate) SetUpdatedAt(v time.Time) *CodeReviewUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CodeReviewMutation object of the builder.
func (_u *CodeReviewUpdate) Mutation() *CodeReviewMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *CodeReviewUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeReviewUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *CodeReviewUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeReviewUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CodeReviewUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := codereview.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodeReviewUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := codereview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CodeReview.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CodeReviewUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codereview.Table, codereview.Columns, sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ReviewTaskID(); ok {
		_spec.SetField(codereview.FieldReviewTaskID, field.TypeString, value)
	}
	if _u.mutation.ReviewTaskIDCleared() {
		_spec.ClearField(codereview.FieldReviewTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(codereview.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(codereview.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(codereview.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(codereview.FieldQualityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(codereview.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, codereview.FieldFindings, value)
		})
	}
	if _u.mutation.FindingsCleared() {
		_spec.ClearField(codereview.FieldFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(codereview.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(codereview.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(codereview.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(codereview.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(codereview.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(codereview.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(codereview.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(codereview.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(codereview.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codereview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// CodeReviewUpdateOne is the builder for updating a single CodeReview entity.
type CodeReviewUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *CodeReviewMutation
}

// SetReviewTaskID sets the "review_task_id" field.
func (_u *CodeReviewUpdateOne) SetReviewTaskID(v string) *CodeReviewUpdateOne {
	_u.mutation.SetReviewTaskID(v)
	return _u
}

// SetNillableReviewTaskID sets the "review_task_id" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableReviewTaskID(v *string) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetReviewTaskID(*v)
	}
	return _u
}

// ClearReviewTaskID clears the value of the "review_task_id" field.
func (_u *CodeReviewUpdateOne) ClearReviewTaskID() *CodeReviewUpdateOne {
	_u.mutation.ClearReviewTaskID()
	return _u
}

// SetStatus sets the "status" field.
func (_u *CodeReviewUpdateOne) SetStatus(v codereview.Status) *CodeReviewUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableStatus(v *codereview.Status) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetQualityScore sets the "quality_score" field.
func (_u *CodeReviewUpdateOne) SetQualityScore(v float64) *CodeReviewUpdateOne {
	_u.mutation.ResetQualityScore()
	_u.mutation.SetQualityScore(v)
	return _u
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableQualityScore(v *float64) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetQualityScore(*v)
	}
	return _u
}

// AddQualityScore adds value to the "quality_score" field.
func (_u *CodeReviewUpdateOne) AddQualityScore(v float64) *CodeReviewUpdateOne {
	_u.mutation.AddQualityScore(v)
	return _u
}

// ClearQualityScore clears the value of the "quality_score" field.
func (_u *CodeReviewUpdateOne) ClearQualityScore() *CodeReviewUpdateOne {
	_u.mutation.ClearQualityScore()
	return _u
}

// SetFindings sets the "findings" field.
func (_u *CodeReviewUpdateOne) SetFindings(v []map[string]interface{}) *CodeReviewUpdateOne {
	_u.mutation.SetFindings(v)
	return _u
}

// AppendFindings appends value to the "findings" field.
func (_u *CodeReviewUpdateOne) AppendFindings(v []map[string]interface{}) *CodeReviewUpdateOne {
	_u.mutation.AppendFindings(v)
	return _u
}

// ClearFindings clears the value of the "findings" field.
func (_u *CodeReviewUpdateOne) ClearFindings() *CodeReviewUpdateOne {
	_u.mutation.ClearFindings()
	return _u
}

// SetSummary sets the "summary" field.
func (_u *CodeReviewUpdateOne) SetSummary(v string) *CodeReviewUpdateOne {
	_u.mutation.SetSummary(v)
	return _u
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableSummary(v *string) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetSummary(*v)
	}
	return _u
}

// ClearSummary clears the value of the "summary" field.
func (_u *CodeReviewUpdateOne) ClearSummary() *CodeReviewUpdateOne {
	_u.mutation.ClearSummary()
	return _u
}

// SetModelUsed sets the "model_used" field.
func (_u *CodeReviewUpdateOne) SetModelUsed(v string) *CodeReviewUpdateOne {
	_u.mutation.SetModelUsed(v)
	return _u
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableModelUsed(v *string) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetModelUsed(*v)
	}
	return _u
}

// ClearModelUsed clears the value of the "model_used" field.
func (_u *CodeReviewUpdateOne) ClearModelUsed() *CodeReviewUpdateOne {
	_u.mutation.ClearModelUsed()
	return _u
}

// SetInputTokens sets the "input_tokens" field.
func (_u *CodeReviewUpdateOne) SetInputTokens(v int) *CodeReviewUpdateOne {
	_u.mutation.ResetInputTokens()
	_u.mutation.SetInputTokens(v)
	return _u
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableInputTokens(v *int) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetInputTokens(*v)
	}
	return _u
}

// AddInputTokens adds value to the "input_tokens" field.
func (_u *CodeReviewUpdateOne) AddInputTokens(v int) *CodeReviewUpdateOne {
	_u.mutation.AddInputTokens(v)
	return _u
}

// SetOutputTokens sets the "output_tokens" field.
func (_u *CodeReviewUpdateOne) SetOutputTokens(v int) *CodeReviewUpdateOne {
	_u.mutation.ResetOutputTokens()
	_u.mutation.SetOutputTokens(v)
	return _u
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_u *CodeReviewUpdateOne) SetNillableOutputTokens(v *int) *CodeReviewUpdateOne {
	if v != nil {
		_u.SetOutputTokens(*v)
	}
	return _u
}

// AddOutputTokens adds value to the "output_tokens" field.
func (_u *CodeReviewUpdateOne) AddOutputTokens(v int) *CodeReviewUpdateOne {
	_u.mutation.AddOutputTokens(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *CodeReviewUpdateOne) SetUpdatedAt(v time.Time) *CodeReviewUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the CodeReviewMutation object of the builder.
func (_u *CodeReviewUpdateOne) Mutation() *CodeReviewMutation {
	return _u.mutation
}

// Where appends a list predicates to the CodeReviewUpdate builder.
func (_u *CodeReviewUpdateOne) Where(ps ...predicate.CodeReview) *CodeReviewUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *CodeReviewUpdateOne) Select(field string, fields ...string) *CodeReviewUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated CodeReview entity.
func (_u *CodeReviewUpdateOne) Save(ctx context.Context) (*CodeReview, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *CodeReviewUpdateOne) SaveX(ctx context.Context) *CodeReview {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *CodeReviewUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *CodeReviewUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *CodeReviewUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := codereview.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *CodeReviewUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := codereview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CodeReview.status": %w`, err)}
		}
	}
	return nil
}

func (_u *CodeReviewUpdateOne) sqlSave(ctx context.Context) (_node *CodeReview, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(codereview.Table, codereview.Columns, sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "CodeReview.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, codereview.FieldID)
		for _, f := range fields {
			if !codereview.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != codereview.FieldID {
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
	if value, ok := _u.mutation.ReviewTaskID(); ok {
		_spec.SetField(codereview.FieldReviewTaskID, field.TypeString, value)
	}
	if _u.mutation.ReviewTaskIDCleared() {
		_spec.ClearField(codereview.FieldReviewTaskID, field.TypeString)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(codereview.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.QualityScore(); ok {
		_spec.SetField(codereview.FieldQualityScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedQualityScore(); ok {
		_spec.AddField(codereview.FieldQualityScore, field.TypeFloat64, value)
	}
	if _u.mutation.QualityScoreCleared() {
		_spec.ClearField(codereview.FieldQualityScore, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Findings(); ok {
		_spec.SetField(codereview.FieldFindings, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedFindings(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, codereview.FieldFindings, value)
		})
	}
	if _u.mutation.FindingsCleared() {
		_spec.ClearField(codereview.FieldFindings, field.TypeJSON)
	}
	if value, ok := _u.mutation.Summary(); ok {
		_spec.SetField(codereview.FieldSummary, field.TypeString, value)
	}
	if _u.mutation.SummaryCleared() {
		_spec.ClearField(codereview.FieldSummary, field.TypeString)
	}
	if value, ok := _u.mutation.ModelUsed(); ok {
		_spec.SetField(codereview.FieldModelUsed, field.TypeString, value)
	}
	if _u.mutation.ModelUsedCleared() {
		_spec.ClearField(codereview.FieldModelUsed, field.TypeString)
	}
	if value, ok := _u.mutation.InputTokens(); ok {
		_spec.SetField(codereview.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedInputTokens(); ok {
		_spec.AddField(codereview.FieldInputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OutputTokens(); ok {
		_spec.SetField(codereview.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedOutputTokens(); ok {
		_spec.AddField(codereview.FieldOutputTokens, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(codereview.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &CodeReview{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{codereview.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
