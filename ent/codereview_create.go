// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/frugalops/foreman/ent/codereview"
)

// CodeReviewCreate is the builder for creating a CodeReview entity.
type CodeReviewCreate struct {
	config
	mutation *CodeReviewMutation
	hooks    []Hook
}

// SetTaskID sets the "task_id" field.
func (_c *CodeReviewCreate) SetTaskID(v string) *CodeReviewCreate {
	_c.mutation.SetTaskID(v)
	return _c
}

// SetReviewTaskID sets the "review_task_id" field.
func (_c *CodeReviewCreate) SetReviewTaskID(v string) *CodeReviewCreate {
	_c.mutation.SetReviewTaskID(v)
	return _c
}

// SetNillableReviewTaskID sets the "review_task_id" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableReviewTaskID(v *string) *CodeReviewCreate {
	if v != nil {
		_c.SetReviewTaskID(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *CodeReviewCreate) SetStatus(v codereview.Status) *CodeReviewCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableStatus(v *codereview.Status) *CodeReviewCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetQualityScore sets the "quality_score" field.
func (_c *CodeReviewCreate) SetQualityScore(v float64) *CodeReviewCreate {
	_c.mutation.SetQualityScore(v)
	return _c
}

// SetNillableQualityScore sets the "quality_score" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableQualityScore(v *float64) *CodeReviewCreate {
	if v != nil {
		_c.SetQualityScore(*v)
	}
	return _c
}

// SetFindings sets the "findings" field.
func (_c *CodeReviewCreate) SetFindings(v []map[string]interface{}) *CodeReviewCreate {
	_c.mutation.SetFindings(v)
	return _c
}

// SetSummary sets the "summary" field.
func (_c *CodeReviewCreate) SetSummary(v string) *CodeReviewCreate {
	_c.mutation.SetSummary(v)
	return _c
}

// SetNillableSummary sets the "summary" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableSummary(v *string) *CodeReviewCreate {
	if v != nil {
		_c.SetSummary(*v)
	}
	return _c
}

// SetModelUsed sets the "model_used" field.
func (_c *CodeReviewCreate) SetModelUsed(v string) *CodeReviewCreate {
	_c.mutation.SetModelUsed(v)
	return _c
}

// SetNillableModelUsed sets the "model_used" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableModelUsed(v *string) *CodeReviewCreate {
	if v != nil {
		_c.SetModelUsed(*v)
	}
	return _c
}

// SetInputTokens sets the "input_tokens" field.
func (_c *CodeReviewCreate) SetInputTokens(v int) *CodeReviewCreate {
	_c.mutation.SetInputTokens(v)
	return _c
}

// SetNillableInputTokens sets the "input_tokens" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableInputTokens(v *int) *CodeReviewCreate {
	if v != nil {
		_c.SetInputTokens(*v)
	}
	return _c
}

// SetOutputTokens sets the "output_tokens" field.
func (_c *CodeReviewCreate) SetOutputTokens(v int) *CodeReviewCreate {
	_c.mutation.SetOutputTokens(v)
	return _c
}

// SetNillableOutputTokens sets the "output_tokens" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableOutputTokens(v *int) *CodeReviewCreate {
	if v != nil {
		_c.SetOutputTokens(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *CodeReviewCreate) SetCreatedAt(v time.Time) *CodeReviewCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableCreatedAt(v *time.Time) *CodeReviewCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *CodeReviewCreate) SetUpdatedAt(v time.Time) *CodeReviewCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *CodeReviewCreate) SetNillableUpdatedAt(v *time.Time) *CodeReviewCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *CodeReviewCreate) SetID(v string) *CodeReviewCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the CodeReviewMutation object of the builder.
func (_c *CodeReviewCreate) Mutation() *CodeReviewMutation {
	return _c.mutation
}

// Save creates the CodeReview in the database.
func (_c *CodeReviewCreate) Save(ctx context.Context) (*CodeReview, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *CodeReviewCreate) SaveX(ctx context.Context) *CodeReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeReviewCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeReviewCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *CodeReviewCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := codereview.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		v := codereview.DefaultInputTokens
		_c.mutation.SetInputTokens(v)
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		v := codereview.DefaultOutputTokens
		_c.mutation.SetOutputTokens(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := codereview.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := codereview.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *CodeReviewCreate) check() error {
	if _, ok := _c.mutation.TaskID(); !ok {
		return &ValidationError{Name: "task_id", err: errors.New(`ent: missing required field "CodeReview.task_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "CodeReview.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := codereview.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "CodeReview.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.InputTokens(); !ok {
		return &ValidationError{Name: "input_tokens", err: errors.New(`ent: missing required field "CodeReview.input_tokens"`)}
	}
	if _, ok := _c.mutation.OutputTokens(); !ok {
		return &ValidationError{Name: "output_tokens", err: errors.New(`ent: missing required field "CodeReview.output_tokens"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "CodeReview.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "CodeReview.updated_at"`)}
	}
	return nil
}

func (_c *CodeReviewCreate) sqlSave(ctx context.Context) (*CodeReview, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected CodeReview.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *CodeReviewCreate) createSpec() (*CodeReview, *sqlgraph.CreateSpec) {
	var (
		_node = &CodeReview{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(codereview.Table, sqlgraph.NewFieldSpec(codereview.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TaskID(); ok {
		_spec.SetField(codereview.FieldTaskID, field.TypeString, value)
		_node.TaskID = value
	}
	if value, ok := _c.mutation.ReviewTaskID(); ok {
		_spec.SetField(codereview.FieldReviewTaskID, field.TypeString, value)
		_node.ReviewTaskID = &value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(codereview.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.QualityScore(); ok {
		_spec.SetField(codereview.FieldQualityScore, field.TypeFloat64, value)
		_node.QualityScore = &value
	}
	if value, ok := _c.mutation.Findings(); ok {
		_spec.SetField(codereview.FieldFindings, field.TypeJSON, value)
		_node.Findings = value
	}
	if value, ok := _c.mutation.Summary(); ok {
		_spec.SetField(codereview.FieldSummary, field.TypeString, value)
		_node.Summary = value
	}
	if value, ok := _c.mutation.ModelUsed(); ok {
		_spec.SetField(codereview.FieldModelUsed, field.TypeString, value)
		_node.ModelUsed = value
	}
	if value, ok := _c.mutation.InputTokens(); ok {
		_spec.SetField(codereview.FieldInputTokens, field.TypeInt, value)
		_node.InputTokens = value
	}
	if value, ok := _c.mutation.OutputTokens(); ok {
		_spec.SetField(codereview.FieldOutputTokens, field.TypeInt, value)
		_node.OutputTokens = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(codereview.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(codereview.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// CodeReviewCreateBulk is the builder for creating many CodeReview entities in bulk.
type CodeReviewCreateBulk struct {
	config
	err      error
	builders []*CodeReviewCreate
}

// Save creates the CodeReview entities in the database.
func (_c *CodeReviewCreateBulk) Save(ctx context.Context) ([]*CodeReview, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*CodeReview, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*CodeReviewMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *CodeReviewCreateBulk) SaveX(ctx context.Context) []*CodeReview {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *CodeReviewCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *CodeReviewCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
