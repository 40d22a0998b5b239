// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/frugalops/foreman/ent/agent"
	"github.com/frugalops/foreman/ent/codereview"
	"github.com/frugalops/foreman/ent/event"
	"github.com/frugalops/foreman/ent/executionlog"
	"github.com/frugalops/foreman/ent/schema"
	"github.com/frugalops/foreman/ent/task"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescTasksCompleted is the schema descriptor for tasks_completed field.
	agentDescTasksCompleted := agentFields[6].Descriptor()
	// agent.DefaultTasksCompleted holds the default value on creation for the tasks_completed field.
	agent.DefaultTasksCompleted = agentDescTasksCompleted.Default.(int)
	// agentDescTasksFailed is the schema descriptor for tasks_failed field.
	agentDescTasksFailed := agentFields[7].Descriptor()
	// agent.DefaultTasksFailed holds the default value on creation for the tasks_failed field.
	agent.DefaultTasksFailed = agentDescTasksFailed.Default.(int)
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[8].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[9].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	codereviewFields := schema.CodeReview{}.Fields()
	_ = codereviewFields
	// codereviewDescInputTokens is the schema descriptor for input_tokens field.
	codereviewDescInputTokens := codereviewFields[8].Descriptor()
	// codereview.DefaultInputTokens holds the default value on creation for the input_tokens field.
	codereview.DefaultInputTokens = codereviewDescInputTokens.Default.(int)
	// codereviewDescOutputTokens is the schema descriptor for output_tokens field.
	codereviewDescOutputTokens := codereviewFields[9].Descriptor()
	// codereview.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	codereview.DefaultOutputTokens = codereviewDescOutputTokens.Default.(int)
	// codereviewDescCreatedAt is the schema descriptor for created_at field.
	codereviewDescCreatedAt := codereviewFields[10].Descriptor()
	// codereview.DefaultCreatedAt holds the default value on creation for the created_at field.
	codereview.DefaultCreatedAt = codereviewDescCreatedAt.Default.(func() time.Time)
	// codereviewDescUpdatedAt is the schema descriptor for updated_at field.
	codereviewDescUpdatedAt := codereviewFields[11].Descriptor()
	// codereview.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	codereview.DefaultUpdatedAt = codereviewDescUpdatedAt.Default.(func() time.Time)
	// codereview.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	codereview.UpdateDefaultUpdatedAt = codereviewDescUpdatedAt.UpdateDefault.(func() time.Time)
	eventFields := schema.Event{}.Fields()
	_ = eventFields
	// eventDescCreatedAt is the schema descriptor for created_at field.
	eventDescCreatedAt := eventFields[4].Descriptor()
	// event.DefaultCreatedAt holds the default value on creation for the created_at field.
	event.DefaultCreatedAt = eventDescCreatedAt.Default.(func() time.Time)
	executionlogFields := schema.ExecutionLog{}.Fields()
	_ = executionlogFields
	// executionlogDescDurationMs is the schema descriptor for duration_ms field.
	executionlogDescDurationMs := executionlogFields[6].Descriptor()
	// executionlog.DefaultDurationMs holds the default value on creation for the duration_ms field.
	executionlog.DefaultDurationMs = executionlogDescDurationMs.Default.(int)
	// executionlogDescInputTokens is the schema descriptor for input_tokens field.
	executionlogDescInputTokens := executionlogFields[8].Descriptor()
	// executionlog.DefaultInputTokens holds the default value on creation for the input_tokens field.
	executionlog.DefaultInputTokens = executionlogDescInputTokens.Default.(int)
	// executionlogDescOutputTokens is the schema descriptor for output_tokens field.
	executionlogDescOutputTokens := executionlogFields[9].Descriptor()
	// executionlog.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	executionlog.DefaultOutputTokens = executionlogDescOutputTokens.Default.(int)
	// executionlogDescIsLoopDetected is the schema descriptor for is_loop_detected field.
	executionlogDescIsLoopDetected := executionlogFields[10].Descriptor()
	// executionlog.DefaultIsLoopDetected holds the default value on creation for the is_loop_detected field.
	executionlog.DefaultIsLoopDetected = executionlogDescIsLoopDetected.Default.(bool)
	// executionlogDescCreatedAt is the schema descriptor for created_at field.
	executionlogDescCreatedAt := executionlogFields[11].Descriptor()
	// executionlog.DefaultCreatedAt holds the default value on creation for the created_at field.
	executionlog.DefaultCreatedAt = executionlogDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescPriority is the schema descriptor for priority field.
	taskDescPriority := taskFields[4].Descriptor()
	// task.DefaultPriority holds the default value on creation for the priority field.
	task.DefaultPriority = taskDescPriority.Default.(int)
	// task.PriorityValidator is a validator for the "priority" field. It is called by the builders before save.
	task.PriorityValidator = func() func(int) error {
		validators := taskDescPriority.Validators
		fns := [...]func(int) error{
			validators[0].(func(int) error),
			validators[1].(func(int) error),
		}
		return func(priority int) error {
			for _, fn := range fns {
				if err := fn(priority); err != nil {
					return err
				}
			}
			return nil
		}
	}()
	// taskDescMaxIterations is the schema descriptor for max_iterations field.
	taskDescMaxIterations := taskFields[6].Descriptor()
	// task.DefaultMaxIterations holds the default value on creation for the max_iterations field.
	task.DefaultMaxIterations = taskDescMaxIterations.Default.(int)
	// taskDescCurrentIteration is the schema descriptor for current_iteration field.
	taskDescCurrentIteration := taskFields[15].Descriptor()
	// task.DefaultCurrentIteration holds the default value on creation for the current_iteration field.
	task.DefaultCurrentIteration = taskDescCurrentIteration.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[22].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[23].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
}
