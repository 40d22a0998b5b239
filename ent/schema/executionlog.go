package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExecutionLog holds the schema definition for the ExecutionLog entity —
// one tool call within a run. Append-only, ordered by step.
type ExecutionLog struct {
	ent.Schema
}

// Fields of the ExecutionLog.
func (ExecutionLog) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("log_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Immutable(),
		field.Int("step").
			Immutable().
			Comment("Strictly increasing per task, starting at 1"),
		field.String("action").
			Immutable().
			Comment("Tool name, e.g. 'file_write', 'shell_run'"),
		field.Text("input").
			Immutable(),
		field.Text("observation"),
		field.Int("duration_ms").
			Default(0),
		field.String("model_used").
			Optional(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Bool("is_loop_detected").
			Default(false),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the ExecutionLog.
func (ExecutionLog) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("task_id", "step").
			Unique(),
	}
}
