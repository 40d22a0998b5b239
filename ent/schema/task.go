package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Task holds the schema definition for the Task entity — one unit of coding
// work submitted to the orchestrator.
type Task struct {
	ent.Schema
}

// Fields of the Task.
func (Task) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("task_id").
			Unique().
			Immutable(),
		field.String("title"),
		field.Text("description"),
		field.Enum("task_type").
			Values("code", "test", "review", "refactor", "debug", "decomposition").
			Default("code"),
		field.Int("priority").
			Default(5).
			Min(0).
			Max(10),
		field.Enum("required_agent").
			Values("coder", "qa", "cto").
			Optional().
			Nillable().
			Comment("Kind override — forces routing to this agent kind"),
		field.Int("max_iterations").
			Default(3),
		field.String("parent_task_id").
			Optional().
			Nillable().
			Comment("Set for subtasks produced by decomposition and for review tasks"),

		// Complexity assessment
		field.Float("complexity").
			Optional().
			Nillable().
			Comment("Score in [1,10], one decimal"),
		field.Enum("complexity_source").
			Values("router", "haiku", "dual", "override").
			Optional().
			Nillable(),
		field.Text("complexity_reasoning").
			Optional().
			Nillable(),

		// Lifecycle
		field.Enum("status").
			Values("pending", "assigned", "in_progress", "completed", "failed", "aborted", "needs_human").
			Default("pending"),
		field.String("assigned_agent_id").
			Optional().
			Nillable(),
		field.Time("assigned_at").
			Optional().
			Nillable(),
		field.Time("completed_at").
			Optional().
			Nillable(),

		// Retry accounting
		field.Int("current_iteration").
			Default(0).
			Comment("Failed attempts so far — monotonically non-decreasing"),

		// Result
		field.JSON("result", map[string]interface{}{}).
			Optional().
			Comment("Structured runtime output — parsed into typed structures at the component boundary"),
		field.String("error_message").
			Optional().
			Nillable(),
		field.String("error_category").
			Optional().
			Nillable().
			Comment("transport, rate_limit, budget, validation, loop, timeout, state_conflict, internal"),

		field.String("validation_command").
			Optional().
			Nillable().
			Comment("Sandboxed shell command — exit 0 required for success"),

		field.String("pod_id").
			Optional().
			Nillable().
			Comment("For multi-replica coordination"),
		field.Time("last_heartbeat_at").
			Optional().
			Nillable().
			Comment("For stuck-task detection"),

		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the Task.
func (Task) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("execution_logs", ExecutionLog.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("code_review", CodeReview.Type).
			Unique().
			Annotations(entsql.OnDelete(entsql.Cascade)),
		edge.To("events", Event.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Task.
func (Task) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("assigned_agent_id"),
		index.Fields("parent_task_id"),

		// Assigner scan order: priority DESC, created_at ASC within pending
		index.Fields("status", "priority", "created_at"),

		// Sweeper scan: stale heartbeats among active tasks
		index.Fields("status", "last_heartbeat_at"),
	}
}
