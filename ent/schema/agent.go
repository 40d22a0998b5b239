package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Agent holds the schema definition for the Agent entity — an executor
// instance of a given kind (coder, qa, cto).
type Agent struct {
	ent.Schema
}

// Fields of the Agent.
func (Agent) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("agent_id").
			Unique().
			Immutable(),
		field.Enum("kind").
			Values("coder", "qa", "cto"),
		field.String("name"),
		field.Enum("status").
			Values("idle", "busy", "paused", "offline").
			Default("idle"),
		field.String("current_task_id").
			Optional().
			Nillable().
			Comment("Non-nil iff status is busy — at most one task per agent"),
		field.String("model").
			Optional().
			Comment("Preferred model identifier, e.g. 'qwen2.5-coder' or 'claude-sonnet'"),
		field.Int("tasks_completed").
			Default(0),
		field.Int("tasks_failed").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the Agent.
func (Agent) Indexes() []ent.Index {
	return []ent.Index{
		// Idle-agent lookup by kind (router + assigner)
		index.Fields("kind", "status"),
	}
}
