package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// CodeReview holds the schema definition for the CodeReview entity — the
// outcome of a premium-tier review of a completed task's produced code.
type CodeReview struct {
	ent.Schema
}

// Fields of the CodeReview.
func (CodeReview) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("review_id").
			Unique().
			Immutable(),
		field.String("task_id").
			Unique().
			Immutable().
			Comment("The reviewed task — at most one review per task"),
		field.String("review_task_id").
			Optional().
			Nillable().
			Comment("The internal task that performs the review"),
		field.Enum("status").
			Values("pending", "approved", "needs_fixes", "rejected").
			Default("pending"),
		field.Float("quality_score").
			Optional().
			Nillable().
			Comment("Clamped to [0,10]"),
		field.JSON("findings", []map[string]interface{}{}).
			Optional().
			Comment("Raw findings JSON — parsed into typed structures in pkg/review"),
		field.Text("summary").
			Optional(),
		field.String("model_used").
			Optional(),
		field.Int("input_tokens").
			Default(0),
		field.Int("output_tokens").
			Default(0),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the CodeReview.
func (CodeReview) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
	}
}
