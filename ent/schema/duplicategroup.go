package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DuplicateGroup holds the schema definition for the DuplicateGroup entity.
// A cluster of cross-agency assignments advertising the same underlying
// opportunity. The group owns the member set; assignments carry only a weak
// duplicate_group_id back-reference.
type DuplicateGroup struct {
	ent.Schema
}

// Fields of the DuplicateGroup.
func (DuplicateGroup) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("group_id").
			Unique().
			Immutable(),
		field.String("primary_assignment_id").
			Optional().
			Nillable().
			Comment("Nullable during promote/demote transitions"),
		field.Int("member_count").
			Default(1),
		field.Float("avg_confidence_score").
			Default(0),
		field.Enum("status").
			Values("active", "resolved").
			Default("active"),
		field.String("detection_algorithm_version").
			Comment("Scoring weights/thresholds version that formed the group"),
		field.JSON("meta", map[string]interface{}{}).
			Optional().
			Comment("Merge history, per-member scores"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Edges of the DuplicateGroup.
func (DuplicateGroup) Edges() []ent.Edge {
	return []ent.Edge{
		// No cascade: members survive group resolution.
		edge.To("members", Assignment.Type),
	}
}

// Indexes of the DuplicateGroup.
func (DuplicateGroup) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("status"),
		index.Fields("created_at"),
	}
}
