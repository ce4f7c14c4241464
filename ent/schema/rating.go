package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Rating holds the schema definition for the Rating entity.
// One per (tutor, assignment): how well a delivered assignment matched,
// plus the distance at send time. Feeds the adaptive percentile threshold
// (calculate_tutor_rating_threshold).
type Rating struct {
	ent.Schema
}

// Fields of the Rating.
func (Rating) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("rating_id").
			Unique().
			Immutable(),
		field.String("tutor_id").
			Immutable(),
		field.String("assignment_id").
			Immutable(),
		field.Float("score").
			Comment("Match quality in [0, 100]"),
		field.Float("distance_km_at_send").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the Rating.
func (Rating) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tutor_id", "assignment_id").
			Unique(),
		index.Fields("tutor_id", "created_at"),
	}
}
