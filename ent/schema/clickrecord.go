package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ClickRecord holds the schema definition for the ClickRecord entity.
// Monotone click counter per assignment external_id, paired with
// BroadcastRecord for edit-on-click threshold rendering.
type ClickRecord struct {
	ent.Schema
}

// Fields of the ClickRecord.
func (ClickRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("click_id").
			Unique().
			Immutable(),
		field.String("external_id").
			Unique().
			Immutable(),
		field.Int("click_count").
			Default(0).
			Comment("Never decreases; increments clamp negative deltas to 0"),
		field.String("original_url").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the ClickRecord.
func (ClickRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
