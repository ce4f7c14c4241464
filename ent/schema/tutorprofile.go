package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// TutorProfile holds the schema definition for the TutorProfile entity.
// The delivery-facing subscription surface: what a tutor wants to be
// matched on. Profile management itself is an external collaborator.
type TutorProfile struct {
	ent.Schema
}

// Fields of the TutorProfile.
func (TutorProfile) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("tutor_profile_id").
			Unique().
			Immutable(),
		field.String("tutor_id").
			Unique().
			Immutable().
			Comment("Messaging-platform identity"),
		field.Strings("subjects").
			Optional().
			Comment("Canonical subject codes the tutor accepts"),
		field.Strings("levels").
			Optional(),
		field.String("postal_code").
			Optional().
			Nillable(),
		field.Float("lat").
			Optional().
			Nillable(),
		field.Float("lon").
			Optional().
			Nillable(),
		field.Float("max_distance_km").
			Optional().
			Nillable().
			Comment("Overrides dm_max_distance_km_default when set"),
		field.String("dm_chat_id").
			Comment("Where DMs for this tutor are sent"),
		field.Bool("active").
			Default(true),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now),
	}
}

// Indexes of the TutorProfile.
func (TutorProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("active"),
	}
}
