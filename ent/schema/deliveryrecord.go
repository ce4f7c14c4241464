package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// DeliveryRecord holds the schema definition for the DeliveryRecord entity.
// Per-(tutor, assignment) DM dedup row: at-least-once pipeline inputs must
// never produce a second DM for the same pair.
type DeliveryRecord struct {
	ent.Schema
}

// Fields of the DeliveryRecord.
func (DeliveryRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("delivery_id").
			Unique().
			Immutable(),
		field.String("tutor_id").
			Immutable(),
		field.String("assignment_id").
			Immutable(),
		field.Enum("status").
			Values("sent", "throttled", "failed").
			Default("sent"),
		field.String("transport_message_id").
			Optional().
			Nillable(),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
	}
}

// Indexes of the DeliveryRecord.
func (DeliveryRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("tutor_id", "assignment_id").
			Unique(),
		index.Fields("assignment_id"),
	}
}
