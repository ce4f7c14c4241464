package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// BroadcastRecord holds the schema definition for the BroadcastRecord entity.
// The last broadcast-delivered content for an assignment, used to edit the
// existing post when the displayed click bucket changes.
type BroadcastRecord struct {
	ent.Schema
}

// Fields of the BroadcastRecord.
func (BroadcastRecord) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("broadcast_id").
			Unique().
			Immutable(),
		field.String("external_id").
			Unique().
			Immutable(),
		field.Text("content").
			Optional().
			Comment("Body as last delivered to the channel"),
		field.String("chat_id").
			Optional().
			Nillable().
			Comment("Transport channel the post lives in"),
		field.String("transport_message_id").
			Optional().
			Nillable().
			Comment("Edit target returned by the transport"),
		field.Int("click_bucket").
			Default(0).
			Comment("Rendering bucket at last delivery; edit fires when it moves"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Bumped by click increments so the editor loop notices"),
	}
}

// Indexes of the BroadcastRecord.
func (BroadcastRecord) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("updated_at"),
	}
}
