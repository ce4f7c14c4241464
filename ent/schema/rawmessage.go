package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// RawMessage holds the schema definition for the RawMessage entity.
// An immutable record of one ingested agency post. Written by the collector;
// the extraction pipeline only ever reads it.
type RawMessage struct {
	ent.Schema
}

// Fields of the RawMessage.
func (RawMessage) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("raw_id").
			Unique().
			Immutable(),
		field.String("channel").
			Immutable().
			Comment("Upstream channel identifier (e.g. 'c/agencyA')"),
		field.String("message_id").
			Immutable().
			Comment("Message id within the channel"),
		field.String("agency_id").
			Immutable(),
		field.Text("text").
			Comment("Raw post text as received"),
		field.Time("source_published_at").
			Immutable().
			Comment("When the source channel published the post"),
		field.Time("source_edited_at").
			Optional().
			Nillable().
			Comment("Upstream edit/bump time; advances source_last_seen downstream"),
		field.JSON("payload", map[string]interface{}{}).
			Optional().
			Comment("Opaque upstream blob (entities, media refs)"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("deleted_at").
			Optional().
			Nillable().
			Comment("Soft delete; jobs referencing a deleted raw are skipped"),
	}
}

// Edges of the RawMessage.
func (RawMessage) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("jobs", ExtractionJob.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the RawMessage.
func (RawMessage) Indexes() []ent.Index {
	return []ent.Index{
		// Collector idempotency key
		index.Fields("channel", "message_id").
			Unique(),
		index.Fields("agency_id"),
		index.Fields("created_at"),

		// Partial index for soft deletes
		index.Fields("deleted_at").
			Annotations(entsql.IndexWhere("deleted_at IS NOT NULL")),
	}
}
