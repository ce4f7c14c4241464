package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// ExtractionJob holds the schema definition for the ExtractionJob entity.
// One unit of pipeline work per (raw message, pipeline version). Claimed
// with skip-locked semantics by the worker pool.
type ExtractionJob struct {
	ent.Schema
}

// Fields of the ExtractionJob.
func (ExtractionJob) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("job_id").
			Unique().
			Immutable(),
		field.String("raw_id").
			Immutable(),
		field.String("pipeline_version").
			Immutable().
			Comment("Logical identity of the extraction schema + model"),
		field.Enum("status").
			Values("pending", "processing", "ok", "failed", "skipped").
			Default("pending"),
		field.Int("attempt").
			Default(0).
			Comment("Incremented on every claim"),
		field.Time("processing_started_at").
			Optional().
			Nillable().
			Comment("Stamped by claim; cleared on requeue"),
		field.Time("available_at").
			Default(time.Now).
			Comment("Earliest claim time; pushed forward on requeue-with-backoff"),
		field.JSON("meta", map[string]interface{}{}).
			Optional().
			Comment("Requeue reason, backoff hint, assignment_id on success, segment error map"),
		field.JSON("error_json", map[string]interface{}{}).
			Optional().
			Comment("Structured error taxonomy with redacted raw preview"),
		field.String("llm_model").
			Optional().
			Nillable().
			Comment("Model that served the successful extraction"),
		field.Time("created_at").
			Default(time.Now).
			Immutable(),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Worker heartbeat target; stale-requeue watches this"),
	}
}

// Edges of the ExtractionJob.
func (ExtractionJob) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("raw", RawMessage.Type).
			Ref("jobs").
			Field("raw_id").
			Unique().
			Required().
			Immutable(),
	}
}

// Indexes of the ExtractionJob.
func (ExtractionJob) Indexes() []ent.Index {
	return []ent.Index{
		// One job per raw message per pipeline version
		index.Fields("raw_id", "pipeline_version").
			Unique(),

		// Claim order: oldest pending first within a pipeline version
		index.Fields("pipeline_version", "status", "created_at"),
		index.Fields("pipeline_version", "status", "available_at"),

		// Stale-requeue scan
		index.Fields("status", "updated_at"),
	}
}
