package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Assignment holds the schema definition for the Assignment entity.
// The canonical, query-facing tutoring opportunity. Upserted by the pipeline
// under the (agency_id, external_id) identity; never hard-deleted.
type Assignment struct {
	ent.Schema
}

// Fields of the Assignment.
func (Assignment) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").
			StorageKey("assignment_id").
			Unique().
			Immutable(),

		// Identity & provenance (set-once on first upsert)
		field.String("external_id").
			Immutable().
			Comment("Stable per-agency identity derived from the source post"),
		field.String("agency_id").
			Immutable(),
		field.String("assignment_code").
			Optional().
			Nillable().
			Comment("Agency-visible id, e.g. 'TA12345'"),
		field.String("message_link").
			Optional().
			Nillable(),

		// Display
		field.Text("academic_display_text").
			Comment("Human-readable summary (full-text searchable)"),
		field.Strings("lesson_schedule").
			Optional(),
		field.String("start_date").
			Optional().
			Nillable(),
		field.String("time_availability_note").
			Optional().
			Nillable(),
		field.JSON("tutor_types", []map[string]interface{}{}).
			Optional().
			Comment("Tagged objects, e.g. {\"type\": \"MOE\", \"rate\": \"$60-70\"}"),
		field.String("learning_mode").
			Optional().
			Nillable().
			Comment("in-person|online|hybrid as stated by the source"),
		field.String("rate_raw_text").
			Optional().
			Nillable(),
		field.String("rate_breakdown").
			Optional().
			Nillable(),

		// Location
		field.Strings("address").
			Optional(),
		field.Strings("postal_code").
			Optional(),
		field.Strings("postal_code_estimated").
			Optional().
			Comment("Inferred postals when the post carries none verbatim"),
		field.Float("postal_lat").
			Optional().
			Nillable(),
		field.Float("postal_lon").
			Optional().
			Nillable(),
		field.Bool("postal_coords_estimated").
			Default(false),
		field.String("region").
			Optional().
			Nillable().
			Comment("north|east|west|central|north-east"),
		field.String("nearest_mrt_computed").
			Optional().
			Nillable(),
		field.String("nearest_mrt_line").
			Optional().
			Nillable(),
		field.Int("nearest_mrt_distance_m").
			Optional().
			Nillable(),

		// Numeric rates
		field.Float("rate_min").
			Optional().
			Nillable(),
		field.Float("rate_max").
			Optional().
			Nillable(),

		// Deterministic signals (LLM-independent rollups from raw text)
		field.Strings("signals_subjects").
			Optional(),
		field.Strings("signals_levels").
			Optional(),
		field.Strings("signals_specific_student_levels").
			Optional(),

		// Canonicalization
		field.Strings("subjects_canonical").
			Optional().
			Comment("Stable level-aware codes, e.g. 'MATH.SEC_EMATH'"),
		field.Strings("subjects_general").
			Optional().
			Comment("Parent categories of subjects_canonical"),
		field.Int("canonicalization_version").
			Default(0).
			Comment("Monotonically increases across reprocessings"),

		// Temporal
		field.Time("created_at").
			Default(time.Now).
			Immutable().
			Comment("First-seen; preserved across upserts"),
		field.Time("published_at").
			Optional().
			Nillable().
			Comment("Source publish time; drives the newest sort"),
		field.Time("source_last_seen").
			Optional().
			Nillable().
			Comment("Last upstream bump or edit"),
		field.Time("last_seen").
			Default(time.Now).
			Comment("Last successful pipeline processing"),

		// Lifecycle
		field.Enum("status").
			Values("open", "closed").
			Default("open"),
		field.Enum("freshness_tier").
			Values("green", "yellow", "orange", "red").
			Default("green"),
		field.Int("bump_count").
			Default(0).
			Comment("Incremented when the source publish time advanced"),

		// Duplication (weak reference; group transitions live in the detector)
		field.String("duplicate_group_id").
			Optional().
			Nillable(),
		field.Bool("is_primary_in_group").
			Default(true),
		field.Float("duplicate_confidence_score").
			Optional().
			Nillable(),
	}
}

// Edges of the Assignment.
func (Assignment) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("group", DuplicateGroup.Type).
			Ref("members").
			Field("duplicate_group_id").
			Unique(),
	}
}

// Indexes of the Assignment.
func (Assignment) Indexes() []ent.Index {
	return []ent.Index{
		// Upsert conflict key
		index.Fields("agency_id", "external_id").
			Unique(),

		// Listing sorts
		index.Fields("status", "published_at"),
		index.Fields("status", "last_seen"),

		// Duplicate detection candidate scan
		index.Fields("status", "agency_id", "published_at"),

		// Group membership lookups
		index.Fields("duplicate_group_id"),

		// Freshness recompute scan
		index.Fields("status", "freshness_tier"),
	}
}

// Annotations for PostgreSQL-specific features.
// Note: GIN indexes over the signal/subject arrays and tutor_types are
// created via migrations in pkg/database.
func (Assignment) Annotations() []schema.Annotation {
	return []schema.Annotation{}
}
