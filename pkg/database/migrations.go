package database

import (
	"context"
	"fmt"

	"entgo.io/ent/dialect/sql"
)

// ginIndexes are the containment and full-text indexes over the assignment
// arrays. The listing filters and the duplicate-detector candidate scan
// depend on them. Must match 20260608000000_search_indexes.up.sql.
var ginIndexes = []struct {
	name string
	stmt string
}{
	{"signals_subjects", `CREATE INDEX IF NOT EXISTS idx_assignments_signals_subjects_gin
		ON assignments USING gin (signals_subjects jsonb_path_ops)`},
	{"signals_levels", `CREATE INDEX IF NOT EXISTS idx_assignments_signals_levels_gin
		ON assignments USING gin (signals_levels jsonb_path_ops)`},
	{"signals_specific_student_levels", `CREATE INDEX IF NOT EXISTS idx_assignments_signals_specific_levels_gin
		ON assignments USING gin (signals_specific_student_levels jsonb_path_ops)`},
	{"subjects_canonical", `CREATE INDEX IF NOT EXISTS idx_assignments_subjects_canonical_gin
		ON assignments USING gin (subjects_canonical jsonb_path_ops)`},
	{"subjects_general", `CREATE INDEX IF NOT EXISTS idx_assignments_subjects_general_gin
		ON assignments USING gin (subjects_general jsonb_path_ops)`},
	{"postal_code", `CREATE INDEX IF NOT EXISTS idx_assignments_postal_code_gin
		ON assignments USING gin (postal_code jsonb_path_ops)`},
	{"tutor_types", `CREATE INDEX IF NOT EXISTS idx_assignments_tutor_types_gin
		ON assignments USING gin (tutor_types jsonb_path_ops)`},
	{"academic_display_text", `CREATE INDEX IF NOT EXISTS idx_assignments_display_text_gin
		ON assignments USING gin (to_tsvector('english', academic_display_text))`},
}

// CreateGINIndexes creates the GIN indexes PostgreSQL needs for array
// containment filters and full-text search on assignments.
func CreateGINIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	for _, idx := range ginIndexes {
		if _, err := db.ExecContext(ctx, idx.stmt); err != nil {
			return fmt.Errorf("failed to create %s GIN index: %w", idx.name, err)
		}
	}

	return nil
}

// CreatePartialUniqueIndexes creates PostgreSQL partial unique indexes that
// Ent/Atlas cannot express. These must match the constraints in
// 20260608000000_search_indexes.up.sql.
func CreatePartialUniqueIndexes(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	// The one-primary-per-group invariant is enforced by the store itself:
	// concurrent promote/demote races surface as constraint errors instead
	// of silent double-primaries.
	_, err := db.ExecContext(ctx,
		`CREATE UNIQUE INDEX IF NOT EXISTS assignment_one_primary_per_group
		ON assignments (duplicate_group_id)
		WHERE is_primary_in_group AND duplicate_group_id IS NOT NULL`)
	if err != nil {
		return fmt.Errorf("failed to create one-primary-per-group index: %w", err)
	}

	return nil
}

// storeFunctions are the SQL helpers of 20260615000000_store_helpers.up.sql.
// Click accounting runs in the database so it stays atomic under concurrent
// callers; the rating helpers compute next to the data they scan.
var storeFunctions = []struct {
	name string
	stmt string
}{
	{"increment_assignment_clicks", `CREATE OR REPLACE FUNCTION increment_assignment_clicks(
    p_external_id varchar,
    p_original_url varchar,
    p_delta bigint
) RETURNS bigint AS $$
DECLARE
    v_count bigint;
BEGIN
    INSERT INTO click_records (click_id, external_id, click_count, original_url, created_at, updated_at)
    VALUES (gen_random_uuid()::varchar, p_external_id, GREATEST(0, p_delta), p_original_url, now(), now())
    ON CONFLICT (external_id) DO UPDATE
        SET click_count  = click_records.click_count + GREATEST(0, p_delta),
            original_url = COALESCE(EXCLUDED.original_url, click_records.original_url),
            updated_at   = now()
    RETURNING click_count INTO v_count;

    UPDATE broadcast_records
       SET updated_at = now()
     WHERE external_id = p_external_id;

    RETURN v_count;
END;
$$ LANGUAGE plpgsql`},
	{"calculate_tutor_rating_threshold", `CREATE OR REPLACE FUNCTION calculate_tutor_rating_threshold(
    p_tutor_id varchar,
    p_percentile double precision DEFAULT 0.25,
    p_window bigint DEFAULT 50
) RETURNS double precision AS $$
    SELECT percentile_cont(p_percentile) WITHIN GROUP (ORDER BY score)
    FROM (
        SELECT score
        FROM ratings
        WHERE tutor_id = p_tutor_id
        ORDER BY created_at DESC
        LIMIT p_window
    ) recent;
$$ LANGUAGE sql STABLE`},
	{"get_tutor_avg_rate", `CREATE OR REPLACE FUNCTION get_tutor_avg_rate(
    p_tutor_id varchar
) RETURNS double precision AS $$
    SELECT avg((a.rate_min + a.rate_max) / 2.0)
    FROM ratings r
    JOIN assignments a ON a.assignment_id = r.assignment_id
    WHERE r.tutor_id = p_tutor_id
      AND a.rate_min IS NOT NULL
      AND a.rate_max IS NOT NULL;
$$ LANGUAGE sql STABLE`},
}

// CreateStoreFunctions installs the SQL helper functions
// (increment_assignment_clicks, calculate_tutor_rating_threshold,
// get_tutor_avg_rate) for schemas created outside golang-migrate.
func CreateStoreFunctions(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	for _, fn := range storeFunctions {
		if _, err := db.ExecContext(ctx, fn.stmt); err != nil {
			return fmt.Errorf("failed to create %s: %w", fn.name, err)
		}
	}

	return nil
}

// CreateEventsTable creates the durable events table for schemas created via
// ent Schema.Create (tests). Raw SQL because events is not an ent entity.
func CreateEventsTable(ctx context.Context, driver *sql.Driver) error {
	db := driver.DB()

	_, err := db.ExecContext(ctx,
		`CREATE TABLE IF NOT EXISTS events (
			id         BIGSERIAL PRIMARY KEY,
			scope_id   varchar NOT NULL,
			channel    varchar NOT NULL,
			payload    jsonb NOT NULL,
			created_at timestamptz NOT NULL DEFAULT now()
		)`)
	if err != nil {
		return fmt.Errorf("failed to create events table: %w", err)
	}

	for _, stmt := range []string{
		`CREATE INDEX IF NOT EXISTS events_channel_id ON events (channel, id)`,
		`CREATE INDEX IF NOT EXISTS events_scope_id ON events (scope_id)`,
		`CREATE INDEX IF NOT EXISTS events_created_at ON events (created_at)`,
	} {
		if _, err := db.ExecContext(ctx, stmt); err != nil {
			return fmt.Errorf("failed to create events index: %w", err)
		}
	}

	return nil
}
