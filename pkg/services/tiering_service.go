package services

import (
	"context"
	"database/sql"
	"fmt"
	"time"
)

// TieringService recomputes freshness tiers for open assignments in
// bulk. Age is measured from source_last_seen, falling back to
// published_at, then created_at. Raw SQL: the coalesced age predicate
// and batched IN-subquery updates don't map onto the ORM.
type TieringService struct {
	db *sql.DB
}

// NewTieringService creates a new TieringService
func NewTieringService(db *sql.DB) *TieringService {
	if db == nil {
		panic("NewTieringService: db must not be nil")
	}
	return &TieringService{db: db}
}

// TierCutoffs are the maximum ages for the green, yellow, and orange
// tiers. Anything older than Orange is red.
type TierCutoffs struct {
	Green  time.Duration
	Yellow time.Duration
	Orange time.Duration
}

// RetierOpen moves every open assignment to the tier its age dictates
// and returns the number moved into each tier. Updates run in batches
// of batchSize; the writes are idempotent, so concurrent replicas only
// waste work, never corrupt it.
func (s *TieringService) RetierOpen(ctx context.Context, cutoffs TierCutoffs, batchSize int) (map[string]int, error) {
	now := time.Now()
	greenCutoff := now.Add(-cutoffs.Green)
	yellowCutoff := now.Add(-cutoffs.Yellow)
	orangeCutoff := now.Add(-cutoffs.Orange)

	tiers := []struct {
		tier      string
		predicate string
		args      []interface{}
	}{
		{"green", "effective_ts > $2", []interface{}{greenCutoff}},
		{"yellow", "effective_ts <= $2 AND effective_ts > $3", []interface{}{greenCutoff, yellowCutoff}},
		{"orange", "effective_ts <= $2 AND effective_ts > $3", []interface{}{yellowCutoff, orangeCutoff}},
		{"red", "effective_ts <= $2", []interface{}{orangeCutoff}},
	}

	moved := make(map[string]int)
	for _, t := range tiers {
		n, err := s.retierBatched(ctx, t.tier, t.predicate, t.args, batchSize)
		if err != nil {
			return moved, fmt.Errorf("failed to retier %s: %w", t.tier, err)
		}
		if n > 0 {
			moved[t.tier] = n
		}
	}
	return moved, nil
}

// retierBatched repeats a bounded update until no row qualifies. The
// subquery re-evaluates each round, so progress is guaranteed: every
// updated row stops matching freshness_tier <> target.
func (s *TieringService) retierBatched(ctx context.Context, tier, predicate string, args []interface{}, batchSize int) (int, error) {
	query := fmt.Sprintf(`
		UPDATE assignments SET freshness_tier = $1
		WHERE assignment_id IN (
			SELECT assignment_id
			FROM (
				SELECT assignment_id,
				       COALESCE(source_last_seen, published_at, created_at) AS effective_ts
				FROM assignments
				WHERE status = 'open' AND freshness_tier <> $1
			) aged
			WHERE %s
			LIMIT %d
		)`, predicate, batchSize)

	queryArgs := append([]interface{}{tier}, args...)

	total := 0
	for {
		res, err := s.db.ExecContext(ctx, query, queryArgs...)
		if err != nil {
			return total, err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return total, err
		}
		total += int(n)
		if int(n) < batchSize {
			return total, nil
		}
	}
}
