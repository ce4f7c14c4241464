package services

import (
	"context"
	"database/sql"
	"fmt"
)

// ClickService wraps the increment_assignment_clicks SQL helper: an atomic
// insert-or-update counter per assignment external id that also bumps the
// paired broadcast record so the edit-on-click loop notices.
type ClickService struct {
	db *sql.DB
}

// NewClickService creates a new ClickService
func NewClickService(db *sql.DB) *ClickService {
	if db == nil {
		panic("NewClickService: db must not be nil")
	}
	return &ClickService{db: db}
}

// IncrementClicks adds delta to the click counter for externalID and
// returns the new total. Negative deltas clamp to zero, so the counter is
// monotone; a zero delta reads the current count without moving it.
func (s *ClickService) IncrementClicks(ctx context.Context, externalID, originalURL string, delta int64) (int64, error) {
	if externalID == "" {
		return 0, NewValidationError("external_id", "required")
	}

	var count int64
	err := s.db.QueryRowContext(ctx,
		`SELECT increment_assignment_clicks($1, $2, $3)`,
		externalID, nullableString(originalURL), delta,
	).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to increment clicks: %w", err)
	}
	return count, nil
}

func nullableString(s string) interface{} {
	if s == "" {
		return nil
	}
	return s
}
