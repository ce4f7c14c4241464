package services

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/google/uuid"

	"github.com/tuitionlab/assignflow/ent"
)

// RatingService records per-(tutor, assignment) match ratings and exposes
// the SQL helpers the fanout uses for adaptive thresholds.
type RatingService struct {
	client *ent.Client
	db     *sql.DB
}

// NewRatingService creates a new RatingService
func NewRatingService(client *ent.Client, db *sql.DB) *RatingService {
	if client == nil {
		panic("NewRatingService: client must not be nil")
	}
	if db == nil {
		panic("NewRatingService: db must not be nil")
	}
	return &RatingService{client: client, db: db}
}

// RecordRating stores one rating. A second rating for the same pair is
// rejected with ErrAlreadyExists.
func (s *RatingService) RecordRating(ctx context.Context, tutorID, assignmentID string, score float64, distanceKm *float64) error {
	if tutorID == "" {
		return NewValidationError("tutor_id", "required")
	}
	if assignmentID == "" {
		return NewValidationError("assignment_id", "required")
	}
	if score < 0 || score > 100 {
		return NewValidationError("score", "must be in [0, 100]")
	}

	err := s.client.Rating.Create().
		SetID(uuid.New().String()).
		SetTutorID(tutorID).
		SetAssignmentID(assignmentID).
		SetScore(score).
		SetNillableDistanceKmAtSend(distanceKm).
		Exec(ctx)
	return translateEntError("record rating", err)
}

// CalculateTutorRatingThreshold returns the percentile-based adaptive
// minimum match score for one tutor over their recent rating window.
// Returns nil when the tutor has no rating history.
func (s *RatingService) CalculateTutorRatingThreshold(ctx context.Context, tutorID string, percentile float64, window int64) (*float64, error) {
	var threshold sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT calculate_tutor_rating_threshold($1, $2, $3)`,
		tutorID, percentile, window,
	).Scan(&threshold)
	if err != nil {
		return nil, fmt.Errorf("failed to calculate rating threshold: %w", err)
	}
	if !threshold.Valid {
		return nil, nil
	}
	return &threshold.Float64, nil
}

// GetTutorAvgRate returns the average rate of assignments the tutor was
// matched to, or nil without history.
func (s *RatingService) GetTutorAvgRate(ctx context.Context, tutorID string) (*float64, error) {
	var rate sql.NullFloat64
	err := s.db.QueryRowContext(ctx,
		`SELECT get_tutor_avg_rate($1)`, tutorID,
	).Scan(&rate)
	if err != nil {
		return nil, fmt.Errorf("failed to get tutor avg rate: %w", err)
	}
	if !rate.Valid {
		return nil, nil
	}
	return &rate.Float64, nil
}
