package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/ent/broadcastrecord"
	"github.com/tuitionlab/assignflow/pkg/models"
)

// AssignmentService is the canonical store adapter. All pipeline writes to
// assignments flow through UpsertAssignment; the merge policy lives here
// and nowhere else.
type AssignmentService struct {
	client *ent.Client
}

// NewAssignmentService creates a new AssignmentService
func NewAssignmentService(client *ent.Client) *AssignmentService {
	if client == nil {
		panic("NewAssignmentService: client must not be nil")
	}
	return &AssignmentService{client: client}
}

// UpsertAssignment inserts or merges one extraction result under the
// (agency_id, external_id) conflict key.
//
// Merge policy: identity and provenance fields are set-once; display,
// location, and numeric fields overwrite only when the new value is
// non-empty; arrays are replaced, never unioned; first-seen timestamps are
// preserved; bump_count increments when the source publish time advanced
// since the last extraction.
func (s *AssignmentService) UpsertAssignment(ctx context.Context, in *models.UpsertAssignmentInput) (*models.AssignmentView, error) {
	if in.ExternalID == "" {
		return nil, NewValidationError("external_id", "required")
	}
	if in.AgencyID == "" {
		return nil, NewValidationError("agency_id", "required")
	}
	if in.AcademicDisplayText == "" {
		return nil, NewValidationError("academic_display_text", "required")
	}

	// Two passes: the second absorbs a lost create race (unique violation
	// on the conflict key) by merging into the row the winner inserted.
	for attempt := 0; attempt < 2; attempt++ {
		view, err := s.upsertOnce(ctx, in)
		if err == nil {
			return view, nil
		}
		if ent.IsConstraintError(err) && attempt == 0 {
			continue
		}
		return nil, translateEntError("upsert assignment", err)
	}
	return nil, fmt.Errorf("upsert assignment: %w", ErrAlreadyExists)
}

func (s *AssignmentService) upsertOnce(ctx context.Context, in *models.UpsertAssignmentInput) (*models.AssignmentView, error) {
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	existing, err := tx.Assignment.Query().
		Where(
			assignment.AgencyID(in.AgencyID),
			assignment.ExternalID(in.ExternalID),
		).
		ForUpdate().
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, err
	}

	var view *models.AssignmentView
	if existing == nil {
		view, err = s.create(ctx, tx, in)
	} else {
		view, err = s.merge(ctx, existing, in)
	}
	if err != nil {
		return nil, err
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit upsert: %w", err)
	}
	return view, nil
}

func (s *AssignmentService) create(ctx context.Context, tx *ent.Tx, in *models.UpsertAssignmentInput) (*models.AssignmentView, error) {
	builder := tx.Assignment.Create().
		SetID(uuid.New().String()).
		SetExternalID(in.ExternalID).
		SetAgencyID(in.AgencyID).
		SetAcademicDisplayText(in.AcademicDisplayText).
		SetLastSeen(time.Now()).
		SetCanonicalizationVersion(in.CanonicalizationVersion).
		SetPostalCoordsEstimated(in.PostalCoordsEstimated)

	builder.SetNillableAssignmentCode(nonEmpty(in.AssignmentCode)).
		SetNillableMessageLink(nonEmpty(in.MessageLink)).
		SetNillableStartDate(nonEmpty(in.StartDate)).
		SetNillableTimeAvailabilityNote(nonEmpty(in.TimeAvailabilityNote)).
		SetNillableLearningMode(nonEmpty(in.LearningMode)).
		SetNillableRateRawText(nonEmpty(in.RateRawText)).
		SetNillableRateBreakdown(nonEmpty(in.RateBreakdown)).
		SetNillableRegion(nonEmpty(in.Region)).
		SetNillableNearestMrtComputed(nonEmpty(in.NearestMRT)).
		SetNillableNearestMrtLine(nonEmpty(in.NearestMRTLine))

	builder.SetLessonSchedule(in.LessonSchedule).
		SetAddress(in.Address).
		SetPostalCode(in.PostalCode).
		SetPostalCodeEstimated(in.PostalCodeEstimated).
		SetSignalsSubjects(in.SignalsSubjects).
		SetSignalsLevels(in.SignalsLevels).
		SetSignalsSpecificStudentLevels(in.SignalsSpecificStudentLevels).
		SetSubjectsCanonical(in.SubjectsCanonical).
		SetSubjectsGeneral(in.SubjectsGeneral)
	if len(in.TutorTypes) > 0 {
		builder.SetTutorTypes(tutorTypesToJSON(in.TutorTypes))
	}

	builder.SetNillableRateMin(in.RateMin).
		SetNillableRateMax(in.RateMax).
		SetNillablePostalLat(in.PostalLat).
		SetNillablePostalLon(in.PostalLon).
		SetNillableNearestMrtDistanceM(in.NearestMRTDistanceM).
		SetNillablePublishedAt(in.PublishedAt).
		SetNillableSourceLastSeen(in.SourceLastSeen)

	row, err := builder.Save(ctx)
	if err != nil {
		return nil, err
	}
	return &models.AssignmentView{Assignment: row, Created: true}, nil
}

func (s *AssignmentService) merge(ctx context.Context, existing *ent.Assignment, in *models.UpsertAssignmentInput) (*models.AssignmentView, error) {
	update := existing.Update().
		SetAcademicDisplayText(in.AcademicDisplayText).
		SetLastSeen(time.Now()).
		SetCanonicalizationVersion(in.CanonicalizationVersion)

	// Set-once provenance: only fill gaps, never overwrite.
	if existing.AssignmentCode == nil && in.AssignmentCode != "" {
		update.SetAssignmentCode(in.AssignmentCode)
	}
	if existing.MessageLink == nil && in.MessageLink != "" {
		update.SetMessageLink(in.MessageLink)
	}

	// Display and location scalars: overwrite when non-empty.
	update.SetNillableStartDate(nonEmpty(in.StartDate)).
		SetNillableTimeAvailabilityNote(nonEmpty(in.TimeAvailabilityNote)).
		SetNillableLearningMode(nonEmpty(in.LearningMode)).
		SetNillableRateRawText(nonEmpty(in.RateRawText)).
		SetNillableRateBreakdown(nonEmpty(in.RateBreakdown)).
		SetNillableRegion(nonEmpty(in.Region)).
		SetNillableNearestMrtComputed(nonEmpty(in.NearestMRT)).
		SetNillableNearestMrtLine(nonEmpty(in.NearestMRTLine))

	// Arrays: replaced wholesale when the new extraction produced any.
	if len(in.LessonSchedule) > 0 {
		update.SetLessonSchedule(in.LessonSchedule)
	}
	if len(in.Address) > 0 {
		update.SetAddress(in.Address)
	}
	if len(in.PostalCode) > 0 {
		update.SetPostalCode(in.PostalCode)
	}
	if len(in.PostalCodeEstimated) > 0 {
		update.SetPostalCodeEstimated(in.PostalCodeEstimated)
	}
	if len(in.TutorTypes) > 0 {
		update.SetTutorTypes(tutorTypesToJSON(in.TutorTypes))
	}

	// Signals and canonical codes always reflect the latest run.
	update.SetSignalsSubjects(in.SignalsSubjects).
		SetSignalsLevels(in.SignalsLevels).
		SetSignalsSpecificStudentLevels(in.SignalsSpecificStudentLevels).
		SetSubjectsCanonical(in.SubjectsCanonical).
		SetSubjectsGeneral(in.SubjectsGeneral)

	// Numerics and coordinates: overwrite when present.
	if in.RateMin != nil {
		update.SetRateMin(*in.RateMin)
	}
	if in.RateMax != nil {
		update.SetRateMax(*in.RateMax)
	}
	if in.PostalLat != nil && in.PostalLon != nil {
		update.SetPostalLat(*in.PostalLat).
			SetPostalLon(*in.PostalLon).
			SetPostalCoordsEstimated(in.PostalCoordsEstimated)
	}
	if in.NearestMRTDistanceM != nil {
		update.SetNearestMrtDistanceM(*in.NearestMRTDistanceM)
	}

	// First-seen published_at is preserved; the source-advancement signal
	// drives bump_count.
	if existing.PublishedAt == nil && in.PublishedAt != nil {
		update.SetPublishedAt(*in.PublishedAt)
	}

	bumped := false
	if next := sourceTime(in.SourceLastSeen, in.PublishedAt); next != nil {
		prev := sourceTime(existing.SourceLastSeen, existing.PublishedAt)
		switch {
		case prev == nil:
			update.SetSourceLastSeen(*next)
		case next.After(*prev):
			update.SetSourceLastSeen(*next).AddBumpCount(1)
			bumped = true
		}
	}

	row, err := update.Save(ctx)
	if err != nil {
		return nil, err
	}
	return &models.AssignmentView{Assignment: row, Bumped: bumped}, nil
}

// Get returns one assignment by id.
func (s *AssignmentService) Get(ctx context.Context, id string) (*ent.Assignment, error) {
	row, err := s.client.Assignment.Get(ctx, id)
	if err != nil {
		return nil, translateEntError("get assignment", err)
	}
	return row, nil
}

// GetByExternalID returns one assignment by its per-agency identity.
func (s *AssignmentService) GetByExternalID(ctx context.Context, agencyID, externalID string) (*ent.Assignment, error) {
	row, err := s.client.Assignment.Query().
		Where(
			assignment.AgencyID(agencyID),
			assignment.ExternalID(externalID),
		).
		Only(ctx)
	if err != nil {
		return nil, translateEntError("get assignment", err)
	}
	return row, nil
}

// SetStatus transitions an assignment between open and closed.
func (s *AssignmentService) SetStatus(ctx context.Context, id string, status assignment.Status) error {
	err := s.client.Assignment.UpdateOneID(id).
		SetStatus(status).
		Exec(ctx)
	return translateEntError("set assignment status", err)
}

// BroadcastPayload is the delivered-content snapshot stored per external id.
type BroadcastPayload struct {
	Content            string
	ChatID             string
	TransportMessageID string
	ClickBucket        int
}

// RecordBroadcast upserts the broadcast record for an external id so the
// edit-on-click loop knows the current post body and edit target.
func (s *AssignmentService) RecordBroadcast(ctx context.Context, externalID string, payload BroadcastPayload) error {
	if externalID == "" {
		return NewValidationError("external_id", "required")
	}

	err := s.client.BroadcastRecord.Create().
		SetID(uuid.New().String()).
		SetExternalID(externalID).
		SetContent(payload.Content).
		SetNillableChatID(nonEmpty(payload.ChatID)).
		SetNillableTransportMessageID(nonEmpty(payload.TransportMessageID)).
		SetClickBucket(payload.ClickBucket).
		Exec(ctx)
	if err == nil {
		return nil
	}
	if !ent.IsConstraintError(err) {
		return translateEntError("record broadcast", err)
	}

	update := s.client.BroadcastRecord.Update().
		Where(broadcastrecord.ExternalID(externalID)).
		SetContent(payload.Content).
		SetClickBucket(payload.ClickBucket)
	if payload.ChatID != "" {
		update.SetChatID(payload.ChatID)
	}
	if payload.TransportMessageID != "" {
		update.SetTransportMessageID(payload.TransportMessageID)
	}
	return translateEntError("record broadcast", update.Exec(ctx))
}

// GetBroadcast returns the broadcast record for an external id.
func (s *AssignmentService) GetBroadcast(ctx context.Context, externalID string) (*ent.BroadcastRecord, error) {
	row, err := s.client.BroadcastRecord.Query().
		Where(broadcastrecord.ExternalID(externalID)).
		Only(ctx)
	if err != nil {
		return nil, translateEntError("get broadcast record", err)
	}
	return row, nil
}

func tutorTypesToJSON(types []models.TutorType) []map[string]interface{} {
	out := make([]map[string]interface{}, 0, len(types))
	for _, tt := range types {
		m := map[string]interface{}{"type": tt.Type}
		if tt.Rate != "" {
			m["rate"] = tt.Rate
		}
		out = append(out, m)
	}
	return out
}

func sourceTime(lastSeen, published *time.Time) *time.Time {
	if lastSeen != nil {
		return lastSeen
	}
	return published
}

func nonEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}
