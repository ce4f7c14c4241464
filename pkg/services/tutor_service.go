package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/tutorprofile"
	"github.com/tuitionlab/assignflow/pkg/models"
)

// TutorProfileService manages the delivery-facing subscription surface.
// Matching itself (subject, level, radius) lives in the fanout; this
// service only stores and lists profiles.
type TutorProfileService struct {
	client *ent.Client
}

// NewTutorProfileService creates a new TutorProfileService
func NewTutorProfileService(client *ent.Client) *TutorProfileService {
	if client == nil {
		panic("NewTutorProfileService: client must not be nil")
	}
	return &TutorProfileService{client: client}
}

// UpsertProfile creates or replaces the profile for one tutor id.
func (s *TutorProfileService) UpsertProfile(ctx context.Context, in *models.TutorProfileInput) (*ent.TutorProfile, error) {
	if in.TutorID == "" {
		return nil, NewValidationError("tutor_id", "required")
	}
	if in.DMChatID == "" {
		return nil, NewValidationError("dm_chat_id", "required")
	}

	existing, err := s.client.TutorProfile.Query().
		Where(tutorprofile.TutorID(in.TutorID)).
		Only(ctx)
	if err != nil && !ent.IsNotFound(err) {
		return nil, translateEntError("upsert tutor profile", err)
	}

	if existing == nil {
		row, err := s.client.TutorProfile.Create().
			SetID(uuid.New().String()).
			SetTutorID(in.TutorID).
			SetSubjects(in.Subjects).
			SetLevels(in.Levels).
			SetNillablePostalCode(nonEmpty(in.PostalCode)).
			SetNillableLat(in.Lat).
			SetNillableLon(in.Lon).
			SetNillableMaxDistanceKm(in.MaxDistanceKm).
			SetDmChatID(in.DMChatID).
			SetActive(in.Active).
			Save(ctx)
		if err != nil {
			return nil, translateEntError("create tutor profile", err)
		}
		return row, nil
	}

	row, err := existing.Update().
		SetSubjects(in.Subjects).
		SetLevels(in.Levels).
		SetNillablePostalCode(nonEmpty(in.PostalCode)).
		SetNillableLat(in.Lat).
		SetNillableLon(in.Lon).
		SetNillableMaxDistanceKm(in.MaxDistanceKm).
		SetDmChatID(in.DMChatID).
		SetActive(in.Active).
		Save(ctx)
	if err != nil {
		return nil, translateEntError("update tutor profile", err)
	}
	return row, nil
}

// GetByTutorID returns one profile by messaging-platform identity.
func (s *TutorProfileService) GetByTutorID(ctx context.Context, tutorID string) (*ent.TutorProfile, error) {
	row, err := s.client.TutorProfile.Query().
		Where(tutorprofile.TutorID(tutorID)).
		Only(ctx)
	if err != nil {
		return nil, translateEntError("get tutor profile", err)
	}
	return row, nil
}

// ListActive returns every active profile. The fanout filters the result
// in memory; profile counts are small relative to assignment volume.
func (s *TutorProfileService) ListActive(ctx context.Context) ([]*ent.TutorProfile, error) {
	rows, err := s.client.TutorProfile.Query().
		Where(tutorprofile.Active(true)).
		All(ctx)
	if err != nil {
		return nil, translateEntError("list tutor profiles", err)
	}
	return rows, nil
}

// SetActive toggles delivery for one tutor.
func (s *TutorProfileService) SetActive(ctx context.Context, tutorID string, active bool) error {
	n, err := s.client.TutorProfile.Update().
		Where(tutorprofile.TutorID(tutorID)).
		SetActive(active).
		Save(ctx)
	if err != nil {
		return translateEntError("set tutor active", err)
	}
	if n == 0 {
		return ErrNotFound
	}
	return nil
}
