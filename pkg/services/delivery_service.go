package services

import (
	"context"

	"github.com/google/uuid"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/deliveryrecord"
)

// DeliveryService stores per-(tutor, assignment) delivery records. The
// unique index on the pair is the dedup mechanism: at-least-once
// pipeline inputs must never produce a second DM for the same pair.
type DeliveryService struct {
	client *ent.Client
}

// NewDeliveryService creates a new DeliveryService
func NewDeliveryService(client *ent.Client) *DeliveryService {
	if client == nil {
		panic("NewDeliveryService: client must not be nil")
	}
	return &DeliveryService{client: client}
}

// Record inserts a delivery record for the pair. Returns false when a
// record already exists (the pair was delivered, or at least attempted,
// before); the caller must not send in that case.
func (s *DeliveryService) Record(ctx context.Context, tutorID, assignmentID string, status deliveryrecord.Status, transportMessageID string) (bool, error) {
	if tutorID == "" {
		return false, NewValidationError("tutor_id", "required")
	}
	if assignmentID == "" {
		return false, NewValidationError("assignment_id", "required")
	}

	err := s.client.DeliveryRecord.Create().
		SetID(uuid.New().String()).
		SetTutorID(tutorID).
		SetAssignmentID(assignmentID).
		SetStatus(status).
		SetNillableTransportMessageID(nonEmpty(transportMessageID)).
		Exec(ctx)
	if err == nil {
		return true, nil
	}
	if ent.IsConstraintError(err) {
		return false, nil
	}
	return false, translateEntError("record delivery", err)
}

// MarkSent upgrades a throttled record once the DM eventually goes out.
// Sent records are never downgraded.
func (s *DeliveryService) MarkSent(ctx context.Context, tutorID, assignmentID, transportMessageID string) error {
	update := s.client.DeliveryRecord.Update().
		Where(
			deliveryrecord.TutorID(tutorID),
			deliveryrecord.AssignmentID(assignmentID),
			deliveryrecord.StatusNEQ(deliveryrecord.StatusSent),
		).
		SetStatus(deliveryrecord.StatusSent)
	if transportMessageID != "" {
		update.SetTransportMessageID(transportMessageID)
	}
	_, err := update.Save(ctx)
	return translateEntError("mark delivery sent", err)
}

// ListForAssignment returns every delivery record for one assignment.
func (s *DeliveryService) ListForAssignment(ctx context.Context, assignmentID string) ([]*ent.DeliveryRecord, error) {
	rows, err := s.client.DeliveryRecord.Query().
		Where(deliveryrecord.AssignmentID(assignmentID)).
		All(ctx)
	if err != nil {
		return nil, translateEntError("list delivery records", err)
	}
	return rows, nil
}

// CountSentForTutor returns how many DMs a tutor has received, for ops
// visibility.
func (s *DeliveryService) CountSentForTutor(ctx context.Context, tutorID string) (int, error) {
	n, err := s.client.DeliveryRecord.Query().
		Where(
			deliveryrecord.TutorID(tutorID),
			deliveryrecord.StatusEQ(deliveryrecord.StatusSent),
		).
		Count(ctx)
	if err != nil {
		return 0, translateEntError("count deliveries", err)
	}
	return n, nil
}
