package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/ent/rawmessage"
	"github.com/tuitionlab/assignflow/pkg/models"
)

// RawMessageService manages the immutable raw post store. The collector
// boundary writes here; the pipeline only reads.
type RawMessageService struct {
	client *ent.Client
}

// NewRawMessageService creates a new RawMessageService
func NewRawMessageService(client *ent.Client) *RawMessageService {
	if client == nil {
		panic("NewRawMessageService: client must not be nil")
	}
	return &RawMessageService{client: client}
}

// StoreBatch stores one ingest batch. Re-delivered messages are detected
// on (channel, message_id) and left untouched; raw rows never change
// after insert.
func (s *RawMessageService) StoreBatch(ctx context.Context, req *models.IngestRequest) (stored, existing int, err error) {
	if req.Channel == "" {
		return 0, 0, NewValidationError("channel", "required")
	}
	if req.AgencyID == "" {
		return 0, 0, NewValidationError("agency_id", "required")
	}
	if len(req.Messages) == 0 {
		return 0, 0, NewValidationError("messages", "required")
	}

	for _, msg := range req.Messages {
		if msg.MessageID == "" {
			return stored, existing, NewValidationError("message_id", "required")
		}

		builder := s.client.RawMessage.Create().
			SetID(uuid.New().String()).
			SetChannel(req.Channel).
			SetMessageID(msg.MessageID).
			SetAgencyID(req.AgencyID).
			SetText(msg.Text).
			SetSourcePublishedAt(msg.PublishedAt)
		if msg.EditedAt != nil {
			builder.SetSourceEditedAt(*msg.EditedAt)
		}
		if msg.Payload != nil {
			builder.SetPayload(msg.Payload)
		}

		if err := builder.Exec(ctx); err != nil {
			if ent.IsConstraintError(err) {
				existing++
				continue
			}
			return stored, existing, translateEntError("store raw message", err)
		}
		stored++
	}

	return stored, existing, nil
}

// Get returns one raw message by id.
func (s *RawMessageService) Get(ctx context.Context, id string) (*ent.RawMessage, error) {
	raw, err := s.client.RawMessage.Get(ctx, id)
	if err != nil {
		return nil, translateEntError("get raw message", err)
	}
	return raw, nil
}

// GetByChannelMessageIDs resolves (channel, message_id) references to raw
// rows. Missing references are simply absent from the result.
func (s *RawMessageService) GetByChannelMessageIDs(ctx context.Context, channel string, messageIDs []string) ([]*ent.RawMessage, error) {
	rows, err := s.client.RawMessage.Query().
		Where(
			rawmessage.ChannelEQ(channel),
			rawmessage.MessageIDIn(messageIDs...),
		).
		All(ctx)
	if err != nil {
		return nil, translateEntError("query raw messages", err)
	}
	return rows, nil
}

// SoftDelete marks a raw message deleted. Jobs referencing it terminate
// skipped(raw_missing) instead of extracting.
func (s *RawMessageService) SoftDelete(ctx context.Context, id string) error {
	err := s.client.RawMessage.UpdateOneID(id).
		SetDeletedAt(time.Now()).
		Exec(ctx)
	return translateEntError("soft delete raw message", err)
}

// SoftDeleteExpired soft-deletes raw messages past the retention window.
// Rows with a pending or processing job are spared until the job
// terminates; the canonical assignment rows derived from them are kept.
func (s *RawMessageService) SoftDeleteExpired(ctx context.Context, retentionDays int) (int, error) {
	cutoff := time.Now().AddDate(0, 0, -retentionDays)
	n, err := s.client.RawMessage.Update().
		Where(
			rawmessage.DeletedAtIsNil(),
			rawmessage.CreatedAtLT(cutoff),
			rawmessage.Not(rawmessage.HasJobsWith(
				extractionjob.StatusIn(extractionjob.StatusPending, extractionjob.StatusProcessing),
			)),
		).
		SetDeletedAt(time.Now()).
		Save(ctx)
	if err != nil {
		return 0, translateEntError("soft delete expired raw messages", err)
	}
	return n, nil
}
