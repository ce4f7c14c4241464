package delivery

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/events"
	"github.com/tuitionlab/assignflow/pkg/services"
)

// Editor rewrites an existing broadcast post when the click count for
// its assignment crosses into a new bucket. Invoked after each click
// increment; a post is edited at most once per bucket because the new
// bucket is persisted before the next click arrives at the old one.
type Editor struct {
	cfg       *config.DeliveryConfig
	transport Transport
	store     BroadcastStore
	publisher *events.EventPublisher
	renderer  *Renderer
}

// NewEditor creates a broadcast editor.
// publisher may be nil (events disabled).
func NewEditor(cfg *config.DeliveryConfig, transport Transport, store BroadcastStore, publisher *events.EventPublisher) *Editor {
	if cfg == nil {
		panic("NewEditor: cfg must not be nil")
	}
	if transport == nil {
		panic("NewEditor: transport must not be nil")
	}
	if store == nil {
		panic("NewEditor: store must not be nil")
	}
	return &Editor{
		cfg:       cfg,
		transport: transport,
		store:     store,
		publisher: publisher,
		renderer:  NewRenderer(cfg.ClickBuckets),
	}
}

// AfterClick reconciles the broadcast post for externalID against the
// new click total. No-op when the assignment was never broadcast, the
// bucket did not move forward, or the record lacks an edit target.
func (e *Editor) AfterClick(ctx context.Context, externalID string, clicks int64) error {
	if !e.cfg.Enabled {
		return nil
	}

	record, err := e.store.GetBroadcast(ctx, externalID)
	if err != nil {
		if errors.Is(err, services.ErrNotFound) {
			return nil
		}
		return err
	}

	bucket := e.renderer.BucketFor(clicks)
	if bucket <= record.ClickBucket {
		return nil
	}
	if record.ChatID == nil || record.TransportMessageID == nil {
		return nil
	}

	sendCtx, cancel := context.WithTimeout(ctx, e.cfg.SendTimeout)
	defer cancel()

	content := e.renderer.WithClickNote(record.Content, bucket)
	msgID, err := e.transport.Broadcast(sendCtx, *record.ChatID, content, *record.TransportMessageID)
	if err != nil {
		slog.Error("Broadcast edit failed",
			"external_id", externalID, "click_bucket", bucket, "error", err)
		return err
	}

	// The stored content stays the clean base body; only the bucket and
	// edit target move.
	if err := e.store.RecordBroadcast(ctx, externalID, services.BroadcastPayload{
		Content:            record.Content,
		ChatID:             *record.ChatID,
		TransportMessageID: msgID,
		ClickBucket:        bucket,
	}); err != nil {
		return err
	}

	e.publishEdited(ctx, externalID, *record.ChatID, bucket)
	slog.Info("Broadcast post edited for click bucket",
		"external_id", externalID, "click_bucket", bucket, "clicks", clicks)
	return nil
}

// publishEdited emits the broadcast.edited event. Non-blocking: errors
// are logged.
func (e *Editor) publishEdited(ctx context.Context, externalID, chatID string, bucket int) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishBroadcastEdited(ctx, events.BroadcastEditedPayload{
		Type:        events.EventTypeBroadcastEdited,
		ExternalID:  externalID,
		ChatID:      chatID,
		ClickBucket: bucket,
		Timestamp:   time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish broadcast edit event",
			"external_id", externalID, "error", err)
	}
}
