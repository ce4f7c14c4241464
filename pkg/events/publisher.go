package events

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"time"
)

// EventPublisher publishes pipeline events.
// Persistent events are stored in the events table then broadcast via
// NOTIFY; transient events (stage metrics) are broadcast via NOTIFY only.
//
// Each public method accepts a specific typed payload struct — see
// payloads.go. Internally, payloads are marshaled to JSON and routed to
// their channel via persistAndNotify or notifyOnly.
type EventPublisher struct {
	db *sql.DB
}

// NewEventPublisher creates a new EventPublisher.
// The db parameter should be the *sql.DB from database.Client.DB().
func NewEventPublisher(db *sql.DB) *EventPublisher {
	return &EventPublisher{db: db}
}

// --- Typed public methods ---

// PublishJobStatus persists and broadcasts a job.status event.
func (p *EventPublisher) PublishJobStatus(ctx context.Context, payload JobStatusPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal JobStatusPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.JobID, ChannelJobs, payloadJSON)
}

// PublishStageMetric broadcasts a stage.metric transient event (no DB
// persistence). One sample per stage per job — ephemeral.
func (p *EventPublisher) PublishStageMetric(ctx context.Context, payload StageMetricPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal StageMetricPayload: %w", err)
	}
	return p.notifyOnly(ctx, ChannelJobs, payloadJSON)
}

// PublishAssignmentUpserted persists and broadcasts an assignment.upserted event.
func (p *EventPublisher) PublishAssignmentUpserted(ctx context.Context, payload AssignmentUpsertedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal AssignmentUpsertedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.AssignmentID, ChannelAssignments, payloadJSON)
}

// PublishDuplicateLinked persists and broadcasts a duplicate.linked event.
func (p *EventPublisher) PublishDuplicateLinked(ctx context.Context, payload DuplicateLinkedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal DuplicateLinkedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.AssignmentID, ChannelAssignments, payloadJSON)
}

// PublishFreshnessRetiered persists and broadcasts a freshness.retiered event.
// Scoped by the pass timestamp since it covers many assignments.
func (p *EventPublisher) PublishFreshnessRetiered(ctx context.Context, payload FreshnessRetieredPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal FreshnessRetieredPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.Timestamp, ChannelAssignments, payloadJSON)
}

// PublishDeliverySent persists and broadcasts a delivery.sent event.
func (p *EventPublisher) PublishDeliverySent(ctx context.Context, payload DeliverySentPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal DeliverySentPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.AssignmentID, ChannelDelivery, payloadJSON)
}

// PublishBroadcastEdited persists and broadcasts a broadcast.edited event.
func (p *EventPublisher) PublishBroadcastEdited(ctx context.Context, payload BroadcastEditedPayload) error {
	payloadJSON, err := json.Marshal(payload)
	if err != nil {
		return fmt.Errorf("failed to marshal BroadcastEditedPayload: %w", err)
	}
	return p.persistAndNotify(ctx, payload.ExternalID, ChannelDelivery, payloadJSON)
}

// --- Internal core methods ---

// persistAndNotify persists a pre-marshaled event to the database and
// broadcasts via NOTIFY in a single transaction (pg_notify is
// transactional — held until COMMIT).
func (p *EventPublisher) persistAndNotify(ctx context.Context, scopeID, channel string, payloadJSON []byte) error {
	tx, err := p.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// 1. Persist to events table (within transaction)
	var eventID int64
	err = tx.QueryRowContext(ctx,
		`INSERT INTO events (scope_id, channel, payload, created_at) VALUES ($1, $2, $3, $4) RETURNING id`,
		scopeID, channel, payloadJSON, time.Now(),
	).Scan(&eventID)
	if err != nil {
		return fmt.Errorf("failed to persist event: %w", err)
	}

	// Build NOTIFY payload with db_event_id for gap detection and catch-up.
	notifyPayload, err := injectDBEventIDAndTruncate(payloadJSON, eventID)
	if err != nil {
		return err
	}

	// 2. pg_notify within same transaction — held until COMMIT
	_, err = tx.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}

	// 3. Commit — INSERT is persisted and NOTIFY fires atomically
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit event transaction: %w", err)
	}

	return nil
}

// notifyOnly broadcasts a pre-marshaled event via NOTIFY without persisting to DB.
func (p *EventPublisher) notifyOnly(ctx context.Context, channel string, payloadJSON []byte) error {
	notifyPayload, err := truncateIfNeeded(string(payloadJSON))
	if err != nil {
		return err
	}
	_, err = p.db.ExecContext(ctx, "SELECT pg_notify($1, $2)", channel, notifyPayload)
	if err != nil {
		return fmt.Errorf("pg_notify failed: %w", err)
	}
	return nil
}

// --- Internal helpers ---

// injectDBEventIDAndTruncate adds db_event_id to the JSON payload for
// NOTIFY delivery and applies truncation if the result exceeds
// PostgreSQL's limit.
func injectDBEventIDAndTruncate(payloadJSON []byte, dbEventID int64) (string, error) {
	var m map[string]any
	if err := json.Unmarshal(payloadJSON, &m); err != nil {
		return "", fmt.Errorf("failed to unmarshal payload for db_event_id injection: %w", err)
	}
	m["db_event_id"] = dbEventID

	enrichedBytes, err := json.Marshal(m)
	if err != nil {
		return "", fmt.Errorf("failed to marshal enriched NOTIFY payload: %w", err)
	}

	return truncateIfNeeded(string(enrichedBytes))
}

// truncateIfNeeded returns the payload string as-is if it fits within
// PostgreSQL's 8000-byte NOTIFY limit, otherwise returns a minimal
// truncation envelope with only routing fields.
func truncateIfNeeded(payloadStr string) (string, error) {
	if len(payloadStr) <= 7900 {
		return payloadStr, nil
	}
	return buildTruncatedPayload([]byte(payloadStr))
}

// buildTruncatedPayload creates a minimal truncation envelope from the
// full JSON payload bytes, keeping only the routing fields the
// dispatcher needs to fetch the complete event from the database.
func buildTruncatedPayload(payloadBytes []byte) (string, error) {
	var routing struct {
		Type         string `json:"type"`
		JobID        string `json:"job_id"`
		AssignmentID string `json:"assignment_id"`
		DBEventID    *int64 `json:"db_event_id,omitempty"`
	}
	if err := json.Unmarshal(payloadBytes, &routing); err != nil {
		return "", fmt.Errorf("failed to extract routing fields for truncation: %w", err)
	}

	truncated := map[string]any{
		"type":      routing.Type,
		"truncated": true,
	}
	if routing.JobID != "" {
		truncated["job_id"] = routing.JobID
	}
	if routing.AssignmentID != "" {
		truncated["assignment_id"] = routing.AssignmentID
	}
	if routing.DBEventID != nil {
		truncated["db_event_id"] = *routing.DBEventID
	}

	truncBytes, err := json.Marshal(truncated)
	if err != nil {
		return "", fmt.Errorf("failed to marshal truncated payload: %w", err)
	}
	return string(truncBytes), nil
}
