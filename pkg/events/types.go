// Package events provides durable pipeline event publishing and
// PostgreSQL NOTIFY/LISTEN fanout for cross-replica distribution.
//
// Every persistent publish writes the payload to the events table and
// fires pg_notify in the same transaction, so the NOTIFY stream can
// always be reconciled against the table. NOTIFY payloads that exceed
// PostgreSQL's 8000-byte limit are replaced with a truncation envelope
// carrying only routing fields; the dispatcher fetches the full row by
// db_event_id before delivering it. The dispatcher also detects gaps in
// db_event_id per channel (dropped notifications, listener reconnects)
// and replays the missed rows from the table in order.
//
// Stage metrics are the one transient exception: they are NOTIFY-only,
// high-frequency, and safe to lose.
package events

// Channels. One per pipeline surface; consumers register handlers on
// the channels they care about.
const (
	ChannelJobs        = "events:jobs"
	ChannelAssignments = "events:assignments"
	ChannelDelivery    = "events:delivery"
)

// Persistent event types (stored in the events table + NOTIFY).
const (
	// Job lifecycle — one event type for every queue status transition.
	EventTypeJobStatus = "job.status"

	// Assignment lifecycle.
	EventTypeAssignmentUpserted = "assignment.upserted"
	EventTypeDuplicateLinked    = "duplicate.linked"
	EventTypeFreshnessRetiered  = "freshness.retiered"

	// Delivery lifecycle.
	EventTypeDeliverySent    = "delivery.sent"
	EventTypeBroadcastEdited = "broadcast.edited"
)

// Transient event types (NOTIFY only, no DB persistence).
const (
	// Per-stage timing samples — high-frequency, ephemeral.
	EventTypeStageMetric = "stage.metric"
)

// Channels returns every channel the service publishes on. The listener
// subscribes to all of them at startup.
func Channels() []string {
	return []string{ChannelJobs, ChannelAssignments, ChannelDelivery}
}
