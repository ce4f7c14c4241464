package events

import (
	"github.com/tuitionlab/assignflow/ent/extractionjob"
)

// JobStatusPayload is the payload for job.status events.
// Published on every queue status transition (claimed, terminated,
// requeued). Published to ChannelJobs, scoped by job ID.
type JobStatusPayload struct {
	Type         string               `json:"type"` // always EventTypeJobStatus
	JobID        string               `json:"job_id"`
	RawID        string               `json:"raw_id,omitempty"`
	Status       extractionjob.Status `json:"status"`
	Attempt      int                  `json:"attempt,omitempty"`
	ErrorCode    string               `json:"error_code,omitempty"`    // set on failed/requeued
	AssignmentID string               `json:"assignment_id,omitempty"` // set on ok
	Timestamp    string               `json:"timestamp"`               // RFC3339Nano
}

// StageMetricPayload is the payload for stage.metric transient events.
// One sample per pipeline stage per job — timing and outcome only, no
// content. NOTIFY-only; safe to lose.
type StageMetricPayload struct {
	Type         string `json:"type"` // always EventTypeStageMetric
	Stage        string `json:"stage"`
	JobID        string `json:"job_id"`
	AssignmentID string `json:"assignment_id,omitempty"`
	DurationMS   int64  `json:"duration_ms"`
	Outcome      string `json:"outcome"` // ok, retry, skip, fail
	Timestamp    string `json:"timestamp"`
}

// AssignmentUpsertedPayload is the payload for assignment.upserted events.
// Published after every successful upsert, whether it created a new row
// or merged into an existing one.
type AssignmentUpsertedPayload struct {
	Type         string `json:"type"` // always EventTypeAssignmentUpserted
	AssignmentID string `json:"assignment_id"`
	ExternalID   string `json:"external_id"`
	AgencyID     string `json:"agency_id"`
	Created      bool   `json:"created"`
	Bumped       bool   `json:"bumped"`
	Timestamp    string `json:"timestamp"`
}

// DuplicateLinkedPayload is the payload for duplicate.linked events.
// Published when the detector links an assignment into a duplicate group.
type DuplicateLinkedPayload struct {
	Type         string   `json:"type"` // always EventTypeDuplicateLinked
	GroupID      string   `json:"group_id"`
	AssignmentID string   `json:"assignment_id"`
	MatchedIDs   []string `json:"matched_ids"`
	Confidence   string   `json:"confidence"` // high, medium
	Score        float64  `json:"score"`
	Timestamp    string   `json:"timestamp"`
}

// FreshnessRetieredPayload is the payload for freshness.retiered events.
// Published once per recompute pass that changed at least one tier.
type FreshnessRetieredPayload struct {
	Type      string         `json:"type"` // always EventTypeFreshnessRetiered
	Changed   int            `json:"changed"`
	ByTier    map[string]int `json:"by_tier,omitempty"` // tier → count moved into it
	Timestamp string         `json:"timestamp"`
}

// DeliverySentPayload is the payload for delivery.sent events.
// Published after a fanout pass for one assignment completes.
type DeliverySentPayload struct {
	Type          string `json:"type"` // always EventTypeDeliverySent
	AssignmentID  string `json:"assignment_id"`
	Mode          string `json:"mode"` // primary_only, primary_with_note, all
	Broadcasts    int    `json:"broadcasts"`
	DirectSent    int    `json:"direct_sent"`
	DirectSkipped int    `json:"direct_skipped"` // already delivered or rate limited
	Timestamp     string `json:"timestamp"`
}

// BroadcastEditedPayload is the payload for broadcast.edited events.
// Published when the click editor rewrites a broadcast message after the
// click count crossed into a new bucket.
type BroadcastEditedPayload struct {
	Type        string `json:"type"` // always EventTypeBroadcastEdited
	ExternalID  string `json:"external_id"`
	ChatID      string `json:"chat_id"`
	ClickBucket int    `json:"click_bucket"`
	Timestamp   string `json:"timestamp"`
}
