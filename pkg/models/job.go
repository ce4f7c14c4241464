package models

import (
	"time"

	"github.com/tuitionlab/assignflow/ent"
)

// EnqueueRequest references raw messages by (channel, message_id) and asks
// for one job per row under the given pipeline version.
type EnqueueRequest struct {
	PipelineVersion string   `json:"pipeline_version"`
	Channel         string   `json:"channel"`
	MessageIDs      []string `json:"message_ids"`
	// Force resets even jobs already in status ok.
	Force bool `json:"force,omitempty"`
}

// EnqueueResult summarizes what the enqueue touched.
type EnqueueResult struct {
	Created   int `json:"created"`
	Reset     int `json:"reset"`
	Untouched int `json:"untouched"`
	Missing   int `json:"missing"`
}

// IngestMessage is one collector-delivered post.
type IngestMessage struct {
	MessageID   string         `json:"message_id"`
	Text        string         `json:"text"`
	PublishedAt time.Time      `json:"published_at"`
	EditedAt    *time.Time     `json:"edited_at,omitempty"`
	Payload     map[string]any `json:"payload,omitempty"`
}

// IngestRequest stores raw messages and enqueues extraction jobs in one
// call. Re-delivered messages are deduplicated on (channel, message_id).
type IngestRequest struct {
	Channel         string          `json:"channel"`
	AgencyID        string          `json:"agency_id"`
	PipelineVersion string          `json:"pipeline_version,omitempty"` // default from config
	Messages        []IngestMessage `json:"messages"`
}

// IngestResult summarizes one ingest call.
type IngestResult struct {
	Stored   int           `json:"stored"`
	Existing int           `json:"existing"`
	Enqueued EnqueueResult `json:"enqueued"`
}

// JobResponse wraps an ExtractionJob for the triage API.
type JobResponse struct {
	*ent.ExtractionJob
}
