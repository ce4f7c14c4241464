// Package queue provides the extraction worker pool and processing
// infrastructure: batch claims, the per-job stage pipeline, heartbeats,
// and stale-job recovery.
package queue

import (
	"context"
	"errors"
	"time"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/pkg/models"
)

// ErrNoJobsAvailable indicates no claimable pending jobs are in the queue.
var ErrNoJobsAvailable = errors.New("no jobs available")

// ExecutionResult is the terminal state of one job run. All intermediate
// state (assignment rows, duplicate links, delivery records) was already
// written by the executor during processing; the worker only maps the
// outcome onto the job's terminal status.
type ExecutionResult struct {
	Outcome models.Outcome

	// LLMModel is the model that served the extraction, recorded on the
	// job row for cost attribution. Empty when extraction never ran.
	LLMModel string
}

// JobExecutor runs the stage pipeline for one claimed job.
//
// The executor owns the ENTIRE pipeline internally:
//   - load raw, pre-filter, compilation split
//   - extract, validate, enrich, upsert
//   - duplicate pass and delivery fanout (non-blocking side-effects)
//
// The worker only handles: claiming, heartbeat, terminal status update,
// and event publication.
type JobExecutor interface {
	ProcessOne(ctx context.Context, job *ent.ExtractionJob) *ExecutionResult
}

// PoolHealth contains health information for the entire worker pool.
type PoolHealth struct {
	IsHealthy     bool           `json:"is_healthy"`
	DBReachable   bool           `json:"db_reachable"`
	DBError       string         `json:"db_error,omitempty"`
	PodID         string         `json:"pod_id"`
	ActiveWorkers int            `json:"active_workers"`
	TotalWorkers  int            `json:"total_workers"`
	QueueDepth    int            `json:"queue_depth"`
	WorkerStats   []WorkerHealth `json:"worker_stats"`
	LastStaleScan time.Time      `json:"last_stale_scan"`
	StaleRequeued int            `json:"stale_requeued"`
}

// WorkerHealth contains health information for a single worker.
type WorkerHealth struct {
	ID            string    `json:"id"`
	Status        string    `json:"status"` // "idle" or "working"
	CurrentJobID  string    `json:"current_job_id,omitempty"`
	JobsProcessed int       `json:"jobs_processed"`
	LastActivity  time.Time `json:"last_activity"`
}
