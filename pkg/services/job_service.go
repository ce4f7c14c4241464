package services

import (
	"context"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/pkg/models"
)

// JobService manages the extraction job queue: enqueue, skip-locked
// claims, stale requeue, and terminal transitions.
type JobService struct {
	client *ent.Client
}

// NewJobService creates a new JobService
func NewJobService(client *ent.Client) *JobService {
	if client == nil {
		panic("NewJobService: client must not be nil")
	}
	return &JobService{client: client}
}

// Enqueue upserts one job per referenced raw row. Existing jobs in status
// ok are left untouched unless Force; every other conflict resets the job
// to pending with the attempt counter preserved.
func (s *JobService) Enqueue(ctx context.Context, req *models.EnqueueRequest) (*models.EnqueueResult, error) {
	if req.PipelineVersion == "" {
		return nil, NewValidationError("pipeline_version", "required")
	}
	if req.Channel == "" {
		return nil, NewValidationError("channel", "required")
	}
	if len(req.MessageIDs) == 0 {
		return nil, NewValidationError("message_ids", "required")
	}

	raws, err := NewRawMessageService(s.client).GetByChannelMessageIDs(ctx, req.Channel, req.MessageIDs)
	if err != nil {
		return nil, err
	}

	result := &models.EnqueueResult{Missing: len(req.MessageIDs) - len(raws)}
	for _, raw := range raws {
		created, reset, untouched, err := s.enqueueOne(ctx, raw.ID, req.PipelineVersion, req.Force)
		if err != nil {
			return nil, err
		}
		result.Created += created
		result.Reset += reset
		result.Untouched += untouched
	}
	return result, nil
}

func (s *JobService) enqueueOne(ctx context.Context, rawID, pipelineVersion string, force bool) (created, reset, untouched int, err error) {
	err = s.client.ExtractionJob.Create().
		SetID(uuid.New().String()).
		SetRawID(rawID).
		SetPipelineVersion(pipelineVersion).
		Exec(ctx)
	if err == nil {
		return 1, 0, 0, nil
	}
	if !ent.IsConstraintError(err) {
		return 0, 0, 0, translateEntError("enqueue job", err)
	}

	// Conflict on (raw_id, pipeline_version): resolve against the existing
	// job inside a tx so a concurrent claim cannot interleave.
	tx, err := s.client.Tx(ctx)
	if err != nil {
		return 0, 0, 0, fmt.Errorf("enqueue job: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.ExtractionJob.Query().
		Where(
			extractionjob.RawID(rawID),
			extractionjob.PipelineVersion(pipelineVersion),
		).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return 0, 0, 0, translateEntError("enqueue job", err)
	}

	if job.Status == extractionjob.StatusOk && !force {
		return 0, 0, 1, nil
	}

	meta := cloneMeta(job.Meta)
	meta["requeue_reason"] = "re-enqueued"
	if force {
		meta["requeue_reason"] = "force-re-enqueued"
	}

	err = job.Update().
		SetStatus(extractionjob.StatusPending).
		SetAvailableAt(time.Now()).
		ClearProcessingStartedAt().
		ClearErrorJSON().
		SetMeta(meta).
		Exec(ctx)
	if err != nil {
		return 0, 0, 0, translateEntError("reset job", err)
	}
	if err := tx.Commit(); err != nil {
		return 0, 0, 0, fmt.Errorf("enqueue job: %w", err)
	}
	return 0, 1, 0, nil
}

// ClaimJobs atomically claims up to limit pending jobs for one pipeline
// version using FOR UPDATE SKIP LOCKED. Claim order is (created_at, id);
// concurrent claimers never receive overlapping jobs. Returns an empty
// slice when nothing is claimable.
func (s *JobService) ClaimJobs(ctx context.Context, pipelineVersion string, limit int) ([]*ent.ExtractionJob, error) {
	if limit <= 0 {
		return nil, NewValidationError("limit", "must be positive")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	jobs, err := tx.ExtractionJob.Query().
		Where(
			extractionjob.StatusEQ(extractionjob.StatusPending),
			extractionjob.PipelineVersion(pipelineVersion),
			extractionjob.AvailableAtLTE(time.Now()),
		).
		Order(ent.Asc(extractionjob.FieldCreatedAt), ent.Asc(extractionjob.FieldID)).
		Limit(limit).
		ForUpdate(sql.WithLockAction(sql.SkipLocked)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query pending jobs: %w", err)
	}
	if len(jobs) == 0 {
		return nil, nil
	}

	now := time.Now()
	claimed := make([]*ent.ExtractionJob, 0, len(jobs))
	for _, job := range jobs {
		job, err = job.Update().
			SetStatus(extractionjob.StatusProcessing).
			SetProcessingStartedAt(now).
			AddAttempt(1).
			Save(ctx)
		if err != nil {
			return nil, fmt.Errorf("failed to claim job %s: %w", job.ID, err)
		}
		claimed = append(claimed, job)
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit claim: %w", err)
	}
	return claimed, nil
}

// Heartbeat bumps updated_at on in-flight jobs so the stale-requeue
// supervisor spares live work.
func (s *JobService) Heartbeat(ctx context.Context, jobIDs []string) error {
	if len(jobIDs) == 0 {
		return nil
	}
	err := s.client.ExtractionJob.Update().
		Where(
			extractionjob.IDIn(jobIDs...),
			extractionjob.StatusEQ(extractionjob.StatusProcessing),
		).
		SetUpdatedAt(time.Now()).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("heartbeat failed: %w", err)
	}
	return nil
}

// RequeueStale flips processing jobs whose updated_at is older than the
// threshold back to pending and returns the count. olderThan zero flushes
// every processing job (used by tests and forced recovery).
func (s *JobService) RequeueStale(ctx context.Context, olderThan time.Duration) (int, error) {
	cutoff := time.Now().Add(-olderThan)
	n, err := s.client.ExtractionJob.Update().
		Where(
			extractionjob.StatusEQ(extractionjob.StatusProcessing),
			extractionjob.UpdatedAtLTE(cutoff),
		).
		SetStatus(extractionjob.StatusPending).
		SetAvailableAt(time.Now()).
		ClearProcessingStartedAt().
		SetMeta(map[string]interface{}{
			"requeue_reason": "stale",
			"requeued_at":    time.Now().UTC().Format(time.RFC3339),
		}).
		Save(ctx)
	if err != nil {
		return 0, fmt.Errorf("failed to requeue stale jobs: %w", err)
	}
	return n, nil
}

// TerminateInput is one terminal (or requeue) transition.
type TerminateInput struct {
	JobID  string
	Status extractionjob.Status

	// AssignmentID lands in meta on status ok.
	AssignmentID string

	// LLMModel records the model that served the successful extraction.
	LLMModel string

	// ErrInfo becomes error_json on failed/skipped/pending transitions.
	ErrInfo *models.ErrorInfo

	// Backoff pushes available_at forward on a pending (requeue) transition.
	Backoff time.Duration

	// Supervisor transitions skip the from-processing check (stale requeue,
	// manual triage).
	Supervisor bool
}

// Terminate applies a final (or requeue) transition to one job. Rejects
// transitions from non-processing states unless invoked as supervisor.
func (s *JobService) Terminate(ctx context.Context, in TerminateInput) (*ent.ExtractionJob, error) {
	if in.JobID == "" {
		return nil, NewValidationError("job_id", "required")
	}
	switch in.Status {
	case extractionjob.StatusOk, extractionjob.StatusFailed, extractionjob.StatusSkipped, extractionjob.StatusPending:
	default:
		return nil, NewValidationError("status", "not a terminal or requeue status")
	}

	tx, err := s.client.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	job, err := tx.ExtractionJob.Query().
		Where(extractionjob.ID(in.JobID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, translateEntError("terminate job", err)
	}
	if job.Status != extractionjob.StatusProcessing && !in.Supervisor {
		return nil, fmt.Errorf("job %s is %s: %w", job.ID, job.Status, ErrInvalidTransition)
	}

	meta := cloneMeta(job.Meta)
	update := job.Update().SetStatus(in.Status)

	switch in.Status {
	case extractionjob.StatusOk:
		meta["assignment_id"] = in.AssignmentID
		delete(meta, "requeue_reason")
		update.ClearErrorJSON()
		if in.LLMModel != "" {
			update.SetLlmModel(in.LLMModel)
		}
	case extractionjob.StatusPending:
		meta["requeue_reason"] = requeueReason(in.ErrInfo)
		meta["backoff_ms"] = in.Backoff.Milliseconds()
		update.SetAvailableAt(time.Now().Add(in.Backoff)).
			ClearProcessingStartedAt()
		if in.ErrInfo != nil {
			update.SetErrorJSON(errorInfoToMap(in.ErrInfo))
		}
	default:
		if in.ErrInfo != nil {
			update.SetErrorJSON(errorInfoToMap(in.ErrInfo))
		}
	}
	update.SetMeta(meta)

	job, err = update.Save(ctx)
	if err != nil {
		return nil, translateEntError("terminate job", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit terminate: %w", err)
	}
	return job, nil
}

// Get returns one job by id.
func (s *JobService) Get(ctx context.Context, id string) (*ent.ExtractionJob, error) {
	job, err := s.client.ExtractionJob.Get(ctx, id)
	if err != nil {
		return nil, translateEntError("get job", err)
	}
	return job, nil
}

// CountByStatus returns queue depth per status for one pipeline version.
func (s *JobService) CountByStatus(ctx context.Context, pipelineVersion string) (map[string]int, error) {
	var rows []struct {
		Status string `json:"status"`
		Count  int    `json:"count"`
	}
	err := s.client.ExtractionJob.Query().
		Where(extractionjob.PipelineVersion(pipelineVersion)).
		GroupBy(extractionjob.FieldStatus).
		Aggregate(ent.Count()).
		Scan(ctx, &rows)
	if err != nil {
		return nil, fmt.Errorf("failed to count jobs: %w", err)
	}
	counts := make(map[string]int, len(rows))
	for _, r := range rows {
		counts[r.Status] = r.Count
	}
	return counts, nil
}

func requeueReason(info *models.ErrorInfo) string {
	if info == nil {
		return "requeued"
	}
	return info.Error
}

func errorInfoToMap(info *models.ErrorInfo) map[string]interface{} {
	m := map[string]interface{}{"error": info.Error}
	if info.Stage != "" {
		m["stage"] = info.Stage
	}
	if info.Message != "" {
		m["message"] = info.Message
	}
	if len(info.Reasons) > 0 {
		m["errors"] = info.Reasons
	}
	if info.Preview != "" {
		m["preview"] = info.Preview
	}
	if len(info.SegmentErrors) > 0 {
		m["segment_errors"] = info.SegmentErrors
	}
	return m
}

func cloneMeta(meta map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(meta)+2)
	for k, v := range meta {
		out[k] = v
	}
	return out
}
