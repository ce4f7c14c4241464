package queue

import (
	"context"
	"errors"
	"log/slog"
	"math/rand/v2"
	"sync"
	"time"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/events"
	"github.com/tuitionlab/assignflow/pkg/models"
	"github.com/tuitionlab/assignflow/pkg/services"
)

// WorkerStatus represents the current state of a worker.
type WorkerStatus string

// Worker status constants.
const (
	WorkerStatusIdle    WorkerStatus = "idle"
	WorkerStatusWorking WorkerStatus = "working"
)

// Worker is a single queue worker that claims batches of pending jobs
// and processes them sequentially.
type Worker struct {
	id        string
	podID     string
	jobs      *services.JobService
	config    *config.QueueConfig
	executor  JobExecutor
	publisher *events.EventPublisher
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup

	// Health tracking
	mu            sync.RWMutex
	status        WorkerStatus
	currentJobID  string
	jobsProcessed int
	lastActivity  time.Time
}

// NewWorker creates a new queue worker.
// publisher may be nil (events disabled).
func NewWorker(id, podID string, jobs *services.JobService, cfg *config.QueueConfig, executor JobExecutor, publisher *events.EventPublisher) *Worker {
	return &Worker{
		id:           id,
		podID:        podID,
		jobs:         jobs,
		config:       cfg,
		executor:     executor,
		publisher:    publisher,
		stopCh:       make(chan struct{}),
		status:       WorkerStatusIdle,
		lastActivity: time.Now(),
	}
}

// Start begins the worker polling loop in a goroutine.
func (w *Worker) Start(ctx context.Context) {
	w.wg.Add(1)
	go w.run(ctx)
}

// Stop signals the worker to stop and waits for it to finish.
// It is safe to call Stop multiple times.
func (w *Worker) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
	w.wg.Wait()
}

// Health returns the current worker health status.
func (w *Worker) Health() WorkerHealth {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return WorkerHealth{
		ID:            w.id,
		Status:        string(w.status),
		CurrentJobID:  w.currentJobID,
		JobsProcessed: w.jobsProcessed,
		LastActivity:  w.lastActivity,
	}
}

// run is the main worker loop.
func (w *Worker) run(ctx context.Context) {
	defer w.wg.Done()

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Worker started")

	for {
		select {
		case <-w.stopCh:
			log.Info("Worker shutting down")
			return
		case <-ctx.Done():
			log.Info("Context cancelled, worker shutting down")
			return
		default:
			if err := w.pollAndProcess(ctx); err != nil {
				if errors.Is(err, ErrNoJobsAvailable) {
					w.sleep(w.pollInterval())
					continue
				}
				log.Error("Error processing batch", "error", err)
				w.sleep(time.Second) // Brief backoff on error
			}
		}
	}
}

// sleep waits for the given duration or until stop is signalled.
func (w *Worker) sleep(d time.Duration) {
	select {
	case <-w.stopCh:
	case <-time.After(d):
	}
}

// pollAndProcess claims a batch of jobs and processes each sequentially.
// Sequential processing bounds LLM concurrency per worker; the batch
// claim amortizes the queue round-trip.
func (w *Worker) pollAndProcess(ctx context.Context) error {
	jobs, err := w.jobs.ClaimJobs(ctx, w.config.PipelineVersion, w.config.ClaimBatchSize)
	if err != nil {
		return err
	}
	if len(jobs) == 0 {
		return ErrNoJobsAvailable
	}

	log := slog.With("worker_id", w.id, "pod_id", w.podID)
	log.Info("Claimed job batch", "count", len(jobs))

	// Heartbeat covers the whole batch so the stale supervisor spares
	// jobs still waiting their turn.
	jobIDs := make([]string, len(jobs))
	for i, job := range jobs {
		jobIDs[i] = job.ID
	}
	heartbeatCtx, cancelHeartbeat := context.WithCancel(ctx)
	defer cancelHeartbeat()
	go w.runHeartbeat(heartbeatCtx, jobIDs)

	// Once claimed, the batch is processed to completion even if stop is
	// signalled; abandoning claimed jobs would strand them until the
	// stale supervisor recovers them.
	for _, job := range jobs {
		w.processJob(ctx, job)
	}
	return nil
}

// processJob runs one job under its wall-clock budget and writes the
// terminal transition.
func (w *Worker) processJob(ctx context.Context, job *ent.ExtractionJob) {
	log := slog.With("job_id", job.ID, "worker_id", w.id)

	w.setStatus(WorkerStatusWorking, job.ID)
	defer w.setStatus(WorkerStatusIdle, "")

	w.publishJobStatus(ctx, job.ID, job.RawID, extractionjob.StatusProcessing, job.Attempt, "", "")

	jobCtx, cancel := context.WithTimeout(ctx, w.config.JobTimeout)
	result := w.executor.ProcessOne(jobCtx, job)
	ctxErr := jobCtx.Err()
	cancel()

	// Nil-guard: synthesize a safe result if the executor returned nil.
	if result == nil {
		switch {
		case errors.Is(ctxErr, context.DeadlineExceeded):
			result = &ExecutionResult{Outcome: models.RetryOutcome(
				models.ErrTimeout, "worker", "job exceeded wall-clock budget", backoffForAttempt(job.Attempt))}
		default:
			result = &ExecutionResult{Outcome: models.FailOutcome(
				models.ErrLLMPermanent, "worker", "executor returned nil result")}
		}
	}

	// Terminal write on a background context — the job context may
	// already be cancelled, and a stranded processing row is worse than
	// a late status.
	in := terminateInput(job, result, w.config.MaxAttempts)
	updated, err := w.jobs.Terminate(context.Background(), in)
	if err != nil {
		if errors.Is(err, services.ErrInvalidTransition) {
			// The stale supervisor requeued the job mid-flight; its run
			// supersedes ours.
			log.Warn("Job no longer processing at terminate, dropping result", "error", err)
			return
		}
		log.Error("Failed to terminate job", "error", err)
		return
	}

	errCode := ""
	if in.ErrInfo != nil {
		errCode = in.ErrInfo.Error
	}
	w.publishJobStatus(context.Background(), updated.ID, updated.RawID, updated.Status, updated.Attempt, errCode, in.AssignmentID)

	w.mu.Lock()
	w.jobsProcessed++
	w.mu.Unlock()

	log.Info("Job processing complete", "status", updated.Status, "outcome", result.Outcome.Kind)
}

// terminateInput maps a pipeline outcome onto the job's terminal (or
// requeue) transition. Retries that have exhausted the attempt budget
// become terminal failures.
func terminateInput(job *ent.ExtractionJob, result *ExecutionResult, maxAttempts int) services.TerminateInput {
	in := services.TerminateInput{JobID: job.ID, LLMModel: result.LLMModel}
	outcome := result.Outcome

	switch outcome.Kind {
	case models.OutcomeOk:
		in.Status = extractionjob.StatusOk
		in.AssignmentID = outcome.AssignmentID
	case models.OutcomeRetry:
		in.ErrInfo = outcome.Err
		if job.Attempt >= maxAttempts {
			in.Status = extractionjob.StatusFailed
		} else {
			in.Status = extractionjob.StatusPending
			in.Backoff = outcome.Backoff
		}
	case models.OutcomeSkip:
		in.Status = extractionjob.StatusSkipped
		in.ErrInfo = outcome.Err
	default:
		in.Status = extractionjob.StatusFailed
		in.ErrInfo = outcome.Err
	}
	return in
}

// runHeartbeat periodically bumps updated_at on the batch so the stale
// supervisor spares live work.
func (w *Worker) runHeartbeat(ctx context.Context, jobIDs []string) {
	ticker := time.NewTicker(w.config.HeartbeatInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if err := w.jobs.Heartbeat(ctx, jobIDs); err != nil {
				slog.Warn("Heartbeat update failed", "worker_id", w.id, "error", err)
			}
		}
	}
}

// publishJobStatus publishes a job.status event. Non-blocking: errors
// are logged.
func (w *Worker) publishJobStatus(ctx context.Context, jobID, rawID string, status extractionjob.Status, attempt int, errCode, assignmentID string) {
	if w.publisher == nil {
		return
	}
	if err := w.publisher.PublishJobStatus(ctx, events.JobStatusPayload{
		Type:         events.EventTypeJobStatus,
		JobID:        jobID,
		RawID:        rawID,
		Status:       status,
		Attempt:      attempt,
		ErrorCode:    errCode,
		AssignmentID: assignmentID,
		Timestamp:    time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish job status",
			"job_id", jobID, "status", status, "error", err)
	}
}

// pollInterval returns the poll duration with jitter.
func (w *Worker) pollInterval() time.Duration {
	base := w.config.PollInterval
	jitter := w.config.PollIntervalJitter
	if jitter <= 0 {
		return base
	}
	// Range: [base - jitter, base + jitter]
	offset := time.Duration(rand.Int64N(int64(2 * jitter)))
	return base - jitter + offset
}

// setStatus updates the worker's health tracking state.
func (w *Worker) setStatus(status WorkerStatus, jobID string) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.status = status
	w.currentJobID = jobID
	w.lastActivity = time.Now()
}
