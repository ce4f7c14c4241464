package queue

import (
	"context"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/events"
	"github.com/tuitionlab/assignflow/pkg/services"
)

// WorkerPool manages a pool of queue workers plus the stale-job
// supervisor ticker.
type WorkerPool struct {
	podID     string
	client    *ent.Client
	jobs      *services.JobService
	config    *config.QueueConfig
	executor  JobExecutor
	publisher *events.EventPublisher
	workers   []*Worker
	stopCh    chan struct{}
	stopOnce  sync.Once
	wg        sync.WaitGroup
	started   bool

	// Stale requeue state
	stale staleState
}

// NewWorkerPool creates a new worker pool.
// publisher may be nil (events disabled).
func NewWorkerPool(podID string, client *ent.Client, jobs *services.JobService, cfg *config.QueueConfig, executor JobExecutor, publisher *events.EventPublisher) *WorkerPool {
	return &WorkerPool{
		podID:     podID,
		client:    client,
		jobs:      jobs,
		config:    cfg,
		executor:  executor,
		publisher: publisher,
		workers:   make([]*Worker, 0, cfg.WorkerCount),
		stopCh:    make(chan struct{}),
	}
}

// Start spawns worker goroutines and the stale-job supervisor.
// It is safe to call multiple times; subsequent calls are no-ops.
func (p *WorkerPool) Start(ctx context.Context) error {
	if p.started {
		slog.Warn("Worker pool already started, ignoring duplicate Start call", "pod_id", p.podID)
		return nil
	}
	p.started = true

	slog.Info("Starting worker pool",
		"pod_id", p.podID,
		"worker_count", p.config.WorkerCount,
		"pipeline_version", p.config.PipelineVersion)

	for i := 0; i < p.config.WorkerCount; i++ {
		workerID := fmt.Sprintf("%s-worker-%d", p.podID, i)
		worker := NewWorker(workerID, p.podID, p.jobs, p.config, p.executor, p.publisher)
		p.workers = append(p.workers, worker)
		worker.Start(ctx)
	}

	// Start the stale-job supervisor
	p.wg.Add(1)
	go func() {
		defer p.wg.Done()
		p.runStaleSupervisor(ctx)
	}()

	slog.Info("Worker pool started")
	return nil
}

// Stop signals all workers to stop and waits for them to finish.
// Workers drain their claimed batches before exiting (graceful shutdown);
// anything left mid-flight is recovered by RequeueStale.
func (p *WorkerPool) Stop() {
	slog.Info("Stopping worker pool gracefully")

	for _, worker := range p.workers {
		worker.Stop()
	}

	p.stopOnce.Do(func() { close(p.stopCh) })
	p.wg.Wait()

	slog.Info("Worker pool stopped gracefully")
}

// Health returns the current health status of the pool.
func (p *WorkerPool) Health() *PoolHealth {
	ctx := context.Background()

	queueDepth, errQ := p.client.ExtractionJob.Query().
		Where(
			extractionjob.StatusEQ(extractionjob.StatusPending),
			extractionjob.PipelineVersion(p.config.PipelineVersion),
		).
		Count(ctx)
	if errQ != nil {
		slog.Error("Failed to query queue depth for health check",
			"pod_id", p.podID, "error", errQ)
	}

	workerStats := make([]WorkerHealth, len(p.workers))
	activeWorkers := 0
	for i, worker := range p.workers {
		stats := worker.Health()
		workerStats[i] = stats
		if stats.Status == string(WorkerStatusWorking) {
			activeWorkers++
		}
	}

	p.stale.mu.Lock()
	lastStaleScan := p.stale.lastScan
	staleRequeued := p.stale.requeued
	p.stale.mu.Unlock()

	dbHealthy := errQ == nil
	var dbError string
	if errQ != nil {
		dbError = fmt.Sprintf("queue depth query failed: %v", errQ)
	}

	return &PoolHealth{
		IsHealthy:     len(p.workers) > 0 && dbHealthy,
		DBReachable:   dbHealthy,
		DBError:       dbError,
		PodID:         p.podID,
		ActiveWorkers: activeWorkers,
		TotalWorkers:  len(p.workers),
		QueueDepth:    queueDepth,
		WorkerStats:   workerStats,
		LastStaleScan: lastStaleScan,
		StaleRequeued: staleRequeued,
	}
}

// staleState tracks stale-requeue metrics (thread-safe).
type staleState struct {
	mu       sync.Mutex
	lastScan time.Time
	requeued int
}

// runStaleSupervisor periodically requeues abandoned processing jobs.
// All replicas run this independently — the operation is idempotent.
func (p *WorkerPool) runStaleSupervisor(ctx context.Context) {
	ticker := time.NewTicker(p.config.StaleCheckInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-p.stopCh:
			return
		case <-ticker.C:
			if err := p.requeueStaleJobs(ctx); err != nil {
				slog.Error("Stale job requeue failed", "error", err)
			}
		}
	}
}

// requeueStaleJobs flips processing jobs with dead heartbeats back to
// pending and records the scan.
func (p *WorkerPool) requeueStaleJobs(ctx context.Context) error {
	n, err := p.jobs.RequeueStale(ctx, p.config.StaleThreshold)

	p.stale.mu.Lock()
	p.stale.lastScan = time.Now()
	p.stale.requeued += n
	p.stale.mu.Unlock()

	if err != nil {
		return err
	}
	if n > 0 {
		slog.Warn("Requeued stale processing jobs", "count", n, "pod_id", p.podID)
	}
	return nil
}

// RecoverStartupJobs requeues stale processing jobs once during startup,
// before the pool begins claiming. Covers jobs stranded by a crash of
// any replica; live jobs on other replicas are spared by the heartbeat
// threshold.
func RecoverStartupJobs(ctx context.Context, jobs *services.JobService, staleThreshold time.Duration) (int, error) {
	n, err := jobs.RequeueStale(ctx, staleThreshold)
	if err != nil {
		return 0, fmt.Errorf("startup stale recovery failed: %w", err)
	}
	if n > 0 {
		slog.Warn("Recovered stale jobs from previous run", "count", n)
	}
	return n, nil
}
