package e2e

import (
	"context"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/models"
	"github.com/tuitionlab/assignflow/pkg/queue"
	"github.com/tuitionlab/assignflow/pkg/services"
	testdb "github.com/tuitionlab/assignflow/test/database"
)

func TestRecovery_StaleRequeueAndIdempotentReplay(t *testing.T) {
	extractor := &mockExtractor{}
	extractor.setExtract(func(text string) (*models.CanonicalExtraction, string, error) {
		return &models.CanonicalExtraction{
			AcademicDisplayText: "Sec 3 Math @ Tampines",
			Subjects:            []string{"Math"},
			Level:               "Sec 3",
			PostalCode:          []string{"520123"},
		}, "test-model-a", nil
	})
	h := newHarness(t, extractor)
	ctx := context.Background()

	h.ingest(t, "alpha-assignments", "agencyA", models.IngestMessage{
		MessageID:   "500",
		Text:        "Sec 3 Math tutor needed, Tampines 520123, $40/hr",
		PublishedAt: time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC),
	})

	// A replica claims the job and dies before processing.
	claimed, err := h.jobs.ClaimJobs(ctx, pipelineVersion, 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	// Forced recovery flushes the abandoned claim back to pending.
	n, err := h.jobs.RequeueStale(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 1, n)

	recovered, err := h.jobs.Get(ctx, claimed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, extractionjob.StatusPending, recovered.Status)
	assert.Equal(t, "stale", recovered.Meta["requeue_reason"])

	// The reclaim processes normally.
	job := h.runToTerminal(t)
	assert.Equal(t, extractionjob.StatusOk, job.Status)
	assert.Equal(t, 2, job.Attempt)

	// Force-reprocessing the same raw merges into the same row: no second
	// canonical row, no bump (the publish time never advanced).
	res, err := h.jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: pipelineVersion,
		Channel:         "alpha-assignments",
		MessageIDs:      []string{"500"},
		Force:           true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, res.Reset)

	job = h.runToTerminal(t)
	assert.Equal(t, extractionjob.StatusOk, job.Status)

	total, err := h.client.Assignment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, total)

	view, err := h.assignments.GetByExternalID(ctx, "agencyA", "alpha-assignments/500")
	require.NoError(t, err)
	assert.Zero(t, view.BumpCount)
}

func TestRecovery_ClaimDisjointnessAcrossReplicas(t *testing.T) {
	shared := testdb.NewSharedTestDB(t)
	replicaA := shared.NewClient(t)
	replicaB := shared.NewClient(t)
	ctx := context.Background()

	// Seed through one replica; both see the same queue.
	raws := services.NewRawMessageService(replicaA.Client)
	msgs := make([]models.IngestMessage, 20)
	ids := make([]string, 20)
	for i := range msgs {
		ids[i] = fmt.Sprintf("%d", 600+i)
		msgs[i] = models.IngestMessage{
			MessageID:   ids[i],
			Text:        fmt.Sprintf("Assignment %d", i),
			PublishedAt: time.Now(),
		}
	}
	_, _, err := raws.StoreBatch(ctx, &models.IngestRequest{
		Channel:  "alpha-assignments",
		AgencyID: "agencyA",
		Messages: msgs,
	})
	require.NoError(t, err)
	_, err = services.NewJobService(replicaA.Client).Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: pipelineVersion,
		Channel:         "alpha-assignments",
		MessageIDs:      ids,
	})
	require.NoError(t, err)

	// Both replicas drain the queue concurrently in batches of five.
	var mu sync.Mutex
	var wg sync.WaitGroup
	claimedBy := map[string]string{}
	overlaps := 0

	for name, client := range map[string]*services.JobService{
		"replica-a": services.NewJobService(replicaA.Client),
		"replica-b": services.NewJobService(replicaB.Client),
	} {
		wg.Add(1)
		go func(name string, jobs *services.JobService) {
			defer wg.Done()
			for {
				batch, err := jobs.ClaimJobs(ctx, pipelineVersion, 5)
				assert.NoError(t, err)
				if len(batch) == 0 {
					return
				}
				mu.Lock()
				for _, job := range batch {
					if _, dup := claimedBy[job.ID]; dup {
						overlaps++
					}
					claimedBy[job.ID] = name
				}
				mu.Unlock()
			}
		}(name, client)
	}
	wg.Wait()

	assert.Zero(t, overlaps, "skip-locked claims must never overlap")
	assert.Len(t, claimedBy, 20, "every job claimed exactly once")
}

func TestRecovery_WorkerPoolDrainsQueue(t *testing.T) {
	extractor := &mockExtractor{}
	extractor.setExtract(func(text string) (*models.CanonicalExtraction, string, error) {
		return &models.CanonicalExtraction{AcademicDisplayText: text}, "test-model-a", nil
	})
	h := newHarness(t, extractor)
	ctx := context.Background()

	msgs := make([]models.IngestMessage, 6)
	for i := range msgs {
		msgs[i] = models.IngestMessage{
			MessageID:   fmt.Sprintf("%d", 700+i),
			Text:        fmt.Sprintf("P%d Math tutor needed", i+1),
			PublishedAt: time.Now(),
		}
	}
	h.ingest(t, "alpha-assignments", "agencyA", msgs...)

	cfg := config.DefaultQueueConfig()
	cfg.WorkerCount = 2
	cfg.ClaimBatchSize = 2
	cfg.PollInterval = 50 * time.Millisecond
	cfg.PollIntervalJitter = 10 * time.Millisecond
	cfg.HeartbeatInterval = 250 * time.Millisecond
	cfg.StaleCheckInterval = time.Second

	pool := queue.NewWorkerPool("pod-e2e", h.client.Client, h.jobs, cfg, h.executor, nil)
	require.NoError(t, pool.Start(ctx))
	defer pool.Stop()

	require.Eventually(t, func() bool {
		counts, err := h.jobs.CountByStatus(ctx, pipelineVersion)
		return err == nil && counts["ok"] == 6
	}, 15*time.Second, 100*time.Millisecond, "pool drains every pending job")

	pool.Stop()

	health := pool.Health()
	assert.Equal(t, 2, health.TotalWorkers)
	assert.Zero(t, health.QueueDepth)

	total, err := h.client.Assignment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 6, total)
}
