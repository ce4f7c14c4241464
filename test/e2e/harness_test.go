package e2e

import (
	"context"
	"log/slog"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/pkg/database"
	"github.com/tuitionlab/assignflow/pkg/dedup"
	"github.com/tuitionlab/assignflow/pkg/enrich"
	"github.com/tuitionlab/assignflow/pkg/events"
	"github.com/tuitionlab/assignflow/pkg/geodata"
	"github.com/tuitionlab/assignflow/pkg/masking"
	"github.com/tuitionlab/assignflow/pkg/models"
	"github.com/tuitionlab/assignflow/pkg/queue"
	"github.com/tuitionlab/assignflow/pkg/services"
	testdb "github.com/tuitionlab/assignflow/test/database"
)

const pipelineVersion = "v1"

// mockExtractor stands in for the LLM boundary so the pipeline runs
// deterministically. Both hooks are swappable mid-test.
type mockExtractor struct {
	mu           sync.Mutex
	extractCalls int
	splitCalls   int
	extractFn    func(text string) (*models.CanonicalExtraction, string, error)
	splitFn      func(text string) (*models.CompilationSplit, error)
}

func (m *mockExtractor) Extract(_ context.Context, text string, _ *models.AgencyHints) (*models.CanonicalExtraction, string, error) {
	m.mu.Lock()
	m.extractCalls++
	fn := m.extractFn
	m.mu.Unlock()
	if fn == nil {
		return &models.CanonicalExtraction{AcademicDisplayText: text}, "test-model", nil
	}
	return fn(text)
}

func (m *mockExtractor) CheckCompilation(_ context.Context, text string) (*models.CompilationSplit, error) {
	m.mu.Lock()
	m.splitCalls++
	fn := m.splitFn
	m.mu.Unlock()
	if fn == nil {
		return &models.CompilationSplit{}, nil
	}
	return fn(text)
}

func (m *mockExtractor) setExtract(fn func(text string) (*models.CanonicalExtraction, string, error)) {
	m.mu.Lock()
	m.extractFn = fn
	m.mu.Unlock()
}

func (m *mockExtractor) calls() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.extractCalls
}

// harness wires the full pipeline over one test schema: raw store, job
// queue, executor with the mock extractor, real enrichment, real
// duplicate detection, real event publishing.
type harness struct {
	client      *database.Client
	raws        *services.RawMessageService
	jobs        *services.JobService
	assignments *services.AssignmentService
	extractor   *mockExtractor
	detector    *dedup.Detector
	executor    *queue.Executor
}

func newHarness(t *testing.T, extractor *mockExtractor, mutate ...func(*queue.ExecutorDeps)) *harness {
	t.Helper()
	client := testdb.NewTestClient(t)

	geo, err := geodata.Load("")
	require.NoError(t, err)

	raws := services.NewRawMessageService(client.Client)
	jobs := services.NewJobService(client.Client)
	assignments := services.NewAssignmentService(client.Client)
	detector := dedup.NewDetector(client.Client, nil, slog.Default())

	deps := queue.ExecutorDeps{
		Raws:        raws,
		Assignments: assignments,
		Extractor:   extractor,
		Enricher:    enrich.NewEnricher(geo),
		Masker:      masking.NewService(),
		Detector:    detector,
		Publisher:   events.NewEventPublisher(client.DB()),
	}
	for _, m := range mutate {
		m(&deps)
	}

	return &harness{
		client:      client,
		raws:        raws,
		jobs:        jobs,
		assignments: assignments,
		extractor:   extractor,
		detector:    detector,
		executor:    queue.NewExecutor(deps),
	}
}

// ingest stores one collector batch and enqueues a job per message.
func (h *harness) ingest(t *testing.T, channel, agencyID string, msgs ...models.IngestMessage) {
	t.Helper()
	ctx := context.Background()

	_, _, err := h.raws.StoreBatch(ctx, &models.IngestRequest{
		Channel:  channel,
		AgencyID: agencyID,
		Messages: msgs,
	})
	require.NoError(t, err)

	ids := make([]string, len(msgs))
	for i, m := range msgs {
		ids[i] = m.MessageID
	}
	_, err = h.jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: pipelineVersion,
		Channel:         channel,
		MessageIDs:      ids,
	})
	require.NoError(t, err)
}

// runNext claims exactly one job, runs the executor, and returns both.
func (h *harness) runNext(t *testing.T) (*ent.ExtractionJob, *queue.ExecutionResult) {
	t.Helper()
	claimed, err := h.jobs.ClaimJobs(context.Background(), pipelineVersion, 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1, "expected a claimable job")

	job := claimed[0]
	res := h.executor.ProcessOne(context.Background(), job)
	require.NotNil(t, res)
	return job, res
}

// finish applies the outcome's terminal (or requeue) transition the way
// the worker does, with the default attempt budget.
func (h *harness) finish(t *testing.T, job *ent.ExtractionJob, res *queue.ExecutionResult) *ent.ExtractionJob {
	t.Helper()
	in := services.TerminateInput{JobID: job.ID, LLMModel: res.LLMModel}
	switch res.Outcome.Kind {
	case models.OutcomeOk:
		in.Status = extractionjob.StatusOk
		in.AssignmentID = res.Outcome.AssignmentID
	case models.OutcomeRetry:
		in.Status = extractionjob.StatusPending
		in.Backoff = res.Outcome.Backoff
		in.ErrInfo = res.Outcome.Err
	case models.OutcomeSkip:
		in.Status = extractionjob.StatusSkipped
		in.ErrInfo = res.Outcome.Err
	default:
		in.Status = extractionjob.StatusFailed
		in.ErrInfo = res.Outcome.Err
	}

	updated, err := h.jobs.Terminate(context.Background(), in)
	require.NoError(t, err)
	return updated
}

// runToTerminal claims, processes, and terminates one job in one call.
func (h *harness) runToTerminal(t *testing.T) *ent.ExtractionJob {
	t.Helper()
	job, res := h.runNext(t)
	return h.finish(t, job, res)
}

// makeClaimable rewinds a requeued job's backoff so the next claim sees it.
func (h *harness) makeClaimable(t *testing.T, jobID string) {
	t.Helper()
	require.NoError(t, h.client.ExtractionJob.UpdateOneID(jobID).
		SetAvailableAt(time.Now().Add(-time.Second)).
		Exec(context.Background()))
}

// persistedEventCount counts stored events of one type.
func (h *harness) persistedEventCount(t *testing.T, eventType string) int {
	t.Helper()
	var n int
	err := h.client.DB().QueryRowContext(context.Background(),
		`SELECT count(*) FROM events WHERE payload->>'type' = $1`, eventType).Scan(&n)
	require.NoError(t, err)
	return n
}
