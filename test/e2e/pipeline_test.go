package e2e

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/pkg/extract"
	"github.com/tuitionlab/assignflow/pkg/models"
	"github.com/tuitionlab/assignflow/pkg/queue"
)

func TestPipeline_HappyPath(t *testing.T) {
	extractor := &mockExtractor{}
	extractor.setExtract(func(string) (*models.CanonicalExtraction, string, error) {
		return &models.CanonicalExtraction{
			AcademicDisplayText: "Sec 3 Math @ Tampines",
			Subjects:            []string{"Math"},
			Level:               "Sec 3",
			PostalCode:          []string{"520123"},
			LessonSchedule:      []string{"Mon 7-9pm"},
			LearningMode:        "in-person",
		}, "test-model-a", nil
	})
	h := newHarness(t, extractor)
	ctx := context.Background()

	published := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	h.ingest(t, "alpha-assignments", "agencyA", models.IngestMessage{
		MessageID:   "100",
		Text:        "Sec 3 Maths tutor needed at Tampines (520123). $40/hr. Mon 7-9pm.",
		PublishedAt: published,
	})

	job := h.runToTerminal(t)
	assert.Equal(t, extractionjob.StatusOk, job.Status)
	assert.Equal(t, 1, job.Attempt)
	require.NotNil(t, job.LlmModel)
	assert.Equal(t, "test-model-a", *job.LlmModel)

	assignmentID, _ := job.Meta["assignment_id"].(string)
	require.NotEmpty(t, assignmentID)

	view, err := h.assignments.GetByExternalID(ctx, "agencyA", "alpha-assignments/100")
	require.NoError(t, err)
	assert.Equal(t, assignmentID, view.ID)

	// Deterministic enrichment: geo from the verbatim postal, rates parsed
	// from the post because the extraction carried no numerics.
	require.NotNil(t, view.Region)
	assert.Equal(t, "East", *view.Region)
	require.NotNil(t, view.PostalLat)
	assert.InDelta(t, 1.3530, *view.PostalLat, 0.001)
	require.NotNil(t, view.PostalLon)
	assert.InDelta(t, 103.9449, *view.PostalLon, 0.001)
	require.NotNil(t, view.NearestMrtComputed)
	assert.Equal(t, "Tampines", *view.NearestMrtComputed)
	require.NotNil(t, view.NearestMrtLine)
	assert.Equal(t, "EW", *view.NearestMrtLine)
	require.NotNil(t, view.NearestMrtDistanceM)
	assert.Less(t, *view.NearestMrtDistanceM, 1000)

	require.NotNil(t, view.RateMin)
	assert.Equal(t, 40.0, *view.RateMin)
	require.NotNil(t, view.RateMax)
	assert.Equal(t, 40.0, *view.RateMax)

	assert.Contains(t, view.SignalsSubjects, "Math")
	assert.Contains(t, view.SignalsLevels, "Secondary")
	assert.Contains(t, view.SubjectsCanonical, "MATH.SEC_EMATH")
	assert.Contains(t, view.SubjectsGeneral, "MATH")

	require.NotNil(t, view.PublishedAt)
	assert.True(t, view.PublishedAt.Equal(published))

	assert.Equal(t, 1, extractor.calls())
	assert.Equal(t, 1, h.persistedEventCount(t, "assignment.upserted"))
}

func TestPipeline_PrefilterSkipsWithoutLLMCall(t *testing.T) {
	extractor := &mockExtractor{}
	h := newHarness(t, extractor)

	h.ingest(t, "alpha-assignments", "agencyA", models.IngestMessage{
		MessageID:   "101",
		Text:        "Join our channel for daily assignments!",
		PublishedAt: time.Now(),
	})

	job := h.runToTerminal(t)
	assert.Equal(t, extractionjob.StatusSkipped, job.Status)
	assert.Equal(t, models.ErrNonAssignment, job.ErrorJSON["error"])
	assert.Equal(t, "spam_marker", job.ErrorJSON["message"])
	assert.NotEmpty(t, job.ErrorJSON["preview"], "triage preview must be attached")

	assert.Zero(t, extractor.calls(), "pre-filtered posts never reach the extractor")
}

func TestPipeline_ValidationFailure(t *testing.T) {
	extractor := &mockExtractor{}
	extractor.setExtract(func(string) (*models.CanonicalExtraction, string, error) {
		// Schema-valid JSON but an empty record.
		return &models.CanonicalExtraction{}, "test-model-a", nil
	})
	h := newHarness(t, extractor)

	h.ingest(t, "alpha-assignments", "agencyA", models.IngestMessage{
		MessageID:   "102",
		Text:        "Sec 2 Science tutor wanted, Bedok.",
		PublishedAt: time.Now(),
	})

	job := h.runToTerminal(t)
	assert.Equal(t, extractionjob.StatusFailed, job.Status)
	assert.Equal(t, models.ErrValidationFailed, job.ErrorJSON["error"])
	assert.Equal(t, "validate", job.ErrorJSON["stage"])
	assert.Contains(t, job.ErrorJSON["errors"], "display_text_missing")
}

func TestPipeline_CompilationSplit(t *testing.T) {
	extractor := &mockExtractor{}
	extractor.setExtract(func(text string) (*models.CanonicalExtraction, string, error) {
		return &models.CanonicalExtraction{
			AcademicDisplayText: text,
			Subjects:            []string{"Math"},
			Level:               "Secondary",
		}, "test-model-a", nil
	})
	extractor.splitFn = func(string) (*models.CompilationSplit, error) {
		return &models.CompilationSplit{
			IsCompilation: true,
			Segments:      []string{"Sec 3 Math @ Tampines", "Sec 4 Math @ Bedok"},
		}, nil
	}
	h := newHarness(t, extractor, func(deps *queue.ExecutorDeps) {
		deps.Heuristic = func(string) bool { return true }
	})
	ctx := context.Background()

	h.ingest(t, "alpha-assignments", "agencyA", models.IngestMessage{
		MessageID:   "200",
		Text:        "1) Sec 3 Math @ Tampines\n2) Sec 4 Math @ Bedok",
		PublishedAt: time.Now(),
	})

	job := h.runToTerminal(t)
	assert.Equal(t, extractionjob.StatusOk, job.Status)
	assert.Equal(t, 2, extractor.calls())

	// One canonical row per segment, indexed for stable identity.
	first, err := h.assignments.GetByExternalID(ctx, "agencyA", "alpha-assignments/200#1")
	require.NoError(t, err)
	assert.Equal(t, "Sec 3 Math @ Tampines", first.AcademicDisplayText)

	second, err := h.assignments.GetByExternalID(ctx, "agencyA", "alpha-assignments/200#2")
	require.NoError(t, err)
	assert.Equal(t, "Sec 4 Math @ Bedok", second.AcademicDisplayText)

	// The parent job records the first segment's row.
	assert.Equal(t, first.ID, job.Meta["assignment_id"])
}

func TestPipeline_TransientErrorRequeuesThenSucceeds(t *testing.T) {
	extractor := &mockExtractor{}
	extractor.setExtract(func(string) (*models.CanonicalExtraction, string, error) {
		// Untagged errors default to the transient taxonomy.
		return nil, "", errors.New("upstream connection reset")
	})
	h := newHarness(t, extractor)

	h.ingest(t, "alpha-assignments", "agencyA", models.IngestMessage{
		MessageID:   "300",
		Text:        "JC1 Chemistry tutor needed, $70/hr.",
		PublishedAt: time.Now(),
	})

	job := h.runToTerminal(t)
	assert.Equal(t, extractionjob.StatusPending, job.Status)
	assert.Equal(t, models.ErrLLMTransient, job.Meta["requeue_reason"])
	assert.True(t, job.AvailableAt.After(time.Now().Add(25*time.Second)),
		"first retry backs off by the 30s base")

	// Backoff holds the job out of the claim window.
	claimed, err := h.jobs.ClaimJobs(context.Background(), pipelineVersion, 10)
	require.NoError(t, err)
	assert.Empty(t, claimed)

	// Upstream recovers; the requeued job completes on the next attempt.
	extractor.setExtract(func(text string) (*models.CanonicalExtraction, string, error) {
		return &models.CanonicalExtraction{AcademicDisplayText: text}, "test-model-a", nil
	})
	h.makeClaimable(t, job.ID)

	job = h.runToTerminal(t)
	assert.Equal(t, extractionjob.StatusOk, job.Status)
	assert.Equal(t, 2, job.Attempt)
	assert.NotContains(t, job.Meta, "requeue_reason")
}

func TestPipeline_CircuitOpenRequeues(t *testing.T) {
	extractor := &mockExtractor{}
	extractor.setExtract(func(string) (*models.CanonicalExtraction, string, error) {
		return nil, "", &extract.Error{Code: models.ErrCircuitOpen, Err: errors.New("circuit breaker is open")}
	})
	h := newHarness(t, extractor)

	h.ingest(t, "alpha-assignments", "agencyA", models.IngestMessage{
		MessageID:   "301",
		Text:        "P5 English tutor needed, Clementi.",
		PublishedAt: time.Now(),
	})

	job, res := h.runNext(t)
	assert.Equal(t, models.OutcomeRetry, res.Outcome.Kind)
	require.NotNil(t, res.Outcome.Err)
	assert.Equal(t, models.ErrCircuitOpen, res.Outcome.Err.Error)

	job = h.finish(t, job, res)
	assert.Equal(t, extractionjob.StatusPending, job.Status)
	assert.Equal(t, models.ErrCircuitOpen, job.Meta["requeue_reason"])
	assert.Equal(t, models.ErrCircuitOpen, job.ErrorJSON["error"])
}
