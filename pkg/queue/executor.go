package queue

import (
	"context"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/pkg/enrich"
	"github.com/tuitionlab/assignflow/pkg/events"
	"github.com/tuitionlab/assignflow/pkg/extract"
	"github.com/tuitionlab/assignflow/pkg/masking"
	"github.com/tuitionlab/assignflow/pkg/models"
	"github.com/tuitionlab/assignflow/pkg/services"
)

// Retry backoff for transient extraction failures: base doubled per
// attempt, capped. The job's available_at moves forward by this much.
const (
	retryBackoffBase = 30 * time.Second
	retryBackoffMax  = 15 * time.Minute
)

// LLMExtractor is the extraction surface the pipeline needs from pkg/extract.
type LLMExtractor interface {
	Extract(ctx context.Context, rawText string, hints *models.AgencyHints) (*models.CanonicalExtraction, string, error)
	CheckCompilation(ctx context.Context, rawText string) (*models.CompilationSplit, error)
}

// DuplicateDetector links an upserted assignment into a duplicate group.
type DuplicateDetector interface {
	Detect(ctx context.Context, a *ent.Assignment) (*string, error)
}

// Deliverer fans an upserted assignment out to subscribed tutors and
// broadcast channels.
type Deliverer interface {
	Deliver(ctx context.Context, a *ent.Assignment) error
}

// ExecutorDeps wires the stage pipeline. Raws, Assignments, Extractor,
// Enricher, and Masker are required; the rest degrade gracefully when nil
// (no dedup pass, no delivery, no events, default compilation heuristic).
type ExecutorDeps struct {
	Raws        *services.RawMessageService
	Assignments *services.AssignmentService
	Extractor   LLMExtractor
	Enricher    *enrich.Enricher
	Masker      *masking.Service
	Detector    DuplicateDetector
	Deliverer   Deliverer
	Publisher   *events.EventPublisher
	Heuristic   extract.CompilationHeuristic
}

// Executor runs the per-job stage pipeline:
// load → pre-filter → compilation split → extract → validate → enrich →
// upsert → duplicate pass → delivery. The duplicate pass and delivery are
// side-effects that never fail the job.
type Executor struct {
	raws        *services.RawMessageService
	assignments *services.AssignmentService
	extractor   LLMExtractor
	enricher    *enrich.Enricher
	masker      *masking.Service
	detector    DuplicateDetector
	deliverer   Deliverer
	publisher   *events.EventPublisher
	heuristic   extract.CompilationHeuristic
}

// NewExecutor creates the stage pipeline executor.
func NewExecutor(deps ExecutorDeps) *Executor {
	if deps.Raws == nil {
		panic("NewExecutor: Raws must not be nil")
	}
	if deps.Assignments == nil {
		panic("NewExecutor: Assignments must not be nil")
	}
	if deps.Extractor == nil {
		panic("NewExecutor: Extractor must not be nil")
	}
	if deps.Enricher == nil {
		panic("NewExecutor: Enricher must not be nil")
	}
	if deps.Masker == nil {
		panic("NewExecutor: Masker must not be nil")
	}
	heuristic := deps.Heuristic
	if heuristic == nil {
		heuristic = extract.DefaultCompilationHeuristic
	}
	return &Executor{
		raws:        deps.Raws,
		assignments: deps.Assignments,
		extractor:   deps.Extractor,
		enricher:    deps.Enricher,
		masker:      deps.Masker,
		detector:    deps.Detector,
		deliverer:   deps.Deliverer,
		publisher:   deps.Publisher,
		heuristic:   heuristic,
	}
}

// ProcessOne runs the full pipeline for one claimed job.
func (e *Executor) ProcessOne(ctx context.Context, job *ent.ExtractionJob) *ExecutionResult {
	log := slog.With("job_id", job.ID, "raw_id", job.RawID, "attempt", job.Attempt)

	// 1. Load the raw message.
	raw, outcome := e.loadRaw(ctx, job)
	if raw == nil {
		return &ExecutionResult{Outcome: outcome}
	}

	// 2. Pre-filter obvious non-assignments before spending LLM budget.
	if reason := prefilterReason(raw.Text); reason != "" {
		log.Info("Job skipped by pre-filter", "reason", reason)
		out := models.SkipOutcome(models.ErrNonAssignment, "prefilter", reason)
		return &ExecutionResult{Outcome: e.withPreview(out, raw)}
	}

	// 3. Compilation check: cheap heuristic first, LLM confirmation second.
	if e.heuristic(raw.Text) {
		split, err := e.checkCompilation(ctx, job, raw)
		if err != nil {
			code := extract.Code(err)
			if retryableCode(code) {
				out := models.RetryOutcome(code, "compilation", err.Error(), backoffForAttempt(job.Attempt))
				return &ExecutionResult{Outcome: out}
			}
			// Permanent split failure: treat the post as a single assignment.
			log.Warn("Compilation check failed, processing as single post", "error", err)
		}
		if split != nil && split.IsCompilation && len(split.Segments) >= 2 {
			return e.processSegments(ctx, job, raw, split.Segments)
		}
	}

	// 4-9. Single-assignment path.
	out, model := e.processText(ctx, job, raw, raw.Text, 0)
	return &ExecutionResult{Outcome: e.withPreview(out, raw), LLMModel: model}
}

// loadRaw returns the job's raw message, or nil with the skip outcome
// when the row is missing or soft-deleted.
func (e *Executor) loadRaw(ctx context.Context, job *ent.ExtractionJob) (*ent.RawMessage, models.Outcome) {
	start := time.Now()
	raw, err := e.raws.Get(ctx, job.RawID)
	e.stageMetric(ctx, job.ID, "load", "", start, err)
	if err != nil {
		return nil, models.SkipOutcome(models.ErrRawMissing, "load", fmt.Sprintf("raw message %s: %v", job.RawID, err))
	}
	if raw.DeletedAt != nil {
		return nil, models.SkipOutcome(models.ErrRawMissing, "load", fmt.Sprintf("raw message %s soft-deleted", job.RawID))
	}
	return raw, models.Outcome{}
}

func (e *Executor) checkCompilation(ctx context.Context, job *ent.ExtractionJob, raw *ent.RawMessage) (*models.CompilationSplit, error) {
	start := time.Now()
	split, err := e.extractor.CheckCompilation(ctx, raw.Text)
	e.stageMetric(ctx, job.ID, "compilation", "", start, err)
	return split, err
}

// processSegments runs the pipeline once per segment of a confirmed
// compilation. The parent job aggregates: all-ok → ok with the first
// segment's assignment id, any-failed → failed with a per-segment error
// map. A transient failure in any segment requeues the whole job — the
// upserts already applied are idempotent on reprocessing.
func (e *Executor) processSegments(ctx context.Context, job *ent.ExtractionJob, raw *ent.RawMessage, segments []string) *ExecutionResult {
	log := slog.With("job_id", job.ID, "raw_id", job.RawID)
	log.Info("Processing compilation", "segments", len(segments))

	segErrors := make(map[string]string)
	firstAssignment := ""
	firstTaxonomy := ""
	model := ""

	for i, segment := range segments {
		outcome, m := e.processText(ctx, job, raw, segment, i+1)
		if m != "" {
			model = m
		}
		switch outcome.Kind {
		case models.OutcomeOk:
			if firstAssignment == "" {
				firstAssignment = outcome.AssignmentID
			}
		case models.OutcomeRetry:
			return &ExecutionResult{Outcome: outcome, LLMModel: model}
		default:
			key := strconv.Itoa(i + 1)
			segErrors[key] = outcome.Err.Error
			if outcome.Err.Message != "" {
				segErrors[key] = outcome.Err.Error + ": " + outcome.Err.Message
			}
			if firstTaxonomy == "" {
				firstTaxonomy = outcome.Err.Error
			}
		}
	}

	if len(segErrors) == 0 {
		return &ExecutionResult{Outcome: models.OkOutcome(firstAssignment), LLMModel: model}
	}

	out := models.Outcome{
		Kind: models.OutcomeFail,
		Err: &models.ErrorInfo{
			Error:         firstTaxonomy,
			Stage:         "compilation",
			Message:       fmt.Sprintf("%d of %d segments failed", len(segErrors), len(segments)),
			SegmentErrors: segErrors,
		},
	}
	return &ExecutionResult{Outcome: e.withPreview(out, raw), LLMModel: model}
}

// processText runs extract → validate → enrich → upsert → side-effects
// for one assignment text. segment is 0 for a standalone post, 1-based
// for compilation segments.
func (e *Executor) processText(ctx context.Context, job *ent.ExtractionJob, raw *ent.RawMessage, text string, segment int) (models.Outcome, string) {
	hints := &models.AgencyHints{AgencyID: raw.AgencyID, Channel: raw.Channel}

	start := time.Now()
	extraction, model, err := e.extractor.Extract(ctx, text, hints)
	e.stageMetric(ctx, job.ID, "extract", "", start, err)
	if err != nil {
		return e.extractOutcome(job, err), model
	}

	if reasons := extraction.Validate(); len(reasons) > 0 {
		return models.FailOutcome(models.ErrValidationFailed, "validate", "canonical record failed validation", reasons...), model
	}

	enrichment := e.enricher.Enrich(text, extraction)

	input := buildUpsertInput(raw, extraction, enrichment, segment)
	start = time.Now()
	view, err := e.assignments.UpsertAssignment(ctx, input)
	e.stageMetric(ctx, job.ID, "upsert", "", start, err)
	if err != nil {
		return models.FailOutcome(models.ErrUpsertConflict, "upsert", err.Error()), model
	}
	e.publishUpserted(ctx, view)

	e.duplicatePass(ctx, job, view)
	e.deliverPass(ctx, job, view)

	return models.OkOutcome(view.ID), model
}

// extractOutcome maps an extraction error onto the retry/fail split:
// transient, breaker-open, and timeout errors requeue with backoff;
// everything else is terminal.
func (e *Executor) extractOutcome(job *ent.ExtractionJob, err error) models.Outcome {
	code := extract.Code(err)
	if retryableCode(code) {
		return models.RetryOutcome(code, "extract", err.Error(), backoffForAttempt(job.Attempt))
	}
	return models.FailOutcome(code, "extract", err.Error())
}

// duplicatePass links the assignment into a duplicate group. Never fails
// the job: detector errors are logged and the assignment stays unlinked
// until reprocessing.
func (e *Executor) duplicatePass(ctx context.Context, job *ent.ExtractionJob, view *models.AssignmentView) {
	if e.detector == nil {
		return
	}
	start := time.Now()
	groupID, err := e.detector.Detect(ctx, view.Assignment)
	e.stageMetric(ctx, job.ID, "dedup", view.ID, start, err)
	if err != nil {
		slog.Error("Duplicate detection failed",
			"job_id", job.ID, "assignment_id", view.ID,
			"error_code", models.ErrDuplicateDetectionFailed, "error", err)
		return
	}
	if groupID == nil || e.publisher == nil {
		return
	}
	if err := e.publisher.PublishDuplicateLinked(ctx, events.DuplicateLinkedPayload{
		Type:         events.EventTypeDuplicateLinked,
		GroupID:      *groupID,
		AssignmentID: view.ID,
		Timestamp:    time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish duplicate.linked", "assignment_id", view.ID, "error", err)
	}
}

// deliverPass fans the assignment out to tutors and broadcast channels.
// Never fails the job.
func (e *Executor) deliverPass(ctx context.Context, job *ent.ExtractionJob, view *models.AssignmentView) {
	if e.deliverer == nil {
		return
	}
	start := time.Now()
	err := e.deliverer.Deliver(ctx, view.Assignment)
	e.stageMetric(ctx, job.ID, "deliver", view.ID, start, err)
	if err != nil {
		slog.Error("Delivery fanout failed",
			"job_id", job.ID, "assignment_id", view.ID,
			"error_code", models.ErrDeliveryFailed, "error", err)
	}
}

func (e *Executor) publishUpserted(ctx context.Context, view *models.AssignmentView) {
	if e.publisher == nil {
		return
	}
	if err := e.publisher.PublishAssignmentUpserted(ctx, events.AssignmentUpsertedPayload{
		Type:         events.EventTypeAssignmentUpserted,
		AssignmentID: view.ID,
		ExternalID:   view.ExternalID,
		AgencyID:     view.AgencyID,
		Created:      view.Created,
		Bumped:       view.Bumped,
		Timestamp:    time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish assignment.upserted", "assignment_id", view.ID, "error", err)
	}
}

// withPreview attaches a redacted raw preview to failure outcomes so
// triage never sees unmasked contact details.
func (e *Executor) withPreview(out models.Outcome, raw *ent.RawMessage) models.Outcome {
	if out.Err != nil && out.Err.Preview == "" {
		out.Err.Preview = e.masker.RedactPreview(raw.Text)
	}
	return out
}

// stageMetric publishes one transient timing sample. Best-effort.
func (e *Executor) stageMetric(ctx context.Context, jobID, stage, assignmentID string, start time.Time, err error) {
	if e.publisher == nil {
		return
	}
	outcome := "ok"
	if err != nil {
		outcome = "fail"
	}
	_ = e.publisher.PublishStageMetric(ctx, events.StageMetricPayload{
		Type:         events.EventTypeStageMetric,
		Stage:        stage,
		JobID:        jobID,
		AssignmentID: assignmentID,
		DurationMS:   time.Since(start).Milliseconds(),
		Outcome:      outcome,
		Timestamp:    time.Now().Format(time.RFC3339Nano),
	})
}
