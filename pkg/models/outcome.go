package models

import "time"

// Error taxonomy written to extraction_jobs.error_json. The worker maps
// every stage failure onto exactly one of these.
const (
	// Skipped, terminal
	ErrRawMissing    = "raw_missing"
	ErrNonAssignment = "non_assignment"

	// Requeue with backoff, not counted as permanent
	ErrLLMTransient = "llm_transient"
	ErrCircuitOpen  = "circuit_open"
	ErrTimeout      = "timeout"

	// Failed, terminal until force-reprocess
	ErrLLMPermanent     = "llm_permanent"
	ErrLLMSchemaInvalid = "llm_schema_invalid"
	ErrValidationFailed = "validation_failed"
	ErrEnrichmentFailed = "enrichment_failed"
	ErrUpsertConflict   = "upsert_conflict"

	// Logged non-fatally; the upsert stands
	ErrDuplicateDetectionFailed = "duplicate_detection_failed"
	ErrDeliveryFailed           = "delivery_failed"
)

// OutcomeKind discriminates the four terminal shapes of one job run.
type OutcomeKind string

const (
	OutcomeOk    OutcomeKind = "ok"
	OutcomeRetry OutcomeKind = "retry"
	OutcomeSkip  OutcomeKind = "skip"
	OutcomeFail  OutcomeKind = "fail"
)

// ErrorInfo is the structured error_json payload.
type ErrorInfo struct {
	Error         string            `json:"error"`
	Stage         string            `json:"stage,omitempty"`
	Message       string            `json:"message,omitempty"`
	Reasons       []string          `json:"errors,omitempty"`
	Preview       string            `json:"preview,omitempty"`
	SegmentErrors map[string]string `json:"segment_errors,omitempty"`
}

// Outcome is the result of processing one job: exactly one of
// Ok / Retry / Skip / Fail, with the payload that shape carries.
type Outcome struct {
	Kind         OutcomeKind
	AssignmentID string        // Ok: canonical row (primary segment on compilations)
	Backoff      time.Duration // Retry: wait before the job becomes claimable again
	Err          *ErrorInfo    // Retry/Skip/Fail
}

// OkOutcome builds the success shape.
func OkOutcome(assignmentID string) Outcome {
	return Outcome{Kind: OutcomeOk, AssignmentID: assignmentID}
}

// RetryOutcome builds the requeue-with-backoff shape.
func RetryOutcome(taxonomy, stage, message string, backoff time.Duration) Outcome {
	return Outcome{
		Kind:    OutcomeRetry,
		Backoff: backoff,
		Err:     &ErrorInfo{Error: taxonomy, Stage: stage, Message: message},
	}
}

// SkipOutcome builds the skipped-terminal shape.
func SkipOutcome(taxonomy, stage, message string) Outcome {
	return Outcome{
		Kind: OutcomeSkip,
		Err:  &ErrorInfo{Error: taxonomy, Stage: stage, Message: message},
	}
}

// FailOutcome builds the failed-terminal shape.
func FailOutcome(taxonomy, stage, message string, reasons ...string) Outcome {
	return Outcome{
		Kind: OutcomeFail,
		Err:  &ErrorInfo{Error: taxonomy, Stage: stage, Message: message, Reasons: reasons},
	}
}
