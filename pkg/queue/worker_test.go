package queue

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/pkg/models"
)

func TestTerminateInputOk(t *testing.T) {
	job := &ent.ExtractionJob{ID: "j1", Attempt: 1}
	res := &ExecutionResult{
		Outcome:  models.OkOutcome("a1"),
		LLMModel: "claude-sonnet-4-5",
	}

	in := terminateInput(job, res, 5)

	assert.Equal(t, extractionjob.StatusOk, in.Status)
	assert.Equal(t, "a1", in.AssignmentID)
	assert.Equal(t, "claude-sonnet-4-5", in.LLMModel)
	assert.Nil(t, in.ErrInfo)
}

func TestTerminateInputRetryWithinBudget(t *testing.T) {
	job := &ent.ExtractionJob{ID: "j1", Attempt: 2}
	res := &ExecutionResult{
		Outcome: models.RetryOutcome(models.ErrLLMTransient, "extract", "upstream 503", time.Minute),
	}

	in := terminateInput(job, res, 5)

	assert.Equal(t, extractionjob.StatusPending, in.Status)
	assert.Equal(t, time.Minute, in.Backoff)
	require.NotNil(t, in.ErrInfo)
	assert.Equal(t, models.ErrLLMTransient, in.ErrInfo.Error)
}

func TestTerminateInputRetryExhaustsAttempts(t *testing.T) {
	job := &ent.ExtractionJob{ID: "j1", Attempt: 5}
	res := &ExecutionResult{
		Outcome: models.RetryOutcome(models.ErrTimeout, "worker", "budget exceeded", time.Minute),
	}

	in := terminateInput(job, res, 5)

	assert.Equal(t, extractionjob.StatusFailed, in.Status)
	assert.Zero(t, in.Backoff)
	require.NotNil(t, in.ErrInfo)
	assert.Equal(t, models.ErrTimeout, in.ErrInfo.Error)
}

func TestTerminateInputSkip(t *testing.T) {
	job := &ent.ExtractionJob{ID: "j1", Attempt: 1}
	res := &ExecutionResult{
		Outcome: models.SkipOutcome(models.ErrNonAssignment, "prefilter", "spam_marker"),
	}

	in := terminateInput(job, res, 5)

	assert.Equal(t, extractionjob.StatusSkipped, in.Status)
	require.NotNil(t, in.ErrInfo)
	assert.Equal(t, models.ErrNonAssignment, in.ErrInfo.Error)
}

func TestTerminateInputFail(t *testing.T) {
	job := &ent.ExtractionJob{ID: "j1", Attempt: 1}
	res := &ExecutionResult{
		Outcome: models.FailOutcome(models.ErrValidationFailed, "validate", "bad record", "display_text_missing"),
	}

	in := terminateInput(job, res, 5)

	assert.Equal(t, extractionjob.StatusFailed, in.Status)
	require.NotNil(t, in.ErrInfo)
	assert.Equal(t, []string{"display_text_missing"}, in.ErrInfo.Reasons)
}
