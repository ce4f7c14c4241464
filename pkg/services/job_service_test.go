package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/pkg/database"
	"github.com/tuitionlab/assignflow/pkg/models"
	testdb "github.com/tuitionlab/assignflow/test/database"
)

func setupJobService(t *testing.T) (*database.Client, *JobService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, NewJobService(client.Client)
}

// seedRaws stores one raw message per id on the given channel.
func seedRaws(t *testing.T, client *database.Client, channel, agencyID string, messageIDs ...string) {
	t.Helper()
	msgs := make([]models.IngestMessage, 0, len(messageIDs))
	for _, id := range messageIDs {
		msgs = append(msgs, models.IngestMessage{
			MessageID:   id,
			Text:        "Sec 3 E-Math, Tampines, $40/hr",
			PublishedAt: time.Now(),
		})
	}
	_, _, err := NewRawMessageService(client.Client).StoreBatch(context.Background(), &models.IngestRequest{
		Channel:  channel,
		AgencyID: agencyID,
		Messages: msgs,
	})
	require.NoError(t, err)
}

func TestJobService_Enqueue(t *testing.T) {
	client, jobs := setupJobService(t)
	ctx := context.Background()
	seedRaws(t, client, "c/agencyA", "agencyA", "m1", "m2")

	// m3 has no raw row behind it.
	result, err := jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: "v1",
		Channel:         "c/agencyA",
		MessageIDs:      []string{"m1", "m2", "m3"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Created)
	assert.Equal(t, 1, result.Missing)
	assert.Zero(t, result.Reset)
	assert.Zero(t, result.Untouched)

	// Re-enqueue of pending jobs resets them in place; no duplicate rows.
	result, err = jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: "v1",
		Channel:         "c/agencyA",
		MessageIDs:      []string{"m1", "m2"},
	})
	require.NoError(t, err)
	assert.Equal(t, 2, result.Reset)
	assert.Zero(t, result.Created)

	counts, err := jobs.CountByStatus(ctx, "v1")
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"pending": 2}, counts)

	// A second pipeline version is a distinct job identity.
	result, err = jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: "v2",
		Channel:         "c/agencyA",
		MessageIDs:      []string{"m1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Created)
}

func TestJobService_EnqueueValidation(t *testing.T) {
	_, jobs := setupJobService(t)
	ctx := context.Background()

	_, err := jobs.Enqueue(ctx, &models.EnqueueRequest{Channel: "c", MessageIDs: []string{"m"}})
	assert.True(t, IsValidationError(err))

	_, err = jobs.Enqueue(ctx, &models.EnqueueRequest{PipelineVersion: "v1", MessageIDs: []string{"m"}})
	assert.True(t, IsValidationError(err))

	_, err = jobs.Enqueue(ctx, &models.EnqueueRequest{PipelineVersion: "v1", Channel: "c"})
	assert.True(t, IsValidationError(err))
}

func TestJobService_EnqueueOkJobs(t *testing.T) {
	client, jobs := setupJobService(t)
	ctx := context.Background()
	seedRaws(t, client, "c/agencyA", "agencyA", "m1")

	_, err := jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: "v1", Channel: "c/agencyA", MessageIDs: []string{"m1"},
	})
	require.NoError(t, err)

	claimed, err := jobs.ClaimJobs(ctx, "v1", 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)
	_, err = jobs.Terminate(ctx, TerminateInput{
		JobID:        claimed[0].ID,
		Status:       extractionjob.StatusOk,
		AssignmentID: "a-1",
	})
	require.NoError(t, err)

	// Completed work is left alone unless forced.
	result, err := jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: "v1", Channel: "c/agencyA", MessageIDs: []string{"m1"},
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Untouched)

	result, err = jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: "v1", Channel: "c/agencyA", MessageIDs: []string{"m1"}, Force: true,
	})
	require.NoError(t, err)
	assert.Equal(t, 1, result.Reset)

	job, err := jobs.Get(ctx, claimed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, extractionjob.StatusPending, job.Status)
	assert.Equal(t, "force-re-enqueued", job.Meta["requeue_reason"])
	assert.Nil(t, job.ProcessingStartedAt)
	// The attempt counter survives the reset.
	assert.Equal(t, 1, job.Attempt)
}

func TestJobService_ClaimJobs(t *testing.T) {
	client, jobs := setupJobService(t)
	ctx := context.Background()
	seedRaws(t, client, "c/agencyA", "agencyA", "m1", "m2", "m3")

	_, err := jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: "v1", Channel: "c/agencyA", MessageIDs: []string{"m1", "m2", "m3"},
	})
	require.NoError(t, err)

	claimed, err := jobs.ClaimJobs(ctx, "v1", 2)
	require.NoError(t, err)
	require.Len(t, claimed, 2)
	for _, job := range claimed {
		assert.Equal(t, extractionjob.StatusProcessing, job.Status)
		assert.Equal(t, 1, job.Attempt)
		assert.NotNil(t, job.ProcessingStartedAt)
	}

	// Claim order is (created_at, id) ascending.
	first, second := claimed[0], claimed[1]
	if first.CreatedAt.Equal(second.CreatedAt) {
		assert.Less(t, first.ID, second.ID)
	} else {
		assert.True(t, first.CreatedAt.Before(second.CreatedAt))
	}

	// Subsequent claims never overlap with in-flight work.
	rest, err := jobs.ClaimJobs(ctx, "v1", 10)
	require.NoError(t, err)
	require.Len(t, rest, 1)
	assert.NotEqual(t, claimed[0].ID, rest[0].ID)
	assert.NotEqual(t, claimed[1].ID, rest[0].ID)

	// Queue drained.
	none, err := jobs.ClaimJobs(ctx, "v1", 10)
	require.NoError(t, err)
	assert.Empty(t, none)

	// Other pipeline versions see nothing.
	none, err = jobs.ClaimJobs(ctx, "v2", 10)
	require.NoError(t, err)
	assert.Empty(t, none)

	_, err = jobs.ClaimJobs(ctx, "v1", 0)
	assert.True(t, IsValidationError(err))
}

func TestJobService_ClaimRespectsAvailableAt(t *testing.T) {
	client, jobs := setupJobService(t)
	ctx := context.Background()
	seedRaws(t, client, "c/agencyA", "agencyA", "m1")

	_, err := jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: "v1", Channel: "c/agencyA", MessageIDs: []string{"m1"},
	})
	require.NoError(t, err)

	claimed, err := jobs.ClaimJobs(ctx, "v1", 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	// Requeue with backoff: the job goes pending but is not yet claimable.
	_, err = jobs.Terminate(ctx, TerminateInput{
		JobID:   claimed[0].ID,
		Status:  extractionjob.StatusPending,
		ErrInfo: &models.ErrorInfo{Error: "llm_transient"},
		Backoff: time.Hour,
	})
	require.NoError(t, err)

	none, err := jobs.ClaimJobs(ctx, "v1", 10)
	require.NoError(t, err)
	assert.Empty(t, none)

	job, err := jobs.Get(ctx, claimed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, extractionjob.StatusPending, job.Status)
	assert.Equal(t, "llm_transient", job.Meta["requeue_reason"])
	assert.True(t, job.AvailableAt.After(time.Now().Add(30*time.Minute)))
}

func TestJobService_RequeueStale(t *testing.T) {
	client, jobs := setupJobService(t)
	ctx := context.Background()
	seedRaws(t, client, "c/agencyA", "agencyA", "m1", "m2")

	_, err := jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: "v1", Channel: "c/agencyA", MessageIDs: []string{"m1", "m2"},
	})
	require.NoError(t, err)

	claimed, err := jobs.ClaimJobs(ctx, "v1", 2)
	require.NoError(t, err)
	require.Len(t, claimed, 2)

	// Nothing is stale against a generous threshold.
	n, err := jobs.RequeueStale(ctx, time.Hour)
	require.NoError(t, err)
	assert.Zero(t, n)

	// Zero threshold flushes every processing job (forced recovery).
	n, err = jobs.RequeueStale(ctx, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, n)

	job, err := jobs.Get(ctx, claimed[0].ID)
	require.NoError(t, err)
	assert.Equal(t, extractionjob.StatusPending, job.Status)
	assert.Equal(t, "stale", job.Meta["requeue_reason"])
	assert.Nil(t, job.ProcessingStartedAt)

	// Requeued jobs are claimable again with a bumped attempt counter.
	reclaimed, err := jobs.ClaimJobs(ctx, "v1", 2)
	require.NoError(t, err)
	require.Len(t, reclaimed, 2)
	assert.Equal(t, 2, reclaimed[0].Attempt)
}

func TestJobService_HeartbeatSparesLiveJobs(t *testing.T) {
	client, jobs := setupJobService(t)
	ctx := context.Background()
	seedRaws(t, client, "c/agencyA", "agencyA", "m1")

	_, err := jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: "v1", Channel: "c/agencyA", MessageIDs: []string{"m1"},
	})
	require.NoError(t, err)

	claimed, err := jobs.ClaimJobs(ctx, "v1", 1)
	require.NoError(t, err)
	require.Len(t, claimed, 1)

	// Age the claim, then heartbeat: the supervisor must spare the job.
	_, err = client.DB().ExecContext(ctx,
		`UPDATE extraction_jobs SET updated_at = $1 WHERE job_id = $2`,
		time.Now().Add(-time.Hour), claimed[0].ID)
	require.NoError(t, err)

	require.NoError(t, jobs.Heartbeat(ctx, []string{claimed[0].ID}))

	n, err := jobs.RequeueStale(ctx, 30*time.Minute)
	require.NoError(t, err)
	assert.Zero(t, n)

	// No-op heartbeat is fine.
	require.NoError(t, jobs.Heartbeat(ctx, nil))
}

func TestJobService_Terminate(t *testing.T) {
	client, jobs := setupJobService(t)
	ctx := context.Background()
	seedRaws(t, client, "c/agencyA", "agencyA", "m1", "m2")

	_, err := jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: "v1", Channel: "c/agencyA", MessageIDs: []string{"m1", "m2"},
	})
	require.NoError(t, err)

	claimed, err := jobs.ClaimJobs(ctx, "v1", 2)
	require.NoError(t, err)
	require.Len(t, claimed, 2)

	t.Run("ok transition records the assignment", func(t *testing.T) {
		job, err := jobs.Terminate(ctx, TerminateInput{
			JobID:        claimed[0].ID,
			Status:       extractionjob.StatusOk,
			AssignmentID: "a-42",
			LLMModel:     "claude-sonnet-4-5",
		})
		require.NoError(t, err)
		assert.Equal(t, extractionjob.StatusOk, job.Status)
		assert.Equal(t, "a-42", job.Meta["assignment_id"])
		require.NotNil(t, job.LlmModel)
		assert.Equal(t, "claude-sonnet-4-5", *job.LlmModel)
		assert.Nil(t, job.ErrorJSON)
	})

	t.Run("failed transition stores the error taxonomy", func(t *testing.T) {
		job, err := jobs.Terminate(ctx, TerminateInput{
			JobID:  claimed[1].ID,
			Status: extractionjob.StatusFailed,
			ErrInfo: &models.ErrorInfo{
				Error:   "llm_permanent",
				Stage:   "extract",
				Message: "invalid request",
				Preview: "Sec 3 E-Math, Tamp...",
			},
		})
		require.NoError(t, err)
		assert.Equal(t, extractionjob.StatusFailed, job.Status)
		assert.Equal(t, "llm_permanent", job.ErrorJSON["error"])
		assert.Equal(t, "extract", job.ErrorJSON["stage"])
	})

	t.Run("terminal states reject worker transitions", func(t *testing.T) {
		_, err := jobs.Terminate(ctx, TerminateInput{
			JobID:  claimed[0].ID,
			Status: extractionjob.StatusFailed,
		})
		assert.ErrorIs(t, err, ErrInvalidTransition)
	})

	t.Run("supervisor bypasses the from-processing check", func(t *testing.T) {
		job, err := jobs.Terminate(ctx, TerminateInput{
			JobID:      claimed[0].ID,
			Status:     extractionjob.StatusPending,
			Supervisor: true,
		})
		require.NoError(t, err)
		assert.Equal(t, extractionjob.StatusPending, job.Status)
	})

	t.Run("input validation", func(t *testing.T) {
		_, err := jobs.Terminate(ctx, TerminateInput{Status: extractionjob.StatusOk})
		assert.True(t, IsValidationError(err))

		_, err = jobs.Terminate(ctx, TerminateInput{JobID: claimed[0].ID, Status: extractionjob.StatusProcessing})
		assert.True(t, IsValidationError(err))

		_, err = jobs.Terminate(ctx, TerminateInput{JobID: "missing", Status: extractionjob.StatusOk})
		assert.ErrorIs(t, err, ErrNotFound)
	})
}
