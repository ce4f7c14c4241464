package services

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/pkg/database"
	"github.com/tuitionlab/assignflow/pkg/models"
	testdb "github.com/tuitionlab/assignflow/test/database"
)

func setupAssignmentService(t *testing.T) (*database.Client, *AssignmentService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, NewAssignmentService(client.Client)
}

func baseUpsertInput() *models.UpsertAssignmentInput {
	published := time.Date(2026, 8, 20, 10, 0, 0, 0, time.UTC)
	rateMin, rateMax := 40.0, 50.0
	return &models.UpsertAssignmentInput{
		ExternalID:              "agencyA-m1",
		AgencyID:                "agencyA",
		AssignmentCode:          "TA12345",
		AcademicDisplayText:     "Sec 3 E-Math @ Tampines",
		LessonSchedule:          []string{"Mon 7-9pm"},
		StartDate:               "ASAP",
		Address:                 []string{"Blk 520 Tampines Central"},
		PostalCode:              []string{"520123"},
		Region:                  "East",
		RateMin:                 &rateMin,
		RateMax:                 &rateMax,
		SignalsSubjects:         []string{"Math"},
		SignalsLevels:           []string{"Secondary"},
		SubjectsCanonical:       []string{"MATH.SEC_EMATH"},
		SubjectsGeneral:         []string{"MATH"},
		CanonicalizationVersion: 1,
		PublishedAt:             &published,
	}
}

func TestAssignmentService_UpsertCreates(t *testing.T) {
	_, assignments := setupAssignmentService(t)
	ctx := context.Background()

	view, err := assignments.UpsertAssignment(ctx, baseUpsertInput())
	require.NoError(t, err)
	assert.True(t, view.Created)
	assert.False(t, view.Bumped)

	assert.Equal(t, "agencyA-m1", view.ExternalID)
	require.NotNil(t, view.AssignmentCode)
	assert.Equal(t, "TA12345", *view.AssignmentCode)
	assert.Equal(t, []string{"520123"}, view.PostalCode)
	require.NotNil(t, view.RateMin)
	assert.Equal(t, 40.0, *view.RateMin)
	assert.Zero(t, view.BumpCount)
	assert.True(t, view.IsPrimaryInGroup)
}

func TestAssignmentService_UpsertValidation(t *testing.T) {
	_, assignments := setupAssignmentService(t)
	ctx := context.Background()

	in := baseUpsertInput()
	in.ExternalID = ""
	_, err := assignments.UpsertAssignment(ctx, in)
	assert.True(t, IsValidationError(err))

	in = baseUpsertInput()
	in.AcademicDisplayText = ""
	_, err = assignments.UpsertAssignment(ctx, in)
	assert.True(t, IsValidationError(err))
}

func TestAssignmentService_MergePolicy(t *testing.T) {
	_, assignments := setupAssignmentService(t)
	ctx := context.Background()

	first, err := assignments.UpsertAssignment(ctx, baseUpsertInput())
	require.NoError(t, err)

	// Re-extraction of the same post with different field coverage.
	second := baseUpsertInput()
	second.AssignmentCode = "TA99999" // set-once: must not overwrite
	second.AcademicDisplayText = "Sec 3 E-Math and A-Math @ Tampines"
	second.StartDate = ""                       // empty: existing value kept
	second.Region = "Central"                   // non-empty: overwritten
	second.PostalCode = nil                     // empty array: existing kept
	second.LessonSchedule = []string{"Tue 6pm"} // non-empty array: replaced
	second.SignalsSubjects = []string{"Math", "A-Math"}
	second.RateMin = nil // absent numeric: existing kept
	second.CanonicalizationVersion = 2

	view, err := assignments.UpsertAssignment(ctx, second)
	require.NoError(t, err)
	assert.False(t, view.Created)
	assert.Equal(t, first.ID, view.ID)

	require.NotNil(t, view.AssignmentCode)
	assert.Equal(t, "TA12345", *view.AssignmentCode)
	assert.Equal(t, "Sec 3 E-Math and A-Math @ Tampines", view.AcademicDisplayText)
	require.NotNil(t, view.StartDate)
	assert.Equal(t, "ASAP", *view.StartDate)
	require.NotNil(t, view.Region)
	assert.Equal(t, "Central", *view.Region)
	assert.Equal(t, []string{"520123"}, view.PostalCode)
	assert.Equal(t, []string{"Tue 6pm"}, view.LessonSchedule)
	// Signals are replaced, never unioned.
	assert.Equal(t, []string{"Math", "A-Math"}, view.SignalsSubjects)
	require.NotNil(t, view.RateMin)
	assert.Equal(t, 40.0, *view.RateMin)
	assert.Equal(t, 2, view.CanonicalizationVersion)
	// First-seen created_at survives the merge.
	assert.WithinDuration(t, first.CreatedAt, view.CreatedAt, time.Second)
}

func TestAssignmentService_BumpOnAdvancedPublishTime(t *testing.T) {
	_, assignments := setupAssignmentService(t)
	ctx := context.Background()

	first, err := assignments.UpsertAssignment(ctx, baseUpsertInput())
	require.NoError(t, err)

	// Source bumped the post a day later.
	bumped := baseUpsertInput()
	later := first.PublishedAt.Add(24 * time.Hour)
	bumped.PublishedAt = &later

	view, err := assignments.UpsertAssignment(ctx, bumped)
	require.NoError(t, err)
	assert.True(t, view.Bumped)
	assert.Equal(t, 1, view.BumpCount)
	// published_at is first-seen; the advance lands in source_last_seen.
	assert.True(t, view.PublishedAt.Equal(*first.PublishedAt))
	require.NotNil(t, view.SourceLastSeen)
	assert.True(t, view.SourceLastSeen.Equal(later))

	// Replaying the same extraction does not bump again.
	view, err = assignments.UpsertAssignment(ctx, bumped)
	require.NoError(t, err)
	assert.False(t, view.Bumped)
	assert.Equal(t, 1, view.BumpCount)
}

func TestAssignmentService_GetByExternalID(t *testing.T) {
	_, assignments := setupAssignmentService(t)
	ctx := context.Background()

	created, err := assignments.UpsertAssignment(ctx, baseUpsertInput())
	require.NoError(t, err)

	row, err := assignments.GetByExternalID(ctx, "agencyA", "agencyA-m1")
	require.NoError(t, err)
	assert.Equal(t, created.ID, row.ID)

	// Same external id under another agency is a different identity.
	_, err = assignments.GetByExternalID(ctx, "agencyB", "agencyA-m1")
	assert.ErrorIs(t, err, ErrNotFound)
}

func TestAssignmentService_RecordBroadcast(t *testing.T) {
	_, assignments := setupAssignmentService(t)
	ctx := context.Background()

	err := assignments.RecordBroadcast(ctx, "agencyA-m1", BroadcastPayload{
		Content:            "Sec 3 E-Math @ Tampines",
		ChatID:             "chat-1",
		TransportMessageID: "msg-100",
	})
	require.NoError(t, err)

	// Second record for the same external id updates in place.
	err = assignments.RecordBroadcast(ctx, "agencyA-m1", BroadcastPayload{
		Content:     "Sec 3 E-Math @ Tampines (5+ tutors interested)",
		ClickBucket: 5,
	})
	require.NoError(t, err)

	rec, err := assignments.GetBroadcast(ctx, "agencyA-m1")
	require.NoError(t, err)
	assert.Equal(t, "Sec 3 E-Math @ Tampines (5+ tutors interested)", rec.Content)
	assert.Equal(t, 5, rec.ClickBucket)
	// Edit target from the first record survives the update.
	require.NotNil(t, rec.TransportMessageID)
	assert.Equal(t, "msg-100", *rec.TransportMessageID)

	err = assignments.RecordBroadcast(ctx, "", BroadcastPayload{})
	assert.True(t, IsValidationError(err))
}
