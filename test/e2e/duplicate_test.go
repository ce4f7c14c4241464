package e2e

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/ent/duplicategroup"
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/pkg/models"
)

// crossAgencyExtractor returns the same opportunity regardless of source:
// identical postal, subjects, and rate, which scores well past the linking
// threshold once both agencies' posts are processed.
func crossAgencyExtractor() *mockExtractor {
	extractor := &mockExtractor{}
	extractor.setExtract(func(text string) (*models.CanonicalExtraction, string, error) {
		rate := 40.0
		return &models.CanonicalExtraction{
			AcademicDisplayText: text,
			Subjects:            []string{"Math"},
			Level:               "Sec 3",
			PostalCode:          []string{"520123"},
			RateMin:             &rate,
			RateMax:             &rate,
		}, "test-model-a", nil
	})
	return extractor
}

func TestDuplicate_CrossAgencyLinking(t *testing.T) {
	h := newHarness(t, crossAgencyExtractor())
	ctx := context.Background()

	earlier := time.Now().Add(-3 * time.Hour)
	h.ingest(t, "alpha-assignments", "agencyA", models.IngestMessage{
		MessageID:   "400",
		Text:        "Sec 3 Math tutor needed, Tampines 520123, $40/hr",
		PublishedAt: earlier,
	})
	h.ingest(t, "beta-tuition", "agencyB", models.IngestMessage{
		MessageID:   "77",
		Text:        "Looking for Sec 3 Math tutor @ Tampines 520123, $40/hr",
		PublishedAt: earlier.Add(time.Hour),
	})

	// The first post has no candidates; the second links against it.
	jobA := h.runToTerminal(t)
	jobB := h.runToTerminal(t)
	require.Equal(t, extractionjob.StatusOk, jobA.Status)
	require.Equal(t, extractionjob.StatusOk, jobB.Status)

	rowA, err := h.assignments.GetByExternalID(ctx, "agencyA", "alpha-assignments/400")
	require.NoError(t, err)
	rowB, err := h.assignments.GetByExternalID(ctx, "agencyB", "beta-tuition/77")
	require.NoError(t, err)

	require.NotNil(t, rowA.DuplicateGroupID)
	require.NotNil(t, rowB.DuplicateGroupID)
	assert.Equal(t, *rowA.DuplicateGroupID, *rowB.DuplicateGroupID)

	group, err := h.client.DuplicateGroup.Get(ctx, *rowA.DuplicateGroupID)
	require.NoError(t, err)
	assert.Equal(t, 2, group.MemberCount)
	assert.GreaterOrEqual(t, group.AvgConfidenceScore, 70.0)
	assert.NotEmpty(t, group.DetectionAlgorithmVersion)

	// The earlier-published post is the group's primary.
	assert.True(t, rowA.IsPrimaryInGroup)
	assert.False(t, rowB.IsPrimaryInGroup)
	require.NotNil(t, group.PrimaryAssignmentID)
	assert.Equal(t, rowA.ID, *group.PrimaryAssignmentID)

	require.NotNil(t, rowB.DuplicateConfidenceScore)
	assert.GreaterOrEqual(t, *rowB.DuplicateConfidenceScore, 70.0)

	assert.Equal(t, 1, h.persistedEventCount(t, "duplicate.linked"))
}

func TestDuplicate_PromoteNextAfterPrimaryCloses(t *testing.T) {
	h := newHarness(t, crossAgencyExtractor())
	ctx := context.Background()

	earlier := time.Now().Add(-2 * time.Hour)
	h.ingest(t, "alpha-assignments", "agencyA", models.IngestMessage{
		MessageID:   "401",
		Text:        "Sec 3 Math, Tampines 520123, $40/hr",
		PublishedAt: earlier,
	})
	h.ingest(t, "beta-tuition", "agencyB", models.IngestMessage{
		MessageID:   "78",
		Text:        "Sec 3 Math, Tampines 520123, $40/hr",
		PublishedAt: earlier.Add(30 * time.Minute),
	})
	h.runToTerminal(t)
	h.runToTerminal(t)

	rowA, err := h.assignments.GetByExternalID(ctx, "agencyA", "alpha-assignments/401")
	require.NoError(t, err)
	require.NotNil(t, rowA.DuplicateGroupID)
	require.True(t, rowA.IsPrimaryInGroup)
	groupID := *rowA.DuplicateGroupID

	// The primary closes; its mirror takes over the group.
	require.NoError(t, h.assignments.SetStatus(ctx, rowA.ID, assignment.StatusClosed))
	require.NoError(t, h.detector.PromoteNext(ctx, groupID))

	rowB, err := h.assignments.GetByExternalID(ctx, "agencyB", "beta-tuition/78")
	require.NoError(t, err)
	assert.True(t, rowB.IsPrimaryInGroup)

	// One open member left: the group is resolved but keeps its primary.
	group, err := h.client.DuplicateGroup.Get(ctx, groupID)
	require.NoError(t, err)
	assert.Equal(t, duplicategroup.StatusResolved, group.Status)
	require.NotNil(t, group.PrimaryAssignmentID)
	assert.Equal(t, rowB.ID, *group.PrimaryAssignmentID)
}
