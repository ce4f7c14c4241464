package freshness

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/database"
	"github.com/tuitionlab/assignflow/pkg/events"
	"github.com/tuitionlab/assignflow/pkg/models"
	"github.com/tuitionlab/assignflow/pkg/services"
	testdb "github.com/tuitionlab/assignflow/test/database"
)

func setupService(t *testing.T) (*database.Client, *Service) {
	t.Helper()
	client := testdb.NewTestClient(t)

	svc := NewService(
		config.DefaultFreshnessConfig(),
		config.DefaultRetentionConfig(),
		services.NewTieringService(client.DB()),
		services.NewRawMessageService(client.Client),
		events.NewStore(client.DB()),
		nil,
	)
	return client, svc
}

func createAssignmentAged(t *testing.T, client *ent.Client, age time.Duration) *ent.Assignment {
	t.Helper()
	id := uuid.New().String()
	row, err := client.Assignment.Create().
		SetID(id).
		SetExternalID(id).
		SetAgencyID("agencyA").
		SetAcademicDisplayText("Sec 3 E-Math").
		SetSourceLastSeen(time.Now().Add(-age)).
		Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestService_RetiersByAge(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	fresh := createAssignmentAged(t, client.Client, time.Hour)
	dayOld := createAssignmentAged(t, client.Client, 2*24*time.Hour)
	weekOld := createAssignmentAged(t, client.Client, 5*24*time.Hour)
	stale := createAssignmentAged(t, client.Client, 10*24*time.Hour)

	// Everything starts green; the pass must move the aged rows down.
	svc.retierPass(ctx)

	expect := map[string]assignment.FreshnessTier{
		fresh.ID:   assignment.FreshnessTierGreen,
		dayOld.ID:  assignment.FreshnessTierYellow,
		weekOld.ID: assignment.FreshnessTierOrange,
		stale.ID:   assignment.FreshnessTierRed,
	}
	for id, tier := range expect {
		row, err := client.Assignment.Get(ctx, id)
		require.NoError(t, err)
		assert.Equal(t, tier, row.FreshnessTier, "assignment %s", id)
	}
}

func TestService_RetierIsIdempotent(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	row := createAssignmentAged(t, client.Client, 2*24*time.Hour)

	svc.retierPass(ctx)
	svc.retierPass(ctx)

	updated, err := client.Assignment.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, assignment.FreshnessTierYellow, updated.FreshnessTier)
}

func TestService_RetierSkipsClosedAssignments(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	row := createAssignmentAged(t, client.Client, 10*24*time.Hour)
	require.NoError(t, client.Assignment.UpdateOneID(row.ID).
		SetStatus(assignment.StatusClosed).
		Exec(ctx))

	svc.retierPass(ctx)

	updated, err := client.Assignment.Get(ctx, row.ID)
	require.NoError(t, err)
	assert.Equal(t, assignment.FreshnessTierGreen, updated.FreshnessTier)
}

func TestService_RetierFallsBackToPublishedAt(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	// No source_last_seen: published_at drives the age.
	id := uuid.New().String()
	_, err := client.Assignment.Create().
		SetID(id).
		SetExternalID(id).
		SetAgencyID("agencyA").
		SetAcademicDisplayText("Sec 3 E-Math").
		SetPublishedAt(time.Now().Add(-5 * 24 * time.Hour)).
		Save(ctx)
	require.NoError(t, err)

	svc.retierPass(ctx)

	row, err := client.Assignment.Get(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, assignment.FreshnessTierOrange, row.FreshnessTier)
}

func TestService_RetentionSoftDeletesExpiredRaws(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()
	raws := services.NewRawMessageService(client.Client)

	_, _, err := raws.StoreBatch(ctx, &models.IngestRequest{
		Channel:  "c/agencyA",
		AgencyID: "agencyA",
		Messages: []models.IngestMessage{
			{MessageID: "old", Text: "old post", PublishedAt: time.Now()},
			{MessageID: "recent", Text: "recent post", PublishedAt: time.Now()},
		},
	})
	require.NoError(t, err)

	rows, err := raws.GetByChannelMessageIDs(ctx, "c/agencyA", []string{"old"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	// Age the first raw past the retention window. created_at is
	// immutable through ent, so go through SQL.
	_, err = client.DB().ExecContext(ctx,
		`UPDATE raw_messages SET created_at = $1 WHERE raw_id = $2`,
		time.Now().AddDate(0, 0, -200), rows[0].ID)
	require.NoError(t, err)

	svc.retentionPass(ctx)

	aged, err := client.RawMessage.Get(ctx, rows[0].ID)
	require.NoError(t, err)
	assert.NotNil(t, aged.DeletedAt)

	kept, err := raws.GetByChannelMessageIDs(ctx, "c/agencyA", []string{"recent"})
	require.NoError(t, err)
	require.Len(t, kept, 1)
	assert.Nil(t, kept[0].DeletedAt)
}

func TestService_RetentionSparesRawsWithLiveJobs(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()
	raws := services.NewRawMessageService(client.Client)
	jobs := services.NewJobService(client.Client)

	_, _, err := raws.StoreBatch(ctx, &models.IngestRequest{
		Channel:  "c/agencyA",
		AgencyID: "agencyA",
		Messages: []models.IngestMessage{
			{MessageID: "pending", Text: "pending post", PublishedAt: time.Now()},
		},
	})
	require.NoError(t, err)

	rows, err := raws.GetByChannelMessageIDs(ctx, "c/agencyA", []string{"pending"})
	require.NoError(t, err)
	require.Len(t, rows, 1)

	_, err = jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: "v1",
		Channel:         "c/agencyA",
		MessageIDs:      []string{"pending"},
	})
	require.NoError(t, err)

	_, err = client.DB().ExecContext(ctx,
		`UPDATE raw_messages SET created_at = $1 WHERE raw_id = $2`,
		time.Now().AddDate(0, 0, -200), rows[0].ID)
	require.NoError(t, err)

	svc.retentionPass(ctx)

	row, err := client.RawMessage.Get(ctx, rows[0].ID)
	require.NoError(t, err)
	assert.Nil(t, row.DeletedAt, "raw with a pending job must be spared")
}

func TestService_RetentionPrunesAgedEvents(t *testing.T) {
	client, svc := setupService(t)
	ctx := context.Background()

	// One aged event, one recent.
	_, err := client.DB().ExecContext(ctx,
		`INSERT INTO events (scope_id, channel, payload, created_at) VALUES
			('j1', 'events:jobs', '{"type":"job.status"}', $1),
			('j2', 'events:jobs', '{"type":"job.status"}', $2)`,
		time.Now().Add(-2*time.Hour), time.Now())
	require.NoError(t, err)

	svc.retentionPass(ctx)

	store := events.NewStore(client.DB())
	remaining, err := store.GetEventsSince(ctx, "events:jobs", 0, 10)
	require.NoError(t, err)
	require.Len(t, remaining, 1)
	assert.Equal(t, "j2", remaining[0].ScopeID)
}

func TestService_StartStop(t *testing.T) {
	_, svc := setupService(t)

	svc.Start(context.Background())
	svc.Stop()
}
