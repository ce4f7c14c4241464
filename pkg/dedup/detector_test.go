package dedup

import (
	"context"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/pkg/config"
	testdb "github.com/tuitionlab/assignflow/test/database"
)

func createAssignment(t *testing.T, client *ent.Client, id, agency string, published *time.Time) *ent.Assignment {
	t.Helper()
	create := client.Assignment.Create().
		SetID(id).
		SetExternalID(id).
		SetAgencyID(agency).
		SetAcademicDisplayText("Sec 3 E-Math @ Tampines")
	if published != nil {
		create.SetPublishedAt(*published)
	}
	row, err := create.Save(context.Background())
	require.NoError(t, err)
	return row
}

func TestCandidatesUnpublishedRowsSortLast(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	cfg := config.DefaultDedupConfig()
	cfg.BatchSize = 3
	d := NewDetector(client.Client, cfg, slog.Default())

	now := time.Now().UTC()
	anchor := createAssignment(t, client.Client, "anchor", "agencyA", &now)

	// More unpublished rows than the batch holds. Postgres sorts nulls
	// first under plain DESC, so without an explicit nulls placement
	// these would fill the whole batch.
	for i := 0; i < 5; i++ {
		createAssignment(t, client.Client, fmt.Sprintf("draft-%d", i), "agencyB", nil)
	}
	published := make(map[string]bool)
	for i := 0; i < 3; i++ {
		pub := now.Add(-time.Duration(i+1) * time.Hour)
		row := createAssignment(t, client.Client, fmt.Sprintf("pub-%d", i), "agencyB", &pub)
		published[row.ID] = true
	}

	got, err := d.candidates(ctx, anchor)
	require.NoError(t, err)
	require.Len(t, got, 3)
	for _, c := range got {
		assert.True(t, published[c.ID],
			"unpublished row %s displaced a published candidate", c.ID)
	}
	// Newest published row leads the batch.
	assert.Equal(t, "pub-0", got[0].ID)
}
