package services

import (
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/pkg/database"
	"github.com/tuitionlab/assignflow/pkg/models"
	testdb "github.com/tuitionlab/assignflow/test/database"
)

func setupListingService(t *testing.T) (*database.Client, *ListingService, *AssignmentService) {
	t.Helper()
	client := testdb.NewTestClient(t)
	return client, NewListingService(client.Client, client.DB()), NewAssignmentService(client.Client)
}

// seedAssignment upserts one open assignment published `age` ago.
func seedAssignment(t *testing.T, assignments *AssignmentService, externalID string, age time.Duration, mutate func(*models.UpsertAssignmentInput)) *models.AssignmentView {
	t.Helper()
	published := time.Now().Add(-age).Truncate(time.Millisecond)
	in := &models.UpsertAssignmentInput{
		ExternalID:          externalID,
		AgencyID:            "agencyA",
		AcademicDisplayText: "Sec 3 E-Math @ Tampines",
		SignalsSubjects:     []string{"Math"},
		SignalsLevels:       []string{"Secondary"},
		SubjectsCanonical:   []string{"MATH.SEC_EMATH"},
		SubjectsGeneral:     []string{"MATH"},
		PublishedAt:         &published,
	}
	if mutate != nil {
		mutate(in)
	}
	view, err := assignments.UpsertAssignment(context.Background(), in)
	require.NoError(t, err)
	return view
}

func TestListingService_KeysetPagination(t *testing.T) {
	_, listing, assignments := setupListingService(t)
	ctx := context.Background()

	for i := 0; i < 7; i++ {
		seedAssignment(t, assignments, fmt.Sprintf("agencyA-m%d", i), time.Duration(i)*time.Hour, nil)
	}

	var seen []string
	var lastTS *time.Time
	cursor := ""
	pages := 0
	for {
		page, err := listing.ListOpen(ctx, &models.ListAssignmentsRequest{Limit: 3, Cursor: cursor})
		require.NoError(t, err)
		assert.Equal(t, 7, page.TotalCount, "total count must be stable across pages")
		pages++

		for _, item := range page.Items {
			assert.NotContains(t, seen, item.ID, "pages must not overlap")
			seen = append(seen, item.ID)

			require.NotNil(t, item.PublishedAt)
			if lastTS != nil {
				assert.False(t, item.PublishedAt.After(*lastTS), "newest sort must be descending")
			}
			lastTS = item.PublishedAt
		}

		if page.NextCursor == nil {
			assert.Len(t, page.Items, 1, "final page carries the remainder")
			break
		}
		assert.Len(t, page.Items, 3)
		cursor = *page.NextCursor
	}
	assert.Equal(t, 3, pages)
	assert.Len(t, seen, 7)
}

func TestListingService_Filters(t *testing.T) {
	client, listing, assignments := setupListingService(t)
	ctx := context.Background()

	secondary := seedAssignment(t, assignments, "agencyA-sec", time.Hour, nil)
	primaryMath := seedAssignment(t, assignments, "agencyB-pri", 2*time.Hour, func(in *models.UpsertAssignmentInput) {
		in.AgencyID = "agencyB"
		in.AcademicDisplayText = "P5 Math @ Jurong West"
		in.SignalsLevels = []string{"Primary"}
		in.SubjectsCanonical = []string{"MATH.PRI_MATH"}
		in.Region = "West"
	})
	chemistry := seedAssignment(t, assignments, "agencyA-chem", 3*time.Hour, func(in *models.UpsertAssignmentInput) {
		in.AcademicDisplayText = "JC1 Chemistry, online lessons"
		in.SignalsSubjects = []string{"Chemistry"}
		in.SignalsLevels = []string{"JC"}
		in.SubjectsCanonical = []string{"SCI.JC_CHEM"}
		in.SubjectsGeneral = []string{"SCIENCE"}
		in.LearningMode = "online"
		rateMin, rateMax := 70.0, 90.0
		in.RateMin, in.RateMax = &rateMin, &rateMax
		in.Region = "East"
	})
	lowRate := seedAssignment(t, assignments, "agencyA-low", 4*time.Hour, func(in *models.UpsertAssignmentInput) {
		rateMin := 25.0
		in.RateMin = &rateMin
	})

	list := func(req *models.ListAssignmentsRequest) []string {
		t.Helper()
		page, err := listing.ListOpen(ctx, req)
		require.NoError(t, err)
		ids := make([]string, 0, len(page.Items))
		for _, item := range page.Items {
			ids = append(ids, item.ID)
		}
		return ids
	}

	t.Run("level", func(t *testing.T) {
		ids := list(&models.ListAssignmentsRequest{Level: "Primary"})
		assert.Equal(t, []string{primaryMath.ID}, ids)
	})

	t.Run("subject matches canonical codes too", func(t *testing.T) {
		ids := list(&models.ListAssignmentsRequest{Subject: "SCI.JC_CHEM"})
		assert.Equal(t, []string{chemistry.ID}, ids)
	})

	t.Run("agency", func(t *testing.T) {
		ids := list(&models.ListAssignmentsRequest{Agency: "agencyB"})
		assert.Equal(t, []string{primaryMath.ID}, ids)
	})

	t.Run("learning mode", func(t *testing.T) {
		ids := list(&models.ListAssignmentsRequest{LearningMode: "online"})
		assert.Equal(t, []string{chemistry.ID}, ids)
	})

	t.Run("min rate uses the rate ceiling", func(t *testing.T) {
		minRate := 40.0
		ids := list(&models.ListAssignmentsRequest{MinRate: &minRate})
		// Only the chemistry row has coalesce(rate_max, rate_min) >= 40;
		// rows with no rate at all are excluded by the comparison.
		assert.Equal(t, []string{chemistry.ID}, ids)
		assert.NotContains(t, ids, lowRate.ID)
	})

	t.Run("region keyword location", func(t *testing.T) {
		ids := list(&models.ListAssignmentsRequest{Location: "west"})
		assert.Equal(t, []string{primaryMath.ID}, ids)
	})

	t.Run("free text location", func(t *testing.T) {
		ids := list(&models.ListAssignmentsRequest{Location: "Jurong"})
		assert.Equal(t, []string{primaryMath.ID}, ids)
	})

	t.Run("hide duplicates", func(t *testing.T) {
		require.NoError(t, client.Assignment.UpdateOneID(lowRate.ID).
			SetIsPrimaryInGroup(false).
			Exec(ctx))
		hide := false
		ids := list(&models.ListAssignmentsRequest{ShowDuplicates: &hide})
		assert.NotContains(t, ids, lowRate.ID)
		assert.Len(t, ids, 3)
	})

	t.Run("closed rows never listed", func(t *testing.T) {
		require.NoError(t, NewAssignmentService(client.Client).
			SetStatus(ctx, secondary.ID, assignment.StatusClosed))
		ids := list(&models.ListAssignmentsRequest{})
		assert.NotContains(t, ids, secondary.ID)
	})
}

func TestListingService_DistanceSort(t *testing.T) {
	_, listing, assignments := setupListingService(t)
	ctx := context.Background()

	// Origin: Tampines. Near row at the origin, far row across the island,
	// one row without coordinates.
	setCoords := func(lat, lon float64) func(*models.UpsertAssignmentInput) {
		return func(in *models.UpsertAssignmentInput) {
			in.PostalLat, in.PostalLon = &lat, &lon
		}
	}
	near := seedAssignment(t, assignments, "agencyA-near", time.Hour, setCoords(1.3521, 103.9448))
	far := seedAssignment(t, assignments, "agencyA-far", 2*time.Hour, setCoords(1.3404, 103.7090))
	noCoords := seedAssignment(t, assignments, "agencyA-none", 3*time.Hour, nil)

	originLat, originLon := 1.3521, 103.9448
	page, err := listing.ListOpen(ctx, &models.ListAssignmentsRequest{
		Sort:    models.SortDistance,
		NearLat: &originLat,
		NearLon: &originLon,
	})
	require.NoError(t, err)
	require.Len(t, page.Items, 3)

	assert.Equal(t, near.ID, page.Items[0].ID)
	assert.Equal(t, far.ID, page.Items[1].ID)
	assert.Equal(t, noCoords.ID, page.Items[2].ID)

	require.NotNil(t, page.Items[0].DistanceKm)
	assert.InDelta(t, 0, *page.Items[0].DistanceKm, 0.1)
	require.NotNil(t, page.Items[1].DistanceKm)
	assert.InDelta(t, 26, *page.Items[1].DistanceKm, 5)
	assert.Nil(t, page.Items[2].DistanceKm, "rows without coordinates sort last with no distance")

	// Distance sort without an origin is rejected.
	_, err = listing.ListOpen(ctx, &models.ListAssignmentsRequest{Sort: models.SortDistance})
	assert.True(t, IsValidationError(err))
}

func TestListingService_CursorValidation(t *testing.T) {
	_, listing, assignments := setupListingService(t)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		seedAssignment(t, assignments, fmt.Sprintf("agencyA-m%d", i), time.Duration(i)*time.Hour, nil)
	}

	_, err := listing.ListOpen(ctx, &models.ListAssignmentsRequest{Cursor: "not-base64!"})
	assert.True(t, IsValidationError(err))

	page, err := listing.ListOpen(ctx, &models.ListAssignmentsRequest{Limit: 1})
	require.NoError(t, err)
	require.NotNil(t, page.NextCursor)

	// A cursor minted under one sort mode cannot resume another.
	originLat, originLon := 1.3521, 103.9448
	_, err = listing.ListOpen(ctx, &models.ListAssignmentsRequest{
		Sort:    models.SortDistance,
		NearLat: &originLat,
		NearLon: &originLon,
		Cursor:  *page.NextCursor,
	})
	assert.True(t, IsValidationError(err))
}

func TestListingService_Facets(t *testing.T) {
	_, listing, assignments := setupListingService(t)
	ctx := context.Background()

	seedAssignment(t, assignments, "agencyA-m1", time.Hour, func(in *models.UpsertAssignmentInput) {
		in.Region = "East"
	})
	seedAssignment(t, assignments, "agencyA-m2", 2*time.Hour, func(in *models.UpsertAssignmentInput) {
		in.Region = "East"
		in.SignalsLevels = []string{"Secondary", "IP"}
	})
	seedAssignment(t, assignments, "agencyB-m1", 3*time.Hour, func(in *models.UpsertAssignmentInput) {
		in.AgencyID = "agencyB"
		in.Region = "West"
		in.SignalsSubjects = []string{"Chemistry"}
		in.SignalsLevels = []string{"JC"}
	})

	facets, err := listing.Facets(ctx, &models.ListAssignmentsRequest{})
	require.NoError(t, err)

	assert.Equal(t, map[string]int{"East": 2, "West": 1}, facets.Regions)
	assert.Equal(t, map[string]int{"agencyA": 2, "agencyB": 1}, facets.Agencies)
	assert.Equal(t, map[string]int{"Math": 2, "Chemistry": 1}, facets.Subjects)
	assert.Equal(t, map[string]int{"Secondary": 2, "IP": 1, "JC": 1}, facets.Levels)

	// Facets honor the listing filters.
	facets, err = listing.Facets(ctx, &models.ListAssignmentsRequest{Agency: "agencyB"})
	require.NoError(t, err)
	assert.Equal(t, map[string]int{"West": 1}, facets.Regions)
	assert.Equal(t, map[string]int{"Chemistry": 1}, facets.Subjects)
}
