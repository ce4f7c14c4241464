package database_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/pkg/database"
	testdb "github.com/tuitionlab/assignflow/test/database"
)

func TestLoadConfigFromEnv(t *testing.T) {
	t.Run("defaults", func(t *testing.T) {
		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)

		assert.Equal(t, "localhost", cfg.Host)
		assert.Equal(t, 5432, cfg.Port)
		assert.Equal(t, "assignflow", cfg.Database)
		assert.Equal(t, "disable", cfg.SSLMode)
		assert.Equal(t, 10, cfg.MaxOpenConns)
	})

	t.Run("env overrides", func(t *testing.T) {
		t.Setenv("DB_HOST", "db.internal")
		t.Setenv("DB_PORT", "5433")
		t.Setenv("DB_NAME", "assignflow_test")

		cfg, err := database.LoadConfigFromEnv()
		require.NoError(t, err)
		assert.Equal(t, "db.internal", cfg.Host)
		assert.Equal(t, 5433, cfg.Port)
		assert.Equal(t, "assignflow_test", cfg.Database)
	})

	t.Run("invalid port", func(t *testing.T) {
		t.Setenv("DB_PORT", "not-a-port")

		_, err := database.LoadConfigFromEnv()
		assert.ErrorContains(t, err, "DB_PORT")
	})
}

func TestConfigConnString(t *testing.T) {
	cfg := database.Config{
		Host:     "localhost",
		Port:     5432,
		User:     "assignflow",
		Password: "secret",
		Database: "assignflow",
		SSLMode:  "disable",
	}
	assert.Equal(t,
		"host=localhost port=5432 user=assignflow password=secret dbname=assignflow sslmode=disable",
		cfg.ConnString())
}

func TestHealth(t *testing.T) {
	client := testdb.NewTestClient(t)

	status, err := database.Health(context.Background(), client.DB())
	require.NoError(t, err)
	assert.Equal(t, "healthy", status.Status)
	assert.GreaterOrEqual(t, status.OpenConnections, 1)
}

func TestOnePrimaryPerGroupIndex(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	group, err := client.DuplicateGroup.Create().
		SetID(uuid.New().String()).
		SetDetectionAlgorithmVersion("v1").
		Save(ctx)
	require.NoError(t, err)

	createMember := func(primary bool) error {
		id := uuid.New().String()
		return client.Assignment.Create().
			SetID(id).
			SetExternalID(id).
			SetAgencyID("agencyA").
			SetAcademicDisplayText("Sec 3 E-Math").
			SetDuplicateGroupID(group.ID).
			SetIsPrimaryInGroup(primary).
			Exec(ctx)
	}

	require.NoError(t, createMember(true))
	require.NoError(t, createMember(false))

	// A second primary in the same group violates the partial unique index.
	err = createMember(true)
	require.Error(t, err)
	assert.True(t, ent.IsConstraintError(err))

	// Ungrouped rows are exempt: every standalone assignment is its own primary.
	id := uuid.New().String()
	err = client.Assignment.Create().
		SetID(id).
		SetExternalID(id).
		SetAgencyID("agencyA").
		SetAcademicDisplayText("P5 Science").
		SetIsPrimaryInGroup(true).
		Exec(ctx)
	assert.NoError(t, err)
}

func TestStoreFunctionsInstalled(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	for _, fn := range []string{
		"increment_assignment_clicks",
		"calculate_tutor_rating_threshold",
		"get_tutor_avg_rate",
	} {
		var exists bool
		err := client.DB().QueryRowContext(ctx,
			`SELECT EXISTS (SELECT 1 FROM pg_proc WHERE proname = $1)`, fn).Scan(&exists)
		require.NoError(t, err)
		assert.True(t, exists, "function %s must be installed", fn)
	}

	// Rating threshold with no history reads as NULL (no threshold).
	var threshold *float64
	err := client.DB().QueryRowContext(ctx,
		`SELECT calculate_tutor_rating_threshold('tutor-without-history')`).Scan(&threshold)
	require.NoError(t, err)
	assert.Nil(t, threshold)
}
