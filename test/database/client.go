package database

import (
	"context"
	"testing"

	"entgo.io/ent/dialect"
	entsql "entgo.io/ent/dialect/sql"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/pkg/database"
	"github.com/tuitionlab/assignflow/test/util"
)

// NewTestClient creates a test database client.
// In CI (when CI_DATABASE_URL is set): connects to external PostgreSQL service container.
// In local dev: spins up a testcontainer with PostgreSQL.
// The container/connection is automatically cleaned up when the test ends.
func NewTestClient(t *testing.T) *database.Client {
	ctx := context.Background()

	// Use shared test database setup
	entClient, db := util.SetupTestDatabase(t)

	// Re-wrap the pool for the migration helpers ent cannot express.
	drv := entsql.OpenDB(dialect.Postgres, db)

	require.NoError(t, database.CreateGINIndexes(ctx, drv))
	require.NoError(t, database.CreatePartialUniqueIndexes(ctx, drv))
	require.NoError(t, database.CreateStoreFunctions(ctx, drv))
	require.NoError(t, database.CreateEventsTable(ctx, drv))

	// Wrap in our client type
	// Note: cleanup (schema drop and connection close) is handled by SetupTestDatabase
	client := database.NewClientFromEnt(entClient, db)

	return client
}
