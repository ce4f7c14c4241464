package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	testdb "github.com/tuitionlab/assignflow/test/database"
)

func TestClickService_IncrementClicks(t *testing.T) {
	client := testdb.NewTestClient(t)
	clicks := NewClickService(client.DB())
	ctx := context.Background()

	// First click creates the counter row.
	count, err := clicks.IncrementClicks(ctx, "agencyA-m1", "https://t.me/agencyA/100", 1)
	require.NoError(t, err)
	assert.Equal(t, int64(1), count)

	count, err = clicks.IncrementClicks(ctx, "agencyA-m1", "", 5)
	require.NoError(t, err)
	assert.Equal(t, int64(6), count)

	// Zero delta reads the counter without moving it.
	count, err = clicks.IncrementClicks(ctx, "agencyA-m1", "", 0)
	require.NoError(t, err)
	assert.Equal(t, int64(6), count)

	// Negative deltas clamp to zero: the counter is monotone.
	count, err = clicks.IncrementClicks(ctx, "agencyA-m1", "", -100)
	require.NoError(t, err)
	assert.Equal(t, int64(6), count)

	// Counters are isolated per external id.
	count, err = clicks.IncrementClicks(ctx, "agencyB-m7", "", 2)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)

	_, err = clicks.IncrementClicks(ctx, "", "", 1)
	assert.True(t, IsValidationError(err))
}
