package events

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTruncateIfNeededSmallPayloadUnchanged(t *testing.T) {
	payload := `{"type":"job.status","job_id":"j1","db_event_id":42}`
	out, err := truncateIfNeeded(payload)
	require.NoError(t, err)
	assert.Equal(t, payload, out)
}

func TestTruncateIfNeededLargePayloadKeepsRouting(t *testing.T) {
	big := map[string]any{
		"type":          "assignment.upserted",
		"assignment_id": "a-123",
		"db_event_id":   int64(7),
		"filler":        strings.Repeat("x", 9000),
	}
	bigJSON, err := json.Marshal(big)
	require.NoError(t, err)

	out, err := truncateIfNeeded(string(bigJSON))
	require.NoError(t, err)
	assert.Less(t, len(out), 7900)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, "assignment.upserted", envelope["type"])
	assert.Equal(t, "a-123", envelope["assignment_id"])
	assert.Equal(t, float64(7), envelope["db_event_id"])
	assert.Equal(t, true, envelope["truncated"])
	assert.NotContains(t, envelope, "filler")
}

func TestInjectDBEventID(t *testing.T) {
	payload := JobStatusPayload{
		Type:   EventTypeJobStatus,
		JobID:  "j1",
		Status: "pending",
	}
	payloadJSON, err := json.Marshal(payload)
	require.NoError(t, err)

	out, err := injectDBEventIDAndTruncate(payloadJSON, 99)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &m))
	assert.Equal(t, float64(99), m["db_event_id"])
	assert.Equal(t, "j1", m["job_id"])
}

func TestInjectDBEventIDRejectsNonJSON(t *testing.T) {
	_, err := injectDBEventIDAndTruncate([]byte("not json"), 1)
	assert.Error(t, err)
}

func TestBuildTruncatedPayloadJobRouting(t *testing.T) {
	out, err := buildTruncatedPayload([]byte(`{"type":"job.status","job_id":"j9","preview":"big"}`))
	require.NoError(t, err)

	var envelope map[string]any
	require.NoError(t, json.Unmarshal([]byte(out), &envelope))
	assert.Equal(t, "j9", envelope["job_id"])
	assert.NotContains(t, envelope, "assignment_id")
	assert.NotContains(t, envelope, "db_event_id")
}
