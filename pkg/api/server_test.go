package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/geodata"
	"github.com/tuitionlab/assignflow/pkg/models"
	"github.com/tuitionlab/assignflow/pkg/services"
	testdb "github.com/tuitionlab/assignflow/test/database"
)

func newTestServer(t *testing.T, mutate func(*config.APIConfig)) (*Server, *services.AssignmentService) {
	t.Helper()
	client := testdb.NewTestClient(t)

	geo, err := geodata.Load("")
	require.NoError(t, err)

	cfg := config.DefaultAPIConfig()
	if mutate != nil {
		mutate(cfg)
	}

	srv := NewServer(cfg, config.DefaultQueueConfig(), Dependencies{
		DB:      client,
		Listing: services.NewListingService(client.Client, client.DB()),
		Raws:    services.NewRawMessageService(client.Client),
		Jobs:    services.NewJobService(client.Client),
		Clicks:  services.NewClickService(client.DB()),
		Geo:     geo,
	})
	return srv, services.NewAssignmentService(client.Client)
}

func doJSON(t *testing.T, srv *Server, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	rec := httptest.NewRecorder()
	srv.Engine().ServeHTTP(rec, req)
	return rec
}

func decodeBody(t *testing.T, rec *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var out map[string]any
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &out), "body: %s", rec.Body.String())
	return out
}

func errorCode(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()
	body := decodeBody(t, rec)
	envelope, _ := body["error"].(map[string]any)
	require.NotNil(t, envelope, "expected an error envelope, got %s", rec.Body.String())
	code, _ := envelope["code"].(string)
	return code
}

func TestIngestEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	payload := models.IngestRequest{
		Channel:  "alpha-assignments",
		AgencyID: "agencyA",
		Messages: []models.IngestMessage{
			{MessageID: "100", Text: "Sec 3 Math @ Tampines, $40/hr", PublishedAt: time.Now().UTC()},
		},
	}

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/ingest", payload)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["stored"])
	enqueued, _ := body["enqueued"].(map[string]any)
	require.NotNil(t, enqueued)
	assert.Equal(t, float64(1), enqueued["created"])

	// Re-delivery: the raw row is untouched, the pending job is reset.
	rec = doJSON(t, srv, http.MethodPost, "/api/v1/ingest", payload)
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, float64(0), body["stored"])
	assert.Equal(t, float64(1), body["existing"])

	t.Run("missing channel", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/ingest", models.IngestRequest{
			AgencyID: "agencyA",
			Messages: payload.Messages,
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_failed", errorCode(t, rec))
	})

	t.Run("empty messages", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodPost, "/api/v1/ingest", models.IngestRequest{
			Channel:  "alpha-assignments",
			AgencyID: "agencyA",
		})
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})
}

func TestListAssignmentsEndpoint(t *testing.T) {
	srv, assignments := newTestServer(t, nil)
	ctx := context.Background()

	for i := 0; i < 3; i++ {
		published := time.Now().Add(-time.Duration(i) * time.Hour)
		_, err := assignments.UpsertAssignment(ctx, &models.UpsertAssignmentInput{
			ExternalID:          fmt.Sprintf("agencyA-m%d", i),
			AgencyID:            "agencyA",
			AcademicDisplayText: "Sec 3 E-Math @ Tampines",
			SignalsLevels:       []string{"Secondary"},
			PublishedAt:         &published,
		})
		require.NoError(t, err)
	}

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/assignments", nil)
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, float64(3), body["total_count"])
	items, _ := body["items"].([]any)
	assert.Len(t, items, 3)

	t.Run("limit clamped not rejected", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/assignments?limit=9999", nil)
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("bad limit", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/assignments?limit=zero", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Equal(t, "validation_failed", errorCode(t, rec))
	})

	t.Run("distance sort requires near", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/assignments?sort=distance", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("near accepts a postal code", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/assignments?sort=distance&near=520123", nil)
		assert.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	})

	t.Run("near rejects garbage", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/assignments?sort=distance&near=nowhere", nil)
		assert.Equal(t, http.StatusBadRequest, rec.Code)
	})

	t.Run("facets", func(t *testing.T) {
		rec := doJSON(t, srv, http.MethodGet, "/api/v1/assignments/facets", nil)
		require.Equal(t, http.StatusOK, rec.Code)
		body := decodeBody(t, rec)
		agencies, _ := body["agencies"].(map[string]any)
		assert.Equal(t, float64(3), agencies["agencyA"])
	})
}

func TestGetJobEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodGet, "/api/v1/jobs/does-not-exist", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "not_found", errorCode(t, rec))
}

func TestClickEndpoint(t *testing.T) {
	srv, _ := newTestServer(t, nil)

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/clicks/agencyA-m1", map[string]any{})
	require.Equal(t, http.StatusOK, rec.Code, rec.Body.String())
	body := decodeBody(t, rec)
	assert.Equal(t, float64(1), body["clicks"])

	rec = doJSON(t, srv, http.MethodPost, "/api/v1/clicks/agencyA-m1", map[string]any{"delta": 5})
	require.Equal(t, http.StatusOK, rec.Code)
	body = decodeBody(t, rec)
	assert.Equal(t, float64(6), body["clicks"])
}

func TestRequeueStaleSupervisorToken(t *testing.T) {
	srv, _ := newTestServer(t, func(cfg *config.APIConfig) {
		cfg.SupervisorToken = "op-secret"
	})

	rec := doJSON(t, srv, http.MethodPost, "/api/v1/jobs/requeue-stale", map[string]any{})
	assert.Equal(t, http.StatusForbidden, rec.Code)
	assert.Equal(t, "forbidden", errorCode(t, rec))

	var buf bytes.Buffer
	require.NoError(t, json.NewEncoder(&buf).Encode(map[string]any{"older_than_seconds": 0}))
	req := httptest.NewRequest(http.MethodPost, "/api/v1/jobs/requeue-stale", &buf)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set(supervisorTokenHeader, "op-secret")
	w := httptest.NewRecorder()
	srv.Engine().ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	body := decodeBody(t, w)
	assert.Equal(t, float64(0), body["requeued"])
}
