package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tuitionlab/assignflow/pkg/models"
)

// ingest handles POST /api/v1/ingest — the collector boundary. Stores
// the delivered raw messages (deduplicated on channel + message_id) and
// enqueues one extraction job per row in the same call. Re-delivery is
// safe: existing rows are left untouched and their jobs are not reset.
func (s *Server) ingest(c *gin.Context) {
	var req models.IngestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errCodeValidation, "invalid request body: "+err.Error())
		return
	}
	if req.Channel == "" {
		respondError(c, http.StatusBadRequest, errCodeValidation, "channel is required")
		return
	}
	if req.AgencyID == "" {
		respondError(c, http.StatusBadRequest, errCodeValidation, "agency_id is required")
		return
	}
	if len(req.Messages) == 0 {
		respondError(c, http.StatusBadRequest, errCodeValidation, "messages must not be empty")
		return
	}
	if req.PipelineVersion == "" {
		req.PipelineVersion = s.queueCfg.PipelineVersion
	}

	ctx := c.Request.Context()

	stored, existing, err := s.deps.Raws.StoreBatch(ctx, &req)
	if err != nil {
		mapServiceError(c, err)
		return
	}

	messageIDs := make([]string, len(req.Messages))
	for i, m := range req.Messages {
		messageIDs[i] = m.MessageID
	}
	enqueued, err := s.deps.Jobs.Enqueue(ctx, &models.EnqueueRequest{
		PipelineVersion: req.PipelineVersion,
		Channel:         req.Channel,
		MessageIDs:      messageIDs,
	})
	if err != nil {
		mapServiceError(c, err)
		return
	}

	c.JSON(http.StatusOK, models.IngestResult{
		Stored:   stored,
		Existing: existing,
		Enqueued: *enqueued,
	})
}
