package api

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tuitionlab/assignflow/pkg/models"
)

const supervisorTokenHeader = "X-Supervisor-Token"

// enqueueJobs handles POST /api/v1/jobs/enqueue. Operator surface for
// (re)queueing extraction of already-stored raw messages, including
// force-reprocessing of jobs that finished ok.
func (s *Server) enqueueJobs(c *gin.Context) {
	var req models.EnqueueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errCodeValidation, "invalid request body: "+err.Error())
		return
	}
	if req.Channel == "" {
		respondError(c, http.StatusBadRequest, errCodeValidation, "channel is required")
		return
	}
	if len(req.MessageIDs) == 0 {
		respondError(c, http.StatusBadRequest, errCodeValidation, "message_ids must not be empty")
		return
	}
	if req.PipelineVersion == "" {
		req.PipelineVersion = s.queueCfg.PipelineVersion
	}

	result, err := s.deps.Jobs.Enqueue(c.Request.Context(), &req)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}

// requeueStaleRequest optionally overrides the configured staleness
// threshold. Zero means "flush every processing job right now".
type requeueStaleRequest struct {
	OlderThanSeconds *int `json:"older_than_seconds,omitempty"`
}

// requeueStale handles POST /api/v1/jobs/requeue-stale — the supervisor
// escape hatch for recovering abandoned processing jobs on demand, ahead
// of the periodic supervisor pass.
func (s *Server) requeueStale(c *gin.Context) {
	if !s.authorizeSupervisor(c) {
		return
	}

	var req requeueStaleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondError(c, http.StatusBadRequest, errCodeValidation, "invalid request body: "+err.Error())
		return
	}

	olderThan := s.queueCfg.StaleThreshold
	if req.OlderThanSeconds != nil {
		if *req.OlderThanSeconds < 0 {
			respondError(c, http.StatusBadRequest, errCodeValidation, "older_than_seconds must be non-negative")
			return
		}
		olderThan = time.Duration(*req.OlderThanSeconds) * time.Second
	}

	count, err := s.deps.Jobs.RequeueStale(c.Request.Context(), olderThan)
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"requeued": count})
}

// getJob handles GET /api/v1/jobs/:id — the triage surface. Failed jobs
// carry their error taxonomy and redacted raw preview in error_json.
func (s *Server) getJob(c *gin.Context) {
	job, err := s.deps.Jobs.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		mapServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, models.JobResponse{ExtractionJob: job})
}

// authorizeSupervisor enforces the supervisor token on operator-only
// endpoints. An empty configured token leaves the endpoint open
// (development mode).
func (s *Server) authorizeSupervisor(c *gin.Context) bool {
	if s.cfg.SupervisorToken == "" {
		return true
	}
	if c.GetHeader(supervisorTokenHeader) != s.cfg.SupervisorToken {
		respondError(c, http.StatusForbidden, errCodeForbidden, "supervisor token required")
		return false
	}
	return true
}
