package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tuitionlab/assignflow/pkg/database"
	"github.com/tuitionlab/assignflow/pkg/version"
)

const (
	healthStatusHealthy   = "healthy"
	healthStatusDegraded  = "degraded"
	healthStatusUnhealthy = "unhealthy"
)

// HealthCheck is one component's health line.
type HealthCheck struct {
	Status  string `json:"status"`
	Message string `json:"message,omitempty"`
}

// HealthResponse is returned by GET /api/v1/health.
type HealthResponse struct {
	Status  string                 `json:"status"`
	Version string                 `json:"version"`
	Checks  map[string]HealthCheck `json:"checks"`
}

// health handles GET /api/v1/health. Only assignflow's own components
// are checked (database, worker pool, breaker, listener); the upstream
// LLM and delivery gateway are excluded so an external outage cannot
// make the orchestrator restart a healthy replica.
func (s *Server) health(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c.Request.Context(), 5*time.Second)
	defer cancel()

	checks := make(map[string]HealthCheck)
	status := healthStatusHealthy

	if _, err := database.Health(reqCtx, s.deps.DB.DB()); err != nil {
		status = healthStatusUnhealthy
		checks["database"] = HealthCheck{Status: healthStatusUnhealthy, Message: err.Error()}
	} else {
		checks["database"] = HealthCheck{Status: healthStatusHealthy}
	}

	if s.deps.Pool != nil {
		poolHealth := s.deps.Pool.Health()
		if poolHealth != nil && !poolHealth.IsHealthy {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			msg := healthStatusUnhealthy
			if poolHealth.DBError != "" {
				msg = poolHealth.DBError
			}
			checks["worker_pool"] = HealthCheck{Status: healthStatusDegraded, Message: msg}
		} else {
			checks["worker_pool"] = HealthCheck{Status: healthStatusHealthy}
		}
	}

	if s.deps.Breaker != nil {
		state := s.deps.Breaker.BreakerState()
		check := HealthCheck{Status: healthStatusHealthy, Message: state}
		if state == "open" {
			// Open breaker is degraded, not unhealthy: jobs requeue with
			// backoff and recover once the upstream does.
			check.Status = healthStatusDegraded
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
		}
		checks["llm_breaker"] = check
	}

	if s.deps.Listener != nil {
		if s.deps.Listener.Running() {
			checks["event_listener"] = HealthCheck{Status: healthStatusHealthy}
		} else {
			if status == healthStatusHealthy {
				status = healthStatusDegraded
			}
			checks["event_listener"] = HealthCheck{Status: healthStatusDegraded, Message: "listener not running"}
		}
	}

	httpStatus := http.StatusOK
	if status == healthStatusUnhealthy {
		httpStatus = http.StatusServiceUnavailable
	}

	c.JSON(httpStatus, &HealthResponse{
		Status:  status,
		Version: version.GitCommit,
		Checks:  checks,
	})
}

// systemInfo handles GET /api/v1/system/info.
func (s *Server) systemInfo(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"app":              version.AppName,
		"version":          version.GitCommit,
		"pipeline_version": s.queueCfg.PipelineVersion,
	})
}
