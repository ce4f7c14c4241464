// Package api is the HTTP surface: the tutor-facing listing queries and
// the operational endpoints (ingest, job triage, clicks, health).
package api

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/database"
	"github.com/tuitionlab/assignflow/pkg/geodata"
	"github.com/tuitionlab/assignflow/pkg/queue"
	"github.com/tuitionlab/assignflow/pkg/services"
)

// PoolReporter exposes worker pool health to the API.
type PoolReporter interface {
	Health() *queue.PoolHealth
}

// BreakerReporter exposes the LLM circuit breaker state.
type BreakerReporter interface {
	BreakerState() string
}

// ListenerReporter exposes the NOTIFY listener state.
type ListenerReporter interface {
	Running() bool
}

// ClickEditor reconciles a broadcast post after a click increment.
type ClickEditor interface {
	AfterClick(ctx context.Context, externalID string, clicks int64) error
}

// Dependencies carries everything the server routes to. Listing, raws,
// jobs, and clicks are required; the reporters and editor may be nil
// (the matching health checks and side-effects are skipped).
type Dependencies struct {
	DB      *database.Client
	Listing *services.ListingService
	Raws    *services.RawMessageService
	Jobs    *services.JobService
	Clicks  *services.ClickService
	Geo     *geodata.Dataset

	Pool     PoolReporter
	Breaker  BreakerReporter
	Listener ListenerReporter
	Editor   ClickEditor
}

// Server is the HTTP API server.
type Server struct {
	cfg      *config.APIConfig
	queueCfg *config.QueueConfig
	deps     Dependencies
	engine   *gin.Engine
	httpSrv  *http.Server
}

// NewServer creates the API server and registers all routes.
func NewServer(cfg *config.APIConfig, queueCfg *config.QueueConfig, deps Dependencies) *Server {
	if cfg == nil {
		panic("NewServer: cfg must not be nil")
	}
	if queueCfg == nil {
		panic("NewServer: queueCfg must not be nil")
	}
	if deps.DB == nil || deps.Listing == nil || deps.Raws == nil || deps.Jobs == nil || deps.Clicks == nil {
		panic("NewServer: db, listing, raws, jobs, and clicks are required")
	}
	if deps.Geo == nil {
		panic("NewServer: geo dataset is required")
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(requestID(), requestLogger(), recovery(), securityHeaders())

	s := &Server{
		cfg:      cfg,
		queueCfg: queueCfg,
		deps:     deps,
		engine:   engine,
	}
	s.registerRoutes()
	return s
}

// Engine exposes the router for tests.
func (s *Server) Engine() *gin.Engine {
	return s.engine
}

func (s *Server) registerRoutes() {
	v1 := s.engine.Group("/api/v1")

	v1.GET("/assignments", s.listAssignments)
	v1.GET("/assignments/facets", s.assignmentFacets)

	v1.POST("/ingest", s.ingest)
	v1.POST("/jobs/enqueue", s.enqueueJobs)
	v1.POST("/jobs/requeue-stale", s.requeueStale)
	v1.GET("/jobs/:id", s.getJob)

	v1.POST("/clicks/:external_id", s.recordClick)

	v1.GET("/health", s.health)
	v1.GET("/system/info", s.systemInfo)
}

// Start runs the HTTP server until the context is cancelled or the
// listener fails.
func (s *Server) Start(ctx context.Context) error {
	s.httpSrv = &http.Server{
		Addr:              s.cfg.ListenAddr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := s.httpSrv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
		return nil
	case err := <-errCh:
		return fmt.Errorf("http server failed: %w", err)
	}
}

// Shutdown drains in-flight requests.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpSrv == nil {
		return nil
	}
	return s.httpSrv.Shutdown(ctx)
}
