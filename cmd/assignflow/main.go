// Assignflow aggregation server — ingests raw agency posts, runs the
// extraction worker pool, detects cross-agency duplicates, fans matched
// assignments out to tutors, and serves the public listing API.
package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/joho/godotenv"

	"github.com/tuitionlab/assignflow/pkg/api"
	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/database"
	"github.com/tuitionlab/assignflow/pkg/dedup"
	"github.com/tuitionlab/assignflow/pkg/delivery"
	"github.com/tuitionlab/assignflow/pkg/enrich"
	"github.com/tuitionlab/assignflow/pkg/events"
	"github.com/tuitionlab/assignflow/pkg/extract"
	"github.com/tuitionlab/assignflow/pkg/freshness"
	"github.com/tuitionlab/assignflow/pkg/geodata"
	"github.com/tuitionlab/assignflow/pkg/masking"
	"github.com/tuitionlab/assignflow/pkg/queue"
	"github.com/tuitionlab/assignflow/pkg/services"
)

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

// resolvePodID determines the pod identifier for multi-replica coordination.
// Priority: POD_ID env > HOSTNAME env > "local"
func resolvePodID() string {
	if id := os.Getenv("POD_ID"); id != "" {
		return id
	}
	if hostname := os.Getenv("HOSTNAME"); hostname != "" {
		return hostname
	}
	return "local"
}

func main() {
	configDir := flag.String("config-dir",
		getEnv("CONFIG_DIR", "./deploy/config"),
		"Path to configuration directory")
	geodataPath := flag.String("geodata",
		getEnv("GEODATA_PATH", ""),
		"Optional override path for the postal/MRT dataset")
	flag.Parse()

	// Load .env file from config directory
	envPath := filepath.Join(*configDir, ".env")
	if err := godotenv.Load(envPath); err != nil {
		slog.Warn("Could not load .env file, continuing with existing environment",
			"path", envPath, "error", err)
	} else {
		slog.Info("Loaded environment", "path", envPath)
	}

	podID := resolvePodID()
	slog.Info("Starting assignflow", "pod_id", podID, "config_dir", *configDir)

	ctx := context.Background()

	// 1. Configuration
	cfg, err := config.Initialize(ctx, *configDir)
	if err != nil {
		slog.Error("Failed to initialize configuration", "error", err)
		os.Exit(1)
	}

	// 2. Database (runs migrations)
	dbConfig, err := database.LoadConfigFromEnv()
	if err != nil {
		slog.Error("Failed to load database config", "error", err)
		os.Exit(1)
	}
	dbClient, err := database.NewClient(ctx, dbConfig)
	if err != nil {
		slog.Error("Failed to connect to database", "error", err)
		os.Exit(1)
	}
	defer func() {
		if err := dbClient.Close(); err != nil {
			slog.Error("Error closing database client", "error", err)
		}
	}()
	slog.Info("Connected to PostgreSQL database")

	// 3. Domain services
	rawService := services.NewRawMessageService(dbClient.Client)
	jobService := services.NewJobService(dbClient.Client)
	assignmentService := services.NewAssignmentService(dbClient.Client)
	listingService := services.NewListingService(dbClient.Client, dbClient.DB())
	clickService := services.NewClickService(dbClient.DB())
	ratingService := services.NewRatingService(dbClient.Client, dbClient.DB())
	tutorService := services.NewTutorProfileService(dbClient.Client)
	deliveryService := services.NewDeliveryService(dbClient.Client)
	tieringService := services.NewTieringService(dbClient.DB())
	maskingService := masking.NewService()
	slog.Info("Services initialized")

	// 4. One-time startup recovery: requeue jobs stranded by a crash
	if _, err := queue.RecoverStartupJobs(ctx, jobService, cfg.Queue.StaleThreshold); err != nil {
		slog.Error("Startup stale recovery failed", "error", err)
		// Non-fatal — the supervisor ticker retries
	}

	// 5. Geo dataset and enricher chain
	geoDataset, err := geodata.Load(*geodataPath)
	if err != nil {
		slog.Error("Failed to load geo dataset", "error", err)
		os.Exit(1)
	}
	enricher := enrich.NewEnricher(geoDataset)

	// 6. LLM extractor (circuit breaker inside)
	extractor, err := extract.NewExtractor(cfg.LLM, slog.With("component", "extractor"))
	if err != nil {
		slog.Error("Failed to initialize LLM extractor", "error", err)
		os.Exit(1)
	}
	slog.Info("LLM extractor initialized", "model", cfg.LLM.Model)

	// 7. Events: durable store, tx publisher, NOTIFY listener + dispatcher
	eventStore := events.NewStore(dbClient.DB())
	eventPublisher := events.NewEventPublisher(dbClient.DB())
	dispatcher := events.NewDispatcher(eventStore)

	notifyListener := events.NewNotifyListener(dbConfig.ConnString(), dispatcher)
	if err := notifyListener.Start(ctx); err != nil {
		slog.Error("Failed to start NOTIFY listener", "error", err)
		os.Exit(1)
	}
	defer notifyListener.Stop(ctx)
	dispatcher.SetListener(notifyListener)
	slog.Info("Event infrastructure initialized")

	// 8. Duplicate detector
	detector := dedup.NewDetector(dbClient.Client, cfg.Dedup, slog.With("component", "dedup"))

	// 9. Delivery fanout (optional: requires the bot gateway)
	var (
		deliverer   queue.Deliverer
		clickEditor api.ClickEditor
	)
	if cfg.Delivery.Enabled {
		// grpc.NewClient dials lazily; the first RPC connects.
		transport, err := delivery.NewGRPCTransport(cfg.Delivery.TransportAddr)
		if err != nil {
			slog.Error("Failed to initialize delivery transport",
				"addr", cfg.Delivery.TransportAddr, "error", err)
			os.Exit(1)
		}
		defer func() {
			if err := transport.Close(); err != nil {
				slog.Error("Error closing delivery transport", "error", err)
			}
		}()
		deliverer = delivery.NewFanout(cfg.Delivery, transport, tutorService,
			ratingService, deliveryService, assignmentService, eventPublisher)
		clickEditor = delivery.NewEditor(cfg.Delivery, transport, assignmentService, eventPublisher)
		slog.Info("Delivery fanout initialized", "addr", cfg.Delivery.TransportAddr)
	} else {
		slog.Info("Delivery disabled; assignments persist without fanout")
	}

	// 10. Extraction pipeline + worker pool
	executor := queue.NewExecutor(queue.ExecutorDeps{
		Raws:        rawService,
		Assignments: assignmentService,
		Extractor:   extractor,
		Enricher:    enricher,
		Masker:      maskingService,
		Detector:    detector,
		Deliverer:   deliverer,
		Publisher:   eventPublisher,
	})
	workerPool := queue.NewWorkerPool(podID, dbClient.Client, jobService, cfg.Queue, executor, eventPublisher)
	if err := workerPool.Start(ctx); err != nil {
		slog.Error("Failed to start worker pool", "error", err)
		os.Exit(1)
	}

	// 11. Freshness tiering + retention loop
	freshnessService := freshness.NewService(cfg.Freshness, cfg.Retention,
		tieringService, rawService, eventStore, eventPublisher)
	freshnessService.Start(ctx)

	// 12. HTTP server
	httpServer := api.NewServer(cfg.API, cfg.Queue, api.Dependencies{
		DB:       dbClient,
		Listing:  listingService,
		Raws:     rawService,
		Jobs:     jobService,
		Clicks:   clickService,
		Geo:      geoDataset,
		Pool:     workerPool,
		Breaker:  extractor,
		Listener: notifyListener,
		Editor:   clickEditor,
	})

	serverCtx, serverCancel := context.WithCancel(ctx)
	defer serverCancel()
	errCh := make(chan error, 1)
	go func() {
		slog.Info("HTTP server listening", "addr", cfg.API.ListenAddr)
		if err := httpServer.Start(serverCtx); err != nil {
			errCh <- err
		}
	}()

	slog.Info("Assignflow started successfully",
		"pod_id", podID,
		"workers", cfg.Queue.WorkerCount,
		"pipeline_version", cfg.Queue.PipelineVersion)

	// 13. Wait for shutdown signal or server error
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGTERM, syscall.SIGINT)

	select {
	case sig := <-sigCh:
		slog.Info("Shutdown signal received", "signal", sig)
	case err := <-errCh:
		slog.Error("Server error triggered shutdown", "error", err)
	}

	// 14. Graceful shutdown: stop claiming, drain in-flight jobs up to the
	// deadline; anything left is recovered by the next stale-requeue pass.
	shutdownCtx, shutdownCancel := context.WithTimeout(ctx, cfg.Queue.GracefulShutdownTimeout)
	defer shutdownCancel()

	freshnessService.Stop()

	done := make(chan struct{})
	go func() {
		workerPool.Stop()
		close(done)
	}()
	select {
	case <-done:
		slog.Info("Worker pool stopped gracefully")
	case <-shutdownCtx.Done():
		slog.Warn("Shutdown timeout exceeded — in-flight jobs will be stale-requeued")
	}

	httpShutdownCtx, httpCancel := context.WithTimeout(ctx, 5*time.Second)
	defer httpCancel()
	if err := httpServer.Shutdown(httpShutdownCtx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	}

	slog.Info("Shutdown complete")
}
