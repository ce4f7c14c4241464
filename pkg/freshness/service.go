// Package freshness runs the periodic maintenance loops: freshness tier
// recompute for open assignments, and data retention (expired raw
// messages, aged event rows).
package freshness

import (
	"context"
	"log/slog"
	"time"

	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/events"
	"github.com/tuitionlab/assignflow/pkg/services"
)

// Service owns the tiering and retention tickers. All passes are
// idempotent and safe to run from multiple pods.
type Service struct {
	freshCfg  *config.FreshnessConfig
	retainCfg *config.RetentionConfig
	tiering   *services.TieringService
	raws      *services.RawMessageService
	store     *events.Store
	publisher *events.EventPublisher

	cancel context.CancelFunc
	done   chan struct{}
}

// NewService creates the freshness/retention service.
// publisher may be nil (events disabled).
func NewService(
	freshCfg *config.FreshnessConfig,
	retainCfg *config.RetentionConfig,
	tiering *services.TieringService,
	raws *services.RawMessageService,
	store *events.Store,
	publisher *events.EventPublisher,
) *Service {
	if freshCfg == nil {
		panic("NewService: freshCfg must not be nil")
	}
	if retainCfg == nil {
		panic("NewService: retainCfg must not be nil")
	}
	if tiering == nil {
		panic("NewService: tiering must not be nil")
	}
	if raws == nil {
		panic("NewService: raws must not be nil")
	}
	if store == nil {
		panic("NewService: store must not be nil")
	}
	return &Service{
		freshCfg:  freshCfg,
		retainCfg: retainCfg,
		tiering:   tiering,
		raws:      raws,
		store:     store,
		publisher: publisher,
	}
}

// Start launches the background loop.
func (s *Service) Start(ctx context.Context) {
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})

	go s.run(ctx)

	slog.Info("Freshness service started",
		"tier_interval", s.freshCfg.Interval,
		"retention_interval", s.retainCfg.CleanupInterval,
		"raw_retention_days", s.retainCfg.RawRetentionDays,
		"event_ttl", s.retainCfg.EventTTL)
}

// Stop signals the loop to exit and waits for it to finish.
func (s *Service) Stop() {
	if s.cancel == nil {
		return
	}
	s.cancel()
	<-s.done
	slog.Info("Freshness service stopped")
}

func (s *Service) run(ctx context.Context) {
	defer close(s.done)

	s.retierPass(ctx)
	s.retentionPass(ctx)

	tierTicker := time.NewTicker(s.freshCfg.Interval)
	defer tierTicker.Stop()
	retainTicker := time.NewTicker(s.retainCfg.CleanupInterval)
	defer retainTicker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-tierTicker.C:
			s.retierPass(ctx)
		case <-retainTicker.C:
			s.retentionPass(ctx)
		}
	}
}

// retierPass recomputes tiers for open assignments and publishes one
// event when anything moved.
func (s *Service) retierPass(ctx context.Context) {
	moved, err := s.tiering.RetierOpen(ctx, services.TierCutoffs{
		Green:  s.freshCfg.GreenMaxAge,
		Yellow: s.freshCfg.YellowMaxAge,
		Orange: s.freshCfg.OrangeMaxAge,
	}, s.freshCfg.BatchSize)
	if err != nil {
		slog.Error("Freshness retier failed", "error", err)
		return
	}

	changed := 0
	for _, n := range moved {
		changed += n
	}
	if changed == 0 {
		return
	}

	slog.Info("Freshness tiers recomputed", "changed", changed, "by_tier", moved)
	s.publishRetiered(ctx, changed, moved)
}

// retentionPass prunes expired raw messages and aged event rows.
func (s *Service) retentionPass(ctx context.Context) {
	rawCount, err := s.raws.SoftDeleteExpired(ctx, s.retainCfg.RawRetentionDays)
	if err != nil {
		slog.Error("Retention: raw message cleanup failed", "error", err)
	} else if rawCount > 0 {
		slog.Info("Retention: soft-deleted expired raw messages", "count", rawCount)
	}

	eventCount, err := s.store.PruneBefore(ctx, time.Now().Add(-s.retainCfg.EventTTL))
	if err != nil {
		slog.Error("Retention: event cleanup failed", "error", err)
	} else if eventCount > 0 {
		slog.Info("Retention: pruned aged events", "count", eventCount)
	}
}

// publishRetiered emits the freshness.retiered event. Non-blocking:
// errors are logged.
func (s *Service) publishRetiered(ctx context.Context, changed int, byTier map[string]int) {
	if s.publisher == nil {
		return
	}
	if err := s.publisher.PublishFreshnessRetiered(ctx, events.FreshnessRetieredPayload{
		Type:      events.EventTypeFreshnessRetiered,
		Changed:   changed,
		ByTier:    byTier,
		Timestamp: time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish freshness event", "error", err)
	}
}
