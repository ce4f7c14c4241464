package delivery

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"golang.org/x/time/rate"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/deliveryrecord"
	"github.com/tuitionlab/assignflow/pkg/config"
	"github.com/tuitionlab/assignflow/pkg/events"
	"github.com/tuitionlab/assignflow/pkg/geodata"
	"github.com/tuitionlab/assignflow/pkg/models"
	"github.com/tuitionlab/assignflow/pkg/services"
)

const duplicateNote = "Also posted by other agencies."

// TutorDirectory lists the active subscription profiles.
type TutorDirectory interface {
	ListActive(ctx context.Context) ([]*ent.TutorProfile, error)
}

// RatingSource provides the adaptive per-tutor threshold and records
// the ratings that feed it.
type RatingSource interface {
	CalculateTutorRatingThreshold(ctx context.Context, tutorID string, percentile float64, window int64) (*float64, error)
	RecordRating(ctx context.Context, tutorID, assignmentID string, score float64, distanceKm *float64) error
}

// DeliveryLedger claims and upgrades per-(tutor, assignment) records.
type DeliveryLedger interface {
	Record(ctx context.Context, tutorID, assignmentID string, status deliveryrecord.Status, transportMessageID string) (bool, error)
	MarkSent(ctx context.Context, tutorID, assignmentID, transportMessageID string) error
}

// BroadcastStore persists the last-delivered broadcast state per
// external id.
type BroadcastStore interface {
	RecordBroadcast(ctx context.Context, externalID string, payload services.BroadcastPayload) error
	GetBroadcast(ctx context.Context, externalID string) (*ent.BroadcastRecord, error)
}

// Fanout delivers one upserted assignment to the broadcast channel and
// to matching tutors. It satisfies the pipeline's Deliverer contract.
type Fanout struct {
	cfg       *config.DeliveryConfig
	transport Transport
	tutors    TutorDirectory
	ratings   RatingSource
	ledger    DeliveryLedger
	store     BroadcastStore
	publisher *events.EventPublisher
	renderer  *Renderer

	mu         sync.Mutex
	dmLimiters map[string]*rate.Limiter
	bcLimiter  *rate.Limiter
}

// NewFanout creates a delivery fanout.
// publisher may be nil (events disabled).
func NewFanout(cfg *config.DeliveryConfig, transport Transport, tutors TutorDirectory, ratings RatingSource, ledger DeliveryLedger, store BroadcastStore, publisher *events.EventPublisher) *Fanout {
	if cfg == nil {
		panic("NewFanout: cfg must not be nil")
	}
	if transport == nil {
		panic("NewFanout: transport must not be nil")
	}
	if tutors == nil {
		panic("NewFanout: tutors must not be nil")
	}
	if ratings == nil {
		panic("NewFanout: ratings must not be nil")
	}
	if ledger == nil {
		panic("NewFanout: ledger must not be nil")
	}
	if store == nil {
		panic("NewFanout: store must not be nil")
	}
	return &Fanout{
		cfg:        cfg,
		transport:  transport,
		tutors:     tutors,
		ratings:    ratings,
		ledger:     ledger,
		store:      store,
		publisher:  publisher,
		renderer:   NewRenderer(cfg.ClickBuckets),
		dmLimiters: make(map[string]*rate.Limiter),
		bcLimiter:  rate.NewLimiter(rate.Limit(cfg.BroadcastRatePerMinute/60.0), cfg.BroadcastBurst),
	}
}

// Deliver fans one assignment out. Transport and matching failures are
// logged and counted; only a failure to enumerate tutors aborts the
// pass, since nothing was attempted yet.
func (f *Fanout) Deliver(ctx context.Context, a *ent.Assignment) error {
	if !f.cfg.Enabled {
		return nil
	}

	mode := f.effectiveMode()
	broadcasts := f.deliverBroadcast(ctx, a, mode)
	sent, skipped, err := f.deliverDMs(ctx, a)
	if err != nil {
		return err
	}

	f.publishSent(ctx, a, mode, broadcasts, sent, skipped)
	return nil
}

// effectiveMode applies backpressure: when the broadcast bucket is dry
// and every group member would normally be posted, fall back to primary
// posts with a duplicate note until the bucket refills.
func (f *Fanout) effectiveMode() config.DuplicateMode {
	mode := f.cfg.BroadcastDuplicateMode
	if mode == config.DuplicateModeAll && f.bcLimiter.Tokens() < 1 {
		slog.Warn("Broadcast limiter saturated, degrading duplicate mode",
			"configured_mode", mode, "effective_mode", config.DuplicateModePrimaryWithNote)
		return config.DuplicateModePrimaryWithNote
	}
	return mode
}

// deliverBroadcast posts the assignment to the broadcast channel and
// records the post for the edit-on-click loop. Returns the number of
// posts made (0 or 1).
func (f *Fanout) deliverBroadcast(ctx context.Context, a *ent.Assignment, mode config.DuplicateMode) int {
	if f.cfg.BroadcastChannel == "" {
		return 0
	}
	if !a.IsPrimaryInGroup && mode != config.DuplicateModeAll {
		return 0
	}

	note := ""
	if mode == config.DuplicateModePrimaryWithNote && a.DuplicateGroupID != nil {
		note = duplicateNote
	}

	sendCtx, cancel := context.WithTimeout(ctx, f.cfg.SendTimeout)
	defer cancel()

	if err := f.bcLimiter.Wait(sendCtx); err != nil {
		slog.Warn("Broadcast skipped, rate limiter saturated",
			"assignment_id", a.ID, "error_code", models.ErrDeliveryFailed)
		return 0
	}

	content := f.renderer.BroadcastBody(a, note)
	msgID, err := f.transport.Broadcast(sendCtx, f.cfg.BroadcastChannel, content, "")
	if err != nil {
		slog.Error("Broadcast delivery failed",
			"assignment_id", a.ID, "error_code", models.ErrDeliveryFailed, "error", err)
		return 0
	}

	// Stored without the click note so the editor composes from a clean
	// base when the bucket moves.
	if err := f.store.RecordBroadcast(ctx, a.ExternalID, services.BroadcastPayload{
		Content:            content,
		ChatID:             f.cfg.BroadcastChannel,
		TransportMessageID: msgID,
		ClickBucket:        0,
	}); err != nil {
		slog.Error("Failed to record broadcast",
			"external_id", a.ExternalID, "error", err)
	}
	return 1
}

// deliverDMs sends direct messages to every matching tutor. Returns
// (sent, skipped) counts; skipped covers dedup hits, threshold misses
// at the rate limiter, and transport errors.
func (f *Fanout) deliverDMs(ctx context.Context, a *ent.Assignment) (int, int, error) {
	if !a.IsPrimaryInGroup && f.cfg.DMSkipDuplicates {
		return 0, 0, nil
	}

	profiles, err := f.tutors.ListActive(ctx)
	if err != nil {
		return 0, 0, err
	}

	note := ""
	if a.DuplicateGroupID != nil {
		note = duplicateNote
	}

	sent, skipped := 0, 0
	for _, profile := range profiles {
		match := f.matchTutor(a, profile)
		if !match.ok {
			continue
		}
		if !f.passesThreshold(ctx, profile.TutorID, match.score) {
			skipped++
			continue
		}

		if !f.dmLimiter(profile.TutorID).Allow() {
			// Recorded so a repost does not re-attempt the pair.
			if _, err := f.ledger.Record(ctx, profile.TutorID, a.ID, deliveryrecord.StatusThrottled, ""); err != nil {
				slog.Error("Failed to record throttled delivery",
					"tutor_id", profile.TutorID, "assignment_id", a.ID, "error", err)
			}
			skipped++
			continue
		}

		// Claim the pair before sending; a constraint hit means another
		// pass (or replica) already owns it.
		claimed, err := f.ledger.Record(ctx, profile.TutorID, a.ID, deliveryrecord.StatusFailed, "")
		if err != nil {
			slog.Error("Failed to claim delivery record",
				"tutor_id", profile.TutorID, "assignment_id", a.ID, "error", err)
			skipped++
			continue
		}
		if !claimed {
			skipped++
			continue
		}

		if f.sendDM(ctx, a, profile, match, note) {
			sent++
		} else {
			skipped++
		}
	}
	return sent, skipped, nil
}

// sendDM delivers one direct message and upgrades the claimed record.
func (f *Fanout) sendDM(ctx context.Context, a *ent.Assignment, profile *ent.TutorProfile, match matchResult, note string) bool {
	sendCtx, cancel := context.WithTimeout(ctx, f.cfg.SendTimeout)
	defer cancel()

	content := f.renderer.DMBody(a, match.distanceKm, note)
	idempotencyKey := profile.TutorID + ":" + a.ID
	msgID, err := f.transport.SendDM(sendCtx, profile.TutorID, profile.DmChatID, content, idempotencyKey)
	if err != nil {
		slog.Error("DM delivery failed",
			"tutor_id", profile.TutorID, "assignment_id", a.ID,
			"error_code", models.ErrDeliveryFailed, "error", err)
		return false
	}

	if err := f.ledger.MarkSent(ctx, profile.TutorID, a.ID, msgID); err != nil {
		slog.Error("Failed to mark delivery sent",
			"tutor_id", profile.TutorID, "assignment_id", a.ID, "error", err)
	}
	if err := f.ratings.RecordRating(ctx, profile.TutorID, a.ID, match.score, match.distanceKm); err != nil {
		slog.Warn("Failed to record match rating",
			"tutor_id", profile.TutorID, "assignment_id", a.ID, "error", err)
	}
	return true
}

// passesThreshold checks the tutor's adaptive minimum match score. A
// tutor without rating history, or a threshold query failure, passes.
func (f *Fanout) passesThreshold(ctx context.Context, tutorID string, score float64) bool {
	threshold, err := f.ratings.CalculateTutorRatingThreshold(ctx, tutorID, f.cfg.RatingPercentile, int64(f.cfg.RatingWindow))
	if err != nil {
		slog.Warn("Rating threshold query failed, delivering anyway",
			"tutor_id", tutorID, "error", err)
		return true
	}
	if threshold == nil {
		return true
	}
	return score >= *threshold
}

// dmLimiter returns the per-tutor token bucket, creating it on first use.
func (f *Fanout) dmLimiter(tutorID string) *rate.Limiter {
	f.mu.Lock()
	defer f.mu.Unlock()
	limiter, ok := f.dmLimiters[tutorID]
	if !ok {
		limiter = rate.NewLimiter(rate.Limit(f.cfg.DMRatePerMinute/60.0), f.cfg.DMBurst)
		f.dmLimiters[tutorID] = limiter
	}
	return limiter
}

// publishSent emits the delivery.sent event. Non-blocking: errors are
// logged.
func (f *Fanout) publishSent(ctx context.Context, a *ent.Assignment, mode config.DuplicateMode, broadcasts, sent, skipped int) {
	if f.publisher == nil {
		return
	}
	if err := f.publisher.PublishDeliverySent(ctx, events.DeliverySentPayload{
		Type:          events.EventTypeDeliverySent,
		AssignmentID:  a.ID,
		Mode:          string(mode),
		Broadcasts:    broadcasts,
		DirectSent:    sent,
		DirectSkipped: skipped,
		Timestamp:     time.Now().Format(time.RFC3339Nano),
	}); err != nil {
		slog.Warn("Failed to publish delivery event",
			"assignment_id", a.ID, "error", err)
	}
}

// matchResult carries the outcome of matching one tutor against one
// assignment.
type matchResult struct {
	ok         bool
	score      float64
	distanceKm *float64
}

// matchTutor applies the subject, level, and radius gates, and scores
// the match in [50, 100]. Empty profile preference lists are wildcards.
func (f *Fanout) matchTutor(a *ent.Assignment, profile *ent.TutorProfile) matchResult {
	subjectRatio, subjectOK := overlapRatio(profile.Subjects, assignmentSubjects(a))
	if !subjectOK {
		return matchResult{}
	}
	levelRatio, levelOK := overlapRatio(profile.Levels, a.SignalsLevels)
	if !levelOK {
		return matchResult{}
	}

	maxDistance := f.cfg.DMMaxDistanceKmDefault
	if profile.MaxDistanceKm != nil {
		maxDistance = *profile.MaxDistanceKm
	}

	var distanceKm *float64
	proximity := 0.5
	if profile.Lat != nil && profile.Lon != nil && a.PostalLat != nil && a.PostalLon != nil {
		d := geodata.HaversineKm(*profile.Lat, *profile.Lon, *a.PostalLat, *a.PostalLon)
		if d > maxDistance {
			return matchResult{}
		}
		distanceKm = &d
		proximity = 1 - d/maxDistance
	}

	score := 50 + subjectRatio*25 + levelRatio*15 + proximity*10
	return matchResult{ok: true, score: score, distanceKm: distanceKm}
}

// assignmentSubjects is the union of every subject signal an assignment
// carries, canonical codes first.
func assignmentSubjects(a *ent.Assignment) []string {
	out := make([]string, 0, len(a.SubjectsCanonical)+len(a.SubjectsGeneral)+len(a.SignalsSubjects))
	out = append(out, a.SubjectsCanonical...)
	out = append(out, a.SubjectsGeneral...)
	out = append(out, a.SignalsSubjects...)
	return out
}

// overlapRatio returns the fraction of wanted values present in have,
// and whether the gate passes. An empty wanted list is a wildcard that
// passes at half credit.
func overlapRatio(wanted, have []string) (float64, bool) {
	if len(wanted) == 0 {
		return 0.5, true
	}
	haveSet := make(map[string]struct{}, len(have))
	for _, v := range have {
		haveSet[v] = struct{}{}
	}
	hits := 0
	for _, w := range wanted {
		if _, ok := haveSet[w]; ok {
			hits++
		}
	}
	if hits == 0 {
		return 0, false
	}
	return float64(hits) / float64(len(wanted)), true
}
