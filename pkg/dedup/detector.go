package dedup

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/ent/duplicategroup"
	"github.com/tuitionlab/assignflow/pkg/config"
)

// Detector finds cross-agency duplicates for freshly upserted assignments
// and maintains duplicate groups. Detection failures never block the
// upsert; the caller logs and proceeds.
type Detector struct {
	client *ent.Client
	cfg    *config.DedupConfig
	logger *slog.Logger
}

// NewDetector creates a detector.
func NewDetector(client *ent.Client, cfg *config.DedupConfig, logger *slog.Logger) *Detector {
	if client == nil {
		panic("NewDetector: client must not be nil")
	}
	if cfg == nil {
		cfg = config.DefaultDedupConfig()
	}
	return &Detector{
		client: client,
		cfg:    cfg,
		logger: logger.With("component", "dedup"),
	}
}

// match is one scored candidate at or above the linking threshold.
type match struct {
	candidate *ent.Assignment
	score     Score
}

// Detect scores a against recent open assignments from other agencies and
// links it into a duplicate group when any candidate reaches the medium
// threshold. Returns the group id, or nil when nothing linked.
func (d *Detector) Detect(ctx context.Context, a *ent.Assignment) (*string, error) {
	candidates, err := d.candidates(ctx, a)
	if err != nil {
		return nil, fmt.Errorf("failed to query dedup candidates: %w", err)
	}

	var matches []match
	for _, c := range candidates {
		score := scorePair(a, c, d.cfg)
		tier := confidence(score.Total, d.cfg)
		if tier == ConfidenceLow {
			d.logger.DebugContext(ctx, "Weak duplicate match, not linking",
				"assignment_id", a.ID, "candidate_id", c.ID, "score", score.Total)
		}
		if tier == ConfidenceMedium || tier == ConfidenceHigh {
			matches = append(matches, match{candidate: c, score: score})
		}
	}
	if len(matches) == 0 {
		return nil, nil
	}

	groupID, err := d.link(ctx, a, matches)
	if err != nil {
		return nil, err
	}
	return &groupID, nil
}

// candidates returns open assignments from other agencies published within
// the configured window, newest first. Rows without a publish timestamp
// sort last so they cannot crowd out published rows in a bounded batch.
func (d *Detector) candidates(ctx context.Context, a *ent.Assignment) ([]*ent.Assignment, error) {
	anchor := anchorTime(a)
	window := time.Duration(d.cfg.TimeWindowDays) * 24 * time.Hour

	return d.client.Assignment.Query().
		Where(
			assignment.IDNEQ(a.ID),
			assignment.StatusEQ(assignment.StatusOpen),
			assignment.AgencyIDNEQ(a.AgencyID),
			assignment.Or(
				assignment.PublishedAtGTE(anchor.Add(-window)),
				assignment.And(
					assignment.PublishedAtIsNil(),
					assignment.CreatedAtGTE(anchor.Add(-window)),
				),
			),
		).
		Order(assignment.ByPublishedAt(sql.OrderDesc(), sql.OrderNullsLast())).
		Limit(d.cfg.BatchSize).
		All(ctx)
}

// link applies the group transition for a and its matches in one
// transaction. Groups are locked in deterministic id order so concurrent
// linkers cannot deadlock.
func (d *Detector) link(ctx context.Context, a *ent.Assignment, matches []match) (string, error) {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// Re-read matched rows inside the tx; their group membership may have
	// moved since scoring.
	ids := make([]string, 0, len(matches)+1)
	ids = append(ids, a.ID)
	for _, m := range matches {
		ids = append(ids, m.candidate.ID)
	}
	sort.Strings(ids)

	members, err := tx.Assignment.Query().
		Where(assignment.IDIn(ids...)).
		Order(ent.Asc(assignment.FieldID)).
		ForUpdate().
		All(ctx)
	if err != nil {
		return "", fmt.Errorf("failed to lock assignments: %w", err)
	}

	groupIDs := distinctGroupIDs(members)
	groups, err := lockGroups(ctx, tx, groupIDs)
	if err != nil {
		return "", err
	}

	var target *ent.DuplicateGroup
	switch len(groups) {
	case 0:
		target, err = d.createGroup(ctx, tx, members, matches)
	case 1:
		target, err = d.joinGroup(ctx, tx, groups[0], members, matches)
	default:
		target, err = d.mergeGroups(ctx, tx, groups, members, matches)
	}
	if err != nil {
		return "", err
	}

	// The triggering assignment's own confidence is the mean over its
	// matches; candidates carry their pairwise score.
	if err := tx.Assignment.UpdateOneID(a.ID).
		SetDuplicateConfidenceScore(meanScore(matches)).
		Exec(ctx); err != nil {
		return "", fmt.Errorf("failed to record confidence score: %w", err)
	}

	if err := recomputePrimary(ctx, tx, target.ID); err != nil {
		return "", err
	}
	if err := tx.Commit(); err != nil {
		return "", fmt.Errorf("failed to commit duplicate link: %w", err)
	}
	return target.ID, nil
}

func (d *Detector) createGroup(ctx context.Context, tx *ent.Tx, members []*ent.Assignment, matches []match) (*ent.DuplicateGroup, error) {
	group, err := tx.DuplicateGroup.Create().
		SetID(uuid.New().String()).
		SetMemberCount(len(members)).
		SetAvgConfidenceScore(meanScore(matches)).
		SetDetectionAlgorithmVersion(d.cfg.AlgorithmVersion).
		SetMeta(map[string]interface{}{"scores": scoreMap(matches)}).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create duplicate group: %w", err)
	}
	if err := assignMembers(ctx, tx, group.ID, memberIDs(members), matches); err != nil {
		return nil, err
	}
	return group, nil
}

func (d *Detector) joinGroup(ctx context.Context, tx *ent.Tx, group *ent.DuplicateGroup, members []*ent.Assignment, matches []match) (*ent.DuplicateGroup, error) {
	joining := ungroupedIDs(members)
	if len(joining) == 0 {
		return group, nil
	}

	newCount := group.MemberCount + len(joining)
	newAvg := rollingAverage(group.AvgConfidenceScore, group.MemberCount, meanScore(matches), len(joining))

	meta := cloneMeta(group.Meta)
	mergeScores(meta, matches)

	group, err := group.Update().
		SetMemberCount(newCount).
		SetAvgConfidenceScore(newAvg).
		SetMeta(meta).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update duplicate group: %w", err)
	}
	if err := assignMembers(ctx, tx, group.ID, joining, matches); err != nil {
		return nil, err
	}
	return group, nil
}

// mergeGroups collapses transitively linked groups into the earliest
// created one and absorbs any ungrouped members.
func (d *Detector) mergeGroups(ctx context.Context, tx *ent.Tx, groups []*ent.DuplicateGroup, members []*ent.Assignment, matches []match) (*ent.DuplicateGroup, error) {
	target := groups[0]
	for _, g := range groups[1:] {
		if g.CreatedAt.Before(target.CreatedAt) ||
			(g.CreatedAt.Equal(target.CreatedAt) && g.ID < target.ID) {
			target = g
		}
	}

	absorbed := make([]string, 0, len(groups)-1)
	for _, g := range groups {
		if g.ID == target.ID {
			continue
		}
		absorbed = append(absorbed, g.ID)
		// Reassign the losing group's members wholesale.
		if err := tx.Assignment.Update().
			Where(assignment.DuplicateGroupID(g.ID)).
			SetDuplicateGroupID(target.ID).
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to reassign group members: %w", err)
		}
		if err := tx.DuplicateGroup.UpdateOneID(g.ID).
			SetStatus(duplicategroup.StatusResolved).
			ClearPrimaryAssignmentID().
			Exec(ctx); err != nil {
			return nil, fmt.Errorf("failed to resolve merged group: %w", err)
		}
	}

	if err := assignMembers(ctx, tx, target.ID, ungroupedIDs(members), matches); err != nil {
		return nil, err
	}

	count, err := tx.Assignment.Query().
		Where(assignment.DuplicateGroupID(target.ID)).
		Count(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to count group members: %w", err)
	}

	meta := cloneMeta(target.Meta)
	mergeScores(meta, matches)
	history, _ := meta["merged_from"].([]interface{})
	for _, id := range absorbed {
		history = append(history, id)
	}
	meta["merged_from"] = history

	target, err = target.Update().
		SetMemberCount(count).
		SetAvgConfidenceScore(rollingAverage(target.AvgConfidenceScore, count-1, meanScore(matches), 1)).
		SetMeta(meta).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to update merge target: %w", err)
	}
	return target, nil
}

// PromoteNext elects a new primary after the current one closed. Groups
// left with fewer than two open members are resolved.
func (d *Detector) PromoteNext(ctx context.Context, groupID string) error {
	tx, err := d.client.Tx(ctx)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := lockGroups(ctx, tx, []string{groupID}); err != nil {
		return err
	}

	open, err := tx.Assignment.Query().
		Where(
			assignment.DuplicateGroupID(groupID),
			assignment.StatusEQ(assignment.StatusOpen),
		).
		Count(ctx)
	if err != nil {
		return fmt.Errorf("failed to count open members: %w", err)
	}
	if open < 2 {
		if err := tx.DuplicateGroup.UpdateOneID(groupID).
			SetStatus(duplicategroup.StatusResolved).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to resolve duplicate group: %w", err)
		}
	}
	if err := recomputePrimary(ctx, tx, groupID); err != nil {
		return err
	}
	return tx.Commit()
}

// recomputePrimary enforces at-most-one primary per group: demote all,
// then promote the earliest-published open member (tie: id asc). The
// demote-then-promote order keeps the partial unique index satisfied at
// every statement boundary.
func recomputePrimary(ctx context.Context, tx *ent.Tx, groupID string) error {
	if err := tx.Assignment.Update().
		Where(assignment.DuplicateGroupID(groupID)).
		SetIsPrimaryInGroup(false).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to demote group members: %w", err)
	}

	members, err := tx.Assignment.Query().
		Where(
			assignment.DuplicateGroupID(groupID),
			assignment.StatusEQ(assignment.StatusOpen),
		).
		All(ctx)
	if err != nil {
		return fmt.Errorf("failed to query group members: %w", err)
	}
	if len(members) == 0 {
		if err := tx.DuplicateGroup.UpdateOneID(groupID).
			ClearPrimaryAssignmentID().
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to clear group primary: %w", err)
		}
		return nil
	}

	primary := members[0]
	for _, m := range members[1:] {
		if earlierMember(m, primary) {
			primary = m
		}
	}

	if err := tx.Assignment.UpdateOneID(primary.ID).
		SetIsPrimaryInGroup(true).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to promote primary: %w", err)
	}
	if err := tx.DuplicateGroup.UpdateOneID(groupID).
		SetPrimaryAssignmentID(primary.ID).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to record group primary: %w", err)
	}
	return nil
}

// earlierMember reports whether a beats b for primary election: earlier
// effective publish time, tie broken by id ascending.
func earlierMember(a, b *ent.Assignment) bool {
	at := anchorTime(a)
	bt := anchorTime(b)
	if at.Equal(bt) {
		return a.ID < b.ID
	}
	return at.Before(bt)
}

func anchorTime(a *ent.Assignment) time.Time {
	if a.PublishedAt != nil {
		return *a.PublishedAt
	}
	return a.CreatedAt
}

func lockGroups(ctx context.Context, tx *ent.Tx, ids []string) ([]*ent.DuplicateGroup, error) {
	if len(ids) == 0 {
		return nil, nil
	}
	sort.Strings(ids)
	groups, err := tx.DuplicateGroup.Query().
		Where(duplicategroup.IDIn(ids...)).
		Order(ent.Asc(duplicategroup.FieldID)).
		ForUpdate().
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to lock duplicate groups: %w", err)
	}
	return groups, nil
}

func assignMembers(ctx context.Context, tx *ent.Tx, groupID string, ids []string, matches []match) error {
	scores := scoreMap(matches)
	for _, id := range ids {
		update := tx.Assignment.UpdateOneID(id).
			SetDuplicateGroupID(groupID)
		if s, ok := scores[id]; ok {
			update.SetDuplicateConfidenceScore(s)
		}
		if err := update.Exec(ctx); err != nil {
			return fmt.Errorf("failed to link assignment %s: %w", id, err)
		}
	}
	return nil
}

func distinctGroupIDs(members []*ent.Assignment) []string {
	seen := make(map[string]bool)
	var ids []string
	for _, m := range members {
		if m.DuplicateGroupID != nil && !seen[*m.DuplicateGroupID] {
			seen[*m.DuplicateGroupID] = true
			ids = append(ids, *m.DuplicateGroupID)
		}
	}
	return ids
}

func ungroupedIDs(members []*ent.Assignment) []string {
	var ids []string
	for _, m := range members {
		if m.DuplicateGroupID == nil {
			ids = append(ids, m.ID)
		}
	}
	return ids
}

func memberIDs(members []*ent.Assignment) []string {
	ids := make([]string, len(members))
	for i, m := range members {
		ids[i] = m.ID
	}
	return ids
}

func meanScore(matches []match) float64 {
	if len(matches) == 0 {
		return 0
	}
	sum := 0.0
	for _, m := range matches {
		sum += m.score.Total
	}
	return sum / float64(len(matches))
}

func rollingAverage(avg float64, count int, incoming float64, added int) float64 {
	if count+added == 0 {
		return 0
	}
	return (avg*float64(count) + incoming*float64(added)) / float64(count+added)
}

func scoreMap(matches []match) map[string]float64 {
	scores := make(map[string]float64, len(matches))
	for _, m := range matches {
		scores[m.candidate.ID] = m.score.Total
	}
	return scores
}

func mergeScores(meta map[string]interface{}, matches []match) {
	scores, _ := meta["scores"].(map[string]interface{})
	if scores == nil {
		scores = map[string]interface{}{}
	}
	for id, total := range scoreMap(matches) {
		scores[id] = total
	}
	meta["scores"] = scores
}

func cloneMeta(meta map[string]interface{}) map[string]interface{} {
	out := make(map[string]interface{}, len(meta)+2)
	for k, v := range meta {
		out[k] = v
	}
	return out
}
