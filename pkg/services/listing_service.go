package services

import (
	"context"
	"database/sql"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"github.com/tuitionlab/assignflow/ent"
	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/pkg/models"
)

const (
	defaultPageLimit = 50
	maxPageLimit     = 200
)

// regionKeywords map location shorthand onto the stored region values.
var regionKeywords = map[string]string{
	"north":      "North",
	"south":      "South",
	"east":       "East",
	"west":       "West",
	"central":    "Central",
	"north-east": "North-East",
	"northeast":  "North-East",
}

// ListingService answers the read-side listing and facet queries. Filters
// and keyset pagination run as raw SQL over the jsonb signal columns (GIN
// indexed); matched rows are hydrated through ent afterwards.
type ListingService struct {
	client *ent.Client
	db     *sql.DB
}

// NewListingService creates a new ListingService
func NewListingService(client *ent.Client, db *sql.DB) *ListingService {
	if client == nil {
		panic("NewListingService: client must not be nil")
	}
	if db == nil {
		panic("NewListingService: db must not be nil")
	}
	return &ListingService{client: client, db: db}
}

// ListOpen returns one keyset page of open assignments.
//
// Sort newest: (coalesce(published_at, created_at, last_seen) desc, id
// desc). Sort distance: (coalesce(distance_km, 1e9) asc, last_seen desc,
// id desc), haversine over postal coordinates. total_count reflects the
// full filtered set on every page.
func (s *ListingService) ListOpen(ctx context.Context, req *models.ListAssignmentsRequest) (*models.AssignmentListResponse, error) {
	limit := req.Limit
	if limit <= 0 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	sort := req.Sort
	if sort == "" {
		sort = models.SortNewest
	}
	if sort == models.SortDistance && (req.NearLat == nil || req.NearLon == nil) {
		return nil, NewValidationError("near", "distance sort requires an origin")
	}

	q := newFilterQuery()
	q.applyFilters(req)

	totalCount, err := s.countFiltered(ctx, q)
	if err != nil {
		return nil, err
	}

	var cur *cursorPayload
	if req.Cursor != "" {
		cur, err = decodeCursor(req.Cursor)
		if err != nil {
			return nil, NewValidationError("cursor", "malformed")
		}
		if cur.Sort != string(sort) {
			return nil, NewValidationError("cursor", "sort mode changed mid-pagination")
		}
	}

	rows, err := s.pageRows(ctx, q, sort, req, cur, limit+1)
	if err != nil {
		return nil, err
	}

	hasMore := len(rows) > limit
	if hasMore {
		rows = rows[:limit]
	}

	items, err := s.hydrate(ctx, rows)
	if err != nil {
		return nil, err
	}

	resp := &models.AssignmentListResponse{
		Items:      items,
		TotalCount: totalCount,
		Limit:      limit,
	}
	if hasMore && len(rows) > 0 {
		cursor, err := encodeCursor(sort, rows[len(rows)-1])
		if err != nil {
			return nil, err
		}
		resp.NextCursor = &cursor
	}
	return resp, nil
}

// Facets counts open assignments by level, subject, region, and agency
// under the same filters as the listing.
func (s *ListingService) Facets(ctx context.Context, req *models.ListAssignmentsRequest) (*models.FacetsResponse, error) {
	q := newFilterQuery()
	q.applyFilters(req)
	where := q.whereClause()

	resp := &models.FacetsResponse{
		Levels:   map[string]int{},
		Subjects: map[string]int{},
		Regions:  map[string]int{},
		Agencies: map[string]int{},
	}

	jsonbFacets := []struct {
		column string
		dest   map[string]int
	}{
		{"signals_levels", resp.Levels},
		{"signals_subjects", resp.Subjects},
	}
	for _, f := range jsonbFacets {
		query := fmt.Sprintf(
			`SELECT v, count(*) FROM assignments,
			 jsonb_array_elements_text(coalesce(%s, '[]'::jsonb)) AS v
			 %s GROUP BY v`, f.column, where)
		if err := s.scanFacet(ctx, query, q.args, f.dest); err != nil {
			return nil, err
		}
	}

	columnFacets := []struct {
		column string
		dest   map[string]int
	}{
		{"region", resp.Regions},
		{"agency_id", resp.Agencies},
	}
	for _, f := range columnFacets {
		query := fmt.Sprintf(
			`SELECT %s, count(*) FROM assignments %s AND %s IS NOT NULL GROUP BY %s`,
			f.column, where, f.column, f.column)
		if err := s.scanFacet(ctx, query, q.args, f.dest); err != nil {
			return nil, err
		}
	}

	return resp, nil
}

// pageRow is one keyset page entry before hydration.
type pageRow struct {
	ID         string
	SortTS     time.Time
	LastSeen   time.Time
	DistanceKm *float64
}

func (s *ListingService) pageRows(ctx context.Context, q *filterQuery, sort models.SortMode, req *models.ListAssignmentsRequest, cur *cursorPayload, limit int) ([]pageRow, error) {
	distExpr := "NULL::double precision"
	if req.NearLat != nil && req.NearLon != nil {
		distExpr = q.haversineExpr(*req.NearLat, *req.NearLon)
	}

	var orderBy string
	switch sort {
	case models.SortDistance:
		orderBy = "dist_key ASC, last_seen DESC, assignment_id DESC"
		if cur != nil {
			q.addKeysetDistance(cur)
		}
	default:
		orderBy = "sort_ts DESC, assignment_id DESC"
		if cur != nil {
			q.addKeysetNewest(cur)
		}
	}

	query := fmt.Sprintf(`
		SELECT assignment_id, sort_ts, last_seen, distance_km
		FROM (
			SELECT assignment_id, last_seen,
			       coalesce(published_at, created_at, last_seen) AS sort_ts,
			       %s AS distance_km,
			       coalesce(%s, 1e9) AS dist_key
			FROM assignments
			%s
		) page
		%s
		ORDER BY %s
		LIMIT %d`,
		distExpr, distExpr, q.whereClause(), q.keysetClause(), orderBy, limit)

	rows, err := s.db.QueryContext(ctx, query, q.args...)
	if err != nil {
		return nil, fmt.Errorf("failed to query assignment page: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []pageRow
	for rows.Next() {
		var r pageRow
		var dist sql.NullFloat64
		if err := rows.Scan(&r.ID, &r.SortTS, &r.LastSeen, &dist); err != nil {
			return nil, fmt.Errorf("failed to scan assignment page: %w", err)
		}
		if dist.Valid {
			r.DistanceKm = &dist.Float64
		}
		out = append(out, r)
	}
	return out, rows.Err()
}

func (s *ListingService) countFiltered(ctx context.Context, q *filterQuery) (int, error) {
	query := fmt.Sprintf(`SELECT count(*) FROM assignments %s`, q.whereClause())
	var count int
	if err := s.db.QueryRowContext(ctx, query, q.args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count assignments: %w", err)
	}
	return count, nil
}

// hydrate fetches full rows through ent and restores page order.
func (s *ListingService) hydrate(ctx context.Context, rows []pageRow) ([]models.AssignmentWithDistance, error) {
	items := make([]models.AssignmentWithDistance, 0, len(rows))
	if len(rows) == 0 {
		return items, nil
	}

	ids := make([]string, len(rows))
	for i, r := range rows {
		ids[i] = r.ID
	}
	fetched, err := s.client.Assignment.Query().
		Where(assignment.IDIn(ids...)).
		All(ctx)
	if err != nil {
		return nil, translateEntError("hydrate assignments", err)
	}

	byID := make(map[string]*ent.Assignment, len(fetched))
	for _, row := range fetched {
		byID[row.ID] = row
	}
	for _, r := range rows {
		row, ok := byID[r.ID]
		if !ok {
			continue
		}
		items = append(items, models.AssignmentWithDistance{
			Assignment: row,
			DistanceKm: r.DistanceKm,
		})
	}
	return items, nil
}

func (s *ListingService) scanFacet(ctx context.Context, query string, args []interface{}, dest map[string]int) error {
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return fmt.Errorf("failed to query facet: %w", err)
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var key string
		var count int
		if err := rows.Scan(&key, &count); err != nil {
			return fmt.Errorf("failed to scan facet: %w", err)
		}
		dest[key] = count
	}
	return rows.Err()
}

// filterQuery accumulates WHERE clauses and positional args.
type filterQuery struct {
	clauses []string
	keyset  []string
	args    []interface{}
}

func newFilterQuery() *filterQuery {
	return &filterQuery{clauses: []string{"status = 'open'"}}
}

func (q *filterQuery) arg(v interface{}) string {
	q.args = append(q.args, v)
	return fmt.Sprintf("$%d", len(q.args))
}

func (q *filterQuery) whereClause() string {
	return "WHERE " + strings.Join(q.clauses, " AND ")
}

func (q *filterQuery) keysetClause() string {
	if len(q.keyset) == 0 {
		return ""
	}
	return "WHERE " + strings.Join(q.keyset, " AND ")
}

func (q *filterQuery) applyFilters(req *models.ListAssignmentsRequest) {
	jsonbContains := func(column, value string) string {
		return fmt.Sprintf("%s @> jsonb_build_array(%s::text)", column, q.arg(value))
	}

	if req.Level != "" {
		q.clauses = append(q.clauses, jsonbContains("signals_levels", req.Level))
	}
	if req.SpecificLevel != "" {
		q.clauses = append(q.clauses, jsonbContains("signals_specific_student_levels", req.SpecificLevel))
	}
	if req.Subject != "" {
		q.clauses = append(q.clauses, fmt.Sprintf("(%s OR %s OR %s)",
			jsonbContains("signals_subjects", req.Subject),
			jsonbContains("subjects_canonical", req.Subject),
			jsonbContains("subjects_general", req.Subject)))
	}
	if req.GeneralCode != "" {
		q.clauses = append(q.clauses, jsonbContains("subjects_general", req.GeneralCode))
	}
	if req.CanonicalCode != "" {
		q.clauses = append(q.clauses, jsonbContains("subjects_canonical", req.CanonicalCode))
	}
	if req.Agency != "" {
		q.clauses = append(q.clauses, fmt.Sprintf("agency_id = %s", q.arg(req.Agency)))
	}
	if req.LearningMode != "" {
		q.clauses = append(q.clauses, fmt.Sprintf("learning_mode = %s", q.arg(req.LearningMode)))
	}
	if req.TutorType != "" {
		q.clauses = append(q.clauses, fmt.Sprintf(
			"tutor_types @> jsonb_build_array(jsonb_build_object('type', %s::text))", q.arg(req.TutorType)))
	}
	if req.MinRate != nil {
		q.clauses = append(q.clauses, fmt.Sprintf("coalesce(rate_max, rate_min) >= %s", q.arg(*req.MinRate)))
	}
	if req.ShowDuplicates != nil && !*req.ShowDuplicates {
		q.clauses = append(q.clauses, "is_primary_in_group = true")
	}
	if req.Location != "" {
		if region, ok := regionKeywords[strings.ToLower(strings.TrimSpace(req.Location))]; ok {
			q.clauses = append(q.clauses, fmt.Sprintf("region = %s", q.arg(region)))
		} else {
			pattern := "%" + req.Location + "%"
			q.clauses = append(q.clauses, fmt.Sprintf(
				"(academic_display_text ILIKE %s OR address::text ILIKE %s)",
				q.arg(pattern), q.arg(pattern)))
		}
	}
}

// haversineExpr renders the great-circle distance from the query origin,
// NULL when the row lacks coordinates.
func (q *filterQuery) haversineExpr(lat, lon float64) string {
	latArg := q.arg(lat)
	lonArg := q.arg(lon)
	return fmt.Sprintf(`CASE WHEN postal_lat IS NOT NULL AND postal_lon IS NOT NULL THEN
		2 * 6371 * asin(sqrt(
			power(sin(radians((postal_lat - %s)/2)), 2) +
			cos(radians(%s)) * cos(radians(postal_lat)) *
			power(sin(radians((postal_lon - %s)/2)), 2)))
	END`, latArg, latArg, lonArg)
}

func (q *filterQuery) addKeysetNewest(cur *cursorPayload) {
	ts := q.arg(cur.SortTS)
	id := q.arg(cur.ID)
	q.keyset = append(q.keyset, fmt.Sprintf(
		"(sort_ts < %s OR (sort_ts = %s AND assignment_id < %s))", ts, ts, id))
}

func (q *filterQuery) addKeysetDistance(cur *cursorPayload) {
	dist := q.arg(cur.DistKey)
	ls := q.arg(cur.LastSeen)
	id := q.arg(cur.ID)
	q.keyset = append(q.keyset, fmt.Sprintf(
		`(dist_key > %s OR (dist_key = %s AND (last_seen < %s OR (last_seen = %s AND assignment_id < %s))))`,
		dist, dist, ls, ls, id))
}

// cursorPayload is the opaque keyset cursor, base64-encoded JSON.
type cursorPayload struct {
	Sort     string    `json:"s"`
	ID       string    `json:"id"`
	SortTS   time.Time `json:"ts"`
	LastSeen time.Time `json:"ls"`
	DistKey  float64   `json:"d"`
}

func encodeCursor(sort models.SortMode, last pageRow) (string, error) {
	p := cursorPayload{
		Sort:     string(sort),
		ID:       last.ID,
		SortTS:   last.SortTS,
		LastSeen: last.LastSeen,
		DistKey:  1e9,
	}
	if last.DistanceKm != nil {
		p.DistKey = *last.DistanceKm
	}
	raw, err := json.Marshal(p)
	if err != nil {
		return "", fmt.Errorf("failed to encode cursor: %w", err)
	}
	return base64.URLEncoding.EncodeToString(raw), nil
}

func decodeCursor(s string) (*cursorPayload, error) {
	raw, err := base64.URLEncoding.DecodeString(s)
	if err != nil {
		return nil, err
	}
	var p cursorPayload
	if err := json.Unmarshal(raw, &p); err != nil {
		return nil, err
	}
	return &p, nil
}
