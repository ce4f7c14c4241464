package models

import (
	"time"

	"github.com/tuitionlab/assignflow/ent"
)

// UpsertAssignmentInput carries one extraction result into the canonical
// store. Conflict key is (AgencyID, ExternalID); the merge policy lives in
// the assignment service.
type UpsertAssignmentInput struct {
	// Identity & provenance (set-once)
	ExternalID     string `json:"external_id"`
	AgencyID       string `json:"agency_id"`
	AssignmentCode string `json:"assignment_code,omitempty"`
	MessageLink    string `json:"message_link,omitempty"`

	// Display
	AcademicDisplayText  string      `json:"academic_display_text"`
	LessonSchedule       []string    `json:"lesson_schedule,omitempty"`
	StartDate            string      `json:"start_date,omitempty"`
	TimeAvailabilityNote string      `json:"time_availability_note,omitempty"`
	TutorTypes           []TutorType `json:"tutor_types,omitempty"`
	LearningMode         string      `json:"learning_mode,omitempty"`
	RateRawText          string      `json:"rate_raw_text,omitempty"`
	RateBreakdown        string      `json:"rate_breakdown,omitempty"`

	// Location
	Address               []string `json:"address,omitempty"`
	PostalCode            []string `json:"postal_code,omitempty"`
	PostalCodeEstimated   []string `json:"postal_code_estimated,omitempty"`
	PostalLat             *float64 `json:"postal_lat,omitempty"`
	PostalLon             *float64 `json:"postal_lon,omitempty"`
	PostalCoordsEstimated bool     `json:"postal_coords_estimated,omitempty"`
	Region                string   `json:"region,omitempty"`
	NearestMRT            string   `json:"nearest_mrt,omitempty"`
	NearestMRTLine        string   `json:"nearest_mrt_line,omitempty"`
	NearestMRTDistanceM   *int     `json:"nearest_mrt_distance_m,omitempty"`

	// Numeric
	RateMin *float64 `json:"rate_min,omitempty"`
	RateMax *float64 `json:"rate_max,omitempty"`

	// Signals & canonicalization
	SignalsSubjects              []string `json:"signals_subjects,omitempty"`
	SignalsLevels                []string `json:"signals_levels,omitempty"`
	SignalsSpecificStudentLevels []string `json:"signals_specific_student_levels,omitempty"`
	SubjectsCanonical            []string `json:"subjects_canonical,omitempty"`
	SubjectsGeneral              []string `json:"subjects_general,omitempty"`
	CanonicalizationVersion      int      `json:"canonicalization_version"`

	// Temporal (from the raw message)
	PublishedAt    *time.Time `json:"published_at,omitempty"`
	SourceLastSeen *time.Time `json:"source_last_seen,omitempty"`
}

// AssignmentView is the merged row an upsert returns.
type AssignmentView struct {
	*ent.Assignment

	// Created reports whether the upsert inserted a new row (vs merged
	// into an existing one).
	Created bool `json:"created"`
	// Bumped reports whether the source publish time advanced, i.e.
	// bump_count was incremented by this upsert.
	Bumped bool `json:"bumped"`
}

// SortMode selects the listing order.
type SortMode string

const (
	SortNewest   SortMode = "newest"
	SortDistance SortMode = "distance"
)

// ListAssignmentsRequest carries listing filters, sort, and keyset cursor.
type ListAssignmentsRequest struct {
	Level          string   `json:"level,omitempty"`
	SpecificLevel  string   `json:"specific_level,omitempty"`
	Subject        string   `json:"subject,omitempty"`
	GeneralCode    string   `json:"general_code,omitempty"`
	CanonicalCode  string   `json:"canonical_code,omitempty"`
	Agency         string   `json:"agency,omitempty"`
	LearningMode   string   `json:"learning_mode,omitempty"`
	Location       string   `json:"location,omitempty"`
	TutorType      string   `json:"tutor_type,omitempty"`
	MinRate        *float64 `json:"min_rate,omitempty"`
	ShowDuplicates *bool    `json:"show_duplicates,omitempty"` // default true

	// Distance sort origin: resolved from `near` (postal or "lat,lon").
	NearLat *float64 `json:"near_lat,omitempty"`
	NearLon *float64 `json:"near_lon,omitempty"`

	Sort   SortMode `json:"sort,omitempty"` // default newest
	Cursor string   `json:"cursor,omitempty"`
	Limit  int      `json:"limit,omitempty"` // capped at 200
}

// AssignmentWithDistance pairs a row with its computed distance from the
// query origin. DistanceKm is nil when either endpoint lacks coordinates.
type AssignmentWithDistance struct {
	*ent.Assignment
	DistanceKm *float64 `json:"distance_km,omitempty"`
}

// AssignmentListResponse is one keyset page.
type AssignmentListResponse struct {
	Items      []AssignmentWithDistance `json:"items"`
	TotalCount int                      `json:"total_count"`
	Limit      int                      `json:"limit"`
	NextCursor *string                  `json:"next_cursor,omitempty"`
}

// FacetsResponse contains counts of open assignments by dimension, after
// applying the same filters as the listing.
type FacetsResponse struct {
	Levels   map[string]int `json:"levels"`
	Subjects map[string]int `json:"subjects"`
	Regions  map[string]int `json:"regions"`
	Agencies map[string]int `json:"agencies"`
}
