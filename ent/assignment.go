// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/ent/duplicategroup"
)

// Assignment is the model entity for the Assignment schema.
type Assignment struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Stable per-agency identity derived from the source post
	ExternalID string `json:"external_id,omitempty"`
	// AgencyID holds the value of the "agency_id" field.
	AgencyID string `json:"agency_id,omitempty"`
	// Agency-visible id, e.g. 'TA12345'
	AssignmentCode *string `json:"assignment_code,omitempty"`
	// MessageLink holds the value of the "message_link" field.
	MessageLink *string `json:"message_link,omitempty"`
	// Human-readable summary (full-text searchable)
	AcademicDisplayText string `json:"academic_display_text,omitempty"`
	// LessonSchedule holds the value of the "lesson_schedule" field.
	LessonSchedule []string `json:"lesson_schedule,omitempty"`
	// StartDate holds the value of the "start_date" field.
	StartDate *string `json:"start_date,omitempty"`
	// TimeAvailabilityNote holds the value of the "time_availability_note" field.
	TimeAvailabilityNote *string `json:"time_availability_note,omitempty"`
	// Tagged objects, e.g. {"type": "MOE", "rate": "$60-70"}
	TutorTypes []map[string]interface{} `json:"tutor_types,omitempty"`
	// in-person|online|hybrid as stated by the source
	LearningMode *string `json:"learning_mode,omitempty"`
	// RateRawText holds the value of the "rate_raw_text" field.
	RateRawText *string `json:"rate_raw_text,omitempty"`
	// RateBreakdown holds the value of the "rate_breakdown" field.
	RateBreakdown *string `json:"rate_breakdown,omitempty"`
	// Address holds the value of the "address" field.
	Address []string `json:"address,omitempty"`
	// PostalCode holds the value of the "postal_code" field.
	PostalCode []string `json:"postal_code,omitempty"`
	// Inferred postals when the post carries none verbatim
	PostalCodeEstimated []string `json:"postal_code_estimated,omitempty"`
	// PostalLat holds the value of the "postal_lat" field.
	PostalLat *float64 `json:"postal_lat,omitempty"`
	// PostalLon holds the value of the "postal_lon" field.
	PostalLon *float64 `json:"postal_lon,omitempty"`
	// PostalCoordsEstimated holds the value of the "postal_coords_estimated" field.
	PostalCoordsEstimated bool `json:"postal_coords_estimated,omitempty"`
	// north|east|west|central|north-east
	Region *string `json:"region,omitempty"`
	// NearestMrtComputed holds the value of the "nearest_mrt_computed" field.
	NearestMrtComputed *string `json:"nearest_mrt_computed,omitempty"`
	// NearestMrtLine holds the value of the "nearest_mrt_line" field.
	NearestMrtLine *string `json:"nearest_mrt_line,omitempty"`
	// NearestMrtDistanceM holds the value of the "nearest_mrt_distance_m" field.
	NearestMrtDistanceM *int `json:"nearest_mrt_distance_m,omitempty"`
	// RateMin holds the value of the "rate_min" field.
	RateMin *float64 `json:"rate_min,omitempty"`
	// RateMax holds the value of the "rate_max" field.
	RateMax *float64 `json:"rate_max,omitempty"`
	// SignalsSubjects holds the value of the "signals_subjects" field.
	SignalsSubjects []string `json:"signals_subjects,omitempty"`
	// SignalsLevels holds the value of the "signals_levels" field.
	SignalsLevels []string `json:"signals_levels,omitempty"`
	// SignalsSpecificStudentLevels holds the value of the "signals_specific_student_levels" field.
	SignalsSpecificStudentLevels []string `json:"signals_specific_student_levels,omitempty"`
	// Stable level-aware codes, e.g. 'MATH.SEC_EMATH'
	SubjectsCanonical []string `json:"subjects_canonical,omitempty"`
	// Parent categories of subjects_canonical
	SubjectsGeneral []string `json:"subjects_general,omitempty"`
	// Monotonically increases across reprocessings
	CanonicalizationVersion int `json:"canonicalization_version,omitempty"`
	// First-seen; preserved across upserts
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Source publish time; drives the newest sort
	PublishedAt *time.Time `json:"published_at,omitempty"`
	// Last upstream bump or edit
	SourceLastSeen *time.Time `json:"source_last_seen,omitempty"`
	// Last successful pipeline processing
	LastSeen time.Time `json:"last_seen,omitempty"`
	// Status holds the value of the "status" field.
	Status assignment.Status `json:"status,omitempty"`
	// FreshnessTier holds the value of the "freshness_tier" field.
	FreshnessTier assignment.FreshnessTier `json:"freshness_tier,omitempty"`
	// Incremented when the source publish time advanced
	BumpCount int `json:"bump_count,omitempty"`
	// DuplicateGroupID holds the value of the "duplicate_group_id" field.
	DuplicateGroupID *string `json:"duplicate_group_id,omitempty"`
	// IsPrimaryInGroup holds the value of the "is_primary_in_group" field.
	IsPrimaryInGroup bool `json:"is_primary_in_group,omitempty"`
	// DuplicateConfidenceScore holds the value of the "duplicate_confidence_score" field.
	DuplicateConfidenceScore *float64 `json:"duplicate_confidence_score,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the AssignmentQuery when eager-loading is set.
	Edges        AssignmentEdges `json:"edges"`
	selectValues sql.SelectValues
}

// AssignmentEdges holds the relations/edges for other nodes in the graph.
type AssignmentEdges struct {
	// Group holds the value of the group edge.
	Group *DuplicateGroup `json:"group,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// GroupOrErr returns the Group value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e AssignmentEdges) GroupOrErr() (*DuplicateGroup, error) {
	if e.Group != nil {
		return e.Group, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: duplicategroup.Label}
	}
	return nil, &NotLoadedError{edge: "group"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Assignment) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case assignment.FieldLessonSchedule, assignment.FieldTutorTypes, assignment.FieldAddress, assignment.FieldPostalCode, assignment.FieldPostalCodeEstimated, assignment.FieldSignalsSubjects, assignment.FieldSignalsLevels, assignment.FieldSignalsSpecificStudentLevels, assignment.FieldSubjectsCanonical, assignment.FieldSubjectsGeneral:
			values[i] = new([]byte)
		case assignment.FieldPostalCoordsEstimated, assignment.FieldIsPrimaryInGroup:
			values[i] = new(sql.NullBool)
		case assignment.FieldPostalLat, assignment.FieldPostalLon, assignment.FieldRateMin, assignment.FieldRateMax, assignment.FieldDuplicateConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case assignment.FieldNearestMrtDistanceM, assignment.FieldCanonicalizationVersion, assignment.FieldBumpCount:
			values[i] = new(sql.NullInt64)
		case assignment.FieldID, assignment.FieldExternalID, assignment.FieldAgencyID, assignment.FieldAssignmentCode, assignment.FieldMessageLink, assignment.FieldAcademicDisplayText, assignment.FieldStartDate, assignment.FieldTimeAvailabilityNote, assignment.FieldLearningMode, assignment.FieldRateRawText, assignment.FieldRateBreakdown, assignment.FieldRegion, assignment.FieldNearestMrtComputed, assignment.FieldNearestMrtLine, assignment.FieldStatus, assignment.FieldFreshnessTier, assignment.FieldDuplicateGroupID:
			values[i] = new(sql.NullString)
		case assignment.FieldCreatedAt, assignment.FieldPublishedAt, assignment.FieldSourceLastSeen, assignment.FieldLastSeen:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Assignment fields.
func (_m *Assignment) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case assignment.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case assignment.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = value.String
			}
		case assignment.FieldAgencyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agency_id", values[i])
			} else if value.Valid {
				_m.AgencyID = value.String
			}
		case assignment.FieldAssignmentCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_code", values[i])
			} else if value.Valid {
				_m.AssignmentCode = new(string)
				*_m.AssignmentCode = value.String
			}
		case assignment.FieldMessageLink:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_link", values[i])
			} else if value.Valid {
				_m.MessageLink = new(string)
				*_m.MessageLink = value.String
			}
		case assignment.FieldAcademicDisplayText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field academic_display_text", values[i])
			} else if value.Valid {
				_m.AcademicDisplayText = value.String
			}
		case assignment.FieldLessonSchedule:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field lesson_schedule", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.LessonSchedule); err != nil {
					return fmt.Errorf("unmarshal field lesson_schedule: %w", err)
				}
			}
		case assignment.FieldStartDate:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field start_date", values[i])
			} else if value.Valid {
				_m.StartDate = new(string)
				*_m.StartDate = value.String
			}
		case assignment.FieldTimeAvailabilityNote:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field time_availability_note", values[i])
			} else if value.Valid {
				_m.TimeAvailabilityNote = new(string)
				*_m.TimeAvailabilityNote = value.String
			}
		case assignment.FieldTutorTypes:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field tutor_types", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.TutorTypes); err != nil {
					return fmt.Errorf("unmarshal field tutor_types: %w", err)
				}
			}
		case assignment.FieldLearningMode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field learning_mode", values[i])
			} else if value.Valid {
				_m.LearningMode = new(string)
				*_m.LearningMode = value.String
			}
		case assignment.FieldRateRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rate_raw_text", values[i])
			} else if value.Valid {
				_m.RateRawText = new(string)
				*_m.RateRawText = value.String
			}
		case assignment.FieldRateBreakdown:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field rate_breakdown", values[i])
			} else if value.Valid {
				_m.RateBreakdown = new(string)
				*_m.RateBreakdown = value.String
			}
		case assignment.FieldAddress:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field address", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Address); err != nil {
					return fmt.Errorf("unmarshal field address: %w", err)
				}
			}
		case assignment.FieldPostalCode:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field postal_code", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PostalCode); err != nil {
					return fmt.Errorf("unmarshal field postal_code: %w", err)
				}
			}
		case assignment.FieldPostalCodeEstimated:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field postal_code_estimated", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.PostalCodeEstimated); err != nil {
					return fmt.Errorf("unmarshal field postal_code_estimated: %w", err)
				}
			}
		case assignment.FieldPostalLat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field postal_lat", values[i])
			} else if value.Valid {
				_m.PostalLat = new(float64)
				*_m.PostalLat = value.Float64
			}
		case assignment.FieldPostalLon:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field postal_lon", values[i])
			} else if value.Valid {
				_m.PostalLon = new(float64)
				*_m.PostalLon = value.Float64
			}
		case assignment.FieldPostalCoordsEstimated:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field postal_coords_estimated", values[i])
			} else if value.Valid {
				_m.PostalCoordsEstimated = value.Bool
			}
		case assignment.FieldRegion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field region", values[i])
			} else if value.Valid {
				_m.Region = new(string)
				*_m.Region = value.String
			}
		case assignment.FieldNearestMrtComputed:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nearest_mrt_computed", values[i])
			} else if value.Valid {
				_m.NearestMrtComputed = new(string)
				*_m.NearestMrtComputed = value.String
			}
		case assignment.FieldNearestMrtLine:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field nearest_mrt_line", values[i])
			} else if value.Valid {
				_m.NearestMrtLine = new(string)
				*_m.NearestMrtLine = value.String
			}
		case assignment.FieldNearestMrtDistanceM:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field nearest_mrt_distance_m", values[i])
			} else if value.Valid {
				_m.NearestMrtDistanceM = new(int)
				*_m.NearestMrtDistanceM = int(value.Int64)
			}
		case assignment.FieldRateMin:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_min", values[i])
			} else if value.Valid {
				_m.RateMin = new(float64)
				*_m.RateMin = value.Float64
			}
		case assignment.FieldRateMax:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field rate_max", values[i])
			} else if value.Valid {
				_m.RateMax = new(float64)
				*_m.RateMax = value.Float64
			}
		case assignment.FieldSignalsSubjects:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signals_subjects", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SignalsSubjects); err != nil {
					return fmt.Errorf("unmarshal field signals_subjects: %w", err)
				}
			}
		case assignment.FieldSignalsLevels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signals_levels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SignalsLevels); err != nil {
					return fmt.Errorf("unmarshal field signals_levels: %w", err)
				}
			}
		case assignment.FieldSignalsSpecificStudentLevels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field signals_specific_student_levels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SignalsSpecificStudentLevels); err != nil {
					return fmt.Errorf("unmarshal field signals_specific_student_levels: %w", err)
				}
			}
		case assignment.FieldSubjectsCanonical:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subjects_canonical", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SubjectsCanonical); err != nil {
					return fmt.Errorf("unmarshal field subjects_canonical: %w", err)
				}
			}
		case assignment.FieldSubjectsGeneral:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subjects_general", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.SubjectsGeneral); err != nil {
					return fmt.Errorf("unmarshal field subjects_general: %w", err)
				}
			}
		case assignment.FieldCanonicalizationVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field canonicalization_version", values[i])
			} else if value.Valid {
				_m.CanonicalizationVersion = int(value.Int64)
			}
		case assignment.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case assignment.FieldPublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field published_at", values[i])
			} else if value.Valid {
				_m.PublishedAt = new(time.Time)
				*_m.PublishedAt = value.Time
			}
		case assignment.FieldSourceLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field source_last_seen", values[i])
			} else if value.Valid {
				_m.SourceLastSeen = new(time.Time)
				*_m.SourceLastSeen = value.Time
			}
		case assignment.FieldLastSeen:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field last_seen", values[i])
			} else if value.Valid {
				_m.LastSeen = value.Time
			}
		case assignment.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = assignment.Status(value.String)
			}
		case assignment.FieldFreshnessTier:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field freshness_tier", values[i])
			} else if value.Valid {
				_m.FreshnessTier = assignment.FreshnessTier(value.String)
			}
		case assignment.FieldBumpCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field bump_count", values[i])
			} else if value.Valid {
				_m.BumpCount = int(value.Int64)
			}
		case assignment.FieldDuplicateGroupID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field duplicate_group_id", values[i])
			} else if value.Valid {
				_m.DuplicateGroupID = new(string)
				*_m.DuplicateGroupID = value.String
			}
		case assignment.FieldIsPrimaryInGroup:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_primary_in_group", values[i])
			} else if value.Valid {
				_m.IsPrimaryInGroup = value.Bool
			}
		case assignment.FieldDuplicateConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field duplicate_confidence_score", values[i])
			} else if value.Valid {
				_m.DuplicateConfidenceScore = new(float64)
				*_m.DuplicateConfidenceScore = value.Float64
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Assignment.
// This includes values selected through modifiers, order, etc.
func (_m *Assignment) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryGroup queries the "group" edge of the Assignment entity.
func (_m *Assignment) QueryGroup() *DuplicateGroupQuery {
	return NewAssignmentClient(_m.config).QueryGroup(_m)
}

// Update returns a builder for updating this Assignment.
// Note that you need to call Assignment.Unwrap() before calling this method if this Assignment
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Assignment) Update() *AssignmentUpdateOne {
	return NewAssignmentClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Assignment entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Assignment) Unwrap() *Assignment {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Assignment is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Assignment) String() string {
	var builder strings.Builder
	builder.WriteString("Assignment(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("external_id=")
	builder.WriteString(_m.ExternalID)
	builder.WriteString(", ")
	builder.WriteString("agency_id=")
	builder.WriteString(_m.AgencyID)
	builder.WriteString(", ")
	if v := _m.AssignmentCode; v != nil {
		builder.WriteString("assignment_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.MessageLink; v != nil {
		builder.WriteString("message_link=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("academic_display_text=")
	builder.WriteString(_m.AcademicDisplayText)
	builder.WriteString(", ")
	builder.WriteString("lesson_schedule=")
	builder.WriteString(fmt.Sprintf("%v", _m.LessonSchedule))
	builder.WriteString(", ")
	if v := _m.StartDate; v != nil {
		builder.WriteString("start_date=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TimeAvailabilityNote; v != nil {
		builder.WriteString("time_availability_note=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("tutor_types=")
	builder.WriteString(fmt.Sprintf("%v", _m.TutorTypes))
	builder.WriteString(", ")
	if v := _m.LearningMode; v != nil {
		builder.WriteString("learning_mode=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RateRawText; v != nil {
		builder.WriteString("rate_raw_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.RateBreakdown; v != nil {
		builder.WriteString("rate_breakdown=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("address=")
	builder.WriteString(fmt.Sprintf("%v", _m.Address))
	builder.WriteString(", ")
	builder.WriteString("postal_code=")
	builder.WriteString(fmt.Sprintf("%v", _m.PostalCode))
	builder.WriteString(", ")
	builder.WriteString("postal_code_estimated=")
	builder.WriteString(fmt.Sprintf("%v", _m.PostalCodeEstimated))
	builder.WriteString(", ")
	if v := _m.PostalLat; v != nil {
		builder.WriteString("postal_lat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.PostalLon; v != nil {
		builder.WriteString("postal_lon=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("postal_coords_estimated=")
	builder.WriteString(fmt.Sprintf("%v", _m.PostalCoordsEstimated))
	builder.WriteString(", ")
	if v := _m.Region; v != nil {
		builder.WriteString("region=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NearestMrtComputed; v != nil {
		builder.WriteString("nearest_mrt_computed=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NearestMrtLine; v != nil {
		builder.WriteString("nearest_mrt_line=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NearestMrtDistanceM; v != nil {
		builder.WriteString("nearest_mrt_distance_m=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RateMin; v != nil {
		builder.WriteString("rate_min=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.RateMax; v != nil {
		builder.WriteString("rate_max=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("signals_subjects=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalsSubjects))
	builder.WriteString(", ")
	builder.WriteString("signals_levels=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalsLevels))
	builder.WriteString(", ")
	builder.WriteString("signals_specific_student_levels=")
	builder.WriteString(fmt.Sprintf("%v", _m.SignalsSpecificStudentLevels))
	builder.WriteString(", ")
	builder.WriteString("subjects_canonical=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectsCanonical))
	builder.WriteString(", ")
	builder.WriteString("subjects_general=")
	builder.WriteString(fmt.Sprintf("%v", _m.SubjectsGeneral))
	builder.WriteString(", ")
	builder.WriteString("canonicalization_version=")
	builder.WriteString(fmt.Sprintf("%v", _m.CanonicalizationVersion))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.PublishedAt; v != nil {
		builder.WriteString("published_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.SourceLastSeen; v != nil {
		builder.WriteString("source_last_seen=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("last_seen=")
	builder.WriteString(_m.LastSeen.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("freshness_tier=")
	builder.WriteString(fmt.Sprintf("%v", _m.FreshnessTier))
	builder.WriteString(", ")
	builder.WriteString("bump_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.BumpCount))
	builder.WriteString(", ")
	if v := _m.DuplicateGroupID; v != nil {
		builder.WriteString("duplicate_group_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("is_primary_in_group=")
	builder.WriteString(fmt.Sprintf("%v", _m.IsPrimaryInGroup))
	builder.WriteString(", ")
	if v := _m.DuplicateConfidenceScore; v != nil {
		builder.WriteString("duplicate_confidence_score=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteByte(')')
	return builder.String()
}

// Assignments is a parsable slice of Assignment.
type Assignments []*Assignment
