// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the assignment type in the database.
	Label = "assignment"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "assignment_id"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldAgencyID holds the string denoting the agency_id field in the database.
	FieldAgencyID = "agency_id"
	// FieldAssignmentCode holds the string denoting the assignment_code field in the database.
	FieldAssignmentCode = "assignment_code"
	// FieldMessageLink holds the string denoting the message_link field in the database.
	FieldMessageLink = "message_link"
	// FieldAcademicDisplayText holds the string denoting the academic_display_text field in the database.
	FieldAcademicDisplayText = "academic_display_text"
	// FieldLessonSchedule holds the string denoting the lesson_schedule field in the database.
	FieldLessonSchedule = "lesson_schedule"
	// FieldStartDate holds the string denoting the start_date field in the database.
	FieldStartDate = "start_date"
	// FieldTimeAvailabilityNote holds the string denoting the time_availability_note field in the database.
	FieldTimeAvailabilityNote = "time_availability_note"
	// FieldTutorTypes holds the string denoting the tutor_types field in the database.
	FieldTutorTypes = "tutor_types"
	// FieldLearningMode holds the string denoting the learning_mode field in the database.
	FieldLearningMode = "learning_mode"
	// FieldRateRawText holds the string denoting the rate_raw_text field in the database.
	FieldRateRawText = "rate_raw_text"
	// FieldRateBreakdown holds the string denoting the rate_breakdown field in the database.
	FieldRateBreakdown = "rate_breakdown"
	// FieldAddress holds the string denoting the address field in the database.
	FieldAddress = "address"
	// FieldPostalCode holds the string denoting the postal_code field in the database.
	FieldPostalCode = "postal_code"
	// FieldPostalCodeEstimated holds the string denoting the postal_code_estimated field in the database.
	FieldPostalCodeEstimated = "postal_code_estimated"
	// FieldPostalLat holds the string denoting the postal_lat field in the database.
	FieldPostalLat = "postal_lat"
	// FieldPostalLon holds the string denoting the postal_lon field in the database.
	FieldPostalLon = "postal_lon"
	// FieldPostalCoordsEstimated holds the string denoting the postal_coords_estimated field in the database.
	FieldPostalCoordsEstimated = "postal_coords_estimated"
	// FieldRegion holds the string denoting the region field in the database.
	FieldRegion = "region"
	// FieldNearestMrtComputed holds the string denoting the nearest_mrt_computed field in the database.
	FieldNearestMrtComputed = "nearest_mrt_computed"
	// FieldNearestMrtLine holds the string denoting the nearest_mrt_line field in the database.
	FieldNearestMrtLine = "nearest_mrt_line"
	// FieldNearestMrtDistanceM holds the string denoting the nearest_mrt_distance_m field in the database.
	FieldNearestMrtDistanceM = "nearest_mrt_distance_m"
	// FieldRateMin holds the string denoting the rate_min field in the database.
	FieldRateMin = "rate_min"
	// FieldRateMax holds the string denoting the rate_max field in the database.
	FieldRateMax = "rate_max"
	// FieldSignalsSubjects holds the string denoting the signals_subjects field in the database.
	FieldSignalsSubjects = "signals_subjects"
	// FieldSignalsLevels holds the string denoting the signals_levels field in the database.
	FieldSignalsLevels = "signals_levels"
	// FieldSignalsSpecificStudentLevels holds the string denoting the signals_specific_student_levels field in the database.
	FieldSignalsSpecificStudentLevels = "signals_specific_student_levels"
	// FieldSubjectsCanonical holds the string denoting the subjects_canonical field in the database.
	FieldSubjectsCanonical = "subjects_canonical"
	// FieldSubjectsGeneral holds the string denoting the subjects_general field in the database.
	FieldSubjectsGeneral = "subjects_general"
	// FieldCanonicalizationVersion holds the string denoting the canonicalization_version field in the database.
	FieldCanonicalizationVersion = "canonicalization_version"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldPublishedAt holds the string denoting the published_at field in the database.
	FieldPublishedAt = "published_at"
	// FieldSourceLastSeen holds the string denoting the source_last_seen field in the database.
	FieldSourceLastSeen = "source_last_seen"
	// FieldLastSeen holds the string denoting the last_seen field in the database.
	FieldLastSeen = "last_seen"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldFreshnessTier holds the string denoting the freshness_tier field in the database.
	FieldFreshnessTier = "freshness_tier"
	// FieldBumpCount holds the string denoting the bump_count field in the database.
	FieldBumpCount = "bump_count"
	// FieldDuplicateGroupID holds the string denoting the duplicate_group_id field in the database.
	FieldDuplicateGroupID = "duplicate_group_id"
	// FieldIsPrimaryInGroup holds the string denoting the is_primary_in_group field in the database.
	FieldIsPrimaryInGroup = "is_primary_in_group"
	// FieldDuplicateConfidenceScore holds the string denoting the duplicate_confidence_score field in the database.
	FieldDuplicateConfidenceScore = "duplicate_confidence_score"
	// EdgeGroup holds the string denoting the group edge name in mutations.
	EdgeGroup = "group"
	// DuplicateGroupFieldID holds the string denoting the ID field of the DuplicateGroup.
	DuplicateGroupFieldID = "group_id"
	// Table holds the table name of the assignment in the database.
	Table = "assignments"
	// GroupTable is the table that holds the group relation/edge.
	GroupTable = "assignments"
	// GroupInverseTable is the table name for the DuplicateGroup entity.
	// It exists in this package in order to avoid circular dependency with the "duplicategroup" package.
	GroupInverseTable = "duplicate_groups"
	// GroupColumn is the table column denoting the group relation/edge.
	GroupColumn = "duplicate_group_id"
)

// Columns holds all SQL columns for assignment fields.
var Columns = []string{
	FieldID,
	FieldExternalID,
	FieldAgencyID,
	FieldAssignmentCode,
	FieldMessageLink,
	FieldAcademicDisplayText,
	FieldLessonSchedule,
	FieldStartDate,
	FieldTimeAvailabilityNote,
	FieldTutorTypes,
	FieldLearningMode,
	FieldRateRawText,
	FieldRateBreakdown,
	FieldAddress,
	FieldPostalCode,
	FieldPostalCodeEstimated,
	FieldPostalLat,
	FieldPostalLon,
	FieldPostalCoordsEstimated,
	FieldRegion,
	FieldNearestMrtComputed,
	FieldNearestMrtLine,
	FieldNearestMrtDistanceM,
	FieldRateMin,
	FieldRateMax,
	FieldSignalsSubjects,
	FieldSignalsLevels,
	FieldSignalsSpecificStudentLevels,
	FieldSubjectsCanonical,
	FieldSubjectsGeneral,
	FieldCanonicalizationVersion,
	FieldCreatedAt,
	FieldPublishedAt,
	FieldSourceLastSeen,
	FieldLastSeen,
	FieldStatus,
	FieldFreshnessTier,
	FieldBumpCount,
	FieldDuplicateGroupID,
	FieldIsPrimaryInGroup,
	FieldDuplicateConfidenceScore,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultPostalCoordsEstimated holds the default value on creation for the "postal_coords_estimated" field.
	DefaultPostalCoordsEstimated bool
	// DefaultCanonicalizationVersion holds the default value on creation for the "canonicalization_version" field.
	DefaultCanonicalizationVersion int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultLastSeen holds the default value on creation for the "last_seen" field.
	DefaultLastSeen func() time.Time
	// DefaultBumpCount holds the default value on creation for the "bump_count" field.
	DefaultBumpCount int
	// DefaultIsPrimaryInGroup holds the default value on creation for the "is_primary_in_group" field.
	DefaultIsPrimaryInGroup bool
)

// Status defines the type for the "status" enum field.
type Status string

// StatusOpen is the default value of the Status enum.
const DefaultStatus = StatusOpen

// Status values.
const (
	StatusOpen   Status = "open"
	StatusClosed Status = "closed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusOpen, StatusClosed:
		return nil
	default:
		return fmt.Errorf("assignment: invalid enum value for status field: %q", s)
	}
}

// FreshnessTier defines the type for the "freshness_tier" enum field.
type FreshnessTier string

// FreshnessTierGreen is the default value of the FreshnessTier enum.
const DefaultFreshnessTier = FreshnessTierGreen

// FreshnessTier values.
const (
	FreshnessTierGreen  FreshnessTier = "green"
	FreshnessTierYellow FreshnessTier = "yellow"
	FreshnessTierOrange FreshnessTier = "orange"
	FreshnessTierRed    FreshnessTier = "red"
)

func (ft FreshnessTier) String() string {
	return string(ft)
}

// FreshnessTierValidator is a validator for the "freshness_tier" field enum values. It is called by the builders before save.
func FreshnessTierValidator(ft FreshnessTier) error {
	switch ft {
	case FreshnessTierGreen, FreshnessTierYellow, FreshnessTierOrange, FreshnessTierRed:
		return nil
	default:
		return fmt.Errorf("assignment: invalid enum value for freshness_tier field: %q", ft)
	}
}

// OrderOption defines the ordering options for the Assignment queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByAgencyID orders the results by the agency_id field.
func ByAgencyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgencyID, opts...).ToFunc()
}

// ByAssignmentCode orders the results by the assignment_code field.
func ByAssignmentCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentCode, opts...).ToFunc()
}

// ByMessageLink orders the results by the message_link field.
func ByMessageLink(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageLink, opts...).ToFunc()
}

// ByAcademicDisplayText orders the results by the academic_display_text field.
func ByAcademicDisplayText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAcademicDisplayText, opts...).ToFunc()
}

// ByStartDate orders the results by the start_date field.
func ByStartDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStartDate, opts...).ToFunc()
}

// ByTimeAvailabilityNote orders the results by the time_availability_note field.
func ByTimeAvailabilityNote(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeAvailabilityNote, opts...).ToFunc()
}

// ByLearningMode orders the results by the learning_mode field.
func ByLearningMode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLearningMode, opts...).ToFunc()
}

// ByRateRawText orders the results by the rate_raw_text field.
func ByRateRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateRawText, opts...).ToFunc()
}

// ByRateBreakdown orders the results by the rate_breakdown field.
func ByRateBreakdown(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateBreakdown, opts...).ToFunc()
}

// ByPostalLat orders the results by the postal_lat field.
func ByPostalLat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostalLat, opts...).ToFunc()
}

// ByPostalLon orders the results by the postal_lon field.
func ByPostalLon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostalLon, opts...).ToFunc()
}

// ByPostalCoordsEstimated orders the results by the postal_coords_estimated field.
func ByPostalCoordsEstimated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostalCoordsEstimated, opts...).ToFunc()
}

// ByRegion orders the results by the region field.
func ByRegion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRegion, opts...).ToFunc()
}

// ByNearestMrtComputed orders the results by the nearest_mrt_computed field.
func ByNearestMrtComputed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNearestMrtComputed, opts...).ToFunc()
}

// ByNearestMrtLine orders the results by the nearest_mrt_line field.
func ByNearestMrtLine(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNearestMrtLine, opts...).ToFunc()
}

// ByNearestMrtDistanceM orders the results by the nearest_mrt_distance_m field.
func ByNearestMrtDistanceM(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNearestMrtDistanceM, opts...).ToFunc()
}

// ByRateMin orders the results by the rate_min field.
func ByRateMin(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateMin, opts...).ToFunc()
}

// ByRateMax orders the results by the rate_max field.
func ByRateMax(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRateMax, opts...).ToFunc()
}

// ByCanonicalizationVersion orders the results by the canonicalization_version field.
func ByCanonicalizationVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCanonicalizationVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByPublishedAt orders the results by the published_at field.
func ByPublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPublishedAt, opts...).ToFunc()
}

// BySourceLastSeen orders the results by the source_last_seen field.
func BySourceLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceLastSeen, opts...).ToFunc()
}

// ByLastSeen orders the results by the last_seen field.
func ByLastSeen(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastSeen, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByFreshnessTier orders the results by the freshness_tier field.
func ByFreshnessTier(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFreshnessTier, opts...).ToFunc()
}

// ByBumpCount orders the results by the bump_count field.
func ByBumpCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldBumpCount, opts...).ToFunc()
}

// ByDuplicateGroupID orders the results by the duplicate_group_id field.
func ByDuplicateGroupID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuplicateGroupID, opts...).ToFunc()
}

// ByIsPrimaryInGroup orders the results by the is_primary_in_group field.
func ByIsPrimaryInGroup(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsPrimaryInGroup, opts...).ToFunc()
}

// ByDuplicateConfidenceScore orders the results by the duplicate_confidence_score field.
func ByDuplicateConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDuplicateConfidenceScore, opts...).ToFunc()
}

// ByGroupField orders the results by group field.
func ByGroupField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newGroupStep(), sql.OrderByField(field, opts...))
	}
}
func newGroupStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(GroupInverseTable, DuplicateGroupFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
	)
}
