// Code generated by ent, DO NOT EDIT.

package assignment

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldID, id))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldExternalID, v))
}

// AgencyID applies equality check predicate on the "agency_id" field. It's identical to AgencyIDEQ.
func AgencyID(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAgencyID, v))
}

// AssignmentCode applies equality check predicate on the "assignment_code" field. It's identical to AssignmentCodeEQ.
func AssignmentCode(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignmentCode, v))
}

// MessageLink applies equality check predicate on the "message_link" field. It's identical to MessageLinkEQ.
func MessageLink(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldMessageLink, v))
}

// AcademicDisplayText applies equality check predicate on the "academic_display_text" field. It's identical to AcademicDisplayTextEQ.
func AcademicDisplayText(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAcademicDisplayText, v))
}

// StartDate applies equality check predicate on the "start_date" field. It's identical to StartDateEQ.
func StartDate(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldStartDate, v))
}

// TimeAvailabilityNote applies equality check predicate on the "time_availability_note" field. It's identical to TimeAvailabilityNoteEQ.
func TimeAvailabilityNote(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldTimeAvailabilityNote, v))
}

// LearningMode applies equality check predicate on the "learning_mode" field. It's identical to LearningModeEQ.
func LearningMode(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldLearningMode, v))
}

// RateRawText applies equality check predicate on the "rate_raw_text" field. It's identical to RateRawTextEQ.
func RateRawText(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldRateRawText, v))
}

// RateBreakdown applies equality check predicate on the "rate_breakdown" field. It's identical to RateBreakdownEQ.
func RateBreakdown(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldRateBreakdown, v))
}

// PostalLat applies equality check predicate on the "postal_lat" field. It's identical to PostalLatEQ.
func PostalLat(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldPostalLat, v))
}

// PostalLon applies equality check predicate on the "postal_lon" field. It's identical to PostalLonEQ.
func PostalLon(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldPostalLon, v))
}

// PostalCoordsEstimated applies equality check predicate on the "postal_coords_estimated" field. It's identical to PostalCoordsEstimatedEQ.
func PostalCoordsEstimated(v bool) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldPostalCoordsEstimated, v))
}

// Region applies equality check predicate on the "region" field. It's identical to RegionEQ.
func Region(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldRegion, v))
}

// NearestMrtComputed applies equality check predicate on the "nearest_mrt_computed" field. It's identical to NearestMrtComputedEQ.
func NearestMrtComputed(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNearestMrtComputed, v))
}

// NearestMrtLine applies equality check predicate on the "nearest_mrt_line" field. It's identical to NearestMrtLineEQ.
func NearestMrtLine(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNearestMrtLine, v))
}

// NearestMrtDistanceM applies equality check predicate on the "nearest_mrt_distance_m" field. It's identical to NearestMrtDistanceMEQ.
func NearestMrtDistanceM(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNearestMrtDistanceM, v))
}

// RateMin applies equality check predicate on the "rate_min" field. It's identical to RateMinEQ.
func RateMin(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldRateMin, v))
}

// RateMax applies equality check predicate on the "rate_max" field. It's identical to RateMaxEQ.
func RateMax(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldRateMax, v))
}

// CanonicalizationVersion applies equality check predicate on the "canonicalization_version" field. It's identical to CanonicalizationVersionEQ.
func CanonicalizationVersion(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCanonicalizationVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCreatedAt, v))
}

// PublishedAt applies equality check predicate on the "published_at" field. It's identical to PublishedAtEQ.
func PublishedAt(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldPublishedAt, v))
}

// SourceLastSeen applies equality check predicate on the "source_last_seen" field. It's identical to SourceLastSeenEQ.
func SourceLastSeen(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldSourceLastSeen, v))
}

// LastSeen applies equality check predicate on the "last_seen" field. It's identical to LastSeenEQ.
func LastSeen(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldLastSeen, v))
}

// BumpCount applies equality check predicate on the "bump_count" field. It's identical to BumpCountEQ.
func BumpCount(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldBumpCount, v))
}

// DuplicateGroupID applies equality check predicate on the "duplicate_group_id" field. It's identical to DuplicateGroupIDEQ.
func DuplicateGroupID(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldDuplicateGroupID, v))
}

// IsPrimaryInGroup applies equality check predicate on the "is_primary_in_group" field. It's identical to IsPrimaryInGroupEQ.
func IsPrimaryInGroup(v bool) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldIsPrimaryInGroup, v))
}

// DuplicateConfidenceScore applies equality check predicate on the "duplicate_confidence_score" field. It's identical to DuplicateConfidenceScoreEQ.
func DuplicateConfidenceScore(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldDuplicateConfidenceScore, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldExternalID, v))
}

// AgencyIDEQ applies the EQ predicate on the "agency_id" field.
func AgencyIDEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAgencyID, v))
}

// AgencyIDNEQ applies the NEQ predicate on the "agency_id" field.
func AgencyIDNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAgencyID, v))
}

// AgencyIDIn applies the In predicate on the "agency_id" field.
func AgencyIDIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAgencyID, vs...))
}

// AgencyIDNotIn applies the NotIn predicate on the "agency_id" field.
func AgencyIDNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAgencyID, vs...))
}

// AgencyIDGT applies the GT predicate on the "agency_id" field.
func AgencyIDGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldAgencyID, v))
}

// AgencyIDGTE applies the GTE predicate on the "agency_id" field.
func AgencyIDGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldAgencyID, v))
}

// AgencyIDLT applies the LT predicate on the "agency_id" field.
func AgencyIDLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldAgencyID, v))
}

// AgencyIDLTE applies the LTE predicate on the "agency_id" field.
func AgencyIDLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldAgencyID, v))
}

// AgencyIDContains applies the Contains predicate on the "agency_id" field.
func AgencyIDContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldAgencyID, v))
}

// AgencyIDHasPrefix applies the HasPrefix predicate on the "agency_id" field.
func AgencyIDHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldAgencyID, v))
}

// AgencyIDHasSuffix applies the HasSuffix predicate on the "agency_id" field.
func AgencyIDHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldAgencyID, v))
}

// AgencyIDEqualFold applies the EqualFold predicate on the "agency_id" field.
func AgencyIDEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldAgencyID, v))
}

// AgencyIDContainsFold applies the ContainsFold predicate on the "agency_id" field.
func AgencyIDContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldAgencyID, v))
}

// AssignmentCodeEQ applies the EQ predicate on the "assignment_code" field.
func AssignmentCodeEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAssignmentCode, v))
}

// AssignmentCodeNEQ applies the NEQ predicate on the "assignment_code" field.
func AssignmentCodeNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAssignmentCode, v))
}

// AssignmentCodeIn applies the In predicate on the "assignment_code" field.
func AssignmentCodeIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAssignmentCode, vs...))
}

// AssignmentCodeNotIn applies the NotIn predicate on the "assignment_code" field.
func AssignmentCodeNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAssignmentCode, vs...))
}

// AssignmentCodeGT applies the GT predicate on the "assignment_code" field.
func AssignmentCodeGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldAssignmentCode, v))
}

// AssignmentCodeGTE applies the GTE predicate on the "assignment_code" field.
func AssignmentCodeGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldAssignmentCode, v))
}

// AssignmentCodeLT applies the LT predicate on the "assignment_code" field.
func AssignmentCodeLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldAssignmentCode, v))
}

// AssignmentCodeLTE applies the LTE predicate on the "assignment_code" field.
func AssignmentCodeLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldAssignmentCode, v))
}

// AssignmentCodeContains applies the Contains predicate on the "assignment_code" field.
func AssignmentCodeContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldAssignmentCode, v))
}

// AssignmentCodeHasPrefix applies the HasPrefix predicate on the "assignment_code" field.
func AssignmentCodeHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldAssignmentCode, v))
}

// AssignmentCodeHasSuffix applies the HasSuffix predicate on the "assignment_code" field.
func AssignmentCodeHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldAssignmentCode, v))
}

// AssignmentCodeIsNil applies the IsNil predicate on the "assignment_code" field.
func AssignmentCodeIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldAssignmentCode))
}

// AssignmentCodeNotNil applies the NotNil predicate on the "assignment_code" field.
func AssignmentCodeNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldAssignmentCode))
}

// AssignmentCodeEqualFold applies the EqualFold predicate on the "assignment_code" field.
func AssignmentCodeEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldAssignmentCode, v))
}

// AssignmentCodeContainsFold applies the ContainsFold predicate on the "assignment_code" field.
func AssignmentCodeContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldAssignmentCode, v))
}

// MessageLinkEQ applies the EQ predicate on the "message_link" field.
func MessageLinkEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldMessageLink, v))
}

// MessageLinkNEQ applies the NEQ predicate on the "message_link" field.
func MessageLinkNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldMessageLink, v))
}

// MessageLinkIn applies the In predicate on the "message_link" field.
func MessageLinkIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldMessageLink, vs...))
}

// MessageLinkNotIn applies the NotIn predicate on the "message_link" field.
func MessageLinkNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldMessageLink, vs...))
}

// MessageLinkGT applies the GT predicate on the "message_link" field.
func MessageLinkGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldMessageLink, v))
}

// MessageLinkGTE applies the GTE predicate on the "message_link" field.
func MessageLinkGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldMessageLink, v))
}

// MessageLinkLT applies the LT predicate on the "message_link" field.
func MessageLinkLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldMessageLink, v))
}

// MessageLinkLTE applies the LTE predicate on the "message_link" field.
func MessageLinkLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldMessageLink, v))
}

// MessageLinkContains applies the Contains predicate on the "message_link" field.
func MessageLinkContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldMessageLink, v))
}

// MessageLinkHasPrefix applies the HasPrefix predicate on the "message_link" field.
func MessageLinkHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldMessageLink, v))
}

// MessageLinkHasSuffix applies the HasSuffix predicate on the "message_link" field.
func MessageLinkHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldMessageLink, v))
}

// MessageLinkIsNil applies the IsNil predicate on the "message_link" field.
func MessageLinkIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldMessageLink))
}

// MessageLinkNotNil applies the NotNil predicate on the "message_link" field.
func MessageLinkNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldMessageLink))
}

// MessageLinkEqualFold applies the EqualFold predicate on the "message_link" field.
func MessageLinkEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldMessageLink, v))
}

// MessageLinkContainsFold applies the ContainsFold predicate on the "message_link" field.
func MessageLinkContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldMessageLink, v))
}

// AcademicDisplayTextEQ applies the EQ predicate on the "academic_display_text" field.
func AcademicDisplayTextEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldAcademicDisplayText, v))
}

// AcademicDisplayTextNEQ applies the NEQ predicate on the "academic_display_text" field.
func AcademicDisplayTextNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldAcademicDisplayText, v))
}

// AcademicDisplayTextIn applies the In predicate on the "academic_display_text" field.
func AcademicDisplayTextIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldAcademicDisplayText, vs...))
}

// AcademicDisplayTextNotIn applies the NotIn predicate on the "academic_display_text" field.
func AcademicDisplayTextNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldAcademicDisplayText, vs...))
}

// AcademicDisplayTextGT applies the GT predicate on the "academic_display_text" field.
func AcademicDisplayTextGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldAcademicDisplayText, v))
}

// AcademicDisplayTextGTE applies the GTE predicate on the "academic_display_text" field.
func AcademicDisplayTextGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldAcademicDisplayText, v))
}

// AcademicDisplayTextLT applies the LT predicate on the "academic_display_text" field.
func AcademicDisplayTextLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldAcademicDisplayText, v))
}

// AcademicDisplayTextLTE applies the LTE predicate on the "academic_display_text" field.
func AcademicDisplayTextLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldAcademicDisplayText, v))
}

// AcademicDisplayTextContains applies the Contains predicate on the "academic_display_text" field.
func AcademicDisplayTextContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldAcademicDisplayText, v))
}

// AcademicDisplayTextHasPrefix applies the HasPrefix predicate on the "academic_display_text" field.
func AcademicDisplayTextHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldAcademicDisplayText, v))
}

// AcademicDisplayTextHasSuffix applies the HasSuffix predicate on the "academic_display_text" field.
func AcademicDisplayTextHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldAcademicDisplayText, v))
}

// AcademicDisplayTextEqualFold applies the EqualFold predicate on the "academic_display_text" field.
func AcademicDisplayTextEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldAcademicDisplayText, v))
}

// AcademicDisplayTextContainsFold applies the ContainsFold predicate on the "academic_display_text" field.
func AcademicDisplayTextContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldAcademicDisplayText, v))
}

// LessonScheduleIsNil applies the IsNil predicate on the "lesson_schedule" field.
func LessonScheduleIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldLessonSchedule))
}

// LessonScheduleNotNil applies the NotNil predicate on the "lesson_schedule" field.
func LessonScheduleNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldLessonSchedule))
}

// StartDateEQ applies the EQ predicate on the "start_date" field.
func StartDateEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldStartDate, v))
}

// StartDateNEQ applies the NEQ predicate on the "start_date" field.
func StartDateNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldStartDate, v))
}

// StartDateIn applies the In predicate on the "start_date" field.
func StartDateIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldStartDate, vs...))
}

// StartDateNotIn applies the NotIn predicate on the "start_date" field.
func StartDateNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldStartDate, vs...))
}

// StartDateGT applies the GT predicate on the "start_date" field.
func StartDateGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldStartDate, v))
}

// StartDateGTE applies the GTE predicate on the "start_date" field.
func StartDateGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldStartDate, v))
}

// StartDateLT applies the LT predicate on the "start_date" field.
func StartDateLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldStartDate, v))
}

// StartDateLTE applies the LTE predicate on the "start_date" field.
func StartDateLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldStartDate, v))
}

// StartDateContains applies the Contains predicate on the "start_date" field.
func StartDateContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldStartDate, v))
}

// StartDateHasPrefix applies the HasPrefix predicate on the "start_date" field.
func StartDateHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldStartDate, v))
}

// StartDateHasSuffix applies the HasSuffix predicate on the "start_date" field.
func StartDateHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldStartDate, v))
}

// StartDateIsNil applies the IsNil predicate on the "start_date" field.
func StartDateIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldStartDate))
}

// StartDateNotNil applies the NotNil predicate on the "start_date" field.
func StartDateNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldStartDate))
}

// StartDateEqualFold applies the EqualFold predicate on the "start_date" field.
func StartDateEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldStartDate, v))
}

// StartDateContainsFold applies the ContainsFold predicate on the "start_date" field.
func StartDateContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldStartDate, v))
}

// TimeAvailabilityNoteEQ applies the EQ predicate on the "time_availability_note" field.
func TimeAvailabilityNoteEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldTimeAvailabilityNote, v))
}

// TimeAvailabilityNoteNEQ applies the NEQ predicate on the "time_availability_note" field.
func TimeAvailabilityNoteNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldTimeAvailabilityNote, v))
}

// TimeAvailabilityNoteIn applies the In predicate on the "time_availability_note" field.
func TimeAvailabilityNoteIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldTimeAvailabilityNote, vs...))
}

// TimeAvailabilityNoteNotIn applies the NotIn predicate on the "time_availability_note" field.
func TimeAvailabilityNoteNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldTimeAvailabilityNote, vs...))
}

// TimeAvailabilityNoteGT applies the GT predicate on the "time_availability_note" field.
func TimeAvailabilityNoteGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldTimeAvailabilityNote, v))
}

// TimeAvailabilityNoteGTE applies the GTE predicate on the "time_availability_note" field.
func TimeAvailabilityNoteGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldTimeAvailabilityNote, v))
}

// TimeAvailabilityNoteLT applies the LT predicate on the "time_availability_note" field.
func TimeAvailabilityNoteLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldTimeAvailabilityNote, v))
}

// TimeAvailabilityNoteLTE applies the LTE predicate on the "time_availability_note" field.
func TimeAvailabilityNoteLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldTimeAvailabilityNote, v))
}

// TimeAvailabilityNoteContains applies the Contains predicate on the "time_availability_note" field.
func TimeAvailabilityNoteContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldTimeAvailabilityNote, v))
}

// TimeAvailabilityNoteHasPrefix applies the HasPrefix predicate on the "time_availability_note" field.
func TimeAvailabilityNoteHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldTimeAvailabilityNote, v))
}

// TimeAvailabilityNoteHasSuffix applies the HasSuffix predicate on the "time_availability_note" field.
func TimeAvailabilityNoteHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldTimeAvailabilityNote, v))
}

// TimeAvailabilityNoteIsNil applies the IsNil predicate on the "time_availability_note" field.
func TimeAvailabilityNoteIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldTimeAvailabilityNote))
}

// TimeAvailabilityNoteNotNil applies the NotNil predicate on the "time_availability_note" field.
func TimeAvailabilityNoteNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldTimeAvailabilityNote))
}

// TimeAvailabilityNoteEqualFold applies the EqualFold predicate on the "time_availability_note" field.
func TimeAvailabilityNoteEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldTimeAvailabilityNote, v))
}

// TimeAvailabilityNoteContainsFold applies the ContainsFold predicate on the "time_availability_note" field.
func TimeAvailabilityNoteContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldTimeAvailabilityNote, v))
}

// TutorTypesIsNil applies the IsNil predicate on the "tutor_types" field.
func TutorTypesIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldTutorTypes))
}

// TutorTypesNotNil applies the NotNil predicate on the "tutor_types" field.
func TutorTypesNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldTutorTypes))
}

// LearningModeEQ applies the EQ predicate on the "learning_mode" field.
func LearningModeEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldLearningMode, v))
}

// LearningModeNEQ applies the NEQ predicate on the "learning_mode" field.
func LearningModeNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldLearningMode, v))
}

// LearningModeIn applies the In predicate on the "learning_mode" field.
func LearningModeIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldLearningMode, vs...))
}

// LearningModeNotIn applies the NotIn predicate on the "learning_mode" field.
func LearningModeNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldLearningMode, vs...))
}

// LearningModeGT applies the GT predicate on the "learning_mode" field.
func LearningModeGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldLearningMode, v))
}

// LearningModeGTE applies the GTE predicate on the "learning_mode" field.
func LearningModeGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldLearningMode, v))
}

// LearningModeLT applies the LT predicate on the "learning_mode" field.
func LearningModeLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldLearningMode, v))
}

// LearningModeLTE applies the LTE predicate on the "learning_mode" field.
func LearningModeLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldLearningMode, v))
}

// LearningModeContains applies the Contains predicate on the "learning_mode" field.
func LearningModeContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldLearningMode, v))
}

// LearningModeHasPrefix applies the HasPrefix predicate on the "learning_mode" field.
func LearningModeHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldLearningMode, v))
}

// LearningModeHasSuffix applies the HasSuffix predicate on the "learning_mode" field.
func LearningModeHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldLearningMode, v))
}

// LearningModeIsNil applies the IsNil predicate on the "learning_mode" field.
func LearningModeIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldLearningMode))
}

// LearningModeNotNil applies the NotNil predicate on the "learning_mode" field.
func LearningModeNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldLearningMode))
}

// LearningModeEqualFold applies the EqualFold predicate on the "learning_mode" field.
func LearningModeEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldLearningMode, v))
}

// LearningModeContainsFold applies the ContainsFold predicate on the "learning_mode" field.
func LearningModeContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldLearningMode, v))
}

// RateRawTextEQ applies the EQ predicate on the "rate_raw_text" field.
func RateRawTextEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldRateRawText, v))
}

// RateRawTextNEQ applies the NEQ predicate on the "rate_raw_text" field.
func RateRawTextNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldRateRawText, v))
}

// RateRawTextIn applies the In predicate on the "rate_raw_text" field.
func RateRawTextIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldRateRawText, vs...))
}

// RateRawTextNotIn applies the NotIn predicate on the "rate_raw_text" field.
func RateRawTextNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldRateRawText, vs...))
}

// RateRawTextGT applies the GT predicate on the "rate_raw_text" field.
func RateRawTextGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldRateRawText, v))
}

// RateRawTextGTE applies the GTE predicate on the "rate_raw_text" field.
func RateRawTextGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldRateRawText, v))
}

// RateRawTextLT applies the LT predicate on the "rate_raw_text" field.
func RateRawTextLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldRateRawText, v))
}

// RateRawTextLTE applies the LTE predicate on the "rate_raw_text" field.
func RateRawTextLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldRateRawText, v))
}

// RateRawTextContains applies the Contains predicate on the "rate_raw_text" field.
func RateRawTextContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldRateRawText, v))
}

// RateRawTextHasPrefix applies the HasPrefix predicate on the "rate_raw_text" field.
func RateRawTextHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldRateRawText, v))
}

// RateRawTextHasSuffix applies the HasSuffix predicate on the "rate_raw_text" field.
func RateRawTextHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldRateRawText, v))
}

// RateRawTextIsNil applies the IsNil predicate on the "rate_raw_text" field.
func RateRawTextIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldRateRawText))
}

// RateRawTextNotNil applies the NotNil predicate on the "rate_raw_text" field.
func RateRawTextNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldRateRawText))
}

// RateRawTextEqualFold applies the EqualFold predicate on the "rate_raw_text" field.
func RateRawTextEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldRateRawText, v))
}

// RateRawTextContainsFold applies the ContainsFold predicate on the "rate_raw_text" field.
func RateRawTextContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldRateRawText, v))
}

// RateBreakdownEQ applies the EQ predicate on the "rate_breakdown" field.
func RateBreakdownEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldRateBreakdown, v))
}

// RateBreakdownNEQ applies the NEQ predicate on the "rate_breakdown" field.
func RateBreakdownNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldRateBreakdown, v))
}

// RateBreakdownIn applies the In predicate on the "rate_breakdown" field.
func RateBreakdownIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldRateBreakdown, vs...))
}

// RateBreakdownNotIn applies the NotIn predicate on the "rate_breakdown" field.
func RateBreakdownNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldRateBreakdown, vs...))
}

// RateBreakdownGT applies the GT predicate on the "rate_breakdown" field.
func RateBreakdownGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldRateBreakdown, v))
}

// RateBreakdownGTE applies the GTE predicate on the "rate_breakdown" field.
func RateBreakdownGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldRateBreakdown, v))
}

// RateBreakdownLT applies the LT predicate on the "rate_breakdown" field.
func RateBreakdownLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldRateBreakdown, v))
}

// RateBreakdownLTE applies the LTE predicate on the "rate_breakdown" field.
func RateBreakdownLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldRateBreakdown, v))
}

// RateBreakdownContains applies the Contains predicate on the "rate_breakdown" field.
func RateBreakdownContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldRateBreakdown, v))
}

// RateBreakdownHasPrefix applies the HasPrefix predicate on the "rate_breakdown" field.
func RateBreakdownHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldRateBreakdown, v))
}

// RateBreakdownHasSuffix applies the HasSuffix predicate on the "rate_breakdown" field.
func RateBreakdownHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldRateBreakdown, v))
}

// RateBreakdownIsNil applies the IsNil predicate on the "rate_breakdown" field.
func RateBreakdownIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldRateBreakdown))
}

// RateBreakdownNotNil applies the NotNil predicate on the "rate_breakdown" field.
func RateBreakdownNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldRateBreakdown))
}

// RateBreakdownEqualFold applies the EqualFold predicate on the "rate_breakdown" field.
func RateBreakdownEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldRateBreakdown, v))
}

// RateBreakdownContainsFold applies the ContainsFold predicate on the "rate_breakdown" field.
func RateBreakdownContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldRateBreakdown, v))
}

// AddressIsNil applies the IsNil predicate on the "address" field.
func AddressIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldAddress))
}

// AddressNotNil applies the NotNil predicate on the "address" field.
func AddressNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldAddress))
}

// PostalCodeIsNil applies the IsNil predicate on the "postal_code" field.
func PostalCodeIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldPostalCode))
}

// PostalCodeNotNil applies the NotNil predicate on the "postal_code" field.
func PostalCodeNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldPostalCode))
}

// PostalCodeEstimatedIsNil applies the IsNil predicate on the "postal_code_estimated" field.
func PostalCodeEstimatedIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldPostalCodeEstimated))
}

// PostalCodeEstimatedNotNil applies the NotNil predicate on the "postal_code_estimated" field.
func PostalCodeEstimatedNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldPostalCodeEstimated))
}

// PostalLatEQ applies the EQ predicate on the "postal_lat" field.
func PostalLatEQ(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldPostalLat, v))
}

// PostalLatNEQ applies the NEQ predicate on the "postal_lat" field.
func PostalLatNEQ(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldPostalLat, v))
}

// PostalLatIn applies the In predicate on the "postal_lat" field.
func PostalLatIn(vs ...float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldPostalLat, vs...))
}

// PostalLatNotIn applies the NotIn predicate on the "postal_lat" field.
func PostalLatNotIn(vs ...float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldPostalLat, vs...))
}

// PostalLatGT applies the GT predicate on the "postal_lat" field.
func PostalLatGT(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldPostalLat, v))
}

// PostalLatGTE applies the GTE predicate on the "postal_lat" field.
func PostalLatGTE(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldPostalLat, v))
}

// PostalLatLT applies the LT predicate on the "postal_lat" field.
func PostalLatLT(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldPostalLat, v))
}

// PostalLatLTE applies the LTE predicate on the "postal_lat" field.
func PostalLatLTE(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldPostalLat, v))
}

// PostalLatIsNil applies the IsNil predicate on the "postal_lat" field.
func PostalLatIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldPostalLat))
}

// PostalLatNotNil applies the NotNil predicate on the "postal_lat" field.
func PostalLatNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldPostalLat))
}

// PostalLonEQ applies the EQ predicate on the "postal_lon" field.
func PostalLonEQ(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldPostalLon, v))
}

// PostalLonNEQ applies the NEQ predicate on the "postal_lon" field.
func PostalLonNEQ(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldPostalLon, v))
}

// PostalLonIn applies the In predicate on the "postal_lon" field.
func PostalLonIn(vs ...float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldPostalLon, vs...))
}

// PostalLonNotIn applies the NotIn predicate on the "postal_lon" field.
func PostalLonNotIn(vs ...float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldPostalLon, vs...))
}

// PostalLonGT applies the GT predicate on the "postal_lon" field.
func PostalLonGT(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldPostalLon, v))
}

// PostalLonGTE applies the GTE predicate on the "postal_lon" field.
func PostalLonGTE(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldPostalLon, v))
}

// PostalLonLT applies the LT predicate on the "postal_lon" field.
func PostalLonLT(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldPostalLon, v))
}

// PostalLonLTE applies the LTE predicate on the "postal_lon" field.
func PostalLonLTE(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldPostalLon, v))
}

// PostalLonIsNil applies the IsNil predicate on the "postal_lon" field.
func PostalLonIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldPostalLon))
}

// PostalLonNotNil applies the NotNil predicate on the "postal_lon" field.
func PostalLonNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldPostalLon))
}

// PostalCoordsEstimatedEQ applies the EQ predicate on the "postal_coords_estimated" field.
func PostalCoordsEstimatedEQ(v bool) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldPostalCoordsEstimated, v))
}

// PostalCoordsEstimatedNEQ applies the NEQ predicate on the "postal_coords_estimated" field.
func PostalCoordsEstimatedNEQ(v bool) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldPostalCoordsEstimated, v))
}

// RegionEQ applies the EQ predicate on the "region" field.
func RegionEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldRegion, v))
}

// RegionNEQ applies the NEQ predicate on the "region" field.
func RegionNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldRegion, v))
}

// RegionIn applies the In predicate on the "region" field.
func RegionIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldRegion, vs...))
}

// RegionNotIn applies the NotIn predicate on the "region" field.
func RegionNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldRegion, vs...))
}

// RegionGT applies the GT predicate on the "region" field.
func RegionGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldRegion, v))
}

// RegionGTE applies the GTE predicate on the "region" field.
func RegionGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldRegion, v))
}

// RegionLT applies the LT predicate on the "region" field.
func RegionLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldRegion, v))
}

// RegionLTE applies the LTE predicate on the "region" field.
func RegionLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldRegion, v))
}

// RegionContains applies the Contains predicate on the "region" field.
func RegionContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldRegion, v))
}

// RegionHasPrefix applies the HasPrefix predicate on the "region" field.
func RegionHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldRegion, v))
}

// RegionHasSuffix applies the HasSuffix predicate on the "region" field.
func RegionHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldRegion, v))
}

// RegionIsNil applies the IsNil predicate on the "region" field.
func RegionIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldRegion))
}

// RegionNotNil applies the NotNil predicate on the "region" field.
func RegionNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldRegion))
}

// RegionEqualFold applies the EqualFold predicate on the "region" field.
func RegionEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldRegion, v))
}

// RegionContainsFold applies the ContainsFold predicate on the "region" field.
func RegionContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldRegion, v))
}

// NearestMrtComputedEQ applies the EQ predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNearestMrtComputed, v))
}

// NearestMrtComputedNEQ applies the NEQ predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldNearestMrtComputed, v))
}

// NearestMrtComputedIn applies the In predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldNearestMrtComputed, vs...))
}

// NearestMrtComputedNotIn applies the NotIn predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldNearestMrtComputed, vs...))
}

// NearestMrtComputedGT applies the GT predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldNearestMrtComputed, v))
}

// NearestMrtComputedGTE applies the GTE predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldNearestMrtComputed, v))
}

// NearestMrtComputedLT applies the LT predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldNearestMrtComputed, v))
}

// NearestMrtComputedLTE applies the LTE predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldNearestMrtComputed, v))
}

// NearestMrtComputedContains applies the Contains predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldNearestMrtComputed, v))
}

// NearestMrtComputedHasPrefix applies the HasPrefix predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldNearestMrtComputed, v))
}

// NearestMrtComputedHasSuffix applies the HasSuffix predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldNearestMrtComputed, v))
}

// NearestMrtComputedIsNil applies the IsNil predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldNearestMrtComputed))
}

// NearestMrtComputedNotNil applies the NotNil predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldNearestMrtComputed))
}

// NearestMrtComputedEqualFold applies the EqualFold predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldNearestMrtComputed, v))
}

// NearestMrtComputedContainsFold applies the ContainsFold predicate on the "nearest_mrt_computed" field.
func NearestMrtComputedContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldNearestMrtComputed, v))
}

// NearestMrtLineEQ applies the EQ predicate on the "nearest_mrt_line" field.
func NearestMrtLineEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNearestMrtLine, v))
}

// NearestMrtLineNEQ applies the NEQ predicate on the "nearest_mrt_line" field.
func NearestMrtLineNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldNearestMrtLine, v))
}

// NearestMrtLineIn applies the In predicate on the "nearest_mrt_line" field.
func NearestMrtLineIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldNearestMrtLine, vs...))
}

// NearestMrtLineNotIn applies the NotIn predicate on the "nearest_mrt_line" field.
func NearestMrtLineNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldNearestMrtLine, vs...))
}

// NearestMrtLineGT applies the GT predicate on the "nearest_mrt_line" field.
func NearestMrtLineGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldNearestMrtLine, v))
}

// NearestMrtLineGTE applies the GTE predicate on the "nearest_mrt_line" field.
func NearestMrtLineGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldNearestMrtLine, v))
}

// NearestMrtLineLT applies the LT predicate on the "nearest_mrt_line" field.
func NearestMrtLineLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldNearestMrtLine, v))
}

// NearestMrtLineLTE applies the LTE predicate on the "nearest_mrt_line" field.
func NearestMrtLineLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldNearestMrtLine, v))
}

// NearestMrtLineContains applies the Contains predicate on the "nearest_mrt_line" field.
func NearestMrtLineContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldNearestMrtLine, v))
}

// NearestMrtLineHasPrefix applies the HasPrefix predicate on the "nearest_mrt_line" field.
func NearestMrtLineHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldNearestMrtLine, v))
}

// NearestMrtLineHasSuffix applies the HasSuffix predicate on the "nearest_mrt_line" field.
func NearestMrtLineHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldNearestMrtLine, v))
}

// NearestMrtLineIsNil applies the IsNil predicate on the "nearest_mrt_line" field.
func NearestMrtLineIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldNearestMrtLine))
}

// NearestMrtLineNotNil applies the NotNil predicate on the "nearest_mrt_line" field.
func NearestMrtLineNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldNearestMrtLine))
}

// NearestMrtLineEqualFold applies the EqualFold predicate on the "nearest_mrt_line" field.
func NearestMrtLineEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldNearestMrtLine, v))
}

// NearestMrtLineContainsFold applies the ContainsFold predicate on the "nearest_mrt_line" field.
func NearestMrtLineContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldNearestMrtLine, v))
}

// NearestMrtDistanceMEQ applies the EQ predicate on the "nearest_mrt_distance_m" field.
func NearestMrtDistanceMEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldNearestMrtDistanceM, v))
}

// NearestMrtDistanceMNEQ applies the NEQ predicate on the "nearest_mrt_distance_m" field.
func NearestMrtDistanceMNEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldNearestMrtDistanceM, v))
}

// NearestMrtDistanceMIn applies the In predicate on the "nearest_mrt_distance_m" field.
func NearestMrtDistanceMIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldNearestMrtDistanceM, vs...))
}

// NearestMrtDistanceMNotIn applies the NotIn predicate on the "nearest_mrt_distance_m" field.
func NearestMrtDistanceMNotIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldNearestMrtDistanceM, vs...))
}

// NearestMrtDistanceMGT applies the GT predicate on the "nearest_mrt_distance_m" field.
func NearestMrtDistanceMGT(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldNearestMrtDistanceM, v))
}

// NearestMrtDistanceMGTE applies the GTE predicate on the "nearest_mrt_distance_m" field.
func NearestMrtDistanceMGTE(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldNearestMrtDistanceM, v))
}

// NearestMrtDistanceMLT applies the LT predicate on the "nearest_mrt_distance_m" field.
func NearestMrtDistanceMLT(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldNearestMrtDistanceM, v))
}

// NearestMrtDistanceMLTE applies the LTE predicate on the "nearest_mrt_distance_m" field.
func NearestMrtDistanceMLTE(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldNearestMrtDistanceM, v))
}

// NearestMrtDistanceMIsNil applies the IsNil predicate on the "nearest_mrt_distance_m" field.
func NearestMrtDistanceMIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldNearestMrtDistanceM))
}

// NearestMrtDistanceMNotNil applies the NotNil predicate on the "nearest_mrt_distance_m" field.
func NearestMrtDistanceMNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldNearestMrtDistanceM))
}

// RateMinEQ applies the EQ predicate on the "rate_min" field.
func RateMinEQ(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldRateMin, v))
}

// RateMinNEQ applies the NEQ predicate on the "rate_min" field.
func RateMinNEQ(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldRateMin, v))
}

// RateMinIn applies the In predicate on the "rate_min" field.
func RateMinIn(vs ...float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldRateMin, vs...))
}

// RateMinNotIn applies the NotIn predicate on the "rate_min" field.
func RateMinNotIn(vs ...float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldRateMin, vs...))
}

// RateMinGT applies the GT predicate on the "rate_min" field.
func RateMinGT(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldRateMin, v))
}

// RateMinGTE applies the GTE predicate on the "rate_min" field.
func RateMinGTE(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldRateMin, v))
}

// RateMinLT applies the LT predicate on the "rate_min" field.
func RateMinLT(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldRateMin, v))
}

// RateMinLTE applies the LTE predicate on the "rate_min" field.
func RateMinLTE(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldRateMin, v))
}

// RateMinIsNil applies the IsNil predicate on the "rate_min" field.
func RateMinIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldRateMin))
}

// RateMinNotNil applies the NotNil predicate on the "rate_min" field.
func RateMinNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldRateMin))
}

// RateMaxEQ applies the EQ predicate on the "rate_max" field.
func RateMaxEQ(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldRateMax, v))
}

// RateMaxNEQ applies the NEQ predicate on the "rate_max" field.
func RateMaxNEQ(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldRateMax, v))
}

// RateMaxIn applies the In predicate on the "rate_max" field.
func RateMaxIn(vs ...float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldRateMax, vs...))
}

// RateMaxNotIn applies the NotIn predicate on the "rate_max" field.
func RateMaxNotIn(vs ...float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldRateMax, vs...))
}

// RateMaxGT applies the GT predicate on the "rate_max" field.
func RateMaxGT(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldRateMax, v))
}

// RateMaxGTE applies the GTE predicate on the "rate_max" field.
func RateMaxGTE(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldRateMax, v))
}

// RateMaxLT applies the LT predicate on the "rate_max" field.
func RateMaxLT(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldRateMax, v))
}

// RateMaxLTE applies the LTE predicate on the "rate_max" field.
func RateMaxLTE(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldRateMax, v))
}

// RateMaxIsNil applies the IsNil predicate on the "rate_max" field.
func RateMaxIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldRateMax))
}

// RateMaxNotNil applies the NotNil predicate on the "rate_max" field.
func RateMaxNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldRateMax))
}

// SignalsSubjectsIsNil applies the IsNil predicate on the "signals_subjects" field.
func SignalsSubjectsIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldSignalsSubjects))
}

// SignalsSubjectsNotNil applies the NotNil predicate on the "signals_subjects" field.
func SignalsSubjectsNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldSignalsSubjects))
}

// SignalsLevelsIsNil applies the IsNil predicate on the "signals_levels" field.
func SignalsLevelsIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldSignalsLevels))
}

// SignalsLevelsNotNil applies the NotNil predicate on the "signals_levels" field.
func SignalsLevelsNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldSignalsLevels))
}

// SignalsSpecificStudentLevelsIsNil applies the IsNil predicate on the "signals_specific_student_levels" field.
func SignalsSpecificStudentLevelsIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldSignalsSpecificStudentLevels))
}

// SignalsSpecificStudentLevelsNotNil applies the NotNil predicate on the "signals_specific_student_levels" field.
func SignalsSpecificStudentLevelsNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldSignalsSpecificStudentLevels))
}

// SubjectsCanonicalIsNil applies the IsNil predicate on the "subjects_canonical" field.
func SubjectsCanonicalIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldSubjectsCanonical))
}

// SubjectsCanonicalNotNil applies the NotNil predicate on the "subjects_canonical" field.
func SubjectsCanonicalNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldSubjectsCanonical))
}

// SubjectsGeneralIsNil applies the IsNil predicate on the "subjects_general" field.
func SubjectsGeneralIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldSubjectsGeneral))
}

// SubjectsGeneralNotNil applies the NotNil predicate on the "subjects_general" field.
func SubjectsGeneralNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldSubjectsGeneral))
}

// CanonicalizationVersionEQ applies the EQ predicate on the "canonicalization_version" field.
func CanonicalizationVersionEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCanonicalizationVersion, v))
}

// CanonicalizationVersionNEQ applies the NEQ predicate on the "canonicalization_version" field.
func CanonicalizationVersionNEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldCanonicalizationVersion, v))
}

// CanonicalizationVersionIn applies the In predicate on the "canonicalization_version" field.
func CanonicalizationVersionIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldCanonicalizationVersion, vs...))
}

// CanonicalizationVersionNotIn applies the NotIn predicate on the "canonicalization_version" field.
func CanonicalizationVersionNotIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldCanonicalizationVersion, vs...))
}

// CanonicalizationVersionGT applies the GT predicate on the "canonicalization_version" field.
func CanonicalizationVersionGT(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldCanonicalizationVersion, v))
}

// CanonicalizationVersionGTE applies the GTE predicate on the "canonicalization_version" field.
func CanonicalizationVersionGTE(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldCanonicalizationVersion, v))
}

// CanonicalizationVersionLT applies the LT predicate on the "canonicalization_version" field.
func CanonicalizationVersionLT(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldCanonicalizationVersion, v))
}

// CanonicalizationVersionLTE applies the LTE predicate on the "canonicalization_version" field.
func CanonicalizationVersionLTE(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldCanonicalizationVersion, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldCreatedAt, v))
}

// PublishedAtEQ applies the EQ predicate on the "published_at" field.
func PublishedAtEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldPublishedAt, v))
}

// PublishedAtNEQ applies the NEQ predicate on the "published_at" field.
func PublishedAtNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldPublishedAt, v))
}

// PublishedAtIn applies the In predicate on the "published_at" field.
func PublishedAtIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldPublishedAt, vs...))
}

// PublishedAtNotIn applies the NotIn predicate on the "published_at" field.
func PublishedAtNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldPublishedAt, vs...))
}

// PublishedAtGT applies the GT predicate on the "published_at" field.
func PublishedAtGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldPublishedAt, v))
}

// PublishedAtGTE applies the GTE predicate on the "published_at" field.
func PublishedAtGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldPublishedAt, v))
}

// PublishedAtLT applies the LT predicate on the "published_at" field.
func PublishedAtLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldPublishedAt, v))
}

// PublishedAtLTE applies the LTE predicate on the "published_at" field.
func PublishedAtLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldPublishedAt, v))
}

// PublishedAtIsNil applies the IsNil predicate on the "published_at" field.
func PublishedAtIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldPublishedAt))
}

// PublishedAtNotNil applies the NotNil predicate on the "published_at" field.
func PublishedAtNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldPublishedAt))
}

// SourceLastSeenEQ applies the EQ predicate on the "source_last_seen" field.
func SourceLastSeenEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldSourceLastSeen, v))
}

// SourceLastSeenNEQ applies the NEQ predicate on the "source_last_seen" field.
func SourceLastSeenNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldSourceLastSeen, v))
}

// SourceLastSeenIn applies the In predicate on the "source_last_seen" field.
func SourceLastSeenIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldSourceLastSeen, vs...))
}

// SourceLastSeenNotIn applies the NotIn predicate on the "source_last_seen" field.
func SourceLastSeenNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldSourceLastSeen, vs...))
}

// SourceLastSeenGT applies the GT predicate on the "source_last_seen" field.
func SourceLastSeenGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldSourceLastSeen, v))
}

// SourceLastSeenGTE applies the GTE predicate on the "source_last_seen" field.
func SourceLastSeenGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldSourceLastSeen, v))
}

// SourceLastSeenLT applies the LT predicate on the "source_last_seen" field.
func SourceLastSeenLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldSourceLastSeen, v))
}

// SourceLastSeenLTE applies the LTE predicate on the "source_last_seen" field.
func SourceLastSeenLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldSourceLastSeen, v))
}

// SourceLastSeenIsNil applies the IsNil predicate on the "source_last_seen" field.
func SourceLastSeenIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldSourceLastSeen))
}

// SourceLastSeenNotNil applies the NotNil predicate on the "source_last_seen" field.
func SourceLastSeenNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldSourceLastSeen))
}

// LastSeenEQ applies the EQ predicate on the "last_seen" field.
func LastSeenEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldLastSeen, v))
}

// LastSeenNEQ applies the NEQ predicate on the "last_seen" field.
func LastSeenNEQ(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldLastSeen, v))
}

// LastSeenIn applies the In predicate on the "last_seen" field.
func LastSeenIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldLastSeen, vs...))
}

// LastSeenNotIn applies the NotIn predicate on the "last_seen" field.
func LastSeenNotIn(vs ...time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldLastSeen, vs...))
}

// LastSeenGT applies the GT predicate on the "last_seen" field.
func LastSeenGT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldLastSeen, v))
}

// LastSeenGTE applies the GTE predicate on the "last_seen" field.
func LastSeenGTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldLastSeen, v))
}

// LastSeenLT applies the LT predicate on the "last_seen" field.
func LastSeenLT(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldLastSeen, v))
}

// LastSeenLTE applies the LTE predicate on the "last_seen" field.
func LastSeenLTE(v time.Time) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldLastSeen, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldStatus, vs...))
}

// FreshnessTierEQ applies the EQ predicate on the "freshness_tier" field.
func FreshnessTierEQ(v FreshnessTier) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldFreshnessTier, v))
}

// FreshnessTierNEQ applies the NEQ predicate on the "freshness_tier" field.
func FreshnessTierNEQ(v FreshnessTier) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldFreshnessTier, v))
}

// FreshnessTierIn applies the In predicate on the "freshness_tier" field.
func FreshnessTierIn(vs ...FreshnessTier) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldFreshnessTier, vs...))
}

// FreshnessTierNotIn applies the NotIn predicate on the "freshness_tier" field.
func FreshnessTierNotIn(vs ...FreshnessTier) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldFreshnessTier, vs...))
}

// BumpCountEQ applies the EQ predicate on the "bump_count" field.
func BumpCountEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldBumpCount, v))
}

// BumpCountNEQ applies the NEQ predicate on the "bump_count" field.
func BumpCountNEQ(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldBumpCount, v))
}

// BumpCountIn applies the In predicate on the "bump_count" field.
func BumpCountIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldBumpCount, vs...))
}

// BumpCountNotIn applies the NotIn predicate on the "bump_count" field.
func BumpCountNotIn(vs ...int) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldBumpCount, vs...))
}

// BumpCountGT applies the GT predicate on the "bump_count" field.
func BumpCountGT(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldBumpCount, v))
}

// BumpCountGTE applies the GTE predicate on the "bump_count" field.
func BumpCountGTE(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldBumpCount, v))
}

// BumpCountLT applies the LT predicate on the "bump_count" field.
func BumpCountLT(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldBumpCount, v))
}

// BumpCountLTE applies the LTE predicate on the "bump_count" field.
func BumpCountLTE(v int) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldBumpCount, v))
}

// DuplicateGroupIDEQ applies the EQ predicate on the "duplicate_group_id" field.
func DuplicateGroupIDEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldDuplicateGroupID, v))
}

// DuplicateGroupIDNEQ applies the NEQ predicate on the "duplicate_group_id" field.
func DuplicateGroupIDNEQ(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldDuplicateGroupID, v))
}

// DuplicateGroupIDIn applies the In predicate on the "duplicate_group_id" field.
func DuplicateGroupIDIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldDuplicateGroupID, vs...))
}

// DuplicateGroupIDNotIn applies the NotIn predicate on the "duplicate_group_id" field.
func DuplicateGroupIDNotIn(vs ...string) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldDuplicateGroupID, vs...))
}

// DuplicateGroupIDGT applies the GT predicate on the "duplicate_group_id" field.
func DuplicateGroupIDGT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldDuplicateGroupID, v))
}

// DuplicateGroupIDGTE applies the GTE predicate on the "duplicate_group_id" field.
func DuplicateGroupIDGTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldDuplicateGroupID, v))
}

// DuplicateGroupIDLT applies the LT predicate on the "duplicate_group_id" field.
func DuplicateGroupIDLT(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldDuplicateGroupID, v))
}

// DuplicateGroupIDLTE applies the LTE predicate on the "duplicate_group_id" field.
func DuplicateGroupIDLTE(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldDuplicateGroupID, v))
}

// DuplicateGroupIDContains applies the Contains predicate on the "duplicate_group_id" field.
func DuplicateGroupIDContains(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContains(FieldDuplicateGroupID, v))
}

// DuplicateGroupIDHasPrefix applies the HasPrefix predicate on the "duplicate_group_id" field.
func DuplicateGroupIDHasPrefix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasPrefix(FieldDuplicateGroupID, v))
}

// DuplicateGroupIDHasSuffix applies the HasSuffix predicate on the "duplicate_group_id" field.
func DuplicateGroupIDHasSuffix(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldHasSuffix(FieldDuplicateGroupID, v))
}

// DuplicateGroupIDIsNil applies the IsNil predicate on the "duplicate_group_id" field.
func DuplicateGroupIDIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldDuplicateGroupID))
}

// DuplicateGroupIDNotNil applies the NotNil predicate on the "duplicate_group_id" field.
func DuplicateGroupIDNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldDuplicateGroupID))
}

// DuplicateGroupIDEqualFold applies the EqualFold predicate on the "duplicate_group_id" field.
func DuplicateGroupIDEqualFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldEqualFold(FieldDuplicateGroupID, v))
}

// DuplicateGroupIDContainsFold applies the ContainsFold predicate on the "duplicate_group_id" field.
func DuplicateGroupIDContainsFold(v string) predicate.Assignment {
	return predicate.Assignment(sql.FieldContainsFold(FieldDuplicateGroupID, v))
}

// IsPrimaryInGroupEQ applies the EQ predicate on the "is_primary_in_group" field.
func IsPrimaryInGroupEQ(v bool) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldIsPrimaryInGroup, v))
}

// IsPrimaryInGroupNEQ applies the NEQ predicate on the "is_primary_in_group" field.
func IsPrimaryInGroupNEQ(v bool) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldIsPrimaryInGroup, v))
}

// DuplicateConfidenceScoreEQ applies the EQ predicate on the "duplicate_confidence_score" field.
func DuplicateConfidenceScoreEQ(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldEQ(FieldDuplicateConfidenceScore, v))
}

// DuplicateConfidenceScoreNEQ applies the NEQ predicate on the "duplicate_confidence_score" field.
func DuplicateConfidenceScoreNEQ(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNEQ(FieldDuplicateConfidenceScore, v))
}

// DuplicateConfidenceScoreIn applies the In predicate on the "duplicate_confidence_score" field.
func DuplicateConfidenceScoreIn(vs ...float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldIn(FieldDuplicateConfidenceScore, vs...))
}

// DuplicateConfidenceScoreNotIn applies the NotIn predicate on the "duplicate_confidence_score" field.
func DuplicateConfidenceScoreNotIn(vs ...float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldNotIn(FieldDuplicateConfidenceScore, vs...))
}

// DuplicateConfidenceScoreGT applies the GT predicate on the "duplicate_confidence_score" field.
func DuplicateConfidenceScoreGT(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldGT(FieldDuplicateConfidenceScore, v))
}

// DuplicateConfidenceScoreGTE applies the GTE predicate on the "duplicate_confidence_score" field.
func DuplicateConfidenceScoreGTE(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldGTE(FieldDuplicateConfidenceScore, v))
}

// DuplicateConfidenceScoreLT applies the LT predicate on the "duplicate_confidence_score" field.
func DuplicateConfidenceScoreLT(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldLT(FieldDuplicateConfidenceScore, v))
}

// DuplicateConfidenceScoreLTE applies the LTE predicate on the "duplicate_confidence_score" field.
func DuplicateConfidenceScoreLTE(v float64) predicate.Assignment {
	return predicate.Assignment(sql.FieldLTE(FieldDuplicateConfidenceScore, v))
}

// DuplicateConfidenceScoreIsNil applies the IsNil predicate on the "duplicate_confidence_score" field.
func DuplicateConfidenceScoreIsNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldIsNull(FieldDuplicateConfidenceScore))
}

// DuplicateConfidenceScoreNotNil applies the NotNil predicate on the "duplicate_confidence_score" field.
func DuplicateConfidenceScoreNotNil() predicate.Assignment {
	return predicate.Assignment(sql.FieldNotNull(FieldDuplicateConfidenceScore))
}

// HasGroup applies the HasEdge predicate on the "group" edge.
func HasGroup() predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, GroupTable, GroupColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasGroupWith applies the HasEdge predicate on the "group" edge with a given conditions (other predicates).
func HasGroupWith(preds ...predicate.DuplicateGroup) predicate.Assignment {
	return predicate.Assignment(func(s *sql.Selector) {
		step := newGroupStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Assignment) predicate.Assignment {
	return predicate.Assignment(sql.NotPredicates(p))
}
