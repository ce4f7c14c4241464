// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/ent/duplicategroup"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// AssignmentUpdate is the builder for updating Assignment entities.
type AssignmentUpdate struct {
	config
	hooks    []Hook
	mutation *AssignmentMutation
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdate) Where(ps ...predicate.Assignment) *AssignmentUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetAssignmentCode sets the "assignment_code" field.
func (_u *AssignmentUpdate) SetAssignmentCode(v string) *AssignmentUpdate {
	_u.mutation.SetAssignmentCode(v)
	return _u
}

// SetNillableAssignmentCode sets the "assignment_code" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableAssignmentCode(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetAssignmentCode(*v)
	}
	return _u
}

// ClearAssignmentCode clears the value of the "assignment_code" field.
func (_u *AssignmentUpdate) ClearAssignmentCode() *AssignmentUpdate {
	_u.mutation.ClearAssignmentCode()
	return _u
}

// SetMessageLink sets the "message_link" field.
func (_u *AssignmentUpdate) SetMessageLink(v string) *AssignmentUpdate {
	_u.mutation.SetMessageLink(v)
	return _u
}

// SetNillableMessageLink sets the "message_link" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableMessageLink(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetMessageLink(*v)
	}
	return _u
}

// ClearMessageLink clears the value of the "message_link" field.
func (_u *AssignmentUpdate) ClearMessageLink() *AssignmentUpdate {
	_u.mutation.ClearMessageLink()
	return _u
}

// SetAcademicDisplayText sets the "academic_display_text" field.
func (_u *AssignmentUpdate) SetAcademicDisplayText(v string) *AssignmentUpdate {
	_u.mutation.SetAcademicDisplayText(v)
	return _u
}

// SetNillableAcademicDisplayText sets the "academic_display_text" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableAcademicDisplayText(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetAcademicDisplayText(*v)
	}
	return _u
}

// SetLessonSchedule sets the "lesson_schedule" field.
func (_u *AssignmentUpdate) SetLessonSchedule(v []string) *AssignmentUpdate {
	_u.mutation.SetLessonSchedule(v)
	return _u
}

// AppendLessonSchedule appends value to the "lesson_schedule" field.
func (_u *AssignmentUpdate) AppendLessonSchedule(v []string) *AssignmentUpdate {
	_u.mutation.AppendLessonSchedule(v)
	return _u
}

// ClearLessonSchedule clears the value of the "lesson_schedule" field.
func (_u *AssignmentUpdate) ClearLessonSchedule() *AssignmentUpdate {
	_u.mutation.ClearLessonSchedule()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *AssignmentUpdate) SetStartDate(v string) *AssignmentUpdate {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableStartDate(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *AssignmentUpdate) ClearStartDate() *AssignmentUpdate {
	_u.mutation.ClearStartDate()
	return _u
}

// SetTimeAvailabilityNote sets the "time_availability_note" field.
func (_u *AssignmentUpdate) SetTimeAvailabilityNote(v string) *AssignmentUpdate {
	_u.mutation.SetTimeAvailabilityNote(v)
	return _u
}

// SetNillableTimeAvailabilityNote sets the "time_availability_note" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableTimeAvailabilityNote(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetTimeAvailabilityNote(*v)
	}
	return _u
}

// ClearTimeAvailabilityNote clears the value of the "time_availability_note" field.
func (_u *AssignmentUpdate) ClearTimeAvailabilityNote() *AssignmentUpdate {
	_u.mutation.ClearTimeAvailabilityNote()
	return _u
}

// SetTutorTypes sets the "tutor_types" field.
func (_u *AssignmentUpdate) SetTutorTypes(v []map[string]interface{}) *AssignmentUpdate {
	_u.mutation.SetTutorTypes(v)
	return _u
}

// AppendTutorTypes appends value to the "tutor_types" field.
func (_u *AssignmentUpdate) AppendTutorTypes(v []map[string]interface{}) *AssignmentUpdate {
	_u.mutation.AppendTutorTypes(v)
	return _u
}

// ClearTutorTypes clears the value of the "tutor_types" field.
func (_u *AssignmentUpdate) ClearTutorTypes() *AssignmentUpdate {
	_u.mutation.ClearTutorTypes()
	return _u
}

// SetLearningMode sets the "learning_mode" field.
func (_u *AssignmentUpdate) SetLearningMode(v string) *AssignmentUpdate {
	_u.mutation.SetLearningMode(v)
	return _u
}

// SetNillableLearningMode sets the "learning_mode" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableLearningMode(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetLearningMode(*v)
	}
	return _u
}

// ClearLearningMode clears the value of the "learning_mode" field.
func (_u *AssignmentUpdate) ClearLearningMode() *AssignmentUpdate {
	_u.mutation.ClearLearningMode()
	return _u
}

// SetRateRawText sets the "rate_raw_text" field.
func (_u *AssignmentUpdate) SetRateRawText(v string) *AssignmentUpdate {
	_u.mutation.SetRateRawText(v)
	return _u
}

// SetNillableRateRawText sets the "rate_raw_text" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableRateRawText(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetRateRawText(*v)
	}
	return _u
}

// ClearRateRawText clears the value of the "rate_raw_text" field.
func (_u *AssignmentUpdate) ClearRateRawText() *AssignmentUpdate {
	_u.mutation.ClearRateRawText()
	return _u
}

// SetRateBreakdown sets the "rate_breakdown" field.
func (_u *AssignmentUpdate) SetRateBreakdown(v string) *AssignmentUpdate {
	_u.mutation.SetRateBreakdown(v)
	return _u
}

// SetNillableRateBreakdown sets the "rate_breakdown" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableRateBreakdown(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetRateBreakdown(*v)
	}
	return _u
}

// ClearRateBreakdown clears the value of the "rate_breakdown" field.
func (_u *AssignmentUpdate) ClearRateBreakdown() *AssignmentUpdate {
	_u.mutation.ClearRateBreakdown()
	return _u
}

// SetAddress sets the "address" field.
func (_u *AssignmentUpdate) SetAddress(v []string) *AssignmentUpdate {
	_u.mutation.SetAddress(v)
	return _u
}

// AppendAddress appends value to the "address" field.
func (_u *AssignmentUpdate) AppendAddress(v []string) *AssignmentUpdate {
	_u.mutation.AppendAddress(v)
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *AssignmentUpdate) ClearAddress() *AssignmentUpdate {
	_u.mutation.ClearAddress()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *AssignmentUpdate) SetPostalCode(v []string) *AssignmentUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// AppendPostalCode appends value to the "postal_code" field.
func (_u *AssignmentUpdate) AppendPostalCode(v []string) *AssignmentUpdate {
	_u.mutation.AppendPostalCode(v)
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *AssignmentUpdate) ClearPostalCode() *AssignmentUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetPostalCodeEstimated sets the "postal_code_estimated" field.
func (_u *AssignmentUpdate) SetPostalCodeEstimated(v []string) *AssignmentUpdate {
	_u.mutation.SetPostalCodeEstimated(v)
	return _u
}

// AppendPostalCodeEstimated appends value to the "postal_code_estimated" field.
func (_u *AssignmentUpdate) AppendPostalCodeEstimated(v []string) *AssignmentUpdate {
	_u.mutation.AppendPostalCodeEstimated(v)
	return _u
}

// ClearPostalCodeEstimated clears the value of the "postal_code_estimated" field.
func (_u *AssignmentUpdate) ClearPostalCodeEstimated() *AssignmentUpdate {
	_u.mutation.ClearPostalCodeEstimated()
	return _u
}

// SetPostalLat sets the "postal_lat" field.
func (_u *AssignmentUpdate) SetPostalLat(v float64) *AssignmentUpdate {
	_u.mutation.ResetPostalLat()
	_u.mutation.SetPostalLat(v)
	return _u
}

// SetNillablePostalLat sets the "postal_lat" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillablePostalLat(v *float64) *AssignmentUpdate {
	if v != nil {
		_u.SetPostalLat(*v)
	}
	return _u
}

// AddPostalLat adds value to the "postal_lat" field.
func (_u *AssignmentUpdate) AddPostalLat(v float64) *AssignmentUpdate {
	_u.mutation.AddPostalLat(v)
	return _u
}

// ClearPostalLat clears the value of the "postal_lat" field.
func (_u *AssignmentUpdate) ClearPostalLat() *AssignmentUpdate {
	_u.mutation.ClearPostalLat()
	return _u
}

// SetPostalLon sets the "postal_lon" field.
func (_u *AssignmentUpdate) SetPostalLon(v float64) *AssignmentUpdate {
	_u.mutation.ResetPostalLon()
	_u.mutation.SetPostalLon(v)
	return _u
}

// SetNillablePostalLon sets the "postal_lon" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillablePostalLon(v *float64) *AssignmentUpdate {
	if v != nil {
		_u.SetPostalLon(*v)
	}
	return _u
}

// AddPostalLon adds value to the "postal_lon" field.
func (_u *AssignmentUpdate) AddPostalLon(v float64) *AssignmentUpdate {
	_u.mutation.AddPostalLon(v)
	return _u
}

// ClearPostalLon clears the value of the "postal_lon" field.
func (_u *AssignmentUpdate) ClearPostalLon() *AssignmentUpdate {
	_u.mutation.ClearPostalLon()
	return _u
}

// SetPostalCoordsEstimated sets the "postal_coords_estimated" field.
func (_u *AssignmentUpdate) SetPostalCoordsEstimated(v bool) *AssignmentUpdate {
	_u.mutation.SetPostalCoordsEstimated(v)
	return _u
}

// SetNillablePostalCoordsEstimated sets the "postal_coords_estimated" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillablePostalCoordsEstimated(v *bool) *AssignmentUpdate {
	if v != nil {
		_u.SetPostalCoordsEstimated(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *AssignmentUpdate) SetRegion(v string) *AssignmentUpdate {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableRegion(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *AssignmentUpdate) ClearRegion() *AssignmentUpdate {
	_u.mutation.ClearRegion()
	return _u
}

// SetNearestMrtComputed sets the "nearest_mrt_computed" field.
func (_u *AssignmentUpdate) SetNearestMrtComputed(v string) *AssignmentUpdate {
	_u.mutation.SetNearestMrtComputed(v)
	return _u
}

// SetNillableNearestMrtComputed sets the "nearest_mrt_computed" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableNearestMrtComputed(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetNearestMrtComputed(*v)
	}
	return _u
}

// ClearNearestMrtComputed clears the value of the "nearest_mrt_computed" field.
func (_u *AssignmentUpdate) ClearNearestMrtComputed() *AssignmentUpdate {
	_u.mutation.ClearNearestMrtComputed()
	return _u
}

// SetNearestMrtLine sets the "nearest_mrt_line" field.
func (_u *AssignmentUpdate) SetNearestMrtLine(v string) *AssignmentUpdate {
	_u.mutation.SetNearestMrtLine(v)
	return _u
}

// SetNillableNearestMrtLine sets the "nearest_mrt_line" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableNearestMrtLine(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetNearestMrtLine(*v)
	}
	return _u
}

// ClearNearestMrtLine clears the value of the "nearest_mrt_line" field.
func (_u *AssignmentUpdate) ClearNearestMrtLine() *AssignmentUpdate {
	_u.mutation.ClearNearestMrtLine()
	return _u
}

// SetNearestMrtDistanceM sets the "nearest_mrt_distance_m" field.
func (_u *AssignmentUpdate) SetNearestMrtDistanceM(v int) *AssignmentUpdate {
	_u.mutation.ResetNearestMrtDistanceM()
	_u.mutation.SetNearestMrtDistanceM(v)
	return _u
}

// SetNillableNearestMrtDistanceM sets the "nearest_mrt_distance_m" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableNearestMrtDistanceM(v *int) *AssignmentUpdate {
	if v != nil {
		_u.SetNearestMrtDistanceM(*v)
	}
	return _u
}

// AddNearestMrtDistanceM adds value to the "nearest_mrt_distance_m" field.
func (_u *AssignmentUpdate) AddNearestMrtDistanceM(v int) *AssignmentUpdate {
	_u.mutation.AddNearestMrtDistanceM(v)
	return _u
}

// ClearNearestMrtDistanceM clears the value of the "nearest_mrt_distance_m" field.
func (_u *AssignmentUpdate) ClearNearestMrtDistanceM() *AssignmentUpdate {
	_u.mutation.ClearNearestMrtDistanceM()
	return _u
}

// SetRateMin sets the "rate_min" field.
func (_u *AssignmentUpdate) SetRateMin(v float64) *AssignmentUpdate {
	_u.mutation.ResetRateMin()
	_u.mutation.SetRateMin(v)
	return _u
}

// SetNillableRateMin sets the "rate_min" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableRateMin(v *float64) *AssignmentUpdate {
	if v != nil {
		_u.SetRateMin(*v)
	}
	return _u
}

// AddRateMin adds value to the "rate_min" field.
func (_u *AssignmentUpdate) AddRateMin(v float64) *AssignmentUpdate {
	_u.mutation.AddRateMin(v)
	return _u
}

// ClearRateMin clears the value of the "rate_min" field.
func (_u *AssignmentUpdate) ClearRateMin() *AssignmentUpdate {
	_u.mutation.ClearRateMin()
	return _u
}

// SetRateMax sets the "rate_max" field.
func (_u *AssignmentUpdate) SetRateMax(v float64) *AssignmentUpdate {
	_u.mutation.ResetRateMax()
	_u.mutation.SetRateMax(v)
	return _u
}

// SetNillableRateMax sets the "rate_max" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableRateMax(v *float64) *AssignmentUpdate {
	if v != nil {
		_u.SetRateMax(*v)
	}
	return _u
}

// AddRateMax adds value to the "rate_max" field.
func (_u *AssignmentUpdate) AddRateMax(v float64) *AssignmentUpdate {
	_u.mutation.AddRateMax(v)
	return _u
}

// ClearRateMax clears the value of the "rate_max" field.
func (_u *AssignmentUpdate) ClearRateMax() *AssignmentUpdate {
	_u.mutation.ClearRateMax()
	return _u
}

// SetSignalsSubjects sets the "signals_subjects" field.
func (_u *AssignmentUpdate) SetSignalsSubjects(v []string) *AssignmentUpdate {
	_u.mutation.SetSignalsSubjects(v)
	return _u
}

// AppendSignalsSubjects appends value to the "signals_subjects" field.
func (_u *AssignmentUpdate) AppendSignalsSubjects(v []string) *AssignmentUpdate {
	_u.mutation.AppendSignalsSubjects(v)
	return _u
}

// ClearSignalsSubjects clears the value of the "signals_subjects" field.
func (_u *AssignmentUpdate) ClearSignalsSubjects() *AssignmentUpdate {
	_u.mutation.ClearSignalsSubjects()
	return _u
}

// SetSignalsLevels sets the "signals_levels" field.
func (_u *AssignmentUpdate) SetSignalsLevels(v []string) *AssignmentUpdate {
	_u.mutation.SetSignalsLevels(v)
	return _u
}

// AppendSignalsLevels appends value to the "signals_levels" field.
func (_u *AssignmentUpdate) AppendSignalsLevels(v []string) *AssignmentUpdate {
	_u.mutation.AppendSignalsLevels(v)
	return _u
}

// ClearSignalsLevels clears the value of the "signals_levels" field.
func (_u *AssignmentUpdate) ClearSignalsLevels() *AssignmentUpdate {
	_u.mutation.ClearSignalsLevels()
	return _u
}

// SetSignalsSpecificStudentLevels sets the "signals_specific_student_levels" field.
func (_u *AssignmentUpdate) SetSignalsSpecificStudentLevels(v []string) *AssignmentUpdate {
	_u.mutation.SetSignalsSpecificStudentLevels(v)
	return _u
}

// AppendSignalsSpecificStudentLevels appends value to the "signals_specific_student_levels" field.
func (_u *AssignmentUpdate) AppendSignalsSpecificStudentLevels(v []string) *AssignmentUpdate {
	_u.mutation.AppendSignalsSpecificStudentLevels(v)
	return _u
}

// ClearSignalsSpecificStudentLevels clears the value of the "signals_specific_student_levels" field.
func (_u *AssignmentUpdate) ClearSignalsSpecificStudentLevels() *AssignmentUpdate {
	_u.mutation.ClearSignalsSpecificStudentLevels()
	return _u
}

// SetSubjectsCanonical sets the "subjects_canonical" field.
func (_u *AssignmentUpdate) SetSubjectsCanonical(v []string) *AssignmentUpdate {
	_u.mutation.SetSubjectsCanonical(v)
	return _u
}

// AppendSubjectsCanonical appends value to the "subjects_canonical" field.
func (_u *AssignmentUpdate) AppendSubjectsCanonical(v []string) *AssignmentUpdate {
	_u.mutation.AppendSubjectsCanonical(v)
	return _u
}

// ClearSubjectsCanonical clears the value of the "subjects_canonical" field.
func (_u *AssignmentUpdate) ClearSubjectsCanonical() *AssignmentUpdate {
	_u.mutation.ClearSubjectsCanonical()
	return _u
}

// SetSubjectsGeneral sets the "subjects_general" field.
func (_u *AssignmentUpdate) SetSubjectsGeneral(v []string) *AssignmentUpdate {
	_u.mutation.SetSubjectsGeneral(v)
	return _u
}

// AppendSubjectsGeneral appends value to the "subjects_general" field.
func (_u *AssignmentUpdate) AppendSubjectsGeneral(v []string) *AssignmentUpdate {
	_u.mutation.AppendSubjectsGeneral(v)
	return _u
}

// ClearSubjectsGeneral clears the value of the "subjects_general" field.
func (_u *AssignmentUpdate) ClearSubjectsGeneral() *AssignmentUpdate {
	_u.mutation.ClearSubjectsGeneral()
	return _u
}

// SetCanonicalizationVersion sets the "canonicalization_version" field.
func (_u *AssignmentUpdate) SetCanonicalizationVersion(v int) *AssignmentUpdate {
	_u.mutation.ResetCanonicalizationVersion()
	_u.mutation.SetCanonicalizationVersion(v)
	return _u
}

// SetNillableCanonicalizationVersion sets the "canonicalization_version" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableCanonicalizationVersion(v *int) *AssignmentUpdate {
	if v != nil {
		_u.SetCanonicalizationVersion(*v)
	}
	return _u
}

// AddCanonicalizationVersion adds value to the "canonicalization_version" field.
func (_u *AssignmentUpdate) AddCanonicalizationVersion(v int) *AssignmentUpdate {
	_u.mutation.AddCanonicalizationVersion(v)
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *AssignmentUpdate) SetPublishedAt(v time.Time) *AssignmentUpdate {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillablePublishedAt(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *AssignmentUpdate) ClearPublishedAt() *AssignmentUpdate {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetSourceLastSeen sets the "source_last_seen" field.
func (_u *AssignmentUpdate) SetSourceLastSeen(v time.Time) *AssignmentUpdate {
	_u.mutation.SetSourceLastSeen(v)
	return _u
}

// SetNillableSourceLastSeen sets the "source_last_seen" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableSourceLastSeen(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetSourceLastSeen(*v)
	}
	return _u
}

// ClearSourceLastSeen clears the value of the "source_last_seen" field.
func (_u *AssignmentUpdate) ClearSourceLastSeen() *AssignmentUpdate {
	_u.mutation.ClearSourceLastSeen()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *AssignmentUpdate) SetLastSeen(v time.Time) *AssignmentUpdate {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableLastSeen(v *time.Time) *AssignmentUpdate {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssignmentUpdate) SetStatus(v assignment.Status) *AssignmentUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableStatus(v *assignment.Status) *AssignmentUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFreshnessTier sets the "freshness_tier" field.
func (_u *AssignmentUpdate) SetFreshnessTier(v assignment.FreshnessTier) *AssignmentUpdate {
	_u.mutation.SetFreshnessTier(v)
	return _u
}

// SetNillableFreshnessTier sets the "freshness_tier" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableFreshnessTier(v *assignment.FreshnessTier) *AssignmentUpdate {
	if v != nil {
		_u.SetFreshnessTier(*v)
	}
	return _u
}

// SetBumpCount sets the "bump_count" field.
func (_u *AssignmentUpdate) SetBumpCount(v int) *AssignmentUpdate {
	_u.mutation.ResetBumpCount()
	_u.mutation.SetBumpCount(v)
	return _u
}

// SetNillableBumpCount sets the "bump_count" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableBumpCount(v *int) *AssignmentUpdate {
	if v != nil {
		_u.SetBumpCount(*v)
	}
	return _u
}

// AddBumpCount adds value to the "bump_count" field.
func (_u *AssignmentUpdate) AddBumpCount(v int) *AssignmentUpdate {
	_u.mutation.AddBumpCount(v)
	return _u
}

// SetDuplicateGroupID sets the "duplicate_group_id" field.
func (_u *AssignmentUpdate) SetDuplicateGroupID(v string) *AssignmentUpdate {
	_u.mutation.SetDuplicateGroupID(v)
	return _u
}

// SetNillableDuplicateGroupID sets the "duplicate_group_id" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableDuplicateGroupID(v *string) *AssignmentUpdate {
	if v != nil {
		_u.SetDuplicateGroupID(*v)
	}
	return _u
}

// ClearDuplicateGroupID clears the value of the "duplicate_group_id" field.
func (_u *AssignmentUpdate) ClearDuplicateGroupID() *AssignmentUpdate {
	_u.mutation.ClearDuplicateGroupID()
	return _u
}

// SetIsPrimaryInGroup sets the "is_primary_in_group" field.
func (_u *AssignmentUpdate) SetIsPrimaryInGroup(v bool) *AssignmentUpdate {
	_u.mutation.SetIsPrimaryInGroup(v)
	return _u
}

// SetNillableIsPrimaryInGroup sets the "is_primary_in_group" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableIsPrimaryInGroup(v *bool) *AssignmentUpdate {
	if v != nil {
		_u.SetIsPrimaryInGroup(*v)
	}
	return _u
}

// SetDuplicateConfidenceScore sets the "duplicate_confidence_score" field.
func (_u *AssignmentUpdate) SetDuplicateConfidenceScore(v float64) *AssignmentUpdate {
	_u.mutation.ResetDuplicateConfidenceScore()
	_u.mutation.SetDuplicateConfidenceScore(v)
	return _u
}

// SetNillableDuplicateConfidenceScore sets the "duplicate_confidence_score" field if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableDuplicateConfidenceScore(v *float64) *AssignmentUpdate {
	if v != nil {
		_u.SetDuplicateConfidenceScore(*v)
	}
	return _u
}

// AddDuplicateConfidenceScore adds value to the "duplicate_confidence_score" field.
func (_u *AssignmentUpdate) AddDuplicateConfidenceScore(v float64) *AssignmentUpdate {
	_u.mutation.AddDuplicateConfidenceScore(v)
	return _u
}

// ClearDuplicateConfidenceScore clears the value of the "duplicate_confidence_score" field.
func (_u *AssignmentUpdate) ClearDuplicateConfidenceScore() *AssignmentUpdate {
	_u.mutation.ClearDuplicateConfidenceScore()
	return _u
}

// SetGroupID sets the "group" edge to the DuplicateGroup entity by ID.
func (_u *AssignmentUpdate) SetGroupID(id string) *AssignmentUpdate {
	_u.mutation.SetGroupID(id)
	return _u
}

// SetNillableGroupID sets the "group" edge to the DuplicateGroup entity by ID if the given value is not nil.
func (_u *AssignmentUpdate) SetNillableGroupID(id *string) *AssignmentUpdate {
	if id != nil {
		_u = _u.SetGroupID(*id)
	}
	return _u
}

// SetGroup sets the "group" edge to the DuplicateGroup entity.
func (_u *AssignmentUpdate) SetGroup(v *DuplicateGroup) *AssignmentUpdate {
	return _u.SetGroupID(v.ID)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdate) Mutation() *AssignmentMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the DuplicateGroup entity.
func (_u *AssignmentUpdate) ClearGroup() *AssignmentUpdate {
	_u.mutation.ClearGroup()
	return _u
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *AssignmentUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *AssignmentUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := assignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assignment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FreshnessTier(); ok {
		if err := assignment.FreshnessTierValidator(v); err != nil {
			return &ValidationError{Name: "freshness_tier", err: fmt.Errorf(`ent: validator failed for field "Assignment.freshness_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssignmentCode(); ok {
		_spec.SetField(assignment.FieldAssignmentCode, field.TypeString, value)
	}
	if _u.mutation.AssignmentCodeCleared() {
		_spec.ClearField(assignment.FieldAssignmentCode, field.TypeString)
	}
	if value, ok := _u.mutation.MessageLink(); ok {
		_spec.SetField(assignment.FieldMessageLink, field.TypeString, value)
	}
	if _u.mutation.MessageLinkCleared() {
		_spec.ClearField(assignment.FieldMessageLink, field.TypeString)
	}
	if value, ok := _u.mutation.AcademicDisplayText(); ok {
		_spec.SetField(assignment.FieldAcademicDisplayText, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonSchedule(); ok {
		_spec.SetField(assignment.FieldLessonSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLessonSchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldLessonSchedule, value)
		})
	}
	if _u.mutation.LessonScheduleCleared() {
		_spec.ClearField(assignment.FieldLessonSchedule, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(assignment.FieldStartDate, field.TypeString, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(assignment.FieldStartDate, field.TypeString)
	}
	if value, ok := _u.mutation.TimeAvailabilityNote(); ok {
		_spec.SetField(assignment.FieldTimeAvailabilityNote, field.TypeString, value)
	}
	if _u.mutation.TimeAvailabilityNoteCleared() {
		_spec.ClearField(assignment.FieldTimeAvailabilityNote, field.TypeString)
	}
	if value, ok := _u.mutation.TutorTypes(); ok {
		_spec.SetField(assignment.FieldTutorTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTutorTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldTutorTypes, value)
		})
	}
	if _u.mutation.TutorTypesCleared() {
		_spec.ClearField(assignment.FieldTutorTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.LearningMode(); ok {
		_spec.SetField(assignment.FieldLearningMode, field.TypeString, value)
	}
	if _u.mutation.LearningModeCleared() {
		_spec.ClearField(assignment.FieldLearningMode, field.TypeString)
	}
	if value, ok := _u.mutation.RateRawText(); ok {
		_spec.SetField(assignment.FieldRateRawText, field.TypeString, value)
	}
	if _u.mutation.RateRawTextCleared() {
		_spec.ClearField(assignment.FieldRateRawText, field.TypeString)
	}
	if value, ok := _u.mutation.RateBreakdown(); ok {
		_spec.SetField(assignment.FieldRateBreakdown, field.TypeString, value)
	}
	if _u.mutation.RateBreakdownCleared() {
		_spec.ClearField(assignment.FieldRateBreakdown, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(assignment.FieldAddress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAddress(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldAddress, value)
		})
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(assignment.FieldAddress, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(assignment.FieldPostalCode, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPostalCode(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldPostalCode, value)
		})
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(assignment.FieldPostalCode, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostalCodeEstimated(); ok {
		_spec.SetField(assignment.FieldPostalCodeEstimated, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPostalCodeEstimated(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldPostalCodeEstimated, value)
		})
	}
	if _u.mutation.PostalCodeEstimatedCleared() {
		_spec.ClearField(assignment.FieldPostalCodeEstimated, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostalLat(); ok {
		_spec.SetField(assignment.FieldPostalLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPostalLat(); ok {
		_spec.AddField(assignment.FieldPostalLat, field.TypeFloat64, value)
	}
	if _u.mutation.PostalLatCleared() {
		_spec.ClearField(assignment.FieldPostalLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PostalLon(); ok {
		_spec.SetField(assignment.FieldPostalLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPostalLon(); ok {
		_spec.AddField(assignment.FieldPostalLon, field.TypeFloat64, value)
	}
	if _u.mutation.PostalLonCleared() {
		_spec.ClearField(assignment.FieldPostalLon, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PostalCoordsEstimated(); ok {
		_spec.SetField(assignment.FieldPostalCoordsEstimated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(assignment.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(assignment.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.NearestMrtComputed(); ok {
		_spec.SetField(assignment.FieldNearestMrtComputed, field.TypeString, value)
	}
	if _u.mutation.NearestMrtComputedCleared() {
		_spec.ClearField(assignment.FieldNearestMrtComputed, field.TypeString)
	}
	if value, ok := _u.mutation.NearestMrtLine(); ok {
		_spec.SetField(assignment.FieldNearestMrtLine, field.TypeString, value)
	}
	if _u.mutation.NearestMrtLineCleared() {
		_spec.ClearField(assignment.FieldNearestMrtLine, field.TypeString)
	}
	if value, ok := _u.mutation.NearestMrtDistanceM(); ok {
		_spec.SetField(assignment.FieldNearestMrtDistanceM, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNearestMrtDistanceM(); ok {
		_spec.AddField(assignment.FieldNearestMrtDistanceM, field.TypeInt, value)
	}
	if _u.mutation.NearestMrtDistanceMCleared() {
		_spec.ClearField(assignment.FieldNearestMrtDistanceM, field.TypeInt)
	}
	if value, ok := _u.mutation.RateMin(); ok {
		_spec.SetField(assignment.FieldRateMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateMin(); ok {
		_spec.AddField(assignment.FieldRateMin, field.TypeFloat64, value)
	}
	if _u.mutation.RateMinCleared() {
		_spec.ClearField(assignment.FieldRateMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RateMax(); ok {
		_spec.SetField(assignment.FieldRateMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateMax(); ok {
		_spec.AddField(assignment.FieldRateMax, field.TypeFloat64, value)
	}
	if _u.mutation.RateMaxCleared() {
		_spec.ClearField(assignment.FieldRateMax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SignalsSubjects(); ok {
		_spec.SetField(assignment.FieldSignalsSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSignalsSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldSignalsSubjects, value)
		})
	}
	if _u.mutation.SignalsSubjectsCleared() {
		_spec.ClearField(assignment.FieldSignalsSubjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.SignalsLevels(); ok {
		_spec.SetField(assignment.FieldSignalsLevels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSignalsLevels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldSignalsLevels, value)
		})
	}
	if _u.mutation.SignalsLevelsCleared() {
		_spec.ClearField(assignment.FieldSignalsLevels, field.TypeJSON)
	}
	if value, ok := _u.mutation.SignalsSpecificStudentLevels(); ok {
		_spec.SetField(assignment.FieldSignalsSpecificStudentLevels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSignalsSpecificStudentLevels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldSignalsSpecificStudentLevels, value)
		})
	}
	if _u.mutation.SignalsSpecificStudentLevelsCleared() {
		_spec.ClearField(assignment.FieldSignalsSpecificStudentLevels, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubjectsCanonical(); ok {
		_spec.SetField(assignment.FieldSubjectsCanonical, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjectsCanonical(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldSubjectsCanonical, value)
		})
	}
	if _u.mutation.SubjectsCanonicalCleared() {
		_spec.ClearField(assignment.FieldSubjectsCanonical, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubjectsGeneral(); ok {
		_spec.SetField(assignment.FieldSubjectsGeneral, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjectsGeneral(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldSubjectsGeneral, value)
		})
	}
	if _u.mutation.SubjectsGeneralCleared() {
		_spec.ClearField(assignment.FieldSubjectsGeneral, field.TypeJSON)
	}
	if value, ok := _u.mutation.CanonicalizationVersion(); ok {
		_spec.SetField(assignment.FieldCanonicalizationVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCanonicalizationVersion(); ok {
		_spec.AddField(assignment.FieldCanonicalizationVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(assignment.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(assignment.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceLastSeen(); ok {
		_spec.SetField(assignment.FieldSourceLastSeen, field.TypeTime, value)
	}
	if _u.mutation.SourceLastSeenCleared() {
		_spec.ClearField(assignment.FieldSourceLastSeen, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(assignment.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assignment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FreshnessTier(); ok {
		_spec.SetField(assignment.FieldFreshnessTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BumpCount(); ok {
		_spec.SetField(assignment.FieldBumpCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBumpCount(); ok {
		_spec.AddField(assignment.FieldBumpCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPrimaryInGroup(); ok {
		_spec.SetField(assignment.FieldIsPrimaryInGroup, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DuplicateConfidenceScore(); ok {
		_spec.SetField(assignment.FieldDuplicateConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuplicateConfidenceScore(); ok {
		_spec.AddField(assignment.FieldDuplicateConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.DuplicateConfidenceScoreCleared() {
		_spec.ClearField(assignment.FieldDuplicateConfidenceScore, field.TypeFloat64)
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.GroupTable,
			Columns: []string{assignment.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(duplicategroup.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.GroupTable,
			Columns: []string{assignment.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(duplicategroup.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// AssignmentUpdateOne is the builder for updating a single Assignment entity.
type AssignmentUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AssignmentMutation
}

// SetAssignmentCode sets the "assignment_code" field.
func (_u *AssignmentUpdateOne) SetAssignmentCode(v string) *AssignmentUpdateOne {
	_u.mutation.SetAssignmentCode(v)
	return _u
}

// SetNillableAssignmentCode sets the "assignment_code" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableAssignmentCode(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetAssignmentCode(*v)
	}
	return _u
}

// ClearAssignmentCode clears the value of the "assignment_code" field.
func (_u *AssignmentUpdateOne) ClearAssignmentCode() *AssignmentUpdateOne {
	_u.mutation.ClearAssignmentCode()
	return _u
}

// SetMessageLink sets the "message_link" field.
func (_u *AssignmentUpdateOne) SetMessageLink(v string) *AssignmentUpdateOne {
	_u.mutation.SetMessageLink(v)
	return _u
}

// SetNillableMessageLink sets the "message_link" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableMessageLink(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetMessageLink(*v)
	}
	return _u
}

// ClearMessageLink clears the value of the "message_link" field.
func (_u *AssignmentUpdateOne) ClearMessageLink() *AssignmentUpdateOne {
	_u.mutation.ClearMessageLink()
	return _u
}

// SetAcademicDisplayText sets the "academic_display_text" field.
func (_u *AssignmentUpdateOne) SetAcademicDisplayText(v string) *AssignmentUpdateOne {
	_u.mutation.SetAcademicDisplayText(v)
	return _u
}

// SetNillableAcademicDisplayText sets the "academic_display_text" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableAcademicDisplayText(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetAcademicDisplayText(*v)
	}
	return _u
}

// SetLessonSchedule sets the "lesson_schedule" field.
func (_u *AssignmentUpdateOne) SetLessonSchedule(v []string) *AssignmentUpdateOne {
	_u.mutation.SetLessonSchedule(v)
	return _u
}

// AppendLessonSchedule appends value to the "lesson_schedule" field.
func (_u *AssignmentUpdateOne) AppendLessonSchedule(v []string) *AssignmentUpdateOne {
	_u.mutation.AppendLessonSchedule(v)
	return _u
}

// ClearLessonSchedule clears the value of the "lesson_schedule" field.
func (_u *AssignmentUpdateOne) ClearLessonSchedule() *AssignmentUpdateOne {
	_u.mutation.ClearLessonSchedule()
	return _u
}

// SetStartDate sets the "start_date" field.
func (_u *AssignmentUpdateOne) SetStartDate(v string) *AssignmentUpdateOne {
	_u.mutation.SetStartDate(v)
	return _u
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableStartDate(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetStartDate(*v)
	}
	return _u
}

// ClearStartDate clears the value of the "start_date" field.
func (_u *AssignmentUpdateOne) ClearStartDate() *AssignmentUpdateOne {
	_u.mutation.ClearStartDate()
	return _u
}

// SetTimeAvailabilityNote sets the "time_availability_note" field.
func (_u *AssignmentUpdateOne) SetTimeAvailabilityNote(v string) *AssignmentUpdateOne {
	_u.mutation.SetTimeAvailabilityNote(v)
	return _u
}

// SetNillableTimeAvailabilityNote sets the "time_availability_note" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableTimeAvailabilityNote(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetTimeAvailabilityNote(*v)
	}
	return _u
}

// ClearTimeAvailabilityNote clears the value of the "time_availability_note" field.
func (_u *AssignmentUpdateOne) ClearTimeAvailabilityNote() *AssignmentUpdateOne {
	_u.mutation.ClearTimeAvailabilityNote()
	return _u
}

// SetTutorTypes sets the "tutor_types" field.
func (_u *AssignmentUpdateOne) SetTutorTypes(v []map[string]interface{}) *AssignmentUpdateOne {
	_u.mutation.SetTutorTypes(v)
	return _u
}

// AppendTutorTypes appends value to the "tutor_types" field.
func (_u *AssignmentUpdateOne) AppendTutorTypes(v []map[string]interface{}) *AssignmentUpdateOne {
	_u.mutation.AppendTutorTypes(v)
	return _u
}

// ClearTutorTypes clears the value of the "tutor_types" field.
func (_u *AssignmentUpdateOne) ClearTutorTypes() *AssignmentUpdateOne {
	_u.mutation.ClearTutorTypes()
	return _u
}

// SetLearningMode sets the "learning_mode" field.
func (_u *AssignmentUpdateOne) SetLearningMode(v string) *AssignmentUpdateOne {
	_u.mutation.SetLearningMode(v)
	return _u
}

// SetNillableLearningMode sets the "learning_mode" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableLearningMode(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetLearningMode(*v)
	}
	return _u
}

// ClearLearningMode clears the value of the "learning_mode" field.
func (_u *AssignmentUpdateOne) ClearLearningMode() *AssignmentUpdateOne {
	_u.mutation.ClearLearningMode()
	return _u
}

// SetRateRawText sets the "rate_raw_text" field.
func (_u *AssignmentUpdateOne) SetRateRawText(v string) *AssignmentUpdateOne {
	_u.mutation.SetRateRawText(v)
	return _u
}

// SetNillableRateRawText sets the "rate_raw_text" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableRateRawText(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetRateRawText(*v)
	}
	return _u
}

// ClearRateRawText clears the value of the "rate_raw_text" field.
func (_u *AssignmentUpdateOne) ClearRateRawText() *AssignmentUpdateOne {
	_u.mutation.ClearRateRawText()
	return _u
}

// SetRateBreakdown sets the "rate_breakdown" field.
func (_u *AssignmentUpdateOne) SetRateBreakdown(v string) *AssignmentUpdateOne {
	_u.mutation.SetRateBreakdown(v)
	return _u
}

// SetNillableRateBreakdown sets the "rate_breakdown" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableRateBreakdown(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetRateBreakdown(*v)
	}
	return _u
}

// ClearRateBreakdown clears the value of the "rate_breakdown" field.
func (_u *AssignmentUpdateOne) ClearRateBreakdown() *AssignmentUpdateOne {
	_u.mutation.ClearRateBreakdown()
	return _u
}

// SetAddress sets the "address" field.
func (_u *AssignmentUpdateOne) SetAddress(v []string) *AssignmentUpdateOne {
	_u.mutation.SetAddress(v)
	return _u
}

// AppendAddress appends value to the "address" field.
func (_u *AssignmentUpdateOne) AppendAddress(v []string) *AssignmentUpdateOne {
	_u.mutation.AppendAddress(v)
	return _u
}

// ClearAddress clears the value of the "address" field.
func (_u *AssignmentUpdateOne) ClearAddress() *AssignmentUpdateOne {
	_u.mutation.ClearAddress()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *AssignmentUpdateOne) SetPostalCode(v []string) *AssignmentUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// AppendPostalCode appends value to the "postal_code" field.
func (_u *AssignmentUpdateOne) AppendPostalCode(v []string) *AssignmentUpdateOne {
	_u.mutation.AppendPostalCode(v)
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *AssignmentUpdateOne) ClearPostalCode() *AssignmentUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetPostalCodeEstimated sets the "postal_code_estimated" field.
func (_u *AssignmentUpdateOne) SetPostalCodeEstimated(v []string) *AssignmentUpdateOne {
	_u.mutation.SetPostalCodeEstimated(v)
	return _u
}

// AppendPostalCodeEstimated appends value to the "postal_code_estimated" field.
func (_u *AssignmentUpdateOne) AppendPostalCodeEstimated(v []string) *AssignmentUpdateOne {
	_u.mutation.AppendPostalCodeEstimated(v)
	return _u
}

// ClearPostalCodeEstimated clears the value of the "postal_code_estimated" field.
func (_u *AssignmentUpdateOne) ClearPostalCodeEstimated() *AssignmentUpdateOne {
	_u.mutation.ClearPostalCodeEstimated()
	return _u
}

// SetPostalLat sets the "postal_lat" field.
func (_u *AssignmentUpdateOne) SetPostalLat(v float64) *AssignmentUpdateOne {
	_u.mutation.ResetPostalLat()
	_u.mutation.SetPostalLat(v)
	return _u
}

// SetNillablePostalLat sets the "postal_lat" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillablePostalLat(v *float64) *AssignmentUpdateOne {
	if v != nil {
		_u.SetPostalLat(*v)
	}
	return _u
}

// AddPostalLat adds value to the "postal_lat" field.
func (_u *AssignmentUpdateOne) AddPostalLat(v float64) *AssignmentUpdateOne {
	_u.mutation.AddPostalLat(v)
	return _u
}

// ClearPostalLat clears the value of the "postal_lat" field.
func (_u *AssignmentUpdateOne) ClearPostalLat() *AssignmentUpdateOne {
	_u.mutation.ClearPostalLat()
	return _u
}

// SetPostalLon sets the "postal_lon" field.
func (_u *AssignmentUpdateOne) SetPostalLon(v float64) *AssignmentUpdateOne {
	_u.mutation.ResetPostalLon()
	_u.mutation.SetPostalLon(v)
	return _u
}

// SetNillablePostalLon sets the "postal_lon" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillablePostalLon(v *float64) *AssignmentUpdateOne {
	if v != nil {
		_u.SetPostalLon(*v)
	}
	return _u
}

// AddPostalLon adds value to the "postal_lon" field.
func (_u *AssignmentUpdateOne) AddPostalLon(v float64) *AssignmentUpdateOne {
	_u.mutation.AddPostalLon(v)
	return _u
}

// ClearPostalLon clears the value of the "postal_lon" field.
func (_u *AssignmentUpdateOne) ClearPostalLon() *AssignmentUpdateOne {
	_u.mutation.ClearPostalLon()
	return _u
}

// SetPostalCoordsEstimated sets the "postal_coords_estimated" field.
func (_u *AssignmentUpdateOne) SetPostalCoordsEstimated(v bool) *AssignmentUpdateOne {
	_u.mutation.SetPostalCoordsEstimated(v)
	return _u
}

// SetNillablePostalCoordsEstimated sets the "postal_coords_estimated" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillablePostalCoordsEstimated(v *bool) *AssignmentUpdateOne {
	if v != nil {
		_u.SetPostalCoordsEstimated(*v)
	}
	return _u
}

// SetRegion sets the "region" field.
func (_u *AssignmentUpdateOne) SetRegion(v string) *AssignmentUpdateOne {
	_u.mutation.SetRegion(v)
	return _u
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableRegion(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetRegion(*v)
	}
	return _u
}

// ClearRegion clears the value of the "region" field.
func (_u *AssignmentUpdateOne) ClearRegion() *AssignmentUpdateOne {
	_u.mutation.ClearRegion()
	return _u
}

// SetNearestMrtComputed sets the "nearest_mrt_computed" field.
func (_u *AssignmentUpdateOne) SetNearestMrtComputed(v string) *AssignmentUpdateOne {
	_u.mutation.SetNearestMrtComputed(v)
	return _u
}

// SetNillableNearestMrtComputed sets the "nearest_mrt_computed" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableNearestMrtComputed(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetNearestMrtComputed(*v)
	}
	return _u
}

// ClearNearestMrtComputed clears the value of the "nearest_mrt_computed" field.
func (_u *AssignmentUpdateOne) ClearNearestMrtComputed() *AssignmentUpdateOne {
	_u.mutation.ClearNearestMrtComputed()
	return _u
}

// SetNearestMrtLine sets the "nearest_mrt_line" field.
func (_u *AssignmentUpdateOne) SetNearestMrtLine(v string) *AssignmentUpdateOne {
	_u.mutation.SetNearestMrtLine(v)
	return _u
}

// SetNillableNearestMrtLine sets the "nearest_mrt_line" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableNearestMrtLine(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetNearestMrtLine(*v)
	}
	return _u
}

// ClearNearestMrtLine clears the value of the "nearest_mrt_line" field.
func (_u *AssignmentUpdateOne) ClearNearestMrtLine() *AssignmentUpdateOne {
	_u.mutation.ClearNearestMrtLine()
	return _u
}

// SetNearestMrtDistanceM sets the "nearest_mrt_distance_m" field.
func (_u *AssignmentUpdateOne) SetNearestMrtDistanceM(v int) *AssignmentUpdateOne {
	_u.mutation.ResetNearestMrtDistanceM()
	_u.mutation.SetNearestMrtDistanceM(v)
	return _u
}

// SetNillableNearestMrtDistanceM sets the "nearest_mrt_distance_m" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableNearestMrtDistanceM(v *int) *AssignmentUpdateOne {
	if v != nil {
		_u.SetNearestMrtDistanceM(*v)
	}
	return _u
}

// AddNearestMrtDistanceM adds value to the "nearest_mrt_distance_m" field.
func (_u *AssignmentUpdateOne) AddNearestMrtDistanceM(v int) *AssignmentUpdateOne {
	_u.mutation.AddNearestMrtDistanceM(v)
	return _u
}

// ClearNearestMrtDistanceM clears the value of the "nearest_mrt_distance_m" field.
func (_u *AssignmentUpdateOne) ClearNearestMrtDistanceM() *AssignmentUpdateOne {
	_u.mutation.ClearNearestMrtDistanceM()
	return _u
}

// SetRateMin sets the "rate_min" field.
func (_u *AssignmentUpdateOne) SetRateMin(v float64) *AssignmentUpdateOne {
	_u.mutation.ResetRateMin()
	_u.mutation.SetRateMin(v)
	return _u
}

// SetNillableRateMin sets the "rate_min" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableRateMin(v *float64) *AssignmentUpdateOne {
	if v != nil {
		_u.SetRateMin(*v)
	}
	return _u
}

// AddRateMin adds value to the "rate_min" field.
func (_u *AssignmentUpdateOne) AddRateMin(v float64) *AssignmentUpdateOne {
	_u.mutation.AddRateMin(v)
	return _u
}

// ClearRateMin clears the value of the "rate_min" field.
func (_u *AssignmentUpdateOne) ClearRateMin() *AssignmentUpdateOne {
	_u.mutation.ClearRateMin()
	return _u
}

// SetRateMax sets the "rate_max" field.
func (_u *AssignmentUpdateOne) SetRateMax(v float64) *AssignmentUpdateOne {
	_u.mutation.ResetRateMax()
	_u.mutation.SetRateMax(v)
	return _u
}

// SetNillableRateMax sets the "rate_max" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableRateMax(v *float64) *AssignmentUpdateOne {
	if v != nil {
		_u.SetRateMax(*v)
	}
	return _u
}

// AddRateMax adds value to the "rate_max" field.
func (_u *AssignmentUpdateOne) AddRateMax(v float64) *AssignmentUpdateOne {
	_u.mutation.AddRateMax(v)
	return _u
}

// ClearRateMax clears the value of the "rate_max" field.
func (_u *AssignmentUpdateOne) ClearRateMax() *AssignmentUpdateOne {
	_u.mutation.ClearRateMax()
	return _u
}

// SetSignalsSubjects sets the "signals_subjects" field.
func (_u *AssignmentUpdateOne) SetSignalsSubjects(v []string) *AssignmentUpdateOne {
	_u.mutation.SetSignalsSubjects(v)
	return _u
}

// AppendSignalsSubjects appends value to the "signals_subjects" field.
func (_u *AssignmentUpdateOne) AppendSignalsSubjects(v []string) *AssignmentUpdateOne {
	_u.mutation.AppendSignalsSubjects(v)
	return _u
}

// ClearSignalsSubjects clears the value of the "signals_subjects" field.
func (_u *AssignmentUpdateOne) ClearSignalsSubjects() *AssignmentUpdateOne {
	_u.mutation.ClearSignalsSubjects()
	return _u
}

// SetSignalsLevels sets the "signals_levels" field.
func (_u *AssignmentUpdateOne) SetSignalsLevels(v []string) *AssignmentUpdateOne {
	_u.mutation.SetSignalsLevels(v)
	return _u
}

// AppendSignalsLevels appends value to the "signals_levels" field.
func (_u *AssignmentUpdateOne) AppendSignalsLevels(v []string) *AssignmentUpdateOne {
	_u.mutation.AppendSignalsLevels(v)
	return _u
}

// ClearSignalsLevels clears the value of the "signals_levels" field.
func (_u *AssignmentUpdateOne) ClearSignalsLevels() *AssignmentUpdateOne {
	_u.mutation.ClearSignalsLevels()
	return _u
}

// SetSignalsSpecificStudentLevels sets the "signals_specific_student_levels" field.
func (_u *AssignmentUpdateOne) SetSignalsSpecificStudentLevels(v []string) *AssignmentUpdateOne {
	_u.mutation.SetSignalsSpecificStudentLevels(v)
	return _u
}

// AppendSignalsSpecificStudentLevels appends value to the "signals_specific_student_levels" field.
func (_u *AssignmentUpdateOne) AppendSignalsSpecificStudentLevels(v []string) *AssignmentUpdateOne {
	_u.mutation.AppendSignalsSpecificStudentLevels(v)
	return _u
}

// ClearSignalsSpecificStudentLevels clears the value of the "signals_specific_student_levels" field.
func (_u *AssignmentUpdateOne) ClearSignalsSpecificStudentLevels() *AssignmentUpdateOne {
	_u.mutation.ClearSignalsSpecificStudentLevels()
	return _u
}

// SetSubjectsCanonical sets the "subjects_canonical" field.
func (_u *AssignmentUpdateOne) SetSubjectsCanonical(v []string) *AssignmentUpdateOne {
	_u.mutation.SetSubjectsCanonical(v)
	return _u
}

// AppendSubjectsCanonical appends value to the "subjects_canonical" field.
func (_u *AssignmentUpdateOne) AppendSubjectsCanonical(v []string) *AssignmentUpdateOne {
	_u.mutation.AppendSubjectsCanonical(v)
	return _u
}

// ClearSubjectsCanonical clears the value of the "subjects_canonical" field.
func (_u *AssignmentUpdateOne) ClearSubjectsCanonical() *AssignmentUpdateOne {
	_u.mutation.ClearSubjectsCanonical()
	return _u
}

// SetSubjectsGeneral sets the "subjects_general" field.
func (_u *AssignmentUpdateOne) SetSubjectsGeneral(v []string) *AssignmentUpdateOne {
	_u.mutation.SetSubjectsGeneral(v)
	return _u
}

// AppendSubjectsGeneral appends value to the "subjects_general" field.
func (_u *AssignmentUpdateOne) AppendSubjectsGeneral(v []string) *AssignmentUpdateOne {
	_u.mutation.AppendSubjectsGeneral(v)
	return _u
}

// ClearSubjectsGeneral clears the value of the "subjects_general" field.
func (_u *AssignmentUpdateOne) ClearSubjectsGeneral() *AssignmentUpdateOne {
	_u.mutation.ClearSubjectsGeneral()
	return _u
}

// SetCanonicalizationVersion sets the "canonicalization_version" field.
func (_u *AssignmentUpdateOne) SetCanonicalizationVersion(v int) *AssignmentUpdateOne {
	_u.mutation.ResetCanonicalizationVersion()
	_u.mutation.SetCanonicalizationVersion(v)
	return _u
}

// SetNillableCanonicalizationVersion sets the "canonicalization_version" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableCanonicalizationVersion(v *int) *AssignmentUpdateOne {
	if v != nil {
		_u.SetCanonicalizationVersion(*v)
	}
	return _u
}

// AddCanonicalizationVersion adds value to the "canonicalization_version" field.
func (_u *AssignmentUpdateOne) AddCanonicalizationVersion(v int) *AssignmentUpdateOne {
	_u.mutation.AddCanonicalizationVersion(v)
	return _u
}

// SetPublishedAt sets the "published_at" field.
func (_u *AssignmentUpdateOne) SetPublishedAt(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetPublishedAt(v)
	return _u
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillablePublishedAt(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetPublishedAt(*v)
	}
	return _u
}

// ClearPublishedAt clears the value of the "published_at" field.
func (_u *AssignmentUpdateOne) ClearPublishedAt() *AssignmentUpdateOne {
	_u.mutation.ClearPublishedAt()
	return _u
}

// SetSourceLastSeen sets the "source_last_seen" field.
func (_u *AssignmentUpdateOne) SetSourceLastSeen(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetSourceLastSeen(v)
	return _u
}

// SetNillableSourceLastSeen sets the "source_last_seen" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableSourceLastSeen(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetSourceLastSeen(*v)
	}
	return _u
}

// ClearSourceLastSeen clears the value of the "source_last_seen" field.
func (_u *AssignmentUpdateOne) ClearSourceLastSeen() *AssignmentUpdateOne {
	_u.mutation.ClearSourceLastSeen()
	return _u
}

// SetLastSeen sets the "last_seen" field.
func (_u *AssignmentUpdateOne) SetLastSeen(v time.Time) *AssignmentUpdateOne {
	_u.mutation.SetLastSeen(v)
	return _u
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableLastSeen(v *time.Time) *AssignmentUpdateOne {
	if v != nil {
		_u.SetLastSeen(*v)
	}
	return _u
}

// SetStatus sets the "status" field.
func (_u *AssignmentUpdateOne) SetStatus(v assignment.Status) *AssignmentUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableStatus(v *assignment.Status) *AssignmentUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetFreshnessTier sets the "freshness_tier" field.
func (_u *AssignmentUpdateOne) SetFreshnessTier(v assignment.FreshnessTier) *AssignmentUpdateOne {
	_u.mutation.SetFreshnessTier(v)
	return _u
}

// SetNillableFreshnessTier sets the "freshness_tier" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableFreshnessTier(v *assignment.FreshnessTier) *AssignmentUpdateOne {
	if v != nil {
		_u.SetFreshnessTier(*v)
	}
	return _u
}

// SetBumpCount sets the "bump_count" field.
func (_u *AssignmentUpdateOne) SetBumpCount(v int) *AssignmentUpdateOne {
	_u.mutation.ResetBumpCount()
	_u.mutation.SetBumpCount(v)
	return _u
}

// SetNillableBumpCount sets the "bump_count" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableBumpCount(v *int) *AssignmentUpdateOne {
	if v != nil {
		_u.SetBumpCount(*v)
	}
	return _u
}

// AddBumpCount adds value to the "bump_count" field.
func (_u *AssignmentUpdateOne) AddBumpCount(v int) *AssignmentUpdateOne {
	_u.mutation.AddBumpCount(v)
	return _u
}

// SetDuplicateGroupID sets the "duplicate_group_id" field.
func (_u *AssignmentUpdateOne) SetDuplicateGroupID(v string) *AssignmentUpdateOne {
	_u.mutation.SetDuplicateGroupID(v)
	return _u
}

// SetNillableDuplicateGroupID sets the "duplicate_group_id" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableDuplicateGroupID(v *string) *AssignmentUpdateOne {
	if v != nil {
		_u.SetDuplicateGroupID(*v)
	}
	return _u
}

// ClearDuplicateGroupID clears the value of the "duplicate_group_id" field.
func (_u *AssignmentUpdateOne) ClearDuplicateGroupID() *AssignmentUpdateOne {
	_u.mutation.ClearDuplicateGroupID()
	return _u
}

// SetIsPrimaryInGroup sets the "is_primary_in_group" field.
func (_u *AssignmentUpdateOne) SetIsPrimaryInGroup(v bool) *AssignmentUpdateOne {
	_u.mutation.SetIsPrimaryInGroup(v)
	return _u
}

// SetNillableIsPrimaryInGroup sets the "is_primary_in_group" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableIsPrimaryInGroup(v *bool) *AssignmentUpdateOne {
	if v != nil {
		_u.SetIsPrimaryInGroup(*v)
	}
	return _u
}

// SetDuplicateConfidenceScore sets the "duplicate_confidence_score" field.
func (_u *AssignmentUpdateOne) SetDuplicateConfidenceScore(v float64) *AssignmentUpdateOne {
	_u.mutation.ResetDuplicateConfidenceScore()
	_u.mutation.SetDuplicateConfidenceScore(v)
	return _u
}

// SetNillableDuplicateConfidenceScore sets the "duplicate_confidence_score" field if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableDuplicateConfidenceScore(v *float64) *AssignmentUpdateOne {
	if v != nil {
		_u.SetDuplicateConfidenceScore(*v)
	}
	return _u
}

// AddDuplicateConfidenceScore adds value to the "duplicate_confidence_score" field.
func (_u *AssignmentUpdateOne) AddDuplicateConfidenceScore(v float64) *AssignmentUpdateOne {
	_u.mutation.AddDuplicateConfidenceScore(v)
	return _u
}

// ClearDuplicateConfidenceScore clears the value of the "duplicate_confidence_score" field.
func (_u *AssignmentUpdateOne) ClearDuplicateConfidenceScore() *AssignmentUpdateOne {
	_u.mutation.ClearDuplicateConfidenceScore()
	return _u
}

// SetGroupID sets the "group" edge to the DuplicateGroup entity by ID.
func (_u *AssignmentUpdateOne) SetGroupID(id string) *AssignmentUpdateOne {
	_u.mutation.SetGroupID(id)
	return _u
}

// SetNillableGroupID sets the "group" edge to the DuplicateGroup entity by ID if the given value is not nil.
func (_u *AssignmentUpdateOne) SetNillableGroupID(id *string) *AssignmentUpdateOne {
	if id != nil {
		_u = _u.SetGroupID(*id)
	}
	return _u
}

// SetGroup sets the "group" edge to the DuplicateGroup entity.
func (_u *AssignmentUpdateOne) SetGroup(v *DuplicateGroup) *AssignmentUpdateOne {
	return _u.SetGroupID(v.ID)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_u *AssignmentUpdateOne) Mutation() *AssignmentMutation {
	return _u.mutation
}

// ClearGroup clears the "group" edge to the DuplicateGroup entity.
func (_u *AssignmentUpdateOne) ClearGroup() *AssignmentUpdateOne {
	_u.mutation.ClearGroup()
	return _u
}

// Where appends a list predicates to the AssignmentUpdate builder.
func (_u *AssignmentUpdateOne) Where(ps ...predicate.Assignment) *AssignmentUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *AssignmentUpdateOne) Select(field string, fields ...string) *AssignmentUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Assignment entity.
func (_u *AssignmentUpdateOne) Save(ctx context.Context) (*Assignment, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *AssignmentUpdateOne) SaveX(ctx context.Context) *Assignment {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *AssignmentUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *AssignmentUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *AssignmentUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := assignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assignment.status": %w`, err)}
		}
	}
	if v, ok := _u.mutation.FreshnessTier(); ok {
		if err := assignment.FreshnessTierValidator(v); err != nil {
			return &ValidationError{Name: "freshness_tier", err: fmt.Errorf(`ent: validator failed for field "Assignment.freshness_tier": %w`, err)}
		}
	}
	return nil
}

func (_u *AssignmentUpdateOne) sqlSave(ctx context.Context) (_node *Assignment, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(assignment.Table, assignment.Columns, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Assignment.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, assignment.FieldID)
		for _, f := range fields {
			if !assignment.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != assignment.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.AssignmentCode(); ok {
		_spec.SetField(assignment.FieldAssignmentCode, field.TypeString, value)
	}
	if _u.mutation.AssignmentCodeCleared() {
		_spec.ClearField(assignment.FieldAssignmentCode, field.TypeString)
	}
	if value, ok := _u.mutation.MessageLink(); ok {
		_spec.SetField(assignment.FieldMessageLink, field.TypeString, value)
	}
	if _u.mutation.MessageLinkCleared() {
		_spec.ClearField(assignment.FieldMessageLink, field.TypeString)
	}
	if value, ok := _u.mutation.AcademicDisplayText(); ok {
		_spec.SetField(assignment.FieldAcademicDisplayText, field.TypeString, value)
	}
	if value, ok := _u.mutation.LessonSchedule(); ok {
		_spec.SetField(assignment.FieldLessonSchedule, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLessonSchedule(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldLessonSchedule, value)
		})
	}
	if _u.mutation.LessonScheduleCleared() {
		_spec.ClearField(assignment.FieldLessonSchedule, field.TypeJSON)
	}
	if value, ok := _u.mutation.StartDate(); ok {
		_spec.SetField(assignment.FieldStartDate, field.TypeString, value)
	}
	if _u.mutation.StartDateCleared() {
		_spec.ClearField(assignment.FieldStartDate, field.TypeString)
	}
	if value, ok := _u.mutation.TimeAvailabilityNote(); ok {
		_spec.SetField(assignment.FieldTimeAvailabilityNote, field.TypeString, value)
	}
	if _u.mutation.TimeAvailabilityNoteCleared() {
		_spec.ClearField(assignment.FieldTimeAvailabilityNote, field.TypeString)
	}
	if value, ok := _u.mutation.TutorTypes(); ok {
		_spec.SetField(assignment.FieldTutorTypes, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedTutorTypes(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldTutorTypes, value)
		})
	}
	if _u.mutation.TutorTypesCleared() {
		_spec.ClearField(assignment.FieldTutorTypes, field.TypeJSON)
	}
	if value, ok := _u.mutation.LearningMode(); ok {
		_spec.SetField(assignment.FieldLearningMode, field.TypeString, value)
	}
	if _u.mutation.LearningModeCleared() {
		_spec.ClearField(assignment.FieldLearningMode, field.TypeString)
	}
	if value, ok := _u.mutation.RateRawText(); ok {
		_spec.SetField(assignment.FieldRateRawText, field.TypeString, value)
	}
	if _u.mutation.RateRawTextCleared() {
		_spec.ClearField(assignment.FieldRateRawText, field.TypeString)
	}
	if value, ok := _u.mutation.RateBreakdown(); ok {
		_spec.SetField(assignment.FieldRateBreakdown, field.TypeString, value)
	}
	if _u.mutation.RateBreakdownCleared() {
		_spec.ClearField(assignment.FieldRateBreakdown, field.TypeString)
	}
	if value, ok := _u.mutation.Address(); ok {
		_spec.SetField(assignment.FieldAddress, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedAddress(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldAddress, value)
		})
	}
	if _u.mutation.AddressCleared() {
		_spec.ClearField(assignment.FieldAddress, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(assignment.FieldPostalCode, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPostalCode(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldPostalCode, value)
		})
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(assignment.FieldPostalCode, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostalCodeEstimated(); ok {
		_spec.SetField(assignment.FieldPostalCodeEstimated, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedPostalCodeEstimated(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldPostalCodeEstimated, value)
		})
	}
	if _u.mutation.PostalCodeEstimatedCleared() {
		_spec.ClearField(assignment.FieldPostalCodeEstimated, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostalLat(); ok {
		_spec.SetField(assignment.FieldPostalLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPostalLat(); ok {
		_spec.AddField(assignment.FieldPostalLat, field.TypeFloat64, value)
	}
	if _u.mutation.PostalLatCleared() {
		_spec.ClearField(assignment.FieldPostalLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PostalLon(); ok {
		_spec.SetField(assignment.FieldPostalLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedPostalLon(); ok {
		_spec.AddField(assignment.FieldPostalLon, field.TypeFloat64, value)
	}
	if _u.mutation.PostalLonCleared() {
		_spec.ClearField(assignment.FieldPostalLon, field.TypeFloat64)
	}
	if value, ok := _u.mutation.PostalCoordsEstimated(); ok {
		_spec.SetField(assignment.FieldPostalCoordsEstimated, field.TypeBool, value)
	}
	if value, ok := _u.mutation.Region(); ok {
		_spec.SetField(assignment.FieldRegion, field.TypeString, value)
	}
	if _u.mutation.RegionCleared() {
		_spec.ClearField(assignment.FieldRegion, field.TypeString)
	}
	if value, ok := _u.mutation.NearestMrtComputed(); ok {
		_spec.SetField(assignment.FieldNearestMrtComputed, field.TypeString, value)
	}
	if _u.mutation.NearestMrtComputedCleared() {
		_spec.ClearField(assignment.FieldNearestMrtComputed, field.TypeString)
	}
	if value, ok := _u.mutation.NearestMrtLine(); ok {
		_spec.SetField(assignment.FieldNearestMrtLine, field.TypeString, value)
	}
	if _u.mutation.NearestMrtLineCleared() {
		_spec.ClearField(assignment.FieldNearestMrtLine, field.TypeString)
	}
	if value, ok := _u.mutation.NearestMrtDistanceM(); ok {
		_spec.SetField(assignment.FieldNearestMrtDistanceM, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedNearestMrtDistanceM(); ok {
		_spec.AddField(assignment.FieldNearestMrtDistanceM, field.TypeInt, value)
	}
	if _u.mutation.NearestMrtDistanceMCleared() {
		_spec.ClearField(assignment.FieldNearestMrtDistanceM, field.TypeInt)
	}
	if value, ok := _u.mutation.RateMin(); ok {
		_spec.SetField(assignment.FieldRateMin, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateMin(); ok {
		_spec.AddField(assignment.FieldRateMin, field.TypeFloat64, value)
	}
	if _u.mutation.RateMinCleared() {
		_spec.ClearField(assignment.FieldRateMin, field.TypeFloat64)
	}
	if value, ok := _u.mutation.RateMax(); ok {
		_spec.SetField(assignment.FieldRateMax, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedRateMax(); ok {
		_spec.AddField(assignment.FieldRateMax, field.TypeFloat64, value)
	}
	if _u.mutation.RateMaxCleared() {
		_spec.ClearField(assignment.FieldRateMax, field.TypeFloat64)
	}
	if value, ok := _u.mutation.SignalsSubjects(); ok {
		_spec.SetField(assignment.FieldSignalsSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSignalsSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldSignalsSubjects, value)
		})
	}
	if _u.mutation.SignalsSubjectsCleared() {
		_spec.ClearField(assignment.FieldSignalsSubjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.SignalsLevels(); ok {
		_spec.SetField(assignment.FieldSignalsLevels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSignalsLevels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldSignalsLevels, value)
		})
	}
	if _u.mutation.SignalsLevelsCleared() {
		_spec.ClearField(assignment.FieldSignalsLevels, field.TypeJSON)
	}
	if value, ok := _u.mutation.SignalsSpecificStudentLevels(); ok {
		_spec.SetField(assignment.FieldSignalsSpecificStudentLevels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSignalsSpecificStudentLevels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldSignalsSpecificStudentLevels, value)
		})
	}
	if _u.mutation.SignalsSpecificStudentLevelsCleared() {
		_spec.ClearField(assignment.FieldSignalsSpecificStudentLevels, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubjectsCanonical(); ok {
		_spec.SetField(assignment.FieldSubjectsCanonical, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjectsCanonical(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldSubjectsCanonical, value)
		})
	}
	if _u.mutation.SubjectsCanonicalCleared() {
		_spec.ClearField(assignment.FieldSubjectsCanonical, field.TypeJSON)
	}
	if value, ok := _u.mutation.SubjectsGeneral(); ok {
		_spec.SetField(assignment.FieldSubjectsGeneral, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjectsGeneral(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, assignment.FieldSubjectsGeneral, value)
		})
	}
	if _u.mutation.SubjectsGeneralCleared() {
		_spec.ClearField(assignment.FieldSubjectsGeneral, field.TypeJSON)
	}
	if value, ok := _u.mutation.CanonicalizationVersion(); ok {
		_spec.SetField(assignment.FieldCanonicalizationVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedCanonicalizationVersion(); ok {
		_spec.AddField(assignment.FieldCanonicalizationVersion, field.TypeInt, value)
	}
	if value, ok := _u.mutation.PublishedAt(); ok {
		_spec.SetField(assignment.FieldPublishedAt, field.TypeTime, value)
	}
	if _u.mutation.PublishedAtCleared() {
		_spec.ClearField(assignment.FieldPublishedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.SourceLastSeen(); ok {
		_spec.SetField(assignment.FieldSourceLastSeen, field.TypeTime, value)
	}
	if _u.mutation.SourceLastSeenCleared() {
		_spec.ClearField(assignment.FieldSourceLastSeen, field.TypeTime)
	}
	if value, ok := _u.mutation.LastSeen(); ok {
		_spec.SetField(assignment.FieldLastSeen, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(assignment.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.FreshnessTier(); ok {
		_spec.SetField(assignment.FieldFreshnessTier, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.BumpCount(); ok {
		_spec.SetField(assignment.FieldBumpCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedBumpCount(); ok {
		_spec.AddField(assignment.FieldBumpCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.IsPrimaryInGroup(); ok {
		_spec.SetField(assignment.FieldIsPrimaryInGroup, field.TypeBool, value)
	}
	if value, ok := _u.mutation.DuplicateConfidenceScore(); ok {
		_spec.SetField(assignment.FieldDuplicateConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDuplicateConfidenceScore(); ok {
		_spec.AddField(assignment.FieldDuplicateConfidenceScore, field.TypeFloat64, value)
	}
	if _u.mutation.DuplicateConfidenceScoreCleared() {
		_spec.ClearField(assignment.FieldDuplicateConfidenceScore, field.TypeFloat64)
	}
	if _u.mutation.GroupCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.GroupTable,
			Columns: []string{assignment.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(duplicategroup.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.GroupIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   assignment.GroupTable,
			Columns: []string{assignment.GroupColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(duplicategroup.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Assignment{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{assignment.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
