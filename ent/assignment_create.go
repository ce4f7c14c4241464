// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/ent/duplicategroup"
)

// AssignmentCreate is the builder for creating a Assignment entity.
type AssignmentCreate struct {
	config
	mutation *AssignmentMutation
	hooks    []Hook
}

// SetExternalID sets the "external_id" field.
func (_c *AssignmentCreate) SetExternalID(v string) *AssignmentCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetAgencyID sets the "agency_id" field.
func (_c *AssignmentCreate) SetAgencyID(v string) *AssignmentCreate {
	_c.mutation.SetAgencyID(v)
	return _c
}

// SetAssignmentCode sets the "assignment_code" field.
func (_c *AssignmentCreate) SetAssignmentCode(v string) *AssignmentCreate {
	_c.mutation.SetAssignmentCode(v)
	return _c
}

// SetNillableAssignmentCode sets the "assignment_code" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableAssignmentCode(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetAssignmentCode(*v)
	}
	return _c
}

// SetMessageLink sets the "message_link" field.
func (_c *AssignmentCreate) SetMessageLink(v string) *AssignmentCreate {
	_c.mutation.SetMessageLink(v)
	return _c
}

// SetNillableMessageLink sets the "message_link" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableMessageLink(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetMessageLink(*v)
	}
	return _c
}

// SetAcademicDisplayText sets the "academic_display_text" field.
func (_c *AssignmentCreate) SetAcademicDisplayText(v string) *AssignmentCreate {
	_c.mutation.SetAcademicDisplayText(v)
	return _c
}

// SetLessonSchedule sets the "lesson_schedule" field.
func (_c *AssignmentCreate) SetLessonSchedule(v []string) *AssignmentCreate {
	_c.mutation.SetLessonSchedule(v)
	return _c
}

// SetStartDate sets the "start_date" field.
func (_c *AssignmentCreate) SetStartDate(v string) *AssignmentCreate {
	_c.mutation.SetStartDate(v)
	return _c
}

// SetNillableStartDate sets the "start_date" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableStartDate(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetStartDate(*v)
	}
	return _c
}

// SetTimeAvailabilityNote sets the "time_availability_note" field.
func (_c *AssignmentCreate) SetTimeAvailabilityNote(v string) *AssignmentCreate {
	_c.mutation.SetTimeAvailabilityNote(v)
	return _c
}

// SetNillableTimeAvailabilityNote sets the "time_availability_note" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableTimeAvailabilityNote(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetTimeAvailabilityNote(*v)
	}
	return _c
}

// SetTutorTypes sets the "tutor_types" field.
func (_c *AssignmentCreate) SetTutorTypes(v []map[string]interface{}) *AssignmentCreate {
	_c.mutation.SetTutorTypes(v)
	return _c
}

// SetLearningMode sets the "learning_mode" field.
func (_c *AssignmentCreate) SetLearningMode(v string) *AssignmentCreate {
	_c.mutation.SetLearningMode(v)
	return _c
}

// SetNillableLearningMode sets the "learning_mode" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableLearningMode(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetLearningMode(*v)
	}
	return _c
}

// SetRateRawText sets the "rate_raw_text" field.
func (_c *AssignmentCreate) SetRateRawText(v string) *AssignmentCreate {
	_c.mutation.SetRateRawText(v)
	return _c
}

// SetNillableRateRawText sets the "rate_raw_text" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableRateRawText(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetRateRawText(*v)
	}
	return _c
}

// SetRateBreakdown sets the "rate_breakdown" field.
func (_c *AssignmentCreate) SetRateBreakdown(v string) *AssignmentCreate {
	_c.mutation.SetRateBreakdown(v)
	return _c
}

// SetNillableRateBreakdown sets the "rate_breakdown" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableRateBreakdown(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetRateBreakdown(*v)
	}
	return _c
}

// SetAddress sets the "address" field.
func (_c *AssignmentCreate) SetAddress(v []string) *AssignmentCreate {
	_c.mutation.SetAddress(v)
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *AssignmentCreate) SetPostalCode(v []string) *AssignmentCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetPostalCodeEstimated sets the "postal_code_estimated" field.
func (_c *AssignmentCreate) SetPostalCodeEstimated(v []string) *AssignmentCreate {
	_c.mutation.SetPostalCodeEstimated(v)
	return _c
}

// SetPostalLat sets the "postal_lat" field.
func (_c *AssignmentCreate) SetPostalLat(v float64) *AssignmentCreate {
	_c.mutation.SetPostalLat(v)
	return _c
}

// SetNillablePostalLat sets the "postal_lat" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillablePostalLat(v *float64) *AssignmentCreate {
	if v != nil {
		_c.SetPostalLat(*v)
	}
	return _c
}

// SetPostalLon sets the "postal_lon" field.
func (_c *AssignmentCreate) SetPostalLon(v float64) *AssignmentCreate {
	_c.mutation.SetPostalLon(v)
	return _c
}

// SetNillablePostalLon sets the "postal_lon" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillablePostalLon(v *float64) *AssignmentCreate {
	if v != nil {
		_c.SetPostalLon(*v)
	}
	return _c
}

// SetPostalCoordsEstimated sets the "postal_coords_estimated" field.
func (_c *AssignmentCreate) SetPostalCoordsEstimated(v bool) *AssignmentCreate {
	_c.mutation.SetPostalCoordsEstimated(v)
	return _c
}

// SetNillablePostalCoordsEstimated sets the "postal_coords_estimated" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillablePostalCoordsEstimated(v *bool) *AssignmentCreate {
	if v != nil {
		_c.SetPostalCoordsEstimated(*v)
	}
	return _c
}

// SetRegion sets the "region" field.
func (_c *AssignmentCreate) SetRegion(v string) *AssignmentCreate {
	_c.mutation.SetRegion(v)
	return _c
}

// SetNillableRegion sets the "region" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableRegion(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetRegion(*v)
	}
	return _c
}

// SetNearestMrtComputed sets the "nearest_mrt_computed" field.
func (_c *AssignmentCreate) SetNearestMrtComputed(v string) *AssignmentCreate {
	_c.mutation.SetNearestMrtComputed(v)
	return _c
}

// SetNillableNearestMrtComputed sets the "nearest_mrt_computed" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableNearestMrtComputed(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetNearestMrtComputed(*v)
	}
	return _c
}

// SetNearestMrtLine sets the "nearest_mrt_line" field.
func (_c *AssignmentCreate) SetNearestMrtLine(v string) *AssignmentCreate {
	_c.mutation.SetNearestMrtLine(v)
	return _c
}

// SetNillableNearestMrtLine sets the "nearest_mrt_line" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableNearestMrtLine(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetNearestMrtLine(*v)
	}
	return _c
}

// SetNearestMrtDistanceM sets the "nearest_mrt_distance_m" field.
func (_c *AssignmentCreate) SetNearestMrtDistanceM(v int) *AssignmentCreate {
	_c.mutation.SetNearestMrtDistanceM(v)
	return _c
}

// SetNillableNearestMrtDistanceM sets the "nearest_mrt_distance_m" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableNearestMrtDistanceM(v *int) *AssignmentCreate {
	if v != nil {
		_c.SetNearestMrtDistanceM(*v)
	}
	return _c
}

// SetRateMin sets the "rate_min" field.
func (_c *AssignmentCreate) SetRateMin(v float64) *AssignmentCreate {
	_c.mutation.SetRateMin(v)
	return _c
}

// SetNillableRateMin sets the "rate_min" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableRateMin(v *float64) *AssignmentCreate {
	if v != nil {
		_c.SetRateMin(*v)
	}
	return _c
}

// SetRateMax sets the "rate_max" field.
func (_c *AssignmentCreate) SetRateMax(v float64) *AssignmentCreate {
	_c.mutation.SetRateMax(v)
	return _c
}

// SetNillableRateMax sets the "rate_max" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableRateMax(v *float64) *AssignmentCreate {
	if v != nil {
		_c.SetRateMax(*v)
	}
	return _c
}

// SetSignalsSubjects sets the "signals_subjects" field.
func (_c *AssignmentCreate) SetSignalsSubjects(v []string) *AssignmentCreate {
	_c.mutation.SetSignalsSubjects(v)
	return _c
}

// SetSignalsLevels sets the "signals_levels" field.
func (_c *AssignmentCreate) SetSignalsLevels(v []string) *AssignmentCreate {
	_c.mutation.SetSignalsLevels(v)
	return _c
}

// SetSignalsSpecificStudentLevels sets the "signals_specific_student_levels" field.
func (_c *AssignmentCreate) SetSignalsSpecificStudentLevels(v []string) *AssignmentCreate {
	_c.mutation.SetSignalsSpecificStudentLevels(v)
	return _c
}

// SetSubjectsCanonical sets the "subjects_canonical" field.
func (_c *AssignmentCreate) SetSubjectsCanonical(v []string) *AssignmentCreate {
	_c.mutation.SetSubjectsCanonical(v)
	return _c
}

// SetSubjectsGeneral sets the "subjects_general" field.
func (_c *AssignmentCreate) SetSubjectsGeneral(v []string) *AssignmentCreate {
	_c.mutation.SetSubjectsGeneral(v)
	return _c
}

// SetCanonicalizationVersion sets the "canonicalization_version" field.
func (_c *AssignmentCreate) SetCanonicalizationVersion(v int) *AssignmentCreate {
	_c.mutation.SetCanonicalizationVersion(v)
	return _c
}

// SetNillableCanonicalizationVersion sets the "canonicalization_version" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableCanonicalizationVersion(v *int) *AssignmentCreate {
	if v != nil {
		_c.SetCanonicalizationVersion(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *AssignmentCreate) SetCreatedAt(v time.Time) *AssignmentCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableCreatedAt(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetPublishedAt sets the "published_at" field.
func (_c *AssignmentCreate) SetPublishedAt(v time.Time) *AssignmentCreate {
	_c.mutation.SetPublishedAt(v)
	return _c
}

// SetNillablePublishedAt sets the "published_at" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillablePublishedAt(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetPublishedAt(*v)
	}
	return _c
}

// SetSourceLastSeen sets the "source_last_seen" field.
func (_c *AssignmentCreate) SetSourceLastSeen(v time.Time) *AssignmentCreate {
	_c.mutation.SetSourceLastSeen(v)
	return _c
}

// SetNillableSourceLastSeen sets the "source_last_seen" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableSourceLastSeen(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetSourceLastSeen(*v)
	}
	return _c
}

// SetLastSeen sets the "last_seen" field.
func (_c *AssignmentCreate) SetLastSeen(v time.Time) *AssignmentCreate {
	_c.mutation.SetLastSeen(v)
	return _c
}

// SetNillableLastSeen sets the "last_seen" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableLastSeen(v *time.Time) *AssignmentCreate {
	if v != nil {
		_c.SetLastSeen(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *AssignmentCreate) SetStatus(v assignment.Status) *AssignmentCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableStatus(v *assignment.Status) *AssignmentCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetFreshnessTier sets the "freshness_tier" field.
func (_c *AssignmentCreate) SetFreshnessTier(v assignment.FreshnessTier) *AssignmentCreate {
	_c.mutation.SetFreshnessTier(v)
	return _c
}

// SetNillableFreshnessTier sets the "freshness_tier" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableFreshnessTier(v *assignment.FreshnessTier) *AssignmentCreate {
	if v != nil {
		_c.SetFreshnessTier(*v)
	}
	return _c
}

// SetBumpCount sets the "bump_count" field.
func (_c *AssignmentCreate) SetBumpCount(v int) *AssignmentCreate {
	_c.mutation.SetBumpCount(v)
	return _c
}

// SetNillableBumpCount sets the "bump_count" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableBumpCount(v *int) *AssignmentCreate {
	if v != nil {
		_c.SetBumpCount(*v)
	}
	return _c
}

// SetDuplicateGroupID sets the "duplicate_group_id" field.
func (_c *AssignmentCreate) SetDuplicateGroupID(v string) *AssignmentCreate {
	_c.mutation.SetDuplicateGroupID(v)
	return _c
}

// SetNillableDuplicateGroupID sets the "duplicate_group_id" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableDuplicateGroupID(v *string) *AssignmentCreate {
	if v != nil {
		_c.SetDuplicateGroupID(*v)
	}
	return _c
}

// SetIsPrimaryInGroup sets the "is_primary_in_group" field.
func (_c *AssignmentCreate) SetIsPrimaryInGroup(v bool) *AssignmentCreate {
	_c.mutation.SetIsPrimaryInGroup(v)
	return _c
}

// SetNillableIsPrimaryInGroup sets the "is_primary_in_group" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableIsPrimaryInGroup(v *bool) *AssignmentCreate {
	if v != nil {
		_c.SetIsPrimaryInGroup(*v)
	}
	return _c
}

// SetDuplicateConfidenceScore sets the "duplicate_confidence_score" field.
func (_c *AssignmentCreate) SetDuplicateConfidenceScore(v float64) *AssignmentCreate {
	_c.mutation.SetDuplicateConfidenceScore(v)
	return _c
}

// SetNillableDuplicateConfidenceScore sets the "duplicate_confidence_score" field if the given value is not nil.
func (_c *AssignmentCreate) SetNillableDuplicateConfidenceScore(v *float64) *AssignmentCreate {
	if v != nil {
		_c.SetDuplicateConfidenceScore(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *AssignmentCreate) SetID(v string) *AssignmentCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetGroupID sets the "group" edge to the DuplicateGroup entity by ID.
func (_c *AssignmentCreate) SetGroupID(id string) *AssignmentCreate {
	_c.mutation.SetGroupID(id)
	return _c
}

// SetNillableGroupID sets the "group" edge to the DuplicateGroup entity by ID if the given value is not nil.
func (_c *AssignmentCreate) SetNillableGroupID(id *string) *AssignmentCreate {
	if id != nil {
		_c = _c.SetGroupID(*id)
	}
	return _c
}

// SetGroup sets the "group" edge to the DuplicateGroup entity.
func (_c *AssignmentCreate) SetGroup(v *DuplicateGroup) *AssignmentCreate {
	return _c.SetGroupID(v.ID)
}

// Mutation returns the AssignmentMutation object of the builder.
func (_c *AssignmentCreate) Mutation() *AssignmentMutation {
	return _c.mutation
}

// Save creates the Assignment in the database.
func (_c *AssignmentCreate) Save(ctx context.Context) (*Assignment, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *AssignmentCreate) SaveX(ctx context.Context) *Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *AssignmentCreate) defaults() {
	if _, ok := _c.mutation.PostalCoordsEstimated(); !ok {
		v := assignment.DefaultPostalCoordsEstimated
		_c.mutation.SetPostalCoordsEstimated(v)
	}
	if _, ok := _c.mutation.CanonicalizationVersion(); !ok {
		v := assignment.DefaultCanonicalizationVersion
		_c.mutation.SetCanonicalizationVersion(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := assignment.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		v := assignment.DefaultLastSeen()
		_c.mutation.SetLastSeen(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := assignment.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.FreshnessTier(); !ok {
		v := assignment.DefaultFreshnessTier
		_c.mutation.SetFreshnessTier(v)
	}
	if _, ok := _c.mutation.BumpCount(); !ok {
		v := assignment.DefaultBumpCount
		_c.mutation.SetBumpCount(v)
	}
	if _, ok := _c.mutation.IsPrimaryInGroup(); !ok {
		v := assignment.DefaultIsPrimaryInGroup
		_c.mutation.SetIsPrimaryInGroup(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *AssignmentCreate) check() error {
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "Assignment.external_id"`)}
	}
	if _, ok := _c.mutation.AgencyID(); !ok {
		return &ValidationError{Name: "agency_id", err: errors.New(`ent: missing required field "Assignment.agency_id"`)}
	}
	if _, ok := _c.mutation.AcademicDisplayText(); !ok {
		return &ValidationError{Name: "academic_display_text", err: errors.New(`ent: missing required field "Assignment.academic_display_text"`)}
	}
	if _, ok := _c.mutation.PostalCoordsEstimated(); !ok {
		return &ValidationError{Name: "postal_coords_estimated", err: errors.New(`ent: missing required field "Assignment.postal_coords_estimated"`)}
	}
	if _, ok := _c.mutation.CanonicalizationVersion(); !ok {
		return &ValidationError{Name: "canonicalization_version", err: errors.New(`ent: missing required field "Assignment.canonicalization_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Assignment.created_at"`)}
	}
	if _, ok := _c.mutation.LastSeen(); !ok {
		return &ValidationError{Name: "last_seen", err: errors.New(`ent: missing required field "Assignment.last_seen"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "Assignment.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := assignment.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "Assignment.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.FreshnessTier(); !ok {
		return &ValidationError{Name: "freshness_tier", err: errors.New(`ent: missing required field "Assignment.freshness_tier"`)}
	}
	if v, ok := _c.mutation.FreshnessTier(); ok {
		if err := assignment.FreshnessTierValidator(v); err != nil {
			return &ValidationError{Name: "freshness_tier", err: fmt.Errorf(`ent: validator failed for field "Assignment.freshness_tier": %w`, err)}
		}
	}
	if _, ok := _c.mutation.BumpCount(); !ok {
		return &ValidationError{Name: "bump_count", err: errors.New(`ent: missing required field "Assignment.bump_count"`)}
	}
	if _, ok := _c.mutation.IsPrimaryInGroup(); !ok {
		return &ValidationError{Name: "is_primary_in_group", err: errors.New(`ent: missing required field "Assignment.is_primary_in_group"`)}
	}
	return nil
}

func (_c *AssignmentCreate) sqlSave(ctx context.Context) (*Assignment, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Assignment.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *AssignmentCreate) createSpec() (*Assignment, *sqlgraph.CreateSpec) {
	var (
		_node = &Assignment{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(assignment.Table, sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(assignment.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.AgencyID(); ok {
		_spec.SetField(assignment.FieldAgencyID, field.TypeString, value)
		_node.AgencyID = value
	}
	if value, ok := _c.mutation.AssignmentCode(); ok {
		_spec.SetField(assignment.FieldAssignmentCode, field.TypeString, value)
		_node.AssignmentCode = &value
	}
	if value, ok := _c.mutation.MessageLink(); ok {
		_spec.SetField(assignment.FieldMessageLink, field.TypeString, value)
		_node.MessageLink = &value
	}
	if value, ok := _c.mutation.AcademicDisplayText(); ok {
		_spec.SetField(assignment.FieldAcademicDisplayText, field.TypeString, value)
		_node.AcademicDisplayText = value
	}
	if value, ok := _c.mutation.LessonSchedule(); ok {
		_spec.SetField(assignment.FieldLessonSchedule, field.TypeJSON, value)
		_node.LessonSchedule = value
	}
	if value, ok := _c.mutation.StartDate(); ok {
		_spec.SetField(assignment.FieldStartDate, field.TypeString, value)
		_node.StartDate = &value
	}
	if value, ok := _c.mutation.TimeAvailabilityNote(); ok {
		_spec.SetField(assignment.FieldTimeAvailabilityNote, field.TypeString, value)
		_node.TimeAvailabilityNote = &value
	}
	if value, ok := _c.mutation.TutorTypes(); ok {
		_spec.SetField(assignment.FieldTutorTypes, field.TypeJSON, value)
		_node.TutorTypes = value
	}
	if value, ok := _c.mutation.LearningMode(); ok {
		_spec.SetField(assignment.FieldLearningMode, field.TypeString, value)
		_node.LearningMode = &value
	}
	if value, ok := _c.mutation.RateRawText(); ok {
		_spec.SetField(assignment.FieldRateRawText, field.TypeString, value)
		_node.RateRawText = &value
	}
	if value, ok := _c.mutation.RateBreakdown(); ok {
		_spec.SetField(assignment.FieldRateBreakdown, field.TypeString, value)
		_node.RateBreakdown = &value
	}
	if value, ok := _c.mutation.Address(); ok {
		_spec.SetField(assignment.FieldAddress, field.TypeJSON, value)
		_node.Address = value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(assignment.FieldPostalCode, field.TypeJSON, value)
		_node.PostalCode = value
	}
	if value, ok := _c.mutation.PostalCodeEstimated(); ok {
		_spec.SetField(assignment.FieldPostalCodeEstimated, field.TypeJSON, value)
		_node.PostalCodeEstimated = value
	}
	if value, ok := _c.mutation.PostalLat(); ok {
		_spec.SetField(assignment.FieldPostalLat, field.TypeFloat64, value)
		_node.PostalLat = &value
	}
	if value, ok := _c.mutation.PostalLon(); ok {
		_spec.SetField(assignment.FieldPostalLon, field.TypeFloat64, value)
		_node.PostalLon = &value
	}
	if value, ok := _c.mutation.PostalCoordsEstimated(); ok {
		_spec.SetField(assignment.FieldPostalCoordsEstimated, field.TypeBool, value)
		_node.PostalCoordsEstimated = value
	}
	if value, ok := _c.mutation.Region(); ok {
		_spec.SetField(assignment.FieldRegion, field.TypeString, value)
		_node.Region = &value
	}
	if value, ok := _c.mutation.NearestMrtComputed(); ok {
		_spec.SetField(assignment.FieldNearestMrtComputed, field.TypeString, value)
		_node.NearestMrtComputed = &value
	}
	if value, ok := _c.mutation.NearestMrtLine(); ok {
		_spec.SetField(assignment.FieldNearestMrtLine, field.TypeString, value)
		_node.NearestMrtLine = &value
	}
	if value, ok := _c.mutation.NearestMrtDistanceM(); ok {
		_spec.SetField(assignment.FieldNearestMrtDistanceM, field.TypeInt, value)
		_node.NearestMrtDistanceM = &value
	}
	if value, ok := _c.mutation.RateMin(); ok {
		_spec.SetField(assignment.FieldRateMin, field.TypeFloat64, value)
		_node.RateMin = &value
	}
	if value, ok := _c.mutation.RateMax(); ok {
		_spec.SetField(assignment.FieldRateMax, field.TypeFloat64, value)
		_node.RateMax = &value
	}
	if value, ok := _c.mutation.SignalsSubjects(); ok {
		_spec.SetField(assignment.FieldSignalsSubjects, field.TypeJSON, value)
		_node.SignalsSubjects = value
	}
	if value, ok := _c.mutation.SignalsLevels(); ok {
		_spec.SetField(assignment.FieldSignalsLevels, field.TypeJSON, value)
		_node.SignalsLevels = value
	}
	if value, ok := _c.mutation.SignalsSpecificStudentLevels(); ok {
		_spec.SetField(assignment.FieldSignalsSpecificStudentLevels, field.TypeJSON, value)
		_node.SignalsSpecificStudentLevels = value
	}
	if value, ok := _c.mutation.SubjectsCanonical(); ok {
		_spec.SetField(assignment.FieldSubjectsCanonical, field.TypeJSON, value)
		_node.SubjectsCanonical = value
	}
	if value, ok := _c.mutation.SubjectsGeneral(); ok {
		_spec.SetField(assignment.FieldSubjectsGeneral, field.TypeJSON, value)
		_node.SubjectsGeneral = value
	}
	if value, ok := _c.mutation.CanonicalizationVersion(); ok {
		_spec.SetField(assignment.FieldCanonicalizationVersion, field.TypeInt, value)
		_node.CanonicalizationVersion = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(assignment.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.PublishedAt(); ok {
		_spec.SetField(assignment.FieldPublishedAt, field.TypeTime, value)
		_node.PublishedAt = &value
	}
	if value, ok := _c.mutation.SourceLastSeen(); ok {
		_spec.SetField(assignment.FieldSourceLastSeen, field.TypeTime, value)
		_node.SourceLastSeen = &value
	}
	if value, ok := _c.mutation.LastSeen(); ok {
		_spec.SetField(assignment.FieldLastSeen, field.TypeTime, value)
		_node.LastSeen = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(assignment.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.FreshnessTier(); ok {
		_spec.SetField(assignment.FieldFreshnessTier, field.TypeEnum, value)
		_node.FreshnessTier = value
	}
	if value, ok := _c.mutation.BumpCount(); ok {
		_spec.SetField(assignment.FieldBumpCount, field.TypeInt, value)
		_node.BumpCount = value
	}
	if value, ok := _c.mutation.IsPrimaryInGroup(); ok {
		_spec.SetField(assignment.FieldIsPrimaryInGroup, field.TypeBool, value)
		_node.IsPrimaryInGroup = value
	}
	if value, ok := _c.mutation.DuplicateConfidenceScore(); ok {
		_spec.SetField(assignment.FieldDuplicateConfidenceScore, field.TypeFloat64, value)
		_node.DuplicateConfidenceScore = &value
	}
	if nodes := _c.mutation.GroupIDs(); len(nodes) > 0 {
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
		_node.DuplicateGroupID = &nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// AssignmentCreateBulk is the builder for creating many Assignment entities in bulk.
type AssignmentCreateBulk struct {
	config
	err      error
	builders []*AssignmentCreate
}

// Save creates the Assignment entities in the database.
func (_c *AssignmentCreateBulk) Save(ctx context.Context) ([]*Assignment, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Assignment, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AssignmentMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *AssignmentCreateBulk) SaveX(ctx context.Context) []*Assignment {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *AssignmentCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *AssignmentCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
