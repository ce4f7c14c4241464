// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/ent/broadcastrecord"
	"github.com/tuitionlab/assignflow/ent/clickrecord"
	"github.com/tuitionlab/assignflow/ent/deliveryrecord"
	"github.com/tuitionlab/assignflow/ent/duplicategroup"
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/ent/predicate"
	"github.com/tuitionlab/assignflow/ent/rating"
	"github.com/tuitionlab/assignflow/ent/rawmessage"
	"github.com/tuitionlab/assignflow/ent/tutorprofile"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeAssignment      = "Assignment"
	TypeBroadcastRecord = "BroadcastRecord"
	TypeClickRecord     = "ClickRecord"
	TypeDeliveryRecord  = "DeliveryRecord"
	TypeDuplicateGroup  = "DuplicateGroup"
	TypeExtractionJob   = "ExtractionJob"
	TypeRating          = "Rating"
	TypeRawMessage      = "RawMessage"
	TypeTutorProfile    = "TutorProfile"
)

// AssignmentMutation represents an operation that mutates the Assignment nodes in the graph.
type AssignmentMutation struct {
	config
	op                                    Op
	typ                                   string
	id                                    *string
	external_id                           *string
	agency_id                             *string
	assignment_code                       *string
	message_link                          *string
	academic_display_text                 *string
	lesson_schedule                       *[]string
	appendlesson_schedule                 []string
	start_date                            *string
	time_availability_note                *string
	tutor_types                           *[]map[string]interface{}
	appendtutor_types                     []map[string]interface{}
	learning_mode                         *string
	rate_raw_text                         *string
	rate_breakdown                        *string
	address                               *[]string
	appendaddress                         []string
	postal_code                           *[]string
	appendpostal_code                     []string
	postal_code_estimated                 *[]string
	appendpostal_code_estimated           []string
	postal_lat                            *float64
	addpostal_lat                         *float64
	postal_lon                            *float64
	addpostal_lon                         *float64
	postal_coords_estimated               *bool
	region                                *string
	nearest_mrt_computed                  *string
	nearest_mrt_line                      *string
	nearest_mrt_distance_m                *int
	addnearest_mrt_distance_m             *int
	rate_min                              *float64
	addrate_min                           *float64
	rate_max                              *float64
	addrate_max                           *float64
	signals_subjects                      *[]string
	appendsignals_subjects                []string
	signals_levels                        *[]string
	appendsignals_levels                  []string
	signals_specific_student_levels       *[]string
	appendsignals_specific_student_levels []string
	subjects_canonical                    *[]string
	appendsubjects_canonical              []string
	subjects_general                      *[]string
	appendsubjects_general                []string
	canonicalization_version              *int
	addcanonicalization_version           *int
	created_at                            *time.Time
	published_at                          *time.Time
	source_last_seen                      *time.Time
	last_seen                             *time.Time
	status                                *assignment.Status
	freshness_tier                        *assignment.FreshnessTier
	bump_count                            *int
	addbump_count                         *int
	is_primary_in_group                   *bool
	duplicate_confidence_score            *float64
	addduplicate_confidence_score         *float64
	clearedFields                         map[string]struct{}
	group                                 *string
	clearedgroup                          bool
	done                                  bool
	oldValue                              func(context.Context) (*Assignment, error)
	predicates                            []predicate.Assignment
}

var _ ent.Mutation = (*AssignmentMutation)(nil)

// assignmentOption allows management of the mutation configuration using functional options.
type assignmentOption func(*AssignmentMutation)

// newAssignmentMutation creates new mutation for the Assignment entity.
func newAssignmentMutation(c config, op Op, opts ...assignmentOption) *AssignmentMutation {
	m := &AssignmentMutation{
		config:        c,
		op:            op,
		typ:           TypeAssignment,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withAssignmentID sets the ID field of the mutation.
func withAssignmentID(id string) assignmentOption {
	return func(m *AssignmentMutation) {
		var (
			err   error
			once  sync.Once
			value *Assignment
		)
		m.oldValue = func(ctx context.Context) (*Assignment, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Assignment.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withAssignment sets the old Assignment of the mutation.
func withAssignment(node *Assignment) assignmentOption {
	return func(m *AssignmentMutation) {
		m.oldValue = func(context.Context) (*Assignment, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m AssignmentMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m AssignmentMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Assignment entities.
func (m *AssignmentMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *AssignmentMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *AssignmentMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Assignment.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *AssignmentMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *AssignmentMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *AssignmentMutation) ResetExternalID() {
	m.external_id = nil
}

// SetAgencyID sets the "agency_id" field.
func (m *AssignmentMutation) SetAgencyID(s string) {
	m.agency_id = &s
}

// AgencyID returns the value of the "agency_id" field in the mutation.
func (m *AssignmentMutation) AgencyID() (r string, exists bool) {
	v := m.agency_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgencyID returns the old "agency_id" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldAgencyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgencyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgencyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgencyID: %w", err)
	}
	return oldValue.AgencyID, nil
}

// ResetAgencyID resets all changes to the "agency_id" field.
func (m *AssignmentMutation) ResetAgencyID() {
	m.agency_id = nil
}

// SetAssignmentCode sets the "assignment_code" field.
func (m *AssignmentMutation) SetAssignmentCode(s string) {
	m.assignment_code = &s
}

// AssignmentCode returns the value of the "assignment_code" field in the mutation.
func (m *AssignmentMutation) AssignmentCode() (r string, exists bool) {
	v := m.assignment_code
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentCode returns the old "assignment_code" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldAssignmentCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentCode: %w", err)
	}
	return oldValue.AssignmentCode, nil
}

// ClearAssignmentCode clears the value of the "assignment_code" field.
func (m *AssignmentMutation) ClearAssignmentCode() {
	m.assignment_code = nil
	m.clearedFields[assignment.FieldAssignmentCode] = struct{}{}
}

// AssignmentCodeCleared returns if the "assignment_code" field was cleared in this mutation.
func (m *AssignmentMutation) AssignmentCodeCleared() bool {
	_, ok := m.clearedFields[assignment.FieldAssignmentCode]
	return ok
}

// ResetAssignmentCode resets all changes to the "assignment_code" field.
func (m *AssignmentMutation) ResetAssignmentCode() {
	m.assignment_code = nil
	delete(m.clearedFields, assignment.FieldAssignmentCode)
}

// SetMessageLink sets the "message_link" field.
func (m *AssignmentMutation) SetMessageLink(s string) {
	m.message_link = &s
}

// MessageLink returns the value of the "message_link" field in the mutation.
func (m *AssignmentMutation) MessageLink() (r string, exists bool) {
	v := m.message_link
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageLink returns the old "message_link" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldMessageLink(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageLink is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageLink requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageLink: %w", err)
	}
	return oldValue.MessageLink, nil
}

// ClearMessageLink clears the value of the "message_link" field.
func (m *AssignmentMutation) ClearMessageLink() {
	m.message_link = nil
	m.clearedFields[assignment.FieldMessageLink] = struct{}{}
}

// MessageLinkCleared returns if the "message_link" field was cleared in this mutation.
func (m *AssignmentMutation) MessageLinkCleared() bool {
	_, ok := m.clearedFields[assignment.FieldMessageLink]
	return ok
}

// ResetMessageLink resets all changes to the "message_link" field.
func (m *AssignmentMutation) ResetMessageLink() {
	m.message_link = nil
	delete(m.clearedFields, assignment.FieldMessageLink)
}

// SetAcademicDisplayText sets the "academic_display_text" field.
func (m *AssignmentMutation) SetAcademicDisplayText(s string) {
	m.academic_display_text = &s
}

// AcademicDisplayText returns the value of the "academic_display_text" field in the mutation.
func (m *AssignmentMutation) AcademicDisplayText() (r string, exists bool) {
	v := m.academic_display_text
	if v == nil {
		return
	}
	return *v, true
}

// OldAcademicDisplayText returns the old "academic_display_text" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldAcademicDisplayText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAcademicDisplayText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAcademicDisplayText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAcademicDisplayText: %w", err)
	}
	return oldValue.AcademicDisplayText, nil
}

// ResetAcademicDisplayText resets all changes to the "academic_display_text" field.
func (m *AssignmentMutation) ResetAcademicDisplayText() {
	m.academic_display_text = nil
}

// SetLessonSchedule sets the "lesson_schedule" field.
func (m *AssignmentMutation) SetLessonSchedule(s []string) {
	m.lesson_schedule = &s
	m.appendlesson_schedule = nil
}

// LessonSchedule returns the value of the "lesson_schedule" field in the mutation.
func (m *AssignmentMutation) LessonSchedule() (r []string, exists bool) {
	v := m.lesson_schedule
	if v == nil {
		return
	}
	return *v, true
}

// OldLessonSchedule returns the old "lesson_schedule" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldLessonSchedule(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLessonSchedule is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLessonSchedule requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLessonSchedule: %w", err)
	}
	return oldValue.LessonSchedule, nil
}

// AppendLessonSchedule adds s to the "lesson_schedule" field.
func (m *AssignmentMutation) AppendLessonSchedule(s []string) {
	m.appendlesson_schedule = append(m.appendlesson_schedule, s...)
}

// AppendedLessonSchedule returns the list of values that were appended to the "lesson_schedule" field in this mutation.
func (m *AssignmentMutation) AppendedLessonSchedule() ([]string, bool) {
	if len(m.appendlesson_schedule) == 0 {
		return nil, false
	}
	return m.appendlesson_schedule, true
}

// ClearLessonSchedule clears the value of the "lesson_schedule" field.
func (m *AssignmentMutation) ClearLessonSchedule() {
	m.lesson_schedule = nil
	m.appendlesson_schedule = nil
	m.clearedFields[assignment.FieldLessonSchedule] = struct{}{}
}

// LessonScheduleCleared returns if the "lesson_schedule" field was cleared in this mutation.
func (m *AssignmentMutation) LessonScheduleCleared() bool {
	_, ok := m.clearedFields[assignment.FieldLessonSchedule]
	return ok
}

// ResetLessonSchedule resets all changes to the "lesson_schedule" field.
func (m *AssignmentMutation) ResetLessonSchedule() {
	m.lesson_schedule = nil
	m.appendlesson_schedule = nil
	delete(m.clearedFields, assignment.FieldLessonSchedule)
}

// SetStartDate sets the "start_date" field.
func (m *AssignmentMutation) SetStartDate(s string) {
	m.start_date = &s
}

// StartDate returns the value of the "start_date" field in the mutation.
func (m *AssignmentMutation) StartDate() (r string, exists bool) {
	v := m.start_date
	if v == nil {
		return
	}
	return *v, true
}

// OldStartDate returns the old "start_date" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldStartDate(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartDate: %w", err)
	}
	return oldValue.StartDate, nil
}

// ClearStartDate clears the value of the "start_date" field.
func (m *AssignmentMutation) ClearStartDate() {
	m.start_date = nil
	m.clearedFields[assignment.FieldStartDate] = struct{}{}
}

// StartDateCleared returns if the "start_date" field was cleared in this mutation.
func (m *AssignmentMutation) StartDateCleared() bool {
	_, ok := m.clearedFields[assignment.FieldStartDate]
	return ok
}

// ResetStartDate resets all changes to the "start_date" field.
func (m *AssignmentMutation) ResetStartDate() {
	m.start_date = nil
	delete(m.clearedFields, assignment.FieldStartDate)
}

// SetTimeAvailabilityNote sets the "time_availability_note" field.
func (m *AssignmentMutation) SetTimeAvailabilityNote(s string) {
	m.time_availability_note = &s
}

// TimeAvailabilityNote returns the value of the "time_availability_note" field in the mutation.
func (m *AssignmentMutation) TimeAvailabilityNote() (r string, exists bool) {
	v := m.time_availability_note
	if v == nil {
		return
	}
	return *v, true
}

// OldTimeAvailabilityNote returns the old "time_availability_note" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldTimeAvailabilityNote(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTimeAvailabilityNote is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTimeAvailabilityNote requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTimeAvailabilityNote: %w", err)
	}
	return oldValue.TimeAvailabilityNote, nil
}

// ClearTimeAvailabilityNote clears the value of the "time_availability_note" field.
func (m *AssignmentMutation) ClearTimeAvailabilityNote() {
	m.time_availability_note = nil
	m.clearedFields[assignment.FieldTimeAvailabilityNote] = struct{}{}
}

// TimeAvailabilityNoteCleared returns if the "time_availability_note" field was cleared in this mutation.
func (m *AssignmentMutation) TimeAvailabilityNoteCleared() bool {
	_, ok := m.clearedFields[assignment.FieldTimeAvailabilityNote]
	return ok
}

// ResetTimeAvailabilityNote resets all changes to the "time_availability_note" field.
func (m *AssignmentMutation) ResetTimeAvailabilityNote() {
	m.time_availability_note = nil
	delete(m.clearedFields, assignment.FieldTimeAvailabilityNote)
}

// SetTutorTypes sets the "tutor_types" field.
func (m *AssignmentMutation) SetTutorTypes(value []map[string]interface{}) {
	m.tutor_types = &value
	m.appendtutor_types = nil
}

// TutorTypes returns the value of the "tutor_types" field in the mutation.
func (m *AssignmentMutation) TutorTypes() (r []map[string]interface{}, exists bool) {
	v := m.tutor_types
	if v == nil {
		return
	}
	return *v, true
}

// OldTutorTypes returns the old "tutor_types" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldTutorTypes(ctx context.Context) (v []map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTutorTypes is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTutorTypes requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTutorTypes: %w", err)
	}
	return oldValue.TutorTypes, nil
}

// AppendTutorTypes adds value to the "tutor_types" field.
func (m *AssignmentMutation) AppendTutorTypes(value []map[string]interface{}) {
	m.appendtutor_types = append(m.appendtutor_types, value...)
}

// AppendedTutorTypes returns the list of values that were appended to the "tutor_types" field in this mutation.
func (m *AssignmentMutation) AppendedTutorTypes() ([]map[string]interface{}, bool) {
	if len(m.appendtutor_types) == 0 {
		return nil, false
	}
	return m.appendtutor_types, true
}

// ClearTutorTypes clears the value of the "tutor_types" field.
func (m *AssignmentMutation) ClearTutorTypes() {
	m.tutor_types = nil
	m.appendtutor_types = nil
	m.clearedFields[assignment.FieldTutorTypes] = struct{}{}
}

// TutorTypesCleared returns if the "tutor_types" field was cleared in this mutation.
func (m *AssignmentMutation) TutorTypesCleared() bool {
	_, ok := m.clearedFields[assignment.FieldTutorTypes]
	return ok
}

// ResetTutorTypes resets all changes to the "tutor_types" field.
func (m *AssignmentMutation) ResetTutorTypes() {
	m.tutor_types = nil
	m.appendtutor_types = nil
	delete(m.clearedFields, assignment.FieldTutorTypes)
}

// SetLearningMode sets the "learning_mode" field.
func (m *AssignmentMutation) SetLearningMode(s string) {
	m.learning_mode = &s
}

// LearningMode returns the value of the "learning_mode" field in the mutation.
func (m *AssignmentMutation) LearningMode() (r string, exists bool) {
	v := m.learning_mode
	if v == nil {
		return
	}
	return *v, true
}

// OldLearningMode returns the old "learning_mode" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldLearningMode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLearningMode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLearningMode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLearningMode: %w", err)
	}
	return oldValue.LearningMode, nil
}

// ClearLearningMode clears the value of the "learning_mode" field.
func (m *AssignmentMutation) ClearLearningMode() {
	m.learning_mode = nil
	m.clearedFields[assignment.FieldLearningMode] = struct{}{}
}

// LearningModeCleared returns if the "learning_mode" field was cleared in this mutation.
func (m *AssignmentMutation) LearningModeCleared() bool {
	_, ok := m.clearedFields[assignment.FieldLearningMode]
	return ok
}

// ResetLearningMode resets all changes to the "learning_mode" field.
func (m *AssignmentMutation) ResetLearningMode() {
	m.learning_mode = nil
	delete(m.clearedFields, assignment.FieldLearningMode)
}

// SetRateRawText sets the "rate_raw_text" field.
func (m *AssignmentMutation) SetRateRawText(s string) {
	m.rate_raw_text = &s
}

// RateRawText returns the value of the "rate_raw_text" field in the mutation.
func (m *AssignmentMutation) RateRawText() (r string, exists bool) {
	v := m.rate_raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRateRawText returns the old "rate_raw_text" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldRateRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateRawText: %w", err)
	}
	return oldValue.RateRawText, nil
}

// ClearRateRawText clears the value of the "rate_raw_text" field.
func (m *AssignmentMutation) ClearRateRawText() {
	m.rate_raw_text = nil
	m.clearedFields[assignment.FieldRateRawText] = struct{}{}
}

// RateRawTextCleared returns if the "rate_raw_text" field was cleared in this mutation.
func (m *AssignmentMutation) RateRawTextCleared() bool {
	_, ok := m.clearedFields[assignment.FieldRateRawText]
	return ok
}

// ResetRateRawText resets all changes to the "rate_raw_text" field.
func (m *AssignmentMutation) ResetRateRawText() {
	m.rate_raw_text = nil
	delete(m.clearedFields, assignment.FieldRateRawText)
}

// SetRateBreakdown sets the "rate_breakdown" field.
func (m *AssignmentMutation) SetRateBreakdown(s string) {
	m.rate_breakdown = &s
}

// RateBreakdown returns the value of the "rate_breakdown" field in the mutation.
func (m *AssignmentMutation) RateBreakdown() (r string, exists bool) {
	v := m.rate_breakdown
	if v == nil {
		return
	}
	return *v, true
}

// OldRateBreakdown returns the old "rate_breakdown" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldRateBreakdown(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateBreakdown is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateBreakdown requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateBreakdown: %w", err)
	}
	return oldValue.RateBreakdown, nil
}

// ClearRateBreakdown clears the value of the "rate_breakdown" field.
func (m *AssignmentMutation) ClearRateBreakdown() {
	m.rate_breakdown = nil
	m.clearedFields[assignment.FieldRateBreakdown] = struct{}{}
}

// RateBreakdownCleared returns if the "rate_breakdown" field was cleared in this mutation.
func (m *AssignmentMutation) RateBreakdownCleared() bool {
	_, ok := m.clearedFields[assignment.FieldRateBreakdown]
	return ok
}

// ResetRateBreakdown resets all changes to the "rate_breakdown" field.
func (m *AssignmentMutation) ResetRateBreakdown() {
	m.rate_breakdown = nil
	delete(m.clearedFields, assignment.FieldRateBreakdown)
}

// SetAddress sets the "address" field.
func (m *AssignmentMutation) SetAddress(s []string) {
	m.address = &s
	m.appendaddress = nil
}

// Address returns the value of the "address" field in the mutation.
func (m *AssignmentMutation) Address() (r []string, exists bool) {
	v := m.address
	if v == nil {
		return
	}
	return *v, true
}

// OldAddress returns the old "address" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldAddress(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAddress is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAddress requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAddress: %w", err)
	}
	return oldValue.Address, nil
}

// AppendAddress adds s to the "address" field.
func (m *AssignmentMutation) AppendAddress(s []string) {
	m.appendaddress = append(m.appendaddress, s...)
}

// AppendedAddress returns the list of values that were appended to the "address" field in this mutation.
func (m *AssignmentMutation) AppendedAddress() ([]string, bool) {
	if len(m.appendaddress) == 0 {
		return nil, false
	}
	return m.appendaddress, true
}

// ClearAddress clears the value of the "address" field.
func (m *AssignmentMutation) ClearAddress() {
	m.address = nil
	m.appendaddress = nil
	m.clearedFields[assignment.FieldAddress] = struct{}{}
}

// AddressCleared returns if the "address" field was cleared in this mutation.
func (m *AssignmentMutation) AddressCleared() bool {
	_, ok := m.clearedFields[assignment.FieldAddress]
	return ok
}

// ResetAddress resets all changes to the "address" field.
func (m *AssignmentMutation) ResetAddress() {
	m.address = nil
	m.appendaddress = nil
	delete(m.clearedFields, assignment.FieldAddress)
}

// SetPostalCode sets the "postal_code" field.
func (m *AssignmentMutation) SetPostalCode(s []string) {
	m.postal_code = &s
	m.appendpostal_code = nil
}

// PostalCode returns the value of the "postal_code" field in the mutation.
func (m *AssignmentMutation) PostalCode() (r []string, exists bool) {
	v := m.postal_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCode returns the old "postal_code" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldPostalCode(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCode: %w", err)
	}
	return oldValue.PostalCode, nil
}

// AppendPostalCode adds s to the "postal_code" field.
func (m *AssignmentMutation) AppendPostalCode(s []string) {
	m.appendpostal_code = append(m.appendpostal_code, s...)
}

// AppendedPostalCode returns the list of values that were appended to the "postal_code" field in this mutation.
func (m *AssignmentMutation) AppendedPostalCode() ([]string, bool) {
	if len(m.appendpostal_code) == 0 {
		return nil, false
	}
	return m.appendpostal_code, true
}

// ClearPostalCode clears the value of the "postal_code" field.
func (m *AssignmentMutation) ClearPostalCode() {
	m.postal_code = nil
	m.appendpostal_code = nil
	m.clearedFields[assignment.FieldPostalCode] = struct{}{}
}

// PostalCodeCleared returns if the "postal_code" field was cleared in this mutation.
func (m *AssignmentMutation) PostalCodeCleared() bool {
	_, ok := m.clearedFields[assignment.FieldPostalCode]
	return ok
}

// ResetPostalCode resets all changes to the "postal_code" field.
func (m *AssignmentMutation) ResetPostalCode() {
	m.postal_code = nil
	m.appendpostal_code = nil
	delete(m.clearedFields, assignment.FieldPostalCode)
}

// SetPostalCodeEstimated sets the "postal_code_estimated" field.
func (m *AssignmentMutation) SetPostalCodeEstimated(s []string) {
	m.postal_code_estimated = &s
	m.appendpostal_code_estimated = nil
}

// PostalCodeEstimated returns the value of the "postal_code_estimated" field in the mutation.
func (m *AssignmentMutation) PostalCodeEstimated() (r []string, exists bool) {
	v := m.postal_code_estimated
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCodeEstimated returns the old "postal_code_estimated" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldPostalCodeEstimated(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCodeEstimated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCodeEstimated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCodeEstimated: %w", err)
	}
	return oldValue.PostalCodeEstimated, nil
}

// AppendPostalCodeEstimated adds s to the "postal_code_estimated" field.
func (m *AssignmentMutation) AppendPostalCodeEstimated(s []string) {
	m.appendpostal_code_estimated = append(m.appendpostal_code_estimated, s...)
}

// AppendedPostalCodeEstimated returns the list of values that were appended to the "postal_code_estimated" field in this mutation.
func (m *AssignmentMutation) AppendedPostalCodeEstimated() ([]string, bool) {
	if len(m.appendpostal_code_estimated) == 0 {
		return nil, false
	}
	return m.appendpostal_code_estimated, true
}

// ClearPostalCodeEstimated clears the value of the "postal_code_estimated" field.
func (m *AssignmentMutation) ClearPostalCodeEstimated() {
	m.postal_code_estimated = nil
	m.appendpostal_code_estimated = nil
	m.clearedFields[assignment.FieldPostalCodeEstimated] = struct{}{}
}

// PostalCodeEstimatedCleared returns if the "postal_code_estimated" field was cleared in this mutation.
func (m *AssignmentMutation) PostalCodeEstimatedCleared() bool {
	_, ok := m.clearedFields[assignment.FieldPostalCodeEstimated]
	return ok
}

// ResetPostalCodeEstimated resets all changes to the "postal_code_estimated" field.
func (m *AssignmentMutation) ResetPostalCodeEstimated() {
	m.postal_code_estimated = nil
	m.appendpostal_code_estimated = nil
	delete(m.clearedFields, assignment.FieldPostalCodeEstimated)
}

// SetPostalLat sets the "postal_lat" field.
func (m *AssignmentMutation) SetPostalLat(f float64) {
	m.postal_lat = &f
	m.addpostal_lat = nil
}

// PostalLat returns the value of the "postal_lat" field in the mutation.
func (m *AssignmentMutation) PostalLat() (r float64, exists bool) {
	v := m.postal_lat
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalLat returns the old "postal_lat" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldPostalLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalLat: %w", err)
	}
	return oldValue.PostalLat, nil
}

// AddPostalLat adds f to the "postal_lat" field.
func (m *AssignmentMutation) AddPostalLat(f float64) {
	if m.addpostal_lat != nil {
		*m.addpostal_lat += f
	} else {
		m.addpostal_lat = &f
	}
}

// AddedPostalLat returns the value that was added to the "postal_lat" field in this mutation.
func (m *AssignmentMutation) AddedPostalLat() (r float64, exists bool) {
	v := m.addpostal_lat
	if v == nil {
		return
	}
	return *v, true
}

// ClearPostalLat clears the value of the "postal_lat" field.
func (m *AssignmentMutation) ClearPostalLat() {
	m.postal_lat = nil
	m.addpostal_lat = nil
	m.clearedFields[assignment.FieldPostalLat] = struct{}{}
}

// PostalLatCleared returns if the "postal_lat" field was cleared in this mutation.
func (m *AssignmentMutation) PostalLatCleared() bool {
	_, ok := m.clearedFields[assignment.FieldPostalLat]
	return ok
}

// ResetPostalLat resets all changes to the "postal_lat" field.
func (m *AssignmentMutation) ResetPostalLat() {
	m.postal_lat = nil
	m.addpostal_lat = nil
	delete(m.clearedFields, assignment.FieldPostalLat)
}

// SetPostalLon sets the "postal_lon" field.
func (m *AssignmentMutation) SetPostalLon(f float64) {
	m.postal_lon = &f
	m.addpostal_lon = nil
}

// PostalLon returns the value of the "postal_lon" field in the mutation.
func (m *AssignmentMutation) PostalLon() (r float64, exists bool) {
	v := m.postal_lon
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalLon returns the old "postal_lon" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldPostalLon(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalLon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalLon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalLon: %w", err)
	}
	return oldValue.PostalLon, nil
}

// AddPostalLon adds f to the "postal_lon" field.
func (m *AssignmentMutation) AddPostalLon(f float64) {
	if m.addpostal_lon != nil {
		*m.addpostal_lon += f
	} else {
		m.addpostal_lon = &f
	}
}

// AddedPostalLon returns the value that was added to the "postal_lon" field in this mutation.
func (m *AssignmentMutation) AddedPostalLon() (r float64, exists bool) {
	v := m.addpostal_lon
	if v == nil {
		return
	}
	return *v, true
}

// ClearPostalLon clears the value of the "postal_lon" field.
func (m *AssignmentMutation) ClearPostalLon() {
	m.postal_lon = nil
	m.addpostal_lon = nil
	m.clearedFields[assignment.FieldPostalLon] = struct{}{}
}

// PostalLonCleared returns if the "postal_lon" field was cleared in this mutation.
func (m *AssignmentMutation) PostalLonCleared() bool {
	_, ok := m.clearedFields[assignment.FieldPostalLon]
	return ok
}

// ResetPostalLon resets all changes to the "postal_lon" field.
func (m *AssignmentMutation) ResetPostalLon() {
	m.postal_lon = nil
	m.addpostal_lon = nil
	delete(m.clearedFields, assignment.FieldPostalLon)
}

// SetPostalCoordsEstimated sets the "postal_coords_estimated" field.
func (m *AssignmentMutation) SetPostalCoordsEstimated(b bool) {
	m.postal_coords_estimated = &b
}

// PostalCoordsEstimated returns the value of the "postal_coords_estimated" field in the mutation.
func (m *AssignmentMutation) PostalCoordsEstimated() (r bool, exists bool) {
	v := m.postal_coords_estimated
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCoordsEstimated returns the old "postal_coords_estimated" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldPostalCoordsEstimated(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCoordsEstimated is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCoordsEstimated requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCoordsEstimated: %w", err)
	}
	return oldValue.PostalCoordsEstimated, nil
}

// ResetPostalCoordsEstimated resets all changes to the "postal_coords_estimated" field.
func (m *AssignmentMutation) ResetPostalCoordsEstimated() {
	m.postal_coords_estimated = nil
}

// SetRegion sets the "region" field.
func (m *AssignmentMutation) SetRegion(s string) {
	m.region = &s
}

// Region returns the value of the "region" field in the mutation.
func (m *AssignmentMutation) Region() (r string, exists bool) {
	v := m.region
	if v == nil {
		return
	}
	return *v, true
}

// OldRegion returns the old "region" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldRegion(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRegion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRegion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRegion: %w", err)
	}
	return oldValue.Region, nil
}

// ClearRegion clears the value of the "region" field.
func (m *AssignmentMutation) ClearRegion() {
	m.region = nil
	m.clearedFields[assignment.FieldRegion] = struct{}{}
}

// RegionCleared returns if the "region" field was cleared in this mutation.
func (m *AssignmentMutation) RegionCleared() bool {
	_, ok := m.clearedFields[assignment.FieldRegion]
	return ok
}

// ResetRegion resets all changes to the "region" field.
func (m *AssignmentMutation) ResetRegion() {
	m.region = nil
	delete(m.clearedFields, assignment.FieldRegion)
}

// SetNearestMrtComputed sets the "nearest_mrt_computed" field.
func (m *AssignmentMutation) SetNearestMrtComputed(s string) {
	m.nearest_mrt_computed = &s
}

// NearestMrtComputed returns the value of the "nearest_mrt_computed" field in the mutation.
func (m *AssignmentMutation) NearestMrtComputed() (r string, exists bool) {
	v := m.nearest_mrt_computed
	if v == nil {
		return
	}
	return *v, true
}

// OldNearestMrtComputed returns the old "nearest_mrt_computed" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldNearestMrtComputed(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNearestMrtComputed is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNearestMrtComputed requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNearestMrtComputed: %w", err)
	}
	return oldValue.NearestMrtComputed, nil
}

// ClearNearestMrtComputed clears the value of the "nearest_mrt_computed" field.
func (m *AssignmentMutation) ClearNearestMrtComputed() {
	m.nearest_mrt_computed = nil
	m.clearedFields[assignment.FieldNearestMrtComputed] = struct{}{}
}

// NearestMrtComputedCleared returns if the "nearest_mrt_computed" field was cleared in this mutation.
func (m *AssignmentMutation) NearestMrtComputedCleared() bool {
	_, ok := m.clearedFields[assignment.FieldNearestMrtComputed]
	return ok
}

// ResetNearestMrtComputed resets all changes to the "nearest_mrt_computed" field.
func (m *AssignmentMutation) ResetNearestMrtComputed() {
	m.nearest_mrt_computed = nil
	delete(m.clearedFields, assignment.FieldNearestMrtComputed)
}

// SetNearestMrtLine sets the "nearest_mrt_line" field.
func (m *AssignmentMutation) SetNearestMrtLine(s string) {
	m.nearest_mrt_line = &s
}

// NearestMrtLine returns the value of the "nearest_mrt_line" field in the mutation.
func (m *AssignmentMutation) NearestMrtLine() (r string, exists bool) {
	v := m.nearest_mrt_line
	if v == nil {
		return
	}
	return *v, true
}

// OldNearestMrtLine returns the old "nearest_mrt_line" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldNearestMrtLine(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNearestMrtLine is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNearestMrtLine requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNearestMrtLine: %w", err)
	}
	return oldValue.NearestMrtLine, nil
}

// ClearNearestMrtLine clears the value of the "nearest_mrt_line" field.
func (m *AssignmentMutation) ClearNearestMrtLine() {
	m.nearest_mrt_line = nil
	m.clearedFields[assignment.FieldNearestMrtLine] = struct{}{}
}

// NearestMrtLineCleared returns if the "nearest_mrt_line" field was cleared in this mutation.
func (m *AssignmentMutation) NearestMrtLineCleared() bool {
	_, ok := m.clearedFields[assignment.FieldNearestMrtLine]
	return ok
}

// ResetNearestMrtLine resets all changes to the "nearest_mrt_line" field.
func (m *AssignmentMutation) ResetNearestMrtLine() {
	m.nearest_mrt_line = nil
	delete(m.clearedFields, assignment.FieldNearestMrtLine)
}

// SetNearestMrtDistanceM sets the "nearest_mrt_distance_m" field.
func (m *AssignmentMutation) SetNearestMrtDistanceM(i int) {
	m.nearest_mrt_distance_m = &i
	m.addnearest_mrt_distance_m = nil
}

// NearestMrtDistanceM returns the value of the "nearest_mrt_distance_m" field in the mutation.
func (m *AssignmentMutation) NearestMrtDistanceM() (r int, exists bool) {
	v := m.nearest_mrt_distance_m
	if v == nil {
		return
	}
	return *v, true
}

// OldNearestMrtDistanceM returns the old "nearest_mrt_distance_m" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldNearestMrtDistanceM(ctx context.Context) (v *int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNearestMrtDistanceM is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNearestMrtDistanceM requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNearestMrtDistanceM: %w", err)
	}
	return oldValue.NearestMrtDistanceM, nil
}

// AddNearestMrtDistanceM adds i to the "nearest_mrt_distance_m" field.
func (m *AssignmentMutation) AddNearestMrtDistanceM(i int) {
	if m.addnearest_mrt_distance_m != nil {
		*m.addnearest_mrt_distance_m += i
	} else {
		m.addnearest_mrt_distance_m = &i
	}
}

// AddedNearestMrtDistanceM returns the value that was added to the "nearest_mrt_distance_m" field in this mutation.
func (m *AssignmentMutation) AddedNearestMrtDistanceM() (r int, exists bool) {
	v := m.addnearest_mrt_distance_m
	if v == nil {
		return
	}
	return *v, true
}

// ClearNearestMrtDistanceM clears the value of the "nearest_mrt_distance_m" field.
func (m *AssignmentMutation) ClearNearestMrtDistanceM() {
	m.nearest_mrt_distance_m = nil
	m.addnearest_mrt_distance_m = nil
	m.clearedFields[assignment.FieldNearestMrtDistanceM] = struct{}{}
}

// NearestMrtDistanceMCleared returns if the "nearest_mrt_distance_m" field was cleared in this mutation.
func (m *AssignmentMutation) NearestMrtDistanceMCleared() bool {
	_, ok := m.clearedFields[assignment.FieldNearestMrtDistanceM]
	return ok
}

// ResetNearestMrtDistanceM resets all changes to the "nearest_mrt_distance_m" field.
func (m *AssignmentMutation) ResetNearestMrtDistanceM() {
	m.nearest_mrt_distance_m = nil
	m.addnearest_mrt_distance_m = nil
	delete(m.clearedFields, assignment.FieldNearestMrtDistanceM)
}

// SetRateMin sets the "rate_min" field.
func (m *AssignmentMutation) SetRateMin(f float64) {
	m.rate_min = &f
	m.addrate_min = nil
}

// RateMin returns the value of the "rate_min" field in the mutation.
func (m *AssignmentMutation) RateMin() (r float64, exists bool) {
	v := m.rate_min
	if v == nil {
		return
	}
	return *v, true
}

// OldRateMin returns the old "rate_min" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldRateMin(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateMin is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateMin requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateMin: %w", err)
	}
	return oldValue.RateMin, nil
}

// AddRateMin adds f to the "rate_min" field.
func (m *AssignmentMutation) AddRateMin(f float64) {
	if m.addrate_min != nil {
		*m.addrate_min += f
	} else {
		m.addrate_min = &f
	}
}

// AddedRateMin returns the value that was added to the "rate_min" field in this mutation.
func (m *AssignmentMutation) AddedRateMin() (r float64, exists bool) {
	v := m.addrate_min
	if v == nil {
		return
	}
	return *v, true
}

// ClearRateMin clears the value of the "rate_min" field.
func (m *AssignmentMutation) ClearRateMin() {
	m.rate_min = nil
	m.addrate_min = nil
	m.clearedFields[assignment.FieldRateMin] = struct{}{}
}

// RateMinCleared returns if the "rate_min" field was cleared in this mutation.
func (m *AssignmentMutation) RateMinCleared() bool {
	_, ok := m.clearedFields[assignment.FieldRateMin]
	return ok
}

// ResetRateMin resets all changes to the "rate_min" field.
func (m *AssignmentMutation) ResetRateMin() {
	m.rate_min = nil
	m.addrate_min = nil
	delete(m.clearedFields, assignment.FieldRateMin)
}

// SetRateMax sets the "rate_max" field.
func (m *AssignmentMutation) SetRateMax(f float64) {
	m.rate_max = &f
	m.addrate_max = nil
}

// RateMax returns the value of the "rate_max" field in the mutation.
func (m *AssignmentMutation) RateMax() (r float64, exists bool) {
	v := m.rate_max
	if v == nil {
		return
	}
	return *v, true
}

// OldRateMax returns the old "rate_max" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldRateMax(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRateMax is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRateMax requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRateMax: %w", err)
	}
	return oldValue.RateMax, nil
}

// AddRateMax adds f to the "rate_max" field.
func (m *AssignmentMutation) AddRateMax(f float64) {
	if m.addrate_max != nil {
		*m.addrate_max += f
	} else {
		m.addrate_max = &f
	}
}

// AddedRateMax returns the value that was added to the "rate_max" field in this mutation.
func (m *AssignmentMutation) AddedRateMax() (r float64, exists bool) {
	v := m.addrate_max
	if v == nil {
		return
	}
	return *v, true
}

// ClearRateMax clears the value of the "rate_max" field.
func (m *AssignmentMutation) ClearRateMax() {
	m.rate_max = nil
	m.addrate_max = nil
	m.clearedFields[assignment.FieldRateMax] = struct{}{}
}

// RateMaxCleared returns if the "rate_max" field was cleared in this mutation.
func (m *AssignmentMutation) RateMaxCleared() bool {
	_, ok := m.clearedFields[assignment.FieldRateMax]
	return ok
}

// ResetRateMax resets all changes to the "rate_max" field.
func (m *AssignmentMutation) ResetRateMax() {
	m.rate_max = nil
	m.addrate_max = nil
	delete(m.clearedFields, assignment.FieldRateMax)
}

// SetSignalsSubjects sets the "signals_subjects" field.
func (m *AssignmentMutation) SetSignalsSubjects(s []string) {
	m.signals_subjects = &s
	m.appendsignals_subjects = nil
}

// SignalsSubjects returns the value of the "signals_subjects" field in the mutation.
func (m *AssignmentMutation) SignalsSubjects() (r []string, exists bool) {
	v := m.signals_subjects
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalsSubjects returns the old "signals_subjects" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldSignalsSubjects(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalsSubjects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalsSubjects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalsSubjects: %w", err)
	}
	return oldValue.SignalsSubjects, nil
}

// AppendSignalsSubjects adds s to the "signals_subjects" field.
func (m *AssignmentMutation) AppendSignalsSubjects(s []string) {
	m.appendsignals_subjects = append(m.appendsignals_subjects, s...)
}

// AppendedSignalsSubjects returns the list of values that were appended to the "signals_subjects" field in this mutation.
func (m *AssignmentMutation) AppendedSignalsSubjects() ([]string, bool) {
	if len(m.appendsignals_subjects) == 0 {
		return nil, false
	}
	return m.appendsignals_subjects, true
}

// ClearSignalsSubjects clears the value of the "signals_subjects" field.
func (m *AssignmentMutation) ClearSignalsSubjects() {
	m.signals_subjects = nil
	m.appendsignals_subjects = nil
	m.clearedFields[assignment.FieldSignalsSubjects] = struct{}{}
}

// SignalsSubjectsCleared returns if the "signals_subjects" field was cleared in this mutation.
func (m *AssignmentMutation) SignalsSubjectsCleared() bool {
	_, ok := m.clearedFields[assignment.FieldSignalsSubjects]
	return ok
}

// ResetSignalsSubjects resets all changes to the "signals_subjects" field.
func (m *AssignmentMutation) ResetSignalsSubjects() {
	m.signals_subjects = nil
	m.appendsignals_subjects = nil
	delete(m.clearedFields, assignment.FieldSignalsSubjects)
}

// SetSignalsLevels sets the "signals_levels" field.
func (m *AssignmentMutation) SetSignalsLevels(s []string) {
	m.signals_levels = &s
	m.appendsignals_levels = nil
}

// SignalsLevels returns the value of the "signals_levels" field in the mutation.
func (m *AssignmentMutation) SignalsLevels() (r []string, exists bool) {
	v := m.signals_levels
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalsLevels returns the old "signals_levels" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldSignalsLevels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalsLevels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalsLevels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalsLevels: %w", err)
	}
	return oldValue.SignalsLevels, nil
}

// AppendSignalsLevels adds s to the "signals_levels" field.
func (m *AssignmentMutation) AppendSignalsLevels(s []string) {
	m.appendsignals_levels = append(m.appendsignals_levels, s...)
}

// AppendedSignalsLevels returns the list of values that were appended to the "signals_levels" field in this mutation.
func (m *AssignmentMutation) AppendedSignalsLevels() ([]string, bool) {
	if len(m.appendsignals_levels) == 0 {
		return nil, false
	}
	return m.appendsignals_levels, true
}

// ClearSignalsLevels clears the value of the "signals_levels" field.
func (m *AssignmentMutation) ClearSignalsLevels() {
	m.signals_levels = nil
	m.appendsignals_levels = nil
	m.clearedFields[assignment.FieldSignalsLevels] = struct{}{}
}

// SignalsLevelsCleared returns if the "signals_levels" field was cleared in this mutation.
func (m *AssignmentMutation) SignalsLevelsCleared() bool {
	_, ok := m.clearedFields[assignment.FieldSignalsLevels]
	return ok
}

// ResetSignalsLevels resets all changes to the "signals_levels" field.
func (m *AssignmentMutation) ResetSignalsLevels() {
	m.signals_levels = nil
	m.appendsignals_levels = nil
	delete(m.clearedFields, assignment.FieldSignalsLevels)
}

// SetSignalsSpecificStudentLevels sets the "signals_specific_student_levels" field.
func (m *AssignmentMutation) SetSignalsSpecificStudentLevels(s []string) {
	m.signals_specific_student_levels = &s
	m.appendsignals_specific_student_levels = nil
}

// SignalsSpecificStudentLevels returns the value of the "signals_specific_student_levels" field in the mutation.
func (m *AssignmentMutation) SignalsSpecificStudentLevels() (r []string, exists bool) {
	v := m.signals_specific_student_levels
	if v == nil {
		return
	}
	return *v, true
}

// OldSignalsSpecificStudentLevels returns the old "signals_specific_student_levels" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldSignalsSpecificStudentLevels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSignalsSpecificStudentLevels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSignalsSpecificStudentLevels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSignalsSpecificStudentLevels: %w", err)
	}
	return oldValue.SignalsSpecificStudentLevels, nil
}

// AppendSignalsSpecificStudentLevels adds s to the "signals_specific_student_levels" field.
func (m *AssignmentMutation) AppendSignalsSpecificStudentLevels(s []string) {
	m.appendsignals_specific_student_levels = append(m.appendsignals_specific_student_levels, s...)
}

// AppendedSignalsSpecificStudentLevels returns the list of values that were appended to the "signals_specific_student_levels" field in this mutation.
func (m *AssignmentMutation) AppendedSignalsSpecificStudentLevels() ([]string, bool) {
	if len(m.appendsignals_specific_student_levels) == 0 {
		return nil, false
	}
	return m.appendsignals_specific_student_levels, true
}

// ClearSignalsSpecificStudentLevels clears the value of the "signals_specific_student_levels" field.
func (m *AssignmentMutation) ClearSignalsSpecificStudentLevels() {
	m.signals_specific_student_levels = nil
	m.appendsignals_specific_student_levels = nil
	m.clearedFields[assignment.FieldSignalsSpecificStudentLevels] = struct{}{}
}

// SignalsSpecificStudentLevelsCleared returns if the "signals_specific_student_levels" field was cleared in this mutation.
func (m *AssignmentMutation) SignalsSpecificStudentLevelsCleared() bool {
	_, ok := m.clearedFields[assignment.FieldSignalsSpecificStudentLevels]
	return ok
}

// ResetSignalsSpecificStudentLevels resets all changes to the "signals_specific_student_levels" field.
func (m *AssignmentMutation) ResetSignalsSpecificStudentLevels() {
	m.signals_specific_student_levels = nil
	m.appendsignals_specific_student_levels = nil
	delete(m.clearedFields, assignment.FieldSignalsSpecificStudentLevels)
}

// SetSubjectsCanonical sets the "subjects_canonical" field.
func (m *AssignmentMutation) SetSubjectsCanonical(s []string) {
	m.subjects_canonical = &s
	m.appendsubjects_canonical = nil
}

// SubjectsCanonical returns the value of the "subjects_canonical" field in the mutation.
func (m *AssignmentMutation) SubjectsCanonical() (r []string, exists bool) {
	v := m.subjects_canonical
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectsCanonical returns the old "subjects_canonical" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldSubjectsCanonical(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectsCanonical is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectsCanonical requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectsCanonical: %w", err)
	}
	return oldValue.SubjectsCanonical, nil
}

// AppendSubjectsCanonical adds s to the "subjects_canonical" field.
func (m *AssignmentMutation) AppendSubjectsCanonical(s []string) {
	m.appendsubjects_canonical = append(m.appendsubjects_canonical, s...)
}

// AppendedSubjectsCanonical returns the list of values that were appended to the "subjects_canonical" field in this mutation.
func (m *AssignmentMutation) AppendedSubjectsCanonical() ([]string, bool) {
	if len(m.appendsubjects_canonical) == 0 {
		return nil, false
	}
	return m.appendsubjects_canonical, true
}

// ClearSubjectsCanonical clears the value of the "subjects_canonical" field.
func (m *AssignmentMutation) ClearSubjectsCanonical() {
	m.subjects_canonical = nil
	m.appendsubjects_canonical = nil
	m.clearedFields[assignment.FieldSubjectsCanonical] = struct{}{}
}

// SubjectsCanonicalCleared returns if the "subjects_canonical" field was cleared in this mutation.
func (m *AssignmentMutation) SubjectsCanonicalCleared() bool {
	_, ok := m.clearedFields[assignment.FieldSubjectsCanonical]
	return ok
}

// ResetSubjectsCanonical resets all changes to the "subjects_canonical" field.
func (m *AssignmentMutation) ResetSubjectsCanonical() {
	m.subjects_canonical = nil
	m.appendsubjects_canonical = nil
	delete(m.clearedFields, assignment.FieldSubjectsCanonical)
}

// SetSubjectsGeneral sets the "subjects_general" field.
func (m *AssignmentMutation) SetSubjectsGeneral(s []string) {
	m.subjects_general = &s
	m.appendsubjects_general = nil
}

// SubjectsGeneral returns the value of the "subjects_general" field in the mutation.
func (m *AssignmentMutation) SubjectsGeneral() (r []string, exists bool) {
	v := m.subjects_general
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjectsGeneral returns the old "subjects_general" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldSubjectsGeneral(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjectsGeneral is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjectsGeneral requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjectsGeneral: %w", err)
	}
	return oldValue.SubjectsGeneral, nil
}

// AppendSubjectsGeneral adds s to the "subjects_general" field.
func (m *AssignmentMutation) AppendSubjectsGeneral(s []string) {
	m.appendsubjects_general = append(m.appendsubjects_general, s...)
}

// AppendedSubjectsGeneral returns the list of values that were appended to the "subjects_general" field in this mutation.
func (m *AssignmentMutation) AppendedSubjectsGeneral() ([]string, bool) {
	if len(m.appendsubjects_general) == 0 {
		return nil, false
	}
	return m.appendsubjects_general, true
}

// ClearSubjectsGeneral clears the value of the "subjects_general" field.
func (m *AssignmentMutation) ClearSubjectsGeneral() {
	m.subjects_general = nil
	m.appendsubjects_general = nil
	m.clearedFields[assignment.FieldSubjectsGeneral] = struct{}{}
}

// SubjectsGeneralCleared returns if the "subjects_general" field was cleared in this mutation.
func (m *AssignmentMutation) SubjectsGeneralCleared() bool {
	_, ok := m.clearedFields[assignment.FieldSubjectsGeneral]
	return ok
}

// ResetSubjectsGeneral resets all changes to the "subjects_general" field.
func (m *AssignmentMutation) ResetSubjectsGeneral() {
	m.subjects_general = nil
	m.appendsubjects_general = nil
	delete(m.clearedFields, assignment.FieldSubjectsGeneral)
}

// SetCanonicalizationVersion sets the "canonicalization_version" field.
func (m *AssignmentMutation) SetCanonicalizationVersion(i int) {
	m.canonicalization_version = &i
	m.addcanonicalization_version = nil
}

// CanonicalizationVersion returns the value of the "canonicalization_version" field in the mutation.
func (m *AssignmentMutation) CanonicalizationVersion() (r int, exists bool) {
	v := m.canonicalization_version
	if v == nil {
		return
	}
	return *v, true
}

// OldCanonicalizationVersion returns the old "canonicalization_version" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldCanonicalizationVersion(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCanonicalizationVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCanonicalizationVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCanonicalizationVersion: %w", err)
	}
	return oldValue.CanonicalizationVersion, nil
}

// AddCanonicalizationVersion adds i to the "canonicalization_version" field.
func (m *AssignmentMutation) AddCanonicalizationVersion(i int) {
	if m.addcanonicalization_version != nil {
		*m.addcanonicalization_version += i
	} else {
		m.addcanonicalization_version = &i
	}
}

// AddedCanonicalizationVersion returns the value that was added to the "canonicalization_version" field in this mutation.
func (m *AssignmentMutation) AddedCanonicalizationVersion() (r int, exists bool) {
	v := m.addcanonicalization_version
	if v == nil {
		return
	}
	return *v, true
}

// ResetCanonicalizationVersion resets all changes to the "canonicalization_version" field.
func (m *AssignmentMutation) ResetCanonicalizationVersion() {
	m.canonicalization_version = nil
	m.addcanonicalization_version = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *AssignmentMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *AssignmentMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *AssignmentMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetPublishedAt sets the "published_at" field.
func (m *AssignmentMutation) SetPublishedAt(t time.Time) {
	m.published_at = &t
}

// PublishedAt returns the value of the "published_at" field in the mutation.
func (m *AssignmentMutation) PublishedAt() (r time.Time, exists bool) {
	v := m.published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldPublishedAt returns the old "published_at" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldPublishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPublishedAt: %w", err)
	}
	return oldValue.PublishedAt, nil
}

// ClearPublishedAt clears the value of the "published_at" field.
func (m *AssignmentMutation) ClearPublishedAt() {
	m.published_at = nil
	m.clearedFields[assignment.FieldPublishedAt] = struct{}{}
}

// PublishedAtCleared returns if the "published_at" field was cleared in this mutation.
func (m *AssignmentMutation) PublishedAtCleared() bool {
	_, ok := m.clearedFields[assignment.FieldPublishedAt]
	return ok
}

// ResetPublishedAt resets all changes to the "published_at" field.
func (m *AssignmentMutation) ResetPublishedAt() {
	m.published_at = nil
	delete(m.clearedFields, assignment.FieldPublishedAt)
}

// SetSourceLastSeen sets the "source_last_seen" field.
func (m *AssignmentMutation) SetSourceLastSeen(t time.Time) {
	m.source_last_seen = &t
}

// SourceLastSeen returns the value of the "source_last_seen" field in the mutation.
func (m *AssignmentMutation) SourceLastSeen() (r time.Time, exists bool) {
	v := m.source_last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceLastSeen returns the old "source_last_seen" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldSourceLastSeen(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceLastSeen: %w", err)
	}
	return oldValue.SourceLastSeen, nil
}

// ClearSourceLastSeen clears the value of the "source_last_seen" field.
func (m *AssignmentMutation) ClearSourceLastSeen() {
	m.source_last_seen = nil
	m.clearedFields[assignment.FieldSourceLastSeen] = struct{}{}
}

// SourceLastSeenCleared returns if the "source_last_seen" field was cleared in this mutation.
func (m *AssignmentMutation) SourceLastSeenCleared() bool {
	_, ok := m.clearedFields[assignment.FieldSourceLastSeen]
	return ok
}

// ResetSourceLastSeen resets all changes to the "source_last_seen" field.
func (m *AssignmentMutation) ResetSourceLastSeen() {
	m.source_last_seen = nil
	delete(m.clearedFields, assignment.FieldSourceLastSeen)
}

// SetLastSeen sets the "last_seen" field.
func (m *AssignmentMutation) SetLastSeen(t time.Time) {
	m.last_seen = &t
}

// LastSeen returns the value of the "last_seen" field in the mutation.
func (m *AssignmentMutation) LastSeen() (r time.Time, exists bool) {
	v := m.last_seen
	if v == nil {
		return
	}
	return *v, true
}

// OldLastSeen returns the old "last_seen" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldLastSeen(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLastSeen is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLastSeen requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLastSeen: %w", err)
	}
	return oldValue.LastSeen, nil
}

// ResetLastSeen resets all changes to the "last_seen" field.
func (m *AssignmentMutation) ResetLastSeen() {
	m.last_seen = nil
}

// SetStatus sets the "status" field.
func (m *AssignmentMutation) SetStatus(a assignment.Status) {
	m.status = &a
}

// Status returns the value of the "status" field in the mutation.
func (m *AssignmentMutation) Status() (r assignment.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldStatus(ctx context.Context) (v assignment.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *AssignmentMutation) ResetStatus() {
	m.status = nil
}

// SetFreshnessTier sets the "freshness_tier" field.
func (m *AssignmentMutation) SetFreshnessTier(at assignment.FreshnessTier) {
	m.freshness_tier = &at
}

// FreshnessTier returns the value of the "freshness_tier" field in the mutation.
func (m *AssignmentMutation) FreshnessTier() (r assignment.FreshnessTier, exists bool) {
	v := m.freshness_tier
	if v == nil {
		return
	}
	return *v, true
}

// OldFreshnessTier returns the old "freshness_tier" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldFreshnessTier(ctx context.Context) (v assignment.FreshnessTier, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFreshnessTier is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFreshnessTier requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFreshnessTier: %w", err)
	}
	return oldValue.FreshnessTier, nil
}

// ResetFreshnessTier resets all changes to the "freshness_tier" field.
func (m *AssignmentMutation) ResetFreshnessTier() {
	m.freshness_tier = nil
}

// SetBumpCount sets the "bump_count" field.
func (m *AssignmentMutation) SetBumpCount(i int) {
	m.bump_count = &i
	m.addbump_count = nil
}

// BumpCount returns the value of the "bump_count" field in the mutation.
func (m *AssignmentMutation) BumpCount() (r int, exists bool) {
	v := m.bump_count
	if v == nil {
		return
	}
	return *v, true
}

// OldBumpCount returns the old "bump_count" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldBumpCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldBumpCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldBumpCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldBumpCount: %w", err)
	}
	return oldValue.BumpCount, nil
}

// AddBumpCount adds i to the "bump_count" field.
func (m *AssignmentMutation) AddBumpCount(i int) {
	if m.addbump_count != nil {
		*m.addbump_count += i
	} else {
		m.addbump_count = &i
	}
}

// AddedBumpCount returns the value that was added to the "bump_count" field in this mutation.
func (m *AssignmentMutation) AddedBumpCount() (r int, exists bool) {
	v := m.addbump_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetBumpCount resets all changes to the "bump_count" field.
func (m *AssignmentMutation) ResetBumpCount() {
	m.bump_count = nil
	m.addbump_count = nil
}

// SetDuplicateGroupID sets the "duplicate_group_id" field.
func (m *AssignmentMutation) SetDuplicateGroupID(s string) {
	m.group = &s
}

// DuplicateGroupID returns the value of the "duplicate_group_id" field in the mutation.
func (m *AssignmentMutation) DuplicateGroupID() (r string, exists bool) {
	v := m.group
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicateGroupID returns the old "duplicate_group_id" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldDuplicateGroupID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicateGroupID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicateGroupID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicateGroupID: %w", err)
	}
	return oldValue.DuplicateGroupID, nil
}

// ClearDuplicateGroupID clears the value of the "duplicate_group_id" field.
func (m *AssignmentMutation) ClearDuplicateGroupID() {
	m.group = nil
	m.clearedFields[assignment.FieldDuplicateGroupID] = struct{}{}
}

// DuplicateGroupIDCleared returns if the "duplicate_group_id" field was cleared in this mutation.
func (m *AssignmentMutation) DuplicateGroupIDCleared() bool {
	_, ok := m.clearedFields[assignment.FieldDuplicateGroupID]
	return ok
}

// ResetDuplicateGroupID resets all changes to the "duplicate_group_id" field.
func (m *AssignmentMutation) ResetDuplicateGroupID() {
	m.group = nil
	delete(m.clearedFields, assignment.FieldDuplicateGroupID)
}

// SetIsPrimaryInGroup sets the "is_primary_in_group" field.
func (m *AssignmentMutation) SetIsPrimaryInGroup(b bool) {
	m.is_primary_in_group = &b
}

// IsPrimaryInGroup returns the value of the "is_primary_in_group" field in the mutation.
func (m *AssignmentMutation) IsPrimaryInGroup() (r bool, exists bool) {
	v := m.is_primary_in_group
	if v == nil {
		return
	}
	return *v, true
}

// OldIsPrimaryInGroup returns the old "is_primary_in_group" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldIsPrimaryInGroup(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldIsPrimaryInGroup is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldIsPrimaryInGroup requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldIsPrimaryInGroup: %w", err)
	}
	return oldValue.IsPrimaryInGroup, nil
}

// ResetIsPrimaryInGroup resets all changes to the "is_primary_in_group" field.
func (m *AssignmentMutation) ResetIsPrimaryInGroup() {
	m.is_primary_in_group = nil
}

// SetDuplicateConfidenceScore sets the "duplicate_confidence_score" field.
func (m *AssignmentMutation) SetDuplicateConfidenceScore(f float64) {
	m.duplicate_confidence_score = &f
	m.addduplicate_confidence_score = nil
}

// DuplicateConfidenceScore returns the value of the "duplicate_confidence_score" field in the mutation.
func (m *AssignmentMutation) DuplicateConfidenceScore() (r float64, exists bool) {
	v := m.duplicate_confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldDuplicateConfidenceScore returns the old "duplicate_confidence_score" field's value of the Assignment entity.
// If the Assignment object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *AssignmentMutation) OldDuplicateConfidenceScore(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDuplicateConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDuplicateConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDuplicateConfidenceScore: %w", err)
	}
	return oldValue.DuplicateConfidenceScore, nil
}

// AddDuplicateConfidenceScore adds f to the "duplicate_confidence_score" field.
func (m *AssignmentMutation) AddDuplicateConfidenceScore(f float64) {
	if m.addduplicate_confidence_score != nil {
		*m.addduplicate_confidence_score += f
	} else {
		m.addduplicate_confidence_score = &f
	}
}

// AddedDuplicateConfidenceScore returns the value that was added to the "duplicate_confidence_score" field in this mutation.
func (m *AssignmentMutation) AddedDuplicateConfidenceScore() (r float64, exists bool) {
	v := m.addduplicate_confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ClearDuplicateConfidenceScore clears the value of the "duplicate_confidence_score" field.
func (m *AssignmentMutation) ClearDuplicateConfidenceScore() {
	m.duplicate_confidence_score = nil
	m.addduplicate_confidence_score = nil
	m.clearedFields[assignment.FieldDuplicateConfidenceScore] = struct{}{}
}

// DuplicateConfidenceScoreCleared returns if the "duplicate_confidence_score" field was cleared in this mutation.
func (m *AssignmentMutation) DuplicateConfidenceScoreCleared() bool {
	_, ok := m.clearedFields[assignment.FieldDuplicateConfidenceScore]
	return ok
}

// ResetDuplicateConfidenceScore resets all changes to the "duplicate_confidence_score" field.
func (m *AssignmentMutation) ResetDuplicateConfidenceScore() {
	m.duplicate_confidence_score = nil
	m.addduplicate_confidence_score = nil
	delete(m.clearedFields, assignment.FieldDuplicateConfidenceScore)
}

// SetGroupID sets the "group" edge to the DuplicateGroup entity by id.
func (m *AssignmentMutation) SetGroupID(id string) {
	m.group = &id
}

// ClearGroup clears the "group" edge to the DuplicateGroup entity.
func (m *AssignmentMutation) ClearGroup() {
	m.clearedgroup = true
	m.clearedFields[assignment.FieldDuplicateGroupID] = struct{}{}
}

// GroupCleared reports if the "group" edge to the DuplicateGroup entity was cleared.
func (m *AssignmentMutation) GroupCleared() bool {
	return m.DuplicateGroupIDCleared() || m.clearedgroup
}

// GroupID returns the "group" edge ID in the mutation.
func (m *AssignmentMutation) GroupID() (id string, exists bool) {
	if m.group != nil {
		return *m.group, true
	}
	return
}

// GroupIDs returns the "group" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// GroupID instead. It exists only for internal usage by the builders.
func (m *AssignmentMutation) GroupIDs() (ids []string) {
	if id := m.group; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetGroup resets all changes to the "group" edge.
func (m *AssignmentMutation) ResetGroup() {
	m.group = nil
	m.clearedgroup = false
}

// Where appends a list predicates to the AssignmentMutation builder.
func (m *AssignmentMutation) Where(ps ...predicate.Assignment) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the AssignmentMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *AssignmentMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Assignment, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *AssignmentMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *AssignmentMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Assignment).
func (m *AssignmentMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *AssignmentMutation) Fields() []string {
	fields := make([]string, 0, 40)
	if m.external_id != nil {
		fields = append(fields, assignment.FieldExternalID)
	}
	if m.agency_id != nil {
		fields = append(fields, assignment.FieldAgencyID)
	}
	if m.assignment_code != nil {
		fields = append(fields, assignment.FieldAssignmentCode)
	}
	if m.message_link != nil {
		fields = append(fields, assignment.FieldMessageLink)
	}
	if m.academic_display_text != nil {
		fields = append(fields, assignment.FieldAcademicDisplayText)
	}
	if m.lesson_schedule != nil {
		fields = append(fields, assignment.FieldLessonSchedule)
	}
	if m.start_date != nil {
		fields = append(fields, assignment.FieldStartDate)
	}
	if m.time_availability_note != nil {
		fields = append(fields, assignment.FieldTimeAvailabilityNote)
	}
	if m.tutor_types != nil {
		fields = append(fields, assignment.FieldTutorTypes)
	}
	if m.learning_mode != nil {
		fields = append(fields, assignment.FieldLearningMode)
	}
	if m.rate_raw_text != nil {
		fields = append(fields, assignment.FieldRateRawText)
	}
	if m.rate_breakdown != nil {
		fields = append(fields, assignment.FieldRateBreakdown)
	}
	if m.address != nil {
		fields = append(fields, assignment.FieldAddress)
	}
	if m.postal_code != nil {
		fields = append(fields, assignment.FieldPostalCode)
	}
	if m.postal_code_estimated != nil {
		fields = append(fields, assignment.FieldPostalCodeEstimated)
	}
	if m.postal_lat != nil {
		fields = append(fields, assignment.FieldPostalLat)
	}
	if m.postal_lon != nil {
		fields = append(fields, assignment.FieldPostalLon)
	}
	if m.postal_coords_estimated != nil {
		fields = append(fields, assignment.FieldPostalCoordsEstimated)
	}
	if m.region != nil {
		fields = append(fields, assignment.FieldRegion)
	}
	if m.nearest_mrt_computed != nil {
		fields = append(fields, assignment.FieldNearestMrtComputed)
	}
	if m.nearest_mrt_line != nil {
		fields = append(fields, assignment.FieldNearestMrtLine)
	}
	if m.nearest_mrt_distance_m != nil {
		fields = append(fields, assignment.FieldNearestMrtDistanceM)
	}
	if m.rate_min != nil {
		fields = append(fields, assignment.FieldRateMin)
	}
	if m.rate_max != nil {
		fields = append(fields, assignment.FieldRateMax)
	}
	if m.signals_subjects != nil {
		fields = append(fields, assignment.FieldSignalsSubjects)
	}
	if m.signals_levels != nil {
		fields = append(fields, assignment.FieldSignalsLevels)
	}
	if m.signals_specific_student_levels != nil {
		fields = append(fields, assignment.FieldSignalsSpecificStudentLevels)
	}
	if m.subjects_canonical != nil {
		fields = append(fields, assignment.FieldSubjectsCanonical)
	}
	if m.subjects_general != nil {
		fields = append(fields, assignment.FieldSubjectsGeneral)
	}
	if m.canonicalization_version != nil {
		fields = append(fields, assignment.FieldCanonicalizationVersion)
	}
	if m.created_at != nil {
		fields = append(fields, assignment.FieldCreatedAt)
	}
	if m.published_at != nil {
		fields = append(fields, assignment.FieldPublishedAt)
	}
	if m.source_last_seen != nil {
		fields = append(fields, assignment.FieldSourceLastSeen)
	}
	if m.last_seen != nil {
		fields = append(fields, assignment.FieldLastSeen)
	}
	if m.status != nil {
		fields = append(fields, assignment.FieldStatus)
	}
	if m.freshness_tier != nil {
		fields = append(fields, assignment.FieldFreshnessTier)
	}
	if m.bump_count != nil {
		fields = append(fields, assignment.FieldBumpCount)
	}
	if m.group != nil {
		fields = append(fields, assignment.FieldDuplicateGroupID)
	}
	if m.is_primary_in_group != nil {
		fields = append(fields, assignment.FieldIsPrimaryInGroup)
	}
	if m.duplicate_confidence_score != nil {
		fields = append(fields, assignment.FieldDuplicateConfidenceScore)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *AssignmentMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case assignment.FieldExternalID:
		return m.ExternalID()
	case assignment.FieldAgencyID:
		return m.AgencyID()
	case assignment.FieldAssignmentCode:
		return m.AssignmentCode()
	case assignment.FieldMessageLink:
		return m.MessageLink()
	case assignment.FieldAcademicDisplayText:
		return m.AcademicDisplayText()
	case assignment.FieldLessonSchedule:
		return m.LessonSchedule()
	case assignment.FieldStartDate:
		return m.StartDate()
	case assignment.FieldTimeAvailabilityNote:
		return m.TimeAvailabilityNote()
	case assignment.FieldTutorTypes:
		return m.TutorTypes()
	case assignment.FieldLearningMode:
		return m.LearningMode()
	case assignment.FieldRateRawText:
		return m.RateRawText()
	case assignment.FieldRateBreakdown:
		return m.RateBreakdown()
	case assignment.FieldAddress:
		return m.Address()
	case assignment.FieldPostalCode:
		return m.PostalCode()
	case assignment.FieldPostalCodeEstimated:
		return m.PostalCodeEstimated()
	case assignment.FieldPostalLat:
		return m.PostalLat()
	case assignment.FieldPostalLon:
		return m.PostalLon()
	case assignment.FieldPostalCoordsEstimated:
		return m.PostalCoordsEstimated()
	case assignment.FieldRegion:
		return m.Region()
	case assignment.FieldNearestMrtComputed:
		return m.NearestMrtComputed()
	case assignment.FieldNearestMrtLine:
		return m.NearestMrtLine()
	case assignment.FieldNearestMrtDistanceM:
		return m.NearestMrtDistanceM()
	case assignment.FieldRateMin:
		return m.RateMin()
	case assignment.FieldRateMax:
		return m.RateMax()
	case assignment.FieldSignalsSubjects:
		return m.SignalsSubjects()
	case assignment.FieldSignalsLevels:
		return m.SignalsLevels()
	case assignment.FieldSignalsSpecificStudentLevels:
		return m.SignalsSpecificStudentLevels()
	case assignment.FieldSubjectsCanonical:
		return m.SubjectsCanonical()
	case assignment.FieldSubjectsGeneral:
		return m.SubjectsGeneral()
	case assignment.FieldCanonicalizationVersion:
		return m.CanonicalizationVersion()
	case assignment.FieldCreatedAt:
		return m.CreatedAt()
	case assignment.FieldPublishedAt:
		return m.PublishedAt()
	case assignment.FieldSourceLastSeen:
		return m.SourceLastSeen()
	case assignment.FieldLastSeen:
		return m.LastSeen()
	case assignment.FieldStatus:
		return m.Status()
	case assignment.FieldFreshnessTier:
		return m.FreshnessTier()
	case assignment.FieldBumpCount:
		return m.BumpCount()
	case assignment.FieldDuplicateGroupID:
		return m.DuplicateGroupID()
	case assignment.FieldIsPrimaryInGroup:
		return m.IsPrimaryInGroup()
	case assignment.FieldDuplicateConfidenceScore:
		return m.DuplicateConfidenceScore()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *AssignmentMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case assignment.FieldExternalID:
		return m.OldExternalID(ctx)
	case assignment.FieldAgencyID:
		return m.OldAgencyID(ctx)
	case assignment.FieldAssignmentCode:
		return m.OldAssignmentCode(ctx)
	case assignment.FieldMessageLink:
		return m.OldMessageLink(ctx)
	case assignment.FieldAcademicDisplayText:
		return m.OldAcademicDisplayText(ctx)
	case assignment.FieldLessonSchedule:
		return m.OldLessonSchedule(ctx)
	case assignment.FieldStartDate:
		return m.OldStartDate(ctx)
	case assignment.FieldTimeAvailabilityNote:
		return m.OldTimeAvailabilityNote(ctx)
	case assignment.FieldTutorTypes:
		return m.OldTutorTypes(ctx)
	case assignment.FieldLearningMode:
		return m.OldLearningMode(ctx)
	case assignment.FieldRateRawText:
		return m.OldRateRawText(ctx)
	case assignment.FieldRateBreakdown:
		return m.OldRateBreakdown(ctx)
	case assignment.FieldAddress:
		return m.OldAddress(ctx)
	case assignment.FieldPostalCode:
		return m.OldPostalCode(ctx)
	case assignment.FieldPostalCodeEstimated:
		return m.OldPostalCodeEstimated(ctx)
	case assignment.FieldPostalLat:
		return m.OldPostalLat(ctx)
	case assignment.FieldPostalLon:
		return m.OldPostalLon(ctx)
	case assignment.FieldPostalCoordsEstimated:
		return m.OldPostalCoordsEstimated(ctx)
	case assignment.FieldRegion:
		return m.OldRegion(ctx)
	case assignment.FieldNearestMrtComputed:
		return m.OldNearestMrtComputed(ctx)
	case assignment.FieldNearestMrtLine:
		return m.OldNearestMrtLine(ctx)
	case assignment.FieldNearestMrtDistanceM:
		return m.OldNearestMrtDistanceM(ctx)
	case assignment.FieldRateMin:
		return m.OldRateMin(ctx)
	case assignment.FieldRateMax:
		return m.OldRateMax(ctx)
	case assignment.FieldSignalsSubjects:
		return m.OldSignalsSubjects(ctx)
	case assignment.FieldSignalsLevels:
		return m.OldSignalsLevels(ctx)
	case assignment.FieldSignalsSpecificStudentLevels:
		return m.OldSignalsSpecificStudentLevels(ctx)
	case assignment.FieldSubjectsCanonical:
		return m.OldSubjectsCanonical(ctx)
	case assignment.FieldSubjectsGeneral:
		return m.OldSubjectsGeneral(ctx)
	case assignment.FieldCanonicalizationVersion:
		return m.OldCanonicalizationVersion(ctx)
	case assignment.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case assignment.FieldPublishedAt:
		return m.OldPublishedAt(ctx)
	case assignment.FieldSourceLastSeen:
		return m.OldSourceLastSeen(ctx)
	case assignment.FieldLastSeen:
		return m.OldLastSeen(ctx)
	case assignment.FieldStatus:
		return m.OldStatus(ctx)
	case assignment.FieldFreshnessTier:
		return m.OldFreshnessTier(ctx)
	case assignment.FieldBumpCount:
		return m.OldBumpCount(ctx)
	case assignment.FieldDuplicateGroupID:
		return m.OldDuplicateGroupID(ctx)
	case assignment.FieldIsPrimaryInGroup:
		return m.OldIsPrimaryInGroup(ctx)
	case assignment.FieldDuplicateConfidenceScore:
		return m.OldDuplicateConfidenceScore(ctx)
	}
	return nil, fmt.Errorf("unknown Assignment field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentMutation) SetField(name string, value ent.Value) error {
	switch name {
	case assignment.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case assignment.FieldAgencyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgencyID(v)
		return nil
	case assignment.FieldAssignmentCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentCode(v)
		return nil
	case assignment.FieldMessageLink:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageLink(v)
		return nil
	case assignment.FieldAcademicDisplayText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAcademicDisplayText(v)
		return nil
	case assignment.FieldLessonSchedule:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLessonSchedule(v)
		return nil
	case assignment.FieldStartDate:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartDate(v)
		return nil
	case assignment.FieldTimeAvailabilityNote:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTimeAvailabilityNote(v)
		return nil
	case assignment.FieldTutorTypes:
		v, ok := value.([]map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTutorTypes(v)
		return nil
	case assignment.FieldLearningMode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLearningMode(v)
		return nil
	case assignment.FieldRateRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateRawText(v)
		return nil
	case assignment.FieldRateBreakdown:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateBreakdown(v)
		return nil
	case assignment.FieldAddress:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAddress(v)
		return nil
	case assignment.FieldPostalCode:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCode(v)
		return nil
	case assignment.FieldPostalCodeEstimated:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCodeEstimated(v)
		return nil
	case assignment.FieldPostalLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalLat(v)
		return nil
	case assignment.FieldPostalLon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalLon(v)
		return nil
	case assignment.FieldPostalCoordsEstimated:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCoordsEstimated(v)
		return nil
	case assignment.FieldRegion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRegion(v)
		return nil
	case assignment.FieldNearestMrtComputed:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNearestMrtComputed(v)
		return nil
	case assignment.FieldNearestMrtLine:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNearestMrtLine(v)
		return nil
	case assignment.FieldNearestMrtDistanceM:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNearestMrtDistanceM(v)
		return nil
	case assignment.FieldRateMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateMin(v)
		return nil
	case assignment.FieldRateMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRateMax(v)
		return nil
	case assignment.FieldSignalsSubjects:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalsSubjects(v)
		return nil
	case assignment.FieldSignalsLevels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalsLevels(v)
		return nil
	case assignment.FieldSignalsSpecificStudentLevels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSignalsSpecificStudentLevels(v)
		return nil
	case assignment.FieldSubjectsCanonical:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectsCanonical(v)
		return nil
	case assignment.FieldSubjectsGeneral:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjectsGeneral(v)
		return nil
	case assignment.FieldCanonicalizationVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCanonicalizationVersion(v)
		return nil
	case assignment.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case assignment.FieldPublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPublishedAt(v)
		return nil
	case assignment.FieldSourceLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceLastSeen(v)
		return nil
	case assignment.FieldLastSeen:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLastSeen(v)
		return nil
	case assignment.FieldStatus:
		v, ok := value.(assignment.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case assignment.FieldFreshnessTier:
		v, ok := value.(assignment.FreshnessTier)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFreshnessTier(v)
		return nil
	case assignment.FieldBumpCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetBumpCount(v)
		return nil
	case assignment.FieldDuplicateGroupID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicateGroupID(v)
		return nil
	case assignment.FieldIsPrimaryInGroup:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetIsPrimaryInGroup(v)
		return nil
	case assignment.FieldDuplicateConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDuplicateConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Assignment field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *AssignmentMutation) AddedFields() []string {
	var fields []string
	if m.addpostal_lat != nil {
		fields = append(fields, assignment.FieldPostalLat)
	}
	if m.addpostal_lon != nil {
		fields = append(fields, assignment.FieldPostalLon)
	}
	if m.addnearest_mrt_distance_m != nil {
		fields = append(fields, assignment.FieldNearestMrtDistanceM)
	}
	if m.addrate_min != nil {
		fields = append(fields, assignment.FieldRateMin)
	}
	if m.addrate_max != nil {
		fields = append(fields, assignment.FieldRateMax)
	}
	if m.addcanonicalization_version != nil {
		fields = append(fields, assignment.FieldCanonicalizationVersion)
	}
	if m.addbump_count != nil {
		fields = append(fields, assignment.FieldBumpCount)
	}
	if m.addduplicate_confidence_score != nil {
		fields = append(fields, assignment.FieldDuplicateConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *AssignmentMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case assignment.FieldPostalLat:
		return m.AddedPostalLat()
	case assignment.FieldPostalLon:
		return m.AddedPostalLon()
	case assignment.FieldNearestMrtDistanceM:
		return m.AddedNearestMrtDistanceM()
	case assignment.FieldRateMin:
		return m.AddedRateMin()
	case assignment.FieldRateMax:
		return m.AddedRateMax()
	case assignment.FieldCanonicalizationVersion:
		return m.AddedCanonicalizationVersion()
	case assignment.FieldBumpCount:
		return m.AddedBumpCount()
	case assignment.FieldDuplicateConfidenceScore:
		return m.AddedDuplicateConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *AssignmentMutation) AddField(name string, value ent.Value) error {
	switch name {
	case assignment.FieldPostalLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPostalLat(v)
		return nil
	case assignment.FieldPostalLon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddPostalLon(v)
		return nil
	case assignment.FieldNearestMrtDistanceM:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddNearestMrtDistanceM(v)
		return nil
	case assignment.FieldRateMin:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRateMin(v)
		return nil
	case assignment.FieldRateMax:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddRateMax(v)
		return nil
	case assignment.FieldCanonicalizationVersion:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddCanonicalizationVersion(v)
		return nil
	case assignment.FieldBumpCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddBumpCount(v)
		return nil
	case assignment.FieldDuplicateConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDuplicateConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown Assignment numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *AssignmentMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(assignment.FieldAssignmentCode) {
		fields = append(fields, assignment.FieldAssignmentCode)
	}
	if m.FieldCleared(assignment.FieldMessageLink) {
		fields = append(fields, assignment.FieldMessageLink)
	}
	if m.FieldCleared(assignment.FieldLessonSchedule) {
		fields = append(fields, assignment.FieldLessonSchedule)
	}
	if m.FieldCleared(assignment.FieldStartDate) {
		fields = append(fields, assignment.FieldStartDate)
	}
	if m.FieldCleared(assignment.FieldTimeAvailabilityNote) {
		fields = append(fields, assignment.FieldTimeAvailabilityNote)
	}
	if m.FieldCleared(assignment.FieldTutorTypes) {
		fields = append(fields, assignment.FieldTutorTypes)
	}
	if m.FieldCleared(assignment.FieldLearningMode) {
		fields = append(fields, assignment.FieldLearningMode)
	}
	if m.FieldCleared(assignment.FieldRateRawText) {
		fields = append(fields, assignment.FieldRateRawText)
	}
	if m.FieldCleared(assignment.FieldRateBreakdown) {
		fields = append(fields, assignment.FieldRateBreakdown)
	}
	if m.FieldCleared(assignment.FieldAddress) {
		fields = append(fields, assignment.FieldAddress)
	}
	if m.FieldCleared(assignment.FieldPostalCode) {
		fields = append(fields, assignment.FieldPostalCode)
	}
	if m.FieldCleared(assignment.FieldPostalCodeEstimated) {
		fields = append(fields, assignment.FieldPostalCodeEstimated)
	}
	if m.FieldCleared(assignment.FieldPostalLat) {
		fields = append(fields, assignment.FieldPostalLat)
	}
	if m.FieldCleared(assignment.FieldPostalLon) {
		fields = append(fields, assignment.FieldPostalLon)
	}
	if m.FieldCleared(assignment.FieldRegion) {
		fields = append(fields, assignment.FieldRegion)
	}
	if m.FieldCleared(assignment.FieldNearestMrtComputed) {
		fields = append(fields, assignment.FieldNearestMrtComputed)
	}
	if m.FieldCleared(assignment.FieldNearestMrtLine) {
		fields = append(fields, assignment.FieldNearestMrtLine)
	}
	if m.FieldCleared(assignment.FieldNearestMrtDistanceM) {
		fields = append(fields, assignment.FieldNearestMrtDistanceM)
	}
	if m.FieldCleared(assignment.FieldRateMin) {
		fields = append(fields, assignment.FieldRateMin)
	}
	if m.FieldCleared(assignment.FieldRateMax) {
		fields = append(fields, assignment.FieldRateMax)
	}
	if m.FieldCleared(assignment.FieldSignalsSubjects) {
		fields = append(fields, assignment.FieldSignalsSubjects)
	}
	if m.FieldCleared(assignment.FieldSignalsLevels) {
		fields = append(fields, assignment.FieldSignalsLevels)
	}
	if m.FieldCleared(assignment.FieldSignalsSpecificStudentLevels) {
		fields = append(fields, assignment.FieldSignalsSpecificStudentLevels)
	}
	if m.FieldCleared(assignment.FieldSubjectsCanonical) {
		fields = append(fields, assignment.FieldSubjectsCanonical)
	}
	if m.FieldCleared(assignment.FieldSubjectsGeneral) {
		fields = append(fields, assignment.FieldSubjectsGeneral)
	}
	if m.FieldCleared(assignment.FieldPublishedAt) {
		fields = append(fields, assignment.FieldPublishedAt)
	}
	if m.FieldCleared(assignment.FieldSourceLastSeen) {
		fields = append(fields, assignment.FieldSourceLastSeen)
	}
	if m.FieldCleared(assignment.FieldDuplicateGroupID) {
		fields = append(fields, assignment.FieldDuplicateGroupID)
	}
	if m.FieldCleared(assignment.FieldDuplicateConfidenceScore) {
		fields = append(fields, assignment.FieldDuplicateConfidenceScore)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *AssignmentMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *AssignmentMutation) ClearField(name string) error {
	switch name {
	case assignment.FieldAssignmentCode:
		m.ClearAssignmentCode()
		return nil
	case assignment.FieldMessageLink:
		m.ClearMessageLink()
		return nil
	case assignment.FieldLessonSchedule:
		m.ClearLessonSchedule()
		return nil
	case assignment.FieldStartDate:
		m.ClearStartDate()
		return nil
	case assignment.FieldTimeAvailabilityNote:
		m.ClearTimeAvailabilityNote()
		return nil
	case assignment.FieldTutorTypes:
		m.ClearTutorTypes()
		return nil
	case assignment.FieldLearningMode:
		m.ClearLearningMode()
		return nil
	case assignment.FieldRateRawText:
		m.ClearRateRawText()
		return nil
	case assignment.FieldRateBreakdown:
		m.ClearRateBreakdown()
		return nil
	case assignment.FieldAddress:
		m.ClearAddress()
		return nil
	case assignment.FieldPostalCode:
		m.ClearPostalCode()
		return nil
	case assignment.FieldPostalCodeEstimated:
		m.ClearPostalCodeEstimated()
		return nil
	case assignment.FieldPostalLat:
		m.ClearPostalLat()
		return nil
	case assignment.FieldPostalLon:
		m.ClearPostalLon()
		return nil
	case assignment.FieldRegion:
		m.ClearRegion()
		return nil
	case assignment.FieldNearestMrtComputed:
		m.ClearNearestMrtComputed()
		return nil
	case assignment.FieldNearestMrtLine:
		m.ClearNearestMrtLine()
		return nil
	case assignment.FieldNearestMrtDistanceM:
		m.ClearNearestMrtDistanceM()
		return nil
	case assignment.FieldRateMin:
		m.ClearRateMin()
		return nil
	case assignment.FieldRateMax:
		m.ClearRateMax()
		return nil
	case assignment.FieldSignalsSubjects:
		m.ClearSignalsSubjects()
		return nil
	case assignment.FieldSignalsLevels:
		m.ClearSignalsLevels()
		return nil
	case assignment.FieldSignalsSpecificStudentLevels:
		m.ClearSignalsSpecificStudentLevels()
		return nil
	case assignment.FieldSubjectsCanonical:
		m.ClearSubjectsCanonical()
		return nil
	case assignment.FieldSubjectsGeneral:
		m.ClearSubjectsGeneral()
		return nil
	case assignment.FieldPublishedAt:
		m.ClearPublishedAt()
		return nil
	case assignment.FieldSourceLastSeen:
		m.ClearSourceLastSeen()
		return nil
	case assignment.FieldDuplicateGroupID:
		m.ClearDuplicateGroupID()
		return nil
	case assignment.FieldDuplicateConfidenceScore:
		m.ClearDuplicateConfidenceScore()
		return nil
	}
	return fmt.Errorf("unknown Assignment nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *AssignmentMutation) ResetField(name string) error {
	switch name {
	case assignment.FieldExternalID:
		m.ResetExternalID()
		return nil
	case assignment.FieldAgencyID:
		m.ResetAgencyID()
		return nil
	case assignment.FieldAssignmentCode:
		m.ResetAssignmentCode()
		return nil
	case assignment.FieldMessageLink:
		m.ResetMessageLink()
		return nil
	case assignment.FieldAcademicDisplayText:
		m.ResetAcademicDisplayText()
		return nil
	case assignment.FieldLessonSchedule:
		m.ResetLessonSchedule()
		return nil
	case assignment.FieldStartDate:
		m.ResetStartDate()
		return nil
	case assignment.FieldTimeAvailabilityNote:
		m.ResetTimeAvailabilityNote()
		return nil
	case assignment.FieldTutorTypes:
		m.ResetTutorTypes()
		return nil
	case assignment.FieldLearningMode:
		m.ResetLearningMode()
		return nil
	case assignment.FieldRateRawText:
		m.ResetRateRawText()
		return nil
	case assignment.FieldRateBreakdown:
		m.ResetRateBreakdown()
		return nil
	case assignment.FieldAddress:
		m.ResetAddress()
		return nil
	case assignment.FieldPostalCode:
		m.ResetPostalCode()
		return nil
	case assignment.FieldPostalCodeEstimated:
		m.ResetPostalCodeEstimated()
		return nil
	case assignment.FieldPostalLat:
		m.ResetPostalLat()
		return nil
	case assignment.FieldPostalLon:
		m.ResetPostalLon()
		return nil
	case assignment.FieldPostalCoordsEstimated:
		m.ResetPostalCoordsEstimated()
		return nil
	case assignment.FieldRegion:
		m.ResetRegion()
		return nil
	case assignment.FieldNearestMrtComputed:
		m.ResetNearestMrtComputed()
		return nil
	case assignment.FieldNearestMrtLine:
		m.ResetNearestMrtLine()
		return nil
	case assignment.FieldNearestMrtDistanceM:
		m.ResetNearestMrtDistanceM()
		return nil
	case assignment.FieldRateMin:
		m.ResetRateMin()
		return nil
	case assignment.FieldRateMax:
		m.ResetRateMax()
		return nil
	case assignment.FieldSignalsSubjects:
		m.ResetSignalsSubjects()
		return nil
	case assignment.FieldSignalsLevels:
		m.ResetSignalsLevels()
		return nil
	case assignment.FieldSignalsSpecificStudentLevels:
		m.ResetSignalsSpecificStudentLevels()
		return nil
	case assignment.FieldSubjectsCanonical:
		m.ResetSubjectsCanonical()
		return nil
	case assignment.FieldSubjectsGeneral:
		m.ResetSubjectsGeneral()
		return nil
	case assignment.FieldCanonicalizationVersion:
		m.ResetCanonicalizationVersion()
		return nil
	case assignment.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case assignment.FieldPublishedAt:
		m.ResetPublishedAt()
		return nil
	case assignment.FieldSourceLastSeen:
		m.ResetSourceLastSeen()
		return nil
	case assignment.FieldLastSeen:
		m.ResetLastSeen()
		return nil
	case assignment.FieldStatus:
		m.ResetStatus()
		return nil
	case assignment.FieldFreshnessTier:
		m.ResetFreshnessTier()
		return nil
	case assignment.FieldBumpCount:
		m.ResetBumpCount()
		return nil
	case assignment.FieldDuplicateGroupID:
		m.ResetDuplicateGroupID()
		return nil
	case assignment.FieldIsPrimaryInGroup:
		m.ResetIsPrimaryInGroup()
		return nil
	case assignment.FieldDuplicateConfidenceScore:
		m.ResetDuplicateConfidenceScore()
		return nil
	}
	return fmt.Errorf("unknown Assignment field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *AssignmentMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.group != nil {
		edges = append(edges, assignment.EdgeGroup)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *AssignmentMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case assignment.EdgeGroup:
		if id := m.group; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *AssignmentMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *AssignmentMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *AssignmentMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedgroup {
		edges = append(edges, assignment.EdgeGroup)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *AssignmentMutation) EdgeCleared(name string) bool {
	switch name {
	case assignment.EdgeGroup:
		return m.clearedgroup
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *AssignmentMutation) ClearEdge(name string) error {
	switch name {
	case assignment.EdgeGroup:
		m.ClearGroup()
		return nil
	}
	return fmt.Errorf("unknown Assignment unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *AssignmentMutation) ResetEdge(name string) error {
	switch name {
	case assignment.EdgeGroup:
		m.ResetGroup()
		return nil
	}
	return fmt.Errorf("unknown Assignment edge %s", name)
}

// BroadcastRecordMutation represents an operation that mutates the BroadcastRecord nodes in the graph.
type BroadcastRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	external_id          *string
	content              *string
	chat_id              *string
	transport_message_id *string
	click_bucket         *int
	addclick_bucket      *int
	created_at           *time.Time
	updated_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*BroadcastRecord, error)
	predicates           []predicate.BroadcastRecord
}

var _ ent.Mutation = (*BroadcastRecordMutation)(nil)

// broadcastrecordOption allows management of the mutation configuration using functional options.
type broadcastrecordOption func(*BroadcastRecordMutation)

// newBroadcastRecordMutation creates new mutation for the BroadcastRecord entity.
func newBroadcastRecordMutation(c config, op Op, opts ...broadcastrecordOption) *BroadcastRecordMutation {
	m := &BroadcastRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeBroadcastRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withBroadcastRecordID sets the ID field of the mutation.
func withBroadcastRecordID(id string) broadcastrecordOption {
	return func(m *BroadcastRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *BroadcastRecord
		)
		m.oldValue = func(ctx context.Context) (*BroadcastRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().BroadcastRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withBroadcastRecord sets the old BroadcastRecord of the mutation.
func withBroadcastRecord(node *BroadcastRecord) broadcastrecordOption {
	return func(m *BroadcastRecordMutation) {
		m.oldValue = func(context.Context) (*BroadcastRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m BroadcastRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m BroadcastRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of BroadcastRecord entities.
func (m *BroadcastRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *BroadcastRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *BroadcastRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().BroadcastRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *BroadcastRecordMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *BroadcastRecordMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the BroadcastRecord entity.
// If the BroadcastRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BroadcastRecordMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *BroadcastRecordMutation) ResetExternalID() {
	m.external_id = nil
}

// SetContent sets the "content" field.
func (m *BroadcastRecordMutation) SetContent(s string) {
	m.content = &s
}

// Content returns the value of the "content" field in the mutation.
func (m *BroadcastRecordMutation) Content() (r string, exists bool) {
	v := m.content
	if v == nil {
		return
	}
	return *v, true
}

// OldContent returns the old "content" field's value of the BroadcastRecord entity.
// If the BroadcastRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BroadcastRecordMutation) OldContent(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContent is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContent requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContent: %w", err)
	}
	return oldValue.Content, nil
}

// ClearContent clears the value of the "content" field.
func (m *BroadcastRecordMutation) ClearContent() {
	m.content = nil
	m.clearedFields[broadcastrecord.FieldContent] = struct{}{}
}

// ContentCleared returns if the "content" field was cleared in this mutation.
func (m *BroadcastRecordMutation) ContentCleared() bool {
	_, ok := m.clearedFields[broadcastrecord.FieldContent]
	return ok
}

// ResetContent resets all changes to the "content" field.
func (m *BroadcastRecordMutation) ResetContent() {
	m.content = nil
	delete(m.clearedFields, broadcastrecord.FieldContent)
}

// SetChatID sets the "chat_id" field.
func (m *BroadcastRecordMutation) SetChatID(s string) {
	m.chat_id = &s
}

// ChatID returns the value of the "chat_id" field in the mutation.
func (m *BroadcastRecordMutation) ChatID() (r string, exists bool) {
	v := m.chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldChatID returns the old "chat_id" field's value of the BroadcastRecord entity.
// If the BroadcastRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BroadcastRecordMutation) OldChatID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChatID: %w", err)
	}
	return oldValue.ChatID, nil
}

// ClearChatID clears the value of the "chat_id" field.
func (m *BroadcastRecordMutation) ClearChatID() {
	m.chat_id = nil
	m.clearedFields[broadcastrecord.FieldChatID] = struct{}{}
}

// ChatIDCleared returns if the "chat_id" field was cleared in this mutation.
func (m *BroadcastRecordMutation) ChatIDCleared() bool {
	_, ok := m.clearedFields[broadcastrecord.FieldChatID]
	return ok
}

// ResetChatID resets all changes to the "chat_id" field.
func (m *BroadcastRecordMutation) ResetChatID() {
	m.chat_id = nil
	delete(m.clearedFields, broadcastrecord.FieldChatID)
}

// SetTransportMessageID sets the "transport_message_id" field.
func (m *BroadcastRecordMutation) SetTransportMessageID(s string) {
	m.transport_message_id = &s
}

// TransportMessageID returns the value of the "transport_message_id" field in the mutation.
func (m *BroadcastRecordMutation) TransportMessageID() (r string, exists bool) {
	v := m.transport_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransportMessageID returns the old "transport_message_id" field's value of the BroadcastRecord entity.
// If the BroadcastRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BroadcastRecordMutation) OldTransportMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransportMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransportMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransportMessageID: %w", err)
	}
	return oldValue.TransportMessageID, nil
}

// ClearTransportMessageID clears the value of the "transport_message_id" field.
func (m *BroadcastRecordMutation) ClearTransportMessageID() {
	m.transport_message_id = nil
	m.clearedFields[broadcastrecord.FieldTransportMessageID] = struct{}{}
}

// TransportMessageIDCleared returns if the "transport_message_id" field was cleared in this mutation.
func (m *BroadcastRecordMutation) TransportMessageIDCleared() bool {
	_, ok := m.clearedFields[broadcastrecord.FieldTransportMessageID]
	return ok
}

// ResetTransportMessageID resets all changes to the "transport_message_id" field.
func (m *BroadcastRecordMutation) ResetTransportMessageID() {
	m.transport_message_id = nil
	delete(m.clearedFields, broadcastrecord.FieldTransportMessageID)
}

// SetClickBucket sets the "click_bucket" field.
func (m *BroadcastRecordMutation) SetClickBucket(i int) {
	m.click_bucket = &i
	m.addclick_bucket = nil
}

// ClickBucket returns the value of the "click_bucket" field in the mutation.
func (m *BroadcastRecordMutation) ClickBucket() (r int, exists bool) {
	v := m.click_bucket
	if v == nil {
		return
	}
	return *v, true
}

// OldClickBucket returns the old "click_bucket" field's value of the BroadcastRecord entity.
// If the BroadcastRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BroadcastRecordMutation) OldClickBucket(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClickBucket is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClickBucket requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClickBucket: %w", err)
	}
	return oldValue.ClickBucket, nil
}

// AddClickBucket adds i to the "click_bucket" field.
func (m *BroadcastRecordMutation) AddClickBucket(i int) {
	if m.addclick_bucket != nil {
		*m.addclick_bucket += i
	} else {
		m.addclick_bucket = &i
	}
}

// AddedClickBucket returns the value that was added to the "click_bucket" field in this mutation.
func (m *BroadcastRecordMutation) AddedClickBucket() (r int, exists bool) {
	v := m.addclick_bucket
	if v == nil {
		return
	}
	return *v, true
}

// ResetClickBucket resets all changes to the "click_bucket" field.
func (m *BroadcastRecordMutation) ResetClickBucket() {
	m.click_bucket = nil
	m.addclick_bucket = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *BroadcastRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *BroadcastRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the BroadcastRecord entity.
// If the BroadcastRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BroadcastRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *BroadcastRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *BroadcastRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *BroadcastRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the BroadcastRecord entity.
// If the BroadcastRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *BroadcastRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *BroadcastRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the BroadcastRecordMutation builder.
func (m *BroadcastRecordMutation) Where(ps ...predicate.BroadcastRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the BroadcastRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *BroadcastRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.BroadcastRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *BroadcastRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *BroadcastRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (BroadcastRecord).
func (m *BroadcastRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *BroadcastRecordMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.external_id != nil {
		fields = append(fields, broadcastrecord.FieldExternalID)
	}
	if m.content != nil {
		fields = append(fields, broadcastrecord.FieldContent)
	}
	if m.chat_id != nil {
		fields = append(fields, broadcastrecord.FieldChatID)
	}
	if m.transport_message_id != nil {
		fields = append(fields, broadcastrecord.FieldTransportMessageID)
	}
	if m.click_bucket != nil {
		fields = append(fields, broadcastrecord.FieldClickBucket)
	}
	if m.created_at != nil {
		fields = append(fields, broadcastrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, broadcastrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *BroadcastRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case broadcastrecord.FieldExternalID:
		return m.ExternalID()
	case broadcastrecord.FieldContent:
		return m.Content()
	case broadcastrecord.FieldChatID:
		return m.ChatID()
	case broadcastrecord.FieldTransportMessageID:
		return m.TransportMessageID()
	case broadcastrecord.FieldClickBucket:
		return m.ClickBucket()
	case broadcastrecord.FieldCreatedAt:
		return m.CreatedAt()
	case broadcastrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *BroadcastRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case broadcastrecord.FieldExternalID:
		return m.OldExternalID(ctx)
	case broadcastrecord.FieldContent:
		return m.OldContent(ctx)
	case broadcastrecord.FieldChatID:
		return m.OldChatID(ctx)
	case broadcastrecord.FieldTransportMessageID:
		return m.OldTransportMessageID(ctx)
	case broadcastrecord.FieldClickBucket:
		return m.OldClickBucket(ctx)
	case broadcastrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case broadcastrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown BroadcastRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BroadcastRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case broadcastrecord.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case broadcastrecord.FieldContent:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContent(v)
		return nil
	case broadcastrecord.FieldChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChatID(v)
		return nil
	case broadcastrecord.FieldTransportMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransportMessageID(v)
		return nil
	case broadcastrecord.FieldClickBucket:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClickBucket(v)
		return nil
	case broadcastrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case broadcastrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown BroadcastRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *BroadcastRecordMutation) AddedFields() []string {
	var fields []string
	if m.addclick_bucket != nil {
		fields = append(fields, broadcastrecord.FieldClickBucket)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *BroadcastRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case broadcastrecord.FieldClickBucket:
		return m.AddedClickBucket()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *BroadcastRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case broadcastrecord.FieldClickBucket:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClickBucket(v)
		return nil
	}
	return fmt.Errorf("unknown BroadcastRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *BroadcastRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(broadcastrecord.FieldContent) {
		fields = append(fields, broadcastrecord.FieldContent)
	}
	if m.FieldCleared(broadcastrecord.FieldChatID) {
		fields = append(fields, broadcastrecord.FieldChatID)
	}
	if m.FieldCleared(broadcastrecord.FieldTransportMessageID) {
		fields = append(fields, broadcastrecord.FieldTransportMessageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *BroadcastRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *BroadcastRecordMutation) ClearField(name string) error {
	switch name {
	case broadcastrecord.FieldContent:
		m.ClearContent()
		return nil
	case broadcastrecord.FieldChatID:
		m.ClearChatID()
		return nil
	case broadcastrecord.FieldTransportMessageID:
		m.ClearTransportMessageID()
		return nil
	}
	return fmt.Errorf("unknown BroadcastRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *BroadcastRecordMutation) ResetField(name string) error {
	switch name {
	case broadcastrecord.FieldExternalID:
		m.ResetExternalID()
		return nil
	case broadcastrecord.FieldContent:
		m.ResetContent()
		return nil
	case broadcastrecord.FieldChatID:
		m.ResetChatID()
		return nil
	case broadcastrecord.FieldTransportMessageID:
		m.ResetTransportMessageID()
		return nil
	case broadcastrecord.FieldClickBucket:
		m.ResetClickBucket()
		return nil
	case broadcastrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case broadcastrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown BroadcastRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *BroadcastRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *BroadcastRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *BroadcastRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *BroadcastRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *BroadcastRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *BroadcastRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *BroadcastRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown BroadcastRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *BroadcastRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown BroadcastRecord edge %s", name)
}

// ClickRecordMutation represents an operation that mutates the ClickRecord nodes in the graph.
type ClickRecordMutation struct {
	config
	op             Op
	typ            string
	id             *string
	external_id    *string
	click_count    *int
	addclick_count *int
	original_url   *string
	created_at     *time.Time
	updated_at     *time.Time
	clearedFields  map[string]struct{}
	done           bool
	oldValue       func(context.Context) (*ClickRecord, error)
	predicates     []predicate.ClickRecord
}

var _ ent.Mutation = (*ClickRecordMutation)(nil)

// clickrecordOption allows management of the mutation configuration using functional options.
type clickrecordOption func(*ClickRecordMutation)

// newClickRecordMutation creates new mutation for the ClickRecord entity.
func newClickRecordMutation(c config, op Op, opts ...clickrecordOption) *ClickRecordMutation {
	m := &ClickRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeClickRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withClickRecordID sets the ID field of the mutation.
func withClickRecordID(id string) clickrecordOption {
	return func(m *ClickRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *ClickRecord
		)
		m.oldValue = func(ctx context.Context) (*ClickRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ClickRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withClickRecord sets the old ClickRecord of the mutation.
func withClickRecord(node *ClickRecord) clickrecordOption {
	return func(m *ClickRecordMutation) {
		m.oldValue = func(context.Context) (*ClickRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ClickRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ClickRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ClickRecord entities.
func (m *ClickRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ClickRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ClickRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ClickRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetExternalID sets the "external_id" field.
func (m *ClickRecordMutation) SetExternalID(s string) {
	m.external_id = &s
}

// ExternalID returns the value of the "external_id" field in the mutation.
func (m *ClickRecordMutation) ExternalID() (r string, exists bool) {
	v := m.external_id
	if v == nil {
		return
	}
	return *v, true
}

// OldExternalID returns the old "external_id" field's value of the ClickRecord entity.
// If the ClickRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClickRecordMutation) OldExternalID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExternalID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExternalID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExternalID: %w", err)
	}
	return oldValue.ExternalID, nil
}

// ResetExternalID resets all changes to the "external_id" field.
func (m *ClickRecordMutation) ResetExternalID() {
	m.external_id = nil
}

// SetClickCount sets the "click_count" field.
func (m *ClickRecordMutation) SetClickCount(i int) {
	m.click_count = &i
	m.addclick_count = nil
}

// ClickCount returns the value of the "click_count" field in the mutation.
func (m *ClickRecordMutation) ClickCount() (r int, exists bool) {
	v := m.click_count
	if v == nil {
		return
	}
	return *v, true
}

// OldClickCount returns the old "click_count" field's value of the ClickRecord entity.
// If the ClickRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClickRecordMutation) OldClickCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldClickCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldClickCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldClickCount: %w", err)
	}
	return oldValue.ClickCount, nil
}

// AddClickCount adds i to the "click_count" field.
func (m *ClickRecordMutation) AddClickCount(i int) {
	if m.addclick_count != nil {
		*m.addclick_count += i
	} else {
		m.addclick_count = &i
	}
}

// AddedClickCount returns the value that was added to the "click_count" field in this mutation.
func (m *ClickRecordMutation) AddedClickCount() (r int, exists bool) {
	v := m.addclick_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetClickCount resets all changes to the "click_count" field.
func (m *ClickRecordMutation) ResetClickCount() {
	m.click_count = nil
	m.addclick_count = nil
}

// SetOriginalURL sets the "original_url" field.
func (m *ClickRecordMutation) SetOriginalURL(s string) {
	m.original_url = &s
}

// OriginalURL returns the value of the "original_url" field in the mutation.
func (m *ClickRecordMutation) OriginalURL() (r string, exists bool) {
	v := m.original_url
	if v == nil {
		return
	}
	return *v, true
}

// OldOriginalURL returns the old "original_url" field's value of the ClickRecord entity.
// If the ClickRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClickRecordMutation) OldOriginalURL(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOriginalURL is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOriginalURL requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOriginalURL: %w", err)
	}
	return oldValue.OriginalURL, nil
}

// ClearOriginalURL clears the value of the "original_url" field.
func (m *ClickRecordMutation) ClearOriginalURL() {
	m.original_url = nil
	m.clearedFields[clickrecord.FieldOriginalURL] = struct{}{}
}

// OriginalURLCleared returns if the "original_url" field was cleared in this mutation.
func (m *ClickRecordMutation) OriginalURLCleared() bool {
	_, ok := m.clearedFields[clickrecord.FieldOriginalURL]
	return ok
}

// ResetOriginalURL resets all changes to the "original_url" field.
func (m *ClickRecordMutation) ResetOriginalURL() {
	m.original_url = nil
	delete(m.clearedFields, clickrecord.FieldOriginalURL)
}

// SetCreatedAt sets the "created_at" field.
func (m *ClickRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ClickRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ClickRecord entity.
// If the ClickRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClickRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ClickRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ClickRecordMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ClickRecordMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ClickRecord entity.
// If the ClickRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ClickRecordMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ClickRecordMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the ClickRecordMutation builder.
func (m *ClickRecordMutation) Where(ps ...predicate.ClickRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ClickRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ClickRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ClickRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ClickRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ClickRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ClickRecord).
func (m *ClickRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ClickRecordMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.external_id != nil {
		fields = append(fields, clickrecord.FieldExternalID)
	}
	if m.click_count != nil {
		fields = append(fields, clickrecord.FieldClickCount)
	}
	if m.original_url != nil {
		fields = append(fields, clickrecord.FieldOriginalURL)
	}
	if m.created_at != nil {
		fields = append(fields, clickrecord.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, clickrecord.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ClickRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case clickrecord.FieldExternalID:
		return m.ExternalID()
	case clickrecord.FieldClickCount:
		return m.ClickCount()
	case clickrecord.FieldOriginalURL:
		return m.OriginalURL()
	case clickrecord.FieldCreatedAt:
		return m.CreatedAt()
	case clickrecord.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ClickRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case clickrecord.FieldExternalID:
		return m.OldExternalID(ctx)
	case clickrecord.FieldClickCount:
		return m.OldClickCount(ctx)
	case clickrecord.FieldOriginalURL:
		return m.OldOriginalURL(ctx)
	case clickrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case clickrecord.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ClickRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClickRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case clickrecord.FieldExternalID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExternalID(v)
		return nil
	case clickrecord.FieldClickCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetClickCount(v)
		return nil
	case clickrecord.FieldOriginalURL:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOriginalURL(v)
		return nil
	case clickrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case clickrecord.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ClickRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ClickRecordMutation) AddedFields() []string {
	var fields []string
	if m.addclick_count != nil {
		fields = append(fields, clickrecord.FieldClickCount)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ClickRecordMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case clickrecord.FieldClickCount:
		return m.AddedClickCount()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ClickRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	case clickrecord.FieldClickCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddClickCount(v)
		return nil
	}
	return fmt.Errorf("unknown ClickRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ClickRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(clickrecord.FieldOriginalURL) {
		fields = append(fields, clickrecord.FieldOriginalURL)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ClickRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ClickRecordMutation) ClearField(name string) error {
	switch name {
	case clickrecord.FieldOriginalURL:
		m.ClearOriginalURL()
		return nil
	}
	return fmt.Errorf("unknown ClickRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ClickRecordMutation) ResetField(name string) error {
	switch name {
	case clickrecord.FieldExternalID:
		m.ResetExternalID()
		return nil
	case clickrecord.FieldClickCount:
		m.ResetClickCount()
		return nil
	case clickrecord.FieldOriginalURL:
		m.ResetOriginalURL()
		return nil
	case clickrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case clickrecord.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ClickRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ClickRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ClickRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ClickRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ClickRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ClickRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ClickRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ClickRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown ClickRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ClickRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown ClickRecord edge %s", name)
}

// DeliveryRecordMutation represents an operation that mutates the DeliveryRecord nodes in the graph.
type DeliveryRecordMutation struct {
	config
	op                   Op
	typ                  string
	id                   *string
	tutor_id             *string
	assignment_id        *string
	status               *deliveryrecord.Status
	transport_message_id *string
	created_at           *time.Time
	clearedFields        map[string]struct{}
	done                 bool
	oldValue             func(context.Context) (*DeliveryRecord, error)
	predicates           []predicate.DeliveryRecord
}

var _ ent.Mutation = (*DeliveryRecordMutation)(nil)

// deliveryrecordOption allows management of the mutation configuration using functional options.
type deliveryrecordOption func(*DeliveryRecordMutation)

// newDeliveryRecordMutation creates new mutation for the DeliveryRecord entity.
func newDeliveryRecordMutation(c config, op Op, opts ...deliveryrecordOption) *DeliveryRecordMutation {
	m := &DeliveryRecordMutation{
		config:        c,
		op:            op,
		typ:           TypeDeliveryRecord,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDeliveryRecordID sets the ID field of the mutation.
func withDeliveryRecordID(id string) deliveryrecordOption {
	return func(m *DeliveryRecordMutation) {
		var (
			err   error
			once  sync.Once
			value *DeliveryRecord
		)
		m.oldValue = func(ctx context.Context) (*DeliveryRecord, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DeliveryRecord.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDeliveryRecord sets the old DeliveryRecord of the mutation.
func withDeliveryRecord(node *DeliveryRecord) deliveryrecordOption {
	return func(m *DeliveryRecordMutation) {
		m.oldValue = func(context.Context) (*DeliveryRecord, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DeliveryRecordMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DeliveryRecordMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DeliveryRecord entities.
func (m *DeliveryRecordMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DeliveryRecordMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DeliveryRecordMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DeliveryRecord.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTutorID sets the "tutor_id" field.
func (m *DeliveryRecordMutation) SetTutorID(s string) {
	m.tutor_id = &s
}

// TutorID returns the value of the "tutor_id" field in the mutation.
func (m *DeliveryRecordMutation) TutorID() (r string, exists bool) {
	v := m.tutor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTutorID returns the old "tutor_id" field's value of the DeliveryRecord entity.
// If the DeliveryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryRecordMutation) OldTutorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTutorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTutorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTutorID: %w", err)
	}
	return oldValue.TutorID, nil
}

// ResetTutorID resets all changes to the "tutor_id" field.
func (m *DeliveryRecordMutation) ResetTutorID() {
	m.tutor_id = nil
}

// SetAssignmentID sets the "assignment_id" field.
func (m *DeliveryRecordMutation) SetAssignmentID(s string) {
	m.assignment_id = &s
}

// AssignmentID returns the value of the "assignment_id" field in the mutation.
func (m *DeliveryRecordMutation) AssignmentID() (r string, exists bool) {
	v := m.assignment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentID returns the old "assignment_id" field's value of the DeliveryRecord entity.
// If the DeliveryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryRecordMutation) OldAssignmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentID: %w", err)
	}
	return oldValue.AssignmentID, nil
}

// ResetAssignmentID resets all changes to the "assignment_id" field.
func (m *DeliveryRecordMutation) ResetAssignmentID() {
	m.assignment_id = nil
}

// SetStatus sets the "status" field.
func (m *DeliveryRecordMutation) SetStatus(d deliveryrecord.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DeliveryRecordMutation) Status() (r deliveryrecord.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DeliveryRecord entity.
// If the DeliveryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryRecordMutation) OldStatus(ctx context.Context) (v deliveryrecord.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DeliveryRecordMutation) ResetStatus() {
	m.status = nil
}

// SetTransportMessageID sets the "transport_message_id" field.
func (m *DeliveryRecordMutation) SetTransportMessageID(s string) {
	m.transport_message_id = &s
}

// TransportMessageID returns the value of the "transport_message_id" field in the mutation.
func (m *DeliveryRecordMutation) TransportMessageID() (r string, exists bool) {
	v := m.transport_message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTransportMessageID returns the old "transport_message_id" field's value of the DeliveryRecord entity.
// If the DeliveryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryRecordMutation) OldTransportMessageID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTransportMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTransportMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTransportMessageID: %w", err)
	}
	return oldValue.TransportMessageID, nil
}

// ClearTransportMessageID clears the value of the "transport_message_id" field.
func (m *DeliveryRecordMutation) ClearTransportMessageID() {
	m.transport_message_id = nil
	m.clearedFields[deliveryrecord.FieldTransportMessageID] = struct{}{}
}

// TransportMessageIDCleared returns if the "transport_message_id" field was cleared in this mutation.
func (m *DeliveryRecordMutation) TransportMessageIDCleared() bool {
	_, ok := m.clearedFields[deliveryrecord.FieldTransportMessageID]
	return ok
}

// ResetTransportMessageID resets all changes to the "transport_message_id" field.
func (m *DeliveryRecordMutation) ResetTransportMessageID() {
	m.transport_message_id = nil
	delete(m.clearedFields, deliveryrecord.FieldTransportMessageID)
}

// SetCreatedAt sets the "created_at" field.
func (m *DeliveryRecordMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DeliveryRecordMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DeliveryRecord entity.
// If the DeliveryRecord object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DeliveryRecordMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DeliveryRecordMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the DeliveryRecordMutation builder.
func (m *DeliveryRecordMutation) Where(ps ...predicate.DeliveryRecord) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DeliveryRecordMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DeliveryRecordMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DeliveryRecord, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DeliveryRecordMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DeliveryRecordMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DeliveryRecord).
func (m *DeliveryRecordMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DeliveryRecordMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.tutor_id != nil {
		fields = append(fields, deliveryrecord.FieldTutorID)
	}
	if m.assignment_id != nil {
		fields = append(fields, deliveryrecord.FieldAssignmentID)
	}
	if m.status != nil {
		fields = append(fields, deliveryrecord.FieldStatus)
	}
	if m.transport_message_id != nil {
		fields = append(fields, deliveryrecord.FieldTransportMessageID)
	}
	if m.created_at != nil {
		fields = append(fields, deliveryrecord.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DeliveryRecordMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case deliveryrecord.FieldTutorID:
		return m.TutorID()
	case deliveryrecord.FieldAssignmentID:
		return m.AssignmentID()
	case deliveryrecord.FieldStatus:
		return m.Status()
	case deliveryrecord.FieldTransportMessageID:
		return m.TransportMessageID()
	case deliveryrecord.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DeliveryRecordMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case deliveryrecord.FieldTutorID:
		return m.OldTutorID(ctx)
	case deliveryrecord.FieldAssignmentID:
		return m.OldAssignmentID(ctx)
	case deliveryrecord.FieldStatus:
		return m.OldStatus(ctx)
	case deliveryrecord.FieldTransportMessageID:
		return m.OldTransportMessageID(ctx)
	case deliveryrecord.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DeliveryRecord field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliveryRecordMutation) SetField(name string, value ent.Value) error {
	switch name {
	case deliveryrecord.FieldTutorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTutorID(v)
		return nil
	case deliveryrecord.FieldAssignmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentID(v)
		return nil
	case deliveryrecord.FieldStatus:
		v, ok := value.(deliveryrecord.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case deliveryrecord.FieldTransportMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTransportMessageID(v)
		return nil
	case deliveryrecord.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DeliveryRecord field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DeliveryRecordMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DeliveryRecordMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DeliveryRecordMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown DeliveryRecord numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DeliveryRecordMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(deliveryrecord.FieldTransportMessageID) {
		fields = append(fields, deliveryrecord.FieldTransportMessageID)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DeliveryRecordMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DeliveryRecordMutation) ClearField(name string) error {
	switch name {
	case deliveryrecord.FieldTransportMessageID:
		m.ClearTransportMessageID()
		return nil
	}
	return fmt.Errorf("unknown DeliveryRecord nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DeliveryRecordMutation) ResetField(name string) error {
	switch name {
	case deliveryrecord.FieldTutorID:
		m.ResetTutorID()
		return nil
	case deliveryrecord.FieldAssignmentID:
		m.ResetAssignmentID()
		return nil
	case deliveryrecord.FieldStatus:
		m.ResetStatus()
		return nil
	case deliveryrecord.FieldTransportMessageID:
		m.ResetTransportMessageID()
		return nil
	case deliveryrecord.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown DeliveryRecord field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DeliveryRecordMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DeliveryRecordMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DeliveryRecordMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DeliveryRecordMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DeliveryRecordMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DeliveryRecordMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DeliveryRecordMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown DeliveryRecord unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DeliveryRecordMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown DeliveryRecord edge %s", name)
}

// DuplicateGroupMutation represents an operation that mutates the DuplicateGroup nodes in the graph.
type DuplicateGroupMutation struct {
	config
	op                          Op
	typ                         string
	id                          *string
	primary_assignment_id       *string
	member_count                *int
	addmember_count             *int
	avg_confidence_score        *float64
	addavg_confidence_score     *float64
	status                      *duplicategroup.Status
	detection_algorithm_version *string
	meta                        *map[string]interface{}
	created_at                  *time.Time
	updated_at                  *time.Time
	clearedFields               map[string]struct{}
	members                     map[string]struct{}
	removedmembers              map[string]struct{}
	clearedmembers              bool
	done                        bool
	oldValue                    func(context.Context) (*DuplicateGroup, error)
	predicates                  []predicate.DuplicateGroup
}

var _ ent.Mutation = (*DuplicateGroupMutation)(nil)

// duplicategroupOption allows management of the mutation configuration using functional options.
type duplicategroupOption func(*DuplicateGroupMutation)

// newDuplicateGroupMutation creates new mutation for the DuplicateGroup entity.
func newDuplicateGroupMutation(c config, op Op, opts ...duplicategroupOption) *DuplicateGroupMutation {
	m := &DuplicateGroupMutation{
		config:        c,
		op:            op,
		typ:           TypeDuplicateGroup,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withDuplicateGroupID sets the ID field of the mutation.
func withDuplicateGroupID(id string) duplicategroupOption {
	return func(m *DuplicateGroupMutation) {
		var (
			err   error
			once  sync.Once
			value *DuplicateGroup
		)
		m.oldValue = func(ctx context.Context) (*DuplicateGroup, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().DuplicateGroup.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withDuplicateGroup sets the old DuplicateGroup of the mutation.
func withDuplicateGroup(node *DuplicateGroup) duplicategroupOption {
	return func(m *DuplicateGroupMutation) {
		m.oldValue = func(context.Context) (*DuplicateGroup, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m DuplicateGroupMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m DuplicateGroupMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of DuplicateGroup entities.
func (m *DuplicateGroupMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *DuplicateGroupMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *DuplicateGroupMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().DuplicateGroup.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetPrimaryAssignmentID sets the "primary_assignment_id" field.
func (m *DuplicateGroupMutation) SetPrimaryAssignmentID(s string) {
	m.primary_assignment_id = &s
}

// PrimaryAssignmentID returns the value of the "primary_assignment_id" field in the mutation.
func (m *DuplicateGroupMutation) PrimaryAssignmentID() (r string, exists bool) {
	v := m.primary_assignment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldPrimaryAssignmentID returns the old "primary_assignment_id" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldPrimaryAssignmentID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPrimaryAssignmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPrimaryAssignmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPrimaryAssignmentID: %w", err)
	}
	return oldValue.PrimaryAssignmentID, nil
}

// ClearPrimaryAssignmentID clears the value of the "primary_assignment_id" field.
func (m *DuplicateGroupMutation) ClearPrimaryAssignmentID() {
	m.primary_assignment_id = nil
	m.clearedFields[duplicategroup.FieldPrimaryAssignmentID] = struct{}{}
}

// PrimaryAssignmentIDCleared returns if the "primary_assignment_id" field was cleared in this mutation.
func (m *DuplicateGroupMutation) PrimaryAssignmentIDCleared() bool {
	_, ok := m.clearedFields[duplicategroup.FieldPrimaryAssignmentID]
	return ok
}

// ResetPrimaryAssignmentID resets all changes to the "primary_assignment_id" field.
func (m *DuplicateGroupMutation) ResetPrimaryAssignmentID() {
	m.primary_assignment_id = nil
	delete(m.clearedFields, duplicategroup.FieldPrimaryAssignmentID)
}

// SetMemberCount sets the "member_count" field.
func (m *DuplicateGroupMutation) SetMemberCount(i int) {
	m.member_count = &i
	m.addmember_count = nil
}

// MemberCount returns the value of the "member_count" field in the mutation.
func (m *DuplicateGroupMutation) MemberCount() (r int, exists bool) {
	v := m.member_count
	if v == nil {
		return
	}
	return *v, true
}

// OldMemberCount returns the old "member_count" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldMemberCount(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMemberCount is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMemberCount requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMemberCount: %w", err)
	}
	return oldValue.MemberCount, nil
}

// AddMemberCount adds i to the "member_count" field.
func (m *DuplicateGroupMutation) AddMemberCount(i int) {
	if m.addmember_count != nil {
		*m.addmember_count += i
	} else {
		m.addmember_count = &i
	}
}

// AddedMemberCount returns the value that was added to the "member_count" field in this mutation.
func (m *DuplicateGroupMutation) AddedMemberCount() (r int, exists bool) {
	v := m.addmember_count
	if v == nil {
		return
	}
	return *v, true
}

// ResetMemberCount resets all changes to the "member_count" field.
func (m *DuplicateGroupMutation) ResetMemberCount() {
	m.member_count = nil
	m.addmember_count = nil
}

// SetAvgConfidenceScore sets the "avg_confidence_score" field.
func (m *DuplicateGroupMutation) SetAvgConfidenceScore(f float64) {
	m.avg_confidence_score = &f
	m.addavg_confidence_score = nil
}

// AvgConfidenceScore returns the value of the "avg_confidence_score" field in the mutation.
func (m *DuplicateGroupMutation) AvgConfidenceScore() (r float64, exists bool) {
	v := m.avg_confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// OldAvgConfidenceScore returns the old "avg_confidence_score" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldAvgConfidenceScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvgConfidenceScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvgConfidenceScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvgConfidenceScore: %w", err)
	}
	return oldValue.AvgConfidenceScore, nil
}

// AddAvgConfidenceScore adds f to the "avg_confidence_score" field.
func (m *DuplicateGroupMutation) AddAvgConfidenceScore(f float64) {
	if m.addavg_confidence_score != nil {
		*m.addavg_confidence_score += f
	} else {
		m.addavg_confidence_score = &f
	}
}

// AddedAvgConfidenceScore returns the value that was added to the "avg_confidence_score" field in this mutation.
func (m *DuplicateGroupMutation) AddedAvgConfidenceScore() (r float64, exists bool) {
	v := m.addavg_confidence_score
	if v == nil {
		return
	}
	return *v, true
}

// ResetAvgConfidenceScore resets all changes to the "avg_confidence_score" field.
func (m *DuplicateGroupMutation) ResetAvgConfidenceScore() {
	m.avg_confidence_score = nil
	m.addavg_confidence_score = nil
}

// SetStatus sets the "status" field.
func (m *DuplicateGroupMutation) SetStatus(d duplicategroup.Status) {
	m.status = &d
}

// Status returns the value of the "status" field in the mutation.
func (m *DuplicateGroupMutation) Status() (r duplicategroup.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldStatus(ctx context.Context) (v duplicategroup.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *DuplicateGroupMutation) ResetStatus() {
	m.status = nil
}

// SetDetectionAlgorithmVersion sets the "detection_algorithm_version" field.
func (m *DuplicateGroupMutation) SetDetectionAlgorithmVersion(s string) {
	m.detection_algorithm_version = &s
}

// DetectionAlgorithmVersion returns the value of the "detection_algorithm_version" field in the mutation.
func (m *DuplicateGroupMutation) DetectionAlgorithmVersion() (r string, exists bool) {
	v := m.detection_algorithm_version
	if v == nil {
		return
	}
	return *v, true
}

// OldDetectionAlgorithmVersion returns the old "detection_algorithm_version" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldDetectionAlgorithmVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDetectionAlgorithmVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDetectionAlgorithmVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDetectionAlgorithmVersion: %w", err)
	}
	return oldValue.DetectionAlgorithmVersion, nil
}

// ResetDetectionAlgorithmVersion resets all changes to the "detection_algorithm_version" field.
func (m *DuplicateGroupMutation) ResetDetectionAlgorithmVersion() {
	m.detection_algorithm_version = nil
}

// SetMeta sets the "meta" field.
func (m *DuplicateGroupMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *DuplicateGroupMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *DuplicateGroupMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[duplicategroup.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *DuplicateGroupMutation) MetaCleared() bool {
	_, ok := m.clearedFields[duplicategroup.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *DuplicateGroupMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, duplicategroup.FieldMeta)
}

// SetCreatedAt sets the "created_at" field.
func (m *DuplicateGroupMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *DuplicateGroupMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *DuplicateGroupMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *DuplicateGroupMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *DuplicateGroupMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the DuplicateGroup entity.
// If the DuplicateGroup object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *DuplicateGroupMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *DuplicateGroupMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// AddMemberIDs adds the "members" edge to the Assignment entity by ids.
func (m *DuplicateGroupMutation) AddMemberIDs(ids ...string) {
	if m.members == nil {
		m.members = make(map[string]struct{})
	}
	for i := range ids {
		m.members[ids[i]] = struct{}{}
	}
}

// ClearMembers clears the "members" edge to the Assignment entity.
func (m *DuplicateGroupMutation) ClearMembers() {
	m.clearedmembers = true
}

// MembersCleared reports if the "members" edge to the Assignment entity was cleared.
func (m *DuplicateGroupMutation) MembersCleared() bool {
	return m.clearedmembers
}

// RemoveMemberIDs removes the "members" edge to the Assignment entity by IDs.
func (m *DuplicateGroupMutation) RemoveMemberIDs(ids ...string) {
	if m.removedmembers == nil {
		m.removedmembers = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.members, ids[i])
		m.removedmembers[ids[i]] = struct{}{}
	}
}

// RemovedMembers returns the removed IDs of the "members" edge to the Assignment entity.
func (m *DuplicateGroupMutation) RemovedMembersIDs() (ids []string) {
	for id := range m.removedmembers {
		ids = append(ids, id)
	}
	return
}

// MembersIDs returns the "members" edge IDs in the mutation.
func (m *DuplicateGroupMutation) MembersIDs() (ids []string) {
	for id := range m.members {
		ids = append(ids, id)
	}
	return
}

// ResetMembers resets all changes to the "members" edge.
func (m *DuplicateGroupMutation) ResetMembers() {
	m.members = nil
	m.clearedmembers = false
	m.removedmembers = nil
}

// Where appends a list predicates to the DuplicateGroupMutation builder.
func (m *DuplicateGroupMutation) Where(ps ...predicate.DuplicateGroup) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the DuplicateGroupMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *DuplicateGroupMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.DuplicateGroup, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *DuplicateGroupMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *DuplicateGroupMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (DuplicateGroup).
func (m *DuplicateGroupMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *DuplicateGroupMutation) Fields() []string {
	fields := make([]string, 0, 8)
	if m.primary_assignment_id != nil {
		fields = append(fields, duplicategroup.FieldPrimaryAssignmentID)
	}
	if m.member_count != nil {
		fields = append(fields, duplicategroup.FieldMemberCount)
	}
	if m.avg_confidence_score != nil {
		fields = append(fields, duplicategroup.FieldAvgConfidenceScore)
	}
	if m.status != nil {
		fields = append(fields, duplicategroup.FieldStatus)
	}
	if m.detection_algorithm_version != nil {
		fields = append(fields, duplicategroup.FieldDetectionAlgorithmVersion)
	}
	if m.meta != nil {
		fields = append(fields, duplicategroup.FieldMeta)
	}
	if m.created_at != nil {
		fields = append(fields, duplicategroup.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, duplicategroup.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *DuplicateGroupMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case duplicategroup.FieldPrimaryAssignmentID:
		return m.PrimaryAssignmentID()
	case duplicategroup.FieldMemberCount:
		return m.MemberCount()
	case duplicategroup.FieldAvgConfidenceScore:
		return m.AvgConfidenceScore()
	case duplicategroup.FieldStatus:
		return m.Status()
	case duplicategroup.FieldDetectionAlgorithmVersion:
		return m.DetectionAlgorithmVersion()
	case duplicategroup.FieldMeta:
		return m.Meta()
	case duplicategroup.FieldCreatedAt:
		return m.CreatedAt()
	case duplicategroup.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *DuplicateGroupMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case duplicategroup.FieldPrimaryAssignmentID:
		return m.OldPrimaryAssignmentID(ctx)
	case duplicategroup.FieldMemberCount:
		return m.OldMemberCount(ctx)
	case duplicategroup.FieldAvgConfidenceScore:
		return m.OldAvgConfidenceScore(ctx)
	case duplicategroup.FieldStatus:
		return m.OldStatus(ctx)
	case duplicategroup.FieldDetectionAlgorithmVersion:
		return m.OldDetectionAlgorithmVersion(ctx)
	case duplicategroup.FieldMeta:
		return m.OldMeta(ctx)
	case duplicategroup.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case duplicategroup.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown DuplicateGroup field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DuplicateGroupMutation) SetField(name string, value ent.Value) error {
	switch name {
	case duplicategroup.FieldPrimaryAssignmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPrimaryAssignmentID(v)
		return nil
	case duplicategroup.FieldMemberCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMemberCount(v)
		return nil
	case duplicategroup.FieldAvgConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvgConfidenceScore(v)
		return nil
	case duplicategroup.FieldStatus:
		v, ok := value.(duplicategroup.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case duplicategroup.FieldDetectionAlgorithmVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDetectionAlgorithmVersion(v)
		return nil
	case duplicategroup.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case duplicategroup.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case duplicategroup.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown DuplicateGroup field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *DuplicateGroupMutation) AddedFields() []string {
	var fields []string
	if m.addmember_count != nil {
		fields = append(fields, duplicategroup.FieldMemberCount)
	}
	if m.addavg_confidence_score != nil {
		fields = append(fields, duplicategroup.FieldAvgConfidenceScore)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *DuplicateGroupMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case duplicategroup.FieldMemberCount:
		return m.AddedMemberCount()
	case duplicategroup.FieldAvgConfidenceScore:
		return m.AddedAvgConfidenceScore()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *DuplicateGroupMutation) AddField(name string, value ent.Value) error {
	switch name {
	case duplicategroup.FieldMemberCount:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMemberCount(v)
		return nil
	case duplicategroup.FieldAvgConfidenceScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAvgConfidenceScore(v)
		return nil
	}
	return fmt.Errorf("unknown DuplicateGroup numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *DuplicateGroupMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(duplicategroup.FieldPrimaryAssignmentID) {
		fields = append(fields, duplicategroup.FieldPrimaryAssignmentID)
	}
	if m.FieldCleared(duplicategroup.FieldMeta) {
		fields = append(fields, duplicategroup.FieldMeta)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *DuplicateGroupMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *DuplicateGroupMutation) ClearField(name string) error {
	switch name {
	case duplicategroup.FieldPrimaryAssignmentID:
		m.ClearPrimaryAssignmentID()
		return nil
	case duplicategroup.FieldMeta:
		m.ClearMeta()
		return nil
	}
	return fmt.Errorf("unknown DuplicateGroup nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *DuplicateGroupMutation) ResetField(name string) error {
	switch name {
	case duplicategroup.FieldPrimaryAssignmentID:
		m.ResetPrimaryAssignmentID()
		return nil
	case duplicategroup.FieldMemberCount:
		m.ResetMemberCount()
		return nil
	case duplicategroup.FieldAvgConfidenceScore:
		m.ResetAvgConfidenceScore()
		return nil
	case duplicategroup.FieldStatus:
		m.ResetStatus()
		return nil
	case duplicategroup.FieldDetectionAlgorithmVersion:
		m.ResetDetectionAlgorithmVersion()
		return nil
	case duplicategroup.FieldMeta:
		m.ResetMeta()
		return nil
	case duplicategroup.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case duplicategroup.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown DuplicateGroup field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *DuplicateGroupMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.members != nil {
		edges = append(edges, duplicategroup.EdgeMembers)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *DuplicateGroupMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case duplicategroup.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.members))
		for id := range m.members {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *DuplicateGroupMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedmembers != nil {
		edges = append(edges, duplicategroup.EdgeMembers)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *DuplicateGroupMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case duplicategroup.EdgeMembers:
		ids := make([]ent.Value, 0, len(m.removedmembers))
		for id := range m.removedmembers {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *DuplicateGroupMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedmembers {
		edges = append(edges, duplicategroup.EdgeMembers)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *DuplicateGroupMutation) EdgeCleared(name string) bool {
	switch name {
	case duplicategroup.EdgeMembers:
		return m.clearedmembers
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *DuplicateGroupMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown DuplicateGroup unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *DuplicateGroupMutation) ResetEdge(name string) error {
	switch name {
	case duplicategroup.EdgeMembers:
		m.ResetMembers()
		return nil
	}
	return fmt.Errorf("unknown DuplicateGroup edge %s", name)
}

// ExtractionJobMutation represents an operation that mutates the ExtractionJob nodes in the graph.
type ExtractionJobMutation struct {
	config
	op                    Op
	typ                   string
	id                    *string
	pipeline_version      *string
	status                *extractionjob.Status
	attempt               *int
	addattempt            *int
	processing_started_at *time.Time
	available_at          *time.Time
	meta                  *map[string]interface{}
	error_json            *map[string]interface{}
	llm_model             *string
	created_at            *time.Time
	updated_at            *time.Time
	clearedFields         map[string]struct{}
	raw                   *string
	clearedraw            bool
	done                  bool
	oldValue              func(context.Context) (*ExtractionJob, error)
	predicates            []predicate.ExtractionJob
}

var _ ent.Mutation = (*ExtractionJobMutation)(nil)

// extractionjobOption allows management of the mutation configuration using functional options.
type extractionjobOption func(*ExtractionJobMutation)

// newExtractionJobMutation creates new mutation for the ExtractionJob entity.
func newExtractionJobMutation(c config, op Op, opts ...extractionjobOption) *ExtractionJobMutation {
	m := &ExtractionJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractionJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractionJobID sets the ID field of the mutation.
func withExtractionJobID(id string) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractionJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractionJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractionJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractionJob sets the old ExtractionJob of the mutation.
func withExtractionJob(node *ExtractionJob) extractionjobOption {
	return func(m *ExtractionJobMutation) {
		m.oldValue = func(context.Context) (*ExtractionJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractionJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractionJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractionJob entities.
func (m *ExtractionJobMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractionJobMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractionJobMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractionJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetRawID sets the "raw_id" field.
func (m *ExtractionJobMutation) SetRawID(s string) {
	m.raw = &s
}

// RawID returns the value of the "raw_id" field in the mutation.
func (m *ExtractionJobMutation) RawID() (r string, exists bool) {
	v := m.raw
	if v == nil {
		return
	}
	return *v, true
}

// OldRawID returns the old "raw_id" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldRawID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawID: %w", err)
	}
	return oldValue.RawID, nil
}

// ResetRawID resets all changes to the "raw_id" field.
func (m *ExtractionJobMutation) ResetRawID() {
	m.raw = nil
}

// SetPipelineVersion sets the "pipeline_version" field.
func (m *ExtractionJobMutation) SetPipelineVersion(s string) {
	m.pipeline_version = &s
}

// PipelineVersion returns the value of the "pipeline_version" field in the mutation.
func (m *ExtractionJobMutation) PipelineVersion() (r string, exists bool) {
	v := m.pipeline_version
	if v == nil {
		return
	}
	return *v, true
}

// OldPipelineVersion returns the old "pipeline_version" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldPipelineVersion(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPipelineVersion is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPipelineVersion requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPipelineVersion: %w", err)
	}
	return oldValue.PipelineVersion, nil
}

// ResetPipelineVersion resets all changes to the "pipeline_version" field.
func (m *ExtractionJobMutation) ResetPipelineVersion() {
	m.pipeline_version = nil
}

// SetStatus sets the "status" field.
func (m *ExtractionJobMutation) SetStatus(e extractionjob.Status) {
	m.status = &e
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractionJobMutation) Status() (r extractionjob.Status, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldStatus(ctx context.Context) (v extractionjob.Status, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractionJobMutation) ResetStatus() {
	m.status = nil
}

// SetAttempt sets the "attempt" field.
func (m *ExtractionJobMutation) SetAttempt(i int) {
	m.attempt = &i
	m.addattempt = nil
}

// Attempt returns the value of the "attempt" field in the mutation.
func (m *ExtractionJobMutation) Attempt() (r int, exists bool) {
	v := m.attempt
	if v == nil {
		return
	}
	return *v, true
}

// OldAttempt returns the old "attempt" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldAttempt(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAttempt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAttempt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAttempt: %w", err)
	}
	return oldValue.Attempt, nil
}

// AddAttempt adds i to the "attempt" field.
func (m *ExtractionJobMutation) AddAttempt(i int) {
	if m.addattempt != nil {
		*m.addattempt += i
	} else {
		m.addattempt = &i
	}
}

// AddedAttempt returns the value that was added to the "attempt" field in this mutation.
func (m *ExtractionJobMutation) AddedAttempt() (r int, exists bool) {
	v := m.addattempt
	if v == nil {
		return
	}
	return *v, true
}

// ResetAttempt resets all changes to the "attempt" field.
func (m *ExtractionJobMutation) ResetAttempt() {
	m.attempt = nil
	m.addattempt = nil
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (m *ExtractionJobMutation) SetProcessingStartedAt(t time.Time) {
	m.processing_started_at = &t
}

// ProcessingStartedAt returns the value of the "processing_started_at" field in the mutation.
func (m *ExtractionJobMutation) ProcessingStartedAt() (r time.Time, exists bool) {
	v := m.processing_started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldProcessingStartedAt returns the old "processing_started_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldProcessingStartedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProcessingStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProcessingStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProcessingStartedAt: %w", err)
	}
	return oldValue.ProcessingStartedAt, nil
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (m *ExtractionJobMutation) ClearProcessingStartedAt() {
	m.processing_started_at = nil
	m.clearedFields[extractionjob.FieldProcessingStartedAt] = struct{}{}
}

// ProcessingStartedAtCleared returns if the "processing_started_at" field was cleared in this mutation.
func (m *ExtractionJobMutation) ProcessingStartedAtCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldProcessingStartedAt]
	return ok
}

// ResetProcessingStartedAt resets all changes to the "processing_started_at" field.
func (m *ExtractionJobMutation) ResetProcessingStartedAt() {
	m.processing_started_at = nil
	delete(m.clearedFields, extractionjob.FieldProcessingStartedAt)
}

// SetAvailableAt sets the "available_at" field.
func (m *ExtractionJobMutation) SetAvailableAt(t time.Time) {
	m.available_at = &t
}

// AvailableAt returns the value of the "available_at" field in the mutation.
func (m *ExtractionJobMutation) AvailableAt() (r time.Time, exists bool) {
	v := m.available_at
	if v == nil {
		return
	}
	return *v, true
}

// OldAvailableAt returns the old "available_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldAvailableAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAvailableAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAvailableAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAvailableAt: %w", err)
	}
	return oldValue.AvailableAt, nil
}

// ResetAvailableAt resets all changes to the "available_at" field.
func (m *ExtractionJobMutation) ResetAvailableAt() {
	m.available_at = nil
}

// SetMeta sets the "meta" field.
func (m *ExtractionJobMutation) SetMeta(value map[string]interface{}) {
	m.meta = &value
}

// Meta returns the value of the "meta" field in the mutation.
func (m *ExtractionJobMutation) Meta() (r map[string]interface{}, exists bool) {
	v := m.meta
	if v == nil {
		return
	}
	return *v, true
}

// OldMeta returns the old "meta" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldMeta(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMeta is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMeta requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMeta: %w", err)
	}
	return oldValue.Meta, nil
}

// ClearMeta clears the value of the "meta" field.
func (m *ExtractionJobMutation) ClearMeta() {
	m.meta = nil
	m.clearedFields[extractionjob.FieldMeta] = struct{}{}
}

// MetaCleared returns if the "meta" field was cleared in this mutation.
func (m *ExtractionJobMutation) MetaCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldMeta]
	return ok
}

// ResetMeta resets all changes to the "meta" field.
func (m *ExtractionJobMutation) ResetMeta() {
	m.meta = nil
	delete(m.clearedFields, extractionjob.FieldMeta)
}

// SetErrorJSON sets the "error_json" field.
func (m *ExtractionJobMutation) SetErrorJSON(value map[string]interface{}) {
	m.error_json = &value
}

// ErrorJSON returns the value of the "error_json" field in the mutation.
func (m *ExtractionJobMutation) ErrorJSON() (r map[string]interface{}, exists bool) {
	v := m.error_json
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorJSON returns the old "error_json" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldErrorJSON(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorJSON: %w", err)
	}
	return oldValue.ErrorJSON, nil
}

// ClearErrorJSON clears the value of the "error_json" field.
func (m *ExtractionJobMutation) ClearErrorJSON() {
	m.error_json = nil
	m.clearedFields[extractionjob.FieldErrorJSON] = struct{}{}
}

// ErrorJSONCleared returns if the "error_json" field was cleared in this mutation.
func (m *ExtractionJobMutation) ErrorJSONCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldErrorJSON]
	return ok
}

// ResetErrorJSON resets all changes to the "error_json" field.
func (m *ExtractionJobMutation) ResetErrorJSON() {
	m.error_json = nil
	delete(m.clearedFields, extractionjob.FieldErrorJSON)
}

// SetLlmModel sets the "llm_model" field.
func (m *ExtractionJobMutation) SetLlmModel(s string) {
	m.llm_model = &s
}

// LlmModel returns the value of the "llm_model" field in the mutation.
func (m *ExtractionJobMutation) LlmModel() (r string, exists bool) {
	v := m.llm_model
	if v == nil {
		return
	}
	return *v, true
}

// OldLlmModel returns the old "llm_model" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldLlmModel(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLlmModel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLlmModel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLlmModel: %w", err)
	}
	return oldValue.LlmModel, nil
}

// ClearLlmModel clears the value of the "llm_model" field.
func (m *ExtractionJobMutation) ClearLlmModel() {
	m.llm_model = nil
	m.clearedFields[extractionjob.FieldLlmModel] = struct{}{}
}

// LlmModelCleared returns if the "llm_model" field was cleared in this mutation.
func (m *ExtractionJobMutation) LlmModelCleared() bool {
	_, ok := m.clearedFields[extractionjob.FieldLlmModel]
	return ok
}

// ResetLlmModel resets all changes to the "llm_model" field.
func (m *ExtractionJobMutation) ResetLlmModel() {
	m.llm_model = nil
	delete(m.clearedFields, extractionjob.FieldLlmModel)
}

// SetCreatedAt sets the "created_at" field.
func (m *ExtractionJobMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *ExtractionJobMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *ExtractionJobMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *ExtractionJobMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *ExtractionJobMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the ExtractionJob entity.
// If the ExtractionJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractionJobMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *ExtractionJobMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// ClearRaw clears the "raw" edge to the RawMessage entity.
func (m *ExtractionJobMutation) ClearRaw() {
	m.clearedraw = true
	m.clearedFields[extractionjob.FieldRawID] = struct{}{}
}

// RawCleared reports if the "raw" edge to the RawMessage entity was cleared.
func (m *ExtractionJobMutation) RawCleared() bool {
	return m.clearedraw
}

// RawIDs returns the "raw" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// RawID instead. It exists only for internal usage by the builders.
func (m *ExtractionJobMutation) RawIDs() (ids []string) {
	if id := m.raw; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetRaw resets all changes to the "raw" edge.
func (m *ExtractionJobMutation) ResetRaw() {
	m.raw = nil
	m.clearedraw = false
}

// Where appends a list predicates to the ExtractionJobMutation builder.
func (m *ExtractionJobMutation) Where(ps ...predicate.ExtractionJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractionJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractionJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractionJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractionJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractionJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractionJob).
func (m *ExtractionJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractionJobMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.raw != nil {
		fields = append(fields, extractionjob.FieldRawID)
	}
	if m.pipeline_version != nil {
		fields = append(fields, extractionjob.FieldPipelineVersion)
	}
	if m.status != nil {
		fields = append(fields, extractionjob.FieldStatus)
	}
	if m.attempt != nil {
		fields = append(fields, extractionjob.FieldAttempt)
	}
	if m.processing_started_at != nil {
		fields = append(fields, extractionjob.FieldProcessingStartedAt)
	}
	if m.available_at != nil {
		fields = append(fields, extractionjob.FieldAvailableAt)
	}
	if m.meta != nil {
		fields = append(fields, extractionjob.FieldMeta)
	}
	if m.error_json != nil {
		fields = append(fields, extractionjob.FieldErrorJSON)
	}
	if m.llm_model != nil {
		fields = append(fields, extractionjob.FieldLlmModel)
	}
	if m.created_at != nil {
		fields = append(fields, extractionjob.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, extractionjob.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractionJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldRawID:
		return m.RawID()
	case extractionjob.FieldPipelineVersion:
		return m.PipelineVersion()
	case extractionjob.FieldStatus:
		return m.Status()
	case extractionjob.FieldAttempt:
		return m.Attempt()
	case extractionjob.FieldProcessingStartedAt:
		return m.ProcessingStartedAt()
	case extractionjob.FieldAvailableAt:
		return m.AvailableAt()
	case extractionjob.FieldMeta:
		return m.Meta()
	case extractionjob.FieldErrorJSON:
		return m.ErrorJSON()
	case extractionjob.FieldLlmModel:
		return m.LlmModel()
	case extractionjob.FieldCreatedAt:
		return m.CreatedAt()
	case extractionjob.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractionJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractionjob.FieldRawID:
		return m.OldRawID(ctx)
	case extractionjob.FieldPipelineVersion:
		return m.OldPipelineVersion(ctx)
	case extractionjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractionjob.FieldAttempt:
		return m.OldAttempt(ctx)
	case extractionjob.FieldProcessingStartedAt:
		return m.OldProcessingStartedAt(ctx)
	case extractionjob.FieldAvailableAt:
		return m.OldAvailableAt(ctx)
	case extractionjob.FieldMeta:
		return m.OldMeta(ctx)
	case extractionjob.FieldErrorJSON:
		return m.OldErrorJSON(ctx)
	case extractionjob.FieldLlmModel:
		return m.OldLlmModel(ctx)
	case extractionjob.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case extractionjob.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractionJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldRawID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawID(v)
		return nil
	case extractionjob.FieldPipelineVersion:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPipelineVersion(v)
		return nil
	case extractionjob.FieldStatus:
		v, ok := value.(extractionjob.Status)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractionjob.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAttempt(v)
		return nil
	case extractionjob.FieldProcessingStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProcessingStartedAt(v)
		return nil
	case extractionjob.FieldAvailableAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAvailableAt(v)
		return nil
	case extractionjob.FieldMeta:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMeta(v)
		return nil
	case extractionjob.FieldErrorJSON:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorJSON(v)
		return nil
	case extractionjob.FieldLlmModel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLlmModel(v)
		return nil
	case extractionjob.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case extractionjob.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractionJobMutation) AddedFields() []string {
	var fields []string
	if m.addattempt != nil {
		fields = append(fields, extractionjob.FieldAttempt)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractionJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractionjob.FieldAttempt:
		return m.AddedAttempt()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractionJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractionjob.FieldAttempt:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddAttempt(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractionJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractionjob.FieldProcessingStartedAt) {
		fields = append(fields, extractionjob.FieldProcessingStartedAt)
	}
	if m.FieldCleared(extractionjob.FieldMeta) {
		fields = append(fields, extractionjob.FieldMeta)
	}
	if m.FieldCleared(extractionjob.FieldErrorJSON) {
		fields = append(fields, extractionjob.FieldErrorJSON)
	}
	if m.FieldCleared(extractionjob.FieldLlmModel) {
		fields = append(fields, extractionjob.FieldLlmModel)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractionJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ClearField(name string) error {
	switch name {
	case extractionjob.FieldProcessingStartedAt:
		m.ClearProcessingStartedAt()
		return nil
	case extractionjob.FieldMeta:
		m.ClearMeta()
		return nil
	case extractionjob.FieldErrorJSON:
		m.ClearErrorJSON()
		return nil
	case extractionjob.FieldLlmModel:
		m.ClearLlmModel()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractionJobMutation) ResetField(name string) error {
	switch name {
	case extractionjob.FieldRawID:
		m.ResetRawID()
		return nil
	case extractionjob.FieldPipelineVersion:
		m.ResetPipelineVersion()
		return nil
	case extractionjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractionjob.FieldAttempt:
		m.ResetAttempt()
		return nil
	case extractionjob.FieldProcessingStartedAt:
		m.ResetProcessingStartedAt()
		return nil
	case extractionjob.FieldAvailableAt:
		m.ResetAvailableAt()
		return nil
	case extractionjob.FieldMeta:
		m.ResetMeta()
		return nil
	case extractionjob.FieldErrorJSON:
		m.ResetErrorJSON()
		return nil
	case extractionjob.FieldLlmModel:
		m.ResetLlmModel()
		return nil
	case extractionjob.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case extractionjob.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractionJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.raw != nil {
		edges = append(edges, extractionjob.EdgeRaw)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractionJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractionjob.EdgeRaw:
		if id := m.raw; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractionJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractionJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractionJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedraw {
		edges = append(edges, extractionjob.EdgeRaw)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractionJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractionjob.EdgeRaw:
		return m.clearedraw
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractionJobMutation) ClearEdge(name string) error {
	switch name {
	case extractionjob.EdgeRaw:
		m.ClearRaw()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractionJobMutation) ResetEdge(name string) error {
	switch name {
	case extractionjob.EdgeRaw:
		m.ResetRaw()
		return nil
	}
	return fmt.Errorf("unknown ExtractionJob edge %s", name)
}

// RatingMutation represents an operation that mutates the Rating nodes in the graph.
type RatingMutation struct {
	config
	op                     Op
	typ                    string
	id                     *string
	tutor_id               *string
	assignment_id          *string
	score                  *float64
	addscore               *float64
	distance_km_at_send    *float64
	adddistance_km_at_send *float64
	created_at             *time.Time
	clearedFields          map[string]struct{}
	done                   bool
	oldValue               func(context.Context) (*Rating, error)
	predicates             []predicate.Rating
}

var _ ent.Mutation = (*RatingMutation)(nil)

// ratingOption allows management of the mutation configuration using functional options.
type ratingOption func(*RatingMutation)

// newRatingMutation creates new mutation for the Rating entity.
func newRatingMutation(c config, op Op, opts ...ratingOption) *RatingMutation {
	m := &RatingMutation{
		config:        c,
		op:            op,
		typ:           TypeRating,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRatingID sets the ID field of the mutation.
func withRatingID(id string) ratingOption {
	return func(m *RatingMutation) {
		var (
			err   error
			once  sync.Once
			value *Rating
		)
		m.oldValue = func(ctx context.Context) (*Rating, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Rating.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRating sets the old Rating of the mutation.
func withRating(node *Rating) ratingOption {
	return func(m *RatingMutation) {
		m.oldValue = func(context.Context) (*Rating, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RatingMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RatingMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Rating entities.
func (m *RatingMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RatingMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RatingMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Rating.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTutorID sets the "tutor_id" field.
func (m *RatingMutation) SetTutorID(s string) {
	m.tutor_id = &s
}

// TutorID returns the value of the "tutor_id" field in the mutation.
func (m *RatingMutation) TutorID() (r string, exists bool) {
	v := m.tutor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTutorID returns the old "tutor_id" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldTutorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTutorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTutorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTutorID: %w", err)
	}
	return oldValue.TutorID, nil
}

// ResetTutorID resets all changes to the "tutor_id" field.
func (m *RatingMutation) ResetTutorID() {
	m.tutor_id = nil
}

// SetAssignmentID sets the "assignment_id" field.
func (m *RatingMutation) SetAssignmentID(s string) {
	m.assignment_id = &s
}

// AssignmentID returns the value of the "assignment_id" field in the mutation.
func (m *RatingMutation) AssignmentID() (r string, exists bool) {
	v := m.assignment_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAssignmentID returns the old "assignment_id" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldAssignmentID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAssignmentID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAssignmentID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAssignmentID: %w", err)
	}
	return oldValue.AssignmentID, nil
}

// ResetAssignmentID resets all changes to the "assignment_id" field.
func (m *RatingMutation) ResetAssignmentID() {
	m.assignment_id = nil
}

// SetScore sets the "score" field.
func (m *RatingMutation) SetScore(f float64) {
	m.score = &f
	m.addscore = nil
}

// Score returns the value of the "score" field in the mutation.
func (m *RatingMutation) Score() (r float64, exists bool) {
	v := m.score
	if v == nil {
		return
	}
	return *v, true
}

// OldScore returns the old "score" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldScore(ctx context.Context) (v float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldScore is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldScore requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldScore: %w", err)
	}
	return oldValue.Score, nil
}

// AddScore adds f to the "score" field.
func (m *RatingMutation) AddScore(f float64) {
	if m.addscore != nil {
		*m.addscore += f
	} else {
		m.addscore = &f
	}
}

// AddedScore returns the value that was added to the "score" field in this mutation.
func (m *RatingMutation) AddedScore() (r float64, exists bool) {
	v := m.addscore
	if v == nil {
		return
	}
	return *v, true
}

// ResetScore resets all changes to the "score" field.
func (m *RatingMutation) ResetScore() {
	m.score = nil
	m.addscore = nil
}

// SetDistanceKmAtSend sets the "distance_km_at_send" field.
func (m *RatingMutation) SetDistanceKmAtSend(f float64) {
	m.distance_km_at_send = &f
	m.adddistance_km_at_send = nil
}

// DistanceKmAtSend returns the value of the "distance_km_at_send" field in the mutation.
func (m *RatingMutation) DistanceKmAtSend() (r float64, exists bool) {
	v := m.distance_km_at_send
	if v == nil {
		return
	}
	return *v, true
}

// OldDistanceKmAtSend returns the old "distance_km_at_send" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldDistanceKmAtSend(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDistanceKmAtSend is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDistanceKmAtSend requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDistanceKmAtSend: %w", err)
	}
	return oldValue.DistanceKmAtSend, nil
}

// AddDistanceKmAtSend adds f to the "distance_km_at_send" field.
func (m *RatingMutation) AddDistanceKmAtSend(f float64) {
	if m.adddistance_km_at_send != nil {
		*m.adddistance_km_at_send += f
	} else {
		m.adddistance_km_at_send = &f
	}
}

// AddedDistanceKmAtSend returns the value that was added to the "distance_km_at_send" field in this mutation.
func (m *RatingMutation) AddedDistanceKmAtSend() (r float64, exists bool) {
	v := m.adddistance_km_at_send
	if v == nil {
		return
	}
	return *v, true
}

// ClearDistanceKmAtSend clears the value of the "distance_km_at_send" field.
func (m *RatingMutation) ClearDistanceKmAtSend() {
	m.distance_km_at_send = nil
	m.adddistance_km_at_send = nil
	m.clearedFields[rating.FieldDistanceKmAtSend] = struct{}{}
}

// DistanceKmAtSendCleared returns if the "distance_km_at_send" field was cleared in this mutation.
func (m *RatingMutation) DistanceKmAtSendCleared() bool {
	_, ok := m.clearedFields[rating.FieldDistanceKmAtSend]
	return ok
}

// ResetDistanceKmAtSend resets all changes to the "distance_km_at_send" field.
func (m *RatingMutation) ResetDistanceKmAtSend() {
	m.distance_km_at_send = nil
	m.adddistance_km_at_send = nil
	delete(m.clearedFields, rating.FieldDistanceKmAtSend)
}

// SetCreatedAt sets the "created_at" field.
func (m *RatingMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RatingMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Rating entity.
// If the Rating object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RatingMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RatingMutation) ResetCreatedAt() {
	m.created_at = nil
}

// Where appends a list predicates to the RatingMutation builder.
func (m *RatingMutation) Where(ps ...predicate.Rating) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RatingMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RatingMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Rating, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RatingMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RatingMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Rating).
func (m *RatingMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RatingMutation) Fields() []string {
	fields := make([]string, 0, 5)
	if m.tutor_id != nil {
		fields = append(fields, rating.FieldTutorID)
	}
	if m.assignment_id != nil {
		fields = append(fields, rating.FieldAssignmentID)
	}
	if m.score != nil {
		fields = append(fields, rating.FieldScore)
	}
	if m.distance_km_at_send != nil {
		fields = append(fields, rating.FieldDistanceKmAtSend)
	}
	if m.created_at != nil {
		fields = append(fields, rating.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RatingMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rating.FieldTutorID:
		return m.TutorID()
	case rating.FieldAssignmentID:
		return m.AssignmentID()
	case rating.FieldScore:
		return m.Score()
	case rating.FieldDistanceKmAtSend:
		return m.DistanceKmAtSend()
	case rating.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RatingMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rating.FieldTutorID:
		return m.OldTutorID(ctx)
	case rating.FieldAssignmentID:
		return m.OldAssignmentID(ctx)
	case rating.FieldScore:
		return m.OldScore(ctx)
	case rating.FieldDistanceKmAtSend:
		return m.OldDistanceKmAtSend(ctx)
	case rating.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Rating field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RatingMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rating.FieldTutorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTutorID(v)
		return nil
	case rating.FieldAssignmentID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAssignmentID(v)
		return nil
	case rating.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetScore(v)
		return nil
	case rating.FieldDistanceKmAtSend:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDistanceKmAtSend(v)
		return nil
	case rating.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Rating field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RatingMutation) AddedFields() []string {
	var fields []string
	if m.addscore != nil {
		fields = append(fields, rating.FieldScore)
	}
	if m.adddistance_km_at_send != nil {
		fields = append(fields, rating.FieldDistanceKmAtSend)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RatingMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case rating.FieldScore:
		return m.AddedScore()
	case rating.FieldDistanceKmAtSend:
		return m.AddedDistanceKmAtSend()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RatingMutation) AddField(name string, value ent.Value) error {
	switch name {
	case rating.FieldScore:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddScore(v)
		return nil
	case rating.FieldDistanceKmAtSend:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddDistanceKmAtSend(v)
		return nil
	}
	return fmt.Errorf("unknown Rating numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RatingMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rating.FieldDistanceKmAtSend) {
		fields = append(fields, rating.FieldDistanceKmAtSend)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RatingMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RatingMutation) ClearField(name string) error {
	switch name {
	case rating.FieldDistanceKmAtSend:
		m.ClearDistanceKmAtSend()
		return nil
	}
	return fmt.Errorf("unknown Rating nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RatingMutation) ResetField(name string) error {
	switch name {
	case rating.FieldTutorID:
		m.ResetTutorID()
		return nil
	case rating.FieldAssignmentID:
		m.ResetAssignmentID()
		return nil
	case rating.FieldScore:
		m.ResetScore()
		return nil
	case rating.FieldDistanceKmAtSend:
		m.ResetDistanceKmAtSend()
		return nil
	case rating.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Rating field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RatingMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RatingMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RatingMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RatingMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RatingMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RatingMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RatingMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown Rating unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RatingMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown Rating edge %s", name)
}

// RawMessageMutation represents an operation that mutates the RawMessage nodes in the graph.
type RawMessageMutation struct {
	config
	op                  Op
	typ                 string
	id                  *string
	channel             *string
	message_id          *string
	agency_id           *string
	text                *string
	source_published_at *time.Time
	source_edited_at    *time.Time
	payload             *map[string]interface{}
	created_at          *time.Time
	deleted_at          *time.Time
	clearedFields       map[string]struct{}
	jobs                map[string]struct{}
	removedjobs         map[string]struct{}
	clearedjobs         bool
	done                bool
	oldValue            func(context.Context) (*RawMessage, error)
	predicates          []predicate.RawMessage
}

var _ ent.Mutation = (*RawMessageMutation)(nil)

// rawmessageOption allows management of the mutation configuration using functional options.
type rawmessageOption func(*RawMessageMutation)

// newRawMessageMutation creates new mutation for the RawMessage entity.
func newRawMessageMutation(c config, op Op, opts ...rawmessageOption) *RawMessageMutation {
	m := &RawMessageMutation{
		config:        c,
		op:            op,
		typ:           TypeRawMessage,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withRawMessageID sets the ID field of the mutation.
func withRawMessageID(id string) rawmessageOption {
	return func(m *RawMessageMutation) {
		var (
			err   error
			once  sync.Once
			value *RawMessage
		)
		m.oldValue = func(ctx context.Context) (*RawMessage, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().RawMessage.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withRawMessage sets the old RawMessage of the mutation.
func withRawMessage(node *RawMessage) rawmessageOption {
	return func(m *RawMessageMutation) {
		m.oldValue = func(context.Context) (*RawMessage, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m RawMessageMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m RawMessageMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of RawMessage entities.
func (m *RawMessageMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *RawMessageMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *RawMessageMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().RawMessage.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetChannel sets the "channel" field.
func (m *RawMessageMutation) SetChannel(s string) {
	m.channel = &s
}

// Channel returns the value of the "channel" field in the mutation.
func (m *RawMessageMutation) Channel() (r string, exists bool) {
	v := m.channel
	if v == nil {
		return
	}
	return *v, true
}

// OldChannel returns the old "channel" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldChannel(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldChannel is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldChannel requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldChannel: %w", err)
	}
	return oldValue.Channel, nil
}

// ResetChannel resets all changes to the "channel" field.
func (m *RawMessageMutation) ResetChannel() {
	m.channel = nil
}

// SetMessageID sets the "message_id" field.
func (m *RawMessageMutation) SetMessageID(s string) {
	m.message_id = &s
}

// MessageID returns the value of the "message_id" field in the mutation.
func (m *RawMessageMutation) MessageID() (r string, exists bool) {
	v := m.message_id
	if v == nil {
		return
	}
	return *v, true
}

// OldMessageID returns the old "message_id" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldMessageID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMessageID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMessageID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMessageID: %w", err)
	}
	return oldValue.MessageID, nil
}

// ResetMessageID resets all changes to the "message_id" field.
func (m *RawMessageMutation) ResetMessageID() {
	m.message_id = nil
}

// SetAgencyID sets the "agency_id" field.
func (m *RawMessageMutation) SetAgencyID(s string) {
	m.agency_id = &s
}

// AgencyID returns the value of the "agency_id" field in the mutation.
func (m *RawMessageMutation) AgencyID() (r string, exists bool) {
	v := m.agency_id
	if v == nil {
		return
	}
	return *v, true
}

// OldAgencyID returns the old "agency_id" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldAgencyID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldAgencyID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldAgencyID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldAgencyID: %w", err)
	}
	return oldValue.AgencyID, nil
}

// ResetAgencyID resets all changes to the "agency_id" field.
func (m *RawMessageMutation) ResetAgencyID() {
	m.agency_id = nil
}

// SetText sets the "text" field.
func (m *RawMessageMutation) SetText(s string) {
	m.text = &s
}

// Text returns the value of the "text" field in the mutation.
func (m *RawMessageMutation) Text() (r string, exists bool) {
	v := m.text
	if v == nil {
		return
	}
	return *v, true
}

// OldText returns the old "text" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldText(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldText: %w", err)
	}
	return oldValue.Text, nil
}

// ResetText resets all changes to the "text" field.
func (m *RawMessageMutation) ResetText() {
	m.text = nil
}

// SetSourcePublishedAt sets the "source_published_at" field.
func (m *RawMessageMutation) SetSourcePublishedAt(t time.Time) {
	m.source_published_at = &t
}

// SourcePublishedAt returns the value of the "source_published_at" field in the mutation.
func (m *RawMessageMutation) SourcePublishedAt() (r time.Time, exists bool) {
	v := m.source_published_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePublishedAt returns the old "source_published_at" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldSourcePublishedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePublishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePublishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePublishedAt: %w", err)
	}
	return oldValue.SourcePublishedAt, nil
}

// ResetSourcePublishedAt resets all changes to the "source_published_at" field.
func (m *RawMessageMutation) ResetSourcePublishedAt() {
	m.source_published_at = nil
}

// SetSourceEditedAt sets the "source_edited_at" field.
func (m *RawMessageMutation) SetSourceEditedAt(t time.Time) {
	m.source_edited_at = &t
}

// SourceEditedAt returns the value of the "source_edited_at" field in the mutation.
func (m *RawMessageMutation) SourceEditedAt() (r time.Time, exists bool) {
	v := m.source_edited_at
	if v == nil {
		return
	}
	return *v, true
}

// OldSourceEditedAt returns the old "source_edited_at" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldSourceEditedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourceEditedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourceEditedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourceEditedAt: %w", err)
	}
	return oldValue.SourceEditedAt, nil
}

// ClearSourceEditedAt clears the value of the "source_edited_at" field.
func (m *RawMessageMutation) ClearSourceEditedAt() {
	m.source_edited_at = nil
	m.clearedFields[rawmessage.FieldSourceEditedAt] = struct{}{}
}

// SourceEditedAtCleared returns if the "source_edited_at" field was cleared in this mutation.
func (m *RawMessageMutation) SourceEditedAtCleared() bool {
	_, ok := m.clearedFields[rawmessage.FieldSourceEditedAt]
	return ok
}

// ResetSourceEditedAt resets all changes to the "source_edited_at" field.
func (m *RawMessageMutation) ResetSourceEditedAt() {
	m.source_edited_at = nil
	delete(m.clearedFields, rawmessage.FieldSourceEditedAt)
}

// SetPayload sets the "payload" field.
func (m *RawMessageMutation) SetPayload(value map[string]interface{}) {
	m.payload = &value
}

// Payload returns the value of the "payload" field in the mutation.
func (m *RawMessageMutation) Payload() (r map[string]interface{}, exists bool) {
	v := m.payload
	if v == nil {
		return
	}
	return *v, true
}

// OldPayload returns the old "payload" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldPayload(ctx context.Context) (v map[string]interface{}, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayload is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayload requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayload: %w", err)
	}
	return oldValue.Payload, nil
}

// ClearPayload clears the value of the "payload" field.
func (m *RawMessageMutation) ClearPayload() {
	m.payload = nil
	m.clearedFields[rawmessage.FieldPayload] = struct{}{}
}

// PayloadCleared returns if the "payload" field was cleared in this mutation.
func (m *RawMessageMutation) PayloadCleared() bool {
	_, ok := m.clearedFields[rawmessage.FieldPayload]
	return ok
}

// ResetPayload resets all changes to the "payload" field.
func (m *RawMessageMutation) ResetPayload() {
	m.payload = nil
	delete(m.clearedFields, rawmessage.FieldPayload)
}

// SetCreatedAt sets the "created_at" field.
func (m *RawMessageMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *RawMessageMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *RawMessageMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetDeletedAt sets the "deleted_at" field.
func (m *RawMessageMutation) SetDeletedAt(t time.Time) {
	m.deleted_at = &t
}

// DeletedAt returns the value of the "deleted_at" field in the mutation.
func (m *RawMessageMutation) DeletedAt() (r time.Time, exists bool) {
	v := m.deleted_at
	if v == nil {
		return
	}
	return *v, true
}

// OldDeletedAt returns the old "deleted_at" field's value of the RawMessage entity.
// If the RawMessage object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *RawMessageMutation) OldDeletedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeletedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeletedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeletedAt: %w", err)
	}
	return oldValue.DeletedAt, nil
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (m *RawMessageMutation) ClearDeletedAt() {
	m.deleted_at = nil
	m.clearedFields[rawmessage.FieldDeletedAt] = struct{}{}
}

// DeletedAtCleared returns if the "deleted_at" field was cleared in this mutation.
func (m *RawMessageMutation) DeletedAtCleared() bool {
	_, ok := m.clearedFields[rawmessage.FieldDeletedAt]
	return ok
}

// ResetDeletedAt resets all changes to the "deleted_at" field.
func (m *RawMessageMutation) ResetDeletedAt() {
	m.deleted_at = nil
	delete(m.clearedFields, rawmessage.FieldDeletedAt)
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by ids.
func (m *RawMessageMutation) AddJobIDs(ids ...string) {
	if m.jobs == nil {
		m.jobs = make(map[string]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractionJob entity.
func (m *RawMessageMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractionJob entity was cleared.
func (m *RawMessageMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractionJob entity by IDs.
func (m *RawMessageMutation) RemoveJobIDs(ids ...string) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[string]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractionJob entity.
func (m *RawMessageMutation) RemovedJobsIDs() (ids []string) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *RawMessageMutation) JobsIDs() (ids []string) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *RawMessageMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the RawMessageMutation builder.
func (m *RawMessageMutation) Where(ps ...predicate.RawMessage) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the RawMessageMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *RawMessageMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.RawMessage, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *RawMessageMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *RawMessageMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (RawMessage).
func (m *RawMessageMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *RawMessageMutation) Fields() []string {
	fields := make([]string, 0, 9)
	if m.channel != nil {
		fields = append(fields, rawmessage.FieldChannel)
	}
	if m.message_id != nil {
		fields = append(fields, rawmessage.FieldMessageID)
	}
	if m.agency_id != nil {
		fields = append(fields, rawmessage.FieldAgencyID)
	}
	if m.text != nil {
		fields = append(fields, rawmessage.FieldText)
	}
	if m.source_published_at != nil {
		fields = append(fields, rawmessage.FieldSourcePublishedAt)
	}
	if m.source_edited_at != nil {
		fields = append(fields, rawmessage.FieldSourceEditedAt)
	}
	if m.payload != nil {
		fields = append(fields, rawmessage.FieldPayload)
	}
	if m.created_at != nil {
		fields = append(fields, rawmessage.FieldCreatedAt)
	}
	if m.deleted_at != nil {
		fields = append(fields, rawmessage.FieldDeletedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *RawMessageMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case rawmessage.FieldChannel:
		return m.Channel()
	case rawmessage.FieldMessageID:
		return m.MessageID()
	case rawmessage.FieldAgencyID:
		return m.AgencyID()
	case rawmessage.FieldText:
		return m.Text()
	case rawmessage.FieldSourcePublishedAt:
		return m.SourcePublishedAt()
	case rawmessage.FieldSourceEditedAt:
		return m.SourceEditedAt()
	case rawmessage.FieldPayload:
		return m.Payload()
	case rawmessage.FieldCreatedAt:
		return m.CreatedAt()
	case rawmessage.FieldDeletedAt:
		return m.DeletedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *RawMessageMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case rawmessage.FieldChannel:
		return m.OldChannel(ctx)
	case rawmessage.FieldMessageID:
		return m.OldMessageID(ctx)
	case rawmessage.FieldAgencyID:
		return m.OldAgencyID(ctx)
	case rawmessage.FieldText:
		return m.OldText(ctx)
	case rawmessage.FieldSourcePublishedAt:
		return m.OldSourcePublishedAt(ctx)
	case rawmessage.FieldSourceEditedAt:
		return m.OldSourceEditedAt(ctx)
	case rawmessage.FieldPayload:
		return m.OldPayload(ctx)
	case rawmessage.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case rawmessage.FieldDeletedAt:
		return m.OldDeletedAt(ctx)
	}
	return nil, fmt.Errorf("unknown RawMessage field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawMessageMutation) SetField(name string, value ent.Value) error {
	switch name {
	case rawmessage.FieldChannel:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetChannel(v)
		return nil
	case rawmessage.FieldMessageID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMessageID(v)
		return nil
	case rawmessage.FieldAgencyID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetAgencyID(v)
		return nil
	case rawmessage.FieldText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetText(v)
		return nil
	case rawmessage.FieldSourcePublishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePublishedAt(v)
		return nil
	case rawmessage.FieldSourceEditedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourceEditedAt(v)
		return nil
	case rawmessage.FieldPayload:
		v, ok := value.(map[string]interface{})
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayload(v)
		return nil
	case rawmessage.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case rawmessage.FieldDeletedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeletedAt(v)
		return nil
	}
	return fmt.Errorf("unknown RawMessage field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *RawMessageMutation) AddedFields() []string {
	return nil
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *RawMessageMutation) AddedField(name string) (ent.Value, bool) {
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *RawMessageMutation) AddField(name string, value ent.Value) error {
	switch name {
	}
	return fmt.Errorf("unknown RawMessage numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *RawMessageMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(rawmessage.FieldSourceEditedAt) {
		fields = append(fields, rawmessage.FieldSourceEditedAt)
	}
	if m.FieldCleared(rawmessage.FieldPayload) {
		fields = append(fields, rawmessage.FieldPayload)
	}
	if m.FieldCleared(rawmessage.FieldDeletedAt) {
		fields = append(fields, rawmessage.FieldDeletedAt)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *RawMessageMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *RawMessageMutation) ClearField(name string) error {
	switch name {
	case rawmessage.FieldSourceEditedAt:
		m.ClearSourceEditedAt()
		return nil
	case rawmessage.FieldPayload:
		m.ClearPayload()
		return nil
	case rawmessage.FieldDeletedAt:
		m.ClearDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown RawMessage nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *RawMessageMutation) ResetField(name string) error {
	switch name {
	case rawmessage.FieldChannel:
		m.ResetChannel()
		return nil
	case rawmessage.FieldMessageID:
		m.ResetMessageID()
		return nil
	case rawmessage.FieldAgencyID:
		m.ResetAgencyID()
		return nil
	case rawmessage.FieldText:
		m.ResetText()
		return nil
	case rawmessage.FieldSourcePublishedAt:
		m.ResetSourcePublishedAt()
		return nil
	case rawmessage.FieldSourceEditedAt:
		m.ResetSourceEditedAt()
		return nil
	case rawmessage.FieldPayload:
		m.ResetPayload()
		return nil
	case rawmessage.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case rawmessage.FieldDeletedAt:
		m.ResetDeletedAt()
		return nil
	}
	return fmt.Errorf("unknown RawMessage field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *RawMessageMutation) AddedEdges() []string {
	edges := make([]string, 0, 1)
	if m.jobs != nil {
		edges = append(edges, rawmessage.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *RawMessageMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case rawmessage.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *RawMessageMutation) RemovedEdges() []string {
	edges := make([]string, 0, 1)
	if m.removedjobs != nil {
		edges = append(edges, rawmessage.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *RawMessageMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case rawmessage.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *RawMessageMutation) ClearedEdges() []string {
	edges := make([]string, 0, 1)
	if m.clearedjobs {
		edges = append(edges, rawmessage.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *RawMessageMutation) EdgeCleared(name string) bool {
	switch name {
	case rawmessage.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *RawMessageMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown RawMessage unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *RawMessageMutation) ResetEdge(name string) error {
	switch name {
	case rawmessage.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown RawMessage edge %s", name)
}

// TutorProfileMutation represents an operation that mutates the TutorProfile nodes in the graph.
type TutorProfileMutation struct {
	config
	op                 Op
	typ                string
	id                 *string
	tutor_id           *string
	subjects           *[]string
	appendsubjects     []string
	levels             *[]string
	appendlevels       []string
	postal_code        *string
	lat                *float64
	addlat             *float64
	lon                *float64
	addlon             *float64
	max_distance_km    *float64
	addmax_distance_km *float64
	dm_chat_id         *string
	active             *bool
	created_at         *time.Time
	updated_at         *time.Time
	clearedFields      map[string]struct{}
	done               bool
	oldValue           func(context.Context) (*TutorProfile, error)
	predicates         []predicate.TutorProfile
}

var _ ent.Mutation = (*TutorProfileMutation)(nil)

// tutorprofileOption allows management of the mutation configuration using functional options.
type tutorprofileOption func(*TutorProfileMutation)

// newTutorProfileMutation creates new mutation for the TutorProfile entity.
func newTutorProfileMutation(c config, op Op, opts ...tutorprofileOption) *TutorProfileMutation {
	m := &TutorProfileMutation{
		config:        c,
		op:            op,
		typ:           TypeTutorProfile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withTutorProfileID sets the ID field of the mutation.
func withTutorProfileID(id string) tutorprofileOption {
	return func(m *TutorProfileMutation) {
		var (
			err   error
			once  sync.Once
			value *TutorProfile
		)
		m.oldValue = func(ctx context.Context) (*TutorProfile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().TutorProfile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withTutorProfile sets the old TutorProfile of the mutation.
func withTutorProfile(node *TutorProfile) tutorprofileOption {
	return func(m *TutorProfileMutation) {
		m.oldValue = func(context.Context) (*TutorProfile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m TutorProfileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m TutorProfileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of TutorProfile entities.
func (m *TutorProfileMutation) SetID(id string) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *TutorProfileMutation) ID() (id string, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *TutorProfileMutation) IDs(ctx context.Context) ([]string, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []string{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().TutorProfile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetTutorID sets the "tutor_id" field.
func (m *TutorProfileMutation) SetTutorID(s string) {
	m.tutor_id = &s
}

// TutorID returns the value of the "tutor_id" field in the mutation.
func (m *TutorProfileMutation) TutorID() (r string, exists bool) {
	v := m.tutor_id
	if v == nil {
		return
	}
	return *v, true
}

// OldTutorID returns the old "tutor_id" field's value of the TutorProfile entity.
// If the TutorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorProfileMutation) OldTutorID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldTutorID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldTutorID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldTutorID: %w", err)
	}
	return oldValue.TutorID, nil
}

// ResetTutorID resets all changes to the "tutor_id" field.
func (m *TutorProfileMutation) ResetTutorID() {
	m.tutor_id = nil
}

// SetSubjects sets the "subjects" field.
func (m *TutorProfileMutation) SetSubjects(s []string) {
	m.subjects = &s
	m.appendsubjects = nil
}

// Subjects returns the value of the "subjects" field in the mutation.
func (m *TutorProfileMutation) Subjects() (r []string, exists bool) {
	v := m.subjects
	if v == nil {
		return
	}
	return *v, true
}

// OldSubjects returns the old "subjects" field's value of the TutorProfile entity.
// If the TutorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorProfileMutation) OldSubjects(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSubjects is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSubjects requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSubjects: %w", err)
	}
	return oldValue.Subjects, nil
}

// AppendSubjects adds s to the "subjects" field.
func (m *TutorProfileMutation) AppendSubjects(s []string) {
	m.appendsubjects = append(m.appendsubjects, s...)
}

// AppendedSubjects returns the list of values that were appended to the "subjects" field in this mutation.
func (m *TutorProfileMutation) AppendedSubjects() ([]string, bool) {
	if len(m.appendsubjects) == 0 {
		return nil, false
	}
	return m.appendsubjects, true
}

// ClearSubjects clears the value of the "subjects" field.
func (m *TutorProfileMutation) ClearSubjects() {
	m.subjects = nil
	m.appendsubjects = nil
	m.clearedFields[tutorprofile.FieldSubjects] = struct{}{}
}

// SubjectsCleared returns if the "subjects" field was cleared in this mutation.
func (m *TutorProfileMutation) SubjectsCleared() bool {
	_, ok := m.clearedFields[tutorprofile.FieldSubjects]
	return ok
}

// ResetSubjects resets all changes to the "subjects" field.
func (m *TutorProfileMutation) ResetSubjects() {
	m.subjects = nil
	m.appendsubjects = nil
	delete(m.clearedFields, tutorprofile.FieldSubjects)
}

// SetLevels sets the "levels" field.
func (m *TutorProfileMutation) SetLevels(s []string) {
	m.levels = &s
	m.appendlevels = nil
}

// Levels returns the value of the "levels" field in the mutation.
func (m *TutorProfileMutation) Levels() (r []string, exists bool) {
	v := m.levels
	if v == nil {
		return
	}
	return *v, true
}

// OldLevels returns the old "levels" field's value of the TutorProfile entity.
// If the TutorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorProfileMutation) OldLevels(ctx context.Context) (v []string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLevels is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLevels requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLevels: %w", err)
	}
	return oldValue.Levels, nil
}

// AppendLevels adds s to the "levels" field.
func (m *TutorProfileMutation) AppendLevels(s []string) {
	m.appendlevels = append(m.appendlevels, s...)
}

// AppendedLevels returns the list of values that were appended to the "levels" field in this mutation.
func (m *TutorProfileMutation) AppendedLevels() ([]string, bool) {
	if len(m.appendlevels) == 0 {
		return nil, false
	}
	return m.appendlevels, true
}

// ClearLevels clears the value of the "levels" field.
func (m *TutorProfileMutation) ClearLevels() {
	m.levels = nil
	m.appendlevels = nil
	m.clearedFields[tutorprofile.FieldLevels] = struct{}{}
}

// LevelsCleared returns if the "levels" field was cleared in this mutation.
func (m *TutorProfileMutation) LevelsCleared() bool {
	_, ok := m.clearedFields[tutorprofile.FieldLevels]
	return ok
}

// ResetLevels resets all changes to the "levels" field.
func (m *TutorProfileMutation) ResetLevels() {
	m.levels = nil
	m.appendlevels = nil
	delete(m.clearedFields, tutorprofile.FieldLevels)
}

// SetPostalCode sets the "postal_code" field.
func (m *TutorProfileMutation) SetPostalCode(s string) {
	m.postal_code = &s
}

// PostalCode returns the value of the "postal_code" field in the mutation.
func (m *TutorProfileMutation) PostalCode() (r string, exists bool) {
	v := m.postal_code
	if v == nil {
		return
	}
	return *v, true
}

// OldPostalCode returns the old "postal_code" field's value of the TutorProfile entity.
// If the TutorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorProfileMutation) OldPostalCode(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPostalCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPostalCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPostalCode: %w", err)
	}
	return oldValue.PostalCode, nil
}

// ClearPostalCode clears the value of the "postal_code" field.
func (m *TutorProfileMutation) ClearPostalCode() {
	m.postal_code = nil
	m.clearedFields[tutorprofile.FieldPostalCode] = struct{}{}
}

// PostalCodeCleared returns if the "postal_code" field was cleared in this mutation.
func (m *TutorProfileMutation) PostalCodeCleared() bool {
	_, ok := m.clearedFields[tutorprofile.FieldPostalCode]
	return ok
}

// ResetPostalCode resets all changes to the "postal_code" field.
func (m *TutorProfileMutation) ResetPostalCode() {
	m.postal_code = nil
	delete(m.clearedFields, tutorprofile.FieldPostalCode)
}

// SetLat sets the "lat" field.
func (m *TutorProfileMutation) SetLat(f float64) {
	m.lat = &f
	m.addlat = nil
}

// Lat returns the value of the "lat" field in the mutation.
func (m *TutorProfileMutation) Lat() (r float64, exists bool) {
	v := m.lat
	if v == nil {
		return
	}
	return *v, true
}

// OldLat returns the old "lat" field's value of the TutorProfile entity.
// If the TutorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorProfileMutation) OldLat(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLat: %w", err)
	}
	return oldValue.Lat, nil
}

// AddLat adds f to the "lat" field.
func (m *TutorProfileMutation) AddLat(f float64) {
	if m.addlat != nil {
		*m.addlat += f
	} else {
		m.addlat = &f
	}
}

// AddedLat returns the value that was added to the "lat" field in this mutation.
func (m *TutorProfileMutation) AddedLat() (r float64, exists bool) {
	v := m.addlat
	if v == nil {
		return
	}
	return *v, true
}

// ClearLat clears the value of the "lat" field.
func (m *TutorProfileMutation) ClearLat() {
	m.lat = nil
	m.addlat = nil
	m.clearedFields[tutorprofile.FieldLat] = struct{}{}
}

// LatCleared returns if the "lat" field was cleared in this mutation.
func (m *TutorProfileMutation) LatCleared() bool {
	_, ok := m.clearedFields[tutorprofile.FieldLat]
	return ok
}

// ResetLat resets all changes to the "lat" field.
func (m *TutorProfileMutation) ResetLat() {
	m.lat = nil
	m.addlat = nil
	delete(m.clearedFields, tutorprofile.FieldLat)
}

// SetLon sets the "lon" field.
func (m *TutorProfileMutation) SetLon(f float64) {
	m.lon = &f
	m.addlon = nil
}

// Lon returns the value of the "lon" field in the mutation.
func (m *TutorProfileMutation) Lon() (r float64, exists bool) {
	v := m.lon
	if v == nil {
		return
	}
	return *v, true
}

// OldLon returns the old "lon" field's value of the TutorProfile entity.
// If the TutorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorProfileMutation) OldLon(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldLon is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldLon requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldLon: %w", err)
	}
	return oldValue.Lon, nil
}

// AddLon adds f to the "lon" field.
func (m *TutorProfileMutation) AddLon(f float64) {
	if m.addlon != nil {
		*m.addlon += f
	} else {
		m.addlon = &f
	}
}

// AddedLon returns the value that was added to the "lon" field in this mutation.
func (m *TutorProfileMutation) AddedLon() (r float64, exists bool) {
	v := m.addlon
	if v == nil {
		return
	}
	return *v, true
}

// ClearLon clears the value of the "lon" field.
func (m *TutorProfileMutation) ClearLon() {
	m.lon = nil
	m.addlon = nil
	m.clearedFields[tutorprofile.FieldLon] = struct{}{}
}

// LonCleared returns if the "lon" field was cleared in this mutation.
func (m *TutorProfileMutation) LonCleared() bool {
	_, ok := m.clearedFields[tutorprofile.FieldLon]
	return ok
}

// ResetLon resets all changes to the "lon" field.
func (m *TutorProfileMutation) ResetLon() {
	m.lon = nil
	m.addlon = nil
	delete(m.clearedFields, tutorprofile.FieldLon)
}

// SetMaxDistanceKm sets the "max_distance_km" field.
func (m *TutorProfileMutation) SetMaxDistanceKm(f float64) {
	m.max_distance_km = &f
	m.addmax_distance_km = nil
}

// MaxDistanceKm returns the value of the "max_distance_km" field in the mutation.
func (m *TutorProfileMutation) MaxDistanceKm() (r float64, exists bool) {
	v := m.max_distance_km
	if v == nil {
		return
	}
	return *v, true
}

// OldMaxDistanceKm returns the old "max_distance_km" field's value of the TutorProfile entity.
// If the TutorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorProfileMutation) OldMaxDistanceKm(ctx context.Context) (v *float64, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMaxDistanceKm is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMaxDistanceKm requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMaxDistanceKm: %w", err)
	}
	return oldValue.MaxDistanceKm, nil
}

// AddMaxDistanceKm adds f to the "max_distance_km" field.
func (m *TutorProfileMutation) AddMaxDistanceKm(f float64) {
	if m.addmax_distance_km != nil {
		*m.addmax_distance_km += f
	} else {
		m.addmax_distance_km = &f
	}
}

// AddedMaxDistanceKm returns the value that was added to the "max_distance_km" field in this mutation.
func (m *TutorProfileMutation) AddedMaxDistanceKm() (r float64, exists bool) {
	v := m.addmax_distance_km
	if v == nil {
		return
	}
	return *v, true
}

// ClearMaxDistanceKm clears the value of the "max_distance_km" field.
func (m *TutorProfileMutation) ClearMaxDistanceKm() {
	m.max_distance_km = nil
	m.addmax_distance_km = nil
	m.clearedFields[tutorprofile.FieldMaxDistanceKm] = struct{}{}
}

// MaxDistanceKmCleared returns if the "max_distance_km" field was cleared in this mutation.
func (m *TutorProfileMutation) MaxDistanceKmCleared() bool {
	_, ok := m.clearedFields[tutorprofile.FieldMaxDistanceKm]
	return ok
}

// ResetMaxDistanceKm resets all changes to the "max_distance_km" field.
func (m *TutorProfileMutation) ResetMaxDistanceKm() {
	m.max_distance_km = nil
	m.addmax_distance_km = nil
	delete(m.clearedFields, tutorprofile.FieldMaxDistanceKm)
}

// SetDmChatID sets the "dm_chat_id" field.
func (m *TutorProfileMutation) SetDmChatID(s string) {
	m.dm_chat_id = &s
}

// DmChatID returns the value of the "dm_chat_id" field in the mutation.
func (m *TutorProfileMutation) DmChatID() (r string, exists bool) {
	v := m.dm_chat_id
	if v == nil {
		return
	}
	return *v, true
}

// OldDmChatID returns the old "dm_chat_id" field's value of the TutorProfile entity.
// If the TutorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorProfileMutation) OldDmChatID(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDmChatID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDmChatID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDmChatID: %w", err)
	}
	return oldValue.DmChatID, nil
}

// ResetDmChatID resets all changes to the "dm_chat_id" field.
func (m *TutorProfileMutation) ResetDmChatID() {
	m.dm_chat_id = nil
}

// SetActive sets the "active" field.
func (m *TutorProfileMutation) SetActive(b bool) {
	m.active = &b
}

// Active returns the value of the "active" field in the mutation.
func (m *TutorProfileMutation) Active() (r bool, exists bool) {
	v := m.active
	if v == nil {
		return
	}
	return *v, true
}

// OldActive returns the old "active" field's value of the TutorProfile entity.
// If the TutorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorProfileMutation) OldActive(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldActive is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldActive requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldActive: %w", err)
	}
	return oldValue.Active, nil
}

// ResetActive resets all changes to the "active" field.
func (m *TutorProfileMutation) ResetActive() {
	m.active = nil
}

// SetCreatedAt sets the "created_at" field.
func (m *TutorProfileMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *TutorProfileMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the TutorProfile entity.
// If the TutorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorProfileMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *TutorProfileMutation) ResetCreatedAt() {
	m.created_at = nil
}

// SetUpdatedAt sets the "updated_at" field.
func (m *TutorProfileMutation) SetUpdatedAt(t time.Time) {
	m.updated_at = &t
}

// UpdatedAt returns the value of the "updated_at" field in the mutation.
func (m *TutorProfileMutation) UpdatedAt() (r time.Time, exists bool) {
	v := m.updated_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUpdatedAt returns the old "updated_at" field's value of the TutorProfile entity.
// If the TutorProfile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *TutorProfileMutation) OldUpdatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUpdatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUpdatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUpdatedAt: %w", err)
	}
	return oldValue.UpdatedAt, nil
}

// ResetUpdatedAt resets all changes to the "updated_at" field.
func (m *TutorProfileMutation) ResetUpdatedAt() {
	m.updated_at = nil
}

// Where appends a list predicates to the TutorProfileMutation builder.
func (m *TutorProfileMutation) Where(ps ...predicate.TutorProfile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the TutorProfileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *TutorProfileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.TutorProfile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *TutorProfileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *TutorProfileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (TutorProfile).
func (m *TutorProfileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *TutorProfileMutation) Fields() []string {
	fields := make([]string, 0, 11)
	if m.tutor_id != nil {
		fields = append(fields, tutorprofile.FieldTutorID)
	}
	if m.subjects != nil {
		fields = append(fields, tutorprofile.FieldSubjects)
	}
	if m.levels != nil {
		fields = append(fields, tutorprofile.FieldLevels)
	}
	if m.postal_code != nil {
		fields = append(fields, tutorprofile.FieldPostalCode)
	}
	if m.lat != nil {
		fields = append(fields, tutorprofile.FieldLat)
	}
	if m.lon != nil {
		fields = append(fields, tutorprofile.FieldLon)
	}
	if m.max_distance_km != nil {
		fields = append(fields, tutorprofile.FieldMaxDistanceKm)
	}
	if m.dm_chat_id != nil {
		fields = append(fields, tutorprofile.FieldDmChatID)
	}
	if m.active != nil {
		fields = append(fields, tutorprofile.FieldActive)
	}
	if m.created_at != nil {
		fields = append(fields, tutorprofile.FieldCreatedAt)
	}
	if m.updated_at != nil {
		fields = append(fields, tutorprofile.FieldUpdatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *TutorProfileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case tutorprofile.FieldTutorID:
		return m.TutorID()
	case tutorprofile.FieldSubjects:
		return m.Subjects()
	case tutorprofile.FieldLevels:
		return m.Levels()
	case tutorprofile.FieldPostalCode:
		return m.PostalCode()
	case tutorprofile.FieldLat:
		return m.Lat()
	case tutorprofile.FieldLon:
		return m.Lon()
	case tutorprofile.FieldMaxDistanceKm:
		return m.MaxDistanceKm()
	case tutorprofile.FieldDmChatID:
		return m.DmChatID()
	case tutorprofile.FieldActive:
		return m.Active()
	case tutorprofile.FieldCreatedAt:
		return m.CreatedAt()
	case tutorprofile.FieldUpdatedAt:
		return m.UpdatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *TutorProfileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case tutorprofile.FieldTutorID:
		return m.OldTutorID(ctx)
	case tutorprofile.FieldSubjects:
		return m.OldSubjects(ctx)
	case tutorprofile.FieldLevels:
		return m.OldLevels(ctx)
	case tutorprofile.FieldPostalCode:
		return m.OldPostalCode(ctx)
	case tutorprofile.FieldLat:
		return m.OldLat(ctx)
	case tutorprofile.FieldLon:
		return m.OldLon(ctx)
	case tutorprofile.FieldMaxDistanceKm:
		return m.OldMaxDistanceKm(ctx)
	case tutorprofile.FieldDmChatID:
		return m.OldDmChatID(ctx)
	case tutorprofile.FieldActive:
		return m.OldActive(ctx)
	case tutorprofile.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	case tutorprofile.FieldUpdatedAt:
		return m.OldUpdatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown TutorProfile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TutorProfileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case tutorprofile.FieldTutorID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetTutorID(v)
		return nil
	case tutorprofile.FieldSubjects:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSubjects(v)
		return nil
	case tutorprofile.FieldLevels:
		v, ok := value.([]string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLevels(v)
		return nil
	case tutorprofile.FieldPostalCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPostalCode(v)
		return nil
	case tutorprofile.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLat(v)
		return nil
	case tutorprofile.FieldLon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetLon(v)
		return nil
	case tutorprofile.FieldMaxDistanceKm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMaxDistanceKm(v)
		return nil
	case tutorprofile.FieldDmChatID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDmChatID(v)
		return nil
	case tutorprofile.FieldActive:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetActive(v)
		return nil
	case tutorprofile.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	case tutorprofile.FieldUpdatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUpdatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown TutorProfile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *TutorProfileMutation) AddedFields() []string {
	var fields []string
	if m.addlat != nil {
		fields = append(fields, tutorprofile.FieldLat)
	}
	if m.addlon != nil {
		fields = append(fields, tutorprofile.FieldLon)
	}
	if m.addmax_distance_km != nil {
		fields = append(fields, tutorprofile.FieldMaxDistanceKm)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *TutorProfileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case tutorprofile.FieldLat:
		return m.AddedLat()
	case tutorprofile.FieldLon:
		return m.AddedLon()
	case tutorprofile.FieldMaxDistanceKm:
		return m.AddedMaxDistanceKm()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *TutorProfileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case tutorprofile.FieldLat:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLat(v)
		return nil
	case tutorprofile.FieldLon:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddLon(v)
		return nil
	case tutorprofile.FieldMaxDistanceKm:
		v, ok := value.(float64)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddMaxDistanceKm(v)
		return nil
	}
	return fmt.Errorf("unknown TutorProfile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *TutorProfileMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(tutorprofile.FieldSubjects) {
		fields = append(fields, tutorprofile.FieldSubjects)
	}
	if m.FieldCleared(tutorprofile.FieldLevels) {
		fields = append(fields, tutorprofile.FieldLevels)
	}
	if m.FieldCleared(tutorprofile.FieldPostalCode) {
		fields = append(fields, tutorprofile.FieldPostalCode)
	}
	if m.FieldCleared(tutorprofile.FieldLat) {
		fields = append(fields, tutorprofile.FieldLat)
	}
	if m.FieldCleared(tutorprofile.FieldLon) {
		fields = append(fields, tutorprofile.FieldLon)
	}
	if m.FieldCleared(tutorprofile.FieldMaxDistanceKm) {
		fields = append(fields, tutorprofile.FieldMaxDistanceKm)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *TutorProfileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *TutorProfileMutation) ClearField(name string) error {
	switch name {
	case tutorprofile.FieldSubjects:
		m.ClearSubjects()
		return nil
	case tutorprofile.FieldLevels:
		m.ClearLevels()
		return nil
	case tutorprofile.FieldPostalCode:
		m.ClearPostalCode()
		return nil
	case tutorprofile.FieldLat:
		m.ClearLat()
		return nil
	case tutorprofile.FieldLon:
		m.ClearLon()
		return nil
	case tutorprofile.FieldMaxDistanceKm:
		m.ClearMaxDistanceKm()
		return nil
	}
	return fmt.Errorf("unknown TutorProfile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *TutorProfileMutation) ResetField(name string) error {
	switch name {
	case tutorprofile.FieldTutorID:
		m.ResetTutorID()
		return nil
	case tutorprofile.FieldSubjects:
		m.ResetSubjects()
		return nil
	case tutorprofile.FieldLevels:
		m.ResetLevels()
		return nil
	case tutorprofile.FieldPostalCode:
		m.ResetPostalCode()
		return nil
	case tutorprofile.FieldLat:
		m.ResetLat()
		return nil
	case tutorprofile.FieldLon:
		m.ResetLon()
		return nil
	case tutorprofile.FieldMaxDistanceKm:
		m.ResetMaxDistanceKm()
		return nil
	case tutorprofile.FieldDmChatID:
		m.ResetDmChatID()
		return nil
	case tutorprofile.FieldActive:
		m.ResetActive()
		return nil
	case tutorprofile.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	case tutorprofile.FieldUpdatedAt:
		m.ResetUpdatedAt()
		return nil
	}
	return fmt.Errorf("unknown TutorProfile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *TutorProfileMutation) AddedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *TutorProfileMutation) AddedIDs(name string) []ent.Value {
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *TutorProfileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *TutorProfileMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *TutorProfileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 0)
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *TutorProfileMutation) EdgeCleared(name string) bool {
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *TutorProfileMutation) ClearEdge(name string) error {
	return fmt.Errorf("unknown TutorProfile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *TutorProfileMutation) ResetEdge(name string) error {
	return fmt.Errorf("unknown TutorProfile edge %s", name)
}
