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
	"github.com/tuitionlab/assignflow/ent/predicate"
	"github.com/tuitionlab/assignflow/ent/tutorprofile"
)

// TutorProfileUpdate is the builder for updating TutorProfile entities.
type TutorProfileUpdate struct {
	config
	hooks    []Hook
	mutation *TutorProfileMutation
}

// Where appends a list predicates to the TutorProfileUpdate builder.
func (_u *TutorProfileUpdate) Where(ps ...predicate.TutorProfile) *TutorProfileUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetSubjects sets the "subjects" field.
func (_u *TutorProfileUpdate) SetSubjects(v []string) *TutorProfileUpdate {
	_u.mutation.SetSubjects(v)
	return _u
}

// AppendSubjects appends value to the "subjects" field.
func (_u *TutorProfileUpdate) AppendSubjects(v []string) *TutorProfileUpdate {
	_u.mutation.AppendSubjects(v)
	return _u
}

// ClearSubjects clears the value of the "subjects" field.
func (_u *TutorProfileUpdate) ClearSubjects() *TutorProfileUpdate {
	_u.mutation.ClearSubjects()
	return _u
}

// SetLevels sets the "levels" field.
func (_u *TutorProfileUpdate) SetLevels(v []string) *TutorProfileUpdate {
	_u.mutation.SetLevels(v)
	return _u
}

// AppendLevels appends value to the "levels" field.
func (_u *TutorProfileUpdate) AppendLevels(v []string) *TutorProfileUpdate {
	_u.mutation.AppendLevels(v)
	return _u
}

// ClearLevels clears the value of the "levels" field.
func (_u *TutorProfileUpdate) ClearLevels() *TutorProfileUpdate {
	_u.mutation.ClearLevels()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *TutorProfileUpdate) SetPostalCode(v string) *TutorProfileUpdate {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillablePostalCode(v *string) *TutorProfileUpdate {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *TutorProfileUpdate) ClearPostalCode() *TutorProfileUpdate {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetLat sets the "lat" field.
func (_u *TutorProfileUpdate) SetLat(v float64) *TutorProfileUpdate {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillableLat(v *float64) *TutorProfileUpdate {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *TutorProfileUpdate) AddLat(v float64) *TutorProfileUpdate {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *TutorProfileUpdate) ClearLat() *TutorProfileUpdate {
	_u.mutation.ClearLat()
	return _u
}

// SetLon sets the "lon" field.
func (_u *TutorProfileUpdate) SetLon(v float64) *TutorProfileUpdate {
	_u.mutation.ResetLon()
	_u.mutation.SetLon(v)
	return _u
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillableLon(v *float64) *TutorProfileUpdate {
	if v != nil {
		_u.SetLon(*v)
	}
	return _u
}

// AddLon adds value to the "lon" field.
func (_u *TutorProfileUpdate) AddLon(v float64) *TutorProfileUpdate {
	_u.mutation.AddLon(v)
	return _u
}

// ClearLon clears the value of the "lon" field.
func (_u *TutorProfileUpdate) ClearLon() *TutorProfileUpdate {
	_u.mutation.ClearLon()
	return _u
}

// SetMaxDistanceKm sets the "max_distance_km" field.
func (_u *TutorProfileUpdate) SetMaxDistanceKm(v float64) *TutorProfileUpdate {
	_u.mutation.ResetMaxDistanceKm()
	_u.mutation.SetMaxDistanceKm(v)
	return _u
}

// SetNillableMaxDistanceKm sets the "max_distance_km" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillableMaxDistanceKm(v *float64) *TutorProfileUpdate {
	if v != nil {
		_u.SetMaxDistanceKm(*v)
	}
	return _u
}

// AddMaxDistanceKm adds value to the "max_distance_km" field.
func (_u *TutorProfileUpdate) AddMaxDistanceKm(v float64) *TutorProfileUpdate {
	_u.mutation.AddMaxDistanceKm(v)
	return _u
}

// ClearMaxDistanceKm clears the value of the "max_distance_km" field.
func (_u *TutorProfileUpdate) ClearMaxDistanceKm() *TutorProfileUpdate {
	_u.mutation.ClearMaxDistanceKm()
	return _u
}

// SetDmChatID sets the "dm_chat_id" field.
func (_u *TutorProfileUpdate) SetDmChatID(v string) *TutorProfileUpdate {
	_u.mutation.SetDmChatID(v)
	return _u
}

// SetNillableDmChatID sets the "dm_chat_id" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillableDmChatID(v *string) *TutorProfileUpdate {
	if v != nil {
		_u.SetDmChatID(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *TutorProfileUpdate) SetActive(v bool) *TutorProfileUpdate {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *TutorProfileUpdate) SetNillableActive(v *bool) *TutorProfileUpdate {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TutorProfileUpdate) SetUpdatedAt(v time.Time) *TutorProfileUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TutorProfileMutation object of the builder.
func (_u *TutorProfileUpdate) Mutation() *TutorProfileMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *TutorProfileUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorProfileUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *TutorProfileUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorProfileUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TutorProfileUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tutorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TutorProfileUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(tutorprofile.Table, tutorprofile.Columns, sqlgraph.NewFieldSpec(tutorprofile.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Subjects(); ok {
		_spec.SetField(tutorprofile.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tutorprofile.FieldSubjects, value)
		})
	}
	if _u.mutation.SubjectsCleared() {
		_spec.ClearField(tutorprofile.FieldSubjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.Levels(); ok {
		_spec.SetField(tutorprofile.FieldLevels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLevels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tutorprofile.FieldLevels, value)
		})
	}
	if _u.mutation.LevelsCleared() {
		_spec.ClearField(tutorprofile.FieldLevels, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(tutorprofile.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(tutorprofile.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(tutorprofile.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(tutorprofile.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(tutorprofile.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lon(); ok {
		_spec.SetField(tutorprofile.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLon(); ok {
		_spec.AddField(tutorprofile.FieldLon, field.TypeFloat64, value)
	}
	if _u.mutation.LonCleared() {
		_spec.ClearField(tutorprofile.FieldLon, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaxDistanceKm(); ok {
		_spec.SetField(tutorprofile.FieldMaxDistanceKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxDistanceKm(); ok {
		_spec.AddField(tutorprofile.FieldMaxDistanceKm, field.TypeFloat64, value)
	}
	if _u.mutation.MaxDistanceKmCleared() {
		_spec.ClearField(tutorprofile.FieldMaxDistanceKm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DmChatID(); ok {
		_spec.SetField(tutorprofile.FieldDmChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(tutorprofile.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// TutorProfileUpdateOne is the builder for updating a single TutorProfile entity.
type TutorProfileUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *TutorProfileMutation
}

// SetSubjects sets the "subjects" field.
func (_u *TutorProfileUpdateOne) SetSubjects(v []string) *TutorProfileUpdateOne {
	_u.mutation.SetSubjects(v)
	return _u
}

// AppendSubjects appends value to the "subjects" field.
func (_u *TutorProfileUpdateOne) AppendSubjects(v []string) *TutorProfileUpdateOne {
	_u.mutation.AppendSubjects(v)
	return _u
}

// ClearSubjects clears the value of the "subjects" field.
func (_u *TutorProfileUpdateOne) ClearSubjects() *TutorProfileUpdateOne {
	_u.mutation.ClearSubjects()
	return _u
}

// SetLevels sets the "levels" field.
func (_u *TutorProfileUpdateOne) SetLevels(v []string) *TutorProfileUpdateOne {
	_u.mutation.SetLevels(v)
	return _u
}

// AppendLevels appends value to the "levels" field.
func (_u *TutorProfileUpdateOne) AppendLevels(v []string) *TutorProfileUpdateOne {
	_u.mutation.AppendLevels(v)
	return _u
}

// ClearLevels clears the value of the "levels" field.
func (_u *TutorProfileUpdateOne) ClearLevels() *TutorProfileUpdateOne {
	_u.mutation.ClearLevels()
	return _u
}

// SetPostalCode sets the "postal_code" field.
func (_u *TutorProfileUpdateOne) SetPostalCode(v string) *TutorProfileUpdateOne {
	_u.mutation.SetPostalCode(v)
	return _u
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillablePostalCode(v *string) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetPostalCode(*v)
	}
	return _u
}

// ClearPostalCode clears the value of the "postal_code" field.
func (_u *TutorProfileUpdateOne) ClearPostalCode() *TutorProfileUpdateOne {
	_u.mutation.ClearPostalCode()
	return _u
}

// SetLat sets the "lat" field.
func (_u *TutorProfileUpdateOne) SetLat(v float64) *TutorProfileUpdateOne {
	_u.mutation.ResetLat()
	_u.mutation.SetLat(v)
	return _u
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillableLat(v *float64) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetLat(*v)
	}
	return _u
}

// AddLat adds value to the "lat" field.
func (_u *TutorProfileUpdateOne) AddLat(v float64) *TutorProfileUpdateOne {
	_u.mutation.AddLat(v)
	return _u
}

// ClearLat clears the value of the "lat" field.
func (_u *TutorProfileUpdateOne) ClearLat() *TutorProfileUpdateOne {
	_u.mutation.ClearLat()
	return _u
}

// SetLon sets the "lon" field.
func (_u *TutorProfileUpdateOne) SetLon(v float64) *TutorProfileUpdateOne {
	_u.mutation.ResetLon()
	_u.mutation.SetLon(v)
	return _u
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillableLon(v *float64) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetLon(*v)
	}
	return _u
}

// AddLon adds value to the "lon" field.
func (_u *TutorProfileUpdateOne) AddLon(v float64) *TutorProfileUpdateOne {
	_u.mutation.AddLon(v)
	return _u
}

// ClearLon clears the value of the "lon" field.
func (_u *TutorProfileUpdateOne) ClearLon() *TutorProfileUpdateOne {
	_u.mutation.ClearLon()
	return _u
}

// SetMaxDistanceKm sets the "max_distance_km" field.
func (_u *TutorProfileUpdateOne) SetMaxDistanceKm(v float64) *TutorProfileUpdateOne {
	_u.mutation.ResetMaxDistanceKm()
	_u.mutation.SetMaxDistanceKm(v)
	return _u
}

// SetNillableMaxDistanceKm sets the "max_distance_km" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillableMaxDistanceKm(v *float64) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetMaxDistanceKm(*v)
	}
	return _u
}

// AddMaxDistanceKm adds value to the "max_distance_km" field.
func (_u *TutorProfileUpdateOne) AddMaxDistanceKm(v float64) *TutorProfileUpdateOne {
	_u.mutation.AddMaxDistanceKm(v)
	return _u
}

// ClearMaxDistanceKm clears the value of the "max_distance_km" field.
func (_u *TutorProfileUpdateOne) ClearMaxDistanceKm() *TutorProfileUpdateOne {
	_u.mutation.ClearMaxDistanceKm()
	return _u
}

// SetDmChatID sets the "dm_chat_id" field.
func (_u *TutorProfileUpdateOne) SetDmChatID(v string) *TutorProfileUpdateOne {
	_u.mutation.SetDmChatID(v)
	return _u
}

// SetNillableDmChatID sets the "dm_chat_id" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillableDmChatID(v *string) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetDmChatID(*v)
	}
	return _u
}

// SetActive sets the "active" field.
func (_u *TutorProfileUpdateOne) SetActive(v bool) *TutorProfileUpdateOne {
	_u.mutation.SetActive(v)
	return _u
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_u *TutorProfileUpdateOne) SetNillableActive(v *bool) *TutorProfileUpdateOne {
	if v != nil {
		_u.SetActive(*v)
	}
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *TutorProfileUpdateOne) SetUpdatedAt(v time.Time) *TutorProfileUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the TutorProfileMutation object of the builder.
func (_u *TutorProfileUpdateOne) Mutation() *TutorProfileMutation {
	return _u.mutation
}

// Where appends a list predicates to the TutorProfileUpdate builder.
func (_u *TutorProfileUpdateOne) Where(ps ...predicate.TutorProfile) *TutorProfileUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *TutorProfileUpdateOne) Select(field string, fields ...string) *TutorProfileUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated TutorProfile entity.
func (_u *TutorProfileUpdateOne) Save(ctx context.Context) (*TutorProfile, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *TutorProfileUpdateOne) SaveX(ctx context.Context) *TutorProfile {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *TutorProfileUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *TutorProfileUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *TutorProfileUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := tutorprofile.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *TutorProfileUpdateOne) sqlSave(ctx context.Context) (_node *TutorProfile, err error) {
	_spec := sqlgraph.NewUpdateSpec(tutorprofile.Table, tutorprofile.Columns, sqlgraph.NewFieldSpec(tutorprofile.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "TutorProfile.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, tutorprofile.FieldID)
		for _, f := range fields {
			if !tutorprofile.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != tutorprofile.FieldID {
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
	if value, ok := _u.mutation.Subjects(); ok {
		_spec.SetField(tutorprofile.FieldSubjects, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedSubjects(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tutorprofile.FieldSubjects, value)
		})
	}
	if _u.mutation.SubjectsCleared() {
		_spec.ClearField(tutorprofile.FieldSubjects, field.TypeJSON)
	}
	if value, ok := _u.mutation.Levels(); ok {
		_spec.SetField(tutorprofile.FieldLevels, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedLevels(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, tutorprofile.FieldLevels, value)
		})
	}
	if _u.mutation.LevelsCleared() {
		_spec.ClearField(tutorprofile.FieldLevels, field.TypeJSON)
	}
	if value, ok := _u.mutation.PostalCode(); ok {
		_spec.SetField(tutorprofile.FieldPostalCode, field.TypeString, value)
	}
	if _u.mutation.PostalCodeCleared() {
		_spec.ClearField(tutorprofile.FieldPostalCode, field.TypeString)
	}
	if value, ok := _u.mutation.Lat(); ok {
		_spec.SetField(tutorprofile.FieldLat, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLat(); ok {
		_spec.AddField(tutorprofile.FieldLat, field.TypeFloat64, value)
	}
	if _u.mutation.LatCleared() {
		_spec.ClearField(tutorprofile.FieldLat, field.TypeFloat64)
	}
	if value, ok := _u.mutation.Lon(); ok {
		_spec.SetField(tutorprofile.FieldLon, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedLon(); ok {
		_spec.AddField(tutorprofile.FieldLon, field.TypeFloat64, value)
	}
	if _u.mutation.LonCleared() {
		_spec.ClearField(tutorprofile.FieldLon, field.TypeFloat64)
	}
	if value, ok := _u.mutation.MaxDistanceKm(); ok {
		_spec.SetField(tutorprofile.FieldMaxDistanceKm, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedMaxDistanceKm(); ok {
		_spec.AddField(tutorprofile.FieldMaxDistanceKm, field.TypeFloat64, value)
	}
	if _u.mutation.MaxDistanceKmCleared() {
		_spec.ClearField(tutorprofile.FieldMaxDistanceKm, field.TypeFloat64)
	}
	if value, ok := _u.mutation.DmChatID(); ok {
		_spec.SetField(tutorprofile.FieldDmChatID, field.TypeString, value)
	}
	if value, ok := _u.mutation.Active(); ok {
		_spec.SetField(tutorprofile.FieldActive, field.TypeBool, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorprofile.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &TutorProfile{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{tutorprofile.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
