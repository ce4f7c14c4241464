// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/tutorprofile"
)

// TutorProfileCreate is the builder for creating a TutorProfile entity.
type TutorProfileCreate struct {
	config
	mutation *TutorProfileMutation
	hooks    []Hook
}

// SetTutorID sets the "tutor_id" field.
func (_c *TutorProfileCreate) SetTutorID(v string) *TutorProfileCreate {
	_c.mutation.SetTutorID(v)
	return _c
}

// SetSubjects sets the "subjects" field.
func (_c *TutorProfileCreate) SetSubjects(v []string) *TutorProfileCreate {
	_c.mutation.SetSubjects(v)
	return _c
}

// SetLevels sets the "levels" field.
func (_c *TutorProfileCreate) SetLevels(v []string) *TutorProfileCreate {
	_c.mutation.SetLevels(v)
	return _c
}

// SetPostalCode sets the "postal_code" field.
func (_c *TutorProfileCreate) SetPostalCode(v string) *TutorProfileCreate {
	_c.mutation.SetPostalCode(v)
	return _c
}

// SetNillablePostalCode sets the "postal_code" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillablePostalCode(v *string) *TutorProfileCreate {
	if v != nil {
		_c.SetPostalCode(*v)
	}
	return _c
}

// SetLat sets the "lat" field.
func (_c *TutorProfileCreate) SetLat(v float64) *TutorProfileCreate {
	_c.mutation.SetLat(v)
	return _c
}

// SetNillableLat sets the "lat" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableLat(v *float64) *TutorProfileCreate {
	if v != nil {
		_c.SetLat(*v)
	}
	return _c
}

// SetLon sets the "lon" field.
func (_c *TutorProfileCreate) SetLon(v float64) *TutorProfileCreate {
	_c.mutation.SetLon(v)
	return _c
}

// SetNillableLon sets the "lon" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableLon(v *float64) *TutorProfileCreate {
	if v != nil {
		_c.SetLon(*v)
	}
	return _c
}

// SetMaxDistanceKm sets the "max_distance_km" field.
func (_c *TutorProfileCreate) SetMaxDistanceKm(v float64) *TutorProfileCreate {
	_c.mutation.SetMaxDistanceKm(v)
	return _c
}

// SetNillableMaxDistanceKm sets the "max_distance_km" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableMaxDistanceKm(v *float64) *TutorProfileCreate {
	if v != nil {
		_c.SetMaxDistanceKm(*v)
	}
	return _c
}

// SetDmChatID sets the "dm_chat_id" field.
func (_c *TutorProfileCreate) SetDmChatID(v string) *TutorProfileCreate {
	_c.mutation.SetDmChatID(v)
	return _c
}

// SetActive sets the "active" field.
func (_c *TutorProfileCreate) SetActive(v bool) *TutorProfileCreate {
	_c.mutation.SetActive(v)
	return _c
}

// SetNillableActive sets the "active" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableActive(v *bool) *TutorProfileCreate {
	if v != nil {
		_c.SetActive(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *TutorProfileCreate) SetCreatedAt(v time.Time) *TutorProfileCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableCreatedAt(v *time.Time) *TutorProfileCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *TutorProfileCreate) SetUpdatedAt(v time.Time) *TutorProfileCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *TutorProfileCreate) SetNillableUpdatedAt(v *time.Time) *TutorProfileCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *TutorProfileCreate) SetID(v string) *TutorProfileCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the TutorProfileMutation object of the builder.
func (_c *TutorProfileCreate) Mutation() *TutorProfileMutation {
	return _c.mutation
}

// Save creates the TutorProfile in the database.
func (_c *TutorProfileCreate) Save(ctx context.Context) (*TutorProfile, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *TutorProfileCreate) SaveX(ctx context.Context) *TutorProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorProfileCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorProfileCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *TutorProfileCreate) defaults() {
	if _, ok := _c.mutation.Active(); !ok {
		v := tutorprofile.DefaultActive
		_c.mutation.SetActive(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := tutorprofile.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := tutorprofile.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *TutorProfileCreate) check() error {
	if _, ok := _c.mutation.TutorID(); !ok {
		return &ValidationError{Name: "tutor_id", err: errors.New(`ent: missing required field "TutorProfile.tutor_id"`)}
	}
	if _, ok := _c.mutation.DmChatID(); !ok {
		return &ValidationError{Name: "dm_chat_id", err: errors.New(`ent: missing required field "TutorProfile.dm_chat_id"`)}
	}
	if _, ok := _c.mutation.Active(); !ok {
		return &ValidationError{Name: "active", err: errors.New(`ent: missing required field "TutorProfile.active"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "TutorProfile.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "TutorProfile.updated_at"`)}
	}
	return nil
}

func (_c *TutorProfileCreate) sqlSave(ctx context.Context) (*TutorProfile, error) {
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
			return nil, fmt.Errorf("unexpected TutorProfile.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *TutorProfileCreate) createSpec() (*TutorProfile, *sqlgraph.CreateSpec) {
	var (
		_node = &TutorProfile{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(tutorprofile.Table, sqlgraph.NewFieldSpec(tutorprofile.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TutorID(); ok {
		_spec.SetField(tutorprofile.FieldTutorID, field.TypeString, value)
		_node.TutorID = value
	}
	if value, ok := _c.mutation.Subjects(); ok {
		_spec.SetField(tutorprofile.FieldSubjects, field.TypeJSON, value)
		_node.Subjects = value
	}
	if value, ok := _c.mutation.Levels(); ok {
		_spec.SetField(tutorprofile.FieldLevels, field.TypeJSON, value)
		_node.Levels = value
	}
	if value, ok := _c.mutation.PostalCode(); ok {
		_spec.SetField(tutorprofile.FieldPostalCode, field.TypeString, value)
		_node.PostalCode = &value
	}
	if value, ok := _c.mutation.Lat(); ok {
		_spec.SetField(tutorprofile.FieldLat, field.TypeFloat64, value)
		_node.Lat = &value
	}
	if value, ok := _c.mutation.Lon(); ok {
		_spec.SetField(tutorprofile.FieldLon, field.TypeFloat64, value)
		_node.Lon = &value
	}
	if value, ok := _c.mutation.MaxDistanceKm(); ok {
		_spec.SetField(tutorprofile.FieldMaxDistanceKm, field.TypeFloat64, value)
		_node.MaxDistanceKm = &value
	}
	if value, ok := _c.mutation.DmChatID(); ok {
		_spec.SetField(tutorprofile.FieldDmChatID, field.TypeString, value)
		_node.DmChatID = value
	}
	if value, ok := _c.mutation.Active(); ok {
		_spec.SetField(tutorprofile.FieldActive, field.TypeBool, value)
		_node.Active = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(tutorprofile.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(tutorprofile.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// TutorProfileCreateBulk is the builder for creating many TutorProfile entities in bulk.
type TutorProfileCreateBulk struct {
	config
	err      error
	builders []*TutorProfileCreate
}

// Save creates the TutorProfile entities in the database.
func (_c *TutorProfileCreateBulk) Save(ctx context.Context) ([]*TutorProfile, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*TutorProfile, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TutorProfileMutation)
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
func (_c *TutorProfileCreateBulk) SaveX(ctx context.Context) []*TutorProfile {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *TutorProfileCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *TutorProfileCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
