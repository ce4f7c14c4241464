// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/rating"
)

// RatingCreate is the builder for creating a Rating entity.
type RatingCreate struct {
	config
	mutation *RatingMutation
	hooks    []Hook
}

// SetTutorID sets the "tutor_id" field.
func (_c *RatingCreate) SetTutorID(v string) *RatingCreate {
	_c.mutation.SetTutorID(v)
	return _c
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *RatingCreate) SetAssignmentID(v string) *RatingCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetScore sets the "score" field.
func (_c *RatingCreate) SetScore(v float64) *RatingCreate {
	_c.mutation.SetScore(v)
	return _c
}

// SetDistanceKmAtSend sets the "distance_km_at_send" field.
func (_c *RatingCreate) SetDistanceKmAtSend(v float64) *RatingCreate {
	_c.mutation.SetDistanceKmAtSend(v)
	return _c
}

// SetNillableDistanceKmAtSend sets the "distance_km_at_send" field if the given value is not nil.
func (_c *RatingCreate) SetNillableDistanceKmAtSend(v *float64) *RatingCreate {
	if v != nil {
		_c.SetDistanceKmAtSend(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RatingCreate) SetCreatedAt(v time.Time) *RatingCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RatingCreate) SetNillableCreatedAt(v *time.Time) *RatingCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RatingCreate) SetID(v string) *RatingCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the RatingMutation object of the builder.
func (_c *RatingCreate) Mutation() *RatingMutation {
	return _c.mutation
}

// Save creates the Rating in the database.
func (_c *RatingCreate) Save(ctx context.Context) (*Rating, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RatingCreate) SaveX(ctx context.Context) *Rating {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RatingCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RatingCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RatingCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rating.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RatingCreate) check() error {
	if _, ok := _c.mutation.TutorID(); !ok {
		return &ValidationError{Name: "tutor_id", err: errors.New(`ent: missing required field "Rating.tutor_id"`)}
	}
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`ent: missing required field "Rating.assignment_id"`)}
	}
	if _, ok := _c.mutation.Score(); !ok {
		return &ValidationError{Name: "score", err: errors.New(`ent: missing required field "Rating.score"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Rating.created_at"`)}
	}
	return nil
}

func (_c *RatingCreate) sqlSave(ctx context.Context) (*Rating, error) {
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
			return nil, fmt.Errorf("unexpected Rating.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RatingCreate) createSpec() (*Rating, *sqlgraph.CreateSpec) {
	var (
		_node = &Rating{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rating.Table, sqlgraph.NewFieldSpec(rating.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TutorID(); ok {
		_spec.SetField(rating.FieldTutorID, field.TypeString, value)
		_node.TutorID = value
	}
	if value, ok := _c.mutation.AssignmentID(); ok {
		_spec.SetField(rating.FieldAssignmentID, field.TypeString, value)
		_node.AssignmentID = value
	}
	if value, ok := _c.mutation.Score(); ok {
		_spec.SetField(rating.FieldScore, field.TypeFloat64, value)
		_node.Score = value
	}
	if value, ok := _c.mutation.DistanceKmAtSend(); ok {
		_spec.SetField(rating.FieldDistanceKmAtSend, field.TypeFloat64, value)
		_node.DistanceKmAtSend = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rating.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// RatingCreateBulk is the builder for creating many Rating entities in bulk.
type RatingCreateBulk struct {
	config
	err      error
	builders []*RatingCreate
}

// Save creates the Rating entities in the database.
func (_c *RatingCreateBulk) Save(ctx context.Context) ([]*Rating, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Rating, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RatingMutation)
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
func (_c *RatingCreateBulk) SaveX(ctx context.Context) []*Rating {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RatingCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RatingCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
