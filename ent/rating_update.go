// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/predicate"
	"github.com/tuitionlab/assignflow/ent/rating"
)

// RatingUpdate is the builder for updating Rating entities.
type RatingUpdate struct {
	config
	hooks    []Hook
	mutation *RatingMutation
}

// Where appends a list predicates to the RatingUpdate builder.
func (_u *RatingUpdate) Where(ps ...predicate.Rating) *RatingUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetScore sets the "score" field.
func (_u *RatingUpdate) SetScore(v float64) *RatingUpdate {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableScore(v *float64) *RatingUpdate {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RatingUpdate) AddScore(v float64) *RatingUpdate {
	_u.mutation.AddScore(v)
	return _u
}

// SetDistanceKmAtSend sets the "distance_km_at_send" field.
func (_u *RatingUpdate) SetDistanceKmAtSend(v float64) *RatingUpdate {
	_u.mutation.ResetDistanceKmAtSend()
	_u.mutation.SetDistanceKmAtSend(v)
	return _u
}

// SetNillableDistanceKmAtSend sets the "distance_km_at_send" field if the given value is not nil.
func (_u *RatingUpdate) SetNillableDistanceKmAtSend(v *float64) *RatingUpdate {
	if v != nil {
		_u.SetDistanceKmAtSend(*v)
	}
	return _u
}

// AddDistanceKmAtSend adds value to the "distance_km_at_send" field.
func (_u *RatingUpdate) AddDistanceKmAtSend(v float64) *RatingUpdate {
	_u.mutation.AddDistanceKmAtSend(v)
	return _u
}

// ClearDistanceKmAtSend clears the value of the "distance_km_at_send" field.
func (_u *RatingUpdate) ClearDistanceKmAtSend() *RatingUpdate {
	_u.mutation.ClearDistanceKmAtSend()
	return _u
}

// Mutation returns the RatingMutation object of the builder.
func (_u *RatingUpdate) Mutation() *RatingMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RatingUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RatingUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RatingUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RatingUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RatingUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(rating.Table, rating.Columns, sqlgraph.NewFieldSpec(rating.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(rating.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(rating.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DistanceKmAtSend(); ok {
		_spec.SetField(rating.FieldDistanceKmAtSend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistanceKmAtSend(); ok {
		_spec.AddField(rating.FieldDistanceKmAtSend, field.TypeFloat64, value)
	}
	if _u.mutation.DistanceKmAtSendCleared() {
		_spec.ClearField(rating.FieldDistanceKmAtSend, field.TypeFloat64)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RatingUpdateOne is the builder for updating a single Rating entity.
type RatingUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RatingMutation
}

// SetScore sets the "score" field.
func (_u *RatingUpdateOne) SetScore(v float64) *RatingUpdateOne {
	_u.mutation.ResetScore()
	_u.mutation.SetScore(v)
	return _u
}

// SetNillableScore sets the "score" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableScore(v *float64) *RatingUpdateOne {
	if v != nil {
		_u.SetScore(*v)
	}
	return _u
}

// AddScore adds value to the "score" field.
func (_u *RatingUpdateOne) AddScore(v float64) *RatingUpdateOne {
	_u.mutation.AddScore(v)
	return _u
}

// SetDistanceKmAtSend sets the "distance_km_at_send" field.
func (_u *RatingUpdateOne) SetDistanceKmAtSend(v float64) *RatingUpdateOne {
	_u.mutation.ResetDistanceKmAtSend()
	_u.mutation.SetDistanceKmAtSend(v)
	return _u
}

// SetNillableDistanceKmAtSend sets the "distance_km_at_send" field if the given value is not nil.
func (_u *RatingUpdateOne) SetNillableDistanceKmAtSend(v *float64) *RatingUpdateOne {
	if v != nil {
		_u.SetDistanceKmAtSend(*v)
	}
	return _u
}

// AddDistanceKmAtSend adds value to the "distance_km_at_send" field.
func (_u *RatingUpdateOne) AddDistanceKmAtSend(v float64) *RatingUpdateOne {
	_u.mutation.AddDistanceKmAtSend(v)
	return _u
}

// ClearDistanceKmAtSend clears the value of the "distance_km_at_send" field.
func (_u *RatingUpdateOne) ClearDistanceKmAtSend() *RatingUpdateOne {
	_u.mutation.ClearDistanceKmAtSend()
	return _u
}

// Mutation returns the RatingMutation object of the builder.
func (_u *RatingUpdateOne) Mutation() *RatingMutation {
	return _u.mutation
}

// Where appends a list predicates to the RatingUpdate builder.
func (_u *RatingUpdateOne) Where(ps ...predicate.Rating) *RatingUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RatingUpdateOne) Select(field string, fields ...string) *RatingUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Rating entity.
func (_u *RatingUpdateOne) Save(ctx context.Context) (*Rating, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RatingUpdateOne) SaveX(ctx context.Context) *Rating {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RatingUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RatingUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RatingUpdateOne) sqlSave(ctx context.Context) (_node *Rating, err error) {
	_spec := sqlgraph.NewUpdateSpec(rating.Table, rating.Columns, sqlgraph.NewFieldSpec(rating.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Rating.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rating.FieldID)
		for _, f := range fields {
			if !rating.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rating.FieldID {
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
	if value, ok := _u.mutation.Score(); ok {
		_spec.SetField(rating.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedScore(); ok {
		_spec.AddField(rating.FieldScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.DistanceKmAtSend(); ok {
		_spec.SetField(rating.FieldDistanceKmAtSend, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedDistanceKmAtSend(); ok {
		_spec.AddField(rating.FieldDistanceKmAtSend, field.TypeFloat64, value)
	}
	if _u.mutation.DistanceKmAtSendCleared() {
		_spec.ClearField(rating.FieldDistanceKmAtSend, field.TypeFloat64)
	}
	_node = &Rating{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rating.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
