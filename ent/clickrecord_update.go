// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/clickrecord"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// ClickRecordUpdate is the builder for updating ClickRecord entities.
type ClickRecordUpdate struct {
	config
	hooks    []Hook
	mutation *ClickRecordMutation
}

// Where appends a list predicates to the ClickRecordUpdate builder.
func (_u *ClickRecordUpdate) Where(ps ...predicate.ClickRecord) *ClickRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetClickCount sets the "click_count" field.
func (_u *ClickRecordUpdate) SetClickCount(v int) *ClickRecordUpdate {
	_u.mutation.ResetClickCount()
	_u.mutation.SetClickCount(v)
	return _u
}

// SetNillableClickCount sets the "click_count" field if the given value is not nil.
func (_u *ClickRecordUpdate) SetNillableClickCount(v *int) *ClickRecordUpdate {
	if v != nil {
		_u.SetClickCount(*v)
	}
	return _u
}

// AddClickCount adds value to the "click_count" field.
func (_u *ClickRecordUpdate) AddClickCount(v int) *ClickRecordUpdate {
	_u.mutation.AddClickCount(v)
	return _u
}

// SetOriginalURL sets the "original_url" field.
func (_u *ClickRecordUpdate) SetOriginalURL(v string) *ClickRecordUpdate {
	_u.mutation.SetOriginalURL(v)
	return _u
}

// SetNillableOriginalURL sets the "original_url" field if the given value is not nil.
func (_u *ClickRecordUpdate) SetNillableOriginalURL(v *string) *ClickRecordUpdate {
	if v != nil {
		_u.SetOriginalURL(*v)
	}
	return _u
}

// ClearOriginalURL clears the value of the "original_url" field.
func (_u *ClickRecordUpdate) ClearOriginalURL() *ClickRecordUpdate {
	_u.mutation.ClearOriginalURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClickRecordUpdate) SetUpdatedAt(v time.Time) *ClickRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ClickRecordMutation object of the builder.
func (_u *ClickRecordUpdate) Mutation() *ClickRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ClickRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClickRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ClickRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClickRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClickRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clickrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ClickRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(clickrecord.Table, clickrecord.Columns, sqlgraph.NewFieldSpec(clickrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.ClickCount(); ok {
		_spec.SetField(clickrecord.FieldClickCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClickCount(); ok {
		_spec.AddField(clickrecord.FieldClickCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OriginalURL(); ok {
		_spec.SetField(clickrecord.FieldOriginalURL, field.TypeString, value)
	}
	if _u.mutation.OriginalURLCleared() {
		_spec.ClearField(clickrecord.FieldOriginalURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clickrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clickrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ClickRecordUpdateOne is the builder for updating a single ClickRecord entity.
type ClickRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ClickRecordMutation
}

// SetClickCount sets the "click_count" field.
func (_u *ClickRecordUpdateOne) SetClickCount(v int) *ClickRecordUpdateOne {
	_u.mutation.ResetClickCount()
	_u.mutation.SetClickCount(v)
	return _u
}

// SetNillableClickCount sets the "click_count" field if the given value is not nil.
func (_u *ClickRecordUpdateOne) SetNillableClickCount(v *int) *ClickRecordUpdateOne {
	if v != nil {
		_u.SetClickCount(*v)
	}
	return _u
}

// AddClickCount adds value to the "click_count" field.
func (_u *ClickRecordUpdateOne) AddClickCount(v int) *ClickRecordUpdateOne {
	_u.mutation.AddClickCount(v)
	return _u
}

// SetOriginalURL sets the "original_url" field.
func (_u *ClickRecordUpdateOne) SetOriginalURL(v string) *ClickRecordUpdateOne {
	_u.mutation.SetOriginalURL(v)
	return _u
}

// SetNillableOriginalURL sets the "original_url" field if the given value is not nil.
func (_u *ClickRecordUpdateOne) SetNillableOriginalURL(v *string) *ClickRecordUpdateOne {
	if v != nil {
		_u.SetOriginalURL(*v)
	}
	return _u
}

// ClearOriginalURL clears the value of the "original_url" field.
func (_u *ClickRecordUpdateOne) ClearOriginalURL() *ClickRecordUpdateOne {
	_u.mutation.ClearOriginalURL()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ClickRecordUpdateOne) SetUpdatedAt(v time.Time) *ClickRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ClickRecordMutation object of the builder.
func (_u *ClickRecordUpdateOne) Mutation() *ClickRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the ClickRecordUpdate builder.
func (_u *ClickRecordUpdateOne) Where(ps ...predicate.ClickRecord) *ClickRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ClickRecordUpdateOne) Select(field string, fields ...string) *ClickRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ClickRecord entity.
func (_u *ClickRecordUpdateOne) Save(ctx context.Context) (*ClickRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ClickRecordUpdateOne) SaveX(ctx context.Context) *ClickRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ClickRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ClickRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ClickRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := clickrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *ClickRecordUpdateOne) sqlSave(ctx context.Context) (_node *ClickRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(clickrecord.Table, clickrecord.Columns, sqlgraph.NewFieldSpec(clickrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ClickRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, clickrecord.FieldID)
		for _, f := range fields {
			if !clickrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != clickrecord.FieldID {
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
	if value, ok := _u.mutation.ClickCount(); ok {
		_spec.SetField(clickrecord.FieldClickCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClickCount(); ok {
		_spec.AddField(clickrecord.FieldClickCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.OriginalURL(); ok {
		_spec.SetField(clickrecord.FieldOriginalURL, field.TypeString, value)
	}
	if _u.mutation.OriginalURLCleared() {
		_spec.ClearField(clickrecord.FieldOriginalURL, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(clickrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ClickRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{clickrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
