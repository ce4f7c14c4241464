// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/broadcastrecord"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// BroadcastRecordDelete is the builder for deleting a BroadcastRecord entity.
type BroadcastRecordDelete struct {
	config
	hooks    []Hook
	mutation *BroadcastRecordMutation
}

// Where appends a list predicates to the BroadcastRecordDelete builder.
func (_d *BroadcastRecordDelete) Where(ps ...predicate.BroadcastRecord) *BroadcastRecordDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *BroadcastRecordDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BroadcastRecordDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *BroadcastRecordDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(broadcastrecord.Table, sqlgraph.NewFieldSpec(broadcastrecord.FieldID, field.TypeString))
	if ps := _d.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, _d.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	_d.mutation.done = true
	return affected, err
}

// BroadcastRecordDeleteOne is the builder for deleting a single BroadcastRecord entity.
type BroadcastRecordDeleteOne struct {
	_d *BroadcastRecordDelete
}

// Where appends a list predicates to the BroadcastRecordDelete builder.
func (_d *BroadcastRecordDeleteOne) Where(ps ...predicate.BroadcastRecord) *BroadcastRecordDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *BroadcastRecordDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{broadcastrecord.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *BroadcastRecordDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
