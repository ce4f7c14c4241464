// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/duplicategroup"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// DuplicateGroupDelete is the builder for deleting a DuplicateGroup entity.
type DuplicateGroupDelete struct {
	config
	hooks    []Hook
	mutation *DuplicateGroupMutation
}

// Where appends a list predicates to the DuplicateGroupDelete builder.
func (_d *DuplicateGroupDelete) Where(ps ...predicate.DuplicateGroup) *DuplicateGroupDelete {
	_d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (_d *DuplicateGroupDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, _d.sqlExec, _d.mutation, _d.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DuplicateGroupDelete) ExecX(ctx context.Context) int {
	n, err := _d.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (_d *DuplicateGroupDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(duplicategroup.Table, sqlgraph.NewFieldSpec(duplicategroup.FieldID, field.TypeString))
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

// DuplicateGroupDeleteOne is the builder for deleting a single DuplicateGroup entity.
type DuplicateGroupDeleteOne struct {
	_d *DuplicateGroupDelete
}

// Where appends a list predicates to the DuplicateGroupDelete builder.
func (_d *DuplicateGroupDeleteOne) Where(ps ...predicate.DuplicateGroup) *DuplicateGroupDeleteOne {
	_d._d.mutation.Where(ps...)
	return _d
}

// Exec executes the deletion query.
func (_d *DuplicateGroupDeleteOne) Exec(ctx context.Context) error {
	n, err := _d._d.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{duplicategroup.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (_d *DuplicateGroupDeleteOne) ExecX(ctx context.Context) {
	if err := _d.Exec(ctx); err != nil {
		panic(err)
	}
}
