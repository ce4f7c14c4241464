// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/clickrecord"
)

// ClickRecordCreate is the builder for creating a ClickRecord entity.
type ClickRecordCreate struct {
	config
	mutation *ClickRecordMutation
	hooks    []Hook
}

// SetExternalID sets the "external_id" field.
func (_c *ClickRecordCreate) SetExternalID(v string) *ClickRecordCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetClickCount sets the "click_count" field.
func (_c *ClickRecordCreate) SetClickCount(v int) *ClickRecordCreate {
	_c.mutation.SetClickCount(v)
	return _c
}

// SetNillableClickCount sets the "click_count" field if the given value is not nil.
func (_c *ClickRecordCreate) SetNillableClickCount(v *int) *ClickRecordCreate {
	if v != nil {
		_c.SetClickCount(*v)
	}
	return _c
}

// SetOriginalURL sets the "original_url" field.
func (_c *ClickRecordCreate) SetOriginalURL(v string) *ClickRecordCreate {
	_c.mutation.SetOriginalURL(v)
	return _c
}

// SetNillableOriginalURL sets the "original_url" field if the given value is not nil.
func (_c *ClickRecordCreate) SetNillableOriginalURL(v *string) *ClickRecordCreate {
	if v != nil {
		_c.SetOriginalURL(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ClickRecordCreate) SetCreatedAt(v time.Time) *ClickRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ClickRecordCreate) SetNillableCreatedAt(v *time.Time) *ClickRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ClickRecordCreate) SetUpdatedAt(v time.Time) *ClickRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ClickRecordCreate) SetNillableUpdatedAt(v *time.Time) *ClickRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ClickRecordCreate) SetID(v string) *ClickRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the ClickRecordMutation object of the builder.
func (_c *ClickRecordCreate) Mutation() *ClickRecordMutation {
	return _c.mutation
}

// Save creates the ClickRecord in the database.
func (_c *ClickRecordCreate) Save(ctx context.Context) (*ClickRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ClickRecordCreate) SaveX(ctx context.Context) *ClickRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClickRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClickRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ClickRecordCreate) defaults() {
	if _, ok := _c.mutation.ClickCount(); !ok {
		v := clickrecord.DefaultClickCount
		_c.mutation.SetClickCount(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := clickrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := clickrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ClickRecordCreate) check() error {
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "ClickRecord.external_id"`)}
	}
	if _, ok := _c.mutation.ClickCount(); !ok {
		return &ValidationError{Name: "click_count", err: errors.New(`ent: missing required field "ClickRecord.click_count"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ClickRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ClickRecord.updated_at"`)}
	}
	return nil
}

func (_c *ClickRecordCreate) sqlSave(ctx context.Context) (*ClickRecord, error) {
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
			return nil, fmt.Errorf("unexpected ClickRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ClickRecordCreate) createSpec() (*ClickRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &ClickRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(clickrecord.Table, sqlgraph.NewFieldSpec(clickrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(clickrecord.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.ClickCount(); ok {
		_spec.SetField(clickrecord.FieldClickCount, field.TypeInt, value)
		_node.ClickCount = value
	}
	if value, ok := _c.mutation.OriginalURL(); ok {
		_spec.SetField(clickrecord.FieldOriginalURL, field.TypeString, value)
		_node.OriginalURL = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(clickrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(clickrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// ClickRecordCreateBulk is the builder for creating many ClickRecord entities in bulk.
type ClickRecordCreateBulk struct {
	config
	err      error
	builders []*ClickRecordCreate
}

// Save creates the ClickRecord entities in the database.
func (_c *ClickRecordCreateBulk) Save(ctx context.Context) ([]*ClickRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ClickRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ClickRecordMutation)
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
func (_c *ClickRecordCreateBulk) SaveX(ctx context.Context) []*ClickRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ClickRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ClickRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
