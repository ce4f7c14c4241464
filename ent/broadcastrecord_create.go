// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/broadcastrecord"
)

// BroadcastRecordCreate is the builder for creating a BroadcastRecord entity.
type BroadcastRecordCreate struct {
	config
	mutation *BroadcastRecordMutation
	hooks    []Hook
}

// SetExternalID sets the "external_id" field.
func (_c *BroadcastRecordCreate) SetExternalID(v string) *BroadcastRecordCreate {
	_c.mutation.SetExternalID(v)
	return _c
}

// SetContent sets the "content" field.
func (_c *BroadcastRecordCreate) SetContent(v string) *BroadcastRecordCreate {
	_c.mutation.SetContent(v)
	return _c
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_c *BroadcastRecordCreate) SetNillableContent(v *string) *BroadcastRecordCreate {
	if v != nil {
		_c.SetContent(*v)
	}
	return _c
}

// SetChatID sets the "chat_id" field.
func (_c *BroadcastRecordCreate) SetChatID(v string) *BroadcastRecordCreate {
	_c.mutation.SetChatID(v)
	return _c
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_c *BroadcastRecordCreate) SetNillableChatID(v *string) *BroadcastRecordCreate {
	if v != nil {
		_c.SetChatID(*v)
	}
	return _c
}

// SetTransportMessageID sets the "transport_message_id" field.
func (_c *BroadcastRecordCreate) SetTransportMessageID(v string) *BroadcastRecordCreate {
	_c.mutation.SetTransportMessageID(v)
	return _c
}

// SetNillableTransportMessageID sets the "transport_message_id" field if the given value is not nil.
func (_c *BroadcastRecordCreate) SetNillableTransportMessageID(v *string) *BroadcastRecordCreate {
	if v != nil {
		_c.SetTransportMessageID(*v)
	}
	return _c
}

// SetClickBucket sets the "click_bucket" field.
func (_c *BroadcastRecordCreate) SetClickBucket(v int) *BroadcastRecordCreate {
	_c.mutation.SetClickBucket(v)
	return _c
}

// SetNillableClickBucket sets the "click_bucket" field if the given value is not nil.
func (_c *BroadcastRecordCreate) SetNillableClickBucket(v *int) *BroadcastRecordCreate {
	if v != nil {
		_c.SetClickBucket(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *BroadcastRecordCreate) SetCreatedAt(v time.Time) *BroadcastRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *BroadcastRecordCreate) SetNillableCreatedAt(v *time.Time) *BroadcastRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *BroadcastRecordCreate) SetUpdatedAt(v time.Time) *BroadcastRecordCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *BroadcastRecordCreate) SetNillableUpdatedAt(v *time.Time) *BroadcastRecordCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *BroadcastRecordCreate) SetID(v string) *BroadcastRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the BroadcastRecordMutation object of the builder.
func (_c *BroadcastRecordCreate) Mutation() *BroadcastRecordMutation {
	return _c.mutation
}

// Save creates the BroadcastRecord in the database.
func (_c *BroadcastRecordCreate) Save(ctx context.Context) (*BroadcastRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *BroadcastRecordCreate) SaveX(ctx context.Context) *BroadcastRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BroadcastRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BroadcastRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *BroadcastRecordCreate) defaults() {
	if _, ok := _c.mutation.ClickBucket(); !ok {
		v := broadcastrecord.DefaultClickBucket
		_c.mutation.SetClickBucket(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := broadcastrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := broadcastrecord.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *BroadcastRecordCreate) check() error {
	if _, ok := _c.mutation.ExternalID(); !ok {
		return &ValidationError{Name: "external_id", err: errors.New(`ent: missing required field "BroadcastRecord.external_id"`)}
	}
	if _, ok := _c.mutation.ClickBucket(); !ok {
		return &ValidationError{Name: "click_bucket", err: errors.New(`ent: missing required field "BroadcastRecord.click_bucket"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "BroadcastRecord.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "BroadcastRecord.updated_at"`)}
	}
	return nil
}

func (_c *BroadcastRecordCreate) sqlSave(ctx context.Context) (*BroadcastRecord, error) {
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
			return nil, fmt.Errorf("unexpected BroadcastRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *BroadcastRecordCreate) createSpec() (*BroadcastRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &BroadcastRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(broadcastrecord.Table, sqlgraph.NewFieldSpec(broadcastrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.ExternalID(); ok {
		_spec.SetField(broadcastrecord.FieldExternalID, field.TypeString, value)
		_node.ExternalID = value
	}
	if value, ok := _c.mutation.Content(); ok {
		_spec.SetField(broadcastrecord.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := _c.mutation.ChatID(); ok {
		_spec.SetField(broadcastrecord.FieldChatID, field.TypeString, value)
		_node.ChatID = &value
	}
	if value, ok := _c.mutation.TransportMessageID(); ok {
		_spec.SetField(broadcastrecord.FieldTransportMessageID, field.TypeString, value)
		_node.TransportMessageID = &value
	}
	if value, ok := _c.mutation.ClickBucket(); ok {
		_spec.SetField(broadcastrecord.FieldClickBucket, field.TypeInt, value)
		_node.ClickBucket = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(broadcastrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(broadcastrecord.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	return _node, _spec
}

// BroadcastRecordCreateBulk is the builder for creating many BroadcastRecord entities in bulk.
type BroadcastRecordCreateBulk struct {
	config
	err      error
	builders []*BroadcastRecordCreate
}

// Save creates the BroadcastRecord entities in the database.
func (_c *BroadcastRecordCreateBulk) Save(ctx context.Context) ([]*BroadcastRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*BroadcastRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*BroadcastRecordMutation)
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
func (_c *BroadcastRecordCreateBulk) SaveX(ctx context.Context) []*BroadcastRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *BroadcastRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *BroadcastRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
