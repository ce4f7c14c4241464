// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/deliveryrecord"
)

// DeliveryRecordCreate is the builder for creating a DeliveryRecord entity.
type DeliveryRecordCreate struct {
	config
	mutation *DeliveryRecordMutation
	hooks    []Hook
}

// SetTutorID sets the "tutor_id" field.
func (_c *DeliveryRecordCreate) SetTutorID(v string) *DeliveryRecordCreate {
	_c.mutation.SetTutorID(v)
	return _c
}

// SetAssignmentID sets the "assignment_id" field.
func (_c *DeliveryRecordCreate) SetAssignmentID(v string) *DeliveryRecordCreate {
	_c.mutation.SetAssignmentID(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *DeliveryRecordCreate) SetStatus(v deliveryrecord.Status) *DeliveryRecordCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DeliveryRecordCreate) SetNillableStatus(v *deliveryrecord.Status) *DeliveryRecordCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetTransportMessageID sets the "transport_message_id" field.
func (_c *DeliveryRecordCreate) SetTransportMessageID(v string) *DeliveryRecordCreate {
	_c.mutation.SetTransportMessageID(v)
	return _c
}

// SetNillableTransportMessageID sets the "transport_message_id" field if the given value is not nil.
func (_c *DeliveryRecordCreate) SetNillableTransportMessageID(v *string) *DeliveryRecordCreate {
	if v != nil {
		_c.SetTransportMessageID(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DeliveryRecordCreate) SetCreatedAt(v time.Time) *DeliveryRecordCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DeliveryRecordCreate) SetNillableCreatedAt(v *time.Time) *DeliveryRecordCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DeliveryRecordCreate) SetID(v string) *DeliveryRecordCreate {
	_c.mutation.SetID(v)
	return _c
}

// Mutation returns the DeliveryRecordMutation object of the builder.
func (_c *DeliveryRecordCreate) Mutation() *DeliveryRecordMutation {
	return _c.mutation
}

// Save creates the DeliveryRecord in the database.
func (_c *DeliveryRecordCreate) Save(ctx context.Context) (*DeliveryRecord, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DeliveryRecordCreate) SaveX(ctx context.Context) *DeliveryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryRecordCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryRecordCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DeliveryRecordCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := deliveryrecord.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := deliveryrecord.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DeliveryRecordCreate) check() error {
	if _, ok := _c.mutation.TutorID(); !ok {
		return &ValidationError{Name: "tutor_id", err: errors.New(`ent: missing required field "DeliveryRecord.tutor_id"`)}
	}
	if _, ok := _c.mutation.AssignmentID(); !ok {
		return &ValidationError{Name: "assignment_id", err: errors.New(`ent: missing required field "DeliveryRecord.assignment_id"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DeliveryRecord.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := deliveryrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeliveryRecord.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DeliveryRecord.created_at"`)}
	}
	return nil
}

func (_c *DeliveryRecordCreate) sqlSave(ctx context.Context) (*DeliveryRecord, error) {
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
			return nil, fmt.Errorf("unexpected DeliveryRecord.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DeliveryRecordCreate) createSpec() (*DeliveryRecord, *sqlgraph.CreateSpec) {
	var (
		_node = &DeliveryRecord{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(deliveryrecord.Table, sqlgraph.NewFieldSpec(deliveryrecord.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.TutorID(); ok {
		_spec.SetField(deliveryrecord.FieldTutorID, field.TypeString, value)
		_node.TutorID = value
	}
	if value, ok := _c.mutation.AssignmentID(); ok {
		_spec.SetField(deliveryrecord.FieldAssignmentID, field.TypeString, value)
		_node.AssignmentID = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(deliveryrecord.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.TransportMessageID(); ok {
		_spec.SetField(deliveryrecord.FieldTransportMessageID, field.TypeString, value)
		_node.TransportMessageID = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(deliveryrecord.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// DeliveryRecordCreateBulk is the builder for creating many DeliveryRecord entities in bulk.
type DeliveryRecordCreateBulk struct {
	config
	err      error
	builders []*DeliveryRecordCreate
}

// Save creates the DeliveryRecord entities in the database.
func (_c *DeliveryRecordCreateBulk) Save(ctx context.Context) ([]*DeliveryRecord, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DeliveryRecord, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DeliveryRecordMutation)
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
func (_c *DeliveryRecordCreateBulk) SaveX(ctx context.Context) []*DeliveryRecord {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DeliveryRecordCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DeliveryRecordCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
