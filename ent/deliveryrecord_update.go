// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/deliveryrecord"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// DeliveryRecordUpdate is the builder for updating DeliveryRecord entities.
type DeliveryRecordUpdate struct {
	config
	hooks    []Hook
	mutation *DeliveryRecordMutation
}

// Where appends a list predicates to the DeliveryRecordUpdate builder.
func (_u *DeliveryRecordUpdate) Where(ps ...predicate.DeliveryRecord) *DeliveryRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DeliveryRecordUpdate) SetStatus(v deliveryrecord.Status) *DeliveryRecordUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeliveryRecordUpdate) SetNillableStatus(v *deliveryrecord.Status) *DeliveryRecordUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTransportMessageID sets the "transport_message_id" field.
func (_u *DeliveryRecordUpdate) SetTransportMessageID(v string) *DeliveryRecordUpdate {
	_u.mutation.SetTransportMessageID(v)
	return _u
}

// SetNillableTransportMessageID sets the "transport_message_id" field if the given value is not nil.
func (_u *DeliveryRecordUpdate) SetNillableTransportMessageID(v *string) *DeliveryRecordUpdate {
	if v != nil {
		_u.SetTransportMessageID(*v)
	}
	return _u
}

// ClearTransportMessageID clears the value of the "transport_message_id" field.
func (_u *DeliveryRecordUpdate) ClearTransportMessageID() *DeliveryRecordUpdate {
	_u.mutation.ClearTransportMessageID()
	return _u
}

// Mutation returns the DeliveryRecordMutation object of the builder.
func (_u *DeliveryRecordUpdate) Mutation() *DeliveryRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DeliveryRecordUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliveryRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DeliveryRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliveryRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliveryRecordUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deliveryrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeliveryRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeliveryRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliveryrecord.Table, deliveryrecord.Columns, sqlgraph.NewFieldSpec(deliveryrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deliveryrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TransportMessageID(); ok {
		_spec.SetField(deliveryrecord.FieldTransportMessageID, field.TypeString, value)
	}
	if _u.mutation.TransportMessageIDCleared() {
		_spec.ClearField(deliveryrecord.FieldTransportMessageID, field.TypeString)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliveryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DeliveryRecordUpdateOne is the builder for updating a single DeliveryRecord entity.
type DeliveryRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DeliveryRecordMutation
}

// SetStatus sets the "status" field.
func (_u *DeliveryRecordUpdateOne) SetStatus(v deliveryrecord.Status) *DeliveryRecordUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DeliveryRecordUpdateOne) SetNillableStatus(v *deliveryrecord.Status) *DeliveryRecordUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetTransportMessageID sets the "transport_message_id" field.
func (_u *DeliveryRecordUpdateOne) SetTransportMessageID(v string) *DeliveryRecordUpdateOne {
	_u.mutation.SetTransportMessageID(v)
	return _u
}

// SetNillableTransportMessageID sets the "transport_message_id" field if the given value is not nil.
func (_u *DeliveryRecordUpdateOne) SetNillableTransportMessageID(v *string) *DeliveryRecordUpdateOne {
	if v != nil {
		_u.SetTransportMessageID(*v)
	}
	return _u
}

// ClearTransportMessageID clears the value of the "transport_message_id" field.
func (_u *DeliveryRecordUpdateOne) ClearTransportMessageID() *DeliveryRecordUpdateOne {
	_u.mutation.ClearTransportMessageID()
	return _u
}

// Mutation returns the DeliveryRecordMutation object of the builder.
func (_u *DeliveryRecordUpdateOne) Mutation() *DeliveryRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the DeliveryRecordUpdate builder.
func (_u *DeliveryRecordUpdateOne) Where(ps ...predicate.DeliveryRecord) *DeliveryRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DeliveryRecordUpdateOne) Select(field string, fields ...string) *DeliveryRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DeliveryRecord entity.
func (_u *DeliveryRecordUpdateOne) Save(ctx context.Context) (*DeliveryRecord, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DeliveryRecordUpdateOne) SaveX(ctx context.Context) *DeliveryRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DeliveryRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DeliveryRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DeliveryRecordUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := deliveryrecord.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DeliveryRecord.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DeliveryRecordUpdateOne) sqlSave(ctx context.Context) (_node *DeliveryRecord, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(deliveryrecord.Table, deliveryrecord.Columns, sqlgraph.NewFieldSpec(deliveryrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DeliveryRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, deliveryrecord.FieldID)
		for _, f := range fields {
			if !deliveryrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != deliveryrecord.FieldID {
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
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(deliveryrecord.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.TransportMessageID(); ok {
		_spec.SetField(deliveryrecord.FieldTransportMessageID, field.TypeString, value)
	}
	if _u.mutation.TransportMessageIDCleared() {
		_spec.ClearField(deliveryrecord.FieldTransportMessageID, field.TypeString)
	}
	_node = &DeliveryRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{deliveryrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
