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
	"github.com/tuitionlab/assignflow/ent/broadcastrecord"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// BroadcastRecordUpdate is the builder for updating BroadcastRecord entities.
type BroadcastRecordUpdate struct {
	config
	hooks    []Hook
	mutation *BroadcastRecordMutation
}

// Where appends a list predicates to the BroadcastRecordUpdate builder.
func (_u *BroadcastRecordUpdate) Where(ps ...predicate.BroadcastRecord) *BroadcastRecordUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetContent sets the "content" field.
func (_u *BroadcastRecordUpdate) SetContent(v string) *BroadcastRecordUpdate {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *BroadcastRecordUpdate) SetNillableContent(v *string) *BroadcastRecordUpdate {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *BroadcastRecordUpdate) ClearContent() *BroadcastRecordUpdate {
	_u.mutation.ClearContent()
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *BroadcastRecordUpdate) SetChatID(v string) *BroadcastRecordUpdate {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *BroadcastRecordUpdate) SetNillableChatID(v *string) *BroadcastRecordUpdate {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// ClearChatID clears the value of the "chat_id" field.
func (_u *BroadcastRecordUpdate) ClearChatID() *BroadcastRecordUpdate {
	_u.mutation.ClearChatID()
	return _u
}

// SetTransportMessageID sets the "transport_message_id" field.
func (_u *BroadcastRecordUpdate) SetTransportMessageID(v string) *BroadcastRecordUpdate {
	_u.mutation.SetTransportMessageID(v)
	return _u
}

// SetNillableTransportMessageID sets the "transport_message_id" field if the given value is not nil.
func (_u *BroadcastRecordUpdate) SetNillableTransportMessageID(v *string) *BroadcastRecordUpdate {
	if v != nil {
		_u.SetTransportMessageID(*v)
	}
	return _u
}

// ClearTransportMessageID clears the value of the "transport_message_id" field.
func (_u *BroadcastRecordUpdate) ClearTransportMessageID() *BroadcastRecordUpdate {
	_u.mutation.ClearTransportMessageID()
	return _u
}

// SetClickBucket sets the "click_bucket" field.
func (_u *BroadcastRecordUpdate) SetClickBucket(v int) *BroadcastRecordUpdate {
	_u.mutation.ResetClickBucket()
	_u.mutation.SetClickBucket(v)
	return _u
}

// SetNillableClickBucket sets the "click_bucket" field if the given value is not nil.
func (_u *BroadcastRecordUpdate) SetNillableClickBucket(v *int) *BroadcastRecordUpdate {
	if v != nil {
		_u.SetClickBucket(*v)
	}
	return _u
}

// AddClickBucket adds value to the "click_bucket" field.
func (_u *BroadcastRecordUpdate) AddClickBucket(v int) *BroadcastRecordUpdate {
	_u.mutation.AddClickBucket(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BroadcastRecordUpdate) SetUpdatedAt(v time.Time) *BroadcastRecordUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BroadcastRecordMutation object of the builder.
func (_u *BroadcastRecordUpdate) Mutation() *BroadcastRecordMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *BroadcastRecordUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BroadcastRecordUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *BroadcastRecordUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BroadcastRecordUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BroadcastRecordUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := broadcastrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BroadcastRecordUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(broadcastrecord.Table, broadcastrecord.Columns, sqlgraph.NewFieldSpec(broadcastrecord.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(broadcastrecord.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(broadcastrecord.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(broadcastrecord.FieldChatID, field.TypeString, value)
	}
	if _u.mutation.ChatIDCleared() {
		_spec.ClearField(broadcastrecord.FieldChatID, field.TypeString)
	}
	if value, ok := _u.mutation.TransportMessageID(); ok {
		_spec.SetField(broadcastrecord.FieldTransportMessageID, field.TypeString, value)
	}
	if _u.mutation.TransportMessageIDCleared() {
		_spec.ClearField(broadcastrecord.FieldTransportMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.ClickBucket(); ok {
		_spec.SetField(broadcastrecord.FieldClickBucket, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClickBucket(); ok {
		_spec.AddField(broadcastrecord.FieldClickBucket, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(broadcastrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{broadcastrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// BroadcastRecordUpdateOne is the builder for updating a single BroadcastRecord entity.
type BroadcastRecordUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *BroadcastRecordMutation
}

// SetContent sets the "content" field.
func (_u *BroadcastRecordUpdateOne) SetContent(v string) *BroadcastRecordUpdateOne {
	_u.mutation.SetContent(v)
	return _u
}

// SetNillableContent sets the "content" field if the given value is not nil.
func (_u *BroadcastRecordUpdateOne) SetNillableContent(v *string) *BroadcastRecordUpdateOne {
	if v != nil {
		_u.SetContent(*v)
	}
	return _u
}

// ClearContent clears the value of the "content" field.
func (_u *BroadcastRecordUpdateOne) ClearContent() *BroadcastRecordUpdateOne {
	_u.mutation.ClearContent()
	return _u
}

// SetChatID sets the "chat_id" field.
func (_u *BroadcastRecordUpdateOne) SetChatID(v string) *BroadcastRecordUpdateOne {
	_u.mutation.SetChatID(v)
	return _u
}

// SetNillableChatID sets the "chat_id" field if the given value is not nil.
func (_u *BroadcastRecordUpdateOne) SetNillableChatID(v *string) *BroadcastRecordUpdateOne {
	if v != nil {
		_u.SetChatID(*v)
	}
	return _u
}

// ClearChatID clears the value of the "chat_id" field.
func (_u *BroadcastRecordUpdateOne) ClearChatID() *BroadcastRecordUpdateOne {
	_u.mutation.ClearChatID()
	return _u
}

// SetTransportMessageID sets the "transport_message_id" field.
func (_u *BroadcastRecordUpdateOne) SetTransportMessageID(v string) *BroadcastRecordUpdateOne {
	_u.mutation.SetTransportMessageID(v)
	return _u
}

// SetNillableTransportMessageID sets the "transport_message_id" field if the given value is not nil.
func (_u *BroadcastRecordUpdateOne) SetNillableTransportMessageID(v *string) *BroadcastRecordUpdateOne {
	if v != nil {
		_u.SetTransportMessageID(*v)
	}
	return _u
}

// ClearTransportMessageID clears the value of the "transport_message_id" field.
func (_u *BroadcastRecordUpdateOne) ClearTransportMessageID() *BroadcastRecordUpdateOne {
	_u.mutation.ClearTransportMessageID()
	return _u
}

// SetClickBucket sets the "click_bucket" field.
func (_u *BroadcastRecordUpdateOne) SetClickBucket(v int) *BroadcastRecordUpdateOne {
	_u.mutation.ResetClickBucket()
	_u.mutation.SetClickBucket(v)
	return _u
}

// SetNillableClickBucket sets the "click_bucket" field if the given value is not nil.
func (_u *BroadcastRecordUpdateOne) SetNillableClickBucket(v *int) *BroadcastRecordUpdateOne {
	if v != nil {
		_u.SetClickBucket(*v)
	}
	return _u
}

// AddClickBucket adds value to the "click_bucket" field.
func (_u *BroadcastRecordUpdateOne) AddClickBucket(v int) *BroadcastRecordUpdateOne {
	_u.mutation.AddClickBucket(v)
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *BroadcastRecordUpdateOne) SetUpdatedAt(v time.Time) *BroadcastRecordUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the BroadcastRecordMutation object of the builder.
func (_u *BroadcastRecordUpdateOne) Mutation() *BroadcastRecordMutation {
	return _u.mutation
}

// Where appends a list predicates to the BroadcastRecordUpdate builder.
func (_u *BroadcastRecordUpdateOne) Where(ps ...predicate.BroadcastRecord) *BroadcastRecordUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *BroadcastRecordUpdateOne) Select(field string, fields ...string) *BroadcastRecordUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated BroadcastRecord entity.
func (_u *BroadcastRecordUpdateOne) Save(ctx context.Context) (*BroadcastRecord, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *BroadcastRecordUpdateOne) SaveX(ctx context.Context) *BroadcastRecord {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *BroadcastRecordUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *BroadcastRecordUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *BroadcastRecordUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := broadcastrecord.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

func (_u *BroadcastRecordUpdateOne) sqlSave(ctx context.Context) (_node *BroadcastRecord, err error) {
	_spec := sqlgraph.NewUpdateSpec(broadcastrecord.Table, broadcastrecord.Columns, sqlgraph.NewFieldSpec(broadcastrecord.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "BroadcastRecord.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, broadcastrecord.FieldID)
		for _, f := range fields {
			if !broadcastrecord.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != broadcastrecord.FieldID {
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
	if value, ok := _u.mutation.Content(); ok {
		_spec.SetField(broadcastrecord.FieldContent, field.TypeString, value)
	}
	if _u.mutation.ContentCleared() {
		_spec.ClearField(broadcastrecord.FieldContent, field.TypeString)
	}
	if value, ok := _u.mutation.ChatID(); ok {
		_spec.SetField(broadcastrecord.FieldChatID, field.TypeString, value)
	}
	if _u.mutation.ChatIDCleared() {
		_spec.ClearField(broadcastrecord.FieldChatID, field.TypeString)
	}
	if value, ok := _u.mutation.TransportMessageID(); ok {
		_spec.SetField(broadcastrecord.FieldTransportMessageID, field.TypeString, value)
	}
	if _u.mutation.TransportMessageIDCleared() {
		_spec.ClearField(broadcastrecord.FieldTransportMessageID, field.TypeString)
	}
	if value, ok := _u.mutation.ClickBucket(); ok {
		_spec.SetField(broadcastrecord.FieldClickBucket, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedClickBucket(); ok {
		_spec.AddField(broadcastrecord.FieldClickBucket, field.TypeInt, value)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(broadcastrecord.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &BroadcastRecord{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{broadcastrecord.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
