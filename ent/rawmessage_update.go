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
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/ent/predicate"
	"github.com/tuitionlab/assignflow/ent/rawmessage"
)

// RawMessageUpdate is the builder for updating RawMessage entities.
type RawMessageUpdate struct {
	config
	hooks    []Hook
	mutation *RawMessageMutation
}

// Where appends a list predicates to the RawMessageUpdate builder.
func (_u *RawMessageUpdate) Where(ps ...predicate.RawMessage) *RawMessageUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetText sets the "text" field.
func (_u *RawMessageUpdate) SetText(v string) *RawMessageUpdate {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *RawMessageUpdate) SetNillableText(v *string) *RawMessageUpdate {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSourceEditedAt sets the "source_edited_at" field.
func (_u *RawMessageUpdate) SetSourceEditedAt(v time.Time) *RawMessageUpdate {
	_u.mutation.SetSourceEditedAt(v)
	return _u
}

// SetNillableSourceEditedAt sets the "source_edited_at" field if the given value is not nil.
func (_u *RawMessageUpdate) SetNillableSourceEditedAt(v *time.Time) *RawMessageUpdate {
	if v != nil {
		_u.SetSourceEditedAt(*v)
	}
	return _u
}

// ClearSourceEditedAt clears the value of the "source_edited_at" field.
func (_u *RawMessageUpdate) ClearSourceEditedAt() *RawMessageUpdate {
	_u.mutation.ClearSourceEditedAt()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *RawMessageUpdate) SetPayload(v map[string]interface{}) *RawMessageUpdate {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *RawMessageUpdate) ClearPayload() *RawMessageUpdate {
	_u.mutation.ClearPayload()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RawMessageUpdate) SetDeletedAt(v time.Time) *RawMessageUpdate {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RawMessageUpdate) SetNillableDeletedAt(v *time.Time) *RawMessageUpdate {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RawMessageUpdate) ClearDeletedAt() *RawMessageUpdate {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *RawMessageUpdate) AddJobIDs(ids ...string) *RawMessageUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *RawMessageUpdate) AddJobs(v ...*ExtractionJob) *RawMessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the RawMessageMutation object of the builder.
func (_u *RawMessageUpdate) Mutation() *RawMessageMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *RawMessageUpdate) ClearJobs() *RawMessageUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *RawMessageUpdate) RemoveJobIDs(ids ...string) *RawMessageUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *RawMessageUpdate) RemoveJobs(v ...*ExtractionJob) *RawMessageUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *RawMessageUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawMessageUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *RawMessageUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawMessageUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RawMessageUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	_spec := sqlgraph.NewUpdateSpec(rawmessage.Table, rawmessage.Columns, sqlgraph.NewFieldSpec(rawmessage.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(rawmessage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceEditedAt(); ok {
		_spec.SetField(rawmessage.FieldSourceEditedAt, field.TypeTime, value)
	}
	if _u.mutation.SourceEditedAtCleared() {
		_spec.ClearField(rawmessage.FieldSourceEditedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(rawmessage.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(rawmessage.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(rawmessage.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(rawmessage.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawmessage.JobsTable,
			Columns: []string{rawmessage.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawmessage.JobsTable,
			Columns: []string{rawmessage.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawmessage.JobsTable,
			Columns: []string{rawmessage.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// RawMessageUpdateOne is the builder for updating a single RawMessage entity.
type RawMessageUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RawMessageMutation
}

// SetText sets the "text" field.
func (_u *RawMessageUpdateOne) SetText(v string) *RawMessageUpdateOne {
	_u.mutation.SetText(v)
	return _u
}

// SetNillableText sets the "text" field if the given value is not nil.
func (_u *RawMessageUpdateOne) SetNillableText(v *string) *RawMessageUpdateOne {
	if v != nil {
		_u.SetText(*v)
	}
	return _u
}

// SetSourceEditedAt sets the "source_edited_at" field.
func (_u *RawMessageUpdateOne) SetSourceEditedAt(v time.Time) *RawMessageUpdateOne {
	_u.mutation.SetSourceEditedAt(v)
	return _u
}

// SetNillableSourceEditedAt sets the "source_edited_at" field if the given value is not nil.
func (_u *RawMessageUpdateOne) SetNillableSourceEditedAt(v *time.Time) *RawMessageUpdateOne {
	if v != nil {
		_u.SetSourceEditedAt(*v)
	}
	return _u
}

// ClearSourceEditedAt clears the value of the "source_edited_at" field.
func (_u *RawMessageUpdateOne) ClearSourceEditedAt() *RawMessageUpdateOne {
	_u.mutation.ClearSourceEditedAt()
	return _u
}

// SetPayload sets the "payload" field.
func (_u *RawMessageUpdateOne) SetPayload(v map[string]interface{}) *RawMessageUpdateOne {
	_u.mutation.SetPayload(v)
	return _u
}

// ClearPayload clears the value of the "payload" field.
func (_u *RawMessageUpdateOne) ClearPayload() *RawMessageUpdateOne {
	_u.mutation.ClearPayload()
	return _u
}

// SetDeletedAt sets the "deleted_at" field.
func (_u *RawMessageUpdateOne) SetDeletedAt(v time.Time) *RawMessageUpdateOne {
	_u.mutation.SetDeletedAt(v)
	return _u
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_u *RawMessageUpdateOne) SetNillableDeletedAt(v *time.Time) *RawMessageUpdateOne {
	if v != nil {
		_u.SetDeletedAt(*v)
	}
	return _u
}

// ClearDeletedAt clears the value of the "deleted_at" field.
func (_u *RawMessageUpdateOne) ClearDeletedAt() *RawMessageUpdateOne {
	_u.mutation.ClearDeletedAt()
	return _u
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_u *RawMessageUpdateOne) AddJobIDs(ids ...string) *RawMessageUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_u *RawMessageUpdateOne) AddJobs(v ...*ExtractionJob) *RawMessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the RawMessageMutation object of the builder.
func (_u *RawMessageUpdateOne) Mutation() *RawMessageMutation {
	return _u.mutation
}

// ClearJobs clears all "jobs" edges to the ExtractionJob entity.
func (_u *RawMessageUpdateOne) ClearJobs() *RawMessageUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractionJob entities by IDs.
func (_u *RawMessageUpdateOne) RemoveJobIDs(ids ...string) *RawMessageUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractionJob entities.
func (_u *RawMessageUpdateOne) RemoveJobs(v ...*ExtractionJob) *RawMessageUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the RawMessageUpdate builder.
func (_u *RawMessageUpdateOne) Where(ps ...predicate.RawMessage) *RawMessageUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *RawMessageUpdateOne) Select(field string, fields ...string) *RawMessageUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated RawMessage entity.
func (_u *RawMessageUpdateOne) Save(ctx context.Context) (*RawMessage, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *RawMessageUpdateOne) SaveX(ctx context.Context) *RawMessage {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *RawMessageUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *RawMessageUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

func (_u *RawMessageUpdateOne) sqlSave(ctx context.Context) (_node *RawMessage, err error) {
	_spec := sqlgraph.NewUpdateSpec(rawmessage.Table, rawmessage.Columns, sqlgraph.NewFieldSpec(rawmessage.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RawMessage.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, rawmessage.FieldID)
		for _, f := range fields {
			if !rawmessage.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != rawmessage.FieldID {
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
	if value, ok := _u.mutation.Text(); ok {
		_spec.SetField(rawmessage.FieldText, field.TypeString, value)
	}
	if value, ok := _u.mutation.SourceEditedAt(); ok {
		_spec.SetField(rawmessage.FieldSourceEditedAt, field.TypeTime, value)
	}
	if _u.mutation.SourceEditedAtCleared() {
		_spec.ClearField(rawmessage.FieldSourceEditedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.Payload(); ok {
		_spec.SetField(rawmessage.FieldPayload, field.TypeJSON, value)
	}
	if _u.mutation.PayloadCleared() {
		_spec.ClearField(rawmessage.FieldPayload, field.TypeJSON)
	}
	if value, ok := _u.mutation.DeletedAt(); ok {
		_spec.SetField(rawmessage.FieldDeletedAt, field.TypeTime, value)
	}
	if _u.mutation.DeletedAtCleared() {
		_spec.ClearField(rawmessage.FieldDeletedAt, field.TypeTime)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawmessage.JobsTable,
			Columns: []string{rawmessage.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeString),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawmessage.JobsTable,
			Columns: []string{rawmessage.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   rawmessage.JobsTable,
			Columns: []string{rawmessage.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &RawMessage{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{rawmessage.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
