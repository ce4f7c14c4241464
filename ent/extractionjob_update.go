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
)

// ExtractionJobUpdate is the builder for updating ExtractionJob entities.
type ExtractionJobUpdate struct {
	config
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdate) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdate) SetStatus(v extractionjob.Status) *ExtractionJobUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableStatus(v *extractionjob.Status) *ExtractionJobUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *ExtractionJobUpdate) SetAttempt(v int) *ExtractionJobUpdate {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableAttempt(v *int) *ExtractionJobUpdate {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *ExtractionJobUpdate) AddAttempt(v int) *ExtractionJobUpdate {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *ExtractionJobUpdate) SetProcessingStartedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableProcessingStartedAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *ExtractionJobUpdate) ClearProcessingStartedAt() *ExtractionJobUpdate {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *ExtractionJobUpdate) SetAvailableAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableAvailableAt(v *time.Time) *ExtractionJobUpdate {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// SetMeta sets the "meta" field.
func (_u *ExtractionJobUpdate) SetMeta(v map[string]interface{}) *ExtractionJobUpdate {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *ExtractionJobUpdate) ClearMeta() *ExtractionJobUpdate {
	_u.mutation.ClearMeta()
	return _u
}

// SetErrorJSON sets the "error_json" field.
func (_u *ExtractionJobUpdate) SetErrorJSON(v map[string]interface{}) *ExtractionJobUpdate {
	_u.mutation.SetErrorJSON(v)
	return _u
}

// ClearErrorJSON clears the value of the "error_json" field.
func (_u *ExtractionJobUpdate) ClearErrorJSON() *ExtractionJobUpdate {
	_u.mutation.ClearErrorJSON()
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *ExtractionJobUpdate) SetLlmModel(v string) *ExtractionJobUpdate {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *ExtractionJobUpdate) SetNillableLlmModel(v *string) *ExtractionJobUpdate {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// ClearLlmModel clears the value of the "llm_model" field.
func (_u *ExtractionJobUpdate) ClearLlmModel() *ExtractionJobUpdate {
	_u.mutation.ClearLlmModel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionJobUpdate) SetUpdatedAt(v time.Time) *ExtractionJobUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdate) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *ExtractionJobUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *ExtractionJobUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionJobUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _u.mutation.RawCleared() && len(_u.mutation.RawIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionJob.raw"`)
	}
	return nil
}

func (_u *ExtractionJobUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(extractionjob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(extractionjob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(extractionjob.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(extractionjob.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(extractionjob.FieldAvailableAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(extractionjob.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(extractionjob.FieldMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorJSON(); ok {
		_spec.SetField(extractionjob.FieldErrorJSON, field.TypeJSON, value)
	}
	if _u.mutation.ErrorJSONCleared() {
		_spec.ClearField(extractionjob.FieldErrorJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(extractionjob.FieldLlmModel, field.TypeString, value)
	}
	if _u.mutation.LlmModelCleared() {
		_spec.ClearField(extractionjob.FieldLlmModel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// ExtractionJobUpdateOne is the builder for updating a single ExtractionJob entity.
type ExtractionJobUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *ExtractionJobMutation
}

// SetStatus sets the "status" field.
func (_u *ExtractionJobUpdateOne) SetStatus(v extractionjob.Status) *ExtractionJobUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableStatus(v *extractionjob.Status) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetAttempt sets the "attempt" field.
func (_u *ExtractionJobUpdateOne) SetAttempt(v int) *ExtractionJobUpdateOne {
	_u.mutation.ResetAttempt()
	_u.mutation.SetAttempt(v)
	return _u
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableAttempt(v *int) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetAttempt(*v)
	}
	return _u
}

// AddAttempt adds value to the "attempt" field.
func (_u *ExtractionJobUpdateOne) AddAttempt(v int) *ExtractionJobUpdateOne {
	_u.mutation.AddAttempt(v)
	return _u
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_u *ExtractionJobUpdateOne) SetProcessingStartedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetProcessingStartedAt(v)
	return _u
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableProcessingStartedAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetProcessingStartedAt(*v)
	}
	return _u
}

// ClearProcessingStartedAt clears the value of the "processing_started_at" field.
func (_u *ExtractionJobUpdateOne) ClearProcessingStartedAt() *ExtractionJobUpdateOne {
	_u.mutation.ClearProcessingStartedAt()
	return _u
}

// SetAvailableAt sets the "available_at" field.
func (_u *ExtractionJobUpdateOne) SetAvailableAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetAvailableAt(v)
	return _u
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableAvailableAt(v *time.Time) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetAvailableAt(*v)
	}
	return _u
}

// SetMeta sets the "meta" field.
func (_u *ExtractionJobUpdateOne) SetMeta(v map[string]interface{}) *ExtractionJobUpdateOne {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *ExtractionJobUpdateOne) ClearMeta() *ExtractionJobUpdateOne {
	_u.mutation.ClearMeta()
	return _u
}

// SetErrorJSON sets the "error_json" field.
func (_u *ExtractionJobUpdateOne) SetErrorJSON(v map[string]interface{}) *ExtractionJobUpdateOne {
	_u.mutation.SetErrorJSON(v)
	return _u
}

// ClearErrorJSON clears the value of the "error_json" field.
func (_u *ExtractionJobUpdateOne) ClearErrorJSON() *ExtractionJobUpdateOne {
	_u.mutation.ClearErrorJSON()
	return _u
}

// SetLlmModel sets the "llm_model" field.
func (_u *ExtractionJobUpdateOne) SetLlmModel(v string) *ExtractionJobUpdateOne {
	_u.mutation.SetLlmModel(v)
	return _u
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_u *ExtractionJobUpdateOne) SetNillableLlmModel(v *string) *ExtractionJobUpdateOne {
	if v != nil {
		_u.SetLlmModel(*v)
	}
	return _u
}

// ClearLlmModel clears the value of the "llm_model" field.
func (_u *ExtractionJobUpdateOne) ClearLlmModel() *ExtractionJobUpdateOne {
	_u.mutation.ClearLlmModel()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *ExtractionJobUpdateOne) SetUpdatedAt(v time.Time) *ExtractionJobUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_u *ExtractionJobUpdateOne) Mutation() *ExtractionJobMutation {
	return _u.mutation
}

// Where appends a list predicates to the ExtractionJobUpdate builder.
func (_u *ExtractionJobUpdateOne) Where(ps ...predicate.ExtractionJob) *ExtractionJobUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *ExtractionJobUpdateOne) Select(field string, fields ...string) *ExtractionJobUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated ExtractionJob entity.
func (_u *ExtractionJobUpdateOne) Save(ctx context.Context) (*ExtractionJob, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) SaveX(ctx context.Context) *ExtractionJob {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *ExtractionJobUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *ExtractionJobUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *ExtractionJobUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := extractionjob.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *ExtractionJobUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _u.mutation.RawCleared() && len(_u.mutation.RawIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "ExtractionJob.raw"`)
	}
	return nil
}

func (_u *ExtractionJobUpdateOne) sqlSave(ctx context.Context) (_node *ExtractionJob, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(extractionjob.Table, extractionjob.Columns, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "ExtractionJob.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, extractionjob.FieldID)
		for _, f := range fields {
			if !extractionjob.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != extractionjob.FieldID {
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
		_spec.SetField(extractionjob.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.Attempt(); ok {
		_spec.SetField(extractionjob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedAttempt(); ok {
		_spec.AddField(extractionjob.FieldAttempt, field.TypeInt, value)
	}
	if value, ok := _u.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(extractionjob.FieldProcessingStartedAt, field.TypeTime, value)
	}
	if _u.mutation.ProcessingStartedAtCleared() {
		_spec.ClearField(extractionjob.FieldProcessingStartedAt, field.TypeTime)
	}
	if value, ok := _u.mutation.AvailableAt(); ok {
		_spec.SetField(extractionjob.FieldAvailableAt, field.TypeTime, value)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(extractionjob.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(extractionjob.FieldMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.ErrorJSON(); ok {
		_spec.SetField(extractionjob.FieldErrorJSON, field.TypeJSON, value)
	}
	if _u.mutation.ErrorJSONCleared() {
		_spec.ClearField(extractionjob.FieldErrorJSON, field.TypeJSON)
	}
	if value, ok := _u.mutation.LlmModel(); ok {
		_spec.SetField(extractionjob.FieldLlmModel, field.TypeString, value)
	}
	if _u.mutation.LlmModelCleared() {
		_spec.ClearField(extractionjob.FieldLlmModel, field.TypeString)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionjob.FieldUpdatedAt, field.TypeTime, value)
	}
	_node = &ExtractionJob{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{extractionjob.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
