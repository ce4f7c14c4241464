// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/ent/rawmessage"
)

// ExtractionJobCreate is the builder for creating a ExtractionJob entity.
type ExtractionJobCreate struct {
	config
	mutation *ExtractionJobMutation
	hooks    []Hook
}

// SetRawID sets the "raw_id" field.
func (_c *ExtractionJobCreate) SetRawID(v string) *ExtractionJobCreate {
	_c.mutation.SetRawID(v)
	return _c
}

// SetPipelineVersion sets the "pipeline_version" field.
func (_c *ExtractionJobCreate) SetPipelineVersion(v string) *ExtractionJobCreate {
	_c.mutation.SetPipelineVersion(v)
	return _c
}

// SetStatus sets the "status" field.
func (_c *ExtractionJobCreate) SetStatus(v extractionjob.Status) *ExtractionJobCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableStatus(v *extractionjob.Status) *ExtractionJobCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetAttempt sets the "attempt" field.
func (_c *ExtractionJobCreate) SetAttempt(v int) *ExtractionJobCreate {
	_c.mutation.SetAttempt(v)
	return _c
}

// SetNillableAttempt sets the "attempt" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableAttempt(v *int) *ExtractionJobCreate {
	if v != nil {
		_c.SetAttempt(*v)
	}
	return _c
}

// SetProcessingStartedAt sets the "processing_started_at" field.
func (_c *ExtractionJobCreate) SetProcessingStartedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetProcessingStartedAt(v)
	return _c
}

// SetNillableProcessingStartedAt sets the "processing_started_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableProcessingStartedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetProcessingStartedAt(*v)
	}
	return _c
}

// SetAvailableAt sets the "available_at" field.
func (_c *ExtractionJobCreate) SetAvailableAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetAvailableAt(v)
	return _c
}

// SetNillableAvailableAt sets the "available_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableAvailableAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetAvailableAt(*v)
	}
	return _c
}

// SetMeta sets the "meta" field.
func (_c *ExtractionJobCreate) SetMeta(v map[string]interface{}) *ExtractionJobCreate {
	_c.mutation.SetMeta(v)
	return _c
}

// SetErrorJSON sets the "error_json" field.
func (_c *ExtractionJobCreate) SetErrorJSON(v map[string]interface{}) *ExtractionJobCreate {
	_c.mutation.SetErrorJSON(v)
	return _c
}

// SetLlmModel sets the "llm_model" field.
func (_c *ExtractionJobCreate) SetLlmModel(v string) *ExtractionJobCreate {
	_c.mutation.SetLlmModel(v)
	return _c
}

// SetNillableLlmModel sets the "llm_model" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableLlmModel(v *string) *ExtractionJobCreate {
	if v != nil {
		_c.SetLlmModel(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *ExtractionJobCreate) SetCreatedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableCreatedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *ExtractionJobCreate) SetUpdatedAt(v time.Time) *ExtractionJobCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *ExtractionJobCreate) SetNillableUpdatedAt(v *time.Time) *ExtractionJobCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *ExtractionJobCreate) SetID(v string) *ExtractionJobCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetRaw sets the "raw" edge to the RawMessage entity.
func (_c *ExtractionJobCreate) SetRaw(v *RawMessage) *ExtractionJobCreate {
	return _c.SetRawID(v.ID)
}

// Mutation returns the ExtractionJobMutation object of the builder.
func (_c *ExtractionJobCreate) Mutation() *ExtractionJobMutation {
	return _c.mutation
}

// Save creates the ExtractionJob in the database.
func (_c *ExtractionJobCreate) Save(ctx context.Context) (*ExtractionJob, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *ExtractionJobCreate) SaveX(ctx context.Context) *ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *ExtractionJobCreate) defaults() {
	if _, ok := _c.mutation.Status(); !ok {
		v := extractionjob.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		v := extractionjob.DefaultAttempt
		_c.mutation.SetAttempt(v)
	}
	if _, ok := _c.mutation.AvailableAt(); !ok {
		v := extractionjob.DefaultAvailableAt()
		_c.mutation.SetAvailableAt(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := extractionjob.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := extractionjob.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *ExtractionJobCreate) check() error {
	if _, ok := _c.mutation.RawID(); !ok {
		return &ValidationError{Name: "raw_id", err: errors.New(`ent: missing required field "ExtractionJob.raw_id"`)}
	}
	if _, ok := _c.mutation.PipelineVersion(); !ok {
		return &ValidationError{Name: "pipeline_version", err: errors.New(`ent: missing required field "ExtractionJob.pipeline_version"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "ExtractionJob.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := extractionjob.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "ExtractionJob.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.Attempt(); !ok {
		return &ValidationError{Name: "attempt", err: errors.New(`ent: missing required field "ExtractionJob.attempt"`)}
	}
	if _, ok := _c.mutation.AvailableAt(); !ok {
		return &ValidationError{Name: "available_at", err: errors.New(`ent: missing required field "ExtractionJob.available_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "ExtractionJob.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "ExtractionJob.updated_at"`)}
	}
	if len(_c.mutation.RawIDs()) == 0 {
		return &ValidationError{Name: "raw", err: errors.New(`ent: missing required edge "ExtractionJob.raw"`)}
	}
	return nil
}

func (_c *ExtractionJobCreate) sqlSave(ctx context.Context) (*ExtractionJob, error) {
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
			return nil, fmt.Errorf("unexpected ExtractionJob.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *ExtractionJobCreate) createSpec() (*ExtractionJob, *sqlgraph.CreateSpec) {
	var (
		_node = &ExtractionJob{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(extractionjob.Table, sqlgraph.NewFieldSpec(extractionjob.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PipelineVersion(); ok {
		_spec.SetField(extractionjob.FieldPipelineVersion, field.TypeString, value)
		_node.PipelineVersion = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(extractionjob.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.Attempt(); ok {
		_spec.SetField(extractionjob.FieldAttempt, field.TypeInt, value)
		_node.Attempt = value
	}
	if value, ok := _c.mutation.ProcessingStartedAt(); ok {
		_spec.SetField(extractionjob.FieldProcessingStartedAt, field.TypeTime, value)
		_node.ProcessingStartedAt = &value
	}
	if value, ok := _c.mutation.AvailableAt(); ok {
		_spec.SetField(extractionjob.FieldAvailableAt, field.TypeTime, value)
		_node.AvailableAt = value
	}
	if value, ok := _c.mutation.Meta(); ok {
		_spec.SetField(extractionjob.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if value, ok := _c.mutation.ErrorJSON(); ok {
		_spec.SetField(extractionjob.FieldErrorJSON, field.TypeJSON, value)
		_node.ErrorJSON = value
	}
	if value, ok := _c.mutation.LlmModel(); ok {
		_spec.SetField(extractionjob.FieldLlmModel, field.TypeString, value)
		_node.LlmModel = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(extractionjob.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(extractionjob.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.RawIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   extractionjob.RawTable,
			Columns: []string{extractionjob.RawColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(rawmessage.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_node.RawID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// ExtractionJobCreateBulk is the builder for creating many ExtractionJob entities in bulk.
type ExtractionJobCreateBulk struct {
	config
	err      error
	builders []*ExtractionJobCreate
}

// Save creates the ExtractionJob entities in the database.
func (_c *ExtractionJobCreateBulk) Save(ctx context.Context) ([]*ExtractionJob, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*ExtractionJob, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*ExtractionJobMutation)
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
func (_c *ExtractionJobCreateBulk) SaveX(ctx context.Context) []*ExtractionJob {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *ExtractionJobCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *ExtractionJobCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
