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

// RawMessageCreate is the builder for creating a RawMessage entity.
type RawMessageCreate struct {
	config
	mutation *RawMessageMutation
	hooks    []Hook
}

// SetChannel sets the "channel" field.
func (_c *RawMessageCreate) SetChannel(v string) *RawMessageCreate {
	_c.mutation.SetChannel(v)
	return _c
}

// SetMessageID sets the "message_id" field.
func (_c *RawMessageCreate) SetMessageID(v string) *RawMessageCreate {
	_c.mutation.SetMessageID(v)
	return _c
}

// SetAgencyID sets the "agency_id" field.
func (_c *RawMessageCreate) SetAgencyID(v string) *RawMessageCreate {
	_c.mutation.SetAgencyID(v)
	return _c
}

// SetText sets the "text" field.
func (_c *RawMessageCreate) SetText(v string) *RawMessageCreate {
	_c.mutation.SetText(v)
	return _c
}

// SetSourcePublishedAt sets the "source_published_at" field.
func (_c *RawMessageCreate) SetSourcePublishedAt(v time.Time) *RawMessageCreate {
	_c.mutation.SetSourcePublishedAt(v)
	return _c
}

// SetSourceEditedAt sets the "source_edited_at" field.
func (_c *RawMessageCreate) SetSourceEditedAt(v time.Time) *RawMessageCreate {
	_c.mutation.SetSourceEditedAt(v)
	return _c
}

// SetNillableSourceEditedAt sets the "source_edited_at" field if the given value is not nil.
func (_c *RawMessageCreate) SetNillableSourceEditedAt(v *time.Time) *RawMessageCreate {
	if v != nil {
		_c.SetSourceEditedAt(*v)
	}
	return _c
}

// SetPayload sets the "payload" field.
func (_c *RawMessageCreate) SetPayload(v map[string]interface{}) *RawMessageCreate {
	_c.mutation.SetPayload(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *RawMessageCreate) SetCreatedAt(v time.Time) *RawMessageCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *RawMessageCreate) SetNillableCreatedAt(v *time.Time) *RawMessageCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetDeletedAt sets the "deleted_at" field.
func (_c *RawMessageCreate) SetDeletedAt(v time.Time) *RawMessageCreate {
	_c.mutation.SetDeletedAt(v)
	return _c
}

// SetNillableDeletedAt sets the "deleted_at" field if the given value is not nil.
func (_c *RawMessageCreate) SetNillableDeletedAt(v *time.Time) *RawMessageCreate {
	if v != nil {
		_c.SetDeletedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *RawMessageCreate) SetID(v string) *RawMessageCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddJobIDs adds the "jobs" edge to the ExtractionJob entity by IDs.
func (_c *RawMessageCreate) AddJobIDs(ids ...string) *RawMessageCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractionJob entity.
func (_c *RawMessageCreate) AddJobs(v ...*ExtractionJob) *RawMessageCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the RawMessageMutation object of the builder.
func (_c *RawMessageCreate) Mutation() *RawMessageMutation {
	return _c.mutation
}

// Save creates the RawMessage in the database.
func (_c *RawMessageCreate) Save(ctx context.Context) (*RawMessage, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *RawMessageCreate) SaveX(ctx context.Context) *RawMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawMessageCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawMessageCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *RawMessageCreate) defaults() {
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := rawmessage.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *RawMessageCreate) check() error {
	if _, ok := _c.mutation.Channel(); !ok {
		return &ValidationError{Name: "channel", err: errors.New(`ent: missing required field "RawMessage.channel"`)}
	}
	if _, ok := _c.mutation.MessageID(); !ok {
		return &ValidationError{Name: "message_id", err: errors.New(`ent: missing required field "RawMessage.message_id"`)}
	}
	if _, ok := _c.mutation.AgencyID(); !ok {
		return &ValidationError{Name: "agency_id", err: errors.New(`ent: missing required field "RawMessage.agency_id"`)}
	}
	if _, ok := _c.mutation.Text(); !ok {
		return &ValidationError{Name: "text", err: errors.New(`ent: missing required field "RawMessage.text"`)}
	}
	if _, ok := _c.mutation.SourcePublishedAt(); !ok {
		return &ValidationError{Name: "source_published_at", err: errors.New(`ent: missing required field "RawMessage.source_published_at"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "RawMessage.created_at"`)}
	}
	return nil
}

func (_c *RawMessageCreate) sqlSave(ctx context.Context) (*RawMessage, error) {
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
			return nil, fmt.Errorf("unexpected RawMessage.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *RawMessageCreate) createSpec() (*RawMessage, *sqlgraph.CreateSpec) {
	var (
		_node = &RawMessage{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(rawmessage.Table, sqlgraph.NewFieldSpec(rawmessage.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.Channel(); ok {
		_spec.SetField(rawmessage.FieldChannel, field.TypeString, value)
		_node.Channel = value
	}
	if value, ok := _c.mutation.MessageID(); ok {
		_spec.SetField(rawmessage.FieldMessageID, field.TypeString, value)
		_node.MessageID = value
	}
	if value, ok := _c.mutation.AgencyID(); ok {
		_spec.SetField(rawmessage.FieldAgencyID, field.TypeString, value)
		_node.AgencyID = value
	}
	if value, ok := _c.mutation.Text(); ok {
		_spec.SetField(rawmessage.FieldText, field.TypeString, value)
		_node.Text = value
	}
	if value, ok := _c.mutation.SourcePublishedAt(); ok {
		_spec.SetField(rawmessage.FieldSourcePublishedAt, field.TypeTime, value)
		_node.SourcePublishedAt = value
	}
	if value, ok := _c.mutation.SourceEditedAt(); ok {
		_spec.SetField(rawmessage.FieldSourceEditedAt, field.TypeTime, value)
		_node.SourceEditedAt = &value
	}
	if value, ok := _c.mutation.Payload(); ok {
		_spec.SetField(rawmessage.FieldPayload, field.TypeJSON, value)
		_node.Payload = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(rawmessage.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.DeletedAt(); ok {
		_spec.SetField(rawmessage.FieldDeletedAt, field.TypeTime, value)
		_node.DeletedAt = &value
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// RawMessageCreateBulk is the builder for creating many RawMessage entities in bulk.
type RawMessageCreateBulk struct {
	config
	err      error
	builders []*RawMessageCreate
}

// Save creates the RawMessage entities in the database.
func (_c *RawMessageCreateBulk) Save(ctx context.Context) ([]*RawMessage, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*RawMessage, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RawMessageMutation)
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
func (_c *RawMessageCreateBulk) SaveX(ctx context.Context) []*RawMessage {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *RawMessageCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *RawMessageCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
