// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/ent/duplicategroup"
)

// DuplicateGroupCreate is the builder for creating a DuplicateGroup entity.
type DuplicateGroupCreate struct {
	config
	mutation *DuplicateGroupMutation
	hooks    []Hook
}

// SetPrimaryAssignmentID sets the "primary_assignment_id" field.
func (_c *DuplicateGroupCreate) SetPrimaryAssignmentID(v string) *DuplicateGroupCreate {
	_c.mutation.SetPrimaryAssignmentID(v)
	return _c
}

// SetNillablePrimaryAssignmentID sets the "primary_assignment_id" field if the given value is not nil.
func (_c *DuplicateGroupCreate) SetNillablePrimaryAssignmentID(v *string) *DuplicateGroupCreate {
	if v != nil {
		_c.SetPrimaryAssignmentID(*v)
	}
	return _c
}

// SetMemberCount sets the "member_count" field.
func (_c *DuplicateGroupCreate) SetMemberCount(v int) *DuplicateGroupCreate {
	_c.mutation.SetMemberCount(v)
	return _c
}

// SetNillableMemberCount sets the "member_count" field if the given value is not nil.
func (_c *DuplicateGroupCreate) SetNillableMemberCount(v *int) *DuplicateGroupCreate {
	if v != nil {
		_c.SetMemberCount(*v)
	}
	return _c
}

// SetAvgConfidenceScore sets the "avg_confidence_score" field.
func (_c *DuplicateGroupCreate) SetAvgConfidenceScore(v float64) *DuplicateGroupCreate {
	_c.mutation.SetAvgConfidenceScore(v)
	return _c
}

// SetNillableAvgConfidenceScore sets the "avg_confidence_score" field if the given value is not nil.
func (_c *DuplicateGroupCreate) SetNillableAvgConfidenceScore(v *float64) *DuplicateGroupCreate {
	if v != nil {
		_c.SetAvgConfidenceScore(*v)
	}
	return _c
}

// SetStatus sets the "status" field.
func (_c *DuplicateGroupCreate) SetStatus(v duplicategroup.Status) *DuplicateGroupCreate {
	_c.mutation.SetStatus(v)
	return _c
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_c *DuplicateGroupCreate) SetNillableStatus(v *duplicategroup.Status) *DuplicateGroupCreate {
	if v != nil {
		_c.SetStatus(*v)
	}
	return _c
}

// SetDetectionAlgorithmVersion sets the "detection_algorithm_version" field.
func (_c *DuplicateGroupCreate) SetDetectionAlgorithmVersion(v string) *DuplicateGroupCreate {
	_c.mutation.SetDetectionAlgorithmVersion(v)
	return _c
}

// SetMeta sets the "meta" field.
func (_c *DuplicateGroupCreate) SetMeta(v map[string]interface{}) *DuplicateGroupCreate {
	_c.mutation.SetMeta(v)
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *DuplicateGroupCreate) SetCreatedAt(v time.Time) *DuplicateGroupCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *DuplicateGroupCreate) SetNillableCreatedAt(v *time.Time) *DuplicateGroupCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetUpdatedAt sets the "updated_at" field.
func (_c *DuplicateGroupCreate) SetUpdatedAt(v time.Time) *DuplicateGroupCreate {
	_c.mutation.SetUpdatedAt(v)
	return _c
}

// SetNillableUpdatedAt sets the "updated_at" field if the given value is not nil.
func (_c *DuplicateGroupCreate) SetNillableUpdatedAt(v *time.Time) *DuplicateGroupCreate {
	if v != nil {
		_c.SetUpdatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *DuplicateGroupCreate) SetID(v string) *DuplicateGroupCreate {
	_c.mutation.SetID(v)
	return _c
}

// AddMemberIDs adds the "members" edge to the Assignment entity by IDs.
func (_c *DuplicateGroupCreate) AddMemberIDs(ids ...string) *DuplicateGroupCreate {
	_c.mutation.AddMemberIDs(ids...)
	return _c
}

// AddMembers adds the "members" edges to the Assignment entity.
func (_c *DuplicateGroupCreate) AddMembers(v ...*Assignment) *DuplicateGroupCreate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddMemberIDs(ids...)
}

// Mutation returns the DuplicateGroupMutation object of the builder.
func (_c *DuplicateGroupCreate) Mutation() *DuplicateGroupMutation {
	return _c.mutation
}

// Save creates the DuplicateGroup in the database.
func (_c *DuplicateGroupCreate) Save(ctx context.Context) (*DuplicateGroup, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *DuplicateGroupCreate) SaveX(ctx context.Context) *DuplicateGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DuplicateGroupCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DuplicateGroupCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *DuplicateGroupCreate) defaults() {
	if _, ok := _c.mutation.MemberCount(); !ok {
		v := duplicategroup.DefaultMemberCount
		_c.mutation.SetMemberCount(v)
	}
	if _, ok := _c.mutation.AvgConfidenceScore(); !ok {
		v := duplicategroup.DefaultAvgConfidenceScore
		_c.mutation.SetAvgConfidenceScore(v)
	}
	if _, ok := _c.mutation.Status(); !ok {
		v := duplicategroup.DefaultStatus
		_c.mutation.SetStatus(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := duplicategroup.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		v := duplicategroup.DefaultUpdatedAt()
		_c.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *DuplicateGroupCreate) check() error {
	if _, ok := _c.mutation.MemberCount(); !ok {
		return &ValidationError{Name: "member_count", err: errors.New(`ent: missing required field "DuplicateGroup.member_count"`)}
	}
	if _, ok := _c.mutation.AvgConfidenceScore(); !ok {
		return &ValidationError{Name: "avg_confidence_score", err: errors.New(`ent: missing required field "DuplicateGroup.avg_confidence_score"`)}
	}
	if _, ok := _c.mutation.Status(); !ok {
		return &ValidationError{Name: "status", err: errors.New(`ent: missing required field "DuplicateGroup.status"`)}
	}
	if v, ok := _c.mutation.Status(); ok {
		if err := duplicategroup.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DuplicateGroup.status": %w`, err)}
		}
	}
	if _, ok := _c.mutation.DetectionAlgorithmVersion(); !ok {
		return &ValidationError{Name: "detection_algorithm_version", err: errors.New(`ent: missing required field "DuplicateGroup.detection_algorithm_version"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "DuplicateGroup.created_at"`)}
	}
	if _, ok := _c.mutation.UpdatedAt(); !ok {
		return &ValidationError{Name: "updated_at", err: errors.New(`ent: missing required field "DuplicateGroup.updated_at"`)}
	}
	return nil
}

func (_c *DuplicateGroupCreate) sqlSave(ctx context.Context) (*DuplicateGroup, error) {
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
			return nil, fmt.Errorf("unexpected DuplicateGroup.ID type: %T", _spec.ID.Value)
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *DuplicateGroupCreate) createSpec() (*DuplicateGroup, *sqlgraph.CreateSpec) {
	var (
		_node = &DuplicateGroup{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(duplicategroup.Table, sqlgraph.NewFieldSpec(duplicategroup.FieldID, field.TypeString))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := _c.mutation.PrimaryAssignmentID(); ok {
		_spec.SetField(duplicategroup.FieldPrimaryAssignmentID, field.TypeString, value)
		_node.PrimaryAssignmentID = &value
	}
	if value, ok := _c.mutation.MemberCount(); ok {
		_spec.SetField(duplicategroup.FieldMemberCount, field.TypeInt, value)
		_node.MemberCount = value
	}
	if value, ok := _c.mutation.AvgConfidenceScore(); ok {
		_spec.SetField(duplicategroup.FieldAvgConfidenceScore, field.TypeFloat64, value)
		_node.AvgConfidenceScore = value
	}
	if value, ok := _c.mutation.Status(); ok {
		_spec.SetField(duplicategroup.FieldStatus, field.TypeEnum, value)
		_node.Status = value
	}
	if value, ok := _c.mutation.DetectionAlgorithmVersion(); ok {
		_spec.SetField(duplicategroup.FieldDetectionAlgorithmVersion, field.TypeString, value)
		_node.DetectionAlgorithmVersion = value
	}
	if value, ok := _c.mutation.Meta(); ok {
		_spec.SetField(duplicategroup.FieldMeta, field.TypeJSON, value)
		_node.Meta = value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(duplicategroup.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if value, ok := _c.mutation.UpdatedAt(); ok {
		_spec.SetField(duplicategroup.FieldUpdatedAt, field.TypeTime, value)
		_node.UpdatedAt = value
	}
	if nodes := _c.mutation.MembersIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   duplicategroup.MembersTable,
			Columns: []string{duplicategroup.MembersColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(assignment.FieldID, field.TypeString),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// DuplicateGroupCreateBulk is the builder for creating many DuplicateGroup entities in bulk.
type DuplicateGroupCreateBulk struct {
	config
	err      error
	builders []*DuplicateGroupCreate
}

// Save creates the DuplicateGroup entities in the database.
func (_c *DuplicateGroupCreateBulk) Save(ctx context.Context) ([]*DuplicateGroup, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*DuplicateGroup, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*DuplicateGroupMutation)
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
func (_c *DuplicateGroupCreateBulk) SaveX(ctx context.Context) []*DuplicateGroup {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *DuplicateGroupCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *DuplicateGroupCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
