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
	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/ent/duplicategroup"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// DuplicateGroupUpdate is the builder for updating DuplicateGroup entities.
type DuplicateGroupUpdate struct {
	config
	hooks    []Hook
	mutation *DuplicateGroupMutation
}

// Where appends a list predicates to the DuplicateGroupUpdate builder.
func (_u *DuplicateGroupUpdate) Where(ps ...predicate.DuplicateGroup) *DuplicateGroupUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetPrimaryAssignmentID sets the "primary_assignment_id" field.
func (_u *DuplicateGroupUpdate) SetPrimaryAssignmentID(v string) *DuplicateGroupUpdate {
	_u.mutation.SetPrimaryAssignmentID(v)
	return _u
}

// SetNillablePrimaryAssignmentID sets the "primary_assignment_id" field if the given value is not nil.
func (_u *DuplicateGroupUpdate) SetNillablePrimaryAssignmentID(v *string) *DuplicateGroupUpdate {
	if v != nil {
		_u.SetPrimaryAssignmentID(*v)
	}
	return _u
}

// ClearPrimaryAssignmentID clears the value of the "primary_assignment_id" field.
func (_u *DuplicateGroupUpdate) ClearPrimaryAssignmentID() *DuplicateGroupUpdate {
	_u.mutation.ClearPrimaryAssignmentID()
	return _u
}

// SetMemberCount sets the "member_count" field.
func (_u *DuplicateGroupUpdate) SetMemberCount(v int) *DuplicateGroupUpdate {
	_u.mutation.ResetMemberCount()
	_u.mutation.SetMemberCount(v)
	return _u
}

// SetNillableMemberCount sets the "member_count" field if the given value is not nil.
func (_u *DuplicateGroupUpdate) SetNillableMemberCount(v *int) *DuplicateGroupUpdate {
	if v != nil {
		_u.SetMemberCount(*v)
	}
	return _u
}

// AddMemberCount adds value to the "member_count" field.
func (_u *DuplicateGroupUpdate) AddMemberCount(v int) *DuplicateGroupUpdate {
	_u.mutation.AddMemberCount(v)
	return _u
}

// SetAvgConfidenceScore sets the "avg_confidence_score" field.
func (_u *DuplicateGroupUpdate) SetAvgConfidenceScore(v float64) *DuplicateGroupUpdate {
	_u.mutation.ResetAvgConfidenceScore()
	_u.mutation.SetAvgConfidenceScore(v)
	return _u
}

// SetNillableAvgConfidenceScore sets the "avg_confidence_score" field if the given value is not nil.
func (_u *DuplicateGroupUpdate) SetNillableAvgConfidenceScore(v *float64) *DuplicateGroupUpdate {
	if v != nil {
		_u.SetAvgConfidenceScore(*v)
	}
	return _u
}

// AddAvgConfidenceScore adds value to the "avg_confidence_score" field.
func (_u *DuplicateGroupUpdate) AddAvgConfidenceScore(v float64) *DuplicateGroupUpdate {
	_u.mutation.AddAvgConfidenceScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DuplicateGroupUpdate) SetStatus(v duplicategroup.Status) *DuplicateGroupUpdate {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DuplicateGroupUpdate) SetNillableStatus(v *duplicategroup.Status) *DuplicateGroupUpdate {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetectionAlgorithmVersion sets the "detection_algorithm_version" field.
func (_u *DuplicateGroupUpdate) SetDetectionAlgorithmVersion(v string) *DuplicateGroupUpdate {
	_u.mutation.SetDetectionAlgorithmVersion(v)
	return _u
}

// SetNillableDetectionAlgorithmVersion sets the "detection_algorithm_version" field if the given value is not nil.
func (_u *DuplicateGroupUpdate) SetNillableDetectionAlgorithmVersion(v *string) *DuplicateGroupUpdate {
	if v != nil {
		_u.SetDetectionAlgorithmVersion(*v)
	}
	return _u
}

// SetMeta sets the "meta" field.
func (_u *DuplicateGroupUpdate) SetMeta(v map[string]interface{}) *DuplicateGroupUpdate {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *DuplicateGroupUpdate) ClearMeta() *DuplicateGroupUpdate {
	_u.mutation.ClearMeta()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DuplicateGroupUpdate) SetUpdatedAt(v time.Time) *DuplicateGroupUpdate {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMemberIDs adds the "members" edge to the Assignment entity by IDs.
func (_u *DuplicateGroupUpdate) AddMemberIDs(ids ...string) *DuplicateGroupUpdate {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the Assignment entity.
func (_u *DuplicateGroupUpdate) AddMembers(v ...*Assignment) *DuplicateGroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// Mutation returns the DuplicateGroupMutation object of the builder.
func (_u *DuplicateGroupUpdate) Mutation() *DuplicateGroupMutation {
	return _u.mutation
}

// ClearMembers clears all "members" edges to the Assignment entity.
func (_u *DuplicateGroupUpdate) ClearMembers() *DuplicateGroupUpdate {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to Assignment entities by IDs.
func (_u *DuplicateGroupUpdate) RemoveMemberIDs(ids ...string) *DuplicateGroupUpdate {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to Assignment entities.
func (_u *DuplicateGroupUpdate) RemoveMembers(v ...*Assignment) *DuplicateGroupUpdate {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *DuplicateGroupUpdate) Save(ctx context.Context) (int, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DuplicateGroupUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *DuplicateGroupUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DuplicateGroupUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DuplicateGroupUpdate) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := duplicategroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DuplicateGroupUpdate) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := duplicategroup.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DuplicateGroup.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DuplicateGroupUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(duplicategroup.Table, duplicategroup.Columns, sqlgraph.NewFieldSpec(duplicategroup.FieldID, field.TypeString))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.PrimaryAssignmentID(); ok {
		_spec.SetField(duplicategroup.FieldPrimaryAssignmentID, field.TypeString, value)
	}
	if _u.mutation.PrimaryAssignmentIDCleared() {
		_spec.ClearField(duplicategroup.FieldPrimaryAssignmentID, field.TypeString)
	}
	if value, ok := _u.mutation.MemberCount(); ok {
		_spec.SetField(duplicategroup.FieldMemberCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemberCount(); ok {
		_spec.AddField(duplicategroup.FieldMemberCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgConfidenceScore(); ok {
		_spec.SetField(duplicategroup.FieldAvgConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgConfidenceScore(); ok {
		_spec.AddField(duplicategroup.FieldAvgConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(duplicategroup.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DetectionAlgorithmVersion(); ok {
		_spec.SetField(duplicategroup.FieldDetectionAlgorithmVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(duplicategroup.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(duplicategroup.FieldMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(duplicategroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{duplicategroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// DuplicateGroupUpdateOne is the builder for updating a single DuplicateGroup entity.
type DuplicateGroupUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *DuplicateGroupMutation
}

// SetPrimaryAssignmentID sets the "primary_assignment_id" field.
func (_u *DuplicateGroupUpdateOne) SetPrimaryAssignmentID(v string) *DuplicateGroupUpdateOne {
	_u.mutation.SetPrimaryAssignmentID(v)
	return _u
}

// SetNillablePrimaryAssignmentID sets the "primary_assignment_id" field if the given value is not nil.
func (_u *DuplicateGroupUpdateOne) SetNillablePrimaryAssignmentID(v *string) *DuplicateGroupUpdateOne {
	if v != nil {
		_u.SetPrimaryAssignmentID(*v)
	}
	return _u
}

// ClearPrimaryAssignmentID clears the value of the "primary_assignment_id" field.
func (_u *DuplicateGroupUpdateOne) ClearPrimaryAssignmentID() *DuplicateGroupUpdateOne {
	_u.mutation.ClearPrimaryAssignmentID()
	return _u
}

// SetMemberCount sets the "member_count" field.
func (_u *DuplicateGroupUpdateOne) SetMemberCount(v int) *DuplicateGroupUpdateOne {
	_u.mutation.ResetMemberCount()
	_u.mutation.SetMemberCount(v)
	return _u
}

// SetNillableMemberCount sets the "member_count" field if the given value is not nil.
func (_u *DuplicateGroupUpdateOne) SetNillableMemberCount(v *int) *DuplicateGroupUpdateOne {
	if v != nil {
		_u.SetMemberCount(*v)
	}
	return _u
}

// AddMemberCount adds value to the "member_count" field.
func (_u *DuplicateGroupUpdateOne) AddMemberCount(v int) *DuplicateGroupUpdateOne {
	_u.mutation.AddMemberCount(v)
	return _u
}

// SetAvgConfidenceScore sets the "avg_confidence_score" field.
func (_u *DuplicateGroupUpdateOne) SetAvgConfidenceScore(v float64) *DuplicateGroupUpdateOne {
	_u.mutation.ResetAvgConfidenceScore()
	_u.mutation.SetAvgConfidenceScore(v)
	return _u
}

// SetNillableAvgConfidenceScore sets the "avg_confidence_score" field if the given value is not nil.
func (_u *DuplicateGroupUpdateOne) SetNillableAvgConfidenceScore(v *float64) *DuplicateGroupUpdateOne {
	if v != nil {
		_u.SetAvgConfidenceScore(*v)
	}
	return _u
}

// AddAvgConfidenceScore adds value to the "avg_confidence_score" field.
func (_u *DuplicateGroupUpdateOne) AddAvgConfidenceScore(v float64) *DuplicateGroupUpdateOne {
	_u.mutation.AddAvgConfidenceScore(v)
	return _u
}

// SetStatus sets the "status" field.
func (_u *DuplicateGroupUpdateOne) SetStatus(v duplicategroup.Status) *DuplicateGroupUpdateOne {
	_u.mutation.SetStatus(v)
	return _u
}

// SetNillableStatus sets the "status" field if the given value is not nil.
func (_u *DuplicateGroupUpdateOne) SetNillableStatus(v *duplicategroup.Status) *DuplicateGroupUpdateOne {
	if v != nil {
		_u.SetStatus(*v)
	}
	return _u
}

// SetDetectionAlgorithmVersion sets the "detection_algorithm_version" field.
func (_u *DuplicateGroupUpdateOne) SetDetectionAlgorithmVersion(v string) *DuplicateGroupUpdateOne {
	_u.mutation.SetDetectionAlgorithmVersion(v)
	return _u
}

// SetNillableDetectionAlgorithmVersion sets the "detection_algorithm_version" field if the given value is not nil.
func (_u *DuplicateGroupUpdateOne) SetNillableDetectionAlgorithmVersion(v *string) *DuplicateGroupUpdateOne {
	if v != nil {
		_u.SetDetectionAlgorithmVersion(*v)
	}
	return _u
}

// SetMeta sets the "meta" field.
func (_u *DuplicateGroupUpdateOne) SetMeta(v map[string]interface{}) *DuplicateGroupUpdateOne {
	_u.mutation.SetMeta(v)
	return _u
}

// ClearMeta clears the value of the "meta" field.
func (_u *DuplicateGroupUpdateOne) ClearMeta() *DuplicateGroupUpdateOne {
	_u.mutation.ClearMeta()
	return _u
}

// SetUpdatedAt sets the "updated_at" field.
func (_u *DuplicateGroupUpdateOne) SetUpdatedAt(v time.Time) *DuplicateGroupUpdateOne {
	_u.mutation.SetUpdatedAt(v)
	return _u
}

// AddMemberIDs adds the "members" edge to the Assignment entity by IDs.
func (_u *DuplicateGroupUpdateOne) AddMemberIDs(ids ...string) *DuplicateGroupUpdateOne {
	_u.mutation.AddMemberIDs(ids...)
	return _u
}

// AddMembers adds the "members" edges to the Assignment entity.
func (_u *DuplicateGroupUpdateOne) AddMembers(v ...*Assignment) *DuplicateGroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddMemberIDs(ids...)
}

// Mutation returns the DuplicateGroupMutation object of the builder.
func (_u *DuplicateGroupUpdateOne) Mutation() *DuplicateGroupMutation {
	return _u.mutation
}

// ClearMembers clears all "members" edges to the Assignment entity.
func (_u *DuplicateGroupUpdateOne) ClearMembers() *DuplicateGroupUpdateOne {
	_u.mutation.ClearMembers()
	return _u
}

// RemoveMemberIDs removes the "members" edge to Assignment entities by IDs.
func (_u *DuplicateGroupUpdateOne) RemoveMemberIDs(ids ...string) *DuplicateGroupUpdateOne {
	_u.mutation.RemoveMemberIDs(ids...)
	return _u
}

// RemoveMembers removes "members" edges to Assignment entities.
func (_u *DuplicateGroupUpdateOne) RemoveMembers(v ...*Assignment) *DuplicateGroupUpdateOne {
	ids := make([]string, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveMemberIDs(ids...)
}

// Where appends a list predicates to the DuplicateGroupUpdate builder.
func (_u *DuplicateGroupUpdateOne) Where(ps ...predicate.DuplicateGroup) *DuplicateGroupUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *DuplicateGroupUpdateOne) Select(field string, fields ...string) *DuplicateGroupUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated DuplicateGroup entity.
func (_u *DuplicateGroupUpdateOne) Save(ctx context.Context) (*DuplicateGroup, error) {
	_u.defaults()
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *DuplicateGroupUpdateOne) SaveX(ctx context.Context) *DuplicateGroup {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *DuplicateGroupUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *DuplicateGroupUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_u *DuplicateGroupUpdateOne) defaults() {
	if _, ok := _u.mutation.UpdatedAt(); !ok {
		v := duplicategroup.UpdateDefaultUpdatedAt()
		_u.mutation.SetUpdatedAt(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *DuplicateGroupUpdateOne) check() error {
	if v, ok := _u.mutation.Status(); ok {
		if err := duplicategroup.StatusValidator(v); err != nil {
			return &ValidationError{Name: "status", err: fmt.Errorf(`ent: validator failed for field "DuplicateGroup.status": %w`, err)}
		}
	}
	return nil
}

func (_u *DuplicateGroupUpdateOne) sqlSave(ctx context.Context) (_node *DuplicateGroup, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(duplicategroup.Table, duplicategroup.Columns, sqlgraph.NewFieldSpec(duplicategroup.FieldID, field.TypeString))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "DuplicateGroup.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, duplicategroup.FieldID)
		for _, f := range fields {
			if !duplicategroup.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != duplicategroup.FieldID {
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
	if value, ok := _u.mutation.PrimaryAssignmentID(); ok {
		_spec.SetField(duplicategroup.FieldPrimaryAssignmentID, field.TypeString, value)
	}
	if _u.mutation.PrimaryAssignmentIDCleared() {
		_spec.ClearField(duplicategroup.FieldPrimaryAssignmentID, field.TypeString)
	}
	if value, ok := _u.mutation.MemberCount(); ok {
		_spec.SetField(duplicategroup.FieldMemberCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AddedMemberCount(); ok {
		_spec.AddField(duplicategroup.FieldMemberCount, field.TypeInt, value)
	}
	if value, ok := _u.mutation.AvgConfidenceScore(); ok {
		_spec.SetField(duplicategroup.FieldAvgConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.AddedAvgConfidenceScore(); ok {
		_spec.AddField(duplicategroup.FieldAvgConfidenceScore, field.TypeFloat64, value)
	}
	if value, ok := _u.mutation.Status(); ok {
		_spec.SetField(duplicategroup.FieldStatus, field.TypeEnum, value)
	}
	if value, ok := _u.mutation.DetectionAlgorithmVersion(); ok {
		_spec.SetField(duplicategroup.FieldDetectionAlgorithmVersion, field.TypeString, value)
	}
	if value, ok := _u.mutation.Meta(); ok {
		_spec.SetField(duplicategroup.FieldMeta, field.TypeJSON, value)
	}
	if _u.mutation.MetaCleared() {
		_spec.ClearField(duplicategroup.FieldMeta, field.TypeJSON)
	}
	if value, ok := _u.mutation.UpdatedAt(); ok {
		_spec.SetField(duplicategroup.FieldUpdatedAt, field.TypeTime, value)
	}
	if _u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedMembersIDs(); len(nodes) > 0 && !_u.mutation.MembersCleared() {
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
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.MembersIDs(); len(nodes) > 0 {
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
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &DuplicateGroup{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{duplicategroup.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
