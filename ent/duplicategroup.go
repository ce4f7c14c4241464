// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tuitionlab/assignflow/ent/duplicategroup"
)

// DuplicateGroup is the model entity for the DuplicateGroup schema.
type DuplicateGroup struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Nullable during promote/demote transitions
	PrimaryAssignmentID *string `json:"primary_assignment_id,omitempty"`
	// MemberCount holds the value of the "member_count" field.
	MemberCount int `json:"member_count,omitempty"`
	// AvgConfidenceScore holds the value of the "avg_confidence_score" field.
	AvgConfidenceScore float64 `json:"avg_confidence_score,omitempty"`
	// Status holds the value of the "status" field.
	Status duplicategroup.Status `json:"status,omitempty"`
	// Scoring weights/thresholds version that formed the group
	DetectionAlgorithmVersion string `json:"detection_algorithm_version,omitempty"`
	// Merge history, per-member scores
	Meta map[string]interface{} `json:"meta,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the DuplicateGroupQuery when eager-loading is set.
	Edges        DuplicateGroupEdges `json:"edges"`
	selectValues sql.SelectValues
}

// DuplicateGroupEdges holds the relations/edges for other nodes in the graph.
type DuplicateGroupEdges struct {
	// Members holds the value of the members edge.
	Members []*Assignment `json:"members,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// MembersOrErr returns the Members value or an error if the edge
// was not loaded in eager-loading.
func (e DuplicateGroupEdges) MembersOrErr() ([]*Assignment, error) {
	if e.loadedTypes[0] {
		return e.Members, nil
	}
	return nil, &NotLoadedError{edge: "members"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DuplicateGroup) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case duplicategroup.FieldMeta:
			values[i] = new([]byte)
		case duplicategroup.FieldAvgConfidenceScore:
			values[i] = new(sql.NullFloat64)
		case duplicategroup.FieldMemberCount:
			values[i] = new(sql.NullInt64)
		case duplicategroup.FieldID, duplicategroup.FieldPrimaryAssignmentID, duplicategroup.FieldStatus, duplicategroup.FieldDetectionAlgorithmVersion:
			values[i] = new(sql.NullString)
		case duplicategroup.FieldCreatedAt, duplicategroup.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DuplicateGroup fields.
func (_m *DuplicateGroup) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case duplicategroup.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case duplicategroup.FieldPrimaryAssignmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field primary_assignment_id", values[i])
			} else if value.Valid {
				_m.PrimaryAssignmentID = new(string)
				*_m.PrimaryAssignmentID = value.String
			}
		case duplicategroup.FieldMemberCount:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field member_count", values[i])
			} else if value.Valid {
				_m.MemberCount = int(value.Int64)
			}
		case duplicategroup.FieldAvgConfidenceScore:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field avg_confidence_score", values[i])
			} else if value.Valid {
				_m.AvgConfidenceScore = value.Float64
			}
		case duplicategroup.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = duplicategroup.Status(value.String)
			}
		case duplicategroup.FieldDetectionAlgorithmVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field detection_algorithm_version", values[i])
			} else if value.Valid {
				_m.DetectionAlgorithmVersion = value.String
			}
		case duplicategroup.FieldMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Meta); err != nil {
					return fmt.Errorf("unmarshal field meta: %w", err)
				}
			}
		case duplicategroup.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case duplicategroup.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				_m.UpdatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DuplicateGroup.
// This includes values selected through modifiers, order, etc.
func (_m *DuplicateGroup) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryMembers queries the "members" edge of the DuplicateGroup entity.
func (_m *DuplicateGroup) QueryMembers() *AssignmentQuery {
	return NewDuplicateGroupClient(_m.config).QueryMembers(_m)
}

// Update returns a builder for updating this DuplicateGroup.
// Note that you need to call DuplicateGroup.Unwrap() before calling this method if this DuplicateGroup
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DuplicateGroup) Update() *DuplicateGroupUpdateOne {
	return NewDuplicateGroupClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DuplicateGroup entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DuplicateGroup) Unwrap() *DuplicateGroup {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DuplicateGroup is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DuplicateGroup) String() string {
	var builder strings.Builder
	builder.WriteString("DuplicateGroup(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	if v := _m.PrimaryAssignmentID; v != nil {
		builder.WriteString("primary_assignment_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("member_count=")
	builder.WriteString(fmt.Sprintf("%v", _m.MemberCount))
	builder.WriteString(", ")
	builder.WriteString("avg_confidence_score=")
	builder.WriteString(fmt.Sprintf("%v", _m.AvgConfidenceScore))
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("detection_algorithm_version=")
	builder.WriteString(_m.DetectionAlgorithmVersion)
	builder.WriteString(", ")
	builder.WriteString("meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Meta))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DuplicateGroups is a parsable slice of DuplicateGroup.
type DuplicateGroups []*DuplicateGroup
