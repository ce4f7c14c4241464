// Code generated by ent, DO NOT EDIT.

package duplicategroup

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the duplicategroup type in the database.
	Label = "duplicate_group"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "group_id"
	// FieldPrimaryAssignmentID holds the string denoting the primary_assignment_id field in the database.
	FieldPrimaryAssignmentID = "primary_assignment_id"
	// FieldMemberCount holds the string denoting the member_count field in the database.
	FieldMemberCount = "member_count"
	// FieldAvgConfidenceScore holds the string denoting the avg_confidence_score field in the database.
	FieldAvgConfidenceScore = "avg_confidence_score"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldDetectionAlgorithmVersion holds the string denoting the detection_algorithm_version field in the database.
	FieldDetectionAlgorithmVersion = "detection_algorithm_version"
	// FieldMeta holds the string denoting the meta field in the database.
	FieldMeta = "meta"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeMembers holds the string denoting the members edge name in mutations.
	EdgeMembers = "members"
	// AssignmentFieldID holds the string denoting the ID field of the Assignment.
	AssignmentFieldID = "assignment_id"
	// Table holds the table name of the duplicategroup in the database.
	Table = "duplicate_groups"
	// MembersTable is the table that holds the members relation/edge.
	MembersTable = "assignments"
	// MembersInverseTable is the table name for the Assignment entity.
	// It exists in this package in order to avoid circular dependency with the "assignment" package.
	MembersInverseTable = "assignments"
	// MembersColumn is the table column denoting the members relation/edge.
	MembersColumn = "duplicate_group_id"
)

// Columns holds all SQL columns for duplicategroup fields.
var Columns = []string{
	FieldID,
	FieldPrimaryAssignmentID,
	FieldMemberCount,
	FieldAvgConfidenceScore,
	FieldStatus,
	FieldDetectionAlgorithmVersion,
	FieldMeta,
	FieldCreatedAt,
	FieldUpdatedAt,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultMemberCount holds the default value on creation for the "member_count" field.
	DefaultMemberCount int
	// DefaultAvgConfidenceScore holds the default value on creation for the "avg_confidence_score" field.
	DefaultAvgConfidenceScore float64
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusActive is the default value of the Status enum.
const DefaultStatus = StatusActive

// Status values.
const (
	StatusActive   Status = "active"
	StatusResolved Status = "resolved"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusActive, StatusResolved:
		return nil
	default:
		return fmt.Errorf("duplicategroup: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DuplicateGroup queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByPrimaryAssignmentID orders the results by the primary_assignment_id field.
func ByPrimaryAssignmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPrimaryAssignmentID, opts...).ToFunc()
}

// ByMemberCount orders the results by the member_count field.
func ByMemberCount(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMemberCount, opts...).ToFunc()
}

// ByAvgConfidenceScore orders the results by the avg_confidence_score field.
func ByAvgConfidenceScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvgConfidenceScore, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByDetectionAlgorithmVersion orders the results by the detection_algorithm_version field.
func ByDetectionAlgorithmVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDetectionAlgorithmVersion, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByMembersCount orders the results by members count.
func ByMembersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newMembersStep(), opts...)
	}
}

// ByMembers orders the results by members terms.
func ByMembers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newMembersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newMembersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(MembersInverseTable, AssignmentFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, MembersTable, MembersColumn),
	)
}
