// Code generated by ent, DO NOT EDIT.

package rating

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the rating type in the database.
	Label = "rating"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "rating_id"
	// FieldTutorID holds the string denoting the tutor_id field in the database.
	FieldTutorID = "tutor_id"
	// FieldAssignmentID holds the string denoting the assignment_id field in the database.
	FieldAssignmentID = "assignment_id"
	// FieldScore holds the string denoting the score field in the database.
	FieldScore = "score"
	// FieldDistanceKmAtSend holds the string denoting the distance_km_at_send field in the database.
	FieldDistanceKmAtSend = "distance_km_at_send"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the rating in the database.
	Table = "ratings"
)

// Columns holds all SQL columns for rating fields.
var Columns = []string{
	FieldID,
	FieldTutorID,
	FieldAssignmentID,
	FieldScore,
	FieldDistanceKmAtSend,
	FieldCreatedAt,
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
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
)

// OrderOption defines the ordering options for the Rating queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTutorID orders the results by the tutor_id field.
func ByTutorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTutorID, opts...).ToFunc()
}

// ByAssignmentID orders the results by the assignment_id field.
func ByAssignmentID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAssignmentID, opts...).ToFunc()
}

// ByScore orders the results by the score field.
func ByScore(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldScore, opts...).ToFunc()
}

// ByDistanceKmAtSend orders the results by the distance_km_at_send field.
func ByDistanceKmAtSend(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDistanceKmAtSend, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
