// Code generated by ent, DO NOT EDIT.

package tutorprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the tutorprofile type in the database.
	Label = "tutor_profile"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "tutor_profile_id"
	// FieldTutorID holds the string denoting the tutor_id field in the database.
	FieldTutorID = "tutor_id"
	// FieldSubjects holds the string denoting the subjects field in the database.
	FieldSubjects = "subjects"
	// FieldLevels holds the string denoting the levels field in the database.
	FieldLevels = "levels"
	// FieldPostalCode holds the string denoting the postal_code field in the database.
	FieldPostalCode = "postal_code"
	// FieldLat holds the string denoting the lat field in the database.
	FieldLat = "lat"
	// FieldLon holds the string denoting the lon field in the database.
	FieldLon = "lon"
	// FieldMaxDistanceKm holds the string denoting the max_distance_km field in the database.
	FieldMaxDistanceKm = "max_distance_km"
	// FieldDmChatID holds the string denoting the dm_chat_id field in the database.
	FieldDmChatID = "dm_chat_id"
	// FieldActive holds the string denoting the active field in the database.
	FieldActive = "active"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the tutorprofile in the database.
	Table = "tutor_profiles"
)

// Columns holds all SQL columns for tutorprofile fields.
var Columns = []string{
	FieldID,
	FieldTutorID,
	FieldSubjects,
	FieldLevels,
	FieldPostalCode,
	FieldLat,
	FieldLon,
	FieldMaxDistanceKm,
	FieldDmChatID,
	FieldActive,
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
	// DefaultActive holds the default value on creation for the "active" field.
	DefaultActive bool
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the TutorProfile queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByTutorID orders the results by the tutor_id field.
func ByTutorID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTutorID, opts...).ToFunc()
}

// ByPostalCode orders the results by the postal_code field.
func ByPostalCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPostalCode, opts...).ToFunc()
}

// ByLat orders the results by the lat field.
func ByLat(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLat, opts...).ToFunc()
}

// ByLon orders the results by the lon field.
func ByLon(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLon, opts...).ToFunc()
}

// ByMaxDistanceKm orders the results by the max_distance_km field.
func ByMaxDistanceKm(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMaxDistanceKm, opts...).ToFunc()
}

// ByDmChatID orders the results by the dm_chat_id field.
func ByDmChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDmChatID, opts...).ToFunc()
}

// ByActive orders the results by the active field.
func ByActive(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldActive, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
