// Code generated by ent, DO NOT EDIT.

package deliveryrecord

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the deliveryrecord type in the database.
	Label = "delivery_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "delivery_id"
	// FieldTutorID holds the string denoting the tutor_id field in the database.
	FieldTutorID = "tutor_id"
	// FieldAssignmentID holds the string denoting the assignment_id field in the database.
	FieldAssignmentID = "assignment_id"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldTransportMessageID holds the string denoting the transport_message_id field in the database.
	FieldTransportMessageID = "transport_message_id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// Table holds the table name of the deliveryrecord in the database.
	Table = "delivery_records"
)

// Columns holds all SQL columns for deliveryrecord fields.
var Columns = []string{
	FieldID,
	FieldTutorID,
	FieldAssignmentID,
	FieldStatus,
	FieldTransportMessageID,
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

// Status defines the type for the "status" enum field.
type Status string

// StatusSent is the default value of the Status enum.
const DefaultStatus = StatusSent

// Status values.
const (
	StatusSent      Status = "sent"
	StatusThrottled Status = "throttled"
	StatusFailed    Status = "failed"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusSent, StatusThrottled, StatusFailed:
		return nil
	default:
		return fmt.Errorf("deliveryrecord: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the DeliveryRecord queries.
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

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByTransportMessageID orders the results by the transport_message_id field.
func ByTransportMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransportMessageID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}
