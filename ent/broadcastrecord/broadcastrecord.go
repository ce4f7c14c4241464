// Code generated by ent, DO NOT EDIT.

package broadcastrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the broadcastrecord type in the database.
	Label = "broadcast_record"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "broadcast_id"
	// FieldExternalID holds the string denoting the external_id field in the database.
	FieldExternalID = "external_id"
	// FieldContent holds the string denoting the content field in the database.
	FieldContent = "content"
	// FieldChatID holds the string denoting the chat_id field in the database.
	FieldChatID = "chat_id"
	// FieldTransportMessageID holds the string denoting the transport_message_id field in the database.
	FieldTransportMessageID = "transport_message_id"
	// FieldClickBucket holds the string denoting the click_bucket field in the database.
	FieldClickBucket = "click_bucket"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// Table holds the table name of the broadcastrecord in the database.
	Table = "broadcast_records"
)

// Columns holds all SQL columns for broadcastrecord fields.
var Columns = []string{
	FieldID,
	FieldExternalID,
	FieldContent,
	FieldChatID,
	FieldTransportMessageID,
	FieldClickBucket,
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
	// DefaultClickBucket holds the default value on creation for the "click_bucket" field.
	DefaultClickBucket int
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// OrderOption defines the ordering options for the BroadcastRecord queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByExternalID orders the results by the external_id field.
func ByExternalID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldExternalID, opts...).ToFunc()
}

// ByContent orders the results by the content field.
func ByContent(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContent, opts...).ToFunc()
}

// ByChatID orders the results by the chat_id field.
func ByChatID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChatID, opts...).ToFunc()
}

// ByTransportMessageID orders the results by the transport_message_id field.
func ByTransportMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTransportMessageID, opts...).ToFunc()
}

// ByClickBucket orders the results by the click_bucket field.
func ByClickBucket(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldClickBucket, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}
