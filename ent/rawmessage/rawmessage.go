// Code generated by ent, DO NOT EDIT.

package rawmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the rawmessage type in the database.
	Label = "raw_message"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "raw_id"
	// FieldChannel holds the string denoting the channel field in the database.
	FieldChannel = "channel"
	// FieldMessageID holds the string denoting the message_id field in the database.
	FieldMessageID = "message_id"
	// FieldAgencyID holds the string denoting the agency_id field in the database.
	FieldAgencyID = "agency_id"
	// FieldText holds the string denoting the text field in the database.
	FieldText = "text"
	// FieldSourcePublishedAt holds the string denoting the source_published_at field in the database.
	FieldSourcePublishedAt = "source_published_at"
	// FieldSourceEditedAt holds the string denoting the source_edited_at field in the database.
	FieldSourceEditedAt = "source_edited_at"
	// FieldPayload holds the string denoting the payload field in the database.
	FieldPayload = "payload"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldDeletedAt holds the string denoting the deleted_at field in the database.
	FieldDeletedAt = "deleted_at"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// ExtractionJobFieldID holds the string denoting the ID field of the ExtractionJob.
	ExtractionJobFieldID = "job_id"
	// Table holds the table name of the rawmessage in the database.
	Table = "raw_messages"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extraction_jobs"
	// JobsInverseTable is the table name for the ExtractionJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractionjob" package.
	JobsInverseTable = "extraction_jobs"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "raw_id"
)

// Columns holds all SQL columns for rawmessage fields.
var Columns = []string{
	FieldID,
	FieldChannel,
	FieldMessageID,
	FieldAgencyID,
	FieldText,
	FieldSourcePublishedAt,
	FieldSourceEditedAt,
	FieldPayload,
	FieldCreatedAt,
	FieldDeletedAt,
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

// OrderOption defines the ordering options for the RawMessage queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByChannel orders the results by the channel field.
func ByChannel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChannel, opts...).ToFunc()
}

// ByMessageID orders the results by the message_id field.
func ByMessageID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMessageID, opts...).ToFunc()
}

// ByAgencyID orders the results by the agency_id field.
func ByAgencyID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAgencyID, opts...).ToFunc()
}

// ByText orders the results by the text field.
func ByText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldText, opts...).ToFunc()
}

// BySourcePublishedAt orders the results by the source_published_at field.
func BySourcePublishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourcePublishedAt, opts...).ToFunc()
}

// BySourceEditedAt orders the results by the source_edited_at field.
func BySourceEditedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceEditedAt, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByDeletedAt orders the results by the deleted_at field.
func ByDeletedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDeletedAt, opts...).ToFunc()
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, ExtractionJobFieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
