// Code generated by ent, DO NOT EDIT.

package extractionjob

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the extractionjob type in the database.
	Label = "extraction_job"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "job_id"
	// FieldRawID holds the string denoting the raw_id field in the database.
	FieldRawID = "raw_id"
	// FieldPipelineVersion holds the string denoting the pipeline_version field in the database.
	FieldPipelineVersion = "pipeline_version"
	// FieldStatus holds the string denoting the status field in the database.
	FieldStatus = "status"
	// FieldAttempt holds the string denoting the attempt field in the database.
	FieldAttempt = "attempt"
	// FieldProcessingStartedAt holds the string denoting the processing_started_at field in the database.
	FieldProcessingStartedAt = "processing_started_at"
	// FieldAvailableAt holds the string denoting the available_at field in the database.
	FieldAvailableAt = "available_at"
	// FieldMeta holds the string denoting the meta field in the database.
	FieldMeta = "meta"
	// FieldErrorJSON holds the string denoting the error_json field in the database.
	FieldErrorJSON = "error_json"
	// FieldLlmModel holds the string denoting the llm_model field in the database.
	FieldLlmModel = "llm_model"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// EdgeRaw holds the string denoting the raw edge name in mutations.
	EdgeRaw = "raw"
	// RawMessageFieldID holds the string denoting the ID field of the RawMessage.
	RawMessageFieldID = "raw_id"
	// Table holds the table name of the extractionjob in the database.
	Table = "extraction_jobs"
	// RawTable is the table that holds the raw relation/edge.
	RawTable = "extraction_jobs"
	// RawInverseTable is the table name for the RawMessage entity.
	// It exists in this package in order to avoid circular dependency with the "rawmessage" package.
	RawInverseTable = "raw_messages"
	// RawColumn is the table column denoting the raw relation/edge.
	RawColumn = "raw_id"
)

// Columns holds all SQL columns for extractionjob fields.
var Columns = []string{
	FieldID,
	FieldRawID,
	FieldPipelineVersion,
	FieldStatus,
	FieldAttempt,
	FieldProcessingStartedAt,
	FieldAvailableAt,
	FieldMeta,
	FieldErrorJSON,
	FieldLlmModel,
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
	// DefaultAttempt holds the default value on creation for the "attempt" field.
	DefaultAttempt int
	// DefaultAvailableAt holds the default value on creation for the "available_at" field.
	DefaultAvailableAt func() time.Time
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
)

// Status defines the type for the "status" enum field.
type Status string

// StatusPending is the default value of the Status enum.
const DefaultStatus = StatusPending

// Status values.
const (
	StatusPending    Status = "pending"
	StatusProcessing Status = "processing"
	StatusOk         Status = "ok"
	StatusFailed     Status = "failed"
	StatusSkipped    Status = "skipped"
)

func (s Status) String() string {
	return string(s)
}

// StatusValidator is a validator for the "status" field enum values. It is called by the builders before save.
func StatusValidator(s Status) error {
	switch s {
	case StatusPending, StatusProcessing, StatusOk, StatusFailed, StatusSkipped:
		return nil
	default:
		return fmt.Errorf("extractionjob: invalid enum value for status field: %q", s)
	}
}

// OrderOption defines the ordering options for the ExtractionJob queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByRawID orders the results by the raw_id field.
func ByRawID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawID, opts...).ToFunc()
}

// ByPipelineVersion orders the results by the pipeline_version field.
func ByPipelineVersion(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPipelineVersion, opts...).ToFunc()
}

// ByStatus orders the results by the status field.
func ByStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStatus, opts...).ToFunc()
}

// ByAttempt orders the results by the attempt field.
func ByAttempt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAttempt, opts...).ToFunc()
}

// ByProcessingStartedAt orders the results by the processing_started_at field.
func ByProcessingStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessingStartedAt, opts...).ToFunc()
}

// ByAvailableAt orders the results by the available_at field.
func ByAvailableAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAvailableAt, opts...).ToFunc()
}

// ByLlmModel orders the results by the llm_model field.
func ByLlmModel(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLlmModel, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByRawField orders the results by raw field.
func ByRawField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRawStep(), sql.OrderByField(field, opts...))
	}
}
func newRawStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RawInverseTable, RawMessageFieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RawTable, RawColumn),
	)
}
