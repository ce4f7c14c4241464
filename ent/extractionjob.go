// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/ent/rawmessage"
)

// ExtractionJob is the model entity for the ExtractionJob schema.
type ExtractionJob struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// RawID holds the value of the "raw_id" field.
	RawID string `json:"raw_id,omitempty"`
	// Logical identity of the extraction schema + model
	PipelineVersion string `json:"pipeline_version,omitempty"`
	// Status holds the value of the "status" field.
	Status extractionjob.Status `json:"status,omitempty"`
	// Incremented on every claim
	Attempt int `json:"attempt,omitempty"`
	// Stamped by claim; cleared on requeue
	ProcessingStartedAt *time.Time `json:"processing_started_at,omitempty"`
	// Earliest claim time; pushed forward on requeue-with-backoff
	AvailableAt time.Time `json:"available_at,omitempty"`
	// Requeue reason, backoff hint, assignment_id on success, segment error map
	Meta map[string]interface{} `json:"meta,omitempty"`
	// Structured error taxonomy with redacted raw preview
	ErrorJSON map[string]interface{} `json:"error_json,omitempty"`
	// Model that served the successful extraction
	LlmModel *string `json:"llm_model,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Worker heartbeat target; stale-requeue watches this
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the ExtractionJobQuery when eager-loading is set.
	Edges        ExtractionJobEdges `json:"edges"`
	selectValues sql.SelectValues
}

// ExtractionJobEdges holds the relations/edges for other nodes in the graph.
type ExtractionJobEdges struct {
	// Raw holds the value of the raw edge.
	Raw *RawMessage `json:"raw,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// RawOrErr returns the Raw value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e ExtractionJobEdges) RawOrErr() (*RawMessage, error) {
	if e.Raw != nil {
		return e.Raw, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: rawmessage.Label}
	}
	return nil, &NotLoadedError{edge: "raw"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*ExtractionJob) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case extractionjob.FieldMeta, extractionjob.FieldErrorJSON:
			values[i] = new([]byte)
		case extractionjob.FieldAttempt:
			values[i] = new(sql.NullInt64)
		case extractionjob.FieldID, extractionjob.FieldRawID, extractionjob.FieldPipelineVersion, extractionjob.FieldStatus, extractionjob.FieldLlmModel:
			values[i] = new(sql.NullString)
		case extractionjob.FieldProcessingStartedAt, extractionjob.FieldAvailableAt, extractionjob.FieldCreatedAt, extractionjob.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the ExtractionJob fields.
func (_m *ExtractionJob) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case extractionjob.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case extractionjob.FieldRawID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_id", values[i])
			} else if value.Valid {
				_m.RawID = value.String
			}
		case extractionjob.FieldPipelineVersion:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pipeline_version", values[i])
			} else if value.Valid {
				_m.PipelineVersion = value.String
			}
		case extractionjob.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = extractionjob.Status(value.String)
			}
		case extractionjob.FieldAttempt:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field attempt", values[i])
			} else if value.Valid {
				_m.Attempt = int(value.Int64)
			}
		case extractionjob.FieldProcessingStartedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field processing_started_at", values[i])
			} else if value.Valid {
				_m.ProcessingStartedAt = new(time.Time)
				*_m.ProcessingStartedAt = value.Time
			}
		case extractionjob.FieldAvailableAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field available_at", values[i])
			} else if value.Valid {
				_m.AvailableAt = value.Time
			}
		case extractionjob.FieldMeta:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field meta", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Meta); err != nil {
					return fmt.Errorf("unmarshal field meta: %w", err)
				}
			}
		case extractionjob.FieldErrorJSON:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field error_json", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.ErrorJSON); err != nil {
					return fmt.Errorf("unmarshal field error_json: %w", err)
				}
			}
		case extractionjob.FieldLlmModel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field llm_model", values[i])
			} else if value.Valid {
				_m.LlmModel = new(string)
				*_m.LlmModel = value.String
			}
		case extractionjob.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case extractionjob.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the ExtractionJob.
// This includes values selected through modifiers, order, etc.
func (_m *ExtractionJob) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryRaw queries the "raw" edge of the ExtractionJob entity.
func (_m *ExtractionJob) QueryRaw() *RawMessageQuery {
	return NewExtractionJobClient(_m.config).QueryRaw(_m)
}

// Update returns a builder for updating this ExtractionJob.
// Note that you need to call ExtractionJob.Unwrap() before calling this method if this ExtractionJob
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *ExtractionJob) Update() *ExtractionJobUpdateOne {
	return NewExtractionJobClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the ExtractionJob entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *ExtractionJob) Unwrap() *ExtractionJob {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: ExtractionJob is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *ExtractionJob) String() string {
	var builder strings.Builder
	builder.WriteString("ExtractionJob(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("raw_id=")
	builder.WriteString(_m.RawID)
	builder.WriteString(", ")
	builder.WriteString("pipeline_version=")
	builder.WriteString(_m.PipelineVersion)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	builder.WriteString("attempt=")
	builder.WriteString(fmt.Sprintf("%v", _m.Attempt))
	builder.WriteString(", ")
	if v := _m.ProcessingStartedAt; v != nil {
		builder.WriteString("processing_started_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("available_at=")
	builder.WriteString(_m.AvailableAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("meta=")
	builder.WriteString(fmt.Sprintf("%v", _m.Meta))
	builder.WriteString(", ")
	builder.WriteString("error_json=")
	builder.WriteString(fmt.Sprintf("%v", _m.ErrorJSON))
	builder.WriteString(", ")
	if v := _m.LlmModel; v != nil {
		builder.WriteString("llm_model=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// ExtractionJobs is a parsable slice of ExtractionJob.
type ExtractionJobs []*ExtractionJob
