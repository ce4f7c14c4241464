// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tuitionlab/assignflow/ent/rawmessage"
)

// RawMessage is the model entity for the RawMessage schema.
type RawMessage struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Upstream channel identifier (e.g. 'c/agencyA')
	Channel string `json:"channel,omitempty"`
	// Message id within the channel
	MessageID string `json:"message_id,omitempty"`
	// AgencyID holds the value of the "agency_id" field.
	AgencyID string `json:"agency_id,omitempty"`
	// Raw post text as received
	Text string `json:"text,omitempty"`
	// When the source channel published the post
	SourcePublishedAt time.Time `json:"source_published_at,omitempty"`
	// Upstream edit/bump time; advances source_last_seen downstream
	SourceEditedAt *time.Time `json:"source_edited_at,omitempty"`
	// Opaque upstream blob (entities, media refs)
	Payload map[string]interface{} `json:"payload,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Soft delete; jobs referencing a deleted raw are skipped
	DeletedAt *time.Time `json:"deleted_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the RawMessageQuery when eager-loading is set.
	Edges        RawMessageEdges `json:"edges"`
	selectValues sql.SelectValues
}

// RawMessageEdges holds the relations/edges for other nodes in the graph.
type RawMessageEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractionJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [1]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e RawMessageEdges) JobsOrErr() ([]*ExtractionJob, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*RawMessage) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case rawmessage.FieldPayload:
			values[i] = new([]byte)
		case rawmessage.FieldID, rawmessage.FieldChannel, rawmessage.FieldMessageID, rawmessage.FieldAgencyID, rawmessage.FieldText:
			values[i] = new(sql.NullString)
		case rawmessage.FieldSourcePublishedAt, rawmessage.FieldSourceEditedAt, rawmessage.FieldCreatedAt, rawmessage.FieldDeletedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the RawMessage fields.
func (_m *RawMessage) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case rawmessage.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case rawmessage.FieldChannel:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field channel", values[i])
			} else if value.Valid {
				_m.Channel = value.String
			}
		case rawmessage.FieldMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field message_id", values[i])
			} else if value.Valid {
				_m.MessageID = value.String
			}
		case rawmessage.FieldAgencyID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field agency_id", values[i])
			} else if value.Valid {
				_m.AgencyID = value.String
			}
		case rawmessage.FieldText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field text", values[i])
			} else if value.Valid {
				_m.Text = value.String
			}
		case rawmessage.FieldSourcePublishedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field source_published_at", values[i])
			} else if value.Valid {
				_m.SourcePublishedAt = value.Time
			}
		case rawmessage.FieldSourceEditedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field source_edited_at", values[i])
			} else if value.Valid {
				_m.SourceEditedAt = new(time.Time)
				*_m.SourceEditedAt = value.Time
			}
		case rawmessage.FieldPayload:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field payload", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Payload); err != nil {
					return fmt.Errorf("unmarshal field payload: %w", err)
				}
			}
		case rawmessage.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case rawmessage.FieldDeletedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field deleted_at", values[i])
			} else if value.Valid {
				_m.DeletedAt = new(time.Time)
				*_m.DeletedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the RawMessage.
// This includes values selected through modifiers, order, etc.
func (_m *RawMessage) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the RawMessage entity.
func (_m *RawMessage) QueryJobs() *ExtractionJobQuery {
	return NewRawMessageClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this RawMessage.
// Note that you need to call RawMessage.Unwrap() before calling this method if this RawMessage
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *RawMessage) Update() *RawMessageUpdateOne {
	return NewRawMessageClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the RawMessage entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *RawMessage) Unwrap() *RawMessage {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: RawMessage is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *RawMessage) String() string {
	var builder strings.Builder
	builder.WriteString("RawMessage(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("channel=")
	builder.WriteString(_m.Channel)
	builder.WriteString(", ")
	builder.WriteString("message_id=")
	builder.WriteString(_m.MessageID)
	builder.WriteString(", ")
	builder.WriteString("agency_id=")
	builder.WriteString(_m.AgencyID)
	builder.WriteString(", ")
	builder.WriteString("text=")
	builder.WriteString(_m.Text)
	builder.WriteString(", ")
	builder.WriteString("source_published_at=")
	builder.WriteString(_m.SourcePublishedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.SourceEditedAt; v != nil {
		builder.WriteString("source_edited_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("payload=")
	builder.WriteString(fmt.Sprintf("%v", _m.Payload))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	if v := _m.DeletedAt; v != nil {
		builder.WriteString("deleted_at=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteByte(')')
	return builder.String()
}

// RawMessages is a parsable slice of RawMessage.
type RawMessages []*RawMessage
