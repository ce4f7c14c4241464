// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tuitionlab/assignflow/ent/broadcastrecord"
)

// BroadcastRecord is the model entity for the BroadcastRecord schema.
type BroadcastRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// ExternalID holds the value of the "external_id" field.
	ExternalID string `json:"external_id,omitempty"`
	// Body as last delivered to the channel
	Content string `json:"content,omitempty"`
	// Transport channel the post lives in
	ChatID *string `json:"chat_id,omitempty"`
	// Edit target returned by the transport
	TransportMessageID *string `json:"transport_message_id,omitempty"`
	// Rendering bucket at last delivery; edit fires when it moves
	ClickBucket int `json:"click_bucket,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Bumped by click increments so the editor loop notices
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*BroadcastRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case broadcastrecord.FieldClickBucket:
			values[i] = new(sql.NullInt64)
		case broadcastrecord.FieldID, broadcastrecord.FieldExternalID, broadcastrecord.FieldContent, broadcastrecord.FieldChatID, broadcastrecord.FieldTransportMessageID:
			values[i] = new(sql.NullString)
		case broadcastrecord.FieldCreatedAt, broadcastrecord.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the BroadcastRecord fields.
func (_m *BroadcastRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case broadcastrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case broadcastrecord.FieldExternalID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field external_id", values[i])
			} else if value.Valid {
				_m.ExternalID = value.String
			}
		case broadcastrecord.FieldContent:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content", values[i])
			} else if value.Valid {
				_m.Content = value.String
			}
		case broadcastrecord.FieldChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field chat_id", values[i])
			} else if value.Valid {
				_m.ChatID = new(string)
				*_m.ChatID = value.String
			}
		case broadcastrecord.FieldTransportMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transport_message_id", values[i])
			} else if value.Valid {
				_m.TransportMessageID = new(string)
				*_m.TransportMessageID = value.String
			}
		case broadcastrecord.FieldClickBucket:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field click_bucket", values[i])
			} else if value.Valid {
				_m.ClickBucket = int(value.Int64)
			}
		case broadcastrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case broadcastrecord.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the BroadcastRecord.
// This includes values selected through modifiers, order, etc.
func (_m *BroadcastRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this BroadcastRecord.
// Note that you need to call BroadcastRecord.Unwrap() before calling this method if this BroadcastRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *BroadcastRecord) Update() *BroadcastRecordUpdateOne {
	return NewBroadcastRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the BroadcastRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *BroadcastRecord) Unwrap() *BroadcastRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: BroadcastRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *BroadcastRecord) String() string {
	var builder strings.Builder
	builder.WriteString("BroadcastRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("external_id=")
	builder.WriteString(_m.ExternalID)
	builder.WriteString(", ")
	builder.WriteString("content=")
	builder.WriteString(_m.Content)
	builder.WriteString(", ")
	if v := _m.ChatID; v != nil {
		builder.WriteString("chat_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.TransportMessageID; v != nil {
		builder.WriteString("transport_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("click_bucket=")
	builder.WriteString(fmt.Sprintf("%v", _m.ClickBucket))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// BroadcastRecords is a parsable slice of BroadcastRecord.
type BroadcastRecords []*BroadcastRecord
