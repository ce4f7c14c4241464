// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tuitionlab/assignflow/ent/deliveryrecord"
)

// DeliveryRecord is the model entity for the DeliveryRecord schema.
type DeliveryRecord struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// TutorID holds the value of the "tutor_id" field.
	TutorID string `json:"tutor_id,omitempty"`
	// AssignmentID holds the value of the "assignment_id" field.
	AssignmentID string `json:"assignment_id,omitempty"`
	// Status holds the value of the "status" field.
	Status deliveryrecord.Status `json:"status,omitempty"`
	// TransportMessageID holds the value of the "transport_message_id" field.
	TransportMessageID *string `json:"transport_message_id,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt    time.Time `json:"created_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*DeliveryRecord) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case deliveryrecord.FieldID, deliveryrecord.FieldTutorID, deliveryrecord.FieldAssignmentID, deliveryrecord.FieldStatus, deliveryrecord.FieldTransportMessageID:
			values[i] = new(sql.NullString)
		case deliveryrecord.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the DeliveryRecord fields.
func (_m *DeliveryRecord) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case deliveryrecord.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case deliveryrecord.FieldTutorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tutor_id", values[i])
			} else if value.Valid {
				_m.TutorID = value.String
			}
		case deliveryrecord.FieldAssignmentID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field assignment_id", values[i])
			} else if value.Valid {
				_m.AssignmentID = value.String
			}
		case deliveryrecord.FieldStatus:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field status", values[i])
			} else if value.Valid {
				_m.Status = deliveryrecord.Status(value.String)
			}
		case deliveryrecord.FieldTransportMessageID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field transport_message_id", values[i])
			} else if value.Valid {
				_m.TransportMessageID = new(string)
				*_m.TransportMessageID = value.String
			}
		case deliveryrecord.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the DeliveryRecord.
// This includes values selected through modifiers, order, etc.
func (_m *DeliveryRecord) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this DeliveryRecord.
// Note that you need to call DeliveryRecord.Unwrap() before calling this method if this DeliveryRecord
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *DeliveryRecord) Update() *DeliveryRecordUpdateOne {
	return NewDeliveryRecordClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the DeliveryRecord entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *DeliveryRecord) Unwrap() *DeliveryRecord {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: DeliveryRecord is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *DeliveryRecord) String() string {
	var builder strings.Builder
	builder.WriteString("DeliveryRecord(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tutor_id=")
	builder.WriteString(_m.TutorID)
	builder.WriteString(", ")
	builder.WriteString("assignment_id=")
	builder.WriteString(_m.AssignmentID)
	builder.WriteString(", ")
	builder.WriteString("status=")
	builder.WriteString(fmt.Sprintf("%v", _m.Status))
	builder.WriteString(", ")
	if v := _m.TransportMessageID; v != nil {
		builder.WriteString("transport_message_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// DeliveryRecords is a parsable slice of DeliveryRecord.
type DeliveryRecords []*DeliveryRecord
