// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/tuitionlab/assignflow/ent/tutorprofile"
)

// TutorProfile is the model entity for the TutorProfile schema.
type TutorProfile struct {
	config `json:"-"`
	// ID of the ent.
	ID string `json:"id,omitempty"`
	// Messaging-platform identity
	TutorID string `json:"tutor_id,omitempty"`
	// Canonical subject codes the tutor accepts
	Subjects []string `json:"subjects,omitempty"`
	// Levels holds the value of the "levels" field.
	Levels []string `json:"levels,omitempty"`
	// PostalCode holds the value of the "postal_code" field.
	PostalCode *string `json:"postal_code,omitempty"`
	// Lat holds the value of the "lat" field.
	Lat *float64 `json:"lat,omitempty"`
	// Lon holds the value of the "lon" field.
	Lon *float64 `json:"lon,omitempty"`
	// Overrides dm_max_distance_km_default when set
	MaxDistanceKm *float64 `json:"max_distance_km,omitempty"`
	// Where DMs for this tutor are sent
	DmChatID string `json:"dm_chat_id,omitempty"`
	// Active holds the value of the "active" field.
	Active bool `json:"active,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// UpdatedAt holds the value of the "updated_at" field.
	UpdatedAt    time.Time `json:"updated_at,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*TutorProfile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case tutorprofile.FieldSubjects, tutorprofile.FieldLevels:
			values[i] = new([]byte)
		case tutorprofile.FieldActive:
			values[i] = new(sql.NullBool)
		case tutorprofile.FieldLat, tutorprofile.FieldLon, tutorprofile.FieldMaxDistanceKm:
			values[i] = new(sql.NullFloat64)
		case tutorprofile.FieldID, tutorprofile.FieldTutorID, tutorprofile.FieldPostalCode, tutorprofile.FieldDmChatID:
			values[i] = new(sql.NullString)
		case tutorprofile.FieldCreatedAt, tutorprofile.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the TutorProfile fields.
func (_m *TutorProfile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case tutorprofile.FieldID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value.Valid {
				_m.ID = value.String
			}
		case tutorprofile.FieldTutorID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field tutor_id", values[i])
			} else if value.Valid {
				_m.TutorID = value.String
			}
		case tutorprofile.FieldSubjects:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field subjects", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Subjects); err != nil {
					return fmt.Errorf("unmarshal field subjects: %w", err)
				}
			}
		case tutorprofile.FieldLevels:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field levels", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Levels); err != nil {
					return fmt.Errorf("unmarshal field levels: %w", err)
				}
			}
		case tutorprofile.FieldPostalCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field postal_code", values[i])
			} else if value.Valid {
				_m.PostalCode = new(string)
				*_m.PostalCode = value.String
			}
		case tutorprofile.FieldLat:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lat", values[i])
			} else if value.Valid {
				_m.Lat = new(float64)
				*_m.Lat = value.Float64
			}
		case tutorprofile.FieldLon:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field lon", values[i])
			} else if value.Valid {
				_m.Lon = new(float64)
				*_m.Lon = value.Float64
			}
		case tutorprofile.FieldMaxDistanceKm:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field max_distance_km", values[i])
			} else if value.Valid {
				_m.MaxDistanceKm = new(float64)
				*_m.MaxDistanceKm = value.Float64
			}
		case tutorprofile.FieldDmChatID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field dm_chat_id", values[i])
			} else if value.Valid {
				_m.DmChatID = value.String
			}
		case tutorprofile.FieldActive:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field active", values[i])
			} else if value.Valid {
				_m.Active = value.Bool
			}
		case tutorprofile.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		case tutorprofile.FieldUpdatedAt:
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

// Value returns the ent.Value that was dynamically selected and assigned to the TutorProfile.
// This includes values selected through modifiers, order, etc.
func (_m *TutorProfile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// Update returns a builder for updating this TutorProfile.
// Note that you need to call TutorProfile.Unwrap() before calling this method if this TutorProfile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *TutorProfile) Update() *TutorProfileUpdateOne {
	return NewTutorProfileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the TutorProfile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *TutorProfile) Unwrap() *TutorProfile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: TutorProfile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *TutorProfile) String() string {
	var builder strings.Builder
	builder.WriteString("TutorProfile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("tutor_id=")
	builder.WriteString(_m.TutorID)
	builder.WriteString(", ")
	builder.WriteString("subjects=")
	builder.WriteString(fmt.Sprintf("%v", _m.Subjects))
	builder.WriteString(", ")
	builder.WriteString("levels=")
	builder.WriteString(fmt.Sprintf("%v", _m.Levels))
	builder.WriteString(", ")
	if v := _m.PostalCode; v != nil {
		builder.WriteString("postal_code=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.Lat; v != nil {
		builder.WriteString("lat=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.Lon; v != nil {
		builder.WriteString("lon=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	if v := _m.MaxDistanceKm; v != nil {
		builder.WriteString("max_distance_km=")
		builder.WriteString(fmt.Sprintf("%v", *v))
	}
	builder.WriteString(", ")
	builder.WriteString("dm_chat_id=")
	builder.WriteString(_m.DmChatID)
	builder.WriteString(", ")
	builder.WriteString("active=")
	builder.WriteString(fmt.Sprintf("%v", _m.Active))
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(_m.UpdatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// TutorProfiles is a parsable slice of TutorProfile.
type TutorProfiles []*TutorProfile
