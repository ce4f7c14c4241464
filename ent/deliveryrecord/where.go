// Code generated by ent, DO NOT EDIT.

package deliveryrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldContainsFold(FieldID, id))
}

// TutorID applies equality check predicate on the "tutor_id" field. It's identical to TutorIDEQ.
func TutorID(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldTutorID, v))
}

// AssignmentID applies equality check predicate on the "assignment_id" field. It's identical to AssignmentIDEQ.
func AssignmentID(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldAssignmentID, v))
}

// TransportMessageID applies equality check predicate on the "transport_message_id" field. It's identical to TransportMessageIDEQ.
func TransportMessageID(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldTransportMessageID, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// TutorIDEQ applies the EQ predicate on the "tutor_id" field.
func TutorIDEQ(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldTutorID, v))
}

// TutorIDNEQ applies the NEQ predicate on the "tutor_id" field.
func TutorIDNEQ(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldTutorID, v))
}

// TutorIDIn applies the In predicate on the "tutor_id" field.
func TutorIDIn(vs ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIn(FieldTutorID, vs...))
}

// TutorIDNotIn applies the NotIn predicate on the "tutor_id" field.
func TutorIDNotIn(vs ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotIn(FieldTutorID, vs...))
}

// TutorIDGT applies the GT predicate on the "tutor_id" field.
func TutorIDGT(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGT(FieldTutorID, v))
}

// TutorIDGTE applies the GTE predicate on the "tutor_id" field.
func TutorIDGTE(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGTE(FieldTutorID, v))
}

// TutorIDLT applies the LT predicate on the "tutor_id" field.
func TutorIDLT(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLT(FieldTutorID, v))
}

// TutorIDLTE applies the LTE predicate on the "tutor_id" field.
func TutorIDLTE(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLTE(FieldTutorID, v))
}

// TutorIDContains applies the Contains predicate on the "tutor_id" field.
func TutorIDContains(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldContains(FieldTutorID, v))
}

// TutorIDHasPrefix applies the HasPrefix predicate on the "tutor_id" field.
func TutorIDHasPrefix(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldHasPrefix(FieldTutorID, v))
}

// TutorIDHasSuffix applies the HasSuffix predicate on the "tutor_id" field.
func TutorIDHasSuffix(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldHasSuffix(FieldTutorID, v))
}

// TutorIDEqualFold applies the EqualFold predicate on the "tutor_id" field.
func TutorIDEqualFold(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEqualFold(FieldTutorID, v))
}

// TutorIDContainsFold applies the ContainsFold predicate on the "tutor_id" field.
func TutorIDContainsFold(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldContainsFold(FieldTutorID, v))
}

// AssignmentIDEQ applies the EQ predicate on the "assignment_id" field.
func AssignmentIDEQ(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldAssignmentID, v))
}

// AssignmentIDNEQ applies the NEQ predicate on the "assignment_id" field.
func AssignmentIDNEQ(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldAssignmentID, v))
}

// AssignmentIDIn applies the In predicate on the "assignment_id" field.
func AssignmentIDIn(vs ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIn(FieldAssignmentID, vs...))
}

// AssignmentIDNotIn applies the NotIn predicate on the "assignment_id" field.
func AssignmentIDNotIn(vs ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotIn(FieldAssignmentID, vs...))
}

// AssignmentIDGT applies the GT predicate on the "assignment_id" field.
func AssignmentIDGT(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGT(FieldAssignmentID, v))
}

// AssignmentIDGTE applies the GTE predicate on the "assignment_id" field.
func AssignmentIDGTE(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGTE(FieldAssignmentID, v))
}

// AssignmentIDLT applies the LT predicate on the "assignment_id" field.
func AssignmentIDLT(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLT(FieldAssignmentID, v))
}

// AssignmentIDLTE applies the LTE predicate on the "assignment_id" field.
func AssignmentIDLTE(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLTE(FieldAssignmentID, v))
}

// AssignmentIDContains applies the Contains predicate on the "assignment_id" field.
func AssignmentIDContains(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldContains(FieldAssignmentID, v))
}

// AssignmentIDHasPrefix applies the HasPrefix predicate on the "assignment_id" field.
func AssignmentIDHasPrefix(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldHasPrefix(FieldAssignmentID, v))
}

// AssignmentIDHasSuffix applies the HasSuffix predicate on the "assignment_id" field.
func AssignmentIDHasSuffix(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldHasSuffix(FieldAssignmentID, v))
}

// AssignmentIDEqualFold applies the EqualFold predicate on the "assignment_id" field.
func AssignmentIDEqualFold(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEqualFold(FieldAssignmentID, v))
}

// AssignmentIDContainsFold applies the ContainsFold predicate on the "assignment_id" field.
func AssignmentIDContainsFold(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldContainsFold(FieldAssignmentID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotIn(FieldStatus, vs...))
}

// TransportMessageIDEQ applies the EQ predicate on the "transport_message_id" field.
func TransportMessageIDEQ(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldTransportMessageID, v))
}

// TransportMessageIDNEQ applies the NEQ predicate on the "transport_message_id" field.
func TransportMessageIDNEQ(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldTransportMessageID, v))
}

// TransportMessageIDIn applies the In predicate on the "transport_message_id" field.
func TransportMessageIDIn(vs ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIn(FieldTransportMessageID, vs...))
}

// TransportMessageIDNotIn applies the NotIn predicate on the "transport_message_id" field.
func TransportMessageIDNotIn(vs ...string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotIn(FieldTransportMessageID, vs...))
}

// TransportMessageIDGT applies the GT predicate on the "transport_message_id" field.
func TransportMessageIDGT(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGT(FieldTransportMessageID, v))
}

// TransportMessageIDGTE applies the GTE predicate on the "transport_message_id" field.
func TransportMessageIDGTE(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGTE(FieldTransportMessageID, v))
}

// TransportMessageIDLT applies the LT predicate on the "transport_message_id" field.
func TransportMessageIDLT(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLT(FieldTransportMessageID, v))
}

// TransportMessageIDLTE applies the LTE predicate on the "transport_message_id" field.
func TransportMessageIDLTE(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLTE(FieldTransportMessageID, v))
}

// TransportMessageIDContains applies the Contains predicate on the "transport_message_id" field.
func TransportMessageIDContains(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldContains(FieldTransportMessageID, v))
}

// TransportMessageIDHasPrefix applies the HasPrefix predicate on the "transport_message_id" field.
func TransportMessageIDHasPrefix(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldHasPrefix(FieldTransportMessageID, v))
}

// TransportMessageIDHasSuffix applies the HasSuffix predicate on the "transport_message_id" field.
func TransportMessageIDHasSuffix(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldHasSuffix(FieldTransportMessageID, v))
}

// TransportMessageIDIsNil applies the IsNil predicate on the "transport_message_id" field.
func TransportMessageIDIsNil() predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIsNull(FieldTransportMessageID))
}

// TransportMessageIDNotNil applies the NotNil predicate on the "transport_message_id" field.
func TransportMessageIDNotNil() predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotNull(FieldTransportMessageID))
}

// TransportMessageIDEqualFold applies the EqualFold predicate on the "transport_message_id" field.
func TransportMessageIDEqualFold(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEqualFold(FieldTransportMessageID, v))
}

// TransportMessageIDContainsFold applies the ContainsFold predicate on the "transport_message_id" field.
func TransportMessageIDContainsFold(v string) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldContainsFold(FieldTransportMessageID, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DeliveryRecord) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DeliveryRecord) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DeliveryRecord) predicate.DeliveryRecord {
	return predicate.DeliveryRecord(sql.NotPredicates(p))
}
