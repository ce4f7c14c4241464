// Code generated by ent, DO NOT EDIT.

package rating

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Rating {
	return predicate.Rating(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Rating {
	return predicate.Rating(sql.FieldContainsFold(FieldID, id))
}

// TutorID applies equality check predicate on the "tutor_id" field. It's identical to TutorIDEQ.
func TutorID(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldTutorID, v))
}

// AssignmentID applies equality check predicate on the "assignment_id" field. It's identical to AssignmentIDEQ.
func AssignmentID(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldAssignmentID, v))
}

// Score applies equality check predicate on the "score" field. It's identical to ScoreEQ.
func Score(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldScore, v))
}

// DistanceKmAtSend applies equality check predicate on the "distance_km_at_send" field. It's identical to DistanceKmAtSendEQ.
func DistanceKmAtSend(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldDistanceKmAtSend, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldCreatedAt, v))
}

// TutorIDEQ applies the EQ predicate on the "tutor_id" field.
func TutorIDEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldTutorID, v))
}

// TutorIDNEQ applies the NEQ predicate on the "tutor_id" field.
func TutorIDNEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldTutorID, v))
}

// TutorIDIn applies the In predicate on the "tutor_id" field.
func TutorIDIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldTutorID, vs...))
}

// TutorIDNotIn applies the NotIn predicate on the "tutor_id" field.
func TutorIDNotIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldTutorID, vs...))
}

// TutorIDGT applies the GT predicate on the "tutor_id" field.
func TutorIDGT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldTutorID, v))
}

// TutorIDGTE applies the GTE predicate on the "tutor_id" field.
func TutorIDGTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldTutorID, v))
}

// TutorIDLT applies the LT predicate on the "tutor_id" field.
func TutorIDLT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldTutorID, v))
}

// TutorIDLTE applies the LTE predicate on the "tutor_id" field.
func TutorIDLTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldTutorID, v))
}

// TutorIDContains applies the Contains predicate on the "tutor_id" field.
func TutorIDContains(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContains(FieldTutorID, v))
}

// TutorIDHasPrefix applies the HasPrefix predicate on the "tutor_id" field.
func TutorIDHasPrefix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasPrefix(FieldTutorID, v))
}

// TutorIDHasSuffix applies the HasSuffix predicate on the "tutor_id" field.
func TutorIDHasSuffix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasSuffix(FieldTutorID, v))
}

// TutorIDEqualFold applies the EqualFold predicate on the "tutor_id" field.
func TutorIDEqualFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEqualFold(FieldTutorID, v))
}

// TutorIDContainsFold applies the ContainsFold predicate on the "tutor_id" field.
func TutorIDContainsFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContainsFold(FieldTutorID, v))
}

// AssignmentIDEQ applies the EQ predicate on the "assignment_id" field.
func AssignmentIDEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldAssignmentID, v))
}

// AssignmentIDNEQ applies the NEQ predicate on the "assignment_id" field.
func AssignmentIDNEQ(v string) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldAssignmentID, v))
}

// AssignmentIDIn applies the In predicate on the "assignment_id" field.
func AssignmentIDIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldAssignmentID, vs...))
}

// AssignmentIDNotIn applies the NotIn predicate on the "assignment_id" field.
func AssignmentIDNotIn(vs ...string) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldAssignmentID, vs...))
}

// AssignmentIDGT applies the GT predicate on the "assignment_id" field.
func AssignmentIDGT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldAssignmentID, v))
}

// AssignmentIDGTE applies the GTE predicate on the "assignment_id" field.
func AssignmentIDGTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldAssignmentID, v))
}

// AssignmentIDLT applies the LT predicate on the "assignment_id" field.
func AssignmentIDLT(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldAssignmentID, v))
}

// AssignmentIDLTE applies the LTE predicate on the "assignment_id" field.
func AssignmentIDLTE(v string) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldAssignmentID, v))
}

// AssignmentIDContains applies the Contains predicate on the "assignment_id" field.
func AssignmentIDContains(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContains(FieldAssignmentID, v))
}

// AssignmentIDHasPrefix applies the HasPrefix predicate on the "assignment_id" field.
func AssignmentIDHasPrefix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasPrefix(FieldAssignmentID, v))
}

// AssignmentIDHasSuffix applies the HasSuffix predicate on the "assignment_id" field.
func AssignmentIDHasSuffix(v string) predicate.Rating {
	return predicate.Rating(sql.FieldHasSuffix(FieldAssignmentID, v))
}

// AssignmentIDEqualFold applies the EqualFold predicate on the "assignment_id" field.
func AssignmentIDEqualFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldEqualFold(FieldAssignmentID, v))
}

// AssignmentIDContainsFold applies the ContainsFold predicate on the "assignment_id" field.
func AssignmentIDContainsFold(v string) predicate.Rating {
	return predicate.Rating(sql.FieldContainsFold(FieldAssignmentID, v))
}

// ScoreEQ applies the EQ predicate on the "score" field.
func ScoreEQ(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldScore, v))
}

// ScoreNEQ applies the NEQ predicate on the "score" field.
func ScoreNEQ(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldScore, v))
}

// ScoreIn applies the In predicate on the "score" field.
func ScoreIn(vs ...float64) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldScore, vs...))
}

// ScoreNotIn applies the NotIn predicate on the "score" field.
func ScoreNotIn(vs ...float64) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldScore, vs...))
}

// ScoreGT applies the GT predicate on the "score" field.
func ScoreGT(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldScore, v))
}

// ScoreGTE applies the GTE predicate on the "score" field.
func ScoreGTE(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldScore, v))
}

// ScoreLT applies the LT predicate on the "score" field.
func ScoreLT(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldScore, v))
}

// ScoreLTE applies the LTE predicate on the "score" field.
func ScoreLTE(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldScore, v))
}

// DistanceKmAtSendEQ applies the EQ predicate on the "distance_km_at_send" field.
func DistanceKmAtSendEQ(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldDistanceKmAtSend, v))
}

// DistanceKmAtSendNEQ applies the NEQ predicate on the "distance_km_at_send" field.
func DistanceKmAtSendNEQ(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldDistanceKmAtSend, v))
}

// DistanceKmAtSendIn applies the In predicate on the "distance_km_at_send" field.
func DistanceKmAtSendIn(vs ...float64) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldDistanceKmAtSend, vs...))
}

// DistanceKmAtSendNotIn applies the NotIn predicate on the "distance_km_at_send" field.
func DistanceKmAtSendNotIn(vs ...float64) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldDistanceKmAtSend, vs...))
}

// DistanceKmAtSendGT applies the GT predicate on the "distance_km_at_send" field.
func DistanceKmAtSendGT(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldDistanceKmAtSend, v))
}

// DistanceKmAtSendGTE applies the GTE predicate on the "distance_km_at_send" field.
func DistanceKmAtSendGTE(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldDistanceKmAtSend, v))
}

// DistanceKmAtSendLT applies the LT predicate on the "distance_km_at_send" field.
func DistanceKmAtSendLT(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldDistanceKmAtSend, v))
}

// DistanceKmAtSendLTE applies the LTE predicate on the "distance_km_at_send" field.
func DistanceKmAtSendLTE(v float64) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldDistanceKmAtSend, v))
}

// DistanceKmAtSendIsNil applies the IsNil predicate on the "distance_km_at_send" field.
func DistanceKmAtSendIsNil() predicate.Rating {
	return predicate.Rating(sql.FieldIsNull(FieldDistanceKmAtSend))
}

// DistanceKmAtSendNotNil applies the NotNil predicate on the "distance_km_at_send" field.
func DistanceKmAtSendNotNil() predicate.Rating {
	return predicate.Rating(sql.FieldNotNull(FieldDistanceKmAtSend))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Rating {
	return predicate.Rating(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Rating) predicate.Rating {
	return predicate.Rating(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Rating) predicate.Rating {
	return predicate.Rating(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Rating) predicate.Rating {
	return predicate.Rating(sql.NotPredicates(p))
}
