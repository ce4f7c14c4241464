// Code generated by ent, DO NOT EDIT.

package duplicategroup

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldContainsFold(FieldID, id))
}

// PrimaryAssignmentID applies equality check predicate on the "primary_assignment_id" field. It's identical to PrimaryAssignmentIDEQ.
func PrimaryAssignmentID(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldPrimaryAssignmentID, v))
}

// MemberCount applies equality check predicate on the "member_count" field. It's identical to MemberCountEQ.
func MemberCount(v int) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldMemberCount, v))
}

// AvgConfidenceScore applies equality check predicate on the "avg_confidence_score" field. It's identical to AvgConfidenceScoreEQ.
func AvgConfidenceScore(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldAvgConfidenceScore, v))
}

// DetectionAlgorithmVersion applies equality check predicate on the "detection_algorithm_version" field. It's identical to DetectionAlgorithmVersionEQ.
func DetectionAlgorithmVersion(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldDetectionAlgorithmVersion, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldUpdatedAt, v))
}

// PrimaryAssignmentIDEQ applies the EQ predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDEQ(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldPrimaryAssignmentID, v))
}

// PrimaryAssignmentIDNEQ applies the NEQ predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDNEQ(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldPrimaryAssignmentID, v))
}

// PrimaryAssignmentIDIn applies the In predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDIn(vs ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldPrimaryAssignmentID, vs...))
}

// PrimaryAssignmentIDNotIn applies the NotIn predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDNotIn(vs ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldPrimaryAssignmentID, vs...))
}

// PrimaryAssignmentIDGT applies the GT predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDGT(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldPrimaryAssignmentID, v))
}

// PrimaryAssignmentIDGTE applies the GTE predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDGTE(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldPrimaryAssignmentID, v))
}

// PrimaryAssignmentIDLT applies the LT predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDLT(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldPrimaryAssignmentID, v))
}

// PrimaryAssignmentIDLTE applies the LTE predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDLTE(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldPrimaryAssignmentID, v))
}

// PrimaryAssignmentIDContains applies the Contains predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDContains(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldContains(FieldPrimaryAssignmentID, v))
}

// PrimaryAssignmentIDHasPrefix applies the HasPrefix predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDHasPrefix(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldHasPrefix(FieldPrimaryAssignmentID, v))
}

// PrimaryAssignmentIDHasSuffix applies the HasSuffix predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDHasSuffix(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldHasSuffix(FieldPrimaryAssignmentID, v))
}

// PrimaryAssignmentIDIsNil applies the IsNil predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDIsNil() predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIsNull(FieldPrimaryAssignmentID))
}

// PrimaryAssignmentIDNotNil applies the NotNil predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDNotNil() predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotNull(FieldPrimaryAssignmentID))
}

// PrimaryAssignmentIDEqualFold applies the EqualFold predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDEqualFold(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEqualFold(FieldPrimaryAssignmentID, v))
}

// PrimaryAssignmentIDContainsFold applies the ContainsFold predicate on the "primary_assignment_id" field.
func PrimaryAssignmentIDContainsFold(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldContainsFold(FieldPrimaryAssignmentID, v))
}

// MemberCountEQ applies the EQ predicate on the "member_count" field.
func MemberCountEQ(v int) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldMemberCount, v))
}

// MemberCountNEQ applies the NEQ predicate on the "member_count" field.
func MemberCountNEQ(v int) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldMemberCount, v))
}

// MemberCountIn applies the In predicate on the "member_count" field.
func MemberCountIn(vs ...int) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldMemberCount, vs...))
}

// MemberCountNotIn applies the NotIn predicate on the "member_count" field.
func MemberCountNotIn(vs ...int) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldMemberCount, vs...))
}

// MemberCountGT applies the GT predicate on the "member_count" field.
func MemberCountGT(v int) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldMemberCount, v))
}

// MemberCountGTE applies the GTE predicate on the "member_count" field.
func MemberCountGTE(v int) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldMemberCount, v))
}

// MemberCountLT applies the LT predicate on the "member_count" field.
func MemberCountLT(v int) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldMemberCount, v))
}

// MemberCountLTE applies the LTE predicate on the "member_count" field.
func MemberCountLTE(v int) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldMemberCount, v))
}

// AvgConfidenceScoreEQ applies the EQ predicate on the "avg_confidence_score" field.
func AvgConfidenceScoreEQ(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldAvgConfidenceScore, v))
}

// AvgConfidenceScoreNEQ applies the NEQ predicate on the "avg_confidence_score" field.
func AvgConfidenceScoreNEQ(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldAvgConfidenceScore, v))
}

// AvgConfidenceScoreIn applies the In predicate on the "avg_confidence_score" field.
func AvgConfidenceScoreIn(vs ...float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldAvgConfidenceScore, vs...))
}

// AvgConfidenceScoreNotIn applies the NotIn predicate on the "avg_confidence_score" field.
func AvgConfidenceScoreNotIn(vs ...float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldAvgConfidenceScore, vs...))
}

// AvgConfidenceScoreGT applies the GT predicate on the "avg_confidence_score" field.
func AvgConfidenceScoreGT(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldAvgConfidenceScore, v))
}

// AvgConfidenceScoreGTE applies the GTE predicate on the "avg_confidence_score" field.
func AvgConfidenceScoreGTE(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldAvgConfidenceScore, v))
}

// AvgConfidenceScoreLT applies the LT predicate on the "avg_confidence_score" field.
func AvgConfidenceScoreLT(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldAvgConfidenceScore, v))
}

// AvgConfidenceScoreLTE applies the LTE predicate on the "avg_confidence_score" field.
func AvgConfidenceScoreLTE(v float64) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldAvgConfidenceScore, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldStatus, vs...))
}

// DetectionAlgorithmVersionEQ applies the EQ predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionEQ(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldDetectionAlgorithmVersion, v))
}

// DetectionAlgorithmVersionNEQ applies the NEQ predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionNEQ(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldDetectionAlgorithmVersion, v))
}

// DetectionAlgorithmVersionIn applies the In predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionIn(vs ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldDetectionAlgorithmVersion, vs...))
}

// DetectionAlgorithmVersionNotIn applies the NotIn predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionNotIn(vs ...string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldDetectionAlgorithmVersion, vs...))
}

// DetectionAlgorithmVersionGT applies the GT predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionGT(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldDetectionAlgorithmVersion, v))
}

// DetectionAlgorithmVersionGTE applies the GTE predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionGTE(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldDetectionAlgorithmVersion, v))
}

// DetectionAlgorithmVersionLT applies the LT predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionLT(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldDetectionAlgorithmVersion, v))
}

// DetectionAlgorithmVersionLTE applies the LTE predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionLTE(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldDetectionAlgorithmVersion, v))
}

// DetectionAlgorithmVersionContains applies the Contains predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionContains(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldContains(FieldDetectionAlgorithmVersion, v))
}

// DetectionAlgorithmVersionHasPrefix applies the HasPrefix predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionHasPrefix(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldHasPrefix(FieldDetectionAlgorithmVersion, v))
}

// DetectionAlgorithmVersionHasSuffix applies the HasSuffix predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionHasSuffix(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldHasSuffix(FieldDetectionAlgorithmVersion, v))
}

// DetectionAlgorithmVersionEqualFold applies the EqualFold predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionEqualFold(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEqualFold(FieldDetectionAlgorithmVersion, v))
}

// DetectionAlgorithmVersionContainsFold applies the ContainsFold predicate on the "detection_algorithm_version" field.
func DetectionAlgorithmVersionContainsFold(v string) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldContainsFold(FieldDetectionAlgorithmVersion, v))
}

// MetaIsNil applies the IsNil predicate on the "meta" field.
func MetaIsNil() predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIsNull(FieldMeta))
}

// MetaNotNil applies the NotNil predicate on the "meta" field.
func MetaNotNil() predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotNull(FieldMeta))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasMembers applies the HasEdge predicate on the "members" edge.
func HasMembers() predicate.DuplicateGroup {
	return predicate.DuplicateGroup(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, MembersTable, MembersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasMembersWith applies the HasEdge predicate on the "members" edge with a given conditions (other predicates).
func HasMembersWith(preds ...predicate.Assignment) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(func(s *sql.Selector) {
		step := newMembersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.DuplicateGroup) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.DuplicateGroup) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.DuplicateGroup) predicate.DuplicateGroup {
	return predicate.DuplicateGroup(sql.NotPredicates(p))
}
