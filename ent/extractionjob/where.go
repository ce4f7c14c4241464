// Code generated by ent, DO NOT EDIT.

package extractionjob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldID, id))
}

// RawID applies equality check predicate on the "raw_id" field. It's identical to RawIDEQ.
func RawID(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldRawID, v))
}

// PipelineVersion applies equality check predicate on the "pipeline_version" field. It's identical to PipelineVersionEQ.
func PipelineVersion(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldPipelineVersion, v))
}

// Attempt applies equality check predicate on the "attempt" field. It's identical to AttemptEQ.
func Attempt(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldAttempt, v))
}

// ProcessingStartedAt applies equality check predicate on the "processing_started_at" field. It's identical to ProcessingStartedAtEQ.
func ProcessingStartedAt(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldProcessingStartedAt, v))
}

// AvailableAt applies equality check predicate on the "available_at" field. It's identical to AvailableAtEQ.
func AvailableAt(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldAvailableAt, v))
}

// LlmModel applies equality check predicate on the "llm_model" field. It's identical to LlmModelEQ.
func LlmModel(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldLlmModel, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// RawIDEQ applies the EQ predicate on the "raw_id" field.
func RawIDEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldRawID, v))
}

// RawIDNEQ applies the NEQ predicate on the "raw_id" field.
func RawIDNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldRawID, v))
}

// RawIDIn applies the In predicate on the "raw_id" field.
func RawIDIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldRawID, vs...))
}

// RawIDNotIn applies the NotIn predicate on the "raw_id" field.
func RawIDNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldRawID, vs...))
}

// RawIDGT applies the GT predicate on the "raw_id" field.
func RawIDGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldRawID, v))
}

// RawIDGTE applies the GTE predicate on the "raw_id" field.
func RawIDGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldRawID, v))
}

// RawIDLT applies the LT predicate on the "raw_id" field.
func RawIDLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldRawID, v))
}

// RawIDLTE applies the LTE predicate on the "raw_id" field.
func RawIDLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldRawID, v))
}

// RawIDContains applies the Contains predicate on the "raw_id" field.
func RawIDContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldRawID, v))
}

// RawIDHasPrefix applies the HasPrefix predicate on the "raw_id" field.
func RawIDHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldRawID, v))
}

// RawIDHasSuffix applies the HasSuffix predicate on the "raw_id" field.
func RawIDHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldRawID, v))
}

// RawIDEqualFold applies the EqualFold predicate on the "raw_id" field.
func RawIDEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldRawID, v))
}

// RawIDContainsFold applies the ContainsFold predicate on the "raw_id" field.
func RawIDContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldRawID, v))
}

// PipelineVersionEQ applies the EQ predicate on the "pipeline_version" field.
func PipelineVersionEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldPipelineVersion, v))
}

// PipelineVersionNEQ applies the NEQ predicate on the "pipeline_version" field.
func PipelineVersionNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldPipelineVersion, v))
}

// PipelineVersionIn applies the In predicate on the "pipeline_version" field.
func PipelineVersionIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldPipelineVersion, vs...))
}

// PipelineVersionNotIn applies the NotIn predicate on the "pipeline_version" field.
func PipelineVersionNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldPipelineVersion, vs...))
}

// PipelineVersionGT applies the GT predicate on the "pipeline_version" field.
func PipelineVersionGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldPipelineVersion, v))
}

// PipelineVersionGTE applies the GTE predicate on the "pipeline_version" field.
func PipelineVersionGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldPipelineVersion, v))
}

// PipelineVersionLT applies the LT predicate on the "pipeline_version" field.
func PipelineVersionLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldPipelineVersion, v))
}

// PipelineVersionLTE applies the LTE predicate on the "pipeline_version" field.
func PipelineVersionLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldPipelineVersion, v))
}

// PipelineVersionContains applies the Contains predicate on the "pipeline_version" field.
func PipelineVersionContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldPipelineVersion, v))
}

// PipelineVersionHasPrefix applies the HasPrefix predicate on the "pipeline_version" field.
func PipelineVersionHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldPipelineVersion, v))
}

// PipelineVersionHasSuffix applies the HasSuffix predicate on the "pipeline_version" field.
func PipelineVersionHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldPipelineVersion, v))
}

// PipelineVersionEqualFold applies the EqualFold predicate on the "pipeline_version" field.
func PipelineVersionEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldPipelineVersion, v))
}

// PipelineVersionContainsFold applies the ContainsFold predicate on the "pipeline_version" field.
func PipelineVersionContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldPipelineVersion, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldStatus, vs...))
}

// AttemptEQ applies the EQ predicate on the "attempt" field.
func AttemptEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldAttempt, v))
}

// AttemptNEQ applies the NEQ predicate on the "attempt" field.
func AttemptNEQ(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldAttempt, v))
}

// AttemptIn applies the In predicate on the "attempt" field.
func AttemptIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldAttempt, vs...))
}

// AttemptNotIn applies the NotIn predicate on the "attempt" field.
func AttemptNotIn(vs ...int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldAttempt, vs...))
}

// AttemptGT applies the GT predicate on the "attempt" field.
func AttemptGT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldAttempt, v))
}

// AttemptGTE applies the GTE predicate on the "attempt" field.
func AttemptGTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldAttempt, v))
}

// AttemptLT applies the LT predicate on the "attempt" field.
func AttemptLT(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldAttempt, v))
}

// AttemptLTE applies the LTE predicate on the "attempt" field.
func AttemptLTE(v int) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldAttempt, v))
}

// ProcessingStartedAtEQ applies the EQ predicate on the "processing_started_at" field.
func ProcessingStartedAtEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtNEQ applies the NEQ predicate on the "processing_started_at" field.
func ProcessingStartedAtNEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtIn applies the In predicate on the "processing_started_at" field.
func ProcessingStartedAtIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldProcessingStartedAt, vs...))
}

// ProcessingStartedAtNotIn applies the NotIn predicate on the "processing_started_at" field.
func ProcessingStartedAtNotIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldProcessingStartedAt, vs...))
}

// ProcessingStartedAtGT applies the GT predicate on the "processing_started_at" field.
func ProcessingStartedAtGT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtGTE applies the GTE predicate on the "processing_started_at" field.
func ProcessingStartedAtGTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtLT applies the LT predicate on the "processing_started_at" field.
func ProcessingStartedAtLT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtLTE applies the LTE predicate on the "processing_started_at" field.
func ProcessingStartedAtLTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldProcessingStartedAt, v))
}

// ProcessingStartedAtIsNil applies the IsNil predicate on the "processing_started_at" field.
func ProcessingStartedAtIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldProcessingStartedAt))
}

// ProcessingStartedAtNotNil applies the NotNil predicate on the "processing_started_at" field.
func ProcessingStartedAtNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldProcessingStartedAt))
}

// AvailableAtEQ applies the EQ predicate on the "available_at" field.
func AvailableAtEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldAvailableAt, v))
}

// AvailableAtNEQ applies the NEQ predicate on the "available_at" field.
func AvailableAtNEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldAvailableAt, v))
}

// AvailableAtIn applies the In predicate on the "available_at" field.
func AvailableAtIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldAvailableAt, vs...))
}

// AvailableAtNotIn applies the NotIn predicate on the "available_at" field.
func AvailableAtNotIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldAvailableAt, vs...))
}

// AvailableAtGT applies the GT predicate on the "available_at" field.
func AvailableAtGT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldAvailableAt, v))
}

// AvailableAtGTE applies the GTE predicate on the "available_at" field.
func AvailableAtGTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldAvailableAt, v))
}

// AvailableAtLT applies the LT predicate on the "available_at" field.
func AvailableAtLT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldAvailableAt, v))
}

// AvailableAtLTE applies the LTE predicate on the "available_at" field.
func AvailableAtLTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldAvailableAt, v))
}

// MetaIsNil applies the IsNil predicate on the "meta" field.
func MetaIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldMeta))
}

// MetaNotNil applies the NotNil predicate on the "meta" field.
func MetaNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldMeta))
}

// ErrorJSONIsNil applies the IsNil predicate on the "error_json" field.
func ErrorJSONIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldErrorJSON))
}

// ErrorJSONNotNil applies the NotNil predicate on the "error_json" field.
func ErrorJSONNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldErrorJSON))
}

// LlmModelEQ applies the EQ predicate on the "llm_model" field.
func LlmModelEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldLlmModel, v))
}

// LlmModelNEQ applies the NEQ predicate on the "llm_model" field.
func LlmModelNEQ(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldLlmModel, v))
}

// LlmModelIn applies the In predicate on the "llm_model" field.
func LlmModelIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldLlmModel, vs...))
}

// LlmModelNotIn applies the NotIn predicate on the "llm_model" field.
func LlmModelNotIn(vs ...string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldLlmModel, vs...))
}

// LlmModelGT applies the GT predicate on the "llm_model" field.
func LlmModelGT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldLlmModel, v))
}

// LlmModelGTE applies the GTE predicate on the "llm_model" field.
func LlmModelGTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldLlmModel, v))
}

// LlmModelLT applies the LT predicate on the "llm_model" field.
func LlmModelLT(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldLlmModel, v))
}

// LlmModelLTE applies the LTE predicate on the "llm_model" field.
func LlmModelLTE(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldLlmModel, v))
}

// LlmModelContains applies the Contains predicate on the "llm_model" field.
func LlmModelContains(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContains(FieldLlmModel, v))
}

// LlmModelHasPrefix applies the HasPrefix predicate on the "llm_model" field.
func LlmModelHasPrefix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasPrefix(FieldLlmModel, v))
}

// LlmModelHasSuffix applies the HasSuffix predicate on the "llm_model" field.
func LlmModelHasSuffix(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldHasSuffix(FieldLlmModel, v))
}

// LlmModelIsNil applies the IsNil predicate on the "llm_model" field.
func LlmModelIsNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIsNull(FieldLlmModel))
}

// LlmModelNotNil applies the NotNil predicate on the "llm_model" field.
func LlmModelNotNil() predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotNull(FieldLlmModel))
}

// LlmModelEqualFold applies the EqualFold predicate on the "llm_model" field.
func LlmModelEqualFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEqualFold(FieldLlmModel, v))
}

// LlmModelContainsFold applies the ContainsFold predicate on the "llm_model" field.
func LlmModelContainsFold(v string) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldContainsFold(FieldLlmModel, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.FieldLTE(FieldUpdatedAt, v))
}

// HasRaw applies the HasEdge predicate on the "raw" edge.
func HasRaw() predicate.ExtractionJob {
	return predicate.ExtractionJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RawTable, RawColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRawWith applies the HasEdge predicate on the "raw" edge with a given conditions (other predicates).
func HasRawWith(preds ...predicate.RawMessage) predicate.ExtractionJob {
	return predicate.ExtractionJob(func(s *sql.Selector) {
		step := newRawStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.ExtractionJob) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.ExtractionJob) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.ExtractionJob) predicate.ExtractionJob {
	return predicate.ExtractionJob(sql.NotPredicates(p))
}
