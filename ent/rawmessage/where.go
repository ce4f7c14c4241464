// Code generated by ent, DO NOT EDIT.

package rawmessage

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldID, id))
}

// Channel applies equality check predicate on the "channel" field. It's identical to ChannelEQ.
func Channel(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldChannel, v))
}

// MessageID applies equality check predicate on the "message_id" field. It's identical to MessageIDEQ.
func MessageID(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldMessageID, v))
}

// AgencyID applies equality check predicate on the "agency_id" field. It's identical to AgencyIDEQ.
func AgencyID(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldAgencyID, v))
}

// Text applies equality check predicate on the "text" field. It's identical to TextEQ.
func Text(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldText, v))
}

// SourcePublishedAt applies equality check predicate on the "source_published_at" field. It's identical to SourcePublishedAtEQ.
func SourcePublishedAt(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldSourcePublishedAt, v))
}

// SourceEditedAt applies equality check predicate on the "source_edited_at" field. It's identical to SourceEditedAtEQ.
func SourceEditedAt(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldSourceEditedAt, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldDeletedAt, v))
}

// ChannelEQ applies the EQ predicate on the "channel" field.
func ChannelEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldChannel, v))
}

// ChannelNEQ applies the NEQ predicate on the "channel" field.
func ChannelNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldChannel, v))
}

// ChannelIn applies the In predicate on the "channel" field.
func ChannelIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldChannel, vs...))
}

// ChannelNotIn applies the NotIn predicate on the "channel" field.
func ChannelNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldChannel, vs...))
}

// ChannelGT applies the GT predicate on the "channel" field.
func ChannelGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldChannel, v))
}

// ChannelGTE applies the GTE predicate on the "channel" field.
func ChannelGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldChannel, v))
}

// ChannelLT applies the LT predicate on the "channel" field.
func ChannelLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldChannel, v))
}

// ChannelLTE applies the LTE predicate on the "channel" field.
func ChannelLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldChannel, v))
}

// ChannelContains applies the Contains predicate on the "channel" field.
func ChannelContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldChannel, v))
}

// ChannelHasPrefix applies the HasPrefix predicate on the "channel" field.
func ChannelHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldChannel, v))
}

// ChannelHasSuffix applies the HasSuffix predicate on the "channel" field.
func ChannelHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldChannel, v))
}

// ChannelEqualFold applies the EqualFold predicate on the "channel" field.
func ChannelEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldChannel, v))
}

// ChannelContainsFold applies the ContainsFold predicate on the "channel" field.
func ChannelContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldChannel, v))
}

// MessageIDEQ applies the EQ predicate on the "message_id" field.
func MessageIDEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldMessageID, v))
}

// MessageIDNEQ applies the NEQ predicate on the "message_id" field.
func MessageIDNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldMessageID, v))
}

// MessageIDIn applies the In predicate on the "message_id" field.
func MessageIDIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldMessageID, vs...))
}

// MessageIDNotIn applies the NotIn predicate on the "message_id" field.
func MessageIDNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldMessageID, vs...))
}

// MessageIDGT applies the GT predicate on the "message_id" field.
func MessageIDGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldMessageID, v))
}

// MessageIDGTE applies the GTE predicate on the "message_id" field.
func MessageIDGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldMessageID, v))
}

// MessageIDLT applies the LT predicate on the "message_id" field.
func MessageIDLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldMessageID, v))
}

// MessageIDLTE applies the LTE predicate on the "message_id" field.
func MessageIDLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldMessageID, v))
}

// MessageIDContains applies the Contains predicate on the "message_id" field.
func MessageIDContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldMessageID, v))
}

// MessageIDHasPrefix applies the HasPrefix predicate on the "message_id" field.
func MessageIDHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldMessageID, v))
}

// MessageIDHasSuffix applies the HasSuffix predicate on the "message_id" field.
func MessageIDHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldMessageID, v))
}

// MessageIDEqualFold applies the EqualFold predicate on the "message_id" field.
func MessageIDEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldMessageID, v))
}

// MessageIDContainsFold applies the ContainsFold predicate on the "message_id" field.
func MessageIDContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldMessageID, v))
}

// AgencyIDEQ applies the EQ predicate on the "agency_id" field.
func AgencyIDEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldAgencyID, v))
}

// AgencyIDNEQ applies the NEQ predicate on the "agency_id" field.
func AgencyIDNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldAgencyID, v))
}

// AgencyIDIn applies the In predicate on the "agency_id" field.
func AgencyIDIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldAgencyID, vs...))
}

// AgencyIDNotIn applies the NotIn predicate on the "agency_id" field.
func AgencyIDNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldAgencyID, vs...))
}

// AgencyIDGT applies the GT predicate on the "agency_id" field.
func AgencyIDGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldAgencyID, v))
}

// AgencyIDGTE applies the GTE predicate on the "agency_id" field.
func AgencyIDGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldAgencyID, v))
}

// AgencyIDLT applies the LT predicate on the "agency_id" field.
func AgencyIDLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldAgencyID, v))
}

// AgencyIDLTE applies the LTE predicate on the "agency_id" field.
func AgencyIDLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldAgencyID, v))
}

// AgencyIDContains applies the Contains predicate on the "agency_id" field.
func AgencyIDContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldAgencyID, v))
}

// AgencyIDHasPrefix applies the HasPrefix predicate on the "agency_id" field.
func AgencyIDHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldAgencyID, v))
}

// AgencyIDHasSuffix applies the HasSuffix predicate on the "agency_id" field.
func AgencyIDHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldAgencyID, v))
}

// AgencyIDEqualFold applies the EqualFold predicate on the "agency_id" field.
func AgencyIDEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldAgencyID, v))
}

// AgencyIDContainsFold applies the ContainsFold predicate on the "agency_id" field.
func AgencyIDContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldAgencyID, v))
}

// TextEQ applies the EQ predicate on the "text" field.
func TextEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldText, v))
}

// TextNEQ applies the NEQ predicate on the "text" field.
func TextNEQ(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldText, v))
}

// TextIn applies the In predicate on the "text" field.
func TextIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldText, vs...))
}

// TextNotIn applies the NotIn predicate on the "text" field.
func TextNotIn(vs ...string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldText, vs...))
}

// TextGT applies the GT predicate on the "text" field.
func TextGT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldText, v))
}

// TextGTE applies the GTE predicate on the "text" field.
func TextGTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldText, v))
}

// TextLT applies the LT predicate on the "text" field.
func TextLT(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldText, v))
}

// TextLTE applies the LTE predicate on the "text" field.
func TextLTE(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldText, v))
}

// TextContains applies the Contains predicate on the "text" field.
func TextContains(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContains(FieldText, v))
}

// TextHasPrefix applies the HasPrefix predicate on the "text" field.
func TextHasPrefix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasPrefix(FieldText, v))
}

// TextHasSuffix applies the HasSuffix predicate on the "text" field.
func TextHasSuffix(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldHasSuffix(FieldText, v))
}

// TextEqualFold applies the EqualFold predicate on the "text" field.
func TextEqualFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEqualFold(FieldText, v))
}

// TextContainsFold applies the ContainsFold predicate on the "text" field.
func TextContainsFold(v string) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldContainsFold(FieldText, v))
}

// SourcePublishedAtEQ applies the EQ predicate on the "source_published_at" field.
func SourcePublishedAtEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldSourcePublishedAt, v))
}

// SourcePublishedAtNEQ applies the NEQ predicate on the "source_published_at" field.
func SourcePublishedAtNEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldSourcePublishedAt, v))
}

// SourcePublishedAtIn applies the In predicate on the "source_published_at" field.
func SourcePublishedAtIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldSourcePublishedAt, vs...))
}

// SourcePublishedAtNotIn applies the NotIn predicate on the "source_published_at" field.
func SourcePublishedAtNotIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldSourcePublishedAt, vs...))
}

// SourcePublishedAtGT applies the GT predicate on the "source_published_at" field.
func SourcePublishedAtGT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldSourcePublishedAt, v))
}

// SourcePublishedAtGTE applies the GTE predicate on the "source_published_at" field.
func SourcePublishedAtGTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldSourcePublishedAt, v))
}

// SourcePublishedAtLT applies the LT predicate on the "source_published_at" field.
func SourcePublishedAtLT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldSourcePublishedAt, v))
}

// SourcePublishedAtLTE applies the LTE predicate on the "source_published_at" field.
func SourcePublishedAtLTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldSourcePublishedAt, v))
}

// SourceEditedAtEQ applies the EQ predicate on the "source_edited_at" field.
func SourceEditedAtEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldSourceEditedAt, v))
}

// SourceEditedAtNEQ applies the NEQ predicate on the "source_edited_at" field.
func SourceEditedAtNEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldSourceEditedAt, v))
}

// SourceEditedAtIn applies the In predicate on the "source_edited_at" field.
func SourceEditedAtIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldSourceEditedAt, vs...))
}

// SourceEditedAtNotIn applies the NotIn predicate on the "source_edited_at" field.
func SourceEditedAtNotIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldSourceEditedAt, vs...))
}

// SourceEditedAtGT applies the GT predicate on the "source_edited_at" field.
func SourceEditedAtGT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldSourceEditedAt, v))
}

// SourceEditedAtGTE applies the GTE predicate on the "source_edited_at" field.
func SourceEditedAtGTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldSourceEditedAt, v))
}

// SourceEditedAtLT applies the LT predicate on the "source_edited_at" field.
func SourceEditedAtLT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldSourceEditedAt, v))
}

// SourceEditedAtLTE applies the LTE predicate on the "source_edited_at" field.
func SourceEditedAtLTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldSourceEditedAt, v))
}

// SourceEditedAtIsNil applies the IsNil predicate on the "source_edited_at" field.
func SourceEditedAtIsNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIsNull(FieldSourceEditedAt))
}

// SourceEditedAtNotNil applies the NotNil predicate on the "source_edited_at" field.
func SourceEditedAtNotNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotNull(FieldSourceEditedAt))
}

// PayloadIsNil applies the IsNil predicate on the "payload" field.
func PayloadIsNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIsNull(FieldPayload))
}

// PayloadNotNil applies the NotNil predicate on the "payload" field.
func PayloadNotNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotNull(FieldPayload))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldCreatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.RawMessage {
	return predicate.RawMessage(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.RawMessage {
	return predicate.RawMessage(sql.FieldNotNull(FieldDeletedAt))
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.RawMessage {
	return predicate.RawMessage(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractionJob) predicate.RawMessage {
	return predicate.RawMessage(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RawMessage) predicate.RawMessage {
	return predicate.RawMessage(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RawMessage) predicate.RawMessage {
	return predicate.RawMessage(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RawMessage) predicate.RawMessage {
	return predicate.RawMessage(sql.NotPredicates(p))
}
