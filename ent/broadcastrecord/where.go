// Code generated by ent, DO NOT EDIT.

package broadcastrecord

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldContainsFold(FieldID, id))
}

// ExternalID applies equality check predicate on the "external_id" field. It's identical to ExternalIDEQ.
func ExternalID(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldExternalID, v))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldContent, v))
}

// ChatID applies equality check predicate on the "chat_id" field. It's identical to ChatIDEQ.
func ChatID(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldChatID, v))
}

// TransportMessageID applies equality check predicate on the "transport_message_id" field. It's identical to TransportMessageIDEQ.
func TransportMessageID(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldTransportMessageID, v))
}

// ClickBucket applies equality check predicate on the "click_bucket" field. It's identical to ClickBucketEQ.
func ClickBucket(v int) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldClickBucket, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// ExternalIDEQ applies the EQ predicate on the "external_id" field.
func ExternalIDEQ(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldExternalID, v))
}

// ExternalIDNEQ applies the NEQ predicate on the "external_id" field.
func ExternalIDNEQ(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNEQ(FieldExternalID, v))
}

// ExternalIDIn applies the In predicate on the "external_id" field.
func ExternalIDIn(vs ...string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldIn(FieldExternalID, vs...))
}

// ExternalIDNotIn applies the NotIn predicate on the "external_id" field.
func ExternalIDNotIn(vs ...string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNotIn(FieldExternalID, vs...))
}

// ExternalIDGT applies the GT predicate on the "external_id" field.
func ExternalIDGT(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGT(FieldExternalID, v))
}

// ExternalIDGTE applies the GTE predicate on the "external_id" field.
func ExternalIDGTE(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGTE(FieldExternalID, v))
}

// ExternalIDLT applies the LT predicate on the "external_id" field.
func ExternalIDLT(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLT(FieldExternalID, v))
}

// ExternalIDLTE applies the LTE predicate on the "external_id" field.
func ExternalIDLTE(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLTE(FieldExternalID, v))
}

// ExternalIDContains applies the Contains predicate on the "external_id" field.
func ExternalIDContains(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldContains(FieldExternalID, v))
}

// ExternalIDHasPrefix applies the HasPrefix predicate on the "external_id" field.
func ExternalIDHasPrefix(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldHasPrefix(FieldExternalID, v))
}

// ExternalIDHasSuffix applies the HasSuffix predicate on the "external_id" field.
func ExternalIDHasSuffix(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldHasSuffix(FieldExternalID, v))
}

// ExternalIDEqualFold applies the EqualFold predicate on the "external_id" field.
func ExternalIDEqualFold(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEqualFold(FieldExternalID, v))
}

// ExternalIDContainsFold applies the ContainsFold predicate on the "external_id" field.
func ExternalIDContainsFold(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldContainsFold(FieldExternalID, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldHasSuffix(FieldContent, v))
}

// ContentIsNil applies the IsNil predicate on the "content" field.
func ContentIsNil() predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldIsNull(FieldContent))
}

// ContentNotNil applies the NotNil predicate on the "content" field.
func ContentNotNil() predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNotNull(FieldContent))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldContainsFold(FieldContent, v))
}

// ChatIDEQ applies the EQ predicate on the "chat_id" field.
func ChatIDEQ(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldChatID, v))
}

// ChatIDNEQ applies the NEQ predicate on the "chat_id" field.
func ChatIDNEQ(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNEQ(FieldChatID, v))
}

// ChatIDIn applies the In predicate on the "chat_id" field.
func ChatIDIn(vs ...string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldIn(FieldChatID, vs...))
}

// ChatIDNotIn applies the NotIn predicate on the "chat_id" field.
func ChatIDNotIn(vs ...string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNotIn(FieldChatID, vs...))
}

// ChatIDGT applies the GT predicate on the "chat_id" field.
func ChatIDGT(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGT(FieldChatID, v))
}

// ChatIDGTE applies the GTE predicate on the "chat_id" field.
func ChatIDGTE(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGTE(FieldChatID, v))
}

// ChatIDLT applies the LT predicate on the "chat_id" field.
func ChatIDLT(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLT(FieldChatID, v))
}

// ChatIDLTE applies the LTE predicate on the "chat_id" field.
func ChatIDLTE(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLTE(FieldChatID, v))
}

// ChatIDContains applies the Contains predicate on the "chat_id" field.
func ChatIDContains(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldContains(FieldChatID, v))
}

// ChatIDHasPrefix applies the HasPrefix predicate on the "chat_id" field.
func ChatIDHasPrefix(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldHasPrefix(FieldChatID, v))
}

// ChatIDHasSuffix applies the HasSuffix predicate on the "chat_id" field.
func ChatIDHasSuffix(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldHasSuffix(FieldChatID, v))
}

// ChatIDIsNil applies the IsNil predicate on the "chat_id" field.
func ChatIDIsNil() predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldIsNull(FieldChatID))
}

// ChatIDNotNil applies the NotNil predicate on the "chat_id" field.
func ChatIDNotNil() predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNotNull(FieldChatID))
}

// ChatIDEqualFold applies the EqualFold predicate on the "chat_id" field.
func ChatIDEqualFold(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEqualFold(FieldChatID, v))
}

// ChatIDContainsFold applies the ContainsFold predicate on the "chat_id" field.
func ChatIDContainsFold(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldContainsFold(FieldChatID, v))
}

// TransportMessageIDEQ applies the EQ predicate on the "transport_message_id" field.
func TransportMessageIDEQ(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldTransportMessageID, v))
}

// TransportMessageIDNEQ applies the NEQ predicate on the "transport_message_id" field.
func TransportMessageIDNEQ(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNEQ(FieldTransportMessageID, v))
}

// TransportMessageIDIn applies the In predicate on the "transport_message_id" field.
func TransportMessageIDIn(vs ...string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldIn(FieldTransportMessageID, vs...))
}

// TransportMessageIDNotIn applies the NotIn predicate on the "transport_message_id" field.
func TransportMessageIDNotIn(vs ...string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNotIn(FieldTransportMessageID, vs...))
}

// TransportMessageIDGT applies the GT predicate on the "transport_message_id" field.
func TransportMessageIDGT(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGT(FieldTransportMessageID, v))
}

// TransportMessageIDGTE applies the GTE predicate on the "transport_message_id" field.
func TransportMessageIDGTE(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGTE(FieldTransportMessageID, v))
}

// TransportMessageIDLT applies the LT predicate on the "transport_message_id" field.
func TransportMessageIDLT(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLT(FieldTransportMessageID, v))
}

// TransportMessageIDLTE applies the LTE predicate on the "transport_message_id" field.
func TransportMessageIDLTE(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLTE(FieldTransportMessageID, v))
}

// TransportMessageIDContains applies the Contains predicate on the "transport_message_id" field.
func TransportMessageIDContains(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldContains(FieldTransportMessageID, v))
}

// TransportMessageIDHasPrefix applies the HasPrefix predicate on the "transport_message_id" field.
func TransportMessageIDHasPrefix(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldHasPrefix(FieldTransportMessageID, v))
}

// TransportMessageIDHasSuffix applies the HasSuffix predicate on the "transport_message_id" field.
func TransportMessageIDHasSuffix(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldHasSuffix(FieldTransportMessageID, v))
}

// TransportMessageIDIsNil applies the IsNil predicate on the "transport_message_id" field.
func TransportMessageIDIsNil() predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldIsNull(FieldTransportMessageID))
}

// TransportMessageIDNotNil applies the NotNil predicate on the "transport_message_id" field.
func TransportMessageIDNotNil() predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNotNull(FieldTransportMessageID))
}

// TransportMessageIDEqualFold applies the EqualFold predicate on the "transport_message_id" field.
func TransportMessageIDEqualFold(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEqualFold(FieldTransportMessageID, v))
}

// TransportMessageIDContainsFold applies the ContainsFold predicate on the "transport_message_id" field.
func TransportMessageIDContainsFold(v string) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldContainsFold(FieldTransportMessageID, v))
}

// ClickBucketEQ applies the EQ predicate on the "click_bucket" field.
func ClickBucketEQ(v int) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldClickBucket, v))
}

// ClickBucketNEQ applies the NEQ predicate on the "click_bucket" field.
func ClickBucketNEQ(v int) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNEQ(FieldClickBucket, v))
}

// ClickBucketIn applies the In predicate on the "click_bucket" field.
func ClickBucketIn(vs ...int) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldIn(FieldClickBucket, vs...))
}

// ClickBucketNotIn applies the NotIn predicate on the "click_bucket" field.
func ClickBucketNotIn(vs ...int) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNotIn(FieldClickBucket, vs...))
}

// ClickBucketGT applies the GT predicate on the "click_bucket" field.
func ClickBucketGT(v int) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGT(FieldClickBucket, v))
}

// ClickBucketGTE applies the GTE predicate on the "click_bucket" field.
func ClickBucketGTE(v int) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGTE(FieldClickBucket, v))
}

// ClickBucketLT applies the LT predicate on the "click_bucket" field.
func ClickBucketLT(v int) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLT(FieldClickBucket, v))
}

// ClickBucketLTE applies the LTE predicate on the "click_bucket" field.
func ClickBucketLTE(v int) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLTE(FieldClickBucket, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.BroadcastRecord) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.BroadcastRecord) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.BroadcastRecord) predicate.BroadcastRecord {
	return predicate.BroadcastRecord(sql.NotPredicates(p))
}
