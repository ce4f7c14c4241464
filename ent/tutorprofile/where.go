// Code generated by ent, DO NOT EDIT.

package tutorprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/tuitionlab/assignflow/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldContainsFold(FieldID, id))
}

// TutorID applies equality check predicate on the "tutor_id" field. It's identical to TutorIDEQ.
func TutorID(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldTutorID, v))
}

// PostalCode applies equality check predicate on the "postal_code" field. It's identical to PostalCodeEQ.
func PostalCode(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldPostalCode, v))
}

// Lat applies equality check predicate on the "lat" field. It's identical to LatEQ.
func Lat(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldLat, v))
}

// Lon applies equality check predicate on the "lon" field. It's identical to LonEQ.
func Lon(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldLon, v))
}

// MaxDistanceKm applies equality check predicate on the "max_distance_km" field. It's identical to MaxDistanceKmEQ.
func MaxDistanceKm(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldMaxDistanceKm, v))
}

// DmChatID applies equality check predicate on the "dm_chat_id" field. It's identical to DmChatIDEQ.
func DmChatID(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldDmChatID, v))
}

// Active applies equality check predicate on the "active" field. It's identical to ActiveEQ.
func Active(v bool) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldActive, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// TutorIDEQ applies the EQ predicate on the "tutor_id" field.
func TutorIDEQ(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldTutorID, v))
}

// TutorIDNEQ applies the NEQ predicate on the "tutor_id" field.
func TutorIDNEQ(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldTutorID, v))
}

// TutorIDIn applies the In predicate on the "tutor_id" field.
func TutorIDIn(vs ...string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldTutorID, vs...))
}

// TutorIDNotIn applies the NotIn predicate on the "tutor_id" field.
func TutorIDNotIn(vs ...string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldTutorID, vs...))
}

// TutorIDGT applies the GT predicate on the "tutor_id" field.
func TutorIDGT(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldTutorID, v))
}

// TutorIDGTE applies the GTE predicate on the "tutor_id" field.
func TutorIDGTE(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldTutorID, v))
}

// TutorIDLT applies the LT predicate on the "tutor_id" field.
func TutorIDLT(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldTutorID, v))
}

// TutorIDLTE applies the LTE predicate on the "tutor_id" field.
func TutorIDLTE(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldTutorID, v))
}

// TutorIDContains applies the Contains predicate on the "tutor_id" field.
func TutorIDContains(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldContains(FieldTutorID, v))
}

// TutorIDHasPrefix applies the HasPrefix predicate on the "tutor_id" field.
func TutorIDHasPrefix(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldHasPrefix(FieldTutorID, v))
}

// TutorIDHasSuffix applies the HasSuffix predicate on the "tutor_id" field.
func TutorIDHasSuffix(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldHasSuffix(FieldTutorID, v))
}

// TutorIDEqualFold applies the EqualFold predicate on the "tutor_id" field.
func TutorIDEqualFold(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEqualFold(FieldTutorID, v))
}

// TutorIDContainsFold applies the ContainsFold predicate on the "tutor_id" field.
func TutorIDContainsFold(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldContainsFold(FieldTutorID, v))
}

// SubjectsIsNil applies the IsNil predicate on the "subjects" field.
func SubjectsIsNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIsNull(FieldSubjects))
}

// SubjectsNotNil applies the NotNil predicate on the "subjects" field.
func SubjectsNotNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotNull(FieldSubjects))
}

// LevelsIsNil applies the IsNil predicate on the "levels" field.
func LevelsIsNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIsNull(FieldLevels))
}

// LevelsNotNil applies the NotNil predicate on the "levels" field.
func LevelsNotNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotNull(FieldLevels))
}

// PostalCodeEQ applies the EQ predicate on the "postal_code" field.
func PostalCodeEQ(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldPostalCode, v))
}

// PostalCodeNEQ applies the NEQ predicate on the "postal_code" field.
func PostalCodeNEQ(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldPostalCode, v))
}

// PostalCodeIn applies the In predicate on the "postal_code" field.
func PostalCodeIn(vs ...string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldPostalCode, vs...))
}

// PostalCodeNotIn applies the NotIn predicate on the "postal_code" field.
func PostalCodeNotIn(vs ...string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldPostalCode, vs...))
}

// PostalCodeGT applies the GT predicate on the "postal_code" field.
func PostalCodeGT(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldPostalCode, v))
}

// PostalCodeGTE applies the GTE predicate on the "postal_code" field.
func PostalCodeGTE(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldPostalCode, v))
}

// PostalCodeLT applies the LT predicate on the "postal_code" field.
func PostalCodeLT(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldPostalCode, v))
}

// PostalCodeLTE applies the LTE predicate on the "postal_code" field.
func PostalCodeLTE(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldPostalCode, v))
}

// PostalCodeContains applies the Contains predicate on the "postal_code" field.
func PostalCodeContains(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldContains(FieldPostalCode, v))
}

// PostalCodeHasPrefix applies the HasPrefix predicate on the "postal_code" field.
func PostalCodeHasPrefix(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldHasPrefix(FieldPostalCode, v))
}

// PostalCodeHasSuffix applies the HasSuffix predicate on the "postal_code" field.
func PostalCodeHasSuffix(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldHasSuffix(FieldPostalCode, v))
}

// PostalCodeIsNil applies the IsNil predicate on the "postal_code" field.
func PostalCodeIsNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIsNull(FieldPostalCode))
}

// PostalCodeNotNil applies the NotNil predicate on the "postal_code" field.
func PostalCodeNotNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotNull(FieldPostalCode))
}

// PostalCodeEqualFold applies the EqualFold predicate on the "postal_code" field.
func PostalCodeEqualFold(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEqualFold(FieldPostalCode, v))
}

// PostalCodeContainsFold applies the ContainsFold predicate on the "postal_code" field.
func PostalCodeContainsFold(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldContainsFold(FieldPostalCode, v))
}

// LatEQ applies the EQ predicate on the "lat" field.
func LatEQ(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldLat, v))
}

// LatNEQ applies the NEQ predicate on the "lat" field.
func LatNEQ(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldLat, v))
}

// LatIn applies the In predicate on the "lat" field.
func LatIn(vs ...float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldLat, vs...))
}

// LatNotIn applies the NotIn predicate on the "lat" field.
func LatNotIn(vs ...float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldLat, vs...))
}

// LatGT applies the GT predicate on the "lat" field.
func LatGT(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldLat, v))
}

// LatGTE applies the GTE predicate on the "lat" field.
func LatGTE(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldLat, v))
}

// LatLT applies the LT predicate on the "lat" field.
func LatLT(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldLat, v))
}

// LatLTE applies the LTE predicate on the "lat" field.
func LatLTE(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldLat, v))
}

// LatIsNil applies the IsNil predicate on the "lat" field.
func LatIsNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIsNull(FieldLat))
}

// LatNotNil applies the NotNil predicate on the "lat" field.
func LatNotNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotNull(FieldLat))
}

// LonEQ applies the EQ predicate on the "lon" field.
func LonEQ(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldLon, v))
}

// LonNEQ applies the NEQ predicate on the "lon" field.
func LonNEQ(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldLon, v))
}

// LonIn applies the In predicate on the "lon" field.
func LonIn(vs ...float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldLon, vs...))
}

// LonNotIn applies the NotIn predicate on the "lon" field.
func LonNotIn(vs ...float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldLon, vs...))
}

// LonGT applies the GT predicate on the "lon" field.
func LonGT(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldLon, v))
}

// LonGTE applies the GTE predicate on the "lon" field.
func LonGTE(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldLon, v))
}

// LonLT applies the LT predicate on the "lon" field.
func LonLT(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldLon, v))
}

// LonLTE applies the LTE predicate on the "lon" field.
func LonLTE(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldLon, v))
}

// LonIsNil applies the IsNil predicate on the "lon" field.
func LonIsNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIsNull(FieldLon))
}

// LonNotNil applies the NotNil predicate on the "lon" field.
func LonNotNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotNull(FieldLon))
}

// MaxDistanceKmEQ applies the EQ predicate on the "max_distance_km" field.
func MaxDistanceKmEQ(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldMaxDistanceKm, v))
}

// MaxDistanceKmNEQ applies the NEQ predicate on the "max_distance_km" field.
func MaxDistanceKmNEQ(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldMaxDistanceKm, v))
}

// MaxDistanceKmIn applies the In predicate on the "max_distance_km" field.
func MaxDistanceKmIn(vs ...float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldMaxDistanceKm, vs...))
}

// MaxDistanceKmNotIn applies the NotIn predicate on the "max_distance_km" field.
func MaxDistanceKmNotIn(vs ...float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldMaxDistanceKm, vs...))
}

// MaxDistanceKmGT applies the GT predicate on the "max_distance_km" field.
func MaxDistanceKmGT(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldMaxDistanceKm, v))
}

// MaxDistanceKmGTE applies the GTE predicate on the "max_distance_km" field.
func MaxDistanceKmGTE(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldMaxDistanceKm, v))
}

// MaxDistanceKmLT applies the LT predicate on the "max_distance_km" field.
func MaxDistanceKmLT(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldMaxDistanceKm, v))
}

// MaxDistanceKmLTE applies the LTE predicate on the "max_distance_km" field.
func MaxDistanceKmLTE(v float64) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldMaxDistanceKm, v))
}

// MaxDistanceKmIsNil applies the IsNil predicate on the "max_distance_km" field.
func MaxDistanceKmIsNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIsNull(FieldMaxDistanceKm))
}

// MaxDistanceKmNotNil applies the NotNil predicate on the "max_distance_km" field.
func MaxDistanceKmNotNil() predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotNull(FieldMaxDistanceKm))
}

// DmChatIDEQ applies the EQ predicate on the "dm_chat_id" field.
func DmChatIDEQ(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldDmChatID, v))
}

// DmChatIDNEQ applies the NEQ predicate on the "dm_chat_id" field.
func DmChatIDNEQ(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldDmChatID, v))
}

// DmChatIDIn applies the In predicate on the "dm_chat_id" field.
func DmChatIDIn(vs ...string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldDmChatID, vs...))
}

// DmChatIDNotIn applies the NotIn predicate on the "dm_chat_id" field.
func DmChatIDNotIn(vs ...string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldDmChatID, vs...))
}

// DmChatIDGT applies the GT predicate on the "dm_chat_id" field.
func DmChatIDGT(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldDmChatID, v))
}

// DmChatIDGTE applies the GTE predicate on the "dm_chat_id" field.
func DmChatIDGTE(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldDmChatID, v))
}

// DmChatIDLT applies the LT predicate on the "dm_chat_id" field.
func DmChatIDLT(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldDmChatID, v))
}

// DmChatIDLTE applies the LTE predicate on the "dm_chat_id" field.
func DmChatIDLTE(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldDmChatID, v))
}

// DmChatIDContains applies the Contains predicate on the "dm_chat_id" field.
func DmChatIDContains(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldContains(FieldDmChatID, v))
}

// DmChatIDHasPrefix applies the HasPrefix predicate on the "dm_chat_id" field.
func DmChatIDHasPrefix(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldHasPrefix(FieldDmChatID, v))
}

// DmChatIDHasSuffix applies the HasSuffix predicate on the "dm_chat_id" field.
func DmChatIDHasSuffix(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldHasSuffix(FieldDmChatID, v))
}

// DmChatIDEqualFold applies the EqualFold predicate on the "dm_chat_id" field.
func DmChatIDEqualFold(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEqualFold(FieldDmChatID, v))
}

// DmChatIDContainsFold applies the ContainsFold predicate on the "dm_chat_id" field.
func DmChatIDContainsFold(v string) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldContainsFold(FieldDmChatID, v))
}

// ActiveEQ applies the EQ predicate on the "active" field.
func ActiveEQ(v bool) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldActive, v))
}

// ActiveNEQ applies the NEQ predicate on the "active" field.
func ActiveNEQ(v bool) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldActive, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.TutorProfile {
	return predicate.TutorProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.TutorProfile) predicate.TutorProfile {
	return predicate.TutorProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.TutorProfile) predicate.TutorProfile {
	return predicate.TutorProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.TutorProfile) predicate.TutorProfile {
	return predicate.TutorProfile(sql.NotPredicates(p))
}
