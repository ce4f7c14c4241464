// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/tuitionlab/assignflow/ent/assignment"
	"github.com/tuitionlab/assignflow/ent/broadcastrecord"
	"github.com/tuitionlab/assignflow/ent/clickrecord"
	"github.com/tuitionlab/assignflow/ent/deliveryrecord"
	"github.com/tuitionlab/assignflow/ent/duplicategroup"
	"github.com/tuitionlab/assignflow/ent/extractionjob"
	"github.com/tuitionlab/assignflow/ent/rating"
	"github.com/tuitionlab/assignflow/ent/rawmessage"
	"github.com/tuitionlab/assignflow/ent/schema"
	"github.com/tuitionlab/assignflow/ent/tutorprofile"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	assignmentFields := schema.Assignment{}.Fields()
	_ = assignmentFields
	// assignmentDescPostalCoordsEstimated is the schema descriptor for postal_coords_estimated field.
	assignmentDescPostalCoordsEstimated := assignmentFields[18].Descriptor()
	// assignment.DefaultPostalCoordsEstimated holds the default value on creation for the postal_coords_estimated field.
	assignment.DefaultPostalCoordsEstimated = assignmentDescPostalCoordsEstimated.Default.(bool)
	// assignmentDescCanonicalizationVersion is the schema descriptor for canonicalization_version field.
	assignmentDescCanonicalizationVersion := assignmentFields[30].Descriptor()
	// assignment.DefaultCanonicalizationVersion holds the default value on creation for the canonicalization_version field.
	assignment.DefaultCanonicalizationVersion = assignmentDescCanonicalizationVersion.Default.(int)
	// assignmentDescCreatedAt is the schema descriptor for created_at field.
	assignmentDescCreatedAt := assignmentFields[31].Descriptor()
	// assignment.DefaultCreatedAt holds the default value on creation for the created_at field.
	assignment.DefaultCreatedAt = assignmentDescCreatedAt.Default.(func() time.Time)
	// assignmentDescLastSeen is the schema descriptor for last_seen field.
	assignmentDescLastSeen := assignmentFields[34].Descriptor()
	// assignment.DefaultLastSeen holds the default value on creation for the last_seen field.
	assignment.DefaultLastSeen = assignmentDescLastSeen.Default.(func() time.Time)
	// assignmentDescBumpCount is the schema descriptor for bump_count field.
	assignmentDescBumpCount := assignmentFields[37].Descriptor()
	// assignment.DefaultBumpCount holds the default value on creation for the bump_count field.
	assignment.DefaultBumpCount = assignmentDescBumpCount.Default.(int)
	// assignmentDescIsPrimaryInGroup is the schema descriptor for is_primary_in_group field.
	assignmentDescIsPrimaryInGroup := assignmentFields[39].Descriptor()
	// assignment.DefaultIsPrimaryInGroup holds the default value on creation for the is_primary_in_group field.
	assignment.DefaultIsPrimaryInGroup = assignmentDescIsPrimaryInGroup.Default.(bool)
	broadcastrecordFields := schema.BroadcastRecord{}.Fields()
	_ = broadcastrecordFields
	// broadcastrecordDescClickBucket is the schema descriptor for click_bucket field.
	broadcastrecordDescClickBucket := broadcastrecordFields[5].Descriptor()
	// broadcastrecord.DefaultClickBucket holds the default value on creation for the click_bucket field.
	broadcastrecord.DefaultClickBucket = broadcastrecordDescClickBucket.Default.(int)
	// broadcastrecordDescCreatedAt is the schema descriptor for created_at field.
	broadcastrecordDescCreatedAt := broadcastrecordFields[6].Descriptor()
	// broadcastrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	broadcastrecord.DefaultCreatedAt = broadcastrecordDescCreatedAt.Default.(func() time.Time)
	// broadcastrecordDescUpdatedAt is the schema descriptor for updated_at field.
	broadcastrecordDescUpdatedAt := broadcastrecordFields[7].Descriptor()
	// broadcastrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	broadcastrecord.DefaultUpdatedAt = broadcastrecordDescUpdatedAt.Default.(func() time.Time)
	// broadcastrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	broadcastrecord.UpdateDefaultUpdatedAt = broadcastrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	clickrecordFields := schema.ClickRecord{}.Fields()
	_ = clickrecordFields
	// clickrecordDescClickCount is the schema descriptor for click_count field.
	clickrecordDescClickCount := clickrecordFields[2].Descriptor()
	// clickrecord.DefaultClickCount holds the default value on creation for the click_count field.
	clickrecord.DefaultClickCount = clickrecordDescClickCount.Default.(int)
	// clickrecordDescCreatedAt is the schema descriptor for created_at field.
	clickrecordDescCreatedAt := clickrecordFields[4].Descriptor()
	// clickrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	clickrecord.DefaultCreatedAt = clickrecordDescCreatedAt.Default.(func() time.Time)
	// clickrecordDescUpdatedAt is the schema descriptor for updated_at field.
	clickrecordDescUpdatedAt := clickrecordFields[5].Descriptor()
	// clickrecord.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	clickrecord.DefaultUpdatedAt = clickrecordDescUpdatedAt.Default.(func() time.Time)
	// clickrecord.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	clickrecord.UpdateDefaultUpdatedAt = clickrecordDescUpdatedAt.UpdateDefault.(func() time.Time)
	deliveryrecordFields := schema.DeliveryRecord{}.Fields()
	_ = deliveryrecordFields
	// deliveryrecordDescCreatedAt is the schema descriptor for created_at field.
	deliveryrecordDescCreatedAt := deliveryrecordFields[5].Descriptor()
	// deliveryrecord.DefaultCreatedAt holds the default value on creation for the created_at field.
	deliveryrecord.DefaultCreatedAt = deliveryrecordDescCreatedAt.Default.(func() time.Time)
	duplicategroupFields := schema.DuplicateGroup{}.Fields()
	_ = duplicategroupFields
	// duplicategroupDescMemberCount is the schema descriptor for member_count field.
	duplicategroupDescMemberCount := duplicategroupFields[2].Descriptor()
	// duplicategroup.DefaultMemberCount holds the default value on creation for the member_count field.
	duplicategroup.DefaultMemberCount = duplicategroupDescMemberCount.Default.(int)
	// duplicategroupDescAvgConfidenceScore is the schema descriptor for avg_confidence_score field.
	duplicategroupDescAvgConfidenceScore := duplicategroupFields[3].Descriptor()
	// duplicategroup.DefaultAvgConfidenceScore holds the default value on creation for the avg_confidence_score field.
	duplicategroup.DefaultAvgConfidenceScore = duplicategroupDescAvgConfidenceScore.Default.(float64)
	// duplicategroupDescCreatedAt is the schema descriptor for created_at field.
	duplicategroupDescCreatedAt := duplicategroupFields[7].Descriptor()
	// duplicategroup.DefaultCreatedAt holds the default value on creation for the created_at field.
	duplicategroup.DefaultCreatedAt = duplicategroupDescCreatedAt.Default.(func() time.Time)
	// duplicategroupDescUpdatedAt is the schema descriptor for updated_at field.
	duplicategroupDescUpdatedAt := duplicategroupFields[8].Descriptor()
	// duplicategroup.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	duplicategroup.DefaultUpdatedAt = duplicategroupDescUpdatedAt.Default.(func() time.Time)
	// duplicategroup.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	duplicategroup.UpdateDefaultUpdatedAt = duplicategroupDescUpdatedAt.UpdateDefault.(func() time.Time)
	extractionjobFields := schema.ExtractionJob{}.Fields()
	_ = extractionjobFields
	// extractionjobDescAttempt is the schema descriptor for attempt field.
	extractionjobDescAttempt := extractionjobFields[4].Descriptor()
	// extractionjob.DefaultAttempt holds the default value on creation for the attempt field.
	extractionjob.DefaultAttempt = extractionjobDescAttempt.Default.(int)
	// extractionjobDescAvailableAt is the schema descriptor for available_at field.
	extractionjobDescAvailableAt := extractionjobFields[6].Descriptor()
	// extractionjob.DefaultAvailableAt holds the default value on creation for the available_at field.
	extractionjob.DefaultAvailableAt = extractionjobDescAvailableAt.Default.(func() time.Time)
	// extractionjobDescCreatedAt is the schema descriptor for created_at field.
	extractionjobDescCreatedAt := extractionjobFields[10].Descriptor()
	// extractionjob.DefaultCreatedAt holds the default value on creation for the created_at field.
	extractionjob.DefaultCreatedAt = extractionjobDescCreatedAt.Default.(func() time.Time)
	// extractionjobDescUpdatedAt is the schema descriptor for updated_at field.
	extractionjobDescUpdatedAt := extractionjobFields[11].Descriptor()
	// extractionjob.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	extractionjob.DefaultUpdatedAt = extractionjobDescUpdatedAt.Default.(func() time.Time)
	// extractionjob.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	extractionjob.UpdateDefaultUpdatedAt = extractionjobDescUpdatedAt.UpdateDefault.(func() time.Time)
	ratingFields := schema.Rating{}.Fields()
	_ = ratingFields
	// ratingDescCreatedAt is the schema descriptor for created_at field.
	ratingDescCreatedAt := ratingFields[5].Descriptor()
	// rating.DefaultCreatedAt holds the default value on creation for the created_at field.
	rating.DefaultCreatedAt = ratingDescCreatedAt.Default.(func() time.Time)
	rawmessageFields := schema.RawMessage{}.Fields()
	_ = rawmessageFields
	// rawmessageDescCreatedAt is the schema descriptor for created_at field.
	rawmessageDescCreatedAt := rawmessageFields[8].Descriptor()
	// rawmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	rawmessage.DefaultCreatedAt = rawmessageDescCreatedAt.Default.(func() time.Time)
	tutorprofileFields := schema.TutorProfile{}.Fields()
	_ = tutorprofileFields
	// tutorprofileDescActive is the schema descriptor for active field.
	tutorprofileDescActive := tutorprofileFields[9].Descriptor()
	// tutorprofile.DefaultActive holds the default value on creation for the active field.
	tutorprofile.DefaultActive = tutorprofileDescActive.Default.(bool)
	// tutorprofileDescCreatedAt is the schema descriptor for created_at field.
	tutorprofileDescCreatedAt := tutorprofileFields[10].Descriptor()
	// tutorprofile.DefaultCreatedAt holds the default value on creation for the created_at field.
	tutorprofile.DefaultCreatedAt = tutorprofileDescCreatedAt.Default.(func() time.Time)
	// tutorprofileDescUpdatedAt is the schema descriptor for updated_at field.
	tutorprofileDescUpdatedAt := tutorprofileFields[11].Descriptor()
	// tutorprofile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tutorprofile.DefaultUpdatedAt = tutorprofileDescUpdatedAt.Default.(func() time.Time)
	// tutorprofile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tutorprofile.UpdateDefaultUpdatedAt = tutorprofileDescUpdatedAt.UpdateDefault.(func() time.Time)
}
