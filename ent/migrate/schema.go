// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// AssignmentsColumns holds the columns for the "assignments" table.
	AssignmentsColumns = []*schema.Column{
		{Name: "assignment_id", Type: field.TypeString, Unique: true},
		{Name: "external_id", Type: field.TypeString},
		{Name: "agency_id", Type: field.TypeString},
		{Name: "assignment_code", Type: field.TypeString, Nullable: true},
		{Name: "message_link", Type: field.TypeString, Nullable: true},
		{Name: "academic_display_text", Type: field.TypeString, Size: 2147483647},
		{Name: "lesson_schedule", Type: field.TypeJSON, Nullable: true},
		{Name: "start_date", Type: field.TypeString, Nullable: true},
		{Name: "time_availability_note", Type: field.TypeString, Nullable: true},
		{Name: "tutor_types", Type: field.TypeJSON, Nullable: true},
		{Name: "learning_mode", Type: field.TypeString, Nullable: true},
		{Name: "rate_raw_text", Type: field.TypeString, Nullable: true},
		{Name: "rate_breakdown", Type: field.TypeString, Nullable: true},
		{Name: "address", Type: field.TypeJSON, Nullable: true},
		{Name: "postal_code", Type: field.TypeJSON, Nullable: true},
		{Name: "postal_code_estimated", Type: field.TypeJSON, Nullable: true},
		{Name: "postal_lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "postal_lon", Type: field.TypeFloat64, Nullable: true},
		{Name: "postal_coords_estimated", Type: field.TypeBool, Default: false},
		{Name: "region", Type: field.TypeString, Nullable: true},
		{Name: "nearest_mrt_computed", Type: field.TypeString, Nullable: true},
		{Name: "nearest_mrt_line", Type: field.TypeString, Nullable: true},
		{Name: "nearest_mrt_distance_m", Type: field.TypeInt, Nullable: true},
		{Name: "rate_min", Type: field.TypeFloat64, Nullable: true},
		{Name: "rate_max", Type: field.TypeFloat64, Nullable: true},
		{Name: "signals_subjects", Type: field.TypeJSON, Nullable: true},
		{Name: "signals_levels", Type: field.TypeJSON, Nullable: true},
		{Name: "signals_specific_student_levels", Type: field.TypeJSON, Nullable: true},
		{Name: "subjects_canonical", Type: field.TypeJSON, Nullable: true},
		{Name: "subjects_general", Type: field.TypeJSON, Nullable: true},
		{Name: "canonicalization_version", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "published_at", Type: field.TypeTime, Nullable: true},
		{Name: "source_last_seen", Type: field.TypeTime, Nullable: true},
		{Name: "last_seen", Type: field.TypeTime},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"open", "closed"}, Default: "open"},
		{Name: "freshness_tier", Type: field.TypeEnum, Enums: []string{"green", "yellow", "orange", "red"}, Default: "green"},
		{Name: "bump_count", Type: field.TypeInt, Default: 0},
		{Name: "is_primary_in_group", Type: field.TypeBool, Default: true},
		{Name: "duplicate_confidence_score", Type: field.TypeFloat64, Nullable: true},
		{Name: "duplicate_group_id", Type: field.TypeString, Nullable: true},
	}
	// AssignmentsTable holds the schema information for the "assignments" table.
	AssignmentsTable = &schema.Table{
		Name:       "assignments",
		Columns:    AssignmentsColumns,
		PrimaryKey: []*schema.Column{AssignmentsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "assignments_duplicate_groups_members",
				Columns:    []*schema.Column{AssignmentsColumns[40]},
				RefColumns: []*schema.Column{DuplicateGroupsColumns[0]},
				OnDelete:   schema.SetNull,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "assignment_agency_id_external_id",
				Unique:  true,
				Columns: []*schema.Column{AssignmentsColumns[2], AssignmentsColumns[1]},
			},
			{
				Name:    "assignment_status_published_at",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[35], AssignmentsColumns[32]},
			},
			{
				Name:    "assignment_status_last_seen",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[35], AssignmentsColumns[34]},
			},
			{
				Name:    "assignment_status_agency_id_published_at",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[35], AssignmentsColumns[2], AssignmentsColumns[32]},
			},
			{
				Name:    "assignment_duplicate_group_id",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[40]},
			},
			{
				Name:    "assignment_status_freshness_tier",
				Unique:  false,
				Columns: []*schema.Column{AssignmentsColumns[35], AssignmentsColumns[36]},
			},
		},
	}
	// BroadcastRecordsColumns holds the columns for the "broadcast_records" table.
	BroadcastRecordsColumns = []*schema.Column{
		{Name: "broadcast_id", Type: field.TypeString, Unique: true},
		{Name: "external_id", Type: field.TypeString, Unique: true},
		{Name: "content", Type: field.TypeString, Nullable: true, Size: 2147483647},
		{Name: "chat_id", Type: field.TypeString, Nullable: true},
		{Name: "transport_message_id", Type: field.TypeString, Nullable: true},
		{Name: "click_bucket", Type: field.TypeInt, Default: 0},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// BroadcastRecordsTable holds the schema information for the "broadcast_records" table.
	BroadcastRecordsTable = &schema.Table{
		Name:       "broadcast_records",
		Columns:    BroadcastRecordsColumns,
		PrimaryKey: []*schema.Column{BroadcastRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "broadcastrecord_updated_at",
				Unique:  false,
				Columns: []*schema.Column{BroadcastRecordsColumns[7]},
			},
		},
	}
	// ClickRecordsColumns holds the columns for the "click_records" table.
	ClickRecordsColumns = []*schema.Column{
		{Name: "click_id", Type: field.TypeString, Unique: true},
		{Name: "external_id", Type: field.TypeString, Unique: true},
		{Name: "click_count", Type: field.TypeInt, Default: 0},
		{Name: "original_url", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// ClickRecordsTable holds the schema information for the "click_records" table.
	ClickRecordsTable = &schema.Table{
		Name:       "click_records",
		Columns:    ClickRecordsColumns,
		PrimaryKey: []*schema.Column{ClickRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "clickrecord_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ClickRecordsColumns[5]},
			},
		},
	}
	// DeliveryRecordsColumns holds the columns for the "delivery_records" table.
	DeliveryRecordsColumns = []*schema.Column{
		{Name: "delivery_id", Type: field.TypeString, Unique: true},
		{Name: "tutor_id", Type: field.TypeString},
		{Name: "assignment_id", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"sent", "throttled", "failed"}, Default: "sent"},
		{Name: "transport_message_id", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// DeliveryRecordsTable holds the schema information for the "delivery_records" table.
	DeliveryRecordsTable = &schema.Table{
		Name:       "delivery_records",
		Columns:    DeliveryRecordsColumns,
		PrimaryKey: []*schema.Column{DeliveryRecordsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "deliveryrecord_tutor_id_assignment_id",
				Unique:  true,
				Columns: []*schema.Column{DeliveryRecordsColumns[1], DeliveryRecordsColumns[2]},
			},
			{
				Name:    "deliveryrecord_assignment_id",
				Unique:  false,
				Columns: []*schema.Column{DeliveryRecordsColumns[2]},
			},
		},
	}
	// DuplicateGroupsColumns holds the columns for the "duplicate_groups" table.
	DuplicateGroupsColumns = []*schema.Column{
		{Name: "group_id", Type: field.TypeString, Unique: true},
		{Name: "primary_assignment_id", Type: field.TypeString, Nullable: true},
		{Name: "member_count", Type: field.TypeInt, Default: 1},
		{Name: "avg_confidence_score", Type: field.TypeFloat64, Default: 0},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"active", "resolved"}, Default: "active"},
		{Name: "detection_algorithm_version", Type: field.TypeString},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// DuplicateGroupsTable holds the schema information for the "duplicate_groups" table.
	DuplicateGroupsTable = &schema.Table{
		Name:       "duplicate_groups",
		Columns:    DuplicateGroupsColumns,
		PrimaryKey: []*schema.Column{DuplicateGroupsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "duplicategroup_status",
				Unique:  false,
				Columns: []*schema.Column{DuplicateGroupsColumns[4]},
			},
			{
				Name:    "duplicategroup_created_at",
				Unique:  false,
				Columns: []*schema.Column{DuplicateGroupsColumns[7]},
			},
		},
	}
	// ExtractionJobsColumns holds the columns for the "extraction_jobs" table.
	ExtractionJobsColumns = []*schema.Column{
		{Name: "job_id", Type: field.TypeString, Unique: true},
		{Name: "pipeline_version", Type: field.TypeString},
		{Name: "status", Type: field.TypeEnum, Enums: []string{"pending", "processing", "ok", "failed", "skipped"}, Default: "pending"},
		{Name: "attempt", Type: field.TypeInt, Default: 0},
		{Name: "processing_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "available_at", Type: field.TypeTime},
		{Name: "meta", Type: field.TypeJSON, Nullable: true},
		{Name: "error_json", Type: field.TypeJSON, Nullable: true},
		{Name: "llm_model", Type: field.TypeString, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "raw_id", Type: field.TypeString},
	}
	// ExtractionJobsTable holds the schema information for the "extraction_jobs" table.
	ExtractionJobsTable = &schema.Table{
		Name:       "extraction_jobs",
		Columns:    ExtractionJobsColumns,
		PrimaryKey: []*schema.Column{ExtractionJobsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extraction_jobs_raw_messages_jobs",
				Columns:    []*schema.Column{ExtractionJobsColumns[11]},
				RefColumns: []*schema.Column{RawMessagesColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractionjob_raw_id_pipeline_version",
				Unique:  true,
				Columns: []*schema.Column{ExtractionJobsColumns[11], ExtractionJobsColumns[1]},
			},
			{
				Name:    "extractionjob_pipeline_version_status_created_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobsColumns[1], ExtractionJobsColumns[2], ExtractionJobsColumns[9]},
			},
			{
				Name:    "extractionjob_pipeline_version_status_available_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobsColumns[1], ExtractionJobsColumns[2], ExtractionJobsColumns[5]},
			},
			{
				Name:    "extractionjob_status_updated_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractionJobsColumns[2], ExtractionJobsColumns[10]},
			},
		},
	}
	// RatingsColumns holds the columns for the "ratings" table.
	RatingsColumns = []*schema.Column{
		{Name: "rating_id", Type: field.TypeString, Unique: true},
		{Name: "tutor_id", Type: field.TypeString},
		{Name: "assignment_id", Type: field.TypeString},
		{Name: "score", Type: field.TypeFloat64},
		{Name: "distance_km_at_send", Type: field.TypeFloat64, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
	}
	// RatingsTable holds the schema information for the "ratings" table.
	RatingsTable = &schema.Table{
		Name:       "ratings",
		Columns:    RatingsColumns,
		PrimaryKey: []*schema.Column{RatingsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rating_tutor_id_assignment_id",
				Unique:  true,
				Columns: []*schema.Column{RatingsColumns[1], RatingsColumns[2]},
			},
			{
				Name:    "rating_tutor_id_created_at",
				Unique:  false,
				Columns: []*schema.Column{RatingsColumns[1], RatingsColumns[5]},
			},
		},
	}
	// RawMessagesColumns holds the columns for the "raw_messages" table.
	RawMessagesColumns = []*schema.Column{
		{Name: "raw_id", Type: field.TypeString, Unique: true},
		{Name: "channel", Type: field.TypeString},
		{Name: "message_id", Type: field.TypeString},
		{Name: "agency_id", Type: field.TypeString},
		{Name: "text", Type: field.TypeString, Size: 2147483647},
		{Name: "source_published_at", Type: field.TypeTime},
		{Name: "source_edited_at", Type: field.TypeTime, Nullable: true},
		{Name: "payload", Type: field.TypeJSON, Nullable: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
	}
	// RawMessagesTable holds the schema information for the "raw_messages" table.
	RawMessagesTable = &schema.Table{
		Name:       "raw_messages",
		Columns:    RawMessagesColumns,
		PrimaryKey: []*schema.Column{RawMessagesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "rawmessage_channel_message_id",
				Unique:  true,
				Columns: []*schema.Column{RawMessagesColumns[1], RawMessagesColumns[2]},
			},
			{
				Name:    "rawmessage_agency_id",
				Unique:  false,
				Columns: []*schema.Column{RawMessagesColumns[3]},
			},
			{
				Name:    "rawmessage_created_at",
				Unique:  false,
				Columns: []*schema.Column{RawMessagesColumns[8]},
			},
			{
				Name:    "rawmessage_deleted_at",
				Unique:  false,
				Columns: []*schema.Column{RawMessagesColumns[9]},
				Annotation: &entsql.IndexAnnotation{
					Where: "deleted_at IS NOT NULL",
				},
			},
		},
	}
	// TutorProfilesColumns holds the columns for the "tutor_profiles" table.
	TutorProfilesColumns = []*schema.Column{
		{Name: "tutor_profile_id", Type: field.TypeString, Unique: true},
		{Name: "tutor_id", Type: field.TypeString, Unique: true},
		{Name: "subjects", Type: field.TypeJSON, Nullable: true},
		{Name: "levels", Type: field.TypeJSON, Nullable: true},
		{Name: "postal_code", Type: field.TypeString, Nullable: true},
		{Name: "lat", Type: field.TypeFloat64, Nullable: true},
		{Name: "lon", Type: field.TypeFloat64, Nullable: true},
		{Name: "max_distance_km", Type: field.TypeFloat64, Nullable: true},
		{Name: "dm_chat_id", Type: field.TypeString},
		{Name: "active", Type: field.TypeBool, Default: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
	}
	// TutorProfilesTable holds the schema information for the "tutor_profiles" table.
	TutorProfilesTable = &schema.Table{
		Name:       "tutor_profiles",
		Columns:    TutorProfilesColumns,
		PrimaryKey: []*schema.Column{TutorProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "tutorprofile_active",
				Unique:  false,
				Columns: []*schema.Column{TutorProfilesColumns[9]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		AssignmentsTable,
		BroadcastRecordsTable,
		ClickRecordsTable,
		DeliveryRecordsTable,
		DuplicateGroupsTable,
		ExtractionJobsTable,
		RatingsTable,
		RawMessagesTable,
		TutorProfilesTable,
	}
)

func init() {
	AssignmentsTable.ForeignKeys[0].RefTable = DuplicateGroupsTable
	ExtractionJobsTable.ForeignKeys[0].RefTable = RawMessagesTable
}
