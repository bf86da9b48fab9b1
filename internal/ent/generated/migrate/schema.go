// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// EventsColumns holds the columns for the "events" table.
	EventsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "type", Type: field.TypeString},
		{Name: "message", Type: field.TypeString, Default: ""},
		{Name: "subject_type", Type: field.TypeEnum, Enums: []string{"system", "upload_session", "recitation", "profile", "publish"}, Default: "system"},
		{Name: "subject_id", Type: field.TypeString, Nullable: true},
		{Name: "details", Type: field.TypeString, Default: ""},
		{Name: "timestamp", Type: field.TypeTime},
		{Name: "created_at", Type: field.TypeTime},
	}
	// EventsTable holds the schema information for the "events" table.
	EventsTable = &schema.Table{
		Name:       "events",
		Columns:    EventsColumns,
		PrimaryKey: []*schema.Column{EventsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "event_type",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[1]},
			},
			{
				Name:    "event_subject_type_subject_id",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[3], EventsColumns[4]},
			},
			{
				Name:    "event_timestamp",
				Unique:  false,
				Columns: []*schema.Column{EventsColumns[6]},
			},
		},
	}
	// PoemsColumns holds the columns for the "poems" table.
	PoemsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "title", Type: field.TypeString},
		{Name: "full_url", Type: field.TypeString, Default: ""},
		{Name: "verses", Type: field.TypeJSON, Nullable: true},
	}
	// PoemsTable holds the schema information for the "poems" table.
	PoemsTable = &schema.Table{
		Name:       "poems",
		Columns:    PoemsColumns,
		PrimaryKey: []*schema.Column{PoemsColumns[0]},
	}
	// PublishTrackersColumns holds the columns for the "publish_trackers" table.
	PublishTrackersColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "replace", Type: field.TypeBool, Default: false},
		{Name: "xml_copied", Type: field.TypeBool, Default: false},
		{Name: "mp3_copied", Type: field.TypeBool, Default: false},
		{Name: "first_db_updated", Type: field.TypeBool, Default: false},
		{Name: "second_db_updated", Type: field.TypeBool, Default: false},
		{Name: "finished", Type: field.TypeBool, Default: false},
		{Name: "last_error", Type: field.TypeString, Default: ""},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "recitation_id", Type: field.TypeInt},
	}
	// PublishTrackersTable holds the schema information for the "publish_trackers" table.
	PublishTrackersTable = &schema.Table{
		Name:       "publish_trackers",
		Columns:    PublishTrackersColumns,
		PrimaryKey: []*schema.Column{PublishTrackersColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "publish_trackers_recitations_trackers",
				Columns:    []*schema.Column{PublishTrackersColumns[11]},
				RefColumns: []*schema.Column{RecitationsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "publishtracker_recitation_id",
				Unique:  false,
				Columns: []*schema.Column{PublishTrackersColumns[11]},
			},
			{
				Name:    "publishtracker_finished",
				Unique:  false,
				Columns: []*schema.Column{PublishTrackersColumns[8]},
			},
		},
	}
	// RecitationsColumns holds the columns for the "recitations" table.
	RecitationsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeInt, Increment: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "audio_order", Type: field.TypeInt, Default: 1},
		{Name: "title", Type: field.TypeString},
		{Name: "artist_name", Type: field.TypeString},
		{Name: "artist_url", Type: field.TypeString, Default: ""},
		{Name: "source_name", Type: field.TypeString, Default: ""},
		{Name: "source_url", Type: field.TypeString, Default: ""},
		{Name: "file_suffix", Type: field.TypeString},
		{Name: "legacy_guid", Type: field.TypeUUID, Unique: true},
		{Name: "checksum", Type: field.TypeString, Unique: true},
		{Name: "mp3_size", Type: field.TypeInt64, Default: 0},
		{Name: "file_stem", Type: field.TypeString},
		{Name: "sound_folder", Type: field.TypeString, Default: ""},
		{Name: "local_mp3_path", Type: field.TypeString, Default: ""},
		{Name: "local_xml_path", Type: field.TypeString, Default: ""},
		{Name: "review_status", Type: field.TypeEnum, Enums: []string{"draft", "pending", "approved", "rejected"}, Default: "draft"},
		{Name: "review_message", Type: field.TypeString, Default: ""},
		{Name: "reviewed_at", Type: field.TypeTime, Nullable: true},
		{Name: "reviewer_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_updated_at", Type: field.TypeTime, Nullable: true},
		{Name: "sync_status", Type: field.TypeEnum, Enums: []string{"new_item", "files_changed", "synchronized"}, Default: "new_item"},
		{Name: "poem_id", Type: field.TypeInt},
	}
	// RecitationsTable holds the schema information for the "recitations" table.
	RecitationsTable = &schema.Table{
		Name:       "recitations",
		Columns:    RecitationsColumns,
		PrimaryKey: []*schema.Column{RecitationsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "recitations_poems_recitations",
				Columns:    []*schema.Column{RecitationsColumns[24]},
				RefColumns: []*schema.Column{PoemsColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "recitation_poem_id",
				Unique:  false,
				Columns: []*schema.Column{RecitationsColumns[24]},
			},
			{
				Name:    "recitation_user_id",
				Unique:  false,
				Columns: []*schema.Column{RecitationsColumns[3]},
			},
			{
				Name:    "recitation_review_status_sync_status",
				Unique:  false,
				Columns: []*schema.Column{RecitationsColumns[18], RecitationsColumns[23]},
			},
		},
	}
	// RecitationProfilesColumns holds the columns for the "recitation_profiles" table.
	RecitationProfilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "deleted_at", Type: field.TypeTime, Nullable: true},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "name", Type: field.TypeString},
		{Name: "artist_name", Type: field.TypeString},
		{Name: "artist_url", Type: field.TypeString, Default: ""},
		{Name: "source_name", Type: field.TypeString, Default: ""},
		{Name: "source_url", Type: field.TypeString, Default: ""},
		{Name: "file_suffix", Type: field.TypeString},
		{Name: "is_default", Type: field.TypeBool, Default: false},
	}
	// RecitationProfilesTable holds the schema information for the "recitation_profiles" table.
	RecitationProfilesTable = &schema.Table{
		Name:       "recitation_profiles",
		Columns:    RecitationProfilesColumns,
		PrimaryKey: []*schema.Column{RecitationProfilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "recitationprofile_user_id",
				Unique:  false,
				Columns: []*schema.Column{RecitationProfilesColumns[4]},
			},
			{
				Name:    "recitationprofile_user_id_is_default",
				Unique:  false,
				Columns: []*schema.Column{RecitationProfilesColumns[4], RecitationProfilesColumns[11]},
			},
		},
	}
	// UploadSessionsColumns holds the columns for the "upload_sessions" table.
	UploadSessionsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "user_id", Type: field.TypeUUID},
		{Name: "kind", Type: field.TypeEnum, Enums: []string{"new_audio", "replace_audio"}, Default: "new_audio"},
		{Name: "process_status", Type: field.TypeEnum, Enums: []string{"not_started", "running", "finished"}, Default: "not_started"},
		{Name: "process_progress", Type: field.TypeInt, Default: 0},
		{Name: "ended_at", Type: field.TypeTime, Nullable: true},
		{Name: "process_started_at", Type: field.TypeTime, Nullable: true},
		{Name: "process_ended_at", Type: field.TypeTime, Nullable: true},
	}
	// UploadSessionsTable holds the schema information for the "upload_sessions" table.
	UploadSessionsTable = &schema.Table{
		Name:       "upload_sessions",
		Columns:    UploadSessionsColumns,
		PrimaryKey: []*schema.Column{UploadSessionsColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "uploadsession_user_id",
				Unique:  false,
				Columns: []*schema.Column{UploadSessionsColumns[3]},
			},
			{
				Name:    "uploadsession_process_status",
				Unique:  false,
				Columns: []*schema.Column{UploadSessionsColumns[5]},
			},
		},
	}
	// UploadSessionFilesColumns holds the columns for the "upload_session_files" table.
	UploadSessionFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeString, Unique: true},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "updated_at", Type: field.TypeTime},
		{Name: "display_name", Type: field.TypeString},
		{Name: "original_name", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString, Default: ""},
		{Name: "byte_length", Type: field.TypeInt64, Default: 0},
		{Name: "temp_path", Type: field.TypeString, Default: ""},
		{Name: "checksum", Type: field.TypeString, Default: ""},
		{Name: "processed", Type: field.TypeBool, Default: false},
		{Name: "result_message", Type: field.TypeString, Default: ""},
		{Name: "session_id", Type: field.TypeString},
	}
	// UploadSessionFilesTable holds the schema information for the "upload_session_files" table.
	UploadSessionFilesTable = &schema.Table{
		Name:       "upload_session_files",
		Columns:    UploadSessionFilesColumns,
		PrimaryKey: []*schema.Column{UploadSessionFilesColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "upload_session_files_upload_sessions_files",
				Columns:    []*schema.Column{UploadSessionFilesColumns[11]},
				RefColumns: []*schema.Column{UploadSessionsColumns[0]},
				OnDelete:   schema.Cascade,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "uploadsessionfile_session_id",
				Unique:  false,
				Columns: []*schema.Column{UploadSessionFilesColumns[11]},
			},
			{
				Name:    "uploadsessionfile_checksum",
				Unique:  false,
				Columns: []*schema.Column{UploadSessionFilesColumns[8]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		EventsTable,
		PoemsTable,
		PublishTrackersTable,
		RecitationsTable,
		RecitationProfilesTable,
		UploadSessionsTable,
		UploadSessionFilesTable,
	}
)

func init() {
	EventsTable.Annotation = &entsql.Annotation{
		Table: "events",
	}
	PoemsTable.Annotation = &entsql.Annotation{
		Table: "poems",
	}
	PublishTrackersTable.ForeignKeys[0].RefTable = RecitationsTable
	PublishTrackersTable.Annotation = &entsql.Annotation{
		Table: "publish_trackers",
	}
	RecitationsTable.ForeignKeys[0].RefTable = PoemsTable
	RecitationsTable.Annotation = &entsql.Annotation{
		Table: "recitations",
	}
	RecitationProfilesTable.Annotation = &entsql.Annotation{
		Table: "recitation_profiles",
	}
	UploadSessionsTable.Annotation = &entsql.Annotation{
		Table: "upload_sessions",
	}
	UploadSessionFilesTable.ForeignKeys[0].RefTable = UploadSessionsTable
	UploadSessionFilesTable.Annotation = &entsql.Annotation{
		Table: "upload_session_files",
	}
}
