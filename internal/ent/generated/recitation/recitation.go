// Code generated by ent, DO NOT EDIT.

package recitation

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the recitation type in the database.
	Label = "recitation"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldPoemID holds the string denoting the poem_id field in the database.
	FieldPoemID = "poem_id"
	// FieldAudioOrder holds the string denoting the audio_order field in the database.
	FieldAudioOrder = "audio_order"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldArtistName holds the string denoting the artist_name field in the database.
	FieldArtistName = "artist_name"
	// FieldArtistURL holds the string denoting the artist_url field in the database.
	FieldArtistURL = "artist_url"
	// FieldSourceName holds the string denoting the source_name field in the database.
	FieldSourceName = "source_name"
	// FieldSourceURL holds the string denoting the source_url field in the database.
	FieldSourceURL = "source_url"
	// FieldFileSuffix holds the string denoting the file_suffix field in the database.
	FieldFileSuffix = "file_suffix"
	// FieldLegacyGUID holds the string denoting the legacy_guid field in the database.
	FieldLegacyGUID = "legacy_guid"
	// FieldChecksum holds the string denoting the checksum field in the database.
	FieldChecksum = "checksum"
	// FieldMp3Size holds the string denoting the mp3_size field in the database.
	FieldMp3Size = "mp3_size"
	// FieldFileStem holds the string denoting the file_stem field in the database.
	FieldFileStem = "file_stem"
	// FieldSoundFolder holds the string denoting the sound_folder field in the database.
	FieldSoundFolder = "sound_folder"
	// FieldLocalMp3Path holds the string denoting the local_mp3_path field in the database.
	FieldLocalMp3Path = "local_mp3_path"
	// FieldLocalXMLPath holds the string denoting the local_xml_path field in the database.
	FieldLocalXMLPath = "local_xml_path"
	// FieldReviewStatus holds the string denoting the review_status field in the database.
	FieldReviewStatus = "review_status"
	// FieldReviewMessage holds the string denoting the review_message field in the database.
	FieldReviewMessage = "review_message"
	// FieldReviewedAt holds the string denoting the reviewed_at field in the database.
	FieldReviewedAt = "reviewed_at"
	// FieldReviewerID holds the string denoting the reviewer_id field in the database.
	FieldReviewerID = "reviewer_id"
	// FieldFileUpdatedAt holds the string denoting the file_updated_at field in the database.
	FieldFileUpdatedAt = "file_updated_at"
	// FieldSyncStatus holds the string denoting the sync_status field in the database.
	FieldSyncStatus = "sync_status"
	// EdgePoem holds the string denoting the poem edge name in mutations.
	EdgePoem = "poem"
	// EdgeTrackers holds the string denoting the trackers edge name in mutations.
	EdgeTrackers = "trackers"
	// Table holds the table name of the recitation in the database.
	Table = "recitations"
	// PoemTable is the table that holds the poem relation/edge.
	PoemTable = "recitations"
	// PoemInverseTable is the table name for the Poem entity.
	// It exists in this package in order to avoid circular dependency with the "poem" package.
	PoemInverseTable = "poems"
	// PoemColumn is the table column denoting the poem relation/edge.
	PoemColumn = "poem_id"
	// TrackersTable is the table that holds the trackers relation/edge.
	TrackersTable = "publish_trackers"
	// TrackersInverseTable is the table name for the PublishTracker entity.
	// It exists in this package in order to avoid circular dependency with the "publishtracker" package.
	TrackersInverseTable = "publish_trackers"
	// TrackersColumn is the table column denoting the trackers relation/edge.
	TrackersColumn = "recitation_id"
)

// Columns holds all SQL columns for recitation fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldPoemID,
	FieldAudioOrder,
	FieldTitle,
	FieldArtistName,
	FieldArtistURL,
	FieldSourceName,
	FieldSourceURL,
	FieldFileSuffix,
	FieldLegacyGUID,
	FieldChecksum,
	FieldMp3Size,
	FieldFileStem,
	FieldSoundFolder,
	FieldLocalMp3Path,
	FieldLocalXMLPath,
	FieldReviewStatus,
	FieldReviewMessage,
	FieldReviewedAt,
	FieldReviewerID,
	FieldFileUpdatedAt,
	FieldSyncStatus,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultUpdatedAt holds the default value on creation for the "updated_at" field.
	DefaultUpdatedAt func() time.Time
	// UpdateDefaultUpdatedAt holds the default value on update for the "updated_at" field.
	UpdateDefaultUpdatedAt func() time.Time
	// DefaultAudioOrder holds the default value on creation for the "audio_order" field.
	DefaultAudioOrder int
	// DefaultArtistURL holds the default value on creation for the "artist_url" field.
	DefaultArtistURL string
	// DefaultSourceName holds the default value on creation for the "source_name" field.
	DefaultSourceName string
	// DefaultSourceURL holds the default value on creation for the "source_url" field.
	DefaultSourceURL string
	// DefaultMp3Size holds the default value on creation for the "mp3_size" field.
	DefaultMp3Size int64
	// DefaultSoundFolder holds the default value on creation for the "sound_folder" field.
	DefaultSoundFolder string
	// DefaultLocalMp3Path holds the default value on creation for the "local_mp3_path" field.
	DefaultLocalMp3Path string
	// DefaultLocalXMLPath holds the default value on creation for the "local_xml_path" field.
	DefaultLocalXMLPath string
	// DefaultReviewMessage holds the default value on creation for the "review_message" field.
	DefaultReviewMessage string
)

// ReviewStatus defines the type for the "review_status" enum field.
type ReviewStatus string

// ReviewStatusDraft is the default value of the ReviewStatus enum.
const DefaultReviewStatus = ReviewStatusDraft

// ReviewStatus values.
const (
	ReviewStatusDraft    ReviewStatus = "draft"
	ReviewStatusPending  ReviewStatus = "pending"
	ReviewStatusApproved ReviewStatus = "approved"
	ReviewStatusRejected ReviewStatus = "rejected"
)

func (rs ReviewStatus) String() string {
	return string(rs)
}

// ReviewStatusValidator is a validator for the "review_status" field enum values. It is called by the builders before save.
func ReviewStatusValidator(rs ReviewStatus) error {
	switch rs {
	case ReviewStatusDraft, ReviewStatusPending, ReviewStatusApproved, ReviewStatusRejected:
		return nil
	default:
		return fmt.Errorf("recitation: invalid enum value for review_status field: %q", rs)
	}
}

// SyncStatus defines the type for the "sync_status" enum field.
type SyncStatus string

// SyncStatusNewItem is the default value of the SyncStatus enum.
const DefaultSyncStatus = SyncStatusNewItem

// SyncStatus values.
const (
	SyncStatusNewItem      SyncStatus = "new_item"
	SyncStatusFilesChanged SyncStatus = "files_changed"
	SyncStatusSynchronized SyncStatus = "synchronized"
)

func (ss SyncStatus) String() string {
	return string(ss)
}

// SyncStatusValidator is a validator for the "sync_status" field enum values. It is called by the builders before save.
func SyncStatusValidator(ss SyncStatus) error {
	switch ss {
	case SyncStatusNewItem, SyncStatusFilesChanged, SyncStatusSynchronized:
		return nil
	default:
		return fmt.Errorf("recitation: invalid enum value for sync_status field: %q", ss)
	}
}

// OrderOption defines the ordering options for the Recitation queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByUpdatedAt orders the results by the updated_at field.
func ByUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUpdatedAt, opts...).ToFunc()
}

// ByUserID orders the results by the user_id field.
func ByUserID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUserID, opts...).ToFunc()
}

// ByPoemID orders the results by the poem_id field.
func ByPoemID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPoemID, opts...).ToFunc()
}

// ByAudioOrder orders the results by the audio_order field.
func ByAudioOrder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAudioOrder, opts...).ToFunc()
}

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByArtistName orders the results by the artist_name field.
func ByArtistName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtistName, opts...).ToFunc()
}

// ByArtistURL orders the results by the artist_url field.
func ByArtistURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldArtistURL, opts...).ToFunc()
}

// BySourceName orders the results by the source_name field.
func BySourceName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceName, opts...).ToFunc()
}

// BySourceURL orders the results by the source_url field.
func BySourceURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSourceURL, opts...).ToFunc()
}

// ByFileSuffix orders the results by the file_suffix field.
func ByFileSuffix(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileSuffix, opts...).ToFunc()
}

// ByLegacyGUID orders the results by the legacy_guid field.
func ByLegacyGUID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLegacyGUID, opts...).ToFunc()
}

// ByChecksum orders the results by the checksum field.
func ByChecksum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChecksum, opts...).ToFunc()
}

// ByMp3Size orders the results by the mp3_size field.
func ByMp3Size(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMp3Size, opts...).ToFunc()
}

// ByFileStem orders the results by the file_stem field.
func ByFileStem(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileStem, opts...).ToFunc()
}

// BySoundFolder orders the results by the sound_folder field.
func BySoundFolder(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSoundFolder, opts...).ToFunc()
}

// ByLocalMp3Path orders the results by the local_mp3_path field.
func ByLocalMp3Path(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocalMp3Path, opts...).ToFunc()
}

// ByLocalXMLPath orders the results by the local_xml_path field.
func ByLocalXMLPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLocalXMLPath, opts...).ToFunc()
}

// ByReviewStatus orders the results by the review_status field.
func ByReviewStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewStatus, opts...).ToFunc()
}

// ByReviewMessage orders the results by the review_message field.
func ByReviewMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewMessage, opts...).ToFunc()
}

// ByReviewedAt orders the results by the reviewed_at field.
func ByReviewedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewedAt, opts...).ToFunc()
}

// ByReviewerID orders the results by the reviewer_id field.
func ByReviewerID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReviewerID, opts...).ToFunc()
}

// ByFileUpdatedAt orders the results by the file_updated_at field.
func ByFileUpdatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileUpdatedAt, opts...).ToFunc()
}

// BySyncStatus orders the results by the sync_status field.
func BySyncStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSyncStatus, opts...).ToFunc()
}

// ByPoemField orders the results by poem field.
func ByPoemField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newPoemStep(), sql.OrderByField(field, opts...))
	}
}

// ByTrackersCount orders the results by trackers count.
func ByTrackersCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newTrackersStep(), opts...)
	}
}

// ByTrackers orders the results by trackers terms.
func ByTrackers(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newTrackersStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newPoemStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(PoemInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, PoemTable, PoemColumn),
	)
}
func newTrackersStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(TrackersInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, TrackersTable, TrackersColumn),
	)
}
