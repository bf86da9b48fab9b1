// Code generated by ent, DO NOT EDIT.

package uploadsessionfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	ulid "github.com/oklog/ulid/v2"
)

const (
	// Label holds the string label denoting the uploadsessionfile type in the database.
	Label = "upload_session_file"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldDisplayName holds the string denoting the display_name field in the database.
	FieldDisplayName = "display_name"
	// FieldOriginalName holds the string denoting the original_name field in the database.
	FieldOriginalName = "original_name"
	// FieldContentType holds the string denoting the content_type field in the database.
	FieldContentType = "content_type"
	// FieldByteLength holds the string denoting the byte_length field in the database.
	FieldByteLength = "byte_length"
	// FieldTempPath holds the string denoting the temp_path field in the database.
	FieldTempPath = "temp_path"
	// FieldChecksum holds the string denoting the checksum field in the database.
	FieldChecksum = "checksum"
	// FieldProcessed holds the string denoting the processed field in the database.
	FieldProcessed = "processed"
	// FieldResultMessage holds the string denoting the result_message field in the database.
	FieldResultMessage = "result_message"
	// EdgeSession holds the string denoting the session edge name in mutations.
	EdgeSession = "session"
	// Table holds the table name of the uploadsessionfile in the database.
	Table = "upload_session_files"
	// SessionTable is the table that holds the session relation/edge.
	SessionTable = "upload_session_files"
	// SessionInverseTable is the table name for the UploadSession entity.
	// It exists in this package in order to avoid circular dependency with the "uploadsession" package.
	SessionInverseTable = "upload_sessions"
	// SessionColumn is the table column denoting the session relation/edge.
	SessionColumn = "session_id"
)

// Columns holds all SQL columns for uploadsessionfile fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldSessionID,
	FieldDisplayName,
	FieldOriginalName,
	FieldContentType,
	FieldByteLength,
	FieldTempPath,
	FieldChecksum,
	FieldProcessed,
	FieldResultMessage,
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
	// DefaultContentType holds the default value on creation for the "content_type" field.
	DefaultContentType string
	// DefaultByteLength holds the default value on creation for the "byte_length" field.
	DefaultByteLength int64
	// DefaultTempPath holds the default value on creation for the "temp_path" field.
	DefaultTempPath string
	// DefaultChecksum holds the default value on creation for the "checksum" field.
	DefaultChecksum string
	// DefaultProcessed holds the default value on creation for the "processed" field.
	DefaultProcessed bool
	// DefaultResultMessage holds the default value on creation for the "result_message" field.
	DefaultResultMessage string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() ulid.ULID
)

// OrderOption defines the ordering options for the UploadSessionFile queries.
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

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByDisplayName orders the results by the display_name field.
func ByDisplayName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldDisplayName, opts...).ToFunc()
}

// ByOriginalName orders the results by the original_name field.
func ByOriginalName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalName, opts...).ToFunc()
}

// ByContentType orders the results by the content_type field.
func ByContentType(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldContentType, opts...).ToFunc()
}

// ByByteLength orders the results by the byte_length field.
func ByByteLength(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldByteLength, opts...).ToFunc()
}

// ByTempPath orders the results by the temp_path field.
func ByTempPath(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTempPath, opts...).ToFunc()
}

// ByChecksum orders the results by the checksum field.
func ByChecksum(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldChecksum, opts...).ToFunc()
}

// ByProcessed orders the results by the processed field.
func ByProcessed(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessed, opts...).ToFunc()
}

// ByResultMessage orders the results by the result_message field.
func ByResultMessage(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldResultMessage, opts...).ToFunc()
}

// BySessionField orders the results by session field.
func BySessionField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newSessionStep(), sql.OrderByField(field, opts...))
	}
}
func newSessionStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(SessionInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
	)
}
