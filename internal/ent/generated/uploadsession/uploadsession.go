// Code generated by ent, DO NOT EDIT.

package uploadsession

import (
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	ulid "github.com/oklog/ulid/v2"
)

const (
	// Label holds the string label denoting the uploadsession type in the database.
	Label = "upload_session"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldUserID holds the string denoting the user_id field in the database.
	FieldUserID = "user_id"
	// FieldKind holds the string denoting the kind field in the database.
	FieldKind = "kind"
	// FieldProcessStatus holds the string denoting the process_status field in the database.
	FieldProcessStatus = "process_status"
	// FieldProcessProgress holds the string denoting the process_progress field in the database.
	FieldProcessProgress = "process_progress"
	// FieldEndedAt holds the string denoting the ended_at field in the database.
	FieldEndedAt = "ended_at"
	// FieldProcessStartedAt holds the string denoting the process_started_at field in the database.
	FieldProcessStartedAt = "process_started_at"
	// FieldProcessEndedAt holds the string denoting the process_ended_at field in the database.
	FieldProcessEndedAt = "process_ended_at"
	// EdgeFiles holds the string denoting the files edge name in mutations.
	EdgeFiles = "files"
	// Table holds the table name of the uploadsession in the database.
	Table = "upload_sessions"
	// FilesTable is the table that holds the files relation/edge.
	FilesTable = "upload_session_files"
	// FilesInverseTable is the table name for the UploadSessionFile entity.
	// It exists in this package in order to avoid circular dependency with the "uploadsessionfile" package.
	FilesInverseTable = "upload_session_files"
	// FilesColumn is the table column denoting the files relation/edge.
	FilesColumn = "session_id"
)

// Columns holds all SQL columns for uploadsession fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldUserID,
	FieldKind,
	FieldProcessStatus,
	FieldProcessProgress,
	FieldEndedAt,
	FieldProcessStartedAt,
	FieldProcessEndedAt,
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
	// DefaultProcessProgress holds the default value on creation for the "process_progress" field.
	DefaultProcessProgress int
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() ulid.ULID
)

// Kind defines the type for the "kind" enum field.
type Kind string

// KindNewAudio is the default value of the Kind enum.
const DefaultKind = KindNewAudio

// Kind values.
const (
	KindNewAudio     Kind = "new_audio"
	KindReplaceAudio Kind = "replace_audio"
)

func (k Kind) String() string {
	return string(k)
}

// KindValidator is a validator for the "kind" field enum values. It is called by the builders before save.
func KindValidator(k Kind) error {
	switch k {
	case KindNewAudio, KindReplaceAudio:
		return nil
	default:
		return fmt.Errorf("uploadsession: invalid enum value for kind field: %q", k)
	}
}

// ProcessStatus defines the type for the "process_status" enum field.
type ProcessStatus string

// ProcessStatusNotStarted is the default value of the ProcessStatus enum.
const DefaultProcessStatus = ProcessStatusNotStarted

// ProcessStatus values.
const (
	ProcessStatusNotStarted ProcessStatus = "not_started"
	ProcessStatusRunning    ProcessStatus = "running"
	ProcessStatusFinished   ProcessStatus = "finished"
)

func (ps ProcessStatus) String() string {
	return string(ps)
}

// ProcessStatusValidator is a validator for the "process_status" field enum values. It is called by the builders before save.
func ProcessStatusValidator(ps ProcessStatus) error {
	switch ps {
	case ProcessStatusNotStarted, ProcessStatusRunning, ProcessStatusFinished:
		return nil
	default:
		return fmt.Errorf("uploadsession: invalid enum value for process_status field: %q", ps)
	}
}

// OrderOption defines the ordering options for the UploadSession queries.
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

// ByKind orders the results by the kind field.
func ByKind(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldKind, opts...).ToFunc()
}

// ByProcessStatus orders the results by the process_status field.
func ByProcessStatus(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessStatus, opts...).ToFunc()
}

// ByProcessProgress orders the results by the process_progress field.
func ByProcessProgress(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessProgress, opts...).ToFunc()
}

// ByEndedAt orders the results by the ended_at field.
func ByEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEndedAt, opts...).ToFunc()
}

// ByProcessStartedAt orders the results by the process_started_at field.
func ByProcessStartedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessStartedAt, opts...).ToFunc()
}

// ByProcessEndedAt orders the results by the process_ended_at field.
func ByProcessEndedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProcessEndedAt, opts...).ToFunc()
}

// ByFilesCount orders the results by files count.
func ByFilesCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newFilesStep(), opts...)
	}
}

// ByFiles orders the results by files terms.
func ByFiles(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFilesStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFilesStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FilesInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
	)
}
