// Code generated by ent, DO NOT EDIT.

package publishtracker

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	ulid "github.com/oklog/ulid/v2"
)

const (
	// Label holds the string label denoting the publishtracker type in the database.
	Label = "publish_tracker"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldRecitationID holds the string denoting the recitation_id field in the database.
	FieldRecitationID = "recitation_id"
	// FieldReplace holds the string denoting the replace field in the database.
	FieldReplace = "replace"
	// FieldXMLCopied holds the string denoting the xml_copied field in the database.
	FieldXMLCopied = "xml_copied"
	// FieldMp3Copied holds the string denoting the mp3_copied field in the database.
	FieldMp3Copied = "mp3_copied"
	// FieldFirstDbUpdated holds the string denoting the first_db_updated field in the database.
	FieldFirstDbUpdated = "first_db_updated"
	// FieldSecondDbUpdated holds the string denoting the second_db_updated field in the database.
	FieldSecondDbUpdated = "second_db_updated"
	// FieldFinished holds the string denoting the finished field in the database.
	FieldFinished = "finished"
	// FieldLastError holds the string denoting the last_error field in the database.
	FieldLastError = "last_error"
	// FieldFinishedAt holds the string denoting the finished_at field in the database.
	FieldFinishedAt = "finished_at"
	// EdgeRecitation holds the string denoting the recitation edge name in mutations.
	EdgeRecitation = "recitation"
	// Table holds the table name of the publishtracker in the database.
	Table = "publish_trackers"
	// RecitationTable is the table that holds the recitation relation/edge.
	RecitationTable = "publish_trackers"
	// RecitationInverseTable is the table name for the Recitation entity.
	// It exists in this package in order to avoid circular dependency with the "recitation" package.
	RecitationInverseTable = "recitations"
	// RecitationColumn is the table column denoting the recitation relation/edge.
	RecitationColumn = "recitation_id"
)

// Columns holds all SQL columns for publishtracker fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldRecitationID,
	FieldReplace,
	FieldXMLCopied,
	FieldMp3Copied,
	FieldFirstDbUpdated,
	FieldSecondDbUpdated,
	FieldFinished,
	FieldLastError,
	FieldFinishedAt,
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
	// DefaultReplace holds the default value on creation for the "replace" field.
	DefaultReplace bool
	// DefaultXMLCopied holds the default value on creation for the "xml_copied" field.
	DefaultXMLCopied bool
	// DefaultMp3Copied holds the default value on creation for the "mp3_copied" field.
	DefaultMp3Copied bool
	// DefaultFirstDbUpdated holds the default value on creation for the "first_db_updated" field.
	DefaultFirstDbUpdated bool
	// DefaultSecondDbUpdated holds the default value on creation for the "second_db_updated" field.
	DefaultSecondDbUpdated bool
	// DefaultFinished holds the default value on creation for the "finished" field.
	DefaultFinished bool
	// DefaultLastError holds the default value on creation for the "last_error" field.
	DefaultLastError string
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() ulid.ULID
)

// OrderOption defines the ordering options for the PublishTracker queries.
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

// ByRecitationID orders the results by the recitation_id field.
func ByRecitationID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRecitationID, opts...).ToFunc()
}

// ByReplace orders the results by the replace field.
func ByReplace(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldReplace, opts...).ToFunc()
}

// ByXMLCopied orders the results by the xml_copied field.
func ByXMLCopied(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldXMLCopied, opts...).ToFunc()
}

// ByMp3Copied orders the results by the mp3_copied field.
func ByMp3Copied(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMp3Copied, opts...).ToFunc()
}

// ByFirstDbUpdated orders the results by the first_db_updated field.
func ByFirstDbUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFirstDbUpdated, opts...).ToFunc()
}

// BySecondDbUpdated orders the results by the second_db_updated field.
func BySecondDbUpdated(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSecondDbUpdated, opts...).ToFunc()
}

// ByFinished orders the results by the finished field.
func ByFinished(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinished, opts...).ToFunc()
}

// ByLastError orders the results by the last_error field.
func ByLastError(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldLastError, opts...).ToFunc()
}

// ByFinishedAt orders the results by the finished_at field.
func ByFinishedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFinishedAt, opts...).ToFunc()
}

// ByRecitationField orders the results by recitation field.
func ByRecitationField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecitationStep(), sql.OrderByField(field, opts...))
	}
}
func newRecitationStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecitationInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, RecitationTable, RecitationColumn),
	)
}
