// Code generated by ent, DO NOT EDIT.

package poem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
)

const (
	// Label holds the string label denoting the poem type in the database.
	Label = "poem"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// FieldUpdatedAt holds the string denoting the updated_at field in the database.
	FieldUpdatedAt = "updated_at"
	// FieldTitle holds the string denoting the title field in the database.
	FieldTitle = "title"
	// FieldFullURL holds the string denoting the full_url field in the database.
	FieldFullURL = "full_url"
	// FieldVerses holds the string denoting the verses field in the database.
	FieldVerses = "verses"
	// EdgeRecitations holds the string denoting the recitations edge name in mutations.
	EdgeRecitations = "recitations"
	// Table holds the table name of the poem in the database.
	Table = "poems"
	// RecitationsTable is the table that holds the recitations relation/edge.
	RecitationsTable = "recitations"
	// RecitationsInverseTable is the table name for the Recitation entity.
	// It exists in this package in order to avoid circular dependency with the "recitation" package.
	RecitationsInverseTable = "recitations"
	// RecitationsColumn is the table column denoting the recitations relation/edge.
	RecitationsColumn = "poem_id"
)

// Columns holds all SQL columns for poem fields.
var Columns = []string{
	FieldID,
	FieldCreatedAt,
	FieldUpdatedAt,
	FieldTitle,
	FieldFullURL,
	FieldVerses,
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
	// DefaultFullURL holds the default value on creation for the "full_url" field.
	DefaultFullURL string
)

// OrderOption defines the ordering options for the Poem queries.
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

// ByTitle orders the results by the title field.
func ByTitle(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTitle, opts...).ToFunc()
}

// ByFullURL orders the results by the full_url field.
func ByFullURL(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFullURL, opts...).ToFunc()
}

// ByRecitationsCount orders the results by recitations count.
func ByRecitationsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newRecitationsStep(), opts...)
	}
}

// ByRecitations orders the results by recitations terms.
func ByRecitations(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newRecitationsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newRecitationsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(RecitationsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, RecitationsTable, RecitationsColumn),
	)
}
