// Code generated by ent, DO NOT EDIT.

package publishtracker

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	ulid "github.com/oklog/ulid/v2"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ULID) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ULID) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ULID) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ULID) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ULID) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ULID) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ULID) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ULID) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ULID) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldUpdatedAt, v))
}

// RecitationID applies equality check predicate on the "recitation_id" field. It's identical to RecitationIDEQ.
func RecitationID(v int) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldRecitationID, v))
}

// Replace applies equality check predicate on the "replace" field. It's identical to ReplaceEQ.
func Replace(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldReplace, v))
}

// XMLCopied applies equality check predicate on the "xml_copied" field. It's identical to XMLCopiedEQ.
func XMLCopied(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldXMLCopied, v))
}

// Mp3Copied applies equality check predicate on the "mp3_copied" field. It's identical to Mp3CopiedEQ.
func Mp3Copied(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldMp3Copied, v))
}

// FirstDbUpdated applies equality check predicate on the "first_db_updated" field. It's identical to FirstDbUpdatedEQ.
func FirstDbUpdated(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldFirstDbUpdated, v))
}

// SecondDbUpdated applies equality check predicate on the "second_db_updated" field. It's identical to SecondDbUpdatedEQ.
func SecondDbUpdated(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldSecondDbUpdated, v))
}

// Finished applies equality check predicate on the "finished" field. It's identical to FinishedEQ.
func Finished(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldFinished, v))
}

// LastError applies equality check predicate on the "last_error" field. It's identical to LastErrorEQ.
func LastError(v string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldLastError, v))
}

// FinishedAt applies equality check predicate on the "finished_at" field. It's identical to FinishedAtEQ.
func FinishedAt(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldFinishedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldLTE(FieldUpdatedAt, v))
}

// RecitationIDEQ applies the EQ predicate on the "recitation_id" field.
func RecitationIDEQ(v int) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldRecitationID, v))
}

// RecitationIDNEQ applies the NEQ predicate on the "recitation_id" field.
func RecitationIDNEQ(v int) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNEQ(FieldRecitationID, v))
}

// RecitationIDIn applies the In predicate on the "recitation_id" field.
func RecitationIDIn(vs ...int) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldIn(FieldRecitationID, vs...))
}

// RecitationIDNotIn applies the NotIn predicate on the "recitation_id" field.
func RecitationIDNotIn(vs ...int) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNotIn(FieldRecitationID, vs...))
}

// ReplaceEQ applies the EQ predicate on the "replace" field.
func ReplaceEQ(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldReplace, v))
}

// ReplaceNEQ applies the NEQ predicate on the "replace" field.
func ReplaceNEQ(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNEQ(FieldReplace, v))
}

// XMLCopiedEQ applies the EQ predicate on the "xml_copied" field.
func XMLCopiedEQ(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldXMLCopied, v))
}

// XMLCopiedNEQ applies the NEQ predicate on the "xml_copied" field.
func XMLCopiedNEQ(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNEQ(FieldXMLCopied, v))
}

// Mp3CopiedEQ applies the EQ predicate on the "mp3_copied" field.
func Mp3CopiedEQ(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldMp3Copied, v))
}

// Mp3CopiedNEQ applies the NEQ predicate on the "mp3_copied" field.
func Mp3CopiedNEQ(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNEQ(FieldMp3Copied, v))
}

// FirstDbUpdatedEQ applies the EQ predicate on the "first_db_updated" field.
func FirstDbUpdatedEQ(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldFirstDbUpdated, v))
}

// FirstDbUpdatedNEQ applies the NEQ predicate on the "first_db_updated" field.
func FirstDbUpdatedNEQ(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNEQ(FieldFirstDbUpdated, v))
}

// SecondDbUpdatedEQ applies the EQ predicate on the "second_db_updated" field.
func SecondDbUpdatedEQ(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldSecondDbUpdated, v))
}

// SecondDbUpdatedNEQ applies the NEQ predicate on the "second_db_updated" field.
func SecondDbUpdatedNEQ(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNEQ(FieldSecondDbUpdated, v))
}

// FinishedEQ applies the EQ predicate on the "finished" field.
func FinishedEQ(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldFinished, v))
}

// FinishedNEQ applies the NEQ predicate on the "finished" field.
func FinishedNEQ(v bool) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNEQ(FieldFinished, v))
}

// LastErrorEQ applies the EQ predicate on the "last_error" field.
func LastErrorEQ(v string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldLastError, v))
}

// LastErrorNEQ applies the NEQ predicate on the "last_error" field.
func LastErrorNEQ(v string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNEQ(FieldLastError, v))
}

// LastErrorIn applies the In predicate on the "last_error" field.
func LastErrorIn(vs ...string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldIn(FieldLastError, vs...))
}

// LastErrorNotIn applies the NotIn predicate on the "last_error" field.
func LastErrorNotIn(vs ...string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNotIn(FieldLastError, vs...))
}

// LastErrorGT applies the GT predicate on the "last_error" field.
func LastErrorGT(v string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldGT(FieldLastError, v))
}

// LastErrorGTE applies the GTE predicate on the "last_error" field.
func LastErrorGTE(v string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldGTE(FieldLastError, v))
}

// LastErrorLT applies the LT predicate on the "last_error" field.
func LastErrorLT(v string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldLT(FieldLastError, v))
}

// LastErrorLTE applies the LTE predicate on the "last_error" field.
func LastErrorLTE(v string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldLTE(FieldLastError, v))
}

// LastErrorContains applies the Contains predicate on the "last_error" field.
func LastErrorContains(v string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldContains(FieldLastError, v))
}

// LastErrorHasPrefix applies the HasPrefix predicate on the "last_error" field.
func LastErrorHasPrefix(v string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldHasPrefix(FieldLastError, v))
}

// LastErrorHasSuffix applies the HasSuffix predicate on the "last_error" field.
func LastErrorHasSuffix(v string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldHasSuffix(FieldLastError, v))
}

// LastErrorEqualFold applies the EqualFold predicate on the "last_error" field.
func LastErrorEqualFold(v string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEqualFold(FieldLastError, v))
}

// LastErrorContainsFold applies the ContainsFold predicate on the "last_error" field.
func LastErrorContainsFold(v string) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldContainsFold(FieldLastError, v))
}

// FinishedAtEQ applies the EQ predicate on the "finished_at" field.
func FinishedAtEQ(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldEQ(FieldFinishedAt, v))
}

// FinishedAtNEQ applies the NEQ predicate on the "finished_at" field.
func FinishedAtNEQ(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNEQ(FieldFinishedAt, v))
}

// FinishedAtIn applies the In predicate on the "finished_at" field.
func FinishedAtIn(vs ...time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldIn(FieldFinishedAt, vs...))
}

// FinishedAtNotIn applies the NotIn predicate on the "finished_at" field.
func FinishedAtNotIn(vs ...time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNotIn(FieldFinishedAt, vs...))
}

// FinishedAtGT applies the GT predicate on the "finished_at" field.
func FinishedAtGT(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldGT(FieldFinishedAt, v))
}

// FinishedAtGTE applies the GTE predicate on the "finished_at" field.
func FinishedAtGTE(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldGTE(FieldFinishedAt, v))
}

// FinishedAtLT applies the LT predicate on the "finished_at" field.
func FinishedAtLT(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldLT(FieldFinishedAt, v))
}

// FinishedAtLTE applies the LTE predicate on the "finished_at" field.
func FinishedAtLTE(v time.Time) predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldLTE(FieldFinishedAt, v))
}

// FinishedAtIsNil applies the IsNil predicate on the "finished_at" field.
func FinishedAtIsNil() predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldIsNull(FieldFinishedAt))
}

// FinishedAtNotNil applies the NotNil predicate on the "finished_at" field.
func FinishedAtNotNil() predicate.PublishTracker {
	return predicate.PublishTracker(sql.FieldNotNull(FieldFinishedAt))
}

// HasRecitation applies the HasEdge predicate on the "recitation" edge.
func HasRecitation() predicate.PublishTracker {
	return predicate.PublishTracker(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, RecitationTable, RecitationColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecitationWith applies the HasEdge predicate on the "recitation" edge with a given conditions (other predicates).
func HasRecitationWith(preds ...predicate.Recitation) predicate.PublishTracker {
	return predicate.PublishTracker(func(s *sql.Selector) {
		step := newRecitationStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.PublishTracker) predicate.PublishTracker {
	return predicate.PublishTracker(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.PublishTracker) predicate.PublishTracker {
	return predicate.PublishTracker(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.PublishTracker) predicate.PublishTracker {
	return predicate.PublishTracker(sql.NotPredicates(p))
}
