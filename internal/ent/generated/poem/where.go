// Code generated by ent, DO NOT EDIT.

package poem

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Poem {
	return predicate.Poem(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Poem {
	return predicate.Poem(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Poem {
	return predicate.Poem(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Poem {
	return predicate.Poem(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Poem {
	return predicate.Poem(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Poem {
	return predicate.Poem(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Poem {
	return predicate.Poem(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Poem {
	return predicate.Poem(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Poem {
	return predicate.Poem(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldEQ(FieldUpdatedAt, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Poem {
	return predicate.Poem(sql.FieldEQ(FieldTitle, v))
}

// FullURL applies equality check predicate on the "full_url" field. It's identical to FullURLEQ.
func FullURL(v string) predicate.Poem {
	return predicate.Poem(sql.FieldEQ(FieldFullURL, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Poem {
	return predicate.Poem(sql.FieldLTE(FieldUpdatedAt, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Poem {
	return predicate.Poem(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Poem {
	return predicate.Poem(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Poem {
	return predicate.Poem(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Poem {
	return predicate.Poem(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Poem {
	return predicate.Poem(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Poem {
	return predicate.Poem(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Poem {
	return predicate.Poem(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Poem {
	return predicate.Poem(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Poem {
	return predicate.Poem(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Poem {
	return predicate.Poem(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Poem {
	return predicate.Poem(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Poem {
	return predicate.Poem(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Poem {
	return predicate.Poem(sql.FieldContainsFold(FieldTitle, v))
}

// FullURLEQ applies the EQ predicate on the "full_url" field.
func FullURLEQ(v string) predicate.Poem {
	return predicate.Poem(sql.FieldEQ(FieldFullURL, v))
}

// FullURLNEQ applies the NEQ predicate on the "full_url" field.
func FullURLNEQ(v string) predicate.Poem {
	return predicate.Poem(sql.FieldNEQ(FieldFullURL, v))
}

// FullURLIn applies the In predicate on the "full_url" field.
func FullURLIn(vs ...string) predicate.Poem {
	return predicate.Poem(sql.FieldIn(FieldFullURL, vs...))
}

// FullURLNotIn applies the NotIn predicate on the "full_url" field.
func FullURLNotIn(vs ...string) predicate.Poem {
	return predicate.Poem(sql.FieldNotIn(FieldFullURL, vs...))
}

// FullURLGT applies the GT predicate on the "full_url" field.
func FullURLGT(v string) predicate.Poem {
	return predicate.Poem(sql.FieldGT(FieldFullURL, v))
}

// FullURLGTE applies the GTE predicate on the "full_url" field.
func FullURLGTE(v string) predicate.Poem {
	return predicate.Poem(sql.FieldGTE(FieldFullURL, v))
}

// FullURLLT applies the LT predicate on the "full_url" field.
func FullURLLT(v string) predicate.Poem {
	return predicate.Poem(sql.FieldLT(FieldFullURL, v))
}

// FullURLLTE applies the LTE predicate on the "full_url" field.
func FullURLLTE(v string) predicate.Poem {
	return predicate.Poem(sql.FieldLTE(FieldFullURL, v))
}

// FullURLContains applies the Contains predicate on the "full_url" field.
func FullURLContains(v string) predicate.Poem {
	return predicate.Poem(sql.FieldContains(FieldFullURL, v))
}

// FullURLHasPrefix applies the HasPrefix predicate on the "full_url" field.
func FullURLHasPrefix(v string) predicate.Poem {
	return predicate.Poem(sql.FieldHasPrefix(FieldFullURL, v))
}

// FullURLHasSuffix applies the HasSuffix predicate on the "full_url" field.
func FullURLHasSuffix(v string) predicate.Poem {
	return predicate.Poem(sql.FieldHasSuffix(FieldFullURL, v))
}

// FullURLEqualFold applies the EqualFold predicate on the "full_url" field.
func FullURLEqualFold(v string) predicate.Poem {
	return predicate.Poem(sql.FieldEqualFold(FieldFullURL, v))
}

// FullURLContainsFold applies the ContainsFold predicate on the "full_url" field.
func FullURLContainsFold(v string) predicate.Poem {
	return predicate.Poem(sql.FieldContainsFold(FieldFullURL, v))
}

// VersesIsNil applies the IsNil predicate on the "verses" field.
func VersesIsNil() predicate.Poem {
	return predicate.Poem(sql.FieldIsNull(FieldVerses))
}

// VersesNotNil applies the NotNil predicate on the "verses" field.
func VersesNotNil() predicate.Poem {
	return predicate.Poem(sql.FieldNotNull(FieldVerses))
}

// HasRecitations applies the HasEdge predicate on the "recitations" edge.
func HasRecitations() predicate.Poem {
	return predicate.Poem(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, RecitationsTable, RecitationsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasRecitationsWith applies the HasEdge predicate on the "recitations" edge with a given conditions (other predicates).
func HasRecitationsWith(preds ...predicate.Recitation) predicate.Poem {
	return predicate.Poem(func(s *sql.Selector) {
		step := newRecitationsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Poem) predicate.Poem {
	return predicate.Poem(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Poem) predicate.Poem {
	return predicate.Poem(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Poem) predicate.Poem {
	return predicate.Poem(sql.NotPredicates(p))
}
