// Code generated by ent, DO NOT EDIT.

package uploadsession

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	ulid "github.com/oklog/ulid/v2"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ULID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ULID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ULID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ULID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ULID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ULID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ULID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ULID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ULID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldUserID, v))
}

// ProcessProgress applies equality check predicate on the "process_progress" field. It's identical to ProcessProgressEQ.
func ProcessProgress(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldProcessProgress, v))
}

// EndedAt applies equality check predicate on the "ended_at" field. It's identical to EndedAtEQ.
func EndedAt(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldEndedAt, v))
}

// ProcessStartedAt applies equality check predicate on the "process_started_at" field. It's identical to ProcessStartedAtEQ.
func ProcessStartedAt(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldProcessStartedAt, v))
}

// ProcessEndedAt applies equality check predicate on the "process_ended_at" field. It's identical to ProcessEndedAtEQ.
func ProcessEndedAt(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldProcessEndedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldUserID, v))
}

// KindEQ applies the EQ predicate on the "kind" field.
func KindEQ(v Kind) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldKind, v))
}

// KindNEQ applies the NEQ predicate on the "kind" field.
func KindNEQ(v Kind) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldKind, v))
}

// KindIn applies the In predicate on the "kind" field.
func KindIn(vs ...Kind) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldKind, vs...))
}

// KindNotIn applies the NotIn predicate on the "kind" field.
func KindNotIn(vs ...Kind) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldKind, vs...))
}

// ProcessStatusEQ applies the EQ predicate on the "process_status" field.
func ProcessStatusEQ(v ProcessStatus) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldProcessStatus, v))
}

// ProcessStatusNEQ applies the NEQ predicate on the "process_status" field.
func ProcessStatusNEQ(v ProcessStatus) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldProcessStatus, v))
}

// ProcessStatusIn applies the In predicate on the "process_status" field.
func ProcessStatusIn(vs ...ProcessStatus) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldProcessStatus, vs...))
}

// ProcessStatusNotIn applies the NotIn predicate on the "process_status" field.
func ProcessStatusNotIn(vs ...ProcessStatus) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldProcessStatus, vs...))
}

// ProcessProgressEQ applies the EQ predicate on the "process_progress" field.
func ProcessProgressEQ(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldProcessProgress, v))
}

// ProcessProgressNEQ applies the NEQ predicate on the "process_progress" field.
func ProcessProgressNEQ(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldProcessProgress, v))
}

// ProcessProgressIn applies the In predicate on the "process_progress" field.
func ProcessProgressIn(vs ...int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldProcessProgress, vs...))
}

// ProcessProgressNotIn applies the NotIn predicate on the "process_progress" field.
func ProcessProgressNotIn(vs ...int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldProcessProgress, vs...))
}

// ProcessProgressGT applies the GT predicate on the "process_progress" field.
func ProcessProgressGT(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldProcessProgress, v))
}

// ProcessProgressGTE applies the GTE predicate on the "process_progress" field.
func ProcessProgressGTE(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldProcessProgress, v))
}

// ProcessProgressLT applies the LT predicate on the "process_progress" field.
func ProcessProgressLT(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldProcessProgress, v))
}

// ProcessProgressLTE applies the LTE predicate on the "process_progress" field.
func ProcessProgressLTE(v int) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldProcessProgress, v))
}

// EndedAtEQ applies the EQ predicate on the "ended_at" field.
func EndedAtEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldEndedAt, v))
}

// EndedAtNEQ applies the NEQ predicate on the "ended_at" field.
func EndedAtNEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldEndedAt, v))
}

// EndedAtIn applies the In predicate on the "ended_at" field.
func EndedAtIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldEndedAt, vs...))
}

// EndedAtNotIn applies the NotIn predicate on the "ended_at" field.
func EndedAtNotIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldEndedAt, vs...))
}

// EndedAtGT applies the GT predicate on the "ended_at" field.
func EndedAtGT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldEndedAt, v))
}

// EndedAtGTE applies the GTE predicate on the "ended_at" field.
func EndedAtGTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldEndedAt, v))
}

// EndedAtLT applies the LT predicate on the "ended_at" field.
func EndedAtLT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldEndedAt, v))
}

// EndedAtLTE applies the LTE predicate on the "ended_at" field.
func EndedAtLTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldEndedAt, v))
}

// EndedAtIsNil applies the IsNil predicate on the "ended_at" field.
func EndedAtIsNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIsNull(FieldEndedAt))
}

// EndedAtNotNil applies the NotNil predicate on the "ended_at" field.
func EndedAtNotNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotNull(FieldEndedAt))
}

// ProcessStartedAtEQ applies the EQ predicate on the "process_started_at" field.
func ProcessStartedAtEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldProcessStartedAt, v))
}

// ProcessStartedAtNEQ applies the NEQ predicate on the "process_started_at" field.
func ProcessStartedAtNEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldProcessStartedAt, v))
}

// ProcessStartedAtIn applies the In predicate on the "process_started_at" field.
func ProcessStartedAtIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldProcessStartedAt, vs...))
}

// ProcessStartedAtNotIn applies the NotIn predicate on the "process_started_at" field.
func ProcessStartedAtNotIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldProcessStartedAt, vs...))
}

// ProcessStartedAtGT applies the GT predicate on the "process_started_at" field.
func ProcessStartedAtGT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldProcessStartedAt, v))
}

// ProcessStartedAtGTE applies the GTE predicate on the "process_started_at" field.
func ProcessStartedAtGTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldProcessStartedAt, v))
}

// ProcessStartedAtLT applies the LT predicate on the "process_started_at" field.
func ProcessStartedAtLT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldProcessStartedAt, v))
}

// ProcessStartedAtLTE applies the LTE predicate on the "process_started_at" field.
func ProcessStartedAtLTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldProcessStartedAt, v))
}

// ProcessStartedAtIsNil applies the IsNil predicate on the "process_started_at" field.
func ProcessStartedAtIsNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIsNull(FieldProcessStartedAt))
}

// ProcessStartedAtNotNil applies the NotNil predicate on the "process_started_at" field.
func ProcessStartedAtNotNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotNull(FieldProcessStartedAt))
}

// ProcessEndedAtEQ applies the EQ predicate on the "process_ended_at" field.
func ProcessEndedAtEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldEQ(FieldProcessEndedAt, v))
}

// ProcessEndedAtNEQ applies the NEQ predicate on the "process_ended_at" field.
func ProcessEndedAtNEQ(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNEQ(FieldProcessEndedAt, v))
}

// ProcessEndedAtIn applies the In predicate on the "process_ended_at" field.
func ProcessEndedAtIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIn(FieldProcessEndedAt, vs...))
}

// ProcessEndedAtNotIn applies the NotIn predicate on the "process_ended_at" field.
func ProcessEndedAtNotIn(vs ...time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotIn(FieldProcessEndedAt, vs...))
}

// ProcessEndedAtGT applies the GT predicate on the "process_ended_at" field.
func ProcessEndedAtGT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGT(FieldProcessEndedAt, v))
}

// ProcessEndedAtGTE applies the GTE predicate on the "process_ended_at" field.
func ProcessEndedAtGTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldGTE(FieldProcessEndedAt, v))
}

// ProcessEndedAtLT applies the LT predicate on the "process_ended_at" field.
func ProcessEndedAtLT(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLT(FieldProcessEndedAt, v))
}

// ProcessEndedAtLTE applies the LTE predicate on the "process_ended_at" field.
func ProcessEndedAtLTE(v time.Time) predicate.UploadSession {
	return predicate.UploadSession(sql.FieldLTE(FieldProcessEndedAt, v))
}

// ProcessEndedAtIsNil applies the IsNil predicate on the "process_ended_at" field.
func ProcessEndedAtIsNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldIsNull(FieldProcessEndedAt))
}

// ProcessEndedAtNotNil applies the NotNil predicate on the "process_ended_at" field.
func ProcessEndedAtNotNil() predicate.UploadSession {
	return predicate.UploadSession(sql.FieldNotNull(FieldProcessEndedAt))
}

// HasFiles applies the HasEdge predicate on the "files" edge.
func HasFiles() predicate.UploadSession {
	return predicate.UploadSession(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, FilesTable, FilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFilesWith applies the HasEdge predicate on the "files" edge with a given conditions (other predicates).
func HasFilesWith(preds ...predicate.UploadSessionFile) predicate.UploadSession {
	return predicate.UploadSession(func(s *sql.Selector) {
		step := newFilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UploadSession) predicate.UploadSession {
	return predicate.UploadSession(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UploadSession) predicate.UploadSession {
	return predicate.UploadSession(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UploadSession) predicate.UploadSession {
	return predicate.UploadSession(sql.NotPredicates(p))
}
