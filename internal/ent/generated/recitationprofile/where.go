// Code generated by ent, DO NOT EDIT.

package recitationprofile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/google/uuid"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	ulid "github.com/oklog/ulid/v2"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ULID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ULID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ULID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ULID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ULID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ULID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ULID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ULID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ULID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// DeletedAt applies equality check predicate on the "deleted_at" field. It's identical to DeletedAtEQ.
func DeletedAt(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldDeletedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldUserID, v))
}

// Name applies equality check predicate on the "name" field. It's identical to NameEQ.
func Name(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldName, v))
}

// ArtistName applies equality check predicate on the "artist_name" field. It's identical to ArtistNameEQ.
func ArtistName(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldArtistName, v))
}

// ArtistURL applies equality check predicate on the "artist_url" field. It's identical to ArtistURLEQ.
func ArtistURL(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldArtistURL, v))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldSourceName, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldSourceURL, v))
}

// FileSuffix applies equality check predicate on the "file_suffix" field. It's identical to FileSuffixEQ.
func FileSuffix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldFileSuffix, v))
}

// IsDefault applies equality check predicate on the "is_default" field. It's identical to IsDefaultEQ.
func IsDefault(v bool) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldIsDefault, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLTE(FieldUpdatedAt, v))
}

// DeletedAtEQ applies the EQ predicate on the "deleted_at" field.
func DeletedAtEQ(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldDeletedAt, v))
}

// DeletedAtNEQ applies the NEQ predicate on the "deleted_at" field.
func DeletedAtNEQ(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNEQ(FieldDeletedAt, v))
}

// DeletedAtIn applies the In predicate on the "deleted_at" field.
func DeletedAtIn(vs ...time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldIn(FieldDeletedAt, vs...))
}

// DeletedAtNotIn applies the NotIn predicate on the "deleted_at" field.
func DeletedAtNotIn(vs ...time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNotIn(FieldDeletedAt, vs...))
}

// DeletedAtGT applies the GT predicate on the "deleted_at" field.
func DeletedAtGT(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGT(FieldDeletedAt, v))
}

// DeletedAtGTE applies the GTE predicate on the "deleted_at" field.
func DeletedAtGTE(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGTE(FieldDeletedAt, v))
}

// DeletedAtLT applies the LT predicate on the "deleted_at" field.
func DeletedAtLT(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLT(FieldDeletedAt, v))
}

// DeletedAtLTE applies the LTE predicate on the "deleted_at" field.
func DeletedAtLTE(v time.Time) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLTE(FieldDeletedAt, v))
}

// DeletedAtIsNil applies the IsNil predicate on the "deleted_at" field.
func DeletedAtIsNil() predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldIsNull(FieldDeletedAt))
}

// DeletedAtNotNil applies the NotNil predicate on the "deleted_at" field.
func DeletedAtNotNil() predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNotNull(FieldDeletedAt))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLTE(FieldUserID, v))
}

// NameEQ applies the EQ predicate on the "name" field.
func NameEQ(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldName, v))
}

// NameNEQ applies the NEQ predicate on the "name" field.
func NameNEQ(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNEQ(FieldName, v))
}

// NameIn applies the In predicate on the "name" field.
func NameIn(vs ...string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldIn(FieldName, vs...))
}

// NameNotIn applies the NotIn predicate on the "name" field.
func NameNotIn(vs ...string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNotIn(FieldName, vs...))
}

// NameGT applies the GT predicate on the "name" field.
func NameGT(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGT(FieldName, v))
}

// NameGTE applies the GTE predicate on the "name" field.
func NameGTE(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGTE(FieldName, v))
}

// NameLT applies the LT predicate on the "name" field.
func NameLT(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLT(FieldName, v))
}

// NameLTE applies the LTE predicate on the "name" field.
func NameLTE(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLTE(FieldName, v))
}

// NameContains applies the Contains predicate on the "name" field.
func NameContains(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldContains(FieldName, v))
}

// NameHasPrefix applies the HasPrefix predicate on the "name" field.
func NameHasPrefix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldHasPrefix(FieldName, v))
}

// NameHasSuffix applies the HasSuffix predicate on the "name" field.
func NameHasSuffix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldHasSuffix(FieldName, v))
}

// NameEqualFold applies the EqualFold predicate on the "name" field.
func NameEqualFold(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEqualFold(FieldName, v))
}

// NameContainsFold applies the ContainsFold predicate on the "name" field.
func NameContainsFold(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldContainsFold(FieldName, v))
}

// ArtistNameEQ applies the EQ predicate on the "artist_name" field.
func ArtistNameEQ(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldArtistName, v))
}

// ArtistNameNEQ applies the NEQ predicate on the "artist_name" field.
func ArtistNameNEQ(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNEQ(FieldArtistName, v))
}

// ArtistNameIn applies the In predicate on the "artist_name" field.
func ArtistNameIn(vs ...string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldIn(FieldArtistName, vs...))
}

// ArtistNameNotIn applies the NotIn predicate on the "artist_name" field.
func ArtistNameNotIn(vs ...string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNotIn(FieldArtistName, vs...))
}

// ArtistNameGT applies the GT predicate on the "artist_name" field.
func ArtistNameGT(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGT(FieldArtistName, v))
}

// ArtistNameGTE applies the GTE predicate on the "artist_name" field.
func ArtistNameGTE(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGTE(FieldArtistName, v))
}

// ArtistNameLT applies the LT predicate on the "artist_name" field.
func ArtistNameLT(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLT(FieldArtistName, v))
}

// ArtistNameLTE applies the LTE predicate on the "artist_name" field.
func ArtistNameLTE(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLTE(FieldArtistName, v))
}

// ArtistNameContains applies the Contains predicate on the "artist_name" field.
func ArtistNameContains(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldContains(FieldArtistName, v))
}

// ArtistNameHasPrefix applies the HasPrefix predicate on the "artist_name" field.
func ArtistNameHasPrefix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldHasPrefix(FieldArtistName, v))
}

// ArtistNameHasSuffix applies the HasSuffix predicate on the "artist_name" field.
func ArtistNameHasSuffix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldHasSuffix(FieldArtistName, v))
}

// ArtistNameEqualFold applies the EqualFold predicate on the "artist_name" field.
func ArtistNameEqualFold(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEqualFold(FieldArtistName, v))
}

// ArtistNameContainsFold applies the ContainsFold predicate on the "artist_name" field.
func ArtistNameContainsFold(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldContainsFold(FieldArtistName, v))
}

// ArtistURLEQ applies the EQ predicate on the "artist_url" field.
func ArtistURLEQ(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldArtistURL, v))
}

// ArtistURLNEQ applies the NEQ predicate on the "artist_url" field.
func ArtistURLNEQ(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNEQ(FieldArtistURL, v))
}

// ArtistURLIn applies the In predicate on the "artist_url" field.
func ArtistURLIn(vs ...string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldIn(FieldArtistURL, vs...))
}

// ArtistURLNotIn applies the NotIn predicate on the "artist_url" field.
func ArtistURLNotIn(vs ...string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNotIn(FieldArtistURL, vs...))
}

// ArtistURLGT applies the GT predicate on the "artist_url" field.
func ArtistURLGT(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGT(FieldArtistURL, v))
}

// ArtistURLGTE applies the GTE predicate on the "artist_url" field.
func ArtistURLGTE(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGTE(FieldArtistURL, v))
}

// ArtistURLLT applies the LT predicate on the "artist_url" field.
func ArtistURLLT(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLT(FieldArtistURL, v))
}

// ArtistURLLTE applies the LTE predicate on the "artist_url" field.
func ArtistURLLTE(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLTE(FieldArtistURL, v))
}

// ArtistURLContains applies the Contains predicate on the "artist_url" field.
func ArtistURLContains(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldContains(FieldArtistURL, v))
}

// ArtistURLHasPrefix applies the HasPrefix predicate on the "artist_url" field.
func ArtistURLHasPrefix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldHasPrefix(FieldArtistURL, v))
}

// ArtistURLHasSuffix applies the HasSuffix predicate on the "artist_url" field.
func ArtistURLHasSuffix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldHasSuffix(FieldArtistURL, v))
}

// ArtistURLEqualFold applies the EqualFold predicate on the "artist_url" field.
func ArtistURLEqualFold(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEqualFold(FieldArtistURL, v))
}

// ArtistURLContainsFold applies the ContainsFold predicate on the "artist_url" field.
func ArtistURLContainsFold(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldContainsFold(FieldArtistURL, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldContainsFold(FieldSourceName, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldContainsFold(FieldSourceURL, v))
}

// FileSuffixEQ applies the EQ predicate on the "file_suffix" field.
func FileSuffixEQ(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldFileSuffix, v))
}

// FileSuffixNEQ applies the NEQ predicate on the "file_suffix" field.
func FileSuffixNEQ(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNEQ(FieldFileSuffix, v))
}

// FileSuffixIn applies the In predicate on the "file_suffix" field.
func FileSuffixIn(vs ...string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldIn(FieldFileSuffix, vs...))
}

// FileSuffixNotIn applies the NotIn predicate on the "file_suffix" field.
func FileSuffixNotIn(vs ...string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNotIn(FieldFileSuffix, vs...))
}

// FileSuffixGT applies the GT predicate on the "file_suffix" field.
func FileSuffixGT(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGT(FieldFileSuffix, v))
}

// FileSuffixGTE applies the GTE predicate on the "file_suffix" field.
func FileSuffixGTE(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldGTE(FieldFileSuffix, v))
}

// FileSuffixLT applies the LT predicate on the "file_suffix" field.
func FileSuffixLT(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLT(FieldFileSuffix, v))
}

// FileSuffixLTE applies the LTE predicate on the "file_suffix" field.
func FileSuffixLTE(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldLTE(FieldFileSuffix, v))
}

// FileSuffixContains applies the Contains predicate on the "file_suffix" field.
func FileSuffixContains(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldContains(FieldFileSuffix, v))
}

// FileSuffixHasPrefix applies the HasPrefix predicate on the "file_suffix" field.
func FileSuffixHasPrefix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldHasPrefix(FieldFileSuffix, v))
}

// FileSuffixHasSuffix applies the HasSuffix predicate on the "file_suffix" field.
func FileSuffixHasSuffix(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldHasSuffix(FieldFileSuffix, v))
}

// FileSuffixEqualFold applies the EqualFold predicate on the "file_suffix" field.
func FileSuffixEqualFold(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEqualFold(FieldFileSuffix, v))
}

// FileSuffixContainsFold applies the ContainsFold predicate on the "file_suffix" field.
func FileSuffixContainsFold(v string) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldContainsFold(FieldFileSuffix, v))
}

// IsDefaultEQ applies the EQ predicate on the "is_default" field.
func IsDefaultEQ(v bool) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldEQ(FieldIsDefault, v))
}

// IsDefaultNEQ applies the NEQ predicate on the "is_default" field.
func IsDefaultNEQ(v bool) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.FieldNEQ(FieldIsDefault, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.RecitationProfile) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.RecitationProfile) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.RecitationProfile) predicate.RecitationProfile {
	return predicate.RecitationProfile(sql.NotPredicates(p))
}
