// Code generated by ent, DO NOT EDIT.

package recitation

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
)

// ID filters vertices based on their ID field.
func ID(id int) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id int) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id int) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...int) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...int) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id int) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id int) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id int) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id int) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldUserID, v))
}

// PoemID applies equality check predicate on the "poem_id" field. It's identical to PoemIDEQ.
func PoemID(v int) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldPoemID, v))
}

// AudioOrder applies equality check predicate on the "audio_order" field. It's identical to AudioOrderEQ.
func AudioOrder(v int) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldAudioOrder, v))
}

// Title applies equality check predicate on the "title" field. It's identical to TitleEQ.
func Title(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldTitle, v))
}

// ArtistName applies equality check predicate on the "artist_name" field. It's identical to ArtistNameEQ.
func ArtistName(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldArtistName, v))
}

// ArtistURL applies equality check predicate on the "artist_url" field. It's identical to ArtistURLEQ.
func ArtistURL(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldArtistURL, v))
}

// SourceName applies equality check predicate on the "source_name" field. It's identical to SourceNameEQ.
func SourceName(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldSourceName, v))
}

// SourceURL applies equality check predicate on the "source_url" field. It's identical to SourceURLEQ.
func SourceURL(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldSourceURL, v))
}

// FileSuffix applies equality check predicate on the "file_suffix" field. It's identical to FileSuffixEQ.
func FileSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldFileSuffix, v))
}

// LegacyGUID applies equality check predicate on the "legacy_guid" field. It's identical to LegacyGUIDEQ.
func LegacyGUID(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldLegacyGUID, v))
}

// Checksum applies equality check predicate on the "checksum" field. It's identical to ChecksumEQ.
func Checksum(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldChecksum, v))
}

// Mp3Size applies equality check predicate on the "mp3_size" field. It's identical to Mp3SizeEQ.
func Mp3Size(v int64) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldMp3Size, v))
}

// FileStem applies equality check predicate on the "file_stem" field. It's identical to FileStemEQ.
func FileStem(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldFileStem, v))
}

// SoundFolder applies equality check predicate on the "sound_folder" field. It's identical to SoundFolderEQ.
func SoundFolder(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldSoundFolder, v))
}

// LocalMp3Path applies equality check predicate on the "local_mp3_path" field. It's identical to LocalMp3PathEQ.
func LocalMp3Path(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldLocalMp3Path, v))
}

// LocalXMLPath applies equality check predicate on the "local_xml_path" field. It's identical to LocalXMLPathEQ.
func LocalXMLPath(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldLocalXMLPath, v))
}

// ReviewMessage applies equality check predicate on the "review_message" field. It's identical to ReviewMessageEQ.
func ReviewMessage(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldReviewMessage, v))
}

// ReviewedAt applies equality check predicate on the "reviewed_at" field. It's identical to ReviewedAtEQ.
func ReviewedAt(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewerID applies equality check predicate on the "reviewer_id" field. It's identical to ReviewerIDEQ.
func ReviewerID(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldReviewerID, v))
}

// FileUpdatedAt applies equality check predicate on the "file_updated_at" field. It's identical to FileUpdatedAtEQ.
func FileUpdatedAt(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldFileUpdatedAt, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldUpdatedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldUserID, v))
}

// PoemIDEQ applies the EQ predicate on the "poem_id" field.
func PoemIDEQ(v int) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldPoemID, v))
}

// PoemIDNEQ applies the NEQ predicate on the "poem_id" field.
func PoemIDNEQ(v int) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldPoemID, v))
}

// PoemIDIn applies the In predicate on the "poem_id" field.
func PoemIDIn(vs ...int) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldPoemID, vs...))
}

// PoemIDNotIn applies the NotIn predicate on the "poem_id" field.
func PoemIDNotIn(vs ...int) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldPoemID, vs...))
}

// AudioOrderEQ applies the EQ predicate on the "audio_order" field.
func AudioOrderEQ(v int) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldAudioOrder, v))
}

// AudioOrderNEQ applies the NEQ predicate on the "audio_order" field.
func AudioOrderNEQ(v int) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldAudioOrder, v))
}

// AudioOrderIn applies the In predicate on the "audio_order" field.
func AudioOrderIn(vs ...int) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldAudioOrder, vs...))
}

// AudioOrderNotIn applies the NotIn predicate on the "audio_order" field.
func AudioOrderNotIn(vs ...int) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldAudioOrder, vs...))
}

// AudioOrderGT applies the GT predicate on the "audio_order" field.
func AudioOrderGT(v int) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldAudioOrder, v))
}

// AudioOrderGTE applies the GTE predicate on the "audio_order" field.
func AudioOrderGTE(v int) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldAudioOrder, v))
}

// AudioOrderLT applies the LT predicate on the "audio_order" field.
func AudioOrderLT(v int) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldAudioOrder, v))
}

// AudioOrderLTE applies the LTE predicate on the "audio_order" field.
func AudioOrderLTE(v int) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldAudioOrder, v))
}

// TitleEQ applies the EQ predicate on the "title" field.
func TitleEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldTitle, v))
}

// TitleNEQ applies the NEQ predicate on the "title" field.
func TitleNEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldTitle, v))
}

// TitleIn applies the In predicate on the "title" field.
func TitleIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldTitle, vs...))
}

// TitleNotIn applies the NotIn predicate on the "title" field.
func TitleNotIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldTitle, vs...))
}

// TitleGT applies the GT predicate on the "title" field.
func TitleGT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldTitle, v))
}

// TitleGTE applies the GTE predicate on the "title" field.
func TitleGTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldTitle, v))
}

// TitleLT applies the LT predicate on the "title" field.
func TitleLT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldTitle, v))
}

// TitleLTE applies the LTE predicate on the "title" field.
func TitleLTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldTitle, v))
}

// TitleContains applies the Contains predicate on the "title" field.
func TitleContains(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContains(FieldTitle, v))
}

// TitleHasPrefix applies the HasPrefix predicate on the "title" field.
func TitleHasPrefix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasPrefix(FieldTitle, v))
}

// TitleHasSuffix applies the HasSuffix predicate on the "title" field.
func TitleHasSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasSuffix(FieldTitle, v))
}

// TitleEqualFold applies the EqualFold predicate on the "title" field.
func TitleEqualFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEqualFold(FieldTitle, v))
}

// TitleContainsFold applies the ContainsFold predicate on the "title" field.
func TitleContainsFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContainsFold(FieldTitle, v))
}

// ArtistNameEQ applies the EQ predicate on the "artist_name" field.
func ArtistNameEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldArtistName, v))
}

// ArtistNameNEQ applies the NEQ predicate on the "artist_name" field.
func ArtistNameNEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldArtistName, v))
}

// ArtistNameIn applies the In predicate on the "artist_name" field.
func ArtistNameIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldArtistName, vs...))
}

// ArtistNameNotIn applies the NotIn predicate on the "artist_name" field.
func ArtistNameNotIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldArtistName, vs...))
}

// ArtistNameGT applies the GT predicate on the "artist_name" field.
func ArtistNameGT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldArtistName, v))
}

// ArtistNameGTE applies the GTE predicate on the "artist_name" field.
func ArtistNameGTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldArtistName, v))
}

// ArtistNameLT applies the LT predicate on the "artist_name" field.
func ArtistNameLT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldArtistName, v))
}

// ArtistNameLTE applies the LTE predicate on the "artist_name" field.
func ArtistNameLTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldArtistName, v))
}

// ArtistNameContains applies the Contains predicate on the "artist_name" field.
func ArtistNameContains(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContains(FieldArtistName, v))
}

// ArtistNameHasPrefix applies the HasPrefix predicate on the "artist_name" field.
func ArtistNameHasPrefix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasPrefix(FieldArtistName, v))
}

// ArtistNameHasSuffix applies the HasSuffix predicate on the "artist_name" field.
func ArtistNameHasSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasSuffix(FieldArtistName, v))
}

// ArtistNameEqualFold applies the EqualFold predicate on the "artist_name" field.
func ArtistNameEqualFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEqualFold(FieldArtistName, v))
}

// ArtistNameContainsFold applies the ContainsFold predicate on the "artist_name" field.
func ArtistNameContainsFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContainsFold(FieldArtistName, v))
}

// ArtistURLEQ applies the EQ predicate on the "artist_url" field.
func ArtistURLEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldArtistURL, v))
}

// ArtistURLNEQ applies the NEQ predicate on the "artist_url" field.
func ArtistURLNEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldArtistURL, v))
}

// ArtistURLIn applies the In predicate on the "artist_url" field.
func ArtistURLIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldArtistURL, vs...))
}

// ArtistURLNotIn applies the NotIn predicate on the "artist_url" field.
func ArtistURLNotIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldArtistURL, vs...))
}

// ArtistURLGT applies the GT predicate on the "artist_url" field.
func ArtistURLGT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldArtistURL, v))
}

// ArtistURLGTE applies the GTE predicate on the "artist_url" field.
func ArtistURLGTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldArtistURL, v))
}

// ArtistURLLT applies the LT predicate on the "artist_url" field.
func ArtistURLLT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldArtistURL, v))
}

// ArtistURLLTE applies the LTE predicate on the "artist_url" field.
func ArtistURLLTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldArtistURL, v))
}

// ArtistURLContains applies the Contains predicate on the "artist_url" field.
func ArtistURLContains(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContains(FieldArtistURL, v))
}

// ArtistURLHasPrefix applies the HasPrefix predicate on the "artist_url" field.
func ArtistURLHasPrefix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasPrefix(FieldArtistURL, v))
}

// ArtistURLHasSuffix applies the HasSuffix predicate on the "artist_url" field.
func ArtistURLHasSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasSuffix(FieldArtistURL, v))
}

// ArtistURLEqualFold applies the EqualFold predicate on the "artist_url" field.
func ArtistURLEqualFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEqualFold(FieldArtistURL, v))
}

// ArtistURLContainsFold applies the ContainsFold predicate on the "artist_url" field.
func ArtistURLContainsFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContainsFold(FieldArtistURL, v))
}

// SourceNameEQ applies the EQ predicate on the "source_name" field.
func SourceNameEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldSourceName, v))
}

// SourceNameNEQ applies the NEQ predicate on the "source_name" field.
func SourceNameNEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldSourceName, v))
}

// SourceNameIn applies the In predicate on the "source_name" field.
func SourceNameIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldSourceName, vs...))
}

// SourceNameNotIn applies the NotIn predicate on the "source_name" field.
func SourceNameNotIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldSourceName, vs...))
}

// SourceNameGT applies the GT predicate on the "source_name" field.
func SourceNameGT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldSourceName, v))
}

// SourceNameGTE applies the GTE predicate on the "source_name" field.
func SourceNameGTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldSourceName, v))
}

// SourceNameLT applies the LT predicate on the "source_name" field.
func SourceNameLT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldSourceName, v))
}

// SourceNameLTE applies the LTE predicate on the "source_name" field.
func SourceNameLTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldSourceName, v))
}

// SourceNameContains applies the Contains predicate on the "source_name" field.
func SourceNameContains(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContains(FieldSourceName, v))
}

// SourceNameHasPrefix applies the HasPrefix predicate on the "source_name" field.
func SourceNameHasPrefix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasPrefix(FieldSourceName, v))
}

// SourceNameHasSuffix applies the HasSuffix predicate on the "source_name" field.
func SourceNameHasSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasSuffix(FieldSourceName, v))
}

// SourceNameEqualFold applies the EqualFold predicate on the "source_name" field.
func SourceNameEqualFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEqualFold(FieldSourceName, v))
}

// SourceNameContainsFold applies the ContainsFold predicate on the "source_name" field.
func SourceNameContainsFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContainsFold(FieldSourceName, v))
}

// SourceURLEQ applies the EQ predicate on the "source_url" field.
func SourceURLEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldSourceURL, v))
}

// SourceURLNEQ applies the NEQ predicate on the "source_url" field.
func SourceURLNEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldSourceURL, v))
}

// SourceURLIn applies the In predicate on the "source_url" field.
func SourceURLIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldSourceURL, vs...))
}

// SourceURLNotIn applies the NotIn predicate on the "source_url" field.
func SourceURLNotIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldSourceURL, vs...))
}

// SourceURLGT applies the GT predicate on the "source_url" field.
func SourceURLGT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldSourceURL, v))
}

// SourceURLGTE applies the GTE predicate on the "source_url" field.
func SourceURLGTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldSourceURL, v))
}

// SourceURLLT applies the LT predicate on the "source_url" field.
func SourceURLLT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldSourceURL, v))
}

// SourceURLLTE applies the LTE predicate on the "source_url" field.
func SourceURLLTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldSourceURL, v))
}

// SourceURLContains applies the Contains predicate on the "source_url" field.
func SourceURLContains(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContains(FieldSourceURL, v))
}

// SourceURLHasPrefix applies the HasPrefix predicate on the "source_url" field.
func SourceURLHasPrefix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasPrefix(FieldSourceURL, v))
}

// SourceURLHasSuffix applies the HasSuffix predicate on the "source_url" field.
func SourceURLHasSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasSuffix(FieldSourceURL, v))
}

// SourceURLEqualFold applies the EqualFold predicate on the "source_url" field.
func SourceURLEqualFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEqualFold(FieldSourceURL, v))
}

// SourceURLContainsFold applies the ContainsFold predicate on the "source_url" field.
func SourceURLContainsFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContainsFold(FieldSourceURL, v))
}

// FileSuffixEQ applies the EQ predicate on the "file_suffix" field.
func FileSuffixEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldFileSuffix, v))
}

// FileSuffixNEQ applies the NEQ predicate on the "file_suffix" field.
func FileSuffixNEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldFileSuffix, v))
}

// FileSuffixIn applies the In predicate on the "file_suffix" field.
func FileSuffixIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldFileSuffix, vs...))
}

// FileSuffixNotIn applies the NotIn predicate on the "file_suffix" field.
func FileSuffixNotIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldFileSuffix, vs...))
}

// FileSuffixGT applies the GT predicate on the "file_suffix" field.
func FileSuffixGT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldFileSuffix, v))
}

// FileSuffixGTE applies the GTE predicate on the "file_suffix" field.
func FileSuffixGTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldFileSuffix, v))
}

// FileSuffixLT applies the LT predicate on the "file_suffix" field.
func FileSuffixLT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldFileSuffix, v))
}

// FileSuffixLTE applies the LTE predicate on the "file_suffix" field.
func FileSuffixLTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldFileSuffix, v))
}

// FileSuffixContains applies the Contains predicate on the "file_suffix" field.
func FileSuffixContains(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContains(FieldFileSuffix, v))
}

// FileSuffixHasPrefix applies the HasPrefix predicate on the "file_suffix" field.
func FileSuffixHasPrefix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasPrefix(FieldFileSuffix, v))
}

// FileSuffixHasSuffix applies the HasSuffix predicate on the "file_suffix" field.
func FileSuffixHasSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasSuffix(FieldFileSuffix, v))
}

// FileSuffixEqualFold applies the EqualFold predicate on the "file_suffix" field.
func FileSuffixEqualFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEqualFold(FieldFileSuffix, v))
}

// FileSuffixContainsFold applies the ContainsFold predicate on the "file_suffix" field.
func FileSuffixContainsFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContainsFold(FieldFileSuffix, v))
}

// LegacyGUIDEQ applies the EQ predicate on the "legacy_guid" field.
func LegacyGUIDEQ(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldLegacyGUID, v))
}

// LegacyGUIDNEQ applies the NEQ predicate on the "legacy_guid" field.
func LegacyGUIDNEQ(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldLegacyGUID, v))
}

// LegacyGUIDIn applies the In predicate on the "legacy_guid" field.
func LegacyGUIDIn(vs ...uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldLegacyGUID, vs...))
}

// LegacyGUIDNotIn applies the NotIn predicate on the "legacy_guid" field.
func LegacyGUIDNotIn(vs ...uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldLegacyGUID, vs...))
}

// LegacyGUIDGT applies the GT predicate on the "legacy_guid" field.
func LegacyGUIDGT(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldLegacyGUID, v))
}

// LegacyGUIDGTE applies the GTE predicate on the "legacy_guid" field.
func LegacyGUIDGTE(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldLegacyGUID, v))
}

// LegacyGUIDLT applies the LT predicate on the "legacy_guid" field.
func LegacyGUIDLT(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldLegacyGUID, v))
}

// LegacyGUIDLTE applies the LTE predicate on the "legacy_guid" field.
func LegacyGUIDLTE(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldLegacyGUID, v))
}

// ChecksumEQ applies the EQ predicate on the "checksum" field.
func ChecksumEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldChecksum, v))
}

// ChecksumNEQ applies the NEQ predicate on the "checksum" field.
func ChecksumNEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldChecksum, v))
}

// ChecksumIn applies the In predicate on the "checksum" field.
func ChecksumIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldChecksum, vs...))
}

// ChecksumNotIn applies the NotIn predicate on the "checksum" field.
func ChecksumNotIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldChecksum, vs...))
}

// ChecksumGT applies the GT predicate on the "checksum" field.
func ChecksumGT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldChecksum, v))
}

// ChecksumGTE applies the GTE predicate on the "checksum" field.
func ChecksumGTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldChecksum, v))
}

// ChecksumLT applies the LT predicate on the "checksum" field.
func ChecksumLT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldChecksum, v))
}

// ChecksumLTE applies the LTE predicate on the "checksum" field.
func ChecksumLTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldChecksum, v))
}

// ChecksumContains applies the Contains predicate on the "checksum" field.
func ChecksumContains(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContains(FieldChecksum, v))
}

// ChecksumHasPrefix applies the HasPrefix predicate on the "checksum" field.
func ChecksumHasPrefix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasPrefix(FieldChecksum, v))
}

// ChecksumHasSuffix applies the HasSuffix predicate on the "checksum" field.
func ChecksumHasSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasSuffix(FieldChecksum, v))
}

// ChecksumEqualFold applies the EqualFold predicate on the "checksum" field.
func ChecksumEqualFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEqualFold(FieldChecksum, v))
}

// ChecksumContainsFold applies the ContainsFold predicate on the "checksum" field.
func ChecksumContainsFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContainsFold(FieldChecksum, v))
}

// Mp3SizeEQ applies the EQ predicate on the "mp3_size" field.
func Mp3SizeEQ(v int64) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldMp3Size, v))
}

// Mp3SizeNEQ applies the NEQ predicate on the "mp3_size" field.
func Mp3SizeNEQ(v int64) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldMp3Size, v))
}

// Mp3SizeIn applies the In predicate on the "mp3_size" field.
func Mp3SizeIn(vs ...int64) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldMp3Size, vs...))
}

// Mp3SizeNotIn applies the NotIn predicate on the "mp3_size" field.
func Mp3SizeNotIn(vs ...int64) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldMp3Size, vs...))
}

// Mp3SizeGT applies the GT predicate on the "mp3_size" field.
func Mp3SizeGT(v int64) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldMp3Size, v))
}

// Mp3SizeGTE applies the GTE predicate on the "mp3_size" field.
func Mp3SizeGTE(v int64) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldMp3Size, v))
}

// Mp3SizeLT applies the LT predicate on the "mp3_size" field.
func Mp3SizeLT(v int64) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldMp3Size, v))
}

// Mp3SizeLTE applies the LTE predicate on the "mp3_size" field.
func Mp3SizeLTE(v int64) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldMp3Size, v))
}

// FileStemEQ applies the EQ predicate on the "file_stem" field.
func FileStemEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldFileStem, v))
}

// FileStemNEQ applies the NEQ predicate on the "file_stem" field.
func FileStemNEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldFileStem, v))
}

// FileStemIn applies the In predicate on the "file_stem" field.
func FileStemIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldFileStem, vs...))
}

// FileStemNotIn applies the NotIn predicate on the "file_stem" field.
func FileStemNotIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldFileStem, vs...))
}

// FileStemGT applies the GT predicate on the "file_stem" field.
func FileStemGT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldFileStem, v))
}

// FileStemGTE applies the GTE predicate on the "file_stem" field.
func FileStemGTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldFileStem, v))
}

// FileStemLT applies the LT predicate on the "file_stem" field.
func FileStemLT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldFileStem, v))
}

// FileStemLTE applies the LTE predicate on the "file_stem" field.
func FileStemLTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldFileStem, v))
}

// FileStemContains applies the Contains predicate on the "file_stem" field.
func FileStemContains(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContains(FieldFileStem, v))
}

// FileStemHasPrefix applies the HasPrefix predicate on the "file_stem" field.
func FileStemHasPrefix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasPrefix(FieldFileStem, v))
}

// FileStemHasSuffix applies the HasSuffix predicate on the "file_stem" field.
func FileStemHasSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasSuffix(FieldFileStem, v))
}

// FileStemEqualFold applies the EqualFold predicate on the "file_stem" field.
func FileStemEqualFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEqualFold(FieldFileStem, v))
}

// FileStemContainsFold applies the ContainsFold predicate on the "file_stem" field.
func FileStemContainsFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContainsFold(FieldFileStem, v))
}

// SoundFolderEQ applies the EQ predicate on the "sound_folder" field.
func SoundFolderEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldSoundFolder, v))
}

// SoundFolderNEQ applies the NEQ predicate on the "sound_folder" field.
func SoundFolderNEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldSoundFolder, v))
}

// SoundFolderIn applies the In predicate on the "sound_folder" field.
func SoundFolderIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldSoundFolder, vs...))
}

// SoundFolderNotIn applies the NotIn predicate on the "sound_folder" field.
func SoundFolderNotIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldSoundFolder, vs...))
}

// SoundFolderGT applies the GT predicate on the "sound_folder" field.
func SoundFolderGT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldSoundFolder, v))
}

// SoundFolderGTE applies the GTE predicate on the "sound_folder" field.
func SoundFolderGTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldSoundFolder, v))
}

// SoundFolderLT applies the LT predicate on the "sound_folder" field.
func SoundFolderLT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldSoundFolder, v))
}

// SoundFolderLTE applies the LTE predicate on the "sound_folder" field.
func SoundFolderLTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldSoundFolder, v))
}

// SoundFolderContains applies the Contains predicate on the "sound_folder" field.
func SoundFolderContains(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContains(FieldSoundFolder, v))
}

// SoundFolderHasPrefix applies the HasPrefix predicate on the "sound_folder" field.
func SoundFolderHasPrefix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasPrefix(FieldSoundFolder, v))
}

// SoundFolderHasSuffix applies the HasSuffix predicate on the "sound_folder" field.
func SoundFolderHasSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasSuffix(FieldSoundFolder, v))
}

// SoundFolderEqualFold applies the EqualFold predicate on the "sound_folder" field.
func SoundFolderEqualFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEqualFold(FieldSoundFolder, v))
}

// SoundFolderContainsFold applies the ContainsFold predicate on the "sound_folder" field.
func SoundFolderContainsFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContainsFold(FieldSoundFolder, v))
}

// LocalMp3PathEQ applies the EQ predicate on the "local_mp3_path" field.
func LocalMp3PathEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldLocalMp3Path, v))
}

// LocalMp3PathNEQ applies the NEQ predicate on the "local_mp3_path" field.
func LocalMp3PathNEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldLocalMp3Path, v))
}

// LocalMp3PathIn applies the In predicate on the "local_mp3_path" field.
func LocalMp3PathIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldLocalMp3Path, vs...))
}

// LocalMp3PathNotIn applies the NotIn predicate on the "local_mp3_path" field.
func LocalMp3PathNotIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldLocalMp3Path, vs...))
}

// LocalMp3PathGT applies the GT predicate on the "local_mp3_path" field.
func LocalMp3PathGT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldLocalMp3Path, v))
}

// LocalMp3PathGTE applies the GTE predicate on the "local_mp3_path" field.
func LocalMp3PathGTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldLocalMp3Path, v))
}

// LocalMp3PathLT applies the LT predicate on the "local_mp3_path" field.
func LocalMp3PathLT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldLocalMp3Path, v))
}

// LocalMp3PathLTE applies the LTE predicate on the "local_mp3_path" field.
func LocalMp3PathLTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldLocalMp3Path, v))
}

// LocalMp3PathContains applies the Contains predicate on the "local_mp3_path" field.
func LocalMp3PathContains(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContains(FieldLocalMp3Path, v))
}

// LocalMp3PathHasPrefix applies the HasPrefix predicate on the "local_mp3_path" field.
func LocalMp3PathHasPrefix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasPrefix(FieldLocalMp3Path, v))
}

// LocalMp3PathHasSuffix applies the HasSuffix predicate on the "local_mp3_path" field.
func LocalMp3PathHasSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasSuffix(FieldLocalMp3Path, v))
}

// LocalMp3PathEqualFold applies the EqualFold predicate on the "local_mp3_path" field.
func LocalMp3PathEqualFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEqualFold(FieldLocalMp3Path, v))
}

// LocalMp3PathContainsFold applies the ContainsFold predicate on the "local_mp3_path" field.
func LocalMp3PathContainsFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContainsFold(FieldLocalMp3Path, v))
}

// LocalXMLPathEQ applies the EQ predicate on the "local_xml_path" field.
func LocalXMLPathEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldLocalXMLPath, v))
}

// LocalXMLPathNEQ applies the NEQ predicate on the "local_xml_path" field.
func LocalXMLPathNEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldLocalXMLPath, v))
}

// LocalXMLPathIn applies the In predicate on the "local_xml_path" field.
func LocalXMLPathIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldLocalXMLPath, vs...))
}

// LocalXMLPathNotIn applies the NotIn predicate on the "local_xml_path" field.
func LocalXMLPathNotIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldLocalXMLPath, vs...))
}

// LocalXMLPathGT applies the GT predicate on the "local_xml_path" field.
func LocalXMLPathGT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldLocalXMLPath, v))
}

// LocalXMLPathGTE applies the GTE predicate on the "local_xml_path" field.
func LocalXMLPathGTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldLocalXMLPath, v))
}

// LocalXMLPathLT applies the LT predicate on the "local_xml_path" field.
func LocalXMLPathLT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldLocalXMLPath, v))
}

// LocalXMLPathLTE applies the LTE predicate on the "local_xml_path" field.
func LocalXMLPathLTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldLocalXMLPath, v))
}

// LocalXMLPathContains applies the Contains predicate on the "local_xml_path" field.
func LocalXMLPathContains(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContains(FieldLocalXMLPath, v))
}

// LocalXMLPathHasPrefix applies the HasPrefix predicate on the "local_xml_path" field.
func LocalXMLPathHasPrefix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasPrefix(FieldLocalXMLPath, v))
}

// LocalXMLPathHasSuffix applies the HasSuffix predicate on the "local_xml_path" field.
func LocalXMLPathHasSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasSuffix(FieldLocalXMLPath, v))
}

// LocalXMLPathEqualFold applies the EqualFold predicate on the "local_xml_path" field.
func LocalXMLPathEqualFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEqualFold(FieldLocalXMLPath, v))
}

// LocalXMLPathContainsFold applies the ContainsFold predicate on the "local_xml_path" field.
func LocalXMLPathContainsFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContainsFold(FieldLocalXMLPath, v))
}

// ReviewStatusEQ applies the EQ predicate on the "review_status" field.
func ReviewStatusEQ(v ReviewStatus) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldReviewStatus, v))
}

// ReviewStatusNEQ applies the NEQ predicate on the "review_status" field.
func ReviewStatusNEQ(v ReviewStatus) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldReviewStatus, v))
}

// ReviewStatusIn applies the In predicate on the "review_status" field.
func ReviewStatusIn(vs ...ReviewStatus) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldReviewStatus, vs...))
}

// ReviewStatusNotIn applies the NotIn predicate on the "review_status" field.
func ReviewStatusNotIn(vs ...ReviewStatus) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldReviewStatus, vs...))
}

// ReviewMessageEQ applies the EQ predicate on the "review_message" field.
func ReviewMessageEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldReviewMessage, v))
}

// ReviewMessageNEQ applies the NEQ predicate on the "review_message" field.
func ReviewMessageNEQ(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldReviewMessage, v))
}

// ReviewMessageIn applies the In predicate on the "review_message" field.
func ReviewMessageIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldReviewMessage, vs...))
}

// ReviewMessageNotIn applies the NotIn predicate on the "review_message" field.
func ReviewMessageNotIn(vs ...string) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldReviewMessage, vs...))
}

// ReviewMessageGT applies the GT predicate on the "review_message" field.
func ReviewMessageGT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldReviewMessage, v))
}

// ReviewMessageGTE applies the GTE predicate on the "review_message" field.
func ReviewMessageGTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldReviewMessage, v))
}

// ReviewMessageLT applies the LT predicate on the "review_message" field.
func ReviewMessageLT(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldReviewMessage, v))
}

// ReviewMessageLTE applies the LTE predicate on the "review_message" field.
func ReviewMessageLTE(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldReviewMessage, v))
}

// ReviewMessageContains applies the Contains predicate on the "review_message" field.
func ReviewMessageContains(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContains(FieldReviewMessage, v))
}

// ReviewMessageHasPrefix applies the HasPrefix predicate on the "review_message" field.
func ReviewMessageHasPrefix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasPrefix(FieldReviewMessage, v))
}

// ReviewMessageHasSuffix applies the HasSuffix predicate on the "review_message" field.
func ReviewMessageHasSuffix(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldHasSuffix(FieldReviewMessage, v))
}

// ReviewMessageEqualFold applies the EqualFold predicate on the "review_message" field.
func ReviewMessageEqualFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldEqualFold(FieldReviewMessage, v))
}

// ReviewMessageContainsFold applies the ContainsFold predicate on the "review_message" field.
func ReviewMessageContainsFold(v string) predicate.Recitation {
	return predicate.Recitation(sql.FieldContainsFold(FieldReviewMessage, v))
}

// ReviewedAtEQ applies the EQ predicate on the "reviewed_at" field.
func ReviewedAtEQ(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldReviewedAt, v))
}

// ReviewedAtNEQ applies the NEQ predicate on the "reviewed_at" field.
func ReviewedAtNEQ(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldReviewedAt, v))
}

// ReviewedAtIn applies the In predicate on the "reviewed_at" field.
func ReviewedAtIn(vs ...time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldReviewedAt, vs...))
}

// ReviewedAtNotIn applies the NotIn predicate on the "reviewed_at" field.
func ReviewedAtNotIn(vs ...time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldReviewedAt, vs...))
}

// ReviewedAtGT applies the GT predicate on the "reviewed_at" field.
func ReviewedAtGT(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldReviewedAt, v))
}

// ReviewedAtGTE applies the GTE predicate on the "reviewed_at" field.
func ReviewedAtGTE(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldReviewedAt, v))
}

// ReviewedAtLT applies the LT predicate on the "reviewed_at" field.
func ReviewedAtLT(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldReviewedAt, v))
}

// ReviewedAtLTE applies the LTE predicate on the "reviewed_at" field.
func ReviewedAtLTE(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldReviewedAt, v))
}

// ReviewedAtIsNil applies the IsNil predicate on the "reviewed_at" field.
func ReviewedAtIsNil() predicate.Recitation {
	return predicate.Recitation(sql.FieldIsNull(FieldReviewedAt))
}

// ReviewedAtNotNil applies the NotNil predicate on the "reviewed_at" field.
func ReviewedAtNotNil() predicate.Recitation {
	return predicate.Recitation(sql.FieldNotNull(FieldReviewedAt))
}

// ReviewerIDEQ applies the EQ predicate on the "reviewer_id" field.
func ReviewerIDEQ(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldReviewerID, v))
}

// ReviewerIDNEQ applies the NEQ predicate on the "reviewer_id" field.
func ReviewerIDNEQ(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldReviewerID, v))
}

// ReviewerIDIn applies the In predicate on the "reviewer_id" field.
func ReviewerIDIn(vs ...uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldReviewerID, vs...))
}

// ReviewerIDNotIn applies the NotIn predicate on the "reviewer_id" field.
func ReviewerIDNotIn(vs ...uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldReviewerID, vs...))
}

// ReviewerIDGT applies the GT predicate on the "reviewer_id" field.
func ReviewerIDGT(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldReviewerID, v))
}

// ReviewerIDGTE applies the GTE predicate on the "reviewer_id" field.
func ReviewerIDGTE(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldReviewerID, v))
}

// ReviewerIDLT applies the LT predicate on the "reviewer_id" field.
func ReviewerIDLT(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldReviewerID, v))
}

// ReviewerIDLTE applies the LTE predicate on the "reviewer_id" field.
func ReviewerIDLTE(v uuid.UUID) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldReviewerID, v))
}

// ReviewerIDIsNil applies the IsNil predicate on the "reviewer_id" field.
func ReviewerIDIsNil() predicate.Recitation {
	return predicate.Recitation(sql.FieldIsNull(FieldReviewerID))
}

// ReviewerIDNotNil applies the NotNil predicate on the "reviewer_id" field.
func ReviewerIDNotNil() predicate.Recitation {
	return predicate.Recitation(sql.FieldNotNull(FieldReviewerID))
}

// FileUpdatedAtEQ applies the EQ predicate on the "file_updated_at" field.
func FileUpdatedAtEQ(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldFileUpdatedAt, v))
}

// FileUpdatedAtNEQ applies the NEQ predicate on the "file_updated_at" field.
func FileUpdatedAtNEQ(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldFileUpdatedAt, v))
}

// FileUpdatedAtIn applies the In predicate on the "file_updated_at" field.
func FileUpdatedAtIn(vs ...time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldFileUpdatedAt, vs...))
}

// FileUpdatedAtNotIn applies the NotIn predicate on the "file_updated_at" field.
func FileUpdatedAtNotIn(vs ...time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldFileUpdatedAt, vs...))
}

// FileUpdatedAtGT applies the GT predicate on the "file_updated_at" field.
func FileUpdatedAtGT(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldGT(FieldFileUpdatedAt, v))
}

// FileUpdatedAtGTE applies the GTE predicate on the "file_updated_at" field.
func FileUpdatedAtGTE(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldGTE(FieldFileUpdatedAt, v))
}

// FileUpdatedAtLT applies the LT predicate on the "file_updated_at" field.
func FileUpdatedAtLT(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldLT(FieldFileUpdatedAt, v))
}

// FileUpdatedAtLTE applies the LTE predicate on the "file_updated_at" field.
func FileUpdatedAtLTE(v time.Time) predicate.Recitation {
	return predicate.Recitation(sql.FieldLTE(FieldFileUpdatedAt, v))
}

// FileUpdatedAtIsNil applies the IsNil predicate on the "file_updated_at" field.
func FileUpdatedAtIsNil() predicate.Recitation {
	return predicate.Recitation(sql.FieldIsNull(FieldFileUpdatedAt))
}

// FileUpdatedAtNotNil applies the NotNil predicate on the "file_updated_at" field.
func FileUpdatedAtNotNil() predicate.Recitation {
	return predicate.Recitation(sql.FieldNotNull(FieldFileUpdatedAt))
}

// SyncStatusEQ applies the EQ predicate on the "sync_status" field.
func SyncStatusEQ(v SyncStatus) predicate.Recitation {
	return predicate.Recitation(sql.FieldEQ(FieldSyncStatus, v))
}

// SyncStatusNEQ applies the NEQ predicate on the "sync_status" field.
func SyncStatusNEQ(v SyncStatus) predicate.Recitation {
	return predicate.Recitation(sql.FieldNEQ(FieldSyncStatus, v))
}

// SyncStatusIn applies the In predicate on the "sync_status" field.
func SyncStatusIn(vs ...SyncStatus) predicate.Recitation {
	return predicate.Recitation(sql.FieldIn(FieldSyncStatus, vs...))
}

// SyncStatusNotIn applies the NotIn predicate on the "sync_status" field.
func SyncStatusNotIn(vs ...SyncStatus) predicate.Recitation {
	return predicate.Recitation(sql.FieldNotIn(FieldSyncStatus, vs...))
}

// HasPoem applies the HasEdge predicate on the "poem" edge.
func HasPoem() predicate.Recitation {
	return predicate.Recitation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, PoemTable, PoemColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasPoemWith applies the HasEdge predicate on the "poem" edge with a given conditions (other predicates).
func HasPoemWith(preds ...predicate.Poem) predicate.Recitation {
	return predicate.Recitation(func(s *sql.Selector) {
		step := newPoemStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasTrackers applies the HasEdge predicate on the "trackers" edge.
func HasTrackers() predicate.Recitation {
	return predicate.Recitation(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TrackersTable, TrackersColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTrackersWith applies the HasEdge predicate on the "trackers" edge with a given conditions (other predicates).
func HasTrackersWith(preds ...predicate.PublishTracker) predicate.Recitation {
	return predicate.Recitation(func(s *sql.Selector) {
		step := newTrackersStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Recitation) predicate.Recitation {
	return predicate.Recitation(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Recitation) predicate.Recitation {
	return predicate.Recitation(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Recitation) predicate.Recitation {
	return predicate.Recitation(sql.NotPredicates(p))
}
