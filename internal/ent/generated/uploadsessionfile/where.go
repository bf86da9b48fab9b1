// Code generated by ent, DO NOT EDIT.

package uploadsessionfile

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	ulid "github.com/oklog/ulid/v2"
)

// ID filters vertices based on their ID field.
func ID(id ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLTE(FieldID, id))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldCreatedAt, v))
}

// UpdatedAt applies equality check predicate on the "updated_at" field. It's identical to UpdatedAtEQ.
func UpdatedAt(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldUpdatedAt, v))
}

// SessionID applies equality check predicate on the "session_id" field. It's identical to SessionIDEQ.
func SessionID(v ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldSessionID, v))
}

// DisplayName applies equality check predicate on the "display_name" field. It's identical to DisplayNameEQ.
func DisplayName(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldDisplayName, v))
}

// OriginalName applies equality check predicate on the "original_name" field. It's identical to OriginalNameEQ.
func OriginalName(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldOriginalName, v))
}

// ContentType applies equality check predicate on the "content_type" field. It's identical to ContentTypeEQ.
func ContentType(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldContentType, v))
}

// ByteLength applies equality check predicate on the "byte_length" field. It's identical to ByteLengthEQ.
func ByteLength(v int64) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldByteLength, v))
}

// TempPath applies equality check predicate on the "temp_path" field. It's identical to TempPathEQ.
func TempPath(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldTempPath, v))
}

// Checksum applies equality check predicate on the "checksum" field. It's identical to ChecksumEQ.
func Checksum(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldChecksum, v))
}

// Processed applies equality check predicate on the "processed" field. It's identical to ProcessedEQ.
func Processed(v bool) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldProcessed, v))
}

// ResultMessage applies equality check predicate on the "result_message" field. It's identical to ResultMessageEQ.
func ResultMessage(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldResultMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLTE(FieldCreatedAt, v))
}

// UpdatedAtEQ applies the EQ predicate on the "updated_at" field.
func UpdatedAtEQ(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldUpdatedAt, v))
}

// UpdatedAtNEQ applies the NEQ predicate on the "updated_at" field.
func UpdatedAtNEQ(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNEQ(FieldUpdatedAt, v))
}

// UpdatedAtIn applies the In predicate on the "updated_at" field.
func UpdatedAtIn(vs ...time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldIn(FieldUpdatedAt, vs...))
}

// UpdatedAtNotIn applies the NotIn predicate on the "updated_at" field.
func UpdatedAtNotIn(vs ...time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNotIn(FieldUpdatedAt, vs...))
}

// UpdatedAtGT applies the GT predicate on the "updated_at" field.
func UpdatedAtGT(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGT(FieldUpdatedAt, v))
}

// UpdatedAtGTE applies the GTE predicate on the "updated_at" field.
func UpdatedAtGTE(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGTE(FieldUpdatedAt, v))
}

// UpdatedAtLT applies the LT predicate on the "updated_at" field.
func UpdatedAtLT(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLT(FieldUpdatedAt, v))
}

// UpdatedAtLTE applies the LTE predicate on the "updated_at" field.
func UpdatedAtLTE(v time.Time) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLTE(FieldUpdatedAt, v))
}

// SessionIDEQ applies the EQ predicate on the "session_id" field.
func SessionIDEQ(v ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldSessionID, v))
}

// SessionIDNEQ applies the NEQ predicate on the "session_id" field.
func SessionIDNEQ(v ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNEQ(FieldSessionID, v))
}

// SessionIDIn applies the In predicate on the "session_id" field.
func SessionIDIn(vs ...ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldIn(FieldSessionID, vs...))
}

// SessionIDNotIn applies the NotIn predicate on the "session_id" field.
func SessionIDNotIn(vs ...ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNotIn(FieldSessionID, vs...))
}

// SessionIDGT applies the GT predicate on the "session_id" field.
func SessionIDGT(v ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGT(FieldSessionID, v))
}

// SessionIDGTE applies the GTE predicate on the "session_id" field.
func SessionIDGTE(v ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGTE(FieldSessionID, v))
}

// SessionIDLT applies the LT predicate on the "session_id" field.
func SessionIDLT(v ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLT(FieldSessionID, v))
}

// SessionIDLTE applies the LTE predicate on the "session_id" field.
func SessionIDLTE(v ulid.ULID) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLTE(FieldSessionID, v))
}

// SessionIDContains applies the Contains predicate on the "session_id" field.
func SessionIDContains(v ulid.ULID) predicate.UploadSessionFile {
	vc := v.String()
	return predicate.UploadSessionFile(sql.FieldContains(FieldSessionID, vc))
}

// SessionIDHasPrefix applies the HasPrefix predicate on the "session_id" field.
func SessionIDHasPrefix(v ulid.ULID) predicate.UploadSessionFile {
	vc := v.String()
	return predicate.UploadSessionFile(sql.FieldHasPrefix(FieldSessionID, vc))
}

// SessionIDHasSuffix applies the HasSuffix predicate on the "session_id" field.
func SessionIDHasSuffix(v ulid.ULID) predicate.UploadSessionFile {
	vc := v.String()
	return predicate.UploadSessionFile(sql.FieldHasSuffix(FieldSessionID, vc))
}

// SessionIDEqualFold applies the EqualFold predicate on the "session_id" field.
func SessionIDEqualFold(v ulid.ULID) predicate.UploadSessionFile {
	vc := v.String()
	return predicate.UploadSessionFile(sql.FieldEqualFold(FieldSessionID, vc))
}

// SessionIDContainsFold applies the ContainsFold predicate on the "session_id" field.
func SessionIDContainsFold(v ulid.ULID) predicate.UploadSessionFile {
	vc := v.String()
	return predicate.UploadSessionFile(sql.FieldContainsFold(FieldSessionID, vc))
}

// DisplayNameEQ applies the EQ predicate on the "display_name" field.
func DisplayNameEQ(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldDisplayName, v))
}

// DisplayNameNEQ applies the NEQ predicate on the "display_name" field.
func DisplayNameNEQ(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNEQ(FieldDisplayName, v))
}

// DisplayNameIn applies the In predicate on the "display_name" field.
func DisplayNameIn(vs ...string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldIn(FieldDisplayName, vs...))
}

// DisplayNameNotIn applies the NotIn predicate on the "display_name" field.
func DisplayNameNotIn(vs ...string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNotIn(FieldDisplayName, vs...))
}

// DisplayNameGT applies the GT predicate on the "display_name" field.
func DisplayNameGT(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGT(FieldDisplayName, v))
}

// DisplayNameGTE applies the GTE predicate on the "display_name" field.
func DisplayNameGTE(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGTE(FieldDisplayName, v))
}

// DisplayNameLT applies the LT predicate on the "display_name" field.
func DisplayNameLT(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLT(FieldDisplayName, v))
}

// DisplayNameLTE applies the LTE predicate on the "display_name" field.
func DisplayNameLTE(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLTE(FieldDisplayName, v))
}

// DisplayNameContains applies the Contains predicate on the "display_name" field.
func DisplayNameContains(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldContains(FieldDisplayName, v))
}

// DisplayNameHasPrefix applies the HasPrefix predicate on the "display_name" field.
func DisplayNameHasPrefix(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldHasPrefix(FieldDisplayName, v))
}

// DisplayNameHasSuffix applies the HasSuffix predicate on the "display_name" field.
func DisplayNameHasSuffix(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldHasSuffix(FieldDisplayName, v))
}

// DisplayNameEqualFold applies the EqualFold predicate on the "display_name" field.
func DisplayNameEqualFold(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEqualFold(FieldDisplayName, v))
}

// DisplayNameContainsFold applies the ContainsFold predicate on the "display_name" field.
func DisplayNameContainsFold(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldContainsFold(FieldDisplayName, v))
}

// OriginalNameEQ applies the EQ predicate on the "original_name" field.
func OriginalNameEQ(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldOriginalName, v))
}

// OriginalNameNEQ applies the NEQ predicate on the "original_name" field.
func OriginalNameNEQ(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNEQ(FieldOriginalName, v))
}

// OriginalNameIn applies the In predicate on the "original_name" field.
func OriginalNameIn(vs ...string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldIn(FieldOriginalName, vs...))
}

// OriginalNameNotIn applies the NotIn predicate on the "original_name" field.
func OriginalNameNotIn(vs ...string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNotIn(FieldOriginalName, vs...))
}

// OriginalNameGT applies the GT predicate on the "original_name" field.
func OriginalNameGT(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGT(FieldOriginalName, v))
}

// OriginalNameGTE applies the GTE predicate on the "original_name" field.
func OriginalNameGTE(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGTE(FieldOriginalName, v))
}

// OriginalNameLT applies the LT predicate on the "original_name" field.
func OriginalNameLT(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLT(FieldOriginalName, v))
}

// OriginalNameLTE applies the LTE predicate on the "original_name" field.
func OriginalNameLTE(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLTE(FieldOriginalName, v))
}

// OriginalNameContains applies the Contains predicate on the "original_name" field.
func OriginalNameContains(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldContains(FieldOriginalName, v))
}

// OriginalNameHasPrefix applies the HasPrefix predicate on the "original_name" field.
func OriginalNameHasPrefix(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldHasPrefix(FieldOriginalName, v))
}

// OriginalNameHasSuffix applies the HasSuffix predicate on the "original_name" field.
func OriginalNameHasSuffix(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldHasSuffix(FieldOriginalName, v))
}

// OriginalNameEqualFold applies the EqualFold predicate on the "original_name" field.
func OriginalNameEqualFold(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEqualFold(FieldOriginalName, v))
}

// OriginalNameContainsFold applies the ContainsFold predicate on the "original_name" field.
func OriginalNameContainsFold(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldContainsFold(FieldOriginalName, v))
}

// ContentTypeEQ applies the EQ predicate on the "content_type" field.
func ContentTypeEQ(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldContentType, v))
}

// ContentTypeNEQ applies the NEQ predicate on the "content_type" field.
func ContentTypeNEQ(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNEQ(FieldContentType, v))
}

// ContentTypeIn applies the In predicate on the "content_type" field.
func ContentTypeIn(vs ...string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldIn(FieldContentType, vs...))
}

// ContentTypeNotIn applies the NotIn predicate on the "content_type" field.
func ContentTypeNotIn(vs ...string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNotIn(FieldContentType, vs...))
}

// ContentTypeGT applies the GT predicate on the "content_type" field.
func ContentTypeGT(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGT(FieldContentType, v))
}

// ContentTypeGTE applies the GTE predicate on the "content_type" field.
func ContentTypeGTE(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGTE(FieldContentType, v))
}

// ContentTypeLT applies the LT predicate on the "content_type" field.
func ContentTypeLT(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLT(FieldContentType, v))
}

// ContentTypeLTE applies the LTE predicate on the "content_type" field.
func ContentTypeLTE(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLTE(FieldContentType, v))
}

// ContentTypeContains applies the Contains predicate on the "content_type" field.
func ContentTypeContains(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldContains(FieldContentType, v))
}

// ContentTypeHasPrefix applies the HasPrefix predicate on the "content_type" field.
func ContentTypeHasPrefix(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldHasPrefix(FieldContentType, v))
}

// ContentTypeHasSuffix applies the HasSuffix predicate on the "content_type" field.
func ContentTypeHasSuffix(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldHasSuffix(FieldContentType, v))
}

// ContentTypeEqualFold applies the EqualFold predicate on the "content_type" field.
func ContentTypeEqualFold(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEqualFold(FieldContentType, v))
}

// ContentTypeContainsFold applies the ContainsFold predicate on the "content_type" field.
func ContentTypeContainsFold(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldContainsFold(FieldContentType, v))
}

// ByteLengthEQ applies the EQ predicate on the "byte_length" field.
func ByteLengthEQ(v int64) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldByteLength, v))
}

// ByteLengthNEQ applies the NEQ predicate on the "byte_length" field.
func ByteLengthNEQ(v int64) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNEQ(FieldByteLength, v))
}

// ByteLengthIn applies the In predicate on the "byte_length" field.
func ByteLengthIn(vs ...int64) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldIn(FieldByteLength, vs...))
}

// ByteLengthNotIn applies the NotIn predicate on the "byte_length" field.
func ByteLengthNotIn(vs ...int64) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNotIn(FieldByteLength, vs...))
}

// ByteLengthGT applies the GT predicate on the "byte_length" field.
func ByteLengthGT(v int64) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGT(FieldByteLength, v))
}

// ByteLengthGTE applies the GTE predicate on the "byte_length" field.
func ByteLengthGTE(v int64) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGTE(FieldByteLength, v))
}

// ByteLengthLT applies the LT predicate on the "byte_length" field.
func ByteLengthLT(v int64) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLT(FieldByteLength, v))
}

// ByteLengthLTE applies the LTE predicate on the "byte_length" field.
func ByteLengthLTE(v int64) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLTE(FieldByteLength, v))
}

// TempPathEQ applies the EQ predicate on the "temp_path" field.
func TempPathEQ(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldTempPath, v))
}

// TempPathNEQ applies the NEQ predicate on the "temp_path" field.
func TempPathNEQ(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNEQ(FieldTempPath, v))
}

// TempPathIn applies the In predicate on the "temp_path" field.
func TempPathIn(vs ...string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldIn(FieldTempPath, vs...))
}

// TempPathNotIn applies the NotIn predicate on the "temp_path" field.
func TempPathNotIn(vs ...string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNotIn(FieldTempPath, vs...))
}

// TempPathGT applies the GT predicate on the "temp_path" field.
func TempPathGT(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGT(FieldTempPath, v))
}

// TempPathGTE applies the GTE predicate on the "temp_path" field.
func TempPathGTE(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGTE(FieldTempPath, v))
}

// TempPathLT applies the LT predicate on the "temp_path" field.
func TempPathLT(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLT(FieldTempPath, v))
}

// TempPathLTE applies the LTE predicate on the "temp_path" field.
func TempPathLTE(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLTE(FieldTempPath, v))
}

// TempPathContains applies the Contains predicate on the "temp_path" field.
func TempPathContains(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldContains(FieldTempPath, v))
}

// TempPathHasPrefix applies the HasPrefix predicate on the "temp_path" field.
func TempPathHasPrefix(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldHasPrefix(FieldTempPath, v))
}

// TempPathHasSuffix applies the HasSuffix predicate on the "temp_path" field.
func TempPathHasSuffix(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldHasSuffix(FieldTempPath, v))
}

// TempPathEqualFold applies the EqualFold predicate on the "temp_path" field.
func TempPathEqualFold(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEqualFold(FieldTempPath, v))
}

// TempPathContainsFold applies the ContainsFold predicate on the "temp_path" field.
func TempPathContainsFold(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldContainsFold(FieldTempPath, v))
}

// ChecksumEQ applies the EQ predicate on the "checksum" field.
func ChecksumEQ(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldChecksum, v))
}

// ChecksumNEQ applies the NEQ predicate on the "checksum" field.
func ChecksumNEQ(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNEQ(FieldChecksum, v))
}

// ChecksumIn applies the In predicate on the "checksum" field.
func ChecksumIn(vs ...string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldIn(FieldChecksum, vs...))
}

// ChecksumNotIn applies the NotIn predicate on the "checksum" field.
func ChecksumNotIn(vs ...string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNotIn(FieldChecksum, vs...))
}

// ChecksumGT applies the GT predicate on the "checksum" field.
func ChecksumGT(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGT(FieldChecksum, v))
}

// ChecksumGTE applies the GTE predicate on the "checksum" field.
func ChecksumGTE(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGTE(FieldChecksum, v))
}

// ChecksumLT applies the LT predicate on the "checksum" field.
func ChecksumLT(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLT(FieldChecksum, v))
}

// ChecksumLTE applies the LTE predicate on the "checksum" field.
func ChecksumLTE(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLTE(FieldChecksum, v))
}

// ChecksumContains applies the Contains predicate on the "checksum" field.
func ChecksumContains(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldContains(FieldChecksum, v))
}

// ChecksumHasPrefix applies the HasPrefix predicate on the "checksum" field.
func ChecksumHasPrefix(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldHasPrefix(FieldChecksum, v))
}

// ChecksumHasSuffix applies the HasSuffix predicate on the "checksum" field.
func ChecksumHasSuffix(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldHasSuffix(FieldChecksum, v))
}

// ChecksumEqualFold applies the EqualFold predicate on the "checksum" field.
func ChecksumEqualFold(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEqualFold(FieldChecksum, v))
}

// ChecksumContainsFold applies the ContainsFold predicate on the "checksum" field.
func ChecksumContainsFold(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldContainsFold(FieldChecksum, v))
}

// ProcessedEQ applies the EQ predicate on the "processed" field.
func ProcessedEQ(v bool) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldProcessed, v))
}

// ProcessedNEQ applies the NEQ predicate on the "processed" field.
func ProcessedNEQ(v bool) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNEQ(FieldProcessed, v))
}

// ResultMessageEQ applies the EQ predicate on the "result_message" field.
func ResultMessageEQ(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEQ(FieldResultMessage, v))
}

// ResultMessageNEQ applies the NEQ predicate on the "result_message" field.
func ResultMessageNEQ(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNEQ(FieldResultMessage, v))
}

// ResultMessageIn applies the In predicate on the "result_message" field.
func ResultMessageIn(vs ...string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldIn(FieldResultMessage, vs...))
}

// ResultMessageNotIn applies the NotIn predicate on the "result_message" field.
func ResultMessageNotIn(vs ...string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldNotIn(FieldResultMessage, vs...))
}

// ResultMessageGT applies the GT predicate on the "result_message" field.
func ResultMessageGT(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGT(FieldResultMessage, v))
}

// ResultMessageGTE applies the GTE predicate on the "result_message" field.
func ResultMessageGTE(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldGTE(FieldResultMessage, v))
}

// ResultMessageLT applies the LT predicate on the "result_message" field.
func ResultMessageLT(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLT(FieldResultMessage, v))
}

// ResultMessageLTE applies the LTE predicate on the "result_message" field.
func ResultMessageLTE(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldLTE(FieldResultMessage, v))
}

// ResultMessageContains applies the Contains predicate on the "result_message" field.
func ResultMessageContains(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldContains(FieldResultMessage, v))
}

// ResultMessageHasPrefix applies the HasPrefix predicate on the "result_message" field.
func ResultMessageHasPrefix(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldHasPrefix(FieldResultMessage, v))
}

// ResultMessageHasSuffix applies the HasSuffix predicate on the "result_message" field.
func ResultMessageHasSuffix(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldHasSuffix(FieldResultMessage, v))
}

// ResultMessageEqualFold applies the EqualFold predicate on the "result_message" field.
func ResultMessageEqualFold(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldEqualFold(FieldResultMessage, v))
}

// ResultMessageContainsFold applies the ContainsFold predicate on the "result_message" field.
func ResultMessageContainsFold(v string) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.FieldContainsFold(FieldResultMessage, v))
}

// HasSession applies the HasEdge predicate on the "session" edge.
func HasSession() predicate.UploadSessionFile {
	return predicate.UploadSessionFile(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, SessionTable, SessionColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasSessionWith applies the HasEdge predicate on the "session" edge with a given conditions (other predicates).
func HasSessionWith(preds ...predicate.UploadSession) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(func(s *sql.Selector) {
		step := newSessionStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UploadSessionFile) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UploadSessionFile) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UploadSessionFile) predicate.UploadSessionFile {
	return predicate.UploadSessionFile(sql.NotPredicates(p))
}
