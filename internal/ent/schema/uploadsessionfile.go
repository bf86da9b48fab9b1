package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/oklog/ulid/v2"

	"github.com/khanesh/khanesh/internal/ent/mixins"
)

// UploadSessionFile holds the schema definition for the UploadSessionFile entity.
// Represents a single file received within an upload session.
type UploadSessionFile struct {
	ent.Schema
}

// Mixin of the UploadSessionFile.
func (UploadSessionFile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.IDMixin{},
		mixins.TimestampMixin{},
	}
}

// Fields of the UploadSessionFile.
func (UploadSessionFile) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			GoType(ulid.ULID{}).
			Comment("References UploadSession.ID"),
		field.String("display_name").
			Comment("Client-provided file name, extension stripped"),
		field.String("original_name"),
		field.String("content_type").
			Default(""),
		field.Int64("byte_length").
			Default(0),
		field.String("temp_path").
			Default("").
			Comment("Where the raw upload was staged on local disk; empty for rejected files"),
		field.String("checksum").
			Default("").
			Comment("MD5 of the file contents, hex encoded"),
		field.Bool("processed").
			Default(false),
		field.String("result_message").
			Default(""),
	}
}

// Edges of the UploadSessionFile.
func (UploadSessionFile) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("session", UploadSession.Type).
			Ref("files").
			Unique().
			Required().
			Field("session_id"),
	}
}

// Indexes of the UploadSessionFile.
func (UploadSessionFile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("checksum"),
	}
}

// Annotations of the UploadSessionFile.
func (UploadSessionFile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "upload_session_files"},
	}
}
