package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/khanesh/khanesh/internal/ent/mixins"
)

// UploadSession holds the schema definition for the UploadSession entity.
// Represents one batch of files received from an uploader in a single request.
type UploadSession struct {
	ent.Schema
}

// Mixin of the UploadSession.
func (UploadSession) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.IDMixin{},
		mixins.TimestampMixin{},
	}
}

// Fields of the UploadSession.
func (UploadSession) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("Owner of the uploaded files"),
		field.Enum("kind").
			Values("new_audio", "replace_audio").
			Default("new_audio"),
		field.Enum("process_status").
			Values("not_started", "running", "finished").
			Default("not_started"),
		field.Int("process_progress").
			Default(0).
			Comment("Percentage 0-100"),
		field.Time("ended_at").
			Optional().
			Nillable().
			Comment("Set when the uploader finalizes the session"),
		field.Time("process_started_at").
			Optional().
			Nillable().
			Comment("Set when background processing begins"),
		field.Time("process_ended_at").
			Optional().
			Nillable(),
	}
}

// Edges of the UploadSession.
func (UploadSession) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("files", UploadSessionFile.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the UploadSession.
func (UploadSession) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("process_status"),
	}
}

// Annotations of the UploadSession.
func (UploadSession) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "upload_sessions"},
	}
}
