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

// Recitation holds the schema definition for the Recitation entity.
// One narration of a poem: a published or pending audio/description pair.
// Uses an integer primary key so the id can be carried into the external
// catalogs unchanged.
type Recitation struct {
	ent.Schema
}

// Mixin of the Recitation.
func (Recitation) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.TimestampMixin{},
	}
}

// Fields of the Recitation.
func (Recitation) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}).
			Comment("Uploader who owns this recitation"),
		field.Int("poem_id"),
		field.Int("audio_order").
			Default(1).
			Comment("Position among recitations of the same poem"),
		field.String("title"),
		field.String("artist_name"),
		field.String("artist_url").
			Default(""),
		field.String("source_name").
			Default(""),
		field.String("source_url").
			Default(""),
		field.String("file_suffix"),
		field.UUID("legacy_guid", uuid.UUID{}).
			Unique().
			Comment("Identifier carried into the external catalogs"),
		field.String("checksum").
			Unique().
			Comment("MD5 of the audio file, used for duplicate detection"),
		field.Int64("mp3_size").
			Default(0),
		field.String("file_stem").
			Comment("Published name without extension, e.g. 1209-hrm"),
		field.String("sound_folder").
			Default(""),
		field.String("local_mp3_path").
			Default(""),
		field.String("local_xml_path").
			Default(""),
		field.Enum("review_status").
			Values("draft", "pending", "approved", "rejected").
			Default("draft"),
		field.String("review_message").
			Default(""),
		field.Time("reviewed_at").
			Optional().
			Nillable(),
		field.UUID("reviewer_id", uuid.UUID{}).
			Optional().
			Nillable(),
		field.Time("file_updated_at").
			Optional().
			Nillable().
			Comment("Set when the audio is replaced after initial placement"),
		field.Enum("sync_status").
			Values("new_item", "files_changed", "synchronized").
			Default("new_item"),
	}
}

// Edges of the Recitation.
func (Recitation) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("poem", Poem.Type).
			Ref("recitations").
			Unique().
			Required().
			Field("poem_id"),
		edge.To("trackers", PublishTracker.Type).
			Annotations(entsql.OnDelete(entsql.Cascade)),
	}
}

// Indexes of the Recitation.
func (Recitation) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("poem_id"),
		index.Fields("user_id"),
		index.Fields("review_status", "sync_status"),
	}
}

// Annotations of the Recitation.
func (Recitation) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "recitations"},
	}
}
