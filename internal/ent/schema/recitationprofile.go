package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
	"github.com/google/uuid"

	"github.com/khanesh/khanesh/internal/ent/mixins"
)

// RecitationProfile holds the schema definition for the RecitationProfile entity.
// A per-user template of attribution metadata applied to new recitations.
type RecitationProfile struct {
	ent.Schema
}

// Mixin of the RecitationProfile.
func (RecitationProfile) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.IDMixin{},
		mixins.TimestampMixin{},
		mixins.SoftDeleteMixin{},
	}
}

// Fields of the RecitationProfile.
func (RecitationProfile) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("user_id", uuid.UUID{}),
		field.String("name"),
		field.String("artist_name"),
		field.String("artist_url").
			Default(""),
		field.String("source_name").
			Default(""),
		field.String("source_url").
			Default(""),
		field.String("file_suffix").
			Comment("Appended to the poem id when naming published files"),
		field.Bool("is_default").
			Default(false),
	}
}

// Indexes of the RecitationProfile.
func (RecitationProfile) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("user_id"),
		index.Fields("user_id", "is_default"),
	}
}

// Annotations of the RecitationProfile.
func (RecitationProfile) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "recitation_profiles"},
	}
}
