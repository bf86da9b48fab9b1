package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/khanesh/khanesh/internal/ent/mixins"
)

// PublishTracker holds the schema definition for the PublishTracker entity.
// Records per-step progress of one publish attempt so that a crashed or
// interrupted publish leaves an inspectable trail.
type PublishTracker struct {
	ent.Schema
}

// Mixin of the PublishTracker.
func (PublishTracker) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.IDMixin{},
		mixins.TimestampMixin{},
	}
}

// Fields of the PublishTracker.
func (PublishTracker) Fields() []ent.Field {
	return []ent.Field{
		field.Int("recitation_id").
			Comment("References Recitation.ID"),
		field.Bool("replace").
			Default(false).
			Comment("Files-only publish; the catalog rows already exist"),
		field.Bool("xml_copied").
			Default(false),
		field.Bool("mp3_copied").
			Default(false),
		field.Bool("first_db_updated").
			Default(false),
		field.Bool("second_db_updated").
			Default(false),
		field.Bool("finished").
			Default(false),
		field.String("last_error").
			Default(""),
		field.Time("finished_at").
			Optional().
			Nillable(),
	}
}

// Edges of the PublishTracker.
func (PublishTracker) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("recitation", Recitation.Type).
			Ref("trackers").
			Unique().
			Required().
			Field("recitation_id"),
	}
}

// Indexes of the PublishTracker.
func (PublishTracker) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("recitation_id"),
		index.Fields("finished"),
	}
}

// Annotations of the PublishTracker.
func (PublishTracker) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "publish_trackers"},
	}
}
