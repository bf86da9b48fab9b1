package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"

	"github.com/khanesh/khanesh/internal/ent/mixins"
)

// Poem holds the schema definition for the Poem entity.
// A lightweight local mirror of catalog poems, enough to title recitations
// and validate descriptor references. IDs are assigned by the catalog, not
// generated locally.
type Poem struct {
	ent.Schema
}

// Mixin of the Poem.
func (Poem) Mixin() []ent.Mixin {
	return []ent.Mixin{
		mixins.TimestampMixin{},
	}
}

// Fields of the Poem.
func (Poem) Fields() []ent.Field {
	return []ent.Field{
		field.Int("id").
			Immutable(),
		field.String("title"),
		field.String("full_url").
			Default(""),
		field.JSON("verses", []string{}).
			Optional().
			Comment("Verse texts in reading order, for resolving sync offsets"),
	}
}

// Edges of the Poem.
func (Poem) Edges() []ent.Edge {
	return []ent.Edge{
		edge.To("recitations", Recitation.Type),
	}
}

// Annotations of the Poem.
func (Poem) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "poems"},
	}
}
