package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Media holds the schema definition for the Media entity.
type Media struct {
	ent.Schema
}

// Fields of the Media.
func (Media) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable().Unique(),
		field.String("file").Immutable(),
		field.Int("type").Immutable(),
		field.String("account_id").Default(""),
		field.String("tweet_id").Default(""),
		field.Bool("is_deleted").Default(false),
		field.Time("created_at"),
	}
}

// Edges of the Media.
func (Media) Edges() []ent.Edge {
	return nil
}
