package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Tweet holds the schema definition for the Tweet entity. Retweet wrappers
// are tweets whose content is the wrapper sentinel.
type Tweet struct {
	ent.Schema
}

// Fields of the Tweet.
func (Tweet) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable().Unique(),
		field.String("content").Immutable(),
		field.String("author_id").Immutable(),
		field.String("media_id").Default(""),
		field.String("replies_to").Immutable().Default(""),
		field.String("replies_to_author").Immutable().Default(""),
		// sort_id is a ulid; ordering by it recovers insertion order.
		field.String("sort_id").Immutable().Unique(),
		field.Bool("is_deleted").Default(false),
		field.Time("created_at"),
	}
}

// Edges of the Tweet.
func (Tweet) Edges() []ent.Edge {
	return nil
}

// Indexes of the Tweet.
func (Tweet) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("author_id"),
		index.Fields("replies_to"),
		// retweet wrapper lookups go by (author_id, content)
		index.Fields("author_id", "content"),
	}
}
