package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Like holds the schema definition for the Like entity. The ulid id keeps
// like-insertion order recoverable for the liked-tweets page.
type Like struct {
	ent.Schema
}

// Fields of the Like.
func (Like) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable().Unique(),
		field.String("account_id").Immutable(),
		field.String("tweet_id").Immutable(),
	}
}

// Edges of the Like.
func (Like) Edges() []ent.Edge {
	return nil
}

// Indexes of the Like.
func (Like) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id", "tweet_id").Unique(),
		index.Fields("tweet_id"),
	}
}
