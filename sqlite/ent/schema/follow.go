package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// Follow holds the schema definition for the Follow entity. One row is one
// follower/followee edge; both timeline sides read from it.
type Follow struct {
	ent.Schema
}

// Fields of the Follow.
func (Follow) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable().Unique(),
		field.String("follower_id").Immutable(),
		field.String("followee_id").Immutable(),
	}
}

// Edges of the Follow.
func (Follow) Edges() []ent.Edge {
	return nil
}

// Indexes of the Follow.
func (Follow) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("follower_id", "followee_id").Unique(),
		index.Fields("followee_id"),
	}
}
