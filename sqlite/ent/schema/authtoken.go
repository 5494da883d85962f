package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AuthToken holds the schema definition for the AuthToken entity. The
// token string itself is the id.
type AuthToken struct {
	ent.Schema
}

// Fields of the AuthToken.
func (AuthToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable().Unique(),
		field.String("account_id").Immutable(),
		field.String("user_agent").Immutable(),
		field.String("ip").Immutable(),
		field.Time("issued_at"),
	}
}

// Edges of the AuthToken.
func (AuthToken) Edges() []ent.Edge {
	return nil
}

// Indexes of the AuthToken.
func (AuthToken) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("account_id"),
	}
}
