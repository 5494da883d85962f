package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// Account holds the schema definition for the Account entity.
type Account struct {
	ent.Schema
}

// Fields of the Account.
func (Account) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable().Unique(),
		field.String("username").Immutable().Unique(),
		field.String("display_name").Default(""),
		field.String("email").Unique(),
		field.String("password"),
		field.String("avatar_id").Default(""),
		field.String("banner_id").Default(""),
		field.String("bio").Default(""),
		field.String("website").Default(""),
		field.String("location").Default(""),
		field.Bool("is_admin").Default(false),
		field.Bool("is_suspended").Default(false),
		field.Bool("is_deleted").Default(false),
		field.Time("created_at"),
	}
}

// Edges of the Account.
func (Account) Edges() []ent.Edge {
	return nil
}
