package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
)

// RecoveryToken holds the schema definition for the RecoveryToken entity.
// At most one live token exists per account.
type RecoveryToken struct {
	ent.Schema
}

// Fields of the RecoveryToken.
func (RecoveryToken) Fields() []ent.Field {
	return []ent.Field{
		field.String("id").Immutable().Unique(),
		field.String("account_id").Immutable().Unique(),
		field.Time("issued_at"),
	}
}

// Edges of the RecoveryToken.
func (RecoveryToken) Edges() []ent.Edge {
	return nil
}
