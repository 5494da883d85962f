// Code generated by ent, DO NOT EDIT.

package follow

import (
	"entgo.io/ent/dialect/sql"
	"github.com/Mushus/retweet/sqlite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Follow {
	return predicate.Follow(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Follow {
	return predicate.Follow(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Follow {
	return predicate.Follow(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Follow {
	return predicate.Follow(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Follow {
	return predicate.Follow(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Follow {
	return predicate.Follow(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Follow {
	return predicate.Follow(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Follow {
	return predicate.Follow(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Follow {
	return predicate.Follow(sql.FieldContainsFold(FieldID, id))
}

// FollowerID applies equality check predicate on the "follower_id" field. It's identical to FollowerIDEQ.
func FollowerID(v string) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldFollowerID, v))
}

// FolloweeID applies equality check predicate on the "followee_id" field. It's identical to FolloweeIDEQ.
func FolloweeID(v string) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldFolloweeID, v))
}

// FollowerIDEQ applies the EQ predicate on the "follower_id" field.
func FollowerIDEQ(v string) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldFollowerID, v))
}

// FollowerIDNEQ applies the NEQ predicate on the "follower_id" field.
func FollowerIDNEQ(v string) predicate.Follow {
	return predicate.Follow(sql.FieldNEQ(FieldFollowerID, v))
}

// FollowerIDIn applies the In predicate on the "follower_id" field.
func FollowerIDIn(vs ...string) predicate.Follow {
	return predicate.Follow(sql.FieldIn(FieldFollowerID, vs...))
}

// FollowerIDNotIn applies the NotIn predicate on the "follower_id" field.
func FollowerIDNotIn(vs ...string) predicate.Follow {
	return predicate.Follow(sql.FieldNotIn(FieldFollowerID, vs...))
}

// FollowerIDGT applies the GT predicate on the "follower_id" field.
func FollowerIDGT(v string) predicate.Follow {
	return predicate.Follow(sql.FieldGT(FieldFollowerID, v))
}

// FollowerIDGTE applies the GTE predicate on the "follower_id" field.
func FollowerIDGTE(v string) predicate.Follow {
	return predicate.Follow(sql.FieldGTE(FieldFollowerID, v))
}

// FollowerIDLT applies the LT predicate on the "follower_id" field.
func FollowerIDLT(v string) predicate.Follow {
	return predicate.Follow(sql.FieldLT(FieldFollowerID, v))
}

// FollowerIDLTE applies the LTE predicate on the "follower_id" field.
func FollowerIDLTE(v string) predicate.Follow {
	return predicate.Follow(sql.FieldLTE(FieldFollowerID, v))
}

// FollowerIDContains applies the Contains predicate on the "follower_id" field.
func FollowerIDContains(v string) predicate.Follow {
	return predicate.Follow(sql.FieldContains(FieldFollowerID, v))
}

// FollowerIDHasPrefix applies the HasPrefix predicate on the "follower_id" field.
func FollowerIDHasPrefix(v string) predicate.Follow {
	return predicate.Follow(sql.FieldHasPrefix(FieldFollowerID, v))
}

// FollowerIDHasSuffix applies the HasSuffix predicate on the "follower_id" field.
func FollowerIDHasSuffix(v string) predicate.Follow {
	return predicate.Follow(sql.FieldHasSuffix(FieldFollowerID, v))
}

// FollowerIDEqualFold applies the EqualFold predicate on the "follower_id" field.
func FollowerIDEqualFold(v string) predicate.Follow {
	return predicate.Follow(sql.FieldEqualFold(FieldFollowerID, v))
}

// FollowerIDContainsFold applies the ContainsFold predicate on the "follower_id" field.
func FollowerIDContainsFold(v string) predicate.Follow {
	return predicate.Follow(sql.FieldContainsFold(FieldFollowerID, v))
}

// FolloweeIDEQ applies the EQ predicate on the "followee_id" field.
func FolloweeIDEQ(v string) predicate.Follow {
	return predicate.Follow(sql.FieldEQ(FieldFolloweeID, v))
}

// FolloweeIDNEQ applies the NEQ predicate on the "followee_id" field.
func FolloweeIDNEQ(v string) predicate.Follow {
	return predicate.Follow(sql.FieldNEQ(FieldFolloweeID, v))
}

// FolloweeIDIn applies the In predicate on the "followee_id" field.
func FolloweeIDIn(vs ...string) predicate.Follow {
	return predicate.Follow(sql.FieldIn(FieldFolloweeID, vs...))
}

// FolloweeIDNotIn applies the NotIn predicate on the "followee_id" field.
func FolloweeIDNotIn(vs ...string) predicate.Follow {
	return predicate.Follow(sql.FieldNotIn(FieldFolloweeID, vs...))
}

// FolloweeIDGT applies the GT predicate on the "followee_id" field.
func FolloweeIDGT(v string) predicate.Follow {
	return predicate.Follow(sql.FieldGT(FieldFolloweeID, v))
}

// FolloweeIDGTE applies the GTE predicate on the "followee_id" field.
func FolloweeIDGTE(v string) predicate.Follow {
	return predicate.Follow(sql.FieldGTE(FieldFolloweeID, v))
}

// FolloweeIDLT applies the LT predicate on the "followee_id" field.
func FolloweeIDLT(v string) predicate.Follow {
	return predicate.Follow(sql.FieldLT(FieldFolloweeID, v))
}

// FolloweeIDLTE applies the LTE predicate on the "followee_id" field.
func FolloweeIDLTE(v string) predicate.Follow {
	return predicate.Follow(sql.FieldLTE(FieldFolloweeID, v))
}

// FolloweeIDContains applies the Contains predicate on the "followee_id" field.
func FolloweeIDContains(v string) predicate.Follow {
	return predicate.Follow(sql.FieldContains(FieldFolloweeID, v))
}

// FolloweeIDHasPrefix applies the HasPrefix predicate on the "followee_id" field.
func FolloweeIDHasPrefix(v string) predicate.Follow {
	return predicate.Follow(sql.FieldHasPrefix(FieldFolloweeID, v))
}

// FolloweeIDHasSuffix applies the HasSuffix predicate on the "followee_id" field.
func FolloweeIDHasSuffix(v string) predicate.Follow {
	return predicate.Follow(sql.FieldHasSuffix(FieldFolloweeID, v))
}

// FolloweeIDEqualFold applies the EqualFold predicate on the "followee_id" field.
func FolloweeIDEqualFold(v string) predicate.Follow {
	return predicate.Follow(sql.FieldEqualFold(FieldFolloweeID, v))
}

// FolloweeIDContainsFold applies the ContainsFold predicate on the "followee_id" field.
func FolloweeIDContainsFold(v string) predicate.Follow {
	return predicate.Follow(sql.FieldContainsFold(FieldFolloweeID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Follow) predicate.Follow {
	return predicate.Follow(func(s *sql.Selector) {
		s1 := s.Clone().SetP(nil)
		for _, p := range predicates {
			p(s1)
		}
		s.Where(s1.P())
	})
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Follow) predicate.Follow {
	return predicate.Follow(func(s *sql.Selector) {
		s1 := s.Clone().SetP(nil)
		for i, p := range predicates {
			if i > 0 {
				s1.Or()
			}
			p(s1)
		}
		s.Where(s1.P())
	})
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Follow) predicate.Follow {
	return predicate.Follow(func(s *sql.Selector) {
		p(s.Not())
	})
}
