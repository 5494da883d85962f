// Code generated by ent, DO NOT EDIT.

package like

import (
	"entgo.io/ent/dialect/sql"
	"github.com/Mushus/retweet/sqlite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Like {
	return predicate.Like(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Like {
	return predicate.Like(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Like {
	return predicate.Like(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Like {
	return predicate.Like(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Like {
	return predicate.Like(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Like {
	return predicate.Like(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Like {
	return predicate.Like(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Like {
	return predicate.Like(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Like {
	return predicate.Like(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Like {
	return predicate.Like(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Like {
	return predicate.Like(sql.FieldContainsFold(FieldID, id))
}

// AccountID applies equality check predicate on the "account_id" field. It's identical to AccountIDEQ.
func AccountID(v string) predicate.Like {
	return predicate.Like(sql.FieldEQ(FieldAccountID, v))
}

// TweetID applies equality check predicate on the "tweet_id" field. It's identical to TweetIDEQ.
func TweetID(v string) predicate.Like {
	return predicate.Like(sql.FieldEQ(FieldTweetID, v))
}

// AccountIDEQ applies the EQ predicate on the "account_id" field.
func AccountIDEQ(v string) predicate.Like {
	return predicate.Like(sql.FieldEQ(FieldAccountID, v))
}

// AccountIDNEQ applies the NEQ predicate on the "account_id" field.
func AccountIDNEQ(v string) predicate.Like {
	return predicate.Like(sql.FieldNEQ(FieldAccountID, v))
}

// AccountIDIn applies the In predicate on the "account_id" field.
func AccountIDIn(vs ...string) predicate.Like {
	return predicate.Like(sql.FieldIn(FieldAccountID, vs...))
}

// AccountIDNotIn applies the NotIn predicate on the "account_id" field.
func AccountIDNotIn(vs ...string) predicate.Like {
	return predicate.Like(sql.FieldNotIn(FieldAccountID, vs...))
}

// AccountIDGT applies the GT predicate on the "account_id" field.
func AccountIDGT(v string) predicate.Like {
	return predicate.Like(sql.FieldGT(FieldAccountID, v))
}

// AccountIDGTE applies the GTE predicate on the "account_id" field.
func AccountIDGTE(v string) predicate.Like {
	return predicate.Like(sql.FieldGTE(FieldAccountID, v))
}

// AccountIDLT applies the LT predicate on the "account_id" field.
func AccountIDLT(v string) predicate.Like {
	return predicate.Like(sql.FieldLT(FieldAccountID, v))
}

// AccountIDLTE applies the LTE predicate on the "account_id" field.
func AccountIDLTE(v string) predicate.Like {
	return predicate.Like(sql.FieldLTE(FieldAccountID, v))
}

// AccountIDContains applies the Contains predicate on the "account_id" field.
func AccountIDContains(v string) predicate.Like {
	return predicate.Like(sql.FieldContains(FieldAccountID, v))
}

// AccountIDHasPrefix applies the HasPrefix predicate on the "account_id" field.
func AccountIDHasPrefix(v string) predicate.Like {
	return predicate.Like(sql.FieldHasPrefix(FieldAccountID, v))
}

// AccountIDHasSuffix applies the HasSuffix predicate on the "account_id" field.
func AccountIDHasSuffix(v string) predicate.Like {
	return predicate.Like(sql.FieldHasSuffix(FieldAccountID, v))
}

// AccountIDEqualFold applies the EqualFold predicate on the "account_id" field.
func AccountIDEqualFold(v string) predicate.Like {
	return predicate.Like(sql.FieldEqualFold(FieldAccountID, v))
}

// AccountIDContainsFold applies the ContainsFold predicate on the "account_id" field.
func AccountIDContainsFold(v string) predicate.Like {
	return predicate.Like(sql.FieldContainsFold(FieldAccountID, v))
}

// TweetIDEQ applies the EQ predicate on the "tweet_id" field.
func TweetIDEQ(v string) predicate.Like {
	return predicate.Like(sql.FieldEQ(FieldTweetID, v))
}

// TweetIDNEQ applies the NEQ predicate on the "tweet_id" field.
func TweetIDNEQ(v string) predicate.Like {
	return predicate.Like(sql.FieldNEQ(FieldTweetID, v))
}

// TweetIDIn applies the In predicate on the "tweet_id" field.
func TweetIDIn(vs ...string) predicate.Like {
	return predicate.Like(sql.FieldIn(FieldTweetID, vs...))
}

// TweetIDNotIn applies the NotIn predicate on the "tweet_id" field.
func TweetIDNotIn(vs ...string) predicate.Like {
	return predicate.Like(sql.FieldNotIn(FieldTweetID, vs...))
}

// TweetIDGT applies the GT predicate on the "tweet_id" field.
func TweetIDGT(v string) predicate.Like {
	return predicate.Like(sql.FieldGT(FieldTweetID, v))
}

// TweetIDGTE applies the GTE predicate on the "tweet_id" field.
func TweetIDGTE(v string) predicate.Like {
	return predicate.Like(sql.FieldGTE(FieldTweetID, v))
}

// TweetIDLT applies the LT predicate on the "tweet_id" field.
func TweetIDLT(v string) predicate.Like {
	return predicate.Like(sql.FieldLT(FieldTweetID, v))
}

// TweetIDLTE applies the LTE predicate on the "tweet_id" field.
func TweetIDLTE(v string) predicate.Like {
	return predicate.Like(sql.FieldLTE(FieldTweetID, v))
}

// TweetIDContains applies the Contains predicate on the "tweet_id" field.
func TweetIDContains(v string) predicate.Like {
	return predicate.Like(sql.FieldContains(FieldTweetID, v))
}

// TweetIDHasPrefix applies the HasPrefix predicate on the "tweet_id" field.
func TweetIDHasPrefix(v string) predicate.Like {
	return predicate.Like(sql.FieldHasPrefix(FieldTweetID, v))
}

// TweetIDHasSuffix applies the HasSuffix predicate on the "tweet_id" field.
func TweetIDHasSuffix(v string) predicate.Like {
	return predicate.Like(sql.FieldHasSuffix(FieldTweetID, v))
}

// TweetIDEqualFold applies the EqualFold predicate on the "tweet_id" field.
func TweetIDEqualFold(v string) predicate.Like {
	return predicate.Like(sql.FieldEqualFold(FieldTweetID, v))
}

// TweetIDContainsFold applies the ContainsFold predicate on the "tweet_id" field.
func TweetIDContainsFold(v string) predicate.Like {
	return predicate.Like(sql.FieldContainsFold(FieldTweetID, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Like) predicate.Like {
	return predicate.Like(func(s *sql.Selector) {
		s1 := s.Clone().SetP(nil)
		for _, p := range predicates {
			p(s1)
		}
		s.Where(s1.P())
	})
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Like) predicate.Like {
	return predicate.Like(func(s *sql.Selector) {
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
func Not(p predicate.Like) predicate.Like {
	return predicate.Like(func(s *sql.Selector) {
		p(s.Not())
	})
}
