// Code generated by ent, DO NOT EDIT.

package tweet

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"github.com/Mushus/retweet/sqlite/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContainsFold(FieldID, id))
}

// Content applies equality check predicate on the "content" field. It's identical to ContentEQ.
func Content(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldContent, v))
}

// AuthorID applies equality check predicate on the "author_id" field. It's identical to AuthorIDEQ.
func AuthorID(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldAuthorID, v))
}

// MediaID applies equality check predicate on the "media_id" field. It's identical to MediaIDEQ.
func MediaID(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldMediaID, v))
}

// RepliesTo applies equality check predicate on the "replies_to" field. It's identical to RepliesToEQ.
func RepliesTo(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldRepliesTo, v))
}

// RepliesToAuthor applies equality check predicate on the "replies_to_author" field. It's identical to RepliesToAuthorEQ.
func RepliesToAuthor(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldRepliesToAuthor, v))
}

// SortID applies equality check predicate on the "sort_id" field. It's identical to SortIDEQ.
func SortID(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldSortID, v))
}

// IsDeleted applies equality check predicate on the "is_deleted" field. It's identical to IsDeletedEQ.
func IsDeleted(v bool) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldIsDeleted, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldCreatedAt, v))
}

// ContentEQ applies the EQ predicate on the "content" field.
func ContentEQ(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldContent, v))
}

// ContentNEQ applies the NEQ predicate on the "content" field.
func ContentNEQ(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNEQ(FieldContent, v))
}

// ContentIn applies the In predicate on the "content" field.
func ContentIn(vs ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldIn(FieldContent, vs...))
}

// ContentNotIn applies the NotIn predicate on the "content" field.
func ContentNotIn(vs ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNotIn(FieldContent, vs...))
}

// ContentGT applies the GT predicate on the "content" field.
func ContentGT(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGT(FieldContent, v))
}

// ContentGTE applies the GTE predicate on the "content" field.
func ContentGTE(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGTE(FieldContent, v))
}

// ContentLT applies the LT predicate on the "content" field.
func ContentLT(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLT(FieldContent, v))
}

// ContentLTE applies the LTE predicate on the "content" field.
func ContentLTE(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLTE(FieldContent, v))
}

// ContentContains applies the Contains predicate on the "content" field.
func ContentContains(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContains(FieldContent, v))
}

// ContentHasPrefix applies the HasPrefix predicate on the "content" field.
func ContentHasPrefix(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldHasPrefix(FieldContent, v))
}

// ContentHasSuffix applies the HasSuffix predicate on the "content" field.
func ContentHasSuffix(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldHasSuffix(FieldContent, v))
}

// ContentEqualFold applies the EqualFold predicate on the "content" field.
func ContentEqualFold(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEqualFold(FieldContent, v))
}

// ContentContainsFold applies the ContainsFold predicate on the "content" field.
func ContentContainsFold(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContainsFold(FieldContent, v))
}

// AuthorIDEQ applies the EQ predicate on the "author_id" field.
func AuthorIDEQ(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldAuthorID, v))
}

// AuthorIDNEQ applies the NEQ predicate on the "author_id" field.
func AuthorIDNEQ(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNEQ(FieldAuthorID, v))
}

// AuthorIDIn applies the In predicate on the "author_id" field.
func AuthorIDIn(vs ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldIn(FieldAuthorID, vs...))
}

// AuthorIDNotIn applies the NotIn predicate on the "author_id" field.
func AuthorIDNotIn(vs ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNotIn(FieldAuthorID, vs...))
}

// AuthorIDGT applies the GT predicate on the "author_id" field.
func AuthorIDGT(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGT(FieldAuthorID, v))
}

// AuthorIDGTE applies the GTE predicate on the "author_id" field.
func AuthorIDGTE(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGTE(FieldAuthorID, v))
}

// AuthorIDLT applies the LT predicate on the "author_id" field.
func AuthorIDLT(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLT(FieldAuthorID, v))
}

// AuthorIDLTE applies the LTE predicate on the "author_id" field.
func AuthorIDLTE(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLTE(FieldAuthorID, v))
}

// AuthorIDContains applies the Contains predicate on the "author_id" field.
func AuthorIDContains(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContains(FieldAuthorID, v))
}

// AuthorIDHasPrefix applies the HasPrefix predicate on the "author_id" field.
func AuthorIDHasPrefix(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldHasPrefix(FieldAuthorID, v))
}

// AuthorIDHasSuffix applies the HasSuffix predicate on the "author_id" field.
func AuthorIDHasSuffix(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldHasSuffix(FieldAuthorID, v))
}

// AuthorIDEqualFold applies the EqualFold predicate on the "author_id" field.
func AuthorIDEqualFold(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEqualFold(FieldAuthorID, v))
}

// AuthorIDContainsFold applies the ContainsFold predicate on the "author_id" field.
func AuthorIDContainsFold(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContainsFold(FieldAuthorID, v))
}

// MediaIDEQ applies the EQ predicate on the "media_id" field.
func MediaIDEQ(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldMediaID, v))
}

// MediaIDNEQ applies the NEQ predicate on the "media_id" field.
func MediaIDNEQ(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNEQ(FieldMediaID, v))
}

// MediaIDIn applies the In predicate on the "media_id" field.
func MediaIDIn(vs ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldIn(FieldMediaID, vs...))
}

// MediaIDNotIn applies the NotIn predicate on the "media_id" field.
func MediaIDNotIn(vs ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNotIn(FieldMediaID, vs...))
}

// MediaIDGT applies the GT predicate on the "media_id" field.
func MediaIDGT(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGT(FieldMediaID, v))
}

// MediaIDGTE applies the GTE predicate on the "media_id" field.
func MediaIDGTE(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGTE(FieldMediaID, v))
}

// MediaIDLT applies the LT predicate on the "media_id" field.
func MediaIDLT(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLT(FieldMediaID, v))
}

// MediaIDLTE applies the LTE predicate on the "media_id" field.
func MediaIDLTE(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLTE(FieldMediaID, v))
}

// MediaIDContains applies the Contains predicate on the "media_id" field.
func MediaIDContains(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContains(FieldMediaID, v))
}

// MediaIDHasPrefix applies the HasPrefix predicate on the "media_id" field.
func MediaIDHasPrefix(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldHasPrefix(FieldMediaID, v))
}

// MediaIDHasSuffix applies the HasSuffix predicate on the "media_id" field.
func MediaIDHasSuffix(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldHasSuffix(FieldMediaID, v))
}

// MediaIDEqualFold applies the EqualFold predicate on the "media_id" field.
func MediaIDEqualFold(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEqualFold(FieldMediaID, v))
}

// MediaIDContainsFold applies the ContainsFold predicate on the "media_id" field.
func MediaIDContainsFold(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContainsFold(FieldMediaID, v))
}

// RepliesToEQ applies the EQ predicate on the "replies_to" field.
func RepliesToEQ(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldRepliesTo, v))
}

// RepliesToNEQ applies the NEQ predicate on the "replies_to" field.
func RepliesToNEQ(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNEQ(FieldRepliesTo, v))
}

// RepliesToIn applies the In predicate on the "replies_to" field.
func RepliesToIn(vs ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldIn(FieldRepliesTo, vs...))
}

// RepliesToNotIn applies the NotIn predicate on the "replies_to" field.
func RepliesToNotIn(vs ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNotIn(FieldRepliesTo, vs...))
}

// RepliesToGT applies the GT predicate on the "replies_to" field.
func RepliesToGT(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGT(FieldRepliesTo, v))
}

// RepliesToGTE applies the GTE predicate on the "replies_to" field.
func RepliesToGTE(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGTE(FieldRepliesTo, v))
}

// RepliesToLT applies the LT predicate on the "replies_to" field.
func RepliesToLT(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLT(FieldRepliesTo, v))
}

// RepliesToLTE applies the LTE predicate on the "replies_to" field.
func RepliesToLTE(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLTE(FieldRepliesTo, v))
}

// RepliesToContains applies the Contains predicate on the "replies_to" field.
func RepliesToContains(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContains(FieldRepliesTo, v))
}

// RepliesToHasPrefix applies the HasPrefix predicate on the "replies_to" field.
func RepliesToHasPrefix(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldHasPrefix(FieldRepliesTo, v))
}

// RepliesToHasSuffix applies the HasSuffix predicate on the "replies_to" field.
func RepliesToHasSuffix(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldHasSuffix(FieldRepliesTo, v))
}

// RepliesToEqualFold applies the EqualFold predicate on the "replies_to" field.
func RepliesToEqualFold(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEqualFold(FieldRepliesTo, v))
}

// RepliesToContainsFold applies the ContainsFold predicate on the "replies_to" field.
func RepliesToContainsFold(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContainsFold(FieldRepliesTo, v))
}

// RepliesToAuthorEQ applies the EQ predicate on the "replies_to_author" field.
func RepliesToAuthorEQ(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldRepliesToAuthor, v))
}

// RepliesToAuthorNEQ applies the NEQ predicate on the "replies_to_author" field.
func RepliesToAuthorNEQ(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNEQ(FieldRepliesToAuthor, v))
}

// RepliesToAuthorIn applies the In predicate on the "replies_to_author" field.
func RepliesToAuthorIn(vs ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldIn(FieldRepliesToAuthor, vs...))
}

// RepliesToAuthorNotIn applies the NotIn predicate on the "replies_to_author" field.
func RepliesToAuthorNotIn(vs ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNotIn(FieldRepliesToAuthor, vs...))
}

// RepliesToAuthorGT applies the GT predicate on the "replies_to_author" field.
func RepliesToAuthorGT(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGT(FieldRepliesToAuthor, v))
}

// RepliesToAuthorGTE applies the GTE predicate on the "replies_to_author" field.
func RepliesToAuthorGTE(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGTE(FieldRepliesToAuthor, v))
}

// RepliesToAuthorLT applies the LT predicate on the "replies_to_author" field.
func RepliesToAuthorLT(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLT(FieldRepliesToAuthor, v))
}

// RepliesToAuthorLTE applies the LTE predicate on the "replies_to_author" field.
func RepliesToAuthorLTE(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLTE(FieldRepliesToAuthor, v))
}

// RepliesToAuthorContains applies the Contains predicate on the "replies_to_author" field.
func RepliesToAuthorContains(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContains(FieldRepliesToAuthor, v))
}

// RepliesToAuthorHasPrefix applies the HasPrefix predicate on the "replies_to_author" field.
func RepliesToAuthorHasPrefix(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldHasPrefix(FieldRepliesToAuthor, v))
}

// RepliesToAuthorHasSuffix applies the HasSuffix predicate on the "replies_to_author" field.
func RepliesToAuthorHasSuffix(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldHasSuffix(FieldRepliesToAuthor, v))
}

// RepliesToAuthorEqualFold applies the EqualFold predicate on the "replies_to_author" field.
func RepliesToAuthorEqualFold(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEqualFold(FieldRepliesToAuthor, v))
}

// RepliesToAuthorContainsFold applies the ContainsFold predicate on the "replies_to_author" field.
func RepliesToAuthorContainsFold(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContainsFold(FieldRepliesToAuthor, v))
}

// SortIDEQ applies the EQ predicate on the "sort_id" field.
func SortIDEQ(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldSortID, v))
}

// SortIDNEQ applies the NEQ predicate on the "sort_id" field.
func SortIDNEQ(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNEQ(FieldSortID, v))
}

// SortIDIn applies the In predicate on the "sort_id" field.
func SortIDIn(vs ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldIn(FieldSortID, vs...))
}

// SortIDNotIn applies the NotIn predicate on the "sort_id" field.
func SortIDNotIn(vs ...string) predicate.Tweet {
	return predicate.Tweet(sql.FieldNotIn(FieldSortID, vs...))
}

// SortIDGT applies the GT predicate on the "sort_id" field.
func SortIDGT(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGT(FieldSortID, v))
}

// SortIDGTE applies the GTE predicate on the "sort_id" field.
func SortIDGTE(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldGTE(FieldSortID, v))
}

// SortIDLT applies the LT predicate on the "sort_id" field.
func SortIDLT(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLT(FieldSortID, v))
}

// SortIDLTE applies the LTE predicate on the "sort_id" field.
func SortIDLTE(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldLTE(FieldSortID, v))
}

// SortIDContains applies the Contains predicate on the "sort_id" field.
func SortIDContains(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContains(FieldSortID, v))
}

// SortIDHasPrefix applies the HasPrefix predicate on the "sort_id" field.
func SortIDHasPrefix(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldHasPrefix(FieldSortID, v))
}

// SortIDHasSuffix applies the HasSuffix predicate on the "sort_id" field.
func SortIDHasSuffix(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldHasSuffix(FieldSortID, v))
}

// SortIDEqualFold applies the EqualFold predicate on the "sort_id" field.
func SortIDEqualFold(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldEqualFold(FieldSortID, v))
}

// SortIDContainsFold applies the ContainsFold predicate on the "sort_id" field.
func SortIDContainsFold(v string) predicate.Tweet {
	return predicate.Tweet(sql.FieldContainsFold(FieldSortID, v))
}

// IsDeletedEQ applies the EQ predicate on the "is_deleted" field.
func IsDeletedEQ(v bool) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldIsDeleted, v))
}

// IsDeletedNEQ applies the NEQ predicate on the "is_deleted" field.
func IsDeletedNEQ(v bool) predicate.Tweet {
	return predicate.Tweet(sql.FieldNEQ(FieldIsDeleted, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Tweet {
	return predicate.Tweet(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Tweet {
	return predicate.Tweet(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Tweet {
	return predicate.Tweet(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Tweet {
	return predicate.Tweet(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Tweet {
	return predicate.Tweet(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Tweet {
	return predicate.Tweet(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Tweet {
	return predicate.Tweet(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Tweet {
	return predicate.Tweet(sql.FieldLTE(FieldCreatedAt, v))
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Tweet) predicate.Tweet {
	return predicate.Tweet(func(s *sql.Selector) {
		s1 := s.Clone().SetP(nil)
		for _, p := range predicates {
			p(s1)
		}
		s.Where(s1.P())
	})
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Tweet) predicate.Tweet {
	return predicate.Tweet(func(s *sql.Selector) {
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
func Not(p predicate.Tweet) predicate.Tweet {
	return predicate.Tweet(func(s *sql.Selector) {
		p(s.Not())
	})
}
