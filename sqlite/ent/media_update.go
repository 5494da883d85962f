// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Mushus/retweet/sqlite/ent/media"
	"github.com/Mushus/retweet/sqlite/ent/predicate"
)

// MediaUpdate is the builder for updating Media entities.
type MediaUpdate struct {
	config
	hooks    []Hook
	mutation *MediaMutation
}

// Where appends a list predicates to the MediaUpdate builder.
func (mu *MediaUpdate) Where(ps ...predicate.Media) *MediaUpdate {
	mu.mutation.Where(ps...)
	return mu
}

// SetAccountID sets the "account_id" field.
func (mu *MediaUpdate) SetAccountID(s string) *MediaUpdate {
	mu.mutation.SetAccountID(s)
	return mu
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (mu *MediaUpdate) SetNillableAccountID(s *string) *MediaUpdate {
	if s != nil {
		mu.SetAccountID(*s)
	}
	return mu
}

// SetTweetID sets the "tweet_id" field.
func (mu *MediaUpdate) SetTweetID(s string) *MediaUpdate {
	mu.mutation.SetTweetID(s)
	return mu
}

// SetNillableTweetID sets the "tweet_id" field if the given value is not nil.
func (mu *MediaUpdate) SetNillableTweetID(s *string) *MediaUpdate {
	if s != nil {
		mu.SetTweetID(*s)
	}
	return mu
}

// SetIsDeleted sets the "is_deleted" field.
func (mu *MediaUpdate) SetIsDeleted(b bool) *MediaUpdate {
	mu.mutation.SetIsDeleted(b)
	return mu
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (mu *MediaUpdate) SetNillableIsDeleted(b *bool) *MediaUpdate {
	if b != nil {
		mu.SetIsDeleted(*b)
	}
	return mu
}

// SetCreatedAt sets the "created_at" field.
func (mu *MediaUpdate) SetCreatedAt(t time.Time) *MediaUpdate {
	mu.mutation.SetCreatedAt(t)
	return mu
}

// Mutation returns the MediaMutation object of the builder.
func (mu *MediaUpdate) Mutation() *MediaMutation {
	return mu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (mu *MediaUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, mu.sqlSave, mu.mutation, mu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (mu *MediaUpdate) SaveX(ctx context.Context) int {
	affected, err := mu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (mu *MediaUpdate) Exec(ctx context.Context) error {
	_, err := mu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (mu *MediaUpdate) ExecX(ctx context.Context) {
	if err := mu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (mu *MediaUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(media.Table, media.Columns, sqlgraph.NewFieldSpec(media.FieldID, field.TypeString))
	if ps := mu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := mu.mutation.AccountID(); ok {
		_spec.SetField(media.FieldAccountID, field.TypeString, value)
	}
	if value, ok := mu.mutation.TweetID(); ok {
		_spec.SetField(media.FieldTweetID, field.TypeString, value)
	}
	if value, ok := mu.mutation.IsDeleted(); ok {
		_spec.SetField(media.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := mu.mutation.CreatedAt(); ok {
		_spec.SetField(media.FieldCreatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, mu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{media.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	mu.mutation.done = true
	return n, nil
}

// MediaUpdateOne is the builder for updating a single Media entity.
type MediaUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *MediaMutation
}

// SetAccountID sets the "account_id" field.
func (muo *MediaUpdateOne) SetAccountID(s string) *MediaUpdateOne {
	muo.mutation.SetAccountID(s)
	return muo
}

// SetNillableAccountID sets the "account_id" field if the given value is not nil.
func (muo *MediaUpdateOne) SetNillableAccountID(s *string) *MediaUpdateOne {
	if s != nil {
		muo.SetAccountID(*s)
	}
	return muo
}

// SetTweetID sets the "tweet_id" field.
func (muo *MediaUpdateOne) SetTweetID(s string) *MediaUpdateOne {
	muo.mutation.SetTweetID(s)
	return muo
}

// SetNillableTweetID sets the "tweet_id" field if the given value is not nil.
func (muo *MediaUpdateOne) SetNillableTweetID(s *string) *MediaUpdateOne {
	if s != nil {
		muo.SetTweetID(*s)
	}
	return muo
}

// SetIsDeleted sets the "is_deleted" field.
func (muo *MediaUpdateOne) SetIsDeleted(b bool) *MediaUpdateOne {
	muo.mutation.SetIsDeleted(b)
	return muo
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (muo *MediaUpdateOne) SetNillableIsDeleted(b *bool) *MediaUpdateOne {
	if b != nil {
		muo.SetIsDeleted(*b)
	}
	return muo
}

// SetCreatedAt sets the "created_at" field.
func (muo *MediaUpdateOne) SetCreatedAt(t time.Time) *MediaUpdateOne {
	muo.mutation.SetCreatedAt(t)
	return muo
}

// Mutation returns the MediaMutation object of the builder.
func (muo *MediaUpdateOne) Mutation() *MediaMutation {
	return muo.mutation
}

// Where appends a list predicates to the MediaUpdate builder.
func (muo *MediaUpdateOne) Where(ps ...predicate.Media) *MediaUpdateOne {
	muo.mutation.Where(ps...)
	return muo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (muo *MediaUpdateOne) Select(field string, fields ...string) *MediaUpdateOne {
	muo.fields = append([]string{field}, fields...)
	return muo
}

// Save executes the query and returns the updated Media entity.
func (muo *MediaUpdateOne) Save(ctx context.Context) (*Media, error) {
	return withHooks(ctx, muo.sqlSave, muo.mutation, muo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (muo *MediaUpdateOne) SaveX(ctx context.Context) *Media {
	node, err := muo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (muo *MediaUpdateOne) Exec(ctx context.Context) error {
	_, err := muo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (muo *MediaUpdateOne) ExecX(ctx context.Context) {
	if err := muo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (muo *MediaUpdateOne) sqlSave(ctx context.Context) (_node *Media, err error) {
	_spec := sqlgraph.NewUpdateSpec(media.Table, media.Columns, sqlgraph.NewFieldSpec(media.FieldID, field.TypeString))
	id, ok := muo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Media.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := muo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, media.FieldID)
		for _, f := range fields {
			if !media.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != media.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := muo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := muo.mutation.AccountID(); ok {
		_spec.SetField(media.FieldAccountID, field.TypeString, value)
	}
	if value, ok := muo.mutation.TweetID(); ok {
		_spec.SetField(media.FieldTweetID, field.TypeString, value)
	}
	if value, ok := muo.mutation.IsDeleted(); ok {
		_spec.SetField(media.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := muo.mutation.CreatedAt(); ok {
		_spec.SetField(media.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Media{config: muo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, muo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{media.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	muo.mutation.done = true
	return _node, nil
}
