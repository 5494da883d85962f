// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Mushus/retweet/sqlite/ent/tweet"
)

// TweetCreate is the builder for creating a Tweet entity.
type TweetCreate struct {
	config
	mutation *TweetMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetContent sets the "content" field.
func (tc *TweetCreate) SetContent(s string) *TweetCreate {
	tc.mutation.SetContent(s)
	return tc
}

// SetAuthorID sets the "author_id" field.
func (tc *TweetCreate) SetAuthorID(s string) *TweetCreate {
	tc.mutation.SetAuthorID(s)
	return tc
}

// SetMediaID sets the "media_id" field.
func (tc *TweetCreate) SetMediaID(s string) *TweetCreate {
	tc.mutation.SetMediaID(s)
	return tc
}

// SetNillableMediaID sets the "media_id" field if the given value is not nil.
func (tc *TweetCreate) SetNillableMediaID(s *string) *TweetCreate {
	if s != nil {
		tc.SetMediaID(*s)
	}
	return tc
}

// SetRepliesTo sets the "replies_to" field.
func (tc *TweetCreate) SetRepliesTo(s string) *TweetCreate {
	tc.mutation.SetRepliesTo(s)
	return tc
}

// SetNillableRepliesTo sets the "replies_to" field if the given value is not nil.
func (tc *TweetCreate) SetNillableRepliesTo(s *string) *TweetCreate {
	if s != nil {
		tc.SetRepliesTo(*s)
	}
	return tc
}

// SetRepliesToAuthor sets the "replies_to_author" field.
func (tc *TweetCreate) SetRepliesToAuthor(s string) *TweetCreate {
	tc.mutation.SetRepliesToAuthor(s)
	return tc
}

// SetNillableRepliesToAuthor sets the "replies_to_author" field if the given value is not nil.
func (tc *TweetCreate) SetNillableRepliesToAuthor(s *string) *TweetCreate {
	if s != nil {
		tc.SetRepliesToAuthor(*s)
	}
	return tc
}

// SetSortID sets the "sort_id" field.
func (tc *TweetCreate) SetSortID(s string) *TweetCreate {
	tc.mutation.SetSortID(s)
	return tc
}

// SetIsDeleted sets the "is_deleted" field.
func (tc *TweetCreate) SetIsDeleted(b bool) *TweetCreate {
	tc.mutation.SetIsDeleted(b)
	return tc
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (tc *TweetCreate) SetNillableIsDeleted(b *bool) *TweetCreate {
	if b != nil {
		tc.SetIsDeleted(*b)
	}
	return tc
}

// SetCreatedAt sets the "created_at" field.
func (tc *TweetCreate) SetCreatedAt(t time.Time) *TweetCreate {
	tc.mutation.SetCreatedAt(t)
	return tc
}

// SetID sets the "id" field.
func (tc *TweetCreate) SetID(s string) *TweetCreate {
	tc.mutation.SetID(s)
	return tc
}

// Mutation returns the TweetMutation object of the builder.
func (tc *TweetCreate) Mutation() *TweetMutation {
	return tc.mutation
}

// Save creates the Tweet in the database.
func (tc *TweetCreate) Save(ctx context.Context) (*Tweet, error) {
	tc.defaults()
	return withHooks(ctx, tc.sqlSave, tc.mutation, tc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (tc *TweetCreate) SaveX(ctx context.Context) *Tweet {
	v, err := tc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tc *TweetCreate) Exec(ctx context.Context) error {
	_, err := tc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tc *TweetCreate) ExecX(ctx context.Context) {
	if err := tc.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (tc *TweetCreate) defaults() {
	if _, ok := tc.mutation.MediaID(); !ok {
		v := tweet.DefaultMediaID
		tc.mutation.SetMediaID(v)
	}
	if _, ok := tc.mutation.RepliesTo(); !ok {
		v := tweet.DefaultRepliesTo
		tc.mutation.SetRepliesTo(v)
	}
	if _, ok := tc.mutation.RepliesToAuthor(); !ok {
		v := tweet.DefaultRepliesToAuthor
		tc.mutation.SetRepliesToAuthor(v)
	}
	if _, ok := tc.mutation.IsDeleted(); !ok {
		v := tweet.DefaultIsDeleted
		tc.mutation.SetIsDeleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (tc *TweetCreate) check() error {
	if _, ok := tc.mutation.Content(); !ok {
		return &ValidationError{Name: "content", err: errors.New(`ent: missing required field "Tweet.content"`)}
	}
	if _, ok := tc.mutation.AuthorID(); !ok {
		return &ValidationError{Name: "author_id", err: errors.New(`ent: missing required field "Tweet.author_id"`)}
	}
	if _, ok := tc.mutation.MediaID(); !ok {
		return &ValidationError{Name: "media_id", err: errors.New(`ent: missing required field "Tweet.media_id"`)}
	}
	if _, ok := tc.mutation.RepliesTo(); !ok {
		return &ValidationError{Name: "replies_to", err: errors.New(`ent: missing required field "Tweet.replies_to"`)}
	}
	if _, ok := tc.mutation.RepliesToAuthor(); !ok {
		return &ValidationError{Name: "replies_to_author", err: errors.New(`ent: missing required field "Tweet.replies_to_author"`)}
	}
	if _, ok := tc.mutation.SortID(); !ok {
		return &ValidationError{Name: "sort_id", err: errors.New(`ent: missing required field "Tweet.sort_id"`)}
	}
	if _, ok := tc.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Tweet.is_deleted"`)}
	}
	if _, ok := tc.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Tweet.created_at"`)}
	}
	return nil
}

func (tc *TweetCreate) sqlSave(ctx context.Context) (*Tweet, error) {
	if err := tc.check(); err != nil {
		return nil, err
	}
	_node, _spec := tc.createSpec()
	if err := sqlgraph.CreateNode(ctx, tc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Tweet.ID type: %T", _spec.ID.Value)
		}
	}
	tc.mutation.id = &_node.ID
	tc.mutation.done = true
	return _node, nil
}

func (tc *TweetCreate) createSpec() (*Tweet, *sqlgraph.CreateSpec) {
	var (
		_node = &Tweet{config: tc.config}
		_spec = sqlgraph.NewCreateSpec(tweet.Table, sqlgraph.NewFieldSpec(tweet.FieldID, field.TypeString))
	)
	_spec.OnConflict = tc.conflict
	if id, ok := tc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := tc.mutation.Content(); ok {
		_spec.SetField(tweet.FieldContent, field.TypeString, value)
		_node.Content = value
	}
	if value, ok := tc.mutation.AuthorID(); ok {
		_spec.SetField(tweet.FieldAuthorID, field.TypeString, value)
		_node.AuthorID = value
	}
	if value, ok := tc.mutation.MediaID(); ok {
		_spec.SetField(tweet.FieldMediaID, field.TypeString, value)
		_node.MediaID = value
	}
	if value, ok := tc.mutation.RepliesTo(); ok {
		_spec.SetField(tweet.FieldRepliesTo, field.TypeString, value)
		_node.RepliesTo = value
	}
	if value, ok := tc.mutation.RepliesToAuthor(); ok {
		_spec.SetField(tweet.FieldRepliesToAuthor, field.TypeString, value)
		_node.RepliesToAuthor = value
	}
	if value, ok := tc.mutation.SortID(); ok {
		_spec.SetField(tweet.FieldSortID, field.TypeString, value)
		_node.SortID = value
	}
	if value, ok := tc.mutation.IsDeleted(); ok {
		_spec.SetField(tweet.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := tc.mutation.CreatedAt(); ok {
		_spec.SetField(tweet.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Tweet.Create().
//		SetContent(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TweetUpsert) {
//			SetContent(v+v).
//		}).
//		Exec(ctx)
func (tc *TweetCreate) OnConflict(opts ...sql.ConflictOption) *TweetUpsertOne {
	tc.conflict = opts
	return &TweetUpsertOne{
		create: tc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Tweet.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tc *TweetCreate) OnConflictColumns(columns ...string) *TweetUpsertOne {
	tc.conflict = append(tc.conflict, sql.ConflictColumns(columns...))
	return &TweetUpsertOne{
		create: tc,
	}
}

type (
	// TweetUpsertOne is the builder for "upsert"-ing
	//  one Tweet node.
	TweetUpsertOne struct {
		create *TweetCreate
	}

	// TweetUpsert is the "OnConflict" setter.
	TweetUpsert struct {
		*sql.UpdateSet
	}
)

// SetMediaID sets the "media_id" field.
func (u *TweetUpsert) SetMediaID(v string) *TweetUpsert {
	u.Set(tweet.FieldMediaID, v)
	return u
}

// UpdateMediaID sets the "media_id" field to the value that was provided on create.
func (u *TweetUpsert) UpdateMediaID() *TweetUpsert {
	u.SetExcluded(tweet.FieldMediaID)
	return u
}

// SetIsDeleted sets the "is_deleted" field.
func (u *TweetUpsert) SetIsDeleted(v bool) *TweetUpsert {
	u.Set(tweet.FieldIsDeleted, v)
	return u
}

// UpdateIsDeleted sets the "is_deleted" field to the value that was provided on create.
func (u *TweetUpsert) UpdateIsDeleted() *TweetUpsert {
	u.SetExcluded(tweet.FieldIsDeleted)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *TweetUpsert) SetCreatedAt(v time.Time) *TweetUpsert {
	u.Set(tweet.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TweetUpsert) UpdateCreatedAt() *TweetUpsert {
	u.SetExcluded(tweet.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Tweet.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tweet.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TweetUpsertOne) UpdateNewValues() *TweetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(tweet.FieldID)
		}
		if _, exists := u.create.mutation.Content(); exists {
			s.SetIgnore(tweet.FieldContent)
		}
		if _, exists := u.create.mutation.AuthorID(); exists {
			s.SetIgnore(tweet.FieldAuthorID)
		}
		if _, exists := u.create.mutation.RepliesTo(); exists {
			s.SetIgnore(tweet.FieldRepliesTo)
		}
		if _, exists := u.create.mutation.RepliesToAuthor(); exists {
			s.SetIgnore(tweet.FieldRepliesToAuthor)
		}
		if _, exists := u.create.mutation.SortID(); exists {
			s.SetIgnore(tweet.FieldSortID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Tweet.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *TweetUpsertOne) Ignore() *TweetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TweetUpsertOne) DoNothing() *TweetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TweetCreate.OnConflict
// documentation for more info.
func (u *TweetUpsertOne) Update(set func(*TweetUpsert)) *TweetUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TweetUpsert{UpdateSet: update})
	}))
	return u
}

// SetMediaID sets the "media_id" field.
func (u *TweetUpsertOne) SetMediaID(v string) *TweetUpsertOne {
	return u.Update(func(s *TweetUpsert) {
		s.SetMediaID(v)
	})
}

// UpdateMediaID sets the "media_id" field to the value that was provided on create.
func (u *TweetUpsertOne) UpdateMediaID() *TweetUpsertOne {
	return u.Update(func(s *TweetUpsert) {
		s.UpdateMediaID()
	})
}

// SetIsDeleted sets the "is_deleted" field.
func (u *TweetUpsertOne) SetIsDeleted(v bool) *TweetUpsertOne {
	return u.Update(func(s *TweetUpsert) {
		s.SetIsDeleted(v)
	})
}

// UpdateIsDeleted sets the "is_deleted" field to the value that was provided on create.
func (u *TweetUpsertOne) UpdateIsDeleted() *TweetUpsertOne {
	return u.Update(func(s *TweetUpsert) {
		s.UpdateIsDeleted()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *TweetUpsertOne) SetCreatedAt(v time.Time) *TweetUpsertOne {
	return u.Update(func(s *TweetUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TweetUpsertOne) UpdateCreatedAt() *TweetUpsertOne {
	return u.Update(func(s *TweetUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *TweetUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TweetCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TweetUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *TweetUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: TweetUpsertOne.ID is not supported by MySQL driver. Use TweetUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *TweetUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// TweetCreateBulk is the builder for creating many Tweet entities in bulk.
type TweetCreateBulk struct {
	config
	builders []*TweetCreate
	conflict []sql.ConflictOption
}

// Save creates the Tweet entities in the database.
func (tcb *TweetCreateBulk) Save(ctx context.Context) ([]*Tweet, error) {
	specs := make([]*sqlgraph.CreateSpec, len(tcb.builders))
	nodes := make([]*Tweet, len(tcb.builders))
	mutators := make([]Mutator, len(tcb.builders))
	for i := range tcb.builders {
		func(i int, root context.Context) {
			builder := tcb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*TweetMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, tcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = tcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, tcb.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, tcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (tcb *TweetCreateBulk) SaveX(ctx context.Context) []*Tweet {
	v, err := tcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (tcb *TweetCreateBulk) Exec(ctx context.Context) error {
	_, err := tcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (tcb *TweetCreateBulk) ExecX(ctx context.Context) {
	if err := tcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Tweet.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.TweetUpsert) {
//			SetContent(v+v).
//		}).
//		Exec(ctx)
func (tcb *TweetCreateBulk) OnConflict(opts ...sql.ConflictOption) *TweetUpsertBulk {
	tcb.conflict = opts
	return &TweetUpsertBulk{
		create: tcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Tweet.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (tcb *TweetCreateBulk) OnConflictColumns(columns ...string) *TweetUpsertBulk {
	tcb.conflict = append(tcb.conflict, sql.ConflictColumns(columns...))
	return &TweetUpsertBulk{
		create: tcb,
	}
}

// TweetUpsertBulk is the builder for "upsert"-ing
// a bulk of Tweet nodes.
type TweetUpsertBulk struct {
	create *TweetCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Tweet.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(tweet.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *TweetUpsertBulk) UpdateNewValues() *TweetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(tweet.FieldID)
			}
			if _, exists := b.mutation.Content(); exists {
				s.SetIgnore(tweet.FieldContent)
			}
			if _, exists := b.mutation.AuthorID(); exists {
				s.SetIgnore(tweet.FieldAuthorID)
			}
			if _, exists := b.mutation.RepliesTo(); exists {
				s.SetIgnore(tweet.FieldRepliesTo)
			}
			if _, exists := b.mutation.RepliesToAuthor(); exists {
				s.SetIgnore(tweet.FieldRepliesToAuthor)
			}
			if _, exists := b.mutation.SortID(); exists {
				s.SetIgnore(tweet.FieldSortID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Tweet.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *TweetUpsertBulk) Ignore() *TweetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *TweetUpsertBulk) DoNothing() *TweetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the TweetCreateBulk.OnConflict
// documentation for more info.
func (u *TweetUpsertBulk) Update(set func(*TweetUpsert)) *TweetUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&TweetUpsert{UpdateSet: update})
	}))
	return u
}

// SetMediaID sets the "media_id" field.
func (u *TweetUpsertBulk) SetMediaID(v string) *TweetUpsertBulk {
	return u.Update(func(s *TweetUpsert) {
		s.SetMediaID(v)
	})
}

// UpdateMediaID sets the "media_id" field to the value that was provided on create.
func (u *TweetUpsertBulk) UpdateMediaID() *TweetUpsertBulk {
	return u.Update(func(s *TweetUpsert) {
		s.UpdateMediaID()
	})
}

// SetIsDeleted sets the "is_deleted" field.
func (u *TweetUpsertBulk) SetIsDeleted(v bool) *TweetUpsertBulk {
	return u.Update(func(s *TweetUpsert) {
		s.SetIsDeleted(v)
	})
}

// UpdateIsDeleted sets the "is_deleted" field to the value that was provided on create.
func (u *TweetUpsertBulk) UpdateIsDeleted() *TweetUpsertBulk {
	return u.Update(func(s *TweetUpsert) {
		s.UpdateIsDeleted()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *TweetUpsertBulk) SetCreatedAt(v time.Time) *TweetUpsertBulk {
	return u.Update(func(s *TweetUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *TweetUpsertBulk) UpdateCreatedAt() *TweetUpsertBulk {
	return u.Update(func(s *TweetUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *TweetUpsertBulk) Exec(ctx context.Context) error {
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the TweetCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for TweetCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *TweetUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
