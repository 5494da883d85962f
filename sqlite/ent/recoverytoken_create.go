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
	"github.com/Mushus/retweet/sqlite/ent/recoverytoken"
)

// RecoveryTokenCreate is the builder for creating a RecoveryToken entity.
type RecoveryTokenCreate struct {
	config
	mutation *RecoveryTokenMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (rtc *RecoveryTokenCreate) SetAccountID(s string) *RecoveryTokenCreate {
	rtc.mutation.SetAccountID(s)
	return rtc
}

// SetIssuedAt sets the "issued_at" field.
func (rtc *RecoveryTokenCreate) SetIssuedAt(t time.Time) *RecoveryTokenCreate {
	rtc.mutation.SetIssuedAt(t)
	return rtc
}

// SetID sets the "id" field.
func (rtc *RecoveryTokenCreate) SetID(s string) *RecoveryTokenCreate {
	rtc.mutation.SetID(s)
	return rtc
}

// Mutation returns the RecoveryTokenMutation object of the builder.
func (rtc *RecoveryTokenCreate) Mutation() *RecoveryTokenMutation {
	return rtc.mutation
}

// Save creates the RecoveryToken in the database.
func (rtc *RecoveryTokenCreate) Save(ctx context.Context) (*RecoveryToken, error) {
	return withHooks(ctx, rtc.sqlSave, rtc.mutation, rtc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (rtc *RecoveryTokenCreate) SaveX(ctx context.Context) *RecoveryToken {
	v, err := rtc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rtc *RecoveryTokenCreate) Exec(ctx context.Context) error {
	_, err := rtc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rtc *RecoveryTokenCreate) ExecX(ctx context.Context) {
	if err := rtc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (rtc *RecoveryTokenCreate) check() error {
	if _, ok := rtc.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "RecoveryToken.account_id"`)}
	}
	if _, ok := rtc.mutation.IssuedAt(); !ok {
		return &ValidationError{Name: "issued_at", err: errors.New(`ent: missing required field "RecoveryToken.issued_at"`)}
	}
	return nil
}

func (rtc *RecoveryTokenCreate) sqlSave(ctx context.Context) (*RecoveryToken, error) {
	if err := rtc.check(); err != nil {
		return nil, err
	}
	_node, _spec := rtc.createSpec()
	if err := sqlgraph.CreateNode(ctx, rtc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected RecoveryToken.ID type: %T", _spec.ID.Value)
		}
	}
	rtc.mutation.id = &_node.ID
	rtc.mutation.done = true
	return _node, nil
}

func (rtc *RecoveryTokenCreate) createSpec() (*RecoveryToken, *sqlgraph.CreateSpec) {
	var (
		_node = &RecoveryToken{config: rtc.config}
		_spec = sqlgraph.NewCreateSpec(recoverytoken.Table, sqlgraph.NewFieldSpec(recoverytoken.FieldID, field.TypeString))
	)
	_spec.OnConflict = rtc.conflict
	if id, ok := rtc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := rtc.mutation.AccountID(); ok {
		_spec.SetField(recoverytoken.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := rtc.mutation.IssuedAt(); ok {
		_spec.SetField(recoverytoken.FieldIssuedAt, field.TypeTime, value)
		_node.IssuedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RecoveryToken.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecoveryTokenUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (rtc *RecoveryTokenCreate) OnConflict(opts ...sql.ConflictOption) *RecoveryTokenUpsertOne {
	rtc.conflict = opts
	return &RecoveryTokenUpsertOne{
		create: rtc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RecoveryToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (rtc *RecoveryTokenCreate) OnConflictColumns(columns ...string) *RecoveryTokenUpsertOne {
	rtc.conflict = append(rtc.conflict, sql.ConflictColumns(columns...))
	return &RecoveryTokenUpsertOne{
		create: rtc,
	}
}

type (
	// RecoveryTokenUpsertOne is the builder for "upsert"-ing
	//  one RecoveryToken node.
	RecoveryTokenUpsertOne struct {
		create *RecoveryTokenCreate
	}

	// RecoveryTokenUpsert is the "OnConflict" setter.
	RecoveryTokenUpsert struct {
		*sql.UpdateSet
	}
)

// SetIssuedAt sets the "issued_at" field.
func (u *RecoveryTokenUpsert) SetIssuedAt(v time.Time) *RecoveryTokenUpsert {
	u.Set(recoverytoken.FieldIssuedAt, v)
	return u
}

// UpdateIssuedAt sets the "issued_at" field to the value that was provided on create.
func (u *RecoveryTokenUpsert) UpdateIssuedAt() *RecoveryTokenUpsert {
	u.SetExcluded(recoverytoken.FieldIssuedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.RecoveryToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(recoverytoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RecoveryTokenUpsertOne) UpdateNewValues() *RecoveryTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(recoverytoken.FieldID)
		}
		if _, exists := u.create.mutation.AccountID(); exists {
			s.SetIgnore(recoverytoken.FieldAccountID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RecoveryToken.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *RecoveryTokenUpsertOne) Ignore() *RecoveryTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecoveryTokenUpsertOne) DoNothing() *RecoveryTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecoveryTokenCreate.OnConflict
// documentation for more info.
func (u *RecoveryTokenUpsertOne) Update(set func(*RecoveryTokenUpsert)) *RecoveryTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecoveryTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetIssuedAt sets the "issued_at" field.
func (u *RecoveryTokenUpsertOne) SetIssuedAt(v time.Time) *RecoveryTokenUpsertOne {
	return u.Update(func(s *RecoveryTokenUpsert) {
		s.SetIssuedAt(v)
	})
}

// UpdateIssuedAt sets the "issued_at" field to the value that was provided on create.
func (u *RecoveryTokenUpsertOne) UpdateIssuedAt() *RecoveryTokenUpsertOne {
	return u.Update(func(s *RecoveryTokenUpsert) {
		s.UpdateIssuedAt()
	})
}

// Exec executes the query.
func (u *RecoveryTokenUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RecoveryTokenCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecoveryTokenUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *RecoveryTokenUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: RecoveryTokenUpsertOne.ID is not supported by MySQL driver. Use RecoveryTokenUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *RecoveryTokenUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// RecoveryTokenCreateBulk is the builder for creating many RecoveryToken entities in bulk.
type RecoveryTokenCreateBulk struct {
	config
	builders []*RecoveryTokenCreate
	conflict []sql.ConflictOption
}

// Save creates the RecoveryToken entities in the database.
func (rtcb *RecoveryTokenCreateBulk) Save(ctx context.Context) ([]*RecoveryToken, error) {
	specs := make([]*sqlgraph.CreateSpec, len(rtcb.builders))
	nodes := make([]*RecoveryToken, len(rtcb.builders))
	mutators := make([]Mutator, len(rtcb.builders))
	for i := range rtcb.builders {
		func(i int, root context.Context) {
			builder := rtcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*RecoveryTokenMutation)
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
					_, err = mutators[i+1].Mutate(root, rtcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = rtcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, rtcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, rtcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (rtcb *RecoveryTokenCreateBulk) SaveX(ctx context.Context) []*RecoveryToken {
	v, err := rtcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (rtcb *RecoveryTokenCreateBulk) Exec(ctx context.Context) error {
	_, err := rtcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rtcb *RecoveryTokenCreateBulk) ExecX(ctx context.Context) {
	if err := rtcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.RecoveryToken.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.RecoveryTokenUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (rtcb *RecoveryTokenCreateBulk) OnConflict(opts ...sql.ConflictOption) *RecoveryTokenUpsertBulk {
	rtcb.conflict = opts
	return &RecoveryTokenUpsertBulk{
		create: rtcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.RecoveryToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (rtcb *RecoveryTokenCreateBulk) OnConflictColumns(columns ...string) *RecoveryTokenUpsertBulk {
	rtcb.conflict = append(rtcb.conflict, sql.ConflictColumns(columns...))
	return &RecoveryTokenUpsertBulk{
		create: rtcb,
	}
}

// RecoveryTokenUpsertBulk is the builder for "upsert"-ing
// a bulk of RecoveryToken nodes.
type RecoveryTokenUpsertBulk struct {
	create *RecoveryTokenCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.RecoveryToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(recoverytoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *RecoveryTokenUpsertBulk) UpdateNewValues() *RecoveryTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(recoverytoken.FieldID)
			}
			if _, exists := b.mutation.AccountID(); exists {
				s.SetIgnore(recoverytoken.FieldAccountID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.RecoveryToken.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *RecoveryTokenUpsertBulk) Ignore() *RecoveryTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *RecoveryTokenUpsertBulk) DoNothing() *RecoveryTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the RecoveryTokenCreateBulk.OnConflict
// documentation for more info.
func (u *RecoveryTokenUpsertBulk) Update(set func(*RecoveryTokenUpsert)) *RecoveryTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&RecoveryTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetIssuedAt sets the "issued_at" field.
func (u *RecoveryTokenUpsertBulk) SetIssuedAt(v time.Time) *RecoveryTokenUpsertBulk {
	return u.Update(func(s *RecoveryTokenUpsert) {
		s.SetIssuedAt(v)
	})
}

// UpdateIssuedAt sets the "issued_at" field to the value that was provided on create.
func (u *RecoveryTokenUpsertBulk) UpdateIssuedAt() *RecoveryTokenUpsertBulk {
	return u.Update(func(s *RecoveryTokenUpsert) {
		s.UpdateIssuedAt()
	})
}

// Exec executes the query.
func (u *RecoveryTokenUpsertBulk) Exec(ctx context.Context) error {
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the RecoveryTokenCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for RecoveryTokenCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *RecoveryTokenUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
