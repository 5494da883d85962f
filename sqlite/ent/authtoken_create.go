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
	"github.com/Mushus/retweet/sqlite/ent/authtoken"
)

// AuthTokenCreate is the builder for creating a AuthToken entity.
type AuthTokenCreate struct {
	config
	mutation *AuthTokenMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (atc *AuthTokenCreate) SetAccountID(s string) *AuthTokenCreate {
	atc.mutation.SetAccountID(s)
	return atc
}

// SetUserAgent sets the "user_agent" field.
func (atc *AuthTokenCreate) SetUserAgent(s string) *AuthTokenCreate {
	atc.mutation.SetUserAgent(s)
	return atc
}

// SetIP sets the "ip" field.
func (atc *AuthTokenCreate) SetIP(s string) *AuthTokenCreate {
	atc.mutation.SetIP(s)
	return atc
}

// SetIssuedAt sets the "issued_at" field.
func (atc *AuthTokenCreate) SetIssuedAt(t time.Time) *AuthTokenCreate {
	atc.mutation.SetIssuedAt(t)
	return atc
}

// SetID sets the "id" field.
func (atc *AuthTokenCreate) SetID(s string) *AuthTokenCreate {
	atc.mutation.SetID(s)
	return atc
}

// Mutation returns the AuthTokenMutation object of the builder.
func (atc *AuthTokenCreate) Mutation() *AuthTokenMutation {
	return atc.mutation
}

// Save creates the AuthToken in the database.
func (atc *AuthTokenCreate) Save(ctx context.Context) (*AuthToken, error) {
	return withHooks(ctx, atc.sqlSave, atc.mutation, atc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (atc *AuthTokenCreate) SaveX(ctx context.Context) *AuthToken {
	v, err := atc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (atc *AuthTokenCreate) Exec(ctx context.Context) error {
	_, err := atc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (atc *AuthTokenCreate) ExecX(ctx context.Context) {
	if err := atc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (atc *AuthTokenCreate) check() error {
	if _, ok := atc.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "AuthToken.account_id"`)}
	}
	if _, ok := atc.mutation.UserAgent(); !ok {
		return &ValidationError{Name: "user_agent", err: errors.New(`ent: missing required field "AuthToken.user_agent"`)}
	}
	if _, ok := atc.mutation.IP(); !ok {
		return &ValidationError{Name: "ip", err: errors.New(`ent: missing required field "AuthToken.ip"`)}
	}
	if _, ok := atc.mutation.IssuedAt(); !ok {
		return &ValidationError{Name: "issued_at", err: errors.New(`ent: missing required field "AuthToken.issued_at"`)}
	}
	return nil
}

func (atc *AuthTokenCreate) sqlSave(ctx context.Context) (*AuthToken, error) {
	if err := atc.check(); err != nil {
		return nil, err
	}
	_node, _spec := atc.createSpec()
	if err := sqlgraph.CreateNode(ctx, atc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected AuthToken.ID type: %T", _spec.ID.Value)
		}
	}
	atc.mutation.id = &_node.ID
	atc.mutation.done = true
	return _node, nil
}

func (atc *AuthTokenCreate) createSpec() (*AuthToken, *sqlgraph.CreateSpec) {
	var (
		_node = &AuthToken{config: atc.config}
		_spec = sqlgraph.NewCreateSpec(authtoken.Table, sqlgraph.NewFieldSpec(authtoken.FieldID, field.TypeString))
	)
	_spec.OnConflict = atc.conflict
	if id, ok := atc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := atc.mutation.AccountID(); ok {
		_spec.SetField(authtoken.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := atc.mutation.UserAgent(); ok {
		_spec.SetField(authtoken.FieldUserAgent, field.TypeString, value)
		_node.UserAgent = value
	}
	if value, ok := atc.mutation.IP(); ok {
		_spec.SetField(authtoken.FieldIP, field.TypeString, value)
		_node.IP = value
	}
	if value, ok := atc.mutation.IssuedAt(); ok {
		_spec.SetField(authtoken.FieldIssuedAt, field.TypeTime, value)
		_node.IssuedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuthToken.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuthTokenUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (atc *AuthTokenCreate) OnConflict(opts ...sql.ConflictOption) *AuthTokenUpsertOne {
	atc.conflict = opts
	return &AuthTokenUpsertOne{
		create: atc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuthToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (atc *AuthTokenCreate) OnConflictColumns(columns ...string) *AuthTokenUpsertOne {
	atc.conflict = append(atc.conflict, sql.ConflictColumns(columns...))
	return &AuthTokenUpsertOne{
		create: atc,
	}
}

type (
	// AuthTokenUpsertOne is the builder for "upsert"-ing
	//  one AuthToken node.
	AuthTokenUpsertOne struct {
		create *AuthTokenCreate
	}

	// AuthTokenUpsert is the "OnConflict" setter.
	AuthTokenUpsert struct {
		*sql.UpdateSet
	}
)

// SetIssuedAt sets the "issued_at" field.
func (u *AuthTokenUpsert) SetIssuedAt(v time.Time) *AuthTokenUpsert {
	u.Set(authtoken.FieldIssuedAt, v)
	return u
}

// UpdateIssuedAt sets the "issued_at" field to the value that was provided on create.
func (u *AuthTokenUpsert) UpdateIssuedAt() *AuthTokenUpsert {
	u.SetExcluded(authtoken.FieldIssuedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.AuthToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(authtoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuthTokenUpsertOne) UpdateNewValues() *AuthTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(authtoken.FieldID)
		}
		if _, exists := u.create.mutation.AccountID(); exists {
			s.SetIgnore(authtoken.FieldAccountID)
		}
		if _, exists := u.create.mutation.UserAgent(); exists {
			s.SetIgnore(authtoken.FieldUserAgent)
		}
		if _, exists := u.create.mutation.IP(); exists {
			s.SetIgnore(authtoken.FieldIP)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuthToken.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AuthTokenUpsertOne) Ignore() *AuthTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuthTokenUpsertOne) DoNothing() *AuthTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuthTokenCreate.OnConflict
// documentation for more info.
func (u *AuthTokenUpsertOne) Update(set func(*AuthTokenUpsert)) *AuthTokenUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuthTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetIssuedAt sets the "issued_at" field.
func (u *AuthTokenUpsertOne) SetIssuedAt(v time.Time) *AuthTokenUpsertOne {
	return u.Update(func(s *AuthTokenUpsert) {
		s.SetIssuedAt(v)
	})
}

// UpdateIssuedAt sets the "issued_at" field to the value that was provided on create.
func (u *AuthTokenUpsertOne) UpdateIssuedAt() *AuthTokenUpsertOne {
	return u.Update(func(s *AuthTokenUpsert) {
		s.UpdateIssuedAt()
	})
}

// Exec executes the query.
func (u *AuthTokenUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuthTokenCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuthTokenUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AuthTokenUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AuthTokenUpsertOne.ID is not supported by MySQL driver. Use AuthTokenUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AuthTokenUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AuthTokenCreateBulk is the builder for creating many AuthToken entities in bulk.
type AuthTokenCreateBulk struct {
	config
	builders []*AuthTokenCreate
	conflict []sql.ConflictOption
}

// Save creates the AuthToken entities in the database.
func (atcb *AuthTokenCreateBulk) Save(ctx context.Context) ([]*AuthToken, error) {
	specs := make([]*sqlgraph.CreateSpec, len(atcb.builders))
	nodes := make([]*AuthToken, len(atcb.builders))
	mutators := make([]Mutator, len(atcb.builders))
	for i := range atcb.builders {
		func(i int, root context.Context) {
			builder := atcb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AuthTokenMutation)
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
					_, err = mutators[i+1].Mutate(root, atcb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = atcb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, atcb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, atcb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (atcb *AuthTokenCreateBulk) SaveX(ctx context.Context) []*AuthToken {
	v, err := atcb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (atcb *AuthTokenCreateBulk) Exec(ctx context.Context) error {
	_, err := atcb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (atcb *AuthTokenCreateBulk) ExecX(ctx context.Context) {
	if err := atcb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.AuthToken.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AuthTokenUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (atcb *AuthTokenCreateBulk) OnConflict(opts ...sql.ConflictOption) *AuthTokenUpsertBulk {
	atcb.conflict = opts
	return &AuthTokenUpsertBulk{
		create: atcb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.AuthToken.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (atcb *AuthTokenCreateBulk) OnConflictColumns(columns ...string) *AuthTokenUpsertBulk {
	atcb.conflict = append(atcb.conflict, sql.ConflictColumns(columns...))
	return &AuthTokenUpsertBulk{
		create: atcb,
	}
}

// AuthTokenUpsertBulk is the builder for "upsert"-ing
// a bulk of AuthToken nodes.
type AuthTokenUpsertBulk struct {
	create *AuthTokenCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.AuthToken.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(authtoken.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AuthTokenUpsertBulk) UpdateNewValues() *AuthTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(authtoken.FieldID)
			}
			if _, exists := b.mutation.AccountID(); exists {
				s.SetIgnore(authtoken.FieldAccountID)
			}
			if _, exists := b.mutation.UserAgent(); exists {
				s.SetIgnore(authtoken.FieldUserAgent)
			}
			if _, exists := b.mutation.IP(); exists {
				s.SetIgnore(authtoken.FieldIP)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.AuthToken.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AuthTokenUpsertBulk) Ignore() *AuthTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AuthTokenUpsertBulk) DoNothing() *AuthTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AuthTokenCreateBulk.OnConflict
// documentation for more info.
func (u *AuthTokenUpsertBulk) Update(set func(*AuthTokenUpsert)) *AuthTokenUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AuthTokenUpsert{UpdateSet: update})
	}))
	return u
}

// SetIssuedAt sets the "issued_at" field.
func (u *AuthTokenUpsertBulk) SetIssuedAt(v time.Time) *AuthTokenUpsertBulk {
	return u.Update(func(s *AuthTokenUpsert) {
		s.SetIssuedAt(v)
	})
}

// UpdateIssuedAt sets the "issued_at" field to the value that was provided on create.
func (u *AuthTokenUpsertBulk) UpdateIssuedAt() *AuthTokenUpsertBulk {
	return u.Update(func(s *AuthTokenUpsert) {
		s.UpdateIssuedAt()
	})
}

// Exec executes the query.
func (u *AuthTokenUpsertBulk) Exec(ctx context.Context) error {
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AuthTokenCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AuthTokenCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AuthTokenUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
