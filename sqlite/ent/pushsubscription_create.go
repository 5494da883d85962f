// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Mushus/retweet/sqlite/ent/pushsubscription"
)

// PushSubscriptionCreate is the builder for creating a PushSubscription entity.
type PushSubscriptionCreate struct {
	config
	mutation *PushSubscriptionMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetAccountID sets the "account_id" field.
func (psc *PushSubscriptionCreate) SetAccountID(s string) *PushSubscriptionCreate {
	psc.mutation.SetAccountID(s)
	return psc
}

// SetP256dh sets the "p256dh" field.
func (psc *PushSubscriptionCreate) SetP256dh(s string) *PushSubscriptionCreate {
	psc.mutation.SetP256dh(s)
	return psc
}

// SetAuth sets the "auth" field.
func (psc *PushSubscriptionCreate) SetAuth(s string) *PushSubscriptionCreate {
	psc.mutation.SetAuth(s)
	return psc
}

// SetID sets the "id" field.
func (psc *PushSubscriptionCreate) SetID(s string) *PushSubscriptionCreate {
	psc.mutation.SetID(s)
	return psc
}

// Mutation returns the PushSubscriptionMutation object of the builder.
func (psc *PushSubscriptionCreate) Mutation() *PushSubscriptionMutation {
	return psc.mutation
}

// Save creates the PushSubscription in the database.
func (psc *PushSubscriptionCreate) Save(ctx context.Context) (*PushSubscription, error) {
	return withHooks(ctx, psc.sqlSave, psc.mutation, psc.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (psc *PushSubscriptionCreate) SaveX(ctx context.Context) *PushSubscription {
	v, err := psc.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (psc *PushSubscriptionCreate) Exec(ctx context.Context) error {
	_, err := psc.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psc *PushSubscriptionCreate) ExecX(ctx context.Context) {
	if err := psc.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (psc *PushSubscriptionCreate) check() error {
	if _, ok := psc.mutation.AccountID(); !ok {
		return &ValidationError{Name: "account_id", err: errors.New(`ent: missing required field "PushSubscription.account_id"`)}
	}
	if _, ok := psc.mutation.P256dh(); !ok {
		return &ValidationError{Name: "p256dh", err: errors.New(`ent: missing required field "PushSubscription.p256dh"`)}
	}
	if _, ok := psc.mutation.Auth(); !ok {
		return &ValidationError{Name: "auth", err: errors.New(`ent: missing required field "PushSubscription.auth"`)}
	}
	return nil
}

func (psc *PushSubscriptionCreate) sqlSave(ctx context.Context) (*PushSubscription, error) {
	if err := psc.check(); err != nil {
		return nil, err
	}
	_node, _spec := psc.createSpec()
	if err := sqlgraph.CreateNode(ctx, psc.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected PushSubscription.ID type: %T", _spec.ID.Value)
		}
	}
	psc.mutation.id = &_node.ID
	psc.mutation.done = true
	return _node, nil
}

func (psc *PushSubscriptionCreate) createSpec() (*PushSubscription, *sqlgraph.CreateSpec) {
	var (
		_node = &PushSubscription{config: psc.config}
		_spec = sqlgraph.NewCreateSpec(pushsubscription.Table, sqlgraph.NewFieldSpec(pushsubscription.FieldID, field.TypeString))
	)
	_spec.OnConflict = psc.conflict
	if id, ok := psc.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := psc.mutation.AccountID(); ok {
		_spec.SetField(pushsubscription.FieldAccountID, field.TypeString, value)
		_node.AccountID = value
	}
	if value, ok := psc.mutation.P256dh(); ok {
		_spec.SetField(pushsubscription.FieldP256dh, field.TypeString, value)
		_node.P256dh = value
	}
	if value, ok := psc.mutation.Auth(); ok {
		_spec.SetField(pushsubscription.FieldAuth, field.TypeString, value)
		_node.Auth = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PushSubscription.Create().
//		SetAccountID(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PushSubscriptionUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (psc *PushSubscriptionCreate) OnConflict(opts ...sql.ConflictOption) *PushSubscriptionUpsertOne {
	psc.conflict = opts
	return &PushSubscriptionUpsertOne{
		create: psc,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PushSubscription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (psc *PushSubscriptionCreate) OnConflictColumns(columns ...string) *PushSubscriptionUpsertOne {
	psc.conflict = append(psc.conflict, sql.ConflictColumns(columns...))
	return &PushSubscriptionUpsertOne{
		create: psc,
	}
}

type (
	// PushSubscriptionUpsertOne is the builder for "upsert"-ing
	//  one PushSubscription node.
	PushSubscriptionUpsertOne struct {
		create *PushSubscriptionCreate
	}

	// PushSubscriptionUpsert is the "OnConflict" setter.
	PushSubscriptionUpsert struct {
		*sql.UpdateSet
	}
)

// SetAccountID sets the "account_id" field.
func (u *PushSubscriptionUpsert) SetAccountID(v string) *PushSubscriptionUpsert {
	u.Set(pushsubscription.FieldAccountID, v)
	return u
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *PushSubscriptionUpsert) UpdateAccountID() *PushSubscriptionUpsert {
	u.SetExcluded(pushsubscription.FieldAccountID)
	return u
}

// SetP256dh sets the "p256dh" field.
func (u *PushSubscriptionUpsert) SetP256dh(v string) *PushSubscriptionUpsert {
	u.Set(pushsubscription.FieldP256dh, v)
	return u
}

// UpdateP256dh sets the "p256dh" field to the value that was provided on create.
func (u *PushSubscriptionUpsert) UpdateP256dh() *PushSubscriptionUpsert {
	u.SetExcluded(pushsubscription.FieldP256dh)
	return u
}

// SetAuth sets the "auth" field.
func (u *PushSubscriptionUpsert) SetAuth(v string) *PushSubscriptionUpsert {
	u.Set(pushsubscription.FieldAuth, v)
	return u
}

// UpdateAuth sets the "auth" field to the value that was provided on create.
func (u *PushSubscriptionUpsert) UpdateAuth() *PushSubscriptionUpsert {
	u.SetExcluded(pushsubscription.FieldAuth)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.PushSubscription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pushsubscription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PushSubscriptionUpsertOne) UpdateNewValues() *PushSubscriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(pushsubscription.FieldID)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PushSubscription.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *PushSubscriptionUpsertOne) Ignore() *PushSubscriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PushSubscriptionUpsertOne) DoNothing() *PushSubscriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PushSubscriptionCreate.OnConflict
// documentation for more info.
func (u *PushSubscriptionUpsertOne) Update(set func(*PushSubscriptionUpsert)) *PushSubscriptionUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PushSubscriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *PushSubscriptionUpsertOne) SetAccountID(v string) *PushSubscriptionUpsertOne {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *PushSubscriptionUpsertOne) UpdateAccountID() *PushSubscriptionUpsertOne {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.UpdateAccountID()
	})
}

// SetP256dh sets the "p256dh" field.
func (u *PushSubscriptionUpsertOne) SetP256dh(v string) *PushSubscriptionUpsertOne {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.SetP256dh(v)
	})
}

// UpdateP256dh sets the "p256dh" field to the value that was provided on create.
func (u *PushSubscriptionUpsertOne) UpdateP256dh() *PushSubscriptionUpsertOne {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.UpdateP256dh()
	})
}

// SetAuth sets the "auth" field.
func (u *PushSubscriptionUpsertOne) SetAuth(v string) *PushSubscriptionUpsertOne {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.SetAuth(v)
	})
}

// UpdateAuth sets the "auth" field to the value that was provided on create.
func (u *PushSubscriptionUpsertOne) UpdateAuth() *PushSubscriptionUpsertOne {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.UpdateAuth()
	})
}

// Exec executes the query.
func (u *PushSubscriptionUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PushSubscriptionCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PushSubscriptionUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *PushSubscriptionUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: PushSubscriptionUpsertOne.ID is not supported by MySQL driver. Use PushSubscriptionUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *PushSubscriptionUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// PushSubscriptionCreateBulk is the builder for creating many PushSubscription entities in bulk.
type PushSubscriptionCreateBulk struct {
	config
	builders []*PushSubscriptionCreate
	conflict []sql.ConflictOption
}

// Save creates the PushSubscription entities in the database.
func (pscb *PushSubscriptionCreateBulk) Save(ctx context.Context) ([]*PushSubscription, error) {
	specs := make([]*sqlgraph.CreateSpec, len(pscb.builders))
	nodes := make([]*PushSubscription, len(pscb.builders))
	mutators := make([]Mutator, len(pscb.builders))
	for i := range pscb.builders {
		func(i int, root context.Context) {
			builder := pscb.builders[i]
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PushSubscriptionMutation)
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
					_, err = mutators[i+1].Mutate(root, pscb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = pscb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, pscb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, pscb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (pscb *PushSubscriptionCreateBulk) SaveX(ctx context.Context) []*PushSubscription {
	v, err := pscb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (pscb *PushSubscriptionCreateBulk) Exec(ctx context.Context) error {
	_, err := pscb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (pscb *PushSubscriptionCreateBulk) ExecX(ctx context.Context) {
	if err := pscb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.PushSubscription.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.PushSubscriptionUpsert) {
//			SetAccountID(v+v).
//		}).
//		Exec(ctx)
func (pscb *PushSubscriptionCreateBulk) OnConflict(opts ...sql.ConflictOption) *PushSubscriptionUpsertBulk {
	pscb.conflict = opts
	return &PushSubscriptionUpsertBulk{
		create: pscb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.PushSubscription.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (pscb *PushSubscriptionCreateBulk) OnConflictColumns(columns ...string) *PushSubscriptionUpsertBulk {
	pscb.conflict = append(pscb.conflict, sql.ConflictColumns(columns...))
	return &PushSubscriptionUpsertBulk{
		create: pscb,
	}
}

// PushSubscriptionUpsertBulk is the builder for "upsert"-ing
// a bulk of PushSubscription nodes.
type PushSubscriptionUpsertBulk struct {
	create *PushSubscriptionCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.PushSubscription.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(pushsubscription.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *PushSubscriptionUpsertBulk) UpdateNewValues() *PushSubscriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(pushsubscription.FieldID)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.PushSubscription.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *PushSubscriptionUpsertBulk) Ignore() *PushSubscriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *PushSubscriptionUpsertBulk) DoNothing() *PushSubscriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the PushSubscriptionCreateBulk.OnConflict
// documentation for more info.
func (u *PushSubscriptionUpsertBulk) Update(set func(*PushSubscriptionUpsert)) *PushSubscriptionUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&PushSubscriptionUpsert{UpdateSet: update})
	}))
	return u
}

// SetAccountID sets the "account_id" field.
func (u *PushSubscriptionUpsertBulk) SetAccountID(v string) *PushSubscriptionUpsertBulk {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.SetAccountID(v)
	})
}

// UpdateAccountID sets the "account_id" field to the value that was provided on create.
func (u *PushSubscriptionUpsertBulk) UpdateAccountID() *PushSubscriptionUpsertBulk {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.UpdateAccountID()
	})
}

// SetP256dh sets the "p256dh" field.
func (u *PushSubscriptionUpsertBulk) SetP256dh(v string) *PushSubscriptionUpsertBulk {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.SetP256dh(v)
	})
}

// UpdateP256dh sets the "p256dh" field to the value that was provided on create.
func (u *PushSubscriptionUpsertBulk) UpdateP256dh() *PushSubscriptionUpsertBulk {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.UpdateP256dh()
	})
}

// SetAuth sets the "auth" field.
func (u *PushSubscriptionUpsertBulk) SetAuth(v string) *PushSubscriptionUpsertBulk {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.SetAuth(v)
	})
}

// UpdateAuth sets the "auth" field to the value that was provided on create.
func (u *PushSubscriptionUpsertBulk) UpdateAuth() *PushSubscriptionUpsertBulk {
	return u.Update(func(s *PushSubscriptionUpsert) {
		s.UpdateAuth()
	})
}

// Exec executes the query.
func (u *PushSubscriptionUpsertBulk) Exec(ctx context.Context) error {
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the PushSubscriptionCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for PushSubscriptionCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *PushSubscriptionUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
