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
	"github.com/Mushus/retweet/sqlite/ent/account"
)

// AccountCreate is the builder for creating a Account entity.
type AccountCreate struct {
	config
	mutation *AccountMutation
	hooks    []Hook
	conflict []sql.ConflictOption
}

// SetUsername sets the "username" field.
func (ac *AccountCreate) SetUsername(s string) *AccountCreate {
	ac.mutation.SetUsername(s)
	return ac
}

// SetDisplayName sets the "display_name" field.
func (ac *AccountCreate) SetDisplayName(s string) *AccountCreate {
	ac.mutation.SetDisplayName(s)
	return ac
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (ac *AccountCreate) SetNillableDisplayName(s *string) *AccountCreate {
	if s != nil {
		ac.SetDisplayName(*s)
	}
	return ac
}

// SetEmail sets the "email" field.
func (ac *AccountCreate) SetEmail(s string) *AccountCreate {
	ac.mutation.SetEmail(s)
	return ac
}

// SetPassword sets the "password" field.
func (ac *AccountCreate) SetPassword(s string) *AccountCreate {
	ac.mutation.SetPassword(s)
	return ac
}

// SetAvatarID sets the "avatar_id" field.
func (ac *AccountCreate) SetAvatarID(s string) *AccountCreate {
	ac.mutation.SetAvatarID(s)
	return ac
}

// SetNillableAvatarID sets the "avatar_id" field if the given value is not nil.
func (ac *AccountCreate) SetNillableAvatarID(s *string) *AccountCreate {
	if s != nil {
		ac.SetAvatarID(*s)
	}
	return ac
}

// SetBannerID sets the "banner_id" field.
func (ac *AccountCreate) SetBannerID(s string) *AccountCreate {
	ac.mutation.SetBannerID(s)
	return ac
}

// SetNillableBannerID sets the "banner_id" field if the given value is not nil.
func (ac *AccountCreate) SetNillableBannerID(s *string) *AccountCreate {
	if s != nil {
		ac.SetBannerID(*s)
	}
	return ac
}

// SetBio sets the "bio" field.
func (ac *AccountCreate) SetBio(s string) *AccountCreate {
	ac.mutation.SetBio(s)
	return ac
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (ac *AccountCreate) SetNillableBio(s *string) *AccountCreate {
	if s != nil {
		ac.SetBio(*s)
	}
	return ac
}

// SetWebsite sets the "website" field.
func (ac *AccountCreate) SetWebsite(s string) *AccountCreate {
	ac.mutation.SetWebsite(s)
	return ac
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (ac *AccountCreate) SetNillableWebsite(s *string) *AccountCreate {
	if s != nil {
		ac.SetWebsite(*s)
	}
	return ac
}

// SetLocation sets the "location" field.
func (ac *AccountCreate) SetLocation(s string) *AccountCreate {
	ac.mutation.SetLocation(s)
	return ac
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (ac *AccountCreate) SetNillableLocation(s *string) *AccountCreate {
	if s != nil {
		ac.SetLocation(*s)
	}
	return ac
}

// SetIsAdmin sets the "is_admin" field.
func (ac *AccountCreate) SetIsAdmin(b bool) *AccountCreate {
	ac.mutation.SetIsAdmin(b)
	return ac
}

// SetNillableIsAdmin sets the "is_admin" field if the given value is not nil.
func (ac *AccountCreate) SetNillableIsAdmin(b *bool) *AccountCreate {
	if b != nil {
		ac.SetIsAdmin(*b)
	}
	return ac
}

// SetIsSuspended sets the "is_suspended" field.
func (ac *AccountCreate) SetIsSuspended(b bool) *AccountCreate {
	ac.mutation.SetIsSuspended(b)
	return ac
}

// SetNillableIsSuspended sets the "is_suspended" field if the given value is not nil.
func (ac *AccountCreate) SetNillableIsSuspended(b *bool) *AccountCreate {
	if b != nil {
		ac.SetIsSuspended(*b)
	}
	return ac
}

// SetIsDeleted sets the "is_deleted" field.
func (ac *AccountCreate) SetIsDeleted(b bool) *AccountCreate {
	ac.mutation.SetIsDeleted(b)
	return ac
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (ac *AccountCreate) SetNillableIsDeleted(b *bool) *AccountCreate {
	if b != nil {
		ac.SetIsDeleted(*b)
	}
	return ac
}

// SetCreatedAt sets the "created_at" field.
func (ac *AccountCreate) SetCreatedAt(t time.Time) *AccountCreate {
	ac.mutation.SetCreatedAt(t)
	return ac
}

// SetID sets the "id" field.
func (ac *AccountCreate) SetID(s string) *AccountCreate {
	ac.mutation.SetID(s)
	return ac
}

// Mutation returns the AccountMutation object of the builder.
func (ac *AccountCreate) Mutation() *AccountMutation {
	return ac.mutation
}

// Save creates the Account in the database.
func (ac *AccountCreate) Save(ctx context.Context) (*Account, error) {
	ac.defaults()
	return withHooks(ctx, ac.sqlSave, ac.mutation, ac.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (ac *AccountCreate) SaveX(ctx context.Context) *Account {
	v, err := ac.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (ac *AccountCreate) Exec(ctx context.Context) error {
	_, err := ac.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (ac *AccountCreate) ExecX(ctx context.Context) {
	if err := ac.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (ac *AccountCreate) defaults() {
	if _, ok := ac.mutation.DisplayName(); !ok {
		v := account.DefaultDisplayName
		ac.mutation.SetDisplayName(v)
	}
	if _, ok := ac.mutation.AvatarID(); !ok {
		v := account.DefaultAvatarID
		ac.mutation.SetAvatarID(v)
	}
	if _, ok := ac.mutation.BannerID(); !ok {
		v := account.DefaultBannerID
		ac.mutation.SetBannerID(v)
	}
	if _, ok := ac.mutation.Bio(); !ok {
		v := account.DefaultBio
		ac.mutation.SetBio(v)
	}
	if _, ok := ac.mutation.Website(); !ok {
		v := account.DefaultWebsite
		ac.mutation.SetWebsite(v)
	}
	if _, ok := ac.mutation.Location(); !ok {
		v := account.DefaultLocation
		ac.mutation.SetLocation(v)
	}
	if _, ok := ac.mutation.IsAdmin(); !ok {
		v := account.DefaultIsAdmin
		ac.mutation.SetIsAdmin(v)
	}
	if _, ok := ac.mutation.IsSuspended(); !ok {
		v := account.DefaultIsSuspended
		ac.mutation.SetIsSuspended(v)
	}
	if _, ok := ac.mutation.IsDeleted(); !ok {
		v := account.DefaultIsDeleted
		ac.mutation.SetIsDeleted(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (ac *AccountCreate) check() error {
	if _, ok := ac.mutation.Username(); !ok {
		return &ValidationError{Name: "username", err: errors.New(`ent: missing required field "Account.username"`)}
	}
	if _, ok := ac.mutation.DisplayName(); !ok {
		return &ValidationError{Name: "display_name", err: errors.New(`ent: missing required field "Account.display_name"`)}
	}
	if _, ok := ac.mutation.Email(); !ok {
		return &ValidationError{Name: "email", err: errors.New(`ent: missing required field "Account.email"`)}
	}
	if _, ok := ac.mutation.Password(); !ok {
		return &ValidationError{Name: "password", err: errors.New(`ent: missing required field "Account.password"`)}
	}
	if _, ok := ac.mutation.AvatarID(); !ok {
		return &ValidationError{Name: "avatar_id", err: errors.New(`ent: missing required field "Account.avatar_id"`)}
	}
	if _, ok := ac.mutation.BannerID(); !ok {
		return &ValidationError{Name: "banner_id", err: errors.New(`ent: missing required field "Account.banner_id"`)}
	}
	if _, ok := ac.mutation.Bio(); !ok {
		return &ValidationError{Name: "bio", err: errors.New(`ent: missing required field "Account.bio"`)}
	}
	if _, ok := ac.mutation.Website(); !ok {
		return &ValidationError{Name: "website", err: errors.New(`ent: missing required field "Account.website"`)}
	}
	if _, ok := ac.mutation.Location(); !ok {
		return &ValidationError{Name: "location", err: errors.New(`ent: missing required field "Account.location"`)}
	}
	if _, ok := ac.mutation.IsAdmin(); !ok {
		return &ValidationError{Name: "is_admin", err: errors.New(`ent: missing required field "Account.is_admin"`)}
	}
	if _, ok := ac.mutation.IsSuspended(); !ok {
		return &ValidationError{Name: "is_suspended", err: errors.New(`ent: missing required field "Account.is_suspended"`)}
	}
	if _, ok := ac.mutation.IsDeleted(); !ok {
		return &ValidationError{Name: "is_deleted", err: errors.New(`ent: missing required field "Account.is_deleted"`)}
	}
	if _, ok := ac.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Account.created_at"`)}
	}
	return nil
}

func (ac *AccountCreate) sqlSave(ctx context.Context) (*Account, error) {
	if err := ac.check(); err != nil {
		return nil, err
	}
	_node, _spec := ac.createSpec()
	if err := sqlgraph.CreateNode(ctx, ac.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(string); ok {
			_node.ID = id
		} else {
			return nil, fmt.Errorf("unexpected Account.ID type: %T", _spec.ID.Value)
		}
	}
	ac.mutation.id = &_node.ID
	ac.mutation.done = true
	return _node, nil
}

func (ac *AccountCreate) createSpec() (*Account, *sqlgraph.CreateSpec) {
	var (
		_node = &Account{config: ac.config}
		_spec = sqlgraph.NewCreateSpec(account.Table, sqlgraph.NewFieldSpec(account.FieldID, field.TypeString))
	)
	_spec.OnConflict = ac.conflict
	if id, ok := ac.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = id
	}
	if value, ok := ac.mutation.Username(); ok {
		_spec.SetField(account.FieldUsername, field.TypeString, value)
		_node.Username = value
	}
	if value, ok := ac.mutation.DisplayName(); ok {
		_spec.SetField(account.FieldDisplayName, field.TypeString, value)
		_node.DisplayName = value
	}
	if value, ok := ac.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
		_node.Email = value
	}
	if value, ok := ac.mutation.Password(); ok {
		_spec.SetField(account.FieldPassword, field.TypeString, value)
		_node.Password = value
	}
	if value, ok := ac.mutation.AvatarID(); ok {
		_spec.SetField(account.FieldAvatarID, field.TypeString, value)
		_node.AvatarID = value
	}
	if value, ok := ac.mutation.BannerID(); ok {
		_spec.SetField(account.FieldBannerID, field.TypeString, value)
		_node.BannerID = value
	}
	if value, ok := ac.mutation.Bio(); ok {
		_spec.SetField(account.FieldBio, field.TypeString, value)
		_node.Bio = value
	}
	if value, ok := ac.mutation.Website(); ok {
		_spec.SetField(account.FieldWebsite, field.TypeString, value)
		_node.Website = value
	}
	if value, ok := ac.mutation.Location(); ok {
		_spec.SetField(account.FieldLocation, field.TypeString, value)
		_node.Location = value
	}
	if value, ok := ac.mutation.IsAdmin(); ok {
		_spec.SetField(account.FieldIsAdmin, field.TypeBool, value)
		_node.IsAdmin = value
	}
	if value, ok := ac.mutation.IsSuspended(); ok {
		_spec.SetField(account.FieldIsSuspended, field.TypeBool, value)
		_node.IsSuspended = value
	}
	if value, ok := ac.mutation.IsDeleted(); ok {
		_spec.SetField(account.FieldIsDeleted, field.TypeBool, value)
		_node.IsDeleted = value
	}
	if value, ok := ac.mutation.CreatedAt(); ok {
		_spec.SetField(account.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	return _node, _spec
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Account.Create().
//		SetUsername(v).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AccountUpsert) {
//			SetUsername(v+v).
//		}).
//		Exec(ctx)
func (ac *AccountCreate) OnConflict(opts ...sql.ConflictOption) *AccountUpsertOne {
	ac.conflict = opts
	return &AccountUpsertOne{
		create: ac,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (ac *AccountCreate) OnConflictColumns(columns ...string) *AccountUpsertOne {
	ac.conflict = append(ac.conflict, sql.ConflictColumns(columns...))
	return &AccountUpsertOne{
		create: ac,
	}
}

type (
	// AccountUpsertOne is the builder for "upsert"-ing
	//  one Account node.
	AccountUpsertOne struct {
		create *AccountCreate
	}

	// AccountUpsert is the "OnConflict" setter.
	AccountUpsert struct {
		*sql.UpdateSet
	}
)

// SetDisplayName sets the "display_name" field.
func (u *AccountUpsert) SetDisplayName(v string) *AccountUpsert {
	u.Set(account.FieldDisplayName, v)
	return u
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *AccountUpsert) UpdateDisplayName() *AccountUpsert {
	u.SetExcluded(account.FieldDisplayName)
	return u
}

// SetEmail sets the "email" field.
func (u *AccountUpsert) SetEmail(v string) *AccountUpsert {
	u.Set(account.FieldEmail, v)
	return u
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AccountUpsert) UpdateEmail() *AccountUpsert {
	u.SetExcluded(account.FieldEmail)
	return u
}

// SetPassword sets the "password" field.
func (u *AccountUpsert) SetPassword(v string) *AccountUpsert {
	u.Set(account.FieldPassword, v)
	return u
}

// UpdatePassword sets the "password" field to the value that was provided on create.
func (u *AccountUpsert) UpdatePassword() *AccountUpsert {
	u.SetExcluded(account.FieldPassword)
	return u
}

// SetAvatarID sets the "avatar_id" field.
func (u *AccountUpsert) SetAvatarID(v string) *AccountUpsert {
	u.Set(account.FieldAvatarID, v)
	return u
}

// UpdateAvatarID sets the "avatar_id" field to the value that was provided on create.
func (u *AccountUpsert) UpdateAvatarID() *AccountUpsert {
	u.SetExcluded(account.FieldAvatarID)
	return u
}

// SetBannerID sets the "banner_id" field.
func (u *AccountUpsert) SetBannerID(v string) *AccountUpsert {
	u.Set(account.FieldBannerID, v)
	return u
}

// UpdateBannerID sets the "banner_id" field to the value that was provided on create.
func (u *AccountUpsert) UpdateBannerID() *AccountUpsert {
	u.SetExcluded(account.FieldBannerID)
	return u
}

// SetBio sets the "bio" field.
func (u *AccountUpsert) SetBio(v string) *AccountUpsert {
	u.Set(account.FieldBio, v)
	return u
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *AccountUpsert) UpdateBio() *AccountUpsert {
	u.SetExcluded(account.FieldBio)
	return u
}

// SetWebsite sets the "website" field.
func (u *AccountUpsert) SetWebsite(v string) *AccountUpsert {
	u.Set(account.FieldWebsite, v)
	return u
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *AccountUpsert) UpdateWebsite() *AccountUpsert {
	u.SetExcluded(account.FieldWebsite)
	return u
}

// SetLocation sets the "location" field.
func (u *AccountUpsert) SetLocation(v string) *AccountUpsert {
	u.Set(account.FieldLocation, v)
	return u
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *AccountUpsert) UpdateLocation() *AccountUpsert {
	u.SetExcluded(account.FieldLocation)
	return u
}

// SetIsAdmin sets the "is_admin" field.
func (u *AccountUpsert) SetIsAdmin(v bool) *AccountUpsert {
	u.Set(account.FieldIsAdmin, v)
	return u
}

// UpdateIsAdmin sets the "is_admin" field to the value that was provided on create.
func (u *AccountUpsert) UpdateIsAdmin() *AccountUpsert {
	u.SetExcluded(account.FieldIsAdmin)
	return u
}

// SetIsSuspended sets the "is_suspended" field.
func (u *AccountUpsert) SetIsSuspended(v bool) *AccountUpsert {
	u.Set(account.FieldIsSuspended, v)
	return u
}

// UpdateIsSuspended sets the "is_suspended" field to the value that was provided on create.
func (u *AccountUpsert) UpdateIsSuspended() *AccountUpsert {
	u.SetExcluded(account.FieldIsSuspended)
	return u
}

// SetIsDeleted sets the "is_deleted" field.
func (u *AccountUpsert) SetIsDeleted(v bool) *AccountUpsert {
	u.Set(account.FieldIsDeleted, v)
	return u
}

// UpdateIsDeleted sets the "is_deleted" field to the value that was provided on create.
func (u *AccountUpsert) UpdateIsDeleted() *AccountUpsert {
	u.SetExcluded(account.FieldIsDeleted)
	return u
}

// SetCreatedAt sets the "created_at" field.
func (u *AccountUpsert) SetCreatedAt(v time.Time) *AccountUpsert {
	u.Set(account.FieldCreatedAt, v)
	return u
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AccountUpsert) UpdateCreatedAt() *AccountUpsert {
	u.SetExcluded(account.FieldCreatedAt)
	return u
}

// UpdateNewValues updates the mutable fields using the new values that were set on create except the ID field.
// Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(account.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AccountUpsertOne) UpdateNewValues() *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		if _, exists := u.create.mutation.ID(); exists {
			s.SetIgnore(account.FieldID)
		}
		if _, exists := u.create.mutation.Username(); exists {
			s.SetIgnore(account.FieldUsername)
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Account.Create().
//	    OnConflict(sql.ResolveWithIgnore()).
//	    Exec(ctx)
func (u *AccountUpsertOne) Ignore() *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AccountUpsertOne) DoNothing() *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AccountCreate.OnConflict
// documentation for more info.
func (u *AccountUpsertOne) Update(set func(*AccountUpsert)) *AccountUpsertOne {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *AccountUpsertOne) SetDisplayName(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateDisplayName() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateDisplayName()
	})
}

// SetEmail sets the "email" field.
func (u *AccountUpsertOne) SetEmail(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateEmail() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateEmail()
	})
}

// SetPassword sets the "password" field.
func (u *AccountUpsertOne) SetPassword(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetPassword(v)
	})
}

// UpdatePassword sets the "password" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdatePassword() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdatePassword()
	})
}

// SetAvatarID sets the "avatar_id" field.
func (u *AccountUpsertOne) SetAvatarID(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetAvatarID(v)
	})
}

// UpdateAvatarID sets the "avatar_id" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateAvatarID() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateAvatarID()
	})
}

// SetBannerID sets the "banner_id" field.
func (u *AccountUpsertOne) SetBannerID(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetBannerID(v)
	})
}

// UpdateBannerID sets the "banner_id" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateBannerID() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateBannerID()
	})
}

// SetBio sets the "bio" field.
func (u *AccountUpsertOne) SetBio(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateBio() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateBio()
	})
}

// SetWebsite sets the "website" field.
func (u *AccountUpsertOne) SetWebsite(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateWebsite() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateWebsite()
	})
}

// SetLocation sets the "location" field.
func (u *AccountUpsertOne) SetLocation(v string) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateLocation() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateLocation()
	})
}

// SetIsAdmin sets the "is_admin" field.
func (u *AccountUpsertOne) SetIsAdmin(v bool) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetIsAdmin(v)
	})
}

// UpdateIsAdmin sets the "is_admin" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateIsAdmin() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateIsAdmin()
	})
}

// SetIsSuspended sets the "is_suspended" field.
func (u *AccountUpsertOne) SetIsSuspended(v bool) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetIsSuspended(v)
	})
}

// UpdateIsSuspended sets the "is_suspended" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateIsSuspended() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateIsSuspended()
	})
}

// SetIsDeleted sets the "is_deleted" field.
func (u *AccountUpsertOne) SetIsDeleted(v bool) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetIsDeleted(v)
	})
}

// UpdateIsDeleted sets the "is_deleted" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateIsDeleted() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateIsDeleted()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AccountUpsertOne) SetCreatedAt(v time.Time) *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AccountUpsertOne) UpdateCreatedAt() *AccountUpsertOne {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AccountUpsertOne) Exec(ctx context.Context) error {
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AccountCreate.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AccountUpsertOne) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}

// Exec executes the UPSERT query and returns the inserted/updated ID.
func (u *AccountUpsertOne) ID(ctx context.Context) (id string, err error) {
	if u.create.driver.Dialect() == dialect.MySQL {
		// In case of "ON CONFLICT", there is no way to get back non-numeric ID
		// fields from the database since MySQL does not support the RETURNING clause.
		return id, errors.New("ent: AccountUpsertOne.ID is not supported by MySQL driver. Use AccountUpsertOne.Exec instead")
	}
	node, err := u.create.Save(ctx)
	if err != nil {
		return id, err
	}
	return node.ID, nil
}

// IDX is like ID, but panics if an error occurs.
func (u *AccountUpsertOne) IDX(ctx context.Context) string {
	id, err := u.ID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// AccountCreateBulk is the builder for creating many Account entities in bulk.
type AccountCreateBulk struct {
	config
	builders []*AccountCreate
	conflict []sql.ConflictOption
}

// Save creates the Account entities in the database.
func (acb *AccountCreateBulk) Save(ctx context.Context) ([]*Account, error) {
	specs := make([]*sqlgraph.CreateSpec, len(acb.builders))
	nodes := make([]*Account, len(acb.builders))
	mutators := make([]Mutator, len(acb.builders))
	for i := range acb.builders {
		func(i int, root context.Context) {
			builder := acb.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*AccountMutation)
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
					_, err = mutators[i+1].Mutate(root, acb.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					spec.OnConflict = acb.conflict
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, acb.driver, spec); err != nil {
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
		if _, err := mutators[0].Mutate(ctx, acb.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (acb *AccountCreateBulk) SaveX(ctx context.Context) []*Account {
	v, err := acb.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (acb *AccountCreateBulk) Exec(ctx context.Context) error {
	_, err := acb.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (acb *AccountCreateBulk) ExecX(ctx context.Context) {
	if err := acb.Exec(ctx); err != nil {
		panic(err)
	}
}

// OnConflict allows configuring the `ON CONFLICT` / `ON DUPLICATE KEY` clause
// of the `INSERT` statement. For example:
//
//	client.Account.CreateBulk(builders...).
//		OnConflict(
//			// Update the row with the new values
//			// the was proposed for insertion.
//			sql.ResolveWithNewValues(),
//		).
//		// Override some of the fields with custom
//		// update values.
//		Update(func(u *ent.AccountUpsert) {
//			SetUsername(v+v).
//		}).
//		Exec(ctx)
func (acb *AccountCreateBulk) OnConflict(opts ...sql.ConflictOption) *AccountUpsertBulk {
	acb.conflict = opts
	return &AccountUpsertBulk{
		create: acb,
	}
}

// OnConflictColumns calls `OnConflict` and configures the columns
// as conflict target. Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(sql.ConflictColumns(columns...)).
//		Exec(ctx)
func (acb *AccountCreateBulk) OnConflictColumns(columns ...string) *AccountUpsertBulk {
	acb.conflict = append(acb.conflict, sql.ConflictColumns(columns...))
	return &AccountUpsertBulk{
		create: acb,
	}
}

// AccountUpsertBulk is the builder for "upsert"-ing
// a bulk of Account nodes.
type AccountUpsertBulk struct {
	create *AccountCreateBulk
}

// UpdateNewValues updates the mutable fields using the new values that
// were set on create. Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(
//			sql.ResolveWithNewValues(),
//			sql.ResolveWith(func(u *sql.UpdateSet) {
//				u.SetIgnore(account.FieldID)
//			}),
//		).
//		Exec(ctx)
func (u *AccountUpsertBulk) UpdateNewValues() *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithNewValues())
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(s *sql.UpdateSet) {
		for _, b := range u.create.builders {
			if _, exists := b.mutation.ID(); exists {
				s.SetIgnore(account.FieldID)
			}
			if _, exists := b.mutation.Username(); exists {
				s.SetIgnore(account.FieldUsername)
			}
		}
	}))
	return u
}

// Ignore sets each column to itself in case of conflict.
// Using this option is equivalent to using:
//
//	client.Account.Create().
//		OnConflict(sql.ResolveWithIgnore()).
//		Exec(ctx)
func (u *AccountUpsertBulk) Ignore() *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWithIgnore())
	return u
}

// DoNothing configures the conflict_action to `DO NOTHING`.
// Supported only by SQLite and PostgreSQL.
func (u *AccountUpsertBulk) DoNothing() *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.DoNothing())
	return u
}

// Update allows overriding fields `UPDATE` values. See the AccountCreateBulk.OnConflict
// documentation for more info.
func (u *AccountUpsertBulk) Update(set func(*AccountUpsert)) *AccountUpsertBulk {
	u.create.conflict = append(u.create.conflict, sql.ResolveWith(func(update *sql.UpdateSet) {
		set(&AccountUpsert{UpdateSet: update})
	}))
	return u
}

// SetDisplayName sets the "display_name" field.
func (u *AccountUpsertBulk) SetDisplayName(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetDisplayName(v)
	})
}

// UpdateDisplayName sets the "display_name" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateDisplayName() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateDisplayName()
	})
}

// SetEmail sets the "email" field.
func (u *AccountUpsertBulk) SetEmail(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetEmail(v)
	})
}

// UpdateEmail sets the "email" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateEmail() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateEmail()
	})
}

// SetPassword sets the "password" field.
func (u *AccountUpsertBulk) SetPassword(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetPassword(v)
	})
}

// UpdatePassword sets the "password" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdatePassword() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdatePassword()
	})
}

// SetAvatarID sets the "avatar_id" field.
func (u *AccountUpsertBulk) SetAvatarID(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetAvatarID(v)
	})
}

// UpdateAvatarID sets the "avatar_id" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateAvatarID() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateAvatarID()
	})
}

// SetBannerID sets the "banner_id" field.
func (u *AccountUpsertBulk) SetBannerID(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetBannerID(v)
	})
}

// UpdateBannerID sets the "banner_id" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateBannerID() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateBannerID()
	})
}

// SetBio sets the "bio" field.
func (u *AccountUpsertBulk) SetBio(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetBio(v)
	})
}

// UpdateBio sets the "bio" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateBio() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateBio()
	})
}

// SetWebsite sets the "website" field.
func (u *AccountUpsertBulk) SetWebsite(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetWebsite(v)
	})
}

// UpdateWebsite sets the "website" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateWebsite() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateWebsite()
	})
}

// SetLocation sets the "location" field.
func (u *AccountUpsertBulk) SetLocation(v string) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetLocation(v)
	})
}

// UpdateLocation sets the "location" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateLocation() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateLocation()
	})
}

// SetIsAdmin sets the "is_admin" field.
func (u *AccountUpsertBulk) SetIsAdmin(v bool) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetIsAdmin(v)
	})
}

// UpdateIsAdmin sets the "is_admin" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateIsAdmin() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateIsAdmin()
	})
}

// SetIsSuspended sets the "is_suspended" field.
func (u *AccountUpsertBulk) SetIsSuspended(v bool) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetIsSuspended(v)
	})
}

// UpdateIsSuspended sets the "is_suspended" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateIsSuspended() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateIsSuspended()
	})
}

// SetIsDeleted sets the "is_deleted" field.
func (u *AccountUpsertBulk) SetIsDeleted(v bool) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetIsDeleted(v)
	})
}

// UpdateIsDeleted sets the "is_deleted" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateIsDeleted() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateIsDeleted()
	})
}

// SetCreatedAt sets the "created_at" field.
func (u *AccountUpsertBulk) SetCreatedAt(v time.Time) *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.SetCreatedAt(v)
	})
}

// UpdateCreatedAt sets the "created_at" field to the value that was provided on create.
func (u *AccountUpsertBulk) UpdateCreatedAt() *AccountUpsertBulk {
	return u.Update(func(s *AccountUpsert) {
		s.UpdateCreatedAt()
	})
}

// Exec executes the query.
func (u *AccountUpsertBulk) Exec(ctx context.Context) error {
	for i, b := range u.create.builders {
		if len(b.conflict) != 0 {
			return fmt.Errorf("ent: OnConflict was set for builder %d. Set it on the AccountCreateBulk instead", i)
		}
	}
	if len(u.create.conflict) == 0 {
		return errors.New("ent: missing options for AccountCreateBulk.OnConflict")
	}
	return u.create.Exec(ctx)
}

// ExecX is like Exec, but panics if an error occurs.
func (u *AccountUpsertBulk) ExecX(ctx context.Context) {
	if err := u.create.Exec(ctx); err != nil {
		panic(err)
	}
}
