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
	"github.com/Mushus/retweet/sqlite/ent/account"
	"github.com/Mushus/retweet/sqlite/ent/predicate"
)

// AccountUpdate is the builder for updating Account entities.
type AccountUpdate struct {
	config
	hooks    []Hook
	mutation *AccountMutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (au *AccountUpdate) Where(ps ...predicate.Account) *AccountUpdate {
	au.mutation.Where(ps...)
	return au
}

// SetDisplayName sets the "display_name" field.
func (au *AccountUpdate) SetDisplayName(s string) *AccountUpdate {
	au.mutation.SetDisplayName(s)
	return au
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (au *AccountUpdate) SetNillableDisplayName(s *string) *AccountUpdate {
	if s != nil {
		au.SetDisplayName(*s)
	}
	return au
}

// SetEmail sets the "email" field.
func (au *AccountUpdate) SetEmail(s string) *AccountUpdate {
	au.mutation.SetEmail(s)
	return au
}

// SetPassword sets the "password" field.
func (au *AccountUpdate) SetPassword(s string) *AccountUpdate {
	au.mutation.SetPassword(s)
	return au
}

// SetAvatarID sets the "avatar_id" field.
func (au *AccountUpdate) SetAvatarID(s string) *AccountUpdate {
	au.mutation.SetAvatarID(s)
	return au
}

// SetNillableAvatarID sets the "avatar_id" field if the given value is not nil.
func (au *AccountUpdate) SetNillableAvatarID(s *string) *AccountUpdate {
	if s != nil {
		au.SetAvatarID(*s)
	}
	return au
}

// SetBannerID sets the "banner_id" field.
func (au *AccountUpdate) SetBannerID(s string) *AccountUpdate {
	au.mutation.SetBannerID(s)
	return au
}

// SetNillableBannerID sets the "banner_id" field if the given value is not nil.
func (au *AccountUpdate) SetNillableBannerID(s *string) *AccountUpdate {
	if s != nil {
		au.SetBannerID(*s)
	}
	return au
}

// SetBio sets the "bio" field.
func (au *AccountUpdate) SetBio(s string) *AccountUpdate {
	au.mutation.SetBio(s)
	return au
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (au *AccountUpdate) SetNillableBio(s *string) *AccountUpdate {
	if s != nil {
		au.SetBio(*s)
	}
	return au
}

// SetWebsite sets the "website" field.
func (au *AccountUpdate) SetWebsite(s string) *AccountUpdate {
	au.mutation.SetWebsite(s)
	return au
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (au *AccountUpdate) SetNillableWebsite(s *string) *AccountUpdate {
	if s != nil {
		au.SetWebsite(*s)
	}
	return au
}

// SetLocation sets the "location" field.
func (au *AccountUpdate) SetLocation(s string) *AccountUpdate {
	au.mutation.SetLocation(s)
	return au
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (au *AccountUpdate) SetNillableLocation(s *string) *AccountUpdate {
	if s != nil {
		au.SetLocation(*s)
	}
	return au
}

// SetIsAdmin sets the "is_admin" field.
func (au *AccountUpdate) SetIsAdmin(b bool) *AccountUpdate {
	au.mutation.SetIsAdmin(b)
	return au
}

// SetNillableIsAdmin sets the "is_admin" field if the given value is not nil.
func (au *AccountUpdate) SetNillableIsAdmin(b *bool) *AccountUpdate {
	if b != nil {
		au.SetIsAdmin(*b)
	}
	return au
}

// SetIsSuspended sets the "is_suspended" field.
func (au *AccountUpdate) SetIsSuspended(b bool) *AccountUpdate {
	au.mutation.SetIsSuspended(b)
	return au
}

// SetNillableIsSuspended sets the "is_suspended" field if the given value is not nil.
func (au *AccountUpdate) SetNillableIsSuspended(b *bool) *AccountUpdate {
	if b != nil {
		au.SetIsSuspended(*b)
	}
	return au
}

// SetIsDeleted sets the "is_deleted" field.
func (au *AccountUpdate) SetIsDeleted(b bool) *AccountUpdate {
	au.mutation.SetIsDeleted(b)
	return au
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (au *AccountUpdate) SetNillableIsDeleted(b *bool) *AccountUpdate {
	if b != nil {
		au.SetIsDeleted(*b)
	}
	return au
}

// SetCreatedAt sets the "created_at" field.
func (au *AccountUpdate) SetCreatedAt(t time.Time) *AccountUpdate {
	au.mutation.SetCreatedAt(t)
	return au
}

// Mutation returns the AccountMutation object of the builder.
func (au *AccountUpdate) Mutation() *AccountMutation {
	return au.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (au *AccountUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, au.sqlSave, au.mutation, au.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (au *AccountUpdate) SaveX(ctx context.Context) int {
	affected, err := au.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (au *AccountUpdate) Exec(ctx context.Context) error {
	_, err := au.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (au *AccountUpdate) ExecX(ctx context.Context) {
	if err := au.Exec(ctx); err != nil {
		panic(err)
	}
}

func (au *AccountUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeString))
	if ps := au.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := au.mutation.DisplayName(); ok {
		_spec.SetField(account.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := au.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := au.mutation.Password(); ok {
		_spec.SetField(account.FieldPassword, field.TypeString, value)
	}
	if value, ok := au.mutation.AvatarID(); ok {
		_spec.SetField(account.FieldAvatarID, field.TypeString, value)
	}
	if value, ok := au.mutation.BannerID(); ok {
		_spec.SetField(account.FieldBannerID, field.TypeString, value)
	}
	if value, ok := au.mutation.Bio(); ok {
		_spec.SetField(account.FieldBio, field.TypeString, value)
	}
	if value, ok := au.mutation.Website(); ok {
		_spec.SetField(account.FieldWebsite, field.TypeString, value)
	}
	if value, ok := au.mutation.Location(); ok {
		_spec.SetField(account.FieldLocation, field.TypeString, value)
	}
	if value, ok := au.mutation.IsAdmin(); ok {
		_spec.SetField(account.FieldIsAdmin, field.TypeBool, value)
	}
	if value, ok := au.mutation.IsSuspended(); ok {
		_spec.SetField(account.FieldIsSuspended, field.TypeBool, value)
	}
	if value, ok := au.mutation.IsDeleted(); ok {
		_spec.SetField(account.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := au.mutation.CreatedAt(); ok {
		_spec.SetField(account.FieldCreatedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, au.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	au.mutation.done = true
	return n, nil
}

// AccountUpdateOne is the builder for updating a single Account entity.
type AccountUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *AccountMutation
}

// SetDisplayName sets the "display_name" field.
func (auo *AccountUpdateOne) SetDisplayName(s string) *AccountUpdateOne {
	auo.mutation.SetDisplayName(s)
	return auo
}

// SetNillableDisplayName sets the "display_name" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableDisplayName(s *string) *AccountUpdateOne {
	if s != nil {
		auo.SetDisplayName(*s)
	}
	return auo
}

// SetEmail sets the "email" field.
func (auo *AccountUpdateOne) SetEmail(s string) *AccountUpdateOne {
	auo.mutation.SetEmail(s)
	return auo
}

// SetPassword sets the "password" field.
func (auo *AccountUpdateOne) SetPassword(s string) *AccountUpdateOne {
	auo.mutation.SetPassword(s)
	return auo
}

// SetAvatarID sets the "avatar_id" field.
func (auo *AccountUpdateOne) SetAvatarID(s string) *AccountUpdateOne {
	auo.mutation.SetAvatarID(s)
	return auo
}

// SetNillableAvatarID sets the "avatar_id" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableAvatarID(s *string) *AccountUpdateOne {
	if s != nil {
		auo.SetAvatarID(*s)
	}
	return auo
}

// SetBannerID sets the "banner_id" field.
func (auo *AccountUpdateOne) SetBannerID(s string) *AccountUpdateOne {
	auo.mutation.SetBannerID(s)
	return auo
}

// SetNillableBannerID sets the "banner_id" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableBannerID(s *string) *AccountUpdateOne {
	if s != nil {
		auo.SetBannerID(*s)
	}
	return auo
}

// SetBio sets the "bio" field.
func (auo *AccountUpdateOne) SetBio(s string) *AccountUpdateOne {
	auo.mutation.SetBio(s)
	return auo
}

// SetNillableBio sets the "bio" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableBio(s *string) *AccountUpdateOne {
	if s != nil {
		auo.SetBio(*s)
	}
	return auo
}

// SetWebsite sets the "website" field.
func (auo *AccountUpdateOne) SetWebsite(s string) *AccountUpdateOne {
	auo.mutation.SetWebsite(s)
	return auo
}

// SetNillableWebsite sets the "website" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableWebsite(s *string) *AccountUpdateOne {
	if s != nil {
		auo.SetWebsite(*s)
	}
	return auo
}

// SetLocation sets the "location" field.
func (auo *AccountUpdateOne) SetLocation(s string) *AccountUpdateOne {
	auo.mutation.SetLocation(s)
	return auo
}

// SetNillableLocation sets the "location" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableLocation(s *string) *AccountUpdateOne {
	if s != nil {
		auo.SetLocation(*s)
	}
	return auo
}

// SetIsAdmin sets the "is_admin" field.
func (auo *AccountUpdateOne) SetIsAdmin(b bool) *AccountUpdateOne {
	auo.mutation.SetIsAdmin(b)
	return auo
}

// SetNillableIsAdmin sets the "is_admin" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableIsAdmin(b *bool) *AccountUpdateOne {
	if b != nil {
		auo.SetIsAdmin(*b)
	}
	return auo
}

// SetIsSuspended sets the "is_suspended" field.
func (auo *AccountUpdateOne) SetIsSuspended(b bool) *AccountUpdateOne {
	auo.mutation.SetIsSuspended(b)
	return auo
}

// SetNillableIsSuspended sets the "is_suspended" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableIsSuspended(b *bool) *AccountUpdateOne {
	if b != nil {
		auo.SetIsSuspended(*b)
	}
	return auo
}

// SetIsDeleted sets the "is_deleted" field.
func (auo *AccountUpdateOne) SetIsDeleted(b bool) *AccountUpdateOne {
	auo.mutation.SetIsDeleted(b)
	return auo
}

// SetNillableIsDeleted sets the "is_deleted" field if the given value is not nil.
func (auo *AccountUpdateOne) SetNillableIsDeleted(b *bool) *AccountUpdateOne {
	if b != nil {
		auo.SetIsDeleted(*b)
	}
	return auo
}

// SetCreatedAt sets the "created_at" field.
func (auo *AccountUpdateOne) SetCreatedAt(t time.Time) *AccountUpdateOne {
	auo.mutation.SetCreatedAt(t)
	return auo
}

// Mutation returns the AccountMutation object of the builder.
func (auo *AccountUpdateOne) Mutation() *AccountMutation {
	return auo.mutation
}

// Where appends a list predicates to the AccountUpdate builder.
func (auo *AccountUpdateOne) Where(ps ...predicate.Account) *AccountUpdateOne {
	auo.mutation.Where(ps...)
	return auo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (auo *AccountUpdateOne) Select(field string, fields ...string) *AccountUpdateOne {
	auo.fields = append([]string{field}, fields...)
	return auo
}

// Save executes the query and returns the updated Account entity.
func (auo *AccountUpdateOne) Save(ctx context.Context) (*Account, error) {
	return withHooks(ctx, auo.sqlSave, auo.mutation, auo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (auo *AccountUpdateOne) SaveX(ctx context.Context) *Account {
	node, err := auo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (auo *AccountUpdateOne) Exec(ctx context.Context) error {
	_, err := auo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (auo *AccountUpdateOne) ExecX(ctx context.Context) {
	if err := auo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (auo *AccountUpdateOne) sqlSave(ctx context.Context) (_node *Account, err error) {
	_spec := sqlgraph.NewUpdateSpec(account.Table, account.Columns, sqlgraph.NewFieldSpec(account.FieldID, field.TypeString))
	id, ok := auo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Account.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := auo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, account.FieldID)
		for _, f := range fields {
			if !account.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != account.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := auo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := auo.mutation.DisplayName(); ok {
		_spec.SetField(account.FieldDisplayName, field.TypeString, value)
	}
	if value, ok := auo.mutation.Email(); ok {
		_spec.SetField(account.FieldEmail, field.TypeString, value)
	}
	if value, ok := auo.mutation.Password(); ok {
		_spec.SetField(account.FieldPassword, field.TypeString, value)
	}
	if value, ok := auo.mutation.AvatarID(); ok {
		_spec.SetField(account.FieldAvatarID, field.TypeString, value)
	}
	if value, ok := auo.mutation.BannerID(); ok {
		_spec.SetField(account.FieldBannerID, field.TypeString, value)
	}
	if value, ok := auo.mutation.Bio(); ok {
		_spec.SetField(account.FieldBio, field.TypeString, value)
	}
	if value, ok := auo.mutation.Website(); ok {
		_spec.SetField(account.FieldWebsite, field.TypeString, value)
	}
	if value, ok := auo.mutation.Location(); ok {
		_spec.SetField(account.FieldLocation, field.TypeString, value)
	}
	if value, ok := auo.mutation.IsAdmin(); ok {
		_spec.SetField(account.FieldIsAdmin, field.TypeBool, value)
	}
	if value, ok := auo.mutation.IsSuspended(); ok {
		_spec.SetField(account.FieldIsSuspended, field.TypeBool, value)
	}
	if value, ok := auo.mutation.IsDeleted(); ok {
		_spec.SetField(account.FieldIsDeleted, field.TypeBool, value)
	}
	if value, ok := auo.mutation.CreatedAt(); ok {
		_spec.SetField(account.FieldCreatedAt, field.TypeTime, value)
	}
	_node = &Account{config: auo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, auo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{account.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	auo.mutation.done = true
	return _node, nil
}
