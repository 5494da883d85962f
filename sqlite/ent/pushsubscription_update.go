// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"errors"
	"fmt"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Mushus/retweet/sqlite/ent/predicate"
	"github.com/Mushus/retweet/sqlite/ent/pushsubscription"
)

// PushSubscriptionUpdate is the builder for updating PushSubscription entities.
type PushSubscriptionUpdate struct {
	config
	hooks    []Hook
	mutation *PushSubscriptionMutation
}

// Where appends a list predicates to the PushSubscriptionUpdate builder.
func (psu *PushSubscriptionUpdate) Where(ps ...predicate.PushSubscription) *PushSubscriptionUpdate {
	psu.mutation.Where(ps...)
	return psu
}

// SetAccountID sets the "account_id" field.
func (psu *PushSubscriptionUpdate) SetAccountID(s string) *PushSubscriptionUpdate {
	psu.mutation.SetAccountID(s)
	return psu
}

// SetP256dh sets the "p256dh" field.
func (psu *PushSubscriptionUpdate) SetP256dh(s string) *PushSubscriptionUpdate {
	psu.mutation.SetP256dh(s)
	return psu
}

// SetAuth sets the "auth" field.
func (psu *PushSubscriptionUpdate) SetAuth(s string) *PushSubscriptionUpdate {
	psu.mutation.SetAuth(s)
	return psu
}

// Mutation returns the PushSubscriptionMutation object of the builder.
func (psu *PushSubscriptionUpdate) Mutation() *PushSubscriptionMutation {
	return psu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (psu *PushSubscriptionUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, psu.sqlSave, psu.mutation, psu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psu *PushSubscriptionUpdate) SaveX(ctx context.Context) int {
	affected, err := psu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (psu *PushSubscriptionUpdate) Exec(ctx context.Context) error {
	_, err := psu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psu *PushSubscriptionUpdate) ExecX(ctx context.Context) {
	if err := psu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (psu *PushSubscriptionUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(pushsubscription.Table, pushsubscription.Columns, sqlgraph.NewFieldSpec(pushsubscription.FieldID, field.TypeString))
	if ps := psu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psu.mutation.AccountID(); ok {
		_spec.SetField(pushsubscription.FieldAccountID, field.TypeString, value)
	}
	if value, ok := psu.mutation.P256dh(); ok {
		_spec.SetField(pushsubscription.FieldP256dh, field.TypeString, value)
	}
	if value, ok := psu.mutation.Auth(); ok {
		_spec.SetField(pushsubscription.FieldAuth, field.TypeString, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, psu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pushsubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	psu.mutation.done = true
	return n, nil
}

// PushSubscriptionUpdateOne is the builder for updating a single PushSubscription entity.
type PushSubscriptionUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PushSubscriptionMutation
}

// SetAccountID sets the "account_id" field.
func (psuo *PushSubscriptionUpdateOne) SetAccountID(s string) *PushSubscriptionUpdateOne {
	psuo.mutation.SetAccountID(s)
	return psuo
}

// SetP256dh sets the "p256dh" field.
func (psuo *PushSubscriptionUpdateOne) SetP256dh(s string) *PushSubscriptionUpdateOne {
	psuo.mutation.SetP256dh(s)
	return psuo
}

// SetAuth sets the "auth" field.
func (psuo *PushSubscriptionUpdateOne) SetAuth(s string) *PushSubscriptionUpdateOne {
	psuo.mutation.SetAuth(s)
	return psuo
}

// Mutation returns the PushSubscriptionMutation object of the builder.
func (psuo *PushSubscriptionUpdateOne) Mutation() *PushSubscriptionMutation {
	return psuo.mutation
}

// Where appends a list predicates to the PushSubscriptionUpdate builder.
func (psuo *PushSubscriptionUpdateOne) Where(ps ...predicate.PushSubscription) *PushSubscriptionUpdateOne {
	psuo.mutation.Where(ps...)
	return psuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (psuo *PushSubscriptionUpdateOne) Select(field string, fields ...string) *PushSubscriptionUpdateOne {
	psuo.fields = append([]string{field}, fields...)
	return psuo
}

// Save executes the query and returns the updated PushSubscription entity.
func (psuo *PushSubscriptionUpdateOne) Save(ctx context.Context) (*PushSubscription, error) {
	return withHooks(ctx, psuo.sqlSave, psuo.mutation, psuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (psuo *PushSubscriptionUpdateOne) SaveX(ctx context.Context) *PushSubscription {
	node, err := psuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (psuo *PushSubscriptionUpdateOne) Exec(ctx context.Context) error {
	_, err := psuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (psuo *PushSubscriptionUpdateOne) ExecX(ctx context.Context) {
	if err := psuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (psuo *PushSubscriptionUpdateOne) sqlSave(ctx context.Context) (_node *PushSubscription, err error) {
	_spec := sqlgraph.NewUpdateSpec(pushsubscription.Table, pushsubscription.Columns, sqlgraph.NewFieldSpec(pushsubscription.FieldID, field.TypeString))
	id, ok := psuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "PushSubscription.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := psuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pushsubscription.FieldID)
		for _, f := range fields {
			if !pushsubscription.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != pushsubscription.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := psuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := psuo.mutation.AccountID(); ok {
		_spec.SetField(pushsubscription.FieldAccountID, field.TypeString, value)
	}
	if value, ok := psuo.mutation.P256dh(); ok {
		_spec.SetField(pushsubscription.FieldP256dh, field.TypeString, value)
	}
	if value, ok := psuo.mutation.Auth(); ok {
		_spec.SetField(pushsubscription.FieldAuth, field.TypeString, value)
	}
	_node = &PushSubscription{config: psuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, psuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{pushsubscription.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	psuo.mutation.done = true
	return _node, nil
}
