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
	"github.com/Mushus/retweet/sqlite/ent/predicate"
	"github.com/Mushus/retweet/sqlite/ent/recoverytoken"
)

// RecoveryTokenUpdate is the builder for updating RecoveryToken entities.
type RecoveryTokenUpdate struct {
	config
	hooks    []Hook
	mutation *RecoveryTokenMutation
}

// Where appends a list predicates to the RecoveryTokenUpdate builder.
func (rtu *RecoveryTokenUpdate) Where(ps ...predicate.RecoveryToken) *RecoveryTokenUpdate {
	rtu.mutation.Where(ps...)
	return rtu
}

// SetIssuedAt sets the "issued_at" field.
func (rtu *RecoveryTokenUpdate) SetIssuedAt(t time.Time) *RecoveryTokenUpdate {
	rtu.mutation.SetIssuedAt(t)
	return rtu
}

// Mutation returns the RecoveryTokenMutation object of the builder.
func (rtu *RecoveryTokenUpdate) Mutation() *RecoveryTokenMutation {
	return rtu.mutation
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (rtu *RecoveryTokenUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, rtu.sqlSave, rtu.mutation, rtu.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rtu *RecoveryTokenUpdate) SaveX(ctx context.Context) int {
	affected, err := rtu.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (rtu *RecoveryTokenUpdate) Exec(ctx context.Context) error {
	_, err := rtu.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rtu *RecoveryTokenUpdate) ExecX(ctx context.Context) {
	if err := rtu.Exec(ctx); err != nil {
		panic(err)
	}
}

func (rtu *RecoveryTokenUpdate) sqlSave(ctx context.Context) (n int, err error) {
	_spec := sqlgraph.NewUpdateSpec(recoverytoken.Table, recoverytoken.Columns, sqlgraph.NewFieldSpec(recoverytoken.FieldID, field.TypeString))
	if ps := rtu.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rtu.mutation.IssuedAt(); ok {
		_spec.SetField(recoverytoken.FieldIssuedAt, field.TypeTime, value)
	}
	if n, err = sqlgraph.UpdateNodes(ctx, rtu.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recoverytoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	rtu.mutation.done = true
	return n, nil
}

// RecoveryTokenUpdateOne is the builder for updating a single RecoveryToken entity.
type RecoveryTokenUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *RecoveryTokenMutation
}

// SetIssuedAt sets the "issued_at" field.
func (rtuo *RecoveryTokenUpdateOne) SetIssuedAt(t time.Time) *RecoveryTokenUpdateOne {
	rtuo.mutation.SetIssuedAt(t)
	return rtuo
}

// Mutation returns the RecoveryTokenMutation object of the builder.
func (rtuo *RecoveryTokenUpdateOne) Mutation() *RecoveryTokenMutation {
	return rtuo.mutation
}

// Where appends a list predicates to the RecoveryTokenUpdate builder.
func (rtuo *RecoveryTokenUpdateOne) Where(ps ...predicate.RecoveryToken) *RecoveryTokenUpdateOne {
	rtuo.mutation.Where(ps...)
	return rtuo
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (rtuo *RecoveryTokenUpdateOne) Select(field string, fields ...string) *RecoveryTokenUpdateOne {
	rtuo.fields = append([]string{field}, fields...)
	return rtuo
}

// Save executes the query and returns the updated RecoveryToken entity.
func (rtuo *RecoveryTokenUpdateOne) Save(ctx context.Context) (*RecoveryToken, error) {
	return withHooks(ctx, rtuo.sqlSave, rtuo.mutation, rtuo.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (rtuo *RecoveryTokenUpdateOne) SaveX(ctx context.Context) *RecoveryToken {
	node, err := rtuo.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (rtuo *RecoveryTokenUpdateOne) Exec(ctx context.Context) error {
	_, err := rtuo.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (rtuo *RecoveryTokenUpdateOne) ExecX(ctx context.Context) {
	if err := rtuo.Exec(ctx); err != nil {
		panic(err)
	}
}

func (rtuo *RecoveryTokenUpdateOne) sqlSave(ctx context.Context) (_node *RecoveryToken, err error) {
	_spec := sqlgraph.NewUpdateSpec(recoverytoken.Table, recoverytoken.Columns, sqlgraph.NewFieldSpec(recoverytoken.FieldID, field.TypeString))
	id, ok := rtuo.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "RecoveryToken.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := rtuo.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recoverytoken.FieldID)
		for _, f := range fields {
			if !recoverytoken.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != recoverytoken.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := rtuo.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := rtuo.mutation.IssuedAt(); ok {
		_spec.SetField(recoverytoken.FieldIssuedAt, field.TypeTime, value)
	}
	_node = &RecoveryToken{config: rtuo.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, rtuo.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{recoverytoken.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	rtuo.mutation.done = true
	return _node, nil
}
