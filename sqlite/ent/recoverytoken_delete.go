// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Mushus/retweet/sqlite/ent/predicate"
	"github.com/Mushus/retweet/sqlite/ent/recoverytoken"
)

// RecoveryTokenDelete is the builder for deleting a RecoveryToken entity.
type RecoveryTokenDelete struct {
	config
	hooks    []Hook
	mutation *RecoveryTokenMutation
}

// Where appends a list predicates to the RecoveryTokenDelete builder.
func (rtd *RecoveryTokenDelete) Where(ps ...predicate.RecoveryToken) *RecoveryTokenDelete {
	rtd.mutation.Where(ps...)
	return rtd
}

// Exec executes the deletion query and returns how many vertices were deleted.
func (rtd *RecoveryTokenDelete) Exec(ctx context.Context) (int, error) {
	return withHooks(ctx, rtd.sqlExec, rtd.mutation, rtd.hooks)
}

// ExecX is like Exec, but panics if an error occurs.
func (rtd *RecoveryTokenDelete) ExecX(ctx context.Context) int {
	n, err := rtd.Exec(ctx)
	if err != nil {
		panic(err)
	}
	return n
}

func (rtd *RecoveryTokenDelete) sqlExec(ctx context.Context) (int, error) {
	_spec := sqlgraph.NewDeleteSpec(recoverytoken.Table, sqlgraph.NewFieldSpec(recoverytoken.FieldID, field.TypeString))
	if ps := rtd.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	affected, err := sqlgraph.DeleteNodes(ctx, rtd.driver, _spec)
	if err != nil && sqlgraph.IsConstraintError(err) {
		err = &ConstraintError{msg: err.Error(), wrap: err}
	}
	rtd.mutation.done = true
	return affected, err
}

// RecoveryTokenDeleteOne is the builder for deleting a single RecoveryToken entity.
type RecoveryTokenDeleteOne struct {
	rtd *RecoveryTokenDelete
}

// Where appends a list predicates to the RecoveryTokenDelete builder.
func (rtdo *RecoveryTokenDeleteOne) Where(ps ...predicate.RecoveryToken) *RecoveryTokenDeleteOne {
	rtdo.rtd.mutation.Where(ps...)
	return rtdo
}

// Exec executes the deletion query.
func (rtdo *RecoveryTokenDeleteOne) Exec(ctx context.Context) error {
	n, err := rtdo.rtd.Exec(ctx)
	switch {
	case err != nil:
		return err
	case n == 0:
		return &NotFoundError{recoverytoken.Label}
	default:
		return nil
	}
}

// ExecX is like Exec, but panics if an error occurs.
func (rtdo *RecoveryTokenDeleteOne) ExecX(ctx context.Context) {
	if err := rtdo.Exec(ctx); err != nil {
		panic(err)
	}
}
