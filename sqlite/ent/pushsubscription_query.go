// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Mushus/retweet/sqlite/ent/predicate"
	"github.com/Mushus/retweet/sqlite/ent/pushsubscription"
)

// PushSubscriptionQuery is the builder for querying PushSubscription entities.
type PushSubscriptionQuery struct {
	config
	ctx        *QueryContext
	order      []pushsubscription.OrderOption
	inters     []Interceptor
	predicates []predicate.PushSubscription
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PushSubscriptionQuery builder.
func (psq *PushSubscriptionQuery) Where(ps ...predicate.PushSubscription) *PushSubscriptionQuery {
	psq.predicates = append(psq.predicates, ps...)
	return psq
}

// Limit the number of records to be returned by this query.
func (psq *PushSubscriptionQuery) Limit(limit int) *PushSubscriptionQuery {
	psq.ctx.Limit = &limit
	return psq
}

// Offset to start from.
func (psq *PushSubscriptionQuery) Offset(offset int) *PushSubscriptionQuery {
	psq.ctx.Offset = &offset
	return psq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (psq *PushSubscriptionQuery) Unique(unique bool) *PushSubscriptionQuery {
	psq.ctx.Unique = &unique
	return psq
}

// Order specifies how the records should be ordered.
func (psq *PushSubscriptionQuery) Order(o ...pushsubscription.OrderOption) *PushSubscriptionQuery {
	psq.order = append(psq.order, o...)
	return psq
}

// First returns the first PushSubscription entity from the query.
// Returns a *NotFoundError when no PushSubscription was found.
func (psq *PushSubscriptionQuery) First(ctx context.Context) (*PushSubscription, error) {
	nodes, err := psq.Limit(1).All(setContextOp(ctx, psq.ctx, "First"))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{pushsubscription.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (psq *PushSubscriptionQuery) FirstX(ctx context.Context) *PushSubscription {
	node, err := psq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PushSubscription ID from the query.
// Returns a *NotFoundError when no PushSubscription ID was found.
func (psq *PushSubscriptionQuery) FirstID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = psq.Limit(1).IDs(setContextOp(ctx, psq.ctx, "FirstID")); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{pushsubscription.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (psq *PushSubscriptionQuery) FirstIDX(ctx context.Context) string {
	id, err := psq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PushSubscription entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PushSubscription entity is found.
// Returns a *NotFoundError when no PushSubscription entities are found.
func (psq *PushSubscriptionQuery) Only(ctx context.Context) (*PushSubscription, error) {
	nodes, err := psq.Limit(2).All(setContextOp(ctx, psq.ctx, "Only"))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{pushsubscription.Label}
	default:
		return nil, &NotSingularError{pushsubscription.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (psq *PushSubscriptionQuery) OnlyX(ctx context.Context) *PushSubscription {
	node, err := psq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PushSubscription ID in the query.
// Returns a *NotSingularError when more than one PushSubscription ID is found.
// Returns a *NotFoundError when no entities are found.
func (psq *PushSubscriptionQuery) OnlyID(ctx context.Context) (id string, err error) {
	var ids []string
	if ids, err = psq.Limit(2).IDs(setContextOp(ctx, psq.ctx, "OnlyID")); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{pushsubscription.Label}
	default:
		err = &NotSingularError{pushsubscription.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (psq *PushSubscriptionQuery) OnlyIDX(ctx context.Context) string {
	id, err := psq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PushSubscriptions.
func (psq *PushSubscriptionQuery) All(ctx context.Context) ([]*PushSubscription, error) {
	ctx = setContextOp(ctx, psq.ctx, "All")
	if err := psq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PushSubscription, *PushSubscriptionQuery]()
	return withInterceptors[[]*PushSubscription](ctx, psq, qr, psq.inters)
}

// AllX is like All, but panics if an error occurs.
func (psq *PushSubscriptionQuery) AllX(ctx context.Context) []*PushSubscription {
	nodes, err := psq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PushSubscription IDs.
func (psq *PushSubscriptionQuery) IDs(ctx context.Context) (ids []string, err error) {
	if psq.ctx.Unique == nil && psq.path != nil {
		psq.Unique(true)
	}
	ctx = setContextOp(ctx, psq.ctx, "IDs")
	if err = psq.Select(pushsubscription.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (psq *PushSubscriptionQuery) IDsX(ctx context.Context) []string {
	ids, err := psq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (psq *PushSubscriptionQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, psq.ctx, "Count")
	if err := psq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, psq, querierCount[*PushSubscriptionQuery](), psq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (psq *PushSubscriptionQuery) CountX(ctx context.Context) int {
	count, err := psq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (psq *PushSubscriptionQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, psq.ctx, "Exist")
	switch _, err := psq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (psq *PushSubscriptionQuery) ExistX(ctx context.Context) bool {
	exist, err := psq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PushSubscriptionQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (psq *PushSubscriptionQuery) Clone() *PushSubscriptionQuery {
	if psq == nil {
		return nil
	}
	return &PushSubscriptionQuery{
		config:     psq.config,
		ctx:        psq.ctx.Clone(),
		order:      append([]pushsubscription.OrderOption{}, psq.order...),
		inters:     append([]Interceptor{}, psq.inters...),
		predicates: append([]predicate.PushSubscription{}, psq.predicates...),
		// clone intermediate query.
		sql:  psq.sql.Clone(),
		path: psq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		AccountID string `json:"account_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PushSubscription.Query().
//		GroupBy(pushsubscription.FieldAccountID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (psq *PushSubscriptionQuery) GroupBy(field string, fields ...string) *PushSubscriptionGroupBy {
	psq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PushSubscriptionGroupBy{build: psq}
	grbuild.flds = &psq.ctx.Fields
	grbuild.label = pushsubscription.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		AccountID string `json:"account_id,omitempty"`
//	}
//
//	client.PushSubscription.Query().
//		Select(pushsubscription.FieldAccountID).
//		Scan(ctx, &v)
func (psq *PushSubscriptionQuery) Select(fields ...string) *PushSubscriptionSelect {
	psq.ctx.Fields = append(psq.ctx.Fields, fields...)
	sbuild := &PushSubscriptionSelect{PushSubscriptionQuery: psq}
	sbuild.label = pushsubscription.Label
	sbuild.flds, sbuild.scan = &psq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PushSubscriptionSelect configured with the given aggregations.
func (psq *PushSubscriptionQuery) Aggregate(fns ...AggregateFunc) *PushSubscriptionSelect {
	return psq.Select().Aggregate(fns...)
}

func (psq *PushSubscriptionQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range psq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, psq); err != nil {
				return err
			}
		}
	}
	for _, f := range psq.ctx.Fields {
		if !pushsubscription.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if psq.path != nil {
		prev, err := psq.path(ctx)
		if err != nil {
			return err
		}
		psq.sql = prev
	}
	return nil
}

func (psq *PushSubscriptionQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PushSubscription, error) {
	var (
		nodes = []*PushSubscription{}
		_spec = psq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PushSubscription).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PushSubscription{config: psq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, psq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (psq *PushSubscriptionQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := psq.querySpec()
	_spec.Node.Columns = psq.ctx.Fields
	if len(psq.ctx.Fields) > 0 {
		_spec.Unique = psq.ctx.Unique != nil && *psq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, psq.driver, _spec)
}

func (psq *PushSubscriptionQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(pushsubscription.Table, pushsubscription.Columns, sqlgraph.NewFieldSpec(pushsubscription.FieldID, field.TypeString))
	_spec.From = psq.sql
	if unique := psq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if psq.path != nil {
		_spec.Unique = true
	}
	if fields := psq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, pushsubscription.FieldID)
		for i := range fields {
			if fields[i] != pushsubscription.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := psq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := psq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := psq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := psq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (psq *PushSubscriptionQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(psq.driver.Dialect())
	t1 := builder.Table(pushsubscription.Table)
	columns := psq.ctx.Fields
	if len(columns) == 0 {
		columns = pushsubscription.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if psq.sql != nil {
		selector = psq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if psq.ctx.Unique != nil && *psq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range psq.predicates {
		p(selector)
	}
	for _, p := range psq.order {
		p(selector)
	}
	if offset := psq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := psq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PushSubscriptionGroupBy is the group-by builder for PushSubscription entities.
type PushSubscriptionGroupBy struct {
	selector
	build *PushSubscriptionQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (psgb *PushSubscriptionGroupBy) Aggregate(fns ...AggregateFunc) *PushSubscriptionGroupBy {
	psgb.fns = append(psgb.fns, fns...)
	return psgb
}

// Scan applies the selector query and scans the result into the given value.
func (psgb *PushSubscriptionGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, psgb.build.ctx, "GroupBy")
	if err := psgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PushSubscriptionQuery, *PushSubscriptionGroupBy](ctx, psgb.build, psgb, psgb.build.inters, v)
}

func (psgb *PushSubscriptionGroupBy) sqlScan(ctx context.Context, root *PushSubscriptionQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(psgb.fns))
	for _, fn := range psgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*psgb.flds)+len(psgb.fns))
		for _, f := range *psgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*psgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := psgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PushSubscriptionSelect is the builder for selecting fields of PushSubscription entities.
type PushSubscriptionSelect struct {
	*PushSubscriptionQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (pss *PushSubscriptionSelect) Aggregate(fns ...AggregateFunc) *PushSubscriptionSelect {
	pss.fns = append(pss.fns, fns...)
	return pss
}

// Scan applies the selector query and scans the result into the given value.
func (pss *PushSubscriptionSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, pss.ctx, "Select")
	if err := pss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PushSubscriptionQuery, *PushSubscriptionSelect](ctx, pss.PushSubscriptionQuery, pss, pss.inters, v)
}

func (pss *PushSubscriptionSelect) sqlScan(ctx context.Context, root *PushSubscriptionQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(pss.fns))
	for _, fn := range pss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*pss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := pss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
