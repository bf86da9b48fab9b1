// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
	ulid "github.com/oklog/ulid/v2"
)

// PublishTrackerQuery is the builder for querying PublishTracker entities.
type PublishTrackerQuery struct {
	config
	ctx            *QueryContext
	order          []publishtracker.OrderOption
	inters         []Interceptor
	predicates     []predicate.PublishTracker
	withRecitation *RecitationQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the PublishTrackerQuery builder.
func (_q *PublishTrackerQuery) Where(ps ...predicate.PublishTracker) *PublishTrackerQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *PublishTrackerQuery) Limit(limit int) *PublishTrackerQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *PublishTrackerQuery) Offset(offset int) *PublishTrackerQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *PublishTrackerQuery) Unique(unique bool) *PublishTrackerQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *PublishTrackerQuery) Order(o ...publishtracker.OrderOption) *PublishTrackerQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryRecitation chains the current query on the "recitation" edge.
func (_q *PublishTrackerQuery) QueryRecitation() *RecitationQuery {
	query := (&RecitationClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(publishtracker.Table, publishtracker.FieldID, selector),
			sqlgraph.To(recitation.Table, recitation.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, publishtracker.RecitationTable, publishtracker.RecitationColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first PublishTracker entity from the query.
// Returns a *NotFoundError when no PublishTracker was found.
func (_q *PublishTrackerQuery) First(ctx context.Context) (*PublishTracker, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{publishtracker.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *PublishTrackerQuery) FirstX(ctx context.Context) *PublishTracker {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first PublishTracker ID from the query.
// Returns a *NotFoundError when no PublishTracker ID was found.
func (_q *PublishTrackerQuery) FirstID(ctx context.Context) (id ulid.ULID, err error) {
	var ids []ulid.ULID
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{publishtracker.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *PublishTrackerQuery) FirstIDX(ctx context.Context) ulid.ULID {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single PublishTracker entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one PublishTracker entity is found.
// Returns a *NotFoundError when no PublishTracker entities are found.
func (_q *PublishTrackerQuery) Only(ctx context.Context) (*PublishTracker, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{publishtracker.Label}
	default:
		return nil, &NotSingularError{publishtracker.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *PublishTrackerQuery) OnlyX(ctx context.Context) *PublishTracker {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only PublishTracker ID in the query.
// Returns a *NotSingularError when more than one PublishTracker ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *PublishTrackerQuery) OnlyID(ctx context.Context) (id ulid.ULID, err error) {
	var ids []ulid.ULID
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{publishtracker.Label}
	default:
		err = &NotSingularError{publishtracker.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *PublishTrackerQuery) OnlyIDX(ctx context.Context) ulid.ULID {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of PublishTrackers.
func (_q *PublishTrackerQuery) All(ctx context.Context) ([]*PublishTracker, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*PublishTracker, *PublishTrackerQuery]()
	return withInterceptors[[]*PublishTracker](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *PublishTrackerQuery) AllX(ctx context.Context) []*PublishTracker {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of PublishTracker IDs.
func (_q *PublishTrackerQuery) IDs(ctx context.Context) (ids []ulid.ULID, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(publishtracker.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *PublishTrackerQuery) IDsX(ctx context.Context) []ulid.ULID {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *PublishTrackerQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*PublishTrackerQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *PublishTrackerQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *PublishTrackerQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("generated: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *PublishTrackerQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the PublishTrackerQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *PublishTrackerQuery) Clone() *PublishTrackerQuery {
	if _q == nil {
		return nil
	}
	return &PublishTrackerQuery{
		config:         _q.config,
		ctx:            _q.ctx.Clone(),
		order:          append([]publishtracker.OrderOption{}, _q.order...),
		inters:         append([]Interceptor{}, _q.inters...),
		predicates:     append([]predicate.PublishTracker{}, _q.predicates...),
		withRecitation: _q.withRecitation.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithRecitation tells the query-builder to eager-load the nodes that are connected to
// the "recitation" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *PublishTrackerQuery) WithRecitation(opts ...func(*RecitationQuery)) *PublishTrackerQuery {
	query := (&RecitationClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withRecitation = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.PublishTracker.Query().
//		GroupBy(publishtracker.FieldCreatedAt).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (_q *PublishTrackerQuery) GroupBy(field string, fields ...string) *PublishTrackerGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &PublishTrackerGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = publishtracker.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CreatedAt time.Time `json:"created_at,omitempty"`
//	}
//
//	client.PublishTracker.Query().
//		Select(publishtracker.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *PublishTrackerQuery) Select(fields ...string) *PublishTrackerSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &PublishTrackerSelect{PublishTrackerQuery: _q}
	sbuild.label = publishtracker.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a PublishTrackerSelect configured with the given aggregations.
func (_q *PublishTrackerQuery) Aggregate(fns ...AggregateFunc) *PublishTrackerSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *PublishTrackerQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("generated: uninitialized interceptor (forgotten import generated/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !publishtracker.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("generated: invalid field %q for query", f)}
		}
	}
	if _q.path != nil {
		prev, err := _q.path(ctx)
		if err != nil {
			return err
		}
		_q.sql = prev
	}
	return nil
}

func (_q *PublishTrackerQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*PublishTracker, error) {
	var (
		nodes       = []*PublishTracker{}
		_spec       = _q.querySpec()
		loadedTypes = [1]bool{
			_q.withRecitation != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*PublishTracker).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &PublishTracker{config: _q.config}
		nodes = append(nodes, node)
		node.Edges.loadedTypes = loadedTypes
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, _q.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	if query := _q.withRecitation; query != nil {
		if err := _q.loadRecitation(ctx, query, nodes, nil,
			func(n *PublishTracker, e *Recitation) { n.Edges.Recitation = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *PublishTrackerQuery) loadRecitation(ctx context.Context, query *RecitationQuery, nodes []*PublishTracker, init func(*PublishTracker), assign func(*PublishTracker, *Recitation)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*PublishTracker)
	for i := range nodes {
		fk := nodes[i].RecitationID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(recitation.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "recitation_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *PublishTrackerQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *PublishTrackerQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(publishtracker.Table, publishtracker.Columns, sqlgraph.NewFieldSpec(publishtracker.FieldID, field.TypeString))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, publishtracker.FieldID)
		for i := range fields {
			if fields[i] != publishtracker.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withRecitation != nil {
			_spec.Node.AddColumnOnce(publishtracker.FieldRecitationID)
		}
	}
	if ps := _q.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := _q.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := _q.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := _q.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (_q *PublishTrackerQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(publishtracker.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = publishtracker.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if _q.sql != nil {
		selector = _q.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if _q.ctx.Unique != nil && *_q.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range _q.predicates {
		p(selector)
	}
	for _, p := range _q.order {
		p(selector)
	}
	if offset := _q.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := _q.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// PublishTrackerGroupBy is the group-by builder for PublishTracker entities.
type PublishTrackerGroupBy struct {
	selector
	build *PublishTrackerQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *PublishTrackerGroupBy) Aggregate(fns ...AggregateFunc) *PublishTrackerGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *PublishTrackerGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PublishTrackerQuery, *PublishTrackerGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *PublishTrackerGroupBy) sqlScan(ctx context.Context, root *PublishTrackerQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(_g.fns))
	for _, fn := range _g.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*_g.flds)+len(_g.fns))
		for _, f := range *_g.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*_g.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _g.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// PublishTrackerSelect is the builder for selecting fields of PublishTracker entities.
type PublishTrackerSelect struct {
	*PublishTrackerQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *PublishTrackerSelect) Aggregate(fns ...AggregateFunc) *PublishTrackerSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *PublishTrackerSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*PublishTrackerQuery, *PublishTrackerSelect](ctx, _s.PublishTrackerQuery, _s, _s.inters, v)
}

func (_s *PublishTrackerSelect) sqlScan(ctx context.Context, root *PublishTrackerQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(_s.fns))
	for _, fn := range _s.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*_s.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := _s.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
