// Code generated by ent, DO NOT EDIT.

package generated

import (
	"context"
	"database/sql/driver"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/khanesh/khanesh/internal/ent/generated/poem"
	"github.com/khanesh/khanesh/internal/ent/generated/predicate"
	"github.com/khanesh/khanesh/internal/ent/generated/publishtracker"
	"github.com/khanesh/khanesh/internal/ent/generated/recitation"
)

// RecitationQuery is the builder for querying Recitation entities.
type RecitationQuery struct {
	config
	ctx          *QueryContext
	order        []recitation.OrderOption
	inters       []Interceptor
	predicates   []predicate.Recitation
	withPoem     *PoemQuery
	withTrackers *PublishTrackerQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the RecitationQuery builder.
func (_q *RecitationQuery) Where(ps ...predicate.Recitation) *RecitationQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *RecitationQuery) Limit(limit int) *RecitationQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *RecitationQuery) Offset(offset int) *RecitationQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *RecitationQuery) Unique(unique bool) *RecitationQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *RecitationQuery) Order(o ...recitation.OrderOption) *RecitationQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryPoem chains the current query on the "poem" edge.
func (_q *RecitationQuery) QueryPoem() *PoemQuery {
	query := (&PoemClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recitation.Table, recitation.FieldID, selector),
			sqlgraph.To(poem.Table, poem.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, recitation.PoemTable, recitation.PoemColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryTrackers chains the current query on the "trackers" edge.
func (_q *RecitationQuery) QueryTrackers() *PublishTrackerQuery {
	query := (&PublishTrackerClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(recitation.Table, recitation.FieldID, selector),
			sqlgraph.To(publishtracker.Table, publishtracker.FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, recitation.TrackersTable, recitation.TrackersColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first Recitation entity from the query.
// Returns a *NotFoundError when no Recitation was found.
func (_q *RecitationQuery) First(ctx context.Context) (*Recitation, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{recitation.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *RecitationQuery) FirstX(ctx context.Context) *Recitation {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first Recitation ID from the query.
// Returns a *NotFoundError when no Recitation ID was found.
func (_q *RecitationQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{recitation.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *RecitationQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single Recitation entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one Recitation entity is found.
// Returns a *NotFoundError when no Recitation entities are found.
func (_q *RecitationQuery) Only(ctx context.Context) (*Recitation, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{recitation.Label}
	default:
		return nil, &NotSingularError{recitation.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *RecitationQuery) OnlyX(ctx context.Context) *Recitation {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only Recitation ID in the query.
// Returns a *NotSingularError when more than one Recitation ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *RecitationQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{recitation.Label}
	default:
		err = &NotSingularError{recitation.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *RecitationQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of Recitations.
func (_q *RecitationQuery) All(ctx context.Context) ([]*Recitation, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*Recitation, *RecitationQuery]()
	return withInterceptors[[]*Recitation](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *RecitationQuery) AllX(ctx context.Context) []*Recitation {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of Recitation IDs.
func (_q *RecitationQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(recitation.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *RecitationQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *RecitationQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*RecitationQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *RecitationQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *RecitationQuery) Exist(ctx context.Context) (bool, error) {
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
func (_q *RecitationQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the RecitationQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *RecitationQuery) Clone() *RecitationQuery {
	if _q == nil {
		return nil
	}
	return &RecitationQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]recitation.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.Recitation{}, _q.predicates...),
		withPoem:     _q.withPoem.Clone(),
		withTrackers: _q.withTrackers.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithPoem tells the query-builder to eager-load the nodes that are connected to
// the "poem" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecitationQuery) WithPoem(opts ...func(*PoemQuery)) *RecitationQuery {
	query := (&PoemClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withPoem = query
	return _q
}

// WithTrackers tells the query-builder to eager-load the nodes that are connected to
// the "trackers" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *RecitationQuery) WithTrackers(opts ...func(*PublishTrackerQuery)) *RecitationQuery {
	query := (&PublishTrackerClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withTrackers = query
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
//	client.Recitation.Query().
//		GroupBy(recitation.FieldCreatedAt).
//		Aggregate(generated.Count()).
//		Scan(ctx, &v)
func (_q *RecitationQuery) GroupBy(field string, fields ...string) *RecitationGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &RecitationGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = recitation.Label
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
//	client.Recitation.Query().
//		Select(recitation.FieldCreatedAt).
//		Scan(ctx, &v)
func (_q *RecitationQuery) Select(fields ...string) *RecitationSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &RecitationSelect{RecitationQuery: _q}
	sbuild.label = recitation.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a RecitationSelect configured with the given aggregations.
func (_q *RecitationQuery) Aggregate(fns ...AggregateFunc) *RecitationSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *RecitationQuery) prepareQuery(ctx context.Context) error {
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
		if !recitation.ValidColumn(f) {
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

func (_q *RecitationQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*Recitation, error) {
	var (
		nodes       = []*Recitation{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withPoem != nil,
			_q.withTrackers != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*Recitation).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &Recitation{config: _q.config}
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
	if query := _q.withPoem; query != nil {
		if err := _q.loadPoem(ctx, query, nodes, nil,
			func(n *Recitation, e *Poem) { n.Edges.Poem = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withTrackers; query != nil {
		if err := _q.loadTrackers(ctx, query, nodes,
			func(n *Recitation) { n.Edges.Trackers = []*PublishTracker{} },
			func(n *Recitation, e *PublishTracker) { n.Edges.Trackers = append(n.Edges.Trackers, e) }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *RecitationQuery) loadPoem(ctx context.Context, query *PoemQuery, nodes []*Recitation, init func(*Recitation), assign func(*Recitation, *Poem)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*Recitation)
	for i := range nodes {
		fk := nodes[i].PoemID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(poem.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "poem_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *RecitationQuery) loadTrackers(ctx context.Context, query *PublishTrackerQuery, nodes []*Recitation, init func(*Recitation), assign func(*Recitation, *PublishTracker)) error {
	fks := make([]driver.Value, 0, len(nodes))
	nodeids := make(map[int]*Recitation)
	for i := range nodes {
		fks = append(fks, nodes[i].ID)
		nodeids[nodes[i].ID] = nodes[i]
		if init != nil {
			init(nodes[i])
		}
	}
	if len(query.ctx.Fields) > 0 {
		query.ctx.AppendFieldOnce(publishtracker.FieldRecitationID)
	}
	query.Where(predicate.PublishTracker(func(s *sql.Selector) {
		s.Where(sql.InValues(s.C(recitation.TrackersColumn), fks...))
	}))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		fk := n.RecitationID
		node, ok := nodeids[fk]
		if !ok {
			return fmt.Errorf(`unexpected referenced foreign-key "recitation_id" returned %v for node %v`, fk, n.ID)
		}
		assign(node, n)
	}
	return nil
}

func (_q *RecitationQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *RecitationQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(recitation.Table, recitation.Columns, sqlgraph.NewFieldSpec(recitation.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, recitation.FieldID)
		for i := range fields {
			if fields[i] != recitation.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withPoem != nil {
			_spec.Node.AddColumnOnce(recitation.FieldPoemID)
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

func (_q *RecitationQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(recitation.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = recitation.Columns
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

// RecitationGroupBy is the group-by builder for Recitation entities.
type RecitationGroupBy struct {
	selector
	build *RecitationQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *RecitationGroupBy) Aggregate(fns ...AggregateFunc) *RecitationGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *RecitationGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecitationQuery, *RecitationGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *RecitationGroupBy) sqlScan(ctx context.Context, root *RecitationQuery, v any) error {
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

// RecitationSelect is the builder for selecting fields of Recitation entities.
type RecitationSelect struct {
	*RecitationQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *RecitationSelect) Aggregate(fns ...AggregateFunc) *RecitationSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *RecitationSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*RecitationQuery, *RecitationSelect](ctx, _s.RecitationQuery, _s, _s.inters, v)
}

func (_s *RecitationSelect) sqlScan(ctx context.Context, root *RecitationQuery, v any) error {
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
