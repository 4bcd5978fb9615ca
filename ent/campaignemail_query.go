// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/salesflowhq/salesflow/ent/campaign"
	"github.com/salesflowhq/salesflow/ent/campaignemail"
	"github.com/salesflowhq/salesflow/ent/lead"
	"github.com/salesflowhq/salesflow/ent/predicate"
)

// CampaignEmailQuery is the builder for querying CampaignEmail entities.
type CampaignEmailQuery struct {
	config
	ctx          *QueryContext
	order        []campaignemail.OrderOption
	inters       []Interceptor
	predicates   []predicate.CampaignEmail
	withCampaign *CampaignQuery
	withLead     *LeadQuery
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the CampaignEmailQuery builder.
func (_q *CampaignEmailQuery) Where(ps ...predicate.CampaignEmail) *CampaignEmailQuery {
	_q.predicates = append(_q.predicates, ps...)
	return _q
}

// Limit the number of records to be returned by this query.
func (_q *CampaignEmailQuery) Limit(limit int) *CampaignEmailQuery {
	_q.ctx.Limit = &limit
	return _q
}

// Offset to start from.
func (_q *CampaignEmailQuery) Offset(offset int) *CampaignEmailQuery {
	_q.ctx.Offset = &offset
	return _q
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (_q *CampaignEmailQuery) Unique(unique bool) *CampaignEmailQuery {
	_q.ctx.Unique = &unique
	return _q
}

// Order specifies how the records should be ordered.
func (_q *CampaignEmailQuery) Order(o ...campaignemail.OrderOption) *CampaignEmailQuery {
	_q.order = append(_q.order, o...)
	return _q
}

// QueryCampaign chains the current query on the "campaign" edge.
func (_q *CampaignEmailQuery) QueryCampaign() *CampaignQuery {
	query := (&CampaignClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(campaignemail.Table, campaignemail.FieldID, selector),
			sqlgraph.To(campaign.Table, campaign.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, campaignemail.CampaignTable, campaignemail.CampaignColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// QueryLead chains the current query on the "lead" edge.
func (_q *CampaignEmailQuery) QueryLead() *LeadQuery {
	query := (&LeadClient{config: _q.config}).Query()
	query.path = func(ctx context.Context) (fromU *sql.Selector, err error) {
		if err := _q.prepareQuery(ctx); err != nil {
			return nil, err
		}
		selector := _q.sqlQuery(ctx)
		if err := selector.Err(); err != nil {
			return nil, err
		}
		step := sqlgraph.NewStep(
			sqlgraph.From(campaignemail.Table, campaignemail.FieldID, selector),
			sqlgraph.To(lead.Table, lead.FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, campaignemail.LeadTable, campaignemail.LeadColumn),
		)
		fromU = sqlgraph.SetNeighbors(_q.driver.Dialect(), step)
		return fromU, nil
	}
	return query
}

// First returns the first CampaignEmail entity from the query.
// Returns a *NotFoundError when no CampaignEmail was found.
func (_q *CampaignEmailQuery) First(ctx context.Context) (*CampaignEmail, error) {
	nodes, err := _q.Limit(1).All(setContextOp(ctx, _q.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{campaignemail.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (_q *CampaignEmailQuery) FirstX(ctx context.Context) *CampaignEmail {
	node, err := _q.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first CampaignEmail ID from the query.
// Returns a *NotFoundError when no CampaignEmail ID was found.
func (_q *CampaignEmailQuery) FirstID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(1).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{campaignemail.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (_q *CampaignEmailQuery) FirstIDX(ctx context.Context) int {
	id, err := _q.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single CampaignEmail entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one CampaignEmail entity is found.
// Returns a *NotFoundError when no CampaignEmail entities are found.
func (_q *CampaignEmailQuery) Only(ctx context.Context) (*CampaignEmail, error) {
	nodes, err := _q.Limit(2).All(setContextOp(ctx, _q.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{campaignemail.Label}
	default:
		return nil, &NotSingularError{campaignemail.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (_q *CampaignEmailQuery) OnlyX(ctx context.Context) *CampaignEmail {
	node, err := _q.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only CampaignEmail ID in the query.
// Returns a *NotSingularError when more than one CampaignEmail ID is found.
// Returns a *NotFoundError when no entities are found.
func (_q *CampaignEmailQuery) OnlyID(ctx context.Context) (id int, err error) {
	var ids []int
	if ids, err = _q.Limit(2).IDs(setContextOp(ctx, _q.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{campaignemail.Label}
	default:
		err = &NotSingularError{campaignemail.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (_q *CampaignEmailQuery) OnlyIDX(ctx context.Context) int {
	id, err := _q.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of CampaignEmails.
func (_q *CampaignEmailQuery) All(ctx context.Context) ([]*CampaignEmail, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryAll)
	if err := _q.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*CampaignEmail, *CampaignEmailQuery]()
	return withInterceptors[[]*CampaignEmail](ctx, _q, qr, _q.inters)
}

// AllX is like All, but panics if an error occurs.
func (_q *CampaignEmailQuery) AllX(ctx context.Context) []*CampaignEmail {
	nodes, err := _q.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of CampaignEmail IDs.
func (_q *CampaignEmailQuery) IDs(ctx context.Context) (ids []int, err error) {
	if _q.ctx.Unique == nil && _q.path != nil {
		_q.Unique(true)
	}
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryIDs)
	if err = _q.Select(campaignemail.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (_q *CampaignEmailQuery) IDsX(ctx context.Context) []int {
	ids, err := _q.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (_q *CampaignEmailQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryCount)
	if err := _q.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, _q, querierCount[*CampaignEmailQuery](), _q.inters)
}

// CountX is like Count, but panics if an error occurs.
func (_q *CampaignEmailQuery) CountX(ctx context.Context) int {
	count, err := _q.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (_q *CampaignEmailQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, _q.ctx, ent.OpQueryExist)
	switch _, err := _q.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (_q *CampaignEmailQuery) ExistX(ctx context.Context) bool {
	exist, err := _q.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the CampaignEmailQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (_q *CampaignEmailQuery) Clone() *CampaignEmailQuery {
	if _q == nil {
		return nil
	}
	return &CampaignEmailQuery{
		config:       _q.config,
		ctx:          _q.ctx.Clone(),
		order:        append([]campaignemail.OrderOption{}, _q.order...),
		inters:       append([]Interceptor{}, _q.inters...),
		predicates:   append([]predicate.CampaignEmail{}, _q.predicates...),
		withCampaign: _q.withCampaign.Clone(),
		withLead:     _q.withLead.Clone(),
		// clone intermediate query.
		sql:  _q.sql.Clone(),
		path: _q.path,
	}
}

// WithCampaign tells the query-builder to eager-load the nodes that are connected to
// the "campaign" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CampaignEmailQuery) WithCampaign(opts ...func(*CampaignQuery)) *CampaignEmailQuery {
	query := (&CampaignClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withCampaign = query
	return _q
}

// WithLead tells the query-builder to eager-load the nodes that are connected to
// the "lead" edge. The optional arguments are used to configure the query builder of the edge.
func (_q *CampaignEmailQuery) WithLead(opts ...func(*LeadQuery)) *CampaignEmailQuery {
	query := (&LeadClient{config: _q.config}).Query()
	for _, opt := range opts {
		opt(query)
	}
	_q.withLead = query
	return _q
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		CampaignID int `json:"campaign_id,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.CampaignEmail.Query().
//		GroupBy(campaignemail.FieldCampaignID).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (_q *CampaignEmailQuery) GroupBy(field string, fields ...string) *CampaignEmailGroupBy {
	_q.ctx.Fields = append([]string{field}, fields...)
	grbuild := &CampaignEmailGroupBy{build: _q}
	grbuild.flds = &_q.ctx.Fields
	grbuild.label = campaignemail.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		CampaignID int `json:"campaign_id,omitempty"`
//	}
//
//	client.CampaignEmail.Query().
//		Select(campaignemail.FieldCampaignID).
//		Scan(ctx, &v)
func (_q *CampaignEmailQuery) Select(fields ...string) *CampaignEmailSelect {
	_q.ctx.Fields = append(_q.ctx.Fields, fields...)
	sbuild := &CampaignEmailSelect{CampaignEmailQuery: _q}
	sbuild.label = campaignemail.Label
	sbuild.flds, sbuild.scan = &_q.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a CampaignEmailSelect configured with the given aggregations.
func (_q *CampaignEmailQuery) Aggregate(fns ...AggregateFunc) *CampaignEmailSelect {
	return _q.Select().Aggregate(fns...)
}

func (_q *CampaignEmailQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range _q.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, _q); err != nil {
				return err
			}
		}
	}
	for _, f := range _q.ctx.Fields {
		if !campaignemail.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
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

func (_q *CampaignEmailQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*CampaignEmail, error) {
	var (
		nodes       = []*CampaignEmail{}
		_spec       = _q.querySpec()
		loadedTypes = [2]bool{
			_q.withCampaign != nil,
			_q.withLead != nil,
		}
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*CampaignEmail).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &CampaignEmail{config: _q.config}
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
	if query := _q.withCampaign; query != nil {
		if err := _q.loadCampaign(ctx, query, nodes, nil,
			func(n *CampaignEmail, e *Campaign) { n.Edges.Campaign = e }); err != nil {
			return nil, err
		}
	}
	if query := _q.withLead; query != nil {
		if err := _q.loadLead(ctx, query, nodes, nil,
			func(n *CampaignEmail, e *Lead) { n.Edges.Lead = e }); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

func (_q *CampaignEmailQuery) loadCampaign(ctx context.Context, query *CampaignQuery, nodes []*CampaignEmail, init func(*CampaignEmail), assign func(*CampaignEmail, *Campaign)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*CampaignEmail)
	for i := range nodes {
		fk := nodes[i].CampaignID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(campaign.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "campaign_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}
func (_q *CampaignEmailQuery) loadLead(ctx context.Context, query *LeadQuery, nodes []*CampaignEmail, init func(*CampaignEmail), assign func(*CampaignEmail, *Lead)) error {
	ids := make([]int, 0, len(nodes))
	nodeids := make(map[int][]*CampaignEmail)
	for i := range nodes {
		fk := nodes[i].LeadID
		if _, ok := nodeids[fk]; !ok {
			ids = append(ids, fk)
		}
		nodeids[fk] = append(nodeids[fk], nodes[i])
	}
	if len(ids) == 0 {
		return nil
	}
	query.Where(lead.IDIn(ids...))
	neighbors, err := query.All(ctx)
	if err != nil {
		return err
	}
	for _, n := range neighbors {
		nodes, ok := nodeids[n.ID]
		if !ok {
			return fmt.Errorf(`unexpected foreign-key "lead_id" returned %v`, n.ID)
		}
		for i := range nodes {
			assign(nodes[i], n)
		}
	}
	return nil
}

func (_q *CampaignEmailQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := _q.querySpec()
	_spec.Node.Columns = _q.ctx.Fields
	if len(_q.ctx.Fields) > 0 {
		_spec.Unique = _q.ctx.Unique != nil && *_q.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, _q.driver, _spec)
}

func (_q *CampaignEmailQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(campaignemail.Table, campaignemail.Columns, sqlgraph.NewFieldSpec(campaignemail.FieldID, field.TypeInt))
	_spec.From = _q.sql
	if unique := _q.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if _q.path != nil {
		_spec.Unique = true
	}
	if fields := _q.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, campaignemail.FieldID)
		for i := range fields {
			if fields[i] != campaignemail.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
		if _q.withCampaign != nil {
			_spec.Node.AddColumnOnce(campaignemail.FieldCampaignID)
		}
		if _q.withLead != nil {
			_spec.Node.AddColumnOnce(campaignemail.FieldLeadID)
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

func (_q *CampaignEmailQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(_q.driver.Dialect())
	t1 := builder.Table(campaignemail.Table)
	columns := _q.ctx.Fields
	if len(columns) == 0 {
		columns = campaignemail.Columns
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

// CampaignEmailGroupBy is the group-by builder for CampaignEmail entities.
type CampaignEmailGroupBy struct {
	selector
	build *CampaignEmailQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (_g *CampaignEmailGroupBy) Aggregate(fns ...AggregateFunc) *CampaignEmailGroupBy {
	_g.fns = append(_g.fns, fns...)
	return _g
}

// Scan applies the selector query and scans the result into the given value.
func (_g *CampaignEmailGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _g.build.ctx, ent.OpQueryGroupBy)
	if err := _g.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CampaignEmailQuery, *CampaignEmailGroupBy](ctx, _g.build, _g, _g.build.inters, v)
}

func (_g *CampaignEmailGroupBy) sqlScan(ctx context.Context, root *CampaignEmailQuery, v any) error {
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

// CampaignEmailSelect is the builder for selecting fields of CampaignEmail entities.
type CampaignEmailSelect struct {
	*CampaignEmailQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (_s *CampaignEmailSelect) Aggregate(fns ...AggregateFunc) *CampaignEmailSelect {
	_s.fns = append(_s.fns, fns...)
	return _s
}

// Scan applies the selector query and scans the result into the given value.
func (_s *CampaignEmailSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, _s.ctx, ent.OpQuerySelect)
	if err := _s.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*CampaignEmailQuery, *CampaignEmailSelect](ctx, _s.CampaignEmailQuery, _s, _s.inters, v)
}

func (_s *CampaignEmailSelect) sqlScan(ctx context.Context, root *CampaignEmailQuery, v any) error {
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
