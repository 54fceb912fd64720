// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"fmt"
	"math"
	"portfolio-go-backend/ent/predicate"
	"portfolio-go-backend/ent/schema/ulid"
	"portfolio-go-backend/ent/sitesettings"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
)

// SiteSettingsQuery is the builder for querying SiteSettings entities.
type SiteSettingsQuery struct {
	config
	ctx        *QueryContext
	order      []sitesettings.OrderOption
	inters     []Interceptor
	predicates []predicate.SiteSettings
	// intermediate query (i.e. traversal path).
	sql  *sql.Selector
	path func(context.Context) (*sql.Selector, error)
}

// Where adds a new predicate for the SiteSettingsQuery builder.
func (ssq *SiteSettingsQuery) Where(ps ...predicate.SiteSettings) *SiteSettingsQuery {
	ssq.predicates = append(ssq.predicates, ps...)
	return ssq
}

// Limit the number of records to be returned by this query.
func (ssq *SiteSettingsQuery) Limit(limit int) *SiteSettingsQuery {
	ssq.ctx.Limit = &limit
	return ssq
}

// Offset to start from.
func (ssq *SiteSettingsQuery) Offset(offset int) *SiteSettingsQuery {
	ssq.ctx.Offset = &offset
	return ssq
}

// Unique configures the query builder to filter duplicate records on query.
// By default, unique is set to true, and can be disabled using this method.
func (ssq *SiteSettingsQuery) Unique(unique bool) *SiteSettingsQuery {
	ssq.ctx.Unique = &unique
	return ssq
}

// Order specifies how the records should be ordered.
func (ssq *SiteSettingsQuery) Order(o ...sitesettings.OrderOption) *SiteSettingsQuery {
	ssq.order = append(ssq.order, o...)
	return ssq
}

// First returns the first SiteSettings entity from the query.
// Returns a *NotFoundError when no SiteSettings was found.
func (ssq *SiteSettingsQuery) First(ctx context.Context) (*SiteSettings, error) {
	nodes, err := ssq.Limit(1).All(setContextOp(ctx, ssq.ctx, ent.OpQueryFirst))
	if err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nil, &NotFoundError{sitesettings.Label}
	}
	return nodes[0], nil
}

// FirstX is like First, but panics if an error occurs.
func (ssq *SiteSettingsQuery) FirstX(ctx context.Context) *SiteSettings {
	node, err := ssq.First(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return node
}

// FirstID returns the first SiteSettings ID from the query.
// Returns a *NotFoundError when no SiteSettings ID was found.
func (ssq *SiteSettingsQuery) FirstID(ctx context.Context) (id ulid.ID, err error) {
	var ids []ulid.ID
	if ids, err = ssq.Limit(1).IDs(setContextOp(ctx, ssq.ctx, ent.OpQueryFirstID)); err != nil {
		return
	}
	if len(ids) == 0 {
		err = &NotFoundError{sitesettings.Label}
		return
	}
	return ids[0], nil
}

// FirstIDX is like FirstID, but panics if an error occurs.
func (ssq *SiteSettingsQuery) FirstIDX(ctx context.Context) ulid.ID {
	id, err := ssq.FirstID(ctx)
	if err != nil && !IsNotFound(err) {
		panic(err)
	}
	return id
}

// Only returns a single SiteSettings entity found by the query, ensuring it only returns one.
// Returns a *NotSingularError when more than one SiteSettings entity is found.
// Returns a *NotFoundError when no SiteSettings entities are found.
func (ssq *SiteSettingsQuery) Only(ctx context.Context) (*SiteSettings, error) {
	nodes, err := ssq.Limit(2).All(setContextOp(ctx, ssq.ctx, ent.OpQueryOnly))
	if err != nil {
		return nil, err
	}
	switch len(nodes) {
	case 1:
		return nodes[0], nil
	case 0:
		return nil, &NotFoundError{sitesettings.Label}
	default:
		return nil, &NotSingularError{sitesettings.Label}
	}
}

// OnlyX is like Only, but panics if an error occurs.
func (ssq *SiteSettingsQuery) OnlyX(ctx context.Context) *SiteSettings {
	node, err := ssq.Only(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// OnlyID is like Only, but returns the only SiteSettings ID in the query.
// Returns a *NotSingularError when more than one SiteSettings ID is found.
// Returns a *NotFoundError when no entities are found.
func (ssq *SiteSettingsQuery) OnlyID(ctx context.Context) (id ulid.ID, err error) {
	var ids []ulid.ID
	if ids, err = ssq.Limit(2).IDs(setContextOp(ctx, ssq.ctx, ent.OpQueryOnlyID)); err != nil {
		return
	}
	switch len(ids) {
	case 1:
		id = ids[0]
	case 0:
		err = &NotFoundError{sitesettings.Label}
	default:
		err = &NotSingularError{sitesettings.Label}
	}
	return
}

// OnlyIDX is like OnlyID, but panics if an error occurs.
func (ssq *SiteSettingsQuery) OnlyIDX(ctx context.Context) ulid.ID {
	id, err := ssq.OnlyID(ctx)
	if err != nil {
		panic(err)
	}
	return id
}

// All executes the query and returns a list of SiteSettingsSlice.
func (ssq *SiteSettingsQuery) All(ctx context.Context) ([]*SiteSettings, error) {
	ctx = setContextOp(ctx, ssq.ctx, ent.OpQueryAll)
	if err := ssq.prepareQuery(ctx); err != nil {
		return nil, err
	}
	qr := querierAll[[]*SiteSettings, *SiteSettingsQuery]()
	return withInterceptors[[]*SiteSettings](ctx, ssq, qr, ssq.inters)
}

// AllX is like All, but panics if an error occurs.
func (ssq *SiteSettingsQuery) AllX(ctx context.Context) []*SiteSettings {
	nodes, err := ssq.All(ctx)
	if err != nil {
		panic(err)
	}
	return nodes
}

// IDs executes the query and returns a list of SiteSettings IDs.
func (ssq *SiteSettingsQuery) IDs(ctx context.Context) (ids []ulid.ID, err error) {
	if ssq.ctx.Unique == nil && ssq.path != nil {
		ssq.Unique(true)
	}
	ctx = setContextOp(ctx, ssq.ctx, ent.OpQueryIDs)
	if err = ssq.Select(sitesettings.FieldID).Scan(ctx, &ids); err != nil {
		return nil, err
	}
	return ids, nil
}

// IDsX is like IDs, but panics if an error occurs.
func (ssq *SiteSettingsQuery) IDsX(ctx context.Context) []ulid.ID {
	ids, err := ssq.IDs(ctx)
	if err != nil {
		panic(err)
	}
	return ids
}

// Count returns the count of the given query.
func (ssq *SiteSettingsQuery) Count(ctx context.Context) (int, error) {
	ctx = setContextOp(ctx, ssq.ctx, ent.OpQueryCount)
	if err := ssq.prepareQuery(ctx); err != nil {
		return 0, err
	}
	return withInterceptors[int](ctx, ssq, querierCount[*SiteSettingsQuery](), ssq.inters)
}

// CountX is like Count, but panics if an error occurs.
func (ssq *SiteSettingsQuery) CountX(ctx context.Context) int {
	count, err := ssq.Count(ctx)
	if err != nil {
		panic(err)
	}
	return count
}

// Exist returns true if the query has elements in the graph.
func (ssq *SiteSettingsQuery) Exist(ctx context.Context) (bool, error) {
	ctx = setContextOp(ctx, ssq.ctx, ent.OpQueryExist)
	switch _, err := ssq.FirstID(ctx); {
	case IsNotFound(err):
		return false, nil
	case err != nil:
		return false, fmt.Errorf("ent: check existence: %w", err)
	default:
		return true, nil
	}
}

// ExistX is like Exist, but panics if an error occurs.
func (ssq *SiteSettingsQuery) ExistX(ctx context.Context) bool {
	exist, err := ssq.Exist(ctx)
	if err != nil {
		panic(err)
	}
	return exist
}

// Clone returns a duplicate of the SiteSettingsQuery builder, including all associated steps. It can be
// used to prepare common query builders and use them differently after the clone is made.
func (ssq *SiteSettingsQuery) Clone() *SiteSettingsQuery {
	if ssq == nil {
		return nil
	}
	return &SiteSettingsQuery{
		config:     ssq.config,
		ctx:        ssq.ctx.Clone(),
		order:      append([]sitesettings.OrderOption{}, ssq.order...),
		inters:     append([]Interceptor{}, ssq.inters...),
		predicates: append([]predicate.SiteSettings{}, ssq.predicates...),
		// clone intermediate query.
		sql:  ssq.sql.Clone(),
		path: ssq.path,
	}
}

// GroupBy is used to group vertices by one or more fields/columns.
// It is often used with aggregate functions, like: count, max, mean, min, sum.
//
// Example:
//
//	var v []struct {
//		SiteTitle string `json:"site_title,omitempty"`
//		Count int `json:"count,omitempty"`
//	}
//
//	client.SiteSettings.Query().
//		GroupBy(sitesettings.FieldSiteTitle).
//		Aggregate(ent.Count()).
//		Scan(ctx, &v)
func (ssq *SiteSettingsQuery) GroupBy(field string, fields ...string) *SiteSettingsGroupBy {
	ssq.ctx.Fields = append([]string{field}, fields...)
	grbuild := &SiteSettingsGroupBy{build: ssq}
	grbuild.flds = &ssq.ctx.Fields
	grbuild.label = sitesettings.Label
	grbuild.scan = grbuild.Scan
	return grbuild
}

// Select allows the selection one or more fields/columns for the given query,
// instead of selecting all fields in the entity.
//
// Example:
//
//	var v []struct {
//		SiteTitle string `json:"site_title,omitempty"`
//	}
//
//	client.SiteSettings.Query().
//		Select(sitesettings.FieldSiteTitle).
//		Scan(ctx, &v)
func (ssq *SiteSettingsQuery) Select(fields ...string) *SiteSettingsSelect {
	ssq.ctx.Fields = append(ssq.ctx.Fields, fields...)
	sbuild := &SiteSettingsSelect{SiteSettingsQuery: ssq}
	sbuild.label = sitesettings.Label
	sbuild.flds, sbuild.scan = &ssq.ctx.Fields, sbuild.Scan
	return sbuild
}

// Aggregate returns a SiteSettingsSelect configured with the given aggregations.
func (ssq *SiteSettingsQuery) Aggregate(fns ...AggregateFunc) *SiteSettingsSelect {
	return ssq.Select().Aggregate(fns...)
}

func (ssq *SiteSettingsQuery) prepareQuery(ctx context.Context) error {
	for _, inter := range ssq.inters {
		if inter == nil {
			return fmt.Errorf("ent: uninitialized interceptor (forgotten import ent/runtime?)")
		}
		if trv, ok := inter.(Traverser); ok {
			if err := trv.Traverse(ctx, ssq); err != nil {
				return err
			}
		}
	}
	for _, f := range ssq.ctx.Fields {
		if !sitesettings.ValidColumn(f) {
			return &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
		}
	}
	if ssq.path != nil {
		prev, err := ssq.path(ctx)
		if err != nil {
			return err
		}
		ssq.sql = prev
	}
	return nil
}

func (ssq *SiteSettingsQuery) sqlAll(ctx context.Context, hooks ...queryHook) ([]*SiteSettings, error) {
	var (
		nodes = []*SiteSettings{}
		_spec = ssq.querySpec()
	)
	_spec.ScanValues = func(columns []string) ([]any, error) {
		return (*SiteSettings).scanValues(nil, columns)
	}
	_spec.Assign = func(columns []string, values []any) error {
		node := &SiteSettings{config: ssq.config}
		nodes = append(nodes, node)
		return node.assignValues(columns, values)
	}
	for i := range hooks {
		hooks[i](ctx, _spec)
	}
	if err := sqlgraph.QueryNodes(ctx, ssq.driver, _spec); err != nil {
		return nil, err
	}
	if len(nodes) == 0 {
		return nodes, nil
	}
	return nodes, nil
}

func (ssq *SiteSettingsQuery) sqlCount(ctx context.Context) (int, error) {
	_spec := ssq.querySpec()
	_spec.Node.Columns = ssq.ctx.Fields
	if len(ssq.ctx.Fields) > 0 {
		_spec.Unique = ssq.ctx.Unique != nil && *ssq.ctx.Unique
	}
	return sqlgraph.CountNodes(ctx, ssq.driver, _spec)
}

func (ssq *SiteSettingsQuery) querySpec() *sqlgraph.QuerySpec {
	_spec := sqlgraph.NewQuerySpec(sitesettings.Table, sitesettings.Columns, sqlgraph.NewFieldSpec(sitesettings.FieldID, field.TypeString))
	_spec.From = ssq.sql
	if unique := ssq.ctx.Unique; unique != nil {
		_spec.Unique = *unique
	} else if ssq.path != nil {
		_spec.Unique = true
	}
	if fields := ssq.ctx.Fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, sitesettings.FieldID)
		for i := range fields {
			if fields[i] != sitesettings.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, fields[i])
			}
		}
	}
	if ps := ssq.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if limit := ssq.ctx.Limit; limit != nil {
		_spec.Limit = *limit
	}
	if offset := ssq.ctx.Offset; offset != nil {
		_spec.Offset = *offset
	}
	if ps := ssq.order; len(ps) > 0 {
		_spec.Order = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	return _spec
}

func (ssq *SiteSettingsQuery) sqlQuery(ctx context.Context) *sql.Selector {
	builder := sql.Dialect(ssq.driver.Dialect())
	t1 := builder.Table(sitesettings.Table)
	columns := ssq.ctx.Fields
	if len(columns) == 0 {
		columns = sitesettings.Columns
	}
	selector := builder.Select(t1.Columns(columns...)...).From(t1)
	if ssq.sql != nil {
		selector = ssq.sql
		selector.Select(selector.Columns(columns...)...)
	}
	if ssq.ctx.Unique != nil && *ssq.ctx.Unique {
		selector.Distinct()
	}
	for _, p := range ssq.predicates {
		p(selector)
	}
	for _, p := range ssq.order {
		p(selector)
	}
	if offset := ssq.ctx.Offset; offset != nil {
		// limit is mandatory for offset clause. We start
		// with default value, and override it below if needed.
		selector.Offset(*offset).Limit(math.MaxInt32)
	}
	if limit := ssq.ctx.Limit; limit != nil {
		selector.Limit(*limit)
	}
	return selector
}

// SiteSettingsGroupBy is the group-by builder for SiteSettings entities.
type SiteSettingsGroupBy struct {
	selector
	build *SiteSettingsQuery
}

// Aggregate adds the given aggregation functions to the group-by query.
func (ssgb *SiteSettingsGroupBy) Aggregate(fns ...AggregateFunc) *SiteSettingsGroupBy {
	ssgb.fns = append(ssgb.fns, fns...)
	return ssgb
}

// Scan applies the selector query and scans the result into the given value.
func (ssgb *SiteSettingsGroupBy) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, ssgb.build.ctx, ent.OpQueryGroupBy)
	if err := ssgb.build.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SiteSettingsQuery, *SiteSettingsGroupBy](ctx, ssgb.build, ssgb, ssgb.build.inters, v)
}

func (ssgb *SiteSettingsGroupBy) sqlScan(ctx context.Context, root *SiteSettingsQuery, v any) error {
	selector := root.sqlQuery(ctx).Select()
	aggregation := make([]string, 0, len(ssgb.fns))
	for _, fn := range ssgb.fns {
		aggregation = append(aggregation, fn(selector))
	}
	if len(selector.SelectedColumns()) == 0 {
		columns := make([]string, 0, len(*ssgb.flds)+len(ssgb.fns))
		for _, f := range *ssgb.flds {
			columns = append(columns, selector.C(f))
		}
		columns = append(columns, aggregation...)
		selector.Select(columns...)
	}
	selector.GroupBy(selector.Columns(*ssgb.flds...)...)
	if err := selector.Err(); err != nil {
		return err
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := ssgb.build.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}

// SiteSettingsSelect is the builder for selecting fields of SiteSettings entities.
type SiteSettingsSelect struct {
	*SiteSettingsQuery
	selector
}

// Aggregate adds the given aggregation functions to the selector query.
func (sss *SiteSettingsSelect) Aggregate(fns ...AggregateFunc) *SiteSettingsSelect {
	sss.fns = append(sss.fns, fns...)
	return sss
}

// Scan applies the selector query and scans the result into the given value.
func (sss *SiteSettingsSelect) Scan(ctx context.Context, v any) error {
	ctx = setContextOp(ctx, sss.ctx, ent.OpQuerySelect)
	if err := sss.prepareQuery(ctx); err != nil {
		return err
	}
	return scanWithInterceptors[*SiteSettingsQuery, *SiteSettingsSelect](ctx, sss.SiteSettingsQuery, sss, sss.inters, v)
}

func (sss *SiteSettingsSelect) sqlScan(ctx context.Context, root *SiteSettingsQuery, v any) error {
	selector := root.sqlQuery(ctx)
	aggregation := make([]string, 0, len(sss.fns))
	for _, fn := range sss.fns {
		aggregation = append(aggregation, fn(selector))
	}
	switch n := len(*sss.selector.flds); {
	case n == 0 && len(aggregation) > 0:
		selector.Select(aggregation...)
	case n != 0 && len(aggregation) > 0:
		selector.AppendSelect(aggregation...)
	}
	rows := &sql.Rows{}
	query, args := selector.Query()
	if err := sss.driver.Query(ctx, query, args, rows); err != nil {
		return err
	}
	defer rows.Close()
	return sql.ScanSlice(rows, v)
}
