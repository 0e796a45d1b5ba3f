package pgqb

import (
	"strconv"

	"github.com/samber/lo"
)

// Order defines an ORDER BY clause element.
type Order struct {
	Column string
	Desc   bool
}

// Asc sorts rows by column in ascending order.
func Asc(column string) Order {
	return Order{Column: column}
}

// Desc sorts rows by column in descending order.
func Desc(column string) Order {
	return Order{Column: column, Desc: true}
}

// String returns the ORDER BY element as "column ASC|DESC".
func (o Order) String() string {
	if o.Desc {
		return o.Column + " DESC"
	}
	return o.Column + " ASC"
}

type join struct {
	kind  string
	table string
	on    string
}

func (j join) String() string {
	return j.kind + " " + j.table + " ON " + j.on
}

/*
SelectBuilder builds a SELECT statement.

	q := pgqb.From("users").
		Select("id", "email").
		WhereEq("password", "123456").
		Limit(10)
	sql, args := q.Build()
	// SELECT id, email FROM users WHERE password = $1 LIMIT 10
	// [123456]

Call Close to put a builder back to pool once a statement is executed.

SelectBuilder is not safe for concurrent use, including String.
*/
type SelectBuilder struct {
	filter
	table   string
	columns []string
	joins   []join
	groups  []string
	orders  []Order
	limit   string
	offset  string
}

/*
From starts a SELECT statement.

table is written to the statement as is and can be an SQL fragment:

	q := pgqb.From("users AS u")
*/
func From(table string) *SelectBuilder {
	return getSelect(table)
}

/*
Select adds columns to the list of columns to be selected.

Select can be called multiple times to add more columns.
Rows are selected with * if no columns were added.
*/
func (q *SelectBuilder) Select(column ...string) *SelectBuilder {
	q.columns = append(q.columns, column...)
	q.invalidate()
	return q
}

/*
Where adds a raw condition:

	q.Where("deleted_at IS NULL")

Conditions are joined with AND.
*/
func (q *SelectBuilder) Where(expr string) *SelectBuilder {
	q.where(expr)
	return q
}

// WhereEq adds a "column = $N" condition.
func (q *SelectBuilder) WhereEq(column string, value interface{}) *SelectBuilder {
	q.whereEq(column, value)
	return q
}

// WhereNe adds a "column <> $N" condition.
func (q *SelectBuilder) WhereNe(column string, value interface{}) *SelectBuilder {
	q.whereNe(column, value)
	return q
}

/*
WhereAny adds a "column = ANY($N)" condition.

values must be a slice. It is passed to the driver as a PostgreSQL array:

	q.WhereAny("id", []int64{1, 2, 3})
*/
func (q *SelectBuilder) WhereAny(column string, values interface{}) *SelectBuilder {
	q.whereAny(column, values)
	return q
}

// InnerJoin adds an INNER JOIN clause.
func (q *SelectBuilder) InnerJoin(table, on string) *SelectBuilder {
	return q.join("INNER JOIN", table, on)
}

// LeftJoin adds a LEFT JOIN clause.
func (q *SelectBuilder) LeftJoin(table, on string) *SelectBuilder {
	return q.join("LEFT JOIN", table, on)
}

// LeftOuterJoin adds a LEFT OUTER JOIN clause.
func (q *SelectBuilder) LeftOuterJoin(table, on string) *SelectBuilder {
	return q.join("LEFT OUTER JOIN", table, on)
}

// GroupBy adds a column to the GROUP BY clause.
func (q *SelectBuilder) GroupBy(column string) *SelectBuilder {
	q.groups = append(q.groups, column)
	q.invalidate()
	return q
}

// OrderBy adds elements to the ORDER BY clause.
func (q *SelectBuilder) OrderBy(order ...Order) *SelectBuilder {
	q.orders = append(q.orders, order...)
	q.invalidate()
	return q
}

// Limit sets a limit on number of returned rows.
// Only the last value is used if called more than once.
func (q *SelectBuilder) Limit(limit int64) *SelectBuilder {
	q.limit = "LIMIT " + strconv.FormatInt(limit, 10)
	q.invalidate()
	return q
}

// Offset sets a number of rows to skip.
// Only the last value is used if called more than once.
func (q *SelectBuilder) Offset(offset int64) *SelectBuilder {
	q.offset = "OFFSET " + strconv.FormatInt(offset, 10)
	q.invalidate()
	return q
}

// String method builds and returns an SQL statement.
func (q *SelectBuilder) String() string {
	if q.sql == "" {
		buf := getBuffer()

		buf.WriteString("SELECT ")
		if len(q.columns) == 0 {
			buf.Write(star)
		} else {
			writeList(buf, q.columns, ", ")
		}
		buf.WriteString(" FROM ")
		buf.WriteString(q.table)
		writeClause(buf, "", lo.Map(q.joins, func(j join, _ int) string {
			return j.String()
		}), " ")
		q.writeWhere(buf)
		writeClause(buf, "GROUP BY", q.groups, ", ")
		writeClause(buf, "ORDER BY", lo.Map(q.orders, func(o Order, _ int) string {
			return o.String()
		}), ", ")
		if q.limit != "" {
			buf.Write(space)
			buf.WriteString(q.limit)
		}
		if q.offset != "" {
			buf.Write(space)
			buf.WriteString(q.offset)
		}

		q.sql = buf.String()
		putBuffer(buf)
	}
	return q.sql
}

// Build returns SQL statement and list of arguments to be passed to database driver for execution.
func (q *SelectBuilder) Build() (sql string, args []interface{}) {
	return q.String(), q.Args()
}

/*
Close puts the builder back to pool for reuse.

Do not use the builder or slices returned by Args after Close.
*/
func (q *SelectBuilder) Close() {
	reuseSelect(q)
}

func (q *SelectBuilder) reset() {
	q.filter.reset()
	q.table = ""
	q.columns = q.columns[:0]
	q.joins = q.joins[:0]
	q.groups = q.groups[:0]
	q.orders = q.orders[:0]
	q.limit = ""
	q.offset = ""
}

func (q *SelectBuilder) join(kind, table, on string) *SelectBuilder {
	q.joins = append(q.joins, join{kind: kind, table: table, on: on})
	q.invalidate()
	return q
}
