package pgqb

import (
	"github.com/lib/pq"
	"github.com/valyala/bytebufferpool"
)

/*
QueryBuilder is implemented by SelectBuilder and UpdateBuilder.

String returns the statement text and Args returns values for its
placeholders. The Nth element of Args is bound to $N.
*/
type QueryBuilder interface {
	AddParam(value interface{}) int
	String() string
	Args() []interface{}
}

var (
	_ QueryBuilder = (*SelectBuilder)(nil)
	_ QueryBuilder = (*UpdateBuilder)(nil)
)

// filter holds WHERE conditions and query arguments
// shared by SELECT and UPDATE builders.
type filter struct {
	conds []string
	args  []interface{}
	sql   string
}

/*
AddParam appends a value to the list of query arguments
and returns a number of its placeholder.

Use it to build a condition the builder has no helper for:

	q := pgqb.From("users")
	first := q.AddParam(18)
	second := q.AddParam(28)
	q.Where(fmt.Sprintf("age = $%d OR age = $%d", first, second))
	// SELECT * FROM users WHERE age = $1 OR age = $2
*/
func (f *filter) AddParam(value interface{}) int {
	f.args = append(f.args, value)
	f.invalidate()
	return len(f.args)
}

/*
Args returns the list of arguments to be passed to
database driver for statement execution.

A returned slice is not a copy. It can be altered by
any method that adds a value to the statement.
*/
func (f *filter) Args() []interface{} {
	return f.args
}

func (f *filter) where(expr string) {
	f.conds = append(f.conds, expr)
	f.invalidate()
}

func (f *filter) compare(column, op string, value interface{}) {
	n := f.AddParam(value)
	f.where(column + op + placeholder(n))
}

func (f *filter) whereEq(column string, value interface{}) {
	f.compare(column, " = ", value)
}

func (f *filter) whereNe(column string, value interface{}) {
	f.compare(column, " <> ", value)
}

func (f *filter) whereAny(column string, values interface{}) {
	n := f.AddParam(pq.Array(values))
	f.where(column + " = ANY(" + placeholder(n) + ")")
}

func (f *filter) writeWhere(buf *bytebufferpool.ByteBuffer) {
	writeClause(buf, "WHERE", f.conds, " AND ")
}

// invalidate drops a statement rendered before the last change.
func (f *filter) invalidate() {
	f.sql = ""
}

// reset empties the filter keeping allocated memory.
func (f *filter) reset() {
	f.conds = f.conds[:0]
	for n := range f.args {
		f.args[n] = nil
	}
	f.args = f.args[:0]
	f.sql = ""
}
