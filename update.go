package pgqb

/*
UpdateBuilder builds an UPDATE statement.

	q := pgqb.Update("users").
		Set("username", "rick").
		WhereEq("id", 42)
	sql, args := q.Build()
	// UPDATE users SET username = $1 WHERE id = $2
	// [rick 42]

Placeholders are numbered in the order values are added,
no matter which clause they appear in.

UpdateBuilder is not safe for concurrent use, including String.
*/
type UpdateBuilder struct {
	filter
	table string
	sets  []string
}

/*
Update starts an UPDATE statement.

table is written to the statement as is and can be an SQL fragment:

	q := pgqb.Update("ONLY users")
*/
func Update(table string) *UpdateBuilder {
	return getUpdate(table)
}

// Set adds a "column = $N" item to the SET clause.
func (q *UpdateBuilder) Set(column string, value interface{}) *UpdateBuilder {
	n := q.AddParam(value)
	return q.SetExpr(column, placeholder(n))
}

/*
SetExpr adds an item to the SET clause. expr is written as is:

	q.SetExpr("checksum", "md5(body)")
*/
func (q *UpdateBuilder) SetExpr(column, expr string) *UpdateBuilder {
	q.sets = append(q.sets, column+" = "+expr)
	q.invalidate()
	return q
}

// Where adds a raw condition. Conditions are joined with AND.
func (q *UpdateBuilder) Where(expr string) *UpdateBuilder {
	q.where(expr)
	return q
}

// WhereEq adds a "column = $N" condition.
func (q *UpdateBuilder) WhereEq(column string, value interface{}) *UpdateBuilder {
	q.whereEq(column, value)
	return q
}

// WhereNe adds a "column <> $N" condition.
func (q *UpdateBuilder) WhereNe(column string, value interface{}) *UpdateBuilder {
	q.whereNe(column, value)
	return q
}

// WhereAny adds a "column = ANY($N)" condition. values must be a slice.
func (q *UpdateBuilder) WhereAny(column string, values interface{}) *UpdateBuilder {
	q.whereAny(column, values)
	return q
}

// String method builds and returns an SQL statement.
func (q *UpdateBuilder) String() string {
	if q.sql == "" {
		buf := getBuffer()

		buf.WriteString("UPDATE ")
		buf.WriteString(q.table)
		writeClause(buf, "SET", q.sets, ", ")
		q.writeWhere(buf)

		q.sql = buf.String()
		putBuffer(buf)
	}
	return q.sql
}

// Build returns SQL statement and list of arguments to be passed to database driver for execution.
func (q *UpdateBuilder) Build() (sql string, args []interface{}) {
	return q.String(), q.Args()
}

// Close puts the builder back to pool for reuse.
// Do not use the builder or slices returned by Args after Close.
func (q *UpdateBuilder) Close() {
	reuseUpdate(q)
}

func (q *UpdateBuilder) reset() {
	q.filter.reset()
	q.table = ""
	q.sets = q.sets[:0]
}
